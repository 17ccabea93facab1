package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/drover/pkg/cli/config"
	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/drover/pkg/infra/git"
	"github.com/m-mizutani/drover/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdPlan() *cli.Command {
	var (
		triggerCfg  config.Trigger
		registryCfg config.Registry
		gitCfg      config.Git
	)

	flags := triggerCfg.Flags()
	flags = append(flags, registryCfg.Flags()...)
	flags = append(flags, gitCfg.Flags()...)

	return &cli.Command{
		Name:    "plan",
		Aliases: []string{"p"},
		Usage:   "Show what a trigger would release without executing anything",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			trigger, err := triggerCfg.Build()
			if err != nil {
				return err
			}

			registry, err := registryCfg.Load()
			if err != nil {
				return err
			}

			// No builder or deployer: Evaluate never touches them
			orchestrator := usecase.NewOrchestrator(
				git.New(gitCfg.RepoDir),
				nil,
				registry,
				registryCfg.PrimaryBranch,
			)

			plan, err := orchestrator.Evaluate(ctx, trigger)
			if err != nil {
				return err
			}

			printPlan(trigger, plan)
			return nil
		},
	}
}

func printPlan(trigger model.Trigger, plan *model.ReleasePlan) {
	heading := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)

	heading.Printf("Release plan for %s %s\n", trigger.Kind, trigger.Ref)

	if !plan.ShouldExecute() {
		color.Yellow("nothing to release: %s\n", plan.Reason)
		return
	}

	fmt.Printf("  version:     %s\n", color.GreenString(plan.Version))
	fmt.Printf("  environment: %s\n", color.GreenString(string(plan.Environment)))
	fmt.Println("  units:")
	for _, u := range plan.Units {
		fmt.Printf("    - %s ", u.Name)
		dim.Printf("(%s)\n", u.Path)
	}
}
