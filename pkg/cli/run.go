package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/drover/pkg/cli/config"
	"github.com/m-mizutani/drover/pkg/domain/interfaces"
	"github.com/m-mizutani/drover/pkg/infra/deploy"
	"github.com/m-mizutani/drover/pkg/infra/docker"
	"github.com/m-mizutani/drover/pkg/infra/git"
	slackinfra "github.com/m-mizutani/drover/pkg/infra/slack"
	"github.com/m-mizutani/drover/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdRun() *cli.Command {
	var (
		triggerCfg  config.Trigger
		registryCfg config.Registry
		gitCfg      config.Git
		artifactCfg config.Artifact
		deployCfg   config.Deploy
		slackCfg    config.Slack
	)

	flags := triggerCfg.Flags()
	flags = append(flags, registryCfg.Flags()...)
	flags = append(flags, gitCfg.Flags()...)
	flags = append(flags, artifactCfg.Flags()...)
	flags = append(flags, deployCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "run",
		Aliases: []string{"r"},
		Usage:   "Evaluate one CI trigger and build, publish and deploy the affected units",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			trigger, err := triggerCfg.Build()
			if err != nil {
				return err
			}

			orchestrator, err := newOrchestrator(&registryCfg, &gitCfg, &artifactCfg, &deployCfg, &slackCfg)
			if err != nil {
				return err
			}

			plan, err := orchestrator.Release(ctx, trigger)
			if err != nil {
				return goerr.Wrap(err, "release run failed")
			}

			if !plan.ShouldExecute() {
				logger.Info("Run finished without deployment", "reason", plan.Reason)
				return nil
			}

			logger.Info("Run finished",
				slog.String("version", plan.Version),
				slog.String("environment", string(plan.Environment)),
				slog.Any("units", plan.UnitNames()),
			)
			return nil
		},
	}
}

// newOrchestrator wires the infra collaborators from config. Deployment and
// notification are optional; everything else is required.
func newOrchestrator(
	registryCfg *config.Registry,
	gitCfg *config.Git,
	artifactCfg *config.Artifact,
	deployCfg *config.Deploy,
	slackCfg *config.Slack,
) (interfaces.OrchestratorUseCase, error) {
	registry, err := registryCfg.Load()
	if err != nil {
		return nil, err
	}

	var opts []usecase.Option
	if deployCfg.Command != "" {
		opts = append(opts, usecase.WithDeployer(deploy.NewCommandDeployer(deployCfg.Command)))
	}
	if slackCfg.WebhookURL != "" {
		opts = append(opts, usecase.WithNotifier(slackinfra.New(slackCfg.WebhookURL)))
	}

	return usecase.NewOrchestrator(
		git.New(gitCfg.RepoDir),
		docker.New(artifactCfg.RegistryHost, artifactCfg.ContextDir),
		registry,
		registryCfg.PrimaryBranch,
		opts...,
	), nil
}
