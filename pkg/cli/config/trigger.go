package config

import (
	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Trigger holds the CI event inputs for one evaluation. Passed explicitly
// rather than read from ambient environment variables so runs are
// deterministic and testable.
type Trigger struct {
	Event   string
	Ref     string
	BaseRev string
	HeadRev string
}

// Flags returns CLI flags for trigger configuration
func (c *Trigger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "event",
			Usage:       "Trigger event kind (push, pull_request)",
			Value:       "push",
			Destination: &c.Event,
			Sources:     cli.EnvVars("DROVER_EVENT"),
		},
		&cli.StringFlag{
			Name:        "ref",
			Usage:       "Ref that triggered the run (e.g. refs/heads/main, refs/tags/v1.2.0)",
			Required:    true,
			Destination: &c.Ref,
			Sources:     cli.EnvVars("DROVER_REF"),
		},
		&cli.StringFlag{
			Name:        "base-rev",
			Usage:       "Base revision for change detection (misbehaves for multi-parent merges; pass the previous run's head explicitly)",
			Value:       "HEAD~1",
			Destination: &c.BaseRev,
			Sources:     cli.EnvVars("DROVER_BASE_REV"),
		},
		&cli.StringFlag{
			Name:        "head-rev",
			Usage:       "Head revision for change detection",
			Value:       "HEAD",
			Destination: &c.HeadRev,
			Sources:     cli.EnvVars("DROVER_HEAD_REV"),
		},
	}
}

// Build converts the flag values into a trigger descriptor
func (c *Trigger) Build() (model.Trigger, error) {
	switch c.Event {
	case "push":
		return model.NewPushTrigger(c.Ref, c.BaseRev, c.HeadRev), nil
	case "pull_request":
		return model.Trigger{
			Kind:    model.TriggerPullRequest,
			Ref:     model.ShortRef(c.Ref),
			BaseRev: c.BaseRev,
			HeadRev: c.HeadRev,
		}, nil
	default:
		return model.Trigger{}, goerr.New("unknown trigger event", goerr.V("event", c.Event))
	}
}
