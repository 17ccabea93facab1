package deploy

import (
	"context"
	"os/exec"
	"strings"

	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// CommandDeployer triggers deployments by invoking an external command as
// `<command> <environment> <unit> <image-ref>`. The command is an opaque
// collaborator (cluster apply script, helm wrapper, etc.); credentials and
// rollout semantics are its concern.
type CommandDeployer struct {
	command string
}

// NewCommandDeployer creates a deployer around the given command
func NewCommandDeployer(command string) *CommandDeployer {
	return &CommandDeployer{
		command: command,
	}
}

// Deploy invokes the deploy command for one unit
func (d *CommandDeployer) Deploy(ctx context.Context, env model.Environment, unit model.Unit, imageRef string) error {
	cmd := exec.CommandContext(ctx, d.command, string(env), unit.Name, imageRef)
	if output, err := cmd.CombinedOutput(); err != nil {
		return goerr.Wrap(err, "deploy command failed",
			goerr.V("command", d.command),
			goerr.V("environment", env),
			goerr.V("unit", unit.Name),
			goerr.V("output", strings.TrimSpace(string(output))),
		)
	}

	return nil
}
