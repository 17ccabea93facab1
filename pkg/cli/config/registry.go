package config

import (
	"os"

	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Registry holds unit registry configuration
type Registry struct {
	Path          string
	PrimaryBranch string
}

// Flags returns CLI flags for registry configuration
func (c *Registry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "units",
			Usage:       "Path to unit registry YAML (built-in monorepo layout when empty)",
			Destination: &c.Path,
			Sources:     cli.EnvVars("DROVER_UNITS"),
		},
		&cli.StringFlag{
			Name:        "primary-branch",
			Usage:       "Branch whose pushes release to staging",
			Value:       "main",
			Destination: &c.PrimaryBranch,
			Sources:     cli.EnvVars("DROVER_PRIMARY_BRANCH"),
		},
	}
}

// Load reads the unit registry. Without a configured path the built-in
// registry for the monorepo layout is returned.
func (c *Registry) Load() (*model.Registry, error) {
	if c.Path == "" {
		return model.DefaultRegistry(), nil
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read unit registry file", goerr.V("path", c.Path))
	}

	var registry model.Registry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, goerr.Wrap(err, "failed to parse unit registry file", goerr.V("path", c.Path))
	}

	if err := registry.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid unit registry", goerr.V("path", c.Path))
	}

	return &registry, nil
}
