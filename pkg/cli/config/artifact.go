package config

import "github.com/urfave/cli/v3"

// Artifact holds container build and publish configuration
type Artifact struct {
	RegistryHost string
	ContextDir   string
}

// Flags returns CLI flags for artifact configuration
func (c *Artifact) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "image-registry",
			Usage:       "Container registry host to publish to (e.g. ghcr.io/acme)",
			Required:    true,
			Destination: &c.RegistryHost,
			Sources:     cli.EnvVars("DROVER_IMAGE_REGISTRY"),
		},
		&cli.StringFlag{
			Name:        "context-dir",
			Usage:       "Monorepo checkout root used as the build context",
			Value:       ".",
			Destination: &c.ContextDir,
			Sources:     cli.EnvVars("DROVER_CONTEXT_DIR"),
		},
	}
}
