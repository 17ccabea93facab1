package config

import "github.com/urfave/cli/v3"

// Deploy holds deployment trigger configuration
type Deploy struct {
	Command string
}

// Flags returns CLI flags for deployment configuration
func (c *Deploy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "deploy-cmd",
			Usage:       "Command invoked as '<cmd> <env> <unit> <image>' to trigger deployment (empty skips deployment)",
			Destination: &c.Command,
			Sources:     cli.EnvVars("DROVER_DEPLOY_CMD"),
		},
	}
}
