package config

import "github.com/urfave/cli/v3"

// Git holds repository configuration
type Git struct {
	RepoDir string
}

// Flags returns CLI flags for git configuration
func (c *Git) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repo-dir",
			Usage:       "Path to the monorepo checkout (must have full history)",
			Value:       ".",
			Destination: &c.RepoDir,
			Sources:     cli.EnvVars("DROVER_REPO_DIR"),
		},
	}
}
