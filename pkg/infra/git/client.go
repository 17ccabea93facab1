package git

import (
	"context"
	"os/exec"
	"strings"

	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/drover/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Client detects changed paths by shelling out to the git command
type Client struct {
	repoDir string
}

// New creates a git client rooted at repoDir
func New(repoDir string) *Client {
	return &Client{
		repoDir: repoDir,
	}
}

// Changes returns the set of paths touched between base and head, covering
// additions, deletions and modifications. Both revisions must be resolvable
// in the local history; the caller is responsible for unshallowing the
// checkout before invocation.
func (c *Client) Changes(ctx context.Context, baseRev, headRev string) (model.ChangeSet, error) {
	for _, rev := range []string{baseRev, headRev} {
		if err := c.verifyRevision(ctx, rev); err != nil {
			return model.ChangeSet{}, err
		}
	}

	cmd := exec.CommandContext(ctx, "git", "-C", c.repoDir, "diff", "--name-only", baseRev, headRev)
	output, err := cmd.Output()
	if err != nil {
		return model.ChangeSet{}, goerr.Wrap(err, "git diff failed",
			goerr.V("base", baseRev),
			goerr.V("head", headRev),
			goerr.V("stderr", stderrOf(err)),
		)
	}

	var paths []string
	for _, line := range strings.Split(string(output), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paths = append(paths, line)
		}
	}

	return model.NewChangeSet(paths...), nil
}

// verifyRevision checks the revision resolves to a commit in local history
func (c *Client) verifyRevision(ctx context.Context, rev string) error {
	cmd := exec.CommandContext(ctx, "git", "-C", c.repoDir, "rev-parse", "--verify", "--quiet", rev+"^{commit}")
	if output, err := cmd.CombinedOutput(); err != nil {
		return goerr.Wrap(err, "failed to resolve revision",
			goerr.V("revision", rev),
			goerr.V("repo_dir", c.repoDir),
			goerr.V("output", strings.TrimSpace(string(output))),
			goerr.T(types.TagRevisionResolution),
		)
	}
	return nil
}

// stderrOf extracts captured stderr from an exec error, if any
func stderrOf(err error) string {
	if exitErr, ok := err.(*exec.ExitError); ok {
		return strings.TrimSpace(string(exitErr.Stderr))
	}
	return ""
}
