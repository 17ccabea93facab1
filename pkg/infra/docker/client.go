package docker

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// lockFileName is the dependency manifest hashed for the build cache tag
const lockFileName = "requirements.txt"

// Client builds and publishes container images by shelling out to docker.
// Builds run from the monorepo root so that shared/ is part of the build
// context for every unit.
type Client struct {
	registryHost string
	contextDir   string
}

// New creates a docker client publishing to registryHost, building from
// contextDir (the monorepo checkout root).
func New(registryHost, contextDir string) *Client {
	return &Client{
		registryHost: registryHost,
		contextDir:   contextDir,
	}
}

// ImageRef returns the remote artifact reference for a unit at a version
func (c *Client) ImageRef(unit model.Unit, version string) string {
	return fmt.Sprintf("%s/%s:%s", c.registryHost, unit.Name, version)
}

// Build constructs the unit's image and tags it with imageRef. When the
// unit carries a dependency lock file, its hash selects a content-addressed
// cache image; a cache miss only costs build time, never correctness.
func (c *Client) Build(ctx context.Context, unit model.Unit, imageRef string) error {
	args := c.buildArgs(ctx, unit, imageRef)

	cmd := exec.CommandContext(ctx, "docker", args...)
	cmd.Dir = c.contextDir
	if output, err := cmd.CombinedOutput(); err != nil {
		return goerr.Wrap(err, "docker build failed",
			goerr.V("unit", unit.Name),
			goerr.V("image", imageRef),
			goerr.V("output", tail(string(output), 2048)),
		)
	}

	return nil
}

// Push publishes the image to the configured registry
func (c *Client) Push(ctx context.Context, imageRef string) error {
	cmd := exec.CommandContext(ctx, "docker", "push", imageRef)
	if output, err := cmd.CombinedOutput(); err != nil {
		return goerr.Wrap(err, "docker push failed",
			goerr.V("image", imageRef),
			goerr.V("output", tail(string(output), 2048)),
		)
	}

	return nil
}

// buildArgs assembles the docker build argument list for a unit
func (c *Client) buildArgs(ctx context.Context, unit model.Unit, imageRef string) []string {
	args := []string{
		"build",
		"-f", filepath.Join(unit.Path, "Dockerfile"),
		"-t", imageRef,
	}

	if hash, ok := c.lockHash(ctx, unit); ok {
		cacheRef := fmt.Sprintf("%s/%s:cache-%s", c.registryHost, unit.Name, hash)
		args = append(args, "--cache-from", cacheRef)
	}

	return append(args, ".")
}

// lockHash returns the truncated sha256 of the unit's dependency lock file
func (c *Client) lockHash(ctx context.Context, unit model.Unit) (string, bool) {
	data, err := os.ReadFile(filepath.Join(c.contextDir, unit.Path, lockFileName))
	if err != nil {
		ctxlog.From(ctx).Debug("no dependency lock file for unit",
			"unit", unit.Name, "error", err)
		return "", false
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:12], true
}

// tail returns at most n trailing bytes of s, for bounded error payloads
func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
