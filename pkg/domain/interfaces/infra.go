package interfaces

import (
	"context"

	"github.com/m-mizutani/drover/pkg/domain/model"
)

// ChangeDetector enumerates the paths touched between two revisions
type ChangeDetector interface {
	// Changes returns the deduplicated set of paths modified between base
	// and head, covering additions, deletions and modifications. Fails
	// when either revision cannot be resolved.
	Changes(ctx context.Context, baseRev, headRev string) (model.ChangeSet, error)
}

// ArtifactBuilder builds and publishes container artifacts for units
type ArtifactBuilder interface {
	// ImageRef returns the remote artifact reference for a unit at a version
	ImageRef(unit model.Unit, version string) string

	// Build constructs the container artifact and tags it with imageRef
	Build(ctx context.Context, unit model.Unit, imageRef string) error

	// Push publishes the artifact to the configured registry
	Push(ctx context.Context, imageRef string) error
}

// Deployer triggers a deployment of a published artifact. Treated as an
// opaque collaborator; credentials and cluster access are its concern.
type Deployer interface {
	Deploy(ctx context.Context, env model.Environment, unit model.Unit, imageRef string) error
}

// Notifier announces a completed release. Failures are reported to the
// caller but are not part of the fatal build/publish/deploy chain.
type Notifier interface {
	NotifyRelease(ctx context.Context, plan *model.ReleasePlan) error
}
