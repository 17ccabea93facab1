package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify a failed evaluation. Every class is fatal to the run;
// the CI invoker is the surfacing boundary and no retry happens here.
var (
	// TagRevisionResolution marks a base/head revision that could not be
	// resolved, e.g. shallow history missing the base commit.
	TagRevisionResolution = goerr.NewTag("revision_resolution")

	// TagBuild marks a failed artifact build for a unit.
	TagBuild = goerr.NewTag("build")

	// TagPublish marks a failed push to the artifact registry.
	TagPublish = goerr.NewTag("publish")

	// TagDeploy marks a failed deployment trigger.
	TagDeploy = goerr.NewTag("deploy")
)
