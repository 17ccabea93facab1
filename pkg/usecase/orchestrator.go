package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/drover/pkg/domain/interfaces"
	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/drover/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type orchestrator struct {
	detector      interfaces.ChangeDetector
	builder       interfaces.ArtifactBuilder
	deployer      interfaces.Deployer
	notifier      interfaces.Notifier
	registry      *model.Registry
	primaryBranch string
}

// Option is a functional option for orchestrator configuration
type Option func(*orchestrator)

// WithDeployer sets the deployment collaborator. Without one, the deploy
// step is skipped with a warning.
func WithDeployer(d interfaces.Deployer) Option {
	return func(o *orchestrator) {
		o.deployer = d
	}
}

// WithNotifier sets the release notifier
func WithNotifier(n interfaces.Notifier) Option {
	return func(o *orchestrator) {
		o.notifier = n
	}
}

// NewOrchestrator creates the change-scoped release orchestrator. Each call
// to Evaluate/Release is a fresh, isolated evaluation; no state is shared
// between runs.
func NewOrchestrator(
	detector interfaces.ChangeDetector,
	builder interfaces.ArtifactBuilder,
	registry *model.Registry,
	primaryBranch string,
	opts ...Option,
) interfaces.OrchestratorUseCase {
	o := &orchestrator{
		detector:      detector,
		builder:       builder,
		registry:      registry,
		primaryBranch: primaryBranch,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Evaluate runs change detection, impact resolution and release planning.
// Tag pushes skip the diff entirely: the plan ignores it and the base
// revision may predate the tag's history.
func (o *orchestrator) Evaluate(ctx context.Context, trigger model.Trigger) (*model.ReleasePlan, error) {
	logger := ctxlog.From(ctx)

	if trigger.Kind == model.TriggerTagPush {
		return PlanRelease(trigger, nil, o.registry, o.primaryBranch), nil
	}

	changes, err := o.detector.Changes(ctx, trigger.BaseRev, trigger.HeadRev)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to detect changed paths",
			goerr.V("base", trigger.BaseRev),
			goerr.V("head", trigger.HeadRev),
		)
	}

	affected := ResolveImpact(changes, o.registry)

	logger.Info("Resolved change impact",
		"changed_paths", changes.Len(),
		"affected_units", unitNames(affected),
	)

	return PlanRelease(trigger, affected, o.registry, o.primaryBranch), nil
}

// Release evaluates the trigger and executes the resulting plan
func (o *orchestrator) Release(ctx context.Context, trigger model.Trigger) (*model.ReleasePlan, error) {
	ctx = ctxlog.With(ctx, ctxlog.From(ctx).With("run_id", uuid.NewString()))
	logger := ctxlog.From(ctx)

	logger.Info("Starting release evaluation",
		"kind", trigger.Kind,
		"ref", trigger.Ref,
		"base", trigger.BaseRev,
		"head", trigger.HeadRev,
	)

	plan, err := o.Evaluate(ctx, trigger)
	if err != nil {
		return nil, err
	}

	if !plan.ShouldExecute() {
		logger.Info("Nothing to release", "reason", plan.Reason)
		return plan, nil
	}

	if err := o.execute(ctx, plan); err != nil {
		return nil, err
	}

	if o.notifier != nil {
		// Notification is best effort, not part of the fatal step chain
		if err := o.notifier.NotifyRelease(ctx, plan); err != nil {
			logger.Warn("Failed to send release notification", "error", err)
		}
	}

	logger.Info("Release complete",
		"version", plan.Version,
		"environment", plan.Environment,
		"units", plan.UnitNames(),
	)

	return plan, nil
}

// execute builds, publishes and deploys each unit in plan order. The first
// failing step aborts the run; there is no retry and no partial
// continuation.
func (o *orchestrator) execute(ctx context.Context, plan *model.ReleasePlan) error {
	logger := ctxlog.From(ctx)

	for _, unit := range plan.Units {
		imageRef := o.builder.ImageRef(unit, plan.Version)

		logger.Info("Building artifact", "unit", unit.Name, "image", imageRef)
		if err := o.builder.Build(ctx, unit, imageRef); err != nil {
			return goerr.Wrap(err, "failed to build artifact",
				goerr.V("unit", unit.Name),
				goerr.T(types.TagBuild),
			)
		}

		logger.Info("Publishing artifact", "unit", unit.Name, "image", imageRef)
		if err := o.builder.Push(ctx, imageRef); err != nil {
			return goerr.Wrap(err, "failed to publish artifact",
				goerr.V("unit", unit.Name),
				goerr.V("image", imageRef),
				goerr.T(types.TagPublish),
			)
		}

		if plan.Environment == model.EnvNone {
			continue
		}
		if o.deployer == nil {
			logger.Warn("No deployer configured, skipping deployment",
				"unit", unit.Name,
				"environment", plan.Environment,
			)
			continue
		}

		logger.Info("Deploying unit",
			"unit", unit.Name,
			"environment", plan.Environment,
			"image", imageRef,
		)
		if err := o.deployer.Deploy(ctx, plan.Environment, unit, imageRef); err != nil {
			return goerr.Wrap(err, "failed to trigger deployment",
				goerr.V("unit", unit.Name),
				goerr.V("environment", plan.Environment),
				goerr.T(types.TagDeploy),
			)
		}
	}

	return nil
}

func unitNames(units []model.Unit) []string {
	names := make([]string, 0, len(units))
	for _, u := range units {
		names = append(names, u.Name)
	}
	return names
}
