package interfaces

import (
	"context"

	"github.com/m-mizutani/drover/pkg/domain/model"
)

// OrchestratorUseCase defines one change-scoped release evaluation
type OrchestratorUseCase interface {
	// Evaluate runs change detection, impact resolution and release
	// planning without executing anything. Used by dry runs.
	Evaluate(ctx context.Context, trigger model.Trigger) (*model.ReleasePlan, error)

	// Release evaluates and then executes the plan: build, publish and
	// deploy each effective unit in registry order.
	Release(ctx context.Context, trigger model.Trigger) (*model.ReleasePlan, error)
}

// WebhookUseCase defines the interface for webhook event processing
type WebhookUseCase interface {
	// ProcessEvent processes a webhook event
	ProcessEvent(ctx context.Context, event *model.WebhookEvent) error
}
