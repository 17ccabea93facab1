package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/drover/pkg/domain/interfaces"
	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/drover/pkg/utils/async"
	"github.com/m-mizutani/goerr/v2"
)

type webhookUseCase struct {
	orchestrator interfaces.OrchestratorUseCase
}

// NewWebhook creates a new instance of WebhookUseCase. Incoming push and
// pull_request events are mapped to triggers and evaluated asynchronously;
// a webhook response cannot wait on container builds.
func NewWebhook(orchestrator interfaces.OrchestratorUseCase) interfaces.WebhookUseCase {
	return &webhookUseCase{
		orchestrator: orchestrator,
	}
}

// ProcessEvent processes a webhook event
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, event *model.WebhookEvent) error {
	logger := ctxlog.From(ctx)

	logger.Info("Processing webhook event",
		"id", event.ID,
		"type", event.Type,
		"action", event.Action,
		"repository", event.Repository,
		"sender", event.Sender,
	)

	if !event.IsSupportedEvent() {
		logger.Warn("Unsupported event received",
			"type", event.Type,
			"action", event.Action,
		)
		return nil
	}

	trigger, ok, err := uc.triggerFrom(event)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	async.Dispatch(ctx, func(ctx context.Context) error {
		_, err := uc.orchestrator.Release(ctx, trigger)
		return err
	})

	return nil
}

// zeroSHA is the revision GitHub reports when a ref had no previous commit
const zeroSHA = "0000000000000000000000000000000000000000"

// triggerFrom maps an event payload to a trigger. The second return value
// is false when the event carries nothing to evaluate (e.g. branch
// deletion).
func (uc *webhookUseCase) triggerFrom(event *model.WebhookEvent) (model.Trigger, bool, error) {
	switch event.Type {
	case model.EventTypePush:
		var push github.PushEvent
		if err := json.Unmarshal(event.RawPayload, &push); err != nil {
			return model.Trigger{}, false, goerr.Wrap(err, "failed to unmarshal push event")
		}

		if push.GetDeleted() {
			return model.Trigger{}, false, nil
		}

		baseRev := push.GetBefore()
		if push.GetCreated() || baseRev == zeroSHA || baseRev == "" {
			// Newly created ref has no before commit; diff against the
			// head's first parent instead.
			baseRev = push.GetAfter() + "~1"
		}

		return model.NewPushTrigger(push.GetRef(), baseRev, push.GetAfter()), true, nil

	case model.EventTypePullRequest:
		var pr github.PullRequestEvent
		if err := json.Unmarshal(event.RawPayload, &pr); err != nil {
			return model.Trigger{}, false, goerr.Wrap(err, "failed to unmarshal pull request event")
		}

		return model.Trigger{
			Kind:    model.TriggerPullRequest,
			Ref:     strings.TrimSpace(pr.GetPullRequest().GetHead().GetRef()),
			BaseRev: pr.GetPullRequest().GetBase().GetSHA(),
			HeadRev: pr.GetPullRequest().GetHead().GetSHA(),
		}, true, nil

	default:
		return model.Trigger{}, false, nil
	}
}
