package slack

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/drover/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Notifier posts release summaries to a Slack incoming webhook
type Notifier struct {
	webhookURL string
}

// New creates a Slack notifier for the given incoming webhook URL
func New(webhookURL string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
	}
}

// NotifyRelease posts the completed plan to the configured channel
func (n *Notifier) NotifyRelease(ctx context.Context, plan *model.ReleasePlan) error {
	msg := &slack.WebhookMessage{
		Text: formatMessage(plan),
	}

	if err := slack.PostWebhookContext(ctx, n.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post slack webhook")
	}

	return nil
}

// formatMessage renders a release plan as a Slack message
func formatMessage(plan *model.ReleasePlan) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(":ship: Released *%s* to *%s*\n", plan.Version, plan.Environment))
	for _, u := range plan.Units {
		sb.WriteString(fmt.Sprintf("• `%s`\n", u.Name))
	}

	return sb.String()
}
