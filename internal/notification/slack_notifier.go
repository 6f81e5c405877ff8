// Package notification posts duty notifications to the building's Slack channel.
package notification

import (
	"context"
	"fmt"

	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/contract"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

const (
	KindTurnStart  = "turn_start"
	KindCompletion = "completion"
	KindReminder   = "reminder"
)

// SlackNotifier implements contract.Notifier. Without a channel every
// notification is skipped.
type SlackNotifier struct {
	client    contract.SlackClient
	channelID string
	metrics   contract.MetricsCollector
	log       *zap.Logger
}

var _ contract.Notifier = (*SlackNotifier)(nil)

func NewSlackNotifier(client contract.SlackClient, channelID string, metrics contract.MetricsCollector, log *zap.Logger) *SlackNotifier {
	return &SlackNotifier{
		client:    client,
		channelID: channelID,
		metrics:   metrics,
		log:       log.Named("notifier"),
	}
}

func (n *SlackNotifier) NotifyTurnStart(ctx context.Context, duty *entity.Duty) error {
	return n.post(KindTurnStart, TurnStartMessage(duty))
}

func (n *SlackNotifier) NotifyCompletion(ctx context.Context, duty *entity.Duty) error {
	return n.post(KindCompletion, CompletionMessage(duty))
}

func (n *SlackNotifier) NotifyReminder(ctx context.Context, duty *entity.Duty) error {
	return n.post(KindReminder, ReminderMessage(duty))
}

func (n *SlackNotifier) post(kind, text string) error {
	if n.channelID == "" {
		n.metrics.RecordNotification(kind, "skipped")
		n.log.Debug("no channel configured, skipping notification", zap.String("kind", kind))
		return nil
	}

	_, _, err := n.client.PostMessage(
		n.channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		n.metrics.RecordNotification(kind, "failed")
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	n.metrics.RecordNotification(kind, "sent")
	n.log.Info("notification sent", zap.String("kind", kind), zap.String("channel", n.channelID))
	return nil
}
