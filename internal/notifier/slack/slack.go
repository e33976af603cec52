package slack

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pickle-boom/internal/metrics"
	"github.com/mauv0809/pickle-boom/internal/notifier"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier mirrors the in-app feed to a Slack channel.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	return NewNotifierWithAPI(slack.New(token), channelID, metrics)
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// Notify posts n to the channel.
func (s *Notifier) Notify(ctx context.Context, n notifier.Notification) error {
	_, _, err := s.sendMessage(ctx, formatNotification(n))
	return err
}

func (s *Notifier) sendMessage(ctx context.Context, message slack.Message) (string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncNotificationsFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotificationsSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

var kindIcons = map[notifier.Kind]string{
	notifier.KindInfo:    "🏓",
	notifier.KindSuccess: "🏆",
	notifier.KindWarning: "⚠️",
}

// formatNotification renders a feed entry as a Block Kit message.
func formatNotification(n notifier.Notification) slack.Message {
	icon, ok := kindIcons[n.Type]
	if !ok {
		icon = kindIcons[notifier.KindInfo]
	}
	text := slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("%s %s", icon, n.Message), false, false)
	stamp := slack.NewTextBlockObject("mrkdwn", n.Timestamp.Format("Mon 02 Jan, 15:04"), false, false)
	return slack.NewBlockMessage(
		slack.NewSectionBlock(text, nil, nil),
		slack.NewContextBlock("", stamp),
	)
}
