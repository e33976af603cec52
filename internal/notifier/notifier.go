package notifier

import "context"

// Notifier mirrors feed entries to an outside channel.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Noop drops every notification. It is used when no channel is configured.
type Noop struct{}

func (Noop) Notify(context.Context, Notification) error { return nil }
