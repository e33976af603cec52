package notifier

import "time"

// Kind is the severity shown next to a notification.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
)

// Notification is one entry of the in-app feed.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      Kind      `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}
