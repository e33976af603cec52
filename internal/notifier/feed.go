package notifier

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errors.New("notification not found")

// New builds an unread notification stamped at now.
func New(message string, kind Kind, now time.Time) Notification {
	return Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Type:      kind,
		Timestamp: now,
	}
}

// Push returns a new feed with n in front.
func Push(feed []Notification, n Notification) []Notification {
	out := make([]Notification, 0, len(feed)+1)
	out = append(out, n)
	return append(out, feed...)
}

// MarkRead returns a new feed with the notification id flagged as read.
func MarkRead(feed []Notification, id string) ([]Notification, error) {
	out := append([]Notification(nil), feed...)
	for i := range out {
		if out[i].ID == id {
			out[i].Read = true
			return out, nil
		}
	}
	return nil, ErrNotificationNotFound
}

// Unread counts the notifications not yet read.
func Unread(feed []Notification) int {
	n := 0
	for _, item := range feed {
		if !item.Read {
			n++
		}
	}
	return n
}
