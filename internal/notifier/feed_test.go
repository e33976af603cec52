package notifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	first := New("Match recorded", KindSuccess, now)
	second := New("Tournament started", KindInfo, now.Add(time.Minute))

	feed := Push(nil, first)
	feed = Push(feed, second)
	require.Len(t, feed, 2)
	assert.Equal(t, second.ID, feed[0].ID, "newest first")
	assert.Equal(t, 2, Unread(feed))

	read, err := MarkRead(feed, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, Unread(read))
	assert.False(t, feed[1].Read, "original feed is untouched")

	_, err = MarkRead(feed, "missing")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}
