package referee

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFuture(t *testing.T) {
	t.Run("delivers the result and runs callbacks before done", func(t *testing.T) {
		var seen string
		f := Go(context.Background(), "fallback", func(context.Context) string { return "hello" }, func(text string) { seen = text })

		text, ok := f.Wait(context.Background())
		assert.True(t, ok)
		assert.Equal(t, "hello", text)
		assert.Equal(t, "hello", seen)
	})

	t.Run("panics resolve to the fallback", func(t *testing.T) {
		f := Go(context.Background(), "fallback", func(context.Context) string { panic("boom") })
		<-f.Done()
		text, _ := f.Wait(context.Background())
		assert.Equal(t, "fallback", text)
	})

	t.Run("cancellation resolves to the fallback", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		f := Go(ctx, "fallback", func(ctx context.Context) string {
			<-ctx.Done()
			return "late"
		})
		cancel()
		text, ok := f.Wait(context.Background())
		assert.True(t, ok)
		assert.Equal(t, "fallback", text)
	})

	t.Run("wait gives up when its own context ends", func(t *testing.T) {
		block := make(chan struct{})
		defer close(block)
		f := Go(context.Background(), "fallback", func(context.Context) string {
			<-block
			return "never"
		})
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, ok := f.Wait(ctx)
		assert.False(t, ok)
	})

	t.Run("resolved", func(t *testing.T) {
		text, ok := Resolved("done").Wait(context.Background())
		assert.True(t, ok)
		assert.Equal(t, "done", text)
	})
}
