package referee

import (
	"context"

	"github.com/charmbracelet/log"
)

// Future is the pending result of one text generation call.
type Future struct {
	done chan struct{}
	text string
}

// Go runs fn in the background. If fn panics, returns nothing, or ctx ends
// first, the result is fallback. Callbacks run with the result before Done
// is closed.
func Go(ctx context.Context, fallback string, fn func(ctx context.Context) string, onDone ...func(text string)) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.text = run(ctx, fallback, fn)
		for _, cb := range onDone {
			cb(f.text)
		}
	}()
	return f
}

func run(ctx context.Context, fallback string, fn func(ctx context.Context) string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("Text generation panicked", "panic", r)
			text = fallback
		}
	}()
	text = fn(ctx)
	if text == "" || ctx.Err() != nil {
		return fallback
	}
	return text
}

// Resolved returns a Future that is already complete.
func Resolved(text string) *Future {
	f := &Future{done: make(chan struct{}), text: text}
	close(f.done)
	return f
}

// Done is closed once the result and all callbacks are in.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks for the result. It returns false if ctx ends first.
func (f *Future) Wait(ctx context.Context) (string, bool) {
	select {
	case <-f.done:
		return f.text, true
	case <-ctx.Done():
		return "", false
	}
}
