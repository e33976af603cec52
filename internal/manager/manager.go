package manager

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pickle-boom/internal/metrics"
	"github.com/mauv0809/pickle-boom/internal/notifier"
	"github.com/mauv0809/pickle-boom/internal/pubsub"
	"github.com/mauv0809/pickle-boom/internal/referee"
	"github.com/mauv0809/pickle-boom/internal/storage"
	"github.com/mauv0809/pickle-boom/internal/tournament"
)

const (
	defaultAdminPassword = "admin"
	defaultAITimeout     = 30 * time.Second
)

var _ Service = (*Manager)(nil)

// New creates a Manager.
func New(repo storage.Repository, ai referee.Generator, notif notifier.Notifier, ps pubsub.PubSubClient, m metrics.Metrics, counters metrics.CounterStore, opts Options) *Manager {
	if opts.AdminPassword == "" {
		opts.AdminPassword = defaultAdminPassword
	}
	if opts.AITimeout <= 0 {
		opts.AITimeout = defaultAITimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	gen := opts.Generator
	if gen == nil {
		gen = tournament.NewGenerator()
		gen.Now = opts.Now
	}
	return &Manager{
		repo:     repo,
		ai:       ai,
		notifier: notif,
		pubsub:   ps,
		metrics:  m,
		counters: counters,
		gen:      gen,
		opts:     opts,
	}
}

// Wait blocks until background work (text generation, Slack mirroring)
// started so far has finished.
func (m *Manager) Wait() {
	m.pending.Wait()
}

// lock serializes a state-changing operation and reports its duration.
func (m *Manager) lock() func() {
	m.mu.Lock()
	start := time.Now()
	return func() {
		m.metrics.ObserveOperationDuration(time.Since(start).Seconds())
		m.mu.Unlock()
	}
}

// push adds a notification to feed and returns the new feed together with
// the entry, so the caller can commit first and mirror afterwards.
func (m *Manager) push(feed []notifier.Notification, message string, kind notifier.Kind) ([]notifier.Notification, notifier.Notification) {
	n := notifier.New(message, kind, m.opts.Now())
	return notifier.Push(feed, n), n
}

// mirror forwards committed notifications to the outside channel in the background.
func (m *Manager) mirror(ns ...notifier.Notification) {
	for _, n := range ns {
		m.pending.Add(1)
		go func(n notifier.Notification) {
			defer m.pending.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := m.notifier.Notify(ctx, n); err != nil {
				log.Warn("Failed to mirror notification", "notificationID", n.ID, "error", err)
			}
		}(n)
	}
}

func (m *Manager) publish(topic pubsub.EventType, data any) {
	if err := m.pubsub.SendMessage(topic, data); err != nil {
		log.Warn("Failed to publish event", "topic", topic, "error", err)
	}
}

// generate runs fn in the background under the AI timeout. onDone runs
// with the text (or fallback) before the Future resolves.
func (m *Manager) generate(fallback string, fn func(ctx context.Context) string, onDone func(text string)) *referee.Future {
	m.pending.Add(1)
	ctx, cancel := context.WithTimeout(context.Background(), m.opts.AITimeout)
	return referee.Go(ctx, fallback, fn, func(text string) {
		defer m.pending.Done()
		defer cancel()
		if onDone != nil {
			onDone(text)
		}
	})
}
