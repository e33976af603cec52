package manager

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pickle-boom/internal/notifier"
	"github.com/mauv0809/pickle-boom/internal/referee"
)

func (m *Manager) Notifications(ctx context.Context) ([]notifier.Notification, error) {
	return m.repo.LoadNotifications(ctx)
}

func (m *Manager) MarkNotificationRead(ctx context.Context, id string) error {
	unlock := m.lock()
	defer unlock()

	feed, err := m.repo.LoadNotifications(ctx)
	if err != nil {
		return err
	}
	feed, err = notifier.MarkRead(feed, id)
	if err != nil {
		return err
	}
	return m.repo.SaveNotifications(ctx, feed)
}

func (m *Manager) ClearNotifications(ctx context.Context) error {
	unlock := m.lock()
	defer unlock()
	return m.repo.SaveNotifications(ctx, nil)
}

// Ask puts a rules question to the AI referee. It blocks for the answer,
// bounded by the AI timeout, and never fails once the question is accepted.
func (m *Manager) Ask(ctx context.Context, history []referee.Turn, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrBlankQuestion
	}
	ctx, cancel := context.WithTimeout(ctx, m.opts.AITimeout)
	defer cancel()

	answer, ok := referee.Go(ctx, referee.RefereeFailed, func(ctx context.Context) string {
		return m.ai.Ask(ctx, history, question)
	}).Wait(ctx)
	if !ok {
		log.Warn("Referee timed out", "timeout", m.opts.AITimeout)
		return referee.RefereeFailed, nil
	}
	return answer, nil
}

// Stats returns the persisted lifetime counters.
func (m *Manager) Stats(ctx context.Context) (map[string]int, error) {
	return m.counters.GetAll()
}
