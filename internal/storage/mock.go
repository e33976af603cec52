package storage

import (
	"context"
	"sync"

	"github.com/mauv0809/pickle-boom/internal/club"
	"github.com/mauv0809/pickle-boom/internal/notifier"
	"github.com/mauv0809/pickle-boom/internal/session"
	"github.com/mauv0809/pickle-boom/internal/tournament"
)

// Mock is an in-memory Repository for testing. Values are copied in and
// out the way the real store would encode them. It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	Players       []club.Player
	Matches       []club.Match
	Tournament    *tournament.Tournament
	Notifications []notifier.Notification
	Session       *session.Session

	// Spies
	CommitFunc func(changes ...Change) error

	// Call records
	CommitCalls [][]Change
}

var _ Repository = (*Mock)(nil)

// NewMock creates a new empty mock repository.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CommitCalls = nil
}

func (m *Mock) LoadPlayers(context.Context) ([]club.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]club.Player(nil), m.Players...), nil
}

func (m *Mock) SavePlayers(ctx context.Context, players []club.Player) error {
	return m.Commit(ctx, PutPlayers(players))
}

func (m *Mock) LoadMatches(context.Context) ([]club.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]club.Match(nil), m.Matches...), nil
}

func (m *Mock) SaveMatches(ctx context.Context, matches []club.Match) error {
	return m.Commit(ctx, PutMatches(matches))
}

func (m *Mock) LoadTournament(context.Context) (*tournament.Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Tournament.Clone(), nil
}

func (m *Mock) SaveTournament(ctx context.Context, t *tournament.Tournament) error {
	return m.Commit(ctx, PutTournament(t))
}

func (m *Mock) ClearTournament(ctx context.Context) error {
	return m.Commit(ctx, DeleteKey(KeyTournament))
}

func (m *Mock) LoadNotifications(context.Context) ([]notifier.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]notifier.Notification(nil), m.Notifications...), nil
}

func (m *Mock) SaveNotifications(ctx context.Context, feed []notifier.Notification) error {
	return m.Commit(ctx, PutNotifications(feed))
}

func (m *Mock) LoadSession(context.Context) (*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Session == nil {
		return nil, nil
	}
	s := *m.Session
	return &s, nil
}

func (m *Mock) SaveSession(ctx context.Context, s *session.Session) error {
	return m.Commit(ctx, PutSession(s))
}

func (m *Mock) ClearSession(ctx context.Context) error {
	return m.Commit(ctx, DeleteKey(KeySession))
}

func (m *Mock) Commit(_ context.Context, changes ...Change) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CommitCalls = append(m.CommitCalls, changes)
	if m.CommitFunc != nil {
		if err := m.CommitFunc(changes...); err != nil {
			return err
		}
	}
	for _, c := range changes {
		switch c.Key {
		case KeyPlayers:
			m.Players = nil
			if !c.Delete {
				m.Players = append([]club.Player(nil), c.Value.([]club.Player)...)
			}
		case KeyMatches:
			m.Matches = nil
			if !c.Delete {
				m.Matches = append([]club.Match(nil), c.Value.([]club.Match)...)
			}
		case KeyTournament:
			m.Tournament = nil
			if !c.Delete {
				m.Tournament = c.Value.(*tournament.Tournament).Clone()
			}
		case KeyNotifications:
			m.Notifications = nil
			if !c.Delete {
				m.Notifications = append([]notifier.Notification(nil), c.Value.([]notifier.Notification)...)
			}
		case KeySession:
			m.Session = nil
			if !c.Delete {
				s := *c.Value.(*session.Session)
				m.Session = &s
			}
		}
	}
	return nil
}
