package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pickle-boom/internal/club"
	"github.com/mauv0809/pickle-boom/internal/notifier"
	"github.com/mauv0809/pickle-boom/internal/session"
	"github.com/mauv0809/pickle-boom/internal/tournament"
)

var _ Repository = (*store)(nil)

// New creates a Repository on top of an initialized database.
func New(db *sql.DB) Repository {
	return &store{db: db}
}

// LoadPlayers also converts ratings left on the legacy 1000-based scale.
func (s *store) LoadPlayers(ctx context.Context) ([]club.Player, error) {
	var players []club.Player
	if _, err := s.load(ctx, KeyPlayers, &players); err != nil {
		return nil, err
	}
	if club.MigrateRatings(players) {
		log.Info("Migrated legacy player ratings", "count", len(players))
	}
	return players, nil
}

func (s *store) SavePlayers(ctx context.Context, players []club.Player) error {
	return s.Commit(ctx, PutPlayers(players))
}

func (s *store) LoadMatches(ctx context.Context) ([]club.Match, error) {
	var matches []club.Match
	if _, err := s.load(ctx, KeyMatches, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (s *store) SaveMatches(ctx context.Context, matches []club.Match) error {
	return s.Commit(ctx, PutMatches(matches))
}

func (s *store) LoadTournament(ctx context.Context) (*tournament.Tournament, error) {
	var t tournament.Tournament
	found, err := s.load(ctx, KeyTournament, &t)
	if err != nil || !found {
		return nil, err
	}
	return &t, nil
}

func (s *store) SaveTournament(ctx context.Context, t *tournament.Tournament) error {
	return s.Commit(ctx, PutTournament(t))
}

func (s *store) ClearTournament(ctx context.Context) error {
	return s.Commit(ctx, DeleteKey(KeyTournament))
}

func (s *store) LoadNotifications(ctx context.Context) ([]notifier.Notification, error) {
	var feed []notifier.Notification
	if _, err := s.load(ctx, KeyNotifications, &feed); err != nil {
		return nil, err
	}
	return feed, nil
}

func (s *store) SaveNotifications(ctx context.Context, feed []notifier.Notification) error {
	return s.Commit(ctx, PutNotifications(feed))
}

func (s *store) LoadSession(ctx context.Context) (*session.Session, error) {
	var sess session.Session
	found, err := s.load(ctx, KeySession, &sess)
	if err != nil || !found {
		return nil, err
	}
	return &sess, nil
}

func (s *store) SaveSession(ctx context.Context, sess *session.Session) error {
	return s.Commit(ctx, PutSession(sess))
}

func (s *store) ClearSession(ctx context.Context) error {
	return s.Commit(ctx, DeleteKey(KeySession))
}

// Commit writes every change inside one transaction. Either all of them
// land or none do.
func (s *store) Commit(ctx context.Context, changes ...Change) error {
	if len(changes) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().Unix()
	for _, c := range changes {
		if c.Delete {
			if _, err := tx.ExecContext(ctx, "DELETE FROM blobs WHERE key = ?", string(c.Key)); err != nil {
				return fmt.Errorf("failed to delete %s: %w", c.Key, err)
			}
			continue
		}
		data, err := encode(c.Value)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", c.Key, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;
		`, string(c.Key), data, now)
		if err != nil {
			return fmt.Errorf("failed to save %s: %w", c.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	log.Debug("Committed aggregates", "count", len(changes))
	return nil
}

func (s *store) load(ctx context.Context, key Key, v any) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var data []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM blobs WHERE key = ?", string(key)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if err := decode(data, v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}
