package storage

import (
	"database/sql"
	"sync"

	"github.com/mauv0809/pickle-boom/internal/club"
	"github.com/mauv0809/pickle-boom/internal/notifier"
	"github.com/mauv0809/pickle-boom/internal/session"
	"github.com/mauv0809/pickle-boom/internal/tournament"
)

// store keeps one encoded blob per aggregate.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Key names a persisted aggregate.
type Key string

const (
	KeyPlayers       Key = "players"
	KeyMatches       Key = "matches"
	KeyTournament    Key = "tournament"
	KeyNotifications Key = "notifications"
	KeySession       Key = "session"
)

// Change is a single aggregate write or delete applied by Commit.
type Change struct {
	Key    Key
	Value  any
	Delete bool
}

func PutPlayers(players []club.Player) Change {
	return Change{Key: KeyPlayers, Value: players}
}

func PutMatches(matches []club.Match) Change {
	return Change{Key: KeyMatches, Value: matches}
}

// PutTournament stores t, or removes the stored tournament when t is nil.
func PutTournament(t *tournament.Tournament) Change {
	if t == nil {
		return DeleteKey(KeyTournament)
	}
	return Change{Key: KeyTournament, Value: t}
}

func PutNotifications(feed []notifier.Notification) Change {
	return Change{Key: KeyNotifications, Value: feed}
}

// PutSession stores s, or logs out when s is nil.
func PutSession(s *session.Session) Change {
	if s == nil {
		return DeleteKey(KeySession)
	}
	return Change{Key: KeySession, Value: s}
}

func DeleteKey(k Key) Change {
	return Change{Key: k, Delete: true}
}
