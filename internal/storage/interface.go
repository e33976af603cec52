package storage

import (
	"context"

	"github.com/mauv0809/pickle-boom/internal/club"
	"github.com/mauv0809/pickle-boom/internal/notifier"
	"github.com/mauv0809/pickle-boom/internal/session"
	"github.com/mauv0809/pickle-boom/internal/tournament"
)

// Repository loads and saves the club's aggregates. Every save replaces
// the whole aggregate.
type Repository interface {
	LoadPlayers(ctx context.Context) ([]club.Player, error)
	SavePlayers(ctx context.Context, players []club.Player) error
	LoadMatches(ctx context.Context) ([]club.Match, error)
	SaveMatches(ctx context.Context, matches []club.Match) error
	// LoadTournament returns nil without error when there is none.
	LoadTournament(ctx context.Context) (*tournament.Tournament, error)
	SaveTournament(ctx context.Context, t *tournament.Tournament) error
	ClearTournament(ctx context.Context) error
	LoadNotifications(ctx context.Context) ([]notifier.Notification, error)
	SaveNotifications(ctx context.Context, feed []notifier.Notification) error
	// LoadSession returns nil without error when nobody is logged in.
	LoadSession(ctx context.Context) (*session.Session, error)
	SaveSession(ctx context.Context, s *session.Session) error
	ClearSession(ctx context.Context) error
	// Commit applies several changes in one transaction.
	Commit(ctx context.Context, changes ...Change) error
}
