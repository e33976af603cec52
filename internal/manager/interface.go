package manager

import (
	"context"

	"github.com/mauv0809/pickle-boom/internal/club"
	"github.com/mauv0809/pickle-boom/internal/notifier"
	"github.com/mauv0809/pickle-boom/internal/referee"
	"github.com/mauv0809/pickle-boom/internal/session"
	"github.com/mauv0809/pickle-boom/internal/tournament"
)

// Service is the set of club operations exposed to the outside.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*session.Session, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (*session.Session, error)

	Players(ctx context.Context, query string) ([]club.Player, error)
	Profile(ctx context.Context, playerID string) (club.Profile, error)
	RegisterPlayer(ctx context.Context, name string, rating float64) (club.Player, error)
	UpdateRating(ctx context.Context, playerID string, rating float64) (club.Player, error)
	DeletePlayer(ctx context.Context, playerID string, confirm bool) error
	DeleteAll(ctx context.Context, confirm bool) error

	Matches(ctx context.Context) ([]club.Match, error)
	RecordMatch(ctx context.Context, req CasualMatch) (club.Match, *referee.Future, error)

	Tournament(ctx context.Context) (*tournament.Tournament, error)
	StartTournament(ctx context.Context, req StartRequest) (*tournament.Tournament, *referee.Future, error)
	SubmitScore(ctx context.Context, matchID string, score1, score2 int) (*tournament.Tournament, error)
	ResetTournament(ctx context.Context, confirm bool) error
	Standings(ctx context.Context) ([]tournament.Standing, error)

	Notifications(ctx context.Context) ([]notifier.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	ClearNotifications(ctx context.Context) error

	Ask(ctx context.Context, history []referee.Turn, question string) (string, error)
	Stats(ctx context.Context) (map[string]int, error)
}
