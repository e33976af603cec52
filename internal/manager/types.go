package manager

import (
	"errors"
	"sync"
	"time"

	"github.com/mauv0809/pickle-boom/internal/metrics"
	"github.com/mauv0809/pickle-boom/internal/notifier"
	"github.com/mauv0809/pickle-boom/internal/pubsub"
	"github.com/mauv0809/pickle-boom/internal/referee"
	"github.com/mauv0809/pickle-boom/internal/storage"
	"github.com/mauv0809/pickle-boom/internal/tournament"
)

var (
	ErrTournamentActive         = errors.New("a tournament is already in progress")
	ErrPlayerInActiveTournament = errors.New("player is entered in the active tournament")
	ErrConfirmationRequired     = errors.New("this action needs confirmation")
	ErrBlankQuestion            = errors.New("question cannot be blank")
)

// Manager runs every club operation: it loads the aggregates, applies the
// pure club and tournament logic, and saves the result in one commit.
// Operations are serialized.
type Manager struct {
	mu       sync.Mutex
	pending  sync.WaitGroup
	repo     storage.Repository
	ai       referee.Generator
	notifier notifier.Notifier
	pubsub   pubsub.PubSubClient
	metrics  metrics.Metrics
	counters metrics.CounterStore
	gen      *tournament.Generator
	opts     Options
}

// Options tune the Manager. Zero values fall back to defaults.
type Options struct {
	AdminPassword string
	AITimeout     time.Duration
	Generator     *tournament.Generator
	Now           func() time.Time
}

// LoginRequest logs in either the administrator (Password) or a player
// who picked their own record (PlayerID).
type LoginRequest struct {
	Password string `json:"password,omitempty"`
	PlayerID string `json:"playerId,omitempty"`
}

// CasualMatch is a finished match played outside any tournament.
type CasualMatch struct {
	Player1ID  string `json:"player1Id"`
	Player2ID  string `json:"player2Id"`
	Partner1ID string `json:"partner1Id,omitempty"`
	Partner2ID string `json:"partner2Id,omitempty"`
	Score1     int    `json:"score1"`
	Score2     int    `json:"score2"`
}

// TeamRequest names a doubles pairing for a new tournament.
type TeamRequest struct {
	Name      string `json:"name,omitempty"`
	Player1ID string `json:"player1Id"`
	Player2ID string `json:"player2Id"`
}

// StartRequest describes a tournament to start. For singles PlayerIDs lists
// the entrants. For doubles either Teams is given, or AutoPair pairs
// PlayerIDs at random.
type StartRequest struct {
	Name      string              `json:"name"`
	Format    tournament.Format   `json:"format"`
	SeedMode  tournament.SeedMode `json:"seedMode"`
	Settings  tournament.Settings `json:"settings"`
	PlayerIDs []string            `json:"playerIds,omitempty"`
	Teams     []TeamRequest       `json:"teams,omitempty"`
	AutoPair  bool                `json:"autoPair,omitempty"`
}
