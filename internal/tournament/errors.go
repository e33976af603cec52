package tournament

import (
	"errors"

	"github.com/mauv0809/pickle-boom/internal/club"
)

var (
	ErrNotEnoughEntrants   = errors.New("at least two entrants are required")
	ErrBlankName           = errors.New("tournament name cannot be blank")
	ErrUnknownFormat       = errors.New("unknown tournament format")
	ErrUnknownSeedMode     = errors.New("unknown seeding mode")
	ErrFormatMismatch      = errors.New("entrant does not match the tournament format")
	ErrDuplicateEntrant    = errors.New("a player can only be entered once")
	ErrInvalidTeam         = errors.New("a team needs two different players")
	ErrNoTournament        = errors.New("no tournament")
	ErrTournamentCompleted = errors.New("tournament is already completed")
	ErrMatchNotFound       = errors.New("match not found")
	ErrMatchAlreadyDecided = errors.New("match already has a winner")
	ErrMatchNotReady       = errors.New("match is still waiting for its players")
	ErrNegativeScore       = errors.New("scores cannot be negative")
	ErrDrawNotAllowed      = club.ErrDrawNotAllowed
)
