package tournament

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/pickle-boom/internal/club"
)

// Request describes the tournament to create.
type Request struct {
	Name     string
	Format   Format
	Settings Settings
	Entrants []Entrant
	SeedMode SeedMode
}

// Generator builds brackets. The hooks are replaceable so tests can pin
// the shuffle, the clock and the ids.
type Generator struct {
	Shuffle func(n int, swap func(i, j int))
	Now     func() time.Time
	NewID   func() string
}

// NewGenerator returns a Generator backed by math/rand, the wall clock and uuids.
func NewGenerator() *Generator {
	return &Generator{
		Shuffle: rand.Shuffle,
		Now:     time.Now,
		NewID:   uuid.NewString,
	}
}

// MatchID is the deterministic id of round r (1-based), match m (0-based).
func MatchID(tournamentID string, r, m int) string {
	return fmt.Sprintf("%s_r%d_m%d", tournamentID, r, m)
}

// Generate validates the request and returns an active tournament with the
// full bracket laid out. Entrants beyond the largest power of two are dropped
// after ordering.
func (g *Generator) Generate(req Request) (*Tournament, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	size := BracketSize(len(req.Entrants))
	if size < 2 {
		return nil, ErrNotEnoughEntrants
	}

	seeded := g.order(req.Entrants, req.SeedMode)[:size]
	if req.SeedMode == SeedRanked {
		placed := make([]Entrant, size)
		for pos, seed := range SeedOrder(size) {
			placed[pos] = seeded[seed-1]
		}
		seeded = placed
	}

	id := g.NewID()
	now := g.Now()
	t := &Tournament{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Date:        now,
		Format:      req.Format,
		Settings:    req.Settings,
		Status:      StatusActive,
		SeedMode:    req.SeedMode,
		TotalRounds: Rounds(size),
	}
	if t.Settings == (Settings{}) {
		t.Settings = DefaultSettings()
	}

	for _, e := range seeded {
		t.Participants = append(t.Participants, e.Members()...)
		if e.IsTeam() {
			t.Teams = append(t.Teams, *e.team)
		}
	}

	for r := 1; r <= t.TotalRounds; r++ {
		count := size >> r
		for m := 0; m < count; m++ {
			match := club.Match{
				ID:           MatchID(id, r, m),
				TournamentID: id,
				Date:         now,
				Round:        r,
				MatchIndex:   m,
			}
			if r < t.TotalRounds {
				match.NextMatchID = MatchID(id, r+1, m/2)
			}
			if r == 1 {
				a, b := seeded[2*m], seeded[2*m+1]
				match.Player1ID, match.Partner1ID = a.PrimaryID(), a.PartnerID()
				match.Player2ID, match.Partner2ID = b.PrimaryID(), b.PartnerID()
			}
			t.Matches = append(t.Matches, match)
		}
	}

	log.Info("Generated bracket", "tournamentID", id, "format", t.Format, "seedMode", t.SeedMode, "size", size, "dropped", len(req.Entrants)-size, "rounds", t.TotalRounds)
	return t, nil
}

func (g *Generator) order(entrants []Entrant, mode SeedMode) []Entrant {
	out := append([]Entrant(nil), entrants...)
	switch mode {
	case SeedRandom:
		shuffle := g.Shuffle
		if shuffle == nil {
			shuffle = rand.Shuffle
		}
		shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating() > out[j].Rating()
		})
	}
	return out
}

func validate(req Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrBlankName
	}
	switch req.Format {
	case FormatSingles, FormatDoubles:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, req.Format)
	}
	switch req.SeedMode {
	case SeedRanked, SeedRandom:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSeedMode, req.SeedMode)
	}
	if len(req.Entrants) < 2 {
		return ErrNotEnoughEntrants
	}

	seen := map[string]struct{}{}
	for _, e := range req.Entrants {
		if e.IsTeam() != (req.Format == FormatDoubles) {
			return fmt.Errorf("%w: %s", ErrFormatMismatch, e.Name())
		}
		members := e.Members()
		if len(members) == 0 {
			return ErrFormatMismatch
		}
		for _, id := range members {
			if id == "" {
				return ErrInvalidTeam
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf("%w: %s", ErrDuplicateEntrant, id)
			}
			seen[id] = struct{}{}
		}
	}
	return nil
}
