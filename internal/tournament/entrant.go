package tournament

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/mauv0809/pickle-boom/internal/club"
)

// Entrant is either an individual player or a doubles team. Use Individual
// or Pair to build one.
type Entrant struct {
	player *club.Player
	team   *Team
}

// Individual wraps a player as a singles entrant.
func Individual(p club.Player) Entrant {
	return Entrant{player: &p}
}

// Pair wraps a team as a doubles entrant.
func Pair(t Team) Entrant {
	return Entrant{team: &t}
}

// IsTeam reports whether the entrant is a doubles team.
func (e Entrant) IsTeam() bool {
	return e.team != nil
}

// PrimaryID is the id placed in a match's player slot.
func (e Entrant) PrimaryID() string {
	if e.team != nil {
		return e.team.Player1ID
	}
	if e.player != nil {
		return e.player.ID
	}
	return ""
}

// PartnerID is the id placed in a match's partner slot; empty for singles.
func (e Entrant) PartnerID() string {
	if e.team != nil {
		return e.team.Player2ID
	}
	return ""
}

// Rating is the seeding rating: the player's own or the team's combined rating.
func (e Entrant) Rating() float64 {
	if e.team != nil {
		return e.team.CombinedRating
	}
	if e.player != nil {
		return e.player.Rating
	}
	return 0
}

func (e Entrant) Name() string {
	if e.team != nil {
		return e.team.Name
	}
	if e.player != nil {
		return e.player.Name
	}
	return ""
}

// Members returns the individual player ids behind the entrant.
func (e Entrant) Members() []string {
	if e.team != nil {
		return []string{e.team.Player1ID, e.team.Player2ID}
	}
	if e.player != nil {
		return []string{e.player.ID}
	}
	return nil
}

// NewTeam pairs two players. An empty name defaults to "A & B".
func NewTeam(p1, p2 club.Player, name string) (Team, error) {
	if p1.ID == "" || p2.ID == "" || p1.ID == p2.ID {
		return Team{}, ErrInvalidTeam
	}
	if name == "" {
		name = fmt.Sprintf("%s & %s", p1.Name, p2.Name)
	}
	return Team{
		ID:             uuid.NewString(),
		Name:           name,
		Player1ID:      p1.ID,
		Player2ID:      p2.ID,
		CombinedRating: (p1.Rating + p2.Rating) / 2,
	}, nil
}

// AutoPairTeams shuffles the players and pairs them off in order. With an
// odd count the last player is left out.
func AutoPairTeams(players []club.Player, shuffle func(n int, swap func(i, j int))) ([]Team, error) {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	pool := append([]club.Player(nil), players...)
	shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	teams := make([]Team, 0, len(pool)/2)
	for i := 0; i+1 < len(pool); i += 2 {
		t, err := NewTeam(pool[i], pool[i+1], "")
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, nil
}
