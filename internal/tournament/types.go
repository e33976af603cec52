package tournament

import (
	"time"

	"github.com/mauv0809/pickle-boom/internal/club"
)

// Format is whether entrants are individual players or two-player teams.
type Format string

const (
	FormatSingles Format = "singles"
	FormatDoubles Format = "doubles"
)

// Status moves strictly forward: setup, active, completed.
type Status string

const (
	StatusSetup     Status = "setup"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// SeedMode selects how entrants are placed into the first round.
type SeedMode string

const (
	SeedRanked SeedMode = "ranked"
	SeedRandom SeedMode = "random"
)

// MatchFormat is the scoring format announced for every match.
type MatchFormat string

const (
	MatchGame11  MatchFormat = "game_11"
	MatchGame15  MatchFormat = "game_15"
	MatchBestOf3 MatchFormat = "best_of_3"
)

// Settings are informational scoring rules. The engine does not enforce them.
type Settings struct {
	TargetScore      int         `json:"targetScore"`
	WinByTwo         bool        `json:"winByTwo"`
	TimeLimitMinutes int         `json:"timeLimitMinutes,omitempty"`
	MatchFormat      MatchFormat `json:"matchFormat"`
}

// DefaultSettings is a single game to 11, win by two.
func DefaultSettings() Settings {
	return Settings{TargetScore: 11, WinByTwo: true, MatchFormat: MatchGame11}
}

// Team is a fixed doubles pairing.
type Team struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Player1ID      string  `json:"player1Id"`
	Player2ID      string  `json:"player2Id"`
	CombinedRating float64 `json:"combinedRating"`
}

// Tournament is a single-elimination event. Matches holds every bracket
// slot, linked forward through NextMatchID.
type Tournament struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Date         time.Time    `json:"date"`
	Format       Format       `json:"format"`
	Settings     Settings     `json:"settings"`
	Status       Status       `json:"status"`
	SeedMode     SeedMode     `json:"seedMode"`
	Matches      []club.Match `json:"matches"`
	TotalRounds  int          `json:"totalRounds"`
	Participants []string     `json:"participants"`
	Teams        []Team       `json:"teams,omitempty"`
	ChampionID   string       `json:"championId,omitempty"`
	Prediction   string       `json:"prediction,omitempty"`
}

// Active reports whether results are still being accepted.
func (t *Tournament) Active() bool {
	return t != nil && t.Status == StatusActive
}

// Includes reports whether playerID is one of the seeded participants.
func (t *Tournament) Includes(playerID string) bool {
	if t == nil {
		return false
	}
	for _, id := range t.Participants {
		if id == playerID {
			return true
		}
	}
	return false
}

// Match looks up a bracket slot by id.
func (t *Tournament) Match(id string) (club.Match, bool) {
	if i := t.indexOf(id); i >= 0 {
		return t.Matches[i], true
	}
	return club.Match{}, false
}

// Round returns the matches of round r ordered by match index.
func (t *Tournament) Round(r int) []club.Match {
	var out []club.Match
	for _, m := range t.Matches {
		if m.Round == r {
			out = append(out, m)
		}
	}
	return out
}

// Final returns the match without a successor.
func (t *Tournament) Final() (club.Match, bool) {
	for _, m := range t.Matches {
		if m.NextMatchID == "" {
			return m, true
		}
	}
	return club.Match{}, false
}

func (t *Tournament) indexOf(id string) int {
	for i, m := range t.Matches {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy.
func (t *Tournament) Clone() *Tournament {
	if t == nil {
		return nil
	}
	c := *t
	c.Matches = append([]club.Match(nil), t.Matches...)
	c.Participants = append([]string(nil), t.Participants...)
	if t.Teams != nil {
		c.Teams = append([]Team(nil), t.Teams...)
	}
	return &c
}

// Standing is one participant's line in the tournament table.
type Standing struct {
	PlayerID      string `json:"playerId"`
	Name          string `json:"name"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	MatchesPlayed int    `json:"matchesPlayed"`
	MaxRound      int    `json:"maxRound"`
	IsChampion    bool   `json:"isChampion"`
	IsEliminated  bool   `json:"isEliminated"`
}
