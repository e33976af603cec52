package club

import (
	"time"

	"github.com/mauv0809/pickle-boom/internal/rating"
)

// Player is a club member with a rating and a running win/loss record.
type Player struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Rating        float64 `json:"rating"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	MatchesPlayed int     `json:"matchesPlayed"`
}

// WinRate is the share of matches won, as a percentage.
func (p Player) WinRate() float64 {
	if p.MatchesPlayed == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.MatchesPlayed) * 100
}

func (p Player) standing() rating.Standing {
	return rating.Standing{
		Rating:        p.Rating,
		Wins:          p.Wins,
		Losses:        p.Losses,
		MatchesPlayed: p.MatchesPlayed,
	}
}

func (p Player) withStanding(s rating.Standing) Player {
	p.Rating = s.Rating
	p.Wins = s.Wins
	p.Losses = s.Losses
	p.MatchesPlayed = s.MatchesPlayed
	return p
}

// Match is a single contest, either casual or part of a tournament bracket.
// Partner ids are set for doubles only. WinnerID stays empty until decided.
type Match struct {
	ID           string    `json:"id"`
	TournamentID string    `json:"tournamentId,omitempty"`
	Player1ID    string    `json:"player1Id"`
	Player2ID    string    `json:"player2Id"`
	Partner1ID   string    `json:"partner1Id,omitempty"`
	Partner2ID   string    `json:"partner2Id,omitempty"`
	Score1       int       `json:"score1"`
	Score2       int       `json:"score2"`
	Date         time.Time `json:"date"`
	WinnerID     string    `json:"winnerId,omitempty"`
	Summary      string    `json:"summary,omitempty"`
	Round        int       `json:"round,omitempty"`
	MatchIndex   int       `json:"matchIndex"`
	NextMatchID  string    `json:"nextMatchId,omitempty"`
}

// Decided reports whether a winner has been recorded.
func (m Match) Decided() bool {
	return m.WinnerID != ""
}

// IsDoubles reports whether either side carries a partner.
func (m Match) IsDoubles() bool {
	return m.Partner1ID != "" || m.Partner2ID != ""
}

// Side1 returns the non-empty ids occupying the first slot.
func (m Match) Side1() []string {
	return nonEmpty(m.Player1ID, m.Partner1ID)
}

// Side2 returns the non-empty ids occupying the second slot.
func (m Match) Side2() []string {
	return nonEmpty(m.Player2ID, m.Partner2ID)
}

// Involves reports whether id occupies any slot of the match.
func (m Match) Involves(id string) bool {
	if id == "" {
		return false
	}
	return m.Player1ID == id || m.Player2ID == id || m.Partner1ID == id || m.Partner2ID == id
}

// SideOf returns 1 or 2 for the slot id plays in, or 0 when absent.
func (m Match) SideOf(id string) int {
	switch {
	case id == "":
		return 0
	case m.Player1ID == id || m.Partner1ID == id:
		return 1
	case m.Player2ID == id || m.Partner2ID == id:
		return 2
	}
	return 0
}

// Won reports whether id was on the winning side of a decided match.
func (m Match) Won(id string) bool {
	if !m.Decided() {
		return false
	}
	side := m.SideOf(id)
	return (side == 1 && m.WinnerID == m.Player1ID) || (side == 2 && m.WinnerID == m.Player2ID)
}

func nonEmpty(ids ...string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}

// HeadToHead is a player's record against one opponent.
type HeadToHead struct {
	OpponentID   string `json:"opponentId"`
	OpponentName string `json:"opponentName"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	Played       int    `json:"played"`
}

// Streak is the run of identical results ending at the most recent match.
type Streak struct {
	Kind   string `json:"kind"`
	Length int    `json:"length"`
}

const (
	StreakWin  = "W"
	StreakLoss = "L"
)

// Profile collects the derived statistics shown for a single player.
type Profile struct {
	Player           Player       `json:"player"`
	Rank             int          `json:"rank"`
	WinRate          float64      `json:"winRate"`
	CurrentStreak    Streak       `json:"currentStreak"`
	LongestWinStreak int          `json:"longestWinStreak"`
	HeadToHead       []HeadToHead `json:"headToHead"`
	RecentMatches    []Match      `json:"recentMatches"`
}
