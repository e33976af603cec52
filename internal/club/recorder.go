package club

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pickle-boom/internal/rating"
)

// Validate checks the parts of a finished match that do not depend on the roster.
func Validate(m Match) error {
	if m.Player1ID == "" || m.Player2ID == "" {
		return ErrMissingPlayer
	}
	if m.Score1 < 0 || m.Score2 < 0 {
		return ErrNegativeScore
	}
	if m.Score1 == m.Score2 {
		return ErrDrawNotAllowed
	}
	if hasDuplicates(append(m.Side1(), m.Side2()...)) {
		return ErrDuplicatePlayer
	}
	if m.WinnerID != "" && m.WinnerID != WinnerOf(m) {
		return ErrInvalidWinner
	}
	return nil
}

// WinnerOf returns the id in the slot with the strictly greater score.
func WinnerOf(m Match) string {
	if m.Score1 > m.Score2 {
		return m.Player1ID
	}
	return m.Player2ID
}

// Record appends a finished match to the history and applies the rating
// update to the two primary slots. It returns new slices and never
// modifies the ones passed in. The history is kept newest first.
//
// The rating update is skipped, while the match is still recorded, when
// either primary player is missing from the roster.
func Record(players []Player, history []Match, m Match) ([]Player, []Match, error) {
	if err := Validate(m); err != nil {
		return nil, nil, err
	}
	if m.WinnerID == "" {
		m.WinnerID = WinnerOf(m)
	}

	nextHistory := make([]Match, 0, len(history)+1)
	nextHistory = append(nextHistory, m)
	nextHistory = append(nextHistory, history...)

	nextPlayers := make([]Player, len(players))
	copy(nextPlayers, players)

	if err := applyRating(nextPlayers, m); err != nil {
		log.Warn("Skipping rating update", "matchID", m.ID, "error", err)
		return nextPlayers, nextHistory, nil
	}
	return nextPlayers, nextHistory, nil
}

// applyRating moves the two primary slots against each other. Partners in a
// doubles match keep their rating and counters.
func applyRating(players []Player, m Match) error {
	a := IndexOf(players, m.Player1ID)
	if a < 0 {
		return fmt.Errorf("player %s: %w", m.Player1ID, ErrPlayerNotFound)
	}
	b := IndexOf(players, m.Player2ID)
	if b < 0 {
		return fmt.Errorf("player %s: %w", m.Player2ID, ErrPlayerNotFound)
	}

	s1, s2 := rating.Update(players[a].standing(), players[b].standing(), m.WinnerID == m.Player1ID)
	players[a] = players[a].withStanding(s1)
	players[b] = players[b].withStanding(s2)
	log.Debug("Applied rating update", "matchID", m.ID, "player1", s1.Rating, "player2", s2.Rating)
	return nil
}

func hasDuplicates(ids []string) bool {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}

// IndexOf returns the position of the player with the given id, or -1.
func IndexOf(players []Player, id string) int {
	for i, p := range players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the player with the given id.
func Find(players []Player, id string) (Player, bool) {
	i := IndexOf(players, id)
	if i < 0 {
		return Player{}, false
	}
	return players[i], true
}
