package club

import (
	"strings"

	"github.com/google/uuid"
	"github.com/mauv0809/pickle-boom/internal/rating"
)

// NewPlayer validates the registration input and returns a fresh player.
func NewPlayer(name string, initial float64) (Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Player{}, ErrBlankName
	}
	if !rating.InRange(initial) {
		return Player{}, ErrRatingOutOfRange
	}
	return Player{
		ID:     uuid.NewString(),
		Name:   name,
		Rating: rating.Round3(initial),
	}, nil
}

// SetRating returns a copy of players with id's rating replaced.
func SetRating(players []Player, id string, r float64) ([]Player, error) {
	if !rating.InRange(r) {
		return nil, ErrRatingOutOfRange
	}
	i := IndexOf(players, id)
	if i < 0 {
		return nil, ErrPlayerNotFound
	}
	out := make([]Player, len(players))
	copy(out, players)
	out[i].Rating = rating.Round3(r)
	return out, nil
}

// Remove returns a copy of players without id.
func Remove(players []Player, id string) ([]Player, error) {
	i := IndexOf(players, id)
	if i < 0 {
		return nil, ErrPlayerNotFound
	}
	out := make([]Player, 0, len(players)-1)
	out = append(out, players[:i]...)
	return append(out, players[i+1:]...), nil
}

// MigrateRatings converts any ratings stored on the legacy scale in place.
// It reports whether anything changed.
func MigrateRatings(players []Player) bool {
	changed := false
	for i := range players {
		if r := rating.MigrateLegacy(players[i].Rating); r != players[i].Rating {
			players[i].Rating = r
			changed = true
		}
	}
	return changed
}
