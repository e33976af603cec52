package tournament

import (
	"sort"

	"github.com/mauv0809/pickle-boom/internal/club"
)

// Standings derives the table for t from its matches. Participants missing
// from the roster are left out. Partners are credited like primary players,
// and both members of the winning team are flagged as champion.
//
// Order: champion first, then deepest round reached, then wins. Remaining
// ties keep participant order.
func Standings(t *Tournament, players []club.Player) []Standing {
	if t == nil {
		return nil
	}
	champions := map[string]bool{}
	if t.ChampionID != "" {
		champions[t.ChampionID] = true
		if final, ok := t.Final(); ok && final.Decided() {
			for _, id := range append(final.Side1(), final.Side2()...) {
				if final.Won(id) {
					champions[id] = true
				}
			}
		}
	}

	out := make([]Standing, 0, len(t.Participants))
	for _, id := range t.Participants {
		p, ok := club.Find(players, id)
		if !ok {
			continue
		}
		s := Standing{PlayerID: id, Name: p.Name, IsChampion: champions[id]}
		for _, m := range t.Matches {
			if !m.Involves(id) {
				continue
			}
			s.MaxRound = max(s.MaxRound, m.Round)
			if !m.Decided() {
				continue
			}
			s.MatchesPlayed++
			if m.Won(id) {
				s.Wins++
			} else {
				s.Losses++
			}
		}
		s.IsEliminated = s.Losses > 0
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsChampion != b.IsChampion {
			return a.IsChampion
		}
		if a.MaxRound != b.MaxRound {
			return a.MaxRound > b.MaxRound
		}
		return a.Wins > b.Wins
	})
	return out
}
