package club

import (
	"sort"
	"strings"
)

// Leaderboard returns the players ordered by rating, highest first. When
// query is non-empty only players whose name contains it (case-insensitive)
// are kept; ranks are still computed over the whole roster.
func Leaderboard(players []Player, query string) []Player {
	sorted := make([]Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return sorted
	}
	filtered := make([]Player, 0, len(sorted))
	for _, p := range sorted {
		if strings.Contains(strings.ToLower(p.Name), query) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Rank returns the 1-based position of id on the leaderboard, or 0 if unknown.
func Rank(players []Player, id string) int {
	for i, p := range Leaderboard(players, "") {
		if p.ID == id {
			return i + 1
		}
	}
	return 0
}

// MatchesOf returns the decided matches id took part in, keeping the
// newest-first order of the history.
func MatchesOf(history []Match, id string) []Match {
	var out []Match
	for _, m := range history {
		if m.Decided() && m.Involves(id) {
			out = append(out, m)
		}
	}
	return out
}

// CurrentStreak counts the identical results at the head of a newest-first history.
func CurrentStreak(history []Match, id string) Streak {
	matches := MatchesOf(history, id)
	if len(matches) == 0 {
		return Streak{}
	}
	won := matches[0].Won(id)
	n := 0
	for _, m := range matches {
		if m.Won(id) != won {
			break
		}
		n++
	}
	kind := StreakLoss
	if won {
		kind = StreakWin
	}
	return Streak{Kind: kind, Length: n}
}

// LongestWinStreak returns the longest run of consecutive wins.
func LongestWinStreak(history []Match, id string) int {
	longest, run := 0, 0
	for _, m := range MatchesOf(history, id) {
		if m.Won(id) {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	return longest
}

// HeadToHeadRecords returns id's record against every opponent faced,
// most played first. In doubles both members of the other side count as opponents.
func HeadToHeadRecords(players []Player, history []Match, id string) []HeadToHead {
	byOpponent := map[string]*HeadToHead{}
	var order []string
	for _, m := range MatchesOf(history, id) {
		opponents := m.Side2()
		if m.SideOf(id) == 2 {
			opponents = m.Side1()
		}
		won := m.Won(id)
		for _, opp := range opponents {
			rec, ok := byOpponent[opp]
			if !ok {
				rec = &HeadToHead{OpponentID: opp, OpponentName: opp}
				if p, found := Find(players, opp); found {
					rec.OpponentName = p.Name
				}
				byOpponent[opp] = rec
				order = append(order, opp)
			}
			rec.Played++
			if won {
				rec.Wins++
			} else {
				rec.Losses++
			}
		}
	}

	out := make([]HeadToHead, 0, len(order))
	for _, opp := range order {
		out = append(out, *byOpponent[opp])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Played > out[j].Played
	})
	return out
}

// BuildProfile assembles the derived statistics for one player.
func BuildProfile(players []Player, history []Match, id string, recent int) (Profile, error) {
	p, ok := Find(players, id)
	if !ok {
		return Profile{}, ErrPlayerNotFound
	}
	matches := MatchesOf(history, id)
	if recent > 0 && len(matches) > recent {
		matches = matches[:recent]
	}
	return Profile{
		Player:           p,
		Rank:             Rank(players, id),
		WinRate:          p.WinRate(),
		CurrentStreak:    CurrentStreak(history, id),
		LongestWinStreak: LongestWinStreak(history, id),
		HeadToHead:       HeadToHeadRecords(players, history, id),
		RecentMatches:    matches,
	}, nil
}
