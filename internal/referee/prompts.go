package referee

import (
	"fmt"
	"strings"

	"github.com/mauv0809/pickle-boom/internal/club"
)

func commentaryPrompt(m MatchSummary) string {
	winners, losers := m.Side1, m.Side2
	high, low := m.Score1, m.Score2
	if m.Score2 > m.Score1 {
		winners, losers = losers, winners
		high, low = low, high
	}
	return fmt.Sprintf(
		"Write a short, lively sports commentary (two sentences at most) for a pickleball match where %s beat %s %d-%d.",
		strings.Join(winners, " & "), strings.Join(losers, " & "), high, low,
	)
}

func predictionPrompt(players []club.Player) string {
	var b strings.Builder
	b.WriteString("These players are entered in a single-elimination pickleball tournament:\n")
	for _, p := range players {
		fmt.Fprintf(&b, "- %s (DUPR rating %.3f, win rate %.0f%%)\n", p.Name, p.Rating, p.WinRate())
	}
	b.WriteString("In one sentence, predict who will win and why.")
	return b.String()
}
