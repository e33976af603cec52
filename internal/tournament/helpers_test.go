package tournament

import (
	"fmt"
	"time"

	"github.com/mauv0809/pickle-boom/internal/club"
)

var fixedNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

// fixedGenerator keeps input order on shuffle and hands out a stable id.
func fixedGenerator() *Generator {
	return &Generator{
		Shuffle: func(n int, swap func(i, j int)) {},
		Now:     func() time.Time { return fixedNow },
		NewID:   func() string { return "t1" },
	}
}

func playersRated(ratings ...float64) []club.Player {
	out := make([]club.Player, len(ratings))
	for i, r := range ratings {
		out[i] = club.Player{ID: fmt.Sprintf("p%d", i+1), Name: fmt.Sprintf("Player %d", i+1), Rating: r}
	}
	return out
}

func individuals(players []club.Player) []Entrant {
	out := make([]Entrant, len(players))
	for i, p := range players {
		out[i] = Individual(p)
	}
	return out
}

func singlesRequest(players []club.Player, mode SeedMode) Request {
	return Request{
		Name:     "Spring Open",
		Format:   FormatSingles,
		Settings: DefaultSettings(),
		Entrants: individuals(players),
		SeedMode: mode,
	}
}
