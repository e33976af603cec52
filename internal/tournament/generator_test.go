package tournament

import (
	"testing"

	"github.com/mauv0809/pickle-boom/internal/club"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("five entrants truncate to a four-slot bracket", func(t *testing.T) {
		players := playersRated(5.0, 4.5, 4.0, 3.5, 3.0)
		tour, err := fixedGenerator().Generate(singlesRequest(players, SeedRanked))
		require.NoError(t, err)

		assert.Equal(t, StatusActive, tour.Status)
		assert.Equal(t, 2, tour.TotalRounds)
		assert.Len(t, tour.Round(1), 2)
		assert.Len(t, tour.Round(2), 1)
		assert.Len(t, tour.Participants, 4)
		assert.NotContains(t, tour.Participants, "p5")
	})

	t.Run("ranked seeding keeps top seeds apart", func(t *testing.T) {
		players := playersRated(3.0, 6.0, 4.0, 5.5, 2.5, 5.0, 4.5, 3.5)
		tour, err := fixedGenerator().Generate(singlesRequest(players, SeedRanked))
		require.NoError(t, err)

		// Seeds by rating: 1=p2 2=p4 3=p6 4=p7 5=p3 6=p8 7=p1 8=p5.
		round1 := tour.Round(1)
		require.Len(t, round1, 4)
		pairs := [][2]string{}
		for _, m := range round1 {
			pairs = append(pairs, [2]string{m.Player1ID, m.Player2ID})
		}
		assert.Equal(t, [][2]string{{"p2", "p5"}, {"p7", "p3"}, {"p4", "p1"}, {"p6", "p8"}}, pairs)
	})

	t.Run("ids and forward links", func(t *testing.T) {
		tour, err := fixedGenerator().Generate(singlesRequest(playersRated(4, 4, 4, 4, 4, 4, 4, 4), SeedRanked))
		require.NoError(t, err)

		require.Len(t, tour.Matches, 7)
		for _, m := range tour.Matches {
			assert.Equal(t, MatchID("t1", m.Round, m.MatchIndex), m.ID)
			assert.Equal(t, "t1", m.TournamentID)
			if m.Round == tour.TotalRounds {
				assert.Empty(t, m.NextMatchID)
				continue
			}
			assert.Equal(t, MatchID("t1", m.Round+1, m.MatchIndex/2), m.NextMatchID)
			_, ok := tour.Match(m.NextMatchID)
			assert.True(t, ok)
		}
		for _, m := range tour.Round(2) {
			assert.Empty(t, m.Player1ID)
			assert.Empty(t, m.Player2ID)
		}
		assert.Equal(t, "t1_r3_m0", MatchID("t1", 3, 0))
	})

	t.Run("random seeding uses shuffled order directly", func(t *testing.T) {
		g := fixedGenerator()
		g.Shuffle = func(n int, swap func(i, j int)) { swap(0, n-1) }
		tour, err := g.Generate(singlesRequest(playersRated(5, 4, 3, 2), SeedRandom))
		require.NoError(t, err)

		round1 := tour.Round(1)
		assert.Equal(t, "p4", round1[0].Player1ID)
		assert.Equal(t, "p2", round1[0].Player2ID)
		assert.Equal(t, "p3", round1[1].Player1ID)
		assert.Equal(t, "p1", round1[1].Player2ID)
	})

	t.Run("doubles slots carry partners and participants are flattened", func(t *testing.T) {
		players := playersRated(5, 4, 3.5, 3, 2.5, 2)
		var entrants []Entrant
		for i := 0; i < len(players); i += 2 {
			team, err := NewTeam(players[i], players[i+1], "")
			require.NoError(t, err)
			entrants = append(entrants, Pair(team))
		}

		tour, err := fixedGenerator().Generate(Request{Name: "Doubles Cup", Format: FormatDoubles, Entrants: entrants, SeedMode: SeedRanked})
		require.NoError(t, err)

		assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, tour.Participants)
		require.Len(t, tour.Teams, 2)
		final, ok := tour.Final()
		require.True(t, ok)
		assert.Equal(t, "p1", final.Player1ID)
		assert.Equal(t, "p2", final.Partner1ID)
		assert.Equal(t, "p3", final.Player2ID)
		assert.Equal(t, "p4", final.Partner2ID)
		assert.Equal(t, DefaultSettings(), tour.Settings)
	})

	t.Run("validation", func(t *testing.T) {
		g := fixedGenerator()
		players := playersRated(4, 3)

		_, err := g.Generate(singlesRequest(players[:1], SeedRanked))
		assert.ErrorIs(t, err, ErrNotEnoughEntrants)

		req := singlesRequest(players, SeedRanked)
		req.Name = "  "
		_, err = g.Generate(req)
		assert.ErrorIs(t, err, ErrBlankName)

		req = singlesRequest(players, SeedRanked)
		req.Format = FormatDoubles
		_, err = g.Generate(req)
		assert.ErrorIs(t, err, ErrFormatMismatch)

		req = singlesRequest([]club.Player{players[0], players[0]}, SeedRanked)
		_, err = g.Generate(req)
		assert.ErrorIs(t, err, ErrDuplicateEntrant)

		req = singlesRequest(players, "seeded")
		_, err = g.Generate(req)
		assert.ErrorIs(t, err, ErrUnknownSeedMode)
	})
}

func TestTeams(t *testing.T) {
	players := playersRated(4.0, 3.0, 5.0)
	team, err := NewTeam(players[0], players[1], "")
	require.NoError(t, err)
	assert.Equal(t, "Player 1 & Player 2", team.Name)
	assert.Equal(t, 3.5, team.CombinedRating)

	_, err = NewTeam(players[0], players[0], "Solo")
	assert.ErrorIs(t, err, ErrInvalidTeam)

	teams, err := AutoPairTeams(players, func(n int, swap func(i, j int)) {})
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "p1", teams[0].Player1ID)
	assert.Equal(t, "p2", teams[0].Player2ID)
}
