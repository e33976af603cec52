package tournament

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fourPlayerTournament(t *testing.T) *Tournament {
	t.Helper()
	tour, err := fixedGenerator().Generate(singlesRequest(playersRated(4.0, 3.8, 3.2, 3.0), SeedRanked))
	require.NoError(t, err)
	return tour
}

func TestRecordResult(t *testing.T) {
	t.Run("four player bracket runs to a champion", func(t *testing.T) {
		tour := fourPlayerTournament(t)
		round1 := tour.Round(1)
		assert.Equal(t, [2]string{"p1", "p4"}, [2]string{round1[0].Player1ID, round1[0].Player2ID})
		assert.Equal(t, [2]string{"p2", "p3"}, [2]string{round1[1].Player1ID, round1[1].Player2ID})

		tour, decided, err := RecordResult(tour, "t1_r1_m0", 11, 5)
		require.NoError(t, err)
		assert.Equal(t, "p1", decided.WinnerID)

		tour, _, err = RecordResult(tour, "t1_r1_m1", 11, 9)
		require.NoError(t, err)

		final, _ := tour.Match("t1_r2_m0")
		assert.Equal(t, "p1", final.Player1ID)
		assert.Equal(t, "p2", final.Player2ID)
		assert.Equal(t, StatusActive, tour.Status)

		tour, decided, err = RecordResult(tour, "t1_r2_m0", 11, 7)
		require.NoError(t, err)
		assert.Equal(t, "p1", decided.WinnerID)
		assert.Equal(t, StatusCompleted, tour.Status)
		assert.Equal(t, "p1", tour.ChampionID)
	})

	t.Run("odd index fills the second slot and leaves the sibling untouched", func(t *testing.T) {
		tour := fourPlayerTournament(t)
		next, _, err := RecordResult(tour, "t1_r1_m1", 4, 11)
		require.NoError(t, err)

		final, _ := next.Match("t1_r2_m0")
		assert.Empty(t, final.Player1ID)
		assert.Equal(t, "p3", final.Player2ID)
	})

	t.Run("draw is rejected without changes", func(t *testing.T) {
		tour := fourPlayerTournament(t)
		before := tour.Clone()
		_, _, err := RecordResult(tour, "t1_r1_m0", 9, 9)
		assert.ErrorIs(t, err, ErrDrawNotAllowed)
		assert.Empty(t, cmp.Diff(before, tour))
	})

	t.Run("resubmitting a decided match changes nothing", func(t *testing.T) {
		tour := fourPlayerTournament(t)
		once, _, err := RecordResult(tour, "t1_r1_m0", 11, 3)
		require.NoError(t, err)

		snapshot := once.Clone()
		again, _, err := RecordResult(once, "t1_r1_m0", 11, 3)
		assert.ErrorIs(t, err, ErrMatchAlreadyDecided)
		assert.Nil(t, again)
		assert.Empty(t, cmp.Diff(snapshot, once))
	})

	t.Run("input tournament is never modified", func(t *testing.T) {
		tour := fourPlayerTournament(t)
		before := tour.Clone()
		_, _, err := RecordResult(tour, "t1_r1_m0", 11, 3)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(before, tour))
	})

	t.Run("lookup and readiness failures", func(t *testing.T) {
		tour := fourPlayerTournament(t)

		_, _, err := RecordResult(tour, "t1_r9_m9", 11, 3)
		assert.ErrorIs(t, err, ErrMatchNotFound)

		_, _, err = RecordResult(tour, "t1_r2_m0", 11, 3)
		assert.ErrorIs(t, err, ErrMatchNotReady)

		_, _, err = RecordResult(nil, "t1_r1_m0", 11, 3)
		assert.ErrorIs(t, err, ErrNoTournament)

		_, _, err = RecordResult(tour, "t1_r1_m0", -1, 3)
		assert.ErrorIs(t, err, ErrNegativeScore)
	})

	t.Run("completed tournament accepts nothing", func(t *testing.T) {
		tour, err := fixedGenerator().Generate(singlesRequest(playersRated(4, 3), SeedRanked))
		require.NoError(t, err)
		tour, _, err = RecordResult(tour, "t1_r1_m0", 11, 2)
		require.NoError(t, err)
		require.Equal(t, StatusCompleted, tour.Status)

		_, _, err = RecordResult(tour, "t1_r1_m0", 2, 11)
		assert.ErrorIs(t, err, ErrTournamentCompleted)
	})

	t.Run("doubles winner carries the partner forward", func(t *testing.T) {
		players := playersRated(5, 5, 4, 4, 3, 3, 2, 2)
		var entrants []Entrant
		for i := 0; i < len(players); i += 2 {
			team, err := NewTeam(players[i], players[i+1], "")
			require.NoError(t, err)
			entrants = append(entrants, Pair(team))
		}
		tour, err := fixedGenerator().Generate(Request{Name: "Pairs", Format: FormatDoubles, Entrants: entrants, SeedMode: SeedRanked})
		require.NoError(t, err)

		// Seed 1 (p1/p2) meets seed 4 (p7/p8) in m0.
		tour, _, err = RecordResult(tour, "t1_r1_m0", 8, 11)
		require.NoError(t, err)
		final, _ := tour.Match("t1_r2_m0")
		assert.Equal(t, "p7", final.Player1ID)
		assert.Equal(t, "p8", final.Partner1ID)
	})
}
