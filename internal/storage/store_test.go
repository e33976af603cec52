package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mauv0809/pickle-boom/internal/club"
	"github.com/mauv0809/pickle-boom/internal/database"
	"github.com/mauv0809/pickle-boom/internal/notifier"
	"github.com/mauv0809/pickle-boom/internal/session"
	"github.com/mauv0809/pickle-boom/internal/storage"
	"github.com/mauv0809/pickle-boom/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) storage.Repository {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	t.Cleanup(teardown)

	return storage.New(db)
}

func TestPlayersRoundTrip(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	players, err := repo.LoadPlayers(ctx)
	require.NoError(t, err)
	assert.Empty(t, players)

	want := []club.Player{
		{ID: "p1", Name: "Alice", Rating: 4.25, Wins: 3, Losses: 1, MatchesPlayed: 4},
		{ID: "p2", Name: "Bob", Rating: 3.5},
	}
	require.NoError(t, repo.SavePlayers(ctx, want))

	got, err := repo.LoadPlayers(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadPlayersMigratesLegacyRatings(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.SavePlayers(ctx, []club.Player{{ID: "old", Name: "Veteran", Rating: 1200}}))

	got, err := repo.LoadPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 4.0, got[0].Rating)
}

func TestTournamentRoundTrip(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	none, err := repo.LoadTournament(ctx)
	require.NoError(t, err)
	assert.Nil(t, none)

	gen := tournament.NewGenerator()
	gen.Now = func() time.Time { return time.Date(2026, 4, 2, 18, 0, 0, 0, time.UTC) }
	players := []club.Player{{ID: "a", Name: "A", Rating: 4}, {ID: "b", Name: "B", Rating: 3}}
	tour, err := gen.Generate(tournament.Request{
		Name:     "Cup",
		Format:   tournament.FormatSingles,
		Entrants: []tournament.Entrant{tournament.Individual(players[0]), tournament.Individual(players[1])},
		SeedMode: tournament.SeedRanked,
	})
	require.NoError(t, err)
	require.NoError(t, repo.SaveTournament(ctx, tour))

	got, err := repo.LoadTournament(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(tour, got))

	require.NoError(t, repo.ClearTournament(ctx))
	got, err = repo.LoadTournament(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCommitIsAtomic(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	feed := notifier.Push(nil, notifier.New("hello", notifier.KindInfo, time.Now()))
	err := repo.Commit(ctx,
		storage.PutPlayers([]club.Player{{ID: "p1", Name: "Alice", Rating: 4}}),
		storage.PutNotifications(feed),
		storage.PutSession(session.Player("p1", time.Now())),
	)
	require.NoError(t, err)

	// An unencodable value aborts the whole batch.
	err = repo.Commit(ctx,
		storage.PutPlayers(nil),
		storage.Change{Key: storage.KeyMatches, Value: make(chan int)},
	)
	require.Error(t, err)

	players, err := repo.LoadPlayers(ctx)
	require.NoError(t, err)
	assert.Len(t, players, 1)

	gotFeed, err := repo.LoadNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, gotFeed, 1)
	assert.Equal(t, "hello", gotFeed[0].Message)

	sess, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "p1", sess.PlayerID)

	require.NoError(t, repo.ClearSession(ctx))
	sess, err = repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestMatchesRoundTrip(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	date := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	want := []club.Match{{ID: "m1", Player1ID: "a", Player2ID: "b", Score1: 11, Score2: 6, WinnerID: "a", Date: date, Summary: "A rolled."}}
	require.NoError(t, repo.SaveMatches(ctx, want))

	got, err := repo.LoadMatches(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(want, got))
}
