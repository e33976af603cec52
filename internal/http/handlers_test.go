package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mauv0809/pickle-boom/internal/club"
	"github.com/mauv0809/pickle-boom/internal/database"
	"github.com/mauv0809/pickle-boom/internal/manager"
	"github.com/mauv0809/pickle-boom/internal/metrics"
	"github.com/mauv0809/pickle-boom/internal/notifier"
	"github.com/mauv0809/pickle-boom/internal/pubsub"
	"github.com/mauv0809/pickle-boom/internal/referee"
	"github.com/mauv0809/pickle-boom/internal/session"
	"github.com/mauv0809/pickle-boom/internal/storage"
	"github.com/mauv0809/pickle-boom/internal/tournament"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestServer wires a server to a real manager over an in-memory database.
func setupTestServer(t *testing.T) (*Server, storage.Repository) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	t.Cleanup(dbTeardown)

	repo := storage.New(db)
	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)
	mgr := manager.New(repo, referee.NewMock(), notifier.NewMock(), pubsub.NewMock(), metricsSvc, metrics.NewCounterStore(db), manager.Options{
		AdminPassword: "secret",
		AITimeout:     time.Second,
	})
	t.Cleanup(mgr.Wait)

	return NewServer(mgr, metricsHandler), repo
}

func do(t *testing.T, server *Server, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, target, &buf)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func loginAdmin(t *testing.T, server *Server) {
	t.Helper()
	rr := do(t, server, "POST", "/login", manager.LoginRequest{Password: "secret"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func register(t *testing.T, server *Server, name string, rating float64) club.Player {
	t.Helper()
	rr := do(t, server, "POST", "/players", registerRequest{Name: name, Rating: rating})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decodeBody[club.Player](t, rr)
}

func TestHealthCheckHandler(t *testing.T) {
	server, _ := setupTestServer(t)

	rr := do(t, server, "GET", "/health", nil)

	assert.Equal(t, http.StatusOK, rr.Code, "handler returned wrong status code")
	assert.Equal(t, "OK!", rr.Body.String(), "handler returned unexpected body")
}

func TestMetricsHandler(t *testing.T) {
	server, _ := setupTestServer(t)
	loginAdmin(t, server)
	register(t, server, "Ana", 4)

	rr := do(t, server, "GET", "/metrics", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "pickleboom_operation_duration_seconds")
}

func TestSessionHandlers(t *testing.T) {
	server, _ := setupTestServer(t)

	rr := do(t, server, "GET", "/session", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, server, "POST", "/login", manager.LoginRequest{Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	loginAdmin(t, server)
	rr = do(t, server, "GET", "/session", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, session.RoleAdmin, decodeBody[session.Session](t, rr).Role)

	rr = do(t, server, "POST", "/logout", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = do(t, server, "GET", "/session", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	server, _ := setupTestServer(t)
	loginAdmin(t, server)
	ana := register(t, server, "Ana", 4)

	rr := do(t, server, "POST", "/login", manager.LoginRequest{PlayerID: ana.ID})
	require.Equal(t, http.StatusOK, rr.Code)

	routes := []struct {
		method string
		target string
	}{
		{"POST", "/players"},
		{"PUT", "/players/" + ana.ID + "/rating"},
		{"DELETE", "/players/" + ana.ID + "?confirm=true"},
		{"DELETE", "/players?confirm=true"},
		{"POST", "/matches"},
		{"POST", "/tournament"},
		{"DELETE", "/tournament?confirm=true"},
		{"POST", "/tournament/matches/x/score"},
	}
	for _, route := range routes {
		t.Run(route.method+" "+route.target, func(t *testing.T) {
			rr := do(t, server, route.method, route.target, map[string]any{})
			assert.Equal(t, http.StatusForbidden, rr.Code)
		})
	}

	// Read routes stay open.
	rr = do(t, server, "GET", "/players", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestPlayerHandlers(t *testing.T) {
	server, _ := setupTestServer(t)
	loginAdmin(t, server)

	ana := register(t, server, "Ana", 4.0)
	register(t, server, "Ben", 3.2)

	t.Run("leaderboard sorted by rating", func(t *testing.T) {
		rr := do(t, server, "GET", "/players", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		players := decodeBody[[]club.Player](t, rr)
		require.Len(t, players, 2)
		assert.Equal(t, "Ana", players[0].Name)
	})

	t.Run("name filter", func(t *testing.T) {
		rr := do(t, server, "GET", "/players?q=be", nil)
		players := decodeBody[[]club.Player](t, rr)
		require.Len(t, players, 1)
		assert.Equal(t, "Ben", players[0].Name)
	})

	t.Run("validation", func(t *testing.T) {
		rr := do(t, server, "POST", "/players", registerRequest{Name: " ", Rating: 3})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		rr = do(t, server, "POST", "/players", registerRequest{Name: "Zed", Rating: 1.5})
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		req, err := http.NewRequest("POST", "/players", strings.NewReader("{not json"))
		require.NoError(t, err)
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rating override", func(t *testing.T) {
		rr := do(t, server, "PUT", "/players/"+ana.ID+"/rating", ratingRequest{Rating: 5.1234})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 5.123, decodeBody[club.Player](t, rr).Rating)
	})

	t.Run("profile", func(t *testing.T) {
		rr := do(t, server, "GET", "/players/"+ana.ID, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		profile := decodeBody[club.Profile](t, rr)
		assert.Equal(t, 1, profile.Rank)

		rr = do(t, server, "GET", "/players/missing", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("delete needs confirmation", func(t *testing.T) {
		rr := do(t, server, "DELETE", "/players/"+ana.ID, nil)
		assert.Equal(t, http.StatusConflict, rr.Code)
		rr = do(t, server, "DELETE", "/players/"+ana.ID+"?confirm=true", nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)
		rr = do(t, server, "GET", "/players", nil)
		assert.Len(t, decodeBody[[]club.Player](t, rr), 1)
	})
}

func TestRecordMatchHandler(t *testing.T) {
	server, repo := setupTestServer(t)
	loginAdmin(t, server)
	ana := register(t, server, "Ana", 4.0)
	ben := register(t, server, "Ben", 3.0)

	rr := do(t, server, "POST", "/matches?wait=true", manager.CasualMatch{Player1ID: ana.ID, Player2ID: ben.ID, Score1: 7, Score2: 11})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	resp := decodeBody[matchResponse](t, rr)
	assert.Equal(t, ben.ID, resp.Match.WinnerID)
	assert.Equal(t, "What a match!", resp.Commentary)

	rr = do(t, server, "POST", "/matches", manager.CasualMatch{Player1ID: ana.ID, Player2ID: ben.ID, Score1: 11, Score2: 11})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, server, "GET", "/matches", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeBody[[]club.Match](t, rr), 1)

	players, err := repo.LoadPlayers(t.Context())
	require.NoError(t, err)
	p, _ := club.Find(players, ben.ID)
	assert.Greater(t, p.Rating, 3.0)

	rr = do(t, server, "GET", "/stats", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, decodeBody[map[string]int](t, rr)[metrics.CounterMatchesRecorded])
}

func TestTournamentHandlers(t *testing.T) {
	server, _ := setupTestServer(t)
	loginAdmin(t, server)

	rr := do(t, server, "GET", "/tournament", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	var ids []string
	for i, r := range []float64{4.0, 3.8, 3.2, 3.0} {
		ids = append(ids, register(t, server, []string{"Ana", "Ben", "Cal", "Dee"}[i], r).ID)
	}

	rr = do(t, server, "POST", "/tournament?wait=true", manager.StartRequest{
		Name:      "Summer Slam",
		Format:    tournament.FormatSingles,
		SeedMode:  tournament.SeedRanked,
		PlayerIDs: ids,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	started := decodeBody[tournament.Tournament](t, rr)
	assert.Equal(t, "The top seed takes it.", started.Prediction)

	rr = do(t, server, "POST", "/tournament", manager.StartRequest{Name: "Again", Format: tournament.FormatSingles, PlayerIDs: ids})
	assert.Equal(t, http.StatusConflict, rr.Code)

	round1 := started.Round(1)
	require.Len(t, round1, 2)
	assert.Equal(t, ids[0], round1[0].Player1ID)
	assert.Equal(t, ids[3], round1[0].Player2ID)

	final, _ := started.Final()
	rr = do(t, server, "POST", "/tournament/matches/"+final.ID+"/score", scoreRequest{Score1: 11, Score2: 7})
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = do(t, server, "POST", "/tournament/matches/nope/score", scoreRequest{Score1: 11, Score2: 7})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	for _, m := range round1 {
		rr = do(t, server, "POST", "/tournament/matches/"+m.ID+"/score", scoreRequest{Score1: 11, Score2: 5})
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	}
	rr = do(t, server, "POST", "/tournament/matches/"+final.ID+"/score", scoreRequest{Score1: 11, Score2: 7})
	require.Equal(t, http.StatusOK, rr.Code)
	done := decodeBody[tournament.Tournament](t, rr)
	assert.Equal(t, tournament.StatusCompleted, done.Status)
	assert.Equal(t, ids[0], done.ChampionID)

	rr = do(t, server, "GET", "/tournament/standings", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	standings := decodeBody[[]tournament.Standing](t, rr)
	require.Len(t, standings, 4)
	assert.True(t, standings[0].IsChampion)

	rr = do(t, server, "GET", "/tournament/prediction", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, decodeBody[predictionResponse](t, rr).Pending)

	rr = do(t, server, "DELETE", "/tournament", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	rr = do(t, server, "DELETE", "/tournament?confirm=true", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = do(t, server, "GET", "/tournament/standings", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestNotificationHandlers(t *testing.T) {
	server, _ := setupTestServer(t)
	loginAdmin(t, server)
	register(t, server, "Ana", 4.0)

	rr := do(t, server, "GET", "/notifications", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	feed := decodeBody[notificationsResponse](t, rr)
	require.Len(t, feed.Notifications, 1)
	assert.Equal(t, 1, feed.Unread)

	rr = do(t, server, "POST", "/notifications/"+feed.Notifications[0].ID+"/read", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = do(t, server, "POST", "/notifications/missing/read", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, server, "GET", "/notifications", nil)
	assert.Equal(t, 0, decodeBody[notificationsResponse](t, rr).Unread)

	rr = do(t, server, "DELETE", "/notifications", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = do(t, server, "GET", "/notifications", nil)
	assert.Empty(t, decodeBody[notificationsResponse](t, rr).Notifications)
}

func TestAskHandler(t *testing.T) {
	server, _ := setupTestServer(t)

	rr := do(t, server, "POST", "/referee/ask", askRequest{Question: "Can I serve overhand?"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, decodeBody[askResponse](t, rr).Answer)

	rr = do(t, server, "POST", "/referee/ask", askRequest{Question: " "})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
