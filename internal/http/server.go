package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/mauv0809/pickle-boom/internal/manager"
)

func NewServer(mgr manager.Service, metricsHandler http.Handler) *Server {
	server := &Server{
		Manager:        mgr,
		MetricsHandler: metricsHandler,
		Router:         http.NewServeMux(),
	}

	server.routes()
	server.handler = Chain(server.Router, middleware.RequestID, middleware.Recoverer)
	return server
}

func (s *Server) routes() {
	// Every handler goes through Chain; admin-only routes add requireAdmin.
	admin := s.requireAdmin

	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))

	s.Router.Handle("POST /login", Chain(s.LoginHandler(), paramsMiddleware))
	s.Router.Handle("POST /logout", Chain(s.LogoutHandler(), paramsMiddleware))
	s.Router.Handle("GET /session", Chain(s.SessionHandler(), paramsMiddleware))

	s.Router.Handle("GET /players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("POST /players", Chain(s.RegisterPlayerHandler(), paramsMiddleware, admin))
	s.Router.Handle("DELETE /players", Chain(s.DeleteAllHandler(), paramsMiddleware, admin))
	s.Router.Handle("GET /players/{id}", Chain(s.ProfileHandler(), paramsMiddleware))
	s.Router.Handle("PUT /players/{id}/rating", Chain(s.UpdateRatingHandler(), paramsMiddleware, admin))
	s.Router.Handle("DELETE /players/{id}", Chain(s.DeletePlayerHandler(), paramsMiddleware, admin))

	s.Router.Handle("GET /matches", Chain(s.ListMatchesHandler(), paramsMiddleware))
	s.Router.Handle("POST /matches", Chain(s.RecordMatchHandler(), paramsMiddleware, admin))

	s.Router.Handle("GET /tournament", Chain(s.TournamentHandler(), paramsMiddleware))
	s.Router.Handle("POST /tournament", Chain(s.StartTournamentHandler(), paramsMiddleware, admin))
	s.Router.Handle("DELETE /tournament", Chain(s.ResetTournamentHandler(), paramsMiddleware, admin))
	s.Router.Handle("POST /tournament/matches/{id}/score", Chain(s.SubmitScoreHandler(), paramsMiddleware, admin))
	s.Router.Handle("GET /tournament/standings", Chain(s.StandingsHandler(), paramsMiddleware))
	s.Router.Handle("GET /tournament/prediction", Chain(s.PredictionHandler(), paramsMiddleware))

	s.Router.Handle("GET /notifications", Chain(s.ListNotificationsHandler(), paramsMiddleware))
	s.Router.Handle("POST /notifications/{id}/read", Chain(s.MarkNotificationReadHandler(), paramsMiddleware))
	s.Router.Handle("DELETE /notifications", Chain(s.ClearNotificationsHandler(), paramsMiddleware))

	s.Router.Handle("POST /referee/ask", Chain(s.AskHandler(), paramsMiddleware))
	s.Router.Handle("GET /stats", Chain(s.StatsHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
