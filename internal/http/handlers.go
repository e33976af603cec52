package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pickle-boom/internal/club"
	"github.com/mauv0809/pickle-boom/internal/manager"
	"github.com/mauv0809/pickle-boom/internal/notifier"
	"github.com/mauv0809/pickle-boom/internal/session"
	"github.com/mauv0809/pickle-boom/internal/tournament"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req manager.LoginRequest
		if !decode(w, r, &req) {
			return
		}
		sess, err := s.Manager.Login(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sess)
	}
}

func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Manager.Logout(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) SessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.Manager.Session(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		if sess == nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "not logged in"})
			return
		}
		writeJSON(w, http.StatusOK, sess)
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Manager.Players(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, nonNil(players))
	}
}

func (s *Server) ProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := s.Manager.Profile(r.Context(), r.PathValue("id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

func (s *Server) RegisterPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if !decode(w, r, &req) {
			return
		}
		p, err := s.Manager.RegisterPlayer(r.Context(), req.Name, req.Rating)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	}
}

func (s *Server) UpdateRatingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ratingRequest
		if !decode(w, r, &req) {
			return
		}
		p, err := s.Manager.UpdateRating(r.Context(), r.PathValue("id"), req.Rating)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func (s *Server) DeletePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Manager.DeletePlayer(r.Context(), r.PathValue("id"), confirmed(r)); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) DeleteAllHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Manager.DeleteAll(r.Context(), confirmed(r)); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Manager.Matches(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, nonNil(matches))
	}
}

// RecordMatchHandler answers as soon as the match is saved. With
// 'wait=true' it also waits for the AI commentary.
func (s *Server) RecordMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req manager.CasualMatch
		if !decode(w, r, &req) {
			return
		}
		match, commentary, err := s.Manager.RecordMatch(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		resp := matchResponse{Match: match}
		if r.URL.Query().Get("wait") == "true" {
			if text, ok := commentary.Wait(r.Context()); ok {
				resp.Match.Summary = text
				resp.Commentary = text
			}
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}

func (s *Server) TournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := s.Manager.Tournament(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

func (s *Server) StartTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req manager.StartRequest
		if !decode(w, r, &req) {
			return
		}
		t, prediction, err := s.Manager.StartTournament(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		if r.URL.Query().Get("wait") == "true" {
			if text, ok := prediction.Wait(r.Context()); ok {
				t.Prediction = text
			}
		}
		writeJSON(w, http.StatusCreated, t)
	}
}

func (s *Server) ResetTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Manager.ResetTournament(r.Context(), confirmed(r)); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) SubmitScoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scoreRequest
		if !decode(w, r, &req) {
			return
		}
		t, err := s.Manager.SubmitScore(r.Context(), r.PathValue("id"), req.Score1, req.Score2)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

func (s *Server) StandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := s.Manager.Standings(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, nonNil(standings))
	}
}

func (s *Server) PredictionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := s.Manager.Tournament(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, predictionResponse{
			TournamentID: t.ID,
			Prediction:   t.Prediction,
			Pending:      t.Prediction == "",
		})
	}
}

func (s *Server) ListNotificationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feed, err := s.Manager.Notifications(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, notificationsResponse{
			Unread:        notifier.Unread(feed),
			Notifications: nonNil(feed),
		})
	}
}

func (s *Server) MarkNotificationReadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Manager.MarkNotificationRead(r.Context(), r.PathValue("id")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) ClearNotificationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Manager.ClearNotifications(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) AskHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req askRequest
		if !decode(w, r, &req) {
			return
		}
		answer, err := s.Manager.Ask(r.Context(), req.History, req.Question)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, askResponse{Answer: answer})
	}
}

func (s *Server) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.Manager.Stats(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

func confirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Warn("Failed to decode request body", "error", err, "path", r.URL.Path)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("Request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

var (
	badRequest = []error{
		club.ErrDuplicatePlayer, club.ErrDrawNotAllowed, club.ErrNegativeScore, club.ErrInvalidWinner,
		club.ErrMissingPlayer, club.ErrBlankName, club.ErrRatingOutOfRange,
		tournament.ErrNotEnoughEntrants, tournament.ErrBlankName, tournament.ErrUnknownFormat,
		tournament.ErrUnknownSeedMode, tournament.ErrFormatMismatch, tournament.ErrDuplicateEntrant,
		tournament.ErrInvalidTeam, tournament.ErrNegativeScore,
		manager.ErrBlankQuestion,
	}
	notFound = []error{
		club.ErrPlayerNotFound, tournament.ErrNoTournament, tournament.ErrMatchNotFound,
		notifier.ErrNotificationNotFound,
	}
	conflict = []error{
		manager.ErrConfirmationRequired, manager.ErrTournamentActive, manager.ErrPlayerInActiveTournament,
		tournament.ErrTournamentCompleted, tournament.ErrMatchAlreadyDecided, tournament.ErrMatchNotReady,
	}
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case isAny(err, badRequest):
		return http.StatusBadRequest
	case isAny(err, notFound):
		return http.StatusNotFound
	case isAny(err, conflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
