package http

import (
	"net/http"

	"github.com/mauv0809/pickle-boom/internal/club"
	"github.com/mauv0809/pickle-boom/internal/manager"
	"github.com/mauv0809/pickle-boom/internal/notifier"
	"github.com/mauv0809/pickle-boom/internal/referee"
)

type Server struct {
	Manager        manager.Service
	MetricsHandler http.Handler
	Router         *http.ServeMux
	handler        http.Handler
}

type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

type ratingRequest struct {
	Rating float64 `json:"rating"`
}

type scoreRequest struct {
	Score1 int `json:"score1"`
	Score2 int `json:"score2"`
}

type askRequest struct {
	Question string         `json:"question"`
	History  []referee.Turn `json:"history,omitempty"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

// matchResponse carries the commentary only when the caller asked to wait for it.
type matchResponse struct {
	Match      club.Match `json:"match"`
	Commentary string     `json:"commentary,omitempty"`
}

type predictionResponse struct {
	TournamentID string `json:"tournamentId"`
	Prediction   string `json:"prediction"`
	Pending      bool   `json:"pending"`
}

type notificationsResponse struct {
	Unread        int                     `json:"unread"`
	Notifications []notifier.Notification `json:"notifications"`
}
