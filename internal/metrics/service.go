package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		MatchesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pickleboom_matches_recorded_total",
			Help: "Matches recorded, casual and tournament.",
		}),
		TournamentsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pickleboom_tournaments_started_total",
			Help: "Tournaments generated.",
		}),
		TournamentsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pickleboom_tournaments_completed_total",
			Help: "Tournaments that reached a champion.",
		}),
		ResultsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pickleboom_tournament_results_submitted_total",
			Help: "Bracket scores accepted.",
		}),
		AIRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pickleboom_ai_requests_total",
			Help: "Text generation requests sent.",
		}),
		AIFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pickleboom_ai_failures_total",
			Help: "Text generation requests that fell back to a fixed reply.",
		}),
		NotificationsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pickleboom_notifications_sent_total",
			Help: "Notifications mirrored to Slack.",
		}),
		NotificationsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pickleboom_notifications_failed_total",
			Help: "Notifications that failed to reach Slack.",
		}),
		OperationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pickleboom_operation_duration_seconds",
			Help:    "Duration of a state-changing club operation.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pickleboom_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.MatchesRecorded,
		s.TournamentsStarted,
		s.TournamentsCompleted,
		s.ResultsSubmitted,
		s.AIRequests,
		s.AIFailures,
		s.NotificationsSent,
		s.NotificationsFailed,
		s.OperationDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncMatchesRecorded()      { s.MatchesRecorded.Inc() }
func (s *Service) IncTournamentsStarted()   { s.TournamentsStarted.Inc() }
func (s *Service) IncTournamentsCompleted() { s.TournamentsCompleted.Inc() }
func (s *Service) IncResultsSubmitted()     { s.ResultsSubmitted.Inc() }
func (s *Service) IncAIRequests()           { s.AIRequests.Inc() }
func (s *Service) IncAIFailures()           { s.AIFailures.Inc() }
func (s *Service) IncNotificationsSent()    { s.NotificationsSent.Inc() }
func (s *Service) IncNotificationsFailed()  { s.NotificationsFailed.Inc() }

func (s *Service) ObserveOperationDuration(duration float64) {
	s.OperationDuration.Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
