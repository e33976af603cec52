package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	MatchesRecorded      prometheus.Counter
	TournamentsStarted   prometheus.Counter
	TournamentsCompleted prometheus.Counter
	ResultsSubmitted     prometheus.Counter
	AIRequests           prometheus.Counter
	AIFailures           prometheus.Counter
	NotificationsSent    prometheus.Counter
	NotificationsFailed  prometheus.Counter
	OperationDuration    prometheus.Histogram
	StartupTimeSeconds   prometheus.Gauge
}

// Keys of the persisted lifetime counters.
const (
	CounterMatchesRecorded      = "matches_recorded"
	CounterTournamentsStarted   = "tournaments_started"
	CounterTournamentsCompleted = "tournaments_completed"
	CounterPlayersRegistered    = "players_registered"
)
