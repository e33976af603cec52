package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncMatchesRecorded()
	IncTournamentsStarted()
	IncTournamentsCompleted()
	IncResultsSubmitted()
	IncAIRequests()
	IncAIFailures()
	IncNotificationsSent()
	IncNotificationsFailed()
	ObserveOperationDuration(duration float64)
	SetStartupTime(duration float64)
}

// CounterStore keeps lifetime totals that survive restarts.
type CounterStore interface {
	Increment(key string)
	GetAll() (map[string]int, error)
}
