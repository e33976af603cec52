package metrics

import "sync"

// Mock is a mock implementation of the Metrics and CounterStore interfaces
// for testing. It is safe for concurrent use.
type Mock struct {
	mu                   sync.Mutex
	matchesRecorded      int
	tournamentsStarted   int
	tournamentsCompleted int
	resultsSubmitted     int
	aiRequests           int
	aiFailures           int
	notificationsSent    int
	notificationsFailed  int
	operationDurations   []float64
	startupTime          float64
	counters             map[string]int
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		operationDurations: make([]float64, 0),
		counters:           make(map[string]int),
	}
}

func (m *Mock) inc(field *int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	*field++
}

func (m *Mock) get(field *int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *field
}

func (m *Mock) IncMatchesRecorded()      { m.inc(&m.matchesRecorded) }
func (m *Mock) IncTournamentsStarted()   { m.inc(&m.tournamentsStarted) }
func (m *Mock) IncTournamentsCompleted() { m.inc(&m.tournamentsCompleted) }
func (m *Mock) IncResultsSubmitted()     { m.inc(&m.resultsSubmitted) }
func (m *Mock) IncAIRequests()           { m.inc(&m.aiRequests) }
func (m *Mock) IncAIFailures()           { m.inc(&m.aiFailures) }
func (m *Mock) IncNotificationsSent()    { m.inc(&m.notificationsSent) }
func (m *Mock) IncNotificationsFailed()  { m.inc(&m.notificationsFailed) }

func (m *Mock) ObserveOperationDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.operationDurations = append(m.operationDurations, duration)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

func (m *Mock) Increment(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[key]++
}

func (m *Mock) GetAll() (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.counters))
	for k, v := range m.counters {
		out[k] = v
	}
	return out, nil
}

// MatchesRecorded returns the number of times IncMatchesRecorded was called.
func (m *Mock) MatchesRecorded() int { return m.get(&m.matchesRecorded) }

// TournamentsStarted returns the number of times IncTournamentsStarted was called.
func (m *Mock) TournamentsStarted() int { return m.get(&m.tournamentsStarted) }

// TournamentsCompleted returns the number of times IncTournamentsCompleted was called.
func (m *Mock) TournamentsCompleted() int { return m.get(&m.tournamentsCompleted) }

// ResultsSubmitted returns the number of times IncResultsSubmitted was called.
func (m *Mock) ResultsSubmitted() int { return m.get(&m.resultsSubmitted) }

// AIRequests returns the number of times IncAIRequests was called.
func (m *Mock) AIRequests() int { return m.get(&m.aiRequests) }

// AIFailures returns the number of times IncAIFailures was called.
func (m *Mock) AIFailures() int { return m.get(&m.aiFailures) }

// NotificationsSent returns the number of times IncNotificationsSent was called.
func (m *Mock) NotificationsSent() int { return m.get(&m.notificationsSent) }

// NotificationsFailed returns the number of times IncNotificationsFailed was called.
func (m *Mock) NotificationsFailed() int { return m.get(&m.notificationsFailed) }

// OperationDurations returns every observed duration.
func (m *Mock) OperationDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.operationDurations...)
}
