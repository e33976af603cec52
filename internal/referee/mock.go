package referee

import (
	"context"
	"sync"

	"github.com/mauv0809/pickle-boom/internal/club"
)

// Mock is a mock implementation of the Generator interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	CommentaryFunc func(ctx context.Context, m MatchSummary) string
	AskFunc        func(ctx context.Context, history []Turn, question string) string
	PredictFunc    func(ctx context.Context, players []club.Player) string

	// Call records
	CommentaryCalls []MatchSummary
	AskCalls        []string
	PredictCalls    [][]club.Player
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CommentaryCalls = nil
	m.AskCalls = nil
	m.PredictCalls = nil
}

func (m *Mock) Commentary(ctx context.Context, s MatchSummary) string {
	m.mu.Lock()
	m.CommentaryCalls = append(m.CommentaryCalls, s)
	fn := m.CommentaryFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, s)
	}
	return "What a match!"
}

func (m *Mock) Ask(ctx context.Context, history []Turn, question string) string {
	m.mu.Lock()
	m.AskCalls = append(m.AskCalls, question)
	fn := m.AskFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, history, question)
	}
	return "The ball must bounce once on each side before volleys are allowed."
}

func (m *Mock) Predict(ctx context.Context, players []club.Player) string {
	m.mu.Lock()
	m.PredictCalls = append(m.PredictCalls, players)
	fn := m.PredictFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, players)
	}
	return "The top seed takes it."
}
