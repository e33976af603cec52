package referee

import (
	"context"

	"github.com/mauv0809/pickle-boom/internal/club"
)

// Generator produces short texts with a hosted language model. It never
// fails: every method returns a fixed fallback when the service does.
type Generator interface {
	Commentary(ctx context.Context, m MatchSummary) string
	Ask(ctx context.Context, history []Turn, question string) string
	Predict(ctx context.Context, players []club.Player) string
}
