package referee

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pickle-boom/internal/club"
	"github.com/mauv0809/pickle-boom/internal/metrics"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

var errEmptyResponse = errors.New("empty response")

// contentGenerator is the part of the genai client we use.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini implements Generator on top of the Gemini API.
type Gemini struct {
	models  contentGenerator
	model   string
	limiter *rate.Limiter
	metrics metrics.Metrics
}

var _ Generator = (*Gemini)(nil)

// New returns a Gemini-backed Generator, or Unavailable when no API key is set.
// perMinute caps outgoing requests; zero means unlimited.
func New(ctx context.Context, apiKey, model string, perMinute int, m metrics.Metrics) (Generator, error) {
	if apiKey == "" {
		log.Warn("No Gemini API key configured, AI features are disabled")
		return Unavailable{}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return newGemini(client.Models, model, perMinute, m), nil
}

func newGemini(models contentGenerator, model string, perMinute int, m metrics.Metrics) *Gemini {
	if model == "" {
		model = DefaultModel
	}
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	return &Gemini{
		models:  models,
		model:   model,
		limiter: rate.NewLimiter(limit, 1),
		metrics: m,
	}
}

func (g *Gemini) Commentary(ctx context.Context, m MatchSummary) string {
	text, err := g.generate(ctx, genai.Text(commentaryPrompt(m)), nil)
	if err != nil {
		log.Error("Failed to generate commentary", "error", err)
		return CommentaryFailed
	}
	return text
}

func (g *Gemini) Ask(ctx context.Context, history []Turn, question string) string {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, t := range history {
		role := genai.Role(genai.RoleUser)
		if t.Role == RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(question, genai.RoleUser))

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(refereeInstruction, genai.RoleUser),
	}
	text, err := g.generate(ctx, contents, cfg)
	if err != nil {
		log.Error("Referee failed to answer", "error", err)
		return RefereeFailed
	}
	return text
}

func (g *Gemini) Predict(ctx context.Context, players []club.Player) string {
	text, err := g.generate(ctx, genai.Text(predictionPrompt(players)), nil)
	if err != nil {
		log.Error("Failed to generate prediction", "error", err)
		return PredictionFailed
	}
	return text
}

func (g *Gemini) generate(ctx context.Context, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	g.metrics.IncAIRequests()
	if err := g.limiter.Wait(ctx); err != nil {
		g.metrics.IncAIFailures()
		return "", err
	}
	resp, err := g.models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		g.metrics.IncAIFailures()
		return "", err
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		g.metrics.IncAIFailures()
		return "", errEmptyResponse
	}
	return text, nil
}

// Unavailable answers every request with the fallback for missing credentials.
type Unavailable struct{}

func (Unavailable) Commentary(context.Context, MatchSummary) string { return CommentaryUnavailable }
func (Unavailable) Ask(context.Context, []Turn, string) string      { return RefereeUnavailable }
func (Unavailable) Predict(context.Context, []club.Player) string   { return PredictionUnavailable }
