package manager

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/pickle-boom/internal/club"
	"github.com/mauv0809/pickle-boom/internal/metrics"
	"github.com/mauv0809/pickle-boom/internal/notifier"
	"github.com/mauv0809/pickle-boom/internal/pubsub"
	"github.com/mauv0809/pickle-boom/internal/referee"
	"github.com/mauv0809/pickle-boom/internal/storage"
)

func (m *Manager) Matches(ctx context.Context) ([]club.Match, error) {
	return m.repo.LoadMatches(ctx)
}

// RecordMatch saves a casual match and applies the rating update. AI
// commentary is written in the background and attached to the stored
// match once it arrives; the returned Future resolves after that.
func (m *Manager) RecordMatch(ctx context.Context, req CasualMatch) (club.Match, *referee.Future, error) {
	unlock := m.lock()
	defer unlock()

	match := club.Match{
		ID:         uuid.NewString(),
		Player1ID:  req.Player1ID,
		Player2ID:  req.Player2ID,
		Partner1ID: req.Partner1ID,
		Partner2ID: req.Partner2ID,
		Score1:     req.Score1,
		Score2:     req.Score2,
		Date:       m.opts.Now(),
	}
	if err := club.Validate(match); err != nil {
		return club.Match{}, nil, err
	}

	players, err := m.repo.LoadPlayers(ctx)
	if err != nil {
		return club.Match{}, nil, err
	}
	for _, id := range append(match.Side1(), match.Side2()...) {
		if _, ok := club.Find(players, id); !ok {
			return club.Match{}, nil, fmt.Errorf("player %s: %w", id, club.ErrPlayerNotFound)
		}
	}
	history, err := m.repo.LoadMatches(ctx)
	if err != nil {
		return club.Match{}, nil, err
	}
	feed, err := m.repo.LoadNotifications(ctx)
	if err != nil {
		return club.Match{}, nil, err
	}

	players, history, err = club.Record(players, history, match)
	if err != nil {
		return club.Match{}, nil, err
	}
	match = history[0]
	summary := summarize(players, match)
	feed, recorded := m.push(feed, resultMessage(summary), notifier.KindSuccess)

	err = m.repo.Commit(ctx,
		storage.PutPlayers(players),
		storage.PutMatches(history),
		storage.PutNotifications(feed),
	)
	if err != nil {
		return club.Match{}, nil, fmt.Errorf("failed to save match: %w", err)
	}

	m.metrics.IncMatchesRecorded()
	m.counters.Increment(metrics.CounterMatchesRecorded)
	m.publish(pubsub.EventMatchRecorded, pubsub.MatchRecorded{Match: match, Players: players})
	m.mirror(recorded)
	log.Info("Recorded match", "matchID", match.ID, "winnerID", match.WinnerID, "score", fmt.Sprintf("%d-%d", match.Score1, match.Score2))

	commentary := m.generate(referee.CommentaryFailed,
		func(ctx context.Context) string { return m.ai.Commentary(ctx, summary) },
		func(text string) { m.attachSummary(match.ID, text) },
	)
	return match, commentary, nil
}

// attachSummary stores commentary on an already recorded match.
func (m *Manager) attachSummary(matchID, text string) {
	unlock := m.lock()
	defer unlock()

	ctx := context.Background()
	history, err := m.repo.LoadMatches(ctx)
	if err != nil {
		log.Error("Failed to load matches for commentary", "error", err, "matchID", matchID)
		return
	}
	for i := range history {
		if history[i].ID == matchID {
			history[i].Summary = text
			if err := m.repo.SaveMatches(ctx, history); err != nil {
				log.Error("Failed to save commentary", "error", err, "matchID", matchID)
			}
			return
		}
	}
	log.Warn("Match gone before commentary arrived", "matchID", matchID)
}

func summarize(players []club.Player, match club.Match) referee.MatchSummary {
	return referee.MatchSummary{
		Side1:  names(players, match.Side1()),
		Side2:  names(players, match.Side2()),
		Score1: match.Score1,
		Score2: match.Score2,
	}
}

func names(players []club.Player, ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id
		if p, ok := club.Find(players, id); ok {
			out[i] = p.Name
		}
	}
	return out
}

// resultMessage reads "Alice beat Bob 11-7".
func resultMessage(s referee.MatchSummary) string {
	winners, losers, high, low := s.Side1, s.Side2, s.Score1, s.Score2
	if s.Score2 > s.Score1 {
		winners, losers, high, low = s.Side2, s.Side1, s.Score2, s.Score1
	}
	return fmt.Sprintf("%s beat %s %d-%d", strings.Join(winners, " & "), strings.Join(losers, " & "), high, low)
}
