package manager

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pickle-boom/internal/club"
	"github.com/mauv0809/pickle-boom/internal/metrics"
	"github.com/mauv0809/pickle-boom/internal/notifier"
	"github.com/mauv0809/pickle-boom/internal/pubsub"
	"github.com/mauv0809/pickle-boom/internal/referee"
	"github.com/mauv0809/pickle-boom/internal/storage"
	"github.com/mauv0809/pickle-boom/internal/tournament"
)

// Tournament returns the current tournament, active or completed, or
// tournament.ErrNoTournament.
func (m *Manager) Tournament(ctx context.Context) (*tournament.Tournament, error) {
	t, err := m.repo.LoadTournament(ctx)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, tournament.ErrNoTournament
	}
	return t, nil
}

// StartTournament generates a bracket and makes it the current tournament.
// A completed tournament is replaced; an active one blocks the start.
// The winner prediction arrives later through the returned Future.
func (m *Manager) StartTournament(ctx context.Context, req StartRequest) (*tournament.Tournament, *referee.Future, error) {
	unlock := m.lock()
	defer unlock()

	current, err := m.repo.LoadTournament(ctx)
	if err != nil {
		return nil, nil, err
	}
	if current.Active() {
		return nil, nil, ErrTournamentActive
	}
	players, err := m.repo.LoadPlayers(ctx)
	if err != nil {
		return nil, nil, err
	}
	entrants, err := m.entrants(players, req)
	if err != nil {
		return nil, nil, err
	}
	if req.SeedMode == "" {
		req.SeedMode = tournament.SeedRanked
	}

	t, err := m.gen.Generate(tournament.Request{
		Name:     req.Name,
		Format:   req.Format,
		Settings: req.Settings,
		Entrants: entrants,
		SeedMode: req.SeedMode,
	})
	if err != nil {
		return nil, nil, err
	}

	feed, err := m.repo.LoadNotifications(ctx)
	if err != nil {
		return nil, nil, err
	}
	feed, started := m.push(feed, fmt.Sprintf("%s has started (%s, %s seeding).", t.Name, t.Format, t.SeedMode), notifier.KindInfo)
	if err := m.repo.Commit(ctx, storage.PutTournament(t), storage.PutNotifications(feed)); err != nil {
		return nil, nil, fmt.Errorf("failed to save tournament: %w", err)
	}

	m.metrics.IncTournamentsStarted()
	m.counters.Increment(metrics.CounterTournamentsStarted)
	m.publish(pubsub.EventTournamentStarted, tournamentEvent(t))
	m.mirror(started)
	log.Info("Started tournament", "tournamentID", t.ID, "name", t.Name, "entrants", len(t.Participants))

	prediction := m.predict(t, players)
	return t, prediction, nil
}

func (m *Manager) predict(t *tournament.Tournament, players []club.Player) *referee.Future {
	attach := func(text string) { m.attachPrediction(t.ID, text) }
	if t.Format == tournament.FormatDoubles {
		return m.generate(referee.PredictionDoubles,
			func(context.Context) string { return referee.PredictionDoubles },
			attach,
		)
	}
	entered := make([]club.Player, 0, len(t.Participants))
	for _, id := range t.Participants {
		if p, ok := club.Find(players, id); ok {
			entered = append(entered, p)
		}
	}
	return m.generate(referee.PredictionFailed,
		func(ctx context.Context) string { return m.ai.Predict(ctx, entered) },
		attach,
	)
}

func (m *Manager) attachPrediction(tournamentID, text string) {
	unlock := m.lock()
	defer unlock()

	ctx := context.Background()
	t, err := m.repo.LoadTournament(ctx)
	if err != nil || t == nil || t.ID != tournamentID {
		log.Warn("Tournament gone before prediction arrived", "tournamentID", tournamentID, "error", err)
		return
	}
	t.Prediction = text
	if err := m.repo.SaveTournament(ctx, t); err != nil {
		log.Error("Failed to save prediction", "error", err, "tournamentID", tournamentID)
	}
}

func (m *Manager) entrants(players []club.Player, req StartRequest) ([]tournament.Entrant, error) {
	lookup := func(id string) (club.Player, error) {
		p, ok := club.Find(players, id)
		if !ok {
			return club.Player{}, fmt.Errorf("player %s: %w", id, club.ErrPlayerNotFound)
		}
		return p, nil
	}

	var entrants []tournament.Entrant
	switch {
	case req.Format == tournament.FormatDoubles && len(req.Teams) > 0:
		for _, tr := range req.Teams {
			p1, err := lookup(tr.Player1ID)
			if err != nil {
				return nil, err
			}
			p2, err := lookup(tr.Player2ID)
			if err != nil {
				return nil, err
			}
			team, err := tournament.NewTeam(p1, p2, tr.Name)
			if err != nil {
				return nil, err
			}
			entrants = append(entrants, tournament.Pair(team))
		}
	case req.Format == tournament.FormatDoubles:
		if !req.AutoPair {
			return nil, tournament.ErrNotEnoughEntrants
		}
		pool := make([]club.Player, 0, len(req.PlayerIDs))
		for _, id := range req.PlayerIDs {
			p, err := lookup(id)
			if err != nil {
				return nil, err
			}
			pool = append(pool, p)
		}
		teams, err := tournament.AutoPairTeams(pool, m.gen.Shuffle)
		if err != nil {
			return nil, err
		}
		for _, team := range teams {
			entrants = append(entrants, tournament.Pair(team))
		}
	default:
		for _, id := range req.PlayerIDs {
			p, err := lookup(id)
			if err != nil {
				return nil, err
			}
			entrants = append(entrants, tournament.Individual(p))
		}
	}
	return entrants, nil
}

// SubmitScore decides a bracket match, advances the winner and applies the
// rating update as for any other match.
func (m *Manager) SubmitScore(ctx context.Context, matchID string, score1, score2 int) (*tournament.Tournament, error) {
	unlock := m.lock()
	defer unlock()

	current, err := m.repo.LoadTournament(ctx)
	if err != nil {
		return nil, err
	}
	next, decided, err := tournament.RecordResult(current, matchID, score1, score2)
	if err != nil {
		return nil, err
	}

	players, err := m.repo.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}
	history, err := m.repo.LoadMatches(ctx)
	if err != nil {
		return nil, err
	}
	feed, err := m.repo.LoadNotifications(ctx)
	if err != nil {
		return nil, err
	}

	decided.Date = m.opts.Now()
	players, history, err = club.Record(players, history, decided)
	if err != nil {
		return nil, err
	}

	summary := summarize(players, decided)
	feed, result := m.push(feed, fmt.Sprintf("%s: %s", next.Name, resultMessage(summary)), notifier.KindInfo)
	outgoing := []notifier.Notification{result}
	if next.Status == tournament.StatusCompleted {
		champion := names(players, winningSide(decided))
		var crowned notifier.Notification
		feed, crowned = m.push(feed, fmt.Sprintf("%s won %s!", joinNames(champion), next.Name), notifier.KindSuccess)
		outgoing = append(outgoing, crowned)
	}

	err = m.repo.Commit(ctx,
		storage.PutTournament(next),
		storage.PutPlayers(players),
		storage.PutMatches(history),
		storage.PutNotifications(feed),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save result: %w", err)
	}

	m.metrics.IncResultsSubmitted()
	m.metrics.IncMatchesRecorded()
	m.counters.Increment(metrics.CounterMatchesRecorded)
	m.publish(pubsub.EventMatchRecorded, pubsub.MatchRecorded{Match: decided, Players: players})
	if next.Status == tournament.StatusCompleted {
		m.metrics.IncTournamentsCompleted()
		m.counters.Increment(metrics.CounterTournamentsCompleted)
		m.publish(pubsub.EventTournamentCompleted, tournamentEvent(next))
	}
	m.mirror(outgoing...)
	log.Info("Recorded tournament result", "tournamentID", next.ID, "matchID", matchID, "winnerID", decided.WinnerID, "status", next.Status)
	return next, nil
}

// ResetTournament discards the current tournament. Recorded matches and
// rating changes stay.
func (m *Manager) ResetTournament(ctx context.Context, confirm bool) error {
	unlock := m.lock()
	defer unlock()

	t, err := m.repo.LoadTournament(ctx)
	if err != nil {
		return err
	}
	if t == nil {
		return tournament.ErrNoTournament
	}
	if !confirm {
		return ErrConfirmationRequired
	}
	if err := m.repo.ClearTournament(ctx); err != nil {
		return err
	}
	log.Info("Tournament reset", "tournamentID", t.ID)
	return nil
}

func (m *Manager) Standings(ctx context.Context) ([]tournament.Standing, error) {
	t, err := m.Tournament(ctx)
	if err != nil {
		return nil, err
	}
	players, err := m.repo.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}
	return tournament.Standings(t, players), nil
}

func winningSide(match club.Match) []string {
	if match.WinnerID == match.Player1ID {
		return match.Side1()
	}
	return match.Side2()
}

func joinNames(names []string) string {
	if len(names) == 2 {
		return names[0] + " & " + names[1]
	}
	if len(names) == 1 {
		return names[0]
	}
	return "Someone"
}

func tournamentEvent(t *tournament.Tournament) pubsub.TournamentEvent {
	return pubsub.TournamentEvent{
		TournamentID: t.ID,
		Name:         t.Name,
		Format:       string(t.Format),
		ChampionID:   t.ChampionID,
	}
}
