package manager

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pickle-boom/internal/club"
	"github.com/mauv0809/pickle-boom/internal/metrics"
	"github.com/mauv0809/pickle-boom/internal/notifier"
	"github.com/mauv0809/pickle-boom/internal/session"
	"github.com/mauv0809/pickle-boom/internal/storage"
)

// recentMatches is how many matches a profile lists.
const recentMatches = 10

func (m *Manager) Login(ctx context.Context, req LoginRequest) (*session.Session, error) {
	unlock := m.lock()
	defer unlock()

	var sess *session.Session
	if req.PlayerID != "" {
		players, err := m.repo.LoadPlayers(ctx)
		if err != nil {
			return nil, err
		}
		if _, ok := club.Find(players, req.PlayerID); !ok {
			return nil, club.ErrPlayerNotFound
		}
		sess = session.Player(req.PlayerID, m.opts.Now())
	} else {
		var err error
		sess, err = session.Admin(req.Password, m.opts.AdminPassword, m.opts.Now())
		if err != nil {
			log.Warn("Rejected admin login")
			return nil, err
		}
	}

	if err := m.repo.SaveSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	log.Info("Logged in", "role", sess.Role, "playerID", sess.PlayerID)
	return sess, nil
}

func (m *Manager) Logout(ctx context.Context) error {
	unlock := m.lock()
	defer unlock()
	return m.repo.ClearSession(ctx)
}

func (m *Manager) Session(ctx context.Context) (*session.Session, error) {
	return m.repo.LoadSession(ctx)
}

// Players returns the leaderboard, optionally filtered by name.
func (m *Manager) Players(ctx context.Context, query string) ([]club.Player, error) {
	players, err := m.repo.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}
	return club.Leaderboard(players, query), nil
}

func (m *Manager) Profile(ctx context.Context, playerID string) (club.Profile, error) {
	players, err := m.repo.LoadPlayers(ctx)
	if err != nil {
		return club.Profile{}, err
	}
	history, err := m.repo.LoadMatches(ctx)
	if err != nil {
		return club.Profile{}, err
	}
	return club.BuildProfile(players, history, playerID, recentMatches)
}

func (m *Manager) RegisterPlayer(ctx context.Context, name string, rating float64) (club.Player, error) {
	unlock := m.lock()
	defer unlock()

	p, err := club.NewPlayer(name, rating)
	if err != nil {
		return club.Player{}, err
	}
	players, err := m.repo.LoadPlayers(ctx)
	if err != nil {
		return club.Player{}, err
	}
	feed, err := m.repo.LoadNotifications(ctx)
	if err != nil {
		return club.Player{}, err
	}
	feed, welcome := m.push(feed, fmt.Sprintf("New player registered: %s (DUPR: %.3f)", p.Name, p.Rating), notifier.KindInfo)

	err = m.repo.Commit(ctx,
		storage.PutPlayers(append(players, p)),
		storage.PutNotifications(feed),
	)
	if err != nil {
		return club.Player{}, err
	}
	m.counters.Increment(metrics.CounterPlayersRegistered)
	m.mirror(welcome)
	log.Info("Registered player", "playerID", p.ID, "name", p.Name, "rating", p.Rating)
	return p, nil
}

func (m *Manager) UpdateRating(ctx context.Context, playerID string, rating float64) (club.Player, error) {
	unlock := m.lock()
	defer unlock()

	players, err := m.repo.LoadPlayers(ctx)
	if err != nil {
		return club.Player{}, err
	}
	next, err := club.SetRating(players, playerID, rating)
	if err != nil {
		return club.Player{}, err
	}
	p, _ := club.Find(next, playerID)
	feed, err := m.repo.LoadNotifications(ctx)
	if err != nil {
		return club.Player{}, err
	}
	feed, updated := m.push(feed, fmt.Sprintf("%s's rating was manually updated to %.3f", p.Name, p.Rating), notifier.KindInfo)

	if err := m.repo.Commit(ctx, storage.PutPlayers(next), storage.PutNotifications(feed)); err != nil {
		return club.Player{}, err
	}
	m.mirror(updated)
	log.Info("Rating overridden", "playerID", playerID, "rating", p.Rating)
	return p, nil
}

// DeletePlayer removes a player. Their past matches stay in the history.
func (m *Manager) DeletePlayer(ctx context.Context, playerID string, confirm bool) error {
	unlock := m.lock()
	defer unlock()

	t, err := m.repo.LoadTournament(ctx)
	if err != nil {
		return err
	}
	if t.Active() && t.Includes(playerID) {
		return ErrPlayerInActiveTournament
	}
	players, err := m.repo.LoadPlayers(ctx)
	if err != nil {
		return err
	}
	next, err := club.Remove(players, playerID)
	if err != nil {
		return err
	}
	if !confirm {
		return ErrConfirmationRequired
	}

	removed, _ := club.Find(players, playerID)
	feed, err := m.repo.LoadNotifications(ctx)
	if err != nil {
		return err
	}
	feed, deleted := m.push(feed, fmt.Sprintf("%s was deleted.", removed.Name), notifier.KindWarning)

	changes := []storage.Change{storage.PutPlayers(next), storage.PutNotifications(feed)}
	if sess, err := m.repo.LoadSession(ctx); err == nil && sess != nil && sess.PlayerID == playerID {
		changes = append(changes, storage.PutSession(nil))
	}
	if err := m.repo.Commit(ctx, changes...); err != nil {
		return err
	}
	m.mirror(deleted)
	log.Info("Deleted player", "playerID", playerID)
	return nil
}

// DeleteAll wipes players, matches and the tournament.
func (m *Manager) DeleteAll(ctx context.Context, confirm bool) error {
	unlock := m.lock()
	defer unlock()

	t, err := m.repo.LoadTournament(ctx)
	if err != nil {
		return err
	}
	if t.Active() {
		return ErrTournamentActive
	}
	if !confirm {
		return ErrConfirmationRequired
	}
	feed, err := m.repo.LoadNotifications(ctx)
	if err != nil {
		return err
	}
	feed, wiped := m.push(feed, "All players and club history have been deleted.", notifier.KindWarning)

	err = m.repo.Commit(ctx,
		storage.PutPlayers(nil),
		storage.PutMatches(nil),
		storage.PutTournament(nil),
		storage.PutNotifications(feed),
	)
	if err != nil {
		return err
	}
	m.mirror(wiped)
	log.Warn("Deleted all club data")
	return nil
}
