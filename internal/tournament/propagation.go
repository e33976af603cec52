package tournament

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pickle-boom/internal/club"
)

// RecordResult decides a bracket match and advances its winner. It returns
// a new tournament together with the decided match; t itself is never
// modified, so on error the caller still holds the untouched state.
//
// An even match index feeds the first slot of the next match and an odd one
// the second. Deciding the match without a successor completes the
// tournament and names the champion.
func RecordResult(t *Tournament, matchID string, score1, score2 int) (*Tournament, club.Match, error) {
	if t == nil {
		return nil, club.Match{}, ErrNoTournament
	}
	if t.Status == StatusCompleted {
		return nil, club.Match{}, ErrTournamentCompleted
	}
	i := t.indexOf(matchID)
	if i < 0 {
		return nil, club.Match{}, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	}
	current := t.Matches[i]
	if current.Decided() {
		return nil, club.Match{}, fmt.Errorf("%w: %s", ErrMatchAlreadyDecided, matchID)
	}
	if current.Player1ID == "" || current.Player2ID == "" {
		return nil, club.Match{}, fmt.Errorf("%w: %s", ErrMatchNotReady, matchID)
	}
	if score1 < 0 || score2 < 0 {
		return nil, club.Match{}, ErrNegativeScore
	}
	if score1 == score2 {
		return nil, club.Match{}, ErrDrawNotAllowed
	}

	next := t.Clone()
	decided := &next.Matches[i]
	decided.Score1 = score1
	decided.Score2 = score2
	winnerID, winnerPartner := decided.Player1ID, decided.Partner1ID
	if score2 > score1 {
		winnerID, winnerPartner = decided.Player2ID, decided.Partner2ID
	}
	decided.WinnerID = winnerID

	if decided.NextMatchID == "" {
		next.Status = StatusCompleted
		next.ChampionID = winnerID
		log.Info("Tournament completed", "tournamentID", next.ID, "championID", winnerID)
		return next, *decided, nil
	}

	j := next.indexOf(decided.NextMatchID)
	if j < 0 {
		return nil, club.Match{}, fmt.Errorf("next match %s of %s: %w", decided.NextMatchID, matchID, ErrMatchNotFound)
	}
	successor := &next.Matches[j]
	if decided.MatchIndex%2 == 0 {
		successor.Player1ID, successor.Partner1ID = winnerID, winnerPartner
	} else {
		successor.Player2ID, successor.Partner2ID = winnerID, winnerPartner
	}
	log.Debug("Advanced winner", "matchID", matchID, "winnerID", winnerID, "nextMatchID", successor.ID)
	return next, *decided, nil
}
