package pubsub

import (
	"cloud.google.com/go/pubsub"
	"github.com/mauv0809/pickle-boom/internal/club"
)

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType is the topic a domain event is published on.
type EventType string

const (
	EventMatchRecorded       EventType = "match-recorded"
	EventTournamentStarted   EventType = "tournament-started"
	EventTournamentCompleted EventType = "tournament-completed"
)

// MatchRecorded is published after a match and its rating update are saved.
type MatchRecorded struct {
	Match   club.Match    `msgpack:"match"`
	Players []club.Player `msgpack:"players"`
}

// TournamentEvent is published when a tournament starts or finishes.
type TournamentEvent struct {
	TournamentID string `msgpack:"tournament_id"`
	Name         string `msgpack:"name"`
	Format       string `msgpack:"format"`
	ChampionID   string `msgpack:"champion_id,omitempty"`
}
