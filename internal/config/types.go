package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	AdminPassword string
	ProjectID     string
	Turso         TursoConfig
	Slack         SlackConfig
	AI            AIConfig
}

// TursoConfig points at a remote libSQL primary. An empty PrimaryURL keeps
// the database local.
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// SlackConfig enables mirroring notifications to a channel when both fields are set.
type SlackConfig struct {
	Token     string
	ChannelID string
}

func (c SlackConfig) Enabled() bool {
	return c.Token != "" && c.ChannelID != ""
}

type AIConfig struct {
	APIKey            string
	Model             string
	Timeout           time.Duration
	RequestsPerMinute int
}
