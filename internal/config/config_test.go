package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, missing := load(env(map[string]string{"DB_NAME": "club.db", "PORT": "8080"}))
		require.Empty(t, missing)
		assert.Equal(t, "club.db", cfg.DBName)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "./migrations", cfg.MigrationsDir)
		assert.Equal(t, "admin", cfg.AdminPassword)
		assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
		assert.Equal(t, 10, cfg.AI.RequestsPerMinute)
		assert.False(t, cfg.Slack.Enabled())
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, missing := load(env(map[string]string{
			"DB_NAME":                "club.db",
			"PORT":                   "9000",
			"ADMIN_PASSWORD":         "dink",
			"AI_TIMEOUT":             "5s",
			"AI_REQUESTS_PER_MINUTE": "3",
			"SLACK_BOT_TOKEN":        "xoxb-1",
			"SLACK_CHANNEL_ID":       "C1",
			"TURSO_PRIMARY_URL":      "libsql://club.turso.io",
		}))
		require.Empty(t, missing)
		assert.Equal(t, "dink", cfg.AdminPassword)
		assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
		assert.Equal(t, 3, cfg.AI.RequestsPerMinute)
		assert.True(t, cfg.Slack.Enabled())
		assert.Equal(t, "libsql://club.turso.io", cfg.Turso.PrimaryURL)
	})

	t.Run("invalid numbers fall back", func(t *testing.T) {
		cfg, _ := load(env(map[string]string{"DB_NAME": "x", "PORT": "1", "AI_TIMEOUT": "soon", "AI_REQUESTS_PER_MINUTE": "-2"}))
		assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
		assert.Equal(t, 10, cfg.AI.RequestsPerMinute)
	})

	t.Run("missing required", func(t *testing.T) {
		_, missing := load(env(map[string]string{"PORT": "8080"}))
		assert.Equal(t, "DB_NAME", missing)
	})
}
