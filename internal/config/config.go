package config

import (
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	defaultMigrationsDir     = "./migrations"
	defaultAdminPassword     = "admin"
	defaultAITimeout         = 30 * time.Second
	defaultRequestsPerMinute = 10
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}
	cfg, missing := load(os.LookupEnv)
	if missing != "" {
		log.Fatalf("Error: Required environment variable %s is not set.", missing)
	}
	return cfg
}

// load builds the Config from lookup. It reports the first required
// variable that is missing.
func load(lookup func(string) (string, bool)) (Config, string) {
	missing := ""
	getEnv := func(key string) string {
		if value, ok := lookup(key); ok {
			return value
		}
		if missing == "" {
			missing = key
		}
		return ""
	}
	getEnvOrDefault := func(key, fallback string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		return fallback
	}
	getDuration := func(key string, fallback time.Duration) time.Duration {
		value, ok := lookup(key)
		if !ok || value == "" {
			return fallback
		}
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			log.Warn("Ignoring invalid duration", "key", key, "value", value)
			return fallback
		}
		return d
	}
	getInt := func(key string, fallback int) int {
		value, ok := lookup(key)
		if !ok || value == "" {
			return fallback
		}
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			log.Warn("Ignoring invalid number", "key", key, "value", value)
			return fallback
		}
		return n
	}

	cfg := Config{
		DBName:        getEnv("DB_NAME"),
		Port:          getEnv("PORT"),
		MigrationsDir: getEnvOrDefault("MIGRATIONS_DIR", defaultMigrationsDir),
		AdminPassword: getEnvOrDefault("ADMIN_PASSWORD", defaultAdminPassword),
		ProjectID:     getEnvOrDefault("GCP_PROJECT", ""),
		Turso: TursoConfig{
			PrimaryURL: getEnvOrDefault("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvOrDefault("TURSO_AUTH_TOKEN", ""),
		},
		Slack: SlackConfig{
			Token:     getEnvOrDefault("SLACK_BOT_TOKEN", ""),
			ChannelID: getEnvOrDefault("SLACK_CHANNEL_ID", ""),
		},
		AI: AIConfig{
			APIKey:            getEnvOrDefault("GEMINI_API_KEY", ""),
			Model:             getEnvOrDefault("GEMINI_MODEL", ""),
			Timeout:           getDuration("AI_TIMEOUT", defaultAITimeout),
			RequestsPerMinute: getInt("AI_REQUESTS_PER_MINUTE", defaultRequestsPerMinute),
		},
	}
	return cfg, missing
}
