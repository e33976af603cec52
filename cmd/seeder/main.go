package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mauv0809/pickle-boom/internal/club"
	"github.com/mauv0809/pickle-boom/internal/database"
	"github.com/mauv0809/pickle-boom/internal/storage"
)

// demoRoster is the club a fresh install starts with.
var demoRoster = []struct {
	name   string
	rating float64
}{
	{"John Doe", 3.254},
	{"Jane Smith", 3.421},
	{"Bob Wilson", 2.890},
	{"Alice Cooper", 3.105},
	{"Mike Johnson", 4.050},
	{"Sarah Connor", 2.950},
	{"Tom Hardy", 3.670},
	{"Emily Blunt", 4.120},
}

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{"MIGRATIONS_DIR": "./migrations"}
	for _, key := range []string{"DB_NAME", "TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN", "MIGRATIONS_DIR"} {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			config[key] = value
		}
	}
	if config["DB_NAME"] == "" && config["TURSO_PRIMARY_URL"] == "" {
		log.Fatalf("Error: Required environment variable DB_NAME is not set.")
	}
	return config
}

func main() {
	numMatches := flag.Int("matches", 0, "random casual matches to play between the seeded players")
	force := flag.Bool("force", false, "replace an existing roster")
	flag.Parse()

	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"], cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	ctx := context.Background()
	repo := storage.New(db)

	existing, err := repo.LoadPlayers(ctx)
	if err != nil {
		log.Fatalf("Failed to load players: %s", err)
	}
	if len(existing) > 0 && !*force {
		log.Info("Roster already present, nothing to do. Use -force to replace it.", "players", len(existing))
		return
	}

	players := make([]club.Player, 0, len(demoRoster))
	for _, entry := range demoRoster {
		p, err := club.NewPlayer(entry.name, entry.rating)
		if err != nil {
			log.Fatalf("Failed to create player %s: %s", entry.name, err)
		}
		players = append(players, p)
	}

	var history []club.Match
	startTime := time.Now()
	for i := 0; i < *numMatches; i++ {
		a := rand.Intn(len(players))
		b := (a + 1 + rand.Intn(len(players)-1)) % len(players)
		winner, loser := 11, rand.Intn(10)
		if rand.Intn(2) == 1 {
			winner, loser = loser, winner
		}
		match := club.Match{
			ID:        uuid.NewString(),
			Player1ID: players[a].ID,
			Player2ID: players[b].ID,
			Score1:    winner,
			Score2:    loser,
			Date:      startTime.Add(-time.Duration(rand.Intn(90*24)) * time.Hour),
		}
		players, history, err = club.Record(players, history, match)
		if err != nil {
			log.Fatalf("Failed to record match: %s", err)
		}
	}

	err = repo.Commit(ctx,
		storage.PutPlayers(players),
		storage.PutMatches(history),
		storage.PutTournament(nil),
	)
	if err != nil {
		log.Fatalf("Failed to save roster: %s", err)
	}
	log.Info("Seeded roster", "players", len(players), "matches", len(history), "duration", time.Since(startTime))
}
