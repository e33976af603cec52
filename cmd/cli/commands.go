package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	playersCmd.Flags().StringP("query", "q", "", "Only list players whose name contains this text")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(tournamentCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(askCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players [id]",
	Short: "Show the leaderboard, or one player's profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return performGetRequest("/players/" + url.PathEscape(args[0]))
		}
		query, _ := cmd.Flags().GetString("query")
		if query != "" {
			return performGetRequest("/players?q=" + url.QueryEscape(query))
		}
		return performGetRequest("/players")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List recorded matches, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/matches")
	},
}

var tournamentCmd = &cobra.Command{
	Use:   "tournament",
	Short: "Show the current tournament bracket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tournament")
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the standings of the current tournament",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tournament/standings")
	},
}

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Show the notification feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/notifications")
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime club counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/stats")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the AI referee a rules question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := json.Marshal(map[string]string{"question": strings.Join(args, " ")})
		if err != nil {
			return fmt.Errorf("failed to encode question: %w", err)
		}
		return performRequest(http.MethodPost, "/referee/ask", body)
	},
}

func performGetRequest(endpoint string) error {
	return performRequest(http.MethodGet, endpoint, nil)
}

func performRequest(method, endpoint string, payload []byte) error {
	target := host + endpoint
	fmt.Printf("Making request to %s\n", target)

	req, err := http.NewRequest(method, target, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
