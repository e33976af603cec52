package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	host    string
	timeout time.Duration
	client  = &http.Client{}
)

var rootCmd = &cobra.Command{
	Use:   "pickle-cli",
	Short: "A CLI to interact with the pickle-boom server",
	Long: `A command-line interface for the pickle-boom club manager: leaderboard,
match history, the current bracket and standings, the notification feed and
the AI referee.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "The host address of the server")
	// ask waits for the AI referee, which can take a while.
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 45*time.Second, "How long to wait for the server")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		client.Timeout = timeout
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
