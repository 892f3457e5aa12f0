package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haakonsen/gamenode/internal/config"
	"github.com/haakonsen/gamenode/internal/storage"
)

var flagSessionID int64

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded session results",
	Long: `Display the top 10 recorded play sessions for this node, or the
life-loss events of one session.

Examples:
  gamenode scores
  gamenode scores --db ./sessions.db
  gamenode scores --session 3`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().Int64Var(&flagSessionID, "session", 0, "Show life-loss events for a session ID")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	dbPath := cfg.Storage.DBPath
	if flagDBPath != "" {
		dbPath = flagDBPath
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagSessionID > 0 {
		printLifeEvents(store, flagSessionID)
		return
	}

	sessions, err := store.TopSessions(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Session Results")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'gamenode run' to play the first session!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-10s  %-12s  %s\n", "Rank", "Score", "Lives", "Mode", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-10s  %-12s  %s\n", "----", "-----", "-----", "----", "----------", "----")

	for i, s := range sessions {
		dateStr := s.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-10s  %-12s  %s\n", i+1, s.Score, s.LivesLeft, s.Mode, s.Difficulty, dateStr)
	}

	fmt.Println()
	if high, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}

func printLifeEvents(store *storage.Store, sessionID int64) {
	events, err := store.LifeEvents(sessionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving life events: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Life events for session %d\n", sessionID)
	fmt.Println()

	if len(events) == 0 {
		fmt.Println("No life losses recorded.")
		return
	}

	fmt.Printf("  %-6s  %-6s  %s\n", "Tick", "Lives", "Date")
	fmt.Printf("  %-6s  %-6s  %s\n", "----", "-----", "----")
	for _, e := range events {
		fmt.Printf("  %-6d  %-6d  %s\n", e.Tick, e.LivesLeft, e.CreatedAt.Format("2006-01-02 15:04:05"))
	}
}
