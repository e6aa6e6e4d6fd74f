package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/games/snake"
	"github.com/vovakirdan/snake-arena/internal/registry"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

var flagRounds int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent rounds",
	Long: `Display the top 10 high scores for a mode (default: snake)
and its most recent rounds.

Examples:
  arena scores
  arena scores snake_bots --rounds 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRounds, "rounds", 5, "Number of recent rounds to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := string(snake.ModePlayer)
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'arena list' to see available modes", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", registry.Title(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arena play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-6s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-16s  %-6d  %s\n", i+1, entry.Player, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Rounds: %d  Wins: %d\n", stats.HighScore, stats.Rounds, stats.Wins)
	}

	if flagRounds <= 0 {
		return nil
	}
	rounds, err := store.RecentRounds(gameID, flagRounds)
	if err != nil {
		return fmt.Errorf("retrieving rounds: %w", err)
	}
	if len(rounds) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent rounds:")
	for _, r := range rounds {
		fmt.Printf("  %s  level %-2d %-9s %-8s", r.CreatedAt.Format("2006-01-02 15:04"), r.Level, r.Outcome,
			(time.Duration(r.DurationMs) * time.Millisecond).Truncate(time.Second))
		if r.Winner != "" {
			fmt.Printf("  winner %s", r.Winner)
		} else if r.Cause != "" {
			fmt.Printf("  %s", r.Cause)
		}
		fmt.Println()
		for _, a := range r.Agents {
			fmt.Printf("      %-12s %3d pts  len %-3d %s\n", a.Name, a.Points, a.Length, a.Status)
		}
	}
	return nil
}
