// arena is a terminal snake arena where a player races bot snakes for food.
//
// Usage:
//
//	arena list              - List modes and levels
//	arena play [mode]       - Play a mode
//	arena menu              - Pick modes and levels interactively
//	arena sim               - Run a headless bot-only round
//	arena serve             - Start SSH server for remote play
//	arena scores [mode]     - Show high scores and recent rounds
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible rounds
//	--db <path>          - Set database path (default: ~/.snake-arena/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: warn)
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/games/snake"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Snake Arena - race bot snakes in your terminal",
	Long: `Snake Arena is a terminal game where your snake competes with
bot snakes for food on a walled, wrapping board.

Available commands:
  list     - Show modes and levels
  play     - Play a mode directly
  menu     - Interactive mode and level picker
  sim      - Run a headless bot-only round
  serve    - Start SSH server for remote play
  scores   - View high scores and recent rounds

Examples:
  arena list
  arena play
  arena play snake_bots --level 3
  arena sim --seed 42 --save
  arena serve --ssh :2222
  arena scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake-arena/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogging installs the default logger and hands it to the arena.
// Interactive commands own the terminal, so without --log-file their logs
// are dropped. The returned func closes the log file.
func setupLogging(interactive bool) (func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case interactive:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "arena",
	})
	log.SetDefault(logger)
	snake.SetLogger(logger)
	return closeFn, nil
}
