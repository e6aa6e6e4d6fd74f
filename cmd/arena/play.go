package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/games/snake"
	"github.com/vovakirdan/snake-arena/internal/platform/tui"
	"github.com/vovakirdan/snake-arena/internal/registry"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start a round in the given mode (default: snake).

Modes:
  snake       - You against the configured bots
  snake_bots  - Watch the bots play each other

Controls:
  Arrows/WASD/HJKL - Turn
  Space            - Toggle boost
  P                - Pause
  R                - Restart (after the round ends)
  Esc/B            - Leave (when paused or after the round ends)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - One bot, bots start slow to react
  normal - Two bots
  hard   - Three bots, sharper from the start
  fixed  - No tuning, bots stay as configured

Examples:
  arena play
  arena play snake --difficulty hard
  arena play snake_bots --level 3
  arena play --config ./my-arena.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags that shape a round.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (0 = from config)")
}

// applyGameFlags hands the round flags to the snake package.
func applyGameFlags() {
	snake.SetConfigPath(flagConfig)
	snake.SetDifficultyPreset(flagDifficulty)
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. The game still runs without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// playerName names the local player in score rows.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := string(snake.ModePlayer)
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'arena list' to see available modes", gameID)
	}

	closeLog, err := setupLogging(true)
	if err != nil {
		return err
	}
	defer closeLog()
	applyGameFlags()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	tui.ApplyLevel(game, flagLevel)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, terminalConfig(), playerName()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
