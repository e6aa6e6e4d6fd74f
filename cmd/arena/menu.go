package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/platform/tui"
	"github.com/vovakirdan/snake-arena/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arena with a mode and level picker",
	Long: `Start the arena in interactive menu mode.

Pick a mode, then a level. After a round you return to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Esc/B        - Back
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arena menu
  arena menu --fps 30
  arena menu --difficulty hard --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	closeLog, err := setupLogging(true)
	if err != nil {
		return err
	}
	defer closeLog()
	applyGameFlags()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			log.Error("could not create game", "game", menuResult.GameID, "err", err)
			continue
		}
		tui.ApplyLevel(game, menuResult.Level)

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, store, cfg, playerName()); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
