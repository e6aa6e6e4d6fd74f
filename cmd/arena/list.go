package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/games/snake"
	"github.com/vovakirdan/snake-arena/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List modes and levels",
	Long:  `Shows the registered modes and the levels of the active configuration.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()

	fmt.Println("Modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	cat, err := snake.CatalogFromConfig(cfg)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Levels (%dx%d board):\n", cfg.Grid.Cols, cfg.Grid.Rows)
	fmt.Println()
	for i := 1; i <= cat.Count(); i++ {
		lvl := cat.Level(i)
		marker := " "
		if i == cat.Clamp(cfg.Level) {
			marker = "*"
		}
		fmt.Printf(" %s%2d. %-20s %4d walls\n", marker, i, lvl.Name, lvl.WallCount())
	}

	fmt.Println()
	fmt.Println("Run 'arena play <id> --level <n>' to play.")
	return nil
}
