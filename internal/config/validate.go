package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/snake-arena/internal/core"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

var headings = map[string]bool{"": true, "up": true, "down": true, "left": true, "right": true}

// Validate checks a configuration for values the arena cannot run with.
func Validate(cfg SnakeConfig) error {
	if cfg.Grid.Rows <= 0 || cfg.Grid.Cols <= 0 {
		return fmt.Errorf("%w: grid must be positive, got %dx%d", ErrInvalid, cfg.Grid.Rows, cfg.Grid.Cols)
	}
	if cfg.Grid.CellSize <= 0 {
		return fmt.Errorf("%w: grid.cell_size must be positive, got %d", ErrInvalid, cfg.Grid.CellSize)
	}
	if cfg.Level < 0 {
		return fmt.Errorf("%w: level must not be negative, got %d", ErrInvalid, cfg.Level)
	}
	if cfg.WinPoints <= 0 {
		return fmt.Errorf("%w: win_points must be positive, got %d", ErrInvalid, cfg.WinPoints)
	}
	if err := validateAgent("player", cfg.Player, cfg.Grid); err != nil {
		return err
	}
	for i, b := range cfg.Bots {
		if err := validateAgent(fmt.Sprintf("bots[%d]", i), b, cfg.Grid); err != nil {
			return err
		}
	}
	if cfg.BotAI.SearchDepth <= 0 {
		return fmt.Errorf("%w: bot_ai.search_depth must be positive", ErrInvalid)
	}
	if cfg.BotAI.IdleMs <= 0 {
		return fmt.Errorf("%w: bot_ai.idle_ms must be positive", ErrInvalid)
	}
	if cfg.BotAI.SearchMarkMs < 0 {
		return fmt.Errorf("%w: bot_ai.search_mark_ms must not be negative", ErrInvalid)
	}
	if err := validateWeights(cfg.Food.SpawnWeights); err != nil {
		return err
	}
	for i, l := range cfg.Levels {
		if err := validateLevel(i, l); err != nil {
			return err
		}
	}
	switch cfg.Difficulty.Progression.Type {
	case "", "score", "time", "none":
	default:
		return fmt.Errorf("%w: difficulty.progression.type %q", ErrInvalid, cfg.Difficulty.Progression.Type)
	}
	return nil
}

func validateAgent(field string, a AgentConfig, g GridConfig) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: %s.name is empty", ErrInvalid, field)
	}
	if a.Color != "" {
		if _, ok := core.ParseColor(a.Color); !ok {
			return fmt.Errorf("%w: %s.color %q is unknown", ErrInvalid, field, a.Color)
		}
	}
	if a.MaxSpeedMs <= 0 || a.MinSpeedMs <= a.MaxSpeedMs {
		return fmt.Errorf("%w: %s needs 0 < max_speed_ms < min_speed_ms, got max=%v min=%v",
			ErrInvalid, field, a.MaxSpeedMs, a.MinSpeedMs)
	}
	if a.Length < 1 {
		return fmt.Errorf("%w: %s.length must be at least 1", ErrInvalid, field)
	}
	if a.Start.Row < 0 || a.Start.Row >= g.Rows || a.Start.Col < 0 || a.Start.Col >= g.Cols {
		return fmt.Errorf("%w: %s.start (%d,%d) is outside the grid", ErrInvalid, field, a.Start.Row, a.Start.Col)
	}
	if !headings[strings.ToLower(strings.TrimSpace(a.Heading))] {
		return fmt.Errorf("%w: %s.heading %q", ErrInvalid, field, a.Heading)
	}
	return nil
}

func validateWeights(weights []int) error {
	if len(weights) == 0 {
		return fmt.Errorf("%w: food.spawn_weights is empty", ErrInvalid)
	}
	total := 0
	for _, w := range weights {
		if w < 0 {
			return fmt.Errorf("%w: food.spawn_weights has a negative weight", ErrInvalid)
		}
		total += w
	}
	if total == 0 {
		return fmt.Errorf("%w: food.spawn_weights sum to zero", ErrInvalid)
	}
	return nil
}

func validateLevel(i int, l LevelConfig) error {
	for _, s := range l.Strides {
		if s.Step <= 0 {
			return fmt.Errorf("%w: levels[%d] stride step must be positive", ErrInvalid, i)
		}
	}
	for _, r := range l.Ranges {
		if r.To < r.From {
			return fmt.Errorf("%w: levels[%d] range %d..%d is reversed", ErrInvalid, i, r.From, r.To)
		}
	}
	if l.Extends < 0 {
		return fmt.Errorf("%w: levels[%d].extends must not be negative", ErrInvalid, i)
	}
	return nil
}
