package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hardcoded arena configuration. It matches
// the embedded defaults/snake.yaml.
func DefaultSnakeConfig() SnakeConfig {
	bot := func(name, color string, row, col int, heading string) AgentConfig {
		return AgentConfig{
			Name:       name,
			Color:      color,
			MinSpeedMs: 400,
			MaxSpeedMs: 60,
			Start:      PositionConfig{Row: row, Col: col},
			Length:     4,
			Heading:    heading,
		}
	}
	return SnakeConfig{
		Grid:      GridConfig{Rows: 24, Cols: 32, CellSize: 10},
		Level:     1,
		WinPoints: 30,
		Player: AgentConfig{
			Name:       "Player",
			Color:      "bright_green",
			MinSpeedMs: 300,
			MaxSpeedMs: 32,
			Start:      PositionConfig{Row: 12, Col: 4},
			Length:     4,
			Heading:    "right",
		},
		Bots: []AgentConfig{
			bot("Viper", "orange", 8, 20, "right"),
			bot("Cobra", "magenta", 16, 22, "up"),
			bot("Asp", "cyan", 1, 8, "right"),
		},
		BotAI: BotAIConfig{
			SearchDepth:  8,
			IdleMs:       8000,
			SearchMarkMs: 250,
		},
		Food: FoodConfig{SpawnWeights: []int{70, 20, 10}},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 25,
			},
			Scaling: ScalingConfig{
				SearchDepthBonus: 6,
				IdleReduction:    0.75,
			},
		},
	}
}
