// Package config loads arena settings from YAML.
package config

// SnakeConfig holds the complete arena configuration.
type SnakeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Level      int              `yaml:"level"`      // Starting level ordinal (1-based)
	WinPoints  int              `yaml:"win_points"` // Points needed to win a round
	Player     AgentConfig      `yaml:"player"`
	Bots       []AgentConfig    `yaml:"bots"`
	BotAI      BotAIConfig      `yaml:"bot_ai"`
	Food       FoodConfig       `yaml:"food"`
	Levels     []LevelConfig    `yaml:"levels"`     // Extra levels appended after the built-in ones
	LevelsDir  string           `yaml:"levels_dir"` // Directory of level files appended after Levels
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the board size.
type GridConfig struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	CellSize int `yaml:"cell_size"` // Display-only
}

// PositionConfig is a (row, col) cell.
type PositionConfig struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// AgentConfig describes one snake.
type AgentConfig struct {
	Name       string         `yaml:"name"`
	Color      string         `yaml:"color"`
	MinSpeedMs float64        `yaml:"min_speed_ms"` // Slowest tick interval
	MaxSpeedMs float64        `yaml:"max_speed_ms"` // Fastest tick interval
	Start      PositionConfig `yaml:"start"`        // Tail cell
	Length     int            `yaml:"length"`
	Heading    string         `yaml:"heading"` // up, down, left, right
}

// BotAIConfig tunes the bot policy.
type BotAIConfig struct {
	SearchDepth  int `yaml:"search_depth"`
	IdleMs       int `yaml:"idle_ms"`
	SearchMarkMs int `yaml:"search_mark_ms"`
}

// FoodConfig tunes food spawning.
type FoodConfig struct {
	// SpawnWeights[i] is the relative chance of spawning i+1 items after a meal.
	SpawnWeights []int `yaml:"spawn_weights"`
}

// LevelConfig composes a level from ranges, strides and patches.
// Map rows draw walls directly: '#' marks a wall, anything else is open.
type LevelConfig struct {
	ID      string         `yaml:"id,omitempty"` // Sort key for level files
	Name    string         `yaml:"name"`
	Extends int            `yaml:"extends"` // Ordinal of an earlier level, 0 for none
	Ranges  []RangeConfig  `yaml:"ranges"`
	Strides []StrideConfig `yaml:"strides"`
	Add     []int          `yaml:"add"`
	Remove  []int          `yaml:"remove"`
	Map     []string       `yaml:"map,omitempty"`
}

// RangeConfig is an inclusive run of cell indices.
type RangeConfig struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// StrideConfig is an inclusive sequence from, from+step, ... <= to.
type StrideConfig struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
	Step int `yaml:"step"`
}

// DifficultyConfig defines how bots sharpen as the round goes on.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives difficulty up.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SearchDepthBonus int     `yaml:"search_depth_bonus"` // Extra search depth at max difficulty
	IdleReduction    float64 `yaml:"idle_reduction"`     // Fraction of idle time removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// BotLimitForPreset returns how many configured bots a preset keeps.
// Zero means all of them.
func BotLimitForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 2
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. Empty selects normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	if name == "" {
		return DifficultyNormal, true
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}
