package config

import "github.com/vovakirdan/snake-arena/internal/core"

// DifficultyManager derives bot tuning from the round's progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for the leading
// score and the elapsed seconds.
func (d *DifficultyManager) Level(score int, seconds int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(seconds) / maxAt
	default:
		return d.initialLevel
	}
	progress = core.ClampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SearchDepth grows the bot search depth with difficulty.
func (d *DifficultyManager) SearchDepth(base int, score int, seconds int) int {
	level := d.Level(score, seconds)
	return base + int(level*float64(d.cfg.Scaling.SearchDepthBonus))
}

// IdleMs shortens the bot idle time with difficulty. It never drops below
// a tenth of base.
func (d *DifficultyManager) IdleMs(base int, score int, seconds int) int {
	level := d.Level(score, seconds)
	reduction := core.ClampF(d.cfg.Scaling.IdleReduction, 0.0, 0.9)
	return int(float64(base) * (1.0 - level*reduction))
}
