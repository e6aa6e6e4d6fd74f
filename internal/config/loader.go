package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads the arena configuration.
// Search order: customPath -> ~/.snake-arena/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
// The result is validated.
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg, err := loadSnake(customPath)
	if err != nil {
		return cfg, err
	}
	if cfg.LevelsDir != "" {
		extra, err := LoadLevelDir(expandHome(cfg.LevelsDir))
		if err != nil {
			return cfg, err
		}
		cfg.Levels = append(cfg.Levels, extra...)
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadSnake(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSnakeConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseSnake(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseSnake(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if cfg, err := ParseSnake(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseSnake(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseSnake decodes YAML over the hardcoded defaults.
func ParseSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultSnakeConfig(), err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to a config file in the user's config directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake-arena", "configs", filename)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
	if limit := BotLimitForPreset(preset); limit > 0 && len(cfg.Bots) > limit {
		cfg.Bots = cfg.Bots[:limit]
	}
	switch preset {
	case DifficultyEasy:
		cfg.WinPoints = max(1, cfg.WinPoints*2/3)
	case DifficultyHard:
		cfg.WinPoints = cfg.WinPoints * 4 / 3
	}
}
