package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("embedded defaults differ from DefaultSnakeConfig:\n%+v\n%+v", cfg, DefaultSnakeConfig())
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestParseSnakeOverlaysDefaults(t *testing.T) {
	cfg, err := ParseSnake([]byte("win_points: 10\ngrid:\n  rows: 12\n"))
	if err != nil {
		t.Fatalf("ParseSnake: %v", err)
	}
	if cfg.WinPoints != 10 {
		t.Errorf("got win_points %d, expected 10", cfg.WinPoints)
	}
	if cfg.Grid.Rows != 12 {
		t.Errorf("got rows %d, expected 12", cfg.Grid.Rows)
	}
	if cfg.Grid.Cols != 32 {
		t.Errorf("got cols %d, expected default 32", cfg.Grid.Cols)
	}
	if len(cfg.Bots) != 3 {
		t.Errorf("got %d bots, expected default 3", len(cfg.Bots))
	}
}

func TestParseSnakeReplacesBots(t *testing.T) {
	data := []byte(`
bots:
  - name: Solo
    min_speed_ms: 200
    max_speed_ms: 50
    start: {row: 2, col: 2}
    length: 3
`)
	cfg, err := ParseSnake(data)
	if err != nil {
		t.Fatalf("ParseSnake: %v", err)
	}
	if len(cfg.Bots) != 1 || cfg.Bots[0].Name != "Solo" {
		t.Fatalf("got bots %+v, expected only Solo", cfg.Bots)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	if err := os.WriteFile(path, []byte("level: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake: %v", err)
	}
	if cfg.Level != 3 {
		t.Errorf("got level %d, expected 3", cfg.Level)
	}

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadSnakeRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	if err := os.WriteFile(path, []byte("win_points: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSnake(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("got %v, expected ErrInvalid", err)
	}
}

func TestLoadSnakeLevelsDir(t *testing.T) {
	dir := t.TempDir()
	lvlDir := filepath.Join(dir, "levels")
	if err := os.MkdirAll(lvlDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(lvlDir, "box.yaml"), []byte("name: Box\nadd: [1, 2]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "snake.yaml")
	if err := os.WriteFile(path, []byte("levels_dir: "+lvlDir+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake: %v", err)
	}
	if len(cfg.Levels) != 1 || cfg.Levels[0].Name != "Box" {
		t.Errorf("got levels %+v, expected Box", cfg.Levels)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		valid  bool
	}{
		{"defaults", func(*SnakeConfig) {}, true},
		{"zero rows", func(c *SnakeConfig) { c.Grid.Rows = 0 }, false},
		{"zero cell size", func(c *SnakeConfig) { c.Grid.CellSize = 0 }, false},
		{"negative level", func(c *SnakeConfig) { c.Level = -1 }, false},
		{"zero win points", func(c *SnakeConfig) { c.WinPoints = 0 }, false},
		{"speeds equal", func(c *SnakeConfig) { c.Player.MinSpeedMs = c.Player.MaxSpeedMs }, false},
		{"speeds swapped", func(c *SnakeConfig) { c.Player.MinSpeedMs, c.Player.MaxSpeedMs = 32, 300 }, false},
		{"start off grid", func(c *SnakeConfig) { c.Bots[0].Start.Row = 99 }, false},
		{"bad heading", func(c *SnakeConfig) { c.Player.Heading = "north" }, false},
		{"bad color", func(c *SnakeConfig) { c.Player.Color = "plaid" }, false},
		{"empty name", func(c *SnakeConfig) { c.Bots[1].Name = " " }, false},
		{"zero length", func(c *SnakeConfig) { c.Player.Length = 0 }, false},
		{"empty weights", func(c *SnakeConfig) { c.Food.SpawnWeights = nil }, false},
		{"zero weights", func(c *SnakeConfig) { c.Food.SpawnWeights = []int{0, 0} }, false},
		{"negative weight", func(c *SnakeConfig) { c.Food.SpawnWeights = []int{1, -1} }, false},
		{"zero depth", func(c *SnakeConfig) { c.BotAI.SearchDepth = 0 }, false},
		{"zero idle", func(c *SnakeConfig) { c.BotAI.IdleMs = 0 }, false},
		{"bad stride", func(c *SnakeConfig) {
			c.Levels = []LevelConfig{{Strides: []StrideConfig{{From: 0, To: 10, Step: 0}}}}
		}, false},
		{"reversed range", func(c *SnakeConfig) {
			c.Levels = []LevelConfig{{Ranges: []RangeConfig{{From: 5, To: 1}}}}
		}, false},
		{"bad progression", func(c *SnakeConfig) { c.Difficulty.Progression.Type = "moon" }, false},
		{"no bots", func(c *SnakeConfig) { c.Bots = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid {
				if err == nil {
					t.Error("expected error, got nil")
				} else if !errors.Is(err, ErrInvalid) {
					t.Errorf("got %v, expected ErrInvalid", err)
				}
			}
		})
	}
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		bots    int
		win     int
		enabled bool
		initial float64
	}{
		{DifficultyEasy, 1, 20, true, 0.0},
		{DifficultyNormal, 2, 30, true, 0.3},
		{DifficultyHard, 3, 40, true, 0.7},
		{DifficultyFixed, 3, 30, false, 0.3},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			ApplySnakePreset(&cfg, tt.preset)
			if len(cfg.Bots) != tt.bots {
				t.Errorf("got %d bots, expected %d", len(cfg.Bots), tt.bots)
			}
			if cfg.WinPoints != tt.win {
				t.Errorf("got win points %d, expected %d", cfg.WinPoints, tt.win)
			}
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("got enabled %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.initial {
				t.Errorf("got initial level %v, expected %v", cfg.Difficulty.InitialLevel, tt.initial)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("empty preset: got %q %v, expected normal", p, ok)
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("got %q %v, expected hard", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("expected unknown preset to be rejected")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultSnakeConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(0, 0); got != 0.3 {
		t.Errorf("level at start: got %v, expected 0.3", got)
	}
	if got := dm.Level(25, 0); got != 1.0 {
		t.Errorf("level at max_at: got %v, expected 1.0", got)
	}
	if got := dm.Level(100, 0); got != 1.0 {
		t.Errorf("level past max_at: got %v, expected 1.0", got)
	}
	if got := dm.SearchDepth(8, 25, 0); got != 14 {
		t.Errorf("depth at max: got %d, expected 14", got)
	}
	if got := dm.IdleMs(8000, 25, 0); got != 2000 {
		t.Errorf("idle at max: got %d, expected 2000", got)
	}

	cfg.Enabled = false
	fixed := NewDifficultyManager(cfg)
	if fixed.IsEnabled() {
		t.Error("expected disabled manager")
	}
	if got := fixed.Level(25, 0); got != 0.3 {
		t.Errorf("disabled level: got %v, expected 0.3", got)
	}

	cfg.Enabled = true
	cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 10}
	timed := NewDifficultyManager(cfg)
	if got := timed.Level(0, 10); got != 1.0 {
		t.Errorf("time level: got %v, expected 1.0", got)
	}
}

func TestLoadLevelDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.yaml":     "name: Second\nadd: [5]\n",
		"a.yml":      "name: First\nranges: [{from: 0, to: 3}]\n",
		"notes.txt":  "ignored",
		"broken.yml": "name: [\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	levels, err := LoadLevelDir(dir)
	if err != nil {
		t.Fatalf("LoadLevelDir: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("got %d levels, expected 2", len(levels))
	}
	if levels[0].Name != "First" || levels[1].Name != "Second" {
		t.Errorf("got order %q, %q, expected First, Second", levels[0].Name, levels[1].Name)
	}
	if levels[0].ID != "a" {
		t.Errorf("got id %q, expected file name a", levels[0].ID)
	}

	if _, err := LoadLevelDir(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestMapWalls(t *testing.T) {
	got := MapWalls([]string{
		"#..#",
		".#..##",
	}, 4)
	expected := []int{0, 3, 5}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("got %v, expected %v", got, expected)
	}
}
