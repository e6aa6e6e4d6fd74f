package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadLevelDir recursively loads every .yaml/.yml level file under root.
// Files that fail to parse are skipped. Levels are returned sorted by ID,
// falling back to the file name when a file sets no ID.
func LoadLevelDir(root string) ([]LevelConfig, error) {
	var levels []LevelConfig

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
		default:
			return nil
		}

		level, err := LoadLevelFile(path)
		if err != nil {
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", root, err)
	}

	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadLevelFile loads a single level file.
func LoadLevelFile(path string) (LevelConfig, error) {
	var lc LevelConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return lc, fmt.Errorf("reading file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &lc); err != nil {
		return lc, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if lc.ID == "" {
		lc.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if lc.Name == "" {
		lc.Name = lc.ID
	}
	return lc, nil
}

// MapWalls returns the wall indices drawn in a level map for a grid with
// cols columns. Rows longer than cols are cut off.
func MapWalls(rows []string, cols int) []int {
	var walls []int
	for r, line := range rows {
		for c, ch := range []rune(line) {
			if c >= cols {
				break
			}
			if ch == '#' {
				walls = append(walls, r*cols+c)
			}
		}
	}
	return walls
}
