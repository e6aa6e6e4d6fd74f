package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
)

// CatalogFromConfig returns the built-in levels followed by the configured
// ones.
func CatalogFromConfig(c config.SnakeConfig) (*Catalog, error) {
	cat := DefaultCatalog()
	for _, lc := range c.Levels {
		spec := LevelSpec{
			Name:    lc.Name,
			Extends: lc.Extends,
			Add:     append(append([]int(nil), lc.Add...), config.MapWalls(lc.Map, c.Grid.Cols)...),
			Remove:  lc.Remove,
		}
		for _, r := range lc.Ranges {
			spec.Spans = append(spec.Spans, Span{From: r.From, To: r.To})
		}
		for _, s := range lc.Strides {
			spec.Strides = append(spec.Strides, Stride{From: s.From, To: s.To, Step: s.Step})
		}
		if err := cat.Append(spec); err != nil {
			return nil, fmt.Errorf("config levels: %w", err)
		}
	}
	return cat, nil
}

// ArenaConfig converts a loaded configuration. Without a player the round
// is bot-only.
func ArenaConfig(c config.SnakeConfig, withPlayer bool) (Config, error) {
	out := Config{
		Rows:      c.Grid.Rows,
		Cols:      c.Grid.Cols,
		CellSize:  c.Grid.CellSize,
		Level:     c.Level,
		WinPoints: c.WinPoints,
		BotAI: BotAIConfig{
			SearchDepth: c.BotAI.SearchDepth,
			Idle:        time.Duration(c.BotAI.IdleMs) * time.Millisecond,
			SearchMark:  time.Duration(c.BotAI.SearchMarkMs) * time.Millisecond,
		},
		SpawnWeights: c.Food.SpawnWeights,
	}
	if withPlayer {
		p, err := agentConfig(c.Player, core.ColorBrightGreen)
		if err != nil {
			return out, err
		}
		out.Player = &p
	}
	for _, b := range c.Bots {
		ac, err := agentConfig(b, core.ColorOrange)
		if err != nil {
			return out, err
		}
		out.Bots = append(out.Bots, ac)
	}
	return out, nil
}

func agentConfig(a config.AgentConfig, fallback core.Color) (AgentConfig, error) {
	heading, ok := ParseDirection(a.Heading)
	if !ok {
		return AgentConfig{}, fmt.Errorf("agent %q: unknown heading %q", a.Name, a.Heading)
	}
	color := fallback
	if a.Color != "" {
		c, ok := core.ParseColor(a.Color)
		if !ok {
			return AgentConfig{}, fmt.Errorf("agent %q: unknown color %q", a.Name, a.Color)
		}
		color = c
	}
	return AgentConfig{
		Name:       a.Name,
		Color:      color,
		MinSpeedMs: a.MinSpeedMs,
		MaxSpeedMs: a.MaxSpeedMs,
		Start:      Pos{Row: a.Start.Row, Col: a.Start.Col},
		Length:     a.Length,
		Heading:    heading,
	}, nil
}

// NewArenaFromConfig builds an arena straight from a loaded configuration.
func NewArenaFromConfig(c config.SnakeConfig, withPlayer bool, opts ...Option) (*Arena, error) {
	cat, err := CatalogFromConfig(c)
	if err != nil {
		return nil, err
	}
	ac, err := ArenaConfig(c, withPlayer)
	if err != nil {
		return nil, err
	}
	return NewArena(ac, append([]Option{WithCatalog(cat)}, opts...)...)
}
