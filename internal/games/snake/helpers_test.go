package snake

import (
	"math/rand"
	"testing"
	"time"
)

// testCatalog has an empty level 1 and a level 2 holding walls.
func testCatalog(walls ...int) *Catalog {
	c, err := NewCatalog(LevelSpec{Name: "Empty"}, LevelSpec{Name: "Test", Add: walls})
	if err != nil {
		panic(err)
	}
	return c
}

func newTestGrid(rows, cols int, walls ...int) *Grid {
	return NewGrid(rows, cols, testCatalog(walls...), 2)
}

func agentCfg(name string, row, col, length int, heading Direction) AgentConfig {
	return AgentConfig{
		Name:       name,
		MinSpeedMs: 300,
		MaxSpeedMs: 100,
		Start:      Pos{Row: row, Col: col},
		Length:     length,
		Heading:    heading,
	}
}

func newTestAgent(t *testing.T, g *Grid, cfg AgentConfig, policy MovementPolicy) *Agent {
	t.Helper()
	a, err := NewAgent(g, cfg, policy, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewAgent: %v", err)
	}
	return a
}

func newTestArena(t *testing.T, cfg Config, walls ...int) *Arena {
	t.Helper()
	if cfg.WinPoints == 0 {
		cfg.WinPoints = 100
	}
	if cfg.Level == 0 {
		cfg.Level = 2
	}
	a, err := NewArena(cfg, WithSeed(42), WithCatalog(testCatalog(walls...)))
	if err != nil {
		t.Fatalf("NewArena: %v", err)
	}
	return a
}

// clearFood removes all food from the board.
func clearFood(a *Arena) {
	for _, i := range a.food.Active() {
		if c, ok := a.grid.CellAtIndex(i); ok && c.Kind == CellFood {
			c.Kind = CellEmpty
		}
	}
	a.food.Clear()
}

func placeFood(a *Arena, index int) {
	a.food.Drop(index)
	c, _ := a.grid.CellAtIndex(index)
	c.Kind = CellFood
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// assertNoWallBodies fails if any active agent's body overlaps a wall.
func assertNoWallBodies(t *testing.T, a *Arena) {
	t.Helper()
	for _, ag := range a.Agents() {
		if ag.Status().Dead() {
			continue
		}
		for _, i := range ag.Body() {
			if a.grid.IsWall(i) {
				t.Fatalf("agent %s body on wall %d", ag.Name, i)
			}
		}
	}
}
