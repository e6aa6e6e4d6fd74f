package snake

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/registry"
)

// useConfig points the package at a config file holding cfg for the
// duration of the test.
func useConfig(t *testing.T, cfg config.SnakeConfig, preset string) {
	t.Helper()
	data, err := config.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	SetConfigPath(path)
	SetDifficultyPreset(preset)
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})
}

func runtimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: seed}
}

func TestModesRegistered(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{"snake", "Snake Arena"},
		{"snake_bots", "Snake Arena (Bots)"},
	}
	for _, tt := range tests {
		if !registry.Exists(tt.id) {
			t.Errorf("mode %q not registered", tt.id)
			continue
		}
		g, err := registry.Create(tt.id)
		if err != nil {
			t.Fatalf("Create(%q): %v", tt.id, err)
		}
		if g.Title() != tt.title {
			t.Errorf("got title %q, expected %q", g.Title(), tt.title)
		}
	}
}

func TestGameReset(t *testing.T) {
	useConfig(t, config.DefaultSnakeConfig(), "hard")

	g := New()
	g.Reset(runtimeConfig(1))
	if g.Err() != nil {
		t.Fatalf("Reset: %v", g.Err())
	}
	a := g.Arena()
	if a.Player() == nil || len(a.Bots()) != 3 {
		t.Fatalf("got player=%v bots=%d, expected a player and 3 bots", a.Player() != nil, len(a.Bots()))
	}
	if a.Grid().Rows != 24 || a.Grid().Cols != 32 {
		t.Errorf("got grid %dx%d", a.Grid().Rows, a.Grid().Cols)
	}
	if g.Config().WinPoints != 40 {
		t.Errorf("got win points %d, expected 40 on hard", g.Config().WinPoints)
	}

	s := NewSpectator()
	s.Reset(runtimeConfig(1))
	if s.Arena().Player() != nil {
		t.Error("spectator mode should have no player")
	}
}

func TestGameNormalPresetLimitsBots(t *testing.T) {
	useConfig(t, config.DefaultSnakeConfig(), "")

	g := New()
	g.Reset(runtimeConfig(1))
	if got := len(g.Arena().Bots()); got != 2 {
		t.Errorf("got %d bots, expected 2", got)
	}
}

func TestGameStartLevel(t *testing.T) {
	useConfig(t, config.DefaultSnakeConfig(), "hard")

	g := New()
	g.SelectLevel(2)
	g.Reset(runtimeConfig(1))
	if g.Err() != nil {
		t.Fatalf("Reset: %v", g.Err())
	}
	if got := g.Arena().Grid().Level(); got != 2 {
		t.Errorf("got level %d, expected 2", got)
	}
	g.Reset(runtimeConfig(2))
	if got := g.Arena().Grid().Level(); got != 2 {
		t.Errorf("level did not persist across Reset: got %d", got)
	}
}

func TestGameConfigError(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.WinPoints = 0
	useConfig(t, cfg, "fixed")

	g := New()
	g.Reset(runtimeConfig(1))
	if g.Err() == nil || g.Arena() != nil {
		t.Fatal("expected a config error and no arena")
	}
	if !g.State().GameOver {
		t.Error("config error should report game over")
	}
	scr := core.NewScreen(80, 30)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Config error") {
		t.Error("config error overlay missing")
	}
}

func TestGameStepAndRender(t *testing.T) {
	useConfig(t, config.DefaultSnakeConfig(), "hard")

	g := New()
	g.Reset(runtimeConfig(1))
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Elapsed() != 500*ms(1) {
		t.Errorf("got elapsed %v, expected 500ms", g.Elapsed())
	}

	scr := core.NewScreen(80, 30)
	g.Render(scr)
	if !strings.HasPrefix(strings.TrimSpace(scr.Row(0)), "Snake Arena") {
		t.Errorf("HUD row: %q", scr.Row(0))
	}
	if !strings.Contains(scr.Row(0), "Player:") {
		t.Errorf("HUD misses player points: %q", scr.Row(0))
	}
	if !strings.ContainsRune(scr.String(), 'O') {
		t.Error("board has no snake heads")
	}
}

func TestGameResizeKeepsRound(t *testing.T) {
	useConfig(t, config.DefaultSnakeConfig(), "hard")

	g := New()
	g.Reset(runtimeConfig(1))
	a := g.Arena()

	g.Resize(20, 10)
	scr := core.NewScreen(20, 10)
	g.Render(scr)
	if !strings.Contains(scr.String(), "too small") {
		t.Error("expected the too small overlay")
	}
	g.Step(core.NewInputFrame())
	if g.Elapsed() != 0 {
		t.Error("round advanced while the window was too small")
	}

	g.Resize(80, 30)
	if g.Arena() != a {
		t.Error("resize must not restart the round")
	}
}

func TestGamePause(t *testing.T) {
	useConfig(t, config.DefaultSnakeConfig(), "hard")

	g := New()
	g.Reset(runtimeConfig(1))
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	g.Step(core.NewInputFrame())
	if g.Elapsed() != 0 {
		t.Error("paused game advanced")
	}
	g.Step(pause)
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestGameInput(t *testing.T) {
	useConfig(t, config.DefaultSnakeConfig(), "hard")

	g := New()
	g.Reset(runtimeConfig(1))
	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	in.Set(core.ActionLeft)
	in.Set(core.ActionBoost)
	g.Step(in)

	p := g.Arena().Player()
	if got := p.Buffer().Newest(); got != DirLeft {
		t.Errorf("got newest %s, expected left after up", got)
	}
	if !p.Boosting() {
		t.Error("boost should toggle on")
	}
}

func TestGameWinAndRestart(t *testing.T) {
	useConfig(t, config.DefaultSnakeConfig(), "hard")

	g := New()
	g.Reset(runtimeConfig(1))
	p := g.Arena().Player()
	p.Points().Add(g.Config().WinPoints)
	g.Step(core.NewInputFrame())

	st := g.State()
	if !st.GameOver || !st.Won || st.Winner != "Player" {
		t.Fatalf("got state %+v", st)
	}
	scr := core.NewScreen(80, 30)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Player wins!") {
		t.Error("winner overlay missing")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if st := g.State(); st.GameOver || st.Score != 0 {
		t.Errorf("got state %+v after restart", st)
	}
	if g.Arena().Player() == p {
		t.Error("restart should build a new arena")
	}
}

func TestGameDeterministic(t *testing.T) {
	useConfig(t, config.DefaultSnakeConfig(), "normal")

	a, b := NewSpectator(), NewSpectator()
	a.Reset(runtimeConfig(99))
	b.Reset(runtimeConfig(99))
	for i := 0; i < 600; i++ {
		a.Step(core.NewInputFrame())
		b.Step(core.NewInputFrame())
		if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
			t.Fatalf("tick %d: snapshots diverged", i)
		}
	}
}
