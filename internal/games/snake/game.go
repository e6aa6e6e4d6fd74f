package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/registry"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

// Mode selects who is on the board.
type Mode string

const (
	ModePlayer   Mode = "snake"      // player plus bots
	ModeSpectate Mode = "snake_bots" // bots only
)

const hudHeight = 2

// Package-level settings applied on the next Reset.
var (
	configPath       string
	difficultyPreset string
	logger           *log.Logger
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLogger sets the logger passed to every new arena.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game adapts an Arena to the registry's fixed-tick game interface.
type Game struct {
	mode   Mode
	cfg    config.SnakeConfig
	arena  *Arena
	diff   *config.DifficultyManager
	rng    *rand.Rand
	err    error
	runCfg core.RuntimeConfig

	tick     uint64 // platform ticks
	simTick  uint64 // ticks that advanced the arena clock
	level    int
	paused   bool
	tooSmall bool
}

// New creates a game with a human player and the configured bots.
func New() *Game {
	return &Game{mode: ModePlayer}
}

// NewSpectator creates a bot-only game.
func NewSpectator() *Game {
	return &Game{mode: ModeSpectate}
}

func init() {
	registry.Register(string(ModePlayer), func() registry.Game {
		return New()
	})
	registry.Register(string(ModeSpectate), func() registry.Game {
		return NewSpectator()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSpectate {
		return "Snake Arena (Bots)"
	}
	return "Snake Arena"
}

// Reset loads the configuration and starts a new round.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}
	g.runCfg = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.simTick = 0
	g.paused = false
	g.err = nil
	g.arena = nil

	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		g.err = err
		return
	}
	if preset, ok := config.ParsePreset(difficultyPreset); ok {
		config.ApplySnakePreset(&cfg, preset)
	}
	if g.level > 0 {
		cfg.Level = g.level
	}
	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)

	opts := []Option{WithRand(g.rng)}
	if logger != nil {
		opts = append(opts, WithLogger(logger.With("mode", string(g.mode))))
	}
	g.arena, g.err = NewArenaFromConfig(cfg, g.mode == ModePlayer, opts...)
	g.Resize(rc.ScreenW, rc.ScreenH)
}

// SelectLevel picks the level used from the next Reset on. 0 keeps the
// configured level.
func (g *Game) SelectLevel(level int) {
	g.level = max(level, 0)
}

// Resize adapts the layout to a new screen size without touching the round.
func (g *Game) Resize(w, h int) {
	g.runCfg.ScreenW = w
	g.runCfg.ScreenH = h
	g.tooSmall = w < g.cfg.Grid.Cols+2 || h < g.cfg.Grid.Rows+2+hudHeight
}

// clock converts simulation ticks to arena time.
func (g *Game) clock() time.Duration {
	return time.Duration(g.simTick) * time.Second / time.Duration(g.runCfg.TickRate)
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.arena == nil {
		return core.StepResult{State: g.State(), Err: g.err}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.arena.Over() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.runCfg.ScreenW,
			ScreenH:  g.runCfg.ScreenH,
			TickRate: g.runCfg.TickRate,
		})
		return core.StepResult{State: g.State(), Err: g.err}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.arena.Over() {
		g.paused = !g.paused
	}

	if g.arena.Over() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State(), Err: g.err}
	}

	g.applyInput(in)

	g.simTick++
	now := g.clock()
	if g.simTick%uint64(g.runCfg.TickRate) == 0 {
		g.tune(now)
		g.arena.Sweep()
	}

	if err := g.arena.Step(now); err != nil && !errors.Is(err, ErrRoundOver) {
		g.err = err
	}
	return core.StepResult{State: g.State(), Err: g.err}
}

// applyInput forwards direction intents in arrival order. Boost toggles,
// since terminals report no key release.
func (g *Game) applyInput(in core.InputFrame) {
	p := g.arena.Player()
	if p == nil {
		return
	}
	for _, a := range in.Directions() {
		switch a {
		case core.ActionUp:
			p.TurnUp()
		case core.ActionDown:
			p.TurnDown()
		case core.ActionLeft:
			p.TurnLeft()
		case core.ActionRight:
			p.TurnRight()
		}
	}
	if in.Has(core.ActionBoost) {
		p.SetBoost(!p.Boosting())
	}
}

// tune sharpens bots as the leading score and elapsed time grow.
func (g *Game) tune(now time.Duration) {
	if g.diff == nil || !g.diff.IsEnabled() {
		return
	}
	score := 0
	if leader := g.arena.Leader(); leader != nil {
		score = leader.Points().Value()
	}
	secs := int(now / time.Second)
	depth := g.diff.SearchDepth(g.cfg.BotAI.SearchDepth, score, secs)
	idle := time.Duration(g.diff.IdleMs(g.cfg.BotAI.IdleMs, score, secs)) * time.Millisecond
	for _, b := range g.arena.Bots() {
		if auto, ok := b.Policy().(*Autonomous); ok {
			auto.Tune(depth, idle)
		}
	}
}

// Render draws the HUD, the board and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.arena == nil {
		g.renderOverlay(dst, core.ColorBrightRed, "Config error", truncate(fmt.Sprint(g.err), dst.Width()-8))
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, core.ColorYellow, "Window too small",
			fmt.Sprintf("Need %dx%d", g.cfg.Grid.Cols+2, g.cfg.Grid.Rows+2+hudHeight))
		return
	}

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	g.arena.Render(NewScreenDisplay(dst, area))

	out := g.arena.Outcome()
	switch {
	case g.arena.IsSaturated():
		g.renderOverlay(dst, core.ColorBrightRed, "Board full", "Press R to restart")
	case out.Won:
		g.renderOverlay(dst, core.ColorBrightGreen, out.Winner+" wins!", "Press R to restart")
	case out.Over && out.Loser != "":
		g.renderOverlay(dst, core.ColorBrightRed, "Game Over", fmt.Sprintf("%s %s", out.Loser, out.Cause))
	case out.Over:
		g.renderOverlay(dst, core.ColorBrightRed, "No snakes left", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, core.ColorCyan, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar: level, then each agent's points.
func (g *Game) renderHUD(dst *core.Screen) {
	grid := g.arena.Grid()
	x := 1
	hud := fmt.Sprintf("%s | L%d/%d %s | to win: %d |", g.Title(), grid.Level(), grid.Catalog().Count(),
		grid.LevelName(), g.cfg.WinPoints)
	dst.DrawText(x, 0, hud)
	x += len([]rune(hud)) + 1

	for _, ag := range g.arena.Agents() {
		label := fmt.Sprintf("%s:%d", ag.Name, ag.Points().Value())
		color := ag.Color
		if !ag.Enabled() {
			label += "x"
			color = core.ColorGray
		} else if ag.Boosting() {
			label += "»"
		}
		dst.DrawColoredText(x, 0, label, color)
		x += len([]rune(label)) + 1
	}

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, color core.Color, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(w, 5)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.arena == nil {
		return core.GameState{GameOver: g.err != nil}
	}
	out := g.arena.Outcome()
	score := 0
	if p := g.arena.Player(); p != nil {
		score = p.Points().Value()
	} else if leader := g.arena.Leader(); leader != nil {
		score = leader.Points().Value()
	}
	won := out.Won
	if p := g.arena.Player(); p != nil {
		won = out.Won && out.WinnerID == p.ID
	}
	return core.GameState{
		Score:    score,
		GameOver: out.Over,
		Won:      won,
		Winner:   out.Winner,
		Paused:   g.paused,
	}
}

// Arena returns the running arena, or nil if setup failed.
func (g *Game) Arena() *Arena {
	return g.arena
}

// Config returns the configuration of the current round.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// Err returns the setup or simulation error, if any.
func (g *Game) Err() error {
	return g.err
}

// Elapsed returns the arena time of the current round.
func (g *Game) Elapsed() time.Duration {
	return g.clock()
}

// Snapshot returns the arena snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.arena == nil {
		return Snapshot{}
	}
	return g.arena.Snapshot()
}

// Record returns the persisted form of the current round.
func (g *Game) Record(roundID string) storage.RoundRecord {
	return g.Snapshot().Record(roundID, g.ID())
}

// LevelNames returns the names of all configured levels.
func LevelNames() []string {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		return DefaultCatalog().Names()
	}
	cat, err := CatalogFromConfig(cfg)
	if err != nil {
		return DefaultCatalog().Names()
	}
	return cat.Names()
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	if g.arena == nil {
		return fmt.Sprintf("Tick: %d, Error: %v\n", g.tick, g.err)
	}
	var b strings.Builder
	snap := g.arena.Snapshot()
	fmt.Fprintf(&b, "Tick: %d, Time: %dms, Level: %d, State: %s\n", g.tick, snap.Now, snap.Level, snap.State)
	for _, a := range snap.Agents {
		fmt.Fprintf(&b, "%s: len=%d points=%d heading=%s status=%s enabled=%v\n",
			a.Name, a.Len, a.Points, a.Heading, a.Status, a.Enabled)
	}
	fmt.Fprintf(&b, "Food: %v\n", snap.Food)
	return b.String()
}
