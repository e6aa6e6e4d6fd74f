package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// BorderState is the round indicator shown around the board.
type BorderState int

const (
	BorderNeutral BorderState = iota
	BorderWon
	BorderLost
)

// String returns the state name.
func (b BorderState) String() string {
	switch b {
	case BorderNeutral:
		return "neutral"
	case BorderWon:
		return "won"
	case BorderLost:
		return "lost"
	}
	return "unknown"
}

// Config holds everything needed to build an arena.
type Config struct {
	Rows, Cols int
	CellSize   int // display-only
	Level      int
	WinPoints  int

	// Player is nil for a bot-only round.
	Player *AgentConfig
	Bots   []AgentConfig
	BotAI  BotAIConfig

	SpawnWeights []int
}

// Outcome describes how a round ended.
type Outcome struct {
	Over     bool
	Won      bool
	Winner   string
	WinnerID string
	Loser    string
	Cause    Status
	Err      error
}

// Option configures an Arena.
type Option func(*Arena)

// WithLogger sets the arena logger.
func WithLogger(l *log.Logger) Option {
	return func(a *Arena) {
		if l != nil {
			a.log = l
		}
	}
}

// WithRand sets the random source used for food, bots and agent IDs.
func WithRand(rng *rand.Rand) Option {
	return func(a *Arena) {
		if rng != nil {
			a.rng = rng
		}
	}
}

// WithSeed seeds a fresh random source.
func WithSeed(seed int64) Option {
	return func(a *Arena) {
		a.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCatalog replaces the built-in level catalog.
func WithCatalog(c *Catalog) Option {
	return func(a *Arena) {
		if c != nil {
			a.catalog = c
		}
	}
}

// Arena runs one round: a grid, its food and a fixed roster of agents.
// All methods must be called from a single goroutine.
type Arena struct {
	cfg     Config
	log     *log.Logger
	rng     *rand.Rand
	catalog *Catalog

	grid   *Grid
	food   *FoodManager
	player *Agent
	roster []*Agent // every agent ever built, player first
	agents []*Agent // agents still in play, player first

	started bool
	border  BorderState
	outcome Outcome
	now     time.Duration
}

// NewArena builds the grid and every agent. Agents must not start on walls
// or on each other.
func NewArena(cfg Config, opts ...Option) (*Arena, error) {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, fmt.Errorf("arena: invalid grid %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.WinPoints <= 0 {
		return nil, fmt.Errorf("arena: win points must be positive, got %d", cfg.WinPoints)
	}
	if cfg.Player == nil && len(cfg.Bots) == 0 {
		return nil, fmt.Errorf("arena: %w", ErrNoAgents)
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = 1
	}

	a := &Arena{
		cfg: cfg,
		log: log.New(io.Discard),
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.catalog == nil {
		a.catalog = DefaultCatalog()
	}

	a.grid = NewGrid(cfg.Rows, cfg.Cols, a.catalog, cfg.Level)
	a.food = NewFoodManager(a.grid, a.rng, a.occupied)
	a.food.SetWeights(cfg.SpawnWeights)

	taken := NewIndexSet()
	add := func(ac AgentConfig, policy MovementPolicy) (*Agent, error) {
		ag, err := NewAgent(a.grid, ac, policy, a.rng)
		if err != nil {
			return nil, fmt.Errorf("arena: %w", err)
		}
		for _, idx := range ag.initial {
			if a.grid.IsWall(idx) {
				return nil, fmt.Errorf("arena: agent %q starts on a wall at %s", ac.Name, a.grid.RowCol(idx))
			}
			if taken.Has(idx) {
				return nil, fmt.Errorf("arena: agent %q overlaps another agent at %s", ac.Name, a.grid.RowCol(idx))
			}
			taken.Add(idx)
		}
		a.roster = append(a.roster, ag)
		return ag, nil
	}

	if cfg.Player != nil {
		p, err := add(*cfg.Player, Manual{})
		if err != nil {
			return nil, err
		}
		a.player = p
	}
	for _, bc := range cfg.Bots {
		bot := NewAutonomous(cfg.BotAI, a.rng)
		bot.OnTarget = func(ag *Agent, t Pos) {
			a.log.Debug("bot acquired target", "bot", ag.Name, "target", t.String())
		}
		if _, err := add(bc, bot); err != nil {
			return nil, err
		}
	}
	a.agents = append([]*Agent(nil), a.roster...)
	return a, nil
}

// occupied returns every body index of the agents in play.
func (a *Arena) occupied() IndexSet {
	s := NewIndexSet()
	for _, ag := range a.agents {
		for _, idx := range ag.body {
			s.Add(idx)
		}
	}
	return s
}

// Start seeds the first food item. Step calls it when needed.
func (a *Arena) Start() error {
	if a.started {
		return nil
	}
	a.started = true
	a.log.Info("round started", "level", a.grid.LevelName(), "agents", len(a.agents))
	if err := a.food.Generate(1); err != nil {
		a.saturated(err)
		return a.outcome.Err
	}
	return nil
}

// Step advances every agent whose interval has elapsed at time now.
// Agents are processed in roster order and later agents see the moves of
// earlier ones. After the round ends Step returns ErrRoundOver until Reset.
func (a *Arena) Step(now time.Duration) error {
	if a.outcome.Over {
		return ErrRoundOver
	}
	if !a.started {
		if err := a.Start(); err != nil {
			return err
		}
	}
	a.now = now
	a.grid.ExpireSearched(now)

	for _, ag := range a.agents {
		if !ag.Enabled() {
			a.decay(ag)
			continue
		}
		if ag.Points().Value() >= a.cfg.WinPoints {
			a.win(ag)
			return nil
		}
		if !ag.NeedsUpdate(now) {
			continue
		}
		ag.Policy().Decide(ag, now)
		if !ag.CanMove() {
			a.lose(ag)
			if a.outcome.Over {
				return nil
			}
			continue
		}
		if ag.Boosting() {
			ag.Speed().Increase()
		} else {
			ag.Speed().Decrease()
		}
		ag.RemoveTail()
		ag.AppendHead()
		if err := a.feed(ag); err != nil {
			return err
		}
		ag.MarkBody()
	}

	if a.player == nil && a.enabledCount() == 0 {
		a.outcome = Outcome{Over: true}
		a.border = BorderLost
		a.log.Info("round over", "reason", "no bots left")
	}
	return nil
}

// feed consumes food under the agent's head, if any.
func (a *Arena) feed(ag *Agent) error {
	idx := ag.Head()
	if !a.food.Consume(idx) {
		return nil
	}
	ag.Points().Add(1)
	ag.AddTailBlock(1)
	for _, other := range a.agents {
		if other != ag && !other.Enabled() {
			other.RemoveBlockByIndex(idx)
		}
	}
	n := a.food.ReplacementCount()
	a.log.Debug("food eaten", "agent", ag.Name, "points", ag.Points().Value(), "spawn", n)
	if err := a.food.Generate(n); err != nil {
		a.saturated(err)
		return a.outcome.Err
	}
	return nil
}

// decay turns a disabled agent's remaining body into food.
func (a *Arena) decay(ag *Agent) {
	for _, idx := range ag.body {
		a.food.Drop(idx)
		if c, ok := a.grid.CellAtIndex(idx); ok {
			c.Kind = CellFood
			c.Head = false
		}
	}
}

func (a *Arena) win(ag *Agent) {
	a.outcome = Outcome{Over: true, Won: true, Winner: ag.Name, WinnerID: ag.ID}
	a.border = BorderWon
	a.log.Info("round won", "winner", ag.Name, "points", ag.Points().Value())
}

func (a *Arena) lose(ag *Agent) {
	a.log.Debug("agent died", "agent", ag.Name, "cause", ag.Status().String())
	if ag != a.player {
		ag.Disable()
		return
	}
	next := ag.NextPosition()
	if c, ok := a.grid.CellAt(next.Row, next.Col); ok {
		c.Bump = true
	}
	a.outcome = Outcome{Over: true, Loser: ag.Name, Cause: ag.Status()}
	a.border = BorderLost
	a.log.Info("round lost", "agent", ag.Name, "cause", ag.Status().String())
}

func (a *Arena) saturated(err error) {
	a.outcome = Outcome{Over: true, Err: fmt.Errorf("arena: %w", err)}
	a.border = BorderLost
	a.log.Error("grid saturated", "err", err)
}

func (a *Arena) enabledCount() int {
	n := 0
	for _, ag := range a.agents {
		if ag.Enabled() {
			n++
		}
	}
	return n
}

// Sweep removes disabled bots whose carcass has been eaten completely and
// returns how many were removed.
func (a *Arena) Sweep() int {
	kept := a.agents[:0]
	removed := 0
	for _, ag := range a.agents {
		if ag != a.player && !ag.Enabled() && ag.Len() == 0 {
			removed++
			continue
		}
		kept = append(kept, ag)
	}
	a.agents = kept
	return removed
}

// Reset rebuilds the grid for the current level and restores every agent,
// including swept ones.
func (a *Arena) Reset() {
	a.grid.Reset(a.grid.Level())
	a.food.Clear()
	a.agents = append(a.agents[:0], a.roster...)
	for _, ag := range a.agents {
		ag.Reset()
	}
	a.started = false
	a.border = BorderNeutral
	a.outcome = Outcome{}
	a.now = 0
	a.log.Info("round reset", "level", a.grid.LevelName())
}

// SetLevel switches to another level and resets the round. It fails when an
// agent's starting body would overlap a wall of the new level.
func (a *Arena) SetLevel(ordinal int) error {
	ordinal = a.catalog.Clamp(ordinal)
	walls := a.catalog.Walls(ordinal)
	for _, ag := range a.roster {
		for _, idx := range ag.initial {
			if walls.Has(idx) {
				return fmt.Errorf("arena: agent %q starts on a wall of level %d", ag.Name, ordinal)
			}
		}
	}
	a.grid.Build(ordinal)
	a.Reset()
	return nil
}

// Over reports whether the round has ended.
func (a *Arena) Over() bool {
	return a.outcome.Over
}

// Outcome returns how the round ended.
func (a *Arena) Outcome() Outcome {
	return a.outcome
}

// Border returns the round indicator.
func (a *Arena) Border() BorderState {
	return a.border
}

// Player returns the human agent, or nil in a bot-only round.
func (a *Arena) Player() *Agent {
	return a.player
}

// Agents returns the agents in play in roster order.
func (a *Arena) Agents() []*Agent {
	return append([]*Agent(nil), a.agents...)
}

// Bots returns the bots in play.
func (a *Arena) Bots() []*Agent {
	var bots []*Agent
	for _, ag := range a.agents {
		if ag != a.player {
			bots = append(bots, ag)
		}
	}
	return bots
}

func (a *Arena) Grid() *Grid         { return a.grid }
func (a *Arena) Food() *FoodManager  { return a.food }
func (a *Arena) Config() Config      { return a.cfg }
func (a *Arena) Now() time.Duration  { return a.now }
func (a *Arena) Catalog() *Catalog   { return a.catalog }
func (a *Arena) Rand() *rand.Rand    { return a.rng }
func (a *Arena) Logger() *log.Logger { return a.log }

// IsSaturated reports whether the round ended because food could not be
// placed.
func (a *Arena) IsSaturated() bool {
	return errors.Is(a.outcome.Err, ErrGridSaturated)
}
