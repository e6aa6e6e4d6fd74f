package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/snake-arena/internal/core"
)

// MovementPolicy decides an agent's next intent once per agent update.
type MovementPolicy interface {
	Decide(a *Agent, now time.Duration)
	Reset()
}

// Manual is the policy of the player: intents arrive from input, so Decide
// does nothing.
type Manual struct{}

func (Manual) Decide(*Agent, time.Duration) {}
func (Manual) Reset()                       {}

// BotAIConfig tunes the autonomous policy.
type BotAIConfig struct {
	SearchDepth int           // cone search depth limit
	Idle        time.Duration // time between random turns while idle
	SearchMark  time.Duration // how long visited cells stay marked
}

// DefaultBotAI returns the standard bot tuning.
func DefaultBotAI() BotAIConfig {
	return BotAIConfig{
		SearchDepth: 8,
		Idle:        8 * time.Second,
		SearchMark:  250 * time.Millisecond,
	}
}

// Autonomous chases food found by a bounded cone search and wanders
// randomly when it finds none.
type Autonomous struct {
	cfg BotAIConfig
	rng *rand.Rand

	target    *Pos
	remaining int

	armed      bool
	lastWander time.Duration

	// OnTarget is called when a new target is acquired.
	OnTarget func(a *Agent, target Pos)
}

// NewAutonomous creates a bot policy. Non-positive fields of cfg take their
// defaults.
func NewAutonomous(cfg BotAIConfig, rng *rand.Rand) *Autonomous {
	def := DefaultBotAI()
	if cfg.SearchDepth <= 0 {
		cfg.SearchDepth = def.SearchDepth
	}
	if cfg.Idle <= 0 {
		cfg.Idle = def.Idle
	}
	if cfg.SearchMark < 0 {
		cfg.SearchMark = def.SearchMark
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Autonomous{cfg: cfg, rng: rng}
}

// Reset forgets the current target and idle timer.
func (b *Autonomous) Reset() {
	b.target = nil
	b.remaining = 0
	b.armed = false
	b.lastWander = 0
}

// Tune replaces the search depth and idle time. Non-positive values keep
// the current setting.
func (b *Autonomous) Tune(depth int, idle time.Duration) {
	if depth > 0 {
		b.cfg.SearchDepth = depth
	}
	if idle > 0 {
		b.cfg.Idle = idle
	}
}

// Settings returns the current tuning.
func (b *Autonomous) Settings() BotAIConfig {
	return b.cfg
}

// Target returns the current target, if any.
func (b *Autonomous) Target() (Pos, bool) {
	if b.target == nil {
		return Pos{}, false
	}
	return *b.target, true
}

// Decide pushes at most one heading into the agent's buffer and sets its
// boost request.
func (b *Autonomous) Decide(a *Agent, now time.Duration) {
	if !b.armed {
		b.armed = true
		b.lastWander = now
	}

	if b.target == nil {
		if t, ok := b.Search(a, now); ok {
			b.target = &t
			b.remaining = a.HeadPos().Manhattan(t)
			if b.OnTarget != nil {
				b.OnTarget(a, t)
			}
		}
	}

	if b.target != nil {
		b.chase(a)
		return
	}

	a.SetBoost(false)
	if now-b.lastWander >= b.cfg.Idle {
		b.lastWander = now
		a.Turn(Direction(b.rng.Intn(4)))
	}
}

func (b *Autonomous) chase(a *Agent) {
	head := a.HeadPos()
	if b.remaining <= 0 || head == *b.target {
		b.target = nil
		b.remaining = 0
		a.SetBoost(false)
		return
	}
	a.SetBoost(true)
	switch {
	case head.Row < b.target.Row:
		a.Turn(DirDown)
	case head.Row > b.target.Row:
		a.Turn(DirUp)
	case head.Col < b.target.Col:
		a.Turn(DirRight)
	case head.Col > b.target.Col:
		a.Turn(DirLeft)
	}
	b.remaining--
	if b.remaining == 0 {
		b.target = nil
	}
}

// Search runs a depth-limited search from the head that only ever expands
// the cells ahead-left, ahead and ahead-right of the heading at each step.
// Walls and bodies block expansion. Visited cells are marked on the grid for
// display until now+SearchMark. It returns the first food cell found.
func (b *Autonomous) Search(a *Agent, now time.Duration) (Pos, bool) {
	g := a.Grid()
	visited := NewIndexSet(a.Head())
	until := now + b.cfg.SearchMark
	var walk func(p Pos, heading Direction, depth int) (Pos, bool)
	walk = func(p Pos, heading Direction, depth int) (Pos, bool) {
		if depth >= b.cfg.SearchDepth {
			return Pos{}, false
		}
		for _, d := range [...]Direction{heading.TurnLeft(), heading, heading.TurnRight()} {
			dr, dc := d.Delta()
			next := Pos{Row: core.Wrap(p.Row+dr, g.Rows), Col: core.Wrap(p.Col+dc, g.Cols)}
			idx := g.IndexOf(next)
			if visited.Has(idx) {
				continue
			}
			visited.Add(idx)
			cell, ok := g.CellAtIndex(idx)
			if !ok {
				continue
			}
			switch cell.Kind {
			case CellFood:
				return next, true
			case CellWall, CellBody:
				continue
			case CellEmpty:
			}
			if b.cfg.SearchMark > 0 {
				cell.MarkSearched(until)
			}
			if found, ok := walk(next, d, depth+1); ok {
				return found, true
			}
		}
		return Pos{}, false
	}
	return walk(a.HeadPos(), a.Buffer().Newest(), 0)
}
