package snake

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/snake-arena/internal/core"
)

// Status is an agent's life state. Every status other than StatusActive is
// terminal until Reset.
type Status int

const (
	StatusActive Status = iota
	StatusDeadByWall
	StatusDeadByBody
	StatusDeadByMapOverflow
)

// String returns a human-readable cause.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusDeadByWall:
		return "hit a wall"
	case StatusDeadByBody:
		return "hit a body"
	case StatusDeadByMapOverflow:
		return "left the map"
	}
	return "unknown"
}

// Dead reports whether the status is terminal.
func (s Status) Dead() bool {
	return s != StatusActive
}

// AgentConfig describes one snake at construction time.
type AgentConfig struct {
	Name       string
	Color      core.Color
	MinSpeedMs float64 // slowest tick interval
	MaxSpeedMs float64 // fastest tick interval
	Start      Pos     // tail cell
	Length     int
	Heading    Direction
}

// Agent is one snake on the grid. It holds indices into the shared grid and
// never references cells directly.
type Agent struct {
	ID    string
	Name  string
	Color core.Color

	cfg     AgentConfig
	grid    *Grid
	policy  MovementPolicy
	initial []int

	body    []int // tail first, head last
	members IndexSet
	head    int

	buffer     *DirectionBuffer
	speed      *Speed
	points     Points
	status     Status
	enabled    bool
	boost      bool
	digest     int
	lastUpdate time.Duration

	onLength func(int)
}

// NewAgent places a snake on grid. The body runs from cfg.Start along
// cfg.Heading, wrapping at the edges. idSource feeds the UUID generator and
// may be nil to use crypto randomness.
func NewAgent(grid *Grid, cfg AgentConfig, policy MovementPolicy, idSource io.Reader) (*Agent, error) {
	if cfg.Length < 1 {
		return nil, fmt.Errorf("agent %q: length %d must be at least 1", cfg.Name, cfg.Length)
	}
	if !grid.InBounds(cfg.Start.Row, cfg.Start.Col) {
		return nil, fmt.Errorf("agent %q: start %s is off the grid", cfg.Name, cfg.Start)
	}
	if cfg.Length > grid.Size() {
		return nil, fmt.Errorf("agent %q: length %d exceeds grid size", cfg.Name, cfg.Length)
	}
	var id uuid.UUID
	var err error
	if idSource != nil {
		id, err = uuid.NewRandomFromReader(idSource)
	} else {
		id, err = uuid.NewRandom()
	}
	if err != nil {
		return nil, fmt.Errorf("agent %q: id: %w", cfg.Name, err)
	}
	if policy == nil {
		policy = Manual{}
	}

	a := &Agent{
		ID:     id.String(),
		Name:   cfg.Name,
		Color:  cfg.Color,
		cfg:    cfg,
		grid:   grid,
		policy: policy,
		speed:  NewSpeed(cfg.MinSpeedMs, cfg.MaxSpeedMs),
	}

	dr, dc := cfg.Heading.Delta()
	seen := NewIndexSet()
	for i := 0; i < cfg.Length; i++ {
		row := core.Wrap(cfg.Start.Row+dr*i, grid.Rows)
		col := core.Wrap(cfg.Start.Col+dc*i, grid.Cols)
		idx := grid.Index(row, col)
		if seen.Has(idx) {
			return nil, fmt.Errorf("agent %q: body overlaps itself at %s", cfg.Name, Pos{row, col})
		}
		seen.Add(idx)
		a.initial = append(a.initial, idx)
	}
	a.Reset()
	return a, nil
}

// Reset restores the initial body and a fresh direction buffer, snaps speed
// to its fastest, and re-enables the agent. Body cells are marked on the grid.
func (a *Agent) Reset() {
	a.body = append(a.body[:0], a.initial...)
	a.members = NewIndexSet(a.initial...)
	a.head = a.initial[len(a.initial)-1]
	a.buffer = NewDirectionBuffer(a.cfg.Heading)
	a.speed.Reset()
	a.points.Reset()
	a.status = StatusActive
	a.enabled = true
	a.boost = false
	a.digest = 0
	a.lastUpdate = 0
	a.policy.Reset()
	a.MarkBody()
}

// MarkBody flags every body cell as Body and the head cell as the head.
func (a *Agent) MarkBody() {
	for _, idx := range a.body {
		if c, ok := a.grid.CellAtIndex(idx); ok {
			c.Kind = CellBody
			c.Head = idx == a.head
		}
	}
}

// NeedsUpdate reports whether the agent's interval has elapsed since its
// last update. When it has, now becomes the new last-update time.
func (a *Agent) NeedsUpdate(now time.Duration) bool {
	if now-a.lastUpdate > a.speed.Interval() {
		a.lastUpdate = now
		return true
	}
	return false
}

// NextPosition returns where the head moves next. Leaving an edge in the
// direction of travel re-enters on the opposite edge.
func (a *Agent) NextPosition() Pos {
	p := a.grid.RowCol(a.head)
	switch a.buffer.Peek() {
	case DirLeft:
		if p.Col == 0 {
			p.Col = a.grid.Cols
		}
		p.Col--
	case DirRight:
		if p.Col == a.grid.Cols-1 {
			p.Col = -1
		}
		p.Col++
	case DirUp:
		if p.Row == 0 {
			p.Row = a.grid.Rows
		}
		p.Row--
	case DirDown:
		if p.Row == a.grid.Rows-1 {
			p.Row = -1
		}
		p.Row++
	}
	return p
}

// Probe reports the status the next move would produce, without changing
// anything.
func (a *Agent) Probe() Status {
	next := a.NextPosition()
	cell, ok := a.grid.CellAt(next.Row, next.Col)
	if !ok {
		return StatusDeadByMapOverflow
	}
	if cell.IsBody() {
		return StatusDeadByBody
	}
	if cell.Kind == CellWall {
		return StatusDeadByWall
	}
	return StatusActive
}

// CanMove probes the next move and records a fatal result as the agent's
// status.
func (a *Agent) CanMove() bool {
	if a.status.Dead() {
		return false
	}
	s := a.Probe()
	if s.Dead() {
		a.status = s
		return false
	}
	return true
}

// AppendHead advances the head one cell and consumes the executed direction.
// It does nothing when the move would be fatal.
func (a *Agent) AppendHead() bool {
	if a.Probe().Dead() {
		return false
	}
	next := a.NextPosition()
	idx := a.grid.IndexOf(next)
	if prev, ok := a.grid.CellAtIndex(a.head); ok {
		prev.Head = false
	}
	a.body = append(a.body, idx)
	a.members.Add(idx)
	a.head = idx
	if c, ok := a.grid.CellAtIndex(idx); ok {
		c.Kind = CellBody
		c.Head = true
	}
	a.buffer.PopExecuted()
	return true
}

// RemoveTail drops the oldest body cell, unless growth is pending, in which
// case one unit of growth is used up instead.
func (a *Agent) RemoveTail() {
	if a.digest > 0 {
		a.digest--
		return
	}
	if len(a.body) == 0 {
		return
	}
	tail := a.body[0]
	a.body = a.body[1:]
	a.members.Remove(tail)
	if c, ok := a.grid.CellAtIndex(tail); ok {
		c.Kind = CellEmpty
		c.Head = false
	}
}

// AddTailBlock queues weight units of growth.
func (a *Agent) AddTailBlock(weight int) {
	a.digest += weight
	if a.onLength != nil {
		a.onLength(len(a.body) + a.digest)
	}
}

// OnLengthChange registers fn to receive the prospective length after growth
// is queued.
func (a *Agent) OnLengthChange(fn func(int)) {
	a.onLength = fn
}

// RemoveBlockByIndex drops index from the body without touching the grid.
func (a *Agent) RemoveBlockByIndex(index int) bool {
	if !a.members.Has(index) {
		return false
	}
	a.members.Remove(index)
	for i, idx := range a.body {
		if idx == index {
			a.body = append(a.body[:i], a.body[i+1:]...)
			break
		}
	}
	if index == a.head && len(a.body) > 0 {
		a.head = a.body[len(a.body)-1]
	}
	return true
}

// Turn queues a heading, subject to the buffer's reversal rule.
func (a *Agent) Turn(d Direction) bool {
	return a.buffer.Push(d)
}

func (a *Agent) TurnLeft() bool  { return a.Turn(DirLeft) }
func (a *Agent) TurnRight() bool { return a.Turn(DirRight) }
func (a *Agent) TurnUp() bool    { return a.Turn(DirUp) }
func (a *Agent) TurnDown() bool  { return a.Turn(DirDown) }

// SetBoost requests speeding up on each move instead of slowing down.
func (a *Agent) SetBoost(on bool) {
	a.boost = on
}

// Boosting reports whether a boost is requested.
func (a *Agent) Boosting() bool {
	return a.boost
}

// Disable stops the agent from being driven. Its body stays on the grid.
func (a *Agent) Disable() {
	a.enabled = false
	a.boost = false
}

// Enabled reports whether the agent is still driven by the loop.
func (a *Agent) Enabled() bool {
	return a.enabled
}

// Status returns the life state.
func (a *Agent) Status() Status {
	return a.status
}

// Head returns the head index.
func (a *Agent) Head() int {
	return a.head
}

// HeadPos returns the head position.
func (a *Agent) HeadPos() Pos {
	return a.grid.RowCol(a.head)
}

// Heading returns the direction that executes on the next move.
func (a *Agent) Heading() Direction {
	return a.buffer.Peek()
}

// Body returns a copy of the body indices, tail first.
func (a *Agent) Body() []int {
	return append([]int(nil), a.body...)
}

// Occupies reports whether index is part of the body.
func (a *Agent) Occupies(index int) bool {
	return a.members.Has(index)
}

// Len returns the body length.
func (a *Agent) Len() int {
	return len(a.body)
}

// PendingGrowth returns how many tail removals are still withheld.
func (a *Agent) PendingGrowth() int {
	return a.digest
}

func (a *Agent) Points() *Points           { return &a.points }
func (a *Agent) Speed() *Speed             { return a.speed }
func (a *Agent) Buffer() *DirectionBuffer  { return a.buffer }
func (a *Agent) Policy() MovementPolicy    { return a.policy }
func (a *Agent) Grid() *Grid               { return a.grid }
func (a *Agent) LastUpdate() time.Duration { return a.lastUpdate }

// IsBot reports whether the agent is driven by an autonomous policy.
func (a *Agent) IsBot() bool {
	_, manual := a.policy.(Manual)
	return !manual
}
