package snake

import "strings"

// Direction represents a heading on the grid.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

var directionNames = [...]string{"right", "down", "left", "up"}

// String returns the lowercase direction name.
func (d Direction) String() string {
	if d < DirRight || d > DirUp {
		return "unknown"
	}
	return directionNames[d]
}

// ParseDirection parses a direction name. Empty input yields DirRight.
func ParseDirection(name string) (Direction, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DirRight, true
	}
	for i, n := range directionNames {
		if n == name {
			return Direction(i), true
		}
	}
	return DirRight, false
}

// Opposite returns the 180° reverse.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// TurnRight returns the heading after a clockwise quarter turn.
func (d Direction) TurnRight() Direction {
	return (d + 1) % 4
}

// TurnLeft returns the heading after a counter-clockwise quarter turn.
func (d Direction) TurnLeft() Direction {
	return (d + 3) % 4
}

// Delta returns the (row, col) step for one move.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirRight:
		return 0, 1
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirUp:
		return -1, 0
	}
	return 0, 0
}

// DirectionBuffer queues pending headings, newest first.
// The oldest entry is the one that executes on the next move. The buffer is
// never empty.
type DirectionBuffer struct {
	queue []Direction // queue[0] is the newest intent
}

// NewDirectionBuffer creates a buffer holding only the initial heading.
func NewDirectionBuffer(initial Direction) *DirectionBuffer {
	return &DirectionBuffer{queue: []Direction{initial}}
}

// Push queues a new heading. A repeat of the latest queued heading is
// dropped, and so is its exact reverse, so a burst of key presses can never
// fold the snake back onto its neck.
func (b *DirectionBuffer) Push(d Direction) bool {
	latest := b.queue[0]
	if d == latest || d == latest.Opposite() {
		return false
	}
	b.queue = append([]Direction{d}, b.queue...)
	return true
}

// PopExecuted discards the oldest entry once it has been executed.
// The last remaining entry is kept and continues to apply.
func (b *DirectionBuffer) PopExecuted() {
	if len(b.queue) > 1 {
		b.queue = b.queue[:len(b.queue)-1]
	}
}

// Peek returns the heading that executes next.
func (b *DirectionBuffer) Peek() Direction {
	return b.queue[len(b.queue)-1]
}

// PeekAt returns the entry at offset, counted from the newest (0).
func (b *DirectionBuffer) PeekAt(offset int) (Direction, bool) {
	if offset < 0 || offset >= len(b.queue) {
		return DirRight, false
	}
	return b.queue[offset], true
}

// Newest returns the most recently queued heading.
func (b *DirectionBuffer) Newest() Direction {
	return b.queue[0]
}

// Len returns the number of queued entries.
func (b *DirectionBuffer) Len() int {
	return len(b.queue)
}
