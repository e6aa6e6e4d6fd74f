package snake

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/snake-arena/internal/core"
)

// Pos is a (row, col) grid coordinate.
type Pos struct {
	Row, Col int
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Manhattan returns the Manhattan distance to another position.
func (p Pos) Manhattan(other Pos) int {
	return core.Abs(p.Row-other.Row) + core.Abs(p.Col-other.Col)
}

// Mapper converts between linear cell indices and (row, col) pairs.
// Indices are row-major: index = row*Cols + col.
// Mapper does no bounds checking; callers that need to detect off-grid
// positions use InBounds.
type Mapper struct {
	Rows int
	Cols int
}

// Index returns the linear index of (row, col).
func (m Mapper) Index(row, col int) int {
	return row*m.Cols + col
}

// IndexOf returns the linear index of p.
func (m Mapper) IndexOf(p Pos) int {
	return m.Index(p.Row, p.Col)
}

// RowCol returns the (row, col) of a linear index.
func (m Mapper) RowCol(index int) Pos {
	return Pos{Row: index / m.Cols, Col: index % m.Cols}
}

// InBounds reports whether (row, col) lies on the grid.
func (m Mapper) InBounds(row, col int) bool {
	return row >= 0 && row < m.Rows && col >= 0 && col < m.Cols
}

// Size returns the number of cells.
func (m Mapper) Size() int {
	return m.Rows * m.Cols
}

// IndexSet is an unordered set of linear cell indices.
type IndexSet map[int]struct{}

// NewIndexSet creates a set holding the given indices.
func NewIndexSet(indices ...int) IndexSet {
	s := make(IndexSet, len(indices))
	for _, i := range indices {
		s[i] = struct{}{}
	}
	return s
}

// Has reports whether i is in the set.
func (s IndexSet) Has(i int) bool {
	_, ok := s[i]
	return ok
}

// Add inserts i.
func (s IndexSet) Add(i int) {
	s[i] = struct{}{}
}

// Remove deletes i.
func (s IndexSet) Remove(i int) {
	delete(s, i)
}

// Union adds every member of other to s.
func (s IndexSet) Union(other IndexSet) IndexSet {
	for i := range other {
		s[i] = struct{}{}
	}
	return s
}

// Subtract removes every member of other from s.
func (s IndexSet) Subtract(other IndexSet) IndexSet {
	for i := range other {
		delete(s, i)
	}
	return s
}

// Clone returns an independent copy.
func (s IndexSet) Clone() IndexSet {
	c := make(IndexSet, len(s))
	for i := range s {
		c[i] = struct{}{}
	}
	return c
}

// Sorted returns the members in ascending order.
func (s IndexSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
