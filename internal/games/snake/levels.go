package snake

import (
	"errors"
	"fmt"
)

// Span is an inclusive contiguous range of linear indices.
type Span struct {
	From, To int
}

// Stride is an inclusive sequence From, From+Step, ... <= To.
type Stride struct {
	From, To, Step int
}

// LevelSpec describes how to compose a level's wall set.
// Walls = (walls(Extends) ∪ Spans ∪ Strides ∪ Add) \ Remove.
type LevelSpec struct {
	Name    string
	Extends int // ordinal of an earlier level to start from; 0 for none
	Spans   []Span
	Strides []Stride
	Add     []int
	Remove  []int
}

// Level is an immutable named wall layout.
type Level struct {
	Ordinal int
	Name    string
	walls   IndexSet
}

// Walls returns a copy of the level's wall indices.
func (l Level) Walls() IndexSet {
	return l.walls.Clone()
}

// WallCount returns the number of wall cells.
func (l Level) WallCount() int {
	return len(l.walls)
}

var errBadStride = errors.New("stride step must be positive")

// Catalog is an ordered set of levels addressed by 1-based ordinal.
type Catalog struct {
	levels []Level
}

// builtinLevels are laid out for the default 24x32 grid.
var builtinLevels = []LevelSpec{
	{Name: "Open Field"},
	{
		Name:  "Divide",
		Spans: []Span{{From: 101, To: 122}, {From: 645, To: 666}},
		Strides: []Stride{
			{From: 144, To: 624, Step: 32},
			{From: 143, To: 624, Step: 32},
		},
	},
	{
		Name:    "Doors",
		Extends: 2,
		Add:     []int{133, 165, 154, 186, 581, 613, 602, 634},
		Remove:  []int{368, 400, 367, 399},
	},
}

// DefaultCatalog returns the built-in level catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(builtinLevels...)
	if err != nil {
		// builtin specs are static
		panic(err)
	}
	return c
}

// NewCatalog builds a catalog from specs in ordinal order.
func NewCatalog(specs ...LevelSpec) (*Catalog, error) {
	c := &Catalog{}
	if err := c.Append(specs...); err != nil {
		return nil, err
	}
	return c, nil
}

// Append builds and adds more levels after the existing ones.
// A spec may only extend a level that precedes it.
func (c *Catalog) Append(specs ...LevelSpec) error {
	for _, spec := range specs {
		ordinal := len(c.levels) + 1
		walls, err := c.compose(spec, ordinal)
		if err != nil {
			return fmt.Errorf("level %d (%s): %w", ordinal, spec.Name, err)
		}
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("Level %d", ordinal)
		}
		c.levels = append(c.levels, Level{Ordinal: ordinal, Name: name, walls: walls})
	}
	return nil
}

func (c *Catalog) compose(spec LevelSpec, ordinal int) (IndexSet, error) {
	walls := NewIndexSet()
	if spec.Extends != 0 {
		if spec.Extends < 1 || spec.Extends >= ordinal {
			return nil, fmt.Errorf("extends unknown or later level %d", spec.Extends)
		}
		walls.Union(c.levels[spec.Extends-1].walls)
	}
	for _, s := range spec.Spans {
		for i := s.From; i <= s.To; i++ {
			walls.Add(i)
		}
	}
	for _, s := range spec.Strides {
		if s.Step <= 0 {
			return nil, errBadStride
		}
		for i := s.From; i <= s.To; i += s.Step {
			walls.Add(i)
		}
	}
	walls.Union(NewIndexSet(spec.Add...))
	walls.Subtract(NewIndexSet(spec.Remove...))
	return walls, nil
}

// Count returns the number of levels.
func (c *Catalog) Count() int {
	return len(c.levels)
}

// Clamp maps any ordinal onto a defined level: values below 1 select the
// first level, values past the end select the last one.
func (c *Catalog) Clamp(ordinal int) int {
	if len(c.levels) == 0 {
		return 0
	}
	return max(1, min(ordinal, len(c.levels)))
}

// Level returns the level for an ordinal, clamped into range.
func (c *Catalog) Level(ordinal int) Level {
	if len(c.levels) == 0 {
		return Level{Name: "Empty", walls: NewIndexSet()}
	}
	return c.levels[c.Clamp(ordinal)-1]
}

// Walls returns the wall indices of a level, clamped into range.
func (c *Catalog) Walls(ordinal int) IndexSet {
	return c.Level(ordinal).Walls()
}

// Names returns level names in ordinal order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.levels))
	for i, l := range c.levels {
		names[i] = l.Name
	}
	return names
}
