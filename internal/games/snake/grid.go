package snake

import "time"

// CellKind is the occupancy of a cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellWall
	CellBody
	CellFood
)

// String returns the kind name.
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	case CellBody:
		return "body"
	case CellFood:
		return "food"
	}
	return "unknown"
}

// Cell is one grid position.
type Cell struct {
	Index int
	Kind  CellKind

	// Display overlays; they never affect collisions.
	Head          bool
	Bump          bool
	Searched      bool
	searchedUntil time.Duration
}

// IsBody reports whether some agent occupies the cell.
func (c *Cell) IsBody() bool {
	return c.Kind == CellBody
}

// Passable reports whether a head may move into the cell.
func (c *Cell) Passable() bool {
	switch c.Kind {
	case CellEmpty, CellFood:
		return true
	case CellWall, CellBody:
		return false
	}
	return false
}

// MarkSearched flags the cell as visited by a bot search until the given time.
func (c *Cell) MarkSearched(until time.Duration) {
	c.Searched = true
	c.searchedUntil = until
}

// Grid is the shared, index-addressed board.
type Grid struct {
	Mapper
	catalog *Catalog
	level   int
	walls   IndexSet
	cells   []Cell
}

// NewGrid creates a grid and builds the given level.
func NewGrid(rows, cols int, catalog *Catalog, level int) *Grid {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	g := &Grid{Mapper: Mapper{Rows: rows, Cols: cols}, catalog: catalog}
	g.Build(level)
	return g
}

// Build discards all cells and lays out a fresh board for the level.
// Wall indices that fall outside the board are ignored.
func (g *Grid) Build(level int) {
	g.level = g.catalog.Clamp(level)
	size := g.Size()
	g.walls = NewIndexSet()
	for i := range g.catalog.Walls(level) {
		if i >= 0 && i < size {
			g.walls.Add(i)
		}
	}
	g.cells = make([]Cell, size)
	for i := range g.cells {
		g.cells[i] = Cell{Index: i}
		if g.walls.Has(i) {
			g.cells[i].Kind = CellWall
		}
	}
}

// Reset rebuilds the board for the level.
func (g *Grid) Reset(level int) {
	g.Build(level)
}

// Level returns the active level ordinal.
func (g *Grid) Level() int {
	return g.level
}

// LevelName returns the active level's name.
func (g *Grid) LevelName() string {
	return g.catalog.Level(g.level).Name
}

// Catalog returns the level catalog backing the grid.
func (g *Grid) Catalog() *Catalog {
	return g.catalog
}

// CellAt returns the cell at (row, col), or false when off the board.
func (g *Grid) CellAt(row, col int) (*Cell, bool) {
	if !g.InBounds(row, col) {
		return nil, false
	}
	return &g.cells[g.Index(row, col)], true
}

// CellAtIndex returns the cell at a linear index, or false when out of range.
func (g *Grid) CellAtIndex(index int) (*Cell, bool) {
	if index < 0 || index >= len(g.cells) {
		return nil, false
	}
	return &g.cells[index], true
}

// IsWall reports whether the index is a wall of the active level.
func (g *Grid) IsWall(index int) bool {
	return g.walls.Has(index)
}

// Walls returns a copy of the active wall set.
func (g *Grid) Walls() IndexSet {
	return g.walls.Clone()
}

// Count returns the number of cells of the given kind.
func (g *Grid) Count(kind CellKind) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Kind == kind {
			n++
		}
	}
	return n
}

// ExpireSearched clears search marks whose time has passed.
func (g *Grid) ExpireSearched(now time.Duration) {
	for i := range g.cells {
		c := &g.cells[i]
		if c.Searched && now >= c.searchedUntil {
			c.Searched = false
		}
	}
}

// ClearOverlays resets every display overlay.
func (g *Grid) ClearOverlays() {
	for i := range g.cells {
		g.cells[i].Head = false
		g.cells[i].Bump = false
		g.cells[i].Searched = false
	}
}
