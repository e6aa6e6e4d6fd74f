package snake

import "github.com/vovakirdan/snake-arena/internal/core"

// CellView is what a display needs to draw one cell.
type CellView struct {
	Kind     CellKind
	Head     bool
	Bump     bool
	Searched bool
	Color    core.Color // owner's color for bodies
}

// Display is a surface the arena draws onto. It is write-only from the
// arena's point of view.
type Display interface {
	SetDimensions(cols, rows int)
	SetBorder(state BorderState)
	Clear()
	DrawCell(index int, view CellView)
}

// Render draws the whole board onto d.
func (a *Arena) Render(d Display) {
	d.SetDimensions(a.grid.Cols, a.grid.Rows)
	d.SetBorder(a.border)
	d.Clear()

	owner := make(map[int]core.Color)
	for _, ag := range a.agents {
		if !ag.Enabled() {
			continue
		}
		for _, idx := range ag.body {
			owner[idx] = ag.Color
		}
	}

	for i := range a.grid.cells {
		c := &a.grid.cells[i]
		view := CellView{
			Kind:     c.Kind,
			Head:     c.Head,
			Bump:     c.Bump,
			Searched: c.Searched,
		}
		if c.Kind == CellBody {
			view.Color = owner[i]
		}
		d.DrawCell(i, view)
	}
}
