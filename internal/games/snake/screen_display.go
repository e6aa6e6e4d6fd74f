package snake

import "github.com/vovakirdan/snake-arena/internal/core"

// ScreenDisplay draws the board into a region of a core.Screen, one
// character per cell, framed by a box whose color shows the round state.
type ScreenDisplay struct {
	screen *core.Screen
	area   core.Rect // available region
	board  core.Rect // framed board inside area
	cols   int
}

// NewScreenDisplay creates a display bound to area of screen.
func NewScreenDisplay(screen *core.Screen, area core.Rect) *ScreenDisplay {
	return &ScreenDisplay{screen: screen, area: area}
}

// SetDimensions centers a board of cols x rows (plus its frame) in the area.
func (d *ScreenDisplay) SetDimensions(cols, rows int) {
	d.cols = cols
	d.board = d.area.Centered(cols+2, rows+2)
}

// Fits reports whether the framed board fits inside the area.
func (d *ScreenDisplay) Fits() bool {
	return d.board.X >= d.area.X && d.board.Y >= d.area.Y &&
		d.board.Right() <= d.area.Right() && d.board.Bottom() <= d.area.Bottom()
}

// Board returns the framed board rectangle.
func (d *ScreenDisplay) Board() core.Rect {
	return d.board
}

func borderColor(state BorderState) core.Color {
	switch state {
	case BorderWon:
		return core.ColorBrightGreen
	case BorderLost:
		return core.ColorBrightRed
	case BorderNeutral:
		return core.ColorBlue
	}
	return core.ColorDefault
}

// SetBorder draws the frame.
func (d *ScreenDisplay) SetBorder(state BorderState) {
	d.screen.DrawBox(d.board, borderColor(state))
}

// Clear blanks the inside of the frame.
func (d *ScreenDisplay) Clear() {
	for y := d.board.Y + 1; y < d.board.Bottom()-1; y++ {
		for x := d.board.X + 1; x < d.board.Right()-1; x++ {
			d.screen.Set(x, y, ' ')
		}
	}
}

// DrawCell draws one cell.
func (d *ScreenDisplay) DrawCell(index int, v CellView) {
	if d.cols <= 0 {
		return
	}
	x := d.board.X + 1 + index%d.cols
	y := d.board.Y + 1 + index/d.cols
	r, c := glyph(v)
	d.screen.SetColored(x, y, r, c)
}

func glyph(v CellView) (rune, core.Color) {
	if v.Bump {
		return 'X', core.ColorBrightRed
	}
	switch v.Kind {
	case CellWall:
		return '#', core.ColorGray
	case CellBody:
		if v.Head {
			return 'O', v.Color
		}
		return 'o', v.Color
	case CellFood:
		return '*', core.ColorYellow
	case CellEmpty:
		if v.Searched {
			return '·', core.ColorGray
		}
	}
	return ' ', core.ColorDefault
}
