package snake

import (
	"testing"

	"github.com/vovakirdan/snake-arena/internal/core"
)

func TestRenderToScreen(t *testing.T) {
	cfg := Config{Rows: 10, Cols: 10, Player: playerCfg(5, 2, 3, DirRight)}
	cfg.Player.Color = core.ColorBrightGreen
	a := newTestArena(t, cfg, 99)
	startEmpty(t, a)
	placeFood(a, 11)

	scr := core.NewScreen(12, 12)
	d := NewScreenDisplay(scr, core.NewRect(0, 0, 12, 12))
	a.Render(d)

	if !d.Fits() {
		t.Fatal("board should fit exactly")
	}
	tests := []struct {
		name  string
		x, y  int
		rune  rune
		color core.Color
	}{
		{"corner", 0, 0, '┌', core.ColorBlue},
		{"head", 5, 6, 'O', core.ColorBrightGreen},
		{"body", 3, 6, 'o', core.ColorBrightGreen},
		{"wall", 10, 10, '#', core.ColorGray},
		{"food", 2, 2, '*', core.ColorYellow},
		{"empty", 8, 3, ' ', core.ColorDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := scr.GetCell(tt.x, tt.y)
			if c.Rune != tt.rune || c.Color != tt.color {
				t.Errorf("got %q/%s, expected %q/%s", c.Rune, c.Color, tt.rune, tt.color)
			}
		})
	}
}

func TestRenderLostRound(t *testing.T) {
	a := newTestArena(t, Config{Rows: 10, Cols: 10, Player: playerCfg(5, 2, 3, DirRight)}, 55)
	startEmpty(t, a)
	if err := a.Step(ms(101)); err != nil {
		t.Fatalf("Step: %v", err)
	}

	scr := core.NewScreen(20, 14)
	d := NewScreenDisplay(scr, core.NewRect(0, 2, 20, 12))
	a.Render(d)

	b := d.Board()
	if c := scr.GetCell(b.X, b.Y); c.Color != core.ColorBrightRed {
		t.Errorf("got border color %s, expected bright red", c.Color)
	}
	if c := scr.GetCell(b.X+1+5, b.Y+1+5); c.Rune != 'X' {
		t.Errorf("got %q at the collision cell, expected X", c.Rune)
	}
}

func TestScreenDisplayTooSmall(t *testing.T) {
	scr := core.NewScreen(8, 8)
	d := NewScreenDisplay(scr, core.NewRect(0, 0, 8, 8))
	d.SetDimensions(10, 10)
	if d.Fits() {
		t.Error("a 12x12 board cannot fit an 8x8 area")
	}
}
