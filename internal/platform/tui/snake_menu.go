package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/snake-arena/internal/games/snake"
)

// levelSelector is implemented by games whose starting level can be chosen.
type levelSelector interface {
	SelectLevel(level int)
}

// ApplyLevel sets the starting level on games that support it.
func ApplyLevel(game any, level int) {
	if ls, ok := game.(levelSelector); ok && level > 0 {
		ls.SelectLevel(level)
	}
}

// LevelPicker is the level list shown after choosing a mode. Entry 0 keeps
// the level from the config file.
type LevelPicker struct {
	names  []string
	cursor int
}

// NewLevelPicker lists the levels of the active configuration.
func NewLevelPicker() LevelPicker {
	return LevelPicker{names: snake.LevelNames()}
}

// Up moves the cursor up.
func (p *LevelPicker) Up() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// Down moves the cursor down.
func (p *LevelPicker) Down() {
	if p.cursor < len(p.names) {
		p.cursor++
	}
}

// Level returns the chosen ordinal, or 0 for the configured level.
func (p LevelPicker) Level() int {
	return p.cursor
}

// View renders the list under a title.
func (p LevelPicker) View(title string, width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(title, width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select level:", width))
	b.WriteString("\n\n")

	entries := append([]string{"Default (from config)"}, p.names...)
	for i, name := range entries {
		cursor := "  "
		if i == p.cursor {
			cursor = "> "
		}
		line := cursor + name
		if i > 0 {
			line = fmt.Sprintf("%s%2d. %s", cursor, i, name)
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Start  |  Esc: Back  |  Q: Quit", width))
	return b.String()
}
