// Package registry maps game mode IDs to factories. Modes register
// themselves from init functions so the CLI and TUI can list and start them
// by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/snake-arena/internal/core"
)

// Game is a fixed-tick simulation driven by the platform layer.
// Implementations hold no terminal or UI state of their own.
type Game interface {
	// ID is the mode identifier used on the command line and in score rows.
	ID() string

	// Title is the human-readable mode name.
	Title() string

	// Reset starts a fresh round sized for the given screen.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the actions collected since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst.
	Render(dst *core.Screen)

	// State reports score and round status.
	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize without
// restarting the round.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory under id. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := factories[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered mode sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(factories))
	for id := range factories {
		out = append(out, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create builds a new instance of mode id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := factories[id]
	return ok
}

// Title returns the title of a registered mode, or id itself if unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := titles[id]; ok {
		return t
	}
	return id
}
