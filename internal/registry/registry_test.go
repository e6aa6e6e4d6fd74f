package registry

import (
	"testing"

	"github.com/vovakirdan/snake-arena/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string                           { return s.id }
func (s stubGame) Title() string                        { return "Stub " + s.id }
func (s stubGame) Reset(core.RuntimeConfig)             {}
func (s stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen)                  {}
func (s stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("expected stub_a to exist")
	}
	if Exists("stub_missing") {
		t.Error("expected stub_missing to be unknown")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("got id %q, expected stub_a", g.ID())
	}
	if _, err := Create("stub_missing"); err == nil {
		t.Error("expected error for unknown id")
	}

	if got := Title("stub_b"); got != "Stub stub_b" {
		t.Errorf("got title %q, expected %q", got, "Stub stub_b")
	}
	if got := Title("stub_missing"); got != "stub_missing" {
		t.Errorf("got title %q, expected id fallback", got)
	}

	var ids []string
	for _, info := range List() {
		if info.ID == "stub_a" || info.ID == "stub_b" {
			ids = append(ids, info.ID)
		}
	}
	if len(ids) != 2 || ids[0] != "stub_a" || ids[1] != "stub_b" {
		t.Errorf("got %v, expected sorted [stub_a stub_b]", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
}
