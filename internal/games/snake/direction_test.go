package snake

import (
	"math/rand"
	"testing"
)

func TestDirectionTurns(t *testing.T) {
	tests := []struct {
		d                     Direction
		opposite, left, right Direction
	}{
		{DirRight, DirLeft, DirUp, DirDown},
		{DirDown, DirUp, DirRight, DirLeft},
		{DirLeft, DirRight, DirDown, DirUp},
		{DirUp, DirDown, DirLeft, DirRight},
	}
	for _, tt := range tests {
		if got := tt.d.Opposite(); got != tt.opposite {
			t.Errorf("%s.Opposite() = %s, expected %s", tt.d, got, tt.opposite)
		}
		if got := tt.d.TurnLeft(); got != tt.left {
			t.Errorf("%s.TurnLeft() = %s, expected %s", tt.d, got, tt.left)
		}
		if got := tt.d.TurnRight(); got != tt.right {
			t.Errorf("%s.TurnRight() = %s, expected %s", tt.d, got, tt.right)
		}
	}
}

func TestParseDirection(t *testing.T) {
	if d, ok := ParseDirection(" Up "); !ok || d != DirUp {
		t.Errorf("got %s %v, expected up", d, ok)
	}
	if d, ok := ParseDirection(""); !ok || d != DirRight {
		t.Errorf("empty: got %s %v, expected right", d, ok)
	}
	if _, ok := ParseDirection("north"); ok {
		t.Error("expected north to be rejected")
	}
}

func TestDirectionBufferPush(t *testing.T) {
	b := NewDirectionBuffer(DirRight)

	if b.Push(DirRight) {
		t.Error("duplicate push should be a no-op")
	}
	if b.Push(DirLeft) {
		t.Error("reverse push should be rejected")
	}
	if b.Len() != 1 {
		t.Fatalf("got len %d, expected 1", b.Len())
	}

	if !b.Push(DirUp) {
		t.Fatal("perpendicular push should be accepted")
	}
	if b.Newest() != DirUp {
		t.Errorf("newest = %s, expected up", b.Newest())
	}
	if b.Peek() != DirRight {
		t.Errorf("peek = %s, expected right (oldest)", b.Peek())
	}

	// Down would fold back onto Up once Right has executed.
	if b.Push(DirDown) {
		t.Error("reverse of the newest intent should be rejected")
	}

	if d, ok := b.PeekAt(1); !ok || d != DirRight {
		t.Errorf("PeekAt(1) = %s %v, expected right", d, ok)
	}
	if _, ok := b.PeekAt(2); ok {
		t.Error("PeekAt past the end should fail")
	}
}

func TestDirectionBufferPop(t *testing.T) {
	b := NewDirectionBuffer(DirRight)
	b.Push(DirUp)
	b.Push(DirLeft)

	b.PopExecuted()
	if b.Peek() != DirUp {
		t.Errorf("after one pop: got %s, expected up", b.Peek())
	}
	b.PopExecuted()
	if b.Peek() != DirLeft {
		t.Errorf("after two pops: got %s, expected left", b.Peek())
	}
	b.PopExecuted()
	b.PopExecuted()
	if b.Len() != 1 || b.Peek() != DirLeft {
		t.Errorf("sole entry should persist, got len %d peek %s", b.Len(), b.Peek())
	}
}

func TestDirectionBufferNeverReverses(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for run := 0; run < 200; run++ {
		b := NewDirectionBuffer(Direction(rng.Intn(4)))
		last := b.Peek()
		for step := 0; step < 100; step++ {
			if rng.Intn(3) > 0 {
				before := b.Peek()
				d := Direction(rng.Intn(4))
				b.Push(d)
				if b.Peek() != before {
					t.Fatalf("push changed the executing direction")
				}
				continue
			}
			next := b.Peek()
			if next == last.Opposite() {
				t.Fatalf("run %d: executed %s right after %s", run, next, last)
			}
			last = next
			b.PopExecuted()
		}
	}
}
