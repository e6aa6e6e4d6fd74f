package snake

import (
	"testing"
)

func TestNewAgentBody(t *testing.T) {
	g := newTestGrid(10, 10)
	a := newTestAgent(t, g, agentCfg("p", 5, 2, 3, DirRight), nil)

	body := a.Body()
	if len(body) != 3 || body[0] != 52 || body[2] != 54 {
		t.Fatalf("got body %v, expected [52 53 54]", body)
	}
	if a.Head() != 54 {
		t.Errorf("got head %d, expected 54", a.Head())
	}
	c, _ := g.CellAtIndex(54)
	if c.Kind != CellBody || !c.Head {
		t.Errorf("head cell %+v, expected body head", c)
	}
	if a.Speed().Current() != 100 {
		t.Errorf("got speed %v, expected fastest 100", a.Speed().Current())
	}
	if a.IsBot() {
		t.Error("nil policy should be manual")
	}
	if a.ID == "" {
		t.Error("agent has no id")
	}
}

func TestNewAgentRejectsBadConfig(t *testing.T) {
	g := newTestGrid(4, 4)
	tests := []struct {
		name string
		cfg  AgentConfig
	}{
		{"zero length", agentCfg("a", 0, 0, 0, DirRight)},
		{"off grid", agentCfg("a", 9, 0, 2, DirRight)},
		{"self overlap", agentCfg("a", 0, 0, 5, DirRight)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewAgent(g, tt.cfg, nil, nil); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestAgentNeedsUpdate(t *testing.T) {
	g := newTestGrid(10, 10)
	a := newTestAgent(t, g, agentCfg("p", 5, 2, 3, DirRight), nil)

	if a.NeedsUpdate(ms(100)) {
		t.Error("interval must be strictly exceeded")
	}
	if !a.NeedsUpdate(ms(101)) {
		t.Fatal("expected update after 101ms")
	}
	if a.LastUpdate() != ms(101) {
		t.Errorf("got last update %v, expected 101ms", a.LastUpdate())
	}
	if a.NeedsUpdate(ms(150)) {
		t.Error("update latched too early")
	}
	if !a.NeedsUpdate(ms(202)) {
		t.Error("expected update after another interval")
	}
}

// moveOnce runs the loop's move sequence for one agent.
func moveOnce(t *testing.T, a *Agent) {
	t.Helper()
	if !a.CanMove() {
		t.Fatalf("agent %s cannot move: %s", a.Name, a.Status())
	}
	a.RemoveTail()
	a.AppendHead()
	a.MarkBody()
}

func TestAgentMove(t *testing.T) {
	g := newTestGrid(10, 10)
	a := newTestAgent(t, g, agentCfg("p", 5, 2, 3, DirRight), nil)

	moveOnce(t, a)
	if a.Head() != 55 {
		t.Errorf("got head %d, expected 55", a.Head())
	}
	if c, _ := g.CellAtIndex(52); c.Kind != CellEmpty {
		t.Errorf("old tail kind %s, expected empty", c.Kind)
	}
	if c, _ := g.CellAtIndex(54); c.Head {
		t.Error("previous head still flagged")
	}
	if a.Status() != StatusActive {
		t.Errorf("got status %s, expected active", a.Status())
	}
}

func TestAgentWrapsAtEdges(t *testing.T) {
	tests := []struct {
		name    string
		start   Pos
		heading Direction
		want    Pos
	}{
		{"left", Pos{3, 2}, DirLeft, Pos{3, 9}},
		{"right", Pos{3, 7}, DirRight, Pos{3, 0}},
		{"up", Pos{2, 4}, DirUp, Pos{9, 4}},
		{"down", Pos{7, 4}, DirDown, Pos{0, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGrid(10, 10)
			a := newTestAgent(t, g, agentCfg("p", tt.start.Row, tt.start.Col, 3, tt.heading), nil)
			if got := a.NextPosition(); got != tt.want {
				t.Fatalf("NextPosition() = %s, expected %s", got, tt.want)
			}
			moveOnce(t, a)
			if got := a.HeadPos(); got != tt.want {
				t.Errorf("head at %s, expected %s", got, tt.want)
			}
		})
	}
}

func TestAgentWrapIntoWall(t *testing.T) {
	g := newTestGrid(10, 10, 39) // (3,9)
	a := newTestAgent(t, g, agentCfg("p", 3, 2, 3, DirLeft), nil)
	if a.CanMove() {
		t.Fatal("wrap destination is a wall")
	}
	if a.Status() != StatusDeadByWall {
		t.Errorf("got %s, expected dead by wall", a.Status())
	}
}

func TestAgentHitsWall(t *testing.T) {
	g := newTestGrid(10, 10, 55)
	a := newTestAgent(t, g, agentCfg("p", 5, 2, 3, DirRight), nil)

	if a.CanMove() {
		t.Fatal("expected CanMove to fail next to a wall")
	}
	if a.Status() != StatusDeadByWall {
		t.Errorf("got %s, expected dead by wall", a.Status())
	}
	if a.AppendHead() {
		t.Error("AppendHead should refuse a fatal move")
	}
	if a.Head() != 54 {
		t.Errorf("head moved to %d", a.Head())
	}
}

func TestAgentHitsBody(t *testing.T) {
	g := newTestGrid(10, 10)
	a := newTestAgent(t, g, agentCfg("a", 5, 2, 3, DirRight), nil)
	newTestAgent(t, g, agentCfg("b", 3, 5, 4, DirDown), nil) // occupies (5,5)

	if a.CanMove() {
		t.Fatal("expected collision with the other body")
	}
	if a.Status() != StatusDeadByBody {
		t.Errorf("got %s, expected dead by body", a.Status())
	}
}

func TestAgentProbeIsPure(t *testing.T) {
	g := newTestGrid(10, 10, 55)
	a := newTestAgent(t, g, agentCfg("p", 5, 2, 3, DirRight), nil)

	if got := a.Probe(); got != StatusDeadByWall {
		t.Errorf("Probe() = %s, expected dead by wall", got)
	}
	if a.Status() != StatusActive {
		t.Errorf("Probe changed status to %s", a.Status())
	}
	a.TurnUp()
	a.Buffer().PopExecuted()
	if got := a.Probe(); got != StatusActive {
		t.Errorf("after turning: Probe() = %s, expected active", got)
	}
}

func TestAgentMapOverflow(t *testing.T) {
	g := newTestGrid(10, 10)
	a := newTestAgent(t, g, agentCfg("p", 5, 2, 3, DirRight), nil)
	a.head = 200 // off the board
	if a.CanMove() {
		t.Fatal("expected off-board head to fail")
	}
	if a.Status() != StatusDeadByMapOverflow {
		t.Errorf("got %s, expected map overflow", a.Status())
	}
}

func TestAgentGrowth(t *testing.T) {
	g := newTestGrid(10, 10)
	a := newTestAgent(t, g, agentCfg("p", 5, 0, 3, DirRight), nil)

	var prospective int
	a.OnLengthChange(func(n int) { prospective = n })
	a.AddTailBlock(2)
	if prospective != 5 {
		t.Errorf("length callback got %d, expected 5", prospective)
	}

	moveOnce(t, a)
	moveOnce(t, a)
	if a.Len() != 5 {
		t.Fatalf("got len %d after two withheld removals, expected 5", a.Len())
	}
	moveOnce(t, a)
	if a.Len() != 5 {
		t.Errorf("got len %d once growth is used up, expected 5", a.Len())
	}
	if a.PendingGrowth() != 0 {
		t.Errorf("pending growth %d, expected 0", a.PendingGrowth())
	}
}

func TestAgentRemoveBlockByIndex(t *testing.T) {
	g := newTestGrid(10, 10)
	a := newTestAgent(t, g, agentCfg("p", 5, 2, 3, DirRight), nil)

	if !a.RemoveBlockByIndex(53) {
		t.Fatal("expected 53 to be removed")
	}
	if a.Occupies(53) || a.Len() != 2 {
		t.Errorf("body %v still holds 53", a.Body())
	}
	if c, _ := g.CellAtIndex(53); c.Kind != CellBody {
		t.Error("RemoveBlockByIndex must not touch the grid")
	}
	if a.RemoveBlockByIndex(99) {
		t.Error("removing a foreign index should report false")
	}
	a.RemoveBlockByIndex(54)
	if a.Head() != 52 {
		t.Errorf("head %d, expected to fall back to 52", a.Head())
	}
}

func TestAgentReset(t *testing.T) {
	g := newTestGrid(10, 10, 57)
	a := newTestAgent(t, g, agentCfg("p", 5, 2, 3, DirRight), nil)
	buf := a.Buffer()

	a.TurnDown()
	moveOnce(t, a)
	a.Points().Add(4)
	a.AddTailBlock(1)
	a.SetBoost(true)
	a.Disable()
	a.NeedsUpdate(ms(500))

	g.Reset(2)
	a.Reset()

	if a.Buffer() == buf {
		t.Error("Reset should create a fresh direction buffer")
	}
	if a.Heading() != DirRight {
		t.Errorf("got heading %s, expected right", a.Heading())
	}
	if a.Head() != 54 || a.Len() != 3 {
		t.Errorf("got head %d len %d, expected 54/3", a.Head(), a.Len())
	}
	if !a.Enabled() || a.Boosting() || a.Points().Value() != 0 || a.PendingGrowth() != 0 {
		t.Error("Reset left stale state")
	}
	if a.Status() != StatusActive || a.LastUpdate() != 0 {
		t.Error("Reset did not restore status or clock")
	}
	if a.Speed().Current() != 100 {
		t.Errorf("speed %v, expected fastest", a.Speed().Current())
	}
}

func TestAgentTurnsQueue(t *testing.T) {
	g := newTestGrid(10, 10)
	a := newTestAgent(t, g, agentCfg("p", 5, 2, 3, DirRight), nil)

	if a.TurnLeft() {
		t.Error("reverse turn accepted")
	}
	if !a.TurnUp() {
		t.Fatal("turn up rejected")
	}
	moveOnce(t, a) // executes the queued right
	if a.HeadPos() != (Pos{5, 5}) {
		t.Errorf("head %s, expected (5,5)", a.HeadPos())
	}
	moveOnce(t, a) // now up
	if a.HeadPos() != (Pos{4, 5}) {
		t.Errorf("head %s, expected (4,5)", a.HeadPos())
	}
}
