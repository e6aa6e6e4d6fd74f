package snake

import (
	"math/rand"
	"testing"
	"time"
)

func setFood(t *testing.T, g *Grid, row, col int) {
	t.Helper()
	c, ok := g.CellAt(row, col)
	if !ok {
		t.Fatalf("no cell at (%d,%d)", row, col)
	}
	c.Kind = CellFood
}

func newTestBot(t *testing.T, g *Grid, row, col int) (*Agent, *Autonomous) {
	t.Helper()
	policy := NewAutonomous(DefaultBotAI(), rand.New(rand.NewSource(7)))
	a := newTestAgent(t, g, agentCfg("bot", row, col, 3, DirRight), policy)
	return a, policy
}

func TestNewAutonomousDefaults(t *testing.T) {
	b := NewAutonomous(BotAIConfig{SearchMark: -1}, nil)
	if got := b.Settings(); got != DefaultBotAI() {
		t.Errorf("got %+v, expected defaults", got)
	}
	b.Tune(12, 0)
	if got := b.Settings(); got.SearchDepth != 12 || got.Idle != 8*time.Second {
		t.Errorf("after Tune got %+v", got)
	}
}

func TestBotIdleWithoutFood(t *testing.T) {
	g := newTestGrid(10, 10)
	a, bot := newTestBot(t, g, 5, 2)

	if _, ok := bot.Search(a, ms(100)); ok {
		t.Fatal("found food on an empty board")
	}
	bot.Decide(a, ms(100))
	bot.Decide(a, ms(5000))
	if a.Buffer().Len() != 1 {
		t.Errorf("bot turned before the idle threshold: buffer len %d", a.Buffer().Len())
	}
	if a.Boosting() {
		t.Error("idle bot should not boost")
	}

	wander := ms(100) + 8*time.Second
	bot.Decide(a, wander)
	if bot.lastWander != wander {
		t.Errorf("got lastWander %v, expected %v", bot.lastWander, wander)
	}
}

func TestBotSearchFindsFoodAhead(t *testing.T) {
	g := newTestGrid(10, 10)
	a, bot := newTestBot(t, g, 5, 2)
	setFood(t, g, 5, 7)

	got, ok := bot.Search(a, 0)
	if !ok {
		t.Fatal("expected to find food")
	}
	if got != (Pos{5, 7}) {
		t.Errorf("got %s, expected (5,7)", got)
	}
}

func TestBotSearchIgnoresFoodBehind(t *testing.T) {
	g := newTestGrid(10, 10)
	a, bot := newTestBot(t, g, 5, 2)
	setFood(t, g, 5, 1)

	// (5,1) sits behind the tail, reachable only by reversing or by wrapping
	// further than the depth allows.
	bot.Tune(2, 0)
	if got, ok := bot.Search(a, 0); ok {
		t.Errorf("found %s behind the snake", got)
	}
}

func TestBotSearchDepthLimit(t *testing.T) {
	g := newTestGrid(30, 30)
	a, bot := newTestBot(t, g, 15, 2)
	setFood(t, g, 15, 20)

	if got, ok := bot.Search(a, 0); ok {
		t.Errorf("found %s beyond the depth limit", got)
	}
}

func TestBotSearchBlockedByWall(t *testing.T) {
	// A full wall column at col 5 leaves only the long way round.
	var walls []int
	for row := 0; row < 10; row++ {
		walls = append(walls, row*10+5)
	}
	g := newTestGrid(10, 10, walls...)
	a, bot := newTestBot(t, g, 5, 2)
	setFood(t, g, 5, 7)

	if got, ok := bot.Search(a, 0); ok {
		t.Errorf("found %s through a wall", got)
	}
}

func TestBotSearchMarksCells(t *testing.T) {
	g := newTestGrid(10, 10)
	a, bot := newTestBot(t, g, 5, 2)

	bot.Search(a, ms(1000))
	c, _ := g.CellAt(5, 5)
	if !c.Searched {
		t.Fatal("cell ahead of the head should be marked")
	}
	if head, _ := g.CellAtIndex(a.Head()); head.Searched {
		t.Error("head cell should not be marked")
	}
	g.ExpireSearched(ms(1100))
	if !c.Searched {
		t.Error("mark expired early")
	}
	g.ExpireSearched(ms(1250))
	if c.Searched {
		t.Error("mark should expire after the mark window")
	}
}

func TestBotChase(t *testing.T) {
	g := newTestGrid(10, 10)
	a, bot := newTestBot(t, g, 5, 2)
	setFood(t, g, 3, 6)

	var acquired Pos
	bot.OnTarget = func(_ *Agent, p Pos) { acquired = p }
	bot.Decide(a, 0)

	target, ok := bot.Target()
	if !ok || target != (Pos{3, 6}) {
		t.Fatalf("got target %v/%v, expected (3,6)", target, ok)
	}
	if acquired != target {
		t.Errorf("OnTarget got %s", acquired)
	}
	if bot.remaining != 3 {
		t.Errorf("got remaining %d, expected 3 after one chase step", bot.remaining)
	}
	if a.Buffer().Newest() != DirUp {
		t.Errorf("got newest %s, expected up (rows first)", a.Buffer().Newest())
	}
	if !a.Boosting() {
		t.Error("chasing bot should boost")
	}
}

func TestBotChaseExhausts(t *testing.T) {
	g := newTestGrid(10, 10)
	a, bot := newTestBot(t, g, 5, 2)
	setFood(t, g, 5, 7)

	bot.Decide(a, 0)
	for i := 0; i < 2; i++ {
		bot.Decide(a, 0)
	}
	if _, ok := bot.Target(); ok {
		t.Fatal("target should clear once the step budget is spent")
	}

	bot.Reset()
	if bot.armed || bot.remaining != 0 {
		t.Error("Reset left state behind")
	}
}
