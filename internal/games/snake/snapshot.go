package snake

// RoundState is the coarse state of a round.
type RoundState string

const (
	StatePlaying   RoundState = "playing"
	StateWon       RoundState = "won"
	StateLost      RoundState = "lost"
	StateSaturated RoundState = "saturated"
)

// AgentSnapshot captures one agent.
type AgentSnapshot struct {
	ID       string
	Name     string
	Bot      bool
	Enabled  bool
	Status   Status
	Points   int
	Len      int
	Head     int
	Heading  Direction
	SpeedMs  float64
	Body     []int
	Boosting bool
}

// Snapshot captures the arena for determinism checks and round records.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Now     int64 // milliseconds
	Level   int
	State   RoundState
	Winner  string
	Loser   string
	Cause   Status
	Food    []int
	Agents  []AgentSnapshot
	Removed int // bots swept from the roster
}

// Snapshot returns the current arena state.
func (a *Arena) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case a.IsSaturated():
		state = StateSaturated
	case a.outcome.Won:
		state = StateWon
	case a.outcome.Over:
		state = StateLost
	}

	s := Snapshot{
		Now:     a.now.Milliseconds(),
		Level:   a.grid.Level(),
		State:   state,
		Winner:  a.outcome.Winner,
		Loser:   a.outcome.Loser,
		Cause:   a.outcome.Cause,
		Food:    a.food.Active(),
		Removed: len(a.roster) - len(a.agents),
	}
	for _, ag := range a.agents {
		s.Agents = append(s.Agents, AgentSnapshot{
			ID:       ag.ID,
			Name:     ag.Name,
			Bot:      ag.IsBot(),
			Enabled:  ag.Enabled(),
			Status:   ag.Status(),
			Points:   ag.Points().Value(),
			Len:      ag.Len(),
			Head:     ag.Head(),
			Heading:  ag.Heading(),
			SpeedMs:  ag.Speed().Current(),
			Body:     ag.Body(),
			Boosting: ag.Boosting(),
		})
	}
	return s
}

// Leader returns the agent with the most points, first in roster order on
// ties.
func (a *Arena) Leader() *Agent {
	var best *Agent
	for _, ag := range a.agents {
		if best == nil || ag.Points().Value() > best.Points().Value() {
			best = ag
		}
	}
	return best
}
