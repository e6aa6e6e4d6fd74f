package snake

import "errors"

var (
	// ErrGridSaturated is returned when no free cell is left for food.
	ErrGridSaturated = errors.New("snake: grid saturated")
	// ErrNoAgents is returned when an arena is built without agents.
	ErrNoAgents = errors.New("snake: no agents")
	// ErrRoundOver is returned by Step after the round has ended.
	ErrRoundOver = errors.New("snake: round over")
)
