package snake

import "time"

// rampFactor is the fraction of the current interval added or removed by a
// single Increase or Decrease.
const rampFactor = 0.3

// Speed is a per-agent tick interval in milliseconds. Smaller is faster.
// The interval always stays within [fastest, slowest].
type Speed struct {
	slowest  float64 // min_speed_ms
	fastest  float64 // max_speed_ms
	current  float64
	onChange func(ms float64)
}

// NewSpeed creates a controller starting at the slowest interval.
// Bounds given in the wrong order are swapped.
func NewSpeed(slowestMs, fastestMs float64) *Speed {
	if fastestMs > slowestMs {
		slowestMs, fastestMs = fastestMs, slowestMs
	}
	return &Speed{slowest: slowestMs, fastest: fastestMs, current: slowestMs}
}

// OnChange registers an observer fired on every change.
func (s *Speed) OnChange(fn func(ms float64)) {
	s.onChange = fn
}

// Increase shortens the interval by 30% of itself, down to the fastest bound.
func (s *Speed) Increase() {
	s.set(max(s.fastest, s.current-s.current*rampFactor))
}

// Decrease lengthens the interval by 30% of itself, up to the slowest bound.
func (s *Speed) Decrease() {
	s.set(min(s.slowest, s.current+s.current*rampFactor))
}

// Reset snaps to the fastest interval.
func (s *Speed) Reset() {
	s.set(s.fastest)
}

// Current returns the interval in milliseconds.
func (s *Speed) Current() float64 {
	return s.current
}

// Interval returns the interval as a duration.
func (s *Speed) Interval() time.Duration {
	return time.Duration(s.current * float64(time.Millisecond))
}

// Bounds returns (fastest, slowest) in milliseconds.
func (s *Speed) Bounds() (fastest, slowest float64) {
	return s.fastest, s.slowest
}

func (s *Speed) set(v float64) {
	s.current = v
	if s.onChange != nil {
		s.onChange(v)
	}
}
