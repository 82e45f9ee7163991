// Package mockdice provides a predetermined dice.Source for tests.
package mockdice

import "sync"

// ScriptedSource implements dice.Source by replaying queued values.
// A queued value at or above n is clamped to n-1; an empty queue yields 0.
type ScriptedSource struct {
	mu    sync.Mutex
	vals  []int
	calls []int
}

// NewScriptedSource creates a source that returns vals in order.
func NewScriptedSource(vals ...int) *ScriptedSource {
	return &ScriptedSource{vals: vals}
}

// Push queues more values.
func (s *ScriptedSource) Push(vals ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vals = append(s.vals, vals...)
}

// Intn implements dice.Source.
func (s *ScriptedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= 0 {
		panic("mockdice: Intn called with n <= 0")
	}
	s.calls = append(s.calls, n)
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	if v >= n {
		return n - 1
	}
	if v < 0 {
		return 0
	}
	return v
}

// Calls returns the bound passed to every Intn call so far.
func (s *ScriptedSource) Calls() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.calls))
	copy(out, s.calls)
	return out
}

// Remaining returns the number of queued values not yet consumed.
func (s *ScriptedSource) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.vals)
}
