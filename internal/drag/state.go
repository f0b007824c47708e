package drag

import "github.com/henri123lemoine/splitpane/internal/layout"

// State is the transient drag record: divider index to displacement since
// that divider's drag began. It is mutated in place and never replaced, so
// every holder of the pointer sees the current values.
type State struct {
	deltas layout.Deltas
}

func newState() *State {
	return &State{deltas: layout.Deltas{}}
}

// Empty reports whether no divider is dragging.
func (s *State) Empty() bool {
	return len(s.deltas) == 0
}

// Dragging reports whether divider d has an entry.
func (s *State) Dragging(d int) bool {
	_, ok := s.deltas[d]
	return ok
}

// Delta returns the recorded delta for divider d, or 0.
func (s *State) Delta(d int) int {
	return s.deltas[d]
}

// Snapshot returns a copy of the recorded deltas.
func (s *State) Snapshot() layout.Deltas {
	out := make(layout.Deltas, len(s.deltas))
	for d, v := range s.deltas {
		out[d] = v
	}
	return out
}

func (s *State) set(d, delta int) {
	s.deltas[d] = delta
}

func (s *State) clear() {
	for d := range s.deltas {
		delete(s.deltas, d)
	}
}
