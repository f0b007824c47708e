package layout

import "fmt"

// Policy decides how far a divider may travel. The zero value is
// NoMinimum, which lets a drag push a pane to zero or negative width.
type Policy struct {
	enabled bool
	min     int
}

// NoMinimum returns the pass-through policy.
func NoMinimum() Policy {
	return Policy{}
}

// MinimumWidth returns a policy that keeps every displayed pane at least
// n cells wide while a divider is dragged.
func MinimumWidth(n int) Policy {
	if n < 0 {
		n = 0
	}
	return Policy{enabled: true, min: n}
}

// Enabled reports whether the policy clamps at all.
func (p Policy) Enabled() bool {
	return p.enabled
}

// Min returns the minimum displayed width, meaningful only when Enabled.
func (p Policy) Min() int {
	return p.min
}

func (p Policy) String() string {
	if !p.enabled {
		return "none"
	}
	return fmt.Sprintf("minimum(%d)", p.min)
}

// ClampDelta limits a proposed delta for divider d so the two panes it
// separates keep at least Min cells displayed, given the deltas already
// recorded on the other dividers. It adjusts the delta rather than the
// derived widths, so Derive still conserves the row width. A pane that is
// already narrower than the minimum is never shrunk further.
func (p Policy) ClampDelta(panes []Pane, deltas Deltas, dividerWidth, d, proposed int) int {
	n := len(panes)
	if !p.enabled || d < 0 || d >= DividerCount(n) {
		return proposed
	}

	// Left pane d always has a divider on its right.
	left := panes[d].Width - deltas.delta(d-1, n) - dividerWidth
	lo := p.min - left

	right := panes[d+1].Width + deltas.delta(d+1, n)
	if d+1 != n-1 {
		right -= dividerWidth
	}
	hi := right - p.min

	lo = min(lo, 0)
	hi = max(hi, 0)
	if proposed < lo {
		return lo
	}
	if proposed > hi {
		return hi
	}
	return proposed
}
