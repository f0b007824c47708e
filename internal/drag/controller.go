package drag

import (
	"github.com/henri123lemoine/splitpane/internal/debug"
	"github.com/henri123lemoine/splitpane/internal/layout"
)

// Options configures a Controller.
type Options struct {
	// DividerWidth is the width ceded by each pane to the divider on its
	// right. Zero means layout.DefaultDividerWidth.
	DividerWidth int

	// Policy limits how far a divider may travel.
	Policy layout.Policy
}

// Controller mediates the move and commit protocol for every divider in a
// row. It is not safe for concurrent use; all calls are expected to come
// from the single event loop that delivers pointer events.
type Controller struct {
	panes        []layout.Pane
	dividerWidth int
	policy       layout.Policy

	state    *State
	dividers []*Divider
}

// New creates a Controller over a copy of panes.
func New(panes []layout.Pane, opts Options) *Controller {
	if opts.DividerWidth <= 0 {
		opts.DividerWidth = layout.DefaultDividerWidth
	}
	c := &Controller{
		dividerWidth: opts.DividerWidth,
		policy:       opts.Policy,
		state:        newState(),
	}
	c.SetPanes(panes)
	return c
}

// SetPanes replaces the persisted panes. The divider arena is rebuilt only
// when the divider count changes; existing handles stay valid otherwise.
// Any in-flight deltas are dropped, so callers switching layouts should
// Commit first.
func (c *Controller) SetPanes(panes []layout.Pane) {
	c.panes = append([]layout.Pane(nil), panes...)
	c.state.clear()

	n := layout.DividerCount(len(panes))
	if n == len(c.dividers) {
		return
	}
	c.dividers = make([]*Divider, n)
	for i := range c.dividers {
		c.dividers[i] = &Divider{index: i, ctl: c}
	}
	debug.Log("drag: divider arena rebuilt with %d dividers", n)
}

// Panes returns a copy of the persisted panes.
func (c *Controller) Panes() []layout.Pane {
	return append([]layout.Pane(nil), c.panes...)
}

// DividerWidth returns the configured divider width.
func (c *Controller) DividerWidth() int {
	return c.dividerWidth
}

// Policy returns the minimum-width policy in force.
func (c *Controller) Policy() layout.Policy {
	return c.policy
}

// State returns the live drag state handle.
func (c *Controller) State() *State {
	return c.state
}

// Dividers returns the divider handles, left to right.
func (c *Controller) Dividers() []*Divider {
	return c.dividers
}

// Divider returns the handle for divider d.
func (c *Controller) Divider(d int) (*Divider, bool) {
	if !c.valid(d) {
		return nil, false
	}
	return c.dividers[d], true
}

// Active reports whether any divider is dragging.
func (c *Controller) Active() bool {
	return !c.state.Empty()
}

// Layout derives the current render list, including in-flight deltas.
func (c *Controller) Layout() []layout.Item {
	return layout.Derive(c.panes, c.state.deltas, c.dividerWidth)
}

// Begin starts a drag on divider d with a zero delta. It returns false for
// an unknown divider. Beginning an already dragging divider resets its
// delta, as a new gesture measures from its own start.
func (c *Controller) Begin(d int) bool {
	if !c.valid(d) {
		return false
	}
	c.state.set(d, 0)
	debug.Log("drag: begin divider %d", d)
	return true
}

// Move records dx, the total displacement since the gesture on divider d
// began. The delta is replaced, not accumulated. A move on an idle divider
// starts its drag; a move on an unknown divider is ignored.
func (c *Controller) Move(d, dx int) bool {
	if !c.valid(d) {
		return false
	}
	clamped := c.policy.ClampDelta(c.panes, c.state.deltas, c.dividerWidth, d, dx)
	c.state.set(d, clamped)
	if clamped != dx {
		debug.Log("drag: move divider %d to %d (clamped from %d)", d, clamped, dx)
	} else {
		debug.Log("drag: move divider %d to %d", d, clamped)
	}
	return true
}

// Release ends the gesture on divider d and commits every pending delta,
// not only d's. It returns true when persisted widths changed.
func (c *Controller) Release(d int) bool {
	if !c.valid(d) {
		return false
	}
	return c.Commit()
}

// Commit folds all recorded deltas into the persisted widths and clears
// the drag state. It reads the live state, so the latest move always wins.
// It returns true when persisted widths changed; zero deltas are cleared
// without touching the panes.
func (c *Controller) Commit() bool {
	if c.state.Empty() {
		return false
	}
	changed := false
	for _, v := range c.state.deltas {
		if v != 0 {
			changed = true
			break
		}
	}
	debug.Log("drag: commit %v", c.state.deltas)
	if changed {
		c.panes = layout.Commit(c.panes, c.state.deltas)
	}
	c.state.clear()
	return changed
}

func (c *Controller) valid(d int) bool {
	return d >= 0 && d < len(c.dividers)
}
