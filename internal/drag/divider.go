package drag

// Divider is the gesture handle for one divider. Handles keep their
// identity across moves and commits; they are replaced only when the pane
// count changes.
type Divider struct {
	index int
	ctl   *Controller
}

// Index returns the divider's position, 0 for the one right of pane 0.
func (d *Divider) Index() int {
	return d.index
}

// Begin starts a drag on this divider.
func (d *Divider) Begin() bool {
	return d.ctl.Begin(d.index)
}

// Move records the displacement since the gesture began.
func (d *Divider) Move(dx int) bool {
	return d.ctl.Move(d.index, dx)
}

// Release ends the gesture and commits all pending deltas.
func (d *Divider) Release() bool {
	return d.ctl.Release(d.index)
}

// Dragging reports whether this divider has a pending delta.
func (d *Divider) Dragging() bool {
	return d.ctl.state.Dragging(d.index)
}

// Delta returns the pending delta, or 0 when idle.
func (d *Divider) Delta() int {
	return d.ctl.state.Delta(d.index)
}
