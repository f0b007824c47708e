// Package drag implements the divider drag session.
//
// A Controller owns the persisted panes and a single State handle holding
// the delta of every divider being dragged. Divider handles are created once
// per pane count and read that handle at the moment they are used, so a
// release always commits the delta written by the latest move.
package drag
