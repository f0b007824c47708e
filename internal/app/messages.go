package app

import "github.com/henri123lemoine/splitpane/internal/state"

// Message types for the bubbletea app.

// WidthsLoadedMsg is sent when saved widths for a layout have been read.
type WidthsLoadedMsg struct {
	Layout string
	Record *state.Record
}

// WidthsSavedMsg is sent when committed widths have been written.
type WidthsSavedMsg struct {
	Layout string
	Err    error
}
