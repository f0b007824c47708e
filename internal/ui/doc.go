// Package ui draws the pane row for the splitpane terminal UI.
//
// A Renderer takes RenderParams, including the derived layout items, and
// produces the terminal output: every item becomes a full-height lipgloss
// block of its width. Hover changes over dividers are reported through
// optional Hooks, which the app turns into CursorIntents for a platform
// CursorAdapter. Nothing in this package mutates layout or drag state.
package ui
