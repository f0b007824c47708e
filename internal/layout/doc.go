// Package layout derives the on-screen row of panes and dividers.
//
// It owns no state. Given persisted pane widths and the transient drag
// deltas it returns the alternating pane/divider item list whose widths
// always sum to the total row width. Commit folds deltas into persisted
// widths. Nothing here clamps; minimum-width handling is an explicit Policy
// applied by callers to deltas before they reach Derive.
package layout
