// Package debug provides debug logging for splitpane.
//
// When enabled via the --debug flag, it records pointer gestures, drag
// commits, layout switches and persistence errors to a log file so resize
// behaviour can be inspected after the fact.
package debug
