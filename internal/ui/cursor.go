package ui

import (
	"fmt"
	"io"
	"sync"
)

// CursorIntent is a pointer shape the UI would like the host to show.
type CursorIntent int

const (
	CursorArrow CursorIntent = iota
	CursorResize
)

func (c CursorIntent) String() string {
	switch c {
	case CursorResize:
		return "resize"
	default:
		return "arrow"
	}
}

// CursorAdapter carries out cursor intents on the host platform.
type CursorAdapter interface {
	RequestCursor(CursorIntent)
}

// NopCursor ignores every intent. It is used headless and in tests.
type NopCursor struct{}

func (NopCursor) RequestCursor(CursorIntent) {}

// TerminalCursor sets the mouse pointer shape with the OSC 22 sequence
// understood by xterm, kitty, foot and WezTerm. Terminals without support
// ignore it. Repeated requests for the current shape write nothing.
type TerminalCursor struct {
	mu      sync.Mutex
	w       io.Writer
	current CursorIntent
	written bool
}

// NewTerminalCursor returns an adapter writing to w, normally the tty.
func NewTerminalCursor(w io.Writer) *TerminalCursor {
	return &TerminalCursor{w: w}
}

func (t *TerminalCursor) RequestCursor(c CursorIntent) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.written && c == t.current {
		return
	}
	t.current = c
	t.written = true

	shape := "default"
	if c == CursorResize {
		shape = "ew-resize"
	}
	_, _ = fmt.Fprintf(t.w, "\x1b]22;%s\x1b\\", shape)
}

// RecordingCursor keeps every intent it receives.
type RecordingCursor struct {
	Intents []CursorIntent
}

func (r *RecordingCursor) RequestCursor(c CursorIntent) {
	r.Intents = append(r.Intents, c)
}
