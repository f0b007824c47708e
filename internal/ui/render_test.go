package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/henri123lemoine/splitpane/internal/layout"
)

func testTheme() Theme {
	return Theme{Pane: "236", Divider: "0", Hover: "8", Active: "4", Text: "252"}
}

func threePanes() []layout.Pane {
	return []layout.Pane{
		{Width: 20, Title: "left"},
		{Width: 20, Title: "middle"},
		{Width: 20, Title: "right"},
	}
}

func TestRenderRowFillsViewport(t *testing.T) {
	r := NewRenderer(testTheme(), Hooks{})
	items := layout.Derive(threePanes(), layout.Deltas{0: 5}, 1)

	out := r.Render(RenderParams{
		Items:      items,
		Width:      60,
		Height:     10,
		Selected:   -1,
		LayoutName: "columns",
		Policy:     "none",
		ShowTitles: true,
	})

	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("Expected 10 lines (9 row + status), got %d", len(lines))
	}
	for i, line := range lines[:9] {
		if w := lipgloss.Width(line); w != 60 {
			t.Errorf("row line %d width %d, want 60", i, w)
		}
	}
	if !strings.Contains(lines[0], "left") || !strings.Contains(lines[0], "middle") {
		t.Errorf("Expected pane titles on first line: %q", lines[0])
	}
	if !strings.Contains(lines[9], "columns") {
		t.Errorf("Expected layout name in status: %q", lines[9])
	}
}

func TestRenderSkipsCollapsedPanes(t *testing.T) {
	r := NewRenderer(testTheme(), Hooks{})
	panes := []layout.Pane{{Width: 10}, {Width: 30}}
	// Pane 0 is driven to a negative width; pane 1 grows past the row.
	items := layout.Derive(panes, layout.Deltas{0: -15}, 1)

	out := r.Render(RenderParams{Items: items, Width: 40, Height: 3, Selected: -1})
	if out == "" {
		t.Fatal("Expected output")
	}
	first := strings.Split(out, "\n")[0]
	if w := lipgloss.Width(first); w != 46 {
		t.Errorf("Expected only the divider and the wide pane (46 cells), got %d", w)
	}
}

func TestRenderCachesBlocks(t *testing.T) {
	r := NewRenderer(testTheme(), Hooks{})
	p := RenderParams{
		Items:    layout.Derive(threePanes(), nil, 1),
		Width:    60,
		Height:   5,
		Selected: -1,
	}

	r.Render(p)
	after := r.CachedBlocks()
	if after == 0 {
		t.Fatal("Expected blocks in cache")
	}
	r.Render(p)
	if r.CachedBlocks() != after {
		t.Errorf("Re-rendering the same layout grew the cache from %d to %d", after, r.CachedBlocks())
	}
}

func TestRenderStatusShowsDragAndError(t *testing.T) {
	r := NewRenderer(testTheme(), Hooks{})
	p := RenderParams{
		Items:    layout.Derive(threePanes(), layout.Deltas{1: -4}, 1),
		Width:    120,
		Height:   4,
		Selected: -1,
		Dragging: layout.Deltas{1: -4},
	}
	if out := r.Render(p); !strings.Contains(out, "1:-4") {
		t.Errorf("Expected drag delta in status:\n%s", out)
	}

	p.Err = errors.New("save failed")
	if out := r.Render(p); !strings.Contains(out, "save failed") {
		t.Errorf("Expected error in status:\n%s", out)
	}
}

func TestRenderPicker(t *testing.T) {
	r := NewRenderer(testTheme(), Hooks{})
	out := r.Render(RenderParams{
		State:       StatePickLayout,
		Width:       80,
		Height:      20,
		PickerInput: "> col",
		PickerEntries: []PickerEntry{
			{Name: "columns", Description: "three equal columns", Panes: 3},
			{Name: "thirds", Description: "one third, two thirds", Panes: 2},
		},
	})
	for _, want := range []string{"LAYOUTS", "columns", "3 panes", "thirds"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in picker:\n%s", want, out)
		}
	}

	empty := r.Render(RenderParams{State: StatePickLayout, Width: 80, Height: 20})
	if !strings.Contains(empty, "No layouts match") {
		t.Errorf("Expected empty message:\n%s", empty)
	}
}

func TestHoverHooks(t *testing.T) {
	var events []string
	r := NewRenderer(testTheme(), Hooks{
		OnHoverEnter: func(d int) { events = append(events, "enter") },
		OnHoverLeave: func(d int) { events = append(events, "leave") },
	})
	// [pane 0..19][div 20][pane 21..40][div 41][pane 42..61]
	items := layout.Derive([]layout.Pane{{Width: 21}, {Width: 21}, {Width: 20}}, nil, 1)

	r.Hover(items, 5, 0, 10)   // pane
	r.Hover(items, 20, 0, 10)  // divider 0
	r.Hover(items, 20, 3, 10)  // still divider 0
	r.Hover(items, 41, 3, 10)  // divider 1
	r.Hover(items, 41, 12, 10) // below the row
	r.Hover(items, 30, 0, 10)  // pane

	want := []string{"enter", "leave", "enter", "leave"}
	if strings.Join(events, ",") != strings.Join(want, ",") {
		t.Errorf("events = %v, want %v", events, want)
	}
	if _, ok := r.Hovered(); ok {
		t.Error("Expected no hovered divider at the end")
	}
}

func TestHoverWithoutHooks(t *testing.T) {
	r := NewRenderer(testTheme(), Hooks{})
	items := layout.Derive([]layout.Pane{{Width: 10}, {Width: 10}}, nil, 1)
	r.Hover(items, 9, 0, 5)
	if d, ok := r.Hovered(); !ok || d != 0 {
		t.Errorf("Hovered() = %d, %v; want 0, true", d, ok)
	}
	r.Hover(items, 0, 0, 5)
}

func TestTerminalCursor(t *testing.T) {
	var buf bytes.Buffer
	c := NewTerminalCursor(&buf)

	c.RequestCursor(CursorResize)
	c.RequestCursor(CursorResize)
	c.RequestCursor(CursorArrow)

	want := "\x1b]22;ew-resize\x1b\\\x1b]22;default\x1b\\"
	if buf.String() != want {
		t.Errorf("wrote %q, want %q", buf.String(), want)
	}
}

func TestRowHeight(t *testing.T) {
	for h, want := range map[int]int{0: 1, 1: 1, 2: 1, 24: 23} {
		if got := RowHeight(h); got != want {
			t.Errorf("RowHeight(%d) = %d, want %d", h, got, want)
		}
	}
}

func TestCompactHelp(t *testing.T) {
	if got := compactHelp("full", "short", 100); got != "full" {
		t.Errorf("compactHelp wide = %q", got)
	}
	if got := compactHelp("full", "short", 40); got != "short" {
		t.Errorf("compactHelp narrow = %q", got)
	}
}
