package ui

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/henri123lemoine/splitpane/internal/layout"
)

// State constants (matching app.State)
const (
	StateRow = iota
	StatePickLayout
)

// blockCacheSize bounds the rendered-block cache. A drag only ever touches
// the two panes beside the divider, so a few hundred entries cover several
// layouts' worth of widths.
const blockCacheSize = 512

// PickerEntry is one row in the layout picker.
type PickerEntry struct {
	Name        string
	Description string
	Panes       int
}

// RenderParams contains all parameters needed for rendering.
type RenderParams struct {
	State  int
	Items  []layout.Item
	Width  int
	Height int

	// Selected is the keyboard-selected divider, or -1.
	Selected int
	// Dragging holds the dividers with a pending delta.
	Dragging layout.Deltas

	LayoutName string
	Policy     string
	ShowTitles bool
	Err        error

	PickerInput   string
	PickerEntries []PickerEntry
	PickerCursor  int
}

// Hooks are optional side-effect callbacks fired when the pointer enters
// or leaves a divider. Either may be nil.
type Hooks struct {
	OnHoverEnter func(divider int)
	OnHoverLeave func(divider int)
}

// Renderer draws layout items and tracks which divider is under the
// pointer.
type Renderer struct {
	theme Theme
	hooks Hooks
	cache *lru.Cache[blockKey, string]

	hovered  int
	hovering bool
}

type blockKey struct {
	kind   layout.Kind
	width  int
	height int
	color  lipgloss.Color
	title  string
}

// NewRenderer creates a Renderer painting with theme.
func NewRenderer(theme Theme, hooks Hooks) *Renderer {
	cache, _ := lru.New[blockKey, string](blockCacheSize)
	return &Renderer{theme: theme, hooks: hooks, cache: cache}
}

// Hover updates the hovered divider for a pointer at column x on the row
// and fires the enter/leave hooks when it changes. A y outside the row
// counts as leaving.
func (r *Renderer) Hover(items []layout.Item, x, y, rowHeight int) {
	d, on := -1, false
	if y >= 0 && y < rowHeight {
		d, on = layout.DividerAt(items, x)
	}

	if r.hovering && (!on || d != r.hovered) {
		r.hovering = false
		if r.hooks.OnHoverLeave != nil {
			r.hooks.OnHoverLeave(r.hovered)
		}
	}
	if on && !r.hovering {
		r.hovered, r.hovering = d, true
		if r.hooks.OnHoverEnter != nil {
			r.hooks.OnHoverEnter(d)
		}
	}
}

// Hovered returns the divider under the pointer.
func (r *Renderer) Hovered() (int, bool) {
	return r.hovered, r.hovering
}

// CachedBlocks returns the number of rendered blocks held in the cache.
func (r *Renderer) CachedBlocks() int {
	return r.cache.Len()
}

// RowHeight returns the rows available to panes for a terminal height,
// leaving one line for the status bar.
func RowHeight(height int) int {
	if height <= 1 {
		return 1
	}
	return height - 1
}

// Render renders the full UI.
func (r *Renderer) Render(p RenderParams) string {
	switch p.State {
	case StatePickLayout:
		return renderPicker(p)
	default:
		return r.renderRow(p)
	}
}

// renderRow renders the pane row and the status bar under it.
func (r *Renderer) renderRow(p RenderParams) string {
	height := RowHeight(p.Height)

	blocks := make([]string, 0, len(p.Items))
	for _, it := range p.Items {
		if it.Width <= 0 {
			continue
		}
		blocks = append(blocks, r.block(it, height, p))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	if p.Height <= 1 {
		return row
	}
	return row + "\n" + renderStatus(p)
}

// block renders one item as a full-height rectangle.
func (r *Renderer) block(it layout.Item, height int, p RenderParams) string {
	key := blockKey{kind: it.Kind, width: it.Width, height: height}

	switch it.Kind {
	case layout.KindDivider:
		key.color = r.dividerColor(it.Index, p)
	default:
		key.color = r.theme.Pane
		if it.Pane.Color != "" {
			key.color = lipgloss.Color(it.Pane.Color)
		}
		if p.ShowTitles {
			key.title = ansi.Truncate(it.Pane.Title, it.Width, "…")
		}
	}

	if s, ok := r.cache.Get(key); ok {
		return s
	}

	s := lipgloss.NewStyle().
		Width(key.width).
		Height(key.height).
		MaxWidth(key.width).
		MaxHeight(key.height).
		Background(key.color).
		Foreground(r.theme.Text).
		Render(key.title)
	r.cache.Add(key, s)
	return s
}

func (r *Renderer) dividerColor(d int, p RenderParams) lipgloss.Color {
	if _, ok := p.Dragging[d]; ok || d == p.Selected {
		return r.theme.Active
	}
	if r.hovering && d == r.hovered {
		return r.theme.Hover
	}
	return r.theme.Divider
}

// renderStatus renders the one-line status bar.
func renderStatus(p RenderParams) string {
	if p.Err != nil {
		return ErrorStyle.Render(ansi.Truncate("Error: "+p.Err.Error(), p.Width, "…"))
	}

	var parts []string
	parts = append(parts, TitleStyle.Render(p.LayoutName))
	if len(p.Dragging) > 0 {
		parts = append(parts, SelectedStyle.Render(fmt.Sprintf("%s dragging %s", SymbolDragging, formatDeltas(p.Dragging))))
	} else if p.Selected >= 0 {
		parts = append(parts, SelectedStyle.Render(fmt.Sprintf("divider %d", p.Selected)))
	}
	parts = append(parts, StatusStyle.Render("min: "+p.Policy))

	help := compactHelp(
		"drag dividers • [/] select • ←/→ move • enter release • L layouts • q quit",
		"[/] ←/→ enter L q",
		p.Width,
	)
	parts = append(parts, HelpStyle.Render(help))

	return ansi.Truncate(strings.Join(parts, "  "), p.Width, "")
}

func formatDeltas(d layout.Deltas) string {
	var parts []string
	for _, i := range slices.Sorted(maps.Keys(d)) {
		parts = append(parts, fmt.Sprintf("%d:%+d", i, d[i]))
	}
	return strings.Join(parts, " ")
}

// renderPicker renders the layout picker.
func renderPicker(p RenderParams) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("LAYOUTS") + "\n\n")
	b.WriteString(InputStyle.Render(p.PickerInput) + "\n\n")

	if len(p.PickerEntries) == 0 {
		b.WriteString(MutedStyle.Render("No layouts match."))
	}
	for i, e := range p.PickerEntries {
		cursor := "  "
		name := NormalStyle.Render(e.Name)
		if i == p.PickerCursor {
			cursor = SelectedStyle.Render(SymbolCursor + " ")
			name = SelectedStyle.Render(e.Name)
		}
		line := fmt.Sprintf("%s%s  %s", cursor, name, MutedStyle.Render(fmt.Sprintf("%d panes  %s", e.Panes, e.Description)))
		b.WriteString(line)
		if i < len(p.PickerEntries)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n" + HelpStyle.Render("↑/↓ select • enter apply • esc cancel"))

	return wrapInBox(b.String(), p.Width)
}

// wrapInBox wraps content in a box.
func wrapInBox(content string, width int) string {
	boxWidth := width - 2
	if boxWidth < 20 {
		boxWidth = 20
	}
	return BoxStyle.Width(boxWidth).Render(content)
}

// compactHelp returns a shortened help string for small terminals.
func compactHelp(full, compact string, width int) string {
	if width >= 80 {
		return full
	}
	return compact
}
