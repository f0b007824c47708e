package layout

// DefaultDividerWidth is the divider width used when none is configured.
const DefaultDividerWidth = 1

// Pane is one resizable segment of the row.
type Pane struct {
	// Width is the persisted width in cells. Only Commit changes it.
	Width int

	// Title and Color are passed through to the renderer untouched.
	Title string
	Color string
}

// Kind identifies what a layout item draws.
type Kind int

const (
	KindPane Kind = iota
	KindDivider
)

func (k Kind) String() string {
	switch k {
	case KindPane:
		return "pane"
	case KindDivider:
		return "divider"
	default:
		return "unknown"
	}
}

// Item is one rendered element of the row, in left-to-right order.
type Item struct {
	Kind  Kind
	Width int

	// Index is the pane index for panes and the divider index for dividers.
	Index int

	// Pane is a copy of the source pane for KindPane items.
	Pane Pane
}

// Deltas maps a divider index to its displacement since the drag began.
// A nil or empty map means no drag is in progress.
type Deltas map[int]int

// DividerCount returns the number of dividers between n panes.
func DividerCount(n int) int {
	if n < 2 {
		return 0
	}
	return n - 1
}

// delta returns the recorded delta for divider d, or 0 when d does not
// exist among n panes or is not dragging.
func (d Deltas) delta(i, n int) int {
	if i < 0 || i >= DividerCount(n) {
		return 0
	}
	return d[i]
}

// Derive produces the ordered render list for panes under the given deltas.
// The result has 2*len(panes)-1 items (none for zero panes). Every pane but
// the last cedes dividerWidth to the divider that follows it.
func Derive(panes []Pane, deltas Deltas, dividerWidth int) []Item {
	n := len(panes)
	if n == 0 {
		return nil
	}

	items := make([]Item, 0, 2*n-1)
	for i, p := range panes {
		w := p.Width + deltas.delta(i, n) - deltas.delta(i-1, n)
		last := i == n-1
		if !last {
			w -= dividerWidth
		}
		items = append(items, Item{Kind: KindPane, Width: w, Index: i, Pane: p})
		if !last {
			items = append(items, Item{Kind: KindDivider, Width: dividerWidth, Index: i})
		}
	}
	return items
}

// Commit returns a copy of panes with every delta folded into the persisted
// widths. The input slice is not modified.
func Commit(panes []Pane, deltas Deltas) []Pane {
	n := len(panes)
	out := make([]Pane, n)
	for i, p := range panes {
		p.Width += deltas.delta(i, n) - deltas.delta(i-1, n)
		out[i] = p
	}
	return out
}

// Widths returns the persisted width of each pane.
func Widths(panes []Pane) []int {
	ws := make([]int, len(panes))
	for i, p := range panes {
		ws[i] = p.Width
	}
	return ws
}

// Total returns the summed width of items.
func Total(items []Item) int {
	t := 0
	for _, it := range items {
		t += it.Width
	}
	return t
}

// DividerAt returns the divider index whose item covers column x, or false
// when x falls on a pane or outside the row.
func DividerAt(items []Item, x int) (int, bool) {
	col := 0
	for _, it := range items {
		if x >= col && x < col+it.Width && it.Kind == KindDivider {
			return it.Index, true
		}
		if it.Width > 0 {
			col += it.Width
		}
	}
	return 0, false
}
