package layout

// FromFractions builds persisted widths for a row of total cells from
// percentage sizes. Panes with a size of 0 split the cells the sized panes
// leave over equally. The last pane takes whatever remains so the persisted
// widths always sum to total.
func FromFractions(sizes []int, total int) []int {
	n := len(sizes)
	if n == 0 {
		return nil
	}

	widths := make([]int, n)
	claimed, unsized := 0, 0
	for i, s := range sizes {
		if s > 0 {
			widths[i] = total * s / 100
			claimed += widths[i]
		} else {
			unsized++
		}
	}
	share := 0
	if unsized > 0 {
		share = max(total-claimed, 0) / unsized
	}

	used := 0
	for i, s := range sizes {
		if i == n-1 {
			widths[i] = total - used
			break
		}
		if s <= 0 {
			widths[i] = share
		}
		used += widths[i]
	}
	return widths
}

// Fit rescales persisted widths so they sum to total, keeping each pane's
// share of the previous total. Panes keep their titles and colors.
func Fit(panes []Pane, total int) []Pane {
	n := len(panes)
	out := make([]Pane, n)
	copy(out, panes)
	if n == 0 {
		return out
	}

	old := 0
	for _, p := range panes {
		old += p.Width
	}
	if old <= 0 {
		for i, w := range FromFractions(make([]int, n), total) {
			out[i].Width = w
		}
		return out
	}

	used := 0
	for i := range out {
		if i == n-1 {
			out[i].Width = total - used
			break
		}
		out[i].Width = panes[i].Width * total / old
		used += out[i].Width
	}
	return out
}
