package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/henri123lemoine/splitpane/internal/config"
	"github.com/henri123lemoine/splitpane/internal/debug"
	"github.com/henri123lemoine/splitpane/internal/drag"
	"github.com/henri123lemoine/splitpane/internal/layout"
	"github.com/henri123lemoine/splitpane/internal/state"
	"github.com/henri123lemoine/splitpane/internal/ui"
)

// State represents the current UI state.
type State int

const (
	StateRow State = iota
	StatePickLayout
)

// Model is the main application model.
type Model struct {
	// Configuration
	config *config.Config
	store  *state.Store

	// Layout
	current *config.NamedLayout
	ctl     *drag.Controller

	// Pointer gesture: the divider pressed, the press column and the delta
	// the divider already carried when pressed.
	gesture   *drag.Divider
	pressX    int
	pressBase int

	// Keyboard gesture: the selected divider. Its running displacement is
	// read from the live drag state.
	selected int

	// touched is set once widths are committed in the current layout, so a
	// late restore cannot overwrite them.
	touched bool

	// State
	state State
	err   error

	// Layout picker
	pickerInput   textinput.Model
	pickerMatches []int
	pickerCursor  int

	// UI
	width    int
	height   int
	keys     KeyMap
	renderer *ui.Renderer

	shouldQuit bool
}

// New creates a new Model opening the given layout. store may be nil to
// disable width persistence; cursor may be nil when no pointer shape
// changes are wanted.
func New(cfg *config.Config, start *config.NamedLayout, store *state.Store, cursor ui.CursorAdapter) Model {
	if cursor == nil {
		cursor = ui.NopCursor{}
	}
	if !cfg.Layout.RememberWidths {
		store = nil
	}

	pickerInput := textinput.New()
	pickerInput.Placeholder = "filter layouts..."
	pickerInput.CharLimit = 50

	hooks := ui.Hooks{
		OnHoverEnter: func(int) { cursor.RequestCursor(ui.CursorResize) },
		OnHoverLeave: func(int) { cursor.RequestCursor(ui.CursorArrow) },
	}

	return Model{
		config:      cfg,
		store:       store,
		current:     start,
		selected:    -1,
		state:       StateRow,
		pickerInput: pickerInput,
		keys:        KeyMapFromConfig(&cfg.Keys),
		renderer:    ui.NewRenderer(ui.ThemeFromConfig(cfg.UI), hooks),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && m.state == StateRow {
			m.shouldQuit = true
			if cmd := m.commit(); cmd != nil {
				return m, tea.Sequence(cmd, tea.Quit)
			}
			return m, tea.Quit
		}
		return m.handleKeyPress(msg)

	case WidthsLoadedMsg:
		// Only restore into an untouched row of the same layout.
		if m.ctl == nil || m.touched || m.ctl.Active() || msg.Layout != m.current.Name {
			return m, nil
		}
		panes := m.ctl.Panes()
		if !msg.Record.Matches(msg.Layout, len(panes), m.width) {
			return m, nil
		}
		for i := range panes {
			panes[i].Width = msg.Record.Widths[i]
		}
		m.ctl.SetPanes(panes)
		debug.Log("app: restored widths %v for %s", msg.Record.Widths, msg.Layout)
		return m, nil

	case WidthsSavedMsg:
		if msg.Err != nil {
			debug.Log("app: saving widths for %s failed: %v", msg.Layout, msg.Err)
			m.err = msg.Err
		}
		return m, nil
	}

	return m, nil
}

// handleResize builds the row on the first size message and refits it on
// later ones.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	if m.ctl == nil {
		m.ctl = drag.New(m.current.Build(msg.Width), drag.Options{
			DividerWidth: m.config.Layout.DividerWidth,
			Policy:       m.config.Policy(),
		})
		debug.Log("app: opened %s at %dx%d", m.current.Name, msg.Width, msg.Height)
		return m, m.loadWidths()
	}

	// A resize ends any gesture: the old deltas are in the old geometry.
	committed := m.ctl.Commit()
	m.gesture = nil
	m.touched = m.touched || committed
	m.ctl.SetPanes(layout.Fit(m.ctl.Panes(), msg.Width))
	debug.Log("app: refit to %d cells: %v", msg.Width, layout.Widths(m.ctl.Panes()))
	if committed {
		return m, m.saveWidths()
	}
	return m, nil
}

// handleMouse turns pointer events into divider gestures.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ctl == nil || m.state != StateRow {
		return m, nil
	}
	rowHeight := ui.RowHeight(m.height)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y >= rowHeight {
			return m, nil
		}
		d, ok := layout.DividerAt(m.ctl.Layout(), msg.X)
		if !ok {
			return m, nil
		}
		div, _ := m.ctl.Divider(d)
		// A divider already moved by the keyboard keeps its delta.
		m.pressBase = div.Delta()
		if !div.Dragging() {
			div.Begin()
		}
		m.gesture = div
		m.pressX = msg.X

	case tea.MouseActionMotion:
		if m.gesture != nil {
			m.gesture.Move(m.pressBase + msg.X - m.pressX)
			return m, nil
		}
		m.renderer.Hover(m.ctl.Layout(), msg.X, msg.Y, rowHeight)

	case tea.MouseActionRelease:
		if m.gesture == nil {
			return m, nil
		}
		div := m.gesture
		m.gesture = nil
		if div.Release() {
			m.touched = true
			return m, m.saveWidths()
		}
	}

	return m, nil
}

// handleKeyPress handles key presses based on current state.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateRow:
		return m.handleRowKeys(msg)
	case StatePickLayout:
		return m.handlePickerKeys(msg)
	}
	return m, nil
}

// handleRowKeys handles keyboard resizing.
func (m Model) handleRowKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ctl == nil {
		return m, nil
	}
	n := len(m.ctl.Dividers())

	switch {
	case key.Matches(msg, m.keys.NextDivider), key.Matches(msg, m.keys.PrevDivider):
		if n == 0 {
			return m, nil
		}
		cmd := m.commit()
		step := 1
		if key.Matches(msg, m.keys.PrevDivider) {
			step = n - 1
		}
		if m.selected < 0 {
			m.selected = 0
		} else {
			m.selected = (m.selected + step) % n
		}
		return m, cmd

	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		if n == 0 {
			return m, nil
		}
		if m.selected < 0 {
			m.selected = 0
		}
		dx := m.ctl.State().Delta(m.selected)
		if key.Matches(msg, m.keys.Left) {
			dx--
		} else {
			dx++
		}
		m.ctl.Move(m.selected, dx)

	case key.Matches(msg, m.keys.Release):
		cmd := m.commit()
		m.selected = -1
		return m, cmd

	case key.Matches(msg, m.keys.Layouts):
		cmd := m.commit()
		m.selected = -1
		m.state = StatePickLayout
		m.pickerInput.Reset()
		m.pickerCursor = 0
		m.applyFilter()
		m.pickerInput.Focus()
		return m, tea.Batch(cmd, textinput.Blink)
	}

	return m, nil
}

// handlePickerKeys handles key presses in the layout picker.
func (m Model) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.state = StateRow
		m.pickerInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.pickerCursor > 0 {
			m.pickerCursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.pickerCursor < len(m.pickerMatches)-1 {
			m.pickerCursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.state = StateRow
		m.pickerInput.Blur()
		if len(m.pickerMatches) == 0 {
			return m, nil
		}
		return m.applyLayout(&m.config.Layouts[m.pickerMatches[m.pickerCursor]])
	}

	var cmd tea.Cmd
	m.pickerInput, cmd = m.pickerInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter refreshes the picker matches using fuzzy matching.
func (m *Model) applyFilter() {
	m.pickerMatches = m.config.MatchLayouts(m.pickerInput.Value())

	if m.pickerCursor >= len(m.pickerMatches) {
		m.pickerCursor = len(m.pickerMatches) - 1
	}
	if m.pickerCursor < 0 {
		m.pickerCursor = 0
	}
}

// applyLayout switches the row to another named layout.
func (m Model) applyLayout(l *config.NamedLayout) (tea.Model, tea.Cmd) {
	if l == nil || len(l.Panes) == 0 {
		return m, nil
	}
	m.current = l
	m.gesture = nil
	m.selected = -1
	m.touched = false
	if m.ctl == nil {
		return m, nil
	}
	m.ctl.SetPanes(l.Build(m.width))
	debug.Log("app: switched to layout %s", l.Name)
	return m, m.loadWidths()
}

// commit releases every pending drag and returns a command persisting the
// result, or nil when nothing changed.
func (m *Model) commit() tea.Cmd {
	if m.ctl == nil || !m.ctl.Commit() {
		return nil
	}
	m.touched = true
	return m.saveWidths()
}

// View renders the UI.
func (m Model) View() string {
	p := ui.RenderParams{
		State:      int(m.state),
		Width:      m.width,
		Height:     m.height,
		Selected:   m.selected,
		LayoutName: m.current.Name,
		Policy:     m.config.Policy().String(),
		ShowTitles: m.config.UI.ShowTitles,
		Err:        m.err,
	}
	if m.ctl != nil {
		p.Items = m.ctl.Layout()
		p.Dragging = m.ctl.State().Snapshot()
	}
	if m.state == StatePickLayout {
		p.PickerInput = m.pickerInput.View()
		p.PickerCursor = m.pickerCursor
		for _, i := range m.pickerMatches {
			l := m.config.Layouts[i]
			p.PickerEntries = append(p.PickerEntries, ui.PickerEntry{
				Name:        l.Name,
				Description: l.Description,
				Panes:       len(l.Panes),
			})
		}
	}
	return m.renderer.Render(p)
}

// ShouldQuit returns true if the app should quit.
func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}

// Widths returns the persisted pane widths, or nil before the first size
// message.
func (m Model) Widths() []int {
	if m.ctl == nil {
		return nil
	}
	return layout.Widths(m.ctl.Panes())
}

// Commands

func (m Model) loadWidths() tea.Cmd {
	if m.store == nil {
		return nil
	}
	store, name := m.store, m.current.Name
	return func() tea.Msg {
		return WidthsLoadedMsg{Layout: name, Record: store.Load(name)}
	}
}

func (m Model) saveWidths() tea.Cmd {
	if m.store == nil || m.ctl == nil {
		return nil
	}
	store, name, total := m.store, m.current.Name, m.width
	widths := layout.Widths(m.ctl.Panes())
	return func() tea.Msg {
		defer debug.Timed("save widths")()
		err := store.Save(name, total, widths)
		return WidthsSavedMsg{Layout: name, Err: err}
	}
}
