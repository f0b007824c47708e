package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/henri123lemoine/splitpane/internal/config"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("4")   // Blue
	ColorSecondary = lipgloss.Color("8")   // Gray
	ColorDanger    = lipgloss.Color("1")   // Red (dimmer)
	ColorMuted     = lipgloss.Color("245") // Light gray
	ColorHighlight = lipgloss.Color("6")   // Cyan
)

// Styles
var (
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	NormalStyle = lipgloss.NewStyle()

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	InputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Symbols
const (
	SymbolCursor   = "›"
	SymbolDragging = "↔"
)

// Theme holds the colors blocks are painted with.
type Theme struct {
	Pane    lipgloss.Color
	Divider lipgloss.Color
	Hover   lipgloss.Color
	Active  lipgloss.Color
	Text    lipgloss.Color
}

// ThemeFromConfig builds a Theme from the ui section. With theme "auto"
// the terminal background is queried to pick the title color.
func ThemeFromConfig(cfg config.UIConfig) Theme {
	dark := true
	switch cfg.Theme {
	case "light":
		dark = false
	case "auto", "":
		dark = lipgloss.HasDarkBackground()
	}

	text := lipgloss.Color("252")
	if !dark {
		text = lipgloss.Color("235")
	}

	return Theme{
		Pane:    lipgloss.Color(cfg.PaneColor),
		Divider: lipgloss.Color(cfg.DividerColor),
		Hover:   lipgloss.Color(cfg.HoverColor),
		Active:  lipgloss.Color(cfg.ActiveColor),
		Text:    text,
	}
}
