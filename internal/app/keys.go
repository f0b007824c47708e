package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/henri123lemoine/splitpane/internal/config"
)

// KeyMap defines all keybindings.
type KeyMap struct {
	// Keyboard resizing
	Left        key.Binding
	Right       key.Binding
	PrevDivider key.Binding
	NextDivider key.Binding
	Release     key.Binding

	// Layout picker
	Layouts key.Binding
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Cancel  key.Binding

	// General
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "move right"),
		),
		PrevDivider: key.NewBinding(
			key.WithKeys("[", "shift+tab"),
			key.WithHelp("[", "previous divider"),
		),
		NextDivider: key.NewBinding(
			key.WithKeys("]", "tab"),
			key.WithHelp("]", "next divider"),
		),
		Release: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter", "release"),
		),
		Layouts: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "layouts"),
		),
		// Letters go to the picker filter, so navigation avoids them.
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapFromConfig creates a KeyMap from config settings.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	km := DefaultKeyMap()

	if cfg.Left != "" {
		km.Left = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Left)...),
			key.WithHelp(cfg.Left, "move left"),
		)
	}
	if cfg.Right != "" {
		km.Right = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Right)...),
			key.WithHelp(cfg.Right, "move right"),
		)
	}
	if cfg.PrevDivider != "" {
		km.PrevDivider = key.NewBinding(
			key.WithKeys(parseKeys(cfg.PrevDivider)...),
			key.WithHelp(cfg.PrevDivider, "previous divider"),
		)
	}
	if cfg.NextDivider != "" {
		km.NextDivider = key.NewBinding(
			key.WithKeys(parseKeys(cfg.NextDivider)...),
			key.WithHelp(cfg.NextDivider, "next divider"),
		)
	}
	if cfg.Release != "" {
		km.Release = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Release)...),
			key.WithHelp(cfg.Release, "release"),
		)
	}
	if cfg.Layouts != "" {
		km.Layouts = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Layouts)...),
			key.WithHelp(cfg.Layouts, "layouts"),
		)
	}
	if cfg.Quit != "" {
		km.Quit = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		)
	}

	return km
}

// parseKeys parses a comma-separated list of keys.
func parseKeys(s string) []string {
	parts := strings.Split(s, ",")
	var keys []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
