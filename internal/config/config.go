// Package config handles splitpane configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sahilm/fuzzy"

	"github.com/henri123lemoine/splitpane/internal/layout"
)

// Config represents splitpane configuration.
type Config struct {
	Layout  LayoutConfig  `toml:"layout"`
	UI      UIConfig      `toml:"ui"`
	Keys    KeysConfig    `toml:"keys"`
	Layouts []NamedLayout `toml:"layouts"`
}

// LayoutConfig contains row layout and drag settings.
type LayoutConfig struct {
	// Width of every divider in cells
	DividerWidth int `toml:"divider_width"`

	// Minimum width policy while dragging: "none" or "minimum"
	WidthPolicy string `toml:"width_policy"`

	// Smallest displayed pane width when width_policy = "minimum"
	MinPaneWidth int `toml:"min_pane_width"`

	// Named layout used at startup
	DefaultLayout string `toml:"default_layout"`

	// Restore committed widths from the previous run
	RememberWidths bool `toml:"remember_widths"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Color theme: auto, dark, light
	Theme string `toml:"theme"`

	// Colors (ANSI number or hex) for panes and dividers
	PaneColor    string `toml:"pane_color"`
	DividerColor string `toml:"divider_color"`
	HoverColor   string `toml:"hover_color"`
	ActiveColor  string `toml:"active_color"`

	// Ask the terminal for a resize pointer over dividers (OSC 22)
	CursorShapes bool `toml:"cursor_shapes"`

	// Print each pane's title in its top-left corner
	ShowTitles bool `toml:"show_titles"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Left        string `toml:"left"`
	Right       string `toml:"right"`
	PrevDivider string `toml:"prev_divider"`
	NextDivider string `toml:"next_divider"`
	Release     string `toml:"release"`
	Layouts     string `toml:"layouts"`
	Quit        string `toml:"quit"`
}

// PaneConfig defines a pane in a named layout.
type PaneConfig struct {
	// Size as percentage of the row (0 = share what is left equally)
	Size int `toml:"size"`

	// Title shown in the pane
	Title string `toml:"title"`

	// Background color override
	Color string `toml:"color"`
}

// NamedLayout defines a named row of panes.
type NamedLayout struct {
	// Unique name for this layout
	Name string `toml:"name"`

	// Human-readable description
	Description string `toml:"description"`

	// Pane definitions, left to right
	Panes []PaneConfig `toml:"panes"`
}

// Sizes returns the configured percentage of each pane.
func (l *NamedLayout) Sizes() []int {
	sizes := make([]int, len(l.Panes))
	for i, p := range l.Panes {
		sizes[i] = p.Size
	}
	return sizes
}

// Build returns the layout's panes with widths fitted to total cells.
func (l *NamedLayout) Build(total int) []layout.Pane {
	widths := layout.FromFractions(l.Sizes(), total)
	panes := make([]layout.Pane, len(l.Panes))
	for i, p := range l.Panes {
		panes[i] = layout.Pane{Width: widths[i], Title: p.Title, Color: p.Color}
	}
	return panes
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			DividerWidth:   layout.DefaultDividerWidth,
			WidthPolicy:    "none",
			MinPaneWidth:   1,
			DefaultLayout:  "thirds",
			RememberWidths: true,
		},
		UI: UIConfig{
			Theme:        "auto",
			PaneColor:    "236",
			DividerColor: "0",
			HoverColor:   "8",
			ActiveColor:  "4",
			CursorShapes: true,
			ShowTitles:   true,
		},
		Keys: KeysConfig{
			Left:        "left,h",
			Right:       "right,l",
			PrevDivider: "[,shift+tab",
			NextDivider: "],tab",
			Release:     "enter,esc",
			Layouts:     "L",
			Quit:        "q,ctrl+c",
		},
		Layouts: []NamedLayout{
			{
				Name:        "thirds",
				Description: "one third, two thirds",
				Panes: []PaneConfig{
					{Size: 33, Title: "left"},
					{Title: "right"},
				},
			},
			{
				Name:        "columns",
				Description: "three equal columns",
				Panes: []PaneConfig{
					{Title: "one"},
					{Title: "two"},
					{Title: "three"},
				},
			},
		},
	}
}

// Policy returns the minimum-width policy described by the layout section.
func (c *Config) Policy() layout.Policy {
	if c.Layout.WidthPolicy == "minimum" {
		return layout.MinimumWidth(c.Layout.MinPaneWidth)
	}
	return layout.NoMinimum()
}

// GetLayoutByName returns the layout with the given name, or nil if not found.
func (c *Config) GetLayoutByName(name string) *NamedLayout {
	for i := range c.Layouts {
		if c.Layouts[i].Name == name {
			return &c.Layouts[i]
		}
	}
	return nil
}

// layoutSource implements fuzzy.Source over layout names and descriptions.
type layoutSource []NamedLayout

func (s layoutSource) String(i int) string {
	return s[i].Name + " " + s[i].Description
}

func (s layoutSource) Len() int {
	return len(s)
}

// MatchLayouts returns the indexes of layouts matching query, best first.
// An empty query matches every layout in order.
func (c *Config) MatchLayouts(query string) []int {
	if query == "" {
		idx := make([]int, len(c.Layouts))
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	var idx []int
	for _, m := range fuzzy.FindFrom(query, layoutSource(c.Layouts)) {
		idx = append(idx, m.Index)
	}
	return idx
}

// FindLayout resolves a layout by exact name, falling back to the best
// fuzzy match. It returns nil when nothing matches.
func (c *Config) FindLayout(query string) *NamedLayout {
	if l := c.GetLayoutByName(query); l != nil {
		return l
	}
	if query == "" {
		return nil
	}
	if idx := c.MatchLayouts(query); len(idx) > 0 {
		return &c.Layouts[idx[0]]
	}
	return nil
}

// StartLayout returns the layout to open at startup: the requested one if
// given and found, else the configured default, else the first layout.
func (c *Config) StartLayout(requested string) (*NamedLayout, error) {
	if requested != "" {
		if l := c.FindLayout(requested); l != nil {
			return l, nil
		}
		return nil, fmt.Errorf("no layout matches %q", requested)
	}
	if l := c.GetLayoutByName(c.Layout.DefaultLayout); l != nil {
		return l, nil
	}
	if len(c.Layouts) > 0 {
		return &c.Layouts[0], nil
	}
	return nil, fmt.Errorf("no layouts configured")
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/splitpane/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "splitpane", "config.toml")
	}
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "splitpane", "config.toml")
	}
	// Fallback to os.UserConfigDir() for Windows
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "splitpane", "config.toml")
	}
	return filepath.Join(configDir, "splitpane", "config.toml")
}

// IsFirstRun returns true if no config file exists.
func IsFirstRun() bool {
	_, err := os.Stat(ConfigPath())
	return os.IsNotExist(err)
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	// go-toml/v2 only overwrites fields present in the file, so defaults
	// survive for everything else. A [[layouts]] array replaces the
	// built-in layouts as a whole.
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save saves configuration to the config file.
func Save(cfg *Config) error {
	path := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// CreateDefaultConfigFile creates a default config file with comments.
func CreateDefaultConfigFile() error {
	path := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(generateDefaultConfigContent()), 0644)
}

// generateDefaultConfigContent generates a commented config file.
func generateDefaultConfigContent() string {
	var b strings.Builder
	cfg := DefaultConfig()

	b.WriteString("# splitpane configuration\n\n")

	b.WriteString("[layout]\n")
	b.WriteString("# Width of every divider in cells\n")
	fmt.Fprintf(&b, "divider_width = %d\n", cfg.Layout.DividerWidth)
	b.WriteString("# Minimum width policy while dragging: \"none\" or \"minimum\"\n")
	b.WriteString("# \"none\" lets a drag push a pane to zero width\n")
	fmt.Fprintf(&b, "width_policy = %q\n", cfg.Layout.WidthPolicy)
	b.WriteString("# Smallest pane width when width_policy = \"minimum\"\n")
	fmt.Fprintf(&b, "min_pane_width = %d\n", cfg.Layout.MinPaneWidth)
	b.WriteString("# Layout opened at startup\n")
	fmt.Fprintf(&b, "default_layout = %q\n", cfg.Layout.DefaultLayout)
	b.WriteString("# Restore committed widths from the previous run\n")
	fmt.Fprintf(&b, "remember_widths = %v\n\n", cfg.Layout.RememberWidths)

	b.WriteString("[ui]\n")
	b.WriteString("# Color theme: \"auto\", \"dark\", or \"light\"\n")
	fmt.Fprintf(&b, "theme = %q\n", cfg.UI.Theme)
	fmt.Fprintf(&b, "pane_color = %q\n", cfg.UI.PaneColor)
	fmt.Fprintf(&b, "divider_color = %q\n", cfg.UI.DividerColor)
	fmt.Fprintf(&b, "hover_color = %q\n", cfg.UI.HoverColor)
	fmt.Fprintf(&b, "active_color = %q\n", cfg.UI.ActiveColor)
	b.WriteString("# Ask the terminal for a resize pointer over dividers\n")
	fmt.Fprintf(&b, "cursor_shapes = %v\n", cfg.UI.CursorShapes)
	fmt.Fprintf(&b, "show_titles = %v\n\n", cfg.UI.ShowTitles)

	b.WriteString("[keys]\n")
	b.WriteString("# Keybindings (comma-separated for multiple keys)\n")
	fmt.Fprintf(&b, "# left = %q\n", cfg.Keys.Left)
	fmt.Fprintf(&b, "# right = %q\n", cfg.Keys.Right)
	fmt.Fprintf(&b, "# prev_divider = %q\n", cfg.Keys.PrevDivider)
	fmt.Fprintf(&b, "# next_divider = %q\n", cfg.Keys.NextDivider)
	fmt.Fprintf(&b, "# release = %q\n", cfg.Keys.Release)
	fmt.Fprintf(&b, "# layouts = %q\n", cfg.Keys.Layouts)
	fmt.Fprintf(&b, "# quit = %q\n", cfg.Keys.Quit)

	b.WriteString("\n# Layouts (a [[layouts]] entry replaces the built-in ones)\n")
	for _, l := range cfg.Layouts {
		b.WriteString("# [[layouts]]\n")
		fmt.Fprintf(&b, "# name = %q\n", l.Name)
		fmt.Fprintf(&b, "# description = %q\n", l.Description)
		b.WriteString("# panes = [\n")
		for _, p := range l.Panes {
			fmt.Fprintf(&b, "#   { size = %d, title = %q },\n", p.Size, p.Title)
		}
		b.WriteString("# ]\n")
	}

	return b.String()
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.Layout.DividerWidth < 1 {
		warnings = append(warnings, fmt.Sprintf("layout.divider_width must be at least 1, got %d", c.Layout.DividerWidth))
	}

	if c.Layout.WidthPolicy != "" &&
		c.Layout.WidthPolicy != "none" &&
		c.Layout.WidthPolicy != "minimum" {
		warnings = append(warnings, fmt.Sprintf("Invalid value for layout.width_policy: %s (expected none or minimum)", c.Layout.WidthPolicy))
	}

	if c.Layout.WidthPolicy == "minimum" && c.Layout.MinPaneWidth < 0 {
		warnings = append(warnings, fmt.Sprintf("layout.min_pane_width must not be negative, got %d", c.Layout.MinPaneWidth))
	}

	if c.Layout.DefaultLayout != "" && c.GetLayoutByName(c.Layout.DefaultLayout) == nil {
		warnings = append(warnings, fmt.Sprintf("layout.default_layout %q is not defined", c.Layout.DefaultLayout))
	}

	if c.UI.Theme != "" &&
		c.UI.Theme != "auto" &&
		c.UI.Theme != "dark" &&
		c.UI.Theme != "light" {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.theme: %s (expected auto, dark, or light)", c.UI.Theme))
	}

	names := make(map[string]bool)
	for _, l := range c.Layouts {
		if names[l.Name] {
			warnings = append(warnings, fmt.Sprintf("Duplicate layout name: %s", l.Name))
		}
		names[l.Name] = true

		if l.Name == "" {
			warnings = append(warnings, "Layout has empty name")
		}
		if len(l.Panes) == 0 {
			warnings = append(warnings, fmt.Sprintf("Layout %s has no panes", l.Name))
		}

		total := 0
		for i, p := range l.Panes {
			if p.Size < 0 || p.Size > 99 {
				warnings = append(warnings, fmt.Sprintf("Layout %s pane %d: size must be 0-99, got %d", l.Name, i, p.Size))
			}
			total += p.Size
		}
		if total > 100 {
			warnings = append(warnings, fmt.Sprintf("Layout %s: pane sizes add up to %d%%", l.Name, total))
		}
	}

	return warnings
}
