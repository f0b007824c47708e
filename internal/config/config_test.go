package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Layout.DividerWidth != 1 {
		t.Errorf("Expected divider width 1, got %d", cfg.Layout.DividerWidth)
	}

	if cfg.Layout.WidthPolicy != "none" {
		t.Errorf("Expected width policy 'none', got %q", cfg.Layout.WidthPolicy)
	}

	if cfg.Policy().Enabled() {
		t.Error("Expected default policy to clamp nothing")
	}

	if cfg.GetLayoutByName(cfg.Layout.DefaultLayout) == nil {
		t.Errorf("Default layout %q is not defined", cfg.Layout.DefaultLayout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Config)
		wantWarning bool
	}{
		{
			name:        "default config is valid",
			modify:      func(*Config) {},
			wantWarning: false,
		},
		{
			name:        "zero divider width",
			modify:      func(c *Config) { c.Layout.DividerWidth = 0 },
			wantWarning: true,
		},
		{
			name:        "invalid width policy",
			modify:      func(c *Config) { c.Layout.WidthPolicy = "elastic" },
			wantWarning: true,
		},
		{
			name: "negative minimum",
			modify: func(c *Config) {
				c.Layout.WidthPolicy = "minimum"
				c.Layout.MinPaneWidth = -2
			},
			wantWarning: true,
		},
		{
			name:        "unknown default layout",
			modify:      func(c *Config) { c.Layout.DefaultLayout = "missing" },
			wantWarning: true,
		},
		{
			name:        "invalid theme",
			modify:      func(c *Config) { c.UI.Theme = "invalid" },
			wantWarning: true,
		},
		{
			name: "duplicate layout",
			modify: func(c *Config) {
				c.Layouts = append(c.Layouts, NamedLayout{Name: "thirds", Panes: []PaneConfig{{}}})
			},
			wantWarning: true,
		},
		{
			name: "layout without panes",
			modify: func(c *Config) {
				c.Layouts = append(c.Layouts, NamedLayout{Name: "empty"})
			},
			wantWarning: true,
		},
		{
			name: "sizes over 100",
			modify: func(c *Config) {
				c.Layouts = append(c.Layouts, NamedLayout{Name: "big", Panes: []PaneConfig{{Size: 60}, {Size: 60}}})
			},
			wantWarning: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			warnings := cfg.Validate()
			hasWarnings := len(warnings) > 0
			if hasWarnings != tt.wantWarning {
				t.Errorf("Validate() hasWarnings = %v, want %v. Warnings: %v", hasWarnings, tt.wantWarning, warnings)
			}
		})
	}
}

func TestLoadPreservesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `[layout]
divider_width = 3
width_policy = "minimum"
min_pane_width = 8

[ui]
pane_color = "#303030"
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}

	if cfg.Layout.DividerWidth != 3 {
		t.Errorf("Expected divider width 3, got %d", cfg.Layout.DividerWidth)
	}
	if p := cfg.Policy(); !p.Enabled() || p.Min() != 8 {
		t.Errorf("Expected minimum(8) policy, got %s", p)
	}
	if cfg.UI.PaneColor != "#303030" {
		t.Errorf("Expected pane color '#303030', got %q", cfg.UI.PaneColor)
	}

	// Unspecified values keep defaults, booleans included.
	if !cfg.Layout.RememberWidths {
		t.Error("Expected RememberWidths to remain true when not specified")
	}
	if !cfg.UI.CursorShapes {
		t.Error("Expected CursorShapes to remain true when not specified")
	}
	if len(cfg.Layouts) != 2 {
		t.Errorf("Expected built-in layouts to remain, got %d", len(cfg.Layouts))
	}
}

func TestLoadLayouts(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	tomlContent := `[[layouts]]
name = "editor"
description = "tree, code, terminal"
panes = [
  { size = 20, title = "tree" },
  { size = 50, title = "code" },
  { title = "term", color = "#101010" },
]
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}

	l := cfg.GetLayoutByName("editor")
	if l == nil {
		t.Fatal("Expected layout 'editor'")
	}
	panes := l.Build(200)
	if len(panes) != 3 {
		t.Fatalf("Expected 3 panes, got %d", len(panes))
	}
	if panes[0].Width != 40 || panes[1].Width != 100 || panes[2].Width != 60 {
		t.Errorf("Unexpected widths %d, %d, %d", panes[0].Width, panes[1].Width, panes[2].Width)
	}
	if panes[2].Color != "#101010" || panes[1].Title != "code" {
		t.Errorf("Pane appearance not carried: %+v", panes)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if cfg.Layout.DefaultLayout != "thirds" {
		t.Errorf("Expected default layout 'thirds', got %q", cfg.Layout.DefaultLayout)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[layout\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	if _, err := LoadFromPath(configPath); err == nil {
		t.Error("Expected parse error")
	}
}

func TestFindLayout(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		query string
		want  string
	}{
		{"thirds", "thirds"},
		{"col", "columns"},
		{"equal", "columns"},
		{"zzz", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := cfg.FindLayout(tt.query)
			name := ""
			if got != nil {
				name = got.Name
			}
			if name != tt.want {
				t.Errorf("FindLayout(%q) = %q, want %q", tt.query, name, tt.want)
			}
		})
	}
}

func TestStartLayout(t *testing.T) {
	cfg := DefaultConfig()

	l, err := cfg.StartLayout("")
	if err != nil || l.Name != "thirds" {
		t.Errorf("StartLayout(\"\") = %v, %v; want thirds", l, err)
	}

	l, err = cfg.StartLayout("columns")
	if err != nil || l.Name != "columns" {
		t.Errorf("StartLayout(columns) = %v, %v", l, err)
	}

	if _, err := cfg.StartLayout("zzz"); err == nil {
		t.Error("Expected error for unknown layout")
	}

	cfg.Layout.DefaultLayout = "missing"
	l, err = cfg.StartLayout("")
	if err != nil || l.Name != "thirds" {
		t.Errorf("Expected fallback to first layout, got %v, %v", l, err)
	}

	cfg.Layouts = nil
	if _, err := cfg.StartLayout(""); err == nil {
		t.Error("Expected error with no layouts")
	}
}

func TestMatchLayoutsEmptyQuery(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.MatchLayouts(""); len(got) != len(cfg.Layouts) {
		t.Errorf("Expected every layout, got %v", got)
	}
}

func TestConfigPath(t *testing.T) {
	path := ConfigPath()
	if path == "" {
		t.Error("ConfigPath should not return empty string")
	}

	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected config.toml, got %q", filepath.Base(path))
	}

	dir := filepath.Dir(path)
	if filepath.Base(dir) != "splitpane" {
		t.Errorf("Expected splitpane dir, got %q", filepath.Base(dir))
	}
}

func TestGeneratedConfigParses(t *testing.T) {
	content := generateDefaultConfigContent()
	if !strings.Contains(content, "width_policy") {
		t.Error("Expected width_policy in generated config")
	}

	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("Generated config does not parse: %v", err)
	}
	if warnings := cfg.Validate(); len(warnings) > 0 {
		t.Errorf("Generated config has warnings: %v", warnings)
	}
}
