package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/henri123lemoine/splitpane/internal/app"
	"github.com/henri123lemoine/splitpane/internal/config"
	"github.com/henri123lemoine/splitpane/internal/debug"
	"github.com/henri123lemoine/splitpane/internal/state"
	"github.com/henri123lemoine/splitpane/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default ~/.config/splitpane/config.toml)")
	layoutName := flag.String("layout", "", "layout to open (exact or fuzzy name)")
	debugOn := flag.Bool("debug", false, "write a debug log")
	debugPath := flag.String("debug-log", debug.DefaultPath(), "debug log location")
	initConfig := flag.Bool("init", false, "write a commented default config file and exit")
	flag.Parse()

	if *initConfig {
		if !config.IsFirstRun() {
			fmt.Fprintf(os.Stderr, "Config already exists at %s\n", config.ConfigPath())
			os.Exit(1)
		}
		if err := config.CreateDefaultConfigFile(); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", config.ConfigPath())
		return
	}

	if *debugOn {
		if err := debug.Enable(*debugPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error enabling debug log: %v\n", err)
			os.Exit(1)
		}
		defer debug.Close()
	}

	// Load configuration
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromPath(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	for _, w := range cfg.Validate() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		debug.Log("config: %s", w)
	}

	start, err := cfg.StartLayout(*layoutName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var cursor ui.CursorAdapter = ui.NopCursor{}
	if cfg.UI.CursorShapes {
		cursor = ui.NewTerminalCursor(os.Stdout)
	}

	model := app.New(cfg, start, state.NewStore(state.DefaultDir()), cursor)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	finalModel, err := p.Run()
	// Leave the pointer as we found it.
	cursor.RequestCursor(ui.CursorArrow)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if m, ok := finalModel.(app.Model); ok {
		debug.Log("exit: widths %v", m.Widths())
	}
}
