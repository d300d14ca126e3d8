// Package main is the entry point for the delaytext demo.
package main

import (
	"fmt"
	"os"

	"github.com/billie-coop/delaytext/internal/app"
	"github.com/billie-coop/delaytext/internal/config"
	"github.com/billie-coop/delaytext/internal/logging"
	"github.com/billie-coop/delaytext/internal/tui"
	tea "github.com/charmbracelet/bubbletea/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg := config.NewManager(wd)
	if err := cfg.Load(); err != nil {
		return err
	}

	logging.Init("delaytext", cfg.Get().Debug)
	defer logging.Sync()

	a, err := app.New(cfg)
	if err != nil {
		return err
	}

	model := tui.New(a)
	defer model.Dispose()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.L().Errorw("program exited with error", "error", err)
		return err
	}
	return nil
}
