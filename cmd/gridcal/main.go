package main

import (
	"fmt"
	"os"

	"github.com/javiermolinar/gridcal/internal/calendar"
	"github.com/javiermolinar/gridcal/internal/config"
	"github.com/javiermolinar/gridcal/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	def, err := cfg.Definition()
	if err != nil {
		return fmt.Errorf("configuring calendar: %w", err)
	}
	calendar.Set(def)

	app := ui.NewApp(calendar.Default(), cfg)
	return app.Execute()
}
