package ui

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/gridcal/internal/calendar"
	"github.com/javiermolinar/gridcal/internal/config"
	"github.com/javiermolinar/gridcal/internal/logger"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	cal     *calendar.Context
	config  *config.Config
	root    *cobra.Command
	debug   bool // Enable debug logging
	noColor bool
	monday  bool
	sunday  bool
}

// NewApp creates a new CLI application computing dates in cal with the
// given config.
func NewApp(cal *calendar.Context, cfg *config.Config) *App {
	a := &App{cal: cal, config: cfg}

	a.root = &cobra.Command{
		Use:   "gridcal",
		Short: "Month grids and calendar arithmetic",
		Long: `Gridcal prints paged month grids and answers calendar questions.

Every date is computed against one configured calendar (time zone and
week start), so grids, weekdays and day counts always agree.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.printMonths(cmd, a.cal.CurrentMonth(), a.config.UI.Months)
		},
	}

	// Add global flags
	flags := a.root.PersistentFlags()
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging (to stderr)")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable color output")
	flags.BoolVar(&a.monday, "monday", false, "Start weeks on Monday")
	flags.BoolVar(&a.sunday, "sunday", false, "Start weeks on Sunday")
	a.root.MarkFlagsMutuallyExclusive("monday", "sunday")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.monthCmd())
	a.root.AddCommand(a.dayCmd())
	a.root.AddCommand(a.diffCmd())
	a.root.AddCommand(a.weekCmd())

	return a
}

// setup applies global flags before any command runs.
func (a *App) setup(cmd *cobra.Command) error {
	logger.Setup(a.config.Log, cmd.ErrOrStderr(), a.debug)

	if a.noColor || !a.config.UI.Color {
		DisableColor()
	}

	attrs := []any{
		"definition", a.cal.Definition().Name(),
		"week_start", a.weekStartName(),
		"locale", a.formatter().Tag().String(),
	}
	if g, ok := a.cal.Definition().(*calendar.Gregorian); ok {
		attrs = append(attrs, "time_zone", g.Location().String())
	}
	slog.Debug("calendar configured", attrs...)
	return nil
}

// startWithMonday resolves the week start from flags, then config.
func (a *App) startWithMonday() bool {
	switch {
	case a.monday:
		return true
	case a.sunday:
		return false
	default:
		return a.config.StartWithMonday()
	}
}

func (a *App) weekStartName() string {
	if a.startWithMonday() {
		return "monday"
	}
	return "sunday"
}

func (a *App) formatter() *calendar.LocaleFormatter {
	return a.config.Formatter()
}

func (a *App) renderOpts() RenderOpts {
	return RenderOpts{
		StartWithMonday: a.startWithMonday(),
		Formatter:       a.formatter(),
		Border:          true,
	}
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gridcal %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
