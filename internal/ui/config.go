package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/gridcal/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	var edit bool
	var path string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Show the active configuration.

If no config file exists, creates one with default values.
With --edit, prompts for each calendar setting and saves the result.

Example:
  gridcal config --edit`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				path = config.DefaultConfigPath()
			}
			return runConfig(cmd.InOrStdin(), cmd.OutOrStdout(), path, edit)
		},
	}

	cmd.Flags().BoolVar(&edit, "edit", false, "Edit the configuration interactively")
	cmd.Flags().StringVar(&path, "path", "", "Config file path (default ~/.config/gridcal/config.toml)")
	return cmd
}

func runConfig(in io.Reader, out io.Writer, configPath string, edit bool) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load the file as stored, so env overrides are never saved
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)
	if !edit {
		return nil
	}

	// Interactive editing
	reader := bufio.NewReader(in)
	fmt.Fprintln(out)

	cfg.Calendar.WeekStart = promptValue(reader, out, "Week start (sunday/monday)", cfg.Calendar.WeekStart)
	cfg.Calendar.TimeZone = promptValue(reader, out, "Time zone", cfg.Calendar.TimeZone)
	cfg.Calendar.Locale = promptValue(reader, out, "Locale (empty for LANG)", cfg.Calendar.Locale)
	cfg.UI.Months = promptInt(reader, out, "Months per page", cfg.UI.Months)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	locale := cfg.Calendar.Locale
	if locale == "" {
		locale = "(process locale: " + cfg.Formatter().Tag().String() + ")"
	}
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[calendar]")
	fmt.Fprintf(out, "  week_start = %s\n", cfg.Calendar.WeekStart)
	fmt.Fprintf(out, "  time_zone  = %s\n", cfg.Calendar.TimeZone)
	fmt.Fprintf(out, "  locale     = %s\n", locale)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  color      = %t\n", cfg.UI.Color)
	fmt.Fprintf(out, "  months     = %d\n", cfg.UI.Months)
	fmt.Fprintln(out, "\n[log]")
	fmt.Fprintf(out, "  level      = %s\n", cfg.Log.Level)
	fmt.Fprintf(out, "  format     = %s\n", cfg.Log.Format)
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(out, "  Invalid number %q\n", value)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
