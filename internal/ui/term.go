package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Days of the focus month: default foreground
	colorFocus = color.New(color.FgWhite)

	// Days spilling in from neighbouring months: dim
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Today: reversed so it stands out in any theme
	colorToday = color.New(color.FgCyan, color.Bold, color.ReverseVideo)

	// Weekday header row: cyan
	colorWeekday = color.New(color.FgCyan)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatFocus formats a day of the displayed month.
func formatFocus(s string) string {
	return colorFocus.Sprint(s)
}

// formatMuted formats a day outside the displayed month.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatToday formats today's cell.
func formatToday(s string) string {
	return colorToday.Sprint(s)
}

// formatWeekday formats a weekday column header.
func formatWeekday(s string) string {
	return colorWeekday.Sprint(s)
}
