package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/gridcal/internal/calendar"
)

// cellWidth is the width of one day column, including its left gap.
const cellWidth = 3

// gridWidth is the width of the seven day columns.
const gridWidth = cellWidth * calendar.GridColumns

var monthBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// RenderOpts configures month grid rendering.
type RenderOpts struct {
	StartWithMonday bool
	Formatter       calendar.Formatter
	Border          bool // Draw a rounded box around each month
}

// RenderMonth renders the six week grid of ym. Days outside ym are muted
// and today is highlighted.
func RenderMonth(c *calendar.Context, ym calendar.YearMonth, opts RenderOpts) (string, error) {
	cells, err := c.Grid(ym, opts.StartWithMonday)
	if err != nil {
		return "", fmt.Errorf("building grid for %s: %w", ym, err)
	}
	name, err := c.MonthShortString(ym, opts.Formatter)
	if err != nil {
		return "", fmt.Errorf("naming %s: %w", ym, err)
	}
	first, err := c.FirstDay(ym)
	if err != nil {
		return "", fmt.Errorf("first day of %s: %w", ym, err)
	}

	var b strings.Builder
	title := fmt.Sprintf("%s %d", name, first.Year)
	b.WriteString(lipgloss.PlaceHorizontal(gridWidth, lipgloss.Center, formatHeader(title)))
	b.WriteByte('\n')

	for _, w := range calendar.WeekdayHeaders(opts.StartWithMonday) {
		b.WriteString(formatWeekday(fmt.Sprintf("%*s", cellWidth, truncateRunes(w.ShortStringIn(opts.Formatter), cellWidth-1))))
	}

	for i, d := range cells {
		if i%calendar.GridColumns == 0 {
			b.WriteByte('\n')
		}
		b.WriteString(formatCell(c, d))
	}

	slog.Debug("rendered month",
		"month", ym.String(),
		"definition", c.Definition().Name(),
		"start_with_monday", opts.StartWithMonday,
		"first_cell", cells[0].String(),
		"last_cell", cells[calendar.GridCells-1].String())

	if opts.Border {
		return monthBoxStyle.Render(b.String()), nil
	}
	return b.String(), nil
}

// formatCell renders one day, right aligned in its column.
func formatCell(c *calendar.Context, d calendar.Date) string {
	text := fmt.Sprintf("%*d", cellWidth, d.Day)
	inFocus, _ := d.Focus().InFocus()
	switch {
	case !inFocus:
		return formatMuted(text)
	case c.IsToday(d):
		return " " + formatToday(text[1:])
	default:
		return formatFocus(text)
	}
}

// RenderMonths renders n consecutive months starting at start, laid out
// left to right and wrapped to fit width.
func RenderMonths(c *calendar.Context, start calendar.YearMonth, n, width int, opts RenderOpts) (string, error) {
	if n < 1 {
		n = 1
	}
	blocks := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ym, err := c.AddMonths(start, i)
		if err != nil {
			return "", err
		}
		block, err := RenderMonth(c, ym, opts)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block)
	}

	perRow := len(blocks)
	if blockWidth := lipgloss.Width(blocks[0]) + 1; width > 0 && blockWidth*perRow > width {
		perRow = max(1, width/blockWidth)
	}

	var rows []string
	for i := 0; i < len(blocks); i += perRow {
		end := min(i+perRow, len(blocks))
		row := make([]string, 0, 2*(end-i))
		for j, block := range blocks[i:end] {
			if j > 0 {
				row = append(row, " ")
			}
			row = append(row, block)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...), nil
}

// truncateRunes shortens s to at most n runes.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
