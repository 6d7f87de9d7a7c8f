package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/gridcal/internal/calendar"
	"github.com/javiermolinar/gridcal/internal/dateutil"
)

// DayInfo describes where a date sits relative to today and its month grid.
type DayInfo struct {
	Date      calendar.Date
	Weekday   calendar.Weekday
	FromToday int // days from today, negative in the past
	Cell      int // grid cell index within its own month
	Row       int // 1-based grid row
	Column    int // 1-based grid column
	Page      int // pager page relative to the current month, -1 if out of range
}

// DescribeDay computes the DayInfo of d.
func DescribeDay(c *calendar.Context, d calendar.Date, startWithMonday bool) (DayInfo, error) {
	weekday, err := c.Weekday(d)
	if err != nil {
		return DayInfo{}, err
	}
	fromToday, err := c.DiffDays(c.Today(), d)
	if err != nil {
		return DayInfo{}, err
	}
	cell0, err := c.CellToDate(d.YearMonth(), 0, startWithMonday)
	if err != nil {
		return DayInfo{}, err
	}
	cell, err := c.DiffDays(cell0, d)
	if err != nil {
		return DayInfo{}, err
	}
	page, err := c.PageForMonth(c.CurrentMonth(), d.YearMonth())
	if err != nil {
		page = -1
	}
	return DayInfo{
		Date:      d,
		Weekday:   weekday,
		FromToday: fromToday,
		Cell:      cell,
		Row:       cell/calendar.GridColumns + 1,
		Column:    cell%calendar.GridColumns + 1,
		Page:      page,
	}, nil
}

// relativeDays phrases a day offset from today.
func relativeDays(n int) string {
	switch {
	case n == 0:
		return "today"
	case n == 1:
		return "tomorrow"
	case n == -1:
		return "yesterday"
	case n > 0:
		return fmt.Sprintf("in %d days", n)
	default:
		return fmt.Sprintf("%d days ago", -n)
	}
}

func (a *App) dayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day [date]",
		Short: "Describe a date",
		Long: `Show the weekday of a date, how far it is from today and where it
appears in its month grid.

Dates may be YYYY-MM-DD, today, tomorrow, yesterday, a weekday name
(next occurrence), next-<weekday> or next-week.

Example:
  gridcal day 2024-02-29`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var arg string
			if len(args) > 0 {
				arg = args[0]
			}
			d, err := dateutil.ParseDate(a.cal, arg)
			if err != nil {
				return err
			}
			info, err := DescribeDay(a.cal, d, a.startWithMonday())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			f := a.formatter()
			fmt.Fprintf(out, "%s  %s\n", formatHeader(info.Date.String()), info.Weekday)
			fmt.Fprintf(out, "  %-10s %s\n", "Relative", relativeDays(info.FromToday))
			fmt.Fprintf(out, "  %-10s cell %d of %s %d (row %d, column %d, weeks start %s)\n",
				"Grid", info.Cell, f.ShortMonth(monthOf(info.Date)), info.Date.Year,
				info.Row, info.Column, a.weekStartName())
			if info.Page >= 0 {
				fmt.Fprintf(out, "  %-10s %d\n", "Page", info.Page)
			} else {
				fmt.Fprintf(out, "  %-10s %s\n", "Page", formatMuted("out of pager range"))
			}
			return nil
		},
	}
}

func monthOf(d calendar.Date) time.Month {
	return time.Month(d.Month)
}
