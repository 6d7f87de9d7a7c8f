package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/gridcal/internal/calendar"
	"github.com/javiermolinar/gridcal/internal/dateutil"
)

// WeekOf returns the grid row of d's month that contains d.
func WeekOf(c *calendar.Context, d calendar.Date, startWithMonday bool) ([calendar.GridColumns]calendar.Date, error) {
	var week [calendar.GridColumns]calendar.Date
	info, err := DescribeDay(c, d, startWithMonday)
	if err != nil {
		return week, err
	}
	first := (info.Row - 1) * calendar.GridColumns
	for i := range week {
		week[i], err = c.CellToDate(d.YearMonth(), first+i, startWithMonday)
		if err != nil {
			return week, err
		}
	}
	return week, nil
}

func (a *App) weekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week [date]",
		Short: "Show the week containing a date",
		Long: `Display the seven days of the grid row that contains a date.

Days outside the date's month are dimmed, the same way the month grid
shows them. Defaults to this week.

Example:
  gridcal week next-week --monday`,
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
			week, err := WeekOf(a.cal, d, a.startWithMonday())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			f := a.formatter()
			header := fmt.Sprintf("WEEK: %s - %s", week[0], week[len(week)-1])
			fmt.Fprintf(out, "\n  %s\n", formatHeader(header))
			fmt.Fprintln(out, strings.Repeat("─", 28))
			for _, day := range week {
				if err := printWeekDay(out, a.cal, f, day); err != nil {
					return err
				}
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}

func printWeekDay(out io.Writer, c *calendar.Context, f calendar.Formatter, d calendar.Date) error {
	weekday, err := c.Weekday(d)
	if err != nil {
		return err
	}
	line := fmt.Sprintf("%-4s %s", weekday.ShortStringIn(f), d)
	inFocus, _ := d.Focus().InFocus()
	switch {
	case c.IsToday(d):
		line = formatToday(line) + "  today"
	case !inFocus:
		line = formatMuted(line)
	}
	fmt.Fprintf(out, "  %s\n", line)
	return nil
}
