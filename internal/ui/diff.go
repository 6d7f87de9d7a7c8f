package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/gridcal/internal/calendar"
	"github.com/javiermolinar/gridcal/internal/dateutil"
)

// Span is the distance between two dates.
type Span struct {
	From, To calendar.Date
	Days     int // signed, positive when To is later
	Months   int // whole calendar months between the two dates' months
}

// Measure computes the Span from one date to another.
func Measure(c *calendar.Context, from, to calendar.Date) (Span, error) {
	days, err := c.DiffDays(from, to)
	if err != nil {
		return Span{}, err
	}
	months, err := c.DiffMonths(from.YearMonth(), to.YearMonth())
	if err != nil {
		return Span{}, err
	}
	return Span{From: from, To: to, Days: days, Months: months}, nil
}

func (a *App) diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff FROM [TO]",
		Short: "Count days and months between two dates",
		Long: `Count the days between two dates and the months between their months.

TO defaults to today. Both accept the same forms as 'gridcal day'.

Example:
  gridcal diff 2024-01-01 2024-03-01`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := dateutil.ParseDate(a.cal, args[0])
			if err != nil {
				return fmt.Errorf("from: %w", err)
			}
			var toArg string
			if len(args) > 1 {
				toArg = args[1]
			}
			to, err := dateutil.ParseDate(a.cal, toArg)
			if err != nil {
				return fmt.Errorf("to: %w", err)
			}

			span, err := Measure(a.cal, from, to)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s -> %s\n", formatHeader(span.From.String()), formatHeader(span.To.String()))
			fmt.Fprintf(out, "  %-7s %d\n", "Days", span.Days)
			fmt.Fprintf(out, "  %-7s %d\n", "Weeks", span.Days/7)
			fmt.Fprintf(out, "  %-7s %d\n", "Months", span.Months)
			return nil
		},
	}
}
