package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/gridcal/internal/calendar"
	"github.com/javiermolinar/gridcal/internal/config"
	"github.com/javiermolinar/gridcal/internal/dateutil"
)

func (a *App) monthCmd() *cobra.Command {
	var months int
	var page int

	cmd := &cobra.Command{
		Use:   "month [YYYY-MM|this|next|last]",
		Short: "Print a month grid",
		Long: `Print the six week grid of a month.

Days from the neighbouring months fill the first and last rows and are
shown dimmed; today is highlighted.

With --page, the month is picked the way the pager does: page 50 is the
given month (default: this month), page 51 the next one, and so on
between 0 and 99.

Examples:
  gridcal month
  gridcal month 2024-02 --monday
  gridcal month next -n 3
  gridcal month --page 48`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var arg string
			if len(args) > 0 {
				arg = args[0]
			}
			ym, err := dateutil.ParseYearMonth(a.cal, arg)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("page") {
				ym, err = a.cal.MonthForPage(ym, page)
				if err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("months") {
				months = a.config.UI.Months
			}
			if months < 1 || months > config.MaxMonths {
				return fmt.Errorf("--months must be between 1 and %d", config.MaxMonths)
			}
			return a.printMonths(cmd, ym, months)
		},
	}

	cmd.Flags().IntVarP(&months, "months", "n", 1, "Number of months to print")
	cmd.Flags().IntVar(&page, "page", calendar.CenterPage, fmt.Sprintf("Pager page (0-%d, %d is the given month)", calendar.MaxPage-1, calendar.CenterPage))
	return cmd
}

func (a *App) printMonths(cmd *cobra.Command, start calendar.YearMonth, months int) error {
	out, err := RenderMonths(a.cal, start, months, termWidth(), a.renderOpts())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
