package calendar

import (
	"fmt"
	"time"
)

// Month grid dimensions. Cell 0 is the top-left cell.
const (
	GridRows    = 6
	GridColumns = 7
	GridCells   = GridRows * GridColumns
)

// Pager contract: pages 0 through MaxPage-1 are valid and CenterPage shows
// the origin month.
const (
	MaxPage    = 100
	CenterPage = MaxPage / 2
)

// cellOffset returns the day offset of cell from day 1 of a month whose
// first day has native weekday w (1=Sunday).
func cellOffset(cell, w int, startWithMonday bool) int {
	switch {
	case !startWithMonday:
		return cell - w + 1
	case w == 1:
		return cell - w - 5
	default:
		return cell - w + 2
	}
}

type gridAnchor struct {
	def     Definition
	first   time.Time
	month   YearMonth
	weekday int
}

func newGridAnchor(def Definition, ym YearMonth) (gridAnchor, error) {
	first, err := monthAnchor(def, ym)
	if err != nil {
		return gridAnchor{}, err
	}
	p := def.Decompose(first)
	if p.Weekday < 1 || p.Weekday > 7 {
		return gridAnchor{}, fmt.Errorf("%s in %s: %w", ym, def.Name(), ErrUnsupportedWeekday)
	}
	return gridAnchor{
		def:     def,
		first:   first,
		month:   ym,
		weekday: p.Weekday,
	}, nil
}

func (g gridAnchor) cell(cell int, startWithMonday bool) Date {
	t := g.def.AddDays(g.first, cellOffset(cell, g.weekday, startWithMonday))
	p := g.def.Decompose(t)
	inFocus := p.Year == g.month.Year && p.Month == g.month.Month
	return NewFocusDate(p.Year, p.Month, p.Day, inFocus)
}

// CellToDate returns the date shown in a grid cell of ym. Row one starts on
// the Sunday (or Monday when startWithMonday is set) on or before day 1, and
// cells before or after the month hold the neighbouring months' dates tagged
// FocusOut. Dates whose year and month equal ym as given are tagged FocusIn,
// so a non-normalized ym such as {2023, 13} has no cell in focus.
func (c *Context) CellToDate(ym YearMonth, cell int, startWithMonday bool) (Date, error) {
	if cell < 0 {
		return Date{}, fmt.Errorf("%w: %d", ErrInvalidCell, cell)
	}
	def, _ := c.snapshot()
	g, err := newGridAnchor(def, ym)
	if err != nil {
		return Date{}, err
	}
	return g.cell(cell, startWithMonday), nil
}

// Grid returns all GridCells dates of ym in row-major order.
func (c *Context) Grid(ym YearMonth, startWithMonday bool) ([GridCells]Date, error) {
	var cells [GridCells]Date
	def, _ := c.snapshot()
	g, err := newGridAnchor(def, ym)
	if err != nil {
		return cells, err
	}
	for i := range cells {
		cells[i] = g.cell(i, startWithMonday)
	}
	return cells, nil
}

// WeekdayHeaders returns the weekday of each grid column.
func WeekdayHeaders(startWithMonday bool) [GridColumns]Weekday {
	var out [GridColumns]Weekday
	shift := 0
	if startWithMonday {
		shift = 1
	}
	for i := range out {
		out[i] = AllWeekdays[(i+shift)%7]
	}
	return out
}

// MonthForPage returns the month shown on page, where CenterPage shows
// origin.
func (c *Context) MonthForPage(origin YearMonth, page int) (YearMonth, error) {
	if page < 0 || page >= MaxPage {
		return YearMonth{}, fmt.Errorf("%w: %d", ErrPageOutOfRange, page)
	}
	return c.AddMonths(origin, page-CenterPage)
}

// PageForMonth returns the page showing ym when CenterPage shows origin.
func (c *Context) PageForMonth(origin, ym YearMonth) (int, error) {
	diff, err := c.DiffMonths(origin, ym)
	if err != nil {
		return 0, err
	}
	page := CenterPage + diff
	if page < 0 || page >= MaxPage {
		return 0, fmt.Errorf("%w: %s is %d months from %s", ErrPageOutOfRange, ym, diff, origin)
	}
	return page, nil
}

// Grid returns the grid of ym in the process-wide Context.
func Grid(ym YearMonth, startWithMonday bool) ([GridCells]Date, error) {
	return Default().Grid(ym, startWithMonday)
}
