package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// YearMonth identifies a calendar month. The month is not range checked;
// values outside 1-12 are normalized by the definition when composed, so
// YearMonth{2023, 13} behaves as January 2024 in arithmetic.
type YearMonth struct {
	Year  int
	Month int
}

// NewYearMonth returns the YearMonth for year and month.
func NewYearMonth(year, month int) YearMonth {
	return YearMonth{Year: year, Month: month}
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// compose runs def.Compose and guarantees ErrInvalidComposition is in the
// chain of any failure.
func compose(def Definition, year, month, day int) (time.Time, error) {
	t, err := def.Compose(year, month, day)
	if err == nil {
		return t, nil
	}
	if errors.Is(err, ErrInvalidComposition) {
		return time.Time{}, err
	}
	return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidComposition, err)
}

func monthAnchor(def Definition, ym YearMonth) (time.Time, error) {
	return compose(def, ym.Year, ym.Month, 1)
}

func monthOf(def Definition, t time.Time) YearMonth {
	p := def.Decompose(t)
	return YearMonth{Year: p.Year, Month: p.Month}
}

// CurrentMonth returns the month containing the clock's current instant.
func (c *Context) CurrentMonth() YearMonth {
	def, clock := c.snapshot()
	return monthOf(def, clock.Now())
}

// AddMonths advances ym by n months using the definition's own carry rules.
func (c *Context) AddMonths(ym YearMonth, n int) (YearMonth, error) {
	def, _ := c.snapshot()
	anchor, err := monthAnchor(def, ym)
	if err != nil {
		return YearMonth{}, err
	}
	return monthOf(def, def.AddMonths(anchor, n)), nil
}

// DiffMonths returns the signed number of months from one month to another,
// positive when to is later.
func (c *Context) DiffMonths(from, to YearMonth) (int, error) {
	def, _ := c.snapshot()
	a, err := monthAnchor(def, from)
	if err != nil {
		return 0, err
	}
	b, err := monthAnchor(def, to)
	if err != nil {
		return 0, err
	}
	return def.MonthsBetween(a, b), nil
}

// FirstDay returns day 1 of ym.
func (c *Context) FirstDay(ym YearMonth) (Date, error) {
	def, _ := c.snapshot()
	anchor, err := monthAnchor(def, ym)
	if err != nil {
		return Date{}, err
	}
	return dateOf(def, anchor), nil
}

// DaysInMonth returns the length of ym.
func (c *Context) DaysInMonth(ym YearMonth) (int, error) {
	def, _ := c.snapshot()
	anchor, err := monthAnchor(def, ym)
	if err != nil {
		return 0, err
	}
	return def.DaysBetween(anchor, def.AddMonths(anchor, 1)), nil
}

// MonthShortString returns the abbreviated name of ym's month using f.
func (c *Context) MonthShortString(ym YearMonth, f Formatter) (string, error) {
	def, _ := c.snapshot()
	anchor, err := monthAnchor(def, ym)
	if err != nil {
		return "", err
	}
	return f.ShortMonth(time.Month(def.Decompose(anchor).Month)), nil
}

// CurrentMonth returns the current month of the process-wide Context.
func CurrentMonth() YearMonth {
	return Default().CurrentMonth()
}

// AddMonths advances ym by n months.
func (ym YearMonth) AddMonths(n int) (YearMonth, error) {
	return Default().AddMonths(ym, n)
}

// Next returns the following month.
func (ym YearMonth) Next() (YearMonth, error) {
	return ym.AddMonths(1)
}

// Previous returns the preceding month.
func (ym YearMonth) Previous() (YearMonth, error) {
	return ym.AddMonths(-1)
}

// DiffMonths returns the months from ym to other, positive when other is
// later.
func (ym YearMonth) DiffMonths(other YearMonth) (int, error) {
	return Default().DiffMonths(ym, other)
}

// ShortString returns the abbreviated month name in the process locale.
// The month number is returned if the month cannot be composed.
func (ym YearMonth) ShortString() string {
	s, err := Default().MonthShortString(ym, DefaultFormatter())
	if err != nil {
		return strconv.Itoa(ym.Month)
	}
	return s
}

// CellToDate maps a grid cell of ym to its date. See Context.CellToDate.
func (ym YearMonth) CellToDate(cell int, startWithMonday bool) (Date, error) {
	return Default().CellToDate(ym, cell, startWithMonday)
}
