package calendar

import (
	"fmt"
	"time"
)

// Focus records whether a Date belongs to the month shown by a grid.
type Focus uint8

// Focus values. FocusUnspecified marks an arbitrary date that did not come
// from grid addressing.
const (
	FocusUnspecified Focus = iota
	FocusIn
	FocusOut
)

func (f Focus) String() string {
	switch f {
	case FocusIn:
		return "in"
	case FocusOut:
		return "out"
	default:
		return "unspecified"
	}
}

// InFocus reports whether the date belongs to the focus month. ok is false
// when the focus is unspecified.
func (f Focus) InFocus() (inFocus, ok bool) {
	return f == FocusIn, f != FocusUnspecified
}

// Date identifies a calendar day, optionally tagged with its grid focus.
//
// The focus tag is metadata and not part of a date's identity: compare with
// Equal and use Key for map keys, since == also compares the tag.
type Date struct {
	Year  int
	Month int
	Day   int
	focus Focus
}

// NewDate returns a Date with an unspecified focus.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// NewFocusDate returns a Date tagged as inside or outside the focus month.
func NewFocusDate(year, month, day int, inFocus bool) Date {
	f := FocusOut
	if inFocus {
		f = FocusIn
	}
	return Date{Year: year, Month: month, Day: day, focus: f}
}

// Focus returns the focus tag.
func (d Date) Focus() Focus {
	return d.focus
}

// Key returns d without its focus tag.
func (d Date) Key() Date {
	return Date{Year: d.Year, Month: d.Month, Day: d.Day}
}

// Equal reports whether d and other name the same day.
func (d Date) Equal(other Date) bool {
	return d.Key() == other.Key()
}

// YearMonth returns the month containing d.
func (d Date) YearMonth() YearMonth {
	return YearMonth{Year: d.Year, Month: d.Month}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func dateOf(def Definition, t time.Time) Date {
	p := def.Decompose(t)
	return NewDate(p.Year, p.Month, p.Day)
}

// dateTime composes d and rejects triples the definition normalizes into
// another day, such as February 30.
func dateTime(def Definition, d Date) (time.Time, error) {
	t, err := compose(def, d.Year, d.Month, d.Day)
	if err != nil {
		return time.Time{}, err
	}
	if p := def.Decompose(t); p.Year != d.Year || p.Month != d.Month || p.Day != d.Day {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidComposition, d)
	}
	return t, nil
}

// Today returns the clock's current date.
func (c *Context) Today() Date {
	def, clock := c.snapshot()
	return dateOf(def, clock.Now())
}

// IsToday reports whether d is the clock's current date.
func (c *Context) IsToday(d Date) bool {
	return c.Today().Equal(d)
}

// Time returns midnight of d. It fails with ErrInvalidComposition if the
// definition cannot represent d.
func (c *Context) Time(d Date) (time.Time, error) {
	def, _ := c.snapshot()
	return dateTime(def, d)
}

// DateOf returns the date containing t.
func (c *Context) DateOf(t time.Time) Date {
	def, _ := c.snapshot()
	return dateOf(def, t)
}

// Weekday returns the day of the week of d.
func (c *Context) Weekday(d Date) (Weekday, error) {
	def, _ := c.snapshot()
	t, err := dateTime(def, d)
	if err != nil {
		return 0, err
	}
	w, err := weekdayFromNative(def.Decompose(t).Weekday)
	if err != nil {
		return 0, fmt.Errorf("%s in %s: %w", d, def.Name(), err)
	}
	return w, nil
}

// AddDays advances d by n days. The result has an unspecified focus.
func (c *Context) AddDays(d Date, n int) (Date, error) {
	def, _ := c.snapshot()
	t, err := dateTime(def, d)
	if err != nil {
		return Date{}, err
	}
	return dateOf(def, def.AddDays(t, n)), nil
}

// DiffDays returns the days from one date to another, positive when to is
// later.
func (c *Context) DiffDays(from, to Date) (int, error) {
	def, _ := c.snapshot()
	a, err := dateTime(def, from)
	if err != nil {
		return 0, err
	}
	b, err := dateTime(def, to)
	if err != nil {
		return 0, err
	}
	return def.DaysBetween(a, b), nil
}

// Today returns the current date of the process-wide Context.
func Today() Date {
	return Default().Today()
}

// FromTime returns the date containing t in the process-wide Context.
func FromTime(t time.Time) Date {
	return Default().DateOf(t)
}

// IsToday reports whether d is today.
func (d Date) IsToday() bool {
	return Default().IsToday(d)
}

// Time returns midnight of d.
func (d Date) Time() (time.Time, error) {
	return Default().Time(d)
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() (Weekday, error) {
	return Default().Weekday(d)
}

// AddDays advances d by n days.
func (d Date) AddDays(n int) (Date, error) {
	return Default().AddDays(d, n)
}

// DiffDays returns the days from d to other, positive when other is later.
func (d Date) DiffDays(other Date) (int, error) {
	return Default().DiffDays(d, other)
}
