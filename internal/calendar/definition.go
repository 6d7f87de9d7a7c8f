// Package calendar provides date arithmetic and month-grid addressing on top
// of a single, process-wide calendar definition.
//
// Every operation resolves year/month/day/weekday through the Definition
// held by a Context. The package-level helpers and the value methods on
// YearMonth and Date use the shared Context returned by Default, so an
// application's date math stays consistent when the configured calendar
// differs from the system one. Values do not snapshot the definition: the
// same call made before and after Set may give different answers.
package calendar

import (
	"fmt"
	"time"
)

// Components is a date decomposed by a Definition.
type Components struct {
	Year  int
	Month int
	Day   int
	// Weekday uses the native numbering, 1=Sunday through 7=Saturday.
	Weekday int
}

// Definition is the rule set used to decompose instants into calendar
// fields and to carry arithmetic across month and year boundaries.
//
// Implementations must be safe for concurrent use. Grid addressing assumes a
// seven day week numbered 1=Sunday..7=Saturday.
type Definition interface {
	// Name identifies the definition, e.g. "gregorian/Europe/Berlin".
	Name() string
	// Compose returns the first instant of the given date, which is midnight
	// unless a DST change skips it. Out of range months and days carry
	// into the neighbouring months and years.
	Compose(year, month, day int) (time.Time, error)
	// Decompose splits t into calendar fields.
	Decompose(t time.Time) Components
	// AddDays advances t by n calendar days.
	AddDays(t time.Time, n int) time.Time
	// AddMonths advances t by n months, clamping the day to the length of
	// the target month.
	AddMonths(t time.Time, n int) time.Time
	// DaysBetween returns the whole days from one instant to another,
	// positive when to is later.
	DaysBetween(from, to time.Time) int
	// MonthsBetween returns the whole months from one instant to another,
	// positive when to is later.
	MonthsBetween(from, to time.Time) int
}

// maxGregorianYear bounds the years Gregorian will compose.
const maxGregorianYear = 1_000_000

// Gregorian is the proleptic Gregorian calendar evaluated in a time zone.
type Gregorian struct {
	loc *time.Location
}

// NewGregorian returns a Gregorian definition for loc. A nil location means
// time.Local.
func NewGregorian(loc *time.Location) *Gregorian {
	if loc == nil {
		loc = time.Local
	}
	return &Gregorian{loc: loc}
}

// Location returns the time zone the definition decomposes in.
func (g *Gregorian) Location() *time.Location {
	return g.loc
}

func (g *Gregorian) Name() string {
	return "gregorian/" + g.loc.String()
}

func (g *Gregorian) Compose(year, month, day int) (time.Time, error) {
	if y := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Year(); y < -maxGregorianYear || y > maxGregorianYear {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidComposition, year, month, day)
	}
	return g.startOfDay(year, time.Month(month), day), nil
}

func (g *Gregorian) Decompose(t time.Time) Components {
	t = t.In(g.loc)
	y, m, d := t.Date()
	return Components{Year: y, Month: int(m), Day: d, Weekday: int(t.Weekday()) + 1}
}

func (g *Gregorian) AddDays(t time.Time, n int) time.Time {
	t = t.In(g.loc)
	y, m, d := t.Date()
	return g.startOfDay(y, m, d+n).Add(g.sinceStartOfDay(t))
}

func (g *Gregorian) AddMonths(t time.Time, n int) time.Time {
	t = t.In(g.loc)
	y, m, d := t.Date()
	total := int(m) - 1 + n
	ty := y + floorDiv(total, 12)
	tm := time.Month(total - floorDiv(total, 12)*12 + 1)
	if last := gregorianDaysIn(ty, tm); d > last {
		d = last
	}
	return g.startOfDay(ty, tm, d).Add(g.sinceStartOfDay(t))
}

func (g *Gregorian) DaysBetween(from, to time.Time) int {
	from, to = from.In(g.loc), to.In(g.loc)
	days := int((civilUnix(to) - civilUnix(from)) / secondsPerDay)
	fc, tc := g.sinceStartOfDay(from), g.sinceStartOfDay(to)
	switch {
	case days > 0 && tc < fc:
		days--
	case days < 0 && tc > fc:
		days++
	}
	return days
}

func (g *Gregorian) MonthsBetween(from, to time.Time) int {
	from, to = from.In(g.loc), to.In(g.loc)
	fy, fm, _ := from.Date()
	ty, tm, _ := to.Date()
	months := (ty*12 + int(tm)) - (fy*12 + int(fm))
	switch {
	case months > 0 && g.AddMonths(from, months).After(to):
		months--
	case months < 0 && g.AddMonths(from, months).Before(to):
		months++
	}
	return months
}

const secondsPerDay = 24 * 60 * 60

// civilUnix returns the Unix time of t's calendar date at UTC midnight, so
// that day counts ignore DST transitions in t's own zone.
func civilUnix(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
}

// startOfDay returns the first instant of the given civil date in g's zone.
// Out of range months and days carry. Where a DST change skips midnight,
// time.Date may resolve to the previous evening, so the result steps forward
// until it lands on the requested date.
func (g *Gregorian) startOfDay(year int, month time.Month, day int) time.Time {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	t := time.Date(y, m, d, 0, 0, 0, 0, g.loc)
	for i := 0; i < 48; i++ {
		ty, tm, td := t.Date()
		if ty == y && tm == m && td == d {
			return t
		}
		t = t.Add(time.Hour)
	}
	return t
}

// sinceStartOfDay returns how long after the first instant of its day t is.
func (g *Gregorian) sinceStartOfDay(t time.Time) time.Duration {
	t = t.In(g.loc)
	y, m, d := t.Date()
	return t.Sub(g.startOfDay(y, m, d))
}

func gregorianDaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
