// Package dateutil parses command line date arguments into calendar values.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/gridcal/internal/calendar"
)

// Validation errors.
var (
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidMonthFormat = errors.New("month must be in YYYY-MM format")
)

// weekdayMap maps weekday names to calendar weekdays.
var weekdayMap = map[string]calendar.Weekday{
	"sunday":    calendar.Sunday,
	"monday":    calendar.Monday,
	"tuesday":   calendar.Tuesday,
	"wednesday": calendar.Wednesday,
	"thursday":  calendar.Thursday,
	"friday":    calendar.Friday,
	"saturday":  calendar.Saturday,
}

// ParseYearMonth parses a month argument:
//   - Empty string or "this": the current month
//   - "next", "last" / "prev": the month after or before the current one
//   - Absolute month: "2025-01" (YYYY-MM)
//
// All inputs are case-insensitive.
func ParseYearMonth(c *calendar.Context, s string) (calendar.YearMonth, error) {
	current := c.CurrentMonth()
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "this":
		return current, nil
	case "next":
		return c.AddMonths(current, 1)
	case "last", "prev":
		return c.AddMonths(current, -1)
	}

	t, err := time.Parse("2006-01", input)
	if err != nil {
		return calendar.YearMonth{}, ErrInvalidMonthFormat
	}
	return calendar.NewYearMonth(t.Year(), int(t.Month())), nil
}

// ParseDate parses a date argument:
//   - Empty string or "today": the current date
//   - Keywords: "tomorrow", "yesterday"
//   - Weekday names: "monday" through "sunday" (next occurrence, always future)
//   - Next prefixed: "next-monday" through "next-sunday", "next-week"
//   - Absolute date: "2025-01-15" (YYYY-MM-DD)
//
// All inputs are case-insensitive. Absolute dates must exist in the
// context's calendar.
func ParseDate(c *calendar.Context, s string) (calendar.Date, error) {
	today := c.Today()
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "tomorrow":
		return c.AddDays(today, 1)
	case "yesterday":
		return c.AddDays(today, -1)
	case "next-week":
		return c.AddDays(today, 7)
	}

	// "next-monday", "next-tuesday", etc.
	if strings.HasPrefix(input, "next-") {
		if target, ok := weekdayMap[strings.TrimPrefix(input, "next-")]; ok {
			return nextWeekday(c, today, target)
		}
		return calendar.Date{}, ErrInvalidDateFormat
	}

	if target, ok := weekdayMap[input]; ok {
		return nextWeekday(c, today, target)
	}

	t, err := time.Parse("2006-01-02", input)
	if err != nil {
		return calendar.Date{}, ErrInvalidDateFormat
	}
	d := calendar.NewDate(t.Year(), int(t.Month()), t.Day())
	if _, err := c.Time(d); err != nil {
		return calendar.Date{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return d, nil
}

// nextWeekday returns the next occurrence of target after today.
// If today is the target weekday, returns one week from today.
func nextWeekday(c *calendar.Context, today calendar.Date, target calendar.Weekday) (calendar.Date, error) {
	current, err := c.Weekday(today)
	if err != nil {
		return calendar.Date{}, err
	}
	daysUntil := int(target) - int(current)
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return c.AddDays(today, daysUntil)
}
