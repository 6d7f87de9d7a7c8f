package calendar

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestYearMonth_String(t *testing.T) {
	if got := NewYearMonth(2024, 2).String(); got != "2024-02" {
		t.Errorf("got %q, want 2024-02", got)
	}
}

func TestContext_AddMonths(t *testing.T) {
	c := testContext(time.Now())

	tests := []struct {
		name string
		from YearMonth
		n    int
		want YearMonth
	}{
		{name: "december plus one", from: NewYearMonth(2023, 12), n: 1, want: NewYearMonth(2024, 1)},
		{name: "january minus one", from: NewYearMonth(2024, 1), n: -1, want: NewYearMonth(2023, 12)},
		{name: "twelve months", from: NewYearMonth(2024, 2), n: 12, want: NewYearMonth(2025, 2)},
		{name: "month 13 normalizes", from: NewYearMonth(2023, 13), n: 0, want: NewYearMonth(2024, 1)},
		{name: "month 0 normalizes", from: NewYearMonth(2024, 0), n: 1, want: NewYearMonth(2024, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.AddMonths(tt.from, tt.n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("AddMonths(%s, %d) = %s, want %s", tt.from, tt.n, got, tt.want)
			}
		})
	}
}

func TestContext_DiffMonthsRoundTrip(t *testing.T) {
	c := testContext(time.Now())

	for year := 1999; year <= 2031; year++ {
		for month := 1; month <= 12; month++ {
			m := NewYearMonth(year, month)
			later, err := c.AddMonths(m, 12)
			if err != nil {
				t.Fatalf("AddMonths(%s): %v", m, err)
			}
			back, err := c.DiffMonths(later, m)
			if err != nil {
				t.Fatalf("DiffMonths: %v", err)
			}
			if back != -12 {
				t.Errorf("%s.AddMonths(12).DiffMonths(%s) = %d, want -12", m, m, back)
			}
			forward, err := c.DiffMonths(m, later)
			if err != nil {
				t.Fatalf("DiffMonths: %v", err)
			}
			if forward != 12 {
				t.Errorf("%s.DiffMonths(%s) = %d, want 12", m, later, forward)
			}
		}
	}
}

func TestContext_DiffMonths(t *testing.T) {
	c := testContext(time.Now())
	got, err := c.DiffMonths(NewYearMonth(2023, 11), NewYearMonth(2024, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3 {
		t.Errorf("got %d, want 3", got)
	}
}

func TestContext_DaysInMonth(t *testing.T) {
	c := testContext(time.Now())

	tests := []struct {
		ym   YearMonth
		want int
	}{
		{ym: NewYearMonth(2024, 2), want: 29},
		{ym: NewYearMonth(2023, 2), want: 28},
		{ym: NewYearMonth(1900, 2), want: 28},
		{ym: NewYearMonth(2000, 2), want: 29},
		{ym: NewYearMonth(2024, 4), want: 30},
		{ym: NewYearMonth(2024, 12), want: 31},
	}

	for _, tt := range tests {
		t.Run(tt.ym.String(), func(t *testing.T) {
			got, err := c.DaysInMonth(tt.ym)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestContext_FirstDay(t *testing.T) {
	c := testContext(time.Now())
	got, err := c.FirstDay(NewYearMonth(2023, 14))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(NewDate(2024, 2, 1)) {
		t.Errorf("got %s, want 2024-02-01", got)
	}
	if got.Focus() != FocusUnspecified {
		t.Errorf("got focus %s, want unspecified", got.Focus())
	}
}

func TestContext_CurrentMonth(t *testing.T) {
	c := testContext(time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC))
	if got := c.CurrentMonth(); got != NewYearMonth(2024, 12) {
		t.Errorf("got %s, want 2024-12", got)
	}
}

func TestContext_MonthShortString(t *testing.T) {
	c := testContext(time.Now())

	tests := []struct {
		name string
		ym   YearMonth
		tag  language.Tag
		want string
	}{
		{name: "english", ym: NewYearMonth(2024, 3), tag: language.English, want: "Mar"},
		{name: "german", ym: NewYearMonth(2024, 3), tag: language.German, want: "Mär"},
		{name: "normalized month", ym: NewYearMonth(2023, 13), tag: language.English, want: "Jan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.MonthShortString(tt.ym, NewFormatter(tt.tag))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestYearMonth_DefaultContext(t *testing.T) {
	t.Cleanup(Reset)
	Set(NewGregorian(time.UTC))
	t.Setenv("LC_ALL", "en_US.UTF-8")

	m := NewYearMonth(2023, 12)
	next, err := m.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != NewYearMonth(2024, 1) {
		t.Errorf("Next() = %s, want 2024-01", next)
	}
	prev, err := next.Previous()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prev != m {
		t.Errorf("Previous() = %s, want %s", prev, m)
	}
	diff, err := m.DiffMonths(NewYearMonth(2024, 6))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff != 6 {
		t.Errorf("DiffMonths = %d, want 6", diff)
	}
	if got := m.ShortString(); got != "Dec" {
		t.Errorf("ShortString() = %q, want Dec", got)
	}
}

// failingDefinition cannot compose any date.
type failingDefinition struct {
	*Gregorian
}

func (failingDefinition) Compose(int, int, int) (time.Time, error) {
	return time.Time{}, errors.New("no such date")
}

func TestContext_CompositionFailureIsSurfaced(t *testing.T) {
	c := NewContext(WithDefinition(failingDefinition{NewGregorian(time.UTC)}))
	ym := NewYearMonth(2024, 1)

	if _, err := c.AddMonths(ym, 1); !errors.Is(err, ErrInvalidComposition) {
		t.Errorf("AddMonths: got %v, want %v", err, ErrInvalidComposition)
	}
	if _, err := c.DiffMonths(ym, ym); !errors.Is(err, ErrInvalidComposition) {
		t.Errorf("DiffMonths: got %v, want %v", err, ErrInvalidComposition)
	}
	if _, err := c.MonthShortString(ym, NewFormatter(language.English)); !errors.Is(err, ErrInvalidComposition) {
		t.Errorf("MonthShortString: got %v, want %v", err, ErrInvalidComposition)
	}
	if _, err := c.CellToDate(ym, 0, false); !errors.Is(err, ErrInvalidComposition) {
		t.Errorf("CellToDate: got %v, want %v", err, ErrInvalidComposition)
	}
	if _, err := c.AddDays(NewDate(2024, 1, 1), 1); !errors.Is(err, ErrInvalidComposition) {
		t.Errorf("AddDays: got %v, want %v", err, ErrInvalidComposition)
	}
}
