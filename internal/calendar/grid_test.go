package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestCellToDate_February2024(t *testing.T) {
	c := testContext(time.Now())
	feb := NewYearMonth(2024, 2) // leap year, Feb 1 is a Thursday

	tests := []struct {
		cell    int
		want    Date
		inFocus bool
	}{
		{cell: 0, want: NewDate(2024, 1, 28), inFocus: false},
		{cell: 3, want: NewDate(2024, 1, 31), inFocus: false},
		{cell: 4, want: NewDate(2024, 2, 1), inFocus: true},
		{cell: 32, want: NewDate(2024, 2, 29), inFocus: true},
		{cell: 33, want: NewDate(2024, 3, 1), inFocus: false},
		{cell: 41, want: NewDate(2024, 3, 9), inFocus: false},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got, err := c.CellToDate(feb, tt.cell, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("cell %d = %s, want %s", tt.cell, got, tt.want)
			}
			in, ok := got.Focus().InFocus()
			if !ok {
				t.Fatalf("cell %d focus is unspecified", tt.cell)
			}
			if in != tt.inFocus {
				t.Errorf("cell %d in focus = %v, want %v", tt.cell, in, tt.inFocus)
			}
		})
	}
}

func TestCellToDate_StartWithMonday(t *testing.T) {
	c := testContext(time.Now())

	tests := []struct {
		name  string
		ym    YearMonth
		cell0 Date
	}{
		{name: "month starting thursday", ym: NewYearMonth(2024, 2), cell0: NewDate(2024, 1, 29)},
		{name: "month starting sunday", ym: NewYearMonth(2023, 10), cell0: NewDate(2023, 9, 25)},
		{name: "month starting monday", ym: NewYearMonth(2024, 1), cell0: NewDate(2024, 1, 1)},
		{name: "month starting saturday", ym: NewYearMonth(2024, 6), cell0: NewDate(2024, 5, 27)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.CellToDate(tt.ym, 0, true)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.cell0) {
				t.Errorf("cell 0 = %s, want %s", got, tt.cell0)
			}
		})
	}
}

func TestCellToDate_FirstCellAlignment(t *testing.T) {
	c := testContext(time.Now())

	for year := 1998; year <= 2032; year++ {
		for month := 1; month <= 12; month++ {
			ym := NewYearMonth(year, month)
			first, err := c.FirstDay(ym)
			if err != nil {
				t.Fatalf("FirstDay(%s): %v", ym, err)
			}
			for _, startWithMonday := range []bool{false, true} {
				want := Sunday
				if startWithMonday {
					want = Monday
				}
				cell0, err := c.CellToDate(ym, 0, startWithMonday)
				if err != nil {
					t.Fatalf("CellToDate(%s): %v", ym, err)
				}
				w, err := c.Weekday(cell0)
				if err != nil {
					t.Fatalf("Weekday(%s): %v", cell0, err)
				}
				if w != want {
					t.Errorf("%s monday=%v: cell 0 %s is %s, want %s", ym, startWithMonday, cell0, w, want)
				}
				gap, err := c.DiffDays(cell0, first)
				if err != nil {
					t.Fatalf("DiffDays: %v", err)
				}
				if gap < 0 || gap > 6 {
					t.Errorf("%s monday=%v: cell 0 %s is %d days before day 1", ym, startWithMonday, cell0, gap)
				}
			}
		}
	}
}

// checkGrid verifies that the grid of ym holds consecutive days and that
// exactly the days of ym are in focus.
func checkGrid(t *testing.T, c *Context, ym YearMonth, startWithMonday bool) {
	t.Helper()
	cells, err := c.Grid(ym, startWithMonday)
	if err != nil {
		t.Fatalf("Grid(%s): %v", ym, err)
	}
	days, err := c.DaysInMonth(ym)
	if err != nil {
		t.Fatalf("DaysInMonth(%s): %v", ym, err)
	}
	focused := 0
	for i, d := range cells {
		in, ok := d.Focus().InFocus()
		if !ok {
			t.Fatalf("%s cell %d has unspecified focus", ym, i)
		}
		if in != (d.YearMonth() == ym) {
			t.Errorf("%s cell %d (%s) in focus = %v", ym, i, d, in)
		}
		if in {
			focused++
		}
		if i == 0 {
			continue
		}
		step, err := c.DiffDays(cells[i-1], d)
		if err != nil {
			t.Fatalf("DiffDays: %v", err)
		}
		if step != 1 {
			t.Errorf("%s cells %d->%d step %d, want 1", ym, i-1, i, step)
		}
	}
	if focused != days {
		t.Errorf("%s: %d cells in focus, want %d", ym, focused, days)
	}
}

func TestGrid_ConsecutiveAndFocus(t *testing.T) {
	c := testContext(time.Now())

	for year := 2019; year <= 2025; year++ {
		for month := 1; month <= 12; month++ {
			for _, startWithMonday := range []bool{false, true} {
				checkGrid(t, c, NewYearMonth(year, month), startWithMonday)
			}
		}
	}
}

func TestGrid_MidnightDSTZones(t *testing.T) {
	for _, zone := range midnightDSTZones {
		t.Run(zone, func(t *testing.T) {
			c := zoneContext(t, zone)
			for year := 2016; year <= 2020; year++ {
				for month := 1; month <= 12; month++ {
					for _, startWithMonday := range []bool{false, true} {
						checkGrid(t, c, NewYearMonth(year, month), startWithMonday)
					}
				}
			}
		})
	}
}

func TestGrid_SkippedMidnight(t *testing.T) {
	tests := []struct {
		zone      string
		ym        YearMonth
		cell      int
		want      Date
		wantFirst Date
	}{
		// Brazil started DST at 00:00 on 2018-11-04, a Sunday.
		{zone: "America/Sao_Paulo", ym: NewYearMonth(2018, 11), cell: 7, want: NewDate(2018, 11, 4), wantFirst: NewDate(2018, 11, 1)},
		// Paraguay started DST at 00:00 on 2017-10-01, a Sunday.
		{zone: "America/Asuncion", ym: NewYearMonth(2017, 10), cell: 0, want: NewDate(2017, 10, 1), wantFirst: NewDate(2017, 10, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			c := zoneContext(t, tt.zone)

			got, err := c.CellToDate(tt.ym, tt.cell, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) || got.Focus() != FocusIn {
				t.Errorf("cell %d = %s (%s), want %s (in)", tt.cell, got, got.Focus(), tt.want)
			}

			first, err := c.FirstDay(tt.ym)
			if err != nil {
				t.Fatalf("FirstDay: %v", err)
			}
			if !first.Equal(tt.wantFirst) {
				t.Errorf("FirstDay(%s) = %s, want %s", tt.ym, first, tt.wantFirst)
			}

			prev, err := c.AddMonths(tt.ym, -1)
			if err != nil {
				t.Fatalf("AddMonths: %v", err)
			}
			if next, err := c.AddMonths(prev, 1); err != nil || next != tt.ym {
				t.Errorf("AddMonths(%s, 1) = %s, %v; want %s", prev, next, err, tt.ym)
			}

			if _, err := c.Time(tt.want); err != nil {
				t.Errorf("Time(%s): %v", tt.want, err)
			}
		})
	}
}

func TestCellToDate_NonNormalizedMonthHasNoFocus(t *testing.T) {
	c := testContext(time.Now())
	ym := NewYearMonth(2023, 13)

	got, err := c.CellToDate(ym, 10, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(NewDate(2024, 1, 10)) {
		t.Errorf("cell 10 = %s, want 2024-01-10", got)
	}

	cells, err := c.Grid(ym, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, d := range cells {
		if d.Focus() != FocusOut {
			t.Errorf("cell %d (%s) focus = %s, want out", i, d, d.Focus())
		}
	}
}

func TestGrid_MatchesCellToDate(t *testing.T) {
	c := testContext(time.Now())
	ym := NewYearMonth(2024, 9)
	cells, err := c.Grid(ym, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, want := range cells {
		got, err := c.CellToDate(ym, i, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("cell %d: CellToDate %s (%s), Grid %s (%s)", i, got, got.Focus(), want, want.Focus())
		}
	}
}

func TestCellToDate_NegativeCell(t *testing.T) {
	c := testContext(time.Now())
	_, err := c.CellToDate(NewYearMonth(2024, 2), -1, false)
	if !errors.Is(err, ErrInvalidCell) {
		t.Errorf("got error %v, want %v", err, ErrInvalidCell)
	}
}

func TestCellToDate_DefaultContext(t *testing.T) {
	t.Cleanup(Reset)
	Set(NewGregorian(time.UTC))

	got, err := NewYearMonth(2024, 2).CellToDate(4, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(NewDate(2024, 2, 1)) || got.Focus() != FocusIn {
		t.Errorf("got %s (%s), want 2024-02-01 (in)", got, got.Focus())
	}
	cells, err := Grid(NewYearMonth(2024, 2), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cells[4] != got {
		t.Errorf("Grid cell 4 = %s, want %s", cells[4], got)
	}
}

func TestWeekdayHeaders(t *testing.T) {
	sunday := WeekdayHeaders(false)
	if sunday[0] != Sunday || sunday[6] != Saturday {
		t.Errorf("sunday start headers = %v", sunday)
	}
	monday := WeekdayHeaders(true)
	if monday[0] != Monday || monday[5] != Saturday || monday[6] != Sunday {
		t.Errorf("monday start headers = %v", monday)
	}
}

func TestPagination(t *testing.T) {
	c := testContext(time.Now())
	origin := NewYearMonth(2024, 2)

	if CenterPage != 50 || MaxPage != 100 {
		t.Fatalf("unexpected pager constants %d/%d", CenterPage, MaxPage)
	}

	tests := []struct {
		page int
		want YearMonth
	}{
		{page: CenterPage, want: origin},
		{page: CenterPage + 1, want: NewYearMonth(2024, 3)},
		{page: CenterPage - 2, want: NewYearMonth(2023, 12)},
		{page: 0, want: NewYearMonth(2019, 12)},
		{page: MaxPage - 1, want: NewYearMonth(2028, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got, err := c.MonthForPage(origin, tt.page)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MonthForPage(%d) = %s, want %s", tt.page, got, tt.want)
			}
			page, err := c.PageForMonth(origin, got)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if page != tt.page {
				t.Errorf("PageForMonth(%s) = %d, want %d", got, page, tt.page)
			}
		})
	}

	for _, page := range []int{-1, MaxPage} {
		if _, err := c.MonthForPage(origin, page); !errors.Is(err, ErrPageOutOfRange) {
			t.Errorf("MonthForPage(%d): got %v, want %v", page, err, ErrPageOutOfRange)
		}
	}
	if _, err := c.PageForMonth(origin, NewYearMonth(2030, 1)); !errors.Is(err, ErrPageOutOfRange) {
		t.Errorf("PageForMonth: got %v, want %v", err, ErrPageOutOfRange)
	}
}
