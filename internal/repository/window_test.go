package repository

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthsOverlapping(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		want       []YearMonth
	}{
		{
			"within one month",
			date(2026, time.January, 5), date(2026, time.January, 20),
			[]YearMonth{{2026, 1}},
		},
		{
			"week across month boundary",
			date(2026, time.January, 29), date(2026, time.February, 4),
			[]YearMonth{{2026, 1}, {2026, 2}},
		},
		{
			"across year boundary",
			date(2025, time.December, 15), date(2026, time.January, 2),
			[]YearMonth{{2025, 12}, {2026, 1}},
		},
		{
			"end before start",
			date(2026, time.March, 2), date(2026, time.March, 1),
			nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MonthsOverlapping(tc.start, tc.end)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestWeekDates(t *testing.T) {
	got := WeekDates(date(2026, time.January, 29))
	if len(got) != 7 {
		t.Fatalf("len = %d, want 7", len(got))
	}
	if got[0] != date(2026, time.January, 29) {
		t.Errorf("first = %v", got[0])
	}
	if got[6] != date(2026, time.February, 4) {
		t.Errorf("last = %v, want Feb 4", got[6])
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2026, 1, 31},
		{2026, 2, 28},
		{2024, 2, 29},
		{2026, 4, 30},
		{2026, 12, 31},
	}
	for _, tc := range cases {
		if got := DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Errorf("DaysInMonth(%d,%d) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}
