package repository

import (
	"time"
)

// YearMonth identifies one calendar month.
type YearMonth struct {
	Year  int
	Month int
}

// MonthsOverlapping enumerates every calendar month touched by the
// inclusive [start, end] window. A range query must include all of them
// as candidates, since a month's page can carry events for any of its
// days.
func MonthsOverlapping(start, end time.Time) []YearMonth {
	if end.Before(start) {
		return nil
	}
	var out []YearMonth
	curr := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !curr.After(last) {
		out = append(out, YearMonth{Year: curr.Year(), Month: int(curr.Month())})
		curr = curr.AddDate(0, 1, 0)
	}
	return out
}

// WeekDates expands a start date into the seven consecutive dates of its
// week window, crossing month boundaries as needed.
func WeekDates(start time.Time) []time.Time {
	out := make([]time.Time, 7)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

// DaysInMonth returns the number of days in (year, month).
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
