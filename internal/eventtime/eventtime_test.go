package eventtime

import (
	"testing"

	"github.com/adeola-m/calendar-tracker/internal/entity"
)

func intp(v int) *int       { return &v }
func strp(s string) *string { return &s }

func TestCanonical(t *testing.T) {
	cases := []struct {
		name    string
		hour    int
		minute  *int
		amPm    *string
		wantH   int
		wantMin int
	}{
		{"morning with am", 10, intp(30), strp("am"), 10, 30},
		{"afternoon pm", 3, intp(15), strp("pm"), 15, 15},
		{"noon pm stays 12", 12, nil, strp("pm"), 12, 0},
		{"midnight am becomes 0", 12, nil, strp("am"), 0, 0},
		{"no marker below 12", 9, intp(5), nil, 9, 5},
		{"no marker above 12 already 24h", 17, intp(45), nil, 17, 45},
		{"missing minute defaults 0", 7, nil, strp("pm"), 19, 0},
		{"marker case insensitive", 4, intp(0), strp("PM"), 16, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := Canonical(tc.hour, tc.minute, tc.amPm)
			if h != tc.wantH || m != tc.wantMin {
				t.Fatalf("Canonical(%d) = (%d,%d), want (%d,%d)", tc.hour, h, m, tc.wantH, tc.wantMin)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		h24, min int
		want     string
	}{
		{10, 30, "10:30 AM"},
		{0, 0, "12:00 AM"},
		{12, 0, "12:00 PM"},
		{13, 5, "1:05 PM"},
		{23, 59, "11:59 PM"},
		{1, 0, "1:00 AM"},
	}
	for _, tc := range cases {
		if got := FormatClock(tc.h24, tc.min); got != tc.want {
			t.Errorf("FormatClock(%d,%d) = %q, want %q", tc.h24, tc.min, got, tc.want)
		}
	}
}

func TestDisplay(t *testing.T) {
	if got := Display(intp(10), intp(30), strp("am"), false); got != "10:30 AM" {
		t.Errorf("timed display = %q, want %q", got, "10:30 AM")
	}
	if got := Display(intp(12), nil, strp("am"), false); got != "12:00 AM" {
		t.Errorf("midnight display = %q, want %q", got, "12:00 AM")
	}
	if got := Display(intp(12), nil, strp("pm"), false); got != "12:00 PM" {
		t.Errorf("noon display = %q, want %q", got, "12:00 PM")
	}
	if got := Display(nil, nil, nil, true); got != "All Day" {
		t.Errorf("all-day display = %q, want %q", got, "All Day")
	}
	if got := Display(nil, nil, nil, false); got != "" {
		t.Errorf("untimed display = %q, want empty", got)
	}
}

func TestSortEventsOrdering(t *testing.T) {
	evts := []*entity.CalendarEvent{
		{Title: "untimed", OriginalText: "untimed"},
		{Title: "evening", Hour: intp(7), Minute: intp(30), AmPm: strp("pm")},
		{Title: "allday", AllDay: true},
		{Title: "morning", Hour: intp(9), AmPm: strp("am")},
		{Title: "late-24h", Hour: intp(17)},
	}
	SortEvents(evts)

	want := []string{"allday", "morning", "late-24h", "evening", "untimed"}
	for i, w := range want {
		if evts[i].Title != w {
			t.Fatalf("order[%d] = %q, want %q (full: %v)", i, evts[i].Title, w, titles(evts))
		}
	}

	// Sorting twice is idempotent.
	SortEvents(evts)
	for i, w := range want {
		if evts[i].Title != w {
			t.Fatalf("second sort changed order[%d] = %q, want %q", i, evts[i].Title, w)
		}
	}
}

func TestSortEventsStableTieBreak(t *testing.T) {
	evts := []*entity.CalendarEvent{
		{Title: "first", Hour: intp(10), AmPm: strp("am"), Position: 0},
		{Title: "second", Hour: intp(10), AmPm: strp("am"), Position: 1},
		{Title: "third", Hour: intp(10), AmPm: strp("am"), Position: 2},
	}
	SortEvents(evts)
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if evts[i].Title != w {
			t.Fatalf("tie order[%d] = %q, want %q", i, evts[i].Title, w)
		}
	}
}

func TestSortChronologicalAcrossMonths(t *testing.T) {
	evts := []*entity.CalendarEvent{
		{Title: "april-first", Year: 2026, Month: 4, Day: 1, AllDay: true},
		{Title: "march-closing", Year: 2026, Month: 3, Day: 30, Hour: intp(6), AmPm: strp("pm")},
		{Title: "next-january", Year: 2027, Month: 1, Day: 2},
		{Title: "march-morning", Year: 2026, Month: 3, Day: 30, Hour: intp(9), AmPm: strp("am")},
	}
	SortChronological(evts)

	want := []string{"march-morning", "march-closing", "april-first", "next-january"}
	for i, w := range want {
		if evts[i].Title != w {
			t.Fatalf("order[%d] = %q, want %q (full: %v)", i, evts[i].Title, w, titles(evts))
		}
	}
}

func TestKeyTotalOrder(t *testing.T) {
	allDay := NewKey(nil, nil, nil, true)
	timed := NewKey(intp(12), intp(0), strp("am"), false) // midnight
	untimed := NewKey(nil, nil, nil, false)

	if !allDay.Less(timed) {
		t.Error("all-day must precede timed events")
	}
	if !timed.Less(untimed) {
		t.Error("timed must precede untimed events")
	}
	if !allDay.Less(untimed) {
		t.Error("all-day must precede untimed events")
	}
	if allDay.Less(allDay) || timed.Less(timed) || untimed.Less(untimed) {
		t.Error("Less must be irreflexive")
	}
}

func titles(evts []*entity.CalendarEvent) []string {
	out := make([]string, len(evts))
	for i, e := range evts {
		out[i] = e.Title
	}
	return out
}
