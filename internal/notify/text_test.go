package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/adeola-m/calendar-tracker/internal/entity"
)

var testCfg = TextConfig{
	ContactName:     "Adeola",
	ContactNumber:   "+13125551234",
	ScheduleBaseURL: "https://calendar.example.com",
}

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func timedEvent(hour, minute int, amPm, title string) *entity.CalendarEvent {
	return &entity.CalendarEvent{Hour: intPtr(hour), Minute: intPtr(minute), AmPm: strPtr(amPm), Title: title}
}

func TestBuildDailyMessageEventLines(t *testing.T) {
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	events := []*entity.CalendarEvent{
		timedEvent(6, 0, "pm", "Bingo Night"),
		{AllDay: true, Title: "Spirit Week"},
		timedEvent(9, 30, "am", "Morning Stretch"),
		{Title: "Check mailbox"},
	}

	got := BuildDailyMessage(testCfg, date, "tomorrow", events, true, true)

	if !strings.HasPrefix(got, "📅 Events for tomorrow, Tuesday, March 10, 2026:") {
		t.Fatalf("unexpected header:\n%s", got)
	}

	wantOrder := []string{
		"All Day - Spirit Week",
		"9:30 AM - Morning Stretch",
		"6:00 PM - Bingo Night",
		"Check mailbox",
	}
	prev := -1
	for _, line := range wantOrder {
		idx := strings.Index(got, line)
		if idx < 0 {
			t.Fatalf("missing line %q in:\n%s", line, got)
		}
		if idx < prev {
			t.Fatalf("line %q appears out of order in:\n%s", line, got)
		}
		prev = idx
	}

	if !strings.Contains(got, "Reach out to Adeola at +13125551234.") {
		t.Fatalf("missing contact line:\n%s", got)
	}
	if !strings.Contains(got, "https://calendar.example.com/month/2026/3/") {
		t.Fatalf("missing schedule link:\n%s", got)
	}
}

func TestBuildDailyMessageEmptyDay(t *testing.T) {
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	got := BuildDailyMessage(testCfg, date, "tomorrow", nil, true, true)
	if !strings.Contains(got, "No events appear to be scheduled on this day.") {
		t.Fatalf("missing empty-day text:\n%s", got)
	}
	if strings.Contains(got, "Please send a photo") {
		t.Fatalf("unexpected photo request on empty day:\n%s", got)
	}
}

func TestBuildDailyMessageMissingMonth(t *testing.T) {
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	got := BuildDailyMessage(testCfg, date, "tomorrow", nil, false, false)
	if !strings.Contains(got, "No calendar has been uploaded for March yet.") {
		t.Fatalf("missing photo request:\n%s", got)
	}
	if strings.Contains(got, "The month is almost over!") {
		t.Fatalf("next-month reminder should not fire when current month is missing:\n%s", got)
	}
}

func TestBuildDailyMessageNextMonthReminder(t *testing.T) {
	cases := []struct {
		name         string
		date         time.Time
		nextHasAny   bool
		wantReminder bool
	}{
		{name: "second to last day", date: time.Date(2026, time.March, 30, 0, 0, 0, 0, time.UTC), wantReminder: true},
		{name: "last day", date: time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), wantReminder: true},
		{name: "mid month", date: time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), wantReminder: false},
		{name: "next month already uploaded", date: time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), nextHasAny: true, wantReminder: false},
		{name: "feb leap year last day", date: time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC), wantReminder: true},
		{name: "december rolls to january", date: time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC), wantReminder: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildDailyMessage(testCfg, tc.date, "tomorrow", nil, true, tc.nextHasAny)
			has := strings.Contains(got, "The month is almost over!")
			if has != tc.wantReminder {
				t.Fatalf("reminder presence = %v, want %v:\n%s", has, tc.wantReminder, got)
			}
			if tc.name == "december rolls to january" && tc.wantReminder {
				if !strings.Contains(got, "calendar for January") {
					t.Fatalf("december reminder should name January:\n%s", got)
				}
			}
		})
	}
}
