// Package notify builds and dispatches the daily event summary.
package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/adeola-m/calendar-tracker/internal/entity"
	"github.com/adeola-m/calendar-tracker/internal/eventtime"
	"github.com/adeola-m/calendar-tracker/internal/repository"
)

// TextConfig holds the static pieces of the daily message.
type TextConfig struct {
	ContactName     string
	ContactNumber   string
	ScheduleBaseURL string
}

// BuildDailyMessage renders the summary for one day. label is the relative
// word used in the header ("tomorrow", "today"). monthHasEvents and
// nextMonthHasEvents decide the placeholder and reminder sections.
func BuildDailyMessage(cfg TextConfig, date time.Time, label string, events []*entity.CalendarEvent, monthHasEvents, nextMonthHasEvents bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📅 Events for %s, %s:\n\n", label, date.Format("Monday, January 02, 2006"))

	switch {
	case !monthHasEvents:
		fmt.Fprintf(&b, "No calendar has been uploaded for %s yet. Please send a photo of this month's calendar!\n", date.Format("January"))
	case len(events) == 0:
		b.WriteString("No events appear to be scheduled on this day.\n")
	default:
		sorted := make([]*entity.CalendarEvent, len(events))
		copy(sorted, events)
		eventtime.SortEvents(sorted)
		for _, ev := range sorted {
			b.WriteString(formatEventLine(ev))
			b.WriteByte('\n')
		}
	}

	if monthHasEvents && !nextMonthHasEvents && isLastTwoDays(date) {
		next := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location()).AddDate(0, 1, 0)
		fmt.Fprintf(&b, "\nThe month is almost over! Please send a photo of the calendar for %s when you get a chance.\n", next.Format("January"))
	}

	fmt.Fprintf(&b, "\nQuestions? Reach out to %s at %s.", cfg.ContactName, cfg.ContactNumber)
	if cfg.ScheduleBaseURL != "" {
		fmt.Fprintf(&b, "\nFull schedule: %s/month/%d/%d/", strings.TrimRight(cfg.ScheduleBaseURL, "/"), date.Year(), int(date.Month()))
	}

	return b.String()
}

func formatEventLine(ev *entity.CalendarEvent) string {
	display := eventtime.Display(ev.Hour, ev.Minute, ev.AmPm, ev.AllDay)
	if display == "" {
		return ev.Title
	}
	return display + " - " + ev.Title
}

func isLastTwoDays(date time.Time) bool {
	last := repository.DaysInMonth(date.Year(), int(date.Month()))
	return date.Day() >= last-1
}
