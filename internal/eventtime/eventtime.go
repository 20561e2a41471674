// Package eventtime maps the raw extracted time fields (hour, minute,
// am_pm, all_day) onto a single totally-ordered sort key and a canonical
// 24-hour pair used for display. Every read path sorts through this
// package so ordering cannot drift between surfaces.
package eventtime

import (
	"fmt"
	"sort"
	"strings"

	"github.com/adeola-m/calendar-tracker/internal/entity"
)

// Key classes. All-day entries lead the day, entries with no resolvable
// time trail it, timed entries order by 24h clock in between.
const (
	classAllDay  = 0
	classTimed   = 1
	classUntimed = 2
)

// Key is the canonical, comparable form of an event time.
type Key struct {
	Class  int
	Hour   int // 24-hour
	Minute int
}

// NewKey normalizes the four raw fields into a Key.
func NewKey(hour, minute *int, amPm *string, allDay bool) Key {
	if allDay {
		return Key{Class: classAllDay}
	}
	if hour == nil {
		return Key{Class: classUntimed}
	}
	h24, m := Canonical(*hour, minute, amPm)
	return Key{Class: classTimed, Hour: h24, Minute: m}
}

// Less orders Keys ascending: class, then hour, then minute.
func (k Key) Less(o Key) bool {
	if k.Class != o.Class {
		return k.Class < o.Class
	}
	if k.Hour != o.Hour {
		return k.Hour < o.Hour
	}
	return k.Minute < o.Minute
}

// Canonical converts an extracted hour/minute/am_pm triple to 24-hour
// form. An hour above 12 with no am/pm marker is taken as already being
// 24-hour. A missing minute is 0.
func Canonical(hour int, minute *int, amPm *string) (h24, m int) {
	h24 = hour
	ap := ""
	if amPm != nil {
		ap = strings.ToLower(strings.TrimSpace(*amPm))
	}
	switch {
	case ap == "pm" && hour != 12:
		h24 = hour + 12
	case ap == "am" && hour == 12:
		h24 = 0
	}
	if minute != nil {
		m = *minute
	}
	return h24, m
}

// FormatClock renders a 24-hour pair in 12-hour display form,
// e.g. (0,5) -> "12:05 AM", (13,0) -> "1:00 PM".
func FormatClock(h24, minute int) string {
	marker := "AM"
	h := h24
	switch {
	case h24 == 0:
		h = 12
	case h24 == 12:
		marker = "PM"
	case h24 > 12:
		h = h24 - 12
		marker = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, marker)
}

// Display renders the time portion of an event: "All Day" for all-day
// entries, the 12-hour clock for timed ones, and "" when no time could
// be resolved.
func Display(hour, minute *int, amPm *string, allDay bool) string {
	if allDay {
		return "All Day"
	}
	if hour == nil {
		return ""
	}
	h24, m := Canonical(*hour, minute, amPm)
	return FormatClock(h24, m)
}

// SortEvents orders events in place by canonical key. The sort is stable
// so entries with equal keys keep their original extraction order.
func SortEvents(events []*entity.CalendarEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		ki := NewKey(events[i].Hour, events[i].Minute, events[i].AmPm, events[i].AllDay)
		kj := NewKey(events[j].Hour, events[j].Minute, events[j].AmPm, events[j].AllDay)
		return ki.Less(kj)
	})
}

// SortChronological orders events in place by year, month, day, then
// canonical key, so results spanning multiple months come out in calendar
// order. Stable, like SortEvents.
func SortChronological(events []*entity.CalendarEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		ki := NewKey(a.Hour, a.Minute, a.AmPm, a.AllDay)
		kj := NewKey(b.Hour, b.Minute, b.AmPm, b.AllDay)
		return ki.Less(kj)
	})
}
