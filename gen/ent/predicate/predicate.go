// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CalendarEvent is the predicate function for calendarevent builders.
type CalendarEvent func(*sql.Selector)

// CalendarPage is the predicate function for calendarpage builders.
type CalendarPage func(*sql.Selector)
