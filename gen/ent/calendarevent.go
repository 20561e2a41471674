// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adeola-m/calendar-tracker/gen/ent/calendarevent"
	"github.com/adeola-m/calendar-tracker/gen/ent/calendarpage"
	"github.com/google/uuid"
)

// CalendarEvent is the model entity for the CalendarEvent schema.
type CalendarEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PageID holds the value of the "page_id" field.
	PageID uuid.UUID `json:"page_id,omitempty"`
	// Day holds the value of the "day" field.
	Day int `json:"day,omitempty"`
	// Hour holds the value of the "hour" field.
	Hour *int `json:"hour,omitempty"`
	// Minute holds the value of the "minute" field.
	Minute *int `json:"minute,omitempty"`
	// AmPm holds the value of the "am_pm" field.
	AmPm *string `json:"am_pm,omitempty"`
	// AllDay holds the value of the "all_day" field.
	AllDay bool `json:"all_day,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// OriginalText holds the value of the "original_text" field.
	OriginalText string `json:"original_text,omitempty"`
	// Color holds the value of the "color" field.
	Color string `json:"color,omitempty"`
	// Featured holds the value of the "featured" field.
	Featured bool `json:"featured,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CalendarEventQuery when eager-loading is set.
	Edges        CalendarEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CalendarEventEdges holds the relations/edges for other nodes in the graph.
type CalendarEventEdges struct {
	// Page holds the value of the page edge.
	Page *CalendarPage `json:"page,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PageOrErr returns the Page value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CalendarEventEdges) PageOrErr() (*CalendarPage, error) {
	if e.Page != nil {
		return e.Page, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: calendarpage.Label}
	}
	return nil, &NotLoadedError{edge: "page"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CalendarEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case calendarevent.FieldAllDay, calendarevent.FieldFeatured:
			values[i] = new(sql.NullBool)
		case calendarevent.FieldDay, calendarevent.FieldHour, calendarevent.FieldMinute, calendarevent.FieldPosition:
			values[i] = new(sql.NullInt64)
		case calendarevent.FieldAmPm, calendarevent.FieldTitle, calendarevent.FieldOriginalText, calendarevent.FieldColor:
			values[i] = new(sql.NullString)
		case calendarevent.FieldID, calendarevent.FieldPageID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CalendarEvent fields.
func (_m *CalendarEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case calendarevent.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case calendarevent.FieldPageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field page_id", values[i])
			} else if value != nil {
				_m.PageID = *value
			}
		case calendarevent.FieldDay:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day", values[i])
			} else if value.Valid {
				_m.Day = int(value.Int64)
			}
		case calendarevent.FieldHour:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hour", values[i])
			} else if value.Valid {
				_m.Hour = new(int)
				*_m.Hour = int(value.Int64)
			}
		case calendarevent.FieldMinute:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field minute", values[i])
			} else if value.Valid {
				_m.Minute = new(int)
				*_m.Minute = int(value.Int64)
			}
		case calendarevent.FieldAmPm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field am_pm", values[i])
			} else if value.Valid {
				_m.AmPm = new(string)
				*_m.AmPm = value.String
			}
		case calendarevent.FieldAllDay:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field all_day", values[i])
			} else if value.Valid {
				_m.AllDay = value.Bool
			}
		case calendarevent.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case calendarevent.FieldOriginalText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_text", values[i])
			} else if value.Valid {
				_m.OriginalText = value.String
			}
		case calendarevent.FieldColor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field color", values[i])
			} else if value.Valid {
				_m.Color = value.String
			}
		case calendarevent.FieldFeatured:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field featured", values[i])
			} else if value.Valid {
				_m.Featured = value.Bool
			}
		case calendarevent.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CalendarEvent.
// This includes values selected through modifiers, order, etc.
func (_m *CalendarEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPage queries the "page" edge of the CalendarEvent entity.
func (_m *CalendarEvent) QueryPage() *CalendarPageQuery {
	return NewCalendarEventClient(_m.config).QueryPage(_m)
}

// Update returns a builder for updating this CalendarEvent.
// Note that you need to call CalendarEvent.Unwrap() before calling this method if this CalendarEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CalendarEvent) Update() *CalendarEventUpdateOne {
	return NewCalendarEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CalendarEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CalendarEvent) Unwrap() *CalendarEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CalendarEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CalendarEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CalendarEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("page_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageID))
	builder.WriteString(", ")
	builder.WriteString("day=")
	builder.WriteString(fmt.Sprintf("%v", _m.Day))
	builder.WriteString(", ")
	if v := _m.Hour; v != nil {
		builder.WriteString("hour=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Minute; v != nil {
		builder.WriteString("minute=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AmPm; v != nil {
		builder.WriteString("am_pm=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("all_day=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllDay))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("original_text=")
	builder.WriteString(_m.OriginalText)
	builder.WriteString(", ")
	builder.WriteString("color=")
	builder.WriteString(_m.Color)
	builder.WriteString(", ")
	builder.WriteString("featured=")
	builder.WriteString(fmt.Sprintf("%v", _m.Featured))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteByte(')')
	return builder.String()
}

// CalendarEvents is a parsable slice of CalendarEvent.
type CalendarEvents []*CalendarEvent
