// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adeola-m/calendar-tracker/gen/ent/calendarpage"
	"github.com/google/uuid"
)

// CalendarPage is the model entity for the CalendarPage schema.
type CalendarPage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ImagePath holds the value of the "image_path" field.
	ImagePath string `json:"image_path,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Month holds the value of the "month" field.
	Month *int `json:"month,omitempty"`
	// Year holds the value of the "year" field.
	Year *int `json:"year,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes []string `json:"notes,omitempty"`
	// RawResult holds the value of the "raw_result" field.
	RawResult json.RawMessage `json:"raw_result,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CalendarPageQuery when eager-loading is set.
	Edges        CalendarPageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CalendarPageEdges holds the relations/edges for other nodes in the graph.
type CalendarPageEdges struct {
	// Events holds the value of the events edge.
	Events []*CalendarEvent `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e CalendarPageEdges) EventsOrErr() ([]*CalendarEvent, error) {
	if e.loadedTypes[0] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CalendarPage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case calendarpage.FieldNotes, calendarpage.FieldRawResult:
			values[i] = new([]byte)
		case calendarpage.FieldMonth, calendarpage.FieldYear:
			values[i] = new(sql.NullInt64)
		case calendarpage.FieldImagePath, calendarpage.FieldStatus:
			values[i] = new(sql.NullString)
		case calendarpage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case calendarpage.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CalendarPage fields.
func (_m *CalendarPage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case calendarpage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case calendarpage.FieldImagePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_path", values[i])
			} else if value.Valid {
				_m.ImagePath = value.String
			}
		case calendarpage.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case calendarpage.FieldMonth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field month", values[i])
			} else if value.Valid {
				_m.Month = new(int)
				*_m.Month = int(value.Int64)
			}
		case calendarpage.FieldYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year", values[i])
			} else if value.Valid {
				_m.Year = new(int)
				*_m.Year = int(value.Int64)
			}
		case calendarpage.FieldNotes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Notes); err != nil {
					return fmt.Errorf("unmarshal field notes: %w", err)
				}
			}
		case calendarpage.FieldRawResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawResult); err != nil {
					return fmt.Errorf("unmarshal field raw_result: %w", err)
				}
			}
		case calendarpage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CalendarPage.
// This includes values selected through modifiers, order, etc.
func (_m *CalendarPage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvents queries the "events" edge of the CalendarPage entity.
func (_m *CalendarPage) QueryEvents() *CalendarEventQuery {
	return NewCalendarPageClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this CalendarPage.
// Note that you need to call CalendarPage.Unwrap() before calling this method if this CalendarPage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CalendarPage) Update() *CalendarPageUpdateOne {
	return NewCalendarPageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CalendarPage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CalendarPage) Unwrap() *CalendarPage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CalendarPage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CalendarPage) String() string {
	var builder strings.Builder
	builder.WriteString("CalendarPage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("image_path=")
	builder.WriteString(_m.ImagePath)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.Month; v != nil {
		builder.WriteString("month=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Year; v != nil {
		builder.WriteString("year=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Notes))
	builder.WriteString(", ")
	builder.WriteString("raw_result=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawResult))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CalendarPages is a parsable slice of CalendarPage.
type CalendarPages []*CalendarPage
