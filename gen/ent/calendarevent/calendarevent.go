// Code generated by ent, DO NOT EDIT.

package calendarevent

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the calendarevent type in the database.
	Label = "calendar_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPageID holds the string denoting the page_id field in the database.
	FieldPageID = "page_id"
	// FieldDay holds the string denoting the day field in the database.
	FieldDay = "day"
	// FieldHour holds the string denoting the hour field in the database.
	FieldHour = "hour"
	// FieldMinute holds the string denoting the minute field in the database.
	FieldMinute = "minute"
	// FieldAmPm holds the string denoting the am_pm field in the database.
	FieldAmPm = "am_pm"
	// FieldAllDay holds the string denoting the all_day field in the database.
	FieldAllDay = "all_day"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldOriginalText holds the string denoting the original_text field in the database.
	FieldOriginalText = "original_text"
	// FieldColor holds the string denoting the color field in the database.
	FieldColor = "color"
	// FieldFeatured holds the string denoting the featured field in the database.
	FieldFeatured = "featured"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// EdgePage holds the string denoting the page edge name in mutations.
	EdgePage = "page"
	// Table holds the table name of the calendarevent in the database.
	Table = "calendar_events"
	// PageTable is the table that holds the page relation/edge.
	PageTable = "calendar_events"
	// PageInverseTable is the table name for the CalendarPage entity.
	// It exists in this package in order to avoid circular dependency with the "calendarpage" package.
	PageInverseTable = "calendar_pages"
	// PageColumn is the table column denoting the page relation/edge.
	PageColumn = "page_id"
)

// Columns holds all SQL columns for calendarevent fields.
var Columns = []string{
	FieldID,
	FieldPageID,
	FieldDay,
	FieldHour,
	FieldMinute,
	FieldAmPm,
	FieldAllDay,
	FieldTitle,
	FieldOriginalText,
	FieldColor,
	FieldFeatured,
	FieldPosition,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DayValidator is a validator for the "day" field. It is called by the builders before save.
	DayValidator func(int) error
	// AmPmValidator is a validator for the "am_pm" field. It is called by the builders before save.
	AmPmValidator func(string) error
	// DefaultAllDay holds the default value on creation for the "all_day" field.
	DefaultAllDay bool
	// DefaultColor holds the default value on creation for the "color" field.
	DefaultColor string
	// ColorValidator is a validator for the "color" field. It is called by the builders before save.
	ColorValidator func(string) error
	// DefaultFeatured holds the default value on creation for the "featured" field.
	DefaultFeatured bool
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the CalendarEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPageID orders the results by the page_id field.
func ByPageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageID, opts...).ToFunc()
}

// ByDay orders the results by the day field.
func ByDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDay, opts...).ToFunc()
}

// ByHour orders the results by the hour field.
func ByHour(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHour, opts...).ToFunc()
}

// ByMinute orders the results by the minute field.
func ByMinute(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinute, opts...).ToFunc()
}

// ByAmPm orders the results by the am_pm field.
func ByAmPm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmPm, opts...).ToFunc()
}

// ByAllDay orders the results by the all_day field.
func ByAllDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAllDay, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByOriginalText orders the results by the original_text field.
func ByOriginalText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalText, opts...).ToFunc()
}

// ByColor orders the results by the color field.
func ByColor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColor, opts...).ToFunc()
}

// ByFeatured orders the results by the featured field.
func ByFeatured(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeatured, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByPageField orders the results by page field.
func ByPageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPageStep(), sql.OrderByField(field, opts...))
	}
}
func newPageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PageTable, PageColumn),
	)
}
