// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adeola-m/calendar-tracker/gen/ent/calendarevent"
	"github.com/adeola-m/calendar-tracker/gen/ent/calendarpage"
	"github.com/adeola-m/calendar-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCalendarEvent = "CalendarEvent"
	TypeCalendarPage  = "CalendarPage"
)

// CalendarEventMutation represents an operation that mutates the CalendarEvent nodes in the graph.
type CalendarEventMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	day           *int
	addday        *int
	hour          *int
	addhour       *int
	minute        *int
	addminute     *int
	am_pm         *string
	all_day       *bool
	title         *string
	original_text *string
	color         *string
	featured      *bool
	position      *int
	addposition   *int
	clearedFields map[string]struct{}
	page          *uuid.UUID
	clearedpage   bool
	done          bool
	oldValue      func(context.Context) (*CalendarEvent, error)
	predicates    []predicate.CalendarEvent
}

var _ ent.Mutation = (*CalendarEventMutation)(nil)

// calendareventOption allows management of the mutation configuration using functional options.
type calendareventOption func(*CalendarEventMutation)

// newCalendarEventMutation creates new mutation for the CalendarEvent entity.
func newCalendarEventMutation(c config, op Op, opts ...calendareventOption) *CalendarEventMutation {
	m := &CalendarEventMutation{
		config:        c,
		op:            op,
		typ:           TypeCalendarEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCalendarEventID sets the ID field of the mutation.
func withCalendarEventID(id uuid.UUID) calendareventOption {
	return func(m *CalendarEventMutation) {
		var (
			err   error
			once  sync.Once
			value *CalendarEvent
		)
		m.oldValue = func(ctx context.Context) (*CalendarEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CalendarEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCalendarEvent sets the old CalendarEvent of the mutation.
func withCalendarEvent(node *CalendarEvent) calendareventOption {
	return func(m *CalendarEventMutation) {
		m.oldValue = func(context.Context) (*CalendarEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CalendarEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CalendarEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CalendarEvent entities.
func (m *CalendarEventMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CalendarEventMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CalendarEventMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CalendarEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPageID sets the "page_id" field.
func (m *CalendarEventMutation) SetPageID(u uuid.UUID) {
	m.page = &u
}

// PageID returns the value of the "page_id" field in the mutation.
func (m *CalendarEventMutation) PageID() (r uuid.UUID, exists bool) {
	v := m.page
	if v == nil {
		return
	}
	return *v, true
}

// OldPageID returns the old "page_id" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldPageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageID: %w", err)
	}
	return oldValue.PageID, nil
}

// ResetPageID resets all changes to the "page_id" field.
func (m *CalendarEventMutation) ResetPageID() {
	m.page = nil
}

// SetDay sets the "day" field.
func (m *CalendarEventMutation) SetDay(i int) {
	m.day = &i
	m.addday = nil
}

// Day returns the value of the "day" field in the mutation.
func (m *CalendarEventMutation) Day() (r int, exists bool) {
	v := m.day
	if v == nil {
		return
	}
	return *v, true
}

// OldDay returns the old "day" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldDay(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDay: %w", err)
	}
	return oldValue.Day, nil
}

// AddDay adds i to the "day" field.
func (m *CalendarEventMutation) AddDay(i int) {
	if m.addday != nil {
		*m.addday += i
	} else {
		m.addday = &i
	}
}

// AddedDay returns the value that was added to the "day" field in this mutation.
func (m *CalendarEventMutation) AddedDay() (r int, exists bool) {
	v := m.addday
	if v == nil {
		return
	}
	return *v, true
}

// ResetDay resets all changes to the "day" field.
func (m *CalendarEventMutation) ResetDay() {
	m.day = nil
	m.addday = nil
}

// SetHour sets the "hour" field.
func (m *CalendarEventMutation) SetHour(i int) {
	m.hour = &i
	m.addhour = nil
}

// Hour returns the value of the "hour" field in the mutation.
func (m *CalendarEventMutation) Hour() (r int, exists bool) {
	v := m.hour
	if v == nil {
		return
	}
	return *v, true
}

// OldHour returns the old "hour" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldHour(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHour is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHour requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHour: %w", err)
	}
	return oldValue.Hour, nil
}

// AddHour adds i to the "hour" field.
func (m *CalendarEventMutation) AddHour(i int) {
	if m.addhour != nil {
		*m.addhour += i
	} else {
		m.addhour = &i
	}
}

// AddedHour returns the value that was added to the "hour" field in this mutation.
func (m *CalendarEventMutation) AddedHour() (r int, exists bool) {
	v := m.addhour
	if v == nil {
		return
	}
	return *v, true
}

// ClearHour clears the value of the "hour" field.
func (m *CalendarEventMutation) ClearHour() {
	m.hour = nil
	m.addhour = nil
	m.clearedFields[calendarevent.FieldHour] = struct{}{}
}

// HourCleared returns if the "hour" field was cleared in this mutation.
func (m *CalendarEventMutation) HourCleared() bool {
	_, ok := m.clearedFields[calendarevent.FieldHour]
	return ok
}

// ResetHour resets all changes to the "hour" field.
func (m *CalendarEventMutation) ResetHour() {
	m.hour = nil
	m.addhour = nil
	delete(m.clearedFields, calendarevent.FieldHour)
}

// SetMinute sets the "minute" field.
func (m *CalendarEventMutation) SetMinute(i int) {
	m.minute = &i
	m.addminute = nil
}

// Minute returns the value of the "minute" field in the mutation.
func (m *CalendarEventMutation) Minute() (r int, exists bool) {
	v := m.minute
	if v == nil {
		return
	}
	return *v, true
}

// OldMinute returns the old "minute" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldMinute(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinute is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinute requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinute: %w", err)
	}
	return oldValue.Minute, nil
}

// AddMinute adds i to the "minute" field.
func (m *CalendarEventMutation) AddMinute(i int) {
	if m.addminute != nil {
		*m.addminute += i
	} else {
		m.addminute = &i
	}
}

// AddedMinute returns the value that was added to the "minute" field in this mutation.
func (m *CalendarEventMutation) AddedMinute() (r int, exists bool) {
	v := m.addminute
	if v == nil {
		return
	}
	return *v, true
}

// ClearMinute clears the value of the "minute" field.
func (m *CalendarEventMutation) ClearMinute() {
	m.minute = nil
	m.addminute = nil
	m.clearedFields[calendarevent.FieldMinute] = struct{}{}
}

// MinuteCleared returns if the "minute" field was cleared in this mutation.
func (m *CalendarEventMutation) MinuteCleared() bool {
	_, ok := m.clearedFields[calendarevent.FieldMinute]
	return ok
}

// ResetMinute resets all changes to the "minute" field.
func (m *CalendarEventMutation) ResetMinute() {
	m.minute = nil
	m.addminute = nil
	delete(m.clearedFields, calendarevent.FieldMinute)
}

// SetAmPm sets the "am_pm" field.
func (m *CalendarEventMutation) SetAmPm(s string) {
	m.am_pm = &s
}

// AmPm returns the value of the "am_pm" field in the mutation.
func (m *CalendarEventMutation) AmPm() (r string, exists bool) {
	v := m.am_pm
	if v == nil {
		return
	}
	return *v, true
}

// OldAmPm returns the old "am_pm" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldAmPm(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmPm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmPm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmPm: %w", err)
	}
	return oldValue.AmPm, nil
}

// ClearAmPm clears the value of the "am_pm" field.
func (m *CalendarEventMutation) ClearAmPm() {
	m.am_pm = nil
	m.clearedFields[calendarevent.FieldAmPm] = struct{}{}
}

// AmPmCleared returns if the "am_pm" field was cleared in this mutation.
func (m *CalendarEventMutation) AmPmCleared() bool {
	_, ok := m.clearedFields[calendarevent.FieldAmPm]
	return ok
}

// ResetAmPm resets all changes to the "am_pm" field.
func (m *CalendarEventMutation) ResetAmPm() {
	m.am_pm = nil
	delete(m.clearedFields, calendarevent.FieldAmPm)
}

// SetAllDay sets the "all_day" field.
func (m *CalendarEventMutation) SetAllDay(b bool) {
	m.all_day = &b
}

// AllDay returns the value of the "all_day" field in the mutation.
func (m *CalendarEventMutation) AllDay() (r bool, exists bool) {
	v := m.all_day
	if v == nil {
		return
	}
	return *v, true
}

// OldAllDay returns the old "all_day" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldAllDay(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllDay: %w", err)
	}
	return oldValue.AllDay, nil
}

// ResetAllDay resets all changes to the "all_day" field.
func (m *CalendarEventMutation) ResetAllDay() {
	m.all_day = nil
}

// SetTitle sets the "title" field.
func (m *CalendarEventMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CalendarEventMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CalendarEventMutation) ResetTitle() {
	m.title = nil
}

// SetOriginalText sets the "original_text" field.
func (m *CalendarEventMutation) SetOriginalText(s string) {
	m.original_text = &s
}

// OriginalText returns the value of the "original_text" field in the mutation.
func (m *CalendarEventMutation) OriginalText() (r string, exists bool) {
	v := m.original_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalText returns the old "original_text" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldOriginalText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalText: %w", err)
	}
	return oldValue.OriginalText, nil
}

// ResetOriginalText resets all changes to the "original_text" field.
func (m *CalendarEventMutation) ResetOriginalText() {
	m.original_text = nil
}

// SetColor sets the "color" field.
func (m *CalendarEventMutation) SetColor(s string) {
	m.color = &s
}

// Color returns the value of the "color" field in the mutation.
func (m *CalendarEventMutation) Color() (r string, exists bool) {
	v := m.color
	if v == nil {
		return
	}
	return *v, true
}

// OldColor returns the old "color" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldColor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColor: %w", err)
	}
	return oldValue.Color, nil
}

// ResetColor resets all changes to the "color" field.
func (m *CalendarEventMutation) ResetColor() {
	m.color = nil
}

// SetFeatured sets the "featured" field.
func (m *CalendarEventMutation) SetFeatured(b bool) {
	m.featured = &b
}

// Featured returns the value of the "featured" field in the mutation.
func (m *CalendarEventMutation) Featured() (r bool, exists bool) {
	v := m.featured
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatured returns the old "featured" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldFeatured(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatured is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatured requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatured: %w", err)
	}
	return oldValue.Featured, nil
}

// ResetFeatured resets all changes to the "featured" field.
func (m *CalendarEventMutation) ResetFeatured() {
	m.featured = nil
}

// SetPosition sets the "position" field.
func (m *CalendarEventMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *CalendarEventMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the CalendarEvent entity.
// If the CalendarEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarEventMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *CalendarEventMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *CalendarEventMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *CalendarEventMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// ClearPage clears the "page" edge to the CalendarPage entity.
func (m *CalendarEventMutation) ClearPage() {
	m.clearedpage = true
	m.clearedFields[calendarevent.FieldPageID] = struct{}{}
}

// PageCleared reports if the "page" edge to the CalendarPage entity was cleared.
func (m *CalendarEventMutation) PageCleared() bool {
	return m.clearedpage
}

// PageIDs returns the "page" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PageID instead. It exists only for internal usage by the builders.
func (m *CalendarEventMutation) PageIDs() (ids []uuid.UUID) {
	if id := m.page; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPage resets all changes to the "page" edge.
func (m *CalendarEventMutation) ResetPage() {
	m.page = nil
	m.clearedpage = false
}

// Where appends a list predicates to the CalendarEventMutation builder.
func (m *CalendarEventMutation) Where(ps ...predicate.CalendarEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CalendarEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CalendarEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CalendarEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CalendarEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CalendarEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CalendarEvent).
func (m *CalendarEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CalendarEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.page != nil {
		fields = append(fields, calendarevent.FieldPageID)
	}
	if m.day != nil {
		fields = append(fields, calendarevent.FieldDay)
	}
	if m.hour != nil {
		fields = append(fields, calendarevent.FieldHour)
	}
	if m.minute != nil {
		fields = append(fields, calendarevent.FieldMinute)
	}
	if m.am_pm != nil {
		fields = append(fields, calendarevent.FieldAmPm)
	}
	if m.all_day != nil {
		fields = append(fields, calendarevent.FieldAllDay)
	}
	if m.title != nil {
		fields = append(fields, calendarevent.FieldTitle)
	}
	if m.original_text != nil {
		fields = append(fields, calendarevent.FieldOriginalText)
	}
	if m.color != nil {
		fields = append(fields, calendarevent.FieldColor)
	}
	if m.featured != nil {
		fields = append(fields, calendarevent.FieldFeatured)
	}
	if m.position != nil {
		fields = append(fields, calendarevent.FieldPosition)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CalendarEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case calendarevent.FieldPageID:
		return m.PageID()
	case calendarevent.FieldDay:
		return m.Day()
	case calendarevent.FieldHour:
		return m.Hour()
	case calendarevent.FieldMinute:
		return m.Minute()
	case calendarevent.FieldAmPm:
		return m.AmPm()
	case calendarevent.FieldAllDay:
		return m.AllDay()
	case calendarevent.FieldTitle:
		return m.Title()
	case calendarevent.FieldOriginalText:
		return m.OriginalText()
	case calendarevent.FieldColor:
		return m.Color()
	case calendarevent.FieldFeatured:
		return m.Featured()
	case calendarevent.FieldPosition:
		return m.Position()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CalendarEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case calendarevent.FieldPageID:
		return m.OldPageID(ctx)
	case calendarevent.FieldDay:
		return m.OldDay(ctx)
	case calendarevent.FieldHour:
		return m.OldHour(ctx)
	case calendarevent.FieldMinute:
		return m.OldMinute(ctx)
	case calendarevent.FieldAmPm:
		return m.OldAmPm(ctx)
	case calendarevent.FieldAllDay:
		return m.OldAllDay(ctx)
	case calendarevent.FieldTitle:
		return m.OldTitle(ctx)
	case calendarevent.FieldOriginalText:
		return m.OldOriginalText(ctx)
	case calendarevent.FieldColor:
		return m.OldColor(ctx)
	case calendarevent.FieldFeatured:
		return m.OldFeatured(ctx)
	case calendarevent.FieldPosition:
		return m.OldPosition(ctx)
	}
	return nil, fmt.Errorf("unknown CalendarEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case calendarevent.FieldPageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageID(v)
		return nil
	case calendarevent.FieldDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDay(v)
		return nil
	case calendarevent.FieldHour:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHour(v)
		return nil
	case calendarevent.FieldMinute:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinute(v)
		return nil
	case calendarevent.FieldAmPm:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmPm(v)
		return nil
	case calendarevent.FieldAllDay:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllDay(v)
		return nil
	case calendarevent.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case calendarevent.FieldOriginalText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalText(v)
		return nil
	case calendarevent.FieldColor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColor(v)
		return nil
	case calendarevent.FieldFeatured:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatured(v)
		return nil
	case calendarevent.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	}
	return fmt.Errorf("unknown CalendarEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CalendarEventMutation) AddedFields() []string {
	var fields []string
	if m.addday != nil {
		fields = append(fields, calendarevent.FieldDay)
	}
	if m.addhour != nil {
		fields = append(fields, calendarevent.FieldHour)
	}
	if m.addminute != nil {
		fields = append(fields, calendarevent.FieldMinute)
	}
	if m.addposition != nil {
		fields = append(fields, calendarevent.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CalendarEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case calendarevent.FieldDay:
		return m.AddedDay()
	case calendarevent.FieldHour:
		return m.AddedHour()
	case calendarevent.FieldMinute:
		return m.AddedMinute()
	case calendarevent.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case calendarevent.FieldDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDay(v)
		return nil
	case calendarevent.FieldHour:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHour(v)
		return nil
	case calendarevent.FieldMinute:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinute(v)
		return nil
	case calendarevent.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown CalendarEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CalendarEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(calendarevent.FieldHour) {
		fields = append(fields, calendarevent.FieldHour)
	}
	if m.FieldCleared(calendarevent.FieldMinute) {
		fields = append(fields, calendarevent.FieldMinute)
	}
	if m.FieldCleared(calendarevent.FieldAmPm) {
		fields = append(fields, calendarevent.FieldAmPm)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CalendarEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CalendarEventMutation) ClearField(name string) error {
	switch name {
	case calendarevent.FieldHour:
		m.ClearHour()
		return nil
	case calendarevent.FieldMinute:
		m.ClearMinute()
		return nil
	case calendarevent.FieldAmPm:
		m.ClearAmPm()
		return nil
	}
	return fmt.Errorf("unknown CalendarEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CalendarEventMutation) ResetField(name string) error {
	switch name {
	case calendarevent.FieldPageID:
		m.ResetPageID()
		return nil
	case calendarevent.FieldDay:
		m.ResetDay()
		return nil
	case calendarevent.FieldHour:
		m.ResetHour()
		return nil
	case calendarevent.FieldMinute:
		m.ResetMinute()
		return nil
	case calendarevent.FieldAmPm:
		m.ResetAmPm()
		return nil
	case calendarevent.FieldAllDay:
		m.ResetAllDay()
		return nil
	case calendarevent.FieldTitle:
		m.ResetTitle()
		return nil
	case calendarevent.FieldOriginalText:
		m.ResetOriginalText()
		return nil
	case calendarevent.FieldColor:
		m.ResetColor()
		return nil
	case calendarevent.FieldFeatured:
		m.ResetFeatured()
		return nil
	case calendarevent.FieldPosition:
		m.ResetPosition()
		return nil
	}
	return fmt.Errorf("unknown CalendarEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CalendarEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.page != nil {
		edges = append(edges, calendarevent.EdgePage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CalendarEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case calendarevent.EdgePage:
		if id := m.page; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CalendarEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CalendarEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CalendarEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpage {
		edges = append(edges, calendarevent.EdgePage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CalendarEventMutation) EdgeCleared(name string) bool {
	switch name {
	case calendarevent.EdgePage:
		return m.clearedpage
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CalendarEventMutation) ClearEdge(name string) error {
	switch name {
	case calendarevent.EdgePage:
		m.ClearPage()
		return nil
	}
	return fmt.Errorf("unknown CalendarEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CalendarEventMutation) ResetEdge(name string) error {
	switch name {
	case calendarevent.EdgePage:
		m.ResetPage()
		return nil
	}
	return fmt.Errorf("unknown CalendarEvent edge %s", name)
}

// CalendarPageMutation represents an operation that mutates the CalendarPage nodes in the graph.
type CalendarPageMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	image_path       *string
	status           *string
	month            *int
	addmonth         *int
	year             *int
	addyear          *int
	notes            *[]string
	appendnotes      []string
	raw_result       *json.RawMessage
	appendraw_result json.RawMessage
	created_at       *time.Time
	clearedFields    map[string]struct{}
	events           map[uuid.UUID]struct{}
	removedevents    map[uuid.UUID]struct{}
	clearedevents    bool
	done             bool
	oldValue         func(context.Context) (*CalendarPage, error)
	predicates       []predicate.CalendarPage
}

var _ ent.Mutation = (*CalendarPageMutation)(nil)

// calendarpageOption allows management of the mutation configuration using functional options.
type calendarpageOption func(*CalendarPageMutation)

// newCalendarPageMutation creates new mutation for the CalendarPage entity.
func newCalendarPageMutation(c config, op Op, opts ...calendarpageOption) *CalendarPageMutation {
	m := &CalendarPageMutation{
		config:        c,
		op:            op,
		typ:           TypeCalendarPage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCalendarPageID sets the ID field of the mutation.
func withCalendarPageID(id uuid.UUID) calendarpageOption {
	return func(m *CalendarPageMutation) {
		var (
			err   error
			once  sync.Once
			value *CalendarPage
		)
		m.oldValue = func(ctx context.Context) (*CalendarPage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CalendarPage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCalendarPage sets the old CalendarPage of the mutation.
func withCalendarPage(node *CalendarPage) calendarpageOption {
	return func(m *CalendarPageMutation) {
		m.oldValue = func(context.Context) (*CalendarPage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CalendarPageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CalendarPageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CalendarPage entities.
func (m *CalendarPageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CalendarPageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CalendarPageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CalendarPage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetImagePath sets the "image_path" field.
func (m *CalendarPageMutation) SetImagePath(s string) {
	m.image_path = &s
}

// ImagePath returns the value of the "image_path" field in the mutation.
func (m *CalendarPageMutation) ImagePath() (r string, exists bool) {
	v := m.image_path
	if v == nil {
		return
	}
	return *v, true
}

// OldImagePath returns the old "image_path" field's value of the CalendarPage entity.
// If the CalendarPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarPageMutation) OldImagePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImagePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImagePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImagePath: %w", err)
	}
	return oldValue.ImagePath, nil
}

// ResetImagePath resets all changes to the "image_path" field.
func (m *CalendarPageMutation) ResetImagePath() {
	m.image_path = nil
}

// SetStatus sets the "status" field.
func (m *CalendarPageMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *CalendarPageMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CalendarPage entity.
// If the CalendarPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarPageMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CalendarPageMutation) ResetStatus() {
	m.status = nil
}

// SetMonth sets the "month" field.
func (m *CalendarPageMutation) SetMonth(i int) {
	m.month = &i
	m.addmonth = nil
}

// Month returns the value of the "month" field in the mutation.
func (m *CalendarPageMutation) Month() (r int, exists bool) {
	v := m.month
	if v == nil {
		return
	}
	return *v, true
}

// OldMonth returns the old "month" field's value of the CalendarPage entity.
// If the CalendarPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarPageMutation) OldMonth(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonth: %w", err)
	}
	return oldValue.Month, nil
}

// AddMonth adds i to the "month" field.
func (m *CalendarPageMutation) AddMonth(i int) {
	if m.addmonth != nil {
		*m.addmonth += i
	} else {
		m.addmonth = &i
	}
}

// AddedMonth returns the value that was added to the "month" field in this mutation.
func (m *CalendarPageMutation) AddedMonth() (r int, exists bool) {
	v := m.addmonth
	if v == nil {
		return
	}
	return *v, true
}

// ClearMonth clears the value of the "month" field.
func (m *CalendarPageMutation) ClearMonth() {
	m.month = nil
	m.addmonth = nil
	m.clearedFields[calendarpage.FieldMonth] = struct{}{}
}

// MonthCleared returns if the "month" field was cleared in this mutation.
func (m *CalendarPageMutation) MonthCleared() bool {
	_, ok := m.clearedFields[calendarpage.FieldMonth]
	return ok
}

// ResetMonth resets all changes to the "month" field.
func (m *CalendarPageMutation) ResetMonth() {
	m.month = nil
	m.addmonth = nil
	delete(m.clearedFields, calendarpage.FieldMonth)
}

// SetYear sets the "year" field.
func (m *CalendarPageMutation) SetYear(i int) {
	m.year = &i
	m.addyear = nil
}

// Year returns the value of the "year" field in the mutation.
func (m *CalendarPageMutation) Year() (r int, exists bool) {
	v := m.year
	if v == nil {
		return
	}
	return *v, true
}

// OldYear returns the old "year" field's value of the CalendarPage entity.
// If the CalendarPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarPageMutation) OldYear(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYear: %w", err)
	}
	return oldValue.Year, nil
}

// AddYear adds i to the "year" field.
func (m *CalendarPageMutation) AddYear(i int) {
	if m.addyear != nil {
		*m.addyear += i
	} else {
		m.addyear = &i
	}
}

// AddedYear returns the value that was added to the "year" field in this mutation.
func (m *CalendarPageMutation) AddedYear() (r int, exists bool) {
	v := m.addyear
	if v == nil {
		return
	}
	return *v, true
}

// ClearYear clears the value of the "year" field.
func (m *CalendarPageMutation) ClearYear() {
	m.year = nil
	m.addyear = nil
	m.clearedFields[calendarpage.FieldYear] = struct{}{}
}

// YearCleared returns if the "year" field was cleared in this mutation.
func (m *CalendarPageMutation) YearCleared() bool {
	_, ok := m.clearedFields[calendarpage.FieldYear]
	return ok
}

// ResetYear resets all changes to the "year" field.
func (m *CalendarPageMutation) ResetYear() {
	m.year = nil
	m.addyear = nil
	delete(m.clearedFields, calendarpage.FieldYear)
}

// SetNotes sets the "notes" field.
func (m *CalendarPageMutation) SetNotes(s []string) {
	m.notes = &s
	m.appendnotes = nil
}

// Notes returns the value of the "notes" field in the mutation.
func (m *CalendarPageMutation) Notes() (r []string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the CalendarPage entity.
// If the CalendarPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarPageMutation) OldNotes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// AppendNotes adds s to the "notes" field.
func (m *CalendarPageMutation) AppendNotes(s []string) {
	m.appendnotes = append(m.appendnotes, s...)
}

// AppendedNotes returns the list of values that were appended to the "notes" field in this mutation.
func (m *CalendarPageMutation) AppendedNotes() ([]string, bool) {
	if len(m.appendnotes) == 0 {
		return nil, false
	}
	return m.appendnotes, true
}

// ClearNotes clears the value of the "notes" field.
func (m *CalendarPageMutation) ClearNotes() {
	m.notes = nil
	m.appendnotes = nil
	m.clearedFields[calendarpage.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *CalendarPageMutation) NotesCleared() bool {
	_, ok := m.clearedFields[calendarpage.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *CalendarPageMutation) ResetNotes() {
	m.notes = nil
	m.appendnotes = nil
	delete(m.clearedFields, calendarpage.FieldNotes)
}

// SetRawResult sets the "raw_result" field.
func (m *CalendarPageMutation) SetRawResult(jm json.RawMessage) {
	m.raw_result = &jm
	m.appendraw_result = nil
}

// RawResult returns the value of the "raw_result" field in the mutation.
func (m *CalendarPageMutation) RawResult() (r json.RawMessage, exists bool) {
	v := m.raw_result
	if v == nil {
		return
	}
	return *v, true
}

// OldRawResult returns the old "raw_result" field's value of the CalendarPage entity.
// If the CalendarPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarPageMutation) OldRawResult(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawResult: %w", err)
	}
	return oldValue.RawResult, nil
}

// AppendRawResult adds jm to the "raw_result" field.
func (m *CalendarPageMutation) AppendRawResult(jm json.RawMessage) {
	m.appendraw_result = append(m.appendraw_result, jm...)
}

// AppendedRawResult returns the list of values that were appended to the "raw_result" field in this mutation.
func (m *CalendarPageMutation) AppendedRawResult() (json.RawMessage, bool) {
	if len(m.appendraw_result) == 0 {
		return nil, false
	}
	return m.appendraw_result, true
}

// ClearRawResult clears the value of the "raw_result" field.
func (m *CalendarPageMutation) ClearRawResult() {
	m.raw_result = nil
	m.appendraw_result = nil
	m.clearedFields[calendarpage.FieldRawResult] = struct{}{}
}

// RawResultCleared returns if the "raw_result" field was cleared in this mutation.
func (m *CalendarPageMutation) RawResultCleared() bool {
	_, ok := m.clearedFields[calendarpage.FieldRawResult]
	return ok
}

// ResetRawResult resets all changes to the "raw_result" field.
func (m *CalendarPageMutation) ResetRawResult() {
	m.raw_result = nil
	m.appendraw_result = nil
	delete(m.clearedFields, calendarpage.FieldRawResult)
}

// SetCreatedAt sets the "created_at" field.
func (m *CalendarPageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CalendarPageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CalendarPage entity.
// If the CalendarPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalendarPageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CalendarPageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddEventIDs adds the "events" edge to the CalendarEvent entity by ids.
func (m *CalendarPageMutation) AddEventIDs(ids ...uuid.UUID) {
	if m.events == nil {
		m.events = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the CalendarEvent entity.
func (m *CalendarPageMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the CalendarEvent entity was cleared.
func (m *CalendarPageMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the CalendarEvent entity by IDs.
func (m *CalendarPageMutation) RemoveEventIDs(ids ...uuid.UUID) {
	if m.removedevents == nil {
		m.removedevents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the CalendarEvent entity.
func (m *CalendarPageMutation) RemovedEventsIDs() (ids []uuid.UUID) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *CalendarPageMutation) EventsIDs() (ids []uuid.UUID) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *CalendarPageMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the CalendarPageMutation builder.
func (m *CalendarPageMutation) Where(ps ...predicate.CalendarPage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CalendarPageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CalendarPageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CalendarPage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CalendarPageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CalendarPageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CalendarPage).
func (m *CalendarPageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CalendarPageMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.image_path != nil {
		fields = append(fields, calendarpage.FieldImagePath)
	}
	if m.status != nil {
		fields = append(fields, calendarpage.FieldStatus)
	}
	if m.month != nil {
		fields = append(fields, calendarpage.FieldMonth)
	}
	if m.year != nil {
		fields = append(fields, calendarpage.FieldYear)
	}
	if m.notes != nil {
		fields = append(fields, calendarpage.FieldNotes)
	}
	if m.raw_result != nil {
		fields = append(fields, calendarpage.FieldRawResult)
	}
	if m.created_at != nil {
		fields = append(fields, calendarpage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CalendarPageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case calendarpage.FieldImagePath:
		return m.ImagePath()
	case calendarpage.FieldStatus:
		return m.Status()
	case calendarpage.FieldMonth:
		return m.Month()
	case calendarpage.FieldYear:
		return m.Year()
	case calendarpage.FieldNotes:
		return m.Notes()
	case calendarpage.FieldRawResult:
		return m.RawResult()
	case calendarpage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CalendarPageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case calendarpage.FieldImagePath:
		return m.OldImagePath(ctx)
	case calendarpage.FieldStatus:
		return m.OldStatus(ctx)
	case calendarpage.FieldMonth:
		return m.OldMonth(ctx)
	case calendarpage.FieldYear:
		return m.OldYear(ctx)
	case calendarpage.FieldNotes:
		return m.OldNotes(ctx)
	case calendarpage.FieldRawResult:
		return m.OldRawResult(ctx)
	case calendarpage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CalendarPage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarPageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case calendarpage.FieldImagePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImagePath(v)
		return nil
	case calendarpage.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case calendarpage.FieldMonth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonth(v)
		return nil
	case calendarpage.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYear(v)
		return nil
	case calendarpage.FieldNotes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case calendarpage.FieldRawResult:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawResult(v)
		return nil
	case calendarpage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CalendarPage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CalendarPageMutation) AddedFields() []string {
	var fields []string
	if m.addmonth != nil {
		fields = append(fields, calendarpage.FieldMonth)
	}
	if m.addyear != nil {
		fields = append(fields, calendarpage.FieldYear)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CalendarPageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case calendarpage.FieldMonth:
		return m.AddedMonth()
	case calendarpage.FieldYear:
		return m.AddedYear()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalendarPageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case calendarpage.FieldMonth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMonth(v)
		return nil
	case calendarpage.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYear(v)
		return nil
	}
	return fmt.Errorf("unknown CalendarPage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CalendarPageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(calendarpage.FieldMonth) {
		fields = append(fields, calendarpage.FieldMonth)
	}
	if m.FieldCleared(calendarpage.FieldYear) {
		fields = append(fields, calendarpage.FieldYear)
	}
	if m.FieldCleared(calendarpage.FieldNotes) {
		fields = append(fields, calendarpage.FieldNotes)
	}
	if m.FieldCleared(calendarpage.FieldRawResult) {
		fields = append(fields, calendarpage.FieldRawResult)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CalendarPageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CalendarPageMutation) ClearField(name string) error {
	switch name {
	case calendarpage.FieldMonth:
		m.ClearMonth()
		return nil
	case calendarpage.FieldYear:
		m.ClearYear()
		return nil
	case calendarpage.FieldNotes:
		m.ClearNotes()
		return nil
	case calendarpage.FieldRawResult:
		m.ClearRawResult()
		return nil
	}
	return fmt.Errorf("unknown CalendarPage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CalendarPageMutation) ResetField(name string) error {
	switch name {
	case calendarpage.FieldImagePath:
		m.ResetImagePath()
		return nil
	case calendarpage.FieldStatus:
		m.ResetStatus()
		return nil
	case calendarpage.FieldMonth:
		m.ResetMonth()
		return nil
	case calendarpage.FieldYear:
		m.ResetYear()
		return nil
	case calendarpage.FieldNotes:
		m.ResetNotes()
		return nil
	case calendarpage.FieldRawResult:
		m.ResetRawResult()
		return nil
	case calendarpage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CalendarPage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CalendarPageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.events != nil {
		edges = append(edges, calendarpage.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CalendarPageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case calendarpage.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CalendarPageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedevents != nil {
		edges = append(edges, calendarpage.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CalendarPageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case calendarpage.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CalendarPageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevents {
		edges = append(edges, calendarpage.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CalendarPageMutation) EdgeCleared(name string) bool {
	switch name {
	case calendarpage.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CalendarPageMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown CalendarPage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CalendarPageMutation) ResetEdge(name string) error {
	switch name {
	case calendarpage.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown CalendarPage edge %s", name)
}
