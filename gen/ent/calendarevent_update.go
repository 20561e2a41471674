// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adeola-m/calendar-tracker/gen/ent/calendarevent"
	"github.com/adeola-m/calendar-tracker/gen/ent/calendarpage"
	"github.com/adeola-m/calendar-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// CalendarEventUpdate is the builder for updating CalendarEvent entities.
type CalendarEventUpdate struct {
	config
	hooks    []Hook
	mutation *CalendarEventMutation
}

// Where appends a list predicates to the CalendarEventUpdate builder.
func (_u *CalendarEventUpdate) Where(ps ...predicate.CalendarEvent) *CalendarEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPageID sets the "page_id" field.
func (_u *CalendarEventUpdate) SetPageID(v uuid.UUID) *CalendarEventUpdate {
	_u.mutation.SetPageID(v)
	return _u
}

// SetNillablePageID sets the "page_id" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillablePageID(v *uuid.UUID) *CalendarEventUpdate {
	if v != nil {
		_u.SetPageID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *CalendarEventUpdate) SetDay(v int) *CalendarEventUpdate {
	_u.mutation.ResetDay()
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableDay(v *int) *CalendarEventUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// AddDay adds value to the "day" field.
func (_u *CalendarEventUpdate) AddDay(v int) *CalendarEventUpdate {
	_u.mutation.AddDay(v)
	return _u
}

// SetHour sets the "hour" field.
func (_u *CalendarEventUpdate) SetHour(v int) *CalendarEventUpdate {
	_u.mutation.ResetHour()
	_u.mutation.SetHour(v)
	return _u
}

// SetNillableHour sets the "hour" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableHour(v *int) *CalendarEventUpdate {
	if v != nil {
		_u.SetHour(*v)
	}
	return _u
}

// AddHour adds value to the "hour" field.
func (_u *CalendarEventUpdate) AddHour(v int) *CalendarEventUpdate {
	_u.mutation.AddHour(v)
	return _u
}

// ClearHour clears the value of the "hour" field.
func (_u *CalendarEventUpdate) ClearHour() *CalendarEventUpdate {
	_u.mutation.ClearHour()
	return _u
}

// SetMinute sets the "minute" field.
func (_u *CalendarEventUpdate) SetMinute(v int) *CalendarEventUpdate {
	_u.mutation.ResetMinute()
	_u.mutation.SetMinute(v)
	return _u
}

// SetNillableMinute sets the "minute" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableMinute(v *int) *CalendarEventUpdate {
	if v != nil {
		_u.SetMinute(*v)
	}
	return _u
}

// AddMinute adds value to the "minute" field.
func (_u *CalendarEventUpdate) AddMinute(v int) *CalendarEventUpdate {
	_u.mutation.AddMinute(v)
	return _u
}

// ClearMinute clears the value of the "minute" field.
func (_u *CalendarEventUpdate) ClearMinute() *CalendarEventUpdate {
	_u.mutation.ClearMinute()
	return _u
}

// SetAmPm sets the "am_pm" field.
func (_u *CalendarEventUpdate) SetAmPm(v string) *CalendarEventUpdate {
	_u.mutation.SetAmPm(v)
	return _u
}

// SetNillableAmPm sets the "am_pm" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableAmPm(v *string) *CalendarEventUpdate {
	if v != nil {
		_u.SetAmPm(*v)
	}
	return _u
}

// ClearAmPm clears the value of the "am_pm" field.
func (_u *CalendarEventUpdate) ClearAmPm() *CalendarEventUpdate {
	_u.mutation.ClearAmPm()
	return _u
}

// SetAllDay sets the "all_day" field.
func (_u *CalendarEventUpdate) SetAllDay(v bool) *CalendarEventUpdate {
	_u.mutation.SetAllDay(v)
	return _u
}

// SetNillableAllDay sets the "all_day" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableAllDay(v *bool) *CalendarEventUpdate {
	if v != nil {
		_u.SetAllDay(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CalendarEventUpdate) SetTitle(v string) *CalendarEventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableTitle(v *string) *CalendarEventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetOriginalText sets the "original_text" field.
func (_u *CalendarEventUpdate) SetOriginalText(v string) *CalendarEventUpdate {
	_u.mutation.SetOriginalText(v)
	return _u
}

// SetNillableOriginalText sets the "original_text" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableOriginalText(v *string) *CalendarEventUpdate {
	if v != nil {
		_u.SetOriginalText(*v)
	}
	return _u
}

// SetColor sets the "color" field.
func (_u *CalendarEventUpdate) SetColor(v string) *CalendarEventUpdate {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableColor(v *string) *CalendarEventUpdate {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// SetFeatured sets the "featured" field.
func (_u *CalendarEventUpdate) SetFeatured(v bool) *CalendarEventUpdate {
	_u.mutation.SetFeatured(v)
	return _u
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillableFeatured(v *bool) *CalendarEventUpdate {
	if v != nil {
		_u.SetFeatured(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *CalendarEventUpdate) SetPosition(v int) *CalendarEventUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CalendarEventUpdate) SetNillablePosition(v *int) *CalendarEventUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CalendarEventUpdate) AddPosition(v int) *CalendarEventUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetPage sets the "page" edge to the CalendarPage entity.
func (_u *CalendarEventUpdate) SetPage(v *CalendarPage) *CalendarEventUpdate {
	return _u.SetPageID(v.ID)
}

// Mutation returns the CalendarEventMutation object of the builder.
func (_u *CalendarEventUpdate) Mutation() *CalendarEventMutation {
	return _u.mutation
}

// ClearPage clears the "page" edge to the CalendarPage entity.
func (_u *CalendarEventUpdate) ClearPage() *CalendarEventUpdate {
	_u.mutation.ClearPage()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CalendarEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CalendarEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalendarEventUpdate) check() error {
	if v, ok := _u.mutation.Day(); ok {
		if err := calendarevent.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AmPm(); ok {
		if err := calendarevent.AmPmValidator(v); err != nil {
			return &ValidationError{Name: "am_pm", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.am_pm": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Color(); ok {
		if err := calendarevent.ColorValidator(v); err != nil {
			return &ValidationError{Name: "color", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.color": %w`, err)}
		}
	}
	if _u.mutation.PageCleared() && len(_u.mutation.PageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CalendarEvent.page"`)
	}
	return nil
}

func (_u *CalendarEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calendarevent.Table, calendarevent.Columns, sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(calendarevent.FieldDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDay(); ok {
		_spec.AddField(calendarevent.FieldDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Hour(); ok {
		_spec.SetField(calendarevent.FieldHour, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHour(); ok {
		_spec.AddField(calendarevent.FieldHour, field.TypeInt, value)
	}
	if _u.mutation.HourCleared() {
		_spec.ClearField(calendarevent.FieldHour, field.TypeInt)
	}
	if value, ok := _u.mutation.Minute(); ok {
		_spec.SetField(calendarevent.FieldMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinute(); ok {
		_spec.AddField(calendarevent.FieldMinute, field.TypeInt, value)
	}
	if _u.mutation.MinuteCleared() {
		_spec.ClearField(calendarevent.FieldMinute, field.TypeInt)
	}
	if value, ok := _u.mutation.AmPm(); ok {
		_spec.SetField(calendarevent.FieldAmPm, field.TypeString, value)
	}
	if _u.mutation.AmPmCleared() {
		_spec.ClearField(calendarevent.FieldAmPm, field.TypeString)
	}
	if value, ok := _u.mutation.AllDay(); ok {
		_spec.SetField(calendarevent.FieldAllDay, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(calendarevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalText(); ok {
		_spec.SetField(calendarevent.FieldOriginalText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(calendarevent.FieldColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Featured(); ok {
		_spec.SetField(calendarevent.FieldFeatured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(calendarevent.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(calendarevent.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.PageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   calendarevent.PageTable,
			Columns: []string{calendarevent.PageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarpage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   calendarevent.PageTable,
			Columns: []string{calendarevent.PageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarpage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CalendarEventUpdateOne is the builder for updating a single CalendarEvent entity.
type CalendarEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CalendarEventMutation
}

// SetPageID sets the "page_id" field.
func (_u *CalendarEventUpdateOne) SetPageID(v uuid.UUID) *CalendarEventUpdateOne {
	_u.mutation.SetPageID(v)
	return _u
}

// SetNillablePageID sets the "page_id" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillablePageID(v *uuid.UUID) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetPageID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *CalendarEventUpdateOne) SetDay(v int) *CalendarEventUpdateOne {
	_u.mutation.ResetDay()
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableDay(v *int) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// AddDay adds value to the "day" field.
func (_u *CalendarEventUpdateOne) AddDay(v int) *CalendarEventUpdateOne {
	_u.mutation.AddDay(v)
	return _u
}

// SetHour sets the "hour" field.
func (_u *CalendarEventUpdateOne) SetHour(v int) *CalendarEventUpdateOne {
	_u.mutation.ResetHour()
	_u.mutation.SetHour(v)
	return _u
}

// SetNillableHour sets the "hour" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableHour(v *int) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetHour(*v)
	}
	return _u
}

// AddHour adds value to the "hour" field.
func (_u *CalendarEventUpdateOne) AddHour(v int) *CalendarEventUpdateOne {
	_u.mutation.AddHour(v)
	return _u
}

// ClearHour clears the value of the "hour" field.
func (_u *CalendarEventUpdateOne) ClearHour() *CalendarEventUpdateOne {
	_u.mutation.ClearHour()
	return _u
}

// SetMinute sets the "minute" field.
func (_u *CalendarEventUpdateOne) SetMinute(v int) *CalendarEventUpdateOne {
	_u.mutation.ResetMinute()
	_u.mutation.SetMinute(v)
	return _u
}

// SetNillableMinute sets the "minute" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableMinute(v *int) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetMinute(*v)
	}
	return _u
}

// AddMinute adds value to the "minute" field.
func (_u *CalendarEventUpdateOne) AddMinute(v int) *CalendarEventUpdateOne {
	_u.mutation.AddMinute(v)
	return _u
}

// ClearMinute clears the value of the "minute" field.
func (_u *CalendarEventUpdateOne) ClearMinute() *CalendarEventUpdateOne {
	_u.mutation.ClearMinute()
	return _u
}

// SetAmPm sets the "am_pm" field.
func (_u *CalendarEventUpdateOne) SetAmPm(v string) *CalendarEventUpdateOne {
	_u.mutation.SetAmPm(v)
	return _u
}

// SetNillableAmPm sets the "am_pm" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableAmPm(v *string) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetAmPm(*v)
	}
	return _u
}

// ClearAmPm clears the value of the "am_pm" field.
func (_u *CalendarEventUpdateOne) ClearAmPm() *CalendarEventUpdateOne {
	_u.mutation.ClearAmPm()
	return _u
}

// SetAllDay sets the "all_day" field.
func (_u *CalendarEventUpdateOne) SetAllDay(v bool) *CalendarEventUpdateOne {
	_u.mutation.SetAllDay(v)
	return _u
}

// SetNillableAllDay sets the "all_day" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableAllDay(v *bool) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetAllDay(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CalendarEventUpdateOne) SetTitle(v string) *CalendarEventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableTitle(v *string) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetOriginalText sets the "original_text" field.
func (_u *CalendarEventUpdateOne) SetOriginalText(v string) *CalendarEventUpdateOne {
	_u.mutation.SetOriginalText(v)
	return _u
}

// SetNillableOriginalText sets the "original_text" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableOriginalText(v *string) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetOriginalText(*v)
	}
	return _u
}

// SetColor sets the "color" field.
func (_u *CalendarEventUpdateOne) SetColor(v string) *CalendarEventUpdateOne {
	_u.mutation.SetColor(v)
	return _u
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableColor(v *string) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetColor(*v)
	}
	return _u
}

// SetFeatured sets the "featured" field.
func (_u *CalendarEventUpdateOne) SetFeatured(v bool) *CalendarEventUpdateOne {
	_u.mutation.SetFeatured(v)
	return _u
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillableFeatured(v *bool) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetFeatured(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *CalendarEventUpdateOne) SetPosition(v int) *CalendarEventUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CalendarEventUpdateOne) SetNillablePosition(v *int) *CalendarEventUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CalendarEventUpdateOne) AddPosition(v int) *CalendarEventUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetPage sets the "page" edge to the CalendarPage entity.
func (_u *CalendarEventUpdateOne) SetPage(v *CalendarPage) *CalendarEventUpdateOne {
	return _u.SetPageID(v.ID)
}

// Mutation returns the CalendarEventMutation object of the builder.
func (_u *CalendarEventUpdateOne) Mutation() *CalendarEventMutation {
	return _u.mutation
}

// ClearPage clears the "page" edge to the CalendarPage entity.
func (_u *CalendarEventUpdateOne) ClearPage() *CalendarEventUpdateOne {
	_u.mutation.ClearPage()
	return _u
}

// Where appends a list predicates to the CalendarEventUpdate builder.
func (_u *CalendarEventUpdateOne) Where(ps ...predicate.CalendarEvent) *CalendarEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CalendarEventUpdateOne) Select(field string, fields ...string) *CalendarEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CalendarEvent entity.
func (_u *CalendarEventUpdateOne) Save(ctx context.Context) (*CalendarEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarEventUpdateOne) SaveX(ctx context.Context) *CalendarEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CalendarEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalendarEventUpdateOne) check() error {
	if v, ok := _u.mutation.Day(); ok {
		if err := calendarevent.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AmPm(); ok {
		if err := calendarevent.AmPmValidator(v); err != nil {
			return &ValidationError{Name: "am_pm", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.am_pm": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Color(); ok {
		if err := calendarevent.ColorValidator(v); err != nil {
			return &ValidationError{Name: "color", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.color": %w`, err)}
		}
	}
	if _u.mutation.PageCleared() && len(_u.mutation.PageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CalendarEvent.page"`)
	}
	return nil
}

func (_u *CalendarEventUpdateOne) sqlSave(ctx context.Context) (_node *CalendarEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calendarevent.Table, calendarevent.Columns, sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CalendarEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calendarevent.FieldID)
		for _, f := range fields {
			if !calendarevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != calendarevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(calendarevent.FieldDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDay(); ok {
		_spec.AddField(calendarevent.FieldDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Hour(); ok {
		_spec.SetField(calendarevent.FieldHour, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHour(); ok {
		_spec.AddField(calendarevent.FieldHour, field.TypeInt, value)
	}
	if _u.mutation.HourCleared() {
		_spec.ClearField(calendarevent.FieldHour, field.TypeInt)
	}
	if value, ok := _u.mutation.Minute(); ok {
		_spec.SetField(calendarevent.FieldMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinute(); ok {
		_spec.AddField(calendarevent.FieldMinute, field.TypeInt, value)
	}
	if _u.mutation.MinuteCleared() {
		_spec.ClearField(calendarevent.FieldMinute, field.TypeInt)
	}
	if value, ok := _u.mutation.AmPm(); ok {
		_spec.SetField(calendarevent.FieldAmPm, field.TypeString, value)
	}
	if _u.mutation.AmPmCleared() {
		_spec.ClearField(calendarevent.FieldAmPm, field.TypeString)
	}
	if value, ok := _u.mutation.AllDay(); ok {
		_spec.SetField(calendarevent.FieldAllDay, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(calendarevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalText(); ok {
		_spec.SetField(calendarevent.FieldOriginalText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Color(); ok {
		_spec.SetField(calendarevent.FieldColor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Featured(); ok {
		_spec.SetField(calendarevent.FieldFeatured, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(calendarevent.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(calendarevent.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.PageCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   calendarevent.PageTable,
			Columns: []string{calendarevent.PageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarpage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   calendarevent.PageTable,
			Columns: []string{calendarevent.PageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarpage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CalendarEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
