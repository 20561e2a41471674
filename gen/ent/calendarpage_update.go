// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/adeola-m/calendar-tracker/gen/ent/calendarevent"
	"github.com/adeola-m/calendar-tracker/gen/ent/calendarpage"
	"github.com/adeola-m/calendar-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// CalendarPageUpdate is the builder for updating CalendarPage entities.
type CalendarPageUpdate struct {
	config
	hooks    []Hook
	mutation *CalendarPageMutation
}

// Where appends a list predicates to the CalendarPageUpdate builder.
func (_u *CalendarPageUpdate) Where(ps ...predicate.CalendarPage) *CalendarPageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CalendarPageUpdate) SetStatus(v string) *CalendarPageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CalendarPageUpdate) SetNillableStatus(v *string) *CalendarPageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMonth sets the "month" field.
func (_u *CalendarPageUpdate) SetMonth(v int) *CalendarPageUpdate {
	_u.mutation.ResetMonth()
	_u.mutation.SetMonth(v)
	return _u
}

// SetNillableMonth sets the "month" field if the given value is not nil.
func (_u *CalendarPageUpdate) SetNillableMonth(v *int) *CalendarPageUpdate {
	if v != nil {
		_u.SetMonth(*v)
	}
	return _u
}

// AddMonth adds value to the "month" field.
func (_u *CalendarPageUpdate) AddMonth(v int) *CalendarPageUpdate {
	_u.mutation.AddMonth(v)
	return _u
}

// ClearMonth clears the value of the "month" field.
func (_u *CalendarPageUpdate) ClearMonth() *CalendarPageUpdate {
	_u.mutation.ClearMonth()
	return _u
}

// SetYear sets the "year" field.
func (_u *CalendarPageUpdate) SetYear(v int) *CalendarPageUpdate {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *CalendarPageUpdate) SetNillableYear(v *int) *CalendarPageUpdate {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *CalendarPageUpdate) AddYear(v int) *CalendarPageUpdate {
	_u.mutation.AddYear(v)
	return _u
}

// ClearYear clears the value of the "year" field.
func (_u *CalendarPageUpdate) ClearYear() *CalendarPageUpdate {
	_u.mutation.ClearYear()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *CalendarPageUpdate) SetNotes(v []string) *CalendarPageUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// AppendNotes appends value to the "notes" field.
func (_u *CalendarPageUpdate) AppendNotes(v []string) *CalendarPageUpdate {
	_u.mutation.AppendNotes(v)
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *CalendarPageUpdate) ClearNotes() *CalendarPageUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetRawResult sets the "raw_result" field.
func (_u *CalendarPageUpdate) SetRawResult(v json.RawMessage) *CalendarPageUpdate {
	_u.mutation.SetRawResult(v)
	return _u
}

// AppendRawResult appends value to the "raw_result" field.
func (_u *CalendarPageUpdate) AppendRawResult(v json.RawMessage) *CalendarPageUpdate {
	_u.mutation.AppendRawResult(v)
	return _u
}

// ClearRawResult clears the value of the "raw_result" field.
func (_u *CalendarPageUpdate) ClearRawResult() *CalendarPageUpdate {
	_u.mutation.ClearRawResult()
	return _u
}

// AddEventIDs adds the "events" edge to the CalendarEvent entity by IDs.
func (_u *CalendarPageUpdate) AddEventIDs(ids ...uuid.UUID) *CalendarPageUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the CalendarEvent entity.
func (_u *CalendarPageUpdate) AddEvents(v ...*CalendarEvent) *CalendarPageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the CalendarPageMutation object of the builder.
func (_u *CalendarPageUpdate) Mutation() *CalendarPageMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the CalendarEvent entity.
func (_u *CalendarPageUpdate) ClearEvents() *CalendarPageUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to CalendarEvent entities by IDs.
func (_u *CalendarPageUpdate) RemoveEventIDs(ids ...uuid.UUID) *CalendarPageUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to CalendarEvent entities.
func (_u *CalendarPageUpdate) RemoveEvents(v ...*CalendarEvent) *CalendarPageUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CalendarPageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarPageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CalendarPageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarPageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalendarPageUpdate) check() error {
	if v, ok := _u.mutation.Month(); ok {
		if err := calendarpage.MonthValidator(v); err != nil {
			return &ValidationError{Name: "month", err: fmt.Errorf(`ent: validator failed for field "CalendarPage.month": %w`, err)}
		}
	}
	return nil
}

func (_u *CalendarPageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calendarpage.Table, calendarpage.Columns, sqlgraph.NewFieldSpec(calendarpage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(calendarpage.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Month(); ok {
		_spec.SetField(calendarpage.FieldMonth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMonth(); ok {
		_spec.AddField(calendarpage.FieldMonth, field.TypeInt, value)
	}
	if _u.mutation.MonthCleared() {
		_spec.ClearField(calendarpage.FieldMonth, field.TypeInt)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(calendarpage.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(calendarpage.FieldYear, field.TypeInt, value)
	}
	if _u.mutation.YearCleared() {
		_spec.ClearField(calendarpage.FieldYear, field.TypeInt)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(calendarpage.FieldNotes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNotes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, calendarpage.FieldNotes, value)
		})
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(calendarpage.FieldNotes, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawResult(); ok {
		_spec.SetField(calendarpage.FieldRawResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, calendarpage.FieldRawResult, value)
		})
	}
	if _u.mutation.RawResultCleared() {
		_spec.ClearField(calendarpage.FieldRawResult, field.TypeJSON)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   calendarpage.EventsTable,
			Columns: []string{calendarpage.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   calendarpage.EventsTable,
			Columns: []string{calendarpage.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   calendarpage.EventsTable,
			Columns: []string{calendarpage.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CalendarPageUpdateOne is the builder for updating a single CalendarPage entity.
type CalendarPageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CalendarPageMutation
}

// SetStatus sets the "status" field.
func (_u *CalendarPageUpdateOne) SetStatus(v string) *CalendarPageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CalendarPageUpdateOne) SetNillableStatus(v *string) *CalendarPageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMonth sets the "month" field.
func (_u *CalendarPageUpdateOne) SetMonth(v int) *CalendarPageUpdateOne {
	_u.mutation.ResetMonth()
	_u.mutation.SetMonth(v)
	return _u
}

// SetNillableMonth sets the "month" field if the given value is not nil.
func (_u *CalendarPageUpdateOne) SetNillableMonth(v *int) *CalendarPageUpdateOne {
	if v != nil {
		_u.SetMonth(*v)
	}
	return _u
}

// AddMonth adds value to the "month" field.
func (_u *CalendarPageUpdateOne) AddMonth(v int) *CalendarPageUpdateOne {
	_u.mutation.AddMonth(v)
	return _u
}

// ClearMonth clears the value of the "month" field.
func (_u *CalendarPageUpdateOne) ClearMonth() *CalendarPageUpdateOne {
	_u.mutation.ClearMonth()
	return _u
}

// SetYear sets the "year" field.
func (_u *CalendarPageUpdateOne) SetYear(v int) *CalendarPageUpdateOne {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *CalendarPageUpdateOne) SetNillableYear(v *int) *CalendarPageUpdateOne {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *CalendarPageUpdateOne) AddYear(v int) *CalendarPageUpdateOne {
	_u.mutation.AddYear(v)
	return _u
}

// ClearYear clears the value of the "year" field.
func (_u *CalendarPageUpdateOne) ClearYear() *CalendarPageUpdateOne {
	_u.mutation.ClearYear()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *CalendarPageUpdateOne) SetNotes(v []string) *CalendarPageUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// AppendNotes appends value to the "notes" field.
func (_u *CalendarPageUpdateOne) AppendNotes(v []string) *CalendarPageUpdateOne {
	_u.mutation.AppendNotes(v)
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *CalendarPageUpdateOne) ClearNotes() *CalendarPageUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetRawResult sets the "raw_result" field.
func (_u *CalendarPageUpdateOne) SetRawResult(v json.RawMessage) *CalendarPageUpdateOne {
	_u.mutation.SetRawResult(v)
	return _u
}

// AppendRawResult appends value to the "raw_result" field.
func (_u *CalendarPageUpdateOne) AppendRawResult(v json.RawMessage) *CalendarPageUpdateOne {
	_u.mutation.AppendRawResult(v)
	return _u
}

// ClearRawResult clears the value of the "raw_result" field.
func (_u *CalendarPageUpdateOne) ClearRawResult() *CalendarPageUpdateOne {
	_u.mutation.ClearRawResult()
	return _u
}

// AddEventIDs adds the "events" edge to the CalendarEvent entity by IDs.
func (_u *CalendarPageUpdateOne) AddEventIDs(ids ...uuid.UUID) *CalendarPageUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the CalendarEvent entity.
func (_u *CalendarPageUpdateOne) AddEvents(v ...*CalendarEvent) *CalendarPageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the CalendarPageMutation object of the builder.
func (_u *CalendarPageUpdateOne) Mutation() *CalendarPageMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the CalendarEvent entity.
func (_u *CalendarPageUpdateOne) ClearEvents() *CalendarPageUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to CalendarEvent entities by IDs.
func (_u *CalendarPageUpdateOne) RemoveEventIDs(ids ...uuid.UUID) *CalendarPageUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to CalendarEvent entities.
func (_u *CalendarPageUpdateOne) RemoveEvents(v ...*CalendarEvent) *CalendarPageUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the CalendarPageUpdate builder.
func (_u *CalendarPageUpdateOne) Where(ps ...predicate.CalendarPage) *CalendarPageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CalendarPageUpdateOne) Select(field string, fields ...string) *CalendarPageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CalendarPage entity.
func (_u *CalendarPageUpdateOne) Save(ctx context.Context) (*CalendarPage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalendarPageUpdateOne) SaveX(ctx context.Context) *CalendarPage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CalendarPageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalendarPageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CalendarPageUpdateOne) check() error {
	if v, ok := _u.mutation.Month(); ok {
		if err := calendarpage.MonthValidator(v); err != nil {
			return &ValidationError{Name: "month", err: fmt.Errorf(`ent: validator failed for field "CalendarPage.month": %w`, err)}
		}
	}
	return nil
}

func (_u *CalendarPageUpdateOne) sqlSave(ctx context.Context) (_node *CalendarPage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(calendarpage.Table, calendarpage.Columns, sqlgraph.NewFieldSpec(calendarpage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CalendarPage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, calendarpage.FieldID)
		for _, f := range fields {
			if !calendarpage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != calendarpage.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(calendarpage.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Month(); ok {
		_spec.SetField(calendarpage.FieldMonth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMonth(); ok {
		_spec.AddField(calendarpage.FieldMonth, field.TypeInt, value)
	}
	if _u.mutation.MonthCleared() {
		_spec.ClearField(calendarpage.FieldMonth, field.TypeInt)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(calendarpage.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(calendarpage.FieldYear, field.TypeInt, value)
	}
	if _u.mutation.YearCleared() {
		_spec.ClearField(calendarpage.FieldYear, field.TypeInt)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(calendarpage.FieldNotes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNotes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, calendarpage.FieldNotes, value)
		})
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(calendarpage.FieldNotes, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawResult(); ok {
		_spec.SetField(calendarpage.FieldRawResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, calendarpage.FieldRawResult, value)
		})
	}
	if _u.mutation.RawResultCleared() {
		_spec.ClearField(calendarpage.FieldRawResult, field.TypeJSON)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   calendarpage.EventsTable,
			Columns: []string{calendarpage.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   calendarpage.EventsTable,
			Columns: []string{calendarpage.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   calendarpage.EventsTable,
			Columns: []string{calendarpage.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CalendarPage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{calendarpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
