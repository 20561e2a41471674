// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adeola-m/calendar-tracker/gen/ent/calendarevent"
	"github.com/adeola-m/calendar-tracker/gen/ent/calendarpage"
	"github.com/google/uuid"
)

// CalendarPageCreate is the builder for creating a CalendarPage entity.
type CalendarPageCreate struct {
	config
	mutation *CalendarPageMutation
	hooks    []Hook
}

// SetImagePath sets the "image_path" field.
func (_c *CalendarPageCreate) SetImagePath(v string) *CalendarPageCreate {
	_c.mutation.SetImagePath(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CalendarPageCreate) SetStatus(v string) *CalendarPageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CalendarPageCreate) SetNillableStatus(v *string) *CalendarPageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMonth sets the "month" field.
func (_c *CalendarPageCreate) SetMonth(v int) *CalendarPageCreate {
	_c.mutation.SetMonth(v)
	return _c
}

// SetNillableMonth sets the "month" field if the given value is not nil.
func (_c *CalendarPageCreate) SetNillableMonth(v *int) *CalendarPageCreate {
	if v != nil {
		_c.SetMonth(*v)
	}
	return _c
}

// SetYear sets the "year" field.
func (_c *CalendarPageCreate) SetYear(v int) *CalendarPageCreate {
	_c.mutation.SetYear(v)
	return _c
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_c *CalendarPageCreate) SetNillableYear(v *int) *CalendarPageCreate {
	if v != nil {
		_c.SetYear(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *CalendarPageCreate) SetNotes(v []string) *CalendarPageCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetRawResult sets the "raw_result" field.
func (_c *CalendarPageCreate) SetRawResult(v json.RawMessage) *CalendarPageCreate {
	_c.mutation.SetRawResult(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CalendarPageCreate) SetCreatedAt(v time.Time) *CalendarPageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CalendarPageCreate) SetNillableCreatedAt(v *time.Time) *CalendarPageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CalendarPageCreate) SetID(v uuid.UUID) *CalendarPageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CalendarPageCreate) SetNillableID(v *uuid.UUID) *CalendarPageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddEventIDs adds the "events" edge to the CalendarEvent entity by IDs.
func (_c *CalendarPageCreate) AddEventIDs(ids ...uuid.UUID) *CalendarPageCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the CalendarEvent entity.
func (_c *CalendarPageCreate) AddEvents(v ...*CalendarEvent) *CalendarPageCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the CalendarPageMutation object of the builder.
func (_c *CalendarPageCreate) Mutation() *CalendarPageMutation {
	return _c.mutation
}

// Save creates the CalendarPage in the database.
func (_c *CalendarPageCreate) Save(ctx context.Context) (*CalendarPage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CalendarPageCreate) SaveX(ctx context.Context) *CalendarPage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarPageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarPageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CalendarPageCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := calendarpage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := calendarpage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := calendarpage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CalendarPageCreate) check() error {
	if _, ok := _c.mutation.ImagePath(); !ok {
		return &ValidationError{Name: "image_path", err: errors.New(`ent: missing required field "CalendarPage.image_path"`)}
	}
	if v, ok := _c.mutation.ImagePath(); ok {
		if err := calendarpage.ImagePathValidator(v); err != nil {
			return &ValidationError{Name: "image_path", err: fmt.Errorf(`ent: validator failed for field "CalendarPage.image_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CalendarPage.status"`)}
	}
	if v, ok := _c.mutation.Month(); ok {
		if err := calendarpage.MonthValidator(v); err != nil {
			return &ValidationError{Name: "month", err: fmt.Errorf(`ent: validator failed for field "CalendarPage.month": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CalendarPage.created_at"`)}
	}
	return nil
}

func (_c *CalendarPageCreate) sqlSave(ctx context.Context) (*CalendarPage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CalendarPageCreate) createSpec() (*CalendarPage, *sqlgraph.CreateSpec) {
	var (
		_node = &CalendarPage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(calendarpage.Table, sqlgraph.NewFieldSpec(calendarpage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ImagePath(); ok {
		_spec.SetField(calendarpage.FieldImagePath, field.TypeString, value)
		_node.ImagePath = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(calendarpage.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Month(); ok {
		_spec.SetField(calendarpage.FieldMonth, field.TypeInt, value)
		_node.Month = &value
	}
	if value, ok := _c.mutation.Year(); ok {
		_spec.SetField(calendarpage.FieldYear, field.TypeInt, value)
		_node.Year = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(calendarpage.FieldNotes, field.TypeJSON, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.RawResult(); ok {
		_spec.SetField(calendarpage.FieldRawResult, field.TypeJSON, value)
		_node.RawResult = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(calendarpage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CalendarPageCreateBulk is the builder for creating many CalendarPage entities in bulk.
type CalendarPageCreateBulk struct {
	config
	err      error
	builders []*CalendarPageCreate
}

// Save creates the CalendarPage entities in the database.
func (_c *CalendarPageCreateBulk) Save(ctx context.Context) ([]*CalendarPage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CalendarPage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CalendarPageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CalendarPageCreateBulk) SaveX(ctx context.Context) []*CalendarPage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarPageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarPageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
