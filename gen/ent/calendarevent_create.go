// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adeola-m/calendar-tracker/gen/ent/calendarevent"
	"github.com/adeola-m/calendar-tracker/gen/ent/calendarpage"
	"github.com/google/uuid"
)

// CalendarEventCreate is the builder for creating a CalendarEvent entity.
type CalendarEventCreate struct {
	config
	mutation *CalendarEventMutation
	hooks    []Hook
}

// SetPageID sets the "page_id" field.
func (_c *CalendarEventCreate) SetPageID(v uuid.UUID) *CalendarEventCreate {
	_c.mutation.SetPageID(v)
	return _c
}

// SetDay sets the "day" field.
func (_c *CalendarEventCreate) SetDay(v int) *CalendarEventCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetHour sets the "hour" field.
func (_c *CalendarEventCreate) SetHour(v int) *CalendarEventCreate {
	_c.mutation.SetHour(v)
	return _c
}

// SetNillableHour sets the "hour" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableHour(v *int) *CalendarEventCreate {
	if v != nil {
		_c.SetHour(*v)
	}
	return _c
}

// SetMinute sets the "minute" field.
func (_c *CalendarEventCreate) SetMinute(v int) *CalendarEventCreate {
	_c.mutation.SetMinute(v)
	return _c
}

// SetNillableMinute sets the "minute" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableMinute(v *int) *CalendarEventCreate {
	if v != nil {
		_c.SetMinute(*v)
	}
	return _c
}

// SetAmPm sets the "am_pm" field.
func (_c *CalendarEventCreate) SetAmPm(v string) *CalendarEventCreate {
	_c.mutation.SetAmPm(v)
	return _c
}

// SetNillableAmPm sets the "am_pm" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableAmPm(v *string) *CalendarEventCreate {
	if v != nil {
		_c.SetAmPm(*v)
	}
	return _c
}

// SetAllDay sets the "all_day" field.
func (_c *CalendarEventCreate) SetAllDay(v bool) *CalendarEventCreate {
	_c.mutation.SetAllDay(v)
	return _c
}

// SetNillableAllDay sets the "all_day" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableAllDay(v *bool) *CalendarEventCreate {
	if v != nil {
		_c.SetAllDay(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *CalendarEventCreate) SetTitle(v string) *CalendarEventCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetOriginalText sets the "original_text" field.
func (_c *CalendarEventCreate) SetOriginalText(v string) *CalendarEventCreate {
	_c.mutation.SetOriginalText(v)
	return _c
}

// SetColor sets the "color" field.
func (_c *CalendarEventCreate) SetColor(v string) *CalendarEventCreate {
	_c.mutation.SetColor(v)
	return _c
}

// SetNillableColor sets the "color" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableColor(v *string) *CalendarEventCreate {
	if v != nil {
		_c.SetColor(*v)
	}
	return _c
}

// SetFeatured sets the "featured" field.
func (_c *CalendarEventCreate) SetFeatured(v bool) *CalendarEventCreate {
	_c.mutation.SetFeatured(v)
	return _c
}

// SetNillableFeatured sets the "featured" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableFeatured(v *bool) *CalendarEventCreate {
	if v != nil {
		_c.SetFeatured(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *CalendarEventCreate) SetPosition(v int) *CalendarEventCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillablePosition(v *int) *CalendarEventCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CalendarEventCreate) SetID(v uuid.UUID) *CalendarEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CalendarEventCreate) SetNillableID(v *uuid.UUID) *CalendarEventCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPage sets the "page" edge to the CalendarPage entity.
func (_c *CalendarEventCreate) SetPage(v *CalendarPage) *CalendarEventCreate {
	return _c.SetPageID(v.ID)
}

// Mutation returns the CalendarEventMutation object of the builder.
func (_c *CalendarEventCreate) Mutation() *CalendarEventMutation {
	return _c.mutation
}

// Save creates the CalendarEvent in the database.
func (_c *CalendarEventCreate) Save(ctx context.Context) (*CalendarEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CalendarEventCreate) SaveX(ctx context.Context) *CalendarEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CalendarEventCreate) defaults() {
	if _, ok := _c.mutation.AllDay(); !ok {
		v := calendarevent.DefaultAllDay
		_c.mutation.SetAllDay(v)
	}
	if _, ok := _c.mutation.Color(); !ok {
		v := calendarevent.DefaultColor
		_c.mutation.SetColor(v)
	}
	if _, ok := _c.mutation.Featured(); !ok {
		v := calendarevent.DefaultFeatured
		_c.mutation.SetFeatured(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := calendarevent.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := calendarevent.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CalendarEventCreate) check() error {
	if _, ok := _c.mutation.PageID(); !ok {
		return &ValidationError{Name: "page_id", err: errors.New(`ent: missing required field "CalendarEvent.page_id"`)}
	}
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`ent: missing required field "CalendarEvent.day"`)}
	}
	if v, ok := _c.mutation.Day(); ok {
		if err := calendarevent.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.day": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AmPm(); ok {
		if err := calendarevent.AmPmValidator(v); err != nil {
			return &ValidationError{Name: "am_pm", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.am_pm": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AllDay(); !ok {
		return &ValidationError{Name: "all_day", err: errors.New(`ent: missing required field "CalendarEvent.all_day"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "CalendarEvent.title"`)}
	}
	if _, ok := _c.mutation.OriginalText(); !ok {
		return &ValidationError{Name: "original_text", err: errors.New(`ent: missing required field "CalendarEvent.original_text"`)}
	}
	if _, ok := _c.mutation.Color(); !ok {
		return &ValidationError{Name: "color", err: errors.New(`ent: missing required field "CalendarEvent.color"`)}
	}
	if v, ok := _c.mutation.Color(); ok {
		if err := calendarevent.ColorValidator(v); err != nil {
			return &ValidationError{Name: "color", err: fmt.Errorf(`ent: validator failed for field "CalendarEvent.color": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Featured(); !ok {
		return &ValidationError{Name: "featured", err: errors.New(`ent: missing required field "CalendarEvent.featured"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "CalendarEvent.position"`)}
	}
	if len(_c.mutation.PageIDs()) == 0 {
		return &ValidationError{Name: "page", err: errors.New(`ent: missing required edge "CalendarEvent.page"`)}
	}
	return nil
}

func (_c *CalendarEventCreate) sqlSave(ctx context.Context) (*CalendarEvent, error) {
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

func (_c *CalendarEventCreate) createSpec() (*CalendarEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CalendarEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(calendarevent.Table, sqlgraph.NewFieldSpec(calendarevent.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(calendarevent.FieldDay, field.TypeInt, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.Hour(); ok {
		_spec.SetField(calendarevent.FieldHour, field.TypeInt, value)
		_node.Hour = &value
	}
	if value, ok := _c.mutation.Minute(); ok {
		_spec.SetField(calendarevent.FieldMinute, field.TypeInt, value)
		_node.Minute = &value
	}
	if value, ok := _c.mutation.AmPm(); ok {
		_spec.SetField(calendarevent.FieldAmPm, field.TypeString, value)
		_node.AmPm = &value
	}
	if value, ok := _c.mutation.AllDay(); ok {
		_spec.SetField(calendarevent.FieldAllDay, field.TypeBool, value)
		_node.AllDay = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(calendarevent.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.OriginalText(); ok {
		_spec.SetField(calendarevent.FieldOriginalText, field.TypeString, value)
		_node.OriginalText = value
	}
	if value, ok := _c.mutation.Color(); ok {
		_spec.SetField(calendarevent.FieldColor, field.TypeString, value)
		_node.Color = value
	}
	if value, ok := _c.mutation.Featured(); ok {
		_spec.SetField(calendarevent.FieldFeatured, field.TypeBool, value)
		_node.Featured = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(calendarevent.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if nodes := _c.mutation.PageIDs(); len(nodes) > 0 {
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
		_node.PageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CalendarEventCreateBulk is the builder for creating many CalendarEvent entities in bulk.
type CalendarEventCreateBulk struct {
	config
	err      error
	builders []*CalendarEventCreate
}

// Save creates the CalendarEvent entities in the database.
func (_c *CalendarEventCreateBulk) Save(ctx context.Context) ([]*CalendarEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CalendarEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CalendarEventMutation)
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
func (_c *CalendarEventCreateBulk) SaveX(ctx context.Context) []*CalendarEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalendarEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalendarEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
