// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"wheeltrack/ent/predicate"
	"wheeltrack/ent/telemetryevent"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// TelemetryEventUpdate is the builder for updating TelemetryEvent entities.
type TelemetryEventUpdate struct {
	config
	hooks    []Hook
	mutation *TelemetryEventMutation
}

// Where appends a list predicates to the TelemetryEventUpdate builder.
func (_u *TelemetryEventUpdate) Where(ps ...predicate.TelemetryEvent) *TelemetryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the TelemetryEventMutation object of the builder.
func (_u *TelemetryEventUpdate) Mutation() *TelemetryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TelemetryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TelemetryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TelemetryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TelemetryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TelemetryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(telemetryevent.Table, telemetryevent.Columns, sqlgraph.NewFieldSpec(telemetryevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ExpectedActionCleared() {
		_spec.ClearField(telemetryevent.FieldExpectedAction, field.TypeString)
	}
	if _u.mutation.ActualActionCleared() {
		_spec.ClearField(telemetryevent.FieldActualAction, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{telemetryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TelemetryEventUpdateOne is the builder for updating a single TelemetryEvent entity.
type TelemetryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TelemetryEventMutation
}

// Mutation returns the TelemetryEventMutation object of the builder.
func (_u *TelemetryEventUpdateOne) Mutation() *TelemetryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TelemetryEventUpdate builder.
func (_u *TelemetryEventUpdateOne) Where(ps ...predicate.TelemetryEvent) *TelemetryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TelemetryEventUpdateOne) Select(field string, fields ...string) *TelemetryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TelemetryEvent entity.
func (_u *TelemetryEventUpdateOne) Save(ctx context.Context) (*TelemetryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TelemetryEventUpdateOne) SaveX(ctx context.Context) *TelemetryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TelemetryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TelemetryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TelemetryEventUpdateOne) sqlSave(ctx context.Context) (_node *TelemetryEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(telemetryevent.Table, telemetryevent.Columns, sqlgraph.NewFieldSpec(telemetryevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TelemetryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, telemetryevent.FieldID)
		for _, f := range fields {
			if !telemetryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != telemetryevent.FieldID {
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
	if _u.mutation.ExpectedActionCleared() {
		_spec.ClearField(telemetryevent.FieldExpectedAction, field.TypeString)
	}
	if _u.mutation.ActualActionCleared() {
		_spec.ClearField(telemetryevent.FieldActualAction, field.TypeString)
	}
	_node = &TelemetryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{telemetryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
