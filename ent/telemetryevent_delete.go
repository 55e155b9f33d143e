// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"wheeltrack/ent/predicate"
	"wheeltrack/ent/telemetryevent"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// TelemetryEventDelete is the builder for deleting a TelemetryEvent entity.
type TelemetryEventDelete struct {
	config
	hooks    []Hook
	mutation *TelemetryEventMutation
}

// Where appends a list predicates to the TelemetryEventDelete builder.
func (_d *TelemetryEventDelete) Where(ps ...predicate.TelemetryEvent) *TelemetryEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TelemetryEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TelemetryEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TelemetryEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(telemetryevent.Table, sqlgraph.NewFieldSpec(telemetryevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// TelemetryEventDeleteOne is the builder for deleting a single TelemetryEvent entity.
type TelemetryEventDeleteOne struct {
	_d *TelemetryEventDelete
}

// Where appends a list predicates to the TelemetryEventDelete builder.
func (_d *TelemetryEventDeleteOne) Where(ps ...predicate.TelemetryEvent) *TelemetryEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TelemetryEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{telemetryevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TelemetryEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
