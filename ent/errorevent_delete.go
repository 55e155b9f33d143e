// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"wheeltrack/ent/errorevent"
	"wheeltrack/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ErrorEventDelete is the builder for deleting a ErrorEvent entity.
type ErrorEventDelete struct {
	config
	hooks    []Hook
	mutation *ErrorEventMutation
}

// Where appends a list predicates to the ErrorEventDelete builder.
func (_d *ErrorEventDelete) Where(ps ...predicate.ErrorEvent) *ErrorEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ErrorEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ErrorEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ErrorEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(errorevent.Table, sqlgraph.NewFieldSpec(errorevent.FieldID, field.TypeInt))
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

// ErrorEventDeleteOne is the builder for deleting a single ErrorEvent entity.
type ErrorEventDeleteOne struct {
	_d *ErrorEventDelete
}

// Where appends a list predicates to the ErrorEventDelete builder.
func (_d *ErrorEventDeleteOne) Where(ps ...predicate.ErrorEvent) *ErrorEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ErrorEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{errorevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ErrorEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
