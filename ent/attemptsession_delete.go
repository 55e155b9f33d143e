// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"wheeltrack/ent/attemptsession"
	"wheeltrack/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// AttemptSessionDelete is the builder for deleting a AttemptSession entity.
type AttemptSessionDelete struct {
	config
	hooks    []Hook
	mutation *AttemptSessionMutation
}

// Where appends a list predicates to the AttemptSessionDelete builder.
func (_d *AttemptSessionDelete) Where(ps ...predicate.AttemptSession) *AttemptSessionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AttemptSessionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AttemptSessionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AttemptSessionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(attemptsession.Table, sqlgraph.NewFieldSpec(attemptsession.FieldID, field.TypeInt))
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

// AttemptSessionDeleteOne is the builder for deleting a single AttemptSession entity.
type AttemptSessionDeleteOne struct {
	_d *AttemptSessionDelete
}

// Where appends a list predicates to the AttemptSessionDelete builder.
func (_d *AttemptSessionDeleteOne) Where(ps ...predicate.AttemptSession) *AttemptSessionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AttemptSessionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{attemptsession.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AttemptSessionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
