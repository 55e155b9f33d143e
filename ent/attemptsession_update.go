// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wheeltrack/ent/attemptsession"
	"wheeltrack/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// AttemptSessionUpdate is the builder for updating AttemptSession entities.
type AttemptSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptSessionMutation
}

// Where appends a list predicates to the AttemptSessionUpdate builder.
func (_u *AttemptSessionUpdate) Where(ps ...predicate.AttemptSession) *AttemptSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AttemptSessionUpdate) SetStatus(v attemptsession.Status) *AttemptSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AttemptSessionUpdate) SetNillableStatus(v *attemptsession.Status) *AttemptSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AttemptSessionUpdate) SetSuccess(v bool) *AttemptSessionUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AttemptSessionUpdate) SetNillableSuccess(v *bool) *AttemptSessionUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// ClearSuccess clears the value of the "success" field.
func (_u *AttemptSessionUpdate) ClearSuccess() *AttemptSessionUpdate {
	_u.mutation.ClearSuccess()
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AttemptSessionUpdate) SetEndTime(v time.Time) *AttemptSessionUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AttemptSessionUpdate) SetNillableEndTime(v *time.Time) *AttemptSessionUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *AttemptSessionUpdate) ClearEndTime() *AttemptSessionUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// Mutation returns the AttemptSessionMutation object of the builder.
func (_u *AttemptSessionUpdate) Mutation() *AttemptSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := attemptsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AttemptSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptsession.Table, attemptsession.Columns, sqlgraph.NewFieldSpec(attemptsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(attemptsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(attemptsession.FieldSuccess, field.TypeBool, value)
	}
	if _u.mutation.SuccessCleared() {
		_spec.ClearField(attemptsession.FieldSuccess, field.TypeBool)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(attemptsession.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(attemptsession.FieldEndTime, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptSessionUpdateOne is the builder for updating a single AttemptSession entity.
type AttemptSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptSessionMutation
}

// SetStatus sets the "status" field.
func (_u *AttemptSessionUpdateOne) SetStatus(v attemptsession.Status) *AttemptSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AttemptSessionUpdateOne) SetNillableStatus(v *attemptsession.Status) *AttemptSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AttemptSessionUpdateOne) SetSuccess(v bool) *AttemptSessionUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AttemptSessionUpdateOne) SetNillableSuccess(v *bool) *AttemptSessionUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// ClearSuccess clears the value of the "success" field.
func (_u *AttemptSessionUpdateOne) ClearSuccess() *AttemptSessionUpdateOne {
	_u.mutation.ClearSuccess()
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AttemptSessionUpdateOne) SetEndTime(v time.Time) *AttemptSessionUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AttemptSessionUpdateOne) SetNillableEndTime(v *time.Time) *AttemptSessionUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *AttemptSessionUpdateOne) ClearEndTime() *AttemptSessionUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// Mutation returns the AttemptSessionMutation object of the builder.
func (_u *AttemptSessionUpdateOne) Mutation() *AttemptSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptSessionUpdate builder.
func (_u *AttemptSessionUpdateOne) Where(ps ...predicate.AttemptSession) *AttemptSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptSessionUpdateOne) Select(field string, fields ...string) *AttemptSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptSession entity.
func (_u *AttemptSessionUpdateOne) Save(ctx context.Context) (*AttemptSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptSessionUpdateOne) SaveX(ctx context.Context) *AttemptSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := attemptsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AttemptSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptSessionUpdateOne) sqlSave(ctx context.Context) (_node *AttemptSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptsession.Table, attemptsession.Columns, sqlgraph.NewFieldSpec(attemptsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptsession.FieldID)
		for _, f := range fields {
			if !attemptsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptsession.FieldID {
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
		_spec.SetField(attemptsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(attemptsession.FieldSuccess, field.TypeBool, value)
	}
	if _u.mutation.SuccessCleared() {
		_spec.ClearField(attemptsession.FieldSuccess, field.TypeBool)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(attemptsession.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(attemptsession.FieldEndTime, field.TypeTime)
	}
	_node = &AttemptSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
