// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wheeltrack/ent/errorevent"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ErrorEventCreate is the builder for creating a ErrorEvent entity.
type ErrorEventCreate struct {
	config
	mutation *ErrorEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ErrorEventCreate) SetSequence(v int64) *ErrorEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ErrorEventCreate) SetTimestamp(v time.Time) *ErrorEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ErrorEventCreate) SetNillableTimestamp(v *time.Time) *ErrorEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *ErrorEventCreate) SetAttemptID(v string) *ErrorEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ErrorEventCreate) SetUserID(v string) *ErrorEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *ErrorEventCreate) SetSkillID(v string) *ErrorEventCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetStepNumber sets the "step_number" field.
func (_c *ErrorEventCreate) SetStepNumber(v int) *ErrorEventCreate {
	_c.mutation.SetStepNumber(v)
	return _c
}

// SetErrorType sets the "error_type" field.
func (_c *ErrorEventCreate) SetErrorType(v string) *ErrorEventCreate {
	_c.mutation.SetErrorType(v)
	return _c
}

// SetExpectedAction sets the "expected_action" field.
func (_c *ErrorEventCreate) SetExpectedAction(v string) *ErrorEventCreate {
	_c.mutation.SetExpectedAction(v)
	return _c
}

// SetActualAction sets the "actual_action" field.
func (_c *ErrorEventCreate) SetActualAction(v string) *ErrorEventCreate {
	_c.mutation.SetActualAction(v)
	return _c
}

// Mutation returns the ErrorEventMutation object of the builder.
func (_c *ErrorEventCreate) Mutation() *ErrorEventMutation {
	return _c.mutation
}

// Save creates the ErrorEvent in the database.
func (_c *ErrorEventCreate) Save(ctx context.Context) (*ErrorEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ErrorEventCreate) SaveX(ctx context.Context) *ErrorEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ErrorEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ErrorEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ErrorEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := errorevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ErrorEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ErrorEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ErrorEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "ErrorEvent.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := errorevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ErrorEvent.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ErrorEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := errorevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ErrorEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "ErrorEvent.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := errorevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "ErrorEvent.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepNumber(); !ok {
		return &ValidationError{Name: "step_number", err: errors.New(`ent: missing required field "ErrorEvent.step_number"`)}
	}
	if v, ok := _c.mutation.StepNumber(); ok {
		if err := errorevent.StepNumberValidator(v); err != nil {
			return &ValidationError{Name: "step_number", err: fmt.Errorf(`ent: validator failed for field "ErrorEvent.step_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ErrorType(); !ok {
		return &ValidationError{Name: "error_type", err: errors.New(`ent: missing required field "ErrorEvent.error_type"`)}
	}
	if v, ok := _c.mutation.ErrorType(); ok {
		if err := errorevent.ErrorTypeValidator(v); err != nil {
			return &ValidationError{Name: "error_type", err: fmt.Errorf(`ent: validator failed for field "ErrorEvent.error_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpectedAction(); !ok {
		return &ValidationError{Name: "expected_action", err: errors.New(`ent: missing required field "ErrorEvent.expected_action"`)}
	}
	if _, ok := _c.mutation.ActualAction(); !ok {
		return &ValidationError{Name: "actual_action", err: errors.New(`ent: missing required field "ErrorEvent.actual_action"`)}
	}
	return nil
}

func (_c *ErrorEventCreate) sqlSave(ctx context.Context) (*ErrorEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ErrorEventCreate) createSpec() (*ErrorEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ErrorEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(errorevent.Table, sqlgraph.NewFieldSpec(errorevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(errorevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(errorevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(errorevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(errorevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(errorevent.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.StepNumber(); ok {
		_spec.SetField(errorevent.FieldStepNumber, field.TypeInt, value)
		_node.StepNumber = value
	}
	if value, ok := _c.mutation.ErrorType(); ok {
		_spec.SetField(errorevent.FieldErrorType, field.TypeString, value)
		_node.ErrorType = value
	}
	if value, ok := _c.mutation.ExpectedAction(); ok {
		_spec.SetField(errorevent.FieldExpectedAction, field.TypeString, value)
		_node.ExpectedAction = value
	}
	if value, ok := _c.mutation.ActualAction(); ok {
		_spec.SetField(errorevent.FieldActualAction, field.TypeString, value)
		_node.ActualAction = value
	}
	return _node, _spec
}

// ErrorEventCreateBulk is the builder for creating many ErrorEvent entities in bulk.
type ErrorEventCreateBulk struct {
	config
	err      error
	builders []*ErrorEventCreate
}

// Save creates the ErrorEvent entities in the database.
func (_c *ErrorEventCreateBulk) Save(ctx context.Context) ([]*ErrorEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ErrorEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ErrorEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ErrorEventCreateBulk) SaveX(ctx context.Context) []*ErrorEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ErrorEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ErrorEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
