// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wheeltrack/ent/stepevent"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// StepEventCreate is the builder for creating a StepEvent entity.
type StepEventCreate struct {
	config
	mutation *StepEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *StepEventCreate) SetSequence(v int64) *StepEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *StepEventCreate) SetTimestamp(v time.Time) *StepEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *StepEventCreate) SetNillableTimestamp(v *time.Time) *StepEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *StepEventCreate) SetAttemptID(v string) *StepEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *StepEventCreate) SetUserID(v string) *StepEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *StepEventCreate) SetSkillID(v string) *StepEventCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetStepNumber sets the "step_number" field.
func (_c *StepEventCreate) SetStepNumber(v int) *StepEventCreate {
	_c.mutation.SetStepNumber(v)
	return _c
}

// SetExpectedInput sets the "expected_input" field.
func (_c *StepEventCreate) SetExpectedInput(v string) *StepEventCreate {
	_c.mutation.SetExpectedInput(v)
	return _c
}

// SetActualInput sets the "actual_input" field.
func (_c *StepEventCreate) SetActualInput(v string) *StepEventCreate {
	_c.mutation.SetActualInput(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *StepEventCreate) SetCorrect(v bool) *StepEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// Mutation returns the StepEventMutation object of the builder.
func (_c *StepEventCreate) Mutation() *StepEventMutation {
	return _c.mutation
}

// Save creates the StepEvent in the database.
func (_c *StepEventCreate) Save(ctx context.Context) (*StepEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepEventCreate) SaveX(ctx context.Context) *StepEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := stepevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "StepEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "StepEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "StepEvent.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := stepevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "StepEvent.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "StepEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := stepevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StepEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "StepEvent.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := stepevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "StepEvent.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepNumber(); !ok {
		return &ValidationError{Name: "step_number", err: errors.New(`ent: missing required field "StepEvent.step_number"`)}
	}
	if v, ok := _c.mutation.StepNumber(); ok {
		if err := stepevent.StepNumberValidator(v); err != nil {
			return &ValidationError{Name: "step_number", err: fmt.Errorf(`ent: validator failed for field "StepEvent.step_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpectedInput(); !ok {
		return &ValidationError{Name: "expected_input", err: errors.New(`ent: missing required field "StepEvent.expected_input"`)}
	}
	if _, ok := _c.mutation.ActualInput(); !ok {
		return &ValidationError{Name: "actual_input", err: errors.New(`ent: missing required field "StepEvent.actual_input"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "StepEvent.correct"`)}
	}
	return nil
}

func (_c *StepEventCreate) sqlSave(ctx context.Context) (*StepEvent, error) {
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

func (_c *StepEventCreate) createSpec() (*StepEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &StepEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stepevent.Table, sqlgraph.NewFieldSpec(stepevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(stepevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(stepevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(stepevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(stepevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(stepevent.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.StepNumber(); ok {
		_spec.SetField(stepevent.FieldStepNumber, field.TypeInt, value)
		_node.StepNumber = value
	}
	if value, ok := _c.mutation.ExpectedInput(); ok {
		_spec.SetField(stepevent.FieldExpectedInput, field.TypeString, value)
		_node.ExpectedInput = value
	}
	if value, ok := _c.mutation.ActualInput(); ok {
		_spec.SetField(stepevent.FieldActualInput, field.TypeString, value)
		_node.ActualInput = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(stepevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	return _node, _spec
}

// StepEventCreateBulk is the builder for creating many StepEvent entities in bulk.
type StepEventCreateBulk struct {
	config
	err      error
	builders []*StepEventCreate
}

// Save creates the StepEvent entities in the database.
func (_c *StepEventCreateBulk) Save(ctx context.Context) ([]*StepEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StepEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepEventMutation)
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
func (_c *StepEventCreateBulk) SaveX(ctx context.Context) []*StepEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
