// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wheeltrack/ent/telemetryevent"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// TelemetryEventCreate is the builder for creating a TelemetryEvent entity.
type TelemetryEventCreate struct {
	config
	mutation *TelemetryEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TelemetryEventCreate) SetSequence(v int64) *TelemetryEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TelemetryEventCreate) SetTimestamp(v time.Time) *TelemetryEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableTimestamp(v *time.Time) *TelemetryEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *TelemetryEventCreate) SetAttemptID(v string) *TelemetryEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *TelemetryEventCreate) SetUserID(v string) *TelemetryEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *TelemetryEventCreate) SetSkillID(v string) *TelemetryEventCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetStepNumber sets the "step_number" field.
func (_c *TelemetryEventCreate) SetStepNumber(v int) *TelemetryEventCreate {
	_c.mutation.SetStepNumber(v)
	return _c
}

// SetExpectedAction sets the "expected_action" field.
func (_c *TelemetryEventCreate) SetExpectedAction(v string) *TelemetryEventCreate {
	_c.mutation.SetExpectedAction(v)
	return _c
}

// SetNillableExpectedAction sets the "expected_action" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableExpectedAction(v *string) *TelemetryEventCreate {
	if v != nil {
		_c.SetExpectedAction(*v)
	}
	return _c
}

// SetActualAction sets the "actual_action" field.
func (_c *TelemetryEventCreate) SetActualAction(v string) *TelemetryEventCreate {
	_c.mutation.SetActualAction(v)
	return _c
}

// SetNillableActualAction sets the "actual_action" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableActualAction(v *string) *TelemetryEventCreate {
	if v != nil {
		_c.SetActualAction(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *TelemetryEventCreate) SetSuccess(v bool) *TelemetryEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableSuccess(v *bool) *TelemetryEventCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetHoldDurationMs sets the "hold_duration_ms" field.
func (_c *TelemetryEventCreate) SetHoldDurationMs(v int64) *TelemetryEventCreate {
	_c.mutation.SetHoldDurationMs(v)
	return _c
}

// SetNillableHoldDurationMs sets the "hold_duration_ms" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableHoldDurationMs(v *int64) *TelemetryEventCreate {
	if v != nil {
		_c.SetHoldDurationMs(*v)
	}
	return _c
}

// SetPeakForce sets the "peak_force" field.
func (_c *TelemetryEventCreate) SetPeakForce(v float64) *TelemetryEventCreate {
	_c.mutation.SetPeakForce(v)
	return _c
}

// SetNillablePeakForce sets the "peak_force" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillablePeakForce(v *float64) *TelemetryEventCreate {
	if v != nil {
		_c.SetPeakForce(*v)
	}
	return _c
}

// SetDistanceM sets the "distance_m" field.
func (_c *TelemetryEventCreate) SetDistanceM(v float64) *TelemetryEventCreate {
	_c.mutation.SetDistanceM(v)
	return _c
}

// SetNillableDistanceM sets the "distance_m" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableDistanceM(v *float64) *TelemetryEventCreate {
	if v != nil {
		_c.SetDistanceM(*v)
	}
	return _c
}

// SetAssistUsed sets the "assist_used" field.
func (_c *TelemetryEventCreate) SetAssistUsed(v bool) *TelemetryEventCreate {
	_c.mutation.SetAssistUsed(v)
	return _c
}

// SetNillableAssistUsed sets the "assist_used" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableAssistUsed(v *bool) *TelemetryEventCreate {
	if v != nil {
		_c.SetAssistUsed(*v)
	}
	return _c
}

// Mutation returns the TelemetryEventMutation object of the builder.
func (_c *TelemetryEventCreate) Mutation() *TelemetryEventMutation {
	return _c.mutation
}

// Save creates the TelemetryEvent in the database.
func (_c *TelemetryEventCreate) Save(ctx context.Context) (*TelemetryEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TelemetryEventCreate) SaveX(ctx context.Context) *TelemetryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TelemetryEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TelemetryEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TelemetryEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := telemetryevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Success(); !ok {
		v := telemetryevent.DefaultSuccess
		_c.mutation.SetSuccess(v)
	}
	if _, ok := _c.mutation.HoldDurationMs(); !ok {
		v := telemetryevent.DefaultHoldDurationMs
		_c.mutation.SetHoldDurationMs(v)
	}
	if _, ok := _c.mutation.PeakForce(); !ok {
		v := telemetryevent.DefaultPeakForce
		_c.mutation.SetPeakForce(v)
	}
	if _, ok := _c.mutation.DistanceM(); !ok {
		v := telemetryevent.DefaultDistanceM
		_c.mutation.SetDistanceM(v)
	}
	if _, ok := _c.mutation.AssistUsed(); !ok {
		v := telemetryevent.DefaultAssistUsed
		_c.mutation.SetAssistUsed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TelemetryEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TelemetryEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TelemetryEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "TelemetryEvent.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := telemetryevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TelemetryEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := telemetryevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "TelemetryEvent.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := telemetryevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepNumber(); !ok {
		return &ValidationError{Name: "step_number", err: errors.New(`ent: missing required field "TelemetryEvent.step_number"`)}
	}
	if v, ok := _c.mutation.StepNumber(); ok {
		if err := telemetryevent.StepNumberValidator(v); err != nil {
			return &ValidationError{Name: "step_number", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.step_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "TelemetryEvent.success"`)}
	}
	if _, ok := _c.mutation.HoldDurationMs(); !ok {
		return &ValidationError{Name: "hold_duration_ms", err: errors.New(`ent: missing required field "TelemetryEvent.hold_duration_ms"`)}
	}
	if _, ok := _c.mutation.PeakForce(); !ok {
		return &ValidationError{Name: "peak_force", err: errors.New(`ent: missing required field "TelemetryEvent.peak_force"`)}
	}
	if _, ok := _c.mutation.DistanceM(); !ok {
		return &ValidationError{Name: "distance_m", err: errors.New(`ent: missing required field "TelemetryEvent.distance_m"`)}
	}
	if _, ok := _c.mutation.AssistUsed(); !ok {
		return &ValidationError{Name: "assist_used", err: errors.New(`ent: missing required field "TelemetryEvent.assist_used"`)}
	}
	return nil
}

func (_c *TelemetryEventCreate) sqlSave(ctx context.Context) (*TelemetryEvent, error) {
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

func (_c *TelemetryEventCreate) createSpec() (*TelemetryEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TelemetryEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(telemetryevent.Table, sqlgraph.NewFieldSpec(telemetryevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(telemetryevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(telemetryevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(telemetryevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(telemetryevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(telemetryevent.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.StepNumber(); ok {
		_spec.SetField(telemetryevent.FieldStepNumber, field.TypeInt, value)
		_node.StepNumber = value
	}
	if value, ok := _c.mutation.ExpectedAction(); ok {
		_spec.SetField(telemetryevent.FieldExpectedAction, field.TypeString, value)
		_node.ExpectedAction = value
	}
	if value, ok := _c.mutation.ActualAction(); ok {
		_spec.SetField(telemetryevent.FieldActualAction, field.TypeString, value)
		_node.ActualAction = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(telemetryevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.HoldDurationMs(); ok {
		_spec.SetField(telemetryevent.FieldHoldDurationMs, field.TypeInt64, value)
		_node.HoldDurationMs = value
	}
	if value, ok := _c.mutation.PeakForce(); ok {
		_spec.SetField(telemetryevent.FieldPeakForce, field.TypeFloat64, value)
		_node.PeakForce = value
	}
	if value, ok := _c.mutation.DistanceM(); ok {
		_spec.SetField(telemetryevent.FieldDistanceM, field.TypeFloat64, value)
		_node.DistanceM = value
	}
	if value, ok := _c.mutation.AssistUsed(); ok {
		_spec.SetField(telemetryevent.FieldAssistUsed, field.TypeBool, value)
		_node.AssistUsed = value
	}
	return _node, _spec
}

// TelemetryEventCreateBulk is the builder for creating many TelemetryEvent entities in bulk.
type TelemetryEventCreateBulk struct {
	config
	err      error
	builders []*TelemetryEventCreate
}

// Save creates the TelemetryEvent entities in the database.
func (_c *TelemetryEventCreateBulk) Save(ctx context.Context) ([]*TelemetryEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TelemetryEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TelemetryEventMutation)
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
func (_c *TelemetryEventCreateBulk) SaveX(ctx context.Context) []*TelemetryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TelemetryEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TelemetryEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
