// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wheeltrack/ent/attemptsession"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// AttemptSessionCreate is the builder for creating a AttemptSession entity.
type AttemptSessionCreate struct {
	config
	mutation *AttemptSessionMutation
	hooks    []Hook
}

// SetAttemptID sets the "attempt_id" field.
func (_c *AttemptSessionCreate) SetAttemptID(v string) *AttemptSessionCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AttemptSessionCreate) SetUserID(v string) *AttemptSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *AttemptSessionCreate) SetSkillID(v string) *AttemptSessionCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AttemptSessionCreate) SetStatus(v attemptsession.Status) *AttemptSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AttemptSessionCreate) SetNillableStatus(v *attemptsession.Status) *AttemptSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *AttemptSessionCreate) SetSuccess(v bool) *AttemptSessionCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *AttemptSessionCreate) SetNillableSuccess(v *bool) *AttemptSessionCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *AttemptSessionCreate) SetStartTime(v time.Time) *AttemptSessionCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_c *AttemptSessionCreate) SetNillableStartTime(v *time.Time) *AttemptSessionCreate {
	if v != nil {
		_c.SetStartTime(*v)
	}
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *AttemptSessionCreate) SetEndTime(v time.Time) *AttemptSessionCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *AttemptSessionCreate) SetNillableEndTime(v *time.Time) *AttemptSessionCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// Mutation returns the AttemptSessionMutation object of the builder.
func (_c *AttemptSessionCreate) Mutation() *AttemptSessionMutation {
	return _c.mutation
}

// Save creates the AttemptSession in the database.
func (_c *AttemptSessionCreate) Save(ctx context.Context) (*AttemptSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptSessionCreate) SaveX(ctx context.Context) *AttemptSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := attemptsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		v := attemptsession.DefaultStartTime()
		_c.mutation.SetStartTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptSessionCreate) check() error {
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "AttemptSession.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := attemptsession.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptSession.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AttemptSession.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := attemptsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AttemptSession.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "AttemptSession.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := attemptsession.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "AttemptSession.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AttemptSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := attemptsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AttemptSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "AttemptSession.start_time"`)}
	}
	return nil
}

func (_c *AttemptSessionCreate) sqlSave(ctx context.Context) (*AttemptSession, error) {
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

func (_c *AttemptSessionCreate) createSpec() (*AttemptSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptsession.Table, sqlgraph.NewFieldSpec(attemptsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(attemptsession.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(attemptsession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(attemptsession.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(attemptsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(attemptsession.FieldSuccess, field.TypeBool, value)
		_node.Success = &value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(attemptsession.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(attemptsession.FieldEndTime, field.TypeTime, value)
		_node.EndTime = &value
	}
	return _node, _spec
}

// AttemptSessionCreateBulk is the builder for creating many AttemptSession entities in bulk.
type AttemptSessionCreateBulk struct {
	config
	err      error
	builders []*AttemptSessionCreate
}

// Save creates the AttemptSession entities in the database.
func (_c *AttemptSessionCreateBulk) Save(ctx context.Context) ([]*AttemptSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptSessionMutation)
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
func (_c *AttemptSessionCreateBulk) SaveX(ctx context.Context) []*AttemptSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
