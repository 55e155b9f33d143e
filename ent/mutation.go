// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"wheeltrack/ent/attemptsession"
	"wheeltrack/ent/errorevent"
	"wheeltrack/ent/predicate"
	"wheeltrack/ent/stepevent"
	"wheeltrack/ent/telemetryevent"
	"wheeltrack/ent/user"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttemptSession = "AttemptSession"
	TypeErrorEvent     = "ErrorEvent"
	TypeStepEvent      = "StepEvent"
	TypeTelemetryEvent = "TelemetryEvent"
	TypeUser           = "User"
)

// AttemptSessionMutation represents an operation that mutates the AttemptSession nodes in the graph.
type AttemptSessionMutation struct {
	config
	op            Op
	typ           string
	id            *int
	attempt_id    *string
	user_id       *string
	skill_id      *string
	status        *attemptsession.Status
	success       *bool
	start_time    *time.Time
	end_time      *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AttemptSession, error)
	predicates    []predicate.AttemptSession
}

var _ ent.Mutation = (*AttemptSessionMutation)(nil)

// attemptsessionOption allows management of the mutation configuration using functional options.
type attemptsessionOption func(*AttemptSessionMutation)

// newAttemptSessionMutation creates new mutation for the AttemptSession entity.
func newAttemptSessionMutation(c config, op Op, opts ...attemptsessionOption) *AttemptSessionMutation {
	m := &AttemptSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAttemptSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptSessionID sets the ID field of the mutation.
func withAttemptSessionID(id int) attemptsessionOption {
	return func(m *AttemptSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AttemptSession
		)
		m.oldValue = func(ctx context.Context) (*AttemptSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AttemptSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttemptSession sets the old AttemptSession of the mutation.
func withAttemptSession(node *AttemptSession) attemptsessionOption {
	return func(m *AttemptSessionMutation) {
		m.oldValue = func(context.Context) (*AttemptSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AttemptSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAttemptID sets the "attempt_id" field.
func (m *AttemptSessionMutation) SetAttemptID(s string) {
	m.attempt_id = &s
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *AttemptSessionMutation) AttemptID() (r string, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the AttemptSession entity.
// If the AttemptSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptSessionMutation) OldAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *AttemptSessionMutation) ResetAttemptID() {
	m.attempt_id = nil
}

// SetUserID sets the "user_id" field.
func (m *AttemptSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AttemptSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AttemptSession entity.
// If the AttemptSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AttemptSessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetSkillID sets the "skill_id" field.
func (m *AttemptSessionMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *AttemptSessionMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the AttemptSession entity.
// If the AttemptSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptSessionMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *AttemptSessionMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetStatus sets the "status" field.
func (m *AttemptSessionMutation) SetStatus(a attemptsession.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AttemptSessionMutation) Status() (r attemptsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AttemptSession entity.
// If the AttemptSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptSessionMutation) OldStatus(ctx context.Context) (v attemptsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AttemptSessionMutation) ResetStatus() {
	m.status = nil
}

// SetSuccess sets the "success" field.
func (m *AttemptSessionMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *AttemptSessionMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the AttemptSession entity.
// If the AttemptSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptSessionMutation) OldSuccess(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ClearSuccess clears the value of the "success" field.
func (m *AttemptSessionMutation) ClearSuccess() {
	m.success = nil
	m.clearedFields[attemptsession.FieldSuccess] = struct{}{}
}

// SuccessCleared returns if the "success" field was cleared in this mutation.
func (m *AttemptSessionMutation) SuccessCleared() bool {
	_, ok := m.clearedFields[attemptsession.FieldSuccess]
	return ok
}

// ResetSuccess resets all changes to the "success" field.
func (m *AttemptSessionMutation) ResetSuccess() {
	m.success = nil
	delete(m.clearedFields, attemptsession.FieldSuccess)
}

// SetStartTime sets the "start_time" field.
func (m *AttemptSessionMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *AttemptSessionMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the AttemptSession entity.
// If the AttemptSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptSessionMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *AttemptSessionMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *AttemptSessionMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *AttemptSessionMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the AttemptSession entity.
// If the AttemptSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptSessionMutation) OldEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ClearEndTime clears the value of the "end_time" field.
func (m *AttemptSessionMutation) ClearEndTime() {
	m.end_time = nil
	m.clearedFields[attemptsession.FieldEndTime] = struct{}{}
}

// EndTimeCleared returns if the "end_time" field was cleared in this mutation.
func (m *AttemptSessionMutation) EndTimeCleared() bool {
	_, ok := m.clearedFields[attemptsession.FieldEndTime]
	return ok
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *AttemptSessionMutation) ResetEndTime() {
	m.end_time = nil
	delete(m.clearedFields, attemptsession.FieldEndTime)
}

// Where appends a list predicates to the AttemptSessionMutation builder.
func (m *AttemptSessionMutation) Where(ps ...predicate.AttemptSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AttemptSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AttemptSession).
func (m *AttemptSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptSessionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.attempt_id != nil {
		fields = append(fields, attemptsession.FieldAttemptID)
	}
	if m.user_id != nil {
		fields = append(fields, attemptsession.FieldUserID)
	}
	if m.skill_id != nil {
		fields = append(fields, attemptsession.FieldSkillID)
	}
	if m.status != nil {
		fields = append(fields, attemptsession.FieldStatus)
	}
	if m.success != nil {
		fields = append(fields, attemptsession.FieldSuccess)
	}
	if m.start_time != nil {
		fields = append(fields, attemptsession.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, attemptsession.FieldEndTime)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attemptsession.FieldAttemptID:
		return m.AttemptID()
	case attemptsession.FieldUserID:
		return m.UserID()
	case attemptsession.FieldSkillID:
		return m.SkillID()
	case attemptsession.FieldStatus:
		return m.Status()
	case attemptsession.FieldSuccess:
		return m.Success()
	case attemptsession.FieldStartTime:
		return m.StartTime()
	case attemptsession.FieldEndTime:
		return m.EndTime()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attemptsession.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case attemptsession.FieldUserID:
		return m.OldUserID(ctx)
	case attemptsession.FieldSkillID:
		return m.OldSkillID(ctx)
	case attemptsession.FieldStatus:
		return m.OldStatus(ctx)
	case attemptsession.FieldSuccess:
		return m.OldSuccess(ctx)
	case attemptsession.FieldStartTime:
		return m.OldStartTime(ctx)
	case attemptsession.FieldEndTime:
		return m.OldEndTime(ctx)
	}
	return nil, fmt.Errorf("unknown AttemptSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attemptsession.FieldAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case attemptsession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case attemptsession.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case attemptsession.FieldStatus:
		v, ok := value.(attemptsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case attemptsession.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case attemptsession.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case attemptsession.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AttemptSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attemptsession.FieldSuccess) {
		fields = append(fields, attemptsession.FieldSuccess)
	}
	if m.FieldCleared(attemptsession.FieldEndTime) {
		fields = append(fields, attemptsession.FieldEndTime)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptSessionMutation) ClearField(name string) error {
	switch name {
	case attemptsession.FieldSuccess:
		m.ClearSuccess()
		return nil
	case attemptsession.FieldEndTime:
		m.ClearEndTime()
		return nil
	}
	return fmt.Errorf("unknown AttemptSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptSessionMutation) ResetField(name string) error {
	switch name {
	case attemptsession.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case attemptsession.FieldUserID:
		m.ResetUserID()
		return nil
	case attemptsession.FieldSkillID:
		m.ResetSkillID()
		return nil
	case attemptsession.FieldStatus:
		m.ResetStatus()
		return nil
	case attemptsession.FieldSuccess:
		m.ResetSuccess()
		return nil
	case attemptsession.FieldStartTime:
		m.ResetStartTime()
		return nil
	case attemptsession.FieldEndTime:
		m.ResetEndTime()
		return nil
	}
	return fmt.Errorf("unknown AttemptSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AttemptSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AttemptSession edge %s", name)
}

// ErrorEventMutation represents an operation that mutates the ErrorEvent nodes in the graph.
type ErrorEventMutation struct {
	config
	op              Op
	typ             string
	id              *int
	sequence        *int64
	addsequence     *int64
	timestamp       *time.Time
	attempt_id      *string
	user_id         *string
	skill_id        *string
	step_number     *int
	addstep_number  *int
	error_type      *string
	expected_action *string
	actual_action   *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ErrorEvent, error)
	predicates      []predicate.ErrorEvent
}

var _ ent.Mutation = (*ErrorEventMutation)(nil)

// erroreventOption allows management of the mutation configuration using functional options.
type erroreventOption func(*ErrorEventMutation)

// newErrorEventMutation creates new mutation for the ErrorEvent entity.
func newErrorEventMutation(c config, op Op, opts ...erroreventOption) *ErrorEventMutation {
	m := &ErrorEventMutation{
		config:        c,
		op:            op,
		typ:           TypeErrorEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withErrorEventID sets the ID field of the mutation.
func withErrorEventID(id int) erroreventOption {
	return func(m *ErrorEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ErrorEvent
		)
		m.oldValue = func(ctx context.Context) (*ErrorEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ErrorEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withErrorEvent sets the old ErrorEvent of the mutation.
func withErrorEvent(node *ErrorEvent) erroreventOption {
	return func(m *ErrorEventMutation) {
		m.oldValue = func(context.Context) (*ErrorEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ErrorEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ErrorEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ErrorEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ErrorEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ErrorEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ErrorEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ErrorEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ErrorEvent entity.
// If the ErrorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ErrorEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ErrorEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ErrorEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ErrorEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ErrorEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ErrorEvent entity.
// If the ErrorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ErrorEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAttemptID sets the "attempt_id" field.
func (m *ErrorEventMutation) SetAttemptID(s string) {
	m.attempt_id = &s
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *ErrorEventMutation) AttemptID() (r string, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the ErrorEvent entity.
// If the ErrorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorEventMutation) OldAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *ErrorEventMutation) ResetAttemptID() {
	m.attempt_id = nil
}

// SetUserID sets the "user_id" field.
func (m *ErrorEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ErrorEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ErrorEvent entity.
// If the ErrorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ErrorEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetSkillID sets the "skill_id" field.
func (m *ErrorEventMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *ErrorEventMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the ErrorEvent entity.
// If the ErrorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorEventMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *ErrorEventMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetStepNumber sets the "step_number" field.
func (m *ErrorEventMutation) SetStepNumber(i int) {
	m.step_number = &i
	m.addstep_number = nil
}

// StepNumber returns the value of the "step_number" field in the mutation.
func (m *ErrorEventMutation) StepNumber() (r int, exists bool) {
	v := m.step_number
	if v == nil {
		return
	}
	return *v, true
}

// OldStepNumber returns the old "step_number" field's value of the ErrorEvent entity.
// If the ErrorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorEventMutation) OldStepNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepNumber: %w", err)
	}
	return oldValue.StepNumber, nil
}

// AddStepNumber adds i to the "step_number" field.
func (m *ErrorEventMutation) AddStepNumber(i int) {
	if m.addstep_number != nil {
		*m.addstep_number += i
	} else {
		m.addstep_number = &i
	}
}

// AddedStepNumber returns the value that was added to the "step_number" field in this mutation.
func (m *ErrorEventMutation) AddedStepNumber() (r int, exists bool) {
	v := m.addstep_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepNumber resets all changes to the "step_number" field.
func (m *ErrorEventMutation) ResetStepNumber() {
	m.step_number = nil
	m.addstep_number = nil
}

// SetErrorType sets the "error_type" field.
func (m *ErrorEventMutation) SetErrorType(s string) {
	m.error_type = &s
}

// ErrorType returns the value of the "error_type" field in the mutation.
func (m *ErrorEventMutation) ErrorType() (r string, exists bool) {
	v := m.error_type
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorType returns the old "error_type" field's value of the ErrorEvent entity.
// If the ErrorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorEventMutation) OldErrorType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorType: %w", err)
	}
	return oldValue.ErrorType, nil
}

// ResetErrorType resets all changes to the "error_type" field.
func (m *ErrorEventMutation) ResetErrorType() {
	m.error_type = nil
}

// SetExpectedAction sets the "expected_action" field.
func (m *ErrorEventMutation) SetExpectedAction(s string) {
	m.expected_action = &s
}

// ExpectedAction returns the value of the "expected_action" field in the mutation.
func (m *ErrorEventMutation) ExpectedAction() (r string, exists bool) {
	v := m.expected_action
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedAction returns the old "expected_action" field's value of the ErrorEvent entity.
// If the ErrorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorEventMutation) OldExpectedAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedAction: %w", err)
	}
	return oldValue.ExpectedAction, nil
}

// ResetExpectedAction resets all changes to the "expected_action" field.
func (m *ErrorEventMutation) ResetExpectedAction() {
	m.expected_action = nil
}

// SetActualAction sets the "actual_action" field.
func (m *ErrorEventMutation) SetActualAction(s string) {
	m.actual_action = &s
}

// ActualAction returns the value of the "actual_action" field in the mutation.
func (m *ErrorEventMutation) ActualAction() (r string, exists bool) {
	v := m.actual_action
	if v == nil {
		return
	}
	return *v, true
}

// OldActualAction returns the old "actual_action" field's value of the ErrorEvent entity.
// If the ErrorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ErrorEventMutation) OldActualAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualAction: %w", err)
	}
	return oldValue.ActualAction, nil
}

// ResetActualAction resets all changes to the "actual_action" field.
func (m *ErrorEventMutation) ResetActualAction() {
	m.actual_action = nil
}

// Where appends a list predicates to the ErrorEventMutation builder.
func (m *ErrorEventMutation) Where(ps ...predicate.ErrorEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ErrorEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ErrorEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ErrorEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ErrorEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ErrorEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ErrorEvent).
func (m *ErrorEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ErrorEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, errorevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, errorevent.FieldTimestamp)
	}
	if m.attempt_id != nil {
		fields = append(fields, errorevent.FieldAttemptID)
	}
	if m.user_id != nil {
		fields = append(fields, errorevent.FieldUserID)
	}
	if m.skill_id != nil {
		fields = append(fields, errorevent.FieldSkillID)
	}
	if m.step_number != nil {
		fields = append(fields, errorevent.FieldStepNumber)
	}
	if m.error_type != nil {
		fields = append(fields, errorevent.FieldErrorType)
	}
	if m.expected_action != nil {
		fields = append(fields, errorevent.FieldExpectedAction)
	}
	if m.actual_action != nil {
		fields = append(fields, errorevent.FieldActualAction)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ErrorEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case errorevent.FieldSequence:
		return m.Sequence()
	case errorevent.FieldTimestamp:
		return m.Timestamp()
	case errorevent.FieldAttemptID:
		return m.AttemptID()
	case errorevent.FieldUserID:
		return m.UserID()
	case errorevent.FieldSkillID:
		return m.SkillID()
	case errorevent.FieldStepNumber:
		return m.StepNumber()
	case errorevent.FieldErrorType:
		return m.ErrorType()
	case errorevent.FieldExpectedAction:
		return m.ExpectedAction()
	case errorevent.FieldActualAction:
		return m.ActualAction()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ErrorEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case errorevent.FieldSequence:
		return m.OldSequence(ctx)
	case errorevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case errorevent.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case errorevent.FieldUserID:
		return m.OldUserID(ctx)
	case errorevent.FieldSkillID:
		return m.OldSkillID(ctx)
	case errorevent.FieldStepNumber:
		return m.OldStepNumber(ctx)
	case errorevent.FieldErrorType:
		return m.OldErrorType(ctx)
	case errorevent.FieldExpectedAction:
		return m.OldExpectedAction(ctx)
	case errorevent.FieldActualAction:
		return m.OldActualAction(ctx)
	}
	return nil, fmt.Errorf("unknown ErrorEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ErrorEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case errorevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case errorevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case errorevent.FieldAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case errorevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case errorevent.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case errorevent.FieldStepNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepNumber(v)
		return nil
	case errorevent.FieldErrorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorType(v)
		return nil
	case errorevent.FieldExpectedAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedAction(v)
		return nil
	case errorevent.FieldActualAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualAction(v)
		return nil
	}
	return fmt.Errorf("unknown ErrorEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ErrorEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, errorevent.FieldSequence)
	}
	if m.addstep_number != nil {
		fields = append(fields, errorevent.FieldStepNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ErrorEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case errorevent.FieldSequence:
		return m.AddedSequence()
	case errorevent.FieldStepNumber:
		return m.AddedStepNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ErrorEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case errorevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case errorevent.FieldStepNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepNumber(v)
		return nil
	}
	return fmt.Errorf("unknown ErrorEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ErrorEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ErrorEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ErrorEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ErrorEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ErrorEventMutation) ResetField(name string) error {
	switch name {
	case errorevent.FieldSequence:
		m.ResetSequence()
		return nil
	case errorevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case errorevent.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case errorevent.FieldUserID:
		m.ResetUserID()
		return nil
	case errorevent.FieldSkillID:
		m.ResetSkillID()
		return nil
	case errorevent.FieldStepNumber:
		m.ResetStepNumber()
		return nil
	case errorevent.FieldErrorType:
		m.ResetErrorType()
		return nil
	case errorevent.FieldExpectedAction:
		m.ResetExpectedAction()
		return nil
	case errorevent.FieldActualAction:
		m.ResetActualAction()
		return nil
	}
	return fmt.Errorf("unknown ErrorEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ErrorEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ErrorEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ErrorEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ErrorEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ErrorEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ErrorEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ErrorEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ErrorEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ErrorEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ErrorEvent edge %s", name)
}

// StepEventMutation represents an operation that mutates the StepEvent nodes in the graph.
type StepEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	sequence       *int64
	addsequence    *int64
	timestamp      *time.Time
	attempt_id     *string
	user_id        *string
	skill_id       *string
	step_number    *int
	addstep_number *int
	expected_input *string
	actual_input   *string
	correct        *bool
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*StepEvent, error)
	predicates     []predicate.StepEvent
}

var _ ent.Mutation = (*StepEventMutation)(nil)

// stepeventOption allows management of the mutation configuration using functional options.
type stepeventOption func(*StepEventMutation)

// newStepEventMutation creates new mutation for the StepEvent entity.
func newStepEventMutation(c config, op Op, opts ...stepeventOption) *StepEventMutation {
	m := &StepEventMutation{
		config:        c,
		op:            op,
		typ:           TypeStepEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepEventID sets the ID field of the mutation.
func withStepEventID(id int) stepeventOption {
	return func(m *StepEventMutation) {
		var (
			err   error
			once  sync.Once
			value *StepEvent
		)
		m.oldValue = func(ctx context.Context) (*StepEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StepEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStepEvent sets the old StepEvent of the mutation.
func withStepEvent(node *StepEvent) stepeventOption {
	return func(m *StepEventMutation) {
		m.oldValue = func(context.Context) (*StepEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StepEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *StepEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *StepEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *StepEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *StepEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *StepEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *StepEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *StepEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *StepEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAttemptID sets the "attempt_id" field.
func (m *StepEventMutation) SetAttemptID(s string) {
	m.attempt_id = &s
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *StepEventMutation) AttemptID() (r string, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *StepEventMutation) ResetAttemptID() {
	m.attempt_id = nil
}

// SetUserID sets the "user_id" field.
func (m *StepEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *StepEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *StepEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetSkillID sets the "skill_id" field.
func (m *StepEventMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *StepEventMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *StepEventMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetStepNumber sets the "step_number" field.
func (m *StepEventMutation) SetStepNumber(i int) {
	m.step_number = &i
	m.addstep_number = nil
}

// StepNumber returns the value of the "step_number" field in the mutation.
func (m *StepEventMutation) StepNumber() (r int, exists bool) {
	v := m.step_number
	if v == nil {
		return
	}
	return *v, true
}

// OldStepNumber returns the old "step_number" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldStepNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepNumber: %w", err)
	}
	return oldValue.StepNumber, nil
}

// AddStepNumber adds i to the "step_number" field.
func (m *StepEventMutation) AddStepNumber(i int) {
	if m.addstep_number != nil {
		*m.addstep_number += i
	} else {
		m.addstep_number = &i
	}
}

// AddedStepNumber returns the value that was added to the "step_number" field in this mutation.
func (m *StepEventMutation) AddedStepNumber() (r int, exists bool) {
	v := m.addstep_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepNumber resets all changes to the "step_number" field.
func (m *StepEventMutation) ResetStepNumber() {
	m.step_number = nil
	m.addstep_number = nil
}

// SetExpectedInput sets the "expected_input" field.
func (m *StepEventMutation) SetExpectedInput(s string) {
	m.expected_input = &s
}

// ExpectedInput returns the value of the "expected_input" field in the mutation.
func (m *StepEventMutation) ExpectedInput() (r string, exists bool) {
	v := m.expected_input
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedInput returns the old "expected_input" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldExpectedInput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedInput: %w", err)
	}
	return oldValue.ExpectedInput, nil
}

// ResetExpectedInput resets all changes to the "expected_input" field.
func (m *StepEventMutation) ResetExpectedInput() {
	m.expected_input = nil
}

// SetActualInput sets the "actual_input" field.
func (m *StepEventMutation) SetActualInput(s string) {
	m.actual_input = &s
}

// ActualInput returns the value of the "actual_input" field in the mutation.
func (m *StepEventMutation) ActualInput() (r string, exists bool) {
	v := m.actual_input
	if v == nil {
		return
	}
	return *v, true
}

// OldActualInput returns the old "actual_input" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldActualInput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualInput: %w", err)
	}
	return oldValue.ActualInput, nil
}

// ResetActualInput resets all changes to the "actual_input" field.
func (m *StepEventMutation) ResetActualInput() {
	m.actual_input = nil
}

// SetCorrect sets the "correct" field.
func (m *StepEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *StepEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the StepEvent entity.
// If the StepEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *StepEventMutation) ResetCorrect() {
	m.correct = nil
}

// Where appends a list predicates to the StepEventMutation builder.
func (m *StepEventMutation) Where(ps ...predicate.StepEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StepEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StepEvent).
func (m *StepEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, stepevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, stepevent.FieldTimestamp)
	}
	if m.attempt_id != nil {
		fields = append(fields, stepevent.FieldAttemptID)
	}
	if m.user_id != nil {
		fields = append(fields, stepevent.FieldUserID)
	}
	if m.skill_id != nil {
		fields = append(fields, stepevent.FieldSkillID)
	}
	if m.step_number != nil {
		fields = append(fields, stepevent.FieldStepNumber)
	}
	if m.expected_input != nil {
		fields = append(fields, stepevent.FieldExpectedInput)
	}
	if m.actual_input != nil {
		fields = append(fields, stepevent.FieldActualInput)
	}
	if m.correct != nil {
		fields = append(fields, stepevent.FieldCorrect)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stepevent.FieldSequence:
		return m.Sequence()
	case stepevent.FieldTimestamp:
		return m.Timestamp()
	case stepevent.FieldAttemptID:
		return m.AttemptID()
	case stepevent.FieldUserID:
		return m.UserID()
	case stepevent.FieldSkillID:
		return m.SkillID()
	case stepevent.FieldStepNumber:
		return m.StepNumber()
	case stepevent.FieldExpectedInput:
		return m.ExpectedInput()
	case stepevent.FieldActualInput:
		return m.ActualInput()
	case stepevent.FieldCorrect:
		return m.Correct()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stepevent.FieldSequence:
		return m.OldSequence(ctx)
	case stepevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case stepevent.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case stepevent.FieldUserID:
		return m.OldUserID(ctx)
	case stepevent.FieldSkillID:
		return m.OldSkillID(ctx)
	case stepevent.FieldStepNumber:
		return m.OldStepNumber(ctx)
	case stepevent.FieldExpectedInput:
		return m.OldExpectedInput(ctx)
	case stepevent.FieldActualInput:
		return m.OldActualInput(ctx)
	case stepevent.FieldCorrect:
		return m.OldCorrect(ctx)
	}
	return nil, fmt.Errorf("unknown StepEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stepevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case stepevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case stepevent.FieldAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case stepevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case stepevent.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case stepevent.FieldStepNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepNumber(v)
		return nil
	case stepevent.FieldExpectedInput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedInput(v)
		return nil
	case stepevent.FieldActualInput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualInput(v)
		return nil
	case stepevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	}
	return fmt.Errorf("unknown StepEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, stepevent.FieldSequence)
	}
	if m.addstep_number != nil {
		fields = append(fields, stepevent.FieldStepNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stepevent.FieldSequence:
		return m.AddedSequence()
	case stepevent.FieldStepNumber:
		return m.AddedStepNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stepevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case stepevent.FieldStepNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepNumber(v)
		return nil
	}
	return fmt.Errorf("unknown StepEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StepEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepEventMutation) ResetField(name string) error {
	switch name {
	case stepevent.FieldSequence:
		m.ResetSequence()
		return nil
	case stepevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case stepevent.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case stepevent.FieldUserID:
		m.ResetUserID()
		return nil
	case stepevent.FieldSkillID:
		m.ResetSkillID()
		return nil
	case stepevent.FieldStepNumber:
		m.ResetStepNumber()
		return nil
	case stepevent.FieldExpectedInput:
		m.ResetExpectedInput()
		return nil
	case stepevent.FieldActualInput:
		m.ResetActualInput()
		return nil
	case stepevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	}
	return fmt.Errorf("unknown StepEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StepEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StepEvent edge %s", name)
}

// TelemetryEventMutation represents an operation that mutates the TelemetryEvent nodes in the graph.
type TelemetryEventMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	sequence            *int64
	addsequence         *int64
	timestamp           *time.Time
	attempt_id          *string
	user_id             *string
	skill_id            *string
	step_number         *int
	addstep_number      *int
	expected_action     *string
	actual_action       *string
	success             *bool
	hold_duration_ms    *int64
	addhold_duration_ms *int64
	peak_force          *float64
	addpeak_force       *float64
	distance_m          *float64
	adddistance_m       *float64
	assist_used         *bool
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*TelemetryEvent, error)
	predicates          []predicate.TelemetryEvent
}

var _ ent.Mutation = (*TelemetryEventMutation)(nil)

// telemetryeventOption allows management of the mutation configuration using functional options.
type telemetryeventOption func(*TelemetryEventMutation)

// newTelemetryEventMutation creates new mutation for the TelemetryEvent entity.
func newTelemetryEventMutation(c config, op Op, opts ...telemetryeventOption) *TelemetryEventMutation {
	m := &TelemetryEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTelemetryEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTelemetryEventID sets the ID field of the mutation.
func withTelemetryEventID(id int) telemetryeventOption {
	return func(m *TelemetryEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TelemetryEvent
		)
		m.oldValue = func(ctx context.Context) (*TelemetryEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TelemetryEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTelemetryEvent sets the old TelemetryEvent of the mutation.
func withTelemetryEvent(node *TelemetryEvent) telemetryeventOption {
	return func(m *TelemetryEventMutation) {
		m.oldValue = func(context.Context) (*TelemetryEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TelemetryEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TelemetryEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TelemetryEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TelemetryEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TelemetryEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *TelemetryEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *TelemetryEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *TelemetryEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *TelemetryEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *TelemetryEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *TelemetryEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *TelemetryEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *TelemetryEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAttemptID sets the "attempt_id" field.
func (m *TelemetryEventMutation) SetAttemptID(s string) {
	m.attempt_id = &s
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *TelemetryEventMutation) AttemptID() (r string, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *TelemetryEventMutation) ResetAttemptID() {
	m.attempt_id = nil
}

// SetUserID sets the "user_id" field.
func (m *TelemetryEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TelemetryEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TelemetryEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetSkillID sets the "skill_id" field.
func (m *TelemetryEventMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *TelemetryEventMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *TelemetryEventMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetStepNumber sets the "step_number" field.
func (m *TelemetryEventMutation) SetStepNumber(i int) {
	m.step_number = &i
	m.addstep_number = nil
}

// StepNumber returns the value of the "step_number" field in the mutation.
func (m *TelemetryEventMutation) StepNumber() (r int, exists bool) {
	v := m.step_number
	if v == nil {
		return
	}
	return *v, true
}

// OldStepNumber returns the old "step_number" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldStepNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepNumber: %w", err)
	}
	return oldValue.StepNumber, nil
}

// AddStepNumber adds i to the "step_number" field.
func (m *TelemetryEventMutation) AddStepNumber(i int) {
	if m.addstep_number != nil {
		*m.addstep_number += i
	} else {
		m.addstep_number = &i
	}
}

// AddedStepNumber returns the value that was added to the "step_number" field in this mutation.
func (m *TelemetryEventMutation) AddedStepNumber() (r int, exists bool) {
	v := m.addstep_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepNumber resets all changes to the "step_number" field.
func (m *TelemetryEventMutation) ResetStepNumber() {
	m.step_number = nil
	m.addstep_number = nil
}

// SetExpectedAction sets the "expected_action" field.
func (m *TelemetryEventMutation) SetExpectedAction(s string) {
	m.expected_action = &s
}

// ExpectedAction returns the value of the "expected_action" field in the mutation.
func (m *TelemetryEventMutation) ExpectedAction() (r string, exists bool) {
	v := m.expected_action
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedAction returns the old "expected_action" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldExpectedAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedAction: %w", err)
	}
	return oldValue.ExpectedAction, nil
}

// ClearExpectedAction clears the value of the "expected_action" field.
func (m *TelemetryEventMutation) ClearExpectedAction() {
	m.expected_action = nil
	m.clearedFields[telemetryevent.FieldExpectedAction] = struct{}{}
}

// ExpectedActionCleared returns if the "expected_action" field was cleared in this mutation.
func (m *TelemetryEventMutation) ExpectedActionCleared() bool {
	_, ok := m.clearedFields[telemetryevent.FieldExpectedAction]
	return ok
}

// ResetExpectedAction resets all changes to the "expected_action" field.
func (m *TelemetryEventMutation) ResetExpectedAction() {
	m.expected_action = nil
	delete(m.clearedFields, telemetryevent.FieldExpectedAction)
}

// SetActualAction sets the "actual_action" field.
func (m *TelemetryEventMutation) SetActualAction(s string) {
	m.actual_action = &s
}

// ActualAction returns the value of the "actual_action" field in the mutation.
func (m *TelemetryEventMutation) ActualAction() (r string, exists bool) {
	v := m.actual_action
	if v == nil {
		return
	}
	return *v, true
}

// OldActualAction returns the old "actual_action" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldActualAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualAction: %w", err)
	}
	return oldValue.ActualAction, nil
}

// ClearActualAction clears the value of the "actual_action" field.
func (m *TelemetryEventMutation) ClearActualAction() {
	m.actual_action = nil
	m.clearedFields[telemetryevent.FieldActualAction] = struct{}{}
}

// ActualActionCleared returns if the "actual_action" field was cleared in this mutation.
func (m *TelemetryEventMutation) ActualActionCleared() bool {
	_, ok := m.clearedFields[telemetryevent.FieldActualAction]
	return ok
}

// ResetActualAction resets all changes to the "actual_action" field.
func (m *TelemetryEventMutation) ResetActualAction() {
	m.actual_action = nil
	delete(m.clearedFields, telemetryevent.FieldActualAction)
}

// SetSuccess sets the "success" field.
func (m *TelemetryEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *TelemetryEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *TelemetryEventMutation) ResetSuccess() {
	m.success = nil
}

// SetHoldDurationMs sets the "hold_duration_ms" field.
func (m *TelemetryEventMutation) SetHoldDurationMs(i int64) {
	m.hold_duration_ms = &i
	m.addhold_duration_ms = nil
}

// HoldDurationMs returns the value of the "hold_duration_ms" field in the mutation.
func (m *TelemetryEventMutation) HoldDurationMs() (r int64, exists bool) {
	v := m.hold_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldHoldDurationMs returns the old "hold_duration_ms" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldHoldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHoldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHoldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHoldDurationMs: %w", err)
	}
	return oldValue.HoldDurationMs, nil
}

// AddHoldDurationMs adds i to the "hold_duration_ms" field.
func (m *TelemetryEventMutation) AddHoldDurationMs(i int64) {
	if m.addhold_duration_ms != nil {
		*m.addhold_duration_ms += i
	} else {
		m.addhold_duration_ms = &i
	}
}

// AddedHoldDurationMs returns the value that was added to the "hold_duration_ms" field in this mutation.
func (m *TelemetryEventMutation) AddedHoldDurationMs() (r int64, exists bool) {
	v := m.addhold_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetHoldDurationMs resets all changes to the "hold_duration_ms" field.
func (m *TelemetryEventMutation) ResetHoldDurationMs() {
	m.hold_duration_ms = nil
	m.addhold_duration_ms = nil
}

// SetPeakForce sets the "peak_force" field.
func (m *TelemetryEventMutation) SetPeakForce(f float64) {
	m.peak_force = &f
	m.addpeak_force = nil
}

// PeakForce returns the value of the "peak_force" field in the mutation.
func (m *TelemetryEventMutation) PeakForce() (r float64, exists bool) {
	v := m.peak_force
	if v == nil {
		return
	}
	return *v, true
}

// OldPeakForce returns the old "peak_force" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldPeakForce(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeakForce is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeakForce requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeakForce: %w", err)
	}
	return oldValue.PeakForce, nil
}

// AddPeakForce adds f to the "peak_force" field.
func (m *TelemetryEventMutation) AddPeakForce(f float64) {
	if m.addpeak_force != nil {
		*m.addpeak_force += f
	} else {
		m.addpeak_force = &f
	}
}

// AddedPeakForce returns the value that was added to the "peak_force" field in this mutation.
func (m *TelemetryEventMutation) AddedPeakForce() (r float64, exists bool) {
	v := m.addpeak_force
	if v == nil {
		return
	}
	return *v, true
}

// ResetPeakForce resets all changes to the "peak_force" field.
func (m *TelemetryEventMutation) ResetPeakForce() {
	m.peak_force = nil
	m.addpeak_force = nil
}

// SetDistanceM sets the "distance_m" field.
func (m *TelemetryEventMutation) SetDistanceM(f float64) {
	m.distance_m = &f
	m.adddistance_m = nil
}

// DistanceM returns the value of the "distance_m" field in the mutation.
func (m *TelemetryEventMutation) DistanceM() (r float64, exists bool) {
	v := m.distance_m
	if v == nil {
		return
	}
	return *v, true
}

// OldDistanceM returns the old "distance_m" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldDistanceM(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistanceM is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistanceM requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistanceM: %w", err)
	}
	return oldValue.DistanceM, nil
}

// AddDistanceM adds f to the "distance_m" field.
func (m *TelemetryEventMutation) AddDistanceM(f float64) {
	if m.adddistance_m != nil {
		*m.adddistance_m += f
	} else {
		m.adddistance_m = &f
	}
}

// AddedDistanceM returns the value that was added to the "distance_m" field in this mutation.
func (m *TelemetryEventMutation) AddedDistanceM() (r float64, exists bool) {
	v := m.adddistance_m
	if v == nil {
		return
	}
	return *v, true
}

// ResetDistanceM resets all changes to the "distance_m" field.
func (m *TelemetryEventMutation) ResetDistanceM() {
	m.distance_m = nil
	m.adddistance_m = nil
}

// SetAssistUsed sets the "assist_used" field.
func (m *TelemetryEventMutation) SetAssistUsed(b bool) {
	m.assist_used = &b
}

// AssistUsed returns the value of the "assist_used" field in the mutation.
func (m *TelemetryEventMutation) AssistUsed() (r bool, exists bool) {
	v := m.assist_used
	if v == nil {
		return
	}
	return *v, true
}

// OldAssistUsed returns the old "assist_used" field's value of the TelemetryEvent entity.
// If the TelemetryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TelemetryEventMutation) OldAssistUsed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssistUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssistUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssistUsed: %w", err)
	}
	return oldValue.AssistUsed, nil
}

// ResetAssistUsed resets all changes to the "assist_used" field.
func (m *TelemetryEventMutation) ResetAssistUsed() {
	m.assist_used = nil
}

// Where appends a list predicates to the TelemetryEventMutation builder.
func (m *TelemetryEventMutation) Where(ps ...predicate.TelemetryEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TelemetryEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TelemetryEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TelemetryEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TelemetryEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TelemetryEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TelemetryEvent).
func (m *TelemetryEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TelemetryEventMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.sequence != nil {
		fields = append(fields, telemetryevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, telemetryevent.FieldTimestamp)
	}
	if m.attempt_id != nil {
		fields = append(fields, telemetryevent.FieldAttemptID)
	}
	if m.user_id != nil {
		fields = append(fields, telemetryevent.FieldUserID)
	}
	if m.skill_id != nil {
		fields = append(fields, telemetryevent.FieldSkillID)
	}
	if m.step_number != nil {
		fields = append(fields, telemetryevent.FieldStepNumber)
	}
	if m.expected_action != nil {
		fields = append(fields, telemetryevent.FieldExpectedAction)
	}
	if m.actual_action != nil {
		fields = append(fields, telemetryevent.FieldActualAction)
	}
	if m.success != nil {
		fields = append(fields, telemetryevent.FieldSuccess)
	}
	if m.hold_duration_ms != nil {
		fields = append(fields, telemetryevent.FieldHoldDurationMs)
	}
	if m.peak_force != nil {
		fields = append(fields, telemetryevent.FieldPeakForce)
	}
	if m.distance_m != nil {
		fields = append(fields, telemetryevent.FieldDistanceM)
	}
	if m.assist_used != nil {
		fields = append(fields, telemetryevent.FieldAssistUsed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TelemetryEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case telemetryevent.FieldSequence:
		return m.Sequence()
	case telemetryevent.FieldTimestamp:
		return m.Timestamp()
	case telemetryevent.FieldAttemptID:
		return m.AttemptID()
	case telemetryevent.FieldUserID:
		return m.UserID()
	case telemetryevent.FieldSkillID:
		return m.SkillID()
	case telemetryevent.FieldStepNumber:
		return m.StepNumber()
	case telemetryevent.FieldExpectedAction:
		return m.ExpectedAction()
	case telemetryevent.FieldActualAction:
		return m.ActualAction()
	case telemetryevent.FieldSuccess:
		return m.Success()
	case telemetryevent.FieldHoldDurationMs:
		return m.HoldDurationMs()
	case telemetryevent.FieldPeakForce:
		return m.PeakForce()
	case telemetryevent.FieldDistanceM:
		return m.DistanceM()
	case telemetryevent.FieldAssistUsed:
		return m.AssistUsed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TelemetryEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case telemetryevent.FieldSequence:
		return m.OldSequence(ctx)
	case telemetryevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case telemetryevent.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case telemetryevent.FieldUserID:
		return m.OldUserID(ctx)
	case telemetryevent.FieldSkillID:
		return m.OldSkillID(ctx)
	case telemetryevent.FieldStepNumber:
		return m.OldStepNumber(ctx)
	case telemetryevent.FieldExpectedAction:
		return m.OldExpectedAction(ctx)
	case telemetryevent.FieldActualAction:
		return m.OldActualAction(ctx)
	case telemetryevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case telemetryevent.FieldHoldDurationMs:
		return m.OldHoldDurationMs(ctx)
	case telemetryevent.FieldPeakForce:
		return m.OldPeakForce(ctx)
	case telemetryevent.FieldDistanceM:
		return m.OldDistanceM(ctx)
	case telemetryevent.FieldAssistUsed:
		return m.OldAssistUsed(ctx)
	}
	return nil, fmt.Errorf("unknown TelemetryEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TelemetryEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case telemetryevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case telemetryevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case telemetryevent.FieldAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case telemetryevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case telemetryevent.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case telemetryevent.FieldStepNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepNumber(v)
		return nil
	case telemetryevent.FieldExpectedAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedAction(v)
		return nil
	case telemetryevent.FieldActualAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualAction(v)
		return nil
	case telemetryevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case telemetryevent.FieldHoldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHoldDurationMs(v)
		return nil
	case telemetryevent.FieldPeakForce:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeakForce(v)
		return nil
	case telemetryevent.FieldDistanceM:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistanceM(v)
		return nil
	case telemetryevent.FieldAssistUsed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssistUsed(v)
		return nil
	}
	return fmt.Errorf("unknown TelemetryEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TelemetryEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, telemetryevent.FieldSequence)
	}
	if m.addstep_number != nil {
		fields = append(fields, telemetryevent.FieldStepNumber)
	}
	if m.addhold_duration_ms != nil {
		fields = append(fields, telemetryevent.FieldHoldDurationMs)
	}
	if m.addpeak_force != nil {
		fields = append(fields, telemetryevent.FieldPeakForce)
	}
	if m.adddistance_m != nil {
		fields = append(fields, telemetryevent.FieldDistanceM)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TelemetryEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case telemetryevent.FieldSequence:
		return m.AddedSequence()
	case telemetryevent.FieldStepNumber:
		return m.AddedStepNumber()
	case telemetryevent.FieldHoldDurationMs:
		return m.AddedHoldDurationMs()
	case telemetryevent.FieldPeakForce:
		return m.AddedPeakForce()
	case telemetryevent.FieldDistanceM:
		return m.AddedDistanceM()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TelemetryEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case telemetryevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case telemetryevent.FieldStepNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepNumber(v)
		return nil
	case telemetryevent.FieldHoldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHoldDurationMs(v)
		return nil
	case telemetryevent.FieldPeakForce:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPeakForce(v)
		return nil
	case telemetryevent.FieldDistanceM:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDistanceM(v)
		return nil
	}
	return fmt.Errorf("unknown TelemetryEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TelemetryEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(telemetryevent.FieldExpectedAction) {
		fields = append(fields, telemetryevent.FieldExpectedAction)
	}
	if m.FieldCleared(telemetryevent.FieldActualAction) {
		fields = append(fields, telemetryevent.FieldActualAction)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TelemetryEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TelemetryEventMutation) ClearField(name string) error {
	switch name {
	case telemetryevent.FieldExpectedAction:
		m.ClearExpectedAction()
		return nil
	case telemetryevent.FieldActualAction:
		m.ClearActualAction()
		return nil
	}
	return fmt.Errorf("unknown TelemetryEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TelemetryEventMutation) ResetField(name string) error {
	switch name {
	case telemetryevent.FieldSequence:
		m.ResetSequence()
		return nil
	case telemetryevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case telemetryevent.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case telemetryevent.FieldUserID:
		m.ResetUserID()
		return nil
	case telemetryevent.FieldSkillID:
		m.ResetSkillID()
		return nil
	case telemetryevent.FieldStepNumber:
		m.ResetStepNumber()
		return nil
	case telemetryevent.FieldExpectedAction:
		m.ResetExpectedAction()
		return nil
	case telemetryevent.FieldActualAction:
		m.ResetActualAction()
		return nil
	case telemetryevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case telemetryevent.FieldHoldDurationMs:
		m.ResetHoldDurationMs()
		return nil
	case telemetryevent.FieldPeakForce:
		m.ResetPeakForce()
		return nil
	case telemetryevent.FieldDistanceM:
		m.ResetDistanceM()
		return nil
	case telemetryevent.FieldAssistUsed:
		m.ResetAssistUsed()
		return nil
	}
	return fmt.Errorf("unknown TelemetryEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TelemetryEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TelemetryEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TelemetryEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TelemetryEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TelemetryEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TelemetryEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TelemetryEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TelemetryEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TelemetryEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TelemetryEvent edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	current_phase *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*User, error)
	predicates    []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserMutation) ResetUserID() {
	m.user_id = nil
}

// SetCurrentPhase sets the "current_phase" field.
func (m *UserMutation) SetCurrentPhase(s string) {
	m.current_phase = &s
}

// CurrentPhase returns the value of the "current_phase" field in the mutation.
func (m *UserMutation) CurrentPhase() (r string, exists bool) {
	v := m.current_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPhase returns the old "current_phase" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCurrentPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPhase: %w", err)
	}
	return oldValue.CurrentPhase, nil
}

// ResetCurrentPhase resets all changes to the "current_phase" field.
func (m *UserMutation) ResetCurrentPhase() {
	m.current_phase = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ClearUpdatedAt clears the value of the "updated_at" field.
func (m *UserMutation) ClearUpdatedAt() {
	m.updated_at = nil
	m.clearedFields[user.FieldUpdatedAt] = struct{}{}
}

// UpdatedAtCleared returns if the "updated_at" field was cleared in this mutation.
func (m *UserMutation) UpdatedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldUpdatedAt]
	return ok
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
	delete(m.clearedFields, user.FieldUpdatedAt)
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, user.FieldUserID)
	}
	if m.current_phase != nil {
		fields = append(fields, user.FieldCurrentPhase)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldUserID:
		return m.UserID()
	case user.FieldCurrentPhase:
		return m.CurrentPhase()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldUserID:
		return m.OldUserID(ctx)
	case user.FieldCurrentPhase:
		return m.OldCurrentPhase(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case user.FieldCurrentPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPhase(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldUpdatedAt) {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldUpdatedAt:
		m.ClearUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldUserID:
		m.ResetUserID()
		return nil
	case user.FieldCurrentPhase:
		m.ResetCurrentPhase()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
