// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"
	"wheeltrack/ent/attemptsession"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// AttemptSession is the model entity for the AttemptSession schema.
type AttemptSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// External attempt identifier (att_ prefix)
	AttemptID string `json:"attempt_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SkillID holds the value of the "skill_id" field.
	SkillID string `json:"skill_id,omitempty"`
	// Status holds the value of the "status" field.
	Status attemptsession.Status `json:"status,omitempty"`
	// Set exactly once, by completion
	Success *bool `json:"success,omitempty"`
	// StartTime holds the value of the "start_time" field.
	StartTime time.Time `json:"start_time,omitempty"`
	// EndTime holds the value of the "end_time" field.
	EndTime      *time.Time `json:"end_time,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AttemptSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attemptsession.FieldSuccess:
			values[i] = new(sql.NullBool)
		case attemptsession.FieldID:
			values[i] = new(sql.NullInt64)
		case attemptsession.FieldAttemptID, attemptsession.FieldUserID, attemptsession.FieldSkillID, attemptsession.FieldStatus:
			values[i] = new(sql.NullString)
		case attemptsession.FieldStartTime, attemptsession.FieldEndTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AttemptSession fields.
func (_m *AttemptSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attemptsession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case attemptsession.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = value.String
			}
		case attemptsession.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case attemptsession.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case attemptsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = attemptsession.Status(value.String)
			}
		case attemptsession.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = new(bool)
				*_m.Success = value.Bool
			}
		case attemptsession.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case attemptsession.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = new(time.Time)
				*_m.EndTime = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AttemptSession.
// This includes values selected through modifiers, order, etc.
func (_m *AttemptSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AttemptSession.
// Note that you need to call AttemptSession.Unwrap() before calling this method if this AttemptSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AttemptSession) Update() *AttemptSessionUpdateOne {
	return NewAttemptSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AttemptSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AttemptSession) Unwrap() *AttemptSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AttemptSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AttemptSession) String() string {
	var builder strings.Builder
	builder.WriteString("AttemptSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("attempt_id=")
	builder.WriteString(_m.AttemptID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Success; v != nil {
		builder.WriteString("success=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndTime; v != nil {
		builder.WriteString("end_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AttemptSessions is a parsable slice of AttemptSession.
type AttemptSessions []*AttemptSession
