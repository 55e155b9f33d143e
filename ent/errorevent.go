// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"
	"wheeltrack/ent/errorevent"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// ErrorEvent is the model entity for the ErrorEvent schema.
type ErrorEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the observation
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Attempt this observation belongs to
	AttemptID string `json:"attempt_id,omitempty"`
	// User who performed the attempt
	UserID string `json:"user_id,omitempty"`
	// Skill being trained
	SkillID string `json:"skill_id,omitempty"`
	// StepNumber holds the value of the "step_number" field.
	StepNumber int `json:"step_number,omitempty"`
	// One of the fixed taxonomy kinds
	ErrorType string `json:"error_type,omitempty"`
	// ExpectedAction holds the value of the "expected_action" field.
	ExpectedAction string `json:"expected_action,omitempty"`
	// ActualAction holds the value of the "actual_action" field.
	ActualAction string `json:"actual_action,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ErrorEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case errorevent.FieldID, errorevent.FieldSequence, errorevent.FieldStepNumber:
			values[i] = new(sql.NullInt64)
		case errorevent.FieldAttemptID, errorevent.FieldUserID, errorevent.FieldSkillID, errorevent.FieldErrorType, errorevent.FieldExpectedAction, errorevent.FieldActualAction:
			values[i] = new(sql.NullString)
		case errorevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ErrorEvent fields.
func (_m *ErrorEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case errorevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case errorevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case errorevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case errorevent.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = value.String
			}
		case errorevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case errorevent.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case errorevent.FieldStepNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_number", values[i])
			} else if value.Valid {
				_m.StepNumber = int(value.Int64)
			}
		case errorevent.FieldErrorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_type", values[i])
			} else if value.Valid {
				_m.ErrorType = value.String
			}
		case errorevent.FieldExpectedAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expected_action", values[i])
			} else if value.Valid {
				_m.ExpectedAction = value.String
			}
		case errorevent.FieldActualAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actual_action", values[i])
			} else if value.Valid {
				_m.ActualAction = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ErrorEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ErrorEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ErrorEvent.
// Note that you need to call ErrorEvent.Unwrap() before calling this method if this ErrorEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ErrorEvent) Update() *ErrorEventUpdateOne {
	return NewErrorEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ErrorEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ErrorEvent) Unwrap() *ErrorEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ErrorEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ErrorEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ErrorEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("attempt_id=")
	builder.WriteString(_m.AttemptID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("skill_id=")
	builder.WriteString(_m.SkillID)
	builder.WriteString(", ")
	builder.WriteString("step_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepNumber))
	builder.WriteString(", ")
	builder.WriteString("error_type=")
	builder.WriteString(_m.ErrorType)
	builder.WriteString(", ")
	builder.WriteString("expected_action=")
	builder.WriteString(_m.ExpectedAction)
	builder.WriteString(", ")
	builder.WriteString("actual_action=")
	builder.WriteString(_m.ActualAction)
	builder.WriteByte(')')
	return builder.String()
}

// ErrorEvents is a parsable slice of ErrorEvent.
type ErrorEvents []*ErrorEvent
