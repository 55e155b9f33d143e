// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"
	"wheeltrack/ent/stepevent"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// StepEvent is the model entity for the StepEvent schema.
type StepEvent struct {
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
	// Step within the skill; duplicates and gaps are allowed
	StepNumber int `json:"step_number,omitempty"`
	// Input the skill definition expected
	ExpectedInput string `json:"expected_input,omitempty"`
	// Input the user actually gave
	ActualInput string `json:"actual_input,omitempty"`
	// expected_input == actual_input
	Correct      bool `json:"correct,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StepEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stepevent.FieldCorrect:
			values[i] = new(sql.NullBool)
		case stepevent.FieldID, stepevent.FieldSequence, stepevent.FieldStepNumber:
			values[i] = new(sql.NullInt64)
		case stepevent.FieldAttemptID, stepevent.FieldUserID, stepevent.FieldSkillID, stepevent.FieldExpectedInput, stepevent.FieldActualInput:
			values[i] = new(sql.NullString)
		case stepevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StepEvent fields.
func (_m *StepEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stepevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case stepevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case stepevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case stepevent.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = value.String
			}
		case stepevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case stepevent.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case stepevent.FieldStepNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_number", values[i])
			} else if value.Valid {
				_m.StepNumber = int(value.Int64)
			}
		case stepevent.FieldExpectedInput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expected_input", values[i])
			} else if value.Valid {
				_m.ExpectedInput = value.String
			}
		case stepevent.FieldActualInput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actual_input", values[i])
			} else if value.Valid {
				_m.ActualInput = value.String
			}
		case stepevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StepEvent.
// This includes values selected through modifiers, order, etc.
func (_m *StepEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StepEvent.
// Note that you need to call StepEvent.Unwrap() before calling this method if this StepEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StepEvent) Update() *StepEventUpdateOne {
	return NewStepEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StepEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StepEvent) Unwrap() *StepEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StepEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StepEvent) String() string {
	var builder strings.Builder
	builder.WriteString("StepEvent(")
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
	builder.WriteString("expected_input=")
	builder.WriteString(_m.ExpectedInput)
	builder.WriteString(", ")
	builder.WriteString("actual_input=")
	builder.WriteString(_m.ActualInput)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteByte(')')
	return builder.String()
}

// StepEvents is a parsable slice of StepEvent.
type StepEvents []*StepEvent
