// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"
	"wheeltrack/ent/telemetryevent"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// TelemetryEvent is the model entity for the TelemetryEvent schema.
type TelemetryEvent struct {
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
	// ExpectedAction holds the value of the "expected_action" field.
	ExpectedAction string `json:"expected_action,omitempty"`
	// ActualAction holds the value of the "actual_action" field.
	ActualAction string `json:"actual_action,omitempty"`
	// Whether the step was performed as expected
	Success bool `json:"success,omitempty"`
	// HoldDurationMs holds the value of the "hold_duration_ms" field.
	HoldDurationMs int64 `json:"hold_duration_ms,omitempty"`
	// PeakForce holds the value of the "peak_force" field.
	PeakForce float64 `json:"peak_force,omitempty"`
	// DistanceM holds the value of the "distance_m" field.
	DistanceM float64 `json:"distance_m,omitempty"`
	// AssistUsed holds the value of the "assist_used" field.
	AssistUsed   bool `json:"assist_used,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TelemetryEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case telemetryevent.FieldSuccess, telemetryevent.FieldAssistUsed:
			values[i] = new(sql.NullBool)
		case telemetryevent.FieldPeakForce, telemetryevent.FieldDistanceM:
			values[i] = new(sql.NullFloat64)
		case telemetryevent.FieldID, telemetryevent.FieldSequence, telemetryevent.FieldStepNumber, telemetryevent.FieldHoldDurationMs:
			values[i] = new(sql.NullInt64)
		case telemetryevent.FieldAttemptID, telemetryevent.FieldUserID, telemetryevent.FieldSkillID, telemetryevent.FieldExpectedAction, telemetryevent.FieldActualAction:
			values[i] = new(sql.NullString)
		case telemetryevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TelemetryEvent fields.
func (_m *TelemetryEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case telemetryevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case telemetryevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case telemetryevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case telemetryevent.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = value.String
			}
		case telemetryevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case telemetryevent.FieldSkillID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill_id", values[i])
			} else if value.Valid {
				_m.SkillID = value.String
			}
		case telemetryevent.FieldStepNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_number", values[i])
			} else if value.Valid {
				_m.StepNumber = int(value.Int64)
			}
		case telemetryevent.FieldExpectedAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expected_action", values[i])
			} else if value.Valid {
				_m.ExpectedAction = value.String
			}
		case telemetryevent.FieldActualAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actual_action", values[i])
			} else if value.Valid {
				_m.ActualAction = value.String
			}
		case telemetryevent.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case telemetryevent.FieldHoldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hold_duration_ms", values[i])
			} else if value.Valid {
				_m.HoldDurationMs = value.Int64
			}
		case telemetryevent.FieldPeakForce:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field peak_force", values[i])
			} else if value.Valid {
				_m.PeakForce = value.Float64
			}
		case telemetryevent.FieldDistanceM:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field distance_m", values[i])
			} else if value.Valid {
				_m.DistanceM = value.Float64
			}
		case telemetryevent.FieldAssistUsed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field assist_used", values[i])
			} else if value.Valid {
				_m.AssistUsed = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TelemetryEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TelemetryEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TelemetryEvent.
// Note that you need to call TelemetryEvent.Unwrap() before calling this method if this TelemetryEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TelemetryEvent) Update() *TelemetryEventUpdateOne {
	return NewTelemetryEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TelemetryEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TelemetryEvent) Unwrap() *TelemetryEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TelemetryEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TelemetryEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TelemetryEvent(")
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
	builder.WriteString("expected_action=")
	builder.WriteString(_m.ExpectedAction)
	builder.WriteString(", ")
	builder.WriteString("actual_action=")
	builder.WriteString(_m.ActualAction)
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("hold_duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.HoldDurationMs))
	builder.WriteString(", ")
	builder.WriteString("peak_force=")
	builder.WriteString(fmt.Sprintf("%v", _m.PeakForce))
	builder.WriteString(", ")
	builder.WriteString("distance_m=")
	builder.WriteString(fmt.Sprintf("%v", _m.DistanceM))
	builder.WriteString(", ")
	builder.WriteString("assist_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssistUsed))
	builder.WriteByte(')')
	return builder.String()
}

// TelemetryEvents is a parsable slice of TelemetryEvent.
type TelemetryEvents []*TelemetryEvent
