// Code generated by ent, DO NOT EDIT.

package telemetryevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the telemetryevent type in the database.
	Label = "telemetry_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSkillID holds the string denoting the skill_id field in the database.
	FieldSkillID = "skill_id"
	// FieldStepNumber holds the string denoting the step_number field in the database.
	FieldStepNumber = "step_number"
	// FieldExpectedAction holds the string denoting the expected_action field in the database.
	FieldExpectedAction = "expected_action"
	// FieldActualAction holds the string denoting the actual_action field in the database.
	FieldActualAction = "actual_action"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldHoldDurationMs holds the string denoting the hold_duration_ms field in the database.
	FieldHoldDurationMs = "hold_duration_ms"
	// FieldPeakForce holds the string denoting the peak_force field in the database.
	FieldPeakForce = "peak_force"
	// FieldDistanceM holds the string denoting the distance_m field in the database.
	FieldDistanceM = "distance_m"
	// FieldAssistUsed holds the string denoting the assist_used field in the database.
	FieldAssistUsed = "assist_used"
	// Table holds the table name of the telemetryevent in the database.
	Table = "telemetry_events"
)

// Columns holds all SQL columns for telemetryevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAttemptID,
	FieldUserID,
	FieldSkillID,
	FieldStepNumber,
	FieldExpectedAction,
	FieldActualAction,
	FieldSuccess,
	FieldHoldDurationMs,
	FieldPeakForce,
	FieldDistanceM,
	FieldAssistUsed,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	AttemptIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	SkillIDValidator func(string) error
	// StepNumberValidator is a validator for the "step_number" field. It is called by the builders before save.
	StepNumberValidator func(int) error
	// DefaultSuccess holds the default value on creation for the "success" field.
	DefaultSuccess bool
	// DefaultHoldDurationMs holds the default value on creation for the "hold_duration_ms" field.
	DefaultHoldDurationMs int64
	// DefaultPeakForce holds the default value on creation for the "peak_force" field.
	DefaultPeakForce float64
	// DefaultDistanceM holds the default value on creation for the "distance_m" field.
	DefaultDistanceM float64
	// DefaultAssistUsed holds the default value on creation for the "assist_used" field.
	DefaultAssistUsed bool
)

// OrderOption defines the ordering options for the TelemetryEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByAttemptID orders the results by the attempt_id field.
func ByAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySkillID orders the results by the skill_id field.
func BySkillID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkillID, opts...).ToFunc()
}

// ByStepNumber orders the results by the step_number field.
func ByStepNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepNumber, opts...).ToFunc()
}

// ByExpectedAction orders the results by the expected_action field.
func ByExpectedAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedAction, opts...).ToFunc()
}

// ByActualAction orders the results by the actual_action field.
func ByActualAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActualAction, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByHoldDurationMs orders the results by the hold_duration_ms field.
func ByHoldDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHoldDurationMs, opts...).ToFunc()
}

// ByPeakForce orders the results by the peak_force field.
func ByPeakForce(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeakForce, opts...).ToFunc()
}

// ByDistanceM orders the results by the distance_m field.
func ByDistanceM(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistanceM, opts...).ToFunc()
}

// ByAssistUsed orders the results by the assist_used field.
func ByAssistUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssistUsed, opts...).ToFunc()
}
