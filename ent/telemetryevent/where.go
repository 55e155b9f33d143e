// Code generated by ent, DO NOT EDIT.

package telemetryevent

import (
	"time"
	"wheeltrack/ent/predicate"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldAttemptID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldUserID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldSkillID, v))
}

// StepNumber applies equality check predicate on the "step_number" field. It's identical to StepNumberEQ.
func StepNumber(v int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldStepNumber, v))
}

// ExpectedAction applies equality check predicate on the "expected_action" field. It's identical to ExpectedActionEQ.
func ExpectedAction(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldExpectedAction, v))
}

// ActualAction applies equality check predicate on the "actual_action" field. It's identical to ActualActionEQ.
func ActualAction(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldActualAction, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldSuccess, v))
}

// HoldDurationMs applies equality check predicate on the "hold_duration_ms" field. It's identical to HoldDurationMsEQ.
func HoldDurationMs(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldHoldDurationMs, v))
}

// PeakForce applies equality check predicate on the "peak_force" field. It's identical to PeakForceEQ.
func PeakForce(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldPeakForce, v))
}

// DistanceM applies equality check predicate on the "distance_m" field. It's identical to DistanceMEQ.
func DistanceM(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldDistanceM, v))
}

// AssistUsed applies equality check predicate on the "assist_used" field. It's identical to AssistUsedEQ.
func AssistUsed(v bool) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldAssistUsed, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContainsFold(FieldAttemptID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContainsFold(FieldUserID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContainsFold(FieldSkillID, v))
}

// StepNumberEQ applies the EQ predicate on the "step_number" field.
func StepNumberEQ(v int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldStepNumber, v))
}

// StepNumberNEQ applies the NEQ predicate on the "step_number" field.
func StepNumberNEQ(v int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldStepNumber, v))
}

// StepNumberIn applies the In predicate on the "step_number" field.
func StepNumberIn(vs ...int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldStepNumber, vs...))
}

// StepNumberNotIn applies the NotIn predicate on the "step_number" field.
func StepNumberNotIn(vs ...int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldStepNumber, vs...))
}

// StepNumberGT applies the GT predicate on the "step_number" field.
func StepNumberGT(v int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldStepNumber, v))
}

// StepNumberGTE applies the GTE predicate on the "step_number" field.
func StepNumberGTE(v int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldStepNumber, v))
}

// StepNumberLT applies the LT predicate on the "step_number" field.
func StepNumberLT(v int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldStepNumber, v))
}

// StepNumberLTE applies the LTE predicate on the "step_number" field.
func StepNumberLTE(v int) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldStepNumber, v))
}

// ExpectedActionEQ applies the EQ predicate on the "expected_action" field.
func ExpectedActionEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldExpectedAction, v))
}

// ExpectedActionNEQ applies the NEQ predicate on the "expected_action" field.
func ExpectedActionNEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldExpectedAction, v))
}

// ExpectedActionIn applies the In predicate on the "expected_action" field.
func ExpectedActionIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldExpectedAction, vs...))
}

// ExpectedActionNotIn applies the NotIn predicate on the "expected_action" field.
func ExpectedActionNotIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldExpectedAction, vs...))
}

// ExpectedActionGT applies the GT predicate on the "expected_action" field.
func ExpectedActionGT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldExpectedAction, v))
}

// ExpectedActionGTE applies the GTE predicate on the "expected_action" field.
func ExpectedActionGTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldExpectedAction, v))
}

// ExpectedActionLT applies the LT predicate on the "expected_action" field.
func ExpectedActionLT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldExpectedAction, v))
}

// ExpectedActionLTE applies the LTE predicate on the "expected_action" field.
func ExpectedActionLTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldExpectedAction, v))
}

// ExpectedActionContains applies the Contains predicate on the "expected_action" field.
func ExpectedActionContains(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContains(FieldExpectedAction, v))
}

// ExpectedActionHasPrefix applies the HasPrefix predicate on the "expected_action" field.
func ExpectedActionHasPrefix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasPrefix(FieldExpectedAction, v))
}

// ExpectedActionHasSuffix applies the HasSuffix predicate on the "expected_action" field.
func ExpectedActionHasSuffix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasSuffix(FieldExpectedAction, v))
}

// ExpectedActionIsNil applies the IsNil predicate on the "expected_action" field.
func ExpectedActionIsNil() predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIsNull(FieldExpectedAction))
}

// ExpectedActionNotNil applies the NotNil predicate on the "expected_action" field.
func ExpectedActionNotNil() predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotNull(FieldExpectedAction))
}

// ExpectedActionEqualFold applies the EqualFold predicate on the "expected_action" field.
func ExpectedActionEqualFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEqualFold(FieldExpectedAction, v))
}

// ExpectedActionContainsFold applies the ContainsFold predicate on the "expected_action" field.
func ExpectedActionContainsFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContainsFold(FieldExpectedAction, v))
}

// ActualActionEQ applies the EQ predicate on the "actual_action" field.
func ActualActionEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldActualAction, v))
}

// ActualActionNEQ applies the NEQ predicate on the "actual_action" field.
func ActualActionNEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldActualAction, v))
}

// ActualActionIn applies the In predicate on the "actual_action" field.
func ActualActionIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldActualAction, vs...))
}

// ActualActionNotIn applies the NotIn predicate on the "actual_action" field.
func ActualActionNotIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldActualAction, vs...))
}

// ActualActionGT applies the GT predicate on the "actual_action" field.
func ActualActionGT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldActualAction, v))
}

// ActualActionGTE applies the GTE predicate on the "actual_action" field.
func ActualActionGTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldActualAction, v))
}

// ActualActionLT applies the LT predicate on the "actual_action" field.
func ActualActionLT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldActualAction, v))
}

// ActualActionLTE applies the LTE predicate on the "actual_action" field.
func ActualActionLTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldActualAction, v))
}

// ActualActionContains applies the Contains predicate on the "actual_action" field.
func ActualActionContains(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContains(FieldActualAction, v))
}

// ActualActionHasPrefix applies the HasPrefix predicate on the "actual_action" field.
func ActualActionHasPrefix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasPrefix(FieldActualAction, v))
}

// ActualActionHasSuffix applies the HasSuffix predicate on the "actual_action" field.
func ActualActionHasSuffix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasSuffix(FieldActualAction, v))
}

// ActualActionIsNil applies the IsNil predicate on the "actual_action" field.
func ActualActionIsNil() predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIsNull(FieldActualAction))
}

// ActualActionNotNil applies the NotNil predicate on the "actual_action" field.
func ActualActionNotNil() predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotNull(FieldActualAction))
}

// ActualActionEqualFold applies the EqualFold predicate on the "actual_action" field.
func ActualActionEqualFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEqualFold(FieldActualAction, v))
}

// ActualActionContainsFold applies the ContainsFold predicate on the "actual_action" field.
func ActualActionContainsFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContainsFold(FieldActualAction, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldSuccess, v))
}

// HoldDurationMsEQ applies the EQ predicate on the "hold_duration_ms" field.
func HoldDurationMsEQ(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldHoldDurationMs, v))
}

// HoldDurationMsNEQ applies the NEQ predicate on the "hold_duration_ms" field.
func HoldDurationMsNEQ(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldHoldDurationMs, v))
}

// HoldDurationMsIn applies the In predicate on the "hold_duration_ms" field.
func HoldDurationMsIn(vs ...int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldHoldDurationMs, vs...))
}

// HoldDurationMsNotIn applies the NotIn predicate on the "hold_duration_ms" field.
func HoldDurationMsNotIn(vs ...int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldHoldDurationMs, vs...))
}

// HoldDurationMsGT applies the GT predicate on the "hold_duration_ms" field.
func HoldDurationMsGT(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldHoldDurationMs, v))
}

// HoldDurationMsGTE applies the GTE predicate on the "hold_duration_ms" field.
func HoldDurationMsGTE(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldHoldDurationMs, v))
}

// HoldDurationMsLT applies the LT predicate on the "hold_duration_ms" field.
func HoldDurationMsLT(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldHoldDurationMs, v))
}

// HoldDurationMsLTE applies the LTE predicate on the "hold_duration_ms" field.
func HoldDurationMsLTE(v int64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldHoldDurationMs, v))
}

// PeakForceEQ applies the EQ predicate on the "peak_force" field.
func PeakForceEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldPeakForce, v))
}

// PeakForceNEQ applies the NEQ predicate on the "peak_force" field.
func PeakForceNEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldPeakForce, v))
}

// PeakForceIn applies the In predicate on the "peak_force" field.
func PeakForceIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldPeakForce, vs...))
}

// PeakForceNotIn applies the NotIn predicate on the "peak_force" field.
func PeakForceNotIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldPeakForce, vs...))
}

// PeakForceGT applies the GT predicate on the "peak_force" field.
func PeakForceGT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldPeakForce, v))
}

// PeakForceGTE applies the GTE predicate on the "peak_force" field.
func PeakForceGTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldPeakForce, v))
}

// PeakForceLT applies the LT predicate on the "peak_force" field.
func PeakForceLT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldPeakForce, v))
}

// PeakForceLTE applies the LTE predicate on the "peak_force" field.
func PeakForceLTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldPeakForce, v))
}

// DistanceMEQ applies the EQ predicate on the "distance_m" field.
func DistanceMEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldDistanceM, v))
}

// DistanceMNEQ applies the NEQ predicate on the "distance_m" field.
func DistanceMNEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldDistanceM, v))
}

// DistanceMIn applies the In predicate on the "distance_m" field.
func DistanceMIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldDistanceM, vs...))
}

// DistanceMNotIn applies the NotIn predicate on the "distance_m" field.
func DistanceMNotIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldDistanceM, vs...))
}

// DistanceMGT applies the GT predicate on the "distance_m" field.
func DistanceMGT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldDistanceM, v))
}

// DistanceMGTE applies the GTE predicate on the "distance_m" field.
func DistanceMGTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldDistanceM, v))
}

// DistanceMLT applies the LT predicate on the "distance_m" field.
func DistanceMLT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldDistanceM, v))
}

// DistanceMLTE applies the LTE predicate on the "distance_m" field.
func DistanceMLTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldDistanceM, v))
}

// AssistUsedEQ applies the EQ predicate on the "assist_used" field.
func AssistUsedEQ(v bool) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldAssistUsed, v))
}

// AssistUsedNEQ applies the NEQ predicate on the "assist_used" field.
func AssistUsedNEQ(v bool) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldAssistUsed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TelemetryEvent) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TelemetryEvent) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TelemetryEvent) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.NotPredicates(p))
}
