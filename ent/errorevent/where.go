// Code generated by ent, DO NOT EDIT.

package errorevent

import (
	"time"
	"wheeltrack/ent/predicate"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEQ(FieldAttemptID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEQ(FieldUserID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEQ(FieldSkillID, v))
}

// StepNumber applies equality check predicate on the "step_number" field. It's identical to StepNumberEQ.
func StepNumber(v int) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEQ(FieldStepNumber, v))
}

// ErrorType applies equality check predicate on the "error_type" field. It's identical to ErrorTypeEQ.
func ErrorType(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEQ(FieldErrorType, v))
}

// ExpectedAction applies equality check predicate on the "expected_action" field. It's identical to ExpectedActionEQ.
func ExpectedAction(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEQ(FieldExpectedAction, v))
}

// ActualAction applies equality check predicate on the "actual_action" field. It's identical to ActualActionEQ.
func ActualAction(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEQ(FieldActualAction, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldContainsFold(FieldAttemptID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldContainsFold(FieldUserID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldContainsFold(FieldSkillID, v))
}

// StepNumberEQ applies the EQ predicate on the "step_number" field.
func StepNumberEQ(v int) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEQ(FieldStepNumber, v))
}

// StepNumberNEQ applies the NEQ predicate on the "step_number" field.
func StepNumberNEQ(v int) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldNEQ(FieldStepNumber, v))
}

// StepNumberIn applies the In predicate on the "step_number" field.
func StepNumberIn(vs ...int) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldIn(FieldStepNumber, vs...))
}

// StepNumberNotIn applies the NotIn predicate on the "step_number" field.
func StepNumberNotIn(vs ...int) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldNotIn(FieldStepNumber, vs...))
}

// StepNumberGT applies the GT predicate on the "step_number" field.
func StepNumberGT(v int) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldGT(FieldStepNumber, v))
}

// StepNumberGTE applies the GTE predicate on the "step_number" field.
func StepNumberGTE(v int) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldGTE(FieldStepNumber, v))
}

// StepNumberLT applies the LT predicate on the "step_number" field.
func StepNumberLT(v int) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldLT(FieldStepNumber, v))
}

// StepNumberLTE applies the LTE predicate on the "step_number" field.
func StepNumberLTE(v int) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldLTE(FieldStepNumber, v))
}

// ErrorTypeEQ applies the EQ predicate on the "error_type" field.
func ErrorTypeEQ(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEQ(FieldErrorType, v))
}

// ErrorTypeNEQ applies the NEQ predicate on the "error_type" field.
func ErrorTypeNEQ(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldNEQ(FieldErrorType, v))
}

// ErrorTypeIn applies the In predicate on the "error_type" field.
func ErrorTypeIn(vs ...string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldIn(FieldErrorType, vs...))
}

// ErrorTypeNotIn applies the NotIn predicate on the "error_type" field.
func ErrorTypeNotIn(vs ...string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldNotIn(FieldErrorType, vs...))
}

// ErrorTypeGT applies the GT predicate on the "error_type" field.
func ErrorTypeGT(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldGT(FieldErrorType, v))
}

// ErrorTypeGTE applies the GTE predicate on the "error_type" field.
func ErrorTypeGTE(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldGTE(FieldErrorType, v))
}

// ErrorTypeLT applies the LT predicate on the "error_type" field.
func ErrorTypeLT(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldLT(FieldErrorType, v))
}

// ErrorTypeLTE applies the LTE predicate on the "error_type" field.
func ErrorTypeLTE(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldLTE(FieldErrorType, v))
}

// ErrorTypeContains applies the Contains predicate on the "error_type" field.
func ErrorTypeContains(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldContains(FieldErrorType, v))
}

// ErrorTypeHasPrefix applies the HasPrefix predicate on the "error_type" field.
func ErrorTypeHasPrefix(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldHasPrefix(FieldErrorType, v))
}

// ErrorTypeHasSuffix applies the HasSuffix predicate on the "error_type" field.
func ErrorTypeHasSuffix(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldHasSuffix(FieldErrorType, v))
}

// ErrorTypeEqualFold applies the EqualFold predicate on the "error_type" field.
func ErrorTypeEqualFold(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEqualFold(FieldErrorType, v))
}

// ErrorTypeContainsFold applies the ContainsFold predicate on the "error_type" field.
func ErrorTypeContainsFold(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldContainsFold(FieldErrorType, v))
}

// ExpectedActionEQ applies the EQ predicate on the "expected_action" field.
func ExpectedActionEQ(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEQ(FieldExpectedAction, v))
}

// ExpectedActionNEQ applies the NEQ predicate on the "expected_action" field.
func ExpectedActionNEQ(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldNEQ(FieldExpectedAction, v))
}

// ExpectedActionIn applies the In predicate on the "expected_action" field.
func ExpectedActionIn(vs ...string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldIn(FieldExpectedAction, vs...))
}

// ExpectedActionNotIn applies the NotIn predicate on the "expected_action" field.
func ExpectedActionNotIn(vs ...string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldNotIn(FieldExpectedAction, vs...))
}

// ExpectedActionGT applies the GT predicate on the "expected_action" field.
func ExpectedActionGT(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldGT(FieldExpectedAction, v))
}

// ExpectedActionGTE applies the GTE predicate on the "expected_action" field.
func ExpectedActionGTE(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldGTE(FieldExpectedAction, v))
}

// ExpectedActionLT applies the LT predicate on the "expected_action" field.
func ExpectedActionLT(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldLT(FieldExpectedAction, v))
}

// ExpectedActionLTE applies the LTE predicate on the "expected_action" field.
func ExpectedActionLTE(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldLTE(FieldExpectedAction, v))
}

// ExpectedActionContains applies the Contains predicate on the "expected_action" field.
func ExpectedActionContains(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldContains(FieldExpectedAction, v))
}

// ExpectedActionHasPrefix applies the HasPrefix predicate on the "expected_action" field.
func ExpectedActionHasPrefix(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldHasPrefix(FieldExpectedAction, v))
}

// ExpectedActionHasSuffix applies the HasSuffix predicate on the "expected_action" field.
func ExpectedActionHasSuffix(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldHasSuffix(FieldExpectedAction, v))
}

// ExpectedActionEqualFold applies the EqualFold predicate on the "expected_action" field.
func ExpectedActionEqualFold(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEqualFold(FieldExpectedAction, v))
}

// ExpectedActionContainsFold applies the ContainsFold predicate on the "expected_action" field.
func ExpectedActionContainsFold(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldContainsFold(FieldExpectedAction, v))
}

// ActualActionEQ applies the EQ predicate on the "actual_action" field.
func ActualActionEQ(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEQ(FieldActualAction, v))
}

// ActualActionNEQ applies the NEQ predicate on the "actual_action" field.
func ActualActionNEQ(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldNEQ(FieldActualAction, v))
}

// ActualActionIn applies the In predicate on the "actual_action" field.
func ActualActionIn(vs ...string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldIn(FieldActualAction, vs...))
}

// ActualActionNotIn applies the NotIn predicate on the "actual_action" field.
func ActualActionNotIn(vs ...string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldNotIn(FieldActualAction, vs...))
}

// ActualActionGT applies the GT predicate on the "actual_action" field.
func ActualActionGT(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldGT(FieldActualAction, v))
}

// ActualActionGTE applies the GTE predicate on the "actual_action" field.
func ActualActionGTE(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldGTE(FieldActualAction, v))
}

// ActualActionLT applies the LT predicate on the "actual_action" field.
func ActualActionLT(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldLT(FieldActualAction, v))
}

// ActualActionLTE applies the LTE predicate on the "actual_action" field.
func ActualActionLTE(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldLTE(FieldActualAction, v))
}

// ActualActionContains applies the Contains predicate on the "actual_action" field.
func ActualActionContains(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldContains(FieldActualAction, v))
}

// ActualActionHasPrefix applies the HasPrefix predicate on the "actual_action" field.
func ActualActionHasPrefix(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldHasPrefix(FieldActualAction, v))
}

// ActualActionHasSuffix applies the HasSuffix predicate on the "actual_action" field.
func ActualActionHasSuffix(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldHasSuffix(FieldActualAction, v))
}

// ActualActionEqualFold applies the EqualFold predicate on the "actual_action" field.
func ActualActionEqualFold(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldEqualFold(FieldActualAction, v))
}

// ActualActionContainsFold applies the ContainsFold predicate on the "actual_action" field.
func ActualActionContainsFold(v string) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.FieldContainsFold(FieldActualAction, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ErrorEvent) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ErrorEvent) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ErrorEvent) predicate.ErrorEvent {
	return predicate.ErrorEvent(sql.NotPredicates(p))
}
