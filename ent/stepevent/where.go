// Code generated by ent, DO NOT EDIT.

package stepevent

import (
	"time"
	"wheeltrack/ent/predicate"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldAttemptID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldUserID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldSkillID, v))
}

// StepNumber applies equality check predicate on the "step_number" field. It's identical to StepNumberEQ.
func StepNumber(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldStepNumber, v))
}

// ExpectedInput applies equality check predicate on the "expected_input" field. It's identical to ExpectedInputEQ.
func ExpectedInput(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldExpectedInput, v))
}

// ActualInput applies equality check predicate on the "actual_input" field. It's identical to ActualInputEQ.
func ActualInput(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldActualInput, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldCorrect, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContainsFold(FieldAttemptID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContainsFold(FieldUserID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContainsFold(FieldSkillID, v))
}

// StepNumberEQ applies the EQ predicate on the "step_number" field.
func StepNumberEQ(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldStepNumber, v))
}

// StepNumberNEQ applies the NEQ predicate on the "step_number" field.
func StepNumberNEQ(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldStepNumber, v))
}

// StepNumberIn applies the In predicate on the "step_number" field.
func StepNumberIn(vs ...int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldStepNumber, vs...))
}

// StepNumberNotIn applies the NotIn predicate on the "step_number" field.
func StepNumberNotIn(vs ...int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldStepNumber, vs...))
}

// StepNumberGT applies the GT predicate on the "step_number" field.
func StepNumberGT(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldStepNumber, v))
}

// StepNumberGTE applies the GTE predicate on the "step_number" field.
func StepNumberGTE(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldStepNumber, v))
}

// StepNumberLT applies the LT predicate on the "step_number" field.
func StepNumberLT(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldStepNumber, v))
}

// StepNumberLTE applies the LTE predicate on the "step_number" field.
func StepNumberLTE(v int) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldStepNumber, v))
}

// ExpectedInputEQ applies the EQ predicate on the "expected_input" field.
func ExpectedInputEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldExpectedInput, v))
}

// ExpectedInputNEQ applies the NEQ predicate on the "expected_input" field.
func ExpectedInputNEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldExpectedInput, v))
}

// ExpectedInputIn applies the In predicate on the "expected_input" field.
func ExpectedInputIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldExpectedInput, vs...))
}

// ExpectedInputNotIn applies the NotIn predicate on the "expected_input" field.
func ExpectedInputNotIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldExpectedInput, vs...))
}

// ExpectedInputGT applies the GT predicate on the "expected_input" field.
func ExpectedInputGT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldExpectedInput, v))
}

// ExpectedInputGTE applies the GTE predicate on the "expected_input" field.
func ExpectedInputGTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldExpectedInput, v))
}

// ExpectedInputLT applies the LT predicate on the "expected_input" field.
func ExpectedInputLT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldExpectedInput, v))
}

// ExpectedInputLTE applies the LTE predicate on the "expected_input" field.
func ExpectedInputLTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldExpectedInput, v))
}

// ExpectedInputContains applies the Contains predicate on the "expected_input" field.
func ExpectedInputContains(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContains(FieldExpectedInput, v))
}

// ExpectedInputHasPrefix applies the HasPrefix predicate on the "expected_input" field.
func ExpectedInputHasPrefix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasPrefix(FieldExpectedInput, v))
}

// ExpectedInputHasSuffix applies the HasSuffix predicate on the "expected_input" field.
func ExpectedInputHasSuffix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasSuffix(FieldExpectedInput, v))
}

// ExpectedInputEqualFold applies the EqualFold predicate on the "expected_input" field.
func ExpectedInputEqualFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEqualFold(FieldExpectedInput, v))
}

// ExpectedInputContainsFold applies the ContainsFold predicate on the "expected_input" field.
func ExpectedInputContainsFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContainsFold(FieldExpectedInput, v))
}

// ActualInputEQ applies the EQ predicate on the "actual_input" field.
func ActualInputEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldActualInput, v))
}

// ActualInputNEQ applies the NEQ predicate on the "actual_input" field.
func ActualInputNEQ(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldActualInput, v))
}

// ActualInputIn applies the In predicate on the "actual_input" field.
func ActualInputIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldIn(FieldActualInput, vs...))
}

// ActualInputNotIn applies the NotIn predicate on the "actual_input" field.
func ActualInputNotIn(vs ...string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNotIn(FieldActualInput, vs...))
}

// ActualInputGT applies the GT predicate on the "actual_input" field.
func ActualInputGT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGT(FieldActualInput, v))
}

// ActualInputGTE applies the GTE predicate on the "actual_input" field.
func ActualInputGTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldGTE(FieldActualInput, v))
}

// ActualInputLT applies the LT predicate on the "actual_input" field.
func ActualInputLT(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLT(FieldActualInput, v))
}

// ActualInputLTE applies the LTE predicate on the "actual_input" field.
func ActualInputLTE(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldLTE(FieldActualInput, v))
}

// ActualInputContains applies the Contains predicate on the "actual_input" field.
func ActualInputContains(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContains(FieldActualInput, v))
}

// ActualInputHasPrefix applies the HasPrefix predicate on the "actual_input" field.
func ActualInputHasPrefix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasPrefix(FieldActualInput, v))
}

// ActualInputHasSuffix applies the HasSuffix predicate on the "actual_input" field.
func ActualInputHasSuffix(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldHasSuffix(FieldActualInput, v))
}

// ActualInputEqualFold applies the EqualFold predicate on the "actual_input" field.
func ActualInputEqualFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEqualFold(FieldActualInput, v))
}

// ActualInputContainsFold applies the ContainsFold predicate on the "actual_input" field.
func ActualInputContainsFold(v string) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldContainsFold(FieldActualInput, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.StepEvent {
	return predicate.StepEvent(sql.FieldNEQ(FieldCorrect, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StepEvent) predicate.StepEvent {
	return predicate.StepEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StepEvent) predicate.StepEvent {
	return predicate.StepEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StepEvent) predicate.StepEvent {
	return predicate.StepEvent(sql.NotPredicates(p))
}
