// Code generated by ent, DO NOT EDIT.

package attemptsession

import (
	"time"
	"wheeltrack/ent/predicate"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldLTE(FieldID, id))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldEQ(FieldAttemptID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldEQ(FieldUserID, v))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldEQ(FieldSkillID, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldEQ(FieldSuccess, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldEQ(FieldEndTime, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldContainsFold(FieldAttemptID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldContainsFold(FieldUserID, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldContainsFold(FieldSkillID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldNotIn(FieldStatus, vs...))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldNEQ(FieldSuccess, v))
}

// SuccessIsNil applies the IsNil predicate on the "success" field.
func SuccessIsNil() predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldIsNull(FieldSuccess))
}

// SuccessNotNil applies the NotNil predicate on the "success" field.
func SuccessNotNil() predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldNotNull(FieldSuccess))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeIsNil applies the IsNil predicate on the "end_time" field.
func EndTimeIsNil() predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldIsNull(FieldEndTime))
}

// EndTimeNotNil applies the NotNil predicate on the "end_time" field.
func EndTimeNotNil() predicate.AttemptSession {
	return predicate.AttemptSession(sql.FieldNotNull(FieldEndTime))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AttemptSession) predicate.AttemptSession {
	return predicate.AttemptSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AttemptSession) predicate.AttemptSession {
	return predicate.AttemptSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AttemptSession) predicate.AttemptSession {
	return predicate.AttemptSession(sql.NotPredicates(p))
}
