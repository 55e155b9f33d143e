// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"
	"wheeltrack/ent/attemptsession"
	"wheeltrack/ent/errorevent"
	"wheeltrack/ent/schema"
	"wheeltrack/ent/stepevent"
	"wheeltrack/ent/telemetryevent"
	"wheeltrack/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptsessionFields := schema.AttemptSession{}.Fields()
	_ = attemptsessionFields
	// attemptsessionDescAttemptID is the schema descriptor for attempt_id field.
	attemptsessionDescAttemptID := attemptsessionFields[0].Descriptor()
	// attemptsession.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptsession.AttemptIDValidator = attemptsessionDescAttemptID.Validators[0].(func(string) error)
	// attemptsessionDescUserID is the schema descriptor for user_id field.
	attemptsessionDescUserID := attemptsessionFields[1].Descriptor()
	// attemptsession.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attemptsession.UserIDValidator = attemptsessionDescUserID.Validators[0].(func(string) error)
	// attemptsessionDescSkillID is the schema descriptor for skill_id field.
	attemptsessionDescSkillID := attemptsessionFields[2].Descriptor()
	// attemptsession.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	attemptsession.SkillIDValidator = attemptsessionDescSkillID.Validators[0].(func(string) error)
	// attemptsessionDescStartTime is the schema descriptor for start_time field.
	attemptsessionDescStartTime := attemptsessionFields[5].Descriptor()
	// attemptsession.DefaultStartTime holds the default value on creation for the start_time field.
	attemptsession.DefaultStartTime = attemptsessionDescStartTime.Default.(func() time.Time)
	erroreventMixin := schema.ErrorEvent{}.Mixin()
	erroreventMixinFields0 := erroreventMixin[0].Fields()
	_ = erroreventMixinFields0
	erroreventMixinFields1 := erroreventMixin[1].Fields()
	_ = erroreventMixinFields1
	erroreventFields := schema.ErrorEvent{}.Fields()
	_ = erroreventFields
	// erroreventDescTimestamp is the schema descriptor for timestamp field.
	erroreventDescTimestamp := erroreventMixinFields0[1].Descriptor()
	// errorevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	errorevent.DefaultTimestamp = erroreventDescTimestamp.Default.(func() time.Time)
	// erroreventDescAttemptID is the schema descriptor for attempt_id field.
	erroreventDescAttemptID := erroreventMixinFields1[0].Descriptor()
	// errorevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	errorevent.AttemptIDValidator = erroreventDescAttemptID.Validators[0].(func(string) error)
	// erroreventDescUserID is the schema descriptor for user_id field.
	erroreventDescUserID := erroreventMixinFields1[1].Descriptor()
	// errorevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	errorevent.UserIDValidator = erroreventDescUserID.Validators[0].(func(string) error)
	// erroreventDescSkillID is the schema descriptor for skill_id field.
	erroreventDescSkillID := erroreventMixinFields1[2].Descriptor()
	// errorevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	errorevent.SkillIDValidator = erroreventDescSkillID.Validators[0].(func(string) error)
	// erroreventDescStepNumber is the schema descriptor for step_number field.
	erroreventDescStepNumber := erroreventFields[0].Descriptor()
	// errorevent.StepNumberValidator is a validator for the "step_number" field. It is called by the builders before save.
	errorevent.StepNumberValidator = erroreventDescStepNumber.Validators[0].(func(int) error)
	// erroreventDescErrorType is the schema descriptor for error_type field.
	erroreventDescErrorType := erroreventFields[1].Descriptor()
	// errorevent.ErrorTypeValidator is a validator for the "error_type" field. It is called by the builders before save.
	errorevent.ErrorTypeValidator = erroreventDescErrorType.Validators[0].(func(string) error)
	stepeventMixin := schema.StepEvent{}.Mixin()
	stepeventMixinFields0 := stepeventMixin[0].Fields()
	_ = stepeventMixinFields0
	stepeventMixinFields1 := stepeventMixin[1].Fields()
	_ = stepeventMixinFields1
	stepeventFields := schema.StepEvent{}.Fields()
	_ = stepeventFields
	// stepeventDescTimestamp is the schema descriptor for timestamp field.
	stepeventDescTimestamp := stepeventMixinFields0[1].Descriptor()
	// stepevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	stepevent.DefaultTimestamp = stepeventDescTimestamp.Default.(func() time.Time)
	// stepeventDescAttemptID is the schema descriptor for attempt_id field.
	stepeventDescAttemptID := stepeventMixinFields1[0].Descriptor()
	// stepevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	stepevent.AttemptIDValidator = stepeventDescAttemptID.Validators[0].(func(string) error)
	// stepeventDescUserID is the schema descriptor for user_id field.
	stepeventDescUserID := stepeventMixinFields1[1].Descriptor()
	// stepevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	stepevent.UserIDValidator = stepeventDescUserID.Validators[0].(func(string) error)
	// stepeventDescSkillID is the schema descriptor for skill_id field.
	stepeventDescSkillID := stepeventMixinFields1[2].Descriptor()
	// stepevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	stepevent.SkillIDValidator = stepeventDescSkillID.Validators[0].(func(string) error)
	// stepeventDescStepNumber is the schema descriptor for step_number field.
	stepeventDescStepNumber := stepeventFields[0].Descriptor()
	// stepevent.StepNumberValidator is a validator for the "step_number" field. It is called by the builders before save.
	stepevent.StepNumberValidator = stepeventDescStepNumber.Validators[0].(func(int) error)
	telemetryeventMixin := schema.TelemetryEvent{}.Mixin()
	telemetryeventMixinFields0 := telemetryeventMixin[0].Fields()
	_ = telemetryeventMixinFields0
	telemetryeventMixinFields1 := telemetryeventMixin[1].Fields()
	_ = telemetryeventMixinFields1
	telemetryeventFields := schema.TelemetryEvent{}.Fields()
	_ = telemetryeventFields
	// telemetryeventDescTimestamp is the schema descriptor for timestamp field.
	telemetryeventDescTimestamp := telemetryeventMixinFields0[1].Descriptor()
	// telemetryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	telemetryevent.DefaultTimestamp = telemetryeventDescTimestamp.Default.(func() time.Time)
	// telemetryeventDescAttemptID is the schema descriptor for attempt_id field.
	telemetryeventDescAttemptID := telemetryeventMixinFields1[0].Descriptor()
	// telemetryevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	telemetryevent.AttemptIDValidator = telemetryeventDescAttemptID.Validators[0].(func(string) error)
	// telemetryeventDescUserID is the schema descriptor for user_id field.
	telemetryeventDescUserID := telemetryeventMixinFields1[1].Descriptor()
	// telemetryevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	telemetryevent.UserIDValidator = telemetryeventDescUserID.Validators[0].(func(string) error)
	// telemetryeventDescSkillID is the schema descriptor for skill_id field.
	telemetryeventDescSkillID := telemetryeventMixinFields1[2].Descriptor()
	// telemetryevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	telemetryevent.SkillIDValidator = telemetryeventDescSkillID.Validators[0].(func(string) error)
	// telemetryeventDescStepNumber is the schema descriptor for step_number field.
	telemetryeventDescStepNumber := telemetryeventFields[0].Descriptor()
	// telemetryevent.StepNumberValidator is a validator for the "step_number" field. It is called by the builders before save.
	telemetryevent.StepNumberValidator = telemetryeventDescStepNumber.Validators[0].(func(int) error)
	// telemetryeventDescSuccess is the schema descriptor for success field.
	telemetryeventDescSuccess := telemetryeventFields[3].Descriptor()
	// telemetryevent.DefaultSuccess holds the default value on creation for the success field.
	telemetryevent.DefaultSuccess = telemetryeventDescSuccess.Default.(bool)
	// telemetryeventDescHoldDurationMs is the schema descriptor for hold_duration_ms field.
	telemetryeventDescHoldDurationMs := telemetryeventFields[4].Descriptor()
	// telemetryevent.DefaultHoldDurationMs holds the default value on creation for the hold_duration_ms field.
	telemetryevent.DefaultHoldDurationMs = telemetryeventDescHoldDurationMs.Default.(int64)
	// telemetryeventDescPeakForce is the schema descriptor for peak_force field.
	telemetryeventDescPeakForce := telemetryeventFields[5].Descriptor()
	// telemetryevent.DefaultPeakForce holds the default value on creation for the peak_force field.
	telemetryevent.DefaultPeakForce = telemetryeventDescPeakForce.Default.(float64)
	// telemetryeventDescDistanceM is the schema descriptor for distance_m field.
	telemetryeventDescDistanceM := telemetryeventFields[6].Descriptor()
	// telemetryevent.DefaultDistanceM holds the default value on creation for the distance_m field.
	telemetryevent.DefaultDistanceM = telemetryeventDescDistanceM.Default.(float64)
	// telemetryeventDescAssistUsed is the schema descriptor for assist_used field.
	telemetryeventDescAssistUsed := telemetryeventFields[7].Descriptor()
	// telemetryevent.DefaultAssistUsed holds the default value on creation for the assist_used field.
	telemetryevent.DefaultAssistUsed = telemetryeventDescAssistUsed.Default.(bool)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUserID is the schema descriptor for user_id field.
	userDescUserID := userFields[0].Descriptor()
	// user.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	user.UserIDValidator = userDescUserID.Validators[0].(func(string) error)
	// userDescCurrentPhase is the schema descriptor for current_phase field.
	userDescCurrentPhase := userFields[1].Descriptor()
	// user.DefaultCurrentPhase holds the default value on creation for the current_phase field.
	user.DefaultCurrentPhase = userDescCurrentPhase.Default.(string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[2].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
