package store

import (
	"context"
	"fmt"
	"time"

	"wheeltrack/ent"
	"wheeltrack/ent/attemptsession"
	"wheeltrack/ent/errorevent"
	"wheeltrack/ent/predicate"
	"wheeltrack/ent/stepevent"
)

// attemptRepo implements AttemptRepo backed by ent and the global sequence
// counter.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) CreateAttempt(ctx context.Context, a *Attempt) error {
	_, err := r.client.AttemptSession.Create().
		SetAttemptID(a.AttemptID).
		SetUserID(a.UserID).
		SetSkillID(a.SkillID).
		SetStatus(attemptsession.StatusInProgress).
		SetStartTime(a.StartTime).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) GetAttempt(ctx context.Context, attemptID string) (*Attempt, error) {
	as, err := r.client.AttemptSession.Query().
		Where(attemptsession.AttemptIDEQ(attemptID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query attempt: %w", err)
	}
	return entAttemptToRecord(as), nil
}

func (r *attemptRepo) CompleteAttempt(ctx context.Context, attemptID string, success bool, endTime time.Time) (bool, error) {
	n, err := r.client.AttemptSession.Update().
		Where(
			attemptsession.AttemptIDEQ(attemptID),
			attemptsession.StatusEQ(attemptsession.StatusInProgress),
		).
		SetStatus(attemptsession.StatusCompleted).
		SetSuccess(success).
		SetEndTime(endTime).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("complete attempt: %w", err)
	}
	return n > 0, nil
}

func (r *attemptRepo) AppendStep(ctx context.Context, rec StepRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.StepEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(rec.AttemptID).
		SetUserID(rec.UserID).
		SetSkillID(rec.SkillID).
		SetStepNumber(rec.StepNumber).
		SetExpectedInput(rec.ExpectedInput).
		SetActualInput(rec.ActualInput).
		SetCorrect(rec.Correct)
	if !rec.Timestamp.IsZero() {
		builder = builder.SetTimestamp(rec.Timestamp)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save step event: %w", err)
	}
	return nil
}

func (r *attemptRepo) AppendError(ctx context.Context, rec ErrorRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ErrorEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(rec.AttemptID).
		SetUserID(rec.UserID).
		SetSkillID(rec.SkillID).
		SetStepNumber(rec.StepNumber).
		SetErrorType(rec.ErrorType).
		SetExpectedAction(rec.ExpectedAction).
		SetActualAction(rec.ActualAction)
	if !rec.Timestamp.IsZero() {
		builder = builder.SetTimestamp(rec.Timestamp)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save error event: %w", err)
	}
	return nil
}

func (r *attemptRepo) AppendTelemetry(ctx context.Context, rec TelemetryRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.TelemetryEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(rec.AttemptID).
		SetUserID(rec.UserID).
		SetSkillID(rec.SkillID).
		SetStepNumber(rec.StepNumber).
		SetExpectedAction(rec.ExpectedAction).
		SetActualAction(rec.ActualAction).
		SetSuccess(rec.Success).
		SetHoldDurationMs(rec.HoldDurationMs).
		SetPeakForce(rec.PeakForce).
		SetDistanceM(rec.DistanceM).
		SetAssistUsed(rec.AssistUsed)
	if !rec.Timestamp.IsZero() {
		builder = builder.SetTimestamp(rec.Timestamp)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save telemetry event: %w", err)
	}
	return nil
}

func (r *attemptRepo) AttemptsByUser(ctx context.Context, userID string) ([]Attempt, error) {
	return r.queryAttempts(ctx, attemptsession.UserIDEQ(userID))
}

func (r *attemptRepo) AttemptsBySkill(ctx context.Context, skillID string) ([]Attempt, error) {
	return r.queryAttempts(ctx, attemptsession.SkillIDEQ(skillID))
}

func (r *attemptRepo) AllAttempts(ctx context.Context) ([]Attempt, error) {
	return r.queryAttempts(ctx)
}

func (r *attemptRepo) queryAttempts(ctx context.Context, ps ...predicate.AttemptSession) ([]Attempt, error) {
	rows, err := r.client.AttemptSession.Query().
		Where(ps...).
		Order(ent.Asc(attemptsession.FieldStartTime)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	out := make([]Attempt, 0, len(rows))
	for _, row := range rows {
		out = append(out, *entAttemptToRecord(row))
	}
	return out, nil
}

func (r *attemptRepo) StepsByAttempt(ctx context.Context, attemptID string) ([]StepRecord, error) {
	rows, err := r.client.StepEvent.Query().
		Where(stepevent.AttemptIDEQ(attemptID)).
		Order(ent.Asc(stepevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query steps: %w", err)
	}
	out := make([]StepRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, entStepToRecord(row))
	}
	return out, nil
}

func (r *attemptRepo) ErrorsByAttempt(ctx context.Context, attemptID string) ([]ErrorRecord, error) {
	return r.queryErrors(ctx, errorevent.AttemptIDEQ(attemptID))
}

func (r *attemptRepo) ErrorsByUser(ctx context.Context, userID string) ([]ErrorRecord, error) {
	return r.queryErrors(ctx, errorevent.UserIDEQ(userID))
}

func (r *attemptRepo) ErrorsBySkill(ctx context.Context, skillID string) ([]ErrorRecord, error) {
	return r.queryErrors(ctx, errorevent.SkillIDEQ(skillID))
}

func (r *attemptRepo) ErrorsBySkillStep(ctx context.Context, skillID string, stepNumber int) ([]ErrorRecord, error) {
	return r.queryErrors(ctx,
		errorevent.SkillIDEQ(skillID),
		errorevent.StepNumberEQ(stepNumber),
	)
}

func (r *attemptRepo) AllErrors(ctx context.Context) ([]ErrorRecord, error) {
	return r.queryErrors(ctx)
}

func (r *attemptRepo) queryErrors(ctx context.Context, ps ...predicate.ErrorEvent) ([]ErrorRecord, error) {
	rows, err := r.client.ErrorEvent.Query().
		Where(ps...).
		Order(ent.Asc(errorevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query errors: %w", err)
	}
	out := make([]ErrorRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, entErrorToRecord(row))
	}
	return out, nil
}

func entAttemptToRecord(as *ent.AttemptSession) *Attempt {
	return &Attempt{
		AttemptID: as.AttemptID,
		UserID:    as.UserID,
		SkillID:   as.SkillID,
		Status:    Status(as.Status),
		Success:   as.Success,
		StartTime: as.StartTime,
		EndTime:   as.EndTime,
	}
}

func entStepToRecord(se *ent.StepEvent) StepRecord {
	return StepRecord{
		AttemptID:     se.AttemptID,
		UserID:        se.UserID,
		SkillID:       se.SkillID,
		StepNumber:    se.StepNumber,
		ExpectedInput: se.ExpectedInput,
		ActualInput:   se.ActualInput,
		Correct:       se.Correct,
		Timestamp:     se.Timestamp,
	}
}

func entErrorToRecord(ee *ent.ErrorEvent) ErrorRecord {
	return ErrorRecord{
		AttemptID:      ee.AttemptID,
		UserID:         ee.UserID,
		SkillID:        ee.SkillID,
		StepNumber:     ee.StepNumber,
		ErrorType:      ee.ErrorType,
		ExpectedAction: ee.ExpectedAction,
		ActualAction:   ee.ActualAction,
		Timestamp:      ee.Timestamp,
	}
}
