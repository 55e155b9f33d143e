// Package tracker drives the attempt lifecycle: starting an attempt,
// recording step results, errors and telemetry while it is in progress,
// and sealing it with a success verdict. Mutations on the same attempt
// are serialized; the conditional status update in the store is the
// backstop against double completion.
package tracker

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"wheeltrack/internal/catalog"
	"wheeltrack/internal/fault"
	"wheeltrack/internal/store"
	"wheeltrack/internal/taxonomy"
)

// Tracker coordinates attempt mutations against the catalog and store.
type Tracker struct {
	users    store.UserRepo
	attempts store.AttemptRepo
	catalog  *catalog.Catalog

	mu    sync.Mutex
	locks map[string]*attemptLock
}

// attemptLock serializes mutations on one attempt. refs counts holders and
// waiters so the map entry can be dropped once the last one releases; a
// waiter arriving while refs > 0 always gets the same mutex.
type attemptLock struct {
	mu   sync.Mutex
	refs int
}

// New creates a Tracker over the given repositories and skill catalog.
func New(users store.UserRepo, attempts store.AttemptRepo, cat *catalog.Catalog) *Tracker {
	return &Tracker{
		users:    users,
		attempts: attempts,
		catalog:  cat,
		locks:    map[string]*attemptLock{},
	}
}

// acquire locks the per-attempt mutex, creating it on first use.
func (t *Tracker) acquire(attemptID string) *attemptLock {
	t.mu.Lock()
	l := t.locks[attemptID]
	if l == nil {
		l = &attemptLock{}
		t.locks[attemptID] = l
	}
	l.refs++
	t.mu.Unlock()

	l.mu.Lock()
	return l
}

// release unlocks the per-attempt mutex and removes the map entry when no
// other goroutine holds or waits on it.
func (t *Tracker) release(attemptID string, l *attemptLock) {
	l.mu.Unlock()
	t.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(t.locks, attemptID)
	}
	t.mu.Unlock()
}

func newAttemptID() string {
	return "att_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// StartAttempt opens a new in-progress attempt for a known user and skill.
func (t *Tracker) StartAttempt(ctx context.Context, userID, skillID string) (*store.Attempt, error) {
	u, err := t.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fault.NotFoundf("user %s not found", userID)
	}
	if !t.catalog.Has(skillID) {
		return nil, fault.NotFoundf("skill %s not found", skillID)
	}

	a := &store.Attempt{
		AttemptID: newAttemptID(),
		UserID:    userID,
		SkillID:   skillID,
		Status:    store.StatusInProgress,
		StartTime: time.Now().UTC(),
	}
	if err := t.attempts.CreateAttempt(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// inProgress loads an attempt and rejects mutations on sealed or unknown ones.
func (t *Tracker) inProgress(ctx context.Context, attemptID string) (*store.Attempt, error) {
	a, err := t.attempts.GetAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fault.NotFoundf("attempt %s not found", attemptID)
	}
	if a.Completed() {
		return nil, fault.InvalidStatef("attempt %s is already completed", attemptID)
	}
	return a, nil
}

// RecordInput logs one observed input against an expected one and reports
// whether they matched.
func (t *Tracker) RecordInput(ctx context.Context, attemptID string, stepNumber int, expectedInput, actualInput string) (bool, error) {
	if stepNumber < 1 {
		return false, fault.Invalidf("step_number must be >= 1, got %d", stepNumber)
	}

	l := t.acquire(attemptID)
	defer t.release(attemptID, l)

	a, err := t.inProgress(ctx, attemptID)
	if err != nil {
		return false, err
	}

	correct := expectedInput == actualInput
	rec := store.StepRecord{
		AttemptID:     a.AttemptID,
		UserID:        a.UserID,
		SkillID:       a.SkillID,
		StepNumber:    stepNumber,
		ExpectedInput: expectedInput,
		ActualInput:   actualInput,
		Correct:       correct,
		Timestamp:     time.Now().UTC(),
	}
	if err := t.attempts.AppendStep(ctx, rec); err != nil {
		return false, err
	}
	return correct, nil
}

// RecordError logs one classified error against the attempt. The error type
// must be part of the fixed taxonomy.
func (t *Tracker) RecordError(ctx context.Context, attemptID string, stepNumber int, errorType, expectedAction, actualAction string) error {
	if stepNumber < 1 {
		return fault.Invalidf("step_number must be >= 1, got %d", stepNumber)
	}
	if !taxonomy.Valid(errorType) {
		return fault.Invalidf("unknown error type %q", errorType)
	}

	l := t.acquire(attemptID)
	defer t.release(attemptID, l)

	a, err := t.inProgress(ctx, attemptID)
	if err != nil {
		return err
	}

	rec := store.ErrorRecord{
		AttemptID:      a.AttemptID,
		UserID:         a.UserID,
		SkillID:        a.SkillID,
		StepNumber:     stepNumber,
		ErrorType:      errorType,
		ExpectedAction: expectedAction,
		ActualAction:   actualAction,
		Timestamp:      time.Now().UTC(),
	}
	return t.attempts.AppendError(ctx, rec)
}

// Telemetry is one per-step measurement reported by the simulator.
type Telemetry struct {
	StepNumber     int
	ExpectedAction string
	ActualAction   string
	Success        bool
	HoldDurationMs int64
	PeakForce      float64
	DistanceM      float64
	AssistUsed     bool
}

// RecordTelemetry logs one simulator measurement against the attempt.
func (t *Tracker) RecordTelemetry(ctx context.Context, attemptID string, tm Telemetry) error {
	if tm.StepNumber < 1 {
		return fault.Invalidf("step_number must be >= 1, got %d", tm.StepNumber)
	}

	l := t.acquire(attemptID)
	defer t.release(attemptID, l)

	a, err := t.inProgress(ctx, attemptID)
	if err != nil {
		return err
	}

	rec := store.TelemetryRecord{
		AttemptID:      a.AttemptID,
		UserID:         a.UserID,
		SkillID:        a.SkillID,
		StepNumber:     tm.StepNumber,
		ExpectedAction: tm.ExpectedAction,
		ActualAction:   tm.ActualAction,
		Success:        tm.Success,
		HoldDurationMs: tm.HoldDurationMs,
		PeakForce:      tm.PeakForce,
		DistanceM:      tm.DistanceM,
		AssistUsed:     tm.AssistUsed,
		Timestamp:      time.Now().UTC(),
	}
	return t.attempts.AppendTelemetry(ctx, rec)
}

// Complete seals the attempt with a success verdict. It fails with an
// invalid-state fault when the attempt has already been completed.
func (t *Tracker) Complete(ctx context.Context, attemptID string, success bool) (*store.Attempt, error) {
	l := t.acquire(attemptID)
	defer t.release(attemptID, l)

	a, err := t.attempts.GetAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fault.NotFoundf("attempt %s not found", attemptID)
	}
	if a.Completed() {
		return nil, fault.InvalidStatef("attempt %s is already completed", attemptID)
	}

	end := time.Now().UTC()
	ok, err := t.attempts.CompleteAttempt(ctx, attemptID, success, end)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost a race against another completion.
		return nil, fault.InvalidStatef("attempt %s is already completed", attemptID)
	}
	if err := t.users.Touch(ctx, a.UserID); err != nil {
		return nil, err
	}

	a.Status = store.StatusCompleted
	a.Success = &success
	a.EndTime = &end
	return a, nil
}
