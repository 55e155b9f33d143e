package tracker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"wheeltrack/internal/catalog"
	"wheeltrack/internal/fault"
	"wheeltrack/internal/store"
)

func newTestTracker(t *testing.T) (*Tracker, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return New(s.UserRepo(), s.AttemptRepo(), catalog.Builtin()), s
}

func startAttempt(t *testing.T, tr *Tracker, s *store.Store, userID, skillID string) *store.Attempt {
	t.Helper()
	ctx := context.Background()
	_, err := s.UserRepo().Create(ctx, userID)
	require.NoError(t, err)
	a, err := tr.StartAttempt(ctx, userID, skillID)
	require.NoError(t, err)
	return a
}

func TestStartAttempt(t *testing.T) {
	tr, s := newTestTracker(t)
	a := startAttempt(t, tr, s, "user_001", "a01_10m_forward")

	require.Equal(t, store.StatusInProgress, a.Status)
	require.Nil(t, a.Success)
	require.Regexp(t, `^att_[0-9a-f]{8}$`, a.AttemptID)

	got, err := s.AttemptRepo().GetAttempt(context.Background(), a.AttemptID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "a01_10m_forward", got.SkillID)
}

func TestStartAttemptUnknownUser(t *testing.T) {
	tr, _ := newTestTracker(t)
	_, err := tr.StartAttempt(context.Background(), "ghost", "a01_10m_forward")
	require.True(t, fault.IsNotFound(err), "want not-found, got %v", err)
}

func TestStartAttemptUnknownSkill(t *testing.T) {
	tr, s := newTestTracker(t)
	ctx := context.Background()
	_, err := s.UserRepo().Create(ctx, "user_001")
	require.NoError(t, err)

	_, err = tr.StartAttempt(ctx, "user_001", "a99_moonwalk")
	require.True(t, fault.IsNotFound(err), "want not-found, got %v", err)
}

func TestRecordInput(t *testing.T) {
	tr, s := newTestTracker(t)
	ctx := context.Background()
	a := startAttempt(t, tr, s, "user_001", "a01_10m_forward")

	correct, err := tr.RecordInput(ctx, a.AttemptID, 1, "W", "W")
	require.NoError(t, err)
	require.True(t, correct)

	correct, err = tr.RecordInput(ctx, a.AttemptID, 2, "W", "S")
	require.NoError(t, err)
	require.False(t, correct)

	steps, err := s.AttemptRepo().StepsByAttempt(ctx, a.AttemptID)
	require.NoError(t, err)
	require.Len(t, steps, 2)
	require.True(t, steps[0].Correct)
	require.False(t, steps[1].Correct)
}

func TestRecordInputBadStepNumber(t *testing.T) {
	tr, s := newTestTracker(t)
	a := startAttempt(t, tr, s, "user_001", "a01_10m_forward")

	_, err := tr.RecordInput(context.Background(), a.AttemptID, 0, "W", "W")
	require.True(t, fault.IsValidation(err), "want validation, got %v", err)
}

func TestRecordInputUnknownAttempt(t *testing.T) {
	tr, _ := newTestTracker(t)
	_, err := tr.RecordInput(context.Background(), "att_missing", 1, "W", "W")
	require.True(t, fault.IsNotFound(err), "want not-found, got %v", err)
}

func TestRecordError(t *testing.T) {
	tr, s := newTestTracker(t)
	ctx := context.Background()
	a := startAttempt(t, tr, s, "user_001", "a02_2m_backward")

	err := tr.RecordError(ctx, a.AttemptID, 2, "wrong_direction", "move_backward", "move_forward")
	require.NoError(t, err)

	errs, err := s.AttemptRepo().ErrorsByAttempt(ctx, a.AttemptID)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	require.Equal(t, "wrong_direction", errs[0].ErrorType)
	require.Equal(t, "move_forward", errs[0].ActualAction)
}

func TestRecordErrorUnknownType(t *testing.T) {
	tr, s := newTestTracker(t)
	a := startAttempt(t, tr, s, "user_001", "a02_2m_backward")

	err := tr.RecordError(context.Background(), a.AttemptID, 1, "wheel_fell_off", "brake", "brake")
	require.True(t, fault.IsValidation(err), "want validation, got %v", err)
}

func TestRecordTelemetry(t *testing.T) {
	tr, s := newTestTracker(t)
	ctx := context.Background()
	a := startAttempt(t, tr, s, "user_001", "a25_curb_up_15cm")

	err := tr.RecordTelemetry(ctx, a.AttemptID, Telemetry{
		StepNumber:     3,
		ExpectedAction: "pop_casters",
		ActualAction:   "pop_casters",
		Success:        true,
		HoldDurationMs: 420,
		PeakForce:      38.5,
		DistanceM:      0.05,
	})
	require.NoError(t, err)
}

func TestCompleteAttempt(t *testing.T) {
	tr, s := newTestTracker(t)
	ctx := context.Background()
	a := startAttempt(t, tr, s, "user_001", "a01_10m_forward")

	done, err := tr.Complete(ctx, a.AttemptID, true)
	require.NoError(t, err)
	require.True(t, done.Completed())
	require.True(t, done.Succeeded())
	require.NotNil(t, done.EndTime)

	// Completing an attempt bumps the user's activity timestamp.
	u, err := s.UserRepo().Get(ctx, "user_001")
	require.NoError(t, err)
	require.NotNil(t, u.UpdatedAt)
}

func TestCompleteTwice(t *testing.T) {
	tr, s := newTestTracker(t)
	ctx := context.Background()
	a := startAttempt(t, tr, s, "user_001", "a01_10m_forward")

	_, err := tr.Complete(ctx, a.AttemptID, false)
	require.NoError(t, err)

	_, err = tr.Complete(ctx, a.AttemptID, true)
	require.True(t, fault.IsInvalidState(err), "want invalid-state, got %v", err)

	// The first verdict stands.
	got, err := s.AttemptRepo().GetAttempt(ctx, a.AttemptID)
	require.NoError(t, err)
	require.True(t, got.Failed())
}

func TestMutateCompletedAttempt(t *testing.T) {
	tr, s := newTestTracker(t)
	ctx := context.Background()
	a := startAttempt(t, tr, s, "user_001", "a01_10m_forward")

	_, err := tr.Complete(ctx, a.AttemptID, true)
	require.NoError(t, err)

	_, err = tr.RecordInput(ctx, a.AttemptID, 1, "W", "W")
	require.True(t, fault.IsInvalidState(err), "want invalid-state, got %v", err)

	err = tr.RecordError(ctx, a.AttemptID, 1, "timeout", "move_forward", "")
	require.True(t, fault.IsInvalidState(err), "want invalid-state, got %v", err)
}

func TestConcurrentCompletionSingleWinner(t *testing.T) {
	tr, s := newTestTracker(t)
	ctx := context.Background()
	a := startAttempt(t, tr, s, "user_001", "a01_10m_forward")

	const n = 8
	results := make(chan error, n)
	for i := 0; i < n; i++ {
		go func(success bool) {
			_, err := tr.Complete(ctx, a.AttemptID, success)
			results <- err
		}(i%2 == 0)
	}

	var wins, conflicts int
	for i := 0; i < n; i++ {
		err := <-results
		switch {
		case err == nil:
			wins++
		case fault.IsInvalidState(err):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, wins)
	require.Equal(t, n-1, conflicts)
}

func TestAttemptLocksDoNotAccumulate(t *testing.T) {
	tr, s := newTestTracker(t)
	ctx := context.Background()

	// In-progress attempts that never complete must not pin a lock entry.
	for i := 0; i < 5; i++ {
		a := startAttempt(t, tr, s, "user_001", "a01_10m_forward")
		_, err := tr.RecordInput(ctx, a.AttemptID, 1, "W", "W")
		require.NoError(t, err)
		err = tr.RecordError(ctx, a.AttemptID, 1, "timing_error", "brake", "move_forward")
		require.NoError(t, err)
	}

	tr.mu.Lock()
	defer tr.mu.Unlock()
	require.Empty(t, tr.locks)
}
