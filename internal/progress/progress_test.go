package progress

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wheeltrack/internal/catalog"
	"wheeltrack/internal/fault"
	"wheeltrack/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return New(s.UserRepo(), s.AttemptRepo(), catalog.Builtin(), s), s
}

func seedAttempt(t *testing.T, s *store.Store, id, userID, skillID string, success *bool) {
	t.Helper()
	ctx := context.Background()
	a := &store.Attempt{
		AttemptID: id,
		UserID:    userID,
		SkillID:   skillID,
		Status:    store.StatusInProgress,
		StartTime: time.Now().UTC(),
	}
	require.NoError(t, s.AttemptRepo().CreateAttempt(ctx, a))
	if success != nil {
		ok, err := s.AttemptRepo().CompleteAttempt(ctx, id, *success, time.Now().UTC())
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func boolp(b bool) *bool { return &b }

func TestCreateUserIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "user_001")
	require.NoError(t, err)
	require.Equal(t, PhaseFoundation, u.CurrentPhase)

	again, err := svc.CreateUser(ctx, "user_001")
	require.NoError(t, err)
	require.True(t, again.CreatedAt.Equal(u.CreatedAt))
}

func TestCreateUserEmptyID(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.CreateUser(context.Background(), "")
	require.True(t, fault.IsValidation(err), "want validation, got %v", err)
}

func TestGetUserUnknown(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.GetUser(context.Background(), "ghost")
	require.True(t, fault.IsNotFound(err), "want not-found, got %v", err)
}

func TestProgressDerived(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	_, err := svc.CreateUser(ctx, "user_001")
	require.NoError(t, err)

	seedAttempt(t, s, "att_1", "user_001", "a01_10m_forward", boolp(true))
	seedAttempt(t, s, "att_2", "user_001", "a01_10m_forward", boolp(false))
	seedAttempt(t, s, "att_3", "user_001", "a02_2m_backward", nil) // in progress

	p, err := svc.Progress(ctx, "user_001")
	require.NoError(t, err)
	require.Equal(t, 3, p.TotalAttempts)
	require.Len(t, p.SkillProgress, 2)

	a01 := p.SkillProgress["a01_10m_forward"]
	require.Equal(t, 2, a01.TotalAttempts)
	require.Equal(t, 1, a01.SuccessfulAttempts)
	require.InDelta(t, 0.5, a01.SuccessRate, 1e-9)
	require.NotNil(t, a01.LastAttempt)

	a02 := p.SkillProgress["a02_2m_backward"]
	require.Equal(t, 1, a02.TotalAttempts)
	require.Zero(t, a02.SuccessfulAttempts)
}

func TestProgressUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Progress(context.Background(), "ghost")
	require.True(t, fault.IsNotFound(err), "want not-found, got %v", err)
}

func TestPhasePromotion(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	_, err := svc.CreateUser(ctx, "user_001")
	require.NoError(t, err)

	// Master two of the three Foundation skills (>= 60% of the phase).
	i := 0
	for _, skillID := range []string{"a01_10m_forward", "a02_2m_backward"} {
		for n := 0; n < 3; n++ {
			i++
			seedAttempt(t, s, attID(i), "user_001", skillID, boolp(true))
		}
	}

	p, err := svc.Progress(ctx, "user_001")
	require.NoError(t, err)
	require.Equal(t, PhaseMobility, p.CurrentPhase)

	// The promotion is persisted, not just reported.
	u, err := svc.GetUser(ctx, "user_001")
	require.NoError(t, err)
	require.Equal(t, PhaseMobility, u.CurrentPhase)
}

func TestPhaseNotClearedBelowThreshold(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	_, err := svc.CreateUser(ctx, "user_001")
	require.NoError(t, err)

	// One of three Foundation skills mastered is below the 60% bar.
	for n := 0; n < 3; n++ {
		seedAttempt(t, s, attID(n), "user_001", "a01_10m_forward", boolp(true))
	}

	p, err := svc.Progress(ctx, "user_001")
	require.NoError(t, err)
	require.Equal(t, PhaseFoundation, p.CurrentPhase)
}

func attID(i int) string {
	return "att_" + string(rune('a'+i/26)) + string(rune('a'+i%26))
}

func TestUserSkillStats(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	_, err := svc.CreateUser(ctx, "user_001")
	require.NoError(t, err)

	seedAttempt(t, s, "att_1", "user_001", "a02_2m_backward", boolp(true))
	seedAttempt(t, s, "att_2", "user_001", "a02_2m_backward", boolp(false))
	require.NoError(t, s.AttemptRepo().AppendError(ctx, store.ErrorRecord{
		AttemptID: "att_2", UserID: "user_001", SkillID: "a02_2m_backward",
		StepNumber: 1, ErrorType: "wrong_direction",
		ExpectedAction: "move_backward", ActualAction: "move_forward",
	}))

	stats, err := svc.SkillStats(ctx, "user_001", "a02_2m_backward")
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalAttempts)
	require.Equal(t, 1, stats.SuccessfulAttempts)
	require.InDelta(t, 0.5, stats.SuccessRate, 1e-9)
	require.Equal(t, []string{"wrong_direction"}, stats.CommonErrorTypes)
}

func TestUserSkillStatsUnknownSkill(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.CreateUser(ctx, "user_001")
	require.NoError(t, err)

	_, err = svc.SkillStats(ctx, "user_001", "a99_moonwalk")
	require.True(t, fault.IsNotFound(err), "want not-found, got %v", err)
}

func TestCommonErrorsGroupingAndCap(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	_, err := svc.CreateUser(ctx, "user_001")
	require.NoError(t, err)
	seedAttempt(t, s, "att_1", "user_001", "a02_2m_backward", boolp(false))

	appendErr := func(step int, errType string) {
		require.NoError(t, s.AttemptRepo().AppendError(ctx, store.ErrorRecord{
			AttemptID: "att_1", UserID: "user_001", SkillID: "a02_2m_backward",
			StepNumber: step, ErrorType: errType,
			ExpectedAction: "move_backward", ActualAction: "move_forward",
		}))
	}

	// One group of three, then twelve singleton groups.
	for i := 0; i < 3; i++ {
		appendErr(1, "wrong_direction")
	}
	for step := 2; step <= 13; step++ {
		appendErr(step, "wrong_input")
	}

	errs, err := svc.CommonErrors(ctx, "user_001", "")
	require.NoError(t, err)
	require.Len(t, errs, 10)

	top := errs[0]
	require.Equal(t, 3, top.Count)
	require.Equal(t, "wrong_direction", top.ErrorType)
	// Singletons keep arrival order.
	require.Equal(t, 2, errs[1].StepNumber)
	require.Equal(t, 10, errs[9].StepNumber)
}

func TestWeakSteps(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	_, err := svc.CreateUser(ctx, "user_001")
	require.NoError(t, err)
	seedAttempt(t, s, "att_1", "user_001", "a02_2m_backward", boolp(false))
	seedAttempt(t, s, "att_2", "user_001", "a01_10m_forward", boolp(false))

	for i := 0; i < 2; i++ {
		require.NoError(t, s.AttemptRepo().AppendError(ctx, store.ErrorRecord{
			AttemptID: "att_1", UserID: "user_001", SkillID: "a02_2m_backward",
			StepNumber: 2, ErrorType: "wrong_direction",
			ExpectedAction: "move_backward", ActualAction: "move_forward",
		}))
	}
	require.NoError(t, s.AttemptRepo().AppendError(ctx, store.ErrorRecord{
		AttemptID: "att_1", UserID: "user_001", SkillID: "a02_2m_backward",
		StepNumber: 1, ErrorType: "timing_error",
		ExpectedAction: "brake", ActualAction: "move_forward",
	}))
	require.NoError(t, s.AttemptRepo().AppendError(ctx, store.ErrorRecord{
		AttemptID: "att_2", UserID: "user_001", SkillID: "a01_10m_forward",
		StepNumber: 1, ErrorType: "wrong_input",
		ExpectedAction: "move_forward", ActualAction: "brake",
	}))

	weak, err := svc.WeakSteps(ctx, "user_001", "")
	require.NoError(t, err)
	require.Len(t, weak, 3)
	require.Equal(t, WeakStep{SkillID: "a02_2m_backward", StepNumber: 2, ErrorCount: 2}, weak[0])

	// A skill filter scopes the ranking to that skill only.
	weak, err = svc.WeakSteps(ctx, "user_001", "a01_10m_forward")
	require.NoError(t, err)
	require.Len(t, weak, 1)
	require.Equal(t, "a01_10m_forward", weak[0].SkillID)

	weak, err = svc.WeakSteps(ctx, "user_001", "a03_5m_backward")
	require.NoError(t, err)
	require.Empty(t, weak)
}

func TestClearProgress(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	_, err := svc.CreateUser(ctx, "user_001")
	require.NoError(t, err)
	for n := 0; n < 3; n++ {
		seedAttempt(t, s, attID(n), "user_001", "a01_10m_forward", boolp(true))
	}

	require.NoError(t, svc.ClearProgress(ctx, "user_001"))

	p, err := svc.Progress(ctx, "user_001")
	require.NoError(t, err)
	require.Zero(t, p.TotalAttempts)
	require.Empty(t, p.SkillProgress)
	require.Equal(t, PhaseFoundation, p.CurrentPhase)

	// The user record survives, so clearing again succeeds.
	require.NoError(t, svc.ClearProgress(ctx, "user_001"))
}

func TestClearProgressUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.ClearProgress(context.Background(), "ghost")
	require.True(t, fault.IsNotFound(err), "want not-found, got %v", err)
}

func TestPhaseSkills(t *testing.T) {
	svc, _ := newTestService(t)
	require.Len(t, svc.PhaseSkills(PhaseFoundation), 3)
	require.Len(t, svc.PhaseSkills(PhaseMobility), 4)
	require.Len(t, svc.PhaseSkills(PhaseAdvanced), 6)
	require.Empty(t, svc.PhaseSkills("Graduate"))
}
