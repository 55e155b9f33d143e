package analytics

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"wheeltrack/internal/fault"
	"wheeltrack/internal/store"
)

// fakeSource is an in-memory event log for aggregation tests.
type fakeSource struct {
	attempts []store.Attempt
	errors   []store.ErrorRecord
}

func (f *fakeSource) addAttempt(userID, skillID string, completed bool, success bool) {
	a := store.Attempt{
		AttemptID: fmt.Sprintf("att_%04d", len(f.attempts)),
		UserID:    userID,
		SkillID:   skillID,
		Status:    store.StatusInProgress,
	}
	if completed {
		a.Status = store.StatusCompleted
		a.Success = &success
	}
	f.attempts = append(f.attempts, a)
}

func (f *fakeSource) addError(userID, skillID string, step int, errType, expected, actual string) {
	f.errors = append(f.errors, store.ErrorRecord{
		AttemptID:      "att_x",
		UserID:         userID,
		SkillID:        skillID,
		StepNumber:     step,
		ErrorType:      errType,
		ExpectedAction: expected,
		ActualAction:   actual,
	})
}

func (f *fakeSource) AttemptsByUser(_ context.Context, userID string) ([]store.Attempt, error) {
	var out []store.Attempt
	for _, a := range f.attempts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeSource) AttemptsBySkill(_ context.Context, skillID string) ([]store.Attempt, error) {
	var out []store.Attempt
	for _, a := range f.attempts {
		if a.SkillID == skillID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeSource) AllAttempts(context.Context) ([]store.Attempt, error) {
	return f.attempts, nil
}

func (f *fakeSource) ErrorsByUser(_ context.Context, userID string) ([]store.ErrorRecord, error) {
	var out []store.ErrorRecord
	for _, e := range f.errors {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeSource) ErrorsBySkill(_ context.Context, skillID string) ([]store.ErrorRecord, error) {
	var out []store.ErrorRecord
	for _, e := range f.errors {
		if e.SkillID == skillID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeSource) AllErrors(context.Context) ([]store.ErrorRecord, error) {
	return f.errors, nil
}

func TestSkillStatsFailureRate(t *testing.T) {
	src := &fakeSource{}
	// 25 attempts on a02, 15 failed, 10 succeeded.
	for i := 0; i < 25; i++ {
		src.addAttempt(fmt.Sprintf("u%02d", i%5), "a02_2m_backward", true, i >= 15)
	}

	stats, err := New(src).SkillStats(context.Background(), "a02_2m_backward")
	require.NoError(t, err)
	require.Equal(t, 25, stats.TotalAttempts)
	require.Equal(t, 15, stats.FailedAttempts)
	require.InDelta(t, 0.6, stats.FailureRate, 1e-9)
	require.False(t, stats.GeneratedAt.IsZero())
}

func TestSkillStatsInProgressCountsTowardTotal(t *testing.T) {
	src := &fakeSource{}
	src.addAttempt("u1", "a01_10m_forward", true, false)
	src.addAttempt("u1", "a01_10m_forward", false, false) // in progress

	stats, err := New(src).SkillStats(context.Background(), "a01_10m_forward")
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalAttempts)
	require.Equal(t, 1, stats.FailedAttempts)
	require.InDelta(t, 0.5, stats.FailureRate, 1e-9)
}

func TestSkillStatsNeverAttempted(t *testing.T) {
	_, err := New(&fakeSource{}).SkillStats(context.Background(), "a01_10m_forward")
	require.True(t, fault.IsNotFound(err), "want not-found, got %v", err)
}

func TestSkillStatsStepRanking(t *testing.T) {
	src := &fakeSource{}
	for i := 0; i < 4; i++ {
		src.addAttempt("u1", "a02_2m_backward", true, false)
	}
	// Step 2: three errors, step 1: one error.
	src.addError("u1", "a02_2m_backward", 2, "wrong_direction", "move_backward", "move_forward")
	src.addError("u1", "a02_2m_backward", 2, "wrong_direction", "move_backward", "move_forward")
	src.addError("u1", "a02_2m_backward", 2, "wrong_input", "move_backward", "brake")
	src.addError("u1", "a02_2m_backward", 1, "timing_error", "brake", "brake")

	stats, err := New(src).SkillStats(context.Background(), "a02_2m_backward")
	require.NoError(t, err)
	require.Len(t, stats.StepErrorRates, 2)

	head := stats.StepErrorRates[0]
	require.Equal(t, 2, head.StepNumber)
	require.Equal(t, 3, head.ErrorCount)
	require.InDelta(t, 0.75, head.ErrorRate, 1e-9)
	require.Equal(t, []string{"wrong_direction", "wrong_input"}, head.CommonErrorTypes)
	require.Equal(t, ActionPair{"move_backward", "move_forward", 2}, head.CommonWrongActions[0])

	require.NotNil(t, stats.MostDifficultStep)
	require.Equal(t, 2, stats.MostDifficultStep.StepNumber)
}

func TestSkillStatsPerStepCaps(t *testing.T) {
	src := &fakeSource{}
	src.addAttempt("u1", "a05_turn_in_place_180", true, false)
	types := []string{"wrong_input", "wrong_direction", "timeout", "timing_error", "collision"}
	for i, et := range types {
		src.addError("u1", "a05_turn_in_place_180", 1, et, "turn_left", fmt.Sprintf("act%d", i))
	}

	stats, err := New(src).SkillStats(context.Background(), "a05_turn_in_place_180")
	require.NoError(t, err)
	head := stats.StepErrorRates[0]
	require.Len(t, head.CommonErrorTypes, 3)
	require.Len(t, head.CommonWrongActions, 3)
	// Equal counts fall back to lexicographic order.
	require.Equal(t, []string{"collision", "timeout", "timing_error"}, head.CommonErrorTypes)
}

func TestGlobalEmpty(t *testing.T) {
	stats, err := New(&fakeSource{}).Global(context.Background())
	require.NoError(t, err)
	require.Zero(t, stats.TotalAttempts)
	require.Zero(t, stats.TotalUsers)
	require.Empty(t, stats.SkillSummary)
	require.Empty(t, stats.ProblematicSteps)
	require.Empty(t, stats.ActionConfusion)
	require.False(t, stats.GeneratedAt.IsZero())
}

func TestGlobalAggregation(t *testing.T) {
	src := &fakeSource{}
	src.addAttempt("u1", "a01_10m_forward", true, true)
	src.addAttempt("u1", "a01_10m_forward", true, false)
	src.addAttempt("u2", "a02_2m_backward", true, false)
	src.addError("u1", "a01_10m_forward", 2, "wrong_input", "move_forward", "brake")
	src.addError("u2", "a02_2m_backward", 1, "wrong_direction", "move_backward", "move_forward")
	src.addError("u2", "a02_2m_backward", 1, "wrong_direction", "move_backward", "move_forward")

	stats, err := New(src).Global(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, stats.TotalAttempts)
	require.Equal(t, 2, stats.TotalUsers)

	require.Len(t, stats.SkillSummary, 2)
	// a02 fails every attempt, a01 half of them.
	require.Equal(t, "a02_2m_backward", stats.SkillSummary[0].SkillID)
	require.InDelta(t, 1.0, stats.SkillSummary[0].FailureRate, 1e-9)
	require.Equal(t, 2, stats.SkillSummary[0].TotalErrors)
	require.Equal(t, 1, stats.SkillSummary[0].MostProblematicStep)

	require.Len(t, stats.ProblematicSteps, 2)
	top := stats.ProblematicSteps[0]
	require.Equal(t, "a02_2m_backward", top.SkillID)
	require.Equal(t, 1, top.StepNumber)
	require.Equal(t, 2, top.ErrorCount)
	require.Equal(t, "wrong_direction", top.MostCommonError)

	require.Equal(t, ActionConfusion{
		ExpectedAction: "move_backward",
		ActualAction:   "move_forward",
		Count:          2,
		Description:    "Users press move_forward instead of move_backward",
	}, stats.ActionConfusion[0])
}

func TestGlobalCaps(t *testing.T) {
	src := &fakeSource{}
	src.addAttempt("u1", "a01_10m_forward", true, false)
	for step := 1; step <= 25; step++ {
		src.addError("u1", "a01_10m_forward", step, "wrong_input",
			fmt.Sprintf("exp%02d", step), fmt.Sprintf("act%02d", step))
	}

	stats, err := New(src).Global(context.Background())
	require.NoError(t, err)
	require.Len(t, stats.ProblematicSteps, 20)
	require.Len(t, stats.ActionConfusion, 20)
	// Equal counts resolve ascending by (skill, step).
	require.Equal(t, 1, stats.ProblematicSteps[0].StepNumber)
	require.Equal(t, 20, stats.ProblematicSteps[19].StepNumber)
}

func TestGlobalConfusionSkipsNonSubstitutions(t *testing.T) {
	src := &fakeSource{}
	src.addAttempt("u1", "a01_10m_forward", true, false)
	// Timing errors repeat the expected action, telemetry violations carry
	// no actions at all. Neither is a substitution.
	src.addError("u1", "a01_10m_forward", 1, "timing_error", "brake", "brake")
	src.addError("u1", "a01_10m_forward", 2, "speed_violation", "", "")
	src.addError("u1", "a01_10m_forward", 3, "wrong_input", "move_forward", "brake")

	stats, err := New(src).Global(context.Background())
	require.NoError(t, err)
	require.Len(t, stats.ActionConfusion, 1)
	require.Equal(t, "move_forward", stats.ActionConfusion[0].ExpectedAction)
	require.Equal(t, "brake", stats.ActionConfusion[0].ActualAction)
	// The skipped records still count toward step statistics.
	require.Len(t, stats.ProblematicSteps, 3)
}

func TestCompareClassification(t *testing.T) {
	tests := []struct {
		name   string
		yours  float64
		global float64
		want   string
	}{
		{"well above", 0.9, 0.5, AboveAverage},
		{"well below", 0.1, 0.5, BelowAverage},
		{"equal", 0.5, 0.5, Average},
		{"boundary above", 0.55, 0.5, Average},
		{"boundary below", 0.45, 0.5, Average},
		// 0.55-0.5 and friends are not exactly 0.05 in float64; the
		// band check has to absorb the representation error.
		{"boundary above imprecise", 0.35, 0.3, Average},
		{"boundary below imprecise", 0.25, 0.3, Average},
		{"just above boundary", 0.5500001, 0.5, AboveAverage},
		{"just below boundary", 0.4499999, 0.5, BelowAverage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, classify(tt.yours, tt.global))
		})
	}
}

func TestCompare(t *testing.T) {
	src := &fakeSource{}
	// u1 succeeds both attempts on a01; population is 2/4.
	src.addAttempt("u1", "a01_10m_forward", true, true)
	src.addAttempt("u1", "a01_10m_forward", true, true)
	src.addAttempt("u2", "a01_10m_forward", true, false)
	src.addAttempt("u3", "a01_10m_forward", true, false)
	// u1 has only an in-progress attempt on a02: excluded.
	src.addAttempt("u1", "a02_2m_backward", false, false)

	cmps, err := New(src).Compare(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, cmps, 1)

	c := cmps[0]
	require.Equal(t, "a01_10m_forward", c.SkillID)
	require.InDelta(t, 1.0, c.YourSuccessRate, 1e-9)
	require.InDelta(t, 0.5, c.GlobalSuccessRate, 1e-9)
	require.Equal(t, AboveAverage, c.Comparison)
}

func TestCompareNoData(t *testing.T) {
	cmps, err := New(&fakeSource{}).Compare(context.Background(), "ghost")
	require.NoError(t, err)
	require.Empty(t, cmps)
}
