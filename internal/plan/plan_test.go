package plan

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wheeltrack/internal/analytics"
	"wheeltrack/internal/catalog"
	"wheeltrack/internal/fault"
	"wheeltrack/internal/progress"
	"wheeltrack/internal/store"
)

func newTestGenerator(t *testing.T) (*Generator, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	cat := catalog.Builtin()
	svc := progress.New(s.UserRepo(), s.AttemptRepo(), cat, s)
	engine := analytics.New(s.AttemptRepo())
	return NewGenerator(svc, engine, NewPhaseRecommender(cat)), s
}

func seedCompleted(t *testing.T, s *store.Store, id, userID, skillID string, success bool) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.AttemptRepo().CreateAttempt(ctx, &store.Attempt{
		AttemptID: id, UserID: userID, SkillID: skillID,
		Status: store.StatusInProgress, StartTime: time.Now().UTC(),
	}))
	ok, err := s.AttemptRepo().CompleteAttempt(ctx, id, success, time.Now().UTC())
	require.NoError(t, err)
	require.True(t, ok)
}

func TestGeneratePlanNoData(t *testing.T) {
	gen, s := newTestGenerator(t)
	ctx := context.Background()
	_, err := s.UserRepo().Create(ctx, "user_001")
	require.NoError(t, err)

	p, err := gen.Generate(ctx, "user_001")
	require.NoError(t, err)

	require.Empty(t, p.GlobalInsights.MostFailedSkills)
	require.Empty(t, p.GlobalInsights.CommonMistakes)
	require.Empty(t, p.GlobalInsights.ProblematicSteps)
	require.Empty(t, p.YourCommonErrors)
	require.Empty(t, p.SkillComparisons)

	// Recommender fields are still populated from the catalog.
	require.Equal(t,
		[]string{"a01_10m_forward", "a02_2m_backward", "a03_5m_backward"},
		p.RecommendedSkills)
	require.NotEmpty(t, p.SessionGoals)
	require.Contains(t, p.Notes, progress.PhaseFoundation)
	require.False(t, p.GeneratedAt.IsZero())
}

func TestGeneratePlanUnknownUser(t *testing.T) {
	gen, _ := newTestGenerator(t)
	_, err := gen.Generate(context.Background(), "ghost")
	require.True(t, fault.IsNotFound(err), "want not-found, got %v", err)
}

func TestGeneratePlanComposed(t *testing.T) {
	gen, s := newTestGenerator(t)
	ctx := context.Background()
	_, err := s.UserRepo().Create(ctx, "user_001")
	require.NoError(t, err)

	seedCompleted(t, s, "att_1", "user_001", "a01_10m_forward", false)
	seedCompleted(t, s, "att_2", "user_001", "a02_2m_backward", true)
	seedCompleted(t, s, "att_3", "user_002", "a02_2m_backward", false)

	for i := 0; i < 12; i++ {
		require.NoError(t, s.AttemptRepo().AppendError(ctx, store.ErrorRecord{
			AttemptID: "att_1", UserID: "user_001", SkillID: "a01_10m_forward",
			StepNumber: i + 1, ErrorType: "wrong_input",
			ExpectedAction: "move_forward", ActualAction: fmt.Sprintf("act%02d", i),
		}))
	}

	p, err := gen.Generate(ctx, "user_001")
	require.NoError(t, err)

	require.LessOrEqual(t, len(p.GlobalInsights.MostFailedSkills), 3)
	require.Contains(t, p.GlobalInsights.MostFailedSkills, "a01_10m_forward")
	require.Len(t, p.GlobalInsights.CommonMistakes, 5)
	require.Len(t, p.GlobalInsights.ProblematicSteps, 5)
	require.Len(t, p.YourCommonErrors, 10)
	require.Len(t, p.SkillComparisons, 2)
}

func TestPhaseRecommenderPriorities(t *testing.T) {
	rec := NewPhaseRecommender(catalog.Builtin())
	prog := &progress.UserProgress{
		UserID:       "user_001",
		CurrentPhase: progress.PhaseFoundation,
		SkillProgress: map[string]progress.SkillProgress{
			// Struggling: below 50%.
			"a01_10m_forward": {SkillID: "a01_10m_forward", TotalAttempts: 4, SuccessfulAttempts: 1, SuccessRate: 0.25},
			// Done: at or above 80%.
			"a02_2m_backward": {SkillID: "a02_2m_backward", TotalAttempts: 5, SuccessfulAttempts: 4, SuccessRate: 0.8},
		},
	}

	r, err := rec.Recommend(context.Background(), prog)
	require.NoError(t, err)

	// Never-attempted a03 outranks struggling a01; mastered a02 is absent.
	require.Equal(t, []string{"a03_5m_backward", "a01_10m_forward"}, r.RecommendedSkills)
	require.Equal(t, []string{"a01_10m_forward"}, r.FocusSkills)
}

func TestPhaseRecommenderAllMastered(t *testing.T) {
	rec := NewPhaseRecommender(catalog.Builtin())
	sp := map[string]progress.SkillProgress{}
	for _, id := range []string{"a01_10m_forward", "a02_2m_backward", "a03_5m_backward"} {
		sp[id] = progress.SkillProgress{SkillID: id, TotalAttempts: 5, SuccessfulAttempts: 5, SuccessRate: 1}
	}
	r, err := rec.Recommend(context.Background(), &progress.UserProgress{
		UserID:        "user_001",
		CurrentPhase:  progress.PhaseFoundation,
		SkillProgress: sp,
	})
	require.NoError(t, err)
	require.Empty(t, r.RecommendedSkills)
	require.Contains(t, r.Notes, "keep practicing")
}
