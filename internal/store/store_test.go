package store

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestUserCreateIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	u1, err := repo.Create(ctx, "user_001")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u1.CurrentPhase != "Foundation" {
		t.Errorf("phase = %q, want Foundation", u1.CurrentPhase)
	}

	u2, err := repo.Create(ctx, "user_001")
	if err != nil {
		t.Fatalf("create again: %v", err)
	}
	if !u2.CreatedAt.Equal(u1.CreatedAt) {
		t.Error("second create must return the existing record")
	}
}

func TestUserGetUnknown(t *testing.T) {
	s := openTestStore(t)
	u, err := s.UserRepo().Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u != nil {
		t.Fatal("expected nil for unknown user")
	}
}

func TestUserSetPhase(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "user_001"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.SetPhase(ctx, "user_001", "Mobility"); err != nil {
		t.Fatalf("set phase: %v", err)
	}

	u, err := repo.Get(ctx, "user_001")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.CurrentPhase != "Mobility" {
		t.Errorf("phase = %q, want Mobility", u.CurrentPhase)
	}
	if u.UpdatedAt == nil {
		t.Error("updated_at not set")
	}
}

func newAttempt(id, userID, skillID string) *Attempt {
	return &Attempt{
		AttemptID: id,
		UserID:    userID,
		SkillID:   skillID,
		Status:    StatusInProgress,
		StartTime: time.Now().UTC(),
	}
}

func TestAttemptLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	if err := repo.CreateAttempt(ctx, newAttempt("att_1", "u1", "a01_10m_forward")); err != nil {
		t.Fatalf("create attempt: %v", err)
	}

	a, err := repo.GetAttempt(ctx, "att_1")
	if err != nil {
		t.Fatalf("get attempt: %v", err)
	}
	if a == nil || a.Status != StatusInProgress || a.Success != nil {
		t.Fatalf("unexpected attempt state: %+v", a)
	}

	ok, err := repo.CompleteAttempt(ctx, "att_1", true, time.Now().UTC())
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !ok {
		t.Fatal("first completion must succeed")
	}

	a, err = repo.GetAttempt(ctx, "att_1")
	if err != nil {
		t.Fatalf("get attempt: %v", err)
	}
	if !a.Completed() || !a.Succeeded() || a.EndTime == nil {
		t.Fatalf("attempt not completed: %+v", a)
	}
}

func TestCompleteAttemptTwiceRejected(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	if err := repo.CreateAttempt(ctx, newAttempt("att_1", "u1", "a01_10m_forward")); err != nil {
		t.Fatalf("create attempt: %v", err)
	}
	if ok, err := repo.CompleteAttempt(ctx, "att_1", false, time.Now().UTC()); err != nil || !ok {
		t.Fatalf("first complete: ok=%v err=%v", ok, err)
	}

	ok, err := repo.CompleteAttempt(ctx, "att_1", true, time.Now().UTC())
	if err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if ok {
		t.Fatal("second completion must report no rows updated")
	}

	// The first completion's verdict survives.
	a, err := repo.GetAttempt(ctx, "att_1")
	if err != nil {
		t.Fatalf("get attempt: %v", err)
	}
	if !a.Failed() {
		t.Errorf("success overwritten: %+v", a)
	}
}

func TestEventSequenceOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	if err := repo.CreateAttempt(ctx, newAttempt("att_1", "u1", "a02_2m_backward")); err != nil {
		t.Fatalf("create attempt: %v", err)
	}

	// Interleave steps and errors; arrival order must survive per type.
	for i := 1; i <= 3; i++ {
		err := repo.AppendStep(ctx, StepRecord{
			AttemptID: "att_1", UserID: "u1", SkillID: "a02_2m_backward",
			StepNumber: i, ExpectedInput: "S", ActualInput: "S", Correct: true,
		})
		if err != nil {
			t.Fatalf("append step %d: %v", i, err)
		}
		err = repo.AppendError(ctx, ErrorRecord{
			AttemptID: "att_1", UserID: "u1", SkillID: "a02_2m_backward",
			StepNumber: i, ErrorType: "wrong_input",
			ExpectedAction: "move_backward", ActualAction: "brake",
		})
		if err != nil {
			t.Fatalf("append error %d: %v", i, err)
		}
	}

	steps, err := repo.StepsByAttempt(ctx, "att_1")
	if err != nil {
		t.Fatalf("steps: %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("got %d steps, want 3", len(steps))
	}
	for i, st := range steps {
		if st.StepNumber != i+1 {
			t.Errorf("step[%d].StepNumber = %d, want %d", i, st.StepNumber, i+1)
		}
	}

	errs, err := repo.ErrorsByAttempt(ctx, "att_1")
	if err != nil {
		t.Fatalf("errors: %v", err)
	}
	if len(errs) != 3 {
		t.Fatalf("got %d errors, want 3", len(errs))
	}
}

func TestQueryShapes(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	// Two users, two skills.
	for i, spec := range []struct{ user, skill string }{
		{"u1", "a01_10m_forward"},
		{"u1", "a02_2m_backward"},
		{"u2", "a02_2m_backward"},
	} {
		id := fmt.Sprintf("att_%d", i)
		if err := repo.CreateAttempt(ctx, newAttempt(id, spec.user, spec.skill)); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
		err := repo.AppendError(ctx, ErrorRecord{
			AttemptID: id, UserID: spec.user, SkillID: spec.skill,
			StepNumber: 2, ErrorType: "wrong_direction",
			ExpectedAction: "move_backward", ActualAction: "move_forward",
		})
		if err != nil {
			t.Fatalf("append error: %v", err)
		}
	}

	byUser, err := repo.AttemptsByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if len(byUser) != 2 {
		t.Errorf("u1 attempts = %d, want 2", len(byUser))
	}

	bySkill, err := repo.AttemptsBySkill(ctx, "a02_2m_backward")
	if err != nil {
		t.Fatalf("by skill: %v", err)
	}
	if len(bySkill) != 2 {
		t.Errorf("skill attempts = %d, want 2", len(bySkill))
	}

	all, err := repo.AllAttempts(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all attempts = %d, want 3", len(all))
	}

	byStep, err := repo.ErrorsBySkillStep(ctx, "a02_2m_backward", 2)
	if err != nil {
		t.Fatalf("by skill step: %v", err)
	}
	if len(byStep) != 2 {
		t.Errorf("skill-step errors = %d, want 2", len(byStep))
	}

	allErrs, err := repo.AllErrors(ctx)
	if err != nil {
		t.Fatalf("all errors: %v", err)
	}
	if len(allErrs) != 3 {
		t.Errorf("all errors = %d, want 3", len(allErrs))
	}
}

func TestPurgeUserCascade(t *testing.T) {
	s := openTestStore(t)
	users := s.UserRepo()
	repo := s.AttemptRepo()
	ctx := context.Background()

	for _, u := range []string{"u1", "u2"} {
		if _, err := users.Create(ctx, u); err != nil {
			t.Fatalf("create user %s: %v", u, err)
		}
	}
	for i, u := range []string{"u1", "u1", "u2"} {
		id := fmt.Sprintf("att_%d", i)
		if err := repo.CreateAttempt(ctx, newAttempt(id, u, "a01_10m_forward")); err != nil {
			t.Fatalf("create attempt: %v", err)
		}
		err := repo.AppendStep(ctx, StepRecord{
			AttemptID: id, UserID: u, SkillID: "a01_10m_forward",
			StepNumber: 1, ExpectedInput: "W", ActualInput: "W", Correct: true,
		})
		if err != nil {
			t.Fatalf("append step: %v", err)
		}
		err = repo.AppendError(ctx, ErrorRecord{
			AttemptID: id, UserID: u, SkillID: "a01_10m_forward",
			StepNumber: 1, ErrorType: "timing_error",
			ExpectedAction: "move_forward", ActualAction: "move_forward",
		})
		if err != nil {
			t.Fatalf("append error: %v", err)
		}
	}

	if err := s.PurgeUser(ctx, "u1"); err != nil {
		t.Fatalf("purge: %v", err)
	}

	// u1 data gone.
	attempts, err := repo.AttemptsByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("attempts by user: %v", err)
	}
	if len(attempts) != 0 {
		t.Errorf("u1 attempts remain: %d", len(attempts))
	}
	errs, err := repo.ErrorsByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("errors by user: %v", err)
	}
	if len(errs) != 0 {
		t.Errorf("u1 errors remain: %d", len(errs))
	}

	// u1 identity survives; u2 untouched.
	u, err := users.Get(ctx, "u1")
	if err != nil || u == nil {
		t.Fatalf("u1 record lost: %v %v", u, err)
	}
	other, err := repo.AttemptsByUser(ctx, "u2")
	if err != nil {
		t.Fatalf("attempts by user: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("u2 attempts = %d, want 1", len(other))
	}
}
