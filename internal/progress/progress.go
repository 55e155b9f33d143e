// Package progress exposes the user-facing view of the event log: account
// lifecycle, derived per-skill progress, personal error rankings and the
// cascading reset. All summaries are recomputed from the log on demand, so
// there are no stored counters to drift.
package progress

import (
	"context"
	"sort"
	"time"

	"wheeltrack/internal/catalog"
	"wheeltrack/internal/fault"
	"wheeltrack/internal/store"
)

// Caps on personal rankings.
const (
	maxCommonErrors = 10
	maxWeakSteps    = 10
)

// Purger atomically removes all of one user's event-log data.
type Purger interface {
	PurgeUser(ctx context.Context, userID string) error
}

// Service answers user-scoped progress queries.
type Service struct {
	users    store.UserRepo
	attempts store.AttemptRepo
	catalog  *catalog.Catalog
	purger   Purger
}

// New creates a progress Service.
func New(users store.UserRepo, attempts store.AttemptRepo, cat *catalog.Catalog, purger Purger) *Service {
	return &Service{users: users, attempts: attempts, catalog: cat, purger: purger}
}

// SkillProgress is the derived per-skill summary inside a user's progress.
type SkillProgress struct {
	SkillID            string     `json:"skill_id"`
	TotalAttempts      int        `json:"total_attempts"`
	SuccessfulAttempts int        `json:"successful_attempts"`
	SuccessRate        float64    `json:"success_rate"`
	LastAttempt        *time.Time `json:"last_attempt,omitempty"`
}

// UserProgress is the full progress payload for one user.
type UserProgress struct {
	UserID        string                   `json:"user_id"`
	CurrentPhase  string                   `json:"current_phase"`
	TotalAttempts int                      `json:"total_attempts"`
	SkillProgress map[string]SkillProgress `json:"skill_progress"`
}

// UserSkillStats is the user-scoped view of one skill.
type UserSkillStats struct {
	UserID             string     `json:"user_id"`
	SkillID            string     `json:"skill_id"`
	TotalAttempts      int        `json:"total_attempts"`
	SuccessfulAttempts int        `json:"successful_attempts"`
	SuccessRate        float64    `json:"success_rate"`
	CommonErrorTypes   []string   `json:"common_error_types"`
	LastAttempt        *time.Time `json:"last_attempt,omitempty"`
}

// CommonError is one grouped row of a user's personal error ranking.
type CommonError struct {
	SkillID        string `json:"skill_id"`
	StepNumber     int    `json:"step_number"`
	ErrorType      string `json:"error_type"`
	ExpectedAction string `json:"expected_action"`
	ActualAction   string `json:"actual_action"`
	Count          int    `json:"count"`
}

// WeakStep is one (skill, step) pair where the user keeps failing.
type WeakStep struct {
	SkillID    string `json:"skill_id"`
	StepNumber int    `json:"step_number"`
	ErrorCount int    `json:"error_count"`
}

// CreateUser registers a user. Calling it again for an existing user
// returns the existing record.
func (s *Service) CreateUser(ctx context.Context, userID string) (*store.UserRecord, error) {
	if userID == "" {
		return nil, fault.Invalidf("user_id must not be empty")
	}
	return s.users.Create(ctx, userID)
}

// GetUser returns the user record or a not-found fault.
func (s *Service) GetUser(ctx context.Context, userID string) (*store.UserRecord, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fault.NotFoundf("user %s not found", userID)
	}
	return u, nil
}

// Progress derives the user's per-skill summary from their attempts. It
// also re-evaluates the training phase, persisting a promotion when the
// current phase has been mastered.
func (s *Service) Progress(ctx context.Context, userID string) (*UserProgress, error) {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	attempts, err := s.attempts.AttemptsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	perSkill := map[string]SkillProgress{}
	for _, a := range attempts {
		sp := perSkill[a.SkillID]
		sp.SkillID = a.SkillID
		sp.TotalAttempts++
		if a.Succeeded() {
			sp.SuccessfulAttempts++
		}
		ts := a.StartTime
		if sp.LastAttempt == nil || ts.After(*sp.LastAttempt) {
			sp.LastAttempt = &ts
		}
		perSkill[a.SkillID] = sp
	}
	for id, sp := range perSkill {
		sp.SuccessRate = ratio(sp.SuccessfulAttempts, sp.TotalAttempts)
		perSkill[id] = sp
	}

	phase, err := s.evaluatePhase(ctx, u, perSkill)
	if err != nil {
		return nil, err
	}

	return &UserProgress{
		UserID:        userID,
		CurrentPhase:  phase,
		TotalAttempts: len(attempts),
		SkillProgress: perSkill,
	}, nil
}

// SkillStats returns the user-scoped view of one skill. Unknown users and
// skills are not-found faults; a known skill the user has never tried
// yields a zeroed summary.
func (s *Service) SkillStats(ctx context.Context, userID, skillID string) (*UserSkillStats, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	if !s.catalog.Has(skillID) {
		return nil, fault.NotFoundf("skill %s not found", skillID)
	}

	attempts, err := s.attempts.AttemptsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := &UserSkillStats{UserID: userID, SkillID: skillID}
	for _, a := range attempts {
		if a.SkillID != skillID {
			continue
		}
		stats.TotalAttempts++
		if a.Succeeded() {
			stats.SuccessfulAttempts++
		}
		ts := a.StartTime
		if stats.LastAttempt == nil || ts.After(*stats.LastAttempt) {
			stats.LastAttempt = &ts
		}
	}
	stats.SuccessRate = ratio(stats.SuccessfulAttempts, stats.TotalAttempts)

	errs, err := s.attempts.ErrorsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, rec := range errs {
		if rec.SkillID == skillID {
			counts[rec.ErrorType]++
		}
	}
	types := make([]string, 0, len(counts))
	for name := range counts {
		types = append(types, name)
	}
	sort.Slice(types, func(i, j int) bool {
		if counts[types[i]] != counts[types[j]] {
			return counts[types[i]] > counts[types[j]]
		}
		return types[i] < types[j]
	})
	if len(types) > 3 {
		types = types[:3]
	}
	stats.CommonErrorTypes = types
	return stats, nil
}

// CommonErrors groups the user's error records by (skill, step, type,
// action pair) and ranks them by count, earliest first occurrence winning
// ties. Pass skillID == "" for all skills.
func (s *Service) CommonErrors(ctx context.Context, userID, skillID string) ([]CommonError, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	errs, err := s.attempts.ErrorsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	type key struct {
		skillID        string
		stepNumber     int
		errorType      string
		expectedAction string
		actualAction   string
	}
	counts := map[key]int{}
	firstSeen := map[key]int{}
	for i, rec := range errs {
		if skillID != "" && rec.SkillID != skillID {
			continue
		}
		k := key{rec.SkillID, rec.StepNumber, rec.ErrorType, rec.ExpectedAction, rec.ActualAction}
		if _, ok := counts[k]; !ok {
			firstSeen[k] = i
		}
		counts[k]++
	}

	keys := make([]key, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return firstSeen[keys[i]] < firstSeen[keys[j]]
	})
	if len(keys) > maxCommonErrors {
		keys = keys[:maxCommonErrors]
	}

	out := make([]CommonError, 0, len(keys))
	for _, k := range keys {
		out = append(out, CommonError{
			SkillID:        k.skillID,
			StepNumber:     k.stepNumber,
			ErrorType:      k.errorType,
			ExpectedAction: k.expectedAction,
			ActualAction:   k.actualAction,
			Count:          counts[k],
		})
	}
	return out, nil
}

// WeakSteps ranks the (skill, step) pairs where the user accumulates the
// most errors. Pass skillID == "" for all skills.
func (s *Service) WeakSteps(ctx context.Context, userID, skillID string) ([]WeakStep, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	errs, err := s.attempts.ErrorsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	type key struct {
		skillID    string
		stepNumber int
	}
	counts := map[key]int{}
	for _, rec := range errs {
		if skillID != "" && rec.SkillID != skillID {
			continue
		}
		counts[key{rec.SkillID, rec.StepNumber}]++
	}

	out := make([]WeakStep, 0, len(counts))
	for k, n := range counts {
		out = append(out, WeakStep{SkillID: k.skillID, StepNumber: k.stepNumber, ErrorCount: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ErrorCount != out[j].ErrorCount {
			return out[i].ErrorCount > out[j].ErrorCount
		}
		if out[i].SkillID != out[j].SkillID {
			return out[i].SkillID < out[j].SkillID
		}
		return out[i].StepNumber < out[j].StepNumber
	})
	if len(out) > maxWeakSteps {
		out = out[:maxWeakSteps]
	}
	return out, nil
}

// ClearProgress removes all of the user's event-log data in one atomic
// cascade. The user record itself survives with a reset phase, so the
// call is repeatable.
func (s *Service) ClearProgress(ctx context.Context, userID string) error {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return err
	}
	return s.purger.PurgeUser(ctx, userID)
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
