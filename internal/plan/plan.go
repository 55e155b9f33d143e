// Package plan composes global analytics, a user's own error history and
// peer comparisons into a personalized training plan.
package plan

import (
	"context"
	"time"

	"wheeltrack/internal/analytics"
	"wheeltrack/internal/progress"
)

// Caps on the global-insights section.
const (
	maxFailedSkills     = 3
	maxCommonMistakes   = 5
	maxProblematicSteps = 5
)

// GlobalInsights is the population-wide section of a training plan.
type GlobalInsights struct {
	MostFailedSkills []string                    `json:"most_failed_skills"`
	CommonMistakes   []analytics.ActionConfusion `json:"common_mistakes"`
	ProblematicSteps []analytics.ProblematicStep `json:"problematic_steps"`
}

// TrainingPlan is the full per-user plan payload. It is derived per
// request and never persisted.
type TrainingPlan struct {
	UserID            string                      `json:"user_id"`
	RecommendedSkills []string                    `json:"recommended_skills"`
	FocusSkills       []string                    `json:"focus_skills"`
	SessionGoals      []string                    `json:"session_goals"`
	Notes             string                      `json:"notes"`
	GlobalInsights    GlobalInsights              `json:"global_insights"`
	YourCommonErrors  []progress.CommonError      `json:"your_common_errors"`
	SkillComparisons  []analytics.SkillComparison `json:"skill_comparisons"`
	GeneratedAt       time.Time                   `json:"generated_at"`
}

// Generator builds training plans.
type Generator struct {
	progress    *progress.Service
	engine      *analytics.Engine
	recommender Recommender
}

// NewGenerator creates a Generator.
func NewGenerator(svc *progress.Service, engine *analytics.Engine, rec Recommender) *Generator {
	return &Generator{progress: svc, engine: engine, recommender: rec}
}

// Generate builds the plan for one user. A user with no recorded attempts
// still gets a plan: the analytics sections come back empty and the
// recommender fields are populated from the catalog alone.
func (g *Generator) Generate(ctx context.Context, userID string) (*TrainingPlan, error) {
	prog, err := g.progress.Progress(ctx, userID)
	if err != nil {
		return nil, err
	}
	rec, err := g.recommender.Recommend(ctx, prog)
	if err != nil {
		return nil, err
	}

	p := &TrainingPlan{
		UserID:            userID,
		RecommendedSkills: rec.RecommendedSkills,
		FocusSkills:       rec.FocusSkills,
		SessionGoals:      rec.SessionGoals,
		Notes:             rec.Notes,
		GlobalInsights: GlobalInsights{
			MostFailedSkills: []string{},
			CommonMistakes:   []analytics.ActionConfusion{},
			ProblematicSteps: []analytics.ProblematicStep{},
		},
		YourCommonErrors: []progress.CommonError{},
		SkillComparisons: []analytics.SkillComparison{},
		GeneratedAt:      time.Now().UTC(),
	}
	if prog.TotalAttempts == 0 {
		return p, nil
	}

	global, err := g.engine.Global(ctx)
	if err != nil {
		return nil, err
	}
	for i, row := range global.SkillSummary {
		if i == maxFailedSkills {
			break
		}
		p.GlobalInsights.MostFailedSkills = append(p.GlobalInsights.MostFailedSkills, row.SkillID)
	}
	p.GlobalInsights.CommonMistakes = head(global.ActionConfusion, maxCommonMistakes)
	p.GlobalInsights.ProblematicSteps = head(global.ProblematicSteps, maxProblematicSteps)

	if p.YourCommonErrors, err = g.progress.CommonErrors(ctx, userID, ""); err != nil {
		return nil, err
	}
	if p.SkillComparisons, err = g.engine.Compare(ctx, userID); err != nil {
		return nil, err
	}
	return p, nil
}

func head[T any](s []T, n int) []T {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
