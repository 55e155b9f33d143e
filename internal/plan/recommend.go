package plan

import (
	"context"
	"fmt"
	"sort"

	"wheeltrack/internal/catalog"
	"wheeltrack/internal/progress"
)

// Caps on recommender output.
const (
	maxRecommended = 5
	maxFocus       = 3
)

// Recommendation is the recommender's contribution to a training plan.
type Recommendation struct {
	RecommendedSkills []string `json:"recommended_skills"`
	FocusSkills       []string `json:"focus_skills"`
	SessionGoals      []string `json:"session_goals"`
	Notes             string   `json:"notes"`
}

// Recommender proposes what to train next from a user's derived progress.
type Recommender interface {
	Recommend(ctx context.Context, prog *progress.UserProgress) (*Recommendation, error)
}

// PhaseRecommender ranks the skills of the user's current training phase:
// never-attempted skills first, then struggling ones, then skills that are
// merely unpolished. Skills at or above an 80% success rate are considered
// done and not recommended again.
type PhaseRecommender struct {
	catalog *catalog.Catalog
}

// NewPhaseRecommender creates a PhaseRecommender over the given catalog.
func NewPhaseRecommender(cat *catalog.Catalog) *PhaseRecommender {
	return &PhaseRecommender{catalog: cat}
}

var phaseLevels = map[string][]catalog.Level{
	progress.PhaseFoundation: {catalog.LevelBasic, catalog.LevelBeginner},
	progress.PhaseMobility:   {catalog.LevelIntermediate},
	progress.PhaseAdvanced:   {catalog.LevelAdvanced, catalog.LevelEmergency},
}

func skillPriority(sp progress.SkillProgress, attempted bool) int {
	switch {
	case !attempted:
		return 3
	case sp.SuccessRate < 0.5:
		return 2
	case sp.SuccessRate < 0.8:
		return 1
	default:
		return 0
	}
}

// Recommend implements Recommender.
func (r *PhaseRecommender) Recommend(_ context.Context, prog *progress.UserProgress) (*Recommendation, error) {
	levels, ok := phaseLevels[prog.CurrentPhase]
	if !ok {
		levels = phaseLevels[progress.PhaseFoundation]
	}

	type candidate struct {
		skillID  string
		priority int
	}
	var candidates []candidate
	var focus []string
	for _, sk := range r.catalog.ByLevels(levels...) {
		sp, attempted := prog.SkillProgress[sk.ID]
		p := skillPriority(sp, attempted)
		if p == 0 {
			continue
		}
		candidates = append(candidates, candidate{skillID: sk.ID, priority: p})
		if p == 2 {
			focus = append(focus, sk.ID)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].priority != candidates[j].priority {
			return candidates[i].priority > candidates[j].priority
		}
		return candidates[i].skillID < candidates[j].skillID
	})

	recommended := make([]string, 0, maxRecommended)
	for _, c := range candidates {
		if len(recommended) == maxRecommended {
			break
		}
		recommended = append(recommended, c.skillID)
	}
	sort.Strings(focus)
	if len(focus) > maxFocus {
		focus = focus[:maxFocus]
	}

	goals := []string{
		fmt.Sprintf("Complete at least one attempt on each of %d recommended skills", len(recommended)),
	}
	if len(focus) > 0 {
		goals = append(goals, fmt.Sprintf("Raise success rate above 50%% on %s", focus[0]))
	}

	notes := fmt.Sprintf("Training phase: %s.", prog.CurrentPhase)
	if len(recommended) == 0 {
		notes += " All skills in this phase are at a solid success rate; keep practicing to advance."
	}

	return &Recommendation{
		RecommendedSkills: recommended,
		FocusSkills:       focus,
		SessionGoals:      goals,
		Notes:             notes,
	}, nil
}
