package progress

import (
	"context"

	"wheeltrack/internal/catalog"
	"wheeltrack/internal/store"
)

// Training phases, in order. A trainee is promoted to the next phase once
// enough of the current phase's skills are mastered.
const (
	PhaseFoundation = "Foundation"
	PhaseMobility   = "Mobility"
	PhaseAdvanced   = "Advanced"
)

// Promotion thresholds: a skill counts as mastered at a 70% success rate,
// and a phase is cleared once 60% of its skills are mastered.
const (
	masterySuccessRate = 0.70
	phaseClearShare    = 0.60
)

var phaseOrder = []string{PhaseFoundation, PhaseMobility, PhaseAdvanced}

// phaseLevels maps each phase to the catalog levels it trains.
var phaseLevels = map[string][]catalog.Level{
	PhaseFoundation: {catalog.LevelBasic, catalog.LevelBeginner},
	PhaseMobility:   {catalog.LevelIntermediate},
	PhaseAdvanced:   {catalog.LevelAdvanced, catalog.LevelEmergency},
}

// PhaseSkills returns the catalog skills trained in the given phase.
func (s *Service) PhaseSkills(phase string) []*catalog.Skill {
	levels, ok := phaseLevels[phase]
	if !ok {
		return nil
	}
	return s.catalog.ByLevels(levels...)
}

func nextPhase(phase string) string {
	for i, p := range phaseOrder {
		if p == phase && i+1 < len(phaseOrder) {
			return phaseOrder[i+1]
		}
	}
	return phase
}

// evaluatePhase checks whether the user has cleared their current phase
// and persists the promotion when they have. Promotions are evaluated one
// step at a time; clearing two phases takes two progress reads.
func (s *Service) evaluatePhase(ctx context.Context, u *store.UserRecord, perSkill map[string]SkillProgress) (string, error) {
	phase := u.CurrentPhase
	if phase == "" {
		phase = PhaseFoundation
	}
	skills := s.PhaseSkills(phase)
	if len(skills) == 0 || phase == phaseOrder[len(phaseOrder)-1] {
		return phase, nil
	}

	mastered := 0
	for _, sk := range skills {
		sp, ok := perSkill[sk.ID]
		if ok && sp.TotalAttempts > 0 && sp.SuccessRate >= masterySuccessRate {
			mastered++
		}
	}
	if float64(mastered)/float64(len(skills)) < phaseClearShare {
		return phase, nil
	}

	promoted := nextPhase(phase)
	if err := s.users.SetPhase(ctx, u.UserID, promoted); err != nil {
		return "", err
	}
	return promoted, nil
}
