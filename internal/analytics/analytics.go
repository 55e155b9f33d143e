// Package analytics computes per-skill and system-wide error statistics
// from the event log. Everything here is a pure recompute-on-read over
// append-only records; nothing is cached between requests beyond the
// deduplication singleflight provides for concurrent global scans.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/singleflight"

	"wheeltrack/internal/fault"
	"wheeltrack/internal/store"
)

// Hard caps on ranked lists.
const (
	maxProblematicSteps = 20
	maxActionConfusion  = 20
	maxPerStep          = 3
)

// Comparison verdicts. The band is ±0.05 around the global rate, with the
// boundary itself counting as average.
const (
	AboveAverage = "above_average"
	Average      = "average"
	BelowAverage = "below_average"

	comparisonBand = 0.05

	// Absorbs float64 representation error so a rate sitting exactly on
	// the band edge (e.g. 0.55 vs 0.50) still classifies as average.
	comparisonEpsilon = 1e-9
)

// Source is the read side of the event log the engine aggregates over.
type Source interface {
	AttemptsByUser(ctx context.Context, userID string) ([]store.Attempt, error)
	AttemptsBySkill(ctx context.Context, skillID string) ([]store.Attempt, error)
	AllAttempts(ctx context.Context) ([]store.Attempt, error)
	ErrorsByUser(ctx context.Context, userID string) ([]store.ErrorRecord, error)
	ErrorsBySkill(ctx context.Context, skillID string) ([]store.ErrorRecord, error)
	AllErrors(ctx context.Context) ([]store.ErrorRecord, error)
}

// Engine aggregates event-log records into statistics payloads.
type Engine struct {
	src Source
	sf  singleflight.Group
}

// New creates an Engine reading from src.
func New(src Source) *Engine {
	return &Engine{src: src}
}

// ActionPair is an (expected, actual) action substitution and its count.
type ActionPair struct {
	ExpectedAction string `json:"expected_action"`
	ActualAction   string `json:"actual_action"`
	Count          int    `json:"count"`
}

// StepErrorRate summarizes the errors observed at one step of a skill.
type StepErrorRate struct {
	StepNumber         int          `json:"step_number"`
	ErrorCount         int          `json:"error_count"`
	ErrorRate          float64      `json:"error_rate"`
	CommonErrorTypes   []string     `json:"common_error_types"`
	CommonWrongActions []ActionPair `json:"common_wrong_actions"`
}

// SkillStats is the per-skill aggregation across all users.
type SkillStats struct {
	SkillID           string          `json:"skill_id"`
	TotalAttempts     int             `json:"total_attempts"`
	FailedAttempts    int             `json:"failed_attempts"`
	FailureRate       float64         `json:"failure_rate"`
	StepErrorRates    []StepErrorRate `json:"step_error_rates"`
	MostDifficultStep *StepErrorRate  `json:"most_difficult_step"`
	GeneratedAt       time.Time       `json:"generated_at"`
}

// SkillSummary is one row of the global per-skill table.
type SkillSummary struct {
	SkillID             string  `json:"skill_id"`
	TotalAttempts       int     `json:"total_attempts"`
	FailedAttempts      int     `json:"failed_attempts"`
	FailureRate         float64 `json:"failure_rate"`
	TotalErrors         int     `json:"total_errors"`
	MostProblematicStep int     `json:"most_problematic_step"`
}

// ProblematicStep is one system-wide (skill, step) hotspot.
type ProblematicStep struct {
	SkillID         string `json:"skill_id"`
	StepNumber      int    `json:"step_number"`
	ErrorCount      int    `json:"error_count"`
	MostCommonError string `json:"most_common_error"`
}

// ActionConfusion is one system-wide action substitution pattern.
type ActionConfusion struct {
	ExpectedAction string `json:"expected_action"`
	ActualAction   string `json:"actual_action"`
	Count          int    `json:"count"`
	Description    string `json:"description"`
}

// GlobalStats is the cross-skill, cross-user aggregation.
type GlobalStats struct {
	TotalAttempts    int               `json:"total_attempts"`
	TotalUsers       int               `json:"total_users"`
	SkillSummary     []SkillSummary    `json:"skill_summary"`
	ProblematicSteps []ProblematicStep `json:"problematic_steps"`
	ActionConfusion  []ActionConfusion `json:"action_confusion"`
	GeneratedAt      time.Time         `json:"generated_at"`
}

// SkillComparison classifies one user's success rate on one skill against
// the population.
type SkillComparison struct {
	SkillID           string  `json:"skill_id"`
	YourSuccessRate   float64 `json:"your_success_rate"`
	GlobalSuccessRate float64 `json:"global_success_rate"`
	Comparison        string  `json:"comparison"`
}

// SkillStats aggregates all attempts and errors for one skill. A skill
// that has never been attempted is a not-found condition rather than an
// all-zero payload.
func (e *Engine) SkillStats(ctx context.Context, skillID string) (*SkillStats, error) {
	attempts, err := e.src.AttemptsBySkill(ctx, skillID)
	if err != nil {
		return nil, err
	}
	if len(attempts) == 0 {
		return nil, fault.NotFoundf("skill %s has no recorded attempts", skillID)
	}
	errs, err := e.src.ErrorsBySkill(ctx, skillID)
	if err != nil {
		return nil, err
	}

	failed := 0
	for _, a := range attempts {
		if a.Failed() {
			failed++
		}
	}

	stats := &SkillStats{
		SkillID:        skillID,
		TotalAttempts:  len(attempts),
		FailedAttempts: failed,
		FailureRate:    ratio(failed, len(attempts)),
		StepErrorRates: stepErrorRates(errs, len(attempts)),
		GeneratedAt:    time.Now().UTC(),
	}
	if len(stats.StepErrorRates) > 0 {
		stats.MostDifficultStep = &stats.StepErrorRates[0]
	}
	return stats, nil
}

// Global aggregates the whole event log. It never fails on absence of
// data: an empty log yields zeroed counts and empty lists. Concurrent
// callers share one scan.
func (e *Engine) Global(ctx context.Context) (*GlobalStats, error) {
	v, err, _ := e.sf.Do("global", func() (any, error) {
		return e.computeGlobal(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*GlobalStats), nil
}

func (e *Engine) computeGlobal(ctx context.Context) (*GlobalStats, error) {
	attempts, err := e.src.AllAttempts(ctx)
	if err != nil {
		return nil, err
	}
	errs, err := e.src.AllErrors(ctx)
	if err != nil {
		return nil, err
	}

	users := map[string]struct{}{}
	type skillTally struct {
		total, failed int
	}
	skills := map[string]*skillTally{}
	for _, a := range attempts {
		users[a.UserID] = struct{}{}
		st := skills[a.SkillID]
		if st == nil {
			st = &skillTally{}
			skills[a.SkillID] = st
		}
		st.total++
		if a.Failed() {
			st.failed++
		}
	}

	type stepKey struct {
		skillID    string
		stepNumber int
	}
	skillErrors := map[string]int{}
	stepCounts := map[stepKey]int{}
	stepTypes := map[stepKey]map[string]int{}
	confusion := map[[2]string]int{}
	for _, rec := range errs {
		skillErrors[rec.SkillID]++
		k := stepKey{rec.SkillID, rec.StepNumber}
		stepCounts[k]++
		if stepTypes[k] == nil {
			stepTypes[k] = map[string]int{}
		}
		stepTypes[k][rec.ErrorType]++
		// Only genuine substitutions count as confusion; timing and
		// telemetry errors carry matching or empty actions.
		if rec.ExpectedAction != "" && rec.ActualAction != "" && rec.ExpectedAction != rec.ActualAction {
			confusion[[2]string{rec.ExpectedAction, rec.ActualAction}]++
		}
	}

	summary := make([]SkillSummary, 0, len(skills))
	for skillID, st := range skills {
		row := SkillSummary{
			SkillID:        skillID,
			TotalAttempts:  st.total,
			FailedAttempts: st.failed,
			FailureRate:    ratio(st.failed, st.total),
			TotalErrors:    skillErrors[skillID],
		}
		// Step with the most errors for this skill, lowest step number on
		// a tie.
		best, bestCount := 0, 0
		for k, n := range stepCounts {
			if k.skillID != skillID {
				continue
			}
			if n > bestCount || (n == bestCount && bestCount > 0 && k.stepNumber < best) {
				best, bestCount = k.stepNumber, n
			}
		}
		row.MostProblematicStep = best
		summary = append(summary, row)
	}
	sort.Slice(summary, func(i, j int) bool {
		if summary[i].FailureRate != summary[j].FailureRate {
			return summary[i].FailureRate > summary[j].FailureRate
		}
		return summary[i].SkillID < summary[j].SkillID
	})

	problematic := make([]ProblematicStep, 0, len(stepCounts))
	for k, n := range stepCounts {
		problematic = append(problematic, ProblematicStep{
			SkillID:         k.skillID,
			StepNumber:      k.stepNumber,
			ErrorCount:      n,
			MostCommonError: modeErrorType(stepTypes[k]),
		})
	}
	sort.Slice(problematic, func(i, j int) bool {
		if problematic[i].ErrorCount != problematic[j].ErrorCount {
			return problematic[i].ErrorCount > problematic[j].ErrorCount
		}
		if problematic[i].SkillID != problematic[j].SkillID {
			return problematic[i].SkillID < problematic[j].SkillID
		}
		return problematic[i].StepNumber < problematic[j].StepNumber
	})
	if len(problematic) > maxProblematicSteps {
		problematic = problematic[:maxProblematicSteps]
	}

	confused := make([]ActionConfusion, 0, len(confusion))
	for pair, n := range confusion {
		confused = append(confused, ActionConfusion{
			ExpectedAction: pair[0],
			ActualAction:   pair[1],
			Count:          n,
			Description:    fmt.Sprintf("Users press %s instead of %s", pair[1], pair[0]),
		})
	}
	sort.Slice(confused, func(i, j int) bool {
		if confused[i].Count != confused[j].Count {
			return confused[i].Count > confused[j].Count
		}
		if confused[i].ExpectedAction != confused[j].ExpectedAction {
			return confused[i].ExpectedAction < confused[j].ExpectedAction
		}
		return confused[i].ActualAction < confused[j].ActualAction
	})
	if len(confused) > maxActionConfusion {
		confused = confused[:maxActionConfusion]
	}

	return &GlobalStats{
		TotalAttempts:    len(attempts),
		TotalUsers:       len(users),
		SkillSummary:     summary,
		ProblematicSteps: problematic,
		ActionConfusion:  confused,
		GeneratedAt:      time.Now().UTC(),
	}, nil
}

// Compare classifies the user's success rate against the population for
// every skill the user has at least one completed attempt on. Skills with
// only in-progress attempts have no defined success rate yet and are left
// out.
func (e *Engine) Compare(ctx context.Context, userID string) ([]SkillComparison, error) {
	attempts, err := e.src.AttemptsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	type tally struct {
		total, completed, succeeded int
	}
	perSkill := map[string]*tally{}
	for _, a := range attempts {
		t := perSkill[a.SkillID]
		if t == nil {
			t = &tally{}
			perSkill[a.SkillID] = t
		}
		t.total++
		if a.Completed() {
			t.completed++
			if a.Succeeded() {
				t.succeeded++
			}
		}
	}

	out := make([]SkillComparison, 0, len(perSkill))
	for skillID, t := range perSkill {
		if t.completed == 0 {
			continue
		}
		global, err := e.src.AttemptsBySkill(ctx, skillID)
		if err != nil {
			return nil, err
		}
		globalFailed := 0
		for _, a := range global {
			if a.Failed() {
				globalFailed++
			}
		}
		yours := ratio(t.succeeded, t.total)
		globalRate := 1 - ratio(globalFailed, len(global))
		out = append(out, SkillComparison{
			SkillID:           skillID,
			YourSuccessRate:   yours,
			GlobalSuccessRate: globalRate,
			Comparison:        classify(yours, globalRate),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SkillID < out[j].SkillID })
	return out, nil
}

func classify(yours, global float64) string {
	switch diff := yours - global; {
	case diff > comparisonBand+comparisonEpsilon:
		return AboveAverage
	case diff < -(comparisonBand + comparisonEpsilon):
		return BelowAverage
	default:
		return Average
	}
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// stepErrorRates groups a skill's error records by step and ranks the
// steps by error rate, highest first.
func stepErrorRates(errs []store.ErrorRecord, totalAttempts int) []StepErrorRate {
	typesByStep := map[int]map[string]int{}
	pairsByStep := map[int]map[[2]string]int{}
	for _, rec := range errs {
		if typesByStep[rec.StepNumber] == nil {
			typesByStep[rec.StepNumber] = map[string]int{}
			pairsByStep[rec.StepNumber] = map[[2]string]int{}
		}
		typesByStep[rec.StepNumber][rec.ErrorType]++
		pairsByStep[rec.StepNumber][[2]string{rec.ExpectedAction, rec.ActualAction}]++
	}

	out := make([]StepErrorRate, 0, len(typesByStep))
	for step, types := range typesByStep {
		count := 0
		for _, n := range types {
			count += n
		}
		out = append(out, StepErrorRate{
			StepNumber:         step,
			ErrorCount:         count,
			ErrorRate:          ratio(count, totalAttempts),
			CommonErrorTypes:   topErrorTypes(types, maxPerStep),
			CommonWrongActions: topActionPairs(pairsByStep[step], maxPerStep),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ErrorRate != out[j].ErrorRate {
			return out[i].ErrorRate > out[j].ErrorRate
		}
		return out[i].StepNumber < out[j].StepNumber
	})
	return out
}

func topErrorTypes(counts map[string]int, limit int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > limit {
		names = names[:limit]
	}
	return names
}

func topActionPairs(counts map[[2]string]int, limit int) []ActionPair {
	pairs := make([]ActionPair, 0, len(counts))
	for pair, n := range counts {
		pairs = append(pairs, ActionPair{ExpectedAction: pair[0], ActualAction: pair[1], Count: n})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		if pairs[i].ExpectedAction != pairs[j].ExpectedAction {
			return pairs[i].ExpectedAction < pairs[j].ExpectedAction
		}
		return pairs[i].ActualAction < pairs[j].ActualAction
	})
	if len(pairs) > limit {
		pairs = pairs[:limit]
	}
	return pairs
}

func modeErrorType(counts map[string]int) string {
	best, bestCount := "", 0
	for name, n := range counts {
		if n > bestCount || (n == bestCount && name < best) {
			best, bestCount = name, n
		}
	}
	return best
}
