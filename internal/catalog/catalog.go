// Package catalog provides the skill catalog: the set of trainable maneuvers,
// each with an ordered sequence of expected steps. The tracker consults it for
// skill existence; the plan generator for levels and titles.
package catalog

import (
	"sort"
)

// Level grades a skill's difficulty band. Phases map onto levels, not onto
// individual skills.
type Level string

const (
	LevelBasic        Level = "basic"
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelEmergency    Level = "emergency"
)

// Step is one expected action within a skill.
type Step struct {
	Number         int      `json:"step_number"`
	Instruction    string   `json:"instruction"`
	Cues           []string `json:"cues,omitempty"`
	ExpectedInputs []string `json:"expected_inputs"`
	ExpectedAction string   `json:"expected_action"`
}

// Skill is a named, discrete trainable maneuver.
type Skill struct {
	ID              string  `json:"skill_id"`
	Title           string  `json:"title"`
	Level           Level   `json:"level"`
	Steps           []Step  `json:"steps"`
	BaseSuccessRate float64 `json:"base_success_rate,omitempty"`
}

// TotalSteps returns the number of steps in the skill.
func (s *Skill) TotalSteps() int { return len(s.Steps) }

// Catalog is an immutable indexed set of skills.
type Catalog struct {
	skills  []Skill
	byID    map[string]*Skill
	byLevel map[Level][]*Skill
}

// New builds a catalog from a slice of skills, sorted by ID.
func New(skills []Skill) *Catalog {
	sorted := make([]Skill, len(skills))
	copy(sorted, skills)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	c := &Catalog{
		skills:  sorted,
		byID:    make(map[string]*Skill, len(sorted)),
		byLevel: make(map[Level][]*Skill),
	}
	for i := range c.skills {
		sk := &c.skills[i]
		c.byID[sk.ID] = sk
		c.byLevel[sk.Level] = append(c.byLevel[sk.Level], sk)
	}
	return c
}

// ByID returns a skill by ID, or nil if the catalog does not know it.
func (c *Catalog) ByID(id string) *Skill {
	return c.byID[id]
}

// Has reports whether the catalog knows the skill.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Skills returns all skills sorted by ID.
func (c *Catalog) Skills() []Skill {
	out := make([]Skill, len(c.skills))
	copy(out, c.skills)
	return out
}

// ByLevels returns all skills whose level is in the given set, sorted by ID.
func (c *Catalog) ByLevels(levels ...Level) []*Skill {
	var out []*Skill
	for _, lvl := range levels {
		out = append(out, c.byLevel[lvl]...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of skills in the catalog.
func (c *Catalog) Len() int { return len(c.skills) }
