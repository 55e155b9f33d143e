package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StepEvent records a single input observation within an attempt.
type StepEvent struct {
	ent.Schema
}

func (StepEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}, AttemptTagMixin{}}
}

func (StepEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("step_number").
			Positive().
			Immutable().
			Comment("Step within the skill; duplicates and gaps are allowed"),
		field.String("expected_input").
			Immutable().
			Comment("Input the skill definition expected"),
		field.String("actual_input").
			Immutable().
			Comment("Input the user actually gave"),
		field.Bool("correct").
			Immutable().
			Comment("expected_input == actual_input"),
	}
}

func (StepEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_id", "step_number"),
	}
}
