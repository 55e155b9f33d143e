package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ErrorEvent records a divergence between the expected and the observed
// action at a step. It does not require a StepEvent at the same step number;
// the two are independently reported facts.
type ErrorEvent struct {
	ent.Schema
}

func (ErrorEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}, AttemptTagMixin{}}
}

func (ErrorEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("step_number").
			Positive().
			Immutable(),
		field.String("error_type").
			NotEmpty().
			Immutable().
			Comment("One of the fixed taxonomy kinds"),
		field.String("expected_action").
			Immutable(),
		field.String("actual_action").
			Immutable(),
	}
}

func (ErrorEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_id", "step_number"),
		index.Fields("error_type"),
	}
}
