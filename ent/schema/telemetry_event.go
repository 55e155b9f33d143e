package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// TelemetryEvent records the richer per-step measurements the simulator
// reports alongside the plain input stream: how long the push was held, peak
// handrim force, distance covered, whether assistance was engaged.
type TelemetryEvent struct {
	ent.Schema
}

func (TelemetryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}, AttemptTagMixin{}}
}

func (TelemetryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("step_number").
			Positive().
			Immutable(),
		field.String("expected_action").
			Optional().
			Immutable(),
		field.String("actual_action").
			Optional().
			Immutable(),
		field.Bool("success").
			Default(false).
			Immutable().
			Comment("Whether the step was performed as expected"),
		field.Int64("hold_duration_ms").
			Default(0).
			Immutable(),
		field.Float("peak_force").
			Default(0).
			Immutable(),
		field.Float("distance_m").
			Default(0).
			Immutable(),
		field.Bool("assist_used").
			Default(false).
			Immutable(),
	}
}
