package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin provides the base fields shared by all observation event types.
// Every event entity includes this mixin to get consistent sequence numbering
// and timestamping. Events are append-only: neither field is ever updated.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Monotonically increasing global sequence number"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time of the observation"),
	}
}

func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sequence"),
		index.Fields("timestamp"),
	}
}

// AttemptTagMixin provides the (user_id, skill_id, attempt_id) tags that make
// every observation queryable by user, by skill, by (skill, step), and by
// attempt without joins.
type AttemptTagMixin struct {
	mixin.Schema
}

func (AttemptTagMixin) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Immutable().
			Comment("Attempt this observation belongs to"),
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("User who performed the attempt"),
		field.String("skill_id").
			NotEmpty().
			Immutable().
			Comment("Skill being trained"),
	}
}

func (AttemptTagMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("user_id"),
		index.Fields("skill_id"),
	}
}
