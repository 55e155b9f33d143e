package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is a registered trainee. Progress summaries are not stored here; they
// are recomputed from the event log on demand. Only the training phase is
// materialized, since promotion is a stateful decision.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("External user identifier"),
		field.String("current_phase").
			Default("Foundation").
			Comment("Training phase: Foundation, Mobility, or Advanced"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Optional().
			Nillable().
			Comment("Last mutation affecting this user's data"),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
