package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptSession is one timed trial of a user performing a skill.
//
// This is the only entity that is ever mutated after insert, and only once:
// the in_progress -> completed transition sets status, success and end_time
// together. Step and error observations attached to the attempt live in their
// own append-only tables.
type AttemptSession struct {
	ent.Schema
}

func (AttemptSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("External attempt identifier (att_ prefix)"),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("skill_id").
			NotEmpty().
			Immutable(),
		field.Enum("status").
			Values("in_progress", "completed").
			Default("in_progress"),
		field.Bool("success").
			Optional().
			Nillable().
			Comment("Set exactly once, by completion"),
		field.Time("start_time").
			Default(time.Now).
			Immutable(),
		field.Time("end_time").
			Optional().
			Nillable(),
	}
}

func (AttemptSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id").Unique(),
		index.Fields("user_id"),
		index.Fields("skill_id"),
		index.Fields("status"),
		index.Fields("user_id", "skill_id"),
	}
}
