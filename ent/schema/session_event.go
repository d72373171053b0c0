package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records lesson session start and end.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("stage").
			Default("").
			Comment("Furthest stage reached (on end only)"),
		field.Int("problems_served").
			Default(0),
		field.Int("correct_answers").
			Default(0),
		field.Int("duration_secs").
			Default(0),
		field.Int64("seed").
			Default(0).
			Comment("Generator seed, 0 when random"),
		field.Bool("llm_enabled").
			Default(false),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
