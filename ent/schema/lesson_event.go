package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonEvent records an LLM micro-lesson delivered to the learner.
type LessonEvent struct {
	ent.Schema
}

func (LessonEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LessonEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").Default(""),
		field.String("problem_text").NotEmpty(),
		field.String("title").Default(""),
		field.String("practice_text").Default(""),
		field.Bool("practice_verified").
			Default(false).
			Comment("Practice answer checked locally"),
	}
}

func (LessonEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
