package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one submitted answer. A problem answered on the
// second try produces two rows.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("stage").
			NotEmpty().
			Comment("exact or practice"),
		field.String("problem_text").
			NotEmpty().
			Comment("e.g. 3/4 ÷ 3/8"),
		field.String("correct_answer").
			NotEmpty(),
		field.String("learner_answer").
			NotEmpty(),
		field.Bool("correct"),
		field.Int("attempt").
			Positive(),
		field.Int("time_ms").
			Default(0),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("correct"),
	}
}
