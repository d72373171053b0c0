package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DiagnosisEvent records how a wrong answer was classified.
type DiagnosisEvent struct {
	ent.Schema
}

func (DiagnosisEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DiagnosisEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("problem_text").NotEmpty(),
		field.String("learner_answer").NotEmpty(),
		field.String("category").
			NotEmpty().
			Comment("careless, speed-rush, misconception, unclassified"),
		field.String("misconception_id").
			Default(""),
		field.Float("confidence").
			Default(0),
		field.String("classifier").
			Default("").
			Comment("Rule name or llm"),
		field.Text("reasoning").
			Default(""),
	}
}

func (DiagnosisEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("category"),
		index.Fields("misconception_id"),
	}
}
