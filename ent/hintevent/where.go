// Code generated by ent, DO NOT EDIT.

package hintevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/fracdiv/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldSessionID, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldStage, v))
}

// ProblemText applies equality check predicate on the "problem_text" field. It's identical to ProblemTextEQ.
func ProblemText(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldProblemText, v))
}

// HintText applies equality check predicate on the "hint_text" field. It's identical to HintTextEQ.
func HintText(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldHintText, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasSuffix(FieldStage, v))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContainsFold(FieldStage, v))
}

// ProblemTextEQ applies the EQ predicate on the "problem_text" field.
func ProblemTextEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldProblemText, v))
}

// ProblemTextNEQ applies the NEQ predicate on the "problem_text" field.
func ProblemTextNEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldProblemText, v))
}

// ProblemTextIn applies the In predicate on the "problem_text" field.
func ProblemTextIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldProblemText, vs...))
}

// ProblemTextNotIn applies the NotIn predicate on the "problem_text" field.
func ProblemTextNotIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldProblemText, vs...))
}

// ProblemTextGT applies the GT predicate on the "problem_text" field.
func ProblemTextGT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldProblemText, v))
}

// ProblemTextGTE applies the GTE predicate on the "problem_text" field.
func ProblemTextGTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldProblemText, v))
}

// ProblemTextLT applies the LT predicate on the "problem_text" field.
func ProblemTextLT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldProblemText, v))
}

// ProblemTextLTE applies the LTE predicate on the "problem_text" field.
func ProblemTextLTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldProblemText, v))
}

// ProblemTextContains applies the Contains predicate on the "problem_text" field.
func ProblemTextContains(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContains(FieldProblemText, v))
}

// ProblemTextHasPrefix applies the HasPrefix predicate on the "problem_text" field.
func ProblemTextHasPrefix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasPrefix(FieldProblemText, v))
}

// ProblemTextHasSuffix applies the HasSuffix predicate on the "problem_text" field.
func ProblemTextHasSuffix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasSuffix(FieldProblemText, v))
}

// ProblemTextEqualFold applies the EqualFold predicate on the "problem_text" field.
func ProblemTextEqualFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEqualFold(FieldProblemText, v))
}

// ProblemTextContainsFold applies the ContainsFold predicate on the "problem_text" field.
func ProblemTextContainsFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContainsFold(FieldProblemText, v))
}

// HintTextEQ applies the EQ predicate on the "hint_text" field.
func HintTextEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEQ(FieldHintText, v))
}

// HintTextNEQ applies the NEQ predicate on the "hint_text" field.
func HintTextNEQ(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNEQ(FieldHintText, v))
}

// HintTextIn applies the In predicate on the "hint_text" field.
func HintTextIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldIn(FieldHintText, vs...))
}

// HintTextNotIn applies the NotIn predicate on the "hint_text" field.
func HintTextNotIn(vs ...string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldNotIn(FieldHintText, vs...))
}

// HintTextGT applies the GT predicate on the "hint_text" field.
func HintTextGT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGT(FieldHintText, v))
}

// HintTextGTE applies the GTE predicate on the "hint_text" field.
func HintTextGTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldGTE(FieldHintText, v))
}

// HintTextLT applies the LT predicate on the "hint_text" field.
func HintTextLT(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLT(FieldHintText, v))
}

// HintTextLTE applies the LTE predicate on the "hint_text" field.
func HintTextLTE(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldLTE(FieldHintText, v))
}

// HintTextContains applies the Contains predicate on the "hint_text" field.
func HintTextContains(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContains(FieldHintText, v))
}

// HintTextHasPrefix applies the HasPrefix predicate on the "hint_text" field.
func HintTextHasPrefix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasPrefix(FieldHintText, v))
}

// HintTextHasSuffix applies the HasSuffix predicate on the "hint_text" field.
func HintTextHasSuffix(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldHasSuffix(FieldHintText, v))
}

// HintTextEqualFold applies the EqualFold predicate on the "hint_text" field.
func HintTextEqualFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldEqualFold(FieldHintText, v))
}

// HintTextContainsFold applies the ContainsFold predicate on the "hint_text" field.
func HintTextContainsFold(v string) predicate.HintEvent {
	return predicate.HintEvent(sql.FieldContainsFold(FieldHintText, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HintEvent) predicate.HintEvent {
	return predicate.HintEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HintEvent) predicate.HintEvent {
	return predicate.HintEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HintEvent) predicate.HintEvent {
	return predicate.HintEvent(sql.NotPredicates(p))
}
