// Code generated by ent, DO NOT EDIT.

package diagnosisevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/fracdiv/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSessionID, v))
}

// ProblemText applies equality check predicate on the "problem_text" field. It's identical to ProblemTextEQ.
func ProblemText(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldProblemText, v))
}

// LearnerAnswer applies equality check predicate on the "learner_answer" field. It's identical to LearnerAnswerEQ.
func LearnerAnswer(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldLearnerAnswer, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldCategory, v))
}

// MisconceptionID applies equality check predicate on the "misconception_id" field. It's identical to MisconceptionIDEQ.
func MisconceptionID(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldMisconceptionID, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldConfidence, v))
}

// Classifier applies equality check predicate on the "classifier" field. It's identical to ClassifierEQ.
func Classifier(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldClassifier, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldReasoning, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ProblemTextEQ applies the EQ predicate on the "problem_text" field.
func ProblemTextEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldProblemText, v))
}

// ProblemTextNEQ applies the NEQ predicate on the "problem_text" field.
func ProblemTextNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldProblemText, v))
}

// ProblemTextIn applies the In predicate on the "problem_text" field.
func ProblemTextIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldProblemText, vs...))
}

// ProblemTextNotIn applies the NotIn predicate on the "problem_text" field.
func ProblemTextNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldProblemText, vs...))
}

// ProblemTextGT applies the GT predicate on the "problem_text" field.
func ProblemTextGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldProblemText, v))
}

// ProblemTextGTE applies the GTE predicate on the "problem_text" field.
func ProblemTextGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldProblemText, v))
}

// ProblemTextLT applies the LT predicate on the "problem_text" field.
func ProblemTextLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldProblemText, v))
}

// ProblemTextLTE applies the LTE predicate on the "problem_text" field.
func ProblemTextLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldProblemText, v))
}

// ProblemTextContains applies the Contains predicate on the "problem_text" field.
func ProblemTextContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldProblemText, v))
}

// ProblemTextHasPrefix applies the HasPrefix predicate on the "problem_text" field.
func ProblemTextHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldProblemText, v))
}

// ProblemTextHasSuffix applies the HasSuffix predicate on the "problem_text" field.
func ProblemTextHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldProblemText, v))
}

// ProblemTextEqualFold applies the EqualFold predicate on the "problem_text" field.
func ProblemTextEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldProblemText, v))
}

// ProblemTextContainsFold applies the ContainsFold predicate on the "problem_text" field.
func ProblemTextContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldProblemText, v))
}

// LearnerAnswerEQ applies the EQ predicate on the "learner_answer" field.
func LearnerAnswerEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldLearnerAnswer, v))
}

// LearnerAnswerNEQ applies the NEQ predicate on the "learner_answer" field.
func LearnerAnswerNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldLearnerAnswer, v))
}

// LearnerAnswerIn applies the In predicate on the "learner_answer" field.
func LearnerAnswerIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldLearnerAnswer, vs...))
}

// LearnerAnswerNotIn applies the NotIn predicate on the "learner_answer" field.
func LearnerAnswerNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldLearnerAnswer, vs...))
}

// LearnerAnswerGT applies the GT predicate on the "learner_answer" field.
func LearnerAnswerGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldLearnerAnswer, v))
}

// LearnerAnswerGTE applies the GTE predicate on the "learner_answer" field.
func LearnerAnswerGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldLearnerAnswer, v))
}

// LearnerAnswerLT applies the LT predicate on the "learner_answer" field.
func LearnerAnswerLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldLearnerAnswer, v))
}

// LearnerAnswerLTE applies the LTE predicate on the "learner_answer" field.
func LearnerAnswerLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldLearnerAnswer, v))
}

// LearnerAnswerContains applies the Contains predicate on the "learner_answer" field.
func LearnerAnswerContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldLearnerAnswer, v))
}

// LearnerAnswerHasPrefix applies the HasPrefix predicate on the "learner_answer" field.
func LearnerAnswerHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldLearnerAnswer, v))
}

// LearnerAnswerHasSuffix applies the HasSuffix predicate on the "learner_answer" field.
func LearnerAnswerHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldLearnerAnswer, v))
}

// LearnerAnswerEqualFold applies the EqualFold predicate on the "learner_answer" field.
func LearnerAnswerEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldLearnerAnswer, v))
}

// LearnerAnswerContainsFold applies the ContainsFold predicate on the "learner_answer" field.
func LearnerAnswerContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldLearnerAnswer, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldCategory, v))
}

// MisconceptionIDEQ applies the EQ predicate on the "misconception_id" field.
func MisconceptionIDEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldMisconceptionID, v))
}

// MisconceptionIDNEQ applies the NEQ predicate on the "misconception_id" field.
func MisconceptionIDNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldMisconceptionID, v))
}

// MisconceptionIDIn applies the In predicate on the "misconception_id" field.
func MisconceptionIDIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldMisconceptionID, vs...))
}

// MisconceptionIDNotIn applies the NotIn predicate on the "misconception_id" field.
func MisconceptionIDNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldMisconceptionID, vs...))
}

// MisconceptionIDGT applies the GT predicate on the "misconception_id" field.
func MisconceptionIDGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldMisconceptionID, v))
}

// MisconceptionIDGTE applies the GTE predicate on the "misconception_id" field.
func MisconceptionIDGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldMisconceptionID, v))
}

// MisconceptionIDLT applies the LT predicate on the "misconception_id" field.
func MisconceptionIDLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldMisconceptionID, v))
}

// MisconceptionIDLTE applies the LTE predicate on the "misconception_id" field.
func MisconceptionIDLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldMisconceptionID, v))
}

// MisconceptionIDContains applies the Contains predicate on the "misconception_id" field.
func MisconceptionIDContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldMisconceptionID, v))
}

// MisconceptionIDHasPrefix applies the HasPrefix predicate on the "misconception_id" field.
func MisconceptionIDHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldMisconceptionID, v))
}

// MisconceptionIDHasSuffix applies the HasSuffix predicate on the "misconception_id" field.
func MisconceptionIDHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldMisconceptionID, v))
}

// MisconceptionIDEqualFold applies the EqualFold predicate on the "misconception_id" field.
func MisconceptionIDEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldMisconceptionID, v))
}

// MisconceptionIDContainsFold applies the ContainsFold predicate on the "misconception_id" field.
func MisconceptionIDContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldMisconceptionID, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldConfidence, v))
}

// ClassifierEQ applies the EQ predicate on the "classifier" field.
func ClassifierEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldClassifier, v))
}

// ClassifierNEQ applies the NEQ predicate on the "classifier" field.
func ClassifierNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldClassifier, v))
}

// ClassifierIn applies the In predicate on the "classifier" field.
func ClassifierIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldClassifier, vs...))
}

// ClassifierNotIn applies the NotIn predicate on the "classifier" field.
func ClassifierNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldClassifier, vs...))
}

// ClassifierGT applies the GT predicate on the "classifier" field.
func ClassifierGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldClassifier, v))
}

// ClassifierGTE applies the GTE predicate on the "classifier" field.
func ClassifierGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldClassifier, v))
}

// ClassifierLT applies the LT predicate on the "classifier" field.
func ClassifierLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldClassifier, v))
}

// ClassifierLTE applies the LTE predicate on the "classifier" field.
func ClassifierLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldClassifier, v))
}

// ClassifierContains applies the Contains predicate on the "classifier" field.
func ClassifierContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldClassifier, v))
}

// ClassifierHasPrefix applies the HasPrefix predicate on the "classifier" field.
func ClassifierHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldClassifier, v))
}

// ClassifierHasSuffix applies the HasSuffix predicate on the "classifier" field.
func ClassifierHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldClassifier, v))
}

// ClassifierEqualFold applies the EqualFold predicate on the "classifier" field.
func ClassifierEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldClassifier, v))
}

// ClassifierContainsFold applies the ContainsFold predicate on the "classifier" field.
func ClassifierContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldClassifier, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.FieldContainsFold(FieldReasoning, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DiagnosisEvent) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DiagnosisEvent) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DiagnosisEvent) predicate.DiagnosisEvent {
	return predicate.DiagnosisEvent(sql.NotPredicates(p))
}
