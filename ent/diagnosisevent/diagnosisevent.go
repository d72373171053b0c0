// Code generated by ent, DO NOT EDIT.

package diagnosisevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the diagnosisevent type in the database.
	Label = "diagnosis_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldProblemText holds the string denoting the problem_text field in the database.
	FieldProblemText = "problem_text"
	// FieldLearnerAnswer holds the string denoting the learner_answer field in the database.
	FieldLearnerAnswer = "learner_answer"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldMisconceptionID holds the string denoting the misconception_id field in the database.
	FieldMisconceptionID = "misconception_id"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldClassifier holds the string denoting the classifier field in the database.
	FieldClassifier = "classifier"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// Table holds the table name of the diagnosisevent in the database.
	Table = "diagnosis_events"
)

// Columns holds all SQL columns for diagnosisevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldProblemText,
	FieldLearnerAnswer,
	FieldCategory,
	FieldMisconceptionID,
	FieldConfidence,
	FieldClassifier,
	FieldReasoning,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ProblemTextValidator is a validator for the "problem_text" field. It is called by the builders before save.
	ProblemTextValidator func(string) error
	// LearnerAnswerValidator is a validator for the "learner_answer" field. It is called by the builders before save.
	LearnerAnswerValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// DefaultMisconceptionID holds the default value on creation for the "misconception_id" field.
	DefaultMisconceptionID string
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultClassifier holds the default value on creation for the "classifier" field.
	DefaultClassifier string
	// DefaultReasoning holds the default value on creation for the "reasoning" field.
	DefaultReasoning string
)

// OrderOption defines the ordering options for the DiagnosisEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByProblemText orders the results by the problem_text field.
func ByProblemText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemText, opts...).ToFunc()
}

// ByLearnerAnswer orders the results by the learner_answer field.
func ByLearnerAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerAnswer, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByMisconceptionID orders the results by the misconception_id field.
func ByMisconceptionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMisconceptionID, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByClassifier orders the results by the classifier field.
func ByClassifier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassifier, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}
