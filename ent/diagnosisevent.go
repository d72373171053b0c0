// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/fracdiv/ent/diagnosisevent"
)

// DiagnosisEvent is the model entity for the DiagnosisEvent schema.
type DiagnosisEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global sequence shared by all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// ProblemText holds the value of the "problem_text" field.
	ProblemText string `json:"problem_text,omitempty"`
	// LearnerAnswer holds the value of the "learner_answer" field.
	LearnerAnswer string `json:"learner_answer,omitempty"`
	// careless, speed-rush, misconception, unclassified
	Category string `json:"category,omitempty"`
	// MisconceptionID holds the value of the "misconception_id" field.
	MisconceptionID string `json:"misconception_id,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Rule name or llm
	Classifier string `json:"classifier,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning    string `json:"reasoning,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DiagnosisEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case diagnosisevent.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case diagnosisevent.FieldID, diagnosisevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case diagnosisevent.FieldSessionID, diagnosisevent.FieldProblemText, diagnosisevent.FieldLearnerAnswer, diagnosisevent.FieldCategory, diagnosisevent.FieldMisconceptionID, diagnosisevent.FieldClassifier, diagnosisevent.FieldReasoning:
			values[i] = new(sql.NullString)
		case diagnosisevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DiagnosisEvent fields.
func (_m *DiagnosisEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case diagnosisevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case diagnosisevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case diagnosisevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case diagnosisevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case diagnosisevent.FieldProblemText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field problem_text", values[i])
			} else if value.Valid {
				_m.ProblemText = value.String
			}
		case diagnosisevent.FieldLearnerAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_answer", values[i])
			} else if value.Valid {
				_m.LearnerAnswer = value.String
			}
		case diagnosisevent.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case diagnosisevent.FieldMisconceptionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field misconception_id", values[i])
			} else if value.Valid {
				_m.MisconceptionID = value.String
			}
		case diagnosisevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case diagnosisevent.FieldClassifier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field classifier", values[i])
			} else if value.Valid {
				_m.Classifier = value.String
			}
		case diagnosisevent.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DiagnosisEvent.
// This includes values selected through modifiers, order, etc.
func (_m *DiagnosisEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DiagnosisEvent.
// Note that you need to call DiagnosisEvent.Unwrap() before calling this method if this DiagnosisEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DiagnosisEvent) Update() *DiagnosisEventUpdateOne {
	return NewDiagnosisEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DiagnosisEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DiagnosisEvent) Unwrap() *DiagnosisEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DiagnosisEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DiagnosisEvent) String() string {
	var builder strings.Builder
	builder.WriteString("DiagnosisEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("problem_text=")
	builder.WriteString(_m.ProblemText)
	builder.WriteString(", ")
	builder.WriteString("learner_answer=")
	builder.WriteString(_m.LearnerAnswer)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("misconception_id=")
	builder.WriteString(_m.MisconceptionID)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("classifier=")
	builder.WriteString(_m.Classifier)
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteByte(')')
	return builder.String()
}

// DiagnosisEvents is a parsable slice of DiagnosisEvent.
type DiagnosisEvents []*DiagnosisEvent
