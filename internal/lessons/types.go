package lessons

import (
	"github.com/abhisek/fracdiv/internal/diagnosis"
	"github.com/abhisek/fracdiv/internal/problemgen"
)

// Lesson is an LLM-written micro-lesson for a problem the learner missed.
type Lesson struct {
	Title         string
	Explanation   string
	WorkedExample string

	// Practice is nil when the model's practice question failed local
	// verification.
	Practice *PracticeQuestion
}

// PracticeQuestion is a follow-up problem suggested by the model. Problem
// is recomputed locally from Text, so its Quotient is authoritative.
type PracticeQuestion struct {
	Text        string
	Answer      string
	Explanation string
	Problem     problemgen.Problem
}

// LessonInput is the context for one lesson request.
type LessonInput struct {
	SessionID     string
	Problem       problemgen.Problem
	WrongAnswers  []string
	LastDiagnosis *diagnosis.DiagnosisResult
	Accuracy      float64
}
