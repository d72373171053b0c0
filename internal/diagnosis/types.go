package diagnosis

import "github.com/abhisek/fracdiv/internal/problemgen"

// ErrorCategory classifies a wrong answer.
type ErrorCategory string

const (
	CategoryMisconception ErrorCategory = "misconception"
	CategorySpeedRush     ErrorCategory = "speed-rush"
	CategoryCareless      ErrorCategory = "careless"
	CategoryUnclassified  ErrorCategory = "unclassified"
)

// ClassifyInput is what the rules see of one wrong answer.
type ClassifyInput struct {
	Problem        *problemgen.Problem
	LearnerAnswer  string
	ResponseTimeMs int     // 0 when unknown
	Accuracy       float64 // lesson accuracy so far, 0..1
}

// DiagnosisResult explains one wrong answer.
type DiagnosisResult struct {
	Category ErrorCategory

	// MisconceptionID is set only for CategoryMisconception.
	MisconceptionID string

	Confidence     float64
	ClassifierName string // rule name, "llm" or "none"
	Reasoning      string // LLM only
}

// Explain returns a one-line message for the learner, or "" when there is
// nothing useful to say.
func Explain(d *DiagnosisResult) string {
	if d == nil {
		return ""
	}
	switch d.Category {
	case CategoryMisconception:
		if m := GetMisconception(d.MisconceptionID); m != nil {
			return "Looks like: " + m.Label
		}
	case CategorySpeedRush:
		return "That was quick. Take your time."
	case CategoryCareless:
		return "Close. Check your arithmetic."
	}
	return ""
}
