package session

import "github.com/abhisek/fracdiv/internal/problemgen"

// Stage is a step of the lesson.
type Stage int

const (
	StageExact    Stage = iota // quotients that are whole numbers
	StageConcept               // reciprocal walkthrough of an example problem
	StagePractice              // non-exact practice batch
	StageComplete
)

func (s Stage) String() string {
	switch s {
	case StageExact:
		return "exact"
	case StageConcept:
		return "concept"
	case StagePractice:
		return "practice"
	case StageComplete:
		return "complete"
	}
	return "unknown"
}

// Answerable reports whether the stage serves problems.
func (s Stage) Answerable() bool {
	return s == StageExact || s == StagePractice
}

// Plan is the problem set for one pass through the lesson.
type Plan struct {
	Exact    []problemgen.Problem
	Example  problemgen.Problem
	Practice []problemgen.Problem
}

// Problems returns the batch served in stage s.
func (p *Plan) Problems(s Stage) []problemgen.Problem {
	switch s {
	case StageExact:
		return p.Exact
	case StagePractice:
		return p.Practice
	}
	return nil
}

const (
	// DefaultExactCount is the size of the first stage's batch.
	DefaultExactCount = 3

	// DefaultPracticeCount is the size of the practice batch.
	DefaultPracticeCount = 3

	// RevealAfter is the number of wrong answers after which the quotient
	// is shown and the problem is finished.
	RevealAfter = 2
)
