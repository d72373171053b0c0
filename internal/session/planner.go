package session

import "github.com/abhisek/fracdiv/internal/problemgen"

// Planner draws the problems for a lesson.
type Planner interface {
	// ExactRound returns the first stage's batch.
	ExactRound() []problemgen.Problem

	// PracticeRound returns a fresh example problem for the concept page and
	// a practice batch that differs from it.
	PracticeRound() (example problemgen.Problem, batch []problemgen.Problem)
}

// DefaultPlanner draws from a problemgen.Generator.
type DefaultPlanner struct {
	gen           *problemgen.Generator
	exactCount    int
	practiceCount int
}

// NewPlanner creates a DefaultPlanner. Non-positive counts fall back to the
// defaults.
func NewPlanner(gen *problemgen.Generator, exactCount, practiceCount int) *DefaultPlanner {
	if exactCount <= 0 {
		exactCount = DefaultExactCount
	}
	if practiceCount <= 0 {
		practiceCount = DefaultPracticeCount
	}
	return &DefaultPlanner{gen: gen, exactCount: exactCount, practiceCount: practiceCount}
}

func (p *DefaultPlanner) ExactRound() []problemgen.Problem {
	return p.gen.ExactBatch(p.exactCount)
}

func (p *DefaultPlanner) PracticeRound() (problemgen.Problem, []problemgen.Problem) {
	example := p.gen.NonExact()
	return example, p.gen.DistinctBatch(example, p.practiceCount)
}

// BuildPlan draws a complete plan.
func BuildPlan(p Planner) Plan {
	example, practice := p.PracticeRound()
	return Plan{Exact: p.ExactRound(), Example: example, Practice: practice}
}
