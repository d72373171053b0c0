package diagnosis

import (
	"sort"

	"github.com/abhisek/fracdiv/internal/fraction"
	"github.com/abhisek/fracdiv/internal/problemgen"
)

// Misconception defines a known wrong procedure for fraction division.
type Misconception struct {
	ID          string
	Label       string
	Description string
	Examples    []string

	// Predict returns the answer a learner holding this misconception would
	// give, and false when the misconception does not apply to p.
	Predict func(p *problemgen.Problem) (fraction.Fraction, bool)
}

// registry is the package-level misconception registry, keyed by ID.
var registry map[string]*Misconception

// ordered holds the registry in seed order.
var ordered []*Misconception

func init() {
	registry = make(map[string]*Misconception, len(seedMisconceptions))
	for i := range seedMisconceptions {
		m := &seedMisconceptions[i]
		registry[m.ID] = m
		ordered = append(ordered, m)
	}
}

// GetMisconception returns a misconception by ID, or nil if not found.
func GetMisconception(id string) *Misconception {
	return registry[id]
}

// AllMisconceptions returns every misconception in priority order.
func AllMisconceptions() []*Misconception {
	out := make([]*Misconception, len(ordered))
	copy(out, ordered)
	return out
}

// MisconceptionIDs returns the sorted IDs, for prompts and CLI output.
func MisconceptionIDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MisconceptionClassifier matches a wrong answer against the prediction of
// a single misconception.
type MisconceptionClassifier struct {
	Misconception *Misconception
}

func (c *MisconceptionClassifier) Name() string { return c.Misconception.ID }

func (c *MisconceptionClassifier) Classify(input *ClassifyInput) (ErrorCategory, float64) {
	if input.Problem == nil || c.Misconception.Predict == nil {
		return "", 0
	}
	ans, err := fraction.Parse(input.LearnerAnswer)
	if err != nil || ans.Den == 0 {
		return "", 0
	}
	predicted, ok := c.Misconception.Predict(input.Problem)
	if !ok || predicted.Equal(input.Problem.Quotient) {
		return "", 0
	}
	if ans.Equal(predicted) {
		return CategoryMisconception, 0.85
	}
	return "", 0
}
