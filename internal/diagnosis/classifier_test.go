package diagnosis

import (
	"testing"

	"github.com/abhisek/fracdiv/internal/fraction"
	"github.com/abhisek/fracdiv/internal/problemgen"
)

func testProblem() *problemgen.Problem {
	p := problemgen.NewProblem(fraction.F(3, 4), fraction.F(6, 5), problemgen.NonExact)
	return &p
}

func TestMisconceptionClassifiers(t *testing.T) {
	improper := problemgen.NewProblem(fraction.F(3, 4), fraction.F(1, 2), problemgen.NonExact) // 3/2
	exact := problemgen.NewProblem(fraction.F(3, 4), fraction.F(3, 8), problemgen.Exact)      // 2

	tests := []struct {
		problem *problemgen.Problem
		answer  string
		wantID  string
	}{
		{testProblem(), "9/10", "fd-no-flip"},
		{testProblem(), "18/20", "fd-no-flip"},
		{testProblem(), "8/5", "fd-flip-wrong"},
		{testProblem(), "10/9", "fd-flip-both"},
		{testProblem(), "1/2", "fd-numerators-only"},
		{&exact, "1/2", "fd-flip-wrong"},
		{&exact, "1", "fd-numerators-only"},
		{&improper, "1/2", "fd-dropped-whole"},
		{&improper, "1", "fd-whole-only"},
		{testProblem(), "7/3", ""},
		{testProblem(), "nonsense", ""},
	}

	for _, tc := range tests {
		input := &ClassifyInput{Problem: tc.problem, LearnerAnswer: tc.answer, ResponseTimeMs: 5000}
		var got string
		for _, m := range AllMisconceptions() {
			c := &MisconceptionClassifier{Misconception: m}
			if cat, _ := c.Classify(input); cat == CategoryMisconception {
				got = c.Name()
				break
			}
		}
		if got != tc.wantID {
			t.Errorf("%s answered %q: matched %q, want %q", tc.problem.Text(), tc.answer, got, tc.wantID)
		}
	}
}

func TestMisconceptionClassifier_IgnoresCorrectPrediction(t *testing.T) {
	c := &MisconceptionClassifier{Misconception: GetMisconception("fd-numerators-only")}

	p := problemgen.NewProblem(fraction.F(1, 2), fraction.F(1, 3), problemgen.NonExact) // 3/2
	if cat, _ := c.Classify(&ClassifyInput{Problem: &p, LearnerAnswer: "1"}); cat != CategoryMisconception {
		t.Errorf("1/2 ÷ 1/3 answered 1: got %q, want misconception", cat)
	}

	// With equal denominators dividing the numerators is a valid method, so
	// the rule cannot explain anything.
	same := problemgen.NewProblem(fraction.F(1, 3), fraction.F(2, 3), problemgen.NonExact) // 1/2
	if cat, _ := c.Classify(&ClassifyInput{Problem: &same, LearnerAnswer: "1/2"}); cat != "" {
		t.Errorf("prediction equal to the quotient should not classify, got %q", cat)
	}
}

func TestSpeedRushClassifier(t *testing.T) {
	c := &SpeedRushClassifier{}
	tests := []struct {
		ms   int
		want ErrorCategory
	}{
		{500, CategorySpeedRush},
		{1999, CategorySpeedRush},
		{2000, ""},
		{0, ""},
	}
	for _, tc := range tests {
		if got, _ := c.Classify(&ClassifyInput{ResponseTimeMs: tc.ms}); got != tc.want {
			t.Errorf("Classify(%dms) = %q, want %q", tc.ms, got, tc.want)
		}
	}
}

func TestCarelessClassifier(t *testing.T) {
	c := &CarelessClassifier{}
	tests := []struct {
		answer   string
		accuracy float64
		want     ErrorCategory
	}{
		{"5/9", 0.2, CategoryCareless},   // denominator off by one
		{"6/8", 0.2, CategoryCareless},   // numerator off by one
		{"15/23", 0.2, CategoryCareless}, // unreduced form, denominator off by one
		{"7/3", 0.9, CategoryCareless},
		{"7/3", 0.5, ""},
		{"6/9", 0.2, ""},
	}
	for _, tc := range tests {
		input := &ClassifyInput{Problem: testProblem(), LearnerAnswer: tc.answer, Accuracy: tc.accuracy}
		if got, _ := c.Classify(input); got != tc.want {
			t.Errorf("Classify(%q, acc %.1f) = %q, want %q", tc.answer, tc.accuracy, got, tc.want)
		}
	}
}

func TestRunClassifiers_HighestConfidence(t *testing.T) {
	// A misconception beats the accuracy-based careless rule.
	input := &ClassifyInput{Problem: testProblem(), LearnerAnswer: "9/10", ResponseTimeMs: 5000, Accuracy: 0.9}
	cat, conf, name := RunClassifiers(DefaultClassifiers(), input)
	if cat != CategoryMisconception || name != "fd-no-flip" || conf != 0.85 {
		t.Errorf("got (%q, %v, %q), want misconception fd-no-flip at 0.85", cat, conf, name)
	}

	// Rushing is the stronger signal when both match.
	input = &ClassifyInput{Problem: testProblem(), LearnerAnswer: "9/10", ResponseTimeMs: 500}
	cat, _, name = RunClassifiers(DefaultClassifiers(), input)
	if cat != CategorySpeedRush || name != "speed-rush" {
		t.Errorf("got (%q, %q), want speed-rush", cat, name)
	}

	input = &ClassifyInput{Problem: testProblem(), LearnerAnswer: "7/3", ResponseTimeMs: 500}
	cat, _, name = RunClassifiers(DefaultClassifiers(), input)
	if cat != CategorySpeedRush || name != "speed-rush" {
		t.Errorf("got (%q, %q), want speed-rush", cat, name)
	}

	input = &ClassifyInput{Problem: testProblem(), LearnerAnswer: "7/3", ResponseTimeMs: 5000}
	if cat, _, _ := RunClassifiers(DefaultClassifiers(), input); cat != "" {
		t.Errorf("got %q, want no match", cat)
	}
}

func TestTaxonomy(t *testing.T) {
	ids := MisconceptionIDs()
	if len(ids) != len(seedMisconceptions) {
		t.Fatalf("got %d IDs, want %d", len(ids), len(seedMisconceptions))
	}
	for _, id := range ids {
		m := GetMisconception(id)
		if m == nil || m.Label == "" || m.Description == "" || m.Predict == nil {
			t.Errorf("misconception %q is incomplete", id)
		}
	}
	if GetMisconception("nope") != nil {
		t.Error("unknown ID returned a misconception")
	}
}
