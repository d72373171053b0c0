package diagnosis

import (
	"time"

	"github.com/abhisek/fracdiv/internal/fraction"
	"github.com/abhisek/fracdiv/internal/problemgen"
)

// Slips are wrong answers that do not point at a misunderstanding of
// division itself.
const (
	// SpeedRushThreshold is the response time below which a wrong answer
	// counts as rushed.
	SpeedRushThreshold = 2 * time.Second

	// CarelessAccuracyThreshold is the lesson accuracy above which a wrong
	// answer counts as a slip.
	CarelessAccuracyThreshold = 0.80
)

// SpeedRushClassifier flags wrong answers typed faster than anyone could
// work the problem. An unknown response time never matches.
type SpeedRushClassifier struct{}

func (c *SpeedRushClassifier) Name() string { return "speed-rush" }

func (c *SpeedRushClassifier) Classify(input *ClassifyInput) (ErrorCategory, float64) {
	rt := time.Duration(input.ResponseTimeMs) * time.Millisecond
	if rt > 0 && rt < SpeedRushThreshold {
		return CategorySpeedRush, 0.9
	}
	return "", 0
}

// CarelessClassifier flags near misses, and any wrong answer from a learner
// who has mostly been right.
type CarelessClassifier struct{}

func (c *CarelessClassifier) Name() string { return "careless" }

func (c *CarelessClassifier) Classify(input *ClassifyInput) (ErrorCategory, float64) {
	if p := input.Problem; p != nil {
		if ans, err := fraction.Parse(input.LearnerAnswer); err == nil && nearMiss(ans, p) {
			return CategoryCareless, 0.7
		}
	}
	if input.Accuracy > CarelessAccuracyThreshold {
		return CategoryCareless, 0.8
	}
	return "", 0
}

// nearMiss reports whether ans is one away from the quotient in exactly one
// term, comparing against both the reduced and the unreduced product.
func nearMiss(ans fraction.Fraction, p *problemgen.Problem) bool {
	unreduced := fraction.Fraction{
		Num: p.Dividend.Num * p.Divisor.Den,
		Den: p.Dividend.Den * p.Divisor.Num,
	}
	for _, want := range [...]fraction.Fraction{p.Quotient, unreduced} {
		dn, dd := absDiff(ans.Num, want.Num), absDiff(ans.Den, want.Den)
		if dn+dd == 1 {
			return true
		}
	}
	return false
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
