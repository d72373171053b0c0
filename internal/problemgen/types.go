package problemgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/fracdiv/internal/fraction"
)

// Difficulty selects which quotient constraints a generated problem obeys.
type Difficulty string

const (
	// Exact problems divide to a positive whole number.
	Exact Difficulty = "exact"

	// NonExact problems divide to a proper or improper fraction and, when
	// possible, offer a visible cross-cancellation.
	NonExact Difficulty = "non-exact"
)

// ParseDifficulty maps CLI and config spellings onto a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact", "whole", "integer":
		return Exact, nil
	case "non-exact", "nonexact", "non_exact", "fraction":
		return NonExact, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want exact or non-exact)", s)
	}
}

// Problem is a single fraction-division exercise: Dividend ÷ Divisor.
type Problem struct {
	// Dividend and Divisor are stored in lowest terms.
	Dividend fraction.Fraction
	Divisor  fraction.Fraction

	// Quotient is the reduced result of Dividend ÷ Divisor.
	Quotient fraction.Fraction

	Difficulty Difficulty
}

// Key identifies a problem by its operands, ignoring the quotient.
type Key struct {
	Dividend fraction.Fraction
	Divisor  fraction.Fraction
}

// Key returns the (dividend, divisor) identity of p.
func (p Problem) Key() Key {
	return Key{Dividend: p.Dividend, Divisor: p.Divisor}
}

// Text renders the problem as shown to the learner, e.g. "3/4 ÷ 3/8".
func (p Problem) Text() string {
	return fmt.Sprintf("%s ÷ %s", p.Dividend, p.Divisor)
}

func (p Problem) String() string {
	return fmt.Sprintf("%s = %s", p.Text(), p.Quotient)
}

// NewProblem reduces both operands and computes the quotient. It does not
// validate; a zero divisor leaves Quotient as the zero value.
func NewProblem(dividend, divisor fraction.Fraction, d Difficulty) Problem {
	p := Problem{
		Dividend:   dividend.Reduce(),
		Divisor:    divisor.Reduce(),
		Difficulty: d,
	}
	if q, err := p.Dividend.Div(p.Divisor); err == nil {
		p.Quotient = q
	}
	return p
}

// Constraints tells the validator chain which rules apply to a candidate.
type Constraints struct {
	Difficulty Difficulty

	// RequireCancel demands gcd(n1, n2) > 1 or gcd(d1, d2) > 1.
	RequireCancel bool
}
