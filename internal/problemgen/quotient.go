package problemgen

import (
	"fmt"

	"github.com/abhisek/fracdiv/internal/fraction"
)

// QuotientValidator checks the quotient against the requested difficulty.
type QuotientValidator struct{}

func (v *QuotientValidator) Name() string { return "quotient" }

func (v *QuotientValidator) Validate(p *Problem, c Constraints) *ValidationError {
	q := p.Quotient
	switch c.Difficulty {
	case Exact:
		if q.Den != 1 || q.Num <= 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("quotient %s is not a positive whole number", q),
				Retryable: true,
			}
		}
	case NonExact:
		if q.Den == 1 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("quotient %s is a whole number", q),
				Retryable: true,
			}
		}
	}
	return nil
}

// CrossCancelValidator requires a common factor between the numerators or
// between the denominators, so the reciprocal method shows a cancellation.
// It only applies when Constraints.RequireCancel is set.
type CrossCancelValidator struct{}

func (v *CrossCancelValidator) Name() string { return "cross-cancel" }

func (v *CrossCancelValidator) Validate(p *Problem, c Constraints) *ValidationError {
	if !c.RequireCancel {
		return nil
	}
	if !HasCrossCancel(p) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("%s has no common factor to cancel", p.Text()),
			Retryable: true,
		}
	}
	return nil
}

// HasCrossCancel reports whether gcd(n1, n2) > 1 or gcd(d1, d2) > 1.
func HasCrossCancel(p *Problem) bool {
	return fraction.GCD(p.Dividend.Num, p.Divisor.Num) > 1 ||
		fraction.GCD(p.Dividend.Den, p.Divisor.Den) > 1
}
