package problemgen

import "fmt"

// StructuralValidator enforces the rules every problem shares regardless of
// difficulty: positive reduced operands, no unit fractions, no equal
// operands and no shared denominator.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Problem, _ Constraints) *ValidationError {
	a, b := p.Dividend, p.Divisor
	if a.Num < 1 || a.Den < 1 || b.Num < 1 || b.Den < 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("operands must be positive, got %s and %s", a, b),
			Retryable: true,
		}
	}
	if !a.IsReduced() || !b.IsReduced() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "operands are not in lowest terms",
			Retryable: true,
		}
	}
	if a.IsUnit() || b.IsUnit() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "operand reduces to 1",
			Retryable: true,
		}
	}
	if a.Equal(b) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("dividend and divisor are both %s", a),
			Retryable: true,
		}
	}
	if a.Den == b.Den {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("denominators are both %d", a.Den),
			Retryable: true,
		}
	}
	return nil
}
