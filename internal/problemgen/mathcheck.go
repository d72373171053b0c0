package problemgen

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/abhisek/fracdiv/internal/fraction"
)

// MathCheckValidator recomputes the quotient from the rendered problem text
// and compares it to the stored quotient. It catches drift between what the
// learner sees and what is scored.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(p *Problem, _ Constraints) *ValidationError {
	parsed, err := ParseProblem(p.Text())
	if err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("cannot re-read %q: %v", p.Text(), err),
			Retryable: false,
		}
	}
	if !parsed.Quotient.Identical(p.Quotient) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %s but problem claims %s", parsed.Quotient, p.Quotient),
			Retryable: false,
		}
	}
	return nil
}

// "a/b ÷ c/d". Either operand may be a whole number. A bare "/" between the
// operands is accepted as a division sign.
var problemRe = regexp.MustCompile(`^\s*(\d+)(?:\s*/\s*(\d+))?\s*(?:÷|:|/)\s*(\d+)(?:\s*/\s*(\d+))?\s*$`)

// ParseProblem reads a division problem such as "3/4 ÷ 3/8" and computes
// its quotient. The difficulty is derived from the quotient.
func ParseProblem(text string) (Problem, error) {
	m := problemRe.FindStringSubmatch(text)
	if m == nil {
		return Problem{}, fmt.Errorf("no fraction division found in %q", text)
	}

	dividend, err := operand(m[1], m[2])
	if err != nil {
		return Problem{}, fmt.Errorf("dividend: %w", err)
	}
	divisor, err := operand(m[3], m[4])
	if err != nil {
		return Problem{}, fmt.Errorf("divisor: %w", err)
	}
	if divisor.Num == 0 {
		return Problem{}, fmt.Errorf("division by zero")
	}

	p := NewProblem(dividend, divisor, NonExact)
	if p.Quotient.Den == 1 {
		p.Difficulty = Exact
	}
	return p, nil
}

func operand(numStr, denStr string) (fraction.Fraction, error) {
	n, err := strconv.Atoi(numStr)
	if err != nil {
		return fraction.Fraction{}, err
	}
	if denStr == "" {
		return fraction.New(n, 1)
	}
	d, err := strconv.Atoi(denStr)
	if err != nil {
		return fraction.Fraction{}, err
	}
	return fraction.New(n, d)
}
