package problemgen

import (
	"testing"

	"github.com/abhisek/fracdiv/internal/fraction"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Validator: "structural", Message: "denominators are both 4"}
	want := `validator "structural": denominators are both 4`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestRunValidators(t *testing.T) {
	chain := DefaultConfig().Validators
	exact := Constraints{Difficulty: Exact}
	nonExact := Constraints{Difficulty: NonExact, RequireCancel: true}

	tests := []struct {
		name      string
		dividend  fraction.Fraction
		divisor   fraction.Fraction
		c         Constraints
		wantValid string // empty means accepted
	}{
		// 6/8 reduces to 3/4, the same as the divisor.
		{"equal after reduction", fraction.F(6, 8), fraction.F(3, 4), exact, "structural"},
		// 4/6 reduces to 2/3; the quotient would be 1.
		{"quotient one", fraction.F(4, 6), fraction.F(2, 3), exact, "structural"},
		{"unit dividend", fraction.F(5, 5), fraction.F(1, 2), exact, "structural"},
		{"shared denominator", fraction.F(3, 4), fraction.F(1, 4), exact, "structural"},
		{"exact accepted", fraction.F(3, 4), fraction.F(3, 8), exact, ""},
		{"exact rejects fraction quotient", fraction.F(3, 4), fraction.F(6, 5), exact, "quotient"},
		{"non-exact rejects whole quotient", fraction.F(3, 4), fraction.F(3, 8), nonExact, "quotient"},
		{"non-exact needs cancel", fraction.F(2, 3), fraction.F(5, 7), nonExact, "cross-cancel"},
		{"non-exact accepted", fraction.F(3, 4), fraction.F(6, 5), nonExact, ""},
		{"cancel optional", fraction.F(2, 3), fraction.F(5, 7), Constraints{Difficulty: NonExact}, ""},
	}

	for _, tc := range tests {
		p := NewProblem(tc.dividend, tc.divisor, tc.c.Difficulty)
		verr := RunValidators(chain, &p, tc.c)
		switch {
		case tc.wantValid == "" && verr != nil:
			t.Errorf("%s: unexpected rejection: %v", tc.name, verr)
		case tc.wantValid != "" && verr == nil:
			t.Errorf("%s: accepted, want rejection by %q", tc.name, tc.wantValid)
		case tc.wantValid != "" && verr.Validator != tc.wantValid:
			t.Errorf("%s: rejected by %q, want %q", tc.name, verr.Validator, tc.wantValid)
		}
	}
}

func TestStructuralValidator_Unreduced(t *testing.T) {
	p := Problem{
		Dividend: fraction.F(2, 4),
		Divisor:  fraction.F(1, 3),
		Quotient: fraction.F(3, 2),
	}
	v := &StructuralValidator{}
	if verr := v.Validate(&p, Constraints{}); verr == nil {
		t.Error("unreduced dividend accepted")
	}
}

func TestMathCheckValidator(t *testing.T) {
	v := &MathCheckValidator{}

	good := NewProblem(fraction.F(3, 4), fraction.F(3, 8), Exact)
	if verr := v.Validate(&good, Constraints{}); verr != nil {
		t.Errorf("unexpected error: %v", verr)
	}

	bad := good
	bad.Quotient = fraction.F(3, 1)
	verr := v.Validate(&bad, Constraints{})
	if verr == nil {
		t.Fatal("mismatched quotient accepted")
	}
	if verr.Retryable {
		t.Error("math-check failures should not be retryable")
	}
}

func TestHasCrossCancel(t *testing.T) {
	tests := []struct {
		a, b fraction.Fraction
		want bool
	}{
		{fraction.F(3, 4), fraction.F(6, 5), true},  // gcd(3, 6) = 3
		{fraction.F(1, 4), fraction.F(3, 10), true}, // gcd(4, 10) = 2
		{fraction.F(2, 3), fraction.F(5, 7), false},
	}
	for _, tc := range tests {
		p := NewProblem(tc.a, tc.b, NonExact)
		if got := HasCrossCancel(&p); got != tc.want {
			t.Errorf("HasCrossCancel(%s) = %v, want %v", p.Text(), got, tc.want)
		}
	}
}
