package problemgen

import (
	"testing"

	"github.com/abhisek/fracdiv/internal/fraction"
)

func TestParseProblem(t *testing.T) {
	tests := []struct {
		input   string
		want    fraction.Fraction
		diff    Difficulty
		wantErr bool
	}{
		{"3/4 ÷ 3/8", fraction.F(2, 1), Exact, false},
		{"3/4 ÷ 6/5", fraction.F(5, 8), NonExact, false},
		{" 6 / 8 : 3/4 ", fraction.F(1, 1), Exact, false},
		{"3/4 / 1/2", fraction.F(3, 2), NonExact, false},
		{"2 ÷ 1/3", fraction.F(6, 1), Exact, false},
		{"3/4 ÷ 0/5", fraction.Fraction{}, "", true},
		{"3/0 ÷ 1/2", fraction.Fraction{}, "", true},
		{"what is three quarters halved", fraction.Fraction{}, "", true},
	}
	for _, tc := range tests {
		p, err := ParseProblem(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseProblem(%q) = %v, want error", tc.input, p)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseProblem(%q) unexpected error: %v", tc.input, err)
			continue
		}
		if p.Quotient != tc.want || p.Difficulty != tc.diff {
			t.Errorf("ParseProblem(%q) = %s (%s), want %s (%s)", tc.input, p.Quotient, p.Difficulty, tc.want, tc.diff)
		}
	}
}

func TestProblemText_RoundTrip(t *testing.T) {
	g := New(DefaultConfig(), NewSeededRand(11))
	for i := 0; i < 50; i++ {
		p := g.Generate(NonExact)
		parsed, err := ParseProblem(p.Text())
		if err != nil {
			t.Fatalf("ParseProblem(%q): %v", p.Text(), err)
		}
		if parsed.Key() != p.Key() {
			t.Errorf("round trip %q -> %q", p.Text(), parsed.Text())
		}
	}
}
