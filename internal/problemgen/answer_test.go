package problemgen

import (
	"testing"

	"github.com/abhisek/fracdiv/internal/fraction"
)

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		n, d   int
		target fraction.Fraction
		want   bool
	}{
		{3, 5, fraction.F(6, 10), true},
		{3, 5, fraction.F(2, 3), false},
		{1, 2, fraction.F(2, 4), true},
		{2, 1, fraction.F(2, 1), true},
		{4, 2, fraction.F(2, 1), true},
		{1, 0, fraction.F(1, 2), false},
		{3, -5, fraction.F(-3, 5), true},
		// 6148914691236517206 × 3 wraps to 2 in int arithmetic.
		{6148914691236517206, 2, fraction.F(1, 3), false},
		{-6148914691236517206, 2, fraction.F(-1, 3), false},
	}
	for _, tc := range tests {
		if got := CheckAnswer(tc.n, tc.d, tc.target); got != tc.want {
			t.Errorf("CheckAnswer(%d, %d, %s) = %v, want %v", tc.n, tc.d, tc.target, got, tc.want)
		}
	}
}

func TestCheckAnswer_Scaling(t *testing.T) {
	targets := []fraction.Fraction{fraction.F(5, 8), fraction.F(2, 1), fraction.F(7, 3)}
	for _, target := range targets {
		for k := 1; k <= 12; k++ {
			if !CheckAnswer(k*target.Num, k*target.Den, target) {
				t.Errorf("CheckAnswer(%d·%s) = false", k, target)
			}
		}
	}
}

func TestCheckAnswerText(t *testing.T) {
	target := fraction.F(3, 2)
	tests := []struct {
		input string
		want  bool
	}{
		{"3/2", true},
		{" 6 / 4 ", true},
		{"1 1/2", true},
		{"2/3", false},
		{"1", false},
		{"", false},
		{"abc", false},
		{"3/0", false},
		{"6148914691236517206/2", false},
		{"1/-9223372036854775808", false},
	}
	for _, tc := range tests {
		if got := CheckAnswerText(tc.input, target); got != tc.want {
			t.Errorf("CheckAnswerText(%q, 3/2) = %v, want %v", tc.input, got, tc.want)
		}
	}

	if !CheckAnswerText("2", fraction.F(2, 1)) {
		t.Error("whole-number answer not accepted")
	}
	if CheckAnswerText("6148914691236517206/2", fraction.F(1, 3)) {
		t.Error("huge wrong answer accepted as 1/3")
	}
}
