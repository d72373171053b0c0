package lessons

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/fracdiv/internal/fraction"
	"github.com/abhisek/fracdiv/internal/problemgen"
)

func problem(n1, d1, n2, d2 int) problemgen.Problem {
	return problemgen.NewProblem(fraction.F(n1, d1), fraction.F(n2, d2), problemgen.NonExact)
}

func TestHint(t *testing.T) {
	tests := []struct {
		name string
		p    problemgen.Problem
		want string
	}{
		{"dividend denominator larger", problem(3, 8, 1, 4), "8 ÷ 4 = 2"},
		{"divisor denominator larger", problem(3, 4, 3, 8), "8 ÷ 4 = 2"},
		{"neither divides", problem(3, 4, 5, 6), "Rewrite both over 12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, Hint(tt.p), tt.want)
		})
	}
}

func TestPracticeHint(t *testing.T) {
	h := PracticeHint(problem(3, 4, 6, 5))
	assert.Contains(t, h, "6/5 → reciprocal: 5/6")
	assert.Equal(t, 6, strings.Count(h, "\n")+1)
}

func TestConcept(t *testing.T) {
	steps := Concept(problem(3, 4, 6, 5))
	require.Len(t, steps, 7)
	assert.Contains(t, steps[0].Body, "3/4 ÷ 6/5")
	assert.Equal(t, "6/5 → 5/6", steps[2].Body)
	assert.Equal(t, "3/4 ÷ 6/5 = 3/4 × 5/6", steps[3].Body)
	assert.Equal(t, "(3 × 5) / (4 × 6) = 15/24", steps[4].Body)
	assert.Equal(t, "= 5/8", steps[5].Body)
}

func TestWorkedSolution(t *testing.T) {
	steps := WorkedSolution(problem(3, 4, 6, 5))
	require.Len(t, steps, 4)
	assert.Equal(t, "6/5 → 5/6", steps[0].Body)
	assert.Equal(t, "3/4 × 5/6 = 15/24", steps[1].Body)
	assert.Equal(t, "Shortcut: cross-cancel", steps[2].Title)
	assert.Contains(t, steps[2].Body, "3 and 6 share 3")
	assert.Contains(t, steps[2].Body, "1/4 × 5/2")
	assert.Equal(t, "= 5/8", steps[3].Body)
}

func TestWorkedSolution_NoCancel(t *testing.T) {
	steps := WorkedSolution(problem(2, 3, 5, 7))
	require.Len(t, steps, 3)
	assert.Equal(t, "= 14/15", steps[2].Body)
}

func TestWorkedSolution_Improper(t *testing.T) {
	steps := WorkedSolution(problem(3, 4, 1, 2))
	assert.Equal(t, "= 3/2 = 1 1/2", steps[len(steps)-1].Body)
}

func TestFormatSteps(t *testing.T) {
	out := FormatSteps([]Step{{"A", "one"}, {"B", "two"}})
	assert.Equal(t, "A\none\n\nB\ntwo\n", out)
}
