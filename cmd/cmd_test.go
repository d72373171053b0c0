package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/fracdiv/internal/diagnosis"
	"github.com/abhisek/fracdiv/internal/fraction"
	"github.com/abhisek/fracdiv/internal/problemgen"
	"github.com/abhisek/fracdiv/internal/session"
)

type scriptedPlanner struct{}

func (scriptedPlanner) ExactRound() []problemgen.Problem {
	return []problemgen.Problem{problemgen.NewProblem(fraction.F(4, 5), fraction.F(2, 5), problemgen.Exact)}
}

func (scriptedPlanner) PracticeRound() (problemgen.Problem, []problemgen.Problem) {
	ex := problemgen.NewProblem(fraction.F(1, 2), fraction.F(3, 4), problemgen.NonExact)
	return ex, []problemgen.Problem{problemgen.NewProblem(fraction.F(2, 3), fraction.F(4, 5), problemgen.NonExact)}
}

func previewSession() *session.Session {
	return session.New(context.Background(), session.Options{
		Planner:   scriptedPlanner{},
		Diagnosis: diagnosis.NewService(nil),
	})
}

func TestRunPreview_FullLesson(t *testing.T) {
	var out bytes.Buffer
	// exact: correct; concept: enter; practice: no-flip answer, then correct.
	in := strings.NewReader("2\n\n8/15\n5/6\n")

	require.NoError(t, runPreview(previewSession(), in, &out))

	got := out.String()
	assert.Contains(t, got, "[1/1] 4/5 ÷ 2/5 = ?")
	assert.Contains(t, got, "Correct!")
	assert.Contains(t, got, "Step 2: Flip and multiply")
	assert.Contains(t, got, "Not quite. Check the hint and try again.")
	assert.Contains(t, got, "Looks like:")
	assert.Contains(t, got, "Summary: 2/2 correct (100%)")
}

func TestRunPreview_HintAndQuit(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("?\nq\n")

	require.NoError(t, runPreview(previewSession(), in, &out))
	assert.Contains(t, out.String(), "Bye!")
	assert.NotContains(t, out.String(), "Summary")
}

func TestRunPreview_InputClosed(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runPreview(previewSession(), strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "(input closed)")
}

func TestGenerateProblems(t *testing.T) {
	gen := problemgen.New(problemgen.DefaultConfig(), problemgen.NewSeededRand(7))

	exact := generateProblems(gen, problemgen.Exact, 3, false)
	require.NotEmpty(t, exact)
	for _, p := range exact {
		assert.Equal(t, 1, p.Quotient.Den, "exact problem %s", p)
	}

	batch := generateProblems(gen, problemgen.NonExact, 4, true)
	require.NotEmpty(t, batch)
	seen := map[problemgen.Key]bool{}
	for _, p := range batch {
		assert.False(t, seen[p.Key()], "duplicate %s", p)
		seen[p.Key()] = true
	}

	assert.Len(t, generateProblems(gen, problemgen.NonExact, 5, false), 5)
}

func TestSeededRand(t *testing.T) {
	assert.Nil(t, seededRand(0))

	a := problemgen.New(problemgen.DefaultConfig(), seededRand(42)).NonExact()
	b := problemgen.New(problemgen.DefaultConfig(), seededRand(42)).NonExact()
	assert.Equal(t, a, b)
}
