package lessons

import (
	"fmt"
	"strings"

	"github.com/abhisek/fracdiv/internal/fraction"
	"github.com/abhisek/fracdiv/internal/problemgen"
)

// Step is one titled part of an explanation.
type Step struct {
	Title string
	Body  string
}

// Hint is the first-stage hint: it points at how the denominators relate,
// without giving the answer away.
func Hint(p problemgen.Problem) string {
	d1, d2 := p.Dividend.Den, p.Divisor.Den
	lines := []string{
		"How are the two denominators related?",
		fmt.Sprintf("Denominator 1: %d", d1),
		fmt.Sprintf("Denominator 2: %d", d2),
	}
	switch {
	case d1%d2 == 0:
		lines = append(lines,
			"One denominator divides the other evenly!",
			fmt.Sprintf("%d ÷ %d = %d", d1, d2, d1/d2))
	case d2%d1 == 0:
		lines = append(lines,
			"One denominator divides the other evenly!",
			fmt.Sprintf("%d ÷ %d = %d", d2, d1, d2/d1))
	default:
		l := lcm(d1, d2)
		lines = append(lines,
			fmt.Sprintf("Rewrite both over %d, then divide the numerators.", l))
	}
	lines = append(lines, "Once you get it right you'll learn the full method.")
	return strings.Join(lines, "\n")
}

// PracticeHint is the second-stage hint: the reciprocal recipe plus the
// divisor's reciprocal for this problem.
func PracticeHint(p problemgen.Problem) string {
	return strings.Join([]string{
		"Divide fractions with the reciprocal!",
		"1. Flip the second fraction (its reciprocal)",
		"2. Change ÷ into ×",
		"3. Multiply numerators together and denominators together",
		"4. Reduce",
		fmt.Sprintf("Second fraction: %s → reciprocal: %s", p.Divisor, p.Divisor.Reciprocal()),
	}, "\n")
}

// Concept walks through example with the reciprocal method. It is shown
// once before the practice batch.
func Concept(example problemgen.Problem) []Step {
	a, b := example.Dividend, example.Divisor
	flipped := b.Reciprocal()
	raw := fraction.Fraction{Num: a.Num * flipped.Num, Den: a.Den * flipped.Den}

	return []Step{
		{
			Title: "Harder fractions",
			Body: fmt.Sprintf("%s\n\nThe denominators don't divide evenly, so the first method is awkward.\n"+
				"The reciprocal makes it easy.", example.Text()),
		},
		{
			Title: "Key idea: the reciprocal",
			Body: "The reciprocal swaps numerator and denominator.\n" +
				"  3/4 → 4/3\n  2/5 → 5/2\n" +
				"Dividing by a fraction is the same as multiplying by its reciprocal.",
		},
		{
			Title: "Step 1: Find the reciprocal of the second fraction",
			Body:  fmt.Sprintf("%s → %s", b, flipped),
		},
		{
			Title: "Step 2: Change division into multiplication",
			Body:  fmt.Sprintf("%s ÷ %s = %s × %s", a, b, a, flipped),
		},
		{
			Title: "Step 3: Multiply across",
			Body: fmt.Sprintf("(%d × %d) / (%d × %d) = %d/%d",
				a.Num, flipped.Num, a.Den, flipped.Den, raw.Num, raw.Den),
		},
		{
			Title: "Step 4: Reduce",
			Body:  fmt.Sprintf("= %s", answerText(example.Quotient)),
		},
		{
			Title: "Summary",
			Body:  "Flip the second fraction and multiply!\n  a/b ÷ c/d = a/b × d/c",
		},
	}
}

// WorkedSolution is the step-by-step solution shown after a correct
// practice answer and on reveal.
func WorkedSolution(p problemgen.Problem) []Step {
	a, b := p.Dividend, p.Divisor
	flipped := b.Reciprocal()
	raw := fraction.Fraction{Num: a.Num * flipped.Num, Den: a.Den * flipped.Den}

	steps := []Step{
		{
			Title: "Step 1: Flip the second fraction",
			Body:  fmt.Sprintf("%s → %s", b, flipped),
		},
		{
			Title: "Step 2: Multiply instead of divide",
			Body: fmt.Sprintf("%s × %s = %d/%d",
				a, flipped, raw.Num, raw.Den),
		},
	}

	// Cross-cancelling shortens the multiplication; show it when it applies.
	if g1, g2 := fraction.GCD(a.Num, flipped.Den), fraction.GCD(flipped.Num, a.Den); g1 > 1 || g2 > 1 {
		var parts []string
		if g1 > 1 {
			parts = append(parts, fmt.Sprintf("%d and %d share %d", a.Num, flipped.Den, g1))
		}
		if g2 > 1 {
			parts = append(parts, fmt.Sprintf("%d and %d share %d", flipped.Num, a.Den, g2))
		}
		n1, d2 := a.Num/g1, flipped.Den/g1
		n2, d1 := flipped.Num/g2, a.Den/g2
		steps = append(steps, Step{
			Title: "Shortcut: cross-cancel",
			Body: fmt.Sprintf("%s, so %s × %s becomes %d/%d × %d/%d",
				strings.Join(parts, "; "), a, flipped, n1, d1, n2, d2),
		})
	}

	steps = append(steps, Step{
		Title: "Step 3: Reduce",
		Body:  fmt.Sprintf("= %s", answerText(p.Quotient)),
	})
	return steps
}

// answerText shows improper quotients in both forms.
func answerText(q fraction.Fraction) string {
	if q.Den != 1 && q.Num > q.Den {
		return fmt.Sprintf("%s = %s", q, q.Mixed())
	}
	return q.String()
}

func lcm(a, b int) int {
	return a / fraction.GCD(a, b) * b
}

// FormatSteps renders steps as plain text for line-mode output.
func FormatSteps(steps []Step) string {
	var b strings.Builder
	for i, s := range steps {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s\n%s\n", s.Title, s.Body)
	}
	return b.String()
}
