package lessons

import (
	"fmt"
	"strings"

	"github.com/abhisek/fracdiv/internal/diagnosis"
)

const lessonSystemPrompt = `You are a patient, encouraging tutor teaching an elementary student to divide fractions. The student just missed a problem twice and needs a short, clear lesson.`

func buildLessonUserMessage(input LessonInput) string {
	var b strings.Builder
	p := input.Problem

	fmt.Fprintf(&b, "Problem: %s\n", p.Text())
	fmt.Fprintf(&b, "Correct answer: %s\n", p.Quotient)
	fmt.Fprintf(&b, "Student accuracy this session: %.0f%%\n", input.Accuracy*100)

	b.WriteString("\nStudent's wrong answers:\n")
	if len(input.WrongAnswers) == 0 {
		b.WriteString("None recorded\n")
	}
	for _, a := range input.WrongAnswers {
		fmt.Fprintf(&b, "- %s\n", a)
	}

	if d := input.LastDiagnosis; d != nil {
		fmt.Fprintf(&b, "\nDiagnosed issue: %s\n", d.Category)
		if m := diagnosis.GetMisconception(d.MisconceptionID); m != nil {
			fmt.Fprintf(&b, "Misconception: %s (%s)\n", m.Label, m.Description)
		}
	}

	b.WriteString(`
Instructions:
1. Explain in 3-5 simple sentences why dividing by a fraction means multiplying by its reciprocal. Address the specific mistake above.
2. Give a worked example with numbered steps for a problem similar to, but different from, the one above.
3. Write one practice problem of the form a/b ÷ c/d with reduced, positive fractions and different denominators. It should be slightly easier than the one above.
4. Give its answer fully reduced, written as a/b or as a whole number.
5. Use plain text for all math. Use / for fractions, ÷ for division and × for multiplication. No LaTeX.`)

	return b.String()
}
