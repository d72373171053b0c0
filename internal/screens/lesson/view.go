package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/fracdiv/internal/diagnosis"
	"github.com/abhisek/fracdiv/internal/lessons"
	"github.com/abhisek/fracdiv/internal/session"
	"github.com/abhisek/fracdiv/internal/ui/components"
	"github.com/abhisek/fracdiv/internal/ui/layout"
	"github.com/abhisek/fracdiv/internal/ui/theme"
)

func (s *LessonScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}

	switch s.sess.Stage() {
	case session.StageConcept:
		return s.renderConcept(width)
	case session.StageComplete:
		return layout.Center(width, theme.Title.Render("\n\nAll done! Press Enter for your summary."))
	}
	return s.renderProblem(width)
}

func (s *LessonScreen) renderProblem(width int) string {
	p, ok := s.sess.Current()
	if !ok {
		return ""
	}
	blockWidth := min(width-8, 70)

	var b strings.Builder

	i, n := s.sess.Position()
	label := "Exact quotients"
	if s.sess.Stage() == session.StagePractice {
		label = "Practice"
	}
	done := i - 1
	if s.sess.Finished() {
		done = i
	}
	b.WriteString(layout.Center(width, components.NewStepBar(label, done, n, blockWidth).View()))
	b.WriteString("\n\n\n")

	b.WriteString(layout.Center(width, theme.Problem.Render(p.Text()+"  =  ?")))
	b.WriteString("\n\n")
	b.WriteString(layout.Center(width, "Answer: "+s.input.View()))
	b.WriteString("\n\n")

	if fb := s.feedback; fb != nil {
		b.WriteString(layout.Center(width, renderFeedbackLine(fb)))
		b.WriteString("\n")
		if d := s.sess.Diagnosis(); d != nil && fb.Kind != session.FeedbackCorrect {
			if line := diagnosis.Explain(d); line != "" {
				b.WriteString(layout.Center(width, theme.Hint.Render(line)))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	if s.showHint && !s.sess.Finished() {
		b.WriteString(layout.Center(width, theme.HintCard.Width(blockWidth).Render(s.sess.Hint())))
		b.WriteString("\n\n")
	}

	if fb := s.feedback; fb != nil && len(fb.Solution) > 0 {
		b.WriteString(layout.Center(width, renderSteps(fb.Solution, blockWidth)))
		b.WriteString("\n\n")
	}

	if s.micro != nil && s.sess.Finished() && s.feedback != nil && s.feedback.Kind == session.FeedbackReveal {
		b.WriteString(layout.Center(width, renderMicroLesson(s.micro, blockWidth)))
		b.WriteString("\n\n")
	}

	if s.sess.Finished() {
		b.WriteString(layout.Center(width, theme.Hint.Render("Press Enter for the next problem")))
	}
	return b.String()
}

func renderFeedbackLine(fb *session.Feedback) string {
	switch fb.Kind {
	case session.FeedbackCorrect:
		return theme.Correct.Render(fb.Message)
	case session.FeedbackInvalid:
		return theme.Warning.Render(fb.Message)
	}
	return theme.Incorrect.Render(fb.Message)
}

func (s *LessonScreen) renderConcept(width int) string {
	blockWidth := min(width-8, 72)
	var b strings.Builder

	b.WriteString(layout.Center(width, theme.Title.Render("When the denominators don't divide evenly")))
	b.WriteString("\n\n")
	b.WriteString(layout.Center(width, renderSteps(s.sess.Concept(), blockWidth)))
	b.WriteString("\n\n")
	b.WriteString(layout.Center(width, s.understood.View()))
	return b.String()
}

func renderSteps(steps []lessons.Step, width int) string {
	var b strings.Builder
	for i, st := range steps {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(theme.StepTitle.Render(st.Title))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(st.Body))
	}
	return theme.HintCard.Width(width).Render(b.String())
}

func renderMicroLesson(l *lessons.Lesson, width int) string {
	var b strings.Builder
	b.WriteString(theme.StepTitle.Render(l.Title))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(l.Explanation))
	if l.WorkedExample != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render(l.WorkedExample))
	}
	if l.Practice != nil {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Try this one on paper: %s", l.Practice.Text)))
	}
	return theme.Card.Width(width).Render(b.String())
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End this lesson?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your answers so far are saved."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end lesson"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))
	return b.String()
}
