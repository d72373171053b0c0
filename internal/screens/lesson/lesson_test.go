package lesson

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fracdiv/internal/fraction"
	"github.com/abhisek/fracdiv/internal/problemgen"
	"github.com/abhisek/fracdiv/internal/router"
	"github.com/abhisek/fracdiv/internal/session"
)

type onePlanner struct{}

func (onePlanner) ExactRound() []problemgen.Problem {
	return []problemgen.Problem{problemgen.NewProblem(fraction.F(4, 5), fraction.F(2, 5), problemgen.Exact)}
}

func (onePlanner) PracticeRound() (problemgen.Problem, []problemgen.Problem) {
	ex := problemgen.NewProblem(fraction.F(1, 2), fraction.F(3, 4), problemgen.NonExact)
	return ex, []problemgen.Problem{problemgen.NewProblem(fraction.F(2, 3), fraction.F(4, 5), problemgen.NonExact)}
}

func newTestScreen() *LessonScreen {
	return New(session.New(context.Background(), session.Options{Planner: onePlanner{}}))
}

var enter = tea.KeyPressMsg{Code: tea.KeyEnter}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// answer types v and presses Enter.
func answer(s *LessonScreen, v string) tea.Cmd {
	for _, r := range v {
		s.Update(key(r))
	}
	_, cmd := s.Update(enter)
	return cmd
}

func TestLessonScreen_CorrectThenNext(t *testing.T) {
	s := newTestScreen()
	if s.Title() != "Step 1: Same denominators" {
		t.Fatalf("Title = %q", s.Title())
	}

	answer(s, "2")
	if s.feedback == nil || s.feedback.Kind != session.FeedbackCorrect {
		t.Fatalf("feedback = %+v, want correct", s.feedback)
	}
	if !strings.Contains(s.View(80, 24), "Correct!") {
		t.Error("view should show Correct!")
	}
	if got := s.KeyHints()[0].Description; got != "Next problem" {
		t.Errorf("key hint = %q, want Next problem", got)
	}

	s.Update(enter)
	if s.sess.Stage() != session.StageConcept {
		t.Fatalf("stage = %v, want concept", s.sess.Stage())
	}
	if s.feedback != nil || s.input.Value() != "" {
		t.Error("moving on should clear feedback and input")
	}
}

func TestLessonScreen_RetryThenReveal(t *testing.T) {
	s := newTestScreen()

	answer(s, "3")
	if s.feedback.Kind != session.FeedbackRetry {
		t.Fatalf("kind = %v, want retry", s.feedback.Kind)
	}
	if !s.showHint {
		t.Error("a retry should open the hint")
	}

	s.input.Reset()
	answer(s, "5")
	if s.feedback.Kind != session.FeedbackReveal {
		t.Fatalf("kind = %v, want reveal", s.feedback.Kind)
	}
	if !strings.Contains(s.View(80, 24), "The answer is 2") {
		t.Error("reveal should show the answer")
	}
}

func TestLessonScreen_InvalidInputKeepsProblemOpen(t *testing.T) {
	s := newTestScreen()
	answer(s, "1/0")
	if s.feedback.Kind != session.FeedbackInvalid {
		t.Fatalf("kind = %v, want invalid", s.feedback.Kind)
	}
	if s.sess.Attempts() != 0 {
		t.Errorf("attempts = %d, invalid input should not count", s.sess.Attempts())
	}
}

func TestLessonScreen_FiltersLetters(t *testing.T) {
	s := newTestScreen()
	for _, r := range "1a/b2" {
		s.Update(key(r))
	}
	if got := s.input.Value(); got != "1/2" {
		t.Errorf("input = %q, want 1/2", got)
	}
}

func TestLessonScreen_HintToggle(t *testing.T) {
	s := newTestScreen()
	s.Update(key('?'))
	if !s.showHint {
		t.Fatal("? should show the hint")
	}
	s.Update(key('?'))
	if s.showHint {
		t.Error("? again should hide the hint")
	}
}

func TestLessonScreen_ConceptToPracticeToComplete(t *testing.T) {
	s := newTestScreen()
	answer(s, "2")
	s.Update(enter)

	if !strings.Contains(s.View(80, 30), "1/2") {
		t.Error("concept page should show the worked example")
	}
	s.Update(enter)
	if s.sess.Stage() != session.StagePractice {
		t.Fatalf("stage = %v, want practice", s.sess.Stage())
	}
	if s.Title() != "Step 2: Practice" {
		t.Errorf("Title = %q", s.Title())
	}

	answer(s, "5/6")
	_, cmd := s.Update(enter)
	if cmd == nil {
		t.Fatal("finishing the last problem should produce a command")
	}
	if _, ok := cmd().(completeMsg); !ok {
		t.Fatal("expected completeMsg")
	}

	_, cmd = s.Update(completeMsg{})
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if push.Screen.Title() != "Lesson Summary" {
		t.Errorf("pushed %q, want Summary", push.Screen.Title())
	}
}

func TestLessonScreen_QuitConfirm(t *testing.T) {
	s := newTestScreen()
	esc := tea.KeyPressMsg{Code: tea.KeyEscape}

	s.Update(esc)
	if !s.confirmQuit {
		t.Fatal("esc should ask before quitting")
	}
	s.Update(key('n'))
	if s.confirmQuit {
		t.Fatal("n should cancel")
	}

	s.Update(esc)
	_, cmd := s.Update(key('y'))
	if cmd == nil {
		t.Fatal("y should pop the screen")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestLessonScreen_Score(t *testing.T) {
	s := newTestScreen()
	answer(s, "2")
	got := s.Score()
	if got.Correct != 1 || got.Served != 1 || got.Streak != 1 {
		t.Errorf("Score = %+v", got)
	}
}
