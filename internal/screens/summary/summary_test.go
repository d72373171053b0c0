package summary

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

func completedSession(t *testing.T) *session.Session {
	t.Helper()
	s := session.New(context.Background(), session.Options{Planner: onePlanner{}})
	s.Submit("2")
	if err := s.Next(); err != nil {
		t.Fatal(err)
	}
	if err := s.Understood(); err != nil {
		t.Fatal(err)
	}
	s.Submit("1")
	s.Submit("1")
	if err := s.Next(); err != nil {
		t.Fatal(err)
	}
	if s.Stage() != session.StageComplete {
		t.Fatalf("stage = %v, want complete", s.Stage())
	}
	return s
}

func TestSummaryScreen_View(t *testing.T) {
	s := New(completedSession(t))
	view := s.View(80, 24)
	for _, want := range []string{"Problems: 2", "Correct: 1", "50%", "More practice", "Home"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_MorePractice(t *testing.T) {
	sess := completedSession(t)
	s := New(sess)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("More practice should pop back to the lesson")
	}
	if sess.Stage() != session.StageConcept {
		t.Errorf("stage = %v, want concept", sess.Stage())
	}
}

func TestSummaryScreen_Restart(t *testing.T) {
	sess := completedSession(t)
	id := sess.ID()
	s := New(sess)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if sess.Stage() != session.StageExact || sess.ID() == id {
		t.Errorf("restart: stage=%v id=%q", sess.Stage(), sess.ID())
	}
}

func TestSummaryScreen_EscGoesHome(t *testing.T) {
	s := New(completedSession(t))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("Esc should pop to the home screen")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(completedSession(t))
	if len(s.KeyHints()) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(s.KeyHints()))
	}
}
