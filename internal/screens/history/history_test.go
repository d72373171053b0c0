package history

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fracdiv/internal/router"
	"github.com/abhisek/fracdiv/internal/store"
)

func seededRepo(t *testing.T) store.EventRepo {
	t.Helper()
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })

	ctx := context.Background()
	repo := st.EventRepo()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(repo.AppendSessionEvent(ctx, store.SessionEventData{SessionID: "s1", Action: store.ActionStart}))
	must(repo.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID: "s1", Stage: "exact", ProblemText: "4/5 ÷ 2/5", CorrectAnswer: "2", LearnerAnswer: "2", Correct: true, Attempt: 1,
	}))
	must(repo.AppendDiagnosisEvent(ctx, store.DiagnosisEventData{
		SessionID: "s1", ProblemText: "1/2 ÷ 3/4", LearnerAnswer: "3/8", Category: "misconception", MisconceptionID: "fd-no-flip", Classifier: "fd-no-flip",
	}))
	must(repo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: "s1", Action: store.ActionEnd, Stage: "complete", ProblemsServed: 4, CorrectAnswers: 3, DurationSecs: 95,
	}))
	return repo
}

// run applies cmd's message to the screen.
func run(t *testing.T, s *HistoryScreen, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	s.Update(cmd())
}

func TestHistoryScreen_Loads(t *testing.T) {
	s := New(seededRepo(t))
	run(t, s, s.Init())

	if !s.loaded || len(s.sessions) != 1 {
		t.Fatalf("loaded=%v sessions=%d", s.loaded, len(s.sessions))
	}
	view := s.View(100, 30)
	for _, want := range []string{"4 problems", "75% correct", "1:35", "Most common mistakes"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestHistoryScreen_ExpandAnswers(t *testing.T) {
	s := New(seededRepo(t))
	run(t, s, s.Init())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	run(t, s, cmd)

	if got := len(s.answers["s1"]); got != 1 {
		t.Fatalf("answers = %d, want 1", got)
	}
	if !strings.Contains(s.View(100, 30), "4/5 ÷ 2/5 = 2") {
		t.Error("expanded view should list the answer")
	}

	// Collapsing and reopening uses the cached answers.
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("cached answers should not reload")
	}
}

func TestHistoryScreen_Empty(t *testing.T) {
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	s := New(st.EventRepo())
	run(t, s, s.Init())
	if !strings.Contains(s.View(80, 24), "No lessons yet") {
		t.Error("expected empty state")
	}
}

func TestHistoryScreen_Esc(t *testing.T) {
	s := New(seededRepo(t))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("Esc should pop")
	}
}

func TestMisconceptionLines(t *testing.T) {
	lines := misconceptionLines(map[string]int{"fd-no-flip": 1, "fd-flip-both": 3, "unknown-id": 1}, 2)
	if len(lines) != 2 {
		t.Fatalf("lines = %v", lines)
	}
	if !strings.Contains(lines[0], "×3") {
		t.Errorf("most frequent first: %v", lines)
	}
	// Ties break by id, and known ids render their label.
	if !strings.Contains(lines[1], "×1") || strings.Contains(lines[1], "unknown-id") {
		t.Errorf("second line = %q", lines[1])
	}
}
