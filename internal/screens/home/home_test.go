package home

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fracdiv/internal/router"
	"github.com/abhisek/fracdiv/internal/session"
	"github.com/abhisek/fracdiv/internal/store"
)

func testDeps(t *testing.T) (Deps, *store.Store) {
	t.Helper()
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })
	return Deps{
		Events:    st.EventRepo(),
		Snapshots: st.SnapshotRepo(),
		NewSession: func() *session.Session {
			return session.New(context.Background(), session.Options{Events: st.EventRepo(), Snapshots: st.SnapshotRepo()})
		},
	}, st
}

func TestHomeScreen_StartLesson(t *testing.T) {
	deps, _ := testDeps(t)
	h := New(deps)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if push.Screen.Title() != "Step 1: Same denominators" {
		t.Errorf("pushed %q", push.Screen.Title())
	}
}

func TestHomeScreen_HistoryDisabledWithoutStore(t *testing.T) {
	h := New(Deps{NewSession: func() *session.Session {
		return session.New(context.Background(), session.Options{})
	}})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if h.menu.Selected != 2 {
		t.Errorf("Selected = %d, want 2 (History skipped)", h.menu.Selected)
	}
	if cmd := h.Init(); cmd != nil {
		t.Error("no snapshot repo, nothing to load")
	}
}

func TestHomeScreen_ProgressTotals(t *testing.T) {
	deps, st := testDeps(t)
	ctx := context.Background()
	_, err := store.RecordProgress(ctx, st.EventRepo(), st.SnapshotRepo(), store.SessionResult{
		ProblemsServed: 4, CorrectAnswers: 3, BestStreak: 3, Completed: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	h := New(deps)
	if !strings.Contains(h.View(100, 30), "No lessons yet") {
		t.Error("expected first-run text before loading")
	}

	h.Update(h.Resume()())
	view := h.View(100, 30)
	for _, want := range []string{"75%", "lessons", "best streak"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
