package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fracdiv/internal/router"
	"github.com/abhisek/fracdiv/internal/screen"
	"github.com/abhisek/fracdiv/internal/ui/layout"
)

type stubScreen struct {
	title string
	keys  []string
	score *layout.Score
}

func (s *stubScreen) Init() tea.Cmd { return nil }

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		s.keys = append(s.keys, k.String())
	}
	return s, nil
}

func (s *stubScreen) View(int, int) string { return "body of " + s.title }
func (s *stubScreen) Title() string        { return s.title }

type scoredScreen struct{ stubScreen }

func (s *scoredScreen) Score() layout.Score { return *s.score }

func (s *scoredScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "?", Description: "Hint"}}
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestCtrlCQuits(t *testing.T) {
	m := NewAppModel(&stubScreen{title: "Home"})
	_, cmd := update(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

func TestEscReachesScreen(t *testing.T) {
	root := &stubScreen{title: "Home"}
	top := &stubScreen{title: "Lesson"}
	m := NewAppModel(root)
	m, _ = update(m, router.PushScreenMsg{Screen: top})

	m, _ = update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.router.Depth() != 2 {
		t.Errorf("depth = %d, esc must not pop on its own", m.router.Depth())
	}
	if len(top.keys) != 1 || top.keys[0] != "esc" {
		t.Errorf("screen keys = %v, want [esc]", top.keys)
	}
}

func TestViewRendersFrame(t *testing.T) {
	m := NewAppModel(&scoredScreen{stubScreen{title: "Lesson", score: &layout.Score{Correct: 2, Served: 3}}})
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	out := m.render()
	for _, want := range []string{"body of Lesson", "✓ 2/3", "Hint", "Ctrl+C"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q", want)
		}
	}
	if strings.Contains(out, "Navigate") {
		t.Error("screen hints should replace the default ones")
	}
}
