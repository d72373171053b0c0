package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fracdiv/internal/router"
	"github.com/abhisek/fracdiv/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome() (*WelcomeScreen, *int) {
	calls := 0
	return New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func sendTicks(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for range n {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestFrames(t *testing.T) {
	w, _ := newTestWelcome()

	if view := w.View(80, 24); !strings.Contains(view, "÷") || strings.Contains(view, "Keep, change, flip") {
		t.Error("expected the division frame without the tagline")
	}

	sendTicks(w, 8)
	if !strings.Contains(w.View(80, 24), "3/4  ×  2/5") {
		t.Error("expected the change frame")
	}

	sendTicks(w, 8)
	view := w.View(80, 24)
	if !strings.Contains(view, "3/4  ×  5/2") {
		t.Error("expected the flip frame")
	}
	if !strings.Contains(view, "Keep, change, flip") {
		t.Error("tagline should show once the flip is done")
	}
}

func TestTicksStopAtEnd(t *testing.T) {
	w, calls := newTestWelcome()
	if cmd := sendTicks(w, 40); cmd != nil {
		t.Error("ticking should stop after the animation")
	}
	if w.elapsed != totalDur {
		t.Errorf("elapsed = %v, want %v", w.elapsed, totalDur)
	}
	if *calls != 0 {
		t.Errorf("factory called %d times without a key press", *calls)
	}
}

func TestKeypressReplacesOnce(t *testing.T) {
	w, calls := newTestWelcome()
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if msg.Screen == nil {
		t.Error("replacement screen is nil")
	}

	if _, cmd := w.Update(tea.KeyPressMsg{Code: 'b'}); cmd != nil {
		t.Error("second key press should do nothing")
	}
	if *calls != 1 {
		t.Errorf("factory called %d times, want 1", *calls)
	}
}

func TestRenderBannerCompact(t *testing.T) {
	if got := RenderBanner(30); !strings.Contains(got, bannerCompact) {
		t.Errorf("RenderBanner(30) = %q", got)
	}
}
