package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fracdiv/internal/router"
	"github.com/abhisek/fracdiv/internal/screen"
	"github.com/abhisek/fracdiv/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	flipAt       = 800 * time.Millisecond
	bannerAt     = 1600 * time.Millisecond
	totalDur     = 2400 * time.Millisecond
)

// The splash plays "keep, change, flip" on a sample problem.
var frames = []string{
	"3/4  ÷  2/5",
	"3/4  ×  2/5",
	"3/4  ×  5/2",
}

type tickMsg time.Time

// WelcomeScreen shows a short splash and then replaces itself with home.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with homeFactory's screen
// on the first key press.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (w *WelcomeScreen) frame() string {
	switch {
	case w.elapsed >= bannerAt:
		return frames[2]
	case w.elapsed >= flipAt:
		return frames[1]
	default:
		return frames[0]
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{theme.Problem.Render(w.frame())}

	if w.elapsed >= bannerAt {
		tagline := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("Keep, change, flip.")
		hint := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("press any key to continue")
		sections = append(sections, RenderBanner(width), tagline, "", hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}
