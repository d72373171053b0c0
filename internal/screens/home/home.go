package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fracdiv/internal/router"
	"github.com/abhisek/fracdiv/internal/screen"
	"github.com/abhisek/fracdiv/internal/screens/history"
	"github.com/abhisek/fracdiv/internal/screens/lesson"
	"github.com/abhisek/fracdiv/internal/session"
	"github.com/abhisek/fracdiv/internal/store"
	"github.com/abhisek/fracdiv/internal/ui/components"
	"github.com/abhisek/fracdiv/internal/ui/layout"
	"github.com/abhisek/fracdiv/internal/ui/theme"
)

// Deps are the collaborators the home screen hands to the screens it opens.
// Events and Snapshots may be nil when running without a database.
type Deps struct {
	Events     store.EventRepo
	Snapshots  store.SnapshotRepo
	NewSession func() *session.Session
}

type progressLoadedMsg struct {
	Progress store.ProgressData
	Err      error
}

// HomeScreen is the main menu with the learner's running totals.
type HomeScreen struct {
	deps     Deps
	menu     components.Menu
	progress store.ProgressData
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "Start lesson", Action: h.startLesson},
		{Label: "History", Action: h.openHistory, Disabled: deps.Events == nil},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

func (h *HomeScreen) startLesson() tea.Cmd {
	sess := h.deps.NewSession()
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: lesson.New(sess)}
	}
}

func (h *HomeScreen) openHistory() tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: history.New(h.deps.Events)}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadProgress()
}

// Resume reloads the totals after a lesson ends.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadProgress()
}

func (h *HomeScreen) loadProgress() tea.Cmd {
	snaps := h.deps.Snapshots
	if snaps == nil {
		return nil
	}
	return func() tea.Msg {
		p, err := store.LoadProgress(context.Background(), snaps)
		return progressLoadedMsg{Progress: p, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(progressLoadedMsg); ok {
		if msg.Err == nil {
			h.progress = msg.Progress
		}
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := min(max(width-6, 20), 56)

	sections := []string{
		renderTitle(cw, layout.IsCompactWidth(width)),
		theme.Subtitle.Width(cw).Render("Dividing fractions, one step at a time"),
		renderStats(h.progress, cw),
		lipgloss.NewStyle().Width(cw).Render(h.menu.View()),
	}
	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

const titleFull = `  ┌───┐         ┌───┐
  │ a │    ÷    │ c │
  ├───┤         ├───┤
  │ b │         │ d │
  └───┘         └───┘`

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	text := titleFull
	if compact {
		text = "a/b ÷ c/d"
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(style.Render(text))
}

// renderStats shows the cumulative totals, or a first-run line.
func renderStats(p store.ProgressData, cw int) string {
	var stats string
	if p.Sessions == 0 {
		stats = theme.Hint.Render("No lessons yet. Let's start!")
	} else {
		num := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		dim := lipgloss.NewStyle().Foreground(theme.TextDim)
		stats = fmt.Sprintf("%s %s   %s %s   %s %s",
			num.Render(fmt.Sprint(p.CompletedLessons)), dim.Render("lessons"),
			num.Render(fmt.Sprintf("%.0f%%", p.Accuracy()*100)), dim.Render("correct"),
			num.Render(fmt.Sprint(p.BestStreak)), dim.Render("best streak"))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Render(stats)
}
