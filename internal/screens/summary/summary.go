package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fracdiv/internal/router"
	"github.com/abhisek/fracdiv/internal/screen"
	"github.com/abhisek/fracdiv/internal/session"
	"github.com/abhisek/fracdiv/internal/ui/components"
	"github.com/abhisek/fracdiv/internal/ui/layout"
	"github.com/abhisek/fracdiv/internal/ui/theme"
)

// SummaryScreen is shown when a lesson completes. It offers another
// practice round, a full restart, or the way home.
type SummaryScreen struct {
	sess    *session.Session
	summary session.Summary
	menu    components.Menu
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for a completed session.
func New(sess *session.Session) *SummaryScreen {
	s := &SummaryScreen{sess: sess, summary: sess.Summary()}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "More practice", Action: func() tea.Cmd {
			_ = s.sess.MorePractice()
			return pop
		}},
		{Label: "Restart from the beginning", Action: func() tea.Cmd {
			s.sess.RestartAll()
			return pop
		}},
		{Label: "Home", Action: s.home},
	})
	return s
}

func pop() tea.Msg { return router.PopScreenMsg{} }

func (s *SummaryScreen) home() tea.Cmd {
	s.sess.End()
	return func() tea.Msg { return router.PopToRootMsg{} }
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Lesson Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, s.home()
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("You can divide fractions!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Time: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Problems: %d        Correct: %d        Accuracy: %.0f%%",
		sum.Served, sum.Correct, sum.Accuracy*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(stats))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 50)))
	b.WriteString(layout.Center(width, divider))
	b.WriteString("\n")

	for _, st := range []session.Stage{session.StageExact, session.StagePractice} {
		p := sum.Stages[st]
		if p.Served == 0 {
			continue
		}
		line := fmt.Sprintf("%-10s %d/%d correct", stageName(st), p.Correct, p.Served)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if p.Correct == p.Served {
			style = style.Foreground(theme.Success)
		}
		b.WriteString(layout.Center(width, style.Render(line)))
		b.WriteString("\n")
	}
	if sum.BestStreak > 1 {
		b.WriteString(layout.Center(width, theme.Warning.Render(fmt.Sprintf("Best streak: %d in a row", sum.BestStreak))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(layout.Center(width, s.menu.View()))
	return b.String()
}

func stageName(s session.Stage) string {
	if s == session.StageExact {
		return "Step 1"
	}
	return "Practice"
}
