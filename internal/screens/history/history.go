package history

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fracdiv/internal/diagnosis"
	"github.com/abhisek/fracdiv/internal/router"
	"github.com/abhisek/fracdiv/internal/screen"
	"github.com/abhisek/fracdiv/internal/store"
	"github.com/abhisek/fracdiv/internal/ui/layout"
	"github.com/abhisek/fracdiv/internal/ui/theme"
)

// sessionLimit bounds how many past sessions are listed.
const sessionLimit = 20

type historyLoadedMsg struct {
	Sessions       []store.SessionSummary
	Misconceptions map[string]int
	Err            error
}

type answersLoadedMsg struct {
	SessionID string
	Answers   []store.AnswerRecord
	Err       error
}

// HistoryScreen lists past sessions, their answers and the mistakes seen
// most often.
type HistoryScreen struct {
	eventRepo      store.EventRepo
	sessions       []store.SessionSummary
	misconceptions map[string]int
	answers        map[string][]store.AnswerRecord
	selected       int
	expanded       map[int]bool
	loaded         bool
	errMsg         string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		answers:   make(map[string][]store.AnswerRecord),
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: sessionLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		counts, err := repo.MisconceptionCounts(ctx)
		if err != nil {
			return historyLoadedMsg{Sessions: sessions}
		}
		return historyLoadedMsg{Sessions: sessions, Misconceptions: counts}
	}
}

func (s *HistoryScreen) loadAnswers(sessionID string) tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		answers, err := repo.QueryAnswers(context.Background(), sessionID)
		return answersLoadedMsg{SessionID: sessionID, Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answers"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.misconceptions = msg.Misconceptions
		}
		s.loaded = true
		return s, nil

	case answersLoadedMsg:
		if msg.Err == nil {
			s.answers[msg.SessionID] = msg.Answers
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter":
			if s.selected >= len(s.sessions) {
				return s, nil
			}
			s.expanded[s.selected] = !s.expanded[s.selected]
			id := s.sessions[s.selected].SessionID
			if _, ok := s.answers[id]; s.expanded[s.selected] && !ok {
				return s, s.loadAnswers(id)
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No lessons yet. Start one from the home screen!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		mins := sess.DurationSecs / 60
		secs := sess.DurationSecs % 60

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %d:%02d  %d problems  %.0f%% correct  (%s)",
			prefix, sess.EndedAt.Local().Format("Jan 02 15:04"), mins, secs,
			sess.ProblemsServed, sess.Accuracy()*100, sess.Stage)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(layout.Center(width, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderAnswers(sess.SessionID, width))
		}
	}

	if len(s.misconceptions) > 0 {
		b.WriteString("\n")
		b.WriteString(layout.Center(width, theme.Subtitle.Render("Most common mistakes")))
		b.WriteString("\n")
		for _, line := range misconceptionLines(s.misconceptions, 3) {
			b.WriteString(layout.Center(width, theme.Hint.Render(line)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *HistoryScreen) renderAnswers(sessionID string, width int) string {
	answers, ok := s.answers[sessionID]
	if !ok {
		return layout.Center(width, theme.Hint.Render("    loading answers...")) + "\n"
	}
	if len(answers) == 0 {
		return layout.Center(width, theme.Hint.Render("    No answers recorded")) + "\n"
	}

	var b strings.Builder
	for _, a := range answers {
		mark := theme.Correct.Render("✓")
		if !a.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		line := fmt.Sprintf("    %s  %s = %s  (you: %s)", mark, a.ProblemText, a.CorrectAnswer, a.LearnerAnswer)
		b.WriteString(layout.Center(width, line))
		b.WriteString("\n")
	}
	return b.String()
}

// misconceptionLines returns the n most frequent misconceptions, most
// frequent first, ties by id.
func misconceptionLines(counts map[string]int, n int) []string {
	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})

	var out []string
	for _, id := range ids[:min(n, len(ids))] {
		label := id
		if m := diagnosis.GetMisconception(id); m != nil {
			label = m.Label
		}
		out = append(out, fmt.Sprintf("%s  ×%d", label, counts[id]))
	}
	return out
}
