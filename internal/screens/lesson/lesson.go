package lesson

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fracdiv/internal/lessons"
	"github.com/abhisek/fracdiv/internal/router"
	"github.com/abhisek/fracdiv/internal/screen"
	"github.com/abhisek/fracdiv/internal/screens/summary"
	"github.com/abhisek/fracdiv/internal/session"
	"github.com/abhisek/fracdiv/internal/ui/components"
	"github.com/abhisek/fracdiv/internal/ui/layout"
)

const lessonPollInterval = 500 * time.Millisecond

// LessonScreen drives a session.Session through its stages.
type LessonScreen struct {
	sess  *session.Session
	input components.TextInput

	feedback    *session.Feedback
	showHint    bool
	confirmQuit bool

	// micro is the latest LLM micro-lesson, shown under a reveal.
	micro *lessons.Lesson

	understood components.Button
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)
var _ screen.ScoreProvider = (*LessonScreen)(nil)
var _ screen.Resumer = (*LessonScreen)(nil)

// New creates a LessonScreen for an already started session.
func New(sess *session.Session) *LessonScreen {
	s := &LessonScreen{
		sess:  sess,
		input: newInput(),
	}
	s.understood = components.NewButton("I understand, let's practice", true, func() tea.Cmd {
		_ = s.sess.Understood()
		s.reset()
		return s.afterStageChange()
	})
	return s
}

func newInput() components.TextInput {
	return components.NewTextInput("a/b", 12)
}

func (s *LessonScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.input.Init()}
	if s.sess.LLMEnabled() {
		cmds = append(cmds, pollLesson())
	}
	return tea.Batch(cmds...)
}

func (s *LessonScreen) Title() string {
	switch s.sess.Stage() {
	case session.StageExact:
		return "Step 1: Same denominators"
	case session.StageConcept:
		return "Step 2: Flip and multiply"
	case session.StagePractice:
		return "Step 2: Practice"
	}
	return "Lesson complete"
}

func (s *LessonScreen) Score() layout.Score {
	p := s.sess.Progress()
	return layout.Score{Correct: p.Correct, Served: p.Served, Streak: p.Streak}
}

// Resume runs when the summary screen pops back after More practice or
// Restart all.
func (s *LessonScreen) Resume() tea.Cmd {
	s.reset()
	s.micro = nil
	return s.input.Init()
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "End lesson"},
			{Key: "N", Description: "Keep going"},
		}
	case s.sess.Stage() == session.StageConcept:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start practice"},
			{Key: "Esc", Description: "Quit"},
		}
	case s.sess.Finished():
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next problem"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "?", Description: "Hint"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonPollMsg:
		if res, ok := s.sess.ConsumeLesson(); ok && res.Err == nil {
			s.micro = res.Lesson
		}
		return s, pollLesson()

	case completeMsg:
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: summary.New(s.sess)}
		}

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *LessonScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.sess.End()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if key == "esc" {
		s.confirmQuit = true
		return s, nil
	}

	switch s.sess.Stage() {
	case session.StageConcept:
		var cmd tea.Cmd
		s.understood, cmd = s.understood.Update(msg)
		return s, cmd
	case session.StageComplete:
		if key == "enter" {
			return s, func() tea.Msg { return completeMsg{} }
		}
		return s, nil
	}

	if s.sess.Finished() {
		if key == "enter" {
			return s.next()
		}
		return s, nil
	}

	switch key {
	case "enter":
		return s.submit()
	case "?":
		s.showHint = !s.showHint
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *LessonScreen) submit() (screen.Screen, tea.Cmd) {
	if s.input.Value() == "" {
		return s, nil
	}

	fb := s.sess.Submit(s.input.Value())
	s.feedback = &fb

	switch fb.Kind {
	case session.FeedbackInvalid:
		return s, nil
	case session.FeedbackRetry:
		s.showHint = true
		s.input.Submit(false)
	case session.FeedbackCorrect:
		s.input.Submit(true)
	case session.FeedbackReveal:
		s.input.Submit(false)
	}
	return s, nil
}

func (s *LessonScreen) next() (screen.Screen, tea.Cmd) {
	if err := s.sess.Next(); err != nil {
		return s, nil
	}
	s.reset()
	return s, s.afterStageChange()
}

// afterStageChange pushes the summary once the lesson is complete.
func (s *LessonScreen) afterStageChange() tea.Cmd {
	if s.sess.Stage() == session.StageComplete {
		return func() tea.Msg { return completeMsg{} }
	}
	return s.input.Init()
}

func (s *LessonScreen) reset() {
	s.feedback = nil
	s.showHint = false
	s.input = newInput()
}

func pollLesson() tea.Cmd {
	return tea.Tick(lessonPollInterval, func(t time.Time) tea.Msg {
		return lessonPollMsg(t)
	})
}
