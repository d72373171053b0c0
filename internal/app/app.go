// Package app hosts the screen router inside a Bubble Tea program.
package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fracdiv/internal/logging"
	"github.com/abhisek/fracdiv/internal/router"
	"github.com/abhisek/fracdiv/internal/screen"
	"github.com/abhisek/fracdiv/internal/ui/layout"
)

// AppModel is the root Bubble Tea model. Screens handle Esc themselves;
// only Ctrl+C is global.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// NewAppModel creates an AppModel rooted at root.
func NewAppModel(root screen.Screen) AppModel {
	return AppModel{router: router.New(root)}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m, m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}
	v.SetContent(m.render())
	return v
}

func (m AppModel) render() string {
	active := m.router.Active()

	title := active.Title()
	var score layout.Score
	if sp, ok := active.(screen.ScoreProvider); ok {
		score = sp.Score()
	}
	header := layout.RenderHeader(title, score, m.width)

	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if kp, ok := active.(screen.KeyHintProvider); ok {
		hints = kp.KeyHints()
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, root screen.Screen) error {
	logger := logging.FromContext(ctx)
	logger.Info().Msg("starting tui")

	p := tea.NewProgram(NewAppModel(root), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("tui exited with error")
		return fmt.Errorf("run tui: %w", err)
	}
	logger.Info().Msg("tui stopped")
	return nil
}
