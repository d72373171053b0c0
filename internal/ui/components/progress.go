package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/fracdiv/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label   string
	Percent float64

	// Caption replaces the percentage on the right, e.g. "2 of 3".
	Caption     string
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// NewStepBar shows done out of total steps.
func NewStepBar(label string, done, total, width int) ProgressBar {
	var pct float64
	if total > 0 {
		pct = float64(done) / float64(total)
	}
	return ProgressBar{
		Label:   label,
		Percent: pct,
		Caption: fmt.Sprintf("%d of %d", done, total),
		Width:   width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string
	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	suffix := p.Caption
	if suffix == "" && p.ShowPercent {
		suffix = fmt.Sprintf("%d%%", int(p.Percent*100))
	}
	if suffix != "" {
		suffix = "  " + suffix
	}

	barWidth := max(p.Width-lipgloss.Width(result)-lipgloss.Width(suffix), 4)
	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	if suffix != "" {
		result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)
	}
	return result
}
