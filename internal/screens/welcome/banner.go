package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fracdiv/internal/ui/theme"
)

const bannerArt = `
 ┏━╸┏━┓┏━┓┏━╸╺┳┓╻╻ ╻
 ┣╸ ┣┳┛┣━┫┃   ┃┃┃┃┏┛
 ╹  ╹┗╸╹ ╹┗━╸╺┻┛╹┗┛ `

const bannerCompact = "f r a c d i v"

// RenderBanner returns the banner, falling back to spaced letters below
// 40 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
