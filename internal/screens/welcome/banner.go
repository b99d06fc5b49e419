package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathcheck/internal/ui/theme"
)

const bannerArt = `
 ██████╗  █████╗ ████████╗██╗  ██╗ ██████╗██╗  ██╗███████╗ ██████╗██╗  ██╗
 ██╔══██╗██╔══██╗╚══██╔══╝██║  ██║██╔════╝██║  ██║██╔════╝██╔════╝██║ ██╔╝
 ██████╔╝███████║   ██║   ███████║██║     ███████║█████╗  ██║     █████╔╝
 ██╔═══╝ ██╔══██║   ██║   ██╔══██║██║     ██╔══██║██╔══╝  ██║     ██╔═██╗
 ██║     ██║  ██║   ██║   ██║  ██║╚██████╗██║  ██║███████╗╚██████╗██║  ██╗
 ╚═╝     ╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚══════╝ ╚═════╝╚═╝  ╚═╝`

const bannerCompact = "P A T H C H E C K"

// RenderBanner returns the PATHCHECK banner, or a compact fallback on
// terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < lipgloss.Width(bannerArt)+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
