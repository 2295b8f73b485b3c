package loading

import (
	"charm.land/lipgloss/v2"

	"github.com/tiltwelve/tiltwelve/internal/ui/theme"
)

const bannerArt = `╔╦╗╦╦  ╔╦╗╦ ╦╔═╗╦  ╦  ╦╔═╗
 ║ ║║   ║ ║║║║╣ ║  ╚╗╔╝║╣
 ╩ ╩╩═╝ ╩ ╚╩╝╚═╝╩═╝ ╚╝ ╚═╝`

const bannerCompact = "T I L T W E L V E"

// RenderBanner returns the app banner in the primary colour, with a compact
// fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 32 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
