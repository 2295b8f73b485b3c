package home

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/tiltwelve/tiltwelve/internal/stats"
	"github.com/tiltwelve/tiltwelve/internal/ui/theme"
)

// MascotVariant is the mood of the home screen owl.
type MascotVariant int

const (
	MascotIdle MascotVariant = iota
	MascotCelebrating
	MascotAlert
)

var mascotArt = map[MascotVariant]string{
	MascotIdle: ` ,___,
 (O,O)
 /)_)
  "" ×12`,
	MascotCelebrating: ` \,___,/
  (^,^)
  /)_)
   "" ★`,
	MascotAlert: ` ,___,
 (O,o) ?
 /)_)
  "" ×12`,
}

// mascotColor is read at render time so theme changes apply.
func mascotColor(v MascotVariant) color.Color {
	switch v {
	case MascotCelebrating:
		return theme.Success
	case MascotAlert:
		return theme.Accent
	default:
		return theme.Primary
	}
}

// variantFor maps the overall success band to a mood: good results
// celebrate, weak ones puzzle the owl, anything else is idle.
func variantFor(b stats.Band) MascotVariant {
	switch b {
	case stats.BandGood:
		return MascotCelebrating
	case stats.BandWeak:
		return MascotAlert
	}
	return MascotIdle
}

// RenderMascot draws the owl for v in its mood colour.
func RenderMascot(v MascotVariant) string {
	art, ok := mascotArt[v]
	if !ok {
		art = mascotArt[MascotIdle]
	}
	return lipgloss.NewStyle().Foreground(mascotColor(v)).Render(art)
}
