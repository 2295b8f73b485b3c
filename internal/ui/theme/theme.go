// Package theme holds the colour palettes and the shared lipgloss styles.
// The exported colours and styles always reflect the active palette; call
// Apply to switch palettes.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/tiltwelve/tiltwelve/internal/settings"
)

// Palette is the set of colours a theme defines.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Card      color.Color
	Border    color.Color
}

var palettes = map[settings.Theme]Palette{
	settings.ThemeLight: {
		Primary:   lipgloss.Color("#007AFF"),
		Secondary: lipgloss.Color("#5AC8FA"),
		Accent:    lipgloss.Color("#FF9500"),
		Success:   lipgloss.Color("#34C759"),
		Error:     lipgloss.Color("#FF3B30"),
		Text:      lipgloss.Color("#333333"),
		TextDim:   lipgloss.Color("#666666"),
		Card:      lipgloss.Color("#FFFFFF"),
		Border:    lipgloss.Color("#DDDDDD"),
	},
	settings.ThemeDark: {
		Primary:   lipgloss.Color("#0A84FF"),
		Secondary: lipgloss.Color("#64D2FF"),
		Accent:    lipgloss.Color("#FF9F0A"),
		Success:   lipgloss.Color("#32D74B"),
		Error:     lipgloss.Color("#FF453A"),
		Text:      lipgloss.Color("#FFFFFF"),
		TextDim:   lipgloss.Color("#999999"),
		Card:      lipgloss.Color("#2A2A2A"),
		Border:    lipgloss.Color("#404040"),
	},
	settings.ThemeKids: {
		Primary:   lipgloss.Color("#CB8CFF"),
		Secondary: lipgloss.Color("#B5EAD7"),
		Accent:    lipgloss.Color("#FFDAC1"),
		Success:   lipgloss.Color("#7BCFA9"),
		Error:     lipgloss.Color("#FF8F87"),
		Text:      lipgloss.Color("#6B5876"),
		TextDim:   lipgloss.Color("#9C88A8"),
		Card:      lipgloss.Color("#FFFFFF"),
		Border:    lipgloss.Color("#C7CEEA"),
	},
}

// PaletteFor returns the palette of t, or the default theme's palette.
func PaletteFor(t settings.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[settings.DefaultTheme]
}

var current = settings.DefaultTheme

// Current returns the active theme.
func Current() settings.Theme {
	return current
}

// Active colours.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
	BandGood   lipgloss.Style
	BandFair   lipgloss.Style
	BandWeak   lipgloss.Style
)

// Components
var (
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
)

func init() {
	Apply(settings.DefaultTheme)
}

// Apply makes t the active theme and rebuilds every shared style. It must
// be called from the UI goroutine.
func Apply(t settings.Theme) {
	if _, ok := palettes[t]; !ok {
		t = settings.DefaultTheme
	}
	current = t
	p := palettes[t]

	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Success = p.Success
	Error = p.Error
	Text = p.Text
	TextDim = p.TextDim
	BgCard = p.Card
	Border = p.Border

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	BandGood = lipgloss.NewStyle().Foreground(Success).Bold(true)
	BandFair = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	BandWeak = lipgloss.NewStyle().Foreground(Error).Bold(true)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(BgCard).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Foreground(Text).
		Padding(0, 2)
}
