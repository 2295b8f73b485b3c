// Package preferences is the settings screen: language, theme and the
// study table's hidden answers.
package preferences

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tiltwelve/tiltwelve/internal/i18n"
	"github.com/tiltwelve/tiltwelve/internal/screen"
	"github.com/tiltwelve/tiltwelve/internal/settings"
	"github.com/tiltwelve/tiltwelve/internal/state"
	"github.com/tiltwelve/tiltwelve/internal/ui/components"
	"github.com/tiltwelve/tiltwelve/internal/ui/layout"
	"github.com/tiltwelve/tiltwelve/internal/ui/theme"
)

// Rows of the settings form.
const (
	rowLanguage = iota
	rowTheme
	rowHideAnswers
	rowCount
)

var themeLabels = map[settings.Theme]i18n.Key{
	settings.ThemeLight: i18n.KeyThemeLight,
	settings.ThemeDark:  i18n.KeyThemeDark,
	settings.ThemeKids:  i18n.KeyThemeKids,
}

// PreferencesScreen edits the stored preferences. Changes apply at once.
type PreferencesScreen struct {
	st  *state.State
	row int
}

var _ screen.Screen = (*PreferencesScreen)(nil)
var _ screen.KeyHintProvider = (*PreferencesScreen)(nil)

// New creates the settings screen.
func New(st *state.State) *PreferencesScreen {
	return &PreferencesScreen{st: st}
}

func (p *PreferencesScreen) Init() tea.Cmd {
	return nil
}

func (p *PreferencesScreen) Title() string {
	return p.st.T().T(i18n.KeySettings)
}

func (p *PreferencesScreen) KeyHints() []layout.KeyHint {
	tr := p.st.T()
	return []layout.KeyHint{
		{Key: "↑↓", Description: tr.T(i18n.KeyNavigate)},
		{Key: "←→", Description: tr.T(i18n.KeySelect)},
		{Key: "Esc", Description: tr.T(i18n.KeyBack)},
	}
}

func (p *PreferencesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return p, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if p.row > 0 {
			p.row--
		}
	case "down", "j":
		if p.row < rowCount-1 {
			p.row++
		}
	case "right", "l", "enter", "space":
		p.change(1)
	case "left", "h":
		p.change(-1)
	}
	return p, nil
}

func (p *PreferencesScreen) change(step int) {
	prefs := p.st.Settings.Get()
	switch p.row {
	case rowLanguage:
		p.st.SetLanguage(cycle(i18n.Supported, prefs.Language, step))
	case rowTheme:
		p.st.SetTheme(cycle(settings.Themes, prefs.Theme, step))
	case rowHideAnswers:
		p.st.Settings.ToggleHideAnswers(p.st.Context())
	}
}

// cycle returns the element step positions after cur, wrapping around.
func cycle[T comparable](all []T, cur T, step int) T {
	i := slices.Index(all, cur)
	if i < 0 {
		return all[0]
	}
	n := len(all)
	return all[((i+step)%n+n)%n]
}

func (p *PreferencesScreen) View(width, height int) string {
	tr := p.st.T()
	prefs := p.st.Settings.Get()

	hide := tr.T(i18n.KeyShowAnswers)
	if prefs.HideAnswers {
		hide = tr.T(i18n.KeyHideAnswers)
	}

	rows := []struct {
		label   string
		options []string
		current string
	}{
		{tr.T(i18n.KeyLanguage), languageNames(tr), tr.LanguageName(prefs.Language)},
		{tr.T(i18n.KeyTheme), themeNames(tr), tr.T(themeLabels[prefs.Theme])},
		{tr.T(i18n.KeyStudyTitle), []string{tr.T(i18n.KeyShowAnswers), tr.T(i18n.KeyHideAnswers)}, hide},
	}

	cw := components.ContentWidth(width)
	var lines []string
	for i, r := range rows {
		label := theme.Unselected.Render("  " + r.label)
		if i == p.row {
			label = theme.Selected.Render("▸ " + r.label)
		}
		var opts []string
		for _, o := range r.options {
			if o == r.current {
				opts = append(opts, theme.ButtonActive.Render(o))
			} else {
				opts = append(opts, theme.ButtonInactive.Render(o))
			}
		}
		lines = append(lines, label, "  "+strings.Join(opts, " "), "")
	}

	content := strings.Join([]string{
		theme.Title.Render(tr.T(i18n.KeySettings)),
		theme.Subtitle.Render(tr.T(i18n.KeySettingsDescription)),
		"",
		lipgloss.NewStyle().Width(cw).Render(strings.Join(lines, "\n")),
	}, "\n")
	return layout.Centered(content, width, height)
}

func languageNames(tr *i18n.Translator) []string {
	names := make([]string, len(i18n.Supported))
	for i, l := range i18n.Supported {
		names[i] = tr.LanguageName(l)
	}
	return names
}

func themeNames(tr *i18n.Translator) []string {
	names := make([]string, len(settings.Themes))
	for i, t := range settings.Themes {
		names[i] = tr.T(themeLabels[t])
	}
	return names
}
