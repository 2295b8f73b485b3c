// Package about shows who made the app.
package about

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/tiltwelve/tiltwelve/internal/i18n"
	"github.com/tiltwelve/tiltwelve/internal/screen"
	"github.com/tiltwelve/tiltwelve/internal/state"
	"github.com/tiltwelve/tiltwelve/internal/ui/components"
	"github.com/tiltwelve/tiltwelve/internal/ui/layout"
	"github.com/tiltwelve/tiltwelve/internal/ui/theme"
)

// AboutScreen is a static page.
type AboutScreen struct {
	st      *state.State
	version string
}

var _ screen.Screen = (*AboutScreen)(nil)

// New creates the about screen. version is shown under the text when set.
func New(st *state.State, version string) *AboutScreen {
	return &AboutScreen{st: st, version: version}
}

func (a *AboutScreen) Init() tea.Cmd {
	return nil
}

func (a *AboutScreen) Title() string {
	return a.st.T().T(i18n.KeyAbout)
}

func (a *AboutScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return a, nil
}

func (a *AboutScreen) View(width, height int) string {
	tr := a.st.T()
	cw := components.ContentWidth(width)

	lines := []string{
		theme.Title.Render(tr.T(i18n.KeyAbout)),
		"",
		components.Card(theme.Body.Render(tr.T(i18n.KeyAboutDescription)), cw),
	}
	if a.version != "" {
		lines = append(lines, "", theme.Hint.Render(layout.AppName+" "+a.version))
	}
	return layout.Centered(strings.Join(lines, "\n"), width, height)
}
