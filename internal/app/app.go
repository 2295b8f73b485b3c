// Package app hosts the root Bubble Tea model: the screen router framed by
// a header and a footer of key hints.
package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tiltwelve/tiltwelve/internal/i18n"
	"github.com/tiltwelve/tiltwelve/internal/router"
	"github.com/tiltwelve/tiltwelve/internal/screen"
	"github.com/tiltwelve/tiltwelve/internal/screens/home"
	"github.com/tiltwelve/tiltwelve/internal/screens/loading"
	"github.com/tiltwelve/tiltwelve/internal/state"
	"github.com/tiltwelve/tiltwelve/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	State   *state.State
	Version string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	st     *state.State
	router *router.Router
	width  int
	height int
}

// NewAppModel creates the root model. It starts on the loading screen,
// which hands over to the home screen once the stored state is read.
func NewAppModel(opts Options) AppModel {
	st := opts.State
	next := func() screen.Screen { return home.New(st, opts.Version) }
	return AppModel{
		st:     st,
		router: router.New(loading.New(st, next)),
	}
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
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Pop()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// Active returns the screen on top of the stack.
func (m AppModel) Active() screen.Screen {
	return m.router.Active()
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the framed active screen for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		msg := i18n.Interpolate(m.translator().T(i18n.KeyTooSmall), layout.MinSizeVars(m.width, m.height))
		return layout.RenderMinSizeMessage(msg, m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			return hints
		}
	}

	tr := m.translator()
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: tr.T(i18n.KeyBack)},
			{Key: "Ctrl+C", Description: tr.T(i18n.KeyQuit)},
		}
	}
	return []layout.KeyHint{
		{Key: "Ctrl+C", Description: tr.T(i18n.KeyQuit)},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(NewAppModel(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// translator falls back to the default language until preferences load.
func (m AppModel) translator() *i18n.Translator {
	if m.st.Loaded() {
		return m.st.T()
	}
	return i18n.New(i18n.Default)
}
