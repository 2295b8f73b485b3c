// Package loading shows the splash screen while preferences and statistics
// are read from storage.
package loading

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tiltwelve/tiltwelve/internal/i18n"
	"github.com/tiltwelve/tiltwelve/internal/router"
	"github.com/tiltwelve/tiltwelve/internal/screen"
	"github.com/tiltwelve/tiltwelve/internal/state"
	"github.com/tiltwelve/tiltwelve/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	minDuration  = 1200 * time.Millisecond
)

// Rows of the times-table strip that scrolls under the banner.
var strip = []string{"1×12", "2×12", "3×12", "4×12", "5×12", "6×12", "7×12", "8×12", "9×12", "10×12", "11×12", "12×12"}

type tickMsg time.Time

// loadMsg asks the screen to read state. Loading runs in Update so that the
// theme is applied on the UI goroutine.
type loadMsg struct{}

// LoadingScreen reads the stored state, shows the banner for a moment and
// then replaces itself with the screen built by next.
type LoadingScreen struct {
	st           *state.State
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*LoadingScreen)(nil)

// New creates a LoadingScreen that hands over to the screen produced by next.
func New(st *state.State, next func() screen.Screen) *LoadingScreen {
	return &LoadingScreen{st: st, next: next}
}

func (l *LoadingScreen) Title() string {
	return ""
}

func (l *LoadingScreen) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return loadMsg{} },
		tick(),
	)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (l *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case loadMsg:
		if !l.st.Loaded() {
			l.st.Load()
		}
		return l, nil

	case tickMsg:
		l.elapsed += tickInterval
		l.tickCount++
		if l.st.Loaded() && l.elapsed >= minDuration {
			return l, l.transition()
		}
		return l, tick()

	case tea.KeyPressMsg:
		if l.st.Loaded() {
			return l, l.transition()
		}
	}
	return l, nil
}

func (l *LoadingScreen) transition() tea.Cmd {
	if l.transitioned {
		return nil
	}
	l.transitioned = true
	return router.Replace(l.next())
}

func (l *LoadingScreen) View(width, height int) string {
	tr := i18n.New(i18n.Default)
	if l.st.Loaded() {
		tr = l.st.T()
	}

	var sections []string
	sections = append(sections, RenderBanner(width), "")

	// Highlight one fact of the strip per tick.
	n := len(strip)
	window := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		item := strip[(l.tickCount+i)%n]
		if i == 2 {
			window = append(window, lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(item))
		} else {
			window = append(window, lipgloss.NewStyle().Foreground(theme.TextDim).Render(item))
		}
	}
	sections = append(sections, strings.Join(window, "  "), "")

	sections = append(sections, theme.Hint.Render(tr.T(i18n.KeyLoading)))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
