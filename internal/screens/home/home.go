// Package home is the main menu.
package home

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/tiltwelve/tiltwelve/internal/i18n"
	"github.com/tiltwelve/tiltwelve/internal/router"
	"github.com/tiltwelve/tiltwelve/internal/screen"
	"github.com/tiltwelve/tiltwelve/internal/screens/about"
	"github.com/tiltwelve/tiltwelve/internal/screens/competition"
	"github.com/tiltwelve/tiltwelve/internal/screens/preferences"
	"github.com/tiltwelve/tiltwelve/internal/screens/quizmode"
	"github.com/tiltwelve/tiltwelve/internal/screens/statistics"
	"github.com/tiltwelve/tiltwelve/internal/screens/study"
	"github.com/tiltwelve/tiltwelve/internal/state"
	"github.com/tiltwelve/tiltwelve/internal/stats"
	"github.com/tiltwelve/tiltwelve/internal/ui/components"
	"github.com/tiltwelve/tiltwelve/internal/ui/layout"
)

// Menu labels in display order. They are translated on every render so a
// language change shows up when the learner returns here.
var menuKeys = []i18n.Key{
	i18n.KeyStudyTitle,
	i18n.KeyQuizTitle,
	i18n.KeyCompetitionTitle,
	i18n.KeyStatistics,
	i18n.KeySettings,
	i18n.KeyAbout,
	i18n.KeyExit,
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	st       *state.State
	menu     components.Menu
	overview overview
	mascot   MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates the home screen. version is passed on to the about page.
func New(st *state.State, version string) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd { return router.Push(build()) }
	}

	items := []components.MenuItem{
		{Action: push(func() screen.Screen { return study.New(st) })},
		{Action: push(func() screen.Screen { return quizmode.New(st) })},
		{Action: push(func() screen.Screen { return competition.New(st) })},
		{Action: push(func() screen.Screen { return statistics.New(st) })},
		{Action: push(func() screen.Screen { return preferences.New(st) })},
		{Action: push(func() screen.Screen { return about.New(st, version) })},
		{Action: func() tea.Cmd { return tea.Quit }},
	}

	h := &HomeScreen{st: st, menu: components.NewMenu(items)}
	h.refresh()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Resume refreshes the dashboard after a quiz or a reset.
func (h *HomeScreen) Resume() tea.Cmd {
	h.refresh()
	return nil
}

func (h *HomeScreen) refresh() {
	ctx := h.st.Context()
	sum := h.st.Stats.Overall()
	o := overview{
		globalScore: h.st.Scores.Global(ctx),
		correct:     sum.Correct,
		total:       sum.Total,
		percentage:  sum.Percentage,
	}
	h.overview = o
	h.mascot = variantFor(stats.BandFor(o.total, o.percentage))
}

func (h *HomeScreen) Title() string {
	return layout.AppName
}

// Status shows the global score in the header.
func (h *HomeScreen) Status() string {
	return h.st.T().T(i18n.KeyGlobalScore) + ": " + strconv.Itoa(h.overview.globalScore)
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	tr := h.st.T()
	return []layout.KeyHint{
		{Key: "↑↓", Description: tr.T(i18n.KeyNavigate)},
		{Key: "Enter", Description: tr.T(i18n.KeySelect)},
		{Key: "Ctrl+C", Description: tr.T(i18n.KeyQuit)},
	}
}

// Selected returns the highlighted menu index.
func (h *HomeScreen) Selected() int {
	return h.menu.Selected
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) labels() []string {
	tr := h.st.T()
	labels := make([]string, len(menuKeys))
	for i, k := range menuKeys {
		labels[i] = tr.T(k)
	}
	return labels
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer.
	termHeight := height + 8
	compact := termHeight < 34 || width < 90
	tiny := height < 22

	tr := h.st.T()
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot, cw))
	}
	sections = append(sections, renderStatsBar(
		h.overview, tr.T(i18n.KeyGlobalScore), tr.T(i18n.KeyAttempts), cw, compact))

	if tiny {
		sections = append(sections, renderMenuCompact(h.labels(), h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.labels(), h.menu.Selected, cw))
	}

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return components.CabinetFrame(strings.Join(sections, sep), width, height)
}
