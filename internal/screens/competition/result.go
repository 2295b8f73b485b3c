package competition

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tiltwelve/tiltwelve/internal/i18n"
	"github.com/tiltwelve/tiltwelve/internal/router"
	"github.com/tiltwelve/tiltwelve/internal/screen"
	sess "github.com/tiltwelve/tiltwelve/internal/session"
	"github.com/tiltwelve/tiltwelve/internal/state"
	"github.com/tiltwelve/tiltwelve/internal/ui/components"
	"github.com/tiltwelve/tiltwelve/internal/ui/layout"
	"github.com/tiltwelve/tiltwelve/internal/ui/theme"
)

// ResultScreen shows the final score of a finished match.
type ResultScreen struct {
	st    *state.State
	match *sess.Match
	menu  components.Menu
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// NewResult creates the result screen for a finished match.
func NewResult(st *state.State, m *sess.Match) *ResultScreen {
	items := []components.MenuItem{
		{Action: func() tea.Cmd { return router.Replace(newStarted(st)) }},
		{Action: router.PopToRoot},
	}
	return &ResultScreen{st: st, match: m, menu: components.NewMenu(items)}
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return r.st.T().T(i18n.KeyFinalScore)
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	tr := r.st.T()
	return []layout.KeyHint{
		{Key: "↑↓", Description: tr.T(i18n.KeyNavigate)},
		{Key: "Enter", Description: tr.T(i18n.KeySelect)},
		{Key: "Esc", Description: tr.T(i18n.KeyReturn)},
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

// Verdict returns the translated headline for the match result.
func (r *ResultScreen) Verdict() string {
	tr := r.st.T()
	switch r.match.Result() {
	case sess.ResultPlayer1:
		return fmt.Sprintf("%s: %s", tr.T(i18n.KeyWinner), tr.T(i18n.KeyPlayer1))
	case sess.ResultPlayer2:
		return fmt.Sprintf("%s: %s", tr.T(i18n.KeyWinner), tr.T(i18n.KeyPlayer2))
	default:
		return tr.T(i18n.KeyDraw)
	}
}

func (r *ResultScreen) View(width, height int) string {
	tr := r.st.T()
	cw := components.ContentWidth(width)

	scoreStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent)
	scores := lipgloss.JoinHorizontal(lipgloss.Center,
		components.AccentCard(tr.T(i18n.KeyPlayer1), scoreStyle.Render(fmt.Sprint(r.match.Score(sess.Player1))), theme.Primary),
		"   ",
		components.AccentCard(tr.T(i18n.KeyPlayer2), scoreStyle.Render(fmt.Sprint(r.match.Score(sess.Player2))), theme.Secondary),
	)

	labels := []string{tr.T(i18n.KeyPlayAgain), tr.T(i18n.KeyReturn)}
	var buttons []string
	for i, l := range labels {
		buttons = append(buttons, components.MenuButton(l, i == r.menu.Selected, cw/2))
	}

	content := strings.Join([]string{
		theme.Title.Render(tr.T(i18n.KeyFinalScore)),
		"",
		scores,
		"",
		lipgloss.NewStyle().Bold(true).Foreground(theme.Success).Render(r.Verdict()),
		"",
		strings.Join(buttons, "\n"),
	}, "\n")
	return layout.Centered(content, width, height)
}
