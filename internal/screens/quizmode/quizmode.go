// Package quizmode lets the learner pick typed answers or multiple choice.
package quizmode

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/tiltwelve/tiltwelve/internal/i18n"
	"github.com/tiltwelve/tiltwelve/internal/router"
	"github.com/tiltwelve/tiltwelve/internal/screen"
	"github.com/tiltwelve/tiltwelve/internal/screens/multiple"
	"github.com/tiltwelve/tiltwelve/internal/screens/quiz"
	"github.com/tiltwelve/tiltwelve/internal/state"
	"github.com/tiltwelve/tiltwelve/internal/ui/components"
	"github.com/tiltwelve/tiltwelve/internal/ui/layout"
	"github.com/tiltwelve/tiltwelve/internal/ui/theme"
)

// QuizModeScreen offers the two quiz variants.
type QuizModeScreen struct {
	st   *state.State
	menu components.Menu
}

var _ screen.Screen = (*QuizModeScreen)(nil)

// New creates the mode picker.
func New(st *state.State) *QuizModeScreen {
	items := []components.MenuItem{
		{Action: func() tea.Cmd { return router.Push(quiz.New(st)) }},
		{Action: func() tea.Cmd { return router.Push(multiple.New(st)) }},
	}
	return &QuizModeScreen{st: st, menu: components.NewMenu(items)}
}

func (q *QuizModeScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizModeScreen) Title() string {
	return q.st.T().T(i18n.KeySelectQuizMode)
}

func (q *QuizModeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	q.menu, cmd = q.menu.Update(msg)
	return q, cmd
}

func (q *QuizModeScreen) View(width, height int) string {
	tr := q.st.T()
	labels := [][2]i18n.Key{
		{i18n.KeyInputMode, i18n.KeyInputModeDesc},
		{i18n.KeyMultipleChoiceMode, i18n.KeyMultipleChoiceModeDesc},
	}

	cw := components.ContentWidth(width)
	var buttons []string
	for i, l := range labels {
		buttons = append(buttons,
			components.MenuButton(tr.T(l[0]), i == q.menu.Selected, cw-4),
			theme.Hint.Render(tr.T(l[1])),
			"",
		)
	}

	content := strings.Join(append([]string{
		theme.Title.Render(tr.T(i18n.KeySelectQuizMode)),
		"",
	}, buttons...), "\n")

	return layout.Centered(content, width, height)
}
