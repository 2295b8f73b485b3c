package multiple

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tiltwelve/tiltwelve/internal/i18n"
	"github.com/tiltwelve/tiltwelve/internal/problemgen"
	sess "github.com/tiltwelve/tiltwelve/internal/session"
	"github.com/tiltwelve/tiltwelve/internal/ui/components"
	"github.com/tiltwelve/tiltwelve/internal/ui/layout"
	"github.com/tiltwelve/tiltwelve/internal/ui/theme"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

func (s *MultipleScreen) scoreLine() string {
	tr := s.st.T()
	score := s.quiz.ScoreLine(s.st.Context())
	if t := s.quiz.Table(); t != problemgen.NoTable {
		return fmt.Sprintf("%s: %d", tr.Table(i18n.KeyTableScore, t), score)
	}
	return fmt.Sprintf("%s: %d", tr.T(i18n.KeyGlobalScore), score)
}

func (s *MultipleScreen) View(width, height int) string {
	if s.quiz == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s", s.errMsg))
	}
	tr := s.st.T()
	cw := components.ContentWidth(width)
	q := s.quiz.Current()

	prompt := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Primary).
		Render(fmt.Sprintf("%d × %d = ?", q.Multiplicand, q.Multiplier))

	lines := []string{
		s.tableSelector(),
		"",
		theme.Subtitle.Render(s.scoreLine()),
		"",
		components.Card(prompt, cw),
		theme.Hint.Render(tr.T(i18n.KeyChooseAnswer)),
		"",
		s.choice.View(),
		"",
		s.feedback(),
	}
	return layout.Centered(strings.Join(lines, "\n"), width, height)
}

func (s *MultipleScreen) tableSelector() string {
	tr := s.st.T()
	active := lipgloss.NewStyle().
		Foreground(theme.BgCard).
		Background(theme.Primary).
		Bold(true)
	idle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var tabs []string
	for t := problemgen.NoTable; t <= problemgen.MaxTable; t++ {
		label := " " + itoa(t) + " "
		if t == problemgen.NoTable {
			label = " " + tr.T(i18n.KeyAllTables) + " "
		}
		if t == s.quiz.Table() {
			tabs = append(tabs, active.Render(label))
		} else {
			tabs = append(tabs, idle.Render(label))
		}
	}
	return tr.T(i18n.KeyTable) + "  " + strings.Join(tabs, "")
}

func (s *MultipleScreen) feedback() string {
	if s.quiz.Phase() != sess.PhaseFeedback {
		if s.errMsg != "" {
			return theme.Incorrect.Render(s.errMsg)
		}
		return ""
	}
	tr := s.st.T()
	out := s.quiz.Last()
	if out.Correct {
		return theme.Correct.Render(tr.T(i18n.KeyCorrect))
	}
	return theme.Incorrect.Render(fmt.Sprintf("%s %d", tr.T(i18n.KeyIncorrect), out.Answer()))
}
