package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tiltwelve/tiltwelve/internal/i18n"
	sess "github.com/tiltwelve/tiltwelve/internal/session"
	"github.com/tiltwelve/tiltwelve/internal/ui/components"
	"github.com/tiltwelve/tiltwelve/internal/ui/layout"
	"github.com/tiltwelve/tiltwelve/internal/ui/theme"
)

func scoreLine(tr *i18n.Translator, q *sess.Quiz) string {
	return fmt.Sprintf("%s: %d/%d", tr.T(i18n.KeyScore), q.CorrectCount(), q.Answered())
}

func (s *QuizScreen) View(width, height int) string {
	if s.quiz == nil {
		return renderError(width, s.errMsg)
	}
	tr := s.st.T()
	cw := components.ContentWidth(width)

	question := s.quiz.Current()
	prompt := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Primary).
		Render(fmt.Sprintf("%d × %d = ?", question.Multiplicand, question.Multiplier))

	lines := []string{
		theme.Subtitle.Render(scoreLine(tr, s.quiz)),
		"",
		components.Card(prompt, cw),
		"",
		s.input.View(),
		"",
		s.feedback(),
	}
	return layout.Centered(strings.Join(lines, "\n"), width, height)
}

func (s *QuizScreen) feedback() string {
	tr := s.st.T()
	if s.quiz.Phase() != sess.PhaseFeedback {
		if s.errMsg != "" {
			return theme.Incorrect.Render(s.errMsg)
		}
		return ""
	}
	out := s.quiz.Last()
	if out.Correct {
		return theme.Correct.Render(tr.T(i18n.KeyCorrect))
	}
	return theme.Incorrect.Render(fmt.Sprintf("%s %d", tr.T(i18n.KeyIncorrect), out.Answer()))
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s", errMsg))
}
