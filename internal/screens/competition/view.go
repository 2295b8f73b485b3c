package competition

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

func roundLabel(tr *i18n.Translator, m *sess.Match) string {
	round := min(m.Played()+1, m.Rounds())
	return fmt.Sprintf("%s %d/%d", tr.T(i18n.KeyRound), round, m.Rounds())
}

func playerName(tr *i18n.Translator, p sess.Player) string {
	if p == sess.Player1 {
		return tr.T(i18n.KeyPlayer1)
	}
	return tr.T(i18n.KeyPlayer2)
}

func (c *CompetitionScreen) View(width, height int) string {
	if c.match == nil {
		return c.renderIntro(width, height)
	}
	return c.renderRound(width, height)
}

func (c *CompetitionScreen) renderIntro(width, height int) string {
	tr := c.st.T()

	players := lipgloss.JoinHorizontal(lipgloss.Top,
		components.AccentCard(tr.T(i18n.KeyPlayer1), theme.Hint.Render(tr.T(i18n.KeyPlayer1Keys)), theme.Primary),
		"   ",
		components.AccentCard(tr.T(i18n.KeyPlayer2), theme.Hint.Render(tr.T(i18n.KeyPlayer2Keys)), theme.Secondary),
	)

	lines := []string{
		theme.Title.Render(tr.T(i18n.KeyCompetitionTitle)),
		theme.Subtitle.Render(tr.T(i18n.KeyCompetitionDescription)),
		"",
		players,
		"",
		c.start.View(),
	}
	if c.errMsg != "" {
		lines = append(lines, "", theme.Incorrect.Render(c.errMsg))
	}
	return layout.Centered(strings.Join(lines, "\n"), width, height)
}

func (c *CompetitionScreen) renderRound(width, height int) string {
	tr := c.st.T()
	cw := components.ContentWidth(width)
	m := c.match
	q := m.Current()

	score := fmt.Sprintf("%s  %d  :  %d  %s",
		tr.T(i18n.KeyPlayer1), m.Score(sess.Player1),
		m.Score(sess.Player2), tr.T(i18n.KeyPlayer2))

	prompt := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Primary).
		Render(fmt.Sprintf("%d × %d = ?", q.Multiplicand, q.Multiplier))

	cells := make([]string, len(q.Options))
	for i, opt := range q.Options {
		cells[i] = lipgloss.NewStyle().
			Width(11).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Render(fmt.Sprintf("%d\n%s | %s",
				opt,
				theme.Hint.Render(player1Keys[i]),
				theme.Hint.Render(player2Keys[i])))
	}

	lines := []string{
		theme.Subtitle.Render(roundLabel(tr, m)),
		theme.Body.Render(score),
		"",
		components.Card(prompt, cw),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cells...),
		"",
		c.lastRound(),
	}
	return layout.Centered(strings.Join(lines, "\n"), width, height)
}

func (c *CompetitionScreen) lastRound() string {
	if c.errMsg != "" {
		return theme.Incorrect.Render(c.errMsg)
	}
	r := c.match.Last()
	if r == nil {
		return ""
	}
	tr := c.st.T()
	if r.Correct {
		return theme.Correct.Render(fmt.Sprintf("%s: %s", playerName(tr, r.Player), tr.T(i18n.KeyCorrectAnswer)))
	}
	return theme.Incorrect.Render(fmt.Sprintf("%s: %s (%d × %d = %d)",
		playerName(tr, r.Player), tr.T(i18n.KeyWrongAnswer),
		r.Question.Multiplicand, r.Question.Multiplier, r.Question.Answer()))
}
