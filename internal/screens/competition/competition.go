// Package competition runs a two-player race on one keyboard. Player 1
// answers with keys 1-4 and Player 2 with keys 7, 8, 9 and 0.
package competition

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tiltwelve/tiltwelve/internal/i18n"
	"github.com/tiltwelve/tiltwelve/internal/problemgen"
	"github.com/tiltwelve/tiltwelve/internal/router"
	"github.com/tiltwelve/tiltwelve/internal/screen"
	sess "github.com/tiltwelve/tiltwelve/internal/session"
	"github.com/tiltwelve/tiltwelve/internal/state"
	"github.com/tiltwelve/tiltwelve/internal/ui/components"
	"github.com/tiltwelve/tiltwelve/internal/ui/layout"
)

// Answer keys per player, in option order.
var (
	player1Keys = [sess.MatchOptionCount]string{"1", "2", "3", "4"}
	player2Keys = [sess.MatchOptionCount]string{"7", "8", "9", "0"}
)

// keyChoice maps a pressed key to the player and option it selects.
func keyChoice(key string) (sess.Player, int, bool) {
	for i, k := range player1Keys {
		if k == key {
			return sess.Player1, i, true
		}
	}
	for i, k := range player2Keys {
		if k == key {
			return sess.Player2, i, true
		}
	}
	return 0, 0, false
}

// CompetitionScreen shows the start card and then the match in play.
type CompetitionScreen struct {
	st     *state.State
	match  *sess.Match
	start  components.Button
	errMsg string
}

var _ screen.Screen = (*CompetitionScreen)(nil)
var _ screen.KeyHintProvider = (*CompetitionScreen)(nil)
var _ screen.StatusProvider = (*CompetitionScreen)(nil)

const startButtonWidth = 24

// New creates the start screen. The match begins on Enter.
func New(st *state.State) *CompetitionScreen {
	c := &CompetitionScreen{st: st}
	c.start = components.NewButton(st.T().T(i18n.KeyStartGame), true, func() tea.Cmd {
		c.begin()
		return nil
	})
	c.start.Width = startButtonWidth
	return c
}

// newStarted creates a screen whose match is already running.
func newStarted(st *state.State) *CompetitionScreen {
	c := New(st)
	c.begin()
	return c
}

func (c *CompetitionScreen) Init() tea.Cmd {
	return nil
}

func (c *CompetitionScreen) Title() string {
	return c.st.T().T(i18n.KeyCompetitionTitle)
}

// Status shows the round counter while a match is running.
func (c *CompetitionScreen) Status() string {
	if c.match == nil {
		return ""
	}
	return roundLabel(c.st.T(), c.match)
}

func (c *CompetitionScreen) KeyHints() []layout.KeyHint {
	tr := c.st.T()
	if c.match == nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: tr.T(i18n.KeyStartGame)},
			{Key: "Esc", Description: tr.T(i18n.KeyBack)},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: tr.T(i18n.KeyPlayer1)},
		{Key: "7-0", Description: tr.T(i18n.KeyPlayer2)},
		{Key: "Esc", Description: tr.T(i18n.KeyBack)},
	}
}

// Match exposes the running match, or nil before the start.
func (c *CompetitionScreen) Match() *sess.Match {
	return c.match
}

func (c *CompetitionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}

	if c.match == nil {
		var cmd tea.Cmd
		c.start, cmd = c.start.Update(kmsg)
		return c, cmd
	}

	p, idx, ok := keyChoice(kmsg.String())
	if !ok {
		return c, nil
	}
	if _, err := c.match.Answer(p, idx); err != nil {
		c.st.Log.Error("competition answer", "error", err)
		c.errMsg = err.Error()
		return c, nil
	}
	if c.match.Done() {
		return c, router.Replace(NewResult(c.st, c.match))
	}
	return c, nil
}

func (c *CompetitionScreen) begin() {
	m, err := sess.NewMatch(
		c.st.Config.Competition.Rounds,
		c.st.Generator(problemgen.FullGridConfig()),
		c.st.Log,
	)
	if err != nil {
		c.st.Log.Error("start match", "error", err)
		c.errMsg = err.Error()
		return
	}
	c.errMsg = ""
	c.match = m
}
