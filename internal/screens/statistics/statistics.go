// Package statistics shows per-fact success rates for each table.
package statistics

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tiltwelve/tiltwelve/internal/i18n"
	"github.com/tiltwelve/tiltwelve/internal/problemgen"
	"github.com/tiltwelve/tiltwelve/internal/screen"
	"github.com/tiltwelve/tiltwelve/internal/state"
	"github.com/tiltwelve/tiltwelve/internal/stats"
	"github.com/tiltwelve/tiltwelve/internal/ui/components"
	"github.com/tiltwelve/tiltwelve/internal/ui/layout"
	"github.com/tiltwelve/tiltwelve/internal/ui/theme"
)

// StatisticsScreen lists the rows of one table at a time.
type StatisticsScreen struct {
	st      *state.State
	table   int
	rows    []stats.Row
	summary stats.Summary
	score   int
}

var _ screen.Screen = (*StatisticsScreen)(nil)
var _ screen.KeyHintProvider = (*StatisticsScreen)(nil)
var _ screen.Resumer = (*StatisticsScreen)(nil)

// New creates the statistics screen on table 1.
func New(st *state.State) *StatisticsScreen {
	s := &StatisticsScreen{st: st, table: problemgen.MinTable}
	s.refresh()
	return s
}

func (s *StatisticsScreen) Init() tea.Cmd {
	return nil
}

// Resume re-reads the numbers after a quiz may have changed them.
func (s *StatisticsScreen) Resume() tea.Cmd {
	s.refresh()
	return nil
}

func (s *StatisticsScreen) Title() string {
	return s.st.T().T(i18n.KeyStatistics)
}

func (s *StatisticsScreen) KeyHints() []layout.KeyHint {
	tr := s.st.T()
	return []layout.KeyHint{
		{Key: "←→", Description: tr.T(i18n.KeyTable)},
		{Key: "Esc", Description: tr.T(i18n.KeyBack)},
	}
}

// Table returns the table on display.
func (s *StatisticsScreen) Table() int {
	return s.table
}

// Rows returns the rows of the table on display.
func (s *StatisticsScreen) Rows() []stats.Row {
	return s.rows
}

func (s *StatisticsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "h", "p":
		if s.table > problemgen.MinTable {
			s.table--
			s.refresh()
		}
	case "right", "l", "n":
		if s.table < problemgen.MaxTable {
			s.table++
			s.refresh()
		}
	}
	return s, nil
}

// refresh loads rows for multipliers 1..10, extended to 11 and 12 when the
// typed quiz has recorded them.
func (s *StatisticsScreen) refresh() {
	upTo := max(problemgen.MaxMultiplier, s.st.Stats.MaxAttemptedMultiplier(s.table))
	s.rows = s.st.Stats.Table(s.table, upTo)
	s.summary = s.st.Stats.TableSummary(s.table)
	s.score = s.st.Scores.Load(s.st.Context(), s.table)
}

func bandStyle(b stats.Band) lipgloss.Style {
	switch b {
	case stats.BandGood:
		return theme.BandGood
	case stats.BandFair:
		return theme.BandFair
	case stats.BandWeak:
		return theme.BandWeak
	default:
		return theme.Hint
	}
}

func bandColor(b stats.Band) color.Color {
	switch b {
	case stats.BandGood:
		return theme.Success
	case stats.BandFair:
		return theme.Accent
	case stats.BandWeak:
		return theme.Error
	default:
		return nil
	}
}

func (s *StatisticsScreen) View(width, height int) string {
	tr := s.st.T()
	cw := components.ContentWidth(width)

	var tabs []string
	for t := problemgen.MinTable; t <= problemgen.MaxTable; t++ {
		label := fmt.Sprintf(" %d ", t)
		if t == s.table {
			tabs = append(tabs, lipgloss.NewStyle().
				Foreground(theme.BgCard).
				Background(theme.Primary).
				Bold(true).
				Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}

	band := stats.BandFor(s.summary.Total, s.summary.Percentage)
	bar := components.NewProgressBar(tr.T(i18n.KeyTable)+fmt.Sprintf(" %d", s.table), s.summary.Percentage, true, cw-4)
	bar.Fill = bandColor(band)
	header := bar.View() + "\n" + theme.Hint.Render(fmt.Sprintf("%d/%d  ·  %s: %d",
		s.summary.Correct, s.summary.Total, tr.Table(i18n.KeyTableScore, s.table), s.score))

	var lines []string
	for _, r := range s.rows {
		fact := fmt.Sprintf("%2d × %2d", r.Fact.Multiplicand, r.Fact.Multiplier)
		if !r.Attempted() {
			lines = append(lines, theme.Body.Render(fact)+"   "+theme.Hint.Render(tr.T(i18n.KeyNoAttempts)))
			continue
		}
		pct := bandStyle(stats.BandFor(r.Record.Total, r.Percentage)).Render(fmt.Sprintf("%3d%%", r.Percentage))
		count := theme.Hint.Render(fmt.Sprintf("(%d/%d %s)", r.Record.Correct, r.Record.Total, tr.T(i18n.KeyAttempts)))
		lines = append(lines, theme.Body.Render(fact)+"   "+pct+"  "+count)
	}

	content := strings.Join([]string{
		theme.Title.Render(tr.T(i18n.KeyStatistics)),
		theme.Subtitle.Render(tr.T(i18n.KeyStatisticsDescription)),
		"",
		strings.Join(tabs, ""),
		"",
		components.Card(header, cw),
		strings.Join(lines, "\n"),
	}, "\n")
	return layout.Centered(content, width, height)
}
