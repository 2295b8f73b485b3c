// Package study shows one multiplication table at a time. Answers can be
// hidden and revealed row by row.
package study

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tiltwelve/tiltwelve/internal/i18n"
	"github.com/tiltwelve/tiltwelve/internal/problemgen"
	"github.com/tiltwelve/tiltwelve/internal/screen"
	"github.com/tiltwelve/tiltwelve/internal/state"
	"github.com/tiltwelve/tiltwelve/internal/ui/layout"
	"github.com/tiltwelve/tiltwelve/internal/ui/theme"
)

// Tables shown by the study screen.
const (
	FirstTable = 2
	LastTable  = problemgen.MaxTable
)

// StudyScreen lists table × 1..10.
type StudyScreen struct {
	st       *state.State
	table    int
	row      int
	revealed map[int]bool
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a study screen starting at the first table.
func New(st *state.State) *StudyScreen {
	return &StudyScreen{st: st, table: FirstTable, revealed: make(map[int]bool)}
}

func (s *StudyScreen) Init() tea.Cmd {
	return nil
}

func (s *StudyScreen) Title() string {
	return s.st.T().T(i18n.KeyStudyTitle)
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	tr := s.st.T()
	toggle := tr.T(i18n.KeyHideAnswers)
	if s.st.Settings.Get().HideAnswers {
		toggle = tr.T(i18n.KeyShowAnswers)
	}
	return []layout.KeyHint{
		{Key: "←→", Description: tr.T(i18n.KeyTable)},
		{Key: "↑↓", Description: "1..10"},
		{Key: "Enter", Description: tr.T(i18n.KeyReveal)},
		{Key: "h", Description: toggle},
		{Key: "Esc", Description: tr.T(i18n.KeyBack)},
	}
}

// Table returns the table on display.
func (s *StudyScreen) Table() int {
	return s.table
}

// Revealed reports whether the answer of the given multiplier is visible.
func (s *StudyScreen) Revealed(multiplier int) bool {
	return !s.st.Settings.Get().HideAnswers || s.revealed[multiplier]
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "p":
		if s.table > FirstTable {
			s.setTable(s.table - 1)
		}
	case "right", "n":
		if s.table < LastTable {
			s.setTable(s.table + 1)
		}
	case "up", "k":
		if s.row > 0 {
			s.row--
		}
	case "down", "j":
		if s.row < problemgen.MaxMultiplier-1 {
			s.row++
		}
	case "enter", "space":
		s.revealed[s.row+1] = true
	case "h":
		s.st.Settings.ToggleHideAnswers(s.st.Context())
		clear(s.revealed)
	}
	return s, nil
}

func (s *StudyScreen) setTable(t int) {
	s.table = t
	s.row = 0
	clear(s.revealed)
}

func (s *StudyScreen) View(width, height int) string {
	tr := s.st.T()

	var tabs []string
	for t := FirstTable; t <= LastTable; t++ {
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

	var rows []string
	for m := 1; m <= problemgen.MaxMultiplier; m++ {
		f := problemgen.Fact{Multiplicand: s.table, Multiplier: m}
		answer := "?"
		if s.Revealed(m) {
			answer = fmt.Sprintf("%d", f.Product())
		}
		line := fmt.Sprintf("%2d × %2d = %3s", s.table, m, answer)
		if m == s.row+1 {
			rows = append(rows, theme.Selected.Render("▸ "+line))
		} else {
			rows = append(rows, theme.Unselected.Render("  "+line))
		}
	}

	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 3).
		Render(strings.Join(rows, "\n"))

	content := strings.Join([]string{
		theme.Title.Render(tr.T(i18n.KeyTable) + fmt.Sprintf(" %d", s.table)),
		theme.Subtitle.Render(tr.T(i18n.KeyStudyDescription)),
		"",
		strings.Join(tabs, ""),
		"",
		body,
	}, "\n")

	return layout.Centered(content, width, height)
}
