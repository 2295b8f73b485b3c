// Package multiple is the multiple-choice quiz. A table filter narrows the
// questions to one multiplicand and correct answers raise that table's high
// score.
package multiple

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/tiltwelve/tiltwelve/internal/i18n"
	"github.com/tiltwelve/tiltwelve/internal/problemgen"
	"github.com/tiltwelve/tiltwelve/internal/screen"
	sess "github.com/tiltwelve/tiltwelve/internal/session"
	"github.com/tiltwelve/tiltwelve/internal/state"
	"github.com/tiltwelve/tiltwelve/internal/ui/components"
	"github.com/tiltwelve/tiltwelve/internal/ui/layout"
)

// MultipleScreen implements screen.Screen for the multiple-choice quiz.
type MultipleScreen struct {
	st     *state.State
	quiz   *sess.Quiz
	choice components.MultiChoice
	seq    int
	errMsg string
}

var _ screen.Screen = (*MultipleScreen)(nil)
var _ screen.KeyHintProvider = (*MultipleScreen)(nil)
var _ screen.StatusProvider = (*MultipleScreen)(nil)

// New creates a multiple-choice quiz over all tables.
func New(st *state.State) *MultipleScreen {
	s := &MultipleScreen{st: st}
	q, err := sess.NewQuiz(sess.QuizOptions{
		Mode:        sess.ModeChoice,
		Table:       problemgen.NoTable,
		ChoiceCount: st.Config.Quiz.ChoiceCount,
		Generator:   st.Generator(problemgen.DefaultConfig()),
	}, st.Stats, st.Scores, st.Log)
	if err != nil {
		st.Log.Error("start multiple-choice quiz", "error", err)
		s.errMsg = err.Error()
		return s
	}
	s.quiz = q
	s.resetChoice()
	return s
}

func (s *MultipleScreen) Init() tea.Cmd {
	return nil
}

func (s *MultipleScreen) Title() string {
	return s.st.T().T(i18n.KeyMultipleChoiceMode)
}

// Status shows the high score that applies to the current filter.
func (s *MultipleScreen) Status() string {
	if s.quiz == nil {
		return ""
	}
	return s.scoreLine()
}

func (s *MultipleScreen) KeyHints() []layout.KeyHint {
	tr := s.st.T()
	return []layout.KeyHint{
		{Key: "Tab", Description: tr.T(i18n.KeyTable)},
		{Key: "←→", Description: tr.T(i18n.KeyNavigate)},
		{Key: "Enter/1-" + itoa(len(s.choice.Options)), Description: tr.T(i18n.KeySelect)},
		{Key: "Esc", Description: tr.T(i18n.KeyBack)},
	}
}

// Quiz exposes the underlying session.
func (s *MultipleScreen) Quiz() *sess.Quiz {
	return s.quiz
}

func (s *MultipleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.quiz == nil {
		return s, nil
	}

	switch msg := msg.(type) {
	case nextQuestionMsg:
		if msg.Seq != s.seq || s.quiz.Phase() != sess.PhaseFeedback {
			return s, nil
		}
		if err := s.quiz.Next(); err != nil {
			s.fail("next question", err)
			return s, nil
		}
		s.resetChoice()
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab", "]":
			s.cycleTable(1)
			return s, nil
		case "shift+tab", "[":
			s.cycleTable(-1)
			return s, nil
		}
		if s.quiz.Phase() != sess.PhaseAsking {
			return s, nil
		}
		s.choice, _ = s.choice.Update(msg)
		if s.choice.Submitted {
			return s, s.answer(s.choice.ChosenIndex)
		}
	}
	return s, nil
}

func (s *MultipleScreen) answer(index int) tea.Cmd {
	if _, err := s.quiz.AnswerChoice(s.st.Context(), index); err != nil {
		s.fail("answer", err)
		return nil
	}
	s.errMsg = ""
	s.seq++
	seq := s.seq
	return tea.Tick(s.st.Config.Quiz.ChoiceDelay, func(time.Time) tea.Msg {
		return nextQuestionMsg{Seq: seq}
	})
}

// cycleTable moves the filter through All, 1, 2, ... 12 and wraps around.
func (s *MultipleScreen) cycleTable(step int) {
	span := problemgen.MaxTable + 1
	next := ((s.quiz.Table()+step)%span + span) % span
	if err := s.quiz.SetTable(next); err != nil {
		s.fail("change table", err)
		return
	}
	// Any pending delay belongs to the previous question.
	s.seq++
	s.resetChoice()
}

func (s *MultipleScreen) resetChoice() {
	q := s.quiz.Current()
	s.choice = components.NewMultiChoice(q.Options, q.CorrectIndex)
}

func (s *MultipleScreen) fail(op string, err error) {
	s.st.Log.Error(op, "error", err)
	s.errMsg = err.Error()
}
