// Package quiz is the typed-answer quiz: a random fact from the 12×12 grid
// is shown and the learner types the product.
package quiz

import (
	"errors"
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

// answerDigits caps input at the width of the largest product.
const answerDigits = 3

// QuizScreen implements screen.Screen for the typed quiz.
type QuizScreen struct {
	st     *state.State
	quiz   *sess.Quiz
	input  components.TextInput
	seq    int
	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a typed quiz over the full grid.
func New(st *state.State) *QuizScreen {
	s := &QuizScreen{
		st:    st,
		input: components.NewTextInput(st.T().T(i18n.KeyEnterAnswer), true, answerDigits),
	}
	q, err := sess.NewQuiz(sess.QuizOptions{
		Mode:      sess.ModeTyped,
		Table:     problemgen.NoTable,
		Generator: st.Generator(problemgen.FullGridConfig()),
	}, st.Stats, st.Scores, st.Log)
	if err != nil {
		st.Log.Error("start typed quiz", "error", err)
		s.errMsg = err.Error()
		return s
	}
	s.quiz = q
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *QuizScreen) Title() string {
	return s.st.T().T(i18n.KeyQuizTitle)
}

// Status shows the session tally in the header.
func (s *QuizScreen) Status() string {
	if s.quiz == nil {
		return ""
	}
	return scoreLine(s.st.T(), s.quiz)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	tr := s.st.T()
	if s.quiz != nil && s.quiz.Phase() == sess.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "Esc", Description: tr.T(i18n.KeyBack)},
		}
	}
	return []layout.KeyHint{
		{Key: "0-9", Description: tr.T(i18n.KeyEnterAnswer)},
		{Key: "Enter", Description: tr.T(i18n.KeySubmit)},
		{Key: "Esc", Description: tr.T(i18n.KeyBack)},
	}
}

// Quiz exposes the underlying session.
func (s *QuizScreen) Quiz() *sess.Quiz {
	return s.quiz
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.quiz == nil {
		return s, nil
	}

	switch msg := msg.(type) {
	case nextQuestionMsg:
		if msg.Seq != s.seq || s.quiz.Phase() != sess.PhaseFeedback {
			return s, nil
		}
		return s.advance()

	case tea.KeyPressMsg:
		if s.quiz.Phase() != sess.PhaseAsking {
			return s, nil
		}
		if msg.String() == "enter" {
			return s.submit()
		}
	}

	if s.quiz.Phase() == sess.PhaseAsking {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	out, err := s.quiz.AnswerTyped(s.st.Context(), s.input.Value())
	switch {
	case errors.Is(err, problemgen.ErrEmptyAnswer):
		return s, nil
	case err != nil:
		s.errMsg = err.Error()
		return s, nil
	}

	s.errMsg = ""
	s.input.Submit(out.Correct)
	s.seq++
	return s, feedbackDelay(s.st.Config.Quiz.TypedDelay, s.seq)
}

func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	if err := s.quiz.Next(); err != nil {
		s.st.Log.Error("next question", "error", err)
		s.errMsg = err.Error()
		return s, nil
	}
	s.input.Reset()
	return s, nil
}

func feedbackDelay(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return nextQuestionMsg{Seq: seq}
	})
}
