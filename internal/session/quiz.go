package session

import (
	"context"
	"fmt"

	"github.com/tiltwelve/tiltwelve/internal/logging"
	"github.com/tiltwelve/tiltwelve/internal/problemgen"
)

// QuizOptions configures a quiz.
type QuizOptions struct {
	Mode Mode

	// Table is the starting table filter, problemgen.NoTable for all.
	Table int

	// ChoiceCount is the number of options per question (4 or 6).
	ChoiceCount int

	// Generator supplies questions. Defaults to a randomly seeded one over
	// the full grid for typed quizzes and the standard grid otherwise.
	Generator *problemgen.Generator
}

// Outcome is the graded result of one answer.
type Outcome struct {
	Question problemgen.Question

	// Given is the value the learner submitted.
	Given   int
	Correct bool

	// TableScore is the high score of the fact's table after this answer.
	// Only set for multiple-choice quizzes.
	TableScore int
}

// Answer is the product the learner should have given.
func (o Outcome) Answer() int {
	return o.Question.Answer()
}

// Quiz is a typed or multiple-choice practice session. It is driven from a
// single goroutine.
type Quiz struct {
	ID   string
	Mode Mode

	gen     *problemgen.Generator
	used    *problemgen.UsedSet
	tracker *problemgen.ChoiceTracker
	count   int
	table   int

	current problemgen.Question
	phase   Phase
	last    *Outcome

	answered int
	correct  int

	stats  StatsRecorder
	scores ScoreKeeper
	log    *logging.Logger
}

// NewQuiz starts a quiz and draws its first question.
func NewQuiz(opts QuizOptions, st StatsRecorder, sc ScoreKeeper, log *logging.Logger) (*Quiz, error) {
	if log == nil {
		log = logging.Nop()
	}
	gen := opts.Generator
	if gen == nil {
		cfg := problemgen.DefaultConfig()
		if opts.Mode == ModeTyped {
			cfg = problemgen.FullGridConfig()
		}
		gen = problemgen.New(cfg, nil)
	}
	count := opts.ChoiceCount
	if count == 0 {
		count = 6
	}

	id := NewID()
	q := &Quiz{
		ID:      id,
		Mode:    opts.Mode,
		gen:     gen,
		used:    problemgen.NewUsedSet(),
		tracker: problemgen.NewChoiceTracker(),
		count:   count,
		table:   normalizeTable(opts.Table),
		stats:   st,
		scores:  sc,
		log:     log.With("session", id, "mode", opts.Mode.String()),
	}
	if err := q.Next(); err != nil {
		return nil, err
	}
	q.log.Info("quiz started", "table", q.table)
	return q, nil
}

// Table returns the active table filter.
func (q *Quiz) Table() int {
	return q.table
}

// SetTable changes the table filter, forgets the facts already asked and
// draws a new question.
func (q *Quiz) SetTable(table int) error {
	table = normalizeTable(table)
	if table == q.table {
		return nil
	}
	q.table = table
	q.used.Reset()
	q.log.Debug("table filter changed", "table", table)
	return q.Next()
}

// Current returns the question awaiting an answer.
func (q *Quiz) Current() problemgen.Question {
	return q.current
}

// Phase reports whether the quiz awaits an answer or shows feedback.
func (q *Quiz) Phase() Phase {
	return q.phase
}

// Last returns the outcome of the most recent answer, or nil.
func (q *Quiz) Last() *Outcome {
	return q.last
}

// Answered returns how many questions were answered this session.
func (q *Quiz) Answered() int {
	return q.answered
}

// CorrectCount returns how many answers were right this session.
func (q *Quiz) CorrectCount() int {
	return q.correct
}

// ScoreLine returns the label value for the score line: the high score of
// the selected table, or the global score when no table is selected.
func (q *Quiz) ScoreLine(ctx context.Context) int {
	if q.scores == nil {
		return 0
	}
	if q.table == problemgen.NoTable {
		return q.scores.Global(ctx)
	}
	return q.scores.Load(ctx, q.table)
}

// Next draws the next question and returns to the asking phase.
func (q *Quiz) Next() error {
	if q.Mode == ModeTyped {
		q.current = q.gen.Typed(q.table, q.used)
	} else {
		question, err := q.gen.MultipleChoice(q.table, q.used, q.count, q.tracker)
		if err != nil {
			return fmt.Errorf("next question: %w", err)
		}
		q.current = question
	}
	q.phase = PhaseAsking
	return nil
}

// AnswerTyped grades free-text input. Input that is not a number is
// rejected with the parse error and does not count as an answer.
func (q *Quiz) AnswerTyped(ctx context.Context, input string) (Outcome, error) {
	if q.phase != PhaseAsking {
		return Outcome{}, ErrNotAwaitingAnswer
	}
	n, err := problemgen.ParseAnswer(input)
	if err != nil {
		return Outcome{}, err
	}
	return q.grade(ctx, n, problemgen.CheckAnswer(q.current, n)), nil
}

// AnswerChoice grades the option at index.
func (q *Quiz) AnswerChoice(ctx context.Context, index int) (Outcome, error) {
	if q.phase != PhaseAsking {
		return Outcome{}, ErrNotAwaitingAnswer
	}
	if !q.current.IsMultipleChoice() || index < 0 || index >= len(q.current.Options) {
		return Outcome{}, fmt.Errorf("option %d out of range", index)
	}
	return q.grade(ctx, q.current.Options[index], problemgen.CheckChoice(q.current, index)), nil
}

func (q *Quiz) grade(ctx context.Context, given int, correct bool) Outcome {
	out := Outcome{Question: q.current, Given: given, Correct: correct}

	q.answered++
	if correct {
		q.correct++
	}
	if q.stats != nil {
		q.stats.RecordAttempt(ctx, q.current.Fact, correct)
	}
	if q.Mode == ModeChoice && q.scores != nil {
		table := q.current.Multiplicand
		if correct {
			out.TableScore = q.scores.Increment(ctx, table)
		} else {
			out.TableScore = q.scores.Load(ctx, table)
		}
	}

	q.last = &out
	q.phase = PhaseFeedback
	q.log.Debug("answer graded",
		"fact", q.current.Key(),
		"given", given,
		"correct", correct,
	)
	return out
}

func normalizeTable(table int) int {
	if table < problemgen.MinTable || table > problemgen.MaxTable {
		return problemgen.NoTable
	}
	return table
}
