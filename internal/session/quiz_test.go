package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiltwelve/tiltwelve/internal/problemgen"
	"github.com/tiltwelve/tiltwelve/internal/scores"
	"github.com/tiltwelve/tiltwelve/internal/stats"
	"github.com/tiltwelve/tiltwelve/internal/store"
)

func seededGen(cfg problemgen.Config, seed uint64) *problemgen.Generator {
	return problemgen.New(cfg, rand.New(rand.NewPCG(seed, seed+1)))
}

type fixture struct {
	stats  *stats.Service
	scores *scores.Service
}

func newFixture() fixture {
	kv := store.NewMemory()
	return fixture{stats: stats.NewService(kv, nil), scores: scores.NewService(kv, nil)}
}

func wrongIndex(q problemgen.Question) int {
	for i := range q.Options {
		if i != q.CorrectIndex {
			return i
		}
	}
	return -1
}

func TestQuiz_TypedCorrectAndWrong(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	q, err := NewQuiz(QuizOptions{Mode: ModeTyped, Generator: seededGen(problemgen.FullGridConfig(), 1)}, f.stats, f.scores, nil)
	require.NoError(t, err)
	require.NotEmpty(t, q.ID)

	first := q.Current()
	out, err := q.AnswerTyped(ctx, strconv.Itoa(first.Answer()))
	require.NoError(t, err)
	assert.True(t, out.Correct)
	assert.Equal(t, PhaseFeedback, q.Phase())
	assert.Equal(t, 0, out.TableScore, "typed answers do not touch high scores")

	_, err = q.AnswerTyped(ctx, "1")
	assert.ErrorIs(t, err, ErrNotAwaitingAnswer)

	require.NoError(t, q.Next())
	second := q.Current()
	out, err = q.AnswerTyped(ctx, strconv.Itoa(second.Answer()+1))
	require.NoError(t, err)
	assert.False(t, out.Correct)
	assert.Equal(t, second.Answer(), out.Answer())

	assert.Equal(t, 2, q.Answered())
	assert.Equal(t, 1, q.CorrectCount())
	assert.Equal(t, 1, f.stats.Get(first.Fact).Total)
	assert.Equal(t, 0, f.scores.Global(ctx))
}

func TestQuiz_TypedRejectsBadInput(t *testing.T) {
	f := newFixture()
	q, err := NewQuiz(QuizOptions{Mode: ModeTyped}, f.stats, f.scores, nil)
	require.NoError(t, err)

	_, err = q.AnswerTyped(context.Background(), "  ")
	assert.True(t, errors.Is(err, problemgen.ErrEmptyAnswer))
	_, err = q.AnswerTyped(context.Background(), "abc")
	assert.True(t, errors.Is(err, problemgen.ErrNotANumber))

	assert.Equal(t, 0, q.Answered())
	assert.Equal(t, PhaseAsking, q.Phase())
}

func TestQuiz_ChoiceIncrementsTableScore(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	q, err := NewQuiz(QuizOptions{Mode: ModeChoice, Table: 7, ChoiceCount: 4, Generator: seededGen(problemgen.DefaultConfig(), 2)}, f.stats, f.scores, nil)
	require.NoError(t, err)

	cur := q.Current()
	require.Len(t, cur.Options, 4)
	assert.Equal(t, 7, cur.Multiplicand)

	out, err := q.AnswerChoice(ctx, cur.CorrectIndex)
	require.NoError(t, err)
	assert.True(t, out.Correct)
	assert.Equal(t, 1, out.TableScore)
	assert.Equal(t, 1, q.ScoreLine(ctx))

	require.NoError(t, q.Next())
	cur = q.Current()
	out, err = q.AnswerChoice(ctx, wrongIndex(cur))
	require.NoError(t, err)
	assert.False(t, out.Correct)
	assert.Equal(t, 1, out.TableScore)
	assert.Equal(t, 1, f.scores.Load(ctx, 7))
}

func TestQuiz_ChoicePositionsAlternate(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	q, err := NewQuiz(QuizOptions{Mode: ModeChoice, Generator: seededGen(problemgen.DefaultConfig(), 3)}, f.stats, f.scores, nil)
	require.NoError(t, err)

	prev := q.Current().CorrectIndex
	for i := 0; i < 50; i++ {
		_, err := q.AnswerChoice(ctx, 0)
		require.NoError(t, err)
		require.NoError(t, q.Next())
		cur := q.Current().CorrectIndex
		require.NotEqual(t, prev, cur, "question %d", i)
		prev = cur
	}
}

func TestQuiz_ChoiceOutOfRange(t *testing.T) {
	f := newFixture()
	q, err := NewQuiz(QuizOptions{Mode: ModeChoice}, f.stats, f.scores, nil)
	require.NoError(t, err)

	_, err = q.AnswerChoice(context.Background(), 6)
	assert.Error(t, err)
	assert.Equal(t, 0, q.Answered())
}

func TestQuiz_SetTable(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	q, err := NewQuiz(QuizOptions{Mode: ModeChoice, Generator: seededGen(problemgen.DefaultConfig(), 4)}, f.stats, f.scores, nil)
	require.NoError(t, err)
	assert.Equal(t, problemgen.NoTable, q.Table())

	require.NoError(t, q.SetTable(9))
	assert.Equal(t, 9, q.Table())
	for i := 0; i < 20; i++ {
		assert.Equal(t, 9, q.Current().Multiplicand)
		_, err := q.AnswerChoice(ctx, q.Current().CorrectIndex)
		require.NoError(t, err)
		require.NoError(t, q.Next())
	}
	assert.Equal(t, 20, f.scores.Load(ctx, 9))
	assert.Equal(t, 20, q.ScoreLine(ctx))

	require.NoError(t, q.SetTable(42))
	assert.Equal(t, problemgen.NoTable, q.Table())
	assert.Equal(t, 20, q.ScoreLine(ctx), "global score sums every table")
}

func TestQuiz_NoRepeatWithinTable(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	q, err := NewQuiz(QuizOptions{Mode: ModeChoice, Table: 4, Generator: seededGen(problemgen.DefaultConfig(), 5)}, f.stats, f.scores, nil)
	require.NoError(t, err)

	seen := map[problemgen.Fact]bool{}
	for i := 0; i < 10; i++ {
		cur := q.Current().Fact
		require.False(t, seen[cur], "fact %v repeated", cur)
		seen[cur] = true
		_, err := q.AnswerChoice(ctx, 0)
		require.NoError(t, err)
		require.NoError(t, q.Next())
	}
}
