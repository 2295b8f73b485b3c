package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiltwelve/tiltwelve/internal/problemgen"
)

func TestMatch_WrongAnswerScoresForOpponent(t *testing.T) {
	m, err := NewMatch(3, seededGen(problemgen.FullGridConfig(), 10), nil)
	require.NoError(t, err)
	require.Len(t, m.Current().Options, MatchOptionCount)

	r, err := m.Answer(Player1, wrongIndex(m.Current()))
	require.NoError(t, err)
	assert.False(t, r.Correct)
	assert.Equal(t, Player2, r.Scorer)
	assert.Equal(t, 0, m.Score(Player1))
	assert.Equal(t, 1, m.Score(Player2))

	r, err = m.Answer(Player2, m.Current().CorrectIndex)
	require.NoError(t, err)
	assert.True(t, r.Correct)
	assert.Equal(t, Player2, r.Scorer)
	assert.Equal(t, 2, m.Score(Player2))
	assert.Equal(t, ResultPending, m.Result())
	assert.Equal(t, PhaseAsking, m.Phase())
}

func TestMatch_ResultAfterRounds(t *testing.T) {
	m, err := NewMatch(0, seededGen(problemgen.FullGridConfig(), 11), nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultRounds, m.Rounds())

	for i := 0; i < DefaultRounds; i++ {
		_, err := m.Answer(Player1, m.Current().CorrectIndex)
		require.NoError(t, err)
	}
	assert.True(t, m.Done())
	assert.Equal(t, PhaseDone, m.Phase())
	assert.Equal(t, DefaultRounds, m.Played())
	assert.Equal(t, ResultPlayer1, m.Result())

	_, err = m.Answer(Player2, 0)
	assert.ErrorIs(t, err, ErrNotAwaitingAnswer)
}

func TestMatch_Draw(t *testing.T) {
	m, err := NewMatch(2, seededGen(problemgen.FullGridConfig(), 12), nil)
	require.NoError(t, err)

	_, err = m.Answer(Player1, m.Current().CorrectIndex)
	require.NoError(t, err)
	_, err = m.Answer(Player2, m.Current().CorrectIndex)
	require.NoError(t, err)

	assert.Equal(t, ResultDraw, m.Result())
}

func TestMatch_Player2Wins(t *testing.T) {
	m, err := NewMatch(1, seededGen(problemgen.FullGridConfig(), 13), nil)
	require.NoError(t, err)
	_, err = m.Answer(Player1, wrongIndex(m.Current()))
	require.NoError(t, err)
	assert.Equal(t, ResultPlayer2, m.Result())
}

func TestMatch_InvalidInput(t *testing.T) {
	m, err := NewMatch(1, nil, nil)
	require.NoError(t, err)

	_, err = m.Answer(Player(3), 0)
	assert.Error(t, err)
	_, err = m.Answer(Player1, 4)
	assert.Error(t, err)
	assert.Equal(t, 0, m.Played())
}

func TestMatch_QuestionsFromFullGrid(t *testing.T) {
	m, err := NewMatch(200, seededGen(problemgen.FullGridConfig(), 14), nil)
	require.NoError(t, err)
	for !m.Done() {
		cur := m.Current()
		require.LessOrEqual(t, cur.Multiplier, 12)
		require.Equal(t, 1, countOf(cur.Options, cur.Answer()))
		_, err := m.Answer(Player1, 0)
		require.NoError(t, err)
	}
}

func countOf(xs []int, v int) int {
	n := 0
	for _, x := range xs {
		if x == v {
			n++
		}
	}
	return n
}

func TestPlayerOpponent(t *testing.T) {
	assert.Equal(t, Player2, Player1.Opponent())
	assert.Equal(t, Player1, Player2.Opponent())
}
