package session

import (
	"fmt"

	"github.com/tiltwelve/tiltwelve/internal/logging"
	"github.com/tiltwelve/tiltwelve/internal/problemgen"
)

// Competition defaults.
const (
	DefaultRounds    = 10
	MatchOptionCount = 4
)

// Player identifies a competitor.
type Player int

const (
	Player1 Player = iota + 1
	Player2
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Result is the final verdict of a match.
type Result int

const (
	ResultPending Result = iota
	ResultPlayer1
	ResultPlayer2
	ResultDraw
)

// Round is the graded result of one competition question.
type Round struct {
	Question problemgen.Question
	Player   Player
	Correct  bool

	// Scorer is the player who earned the point.
	Scorer Player
}

// Match is a two-player race over a fixed number of rounds. Both players
// see the same question; whoever answers first settles the round. A wrong
// answer gives the point to the opponent. Matches do not touch statistics
// or high scores.
type Match struct {
	ID string

	gen     *problemgen.Generator
	used    *problemgen.UsedSet
	tracker *problemgen.ChoiceTracker

	rounds  int
	played  int
	scores  [3]int
	current problemgen.Question
	last    *Round

	log *logging.Logger
}

// NewMatch starts a match of the given number of rounds. A nil generator
// is replaced by a randomly seeded one over the full 12x12 grid.
func NewMatch(rounds int, gen *problemgen.Generator, log *logging.Logger) (*Match, error) {
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	if gen == nil {
		gen = problemgen.New(problemgen.FullGridConfig(), nil)
	}
	if log == nil {
		log = logging.Nop()
	}
	id := NewID()
	m := &Match{
		ID:      id,
		gen:     gen,
		used:    problemgen.NewUsedSet(),
		tracker: problemgen.NewChoiceTracker(),
		rounds:  rounds,
		log:     log.With("session", id, "mode", "competition"),
	}
	if err := m.next(); err != nil {
		return nil, err
	}
	m.log.Info("match started", "rounds", rounds)
	return m, nil
}

// Current returns the question of the round in play.
func (m *Match) Current() problemgen.Question {
	return m.current
}

// Rounds returns the total number of rounds.
func (m *Match) Rounds() int {
	return m.rounds
}

// Played returns the number of rounds already settled.
func (m *Match) Played() int {
	return m.played
}

// Score returns a player's points.
func (m *Match) Score(p Player) int {
	if p != Player1 && p != Player2 {
		return 0
	}
	return m.scores[p]
}

// Last returns the most recently settled round, or nil.
func (m *Match) Last() *Round {
	return m.last
}

// Done reports whether every round has been played.
func (m *Match) Done() bool {
	return m.played >= m.rounds
}

// Phase returns PhaseDone once the match is over, PhaseAsking otherwise.
func (m *Match) Phase() Phase {
	if m.Done() {
		return PhaseDone
	}
	return PhaseAsking
}

// Answer settles the current round with player's choice and moves on to the
// next question unless the match is over.
func (m *Match) Answer(p Player, index int) (Round, error) {
	if m.Done() {
		return Round{}, ErrNotAwaitingAnswer
	}
	if p != Player1 && p != Player2 {
		return Round{}, fmt.Errorf("unknown player %d", p)
	}
	if index < 0 || index >= len(m.current.Options) {
		return Round{}, fmt.Errorf("option %d out of range", index)
	}

	r := Round{Question: m.current, Player: p, Correct: problemgen.CheckChoice(m.current, index)}
	r.Scorer = p
	if !r.Correct {
		r.Scorer = p.Opponent()
	}
	m.scores[r.Scorer]++
	m.played++
	m.last = &r

	m.log.Debug("round settled",
		"round", m.played,
		"fact", r.Question.Key(),
		"player", int(p),
		"correct", r.Correct,
	)

	if m.Done() {
		m.log.Info("match finished",
			"player1", m.scores[Player1],
			"player2", m.scores[Player2],
		)
		return r, nil
	}
	if err := m.next(); err != nil {
		return r, err
	}
	return r, nil
}

// Result returns the verdict, or ResultPending while rounds remain.
func (m *Match) Result() Result {
	if !m.Done() {
		return ResultPending
	}
	switch {
	case m.scores[Player1] > m.scores[Player2]:
		return ResultPlayer1
	case m.scores[Player2] > m.scores[Player1]:
		return ResultPlayer2
	default:
		return ResultDraw
	}
}

func (m *Match) next() error {
	q, err := m.gen.MultipleChoice(problemgen.NoTable, m.used, MatchOptionCount, m.tracker)
	if err != nil {
		return fmt.Errorf("next round: %w", err)
	}
	m.current = q
	return nil
}
