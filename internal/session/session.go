// Package session holds the state of one quiz or competition from its first
// question to its last answer.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/tiltwelve/tiltwelve/internal/problemgen"
	"github.com/tiltwelve/tiltwelve/internal/stats"
)

// ErrNotAwaitingAnswer is returned when an answer arrives while feedback
// for the previous one is still showing or the match is over.
var ErrNotAwaitingAnswer = errors.New("session: not awaiting an answer")

// Mode selects how a quiz question is answered.
type Mode int

const (
	ModeTyped Mode = iota
	ModeChoice
)

func (m Mode) String() string {
	if m == ModeChoice {
		return "choice"
	}
	return "typed"
}

// Phase is the lifecycle position of a session.
type Phase int

const (
	PhaseAsking   Phase = iota // Waiting for an answer
	PhaseFeedback              // Showing the result of the last answer
	PhaseDone                  // No more questions (competition only)
)

// StatsRecorder receives every graded quiz answer.
type StatsRecorder interface {
	RecordAttempt(ctx context.Context, f problemgen.Fact, correct bool) stats.Record
}

// ScoreKeeper owns the persisted per-table high scores.
type ScoreKeeper interface {
	Load(ctx context.Context, table int) int
	Global(ctx context.Context) int
	Increment(ctx context.Context, table int) int
}

// NewID returns a fresh session identifier.
func NewID() string {
	return uuid.NewString()
}
