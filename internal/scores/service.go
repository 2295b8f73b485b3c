// Package scores tracks the per-table high scores of the multiple-choice
// quiz. Each table's score is stored as a decimal string under
// table_<N>_score; the global score is the sum and is never persisted.
package scores

import (
	"context"
	"strconv"
	"strings"

	"github.com/tiltwelve/tiltwelve/internal/logging"
	"github.com/tiltwelve/tiltwelve/internal/problemgen"
	"github.com/tiltwelve/tiltwelve/internal/store"
)

// Service reads and updates table scores.
type Service struct {
	kv  store.KV
	log *logging.Logger
}

// NewService creates a score service on kv.
func NewService(kv store.KV, log *logging.Logger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{kv: kv, log: log.With("component", "scores")}
}

// Load returns the score of table. Missing, unreadable and unparsable values
// count as zero.
func (s *Service) Load(ctx context.Context, table int) int {
	if !validTable(table) {
		return 0
	}
	key := store.TableScoreKey(table)
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Warn("read score", "key", key, "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		s.log.Warn("ignoring malformed score", "key", key, "value", raw)
		return 0
	}
	return n
}

// All returns the scores of tables 1..12, indexed by table number. Index 0
// is unused.
func (s *Service) All(ctx context.Context) [problemgen.MaxTable + 1]int {
	var out [problemgen.MaxTable + 1]int
	for t := problemgen.MinTable; t <= problemgen.MaxTable; t++ {
		out[t] = s.Load(ctx, t)
	}
	return out
}

// Global returns the sum of every table's score.
func (s *Service) Global(ctx context.Context) int {
	total := 0
	for _, n := range s.All(ctx) {
		total += n
	}
	return total
}

// Increment adds one to the table's score and returns the new value. The
// new value is returned even if it could not be saved.
func (s *Service) Increment(ctx context.Context, table int) int {
	if !validTable(table) {
		return 0
	}
	next := s.Load(ctx, table) + 1
	key := store.TableScoreKey(table)
	if err := s.kv.Set(ctx, key, strconv.Itoa(next)); err != nil {
		s.log.Warn("save score", "key", key, "error", err)
	}
	return next
}

// Reset zeroes every table's score.
func (s *Service) Reset(ctx context.Context) {
	for t := problemgen.MinTable; t <= problemgen.MaxTable; t++ {
		key := store.TableScoreKey(t)
		if err := s.kv.Delete(ctx, key); err != nil {
			s.log.Warn("delete score", "key", key, "error", err)
		}
	}
}

func validTable(table int) bool {
	return table >= problemgen.MinTable && table <= problemgen.MaxTable
}
