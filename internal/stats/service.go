package stats

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"sync"

	"github.com/tiltwelve/tiltwelve/internal/logging"
	"github.com/tiltwelve/tiltwelve/internal/problemgen"
	"github.com/tiltwelve/tiltwelve/internal/store"
)

// Service holds the statistics map in memory and writes it through to the
// key-value store. The in-memory map is authoritative: storage failures are
// logged and otherwise ignored.
type Service struct {
	mu      sync.RWMutex
	records map[problemgen.Fact]Record
	kv      store.KV
	log     *logging.Logger
}

// NewService creates an empty aggregator. Call Load to read persisted data.
func NewService(kv store.KV, log *logging.Logger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{
		records: make(map[problemgen.Fact]Record),
		kv:      kv,
		log:     log.With("component", "stats"),
	}
}

// Load replaces the in-memory map with the persisted document. A missing,
// unreadable or invalid document leaves the aggregator empty.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[problemgen.Fact]Record)

	raw, ok, err := s.kv.Get(ctx, store.KeyStatistics)
	if err != nil {
		s.log.Warn("read statistics", "error", err)
		return
	}
	if !ok || raw == "" {
		return
	}

	doc, err := decodeDocument(raw)
	if err != nil {
		s.log.Warn("discarding statistics document", "error", err)
		return
	}

	for group, facts := range doc {
		for key, rec := range facts {
			f, err := problemgen.ParseFactKey(key)
			if err != nil {
				s.log.Warn("skipping statistics entry", "key", key, "error", err)
				continue
			}
			if !inGrid(f) {
				s.log.Warn("skipping statistics entry outside the grid", "key", key)
				continue
			}
			if strconv.Itoa(f.Multiplicand) != group {
				s.log.Warn("statistics entry in wrong group", "key", key, "group", group)
			}
			if rec.Correct > rec.Total {
				rec.Correct = rec.Total
			}
			s.records[f] = rec
		}
	}
	s.log.Debug("statistics loaded", "facts", len(s.records))
}

// RecordAttempt counts one answer to f and persists the whole map.
func (s *Service) RecordAttempt(ctx context.Context, f problemgen.Fact, correct bool) Record {
	s.mu.Lock()
	rec := s.records[f]
	rec.Total++
	if correct {
		rec.Correct++
	}
	s.records[f] = rec
	raw, err := s.encodeLocked()
	s.mu.Unlock()

	if err != nil {
		s.log.Error("encode statistics", "error", err)
		return rec
	}
	if err := s.kv.Set(ctx, store.KeyStatistics, raw); err != nil {
		s.log.Warn("save statistics", "fact", f.Key(), "error", err)
	}
	return rec
}

// Get returns the record for f, zero if never attempted.
func (s *Service) Get(f problemgen.Fact) Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records[f]
}

// Percentage returns the rounded success rate for f.
func (s *Service) Percentage(f problemgen.Fact) int {
	return s.Get(f).Percentage()
}

// Table returns one row per multiplier 1..maxMultiplier for the multiplicand.
func (s *Service) Table(multiplicand, maxMultiplier int) []Row {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]Row, 0, maxMultiplier)
	for m := 1; m <= maxMultiplier; m++ {
		f := problemgen.Fact{Multiplicand: multiplicand, Multiplier: m}
		rec := s.records[f]
		rows = append(rows, Row{Fact: f, Record: rec, Percentage: rec.Percentage()})
	}
	return rows
}

// TableSummary aggregates every recorded fact with the given multiplicand.
func (s *Service) TableSummary(multiplicand int) Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := Summary{Table: multiplicand}
	for f, rec := range s.records {
		if f.Multiplicand != multiplicand {
			continue
		}
		sum.Correct += rec.Correct
		sum.Total += rec.Total
	}
	sum.Percentage = percentage(sum.Correct, sum.Total)
	return sum
}

// Overall aggregates every recorded fact. Summary.Table is 0.
func (s *Service) Overall() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum Summary
	for _, rec := range s.records {
		sum.Correct += rec.Correct
		sum.Total += rec.Total
	}
	sum.Percentage = percentage(sum.Correct, sum.Total)
	return sum
}

// MaxAttemptedMultiplier returns the highest multiplier recorded for the
// multiplicand, or 0.
func (s *Service) MaxAttemptedMultiplier(multiplicand int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	highest := 0
	for f := range s.records {
		if f.Multiplicand == multiplicand && f.Multiplier > highest {
			highest = f.Multiplier
		}
	}
	return highest
}

// Facts returns every recorded fact ordered by multiplicand then multiplier.
func (s *Service) Facts() []problemgen.Fact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	facts := make([]problemgen.Fact, 0, len(s.records))
	for f := range s.records {
		facts = append(facts, f)
	}
	sort.Slice(facts, func(i, j int) bool {
		if facts[i].Multiplicand != facts[j].Multiplicand {
			return facts[i].Multiplicand < facts[j].Multiplicand
		}
		return facts[i].Multiplier < facts[j].Multiplier
	})
	return facts
}

// Reset forgets all statistics in memory and in storage.
func (s *Service) Reset(ctx context.Context) {
	s.mu.Lock()
	s.records = make(map[problemgen.Fact]Record)
	s.mu.Unlock()

	if err := s.kv.Delete(ctx, store.KeyStatistics); err != nil {
		s.log.Warn("delete statistics", "error", err)
	}
}

func (s *Service) encodeLocked() (string, error) {
	doc := make(document)
	for f, rec := range s.records {
		group := strconv.Itoa(f.Multiplicand)
		if doc[group] == nil {
			doc[group] = make(map[string]Record)
		}
		doc[group][f.Key()] = rec
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// inGrid reports whether f lies on the 12×12 practice grid.
func inGrid(f problemgen.Fact) bool {
	return f.Multiplicand >= problemgen.MinTable && f.Multiplicand <= problemgen.MaxTable &&
		f.Multiplier >= problemgen.MinTable && f.Multiplier <= problemgen.MaxTable
}
