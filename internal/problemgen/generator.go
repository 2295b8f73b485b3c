package problemgen

import "math/rand/v2"

// NoTable is the table filter meaning "all tables".
const NoTable = 0

// Generator draws multiplication facts and option sets. It is not safe for
// concurrent use; each quiz session owns one.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New creates a Generator. A nil rng is replaced by a randomly seeded one.
func New(cfg Config, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.MaxMultiplicand <= 0 {
		cfg.MaxMultiplicand = MaxTable
	}
	if cfg.MaxMultiplier <= 0 {
		cfg.MaxMultiplier = MaxMultiplier
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultConfig().MaxAttempts
	}
	if cfg.Spread <= 0 {
		cfg.Spread = DefaultConfig().Spread
	}
	return &Generator{cfg: cfg, rng: rng}
}

// Config returns the generator's effective configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Next returns a fact not yet in used and records it there.
//
// With a table filter in 1..MaxTable the multiplicand is fixed to it; any
// other value draws the multiplicand from 1..MaxMultiplicand. After
// MaxAttempts draws that all hit used facts, used is cleared and the last
// draw is returned without being recorded.
func (g *Generator) Next(table int, used *UsedSet) Fact {
	var f Fact
	for attempt := 0; attempt < g.cfg.MaxAttempts; attempt++ {
		f = g.draw(table)
		if !used.Has(f) {
			used.Add(f)
			return f
		}
	}
	used.Reset()
	return f
}

func (g *Generator) draw(table int) Fact {
	m := table
	if m < MinTable || m > MaxTable {
		m = g.rng.IntN(g.cfg.MaxMultiplicand) + 1
	}
	return Fact{
		Multiplicand: m,
		Multiplier:   g.rng.IntN(g.cfg.MaxMultiplier) + 1,
	}
}

// Typed returns the next typed-answer question.
func (g *Generator) Typed(table int, used *UsedSet) Question {
	return Question{Fact: g.Next(table, used), CorrectIndex: -1}
}

// MultipleChoice returns the next question with count options. The tracker
// carries the previous correct position so it is never repeated.
func (g *Generator) MultipleChoice(table int, used *UsedSet, count int, tracker *ChoiceTracker) (Question, error) {
	f := g.Next(table, used)
	opts, pos, err := g.Options(f.Product(), count, tracker.Last())
	if err != nil {
		return Question{}, err
	}
	tracker.Set(pos)
	return Question{Fact: f, Options: opts, CorrectIndex: pos}, nil
}
