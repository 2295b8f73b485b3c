package problemgen

import (
	"math/rand/v2"
	"testing"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestNext_TableFilterFixesMultiplicand(t *testing.T) {
	g := New(DefaultConfig(), seeded(1))
	used := NewUsedSet()

	f := g.Next(7, used)
	if f.Multiplicand != 7 {
		t.Errorf("multiplicand = %d, want 7", f.Multiplicand)
	}
	if f.Multiplier < 1 || f.Multiplier > 10 {
		t.Errorf("multiplier = %d, want 1..10", f.Multiplier)
	}
	if !used.Has(f) {
		t.Error("returned fact should be recorded in used set")
	}
}

func TestNext_AllTablesStaysInGrid(t *testing.T) {
	g := New(DefaultConfig(), seeded(2))
	used := NewUsedSet()
	for i := 0; i < 500; i++ {
		f := g.Next(NoTable, used)
		if f.Multiplicand < 1 || f.Multiplicand > 12 {
			t.Fatalf("multiplicand %d out of range", f.Multiplicand)
		}
		if f.Multiplier < 1 || f.Multiplier > 10 {
			t.Fatalf("multiplier %d out of range", f.Multiplier)
		}
	}
}

func TestNext_FullGridReachesTwelve(t *testing.T) {
	g := New(FullGridConfig(), seeded(3))
	used := NewUsedSet()
	sawTwelve := false
	for i := 0; i < 500; i++ {
		f := g.Next(NoTable, used)
		if f.Multiplier > 12 {
			t.Fatalf("multiplier %d out of range", f.Multiplier)
		}
		if f.Multiplier > 10 {
			sawTwelve = true
		}
	}
	if !sawTwelve {
		t.Error("full grid should draw multipliers above 10")
	}
}

func TestNext_NoRepeatsUntilExhausted(t *testing.T) {
	g := New(DefaultConfig(), seeded(4))
	used := NewUsedSet()

	seen := make(map[Fact]bool)
	for i := 0; i < 10; i++ {
		f := g.Next(3, used)
		if seen[f] {
			t.Fatalf("fact %v repeated before the table was exhausted", f)
		}
		seen[f] = true
	}
	if used.Len() != 10 {
		t.Errorf("used.Len() = %d, want 10", used.Len())
	}
}

func TestNext_ExhaustionClearsUsedSet(t *testing.T) {
	g := New(DefaultConfig(), seeded(5))
	used := NewUsedSet()
	for m := 1; m <= 10; m++ {
		used.Add(Fact{Multiplicand: 3, Multiplier: m})
	}

	f := g.Next(3, used)
	if f.Multiplicand != 3 {
		t.Errorf("multiplicand = %d, want 3", f.Multiplicand)
	}
	if used.Len() != 0 {
		t.Errorf("used set should be cleared on exhaustion, has %d", used.Len())
	}
}

func TestNext_OutOfRangeFilterMeansAllTables(t *testing.T) {
	g := New(DefaultConfig(), seeded(6))
	used := NewUsedSet()
	multiplicands := make(map[int]bool)
	for i := 0; i < 200; i++ {
		multiplicands[g.Next(13, used).Multiplicand] = true
	}
	if len(multiplicands) < 2 {
		t.Errorf("expected several multiplicands, got %v", multiplicands)
	}
}

func TestMultipleChoice_TracksPosition(t *testing.T) {
	g := New(DefaultConfig(), seeded(7))
	used := NewUsedSet()
	tracker := NewChoiceTracker()

	prev := NoPosition
	for i := 0; i < 200; i++ {
		q, err := g.MultipleChoice(NoTable, used, 6, tracker)
		if err != nil {
			t.Fatalf("MultipleChoice: %v", err)
		}
		if q.Options[q.CorrectIndex] != q.Answer() {
			t.Fatalf("option at correct index = %d, want %d", q.Options[q.CorrectIndex], q.Answer())
		}
		if q.CorrectIndex == prev {
			t.Fatalf("correct index %d repeated", prev)
		}
		if tracker.Last() != q.CorrectIndex {
			t.Fatalf("tracker = %d, want %d", tracker.Last(), q.CorrectIndex)
		}
		prev = q.CorrectIndex
	}
}

func TestTyped_HasNoOptions(t *testing.T) {
	g := New(FullGridConfig(), seeded(8))
	q := g.Typed(NoTable, NewUsedSet())
	if q.IsMultipleChoice() {
		t.Error("typed question should not carry options")
	}
	if q.CorrectIndex != NoPosition {
		t.Errorf("CorrectIndex = %d, want %d", q.CorrectIndex, NoPosition)
	}
}

func TestNew_FillsZeroConfig(t *testing.T) {
	g := New(Config{}, nil)
	cfg := g.Config()
	if cfg.MaxMultiplicand != 12 || cfg.MaxMultiplier != 10 || cfg.MaxAttempts != 100 || cfg.Spread != 10 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
