package problemgen

import (
	"errors"
	"testing"
)

func TestOptions_DistinctWithOneCorrect(t *testing.T) {
	g := New(DefaultConfig(), seeded(10))

	for _, count := range []int{4, 6} {
		for correct := 1; correct <= 144; correct++ {
			opts, pos, err := g.Options(correct, count, NoPosition)
			if err != nil {
				t.Fatalf("Options(%d, %d): %v", correct, count, err)
			}
			if len(opts) != count {
				t.Fatalf("len = %d, want %d", len(opts), count)
			}
			seen := make(map[int]bool)
			hits := 0
			for _, v := range opts {
				if seen[v] {
					t.Fatalf("duplicate value %d in %v", v, opts)
				}
				seen[v] = true
				if v < 1 {
					t.Fatalf("value %d below 1 in %v", v, opts)
				}
				if v == correct {
					hits++
				}
			}
			if hits != 1 {
				t.Fatalf("correct value appears %d times in %v", hits, opts)
			}
			if opts[pos] != correct {
				t.Fatalf("opts[%d] = %d, want %d", pos, opts[pos], correct)
			}
		}
	}
}

func TestOptions_DistractorsStayNear(t *testing.T) {
	g := New(DefaultConfig(), seeded(11))
	opts, _, err := g.Options(56, 6, NoPosition)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range opts {
		if v < 46 || v > 66 {
			t.Errorf("value %d further than 10 from 56", v)
		}
	}
}

func TestOptions_NeverRepeatsLastPosition(t *testing.T) {
	g := New(DefaultConfig(), seeded(12))
	for i := 0; i < 1000; i++ {
		_, pos, err := g.Options(12, 6, 2)
		if err != nil {
			t.Fatal(err)
		}
		if pos == 2 {
			t.Fatalf("iteration %d: correct value placed at the previous position", i)
		}
	}
}

func TestOptions_InvalidInput(t *testing.T) {
	g := New(DefaultConfig(), seeded(13))

	tests := []struct {
		name    string
		correct int
		count   int
		want    error
	}{
		{"count 5", 12, 5, ErrInvalidOptionCount},
		{"count 0", 12, 0, ErrInvalidOptionCount},
		{"zero product", 0, 4, ErrInvalidProduct},
		{"negative product", -3, 6, ErrInvalidProduct},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, pos, err := g.Options(tt.correct, tt.count, NoPosition)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if pos != NoPosition {
				t.Errorf("pos = %d, want %d", pos, NoPosition)
			}
		})
	}
}

func TestOptions_SmallSpreadStillFills(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Spread = 1
	g := New(cfg, seeded(14))
	opts, _, err := g.Options(1, 6, NoPosition)
	if err != nil {
		t.Fatal(err)
	}
	if len(opts) != 6 {
		t.Errorf("len = %d, want 6", len(opts))
	}
}

func TestChoiceTracker(t *testing.T) {
	tr := NewChoiceTracker()
	if tr.Last() != NoPosition {
		t.Errorf("new tracker Last() = %d", tr.Last())
	}
	tr.Set(3)
	if tr.Last() != 3 {
		t.Errorf("Last() = %d, want 3", tr.Last())
	}
	tr.Reset()
	if tr.Last() != NoPosition {
		t.Errorf("after Reset Last() = %d", tr.Last())
	}
}
