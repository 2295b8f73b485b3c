// Package problemgen generates multiplication questions and multiple-choice
// option sets.
package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Fact is a multiplication pair. It is comparable and used directly as a
// map key.
type Fact struct {
	Multiplicand int
	Multiplier   int
}

// Product returns Multiplicand × Multiplier.
func (f Fact) Product() int {
	return f.Multiplicand * f.Multiplier
}

// Key returns the persisted form "MxN", e.g. "3x4".
func (f Fact) Key() string {
	return strconv.Itoa(f.Multiplicand) + "x" + strconv.Itoa(f.Multiplier)
}

// String renders the fact as a question, e.g. "3 × 4".
func (f Fact) String() string {
	return fmt.Sprintf("%d × %d", f.Multiplicand, f.Multiplier)
}

// ParseFactKey parses the "MxN" form produced by Key.
func ParseFactKey(key string) (Fact, error) {
	m, n, ok := strings.Cut(key, "x")
	if !ok {
		return Fact{}, fmt.Errorf("fact key %q: missing 'x'", key)
	}
	a, err := strconv.Atoi(m)
	if err != nil {
		return Fact{}, fmt.Errorf("fact key %q: %w", key, err)
	}
	b, err := strconv.Atoi(n)
	if err != nil {
		return Fact{}, fmt.Errorf("fact key %q: %w", key, err)
	}
	return Fact{Multiplicand: a, Multiplier: b}, nil
}

// Question is a fact presented to the learner. Options is empty for
// typed-answer questions.
type Question struct {
	Fact

	// Options holds the multiple-choice values, one of which is the product.
	Options []int

	// CorrectIndex is the position of the product in Options, or -1.
	CorrectIndex int
}

// Answer returns the correct product.
func (q Question) Answer() int {
	return q.Fact.Product()
}

// IsMultipleChoice reports whether the question carries options.
func (q Question) IsMultipleChoice() bool {
	return len(q.Options) > 0
}
