package problemgen

import "errors"

var (
	// ErrInvalidOptionCount is returned for option counts other than 4 or 6.
	ErrInvalidOptionCount = errors.New("option count must be 4 or 6")

	// ErrInvalidProduct is returned when the correct value is not positive.
	ErrInvalidProduct = errors.New("correct value must be positive")
)

// NoPosition means no previous option set exists.
const NoPosition = -1

// ChoiceTracker remembers where the correct option was last shown.
type ChoiceTracker struct {
	last int
}

// NewChoiceTracker returns a tracker with no previous position.
func NewChoiceTracker() *ChoiceTracker {
	return &ChoiceTracker{last: NoPosition}
}

// Last returns the previous correct position, or NoPosition.
func (t *ChoiceTracker) Last() int {
	return t.last
}

// Set records the correct position of the option set just shown.
func (t *ChoiceTracker) Set(pos int) {
	t.last = pos
}

// Reset forgets the previous position.
func (t *ChoiceTracker) Reset() {
	t.last = NoPosition
}

// Options builds count distinct values containing correct, shuffled so that
// correct does not land on lastCorrectPos. Distractors lie within Spread of
// correct and are never below 1. It returns the values and the index of
// correct.
func (g *Generator) Options(correct, count, lastCorrectPos int) ([]int, int, error) {
	if count != 4 && count != 6 {
		return nil, NoPosition, ErrInvalidOptionCount
	}
	if correct < 1 {
		return nil, NoPosition, ErrInvalidProduct
	}

	spread := max(g.cfg.Spread, count-1)
	opts := make([]int, 0, count)
	opts = append(opts, correct)
	seen := map[int]bool{correct: true}
	for len(opts) < count {
		candidate := max(1, correct+g.rng.IntN(2*spread+1)-spread)
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		opts = append(opts, candidate)
	}

	pos := g.shuffle(opts, correct)
	for lastCorrectPos >= 0 && lastCorrectPos < count && pos == lastCorrectPos {
		pos = g.shuffle(opts, correct)
	}
	return opts, pos, nil
}

// shuffle permutes values in place (Fisher-Yates) and returns the index of
// correct.
func (g *Generator) shuffle(values []int, correct int) int {
	for i := len(values) - 1; i > 0; i-- {
		j := g.rng.IntN(i + 1)
		values[i], values[j] = values[j], values[i]
	}
	for i, v := range values {
		if v == correct {
			return i
		}
	}
	return NoPosition
}
