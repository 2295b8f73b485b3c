package problemgen

// Bounds of the multiplication grid.
const (
	MinTable      = 1
	MaxTable      = 12
	MaxMultiplier = 10

	// FullGridMultiplier extends multipliers to cover the 12 × 12 square.
	FullGridMultiplier = 12
)

// Config controls question generation.
type Config struct {
	// MaxMultiplicand bounds the multiplicand when no table filter is set.
	MaxMultiplicand int

	// MaxMultiplier bounds the multiplier (10, or 12 for the full grid).
	MaxMultiplier int

	// MaxAttempts caps the draws spent looking for an unused fact before
	// the used set is cleared.
	MaxAttempts int

	// Spread is the largest distance between a distractor and the product.
	Spread int
}

// DefaultConfig returns the settings of the multiple-choice quiz: tables
// 1..12, multipliers 1..10.
func DefaultConfig() Config {
	return Config{
		MaxMultiplicand: MaxTable,
		MaxMultiplier:   MaxMultiplier,
		MaxAttempts:     100,
		Spread:          10,
	}
}

// FullGridConfig returns DefaultConfig extended to multipliers 1..12, used by
// the typed quiz and the competition.
func FullGridConfig() Config {
	cfg := DefaultConfig()
	cfg.MaxMultiplier = FullGridMultiplier
	return cfg
}
