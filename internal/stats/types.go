// Package stats aggregates per-fact answer statistics and persists them
// under the "statistics" key.
package stats

import "github.com/tiltwelve/tiltwelve/internal/problemgen"

// Record counts the attempts at a single fact.
type Record struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Percentage returns the rounded success rate of the record.
func (r Record) Percentage() int {
	return percentage(r.Correct, r.Total)
}

// percentage rounds correct/total*100 half-up, returning 0 for no attempts.
func percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*correct + total) / (2 * total)
}

// Row is one line of a per-table statistics view.
type Row struct {
	Fact       problemgen.Fact
	Record     Record
	Percentage int
}

// Attempted reports whether the fact has ever been answered.
func (r Row) Attempted() bool {
	return r.Record.Total > 0
}

// Summary aggregates every fact of one multiplicand.
type Summary struct {
	Table      int
	Correct    int
	Total      int
	Percentage int
}

// Band classifies a success percentage for display.
type Band int

const (
	BandNone Band = iota
	BandWeak
	BandFair
	BandGood
)

// Band thresholds, inclusive.
const (
	GoodThreshold = 70
	FairThreshold = 40
)

// BandFor classifies a row; unattempted facts have no band.
func BandFor(total, pct int) Band {
	switch {
	case total == 0:
		return BandNone
	case pct >= GoodThreshold:
		return BandGood
	case pct >= FairThreshold:
		return BandFair
	default:
		return BandWeak
	}
}

func (b Band) String() string {
	switch b {
	case BandGood:
		return "good"
	case BandFair:
		return "fair"
	case BandWeak:
		return "weak"
	default:
		return "none"
	}
}
