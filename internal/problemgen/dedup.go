package problemgen

// UsedSet records the facts already asked in a session for the active table
// filter.
type UsedSet struct {
	facts map[Fact]struct{}
}

// NewUsedSet returns an empty set.
func NewUsedSet() *UsedSet {
	return &UsedSet{facts: make(map[Fact]struct{})}
}

// Has reports whether f was already asked.
func (u *UsedSet) Has(f Fact) bool {
	_, ok := u.facts[f]
	return ok
}

// Add marks f as asked.
func (u *UsedSet) Add(f Fact) {
	u.facts[f] = struct{}{}
}

// Len returns the number of facts asked.
func (u *UsedSet) Len() int {
	return len(u.facts)
}

// Reset forgets every asked fact.
func (u *UsedSet) Reset() {
	clear(u.facts)
}
