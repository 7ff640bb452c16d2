package corr

// Store accumulates Correspondences for the duration of a single solve and
// derives the CorrPair view the residual kernel reads.
type Store struct {
	items []Correspondence
}

// Reserve pre-allocates capacity for n correspondences. It is a hint, not a
// contract; Add never fails because capacity ran out.
func (s *Store) Reserve(n int) {
	if cap(s.items) >= n {
		return
	}
	grown := make([]Correspondence, len(s.items), n)
	copy(grown, s.items)
	s.items = grown
}

// Clear empties the store, retaining its backing array.
func (s *Store) Clear() {
	s.items = s.items[:0]
}

// Add appends a correspondence.
func (s *Store) Add(c Correspondence) {
	s.items = append(s.items, c)
}

// Len returns the number of correspondences currently held.
func (s *Store) Len() int { return len(s.items) }

// Items returns the correspondences backing the store's pairs, in the same
// disjoint-consecutive order Pairs reads them in (items[2i], items[2i+1]
// become Pairs()[i]; a trailing odd item, if any, is included here but has
// no corresponding pair). Callers that need to relate an inlier pair back
// to its original correspondences — translation recovery, diagnostics — use
// this alongside Pairs rather than duplicating the store's internal state.
func (s *Store) Items() []Correspondence {
	out := make([]Correspondence, len(s.items))
	copy(out, s.items)

	return out
}

// Pairs builds the CorrPair view over the current correspondences: disjoint
// consecutive correspondences are paired (index 0 with 1, 2 with 3, …), an
// odd trailing item is discarded, yielding exactly ⌊N/2⌋ pairs. The returned
// slice is a fresh materialization; callers should build it once per solve
// and share it across regions.
func (s *Store) Pairs() []Pair {
	n := len(s.items) / 2
	if n == 0 {
		return nil
	}
	pairs := make([]Pair, n)
	for i := 0; i < n; i++ {
		pairs[i] = makePair(s.items[2*i], s.items[2*i+1])
	}

	return pairs
}
