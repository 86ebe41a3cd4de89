package search

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/ehrlich-b/twophase/internal/puzzle"
)

// CanonicalFSM prunes move sequences that are redundant under two
// equivalences: the same move class twice in a row, and commuting move
// classes used out of canonical (ascending) order. It is a pure function
// of move-class commutation, independent of the pattern type, so the same
// instance can be reused across puzzle parameterizations that share a
// move-class layout, such as transplanting the 4x4x4 phase-2 generators'
// FSM onto the coordinate puzzle.
type CanonicalFSM struct {
	numClasses int
	commutes   [][]bool
}

// canonicalState is an FSM state: the set of move classes used since the
// last class that doesn't commute with everything seen so far.
type canonicalState = *bitset.BitSet

// NewCanonicalFSM builds the commutation matrix from each move class's
// representative transformation and derives the FSM from it.
func NewCanonicalFSM[P any, T any](pz puzzle.Puzzle[P, T], generators *SearchGenerators[T]) *CanonicalFSM {
	n := len(generators.Grouped)
	commutes := make([][]bool, n)
	for i := range commutes {
		commutes[i] = make([]bool, n)
	}
	reps := make([]T, n)
	for i, group := range generators.Grouped {
		reps[i] = group[0].Transformation
	}
	for a := 0; a < n; a++ {
		for b := a; b < n; b++ {
			ab := pz.Compose(reps[a], reps[b])
			ba := pz.Compose(reps[b], reps[a])
			c := pz.TransformationEqual(ab, ba)
			commutes[a][b] = c
			commutes[b][a] = c
		}
	}
	return &CanonicalFSM{numClasses: n, commutes: commutes}
}

// NumClasses returns the number of move classes the FSM was built from.
func (f *CanonicalFSM) NumClasses() int { return f.numClasses }

// StartState is the FSM's initial state: the empty bitmask, accepting any
// class.
func (f *CanonicalFSM) StartState() canonicalState {
	return bitset.New(uint(f.numClasses))
}

// Next transitions the FSM on move class `class` from `state`. It returns
// ok=false when the transition is redundant: `class` is already present in
// the history, or a still-relevant commuting class with a lower index would
// make this ordering non-canonical.
func (f *CanonicalFSM) Next(state canonicalState, class int) (next canonicalState, ok bool) {
	if state.Test(uint(class)) {
		return nil, false
	}
	for i, e := state.NextSet(0); e; i, e = state.NextSet(i + 1) {
		b := int(i)
		if f.commutes[b][class] && class < b {
			return nil, false
		}
	}
	next = bitset.New(uint(f.numClasses))
	for i, e := state.NextSet(0); e; i, e = state.NextSet(i + 1) {
		b := int(i)
		if f.commutes[b][class] {
			next.Set(i)
		}
	}
	next.Set(uint(class))
	return next, true
}
