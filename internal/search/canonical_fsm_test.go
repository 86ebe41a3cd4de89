package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ehrlich-b/twophase/internal/puzzle"
	"github.com/ehrlich-b/twophase/internal/puzzle/cube3x3"
)

func buildFSM(t *testing.T) (*CanonicalFSM, *SearchGenerators[puzzle.Transformation], map[string]int) {
	t.Helper()
	pz := cube3x3.New()
	gens, err := NewSearchGenerators[puzzle.Pattern, puzzle.Transformation](pz, oneMovePerQuantum(), HandMetric, false)
	require.NoError(t, err)
	fsm := NewCanonicalFSM[puzzle.Pattern, puzzle.Transformation](pz, gens)

	classOf := map[string]int{}
	for i, group := range gens.Grouped {
		classOf[group[0].Move.Quantum.Family] = i
	}
	return fsm, gens, classOf
}

func TestCanonicalFSMRejectsImmediateRepeat(t *testing.T) {
	fsm, _, classOf := buildFSM(t)
	state := fsm.StartState()
	u := classOf["U"]

	state, ok := fsm.Next(state, u)
	require.True(t, ok)
	_, ok = fsm.Next(state, u)
	require.False(t, ok, "U U must be rejected as redundant")
}

func TestCanonicalFSMRejectsNonCanonicalCommutingOrder(t *testing.T) {
	fsm, _, classOf := buildFSM(t)
	u, d := classOf["U"], classOf["D"]
	require.NotEqual(t, u, d)

	// U and D commute on 3x3x3 (opposite faces); whichever index is lower
	// must come first.
	lo, hi := u, d
	if hi < lo {
		lo, hi = hi, lo
	}

	state := fsm.StartState()
	state, ok := fsm.Next(state, hi)
	require.True(t, ok)
	_, ok = fsm.Next(state, lo)
	require.False(t, ok, "commuting classes used out of ascending order must be rejected")
}

func TestCanonicalFSMAcceptsCanonicalCommutingOrder(t *testing.T) {
	fsm, _, classOf := buildFSM(t)
	u, d := classOf["U"], classOf["D"]
	lo, hi := u, d
	if hi < lo {
		lo, hi = hi, lo
	}

	state := fsm.StartState()
	state, ok := fsm.Next(state, lo)
	require.True(t, ok)
	_, ok = fsm.Next(state, hi)
	require.True(t, ok, "ascending order among commuting classes must be accepted")
}

func TestCanonicalFSMAcceptsAnyFirstMove(t *testing.T) {
	fsm, gens, _ := buildFSM(t)
	state := fsm.StartState()
	for class := range gens.Grouped {
		_, ok := fsm.Next(state, class)
		require.True(t, ok, "START must accept any class")
	}
}

func TestCanonicalFSMAcceptsRepeatAfterNonCommutingClass(t *testing.T) {
	fsm, _, classOf := buildFSM(t)
	u, r := classOf["U"], classOf["R"]

	state := fsm.StartState()
	state, ok := fsm.Next(state, u)
	require.True(t, ok)
	state, ok = fsm.Next(state, r)
	require.True(t, ok, "non-commuting classes may follow each other in either order")
	_, ok = fsm.Next(state, u)
	require.True(t, ok, "U after a non-commuting class R is not redundant")
}
