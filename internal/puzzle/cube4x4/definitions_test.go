package cube4x4

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ehrlich-b/twophase/internal/puzzle"
)

func TestFourQuarterTurnsIsIdentityForEveryFamily(t *testing.T) {
	pz := New()
	for family := range quantumMoves() {
		m := puzzle.NewMove(family, 1)
		tr, err := pz.TransformationFromMove(m)
		require.NoError(t, err)

		p := pz.DefaultPattern()
		for i := 0; i < 4; i++ {
			p = pz.Apply(p, tr)
		}
		require.True(t, puzzle.PatternEqual(p, pz.DefaultPattern()), family)
	}
}

func TestWideAndOuterShareCornerEffect(t *testing.T) {
	pz := New()
	outer, err := pz.TransformationFromMove(puzzle.NewMove("R", 1))
	require.NoError(t, err)
	wide, err := pz.TransformationFromMove(puzzle.NewMove("Rw", 1))
	require.NoError(t, err)
	require.Equal(t, outer.Orbits[0], wide.Orbits[0], "corners must move identically under R and Rw")
}

func TestWideTouchesMoreWingsThanOuter(t *testing.T) {
	pz := New()
	outer, err := pz.TransformationFromMove(puzzle.NewMove("U", 1))
	require.NoError(t, err)
	wide, err := pz.TransformationFromMove(puzzle.NewMove("Uw", 1))
	require.NoError(t, err)

	outerMoved, wideMoved := 0, 0
	for i := range outer.Orbits[1].Permutation {
		if outer.Orbits[1].Permutation[i] != uint8(i) {
			outerMoved++
		}
		if wide.Orbits[1].Permutation[i] != uint8(i) {
			wideMoved++
		}
	}
	require.Greater(t, wideMoved, outerMoved)
}

func TestPhase2GeneratorsPreserveWingPairing(t *testing.T) {
	pz := New()
	p := pz.DefaultPattern()
	for _, m := range Phase2Generators() {
		tr, err := pz.TransformationFromMove(m)
		require.NoError(t, err)
		p = pz.Apply(p, tr)
	}
	for i := 0; i < numWingPairs; i++ {
		a, b := p.Orbits[1].Permutation[2*i], p.Orbits[1].Permutation[2*i+1]
		require.True(t, a/2 == b/2, "wing pair %d members must travel together under phase-2 generators", i)
	}
}
