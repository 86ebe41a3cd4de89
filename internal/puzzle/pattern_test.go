package puzzle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testOrbits() []OrbitDef {
	return []OrbitDef{
		{Name: "CORNERS", NumPieces: 4, OrientationModulo: 3},
	}
}

func TestComposeIdentityIsNoOp(t *testing.T) {
	defs := testOrbits()
	id := IdentityTransformation(defs)
	p := DefaultPattern(defs)
	result := Apply(defs, p, id)
	require.True(t, PatternEqual(p, result))
}

func TestInvertUndoesTransformation(t *testing.T) {
	defs := testOrbits()
	t1 := Transformation{Orbits: []OrbitState{
		{Permutation: []uint8{1, 2, 3, 0}, Orientation: []uint8{1, 0, 2, 0}},
	}}
	inv := Invert(defs, t1)
	composed := Compose(defs, t1, inv)
	require.True(t, TransformationEqual(composed, IdentityTransformation(defs)))
}

func TestPowNegativeIsInverse(t *testing.T) {
	defs := testOrbits()
	t1 := Transformation{Orbits: []OrbitState{
		{Permutation: []uint8{1, 2, 3, 0}, Orientation: []uint8{0, 0, 0, 0}},
	}}
	require.True(t, TransformationEqual(Pow(defs, t1, -1), Invert(defs, t1)))
}

func TestPowFourIsIdentityForFourCycle(t *testing.T) {
	defs := testOrbits()
	t1 := Transformation{Orbits: []OrbitState{
		{Permutation: []uint8{1, 2, 3, 0}, Orientation: []uint8{0, 0, 0, 0}},
	}}
	require.True(t, TransformationEqual(Pow(defs, t1, 4), IdentityTransformation(defs)))
}

func TestRemapThroughTargetPreservesOrientation(t *testing.T) {
	defs := testOrbits()
	src := Pattern{Orbits: []OrbitState{
		{Permutation: []uint8{2, 0, 1, 3}, Orientation: []uint8{1, 2, 0, 0}},
	}}
	target := Pattern{Orbits: []OrbitState{
		{Permutation: []uint8{3, 2, 1, 0}, Orientation: []uint8{0, 0, 0, 0}},
	}}
	remapped := RemapThroughTarget(defs, src, target)
	require.Equal(t, src.Orbits[0].Orientation, remapped.Orbits[0].Orientation)
}

func TestClonePatternIsIndependent(t *testing.T) {
	defs := testOrbits()
	p := DefaultPattern(defs)
	clone := ClonePattern(p)
	clone.Orbits[0].Permutation[0] = 3
	require.NotEqual(t, p.Orbits[0].Permutation[0], clone.Orbits[0].Permutation[0])
}
