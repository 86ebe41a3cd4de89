package cube3x3

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ehrlich-b/twophase/internal/puzzle"
)

func TestFourQuarterTurnsIsIdentity(t *testing.T) {
	pz := New()
	for _, face := range []string{"U", "D", "L", "R", "F", "B"} {
		t.Run(face, func(t *testing.T) {
			m := puzzle.NewMove(face, 1)
			tr, err := pz.TransformationFromMove(m)
			require.NoError(t, err)

			p := pz.DefaultPattern()
			for i := 0; i < 4; i++ {
				p = pz.Apply(p, tr)
			}
			require.True(t, puzzle.PatternEqual(p, pz.DefaultPattern()), "%s^4 should return to solved", face)
		})
	}
}

func TestHalfTurnIsTwoQuarterTurns(t *testing.T) {
	pz := New()
	one, err := pz.TransformationFromMove(puzzle.NewMove("R", 1))
	require.NoError(t, err)
	two, err := pz.TransformationFromMove(puzzle.NewMove("R", 2))
	require.NoError(t, err)

	want := pz.Compose(one, one)
	require.True(t, puzzle.TransformationEqual(want, two))
}

func TestInverseUndoesMove(t *testing.T) {
	pz := New()
	for _, face := range []string{"U", "D", "L", "R", "F", "B"} {
		fwd, err := pz.TransformationFromMove(puzzle.NewMove(face, 1))
		require.NoError(t, err)
		inv, err := pz.TransformationFromMove(puzzle.NewMove(face, -1))
		require.NoError(t, err)

		p := pz.DefaultPattern()
		p = pz.Apply(p, fwd)
		p = pz.Apply(p, inv)
		require.True(t, puzzle.PatternEqual(p, pz.DefaultPattern()))
	}
}

func TestUnknownMoveIsMoveError(t *testing.T) {
	pz := New()
	_, err := pz.TransformationFromMove(puzzle.NewMove("Uw", 1))
	require.Error(t, err)
	var moveErr *puzzle.MoveError
	require.ErrorAs(t, err, &moveErr)
}

func TestG1TargetStartsSolved(t *testing.T) {
	pz := New()
	require.True(t, IsPhase1Done(pz.DefaultPattern()))
}

func TestMoveBreaksCornerOrientation(t *testing.T) {
	pz := New()
	r, err := pz.TransformationFromMove(puzzle.NewMove("R", 1))
	require.NoError(t, err)
	p := pz.Apply(pz.DefaultPattern(), r)
	require.False(t, IsCornerOriented(p))
}

func TestPhase2GeneratorsPreservePhase1Coset(t *testing.T) {
	pz := New()
	p := pz.DefaultPattern()
	for _, m := range Phase2Generators() {
		tr, err := pz.TransformationFromMove(m)
		require.NoError(t, err)
		p = pz.Apply(p, tr)
	}
	require.True(t, IsPhase1Done(p), "phase-2 generators must stay inside G1")
}
