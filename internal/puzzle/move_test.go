package puzzle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMoveRoundTrip(t *testing.T) {
	cases := []string{"R", "R2", "R'", "Uw", "Uw2", "Uw'", "R3'"}
	for _, notation := range cases {
		m, err := ParseMove(notation)
		require.NoError(t, err, notation)
		require.Equal(t, notation, m.String())
	}
}

func TestParseMoveRejectsZeroAmount(t *testing.T) {
	_, err := ParseMove("R0")
	require.Error(t, err)
}

func TestParseMoveRejectsEmpty(t *testing.T) {
	_, err := ParseMove("  ")
	require.Error(t, err)
}

func TestParseMovesSequence(t *testing.T) {
	moves, err := ParseMoves("R U R' U'")
	require.NoError(t, err)
	require.Len(t, moves, 4)
	require.Equal(t, "R U R' U'", FormatMoves(moves))
}

func TestMoveInvert(t *testing.T) {
	m, err := ParseMove("R2")
	require.NoError(t, err)
	require.Equal(t, "R2'", m.Invert().String())
}
