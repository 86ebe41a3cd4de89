package scramble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ehrlich-b/twophase/internal/puzzle"
)

func TestRandomPattern3x3x3HasMatchingParity(t *testing.T) {
	p := RandomPattern3x3x3()
	cp := permutationParity(p.Orbits[0].Permutation)
	ep := permutationParity(p.Orbits[1].Permutation)
	require.Equal(t, cp, ep)
}

func TestRandomPattern3x3x3OrientationSumsAreValid(t *testing.T) {
	p := RandomPattern3x3x3()
	coSum := 0
	for _, o := range p.Orbits[0].Orientation {
		coSum += int(o)
	}
	require.Equal(t, 0, coSum%3)

	eoSum := 0
	for _, o := range p.Orbits[1].Orientation {
		eoSum += int(o)
	}
	require.Equal(t, 0, eoSum%2)
}

func TestInvertAlgReversesAndNegates(t *testing.T) {
	moves, err := puzzle.ParseMoves("R U R'")
	require.NoError(t, err)
	inv := invertAlg(moves)
	require.Equal(t, "R U' R'", puzzle.FormatMoves(inv))
}

func TestTwizzleLinkEscapesAlg(t *testing.T) {
	link := TwizzleLink("3x3x3", "R U R'")
	require.True(t, strings.HasPrefix(link, "https://alg.cubing.net/?"))
	require.Contains(t, link, "alg=R+U+R%27")
}

func TestRandomPattern4x4x4WingPairsStayPaired(t *testing.T) {
	p := RandomPattern4x4x4()
	for i := 0; i < 12; i++ {
		a, b := p.Orbits[1].Permutation[2*i], p.Orbits[1].Permutation[2*i+1]
		require.Equal(t, a/2, b/2)
	}
}

func TestScrambleFMCIsSandwichedInRUF(t *testing.T) {
	tp, err := NewTwoPhase(nil)
	require.NoError(t, err)
	moves, err := tp.ScrambleFMC()
	require.NoError(t, err)

	sandwich, err := puzzle.ParseMoves("R' U' F")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(moves), 2*len(sandwich))
	require.Equal(t, sandwich, moves[:len(sandwich)])
	require.Equal(t, sandwich, moves[len(moves)-len(sandwich):])

	inner := moves[len(sandwich) : len(moves)-len(sandwich)]
	if len(inner) > 0 {
		require.NotEqual(t, "F", inner[0].Quantum.Family)
		require.NotEqual(t, "B", inner[0].Quantum.Family)
		last := inner[len(inner)-1]
		require.NotEqual(t, "R", last.Quantum.Family)
		require.NotEqual(t, "L", last.Quantum.Family)
	}
}

func TestScramble3x3x3BLDAppendsKnownRotationTokens(t *testing.T) {
	allowedTokens := map[string]bool{}
	for _, p := range bldRotationPrefixes {
		if p != "" {
			allowedTokens[p] = true
		}
	}
	for _, s := range bldRotationSuffixes {
		if s != "" {
			allowedTokens[s] = true
		}
	}

	alg, err := Scramble3x3x3BLD()
	require.NoError(t, err)

	// Every token is either a 3x3x3 face move (the underlying random-state
	// scramble) or one of the recognized BLD rotation tokens; at most two
	// trailing tokens may be rotations.
	rotationCount := 0
	for _, tok := range strings.Fields(alg) {
		if allowedTokens[tok] {
			rotationCount++
			continue
		}
		_, err := puzzle.ParseMove(tok)
		require.NoError(t, err, "token %q is neither a face move nor a rotation", tok)
	}
	require.LessOrEqual(t, rotationCount, 2)
}
