package phase2

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ehrlich-b/twophase/internal/puzzle/cube4x4"
)

func TestSolvedPatternIsAccepted(t *testing.T) {
	pz := New()
	solved := pz.DefaultPattern()
	require.Equal(t, 0, solved.EP)

	acceptor := NewAcceptor()
	require.True(t, acceptor.Accept(solved))
}

func TestCoord84IsWithinRange(t *testing.T) {
	pz := New()
	p := pz.DefaultPattern()
	require.GreaterOrEqual(t, p.C84, 0)
	require.Less(t, p.C84, 35)
}

func TestCoord168IsWithinRange(t *testing.T) {
	pz := New()
	p := pz.DefaultPattern()
	require.GreaterOrEqual(t, p.C168, 0)
	require.Less(t, p.C168, 12870)
}

func TestPruningTableDistanceZeroAtSolved(t *testing.T) {
	pz := New()
	table := BuildPruningTable(pz, cube4x4.Phase1Generators(), 2)
	require.EqualValues(t, 0, table.Distance(pz.DefaultPattern()))
}

func TestPruningTableDistanceZeroAtEveryAcceptedSeed(t *testing.T) {
	pz := New()
	table := BuildPruningTable(pz, cube4x4.Phase1Generators(), 1)
	for _, seed := range acceptedSeeds(pz) {
		require.EqualValues(t, 0, table.Distance(seed))
	}
}

func TestAcceptedSeedsAllSatisfyAccept(t *testing.T) {
	pz := New()
	acceptor := NewAcceptor()
	for _, seed := range acceptedSeeds(pz) {
		require.True(t, acceptor.Accept(seed))
	}
}

func TestRankSubsetRoundTrips(t *testing.T) {
	chosen := []int{1, 3, 4, 6}
	rank := rankSubset(8, chosen)
	back := unrankSubset(8, 4, rank)
	require.Equal(t, chosen, back)
}

func TestPermutationParityOfIdentityIsEven(t *testing.T) {
	require.Equal(t, 0, permutationParity([]int{0, 1, 2, 3}))
	require.Equal(t, 1, permutationParity([]int{1, 0, 2, 3}))
}

func TestWingPairsConsistentAtSolved(t *testing.T) {
	pz := New()
	solved := pz.DefaultPattern()
	acceptor := NewAcceptor()
	require.True(t, acceptor.wingPairsConsistent(solved))
}

func TestWingPairsRejectsDisagreeingPair(t *testing.T) {
	pz := New()
	solved := pz.DefaultPattern()
	perm := append([]uint8{}, solved.Full.Orbits[1].Permutation...)
	// Swap pair 0's low slot with pair 1's high slot: position 0 (a "low"
	// role) now holds an odd ("high") piece, disagreeing with position 1,
	// which still holds its own high piece.
	perm[0], perm[3] = perm[3], perm[0]
	solved.Full.Orbits[1].Permutation = perm

	acceptor := NewAcceptor()
	require.False(t, acceptor.wingPairsConsistent(solved))
}
