package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ehrlich-b/twophase/internal/puzzle"
	"github.com/ehrlich-b/twophase/internal/puzzle/cube3x3"
)

func newPhase1Search(t *testing.T) *IDFSearch[puzzle.Pattern, puzzle.Transformation] {
	t.Helper()
	pz := cube3x3.New()
	s, err := NewIDFSearch[puzzle.Pattern, puzzle.Transformation](pz, oneMovePerQuantum(), HandMetric, false, nil)
	require.NoError(t, err)
	return s
}

// TestSearchSolvedToSolvedYieldsEmptyAlg checks that the solver applied to
// the solved pattern yields the empty algorithm.
func TestSearchSolvedToSolvedYieldsEmptyAlg(t *testing.T) {
	pz := cube3x3.New()
	s := newPhase1Search(t)
	solved := pz.DefaultPattern()

	it := s.Search(solved, solved, IndividualSearchOptions{MinDepth: 0, MaxDepth: 0, HasMax: true, MinNumSolutions: 1})
	defer it.Close()
	sol, ok := it.Next()
	require.True(t, ok)
	require.Empty(t, sol)
}

// TestSearchMaxDepthZeroOnlyAcceptsAlreadySolved checks that max_depth=0
// yields a solution iff start == target.
func TestSearchMaxDepthZeroOnlyAcceptsAlreadySolved(t *testing.T) {
	pz := cube3x3.New()
	s := newPhase1Search(t)
	u, err := pz.TransformationFromMove(puzzle.NewMove("U", 1))
	require.NoError(t, err)
	scrambled := pz.Apply(pz.DefaultPattern(), u)

	it := s.Search(scrambled, pz.DefaultPattern(), IndividualSearchOptions{MinDepth: 0, MaxDepth: 0, HasMax: true})
	defer it.Close()
	_, ok := it.Next()
	require.False(t, ok)
}

// TestSearchUInverseFindsUPrime checks that, for pattern = apply(solved,
// U), the search returns U' as a one-move solution back to solved.
func TestSearchUInverseFindsUPrime(t *testing.T) {
	pz := cube3x3.New()
	s := newPhase1Search(t)
	u, err := pz.TransformationFromMove(puzzle.NewMove("U", 1))
	require.NoError(t, err)
	scrambled := pz.Apply(pz.DefaultPattern(), u)

	it := s.Search(scrambled, pz.DefaultPattern(), IndividualSearchOptions{MinDepth: 0, MaxDepth: 1, HasMax: true, MinNumSolutions: 1})
	defer it.Close()
	sol, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, "U'", puzzle.FormatMoves(sol))
}

// TestSearchAllDisallowedInitialQuantaYieldsNothing checks that
// disallowed_initial_quanta = all_quanta yields no solutions at depth >= 1.
func TestSearchAllDisallowedInitialQuantaYieldsNothing(t *testing.T) {
	pz := cube3x3.New()
	s := newPhase1Search(t)
	all := map[string]bool{}
	for _, face := range []string{"U", "D", "L", "R", "F", "B"} {
		all[face] = true
	}

	scrambled := pz.DefaultPattern()
	it := s.Search(scrambled, pz.DefaultPattern(), IndividualSearchOptions{
		MinDepth: 1, MaxDepth: 2, HasMax: true,
		DisallowedInitialQuanta: all,
	})
	defer it.Close()
	_, ok := it.Next()
	require.False(t, ok)
}

// TestSearchRespectsMinNumSolutions checks that the iterator stops after
// the requested number of hits rather than exhausting the whole depth.
func TestSearchRespectsMinNumSolutions(t *testing.T) {
	pz := cube3x3.New()
	s := newPhase1Search(t)
	solved := pz.DefaultPattern()

	it := s.Search(solved, solved, IndividualSearchOptions{MinDepth: 0, MaxDepth: 4, HasMax: true, MinNumSolutions: 1})
	defer it.Close()
	_, ok := it.Next()
	require.True(t, ok)
	_, ok = it.Next()
	require.False(t, ok, "the search must end after MinNumSolutions hits")
}

// TestSearchDisallowedFinalQuantaRejectsLastMove exercises the
// disallowed-final-quanta rule used by FMC phase 2.
func TestSearchDisallowedFinalQuantaRejectsLastMove(t *testing.T) {
	pz := cube3x3.New()
	s := newPhase1Search(t)
	u, err := pz.TransformationFromMove(puzzle.NewMove("U", 1))
	require.NoError(t, err)
	scrambled := pz.Apply(pz.DefaultPattern(), u)

	it := s.Search(scrambled, pz.DefaultPattern(), IndividualSearchOptions{
		MinDepth: 0, MaxDepth: 1, HasMax: true, MinNumSolutions: 1,
		DisallowedFinalQuanta: map[string]bool{"U": true},
	})
	defer it.Close()
	_, ok := it.Next()
	require.False(t, ok, "the only depth-1 solution ends in U, which is disallowed")
}
