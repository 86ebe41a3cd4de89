package scramble

import (
	"fmt"

	"github.com/ehrlich-b/twophase/internal/puzzle"
	"github.com/ehrlich-b/twophase/internal/puzzle/cube4x4"
	"github.com/ehrlich-b/twophase/internal/puzzle/cube4x4/phase2"
	"github.com/ehrlich-b/twophase/internal/search"
)

// phase2PruningDepth bounds the multi-source BFS
// internal/puzzle/cube4x4/phase2.BuildPruningTable runs from every accepted
// center layout. Cells beyond this depth read as "unreached" and never
// prune a branch; the table is filled by replaying moves against the full
// lifted pattern rather than a precomputed dense coordinate table (see
// DESIGN.md), so depth stays modest.
const phase2PruningDepth = 4

// FourPhase is the 4x4x4 scramble driver. The classical four-phase
// reduction (center pairing, wing pairing, parity-safe reduction, 3x3x3
// finish) collapses here to two IDFS stages: a wide-generator reduction
// stage searched over the coordinate puzzle and accepted by
// phase2.Acceptor, pruned by a BFS distance table, and a restricted-
// generator finishing stage over the full pattern that solves the reduced
// cube to identity (see DESIGN.md for why four named phases became two
// staged searches).
type FourPhase struct {
	puzzle   *puzzle.CubicPuzzle
	reduce   *search.IDFSearch[phase2.Pattern, puzzle.Transformation]
	finish   *search.IDFSearch[puzzle.Pattern, puzzle.Transformation]
	trivial  *search.IDFSearch[puzzle.Pattern, puzzle.Transformation]
	acceptor *phase2.Acceptor
	logger   *search.SearchLogger
}

// NewFourPhase builds both IDFS stages, plus the trivial-filter search, once
// for reuse.
func NewFourPhase(logger *search.SearchLogger) (*FourPhase, error) {
	pz := cube4x4.New()
	coordPz := phase2.New()

	reduce, err := search.NewIDFSearch[phase2.Pattern, puzzle.Transformation](coordPz, cube4x4.Phase1Generators(), search.HandMetric, true, logger)
	if err != nil {
		return nil, fmt.Errorf("scramble: building 4x4x4 reduction stage: %w", err)
	}
	pruning := phase2.BuildPruningTable(coordPz, cube4x4.Phase1Generators(), phase2PruningDepth)
	reduce.SetHeuristic(pruning.Heuristic)

	finish, err := search.NewIDFSearch[puzzle.Pattern, puzzle.Transformation](pz, cube4x4.Phase2Generators(), search.HandMetric, true, logger)
	if err != nil {
		return nil, fmt.Errorf("scramble: building 4x4x4 finishing stage: %w", err)
	}
	trivial, err := search.NewIDFSearch[puzzle.Pattern, puzzle.Transformation](pz, cube4x4.DefinitionMoves(), search.QuantumMetric, false, nil)
	if err != nil {
		return nil, fmt.Errorf("scramble: building 4x4x4 trivial-filter search: %w", err)
	}
	return &FourPhase{puzzle: pz, reduce: reduce, finish: finish, trivial: trivial, acceptor: phase2.NewAcceptor(), logger: logger}, nil
}

// isTriviallySolved reports whether p is solvable in maxMoves moves or
// fewer, used to reject scrambles that are too easy to be useful.
func (fp *FourPhase) isTriviallySolved(p puzzle.Pattern, maxMoves int) bool {
	if puzzle.PatternEqual(p, fp.puzzle.DefaultPattern()) {
		return true
	}
	it := fp.trivial.Search(p, fp.puzzle.DefaultPattern(), search.IndividualSearchOptions{
		MinDepth: 0, MaxDepth: maxMoves, HasMax: true, MinNumSolutions: 1,
	})
	defer it.Close()
	_, found := it.Next()
	return found
}

func (fp *FourPhase) solve(start puzzle.Pattern, maxDepthEach int) ([]puzzle.Move, error) {
	identity := fp.puzzle.DefaultPattern()

	itReduce := fp.reduce.SearchByPredicate(phase2.Lift(start), search.IndividualSearchOptions{
		MinDepth: 0, MaxDepth: maxDepthEach, HasMax: true, MinNumSolutions: 1,
	}, func(p phase2.Pattern, _ []puzzle.Move) bool {
		return fp.acceptor.Accept(p)
	})
	reduceMoves, ok := itReduce.Next()
	itReduce.Close()
	if !ok {
		if fp.logger != nil {
			counts := fp.acceptor.Counts()
			fp.logger.Infof("reduction stage exhausted", map[string]any{
				"centerLayoutRejections": counts.CenterLayout,
				"wingParityRejections":   counts.WingParity,
				"wingPairingRejections":  counts.WingPairing,
			})
		}
		return nil, fmt.Errorf("scramble: 4x4x4 reduction found no solution within depth %d", maxDepthEach)
	}

	mid := start
	for _, m := range reduceMoves {
		t, err := fp.puzzle.TransformationFromMove(m)
		if err != nil {
			return nil, err
		}
		mid = fp.puzzle.Apply(mid, t)
	}

	itFinish := fp.finish.Search(mid, identity, search.IndividualSearchOptions{
		MinDepth: 0, MaxDepth: maxDepthEach, HasMax: true, MinNumSolutions: 1,
	})
	finishMoves, ok := itFinish.Next()
	itFinish.Close()
	if !ok {
		return nil, fmt.Errorf("scramble: 4x4x4 finishing stage found no solution within depth %d", maxDepthEach)
	}

	return append(append([]puzzle.Move{}, reduceMoves...), finishMoves...), nil
}

// Scramble produces one random-state 4x4x4 scramble.
func (fp *FourPhase) Scramble() ([]puzzle.Move, error) {
	for {
		pattern := RandomPattern4x4x4()
		if fp.isTriviallySolved(pattern, 2) {
			continue
		}
		solution, err := fp.solve(pattern, 10)
		if err != nil {
			return nil, err
		}
		return invertAlg(solution), nil
	}
}
