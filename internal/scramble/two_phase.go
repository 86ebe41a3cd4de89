package scramble

import (
	"fmt"

	"github.com/ehrlich-b/twophase/internal/puzzle"
	"github.com/ehrlich-b/twophase/internal/puzzle/cube3x3"
	"github.com/ehrlich-b/twophase/internal/search"
)

// TwoPhase is the 3x3x3 random-state scramble driver: it finds a solution
// to a random pattern via Kociemba's two phases, then inverts the solution
// to produce the scramble a solver would be handed.
type TwoPhase struct {
	puzzle   *puzzle.CubicPuzzle
	phase1   *search.IDFSearch[puzzle.Pattern, puzzle.Transformation]
	phase2   *search.IDFSearch[puzzle.Pattern, puzzle.Transformation]
	trivial  *search.IDFSearch[puzzle.Pattern, puzzle.Transformation]
	logger   *search.SearchLogger
}

// NewTwoPhase builds the phase-1, phase-2 and trivial-filter IDFS searches
// once; the driver is safe to reuse across many scrambles behind a mutex.
func NewTwoPhase(logger *search.SearchLogger) (*TwoPhase, error) {
	pz := cube3x3.New()
	phase1, err := search.NewIDFSearch[puzzle.Pattern, puzzle.Transformation](pz, cube3x3.Phase1Generators(), search.HandMetric, true, logger)
	if err != nil {
		return nil, fmt.Errorf("scramble: building 3x3x3 phase 1: %w", err)
	}
	phase2, err := search.NewIDFSearch[puzzle.Pattern, puzzle.Transformation](pz, cube3x3.Phase2Generators(), search.HandMetric, true, logger)
	if err != nil {
		return nil, fmt.Errorf("scramble: building 3x3x3 phase 2: %w", err)
	}
	trivial, err := search.NewIDFSearch[puzzle.Pattern, puzzle.Transformation](pz, cube3x3.DefinitionMoves(), search.QuantumMetric, false, nil)
	if err != nil {
		return nil, fmt.Errorf("scramble: building 3x3x3 trivial-filter search: %w", err)
	}
	return &TwoPhase{puzzle: pz, phase1: phase1, phase2: phase2, trivial: trivial, logger: logger}, nil
}

// fmcDisallowedInitial and fmcDisallowedFinal constrain the solve (not the
// scramble) so that, once inverted, the resulting inner algorithm never
// opens on a {F,B} quantum nor closes on a {R,L} quantum. Since the
// scramble is the solution inverted and reversed, the inner algorithm's
// first move is the invert of phase 2's last move, and its last move is
// the invert of phase 1's first move, so the constraints applied here are
// swapped relative to the inner algorithm's own rule.
var (
	fmcDisallowedInitial = map[string]bool{"R": true, "L": true}
	fmcDisallowedFinal   = map[string]bool{"F": true, "B": true}
)

// solveOptions bounds one call to solve: FMC threads its disallowed-quanta
// constraints through phase 1 in case phase 2 returns empty, rather than
// deferring the check to the concatenated alg.
type solveOptions struct {
	maxDepthEach      int
	disallowedInitial map[string]bool
	disallowedFinal   map[string]bool
}

// solve finds a full solving algorithm for a random pattern: phase 1 to
// reach the G1 coset, then phase 2 (restricted to generators that preserve
// it) to finish.
func (tp *TwoPhase) solve(start puzzle.Pattern, opts solveOptions) ([]puzzle.Move, error) {
	identity := tp.puzzle.DefaultPattern()
	maxDepthEach := opts.maxDepthEach

	it1 := tp.phase1.SearchByPredicate(start, search.IndividualSearchOptions{
		MinDepth: 0, MaxDepth: maxDepthEach, HasMax: true, MinNumSolutions: 1,
		DisallowedInitialQuanta: opts.disallowedInitial,
		DisallowedFinalQuanta:   opts.disallowedFinal,
	}, func(p puzzle.Pattern, _ []puzzle.Move) bool {
		return cube3x3.IsPhase1Done(p)
	})
	phase1Moves, ok := it1.Next()
	it1.Close()
	if !ok {
		return nil, fmt.Errorf("scramble: phase 1 found no solution within depth %d", maxDepthEach)
	}

	mid := start
	for _, m := range phase1Moves {
		t, err := tp.puzzle.TransformationFromMove(m)
		if err != nil {
			return nil, err
		}
		mid = tp.puzzle.Apply(mid, t)
	}

	it2 := tp.phase2.Search(mid, identity, search.IndividualSearchOptions{
		MinDepth: 0, MaxDepth: maxDepthEach, HasMax: true, MinNumSolutions: 1,
		DisallowedFinalQuanta: opts.disallowedFinal,
	})
	phase2Moves, ok := it2.Next()
	it2.Close()
	if !ok {
		return nil, fmt.Errorf("scramble: phase 2 found no solution within depth %d", maxDepthEach)
	}

	solution := append(append([]puzzle.Move{}, phase1Moves...), phase2Moves...)
	return solution, nil
}

// Scramble produces one random-state 3x3x3 scramble: solve a random
// pattern, then hand back the inverse of that solution, after rejecting
// patterns solvable within 2 moves.
func (tp *TwoPhase) Scramble() ([]puzzle.Move, error) {
	for {
		pattern := RandomPattern3x3x3()
		if tp.isTriviallySolved(pattern, 2) {
			continue
		}
		solution, err := tp.solve(pattern, solveOptions{maxDepthEach: 12})
		if err != nil {
			return nil, err
		}
		return invertAlg(solution), nil
	}
}

// ScrambleFMC produces a 3x3x3 scramble for fewest-moves attempts: the
// inner algorithm is found under the FMC disallowed-quanta constraints,
// then sandwiched with `R' U' F ... R' U' F`.
func (tp *TwoPhase) ScrambleFMC() ([]puzzle.Move, error) {
	for {
		pattern := RandomPattern3x3x3()
		if tp.isTriviallySolved(pattern, 2) {
			continue
		}
		solution, err := tp.solve(pattern, solveOptions{
			maxDepthEach:      12,
			disallowedInitial: fmcDisallowedInitial,
			disallowedFinal:   fmcDisallowedFinal,
		})
		if err != nil {
			return nil, err
		}
		inner := invertAlg(solution)
		sandwich, err := puzzle.ParseMoves("R' U' F")
		if err != nil {
			return nil, err
		}
		out := make([]puzzle.Move, 0, len(sandwich)*2+len(inner))
		out = append(out, sandwich...)
		out = append(out, inner...)
		out = append(out, sandwich...)
		return out, nil
	}
}

// isTriviallySolved reports whether p can be solved in maxMoves moves or
// fewer, used to reject scrambles that are too easy to be useful.
func (tp *TwoPhase) isTriviallySolved(p puzzle.Pattern, maxMoves int) bool {
	if puzzle.PatternEqual(p, tp.puzzle.DefaultPattern()) {
		return true
	}
	it := tp.trivial.Search(p, tp.puzzle.DefaultPattern(), search.IndividualSearchOptions{
		MinDepth: 0, MaxDepth: maxMoves, HasMax: true, MinNumSolutions: 1,
	})
	defer it.Close()
	_, found := it.Next()
	return found
}

func invertAlg(moves []puzzle.Move) []puzzle.Move {
	out := make([]puzzle.Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Invert()
	}
	return out
}
