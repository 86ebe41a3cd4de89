package search

import (
	"github.com/ehrlich-b/twophase/internal/puzzle"
)

// AcceptancePredicate is an optional side-effectful callback invoked at
// every depth-0 hit. It may reject a candidate on domain-specific grounds;
// rejections are silent to the caller but may be counted by the predicate
// itself for observability.
type AcceptancePredicate[P any] func(pattern P, candidate []puzzle.Move) bool

// IndividualSearchOptions configures one call to Search.
type IndividualSearchOptions struct {
	MinNumSolutions int // 0 means "no limit"

	MinDepth int  // inclusive
	MaxDepth int  // inclusive; only enforced when HasMax is true
	HasMax   bool // false means unbounded

	DisallowedInitialQuanta map[string]bool
	DisallowedFinalQuanta   map[string]bool
}

// DefaultSearchOptions returns the zero-value defaults: depth window
// [0, unbounded), no disallowed quanta.
func DefaultSearchOptions() IndividualSearchOptions {
	return IndividualSearchOptions{MinDepth: 0}
}

// IDFSearch is an iterative-deepening DFS over a puzzle's patterns, using
// SearchGenerators for move multiples and a CanonicalFSM to prune
// algorithmically-redundant sequences.
type IDFSearch[P any, T any] struct {
	puzzle     puzzle.Puzzle[P, T]
	generators *SearchGenerators[T]
	fsm        *CanonicalFSM
	logger     *SearchLogger
	heuristic  func(P) int
}

// SetHeuristic installs a lower-bound estimator consulted at every
// recursion step: if heuristic(current) exceeds the moves remaining, the
// branch cannot reach an accepted pattern and is pruned unexplored.
// heuristic must never overestimate the true distance from current to the
// nearest pattern this search would accept, or pruning can discard real
// solutions; a table built over a narrower move set than the search itself
// uses is not safe to install here.
func (s *IDFSearch[P, T]) SetHeuristic(h func(P) int) {
	s.heuristic = h
}

// NewIDFSearch builds the search generators and canonical FSM for the given
// move list and returns a reusable search over pz.
func NewIDFSearch[P any, T any](pz puzzle.Puzzle[P, T], moves []puzzle.Move, metric Metric, randomStart bool, logger *SearchLogger) (*IDFSearch[P, T], error) {
	generators, err := NewSearchGenerators[P, T](pz, moves, metric, randomStart)
	if err != nil {
		return nil, err
	}
	fsm := NewCanonicalFSM[P, T](pz, generators)
	return &IDFSearch[P, T]{puzzle: pz, generators: generators, fsm: fsm, logger: logger}, nil
}

// NewIDFSearchWithFSM rebuilds an IDFSearch over a different puzzle
// parameterization while reusing an already-built CanonicalFSM instead of
// rebuilding its commutation tables, e.g. transplanting the 4x4x4 phase-2
// generators' FSM onto the coordinate puzzle.
func NewIDFSearchWithFSM[P any, T any](pz puzzle.Puzzle[P, T], generators *SearchGenerators[T], fsm *CanonicalFSM, logger *SearchLogger) *IDFSearch[P, T] {
	return &IDFSearch[P, T]{puzzle: pz, generators: generators, fsm: fsm, logger: logger}
}

// Generators exposes the search generators, e.g. for building move tables
// that index by the same flat move ordering.
func (s *IDFSearch[P, T]) Generators() *SearchGenerators[T] { return s.generators }

// FSM exposes the canonical FSM, for reuse per NewIDFSearchWithFSM.
func (s *IDFSearch[P, T]) FSM() *CanonicalFSM { return s.fsm }

// Iterator is a restartable lazy sequence of solutions. Go has no
// generator functions, so the search runs on its own goroutine and yields
// through a channel, suspended exactly between successive solutions.
type Iterator struct {
	solutions chan []puzzle.Move
	stop      chan struct{}
}

// Next blocks until another solution is found or the search is exhausted.
func (it *Iterator) Next() ([]puzzle.Move, bool) {
	sol, ok := <-it.solutions
	return sol, ok
}

// Close cancels the underlying search. Safe to call multiple times, and
// safe to skip if the caller drains Next() to exhaustion.
func (it *Iterator) Close() {
	select {
	case <-it.stop:
	default:
		close(it.stop)
	}
}

// Search runs IDFS from `start` toward `target` under opts.
func (s *IDFSearch[P, T]) Search(start, target P, opts IndividualSearchOptions) *Iterator {
	return s.SearchWithAdditionalCheck(start, target, opts, nil)
}

// SearchWithAdditionalCheck is Search with an optional acceptance predicate
// consulted at every depth-0 hit.
func (s *IDFSearch[P, T]) SearchWithAdditionalCheck(start, target P, opts IndividualSearchOptions, predicate AcceptancePredicate[P]) *Iterator {
	t := target
	return s.search(start, &t, opts, predicate)
}

// SearchByPredicate runs IDFS with no fixed target pattern: a depth-0 hit
// is accepted purely on the predicate's say-so. This is how a multi-phase
// driver searches for any pattern satisfying a phase's coset membership
// check rather than one specific pattern.
func (s *IDFSearch[P, T]) SearchByPredicate(start P, opts IndividualSearchOptions, predicate AcceptancePredicate[P]) *Iterator {
	return s.search(start, nil, opts, predicate)
}

func (s *IDFSearch[P, T]) search(start P, target *P, opts IndividualSearchOptions, predicate AcceptancePredicate[P]) *Iterator {
	it := &Iterator{
		solutions: make(chan []puzzle.Move),
		stop:      make(chan struct{}),
	}

	r := &idfsRun[P, T]{
		search:    s,
		target:    target,
		opts:      opts,
		predicate: predicate,
		out:       it.solutions,
		stop:      it.stop,
	}

	go func() {
		defer close(it.solutions)
		maxDepth := opts.MaxDepth
		for depth := opts.MinDepth; !opts.HasMax || depth <= maxDepth; depth++ {
			if s.logger != nil {
				s.logger.Debugf("searching to depth", map[string]any{"depth": depth})
			}
			if !r.recurse(start, s.fsm.StartState(), depth, nil) {
				return // cancelled or solution budget exhausted
			}
		}
	}()

	return it
}

type idfsRun[P any, T any] struct {
	search    *IDFSearch[P, T]
	target    *P
	opts      IndividualSearchOptions
	predicate AcceptancePredicate[P]
	out       chan<- []puzzle.Move
	stop      <-chan struct{}
	found     int
}

// recurse returns false once the caller should stop the whole search
// (cancelled, or the solution budget was reached).
func (r *idfsRun[P, T]) recurse(current P, state canonicalState, remainingDepth int, prefix []puzzle.Move) bool {
	pz := r.search.puzzle

	if h := r.search.heuristic; h != nil && h(current) > remainingDepth {
		return true
	}

	if remainingDepth == 0 {
		if r.target != nil && !pz.PatternEqual(current, *r.target) {
			return true
		}
		if len(prefix) > 0 && r.opts.DisallowedFinalQuanta != nil {
			last := prefix[len(prefix)-1]
			if r.opts.DisallowedFinalQuanta[last.Quantum.Family] {
				return true
			}
		}
		if r.predicate != nil && !r.predicate(current, prefix) {
			return true
		}
		return r.emit(prefix)
	}

	for classIndex, group := range r.search.generators.Grouped {
		nextState, ok := r.search.fsm.Next(state, classIndex)
		if !ok {
			continue
		}
		for _, multiple := range group {
			if len(prefix) == 0 && r.opts.DisallowedInitialQuanta != nil {
				if r.opts.DisallowedInitialQuanta[multiple.Move.Quantum.Family] {
					continue
				}
			}
			nextPattern := pz.Apply(current, multiple.Transformation)
			nextPrefix := append(append([]puzzle.Move{}, prefix...), multiple.Move)
			if !r.recurse(nextPattern, nextState, remainingDepth-1, nextPrefix) {
				return false
			}
		}
	}
	return true
}

func (r *idfsRun[P, T]) emit(prefix []puzzle.Move) bool {
	solution := append([]puzzle.Move{}, prefix...)
	select {
	case r.out <- solution:
	case <-r.stop:
		return false
	}
	r.found++
	if r.opts.MinNumSolutions > 0 && r.found >= r.opts.MinNumSolutions {
		return false
	}
	return true
}
