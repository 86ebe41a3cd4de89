package search

import (
	"math/rand/v2"

	"github.com/ehrlich-b/twophase/internal/puzzle"
)

// Metric selects how move multiples are counted.
type Metric int

const (
	// HandMetric treats each face turn as a single move regardless of amount.
	HandMetric Metric = iota
	// QuantumMetric counts only the base move and its inverse.
	QuantumMetric
)

// maxQuantumOrder bounds the naive order-finding loop, failing loudly
// instead of looping forever if a puzzle's move graph is malformed.
const maxQuantumOrder = 1024

// MoveTransformationInfo pairs a move with its transformation and the
// transformation's inverse. Invariant: Compose(Transformation,
// InverseTransformation) is the identity.
type MoveTransformationInfo[T any] struct {
	Move                  puzzle.Move
	Transformation        T
	InverseTransformation T
}

// SearchGenerators holds the grouped (by move class) and flat move lists a
// search runs over.
type SearchGenerators[T any] struct {
	Grouped [][]MoveTransformationInfo[T]
	Flat    []MoveTransformationInfo[T]
}

// NewSearchGenerators builds a SearchGenerators from a puzzle's move list
// under the given metric: quantum order is found by naive repeated
// squaring-free iteration, Hand metric enumerates
// every non-identity multiple (renumbered into the symmetric range around
// zero), Quantum metric keeps only the move and, if distinct, its inverse.
func NewSearchGenerators[P any, T any](pz puzzle.Puzzle[P, T], moves []puzzle.Move, metric Metric, randomStart bool) (*SearchGenerators[T], error) {
	if len(moves) == 0 {
		return nil, &SearchError{Description: "generator list is empty"}
	}

	seenQuantum := map[string]puzzle.Move{}
	var grouped [][]MoveTransformationInfo[T]
	var flat []MoveTransformationInfo[T]

	for _, m := range moves {
		if m.Amount == 0 {
			return nil, &SearchError{Description: "move " + m.String() + " has a zero amount"}
		}
		if _, seen := seenQuantum[m.Quantum.Family]; seen {
			// Non-fatal: duplicate quantum moves are usually redundant but not
			// an error.
		} else {
			seenQuantum[m.Quantum.Family] = m
		}

		quantumMove := puzzle.NewMove(m.Quantum.Family, 1)
		quantumTransformation, err := pz.TransformationFromMove(quantumMove)
		if err != nil {
			return nil, wrapPuzzleError(err)
		}
		order, err := naiveTransformationOrder(pz, quantumTransformation)
		if err != nil {
			return nil, err
		}

		moveTransformation, err := pz.TransformationFromMove(m)
		if err != nil {
			return nil, wrapPuzzleError(err)
		}

		var multiples []MoveTransformationInfo[T]
		identity := pz.IdentityTransformation()

		switch metric {
		case HandMetric:
			amount := m.Amount
			buf := NewTransformationBuffer[P, T](pz, moveTransformation, moveTransformation)
			for !pz.TransformationEqual(buf.Current(), identity) {
				current := buf.Current()
				info := MoveTransformationInfo[T]{
					Move:                  puzzle.NewMove(m.Quantum.Family, canonicalizeAmount(order, amount)),
					Transformation:        current,
					InverseTransformation: pz.Invert(current),
				}
				multiples = append(multiples, info)
				amount += m.Amount
				buf.Advance()
			}
		case QuantumMetric:
			info := MoveTransformationInfo[T]{
				Move:                  m,
				Transformation:        moveTransformation,
				InverseTransformation: pz.Invert(moveTransformation),
			}
			isSelfInverse := pz.TransformationEqual(info.Transformation, info.InverseTransformation)
			multiples = append(multiples, info)
			if !isSelfInverse {
				multiples = append(multiples, MoveTransformationInfo[T]{
					Move:                  m.Invert(),
					Transformation:        info.InverseTransformation,
					InverseTransformation: info.Transformation,
				})
			}
		}

		grouped = append(grouped, multiples)
		flat = append(flat, multiples...)
	}

	if randomStart {
		rand.Shuffle(len(grouped), func(i, j int) { grouped[i], grouped[j] = grouped[j], grouped[i] })
		rand.Shuffle(len(flat), func(i, j int) { flat[i], flat[j] = flat[j], flat[i] })
	}

	return &SearchGenerators[T]{Grouped: grouped, Flat: flat}, nil
}

// canonicalizeAmount maps amount into the symmetric range around zero for a
// quantum move of the given order, e.g. order 4 maps {1,2,3} to {1,2,-1}.
func canonicalizeAmount(order, amount int) int {
	offset := (order - 1) / 2
	shifted := ((amount+offset)%order + order) % order
	return shifted - offset
}

func naiveTransformationOrder[P any, T any](pz puzzle.Puzzle[P, T], t T) (int, error) {
	identity := pz.IdentityTransformation()
	order := 1
	buf := NewTransformationBuffer[P, T](pz, t, t)
	for !pz.TransformationEqual(buf.Current(), identity) {
		buf.Advance()
		order++
		if order > maxQuantumOrder {
			return 0, &SearchError{Description: "quantum move order exceeds sanity bound"}
		}
	}
	return order, nil
}
