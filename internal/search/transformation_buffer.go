package search

import "github.com/ehrlich-b/twophase/internal/puzzle"

// TransformationBuffer alternates between two owned transformation slots
// while repeatedly composing with a fixed step. Each step stores the value
// Puzzle.Compose returns, so the composed transformation is still freshly
// allocated per step; the buffer does not write into the old slot's
// storage. It is used anywhere a move's multiples are walked one
// composition at a time: quantum order-finding and SearchGenerators' Hand
// metric enumeration.
type TransformationBuffer[P any, T any] struct {
	puzzle puzzle.Puzzle[P, T]
	step   T
	slots  [2]T
	active int
}

// NewTransformationBuffer starts the buffer at `start`, stepping by `step`
// on each call to Advance.
func NewTransformationBuffer[P any, T any](pz puzzle.Puzzle[P, T], start, step T) *TransformationBuffer[P, T] {
	b := &TransformationBuffer[P, T]{puzzle: pz, step: step}
	b.slots[0] = start
	return b
}

// Current returns the buffer's current transformation.
func (b *TransformationBuffer[P, T]) Current() T {
	return b.slots[b.active]
}

// Advance composes the current transformation with the fixed step,
// writing the result into the other slot and swapping which is active.
func (b *TransformationBuffer[P, T]) Advance() T {
	next := 1 - b.active
	b.slots[next] = b.puzzle.Compose(b.slots[b.active], b.step)
	b.active = next
	return b.slots[b.active]
}
