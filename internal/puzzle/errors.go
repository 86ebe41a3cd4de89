package puzzle

import "fmt"

// MoveError reports that a move cannot be interpreted against a puzzle's
// definition. It surfaces as a search.PuzzleError when raised through
// SearchGenerators construction.
type MoveError struct {
	Move   Move
	Puzzle string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("puzzle %s: move %s is not defined", e.Puzzle, e.Move)
}
