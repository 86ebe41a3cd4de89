package search

// PuzzleError reports that a move in a generator set cannot be interpreted
// against the puzzle's definition. It is fatal to the search being
// constructed.
type PuzzleError struct {
	Description string
}

func (e *PuzzleError) Error() string { return "puzzle error: " + e.Description }

// SearchError reports an invalid generator set: empty, a zero-amount move,
// or a quantum move whose order could not be determined within the sanity
// bound.
type SearchError struct {
	Description string
}

func (e *SearchError) Error() string { return "search error: " + e.Description }

func wrapPuzzleError(err error) error {
	return &PuzzleError{Description: err.Error()}
}
