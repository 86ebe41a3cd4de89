// Package puzzle defines the puzzle-agnostic move, pattern, and transformation
// types shared by every concrete puzzle definition (cube3x3, cube4x4, and the
// 4x4x4 phase-2 coordinate puzzle) and by the search core in internal/search.
package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// QuantumMove is a move stripped of its amount, e.g. "R" regardless of
// whether the full move is R, R2, or R'. Wide moves carry their own family
// ("Rw") rather than a separate flag, since a wide turn and its narrow
// counterpart act as different transformations on the puzzle.
type QuantumMove struct {
	Family string
}

func (q QuantumMove) String() string { return q.Family }

// Move is a quantum move plus a signed amount. An amount of 0 is never
// produced by the parser and is rejected by SearchGenerators.
type Move struct {
	Quantum QuantumMove
	Amount  int
}

// NewMove builds a Move from a family string and amount.
func NewMove(family string, amount int) Move {
	return Move{Quantum: QuantumMove{Family: family}, Amount: amount}
}

// Invert returns the move that undoes m.
func (m Move) Invert() Move {
	return Move{Quantum: m.Quantum, Amount: -m.Amount}
}

// String renders a move in standard notation: family, then the absolute
// amount if it isn't 1, then a trailing apostrophe if the amount is negative.
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.Quantum.Family)
	abs := m.Amount
	neg := abs < 0
	if neg {
		abs = -abs
	}
	if abs != 1 {
		sb.WriteString(strconv.Itoa(abs))
	}
	if neg {
		sb.WriteByte('\'')
	}
	return sb.String()
}

// ParseMove parses a single move in standard notation: one or more letters
// (the face, optionally followed by "w" for a wide turn), an optional integer
// amount, and an optional trailing apostrophe for the inverse.
func ParseMove(notation string) (Move, error) {
	notation = strings.TrimSpace(notation)
	if notation == "" {
		return Move{}, fmt.Errorf("puzzle: empty move notation")
	}

	negative := false
	if strings.HasSuffix(notation, "'") {
		negative = true
		notation = notation[:len(notation)-1]
	}

	i := len(notation)
	for i > 0 && notation[i-1] >= '0' && notation[i-1] <= '9' {
		i--
	}
	family, digits := notation[:i], notation[i:]
	if family == "" {
		return Move{}, fmt.Errorf("puzzle: move %q has no face", notation)
	}

	amount := 1
	if digits != "" {
		n, err := strconv.Atoi(digits)
		if err != nil {
			return Move{}, fmt.Errorf("puzzle: invalid amount in move %q: %w", notation, err)
		}
		if n == 0 {
			return Move{}, fmt.Errorf("puzzle: move %q has a zero amount", notation)
		}
		amount = n
	}
	if negative {
		amount = -amount
	}

	return NewMove(family, amount), nil
}

// ParseMoves parses a whitespace-separated sequence of moves, e.g. from a
// scramble string.
func ParseMoves(sequence string) ([]Move, error) {
	fields := strings.Fields(sequence)
	moves := make([]Move, 0, len(fields))
	for _, field := range fields {
		m, err := ParseMove(field)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves renders a sequence of moves as space-separated notation.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
