// Package cube3x3 defines the 3x3x3 Rubik's Cube as a puzzle.CubicPuzzle:
// two orbits (corners and edges), addressed and permuted under the same
// cubie convention the 4x4x4 corner orbit reuses directly.
package cube3x3

import "github.com/ehrlich-b/twophase/internal/puzzle"

// Corner position indices, in the order Herbert Kociemba's cubie model
// numbers them.
const (
	URF = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// Edge position indices.
const (
	UR = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

const (
	cornerOrbit puzzle.OrbitName = "CORNERS"
	edgeOrbit   puzzle.OrbitName = "EDGES"
)

func orbitDefs() []puzzle.OrbitDef {
	return []puzzle.OrbitDef{
		{Name: cornerOrbit, NumPieces: 8, OrientationModulo: 3},
		{Name: edgeOrbit, NumPieces: 12, OrientationModulo: 2},
	}
}

func cornerEdgeTransform(cp [8]int, co [8]uint8, ep [12]int, eo [12]uint8) puzzle.Transformation {
	corners := puzzle.OrbitState{Permutation: make([]uint8, 8), Orientation: make([]uint8, 8)}
	for i, p := range cp {
		corners.Permutation[i] = uint8(p)
		corners.Orientation[i] = co[i]
	}
	edges := puzzle.OrbitState{Permutation: make([]uint8, 12), Orientation: make([]uint8, 12)}
	for i, p := range ep {
		edges.Permutation[i] = uint8(p)
		edges.Orientation[i] = eo[i]
	}
	return puzzle.Transformation{Orbits: []puzzle.OrbitState{corners, edges}}
}

// quantumMoves holds the six face-turn transformations, one quarter turn
// each, following the standard cubie permutation+orientation tables.
func quantumMoves() map[string]puzzle.Transformation {
	return map[string]puzzle.Transformation{
		"U": cornerEdgeTransform(
			[8]int{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
			[8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
			[12]int{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
			[12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		),
		"R": cornerEdgeTransform(
			[8]int{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
			[8]uint8{2, 0, 0, 1, 1, 0, 0, 2},
			[12]int{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
			[12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		),
		"F": cornerEdgeTransform(
			[8]int{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
			[8]uint8{1, 2, 0, 0, 2, 1, 0, 0},
			[12]int{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
			[12]uint8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
		),
		"D": cornerEdgeTransform(
			[8]int{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
			[8]uint8{0, 0, 0, 0, 0, 0, 0, 0},
			[12]int{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
			[12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		),
		"L": cornerEdgeTransform(
			[8]int{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
			[8]uint8{0, 1, 2, 0, 0, 2, 1, 0},
			[12]int{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
			[12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		),
		"B": cornerEdgeTransform(
			[8]int{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
			[8]uint8{0, 0, 1, 2, 0, 0, 2, 1},
			[12]int{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
			[12]uint8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
		),
	}
}

// DefinitionMoves is the puzzle's full quarter/half/counter generator set
// over the six faces.
func DefinitionMoves() []puzzle.Move {
	var moves []puzzle.Move
	for _, face := range []string{"U", "D", "L", "R", "F", "B"} {
		moves = append(moves,
			puzzle.NewMove(face, 1),
			puzzle.NewMove(face, 2),
			puzzle.NewMove(face, -1),
		)
	}
	return moves
}

// New builds the full 3x3x3 cube puzzle.
func New() *puzzle.CubicPuzzle {
	return &puzzle.CubicPuzzle{
		Orbits:       orbitDefs(),
		QuantumMoves: quantumMoves(),
		Moves:        DefinitionMoves(),
		Name:         "3x3x3",
	}
}

// Phase1Generators is {U,D,L,R,F,B}, listed as clockwise and
// counterclockwise quarter turns; the Hand metric adds the half turns as
// multiples.
func Phase1Generators() []puzzle.Move {
	var moves []puzzle.Move
	for _, face := range []string{"U", "D", "L", "R", "F", "B"} {
		moves = append(moves, puzzle.NewMove(face, 1), puzzle.NewMove(face, -1))
	}
	return moves
}

// Phase2Generators is {U,D,L2,R2,F2,B2}: the subgroup that preserves edge
// orientation, corner orientation, and E-slice placement once phase 1 has
// reached that coset.
func Phase2Generators() []puzzle.Move {
	moves := []puzzle.Move{
		puzzle.NewMove("U", 1), puzzle.NewMove("U", -1),
		puzzle.NewMove("D", 1), puzzle.NewMove("D", -1),
	}
	for _, face := range []string{"L", "R", "F", "B"} {
		moves = append(moves, puzzle.NewMove(face, 2))
	}
	return moves
}

// G1Target is the coset representative phase 1 searches toward: edges
// oriented, corners oriented, and the four E-slice edges (FR,FL,BL,BR)
// confined to the E slice, represented by the solved pattern. The two-phase
// driver does not compare against it: phase 1 accepts any pattern for which
// IsPhase1Done holds.
func G1Target() puzzle.Pattern {
	return puzzle.DefaultPattern(orbitDefs())
}

// IsEdgeOriented reports whether every edge's orientation is 0, one of the
// three independent phase-1 coset coordinates.
func IsEdgeOriented(p puzzle.Pattern) bool {
	for _, o := range p.Orbits[1].Orientation {
		if o != 0 {
			return false
		}
	}
	return true
}

// IsCornerOriented reports whether every corner's orientation is 0.
func IsCornerOriented(p puzzle.Pattern) bool {
	for _, o := range p.Orbits[0].Orientation {
		if o != 0 {
			return false
		}
	}
	return true
}

// IsESliceConfined reports whether the E-slice edges (FR,FL,BL,BR) occupy
// exactly the E-slice positions, in any order.
func IsESliceConfined(p puzzle.Pattern) bool {
	eSlice := map[uint8]bool{FR: true, FL: true, BL: true, BR: true}
	perm := p.Orbits[1].Permutation
	for _, slot := range []int{FR, FL, BL, BR} {
		if !eSlice[perm[slot]] {
			return false
		}
	}
	return true
}

// IsPhase1Done reports the full G1 coset membership check.
func IsPhase1Done(p puzzle.Pattern) bool {
	return IsEdgeOriented(p) && IsCornerOriented(p) && IsESliceConfined(p)
}
