// Package cube4x4 defines the 4x4x4 Rubik's Revenge as a puzzle.CubicPuzzle
// with three orbits: corners (behaving exactly like the 3x3x3's corners,
// since they only ever occupy the outer layer), wings (the 24 edge-type
// pieces, modeled as 12 position-pairs so a single-layer turn carries only
// the near row and a wide turn carries both), and centers (24 facelets, 4
// per face).
package cube4x4

import "github.com/ehrlich-b/twophase/internal/puzzle"

const (
	cornerOrbit puzzle.OrbitName = "CORNERS"
	wingOrbit   puzzle.OrbitName = "WINGS"
	centerOrbit puzzle.OrbitName = "CENTERS"
)

// Edge-position template shared with cube3x3, used here to index wing
// pairs: pair i owns wing slots 2*i (near row) and 2*i+1 (far row).
const (
	pUR = iota
	pUF
	pUL
	pUB
	pDR
	pDF
	pDL
	pDB
	pFR
	pFL
	pBL
	pBR
)

const numWingPairs = 12
const numWings = 2 * numWingPairs
const numCenters = 24

// Orbit indices within a Pattern built from orbitDefs, exported for
// internal/puzzle/cube4x4/phase2's coordinate extraction.
const (
	CornerOrbitIndex = 0
	WingOrbitIndex   = 1
	CenterOrbitIndex = 2

	NumWingPairs = numWingPairs
	NumCenters   = numCenters
)

// CenterFaceOffsets exposes the base index of each face's 4-center block.
func CenterFaceOffsets() map[string]int {
	out := make(map[string]int, len(centerFaceOffset))
	for k, v := range centerFaceOffset {
		out[k] = v
	}
	return out
}

func orbitDefs() []puzzle.OrbitDef {
	return []puzzle.OrbitDef{
		{Name: cornerOrbit, NumPieces: 8, OrientationModulo: 3},
		{Name: wingOrbit, NumPieces: numWings, OrientationModulo: 1},
		{Name: centerOrbit, NumPieces: numCenters, OrientationModulo: 1},
	}
}

// cornerTables mirrors cube3x3's cubie corner permutation+orientation
// tables exactly: a 4x4x4's corners only ever sit in the outer layer, so a
// wide turn moves them identically to the matching single-layer turn.
func cornerTables() map[string]([8]int) {
	return map[string][8]int{
		"U": {3, 0, 1, 2, 4, 5, 6, 7},
		"D": {0, 1, 2, 3, 5, 6, 7, 4},
		"R": {4, 1, 2, 0, 7, 5, 6, 3},
		"L": {0, 2, 6, 3, 4, 1, 5, 7},
		"F": {1, 5, 2, 3, 0, 4, 6, 7},
		"B": {0, 1, 3, 7, 4, 5, 2, 6},
	}
}

func cornerOrientations() map[string][8]uint8 {
	return map[string][8]uint8{
		"U": {0, 0, 0, 0, 0, 0, 0, 0},
		"D": {0, 0, 0, 0, 0, 0, 0, 0},
		"R": {2, 0, 0, 1, 1, 0, 0, 2},
		"L": {0, 1, 2, 0, 0, 2, 1, 0},
		"F": {1, 2, 0, 0, 2, 1, 0, 0},
		"B": {0, 0, 1, 2, 0, 0, 2, 1},
	}
}

// wingRingPermutation gives, for each face, the 12-slot pair permutation
// (identical in shape to cube3x3's edge tables, restricted to the four
// pairs the face's quarter turn actually touches).
func wingRingPermutation() map[string][12]int {
	return map[string][12]int{
		"U": {pUB, pUR, pUF, pUL, pDR, pDF, pDL, pDB, pFR, pFL, pBL, pBR},
		"D": {pUR, pUF, pUL, pUB, pDF, pDL, pDB, pDR, pFR, pFL, pBL, pBR},
		"R": {pFR, pUF, pUL, pUB, pBR, pDF, pDL, pDB, pDR, pFL, pBL, pUR},
		"L": {pUR, pUF, pBL, pUB, pDR, pDF, pFL, pDB, pFR, pUL, pDL, pBR},
		"F": {pUR, pFL, pUL, pUB, pDR, pFR, pDL, pDB, pUF, pDF, pBL, pBR},
		"B": {pUR, pUF, pUL, pBR, pDR, pDF, pDL, pBL, pFR, pFL, pUB, pDB},
	}
}

func cycleApply(n int, perm []int, cycle []int) {
	for i := 0; i < len(cycle); i++ {
		to := cycle[i]
		from := cycle[(i-1+len(cycle))%len(cycle)]
		perm[to] = from
	}
}

// centerFaceOffset maps a face name to the base index of its 4 centers.
var centerFaceOffset = map[string]int{"U": 0, "D": 4, "L": 8, "R": 12, "F": 16, "B": 20}

// centerNeighborOrder is the cyclic neighbor order each face's quarter turn
// visits, used only to derive a self-consistent (not facelet-exact) wide
// ring of the 4x4's 24 center stickers.
var centerNeighborOrder = map[string][4]string{
	"U": {"F", "L", "B", "R"},
	"D": {"F", "R", "B", "L"},
	"L": {"U", "F", "D", "B"},
	"R": {"U", "B", "D", "F"},
	"F": {"U", "R", "D", "L"},
	"B": {"U", "L", "D", "R"},
}

// centersPermutation builds the 24-slot center permutation for a face turn:
// the face's own 4 centers always cycle; the wide ring additionally cycles
// one pair of each neighbor's centers. This only needs to be a
// well-defined, invertible group element, not facelet-exact rendering.
func centersPermutation(face string, wide bool) []int {
	perm := make([]int, numCenters)
	for i := range perm {
		perm[i] = i
	}
	base := centerFaceOffset[face]
	own := []int{base, base + 1, base + 2, base + 3}
	cycleApply(numCenters, perm, own)

	if wide {
		neighbors := centerNeighborOrder[face]
		var ringA, ringB []int
		for k, neighbor := range neighbors {
			nb := centerFaceOffset[neighbor]
			ringA = append(ringA, nb+k%4)
			ringB = append(ringB, nb+(k+1)%4)
		}
		cycleApply(numCenters, perm, ringA)
		cycleApply(numCenters, perm, ringB)
	}
	return perm
}

func wingsPermutation(face string, wide bool) []int {
	perm := make([]int, numWings)
	for i := range perm {
		perm[i] = i
	}
	ring := wingRingPermutation()[face]
	for i := 0; i < numWingPairs; i++ {
		src := ring[i]
		perm[2*i] = 2 * src
		if wide {
			perm[2*i+1] = 2*src + 1
		}
	}
	return perm
}

func buildTransform(face string, wide bool) puzzle.Transformation {
	cp := cornerTables()[face]
	co := cornerOrientations()[face]
	corners := puzzle.OrbitState{Permutation: make([]uint8, 8), Orientation: make([]uint8, 8)}
	for i := 0; i < 8; i++ {
		corners.Permutation[i] = uint8(cp[i])
		corners.Orientation[i] = co[i]
	}

	wp := wingsPermutation(face, wide)
	wings := puzzle.OrbitState{Permutation: make([]uint8, numWings), Orientation: make([]uint8, numWings)}
	for i, p := range wp {
		wings.Permutation[i] = uint8(p)
	}

	cp24 := centersPermutation(face, wide)
	centers := puzzle.OrbitState{Permutation: make([]uint8, numCenters), Orientation: make([]uint8, numCenters)}
	for i, p := range cp24 {
		centers.Permutation[i] = uint8(p)
	}

	return puzzle.Transformation{Orbits: []puzzle.OrbitState{corners, wings, centers}}
}

func quantumMoves() map[string]puzzle.Transformation {
	moves := map[string]puzzle.Transformation{}
	for _, face := range []string{"U", "D", "L", "R", "F", "B"} {
		moves[face] = buildTransform(face, false)
		moves[face+"w"] = buildTransform(face, true)
	}
	return moves
}

// DefinitionMoves is the full outer+wide quarter/half/counter generator set.
func DefinitionMoves() []puzzle.Move {
	var moves []puzzle.Move
	for _, family := range []string{"U", "D", "L", "R", "F", "B", "Uw", "Dw", "Lw", "Rw", "Fw", "Bw"} {
		moves = append(moves,
			puzzle.NewMove(family, 1),
			puzzle.NewMove(family, 2),
			puzzle.NewMove(family, -1),
		)
	}
	return moves
}

// New builds the full 4x4x4 cube puzzle.
func New() *puzzle.CubicPuzzle {
	return &puzzle.CubicPuzzle{
		Orbits:       orbitDefs(),
		QuantumMoves: quantumMoves(),
		Moves:        DefinitionMoves(),
		Name:         "4x4x4",
	}
}

// Phase1Generators is the wide generator set {Uw,U,Dw,D,Lw,L,Rw,R,Fw,F,Bw,B}
// used to reach the reduction coset.
func Phase1Generators() []puzzle.Move {
	var moves []puzzle.Move
	for _, family := range []string{"U", "D", "L", "R", "F", "B", "Uw", "Dw", "Lw", "Rw", "Fw", "Bw"} {
		moves = append(moves, puzzle.NewMove(family, 1), puzzle.NewMove(family, -1))
		moves = append(moves, puzzle.NewMove(family, 2))
	}
	return moves
}

// Phase2Generators is {Uw2,U,L,F,Rw,R,B,Dw2,D}: the reduced-cube generator
// set phase 2 searches with once centers/wings are paired.
func Phase2Generators() []puzzle.Move {
	return []puzzle.Move{
		puzzle.NewMove("Uw", 2),
		puzzle.NewMove("U", 1), puzzle.NewMove("U", -1), puzzle.NewMove("U", 2),
		puzzle.NewMove("L", 1), puzzle.NewMove("L", -1), puzzle.NewMove("L", 2),
		puzzle.NewMove("F", 1), puzzle.NewMove("F", -1), puzzle.NewMove("F", 2),
		puzzle.NewMove("Rw", 1), puzzle.NewMove("Rw", -1), puzzle.NewMove("Rw", 2),
		puzzle.NewMove("R", 1), puzzle.NewMove("R", -1), puzzle.NewMove("R", 2),
		puzzle.NewMove("B", 1), puzzle.NewMove("B", -1), puzzle.NewMove("B", 2),
		puzzle.NewMove("Dw", 2),
		puzzle.NewMove("D", 1), puzzle.NewMove("D", -1), puzzle.NewMove("D", 2),
	}
}
