package scramble

import (
	"math/rand/v2"

	"github.com/ehrlich-b/twophase/internal/puzzle"
	"github.com/ehrlich-b/twophase/internal/puzzle/cube4x4"
)

// randomCenterPermutation returns a uniformly random permutation of all 24
// center pieces. A wide turn's ring cycles one row of a face's centers
// into a neighboring face (cube4x4's centersPermutation), so centers are a
// single orbit spanning all 6 faces, exactly like corners and wings, not a
// set of 6 independent per-face permutations.
func randomCenterPermutation() []uint8 {
	return randomPermutation(cube4x4.NumCenters)
}

// randomPermutation returns a uniformly random permutation of [0, n).
func randomPermutation(n int) []uint8 {
	p := make([]uint8, n)
	for i := range p {
		p[i] = uint8(i)
	}
	rand.Shuffle(n, func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}

// permutationParity returns 0 (even) or 1 (odd) via cycle decomposition.
func permutationParity(perm []uint8) int {
	n := len(perm)
	visited := make([]bool, n)
	parity := 0
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		length := 0
		for j := i; !visited[j]; j = int(perm[j]) {
			visited[j] = true
			length++
		}
		parity += length - 1
	}
	return parity % 2
}

// randomOrientation fills n orientation values in [0, modulus) uniformly at
// random subject to their sum being 0 mod modulus, the standard
// reachability constraint on a physical twisty puzzle's corner/edge
// orientations.
func randomOrientation(n, modulus int) []uint8 {
	o := make([]uint8, n)
	sum := 0
	for i := 0; i < n-1; i++ {
		o[i] = uint8(rand.IntN(modulus))
		sum += int(o[i])
	}
	last := ((-sum % modulus) + modulus) % modulus
	o[n-1] = uint8(last)
	return o
}

// RandomPattern3x3x3 produces a uniformly random reachable 3x3x3 pattern:
// random corner and edge permutations constrained to equal parity, random
// corner orientation summing to 0 mod 3, random edge orientation summing to
// 0 mod 2.
func RandomPattern3x3x3() puzzle.Pattern {
	cp := randomPermutation(8)
	ep := randomPermutation(12)
	if permutationParity(cp) != permutationParity(ep) {
		ep[0], ep[1] = ep[1], ep[0]
	}
	co := randomOrientation(8, 3)
	eo := randomOrientation(12, 2)

	return puzzle.Pattern{Orbits: []puzzle.OrbitState{
		{Permutation: cp, Orientation: co},
		{Permutation: ep, Orientation: eo},
	}}
}

// RandomPattern4x4x4 produces a random reachable 4x4x4 pattern: a random
// corner layout (parity-constrained like 3x3x3), a random wing-pair
// permutation doubled out to the 24 wing slots, and a random permutation of
// the 24 centers, each permutation's parity matched to the corners' (every
// face turn is odd on all three). The phase-2 reduction stage, not this
// sampler, is what narrows the result down to something the acceptor
// allows.
func RandomPattern4x4x4() puzzle.Pattern {
	cp := randomPermutation(8)
	co := randomOrientation(8, 3)

	pairPerm := randomPermutation(12)
	if permutationParity(cp) != permutationParity(pairPerm) {
		pairPerm[0], pairPerm[1] = pairPerm[1], pairPerm[0]
	}
	wp := make([]uint8, 24)
	for i, src := range pairPerm {
		wp[2*i] = 2 * src
		wp[2*i+1] = 2*src + 1
	}

	cpCenters := randomCenterPermutation()
	if permutationParity(cp) != permutationParity(cpCenters) {
		cpCenters[0], cpCenters[1] = cpCenters[1], cpCenters[0]
	}

	return puzzle.Pattern{Orbits: []puzzle.OrbitState{
		{Permutation: cp, Orientation: co},
		{Permutation: wp, Orientation: make([]uint8, 24)},
		{Permutation: cpCenters, Orientation: make([]uint8, 24)},
	}}
}
