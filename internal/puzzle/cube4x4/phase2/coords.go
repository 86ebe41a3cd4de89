package phase2

import (
	"github.com/ehrlich-b/twophase/internal/puzzle"
	"github.com/ehrlich-b/twophase/internal/puzzle/cube4x4"
)

// Coord84 ranks the distribution of L/R-home centers across the combined
// 8-slot L+R center block: a C(8,4) subset choice collapsed by 2 for the
// L<->R mirror symmetry, a 35-state coordinate for the
// E/M-slice-analogous center pairing.
func Coord84(p puzzle.Pattern) int {
	offsets := cube4x4.CenterFaceOffsets()
	slots := append(faceSlots(offsets["L"]), faceSlots(offsets["R"])...)
	perm := p.Orbits[cube4x4.CenterOrbitIndex].Permutation

	var chosen []int
	for i, slot := range slots {
		if isHome(perm[slot], offsets["L"]) {
			chosen = append(chosen, i)
		}
	}
	rank := rankSubset(8, chosen)
	mirrored := mirrorRank(rank, 8, 4)
	if mirrored < rank {
		rank = mirrored
	}
	return rank
}

// Coord168 ranks the distribution of U/D-home centers across the combined
// 16-slot U+D+F+B center block (C(16,8) = 12870 states).
func Coord168(p puzzle.Pattern) int {
	offsets := cube4x4.CenterFaceOffsets()
	slots := append(append(append(faceSlots(offsets["U"]), faceSlots(offsets["D"])...), faceSlots(offsets["F"])...), faceSlots(offsets["B"])...)
	perm := p.Orbits[cube4x4.CenterOrbitIndex].Permutation

	var chosen []int
	for i, slot := range slots {
		if isHome(perm[slot], offsets["U"]) || isHome(perm[slot], offsets["D"]) {
			chosen = append(chosen, i)
		}
	}
	return rankSubset(16, chosen)
}

// CoordEP is the wing-pair permutation parity (0 even, 1 odd): a 4x4x4 is
// only reducible to 3x3x3-equivalent move sequences when this is even,
// the classic 4x4x4 OLL/PLL-parity obstruction.
func CoordEP(p puzzle.Pattern) int {
	perm := p.Orbits[cube4x4.WingOrbitIndex].Permutation
	pairPerm := make([]int, cube4x4.NumWingPairs)
	for i := range pairPerm {
		pairPerm[i] = int(perm[2*i]) / 2
	}
	return permutationParity(pairPerm)
}

func faceSlots(base int) []int {
	return []int{base, base + 1, base + 2, base + 3}
}

func isHome(piece uint8, faceBase int) bool {
	p := int(piece)
	return p >= faceBase && p < faceBase+4
}

// mirrorRank maps a C(n,k) rank to the rank of its complement subset, used
// to collapse Coord84 under the L<->R mirror symmetry.
func mirrorRank(rank, n, k int) int {
	chosen := unrankSubset(n, k, rank)
	in := make([]bool, n)
	for _, c := range chosen {
		in[c] = true
	}
	var complement []int
	for i := 0; i < n; i++ {
		if !in[i] {
			complement = append(complement, i)
		}
	}
	return rankSubset(n, complement)
}

func unrankSubset(n, k, rank int) []int {
	chosen := make([]int, k)
	remaining := rank
	pos := n - 1
	for i := k; i >= 1; i-- {
		for pos >= 0 && binomial(pos, i) > remaining {
			pos--
		}
		chosen[i-1] = pos
		remaining -= binomial(pos, i)
		pos--
	}
	return chosen
}
