// Package phase2 implements the 4x4x4 reduction-phase coordinate system:
// compact integer coordinates derived from the center and wing orbits, used
// to prune the phase-2 search the same way 3x3x3's UDSlice/CO/EO
// coordinates prune Kociemba's phase 1.
package phase2

// binomial is a standard Pascal's-triangle table, used for ranking
// k-subsets of an n-set with the combinatorial number system, the same
// construction Kociemba's coordinate cube uses for its C(12,4) UDSlice
// index (cCk in cubiecube-style implementations).
func binomial(n, k int) int {
	table := binomialTable(n)
	if k < 0 || k > n {
		return 0
	}
	return table[n][k]
}

var cachedBinomial [][]int

func binomialTable(n int) [][]int {
	if cachedBinomial != nil && len(cachedBinomial) > n {
		return cachedBinomial
	}
	size := n + 1
	if size < 17 {
		size = 17
	}
	table := make([][]int, size)
	for i := range table {
		table[i] = make([]int, size)
		table[i][0] = 1
		for j := 1; j <= i; j++ {
			table[i][j] = table[i-1][j-1]
			if j <= i-1 {
				table[i][j] += table[i-1][j]
			}
		}
	}
	cachedBinomial = table
	return table
}

// rankSubset ranks the increasing k-element subset `chosen` of {0,...,n-1}
// in the combinatorial number system: a bijection between k-subsets of an
// n-set and [0, C(n,k)).
func rankSubset(n int, chosen []int) int {
	rank := 0
	for i, pos := range chosen {
		rank += binomial(pos, i+1)
	}
	return rank
}

// permutationParity returns 0 for an even permutation of perm (a slice
// containing each of 0..len(perm)-1 exactly once), 1 for odd, by counting
// transpositions via cycle decomposition.
func permutationParity(perm []int) int {
	n := len(perm)
	visited := make([]bool, n)
	parity := 0
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		cycleLen := 0
		for j := i; !visited[j]; j = perm[j] {
			visited[j] = true
			cycleLen++
		}
		if cycleLen > 0 {
			parity += cycleLen - 1
		}
	}
	return parity % 2
}
