package phase2

import (
	"github.com/ehrlich-b/twophase/internal/puzzle"
	"github.com/ehrlich-b/twophase/internal/puzzle/cube4x4"
)

// pruningKey packs a coordinate triple into a single map key for the BFS
// fill below.
type pruningKey struct {
	c84, c168, ep int
}

// unreached is the sentinel for a coordinate never visited by the BFS fill,
// and saturated is the distance cap beyond which exact depth no longer
// matters for pruning purposes.
const (
	saturated = 254
	unreached = 255
)

// PruningTable is a breadth-first distance map from every accepted
// coordinate (every center layout Acceptor.Accept allows, each with solved
// wings), used to lower-bound the remaining search depth during phase-2
// IDFS. A single-source table built only from the literal solved
// coordinate would overestimate the distance to any of the other 11
// accepted center layouts and could prune away real solutions; seeding the
// BFS from all 12 keeps it admissible against Acceptor.Accept.
type PruningTable struct {
	distances map[pruningKey]byte
}

// BuildPruningTable runs a multi-source BFS over the coordinate space from
// every accepted seed, filling distances up to maxDepth. gens must be the
// same move set the caller's search runs with; a table built from a
// narrower set would overestimate true distance and prune validly-
// reachable solutions. Moves are applied via the lifted full pattern
// rather than a precomputed dense per-coordinate move table (see
// DESIGN.md).
func BuildPruningTable(pz *Puzzle, gens []puzzle.Move, maxDepth int) *PruningTable {
	transforms := make([]puzzle.Transformation, 0, len(gens))
	for _, m := range gens {
		t, err := pz.TransformationFromMove(m)
		if err != nil {
			continue
		}
		transforms = append(transforms, t)
	}

	table := &PruningTable{distances: map[pruningKey]byte{}}
	var frontier []Pattern
	for _, seed := range acceptedSeeds(pz) {
		key := pruningKey{seed.C84, seed.C168, seed.EP}
		if _, seen := table.distances[key]; seen {
			continue
		}
		table.distances[key] = 0
		frontier = append(frontier, seed)
	}

	for depth := byte(1); depth <= byte(maxDepth) && len(frontier) > 0; depth++ {
		var next []Pattern
		for _, pat := range frontier {
			for _, t := range transforms {
				child := pz.Apply(pat, t)
				key := pruningKey{child.C84, child.C168, child.EP}
				if _, seen := table.distances[key]; seen {
					continue
				}
				d := depth
				if d > saturated {
					d = saturated
				}
				table.distances[key] = d
				next = append(next, child)
			}
		}
		frontier = next
	}
	return table
}

// Distance returns the BFS-filled lower bound for p, or `unreached` if the
// table wasn't built deep enough to cover it.
func (t *PruningTable) Distance(p Pattern) byte {
	key := pruningKey{p.C84, p.C168, p.EP}
	if d, ok := t.distances[key]; ok {
		return d
	}
	return unreached
}

// Heuristic adapts Distance for IDFSearch.SetHeuristic: an unreached cell
// means the BFS simply wasn't run deep enough to cover it, not that it's
// far away, so it must read as 0 (never prune) rather than as a large
// distance.
func (t *PruningTable) Heuristic(p Pattern) int {
	d := t.Distance(p)
	if d == unreached {
		return 0
	}
	return int(d)
}

// acceptedSeeds builds one representative full pattern per sideCenterCases
// entry, each with solved corners and solved wings, forming the BFS
// frontier's distance-0 set: every layout Acceptor.Accept allows, not only
// the literal solved pattern.
func acceptedSeeds(pz *Puzzle) []Pattern {
	offsets := cube4x4.CenterFaceOffsets()
	seeds := make([]Pattern, 0, len(sideCenterCases))
	for _, c := range sideCenterCases {
		full := clonePattern(pz.DefaultPattern().Full)
		placeSideCenters(full.Orbits[cube4x4.CenterOrbitIndex].Permutation, offsets, c)
		seeds = append(seeds, Lift(full))
	}
	return seeds
}

func clonePattern(p puzzle.Pattern) puzzle.Pattern {
	out := puzzle.Pattern{Orbits: make([]puzzle.OrbitState, len(p.Orbits))}
	for i, orbit := range p.Orbits {
		out.Orbits[i] = puzzle.OrbitState{
			Permutation: append([]uint8{}, orbit.Permutation...),
			Orientation: append([]uint8{}, orbit.Orientation...),
		}
	}
	return out
}

// placeSideCenters writes piece identities into the L-face and R-face
// center slots of perm so they read as case_: each slot drawn from the
// block's own 4 L-home or 4 R-home pieces, preserving a valid permutation
// rather than introducing duplicate pieces.
func placeSideCenters(perm []uint8, offsets map[string]int, case_ [2][4]bool) {
	lBase, rBase := offsets["L"], offsets["R"]
	lPool := []uint8{uint8(lBase), uint8(lBase + 1), uint8(lBase + 2), uint8(lBase + 3)}
	rPool := []uint8{uint8(rBase), uint8(rBase + 1), uint8(rBase + 2), uint8(rBase + 3)}
	li, ri := 0, 0
	slots := append(faceSlots(lBase), faceSlots(rBase)...)
	flags := append(append([]bool{}, case_[0][:]...), case_[1][:]...)
	for i, slot := range slots {
		if flags[i] {
			perm[slot] = rPool[ri]
			ri++
		} else {
			perm[slot] = lPool[li]
			li++
		}
	}
}
