package phase2

import "github.com/ehrlich-b/twophase/internal/puzzle/cube4x4"

// sideCenterCases are the 12 enumerated (L-face slab, R-face slab) layouts
// the E/M-slice centers may land in and still count as solved: flat faces,
// horizontal bars, vertical bars, and checkerboards, each in both color
// polarities. false marks an L-home piece, true an R-home piece.
var sideCenterCases = [12][2][4]bool{
	{{false, false, false, false}, {true, true, true, true}},
	{{true, true, true, true}, {false, false, false, false}},
	{{false, false, true, true}, {false, false, true, true}},
	{{true, true, false, false}, {true, true, false, false}},
	{{true, true, false, false}, {false, false, true, true}},
	{{false, false, true, true}, {true, true, false, false}},
	{{false, true, true, false}, {false, true, true, false}},
	{{true, false, false, true}, {true, false, false, true}},
	{{false, true, true, false}, {true, false, false, true}},
	{{true, false, false, true}, {false, true, true, false}},
	{{false, true, false, true}, {false, true, false, true}},
	{{true, false, true, false}, {true, false, true, false}},
}

func isSideCenterCase(top, bottom [4]bool) bool {
	for _, c := range sideCenterCases {
		if c[0] == top && c[1] == bottom {
			return true
		}
	}
	return false
}

// sideCenterSlab classifies the 4 pieces sitting in a face's center block
// as L-home or R-home by piece identity, not by their position-relative
// permutation value. ok is false if any piece there is home to neither L
// nor R, which can never satisfy a sideCenterCases entry.
func sideCenterSlab(perm []uint8, base, lBase, rBase int) (slab [4]bool, ok bool) {
	for i := 0; i < 4; i++ {
		piece := perm[base+i]
		switch {
		case isHome(piece, lBase):
			slab[i] = false
		case isHome(piece, rBase):
			slab[i] = true
		default:
			return slab, false
		}
	}
	return slab, true
}

// RejectionCounts tallies why candidate phase-2 endpoints were rejected,
// surfaced by the caller's logger.
type RejectionCounts struct {
	CenterLayout int
	WingParity   int
	WingPairing  int
}

// Acceptor is the phase-2 acceptance predicate: a depth-0 IDFS hit is only
// a real scramble endpoint if the E/M-slice (L/R) centers landed in one of
// the 12 solved-ish layouts, the wing-pair permutation is even, and every
// wing pair agrees internally on orientation with a misorientation count
// divisible by 4.
type Acceptor struct {
	counts RejectionCounts
}

func NewAcceptor() *Acceptor { return &Acceptor{} }

func (a *Acceptor) Accept(p Pattern) bool {
	if p.EP != 0 {
		a.counts.WingParity++
		return false
	}
	if !a.wingPairsConsistent(p) {
		a.counts.WingPairing++
		return false
	}
	offsets := cube4x4.CenterFaceOffsets()
	perm := p.Full.Orbits[cube4x4.CenterOrbitIndex].Permutation
	top, topOK := sideCenterSlab(perm, offsets["L"], offsets["L"], offsets["R"])
	bottom, bottomOK := sideCenterSlab(perm, offsets["R"], offsets["L"], offsets["R"])
	if !topOK || !bottomOK || !isSideCenterCase(top, bottom) {
		a.counts.CenterLayout++
		return false
	}
	return true
}

// wingPairsConsistent reports whether the wing orbit's near/far-row split
// is internally consistent: every position's wing is classified "high"
// (odd index) or "low" (even index) within its pair, a wing is "oriented"
// when its role matches the position's own role, a pair is only solvable
// if both its members agree on that classification, and the total
// misoriented count across all 24 wings must be a multiple of 4 (the
// classic 4x4x4 OLL-parity obstruction).
func (a *Acceptor) wingPairsConsistent(p Pattern) bool {
	perm := p.Full.Orbits[cube4x4.WingOrbitIndex].Permutation
	misoriented := 0
	for pair := 0; pair < cube4x4.NumWingPairs; pair++ {
		oriented := make([]bool, 2)
		for slot := 0; slot < 2; slot++ {
			pos := 2*pair + slot
			isHighPos := slot == 1
			isHighPiece := perm[pos]%2 == 1
			oriented[slot] = isHighPos == isHighPiece
			if !oriented[slot] {
				misoriented++
			}
		}
		if oriented[0] != oriented[1] {
			return false
		}
	}
	return misoriented%4 == 0
}

func (a *Acceptor) Counts() RejectionCounts { return a.counts }
