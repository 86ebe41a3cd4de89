package puzzle

import "fmt"

// OrbitName identifies a partition of piece positions preserved by every
// move of a puzzle (corners, edges, wings, centers, ...).
type OrbitName string

// OrbitDef describes one orbit: how many piece slots it has, and the
// modulus of its per-piece orientation (1 means the orbit carries no
// orientation, e.g. 4x4x4 centers).
type OrbitDef struct {
	Name              OrbitName
	NumPieces         int
	OrientationModulo int
}

// OrbitState is the per-orbit payload of both a Pattern and a
// Transformation: a permutation (piece currently occupying each position)
// and an orientation delta per position.
type OrbitState struct {
	Permutation []uint8
	Orientation []uint8
}

func newOrbitState(def OrbitDef) OrbitState {
	perm := make([]uint8, def.NumPieces)
	ori := make([]uint8, def.NumPieces)
	for i := range perm {
		perm[i] = uint8(i)
	}
	return OrbitState{Permutation: perm, Orientation: ori}
}

func (o OrbitState) clone() OrbitState {
	perm := make([]uint8, len(o.Permutation))
	ori := make([]uint8, len(o.Orientation))
	copy(perm, o.Permutation)
	copy(ori, o.Orientation)
	return OrbitState{Permutation: perm, Orientation: ori}
}

func (o OrbitState) equal(other OrbitState) bool {
	if len(o.Permutation) != len(other.Permutation) {
		return false
	}
	for i := range o.Permutation {
		if o.Permutation[i] != other.Permutation[i] || o.Orientation[i] != other.Orientation[i] {
			return false
		}
	}
	return true
}

// Pattern is the state of a puzzle: a permutation and orientation array per
// orbit, in the order given by the owning puzzle's Orbits().
type Pattern struct {
	Orbits []OrbitState
}

// Transformation is an element of the puzzle's transformation monoid. It has
// the same shape as a Pattern (it acts on one by the same compose rule that
// composes two transformations), matching how every move-based puzzle
// (corner/edge cubies, 4x4x4 centers/wings) records its effect.
type Transformation struct {
	Orbits []OrbitState
}

// IdentityTransformation builds the identity element for a puzzle with the
// given orbit layout.
func IdentityTransformation(defs []OrbitDef) Transformation {
	orbits := make([]OrbitState, len(defs))
	for i, def := range defs {
		orbits[i] = newOrbitState(def)
	}
	return Transformation{Orbits: orbits}
}

// DefaultPattern builds the solved pattern for a puzzle with the given orbit
// layout (identical in shape to the identity transformation).
func DefaultPattern(defs []OrbitDef) Pattern {
	t := IdentityTransformation(defs)
	return Pattern{Orbits: t.Orbits}
}

// Apply returns the pattern obtained by applying transformation t to p:
// for every orbit and position i, the piece ends up being whatever occupied
// position t.Permutation[i] in p, and orientations add modulo the orbit's
// modulus. This is the standard cubie-level composition law used throughout
// the twsearch/kpuzzle family of solvers that this core is modeled on.
func Apply(defs []OrbitDef, p Pattern, t Transformation) Pattern {
	result := Pattern{Orbits: make([]OrbitState, len(defs))}
	for oi, def := range defs {
		src, mv := p.Orbits[oi], t.Orbits[oi]
		out := OrbitState{
			Permutation: make([]uint8, def.NumPieces),
			Orientation: make([]uint8, def.NumPieces),
		}
		mod := uint8(def.OrientationModulo)
		for i := 0; i < def.NumPieces; i++ {
			from := mv.Permutation[i]
			out.Permutation[i] = src.Permutation[from]
			if mod > 1 {
				out.Orientation[i] = (src.Orientation[from] + mv.Orientation[i]) % mod
			}
		}
		result.Orbits[oi] = out
	}
	return result
}

// Compose returns a transformation equivalent to applying a, then b.
func Compose(defs []OrbitDef, a, b Transformation) Transformation {
	p := Apply(defs, Pattern{Orbits: a.Orbits}, b)
	return Transformation{Orbits: p.Orbits}
}

// Invert returns the inverse of a transformation.
func Invert(defs []OrbitDef, t Transformation) Transformation {
	result := Transformation{Orbits: make([]OrbitState, len(defs))}
	for oi, def := range defs {
		src := t.Orbits[oi]
		out := newOrbitState(def)
		mod := uint8(def.OrientationModulo)
		for i := 0; i < def.NumPieces; i++ {
			j := src.Permutation[i]
			out.Permutation[j] = uint8(i)
			if mod > 1 {
				out.Orientation[j] = (mod - src.Orientation[i]) % mod
			}
		}
		result.Orbits[oi] = out
	}
	return result
}

// Pow composes t with itself n times (n >= 0).
func Pow(defs []OrbitDef, t Transformation, n int) Transformation {
	if n < 0 {
		return Pow(defs, Invert(defs, t), -n)
	}
	result := IdentityTransformation(defs)
	for i := 0; i < n; i++ {
		result = Compose(defs, result, t)
	}
	return result
}

// PatternEqual reports whether two patterns are identical across all orbits.
func PatternEqual(a, b Pattern) bool {
	if len(a.Orbits) != len(b.Orbits) {
		return false
	}
	for i := range a.Orbits {
		if !a.Orbits[i].equal(b.Orbits[i]) {
			return false
		}
	}
	return true
}

// TransformationEqual reports whether two transformations are identical.
func TransformationEqual(a, b Transformation) bool {
	return PatternEqual(Pattern{Orbits: a.Orbits}, Pattern{Orbits: b.Orbits})
}

// ClonePattern returns a deep copy of p.
func ClonePattern(p Pattern) Pattern {
	out := Pattern{Orbits: make([]OrbitState, len(p.Orbits))}
	for i, o := range p.Orbits {
		out.Orbits[i] = o.clone()
	}
	return out
}

// RemapThroughTarget implements the "permute through target" trick for
// multi-phase search (the drivers in internal/scramble test phase
// membership with predicates instead): for each orbit position i, the piece currently
// at i in src is looked up in target's permutation to produce the remapped
// piece, while orientation passes through unchanged. The result is a
// pattern whose depth-0 solved state is target's coset representative.
func RemapThroughTarget(defs []OrbitDef, src, target Pattern) Pattern {
	out := Pattern{Orbits: make([]OrbitState, len(defs))}
	for oi, def := range defs {
		s, t := src.Orbits[oi], target.Orbits[oi]
		remapped := OrbitState{
			Permutation: make([]uint8, def.NumPieces),
			Orientation: make([]uint8, def.NumPieces),
		}
		for i := 0; i < def.NumPieces; i++ {
			oldPiece := s.Permutation[i]
			remapped.Permutation[i] = t.Permutation[oldPiece]
			remapped.Orientation[i] = s.Orientation[i]
		}
		out.Orbits[oi] = remapped
	}
	return out
}

// String renders a pattern's orbits for debugging.
func (p Pattern) String() string {
	return fmt.Sprintf("Pattern(%d orbits)", len(p.Orbits))
}
