package phase2

import (
	"github.com/ehrlich-b/twophase/internal/puzzle"
	"github.com/ehrlich-b/twophase/internal/puzzle/cube4x4"
)

// Pattern is the phase-2 search state: the coordinate triple used for
// equality/pruning, carrying the full 4x4x4 pattern along only so moves can
// still be applied. The generic search itself only ever compares
// coordinates.
type Pattern struct {
	Full puzzle.Pattern
	C84  int
	C168 int
	EP   int
}

// Lift computes a Pattern's coordinates from a full 4x4x4 pattern.
func Lift(full puzzle.Pattern) Pattern {
	return Pattern{
		Full: full,
		C84:  Coord84(full),
		C168: Coord168(full),
		EP:   CoordEP(full),
	}
}

// Puzzle adapts cube4x4's full CubicPuzzle to the compact coordinate
// pattern for phase-2 search.
type Puzzle struct {
	full *puzzle.CubicPuzzle
}

// New builds the phase-2 coordinate puzzle over cube4x4's generator set.
func New() *Puzzle {
	return &Puzzle{full: cube4x4.New()}
}

func (p *Puzzle) IdentityTransformation() puzzle.Transformation { return p.full.IdentityTransformation() }
func (p *Puzzle) DefaultPattern() Pattern                       { return Lift(p.full.DefaultPattern()) }
func (p *Puzzle) DefinitionMoves() []puzzle.Move                { return cube4x4.Phase2Generators() }

func (p *Puzzle) TransformationFromMove(m puzzle.Move) (puzzle.Transformation, error) {
	return p.full.TransformationFromMove(m)
}

func (p *Puzzle) Compose(a, b puzzle.Transformation) puzzle.Transformation { return p.full.Compose(a, b) }
func (p *Puzzle) Invert(t puzzle.Transformation) puzzle.Transformation    { return p.full.Invert(t) }
func (p *Puzzle) TransformationEqual(a, b puzzle.Transformation) bool {
	return p.full.TransformationEqual(a, b)
}

// Apply advances the underlying full pattern and re-lifts its coordinates.
func (p *Puzzle) Apply(pat Pattern, t puzzle.Transformation) Pattern {
	return Lift(p.full.Apply(pat.Full, t))
}

// PatternEqual compares only the coordinate triple, never the full
// pattern: this is what makes the coordinate space the effective search
// space even though Apply still carries the full pattern forward.
func (p *Puzzle) PatternEqual(a, b Pattern) bool {
	return a.C84 == b.C84 && a.C168 == b.C168 && a.EP == b.EP
}

var _ puzzle.Puzzle[Pattern, puzzle.Transformation] = (*Puzzle)(nil)
