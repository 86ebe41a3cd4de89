// Package scramble exposes the public scramble-generation API: one driver
// per puzzle, each built once and reused behind a mutex. The search core
// underneath is single-threaded and synchronous, with no intra-search
// parallelism.
package scramble

import (
	"math/rand/v2"
	"net/url"
	"strings"
	"sync"

	"github.com/ehrlich-b/twophase/internal/puzzle"
	"github.com/ehrlich-b/twophase/internal/search"
)

var (
	initOnce     sync.Once
	initErr      error
	twoPhaseMu   sync.Mutex
	fourPhaseMu  sync.Mutex
	twoPhase     *TwoPhase
	fourPhase    *FourPhase
	defaultLog   *search.SearchLogger
)

func ensureInit() error {
	initOnce.Do(func() {
		defaultLog = search.NewSearchLogger(search.VerbositySilent)
		twoPhase, initErr = NewTwoPhase(defaultLog)
		if initErr != nil {
			return
		}
		fourPhase, initErr = NewFourPhase(defaultLog)
	})
	return initErr
}

// Scramble3x3x3 generates one random-state 3x3x3 scramble.
func Scramble3x3x3() (string, error) {
	if err := ensureInit(); err != nil {
		return "", err
	}
	twoPhaseMu.Lock()
	defer twoPhaseMu.Unlock()
	moves, err := twoPhase.Scramble()
	if err != nil {
		return "", err
	}
	return puzzle.FormatMoves(moves), nil
}

// bldRotationPrefixes and bldRotationSuffixes are the two independent
// random-rotation pools appended to a 3x3x3 BLD scramble: an Rw or Fw
// wide-move pick (plain cube rotations aren't separate puzzle moves in this
// model) followed by an independent Uw wide-move pick.
var (
	bldRotationPrefixes = []string{"", "Rw", "Rw2", "Rw'", "Fw", "Fw'"}
	bldRotationSuffixes = []string{"", "Uw", "Uw2", "Uw'"}
)

// Scramble3x3x3BLD generates a 3x3x3 scramble for blindfolded solving: the
// same random-state algorithm as the unqualified 3x3x3 event, with a random
// rotation suffix appended so the cube doesn't always finish in the same
// orientation the solver memorized relative to.
func Scramble3x3x3BLD() (string, error) {
	base, err := Scramble3x3x3()
	if err != nil {
		return "", err
	}
	prefix := bldRotationPrefixes[rand.IntN(len(bldRotationPrefixes))]
	suffix := bldRotationSuffixes[rand.IntN(len(bldRotationSuffixes))]
	parts := []string{base}
	if prefix != "" {
		parts = append(parts, prefix)
	}
	if suffix != "" {
		parts = append(parts, suffix)
	}
	return strings.Join(parts, " "), nil
}

// Scramble3x3x3FMC generates a 3x3x3 scramble suitable for fewest-moves
// attempts: the FMC-constrained inner algorithm sandwiched in `R' U' F`
// affixes.
func Scramble3x3x3FMC() (string, error) {
	if err := ensureInit(); err != nil {
		return "", err
	}
	twoPhaseMu.Lock()
	defer twoPhaseMu.Unlock()
	moves, err := twoPhase.ScrambleFMC()
	if err != nil {
		return "", err
	}
	return puzzle.FormatMoves(moves), nil
}

// Scramble4x4x4 generates one random-state 4x4x4 scramble.
func Scramble4x4x4() (string, error) {
	if err := ensureInit(); err != nil {
		return "", err
	}
	fourPhaseMu.Lock()
	defer fourPhaseMu.Unlock()
	moves, err := fourPhase.Scramble()
	if err != nil {
		return "", err
	}
	return puzzle.FormatMoves(moves), nil
}

// TwizzleLink builds an alg.cubing.net-style viewer URL for a scramble
// algorithm, using net/url for escaping rather than a bespoke
// query-string builder.
func TwizzleLink(puzzleID, alg string) string {
	u := url.URL{
		Scheme: "https",
		Host:   "alg.cubing.net",
		Path:   "/",
	}
	q := u.Query()
	q.Set("puzzle", puzzleID)
	q.Set("alg", strings.TrimSpace(alg))
	u.RawQuery = q.Encode()
	return u.String()
}
