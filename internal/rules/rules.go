// Package rules holds the immutable game parameters that every other
// package in this module is built against: how many pegs a codeword has,
// how many colors are available, and whether colors may repeat.
package rules

import (
	"strconv"

	"github.com/pkg/errors"
)

const (
	// MaxPegs is the largest number of pegs a codeword can hold. It is fixed
	// so that a codeword's counter and digit views both fit in a single
	// 16-byte slot (MaxPegs + MaxColors == 16).
	MaxPegs = 6

	// MaxColors is the largest number of distinct colors a game can use.
	MaxColors = 10
)

// Rules is the immutable triple (Pegs, Colors, Repeatable) that defines a
// game. Zero value is not valid; construct with New.
type Rules struct {
	Pegs       int
	Colors     int
	Repeatable bool
}

// New validates and returns a Rules value, or an InvalidRules error wrapped
// with the offending parameter.
func New(pegs, colors int, repeatable bool) (Rules, error) {
	r := Rules{Pegs: pegs, Colors: colors, Repeatable: repeatable}
	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

// Validate checks the invariants from the specification: 1 <= Pegs <=
// MaxPegs, 1 <= Colors <= MaxColors, and if colors can't repeat there must
// be at least as many colors as pegs (otherwise no codeword exists).
func (r Rules) Validate() error {
	if r.Pegs < 1 || r.Pegs > MaxPegs {
		return errors.Errorf("invalid rules: pegs=%d must be in [1, %d]", r.Pegs, MaxPegs)
	}
	if r.Colors < 1 || r.Colors > MaxColors {
		return errors.Errorf("invalid rules: colors=%d must be in [1, %d]", r.Colors, MaxColors)
	}
	if !r.Repeatable && r.Colors < r.Pegs {
		return errors.Errorf("invalid rules: colors=%d < pegs=%d with repeatable=false, no codeword would exist", r.Colors, r.Pegs)
	}
	return nil
}

// MaxRepeat returns the largest number of times a single color may appear
// in a codeword under these rules: 1 if colors can't repeat, else Pegs.
func (r Rules) MaxRepeat() int {
	if !r.Repeatable {
		return 1
	}
	return r.Pegs
}

// UniverseSize returns the number of codewords conforming to these rules:
// Colors^Pegs if repeatable, else the falling factorial Colors!/(Colors-Pegs)!.
func (r Rules) UniverseSize() int {
	if r.Repeatable {
		size := 1
		for i := 0; i < r.Pegs; i++ {
			size *= r.Colors
		}
		return size
	}
	size := 1
	for i := 0; i < r.Pegs; i++ {
		size *= r.Colors - i
	}
	return size
}

// FeedbackCardinality returns S = P(P+3)/2 + 1, the number of feedback
// ordinals under these rules: one per (nA, nB) pair with nA+nB <= P. The
// count includes a slot for the unreachable (P-1,1) combination, which
// always stays zero in a frequency table.
func (r Rules) FeedbackCardinality() int {
	p := r.Pegs
	return p*(p+3)/2 + 1
}

// String renders the rules as "-p P -c C -r" or "-p P -c C -n", matching
// the CLI flag spelling from the specification.
func (r Rules) String() string {
	flag := "-n"
	if r.Repeatable {
		flag = "-r"
	}
	return "-p " + strconv.Itoa(r.Pegs) + " -c " + strconv.Itoa(r.Colors) + " " + flag
}
