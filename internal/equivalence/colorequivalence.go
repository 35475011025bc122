// Package equivalence implements the two symmetry-pruning filters that
// thin a candidate-guess list down to one representative per equivalence
// class: color-equivalence (interchangeable excluded colors) and
// constraint-equivalence (peg/color permutations that fix every past
// guess).
package equivalence

import (
	"github.com/go-mastermind/mastermind/internal/codeword"
	"github.com/go-mastermind/mastermind/internal/colormask"
	"github.com/go-mastermind/mastermind/internal/rules"
)

// ColorFilter keeps one representative among candidates that only differ
// by how they use colors known to be impossible: all excluded colors are
// interchangeable, so only the candidate that uses the smallest excluded
// labels first is kept.
type ColorFilter struct {
	rules     rules.Rules
	Unguessed colormask.ColorMask // colors never appearing in a past guess, still plausible
	Excluded  colormask.ColorMask // colors known impossible given current constraints
}

// NewColorFilter starts with every color unguessed and none excluded.
func NewColorFilter(r rules.Rules) *ColorFilter {
	return &ColorFilter{rules: r, Unguessed: colormask.Full(r.Colors)}
}

// Clone returns an independent copy, since the search branches on filters.
func (f *ColorFilter) Clone() *ColorFilter {
	clone := *f
	return &clone
}

// ObserveGuess removes the guess's colors from Unguessed.
func (f *ColorFilter) ObserveGuess(guess codeword.Codeword) {
	for c := 0; c < f.rules.Colors; c++ {
		if guess.Count(c) > 0 {
			f.Unguessed = f.Unguessed.Clear(c)
		}
	}
}

// ExcludeColors adds colors to the Excluded set (known impossible given
// the constraints observed so far).
func (f *ColorFilter) ExcludeColors(colors colormask.ColorMask) {
	f.Excluded |= colors
}

// Filter keeps, from list, only candidates that are canonical under color
// equivalence: scanning a candidate's pegs left to right, the first use of
// each excluded color must be the lexicographically smallest excluded color
// not already used earlier in that same scan; later uses of an excluded
// color already seen are allowed. Non-excluded colors are never
// constrained by this filter.
func (f *ColorFilter) Filter(list []codeword.Codeword) []codeword.Codeword {
	if f.Excluded == 0 {
		return list
	}
	out := make([]codeword.Codeword, 0, len(list))
candidate:
	for _, cw := range list {
		var seen colormask.ColorMask
		for i := 0; i < f.rules.Pegs; i++ {
			c := cw.Peg(i)
			if c < 0 || !f.Excluded.Has(c) || seen.Has(c) {
				continue
			}
			smallest := smallestExcludedNotSeen(f.Excluded, seen)
			if c != smallest {
				continue candidate
			}
			seen = seen.Set(c)
		}
		out = append(out, cw)
	}
	return out
}

func smallestExcludedNotSeen(excluded, seen colormask.ColorMask) int {
	for c := 0; c < rules.MaxColors; c++ {
		if excluded.Has(c) && !seen.Has(c) {
			return c
		}
	}
	return -1
}
