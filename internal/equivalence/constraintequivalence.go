package equivalence

import (
	"github.com/go-mastermind/mastermind/internal/codeword"
	"github.com/go-mastermind/mastermind/internal/permutation"
	"github.com/go-mastermind/mastermind/internal/rules"
)

// ConstraintFilter keeps one representative among candidates related by a
// peg/color permutation that maps every past guess to itself: if
// (π, σ) fixes every guess so far, g and π∘σ(g) are indistinguishable to
// the breaker, so only the lexicographically smallest of the two need be
// tried.
type ConstraintFilter struct {
	rules   rules.Rules
	Permuts []permutation.Permutation
}

// NewConstraintFilter starts with every peg permutation and a fully
// unspecified color mapping -- nothing has been observed yet, so every
// symmetry is still live.
func NewConstraintFilter(r rules.Rules) *ConstraintFilter {
	return &ConstraintFilter{
		rules:   r,
		Permuts: permutation.PegPermutations(r.Pegs, r.Colors),
	}
}

// Clone returns an independent copy, since the search branches on filters.
func (f *ConstraintFilter) Clone() *ConstraintFilter {
	clone := &ConstraintFilter{rules: f.rules, Permuts: make([]permutation.Permutation, len(f.Permuts))}
	for i, p := range f.Permuts {
		clone.Permuts[i] = p.Clone()
	}
	return clone
}

// ObserveGuess drops every surviving (π, σ) that cannot be extended to map
// guess to itself, and tightens the color mapping of those that can.
func (f *ConstraintFilter) ObserveGuess(guess codeword.Codeword) {
	survivors := f.Permuts[:0]
	for _, p := range f.Permuts {
		if extended, ok := p.MapsGuessToItself(guess, f.rules.Pegs); ok {
			survivors = append(survivors, extended)
		}
	}
	f.Permuts = survivors
}

// IsCanonical reports whether no surviving (π, σ) maps cw to a
// lexicographically smaller codeword. For each permutation, the colors the
// guesses-so-far left free are mapped greedily in the order they first
// appear in the peg-permuted codeword, each to the smallest image not yet
// taken, which gives the smallest image of cw reachable under that π.
func (f *ConstraintFilter) IsCanonical(cw codeword.Codeword) bool {
	for _, p := range f.Permuts {
		complete := p.Clone()
		for i := 0; i < f.rules.Pegs; i++ {
			if c := cw.Peg(complete.Pegs[i]); c >= 0 && complete.Colors[c] == permutation.Undefined {
				img := 0
				for !complete.TryExtend(c, img) {
					img++
				}
			}
		}
		complete.CompleteGreedily()
		mapped := complete.Apply(cw, f.rules.Pegs)
		if lessLexicographic(mapped, cw, f.rules.Pegs) {
			return false
		}
	}
	return true
}

// Filter keeps, from list, only the canonical candidates under IsCanonical.
func (f *ConstraintFilter) Filter(list []codeword.Codeword) []codeword.Codeword {
	out := make([]codeword.Codeword, 0, len(list))
	for _, cw := range list {
		if f.IsCanonical(cw) {
			out = append(out, cw)
		}
	}
	return out
}

// lessLexicographic compares two codewords' digit views over the first
// pegs positions, deciding by the first differing peg.
func lessLexicographic(a, b codeword.Codeword, pegs int) bool {
	for i := 0; i < pegs; i++ {
		ca, cb := a.Peg(i), b.Peg(i)
		if ca != cb {
			return ca < cb
		}
	}
	return false
}
