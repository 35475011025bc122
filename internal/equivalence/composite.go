package equivalence

import (
	"github.com/go-mastermind/mastermind/internal/codeword"
	"github.com/go-mastermind/mastermind/internal/colormask"
	"github.com/go-mastermind/mastermind/internal/rules"
)

// Filter composes ColorFilter and ConstraintFilter, applying both in
// sequence. It is what the strategy search actually branches on.
type Filter struct {
	Color      *ColorFilter
	Constraint *ConstraintFilter
}

// New starts a composite filter with no constraints observed yet.
func New(r rules.Rules) *Filter {
	return &Filter{
		Color:      NewColorFilter(r),
		Constraint: NewConstraintFilter(r),
	}
}

// Clone returns an independent copy, since the search branches on filters.
func (f *Filter) Clone() *Filter {
	return &Filter{Color: f.Color.Clone(), Constraint: f.Constraint.Clone()}
}

// AddConstraint records that guess was made (and, optionally, that
// newlyExcluded colors are now known impossible), tightening both filters.
func (f *Filter) AddConstraint(guess codeword.Codeword, newlyExcluded colormask.ColorMask) {
	f.Color.ObserveGuess(guess)
	f.Color.ExcludeColors(newlyExcluded)
	f.Constraint.ObserveGuess(guess)
}

// CanonicalCandidates applies both filters in sequence, preserving input
// order, and returns the surviving canonical candidates.
func (f *Filter) CanonicalCandidates(list []codeword.Codeword) []codeword.Codeword {
	return f.Constraint.Filter(f.Color.Filter(list))
}
