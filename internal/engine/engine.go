// Package engine is the rules-aware façade (spec component C12): it owns
// the codeword universe for a set of rules and dispatches comparisons to
// whichever Comparator variant fits (generic or no-repeat).
package engine

import (
	"sync/atomic"

	"github.com/go-mastermind/mastermind/internal/codeword"
	"github.com/go-mastermind/mastermind/internal/colormask"
	"github.com/go-mastermind/mastermind/internal/feedback"
	"github.com/go-mastermind/mastermind/internal/rules"
)

// Engine bundles a Rules value, the universe of codewords it admits, and
// the comparator variant selected for it. It is immutable after
// construction and safe for concurrent use (CompareMany's call counter
// aside, which is atomic).
type Engine struct {
	Rules    rules.Rules
	universe []codeword.Codeword
	cmp      Comparator

	// countCompares, if enabled via WithCallCounter, tallies every
	// secret compared across Compare/CompareMany calls. It exists purely
	// for the benchmark harness' throughput reporting (spec's dropped
	// "call counter" feature); nil otherwise.
	countCompares *atomic.Int64
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithCallCounter enables a compare counter, readable via CompareCalls.
func WithCallCounter() Option {
	return func(e *Engine) { e.countCompares = new(atomic.Int64) }
}

// New constructs an Engine for r: it builds the universe via Enumerate and
// picks the generic or no-repeat comparator based on r.Repeatable.
func New(r rules.Rules, opts ...Option) (*Engine, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{Rules: r, universe: Enumerate(r)}
	if r.Repeatable {
		e.cmp = newGenericComparator(r)
	} else {
		e.cmp = newNoRepeatComparator(r)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Universe returns the full codeword universe, in the lexicographic order
// Enumerate produced it. Callers must not mutate the returned slice.
func (e *Engine) Universe() []codeword.Codeword {
	return e.universe
}

// CompareCalls returns the number of secrets compared so far, or 0 if the
// counter wasn't enabled via WithCallCounter.
func (e *Engine) CompareCalls() int64 {
	if e.countCompares == nil {
		return 0
	}
	return e.countCompares.Load()
}

// Compare returns the feedback of guess against secret.
func (e *Engine) Compare(guess, secret codeword.Codeword) feedback.Feedback {
	if e.countCompares != nil {
		e.countCompares.Add(1)
	}
	return e.cmp.Compare(guess, secret)
}

// CompareFrequency returns the frequency table of guess's feedback against
// every codeword in secrets, without recording individual feedbacks.
func (e *Engine) CompareFrequency(guess codeword.Codeword, secrets []codeword.Codeword) FrequencyTable {
	if e.countCompares != nil {
		e.countCompares.Add(int64(len(secrets)))
	}
	return e.cmp.CompareMany(guess, secrets, nil)
}

// CompareAndRecord is like CompareFrequency but also fills out with the
// individual feedback for each secret; out must have len(secrets) capacity.
func (e *Engine) CompareAndRecord(guess codeword.Codeword, secrets []codeword.Codeword, out []feedback.Feedback) FrequencyTable {
	if e.countCompares != nil {
		e.countCompares.Add(int64(len(secrets)))
	}
	return e.cmp.CompareMany(guess, secrets, out)
}

// FilterByFeedback returns the subset of list consistent with having
// produced response when compared against guess -- i.e. the possibility
// set after observing that constraint.
func (e *Engine) FilterByFeedback(list []codeword.Codeword, guess codeword.Codeword, response feedback.Feedback) []codeword.Codeword {
	out := make([]codeword.Codeword, 0, len(list))
	for _, secret := range list {
		if e.cmp.Compare(guess, secret) == response {
			out = append(out, secret)
		}
	}
	return out
}

// ColorMask returns the set of colors that appear in at least one codeword
// of list.
func (e *Engine) ColorMask(list []codeword.Codeword) colormask.ColorMask {
	var mask colormask.ColorMask
	for _, cw := range list {
		for c := 0; c < e.Rules.Colors; c++ {
			if cw.Count(c) > 0 {
				mask = mask.Set(c)
			}
		}
	}
	return mask
}
