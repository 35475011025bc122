// Package breaker implements the interactive code-breaker driver (spec's
// supplemented CodeBreaker component, grounded on original_source's
// CodeBreaker.h/.cpp): something that holds the narrowing possibility set
// across a real game and hands guesses to a Strategy one at a time,
// whether that strategy is Simple or Heuristic. Optimal builds a whole
// tree at once and does not implement Strategy, so it cannot drive a
// CodeBreaker.
package breaker

import (
	"math/rand/v2"

	"github.com/go-mastermind/mastermind/internal/codeword"
	"github.com/go-mastermind/mastermind/internal/colormask"
	"github.com/go-mastermind/mastermind/internal/engine"
	"github.com/go-mastermind/mastermind/internal/equivalence"
	"github.com/go-mastermind/mastermind/internal/feedback"
	"github.com/go-mastermind/mastermind/internal/generics"
	"github.com/go-mastermind/mastermind/internal/rules"
	"github.com/go-mastermind/mastermind/internal/strategy"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// CodeBreaker drives one game: it owns the engine, the narrowing
// possibility list, and the equivalence filter, and asks a Strategy for
// each guess in turn.
type CodeBreaker struct {
	Engine   *engine.Engine
	Strategy strategy.Strategy

	possibilities []codeword.Codeword
	filter        *equivalence.Filter
	guesses       []codeword.Codeword
	responses     []feedback.Feedback
}

// New creates a CodeBreaker ready to play a fresh game under e's rules.
func New(e *engine.Engine, s strategy.Strategy) *CodeBreaker {
	b := &CodeBreaker{Engine: e, Strategy: s}
	b.Reset()
	return b
}

// Reset discards all guesses made so far, returning the breaker to the
// state it had right after New.
func (b *CodeBreaker) Reset() {
	b.possibilities = append([]codeword.Codeword(nil), b.Engine.Universe()...)
	b.filter = equivalence.New(b.Engine.Rules)
	b.guesses = nil
	b.responses = nil
}

// PossibilityCount returns how many secrets remain consistent with every
// guess and response seen so far.
func (b *CodeBreaker) PossibilityCount() int {
	return len(b.possibilities)
}

// Possibilities returns the current possibility set. Callers must not
// mutate the returned slice.
func (b *CodeBreaker) Possibilities() []codeword.Codeword {
	return b.possibilities
}

// MakeGuess asks the configured Strategy for the next guess, restricting
// its candidate pool to the canonical representatives under the
// equivalence filter accumulated so far.
func (b *CodeBreaker) MakeGuess() (codeword.Codeword, error) {
	if len(b.possibilities) == 0 {
		return codeword.Codeword{}, errors.New("breaker: no possibilities remain, feedback history is inconsistent")
	}
	candidates := b.filter.CanonicalCandidates(b.Engine.Universe())
	guess, ok := b.Strategy.MakeGuess(b.possibilities, candidates)
	if !ok {
		return codeword.Codeword{}, errors.New("breaker: strategy declined to produce a guess")
	}
	if klog.V(2).Enabled() {
		klog.Infof("breaker: guess %s against %d possibilities", guess.Format(b.Engine.Rules.Pegs, ""), len(b.possibilities))
	}
	return guess, nil
}

// AddFeedback narrows the possibility set to whatever remains consistent
// with guess producing response, and tightens the equivalence filter. The
// guess need not be one MakeGuess previously returned -- a human player
// is free to try anything.
func (b *CodeBreaker) AddFeedback(guess codeword.Codeword, response feedback.Feedback) error {
	if _, err := feedback.New(response.NA, response.NB, b.Engine.Rules.Pegs); err != nil {
		return errors.Wrap(err, "breaker: invalid feedback")
	}
	b.possibilities = b.Engine.FilterByFeedback(b.possibilities, guess, response)
	b.guesses = append(b.guesses, guess)
	b.responses = append(b.responses, response)

	newlyExcluded := colormask.Full(b.Engine.Rules.Colors) &^ b.Engine.ColorMask(b.possibilities)
	b.filter.AddConstraint(guess, newlyExcluded)
	return nil
}

// History returns every guess made so far paired with the response it
// got, in play order, for a caller to display a game recap.
func (b *CodeBreaker) History() []generics.Pair[codeword.Codeword, feedback.Feedback] {
	history := make([]generics.Pair[codeword.Codeword, feedback.Feedback], len(b.guesses))
	for i, g := range b.guesses {
		history[i] = generics.Pair[codeword.Codeword, feedback.Feedback]{First: g, Second: b.responses[i]}
	}
	return history
}

// RandomSecret draws a uniformly random codeword conforming to r using
// rng, for the game harness to pick a secret the breaker must discover.
func RandomSecret(rng *rand.Rand, r rules.Rules) codeword.Codeword {
	cw := codeword.Empty()
	if r.Repeatable {
		for i := 0; i < r.Pegs; i++ {
			cw.SetPeg(i, rng.IntN(r.Colors))
		}
		return cw
	}
	colors := rng.Perm(r.Colors)
	for i := 0; i < r.Pegs; i++ {
		cw.SetPeg(i, colors[i])
	}
	return cw
}
