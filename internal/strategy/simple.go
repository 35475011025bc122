package strategy

import "github.com/go-mastermind/mastermind/internal/codeword"

// Simple always guesses the first remaining possibility. It never
// considers candidates outside possibilities and does no lookahead; it
// exists mainly as the cheapest baseline to compare the other strategies
// against.
type Simple struct{}

// MakeGuess returns possibilities[0], or ok=false if possibilities is empty.
func (Simple) MakeGuess(possibilities, _ []codeword.Codeword) (codeword.Codeword, bool) {
	if len(possibilities) == 0 {
		return codeword.Codeword{}, false
	}
	return possibilities[0], true
}
