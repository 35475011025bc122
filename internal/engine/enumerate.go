package engine

import (
	"github.com/go-mastermind/mastermind/internal/codeword"
	"github.com/go-mastermind/mastermind/internal/rules"
)

// Enumerate generates the universe of codewords conforming to r, in
// lexicographic order on the digit view, by recursive depth-first
// assignment of each peg to a color subject to r.MaxRepeat().
func Enumerate(r rules.Rules) []codeword.Codeword {
	universe := make([]codeword.Codeword, 0, r.UniverseSize())
	counts := make([]int, r.Colors)
	cw := codeword.Empty()
	enumerateRec(r, &cw, counts, 0, &universe)
	return universe
}

func enumerateRec(r rules.Rules, cw *codeword.Codeword, counts []int, peg int, universe *[]codeword.Codeword) {
	if peg == r.Pegs {
		*universe = append(*universe, *cw)
		return
	}
	maxRepeat := r.MaxRepeat()
	for c := 0; c < r.Colors; c++ {
		if counts[c] >= maxRepeat {
			continue
		}
		counts[c]++
		cw.SetPeg(peg, c)
		enumerateRec(r, cw, counts, peg+1, universe)
		counts[c]--
	}
}
