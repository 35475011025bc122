package strategy

import (
	"math"

	"github.com/go-mastermind/mastermind/internal/codeword"
	"github.com/go-mastermind/mastermind/internal/engine"
	"github.com/go-mastermind/mastermind/internal/feedback"
)

// ScoreFunc selects which scoring functor Heuristic ranks candidates by.
// Every functor is framed so that a lower score is always better, which
// keeps the comparison and tie-break logic in Heuristic.MakeGuess uniform
// across all four.
type ScoreFunc int

const (
	// MinMax scores a candidate by the size of its largest response cell;
	// minimizing it is Knuth's original worst-case strategy.
	MinMax ScoreFunc = iota
	// MinAvg scores a candidate by the expected cell size, i.e. Sum(n_i^2);
	// minimizing it minimizes the average number of remaining possibilities.
	MinAvg
	// MaxEntropy scores a candidate by Sum(n_i * log(n_i)); minimizing this
	// is equivalent to maximizing the information-theoretic entropy of the
	// response distribution, since Sum(n_i*log(n_i)) = N*log(N) - N*H.
	MaxEntropy
	// MaxParts scores a candidate by -NonEmptyCells; minimizing it
	// maximizes the number of distinct responses the guess can produce.
	MaxParts
)

// entropyTolerance absorbs floating-point drift (~100 ULPs of float64)
// when comparing two MaxEntropy scores that are mathematically equal but
// accumulated through a different summation order.
const entropyTolerance = 100 * 2.220446049250313e-16

// score computes ScoreFunc kind's value over freq, lower is better.
func score(kind ScoreFunc, freq engine.FrequencyTable) float64 {
	switch kind {
	case MinMax:
		return float64(freq.MaxCell())
	case MinAvg:
		sum := 0
		for _, n := range freq {
			sum += n * n
		}
		return float64(sum)
	case MaxEntropy:
		var h float64
		for _, n := range freq {
			if n > 0 {
				h += float64(n) * math.Log(float64(n))
			}
		}
		return h
	case MaxParts:
		return -float64(freq.NonEmptyCells())
	default:
		return 0
	}
}

// scoreLess reports whether a is strictly better than b under kind,
// applying entropyTolerance to absorb float noise for MaxEntropy.
func scoreLess(kind ScoreFunc, a, b float64) bool {
	if kind == MaxEntropy {
		scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
		if math.Abs(a-b) <= entropyTolerance*scale {
			return false
		}
	}
	return a < b
}

// Heuristic picks the candidate that scores best under Score, breaking
// ties by preferring a candidate that is itself a remaining possibility,
// and after that by picking whichever candidate was considered first.
type Heuristic struct {
	Engine *engine.Engine
	Score  ScoreFunc
}

// MakeGuess scores every candidate's CompareFrequency against
// possibilities and returns the best one.
func (h *Heuristic) MakeGuess(possibilities, candidates []codeword.Codeword) (codeword.Codeword, bool) {
	if len(candidates) == 0 {
		return codeword.Codeword{}, false
	}
	perfectOrdinal := feedback.Perfect(h.Engine.Rules.Pegs).Ordinal()

	var best codeword.Codeword
	var bestScore float64
	bestInPossibilities := false
	have := false

	for _, g := range candidates {
		freq := h.Engine.CompareFrequency(g, possibilities)
		s := score(h.Score, freq)
		inPoss := perfectOrdinal < len(freq) && freq[perfectOrdinal] > 0

		if !have {
			best, bestScore, bestInPossibilities, have = g, s, inPoss, true
			continue
		}
		if scoreLess(h.Score, s, bestScore) {
			best, bestScore, bestInPossibilities = g, s, inPoss
			continue
		}
		if !scoreLess(h.Score, bestScore, s) && inPoss && !bestInPossibilities {
			// tied score: a candidate drawn from possibilities wins over one that isn't.
			best, bestScore, bestInPossibilities = g, s, inPoss
		}
	}
	return best, have
}
