// Package strategy implements the guess-picking strategies (spec
// component C8): Simple, Obvious, the four Heuristic scorers, and the
// Optimal branch-and-bound search.
package strategy

import "github.com/go-mastermind/mastermind/internal/codeword"

// Strategy is the contract every guess-picking algorithm satisfies: given
// the current possibility set and a (possibly larger) candidate list, pick
// the next guess. The guess, if returned, must come from possibilities or
// candidates; returning ok=false signals the strategy declines to choose.
type Strategy interface {
	MakeGuess(possibilities, candidates []codeword.Codeword) (guess codeword.Codeword, ok bool)
}

// Objective is the lexicographic criterion strategy costs are compared
// under.
type Objective int

const (
	// MinSteps minimizes total guesses summed across all secrets.
	MinSteps Objective = iota
	// MinDepth minimizes the maximum depth (worst-case guesses) across all secrets.
	MinDepth
	// MinWorst minimizes the count of secrets at the maximum depth, after minimizing depth.
	MinWorst
)

// Cost is the triple a strategy (or a subtree of one) is judged by: total
// guesses summed across all secrets, the maximum depth reached, and how
// many secrets sit at that maximum depth.
type Cost struct {
	Steps int
	Depth int
	Worst int
}

// Compare orders a and b under objective, returning a negative number if a
// is better, positive if b is better, 0 if equal. MinSteps orders by
// Steps, then Depth, then Worst; MinDepth and MinWorst both order by
// Depth, then Worst, then Steps.
func Compare(objective Objective, a, b Cost) int {
	ka, kb := sortKey(objective, a), sortKey(objective, b)
	for i := range ka {
		if ka[i] != kb[i] {
			if ka[i] < kb[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func sortKey(objective Objective, c Cost) [3]int {
	switch objective {
	case MinDepth:
		return [3]int{c.Depth, c.Worst, c.Steps}
	case MinWorst:
		return [3]int{c.Depth, c.Worst, c.Steps}
	default: // MinSteps
		return [3]int{c.Steps, c.Depth, c.Worst}
	}
}

// Better reports whether a strictly beats b under objective.
func Better(objective Objective, a, b Cost) bool {
	return Compare(objective, a, b) < 0
}

// mergeLeaf folds a newly-resolved leaf at absolute depth d into an
// accumulating Cost, updating Depth/Worst the way every cell-combining
// loop in this package needs to.
func mergeLeaf(cost *Cost, d int) {
	switch {
	case d > cost.Depth:
		cost.Depth = d
		cost.Worst = 1
	case d == cost.Depth:
		cost.Worst++
	}
}

// mergeSubtree folds a child subtree's cost into an accumulating parent
// Cost: steps add, depth/worst combine by whichever subtree went deeper.
func mergeSubtree(cost *Cost, child Cost) {
	cost.Steps += child.Steps
	switch {
	case child.Depth > cost.Depth:
		cost.Depth = child.Depth
		cost.Worst = child.Worst
	case child.Depth == cost.Depth:
		cost.Worst += child.Worst
	}
}
