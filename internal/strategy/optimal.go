package strategy

import (
	"sort"

	"github.com/go-mastermind/mastermind/internal/codeword"
	"github.com/go-mastermind/mastermind/internal/colormask"
	"github.com/go-mastermind/mastermind/internal/engine"
	"github.com/go-mastermind/mastermind/internal/equivalence"
	"github.com/go-mastermind/mastermind/internal/estimate"
	"github.com/go-mastermind/mastermind/internal/feedback"
	"github.com/go-mastermind/mastermind/internal/partition"
	"github.com/go-mastermind/mastermind/internal/stree"
)

// Constraints bounds the optimal search: MaxDepth caps how many guesses
// any single secret may take to expose, 0 meaning unbounded.
type Constraints struct {
	MaxDepth int
}

// Optimal builds a strategy tree by exhaustive branch-and-bound search,
// guaranteed minimal under Objective subject to Constraints. It is the
// most expensive strategy in this package by a wide margin; Constraints
// and a tight threshold are what keep it tractable.
//
// AllowNonPossibleGuesses controls whether candidate guesses are drawn
// from the whole universe (the classical approach, since a guess outside
// the remaining possibilities can sometimes split them more evenly) or
// restricted to possibilities only. Defaults to true via NewOptimal.
type Optimal struct {
	Engine                  *engine.Engine
	Objective               Objective
	Constraints             Constraints
	AllowNonPossibleGuesses bool

	estimate *estimate.Table
}

// NewOptimal builds an Optimal search for e, precomputing the lower-bound
// estimate table up to the size of e's universe.
func NewOptimal(e *engine.Engine, objective Objective, constraints Constraints) *Optimal {
	return &Optimal{
		Engine:                  e,
		Objective:               objective,
		Constraints:             constraints,
		AllowNonPossibleGuesses: true,
		estimate:                estimate.New(e.Rules, len(e.Universe())),
	}
}

// Build runs the search over the whole universe as both secrets and
// initial candidates, returning the resulting tree and its cost. ok is
// false if no complete strategy satisfies Constraints.
func (o *Optimal) Build() (*stree.Tree, Cost, bool) {
	tree := stree.New()
	filter := equivalence.New(o.Engine.Rules)
	secrets := append([]codeword.Codeword(nil), o.Engine.Universe()...)
	candidates := filter.CanonicalCandidates(o.Engine.Universe())

	maxDepth := o.Constraints.MaxDepth
	if maxDepth <= 0 {
		maxDepth = len(secrets) // a guess per secret is always a safe upper bound
	}
	// The initial budget must be a safe upper bound on total Steps, not the
	// (generally unreachable) theoretical lower bound: one guess to narrow
	// the universe to a single secret, plus at most maxDepth-1 more per
	// secret to pin it down exactly.
	initialBudget := len(secrets) * maxDepth
	cost, ok := o.search(tree, tree.Root(), secrets, candidates, filter, 0, maxDepth, initialBudget+1)
	return tree, cost, ok
}

// search solves secrets starting at parent, which sits at the given
// depth, within maxDepth further guesses and a total Steps budget of
// thresholdSteps (an upper bound this subtree's Cost.Steps must beat to
// be worth keeping). It mutates tree, inserting the winning subtree (or
// nothing, on failure) as parent's children.
func (o *Optimal) search(tree *stree.Tree, parent int, secrets, candidates []codeword.Codeword, filter *equivalence.Filter, depth, maxDepth, thresholdSteps int) (Cost, bool) {
	if len(secrets) == 0 || maxDepth == 0 {
		return Cost{}, false
	}
	if len(secrets) == 1 {
		tree.InsertChild(parent, secrets[0], feedback.Perfect(o.Engine.Rules.Pegs))
		return Cost{Steps: 1, Depth: depth + 1, Worst: 1}, true
	}

	thresholdSteps -= len(secrets)
	if thresholdSteps < 0 {
		return Cost{}, false
	}

	// Obvious shortcut: a guess that isolates every secret in its own cell
	// can never be beaten (no guess can split secrets any finer), so skip
	// ranking and recursing over every other candidate.
	if guess, cells, ok := obviousSingletons(o.Engine, secrets); ok {
		markBefore := tree.Last()
		cost, ok := o.tryCells(tree, parent, guess, cells, secrets, filter, depth, maxDepth, thresholdSteps)
		if ok {
			return cost, true
		}
		tree.Erase(markBefore+1, tree.Last()+1)
	}

	type scored struct {
		guess codeword.Codeword
		bound int
	}
	perfectOrdinal := feedback.Perfect(o.Engine.Rules.Pegs).Ordinal()
	ranked := make([]scored, 0, len(candidates))
	for _, g := range candidates {
		freq := o.Engine.CompareFrequency(g, secrets)
		ranked = append(ranked, scored{guess: g, bound: o.estimate.StepsLowerBound(freq, perfectOrdinal)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].bound < ranked[j].bound })

	haveBest := false
	var bestCost Cost
	bestMarkBefore, bestMarkAfter := -1, -1

	for _, s := range ranked {
		if s.bound >= thresholdSteps {
			break // sorted ascending: nothing further can beat the threshold either
		}

		markBefore := tree.Last()
		trial := append([]codeword.Codeword(nil), secrets...)
		cells := partition.Partition(trial, s.guess, o.Engine)

		cost, ok := o.tryCells(tree, parent, s.guess, cells, trial, filter, depth, maxDepth, thresholdSteps)
		if ok && (!haveBest || Better(o.Objective, cost, bestCost)) {
			if haveBest {
				erased := bestMarkAfter - bestMarkBefore
				tree.Erase(bestMarkBefore+1, bestMarkAfter+1)
				markBefore -= erased
			}
			bestCost = cost
			bestMarkBefore = markBefore
			bestMarkAfter = tree.Last()
			haveBest = true
			if cost.Steps < thresholdSteps {
				thresholdSteps = cost.Steps
			}
		} else {
			tree.Erase(markBefore+1, tree.Last()+1)
		}
	}

	return bestCost, haveBest
}

// tryCells builds the subtree for one candidate guess whose partition
// into cells has already been computed, inserting nodes as children of
// parent. It fails (returning ok=false) if any non-perfect cell can't be
// solved within the per-cell budget carved out of thresholdSteps.
func (o *Optimal) tryCells(tree *stree.Tree, parent int, guess codeword.Codeword, cells []partition.Cell, secrets []codeword.Codeword, filter *equivalence.Filter, depth, maxDepth, thresholdSteps int) (Cost, bool) {
	pegs := o.Engine.Rules.Pegs
	perfectOrdinal := feedback.Perfect(pegs).Ordinal()

	sort.SliceStable(cells, func(i, j int) bool { return cells[i].Len() < cells[j].Len() })

	bounds := make([]int, len(cells))
	remainingBound := 0
	for i, c := range cells {
		if c.Response.Ordinal() == perfectOrdinal {
			continue
		}
		bounds[i] = o.estimate.Simple(c.Len())
		remainingBound += bounds[i]
	}

	cost := Cost{Steps: len(secrets)}
	accumulated := 0
	for i, c := range cells {
		guessNode := tree.InsertChild(parent, guess, c.Response)
		if c.Response.Ordinal() == perfectOrdinal {
			mergeLeaf(&cost, depth+1)
			continue
		}

		remainingBound -= bounds[i]
		childBudget := thresholdSteps - accumulated - remainingBound
		if childBudget <= 0 {
			return Cost{}, false
		}

		childSecrets := c.Slice(secrets)
		childFilter := filter.Clone()
		newlyExcluded := colormask.Full(o.Engine.Rules.Colors) &^ o.Engine.ColorMask(childSecrets)
		childFilter.AddConstraint(guess, newlyExcluded)
		source := childSecrets
		if o.AllowNonPossibleGuesses {
			source = o.Engine.Universe()
		}
		childCandidates := childFilter.CanonicalCandidates(source)

		childCost, ok := o.search(tree, guessNode, childSecrets, childCandidates, childFilter, depth+1, maxDepth-1, childBudget)
		if !ok {
			return Cost{}, false
		}
		accumulated += childCost.Steps
		if accumulated+remainingBound >= thresholdSteps {
			return Cost{}, false
		}
		mergeSubtree(&cost, childCost)
	}
	return cost, true
}

// obviousSingletons is the strict (singleton-only) half of Obvious,
// inlined here without importing the engine-facing Obvious helper's
// relaxed size-2 fallback, which is not provably optimal and is left to
// the Heuristic strategies instead.
func obviousSingletons(e *engine.Engine, secrets []codeword.Codeword) (codeword.Codeword, []partition.Cell, bool) {
	trial := make([]codeword.Codeword, len(secrets))
	for _, g := range secrets {
		copy(trial, secrets)
		cells := partition.Partition(trial, g, e)
		allSingleton := true
		for _, c := range cells {
			if c.Len() != 1 {
				allSingleton = false
				break
			}
		}
		if allSingleton {
			copy(secrets, trial)
			return g, cells, true
		}
	}
	return codeword.Codeword{}, nil, false
}
