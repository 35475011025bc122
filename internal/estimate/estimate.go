// Package estimate implements the lower-bound cost estimator used to
// prune the optimal branch-and-bound search (spec component C10).
package estimate

import (
	"github.com/go-mastermind/mastermind/internal/engine"
	"github.com/go-mastermind/mastermind/internal/rules"
)

// Table precomputes simple[n], the lower bound on total guesses needed to
// reveal n secrets when a guess can split its possibilities into at most
// Branching non-perfect cells.
type Table struct {
	Branching int
	simple    []int
}

// New builds a Table for r, precomputing simple[0..maxN].
func New(r rules.Rules, maxN int) *Table {
	b := r.Pegs*(r.Pegs+3)/2 - 1
	if b < 1 {
		b = 1
	}
	t := &Table{Branching: b, simple: make([]int, maxN+1)}
	for n := 1; n <= maxN; n++ {
		t.simple[n] = computeSimple(n, b)
	}
	return t
}

// computeSimple is the recurrence from the specification: each guess
// costs one step per remaining secret; a guess can resolve `count`
// secrets outright (the singleton cells) and pushes the rest into at most
// Branching further cells, whose size grows geometrically.
func computeSimple(n, branching int) int {
	cost, remaining, count := 0, n, 1
	for remaining > 0 {
		cost += remaining
		remaining -= count
		count *= branching
	}
	return cost
}

// Simple returns the precomputed lower bound for n secrets, computing it
// on demand if n exceeds the table built at construction time.
func (t *Table) Simple(n int) int {
	if n <= 0 {
		return 0
	}
	if n < len(t.simple) {
		return t.simple[n]
	}
	return computeSimple(n, t.Branching)
}

// StepsLowerBound sums Simple(freq[k]) over every non-perfect feedback
// ordinal k, giving a lower bound on the extra guesses still needed after
// making the guess that produced freq.
func (t *Table) StepsLowerBound(freq engine.FrequencyTable, perfectOrdinal int) int {
	total := 0
	for k, n := range freq {
		if k == perfectOrdinal || n == 0 {
			continue
		}
		total += t.Simple(n)
	}
	return total
}
