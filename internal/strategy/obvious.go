package strategy

import (
	"github.com/go-mastermind/mastermind/internal/codeword"
	"github.com/go-mastermind/mastermind/internal/engine"
	"github.com/go-mastermind/mastermind/internal/feedback"
	"github.com/go-mastermind/mastermind/internal/partition"
)

// obviousMaxCellSize is the ceiling on cell size the relaxed obvious check
// accepts: a guess partitioning possibilities into cells no larger than 2,
// tried only while len(possibilities) stays within the feedback
// cardinality (a guess can't usefully distinguish more groups than there
// are distinct responses).
const obviousMaxCellSize = 2

// Obvious looks for a guess, drawn from possibilities itself, that needs
// no further search: either it singles out every possibility (the
// smallest possible partition), or -- only while possibilities is no
// larger than the feedback cardinality -- it splits possibilities into
// cells of at most two. Both cases are reported via cells so a caller can
// build the resulting subtree without repeating the partition. ok is
// false if no such guess exists, in which case the caller must fall back
// to a full strategy.
func Obvious(e *engine.Engine, possibilities []codeword.Codeword) (guess codeword.Codeword, cells []partition.Cell, ok bool) {
	n := len(possibilities)
	if n == 0 {
		return codeword.Codeword{}, nil, false
	}
	if n == 1 {
		return possibilities[0], []partition.Cell{{Response: feedback.Perfect(e.Rules.Pegs), Begin: 0, End: 1}}, true
	}

	if g, c, found := obviousWithMaxCell(e, possibilities, 1); found {
		return g, c, true
	}
	if n <= e.Rules.FeedbackCardinality() {
		if g, c, found := obviousWithMaxCell(e, possibilities, obviousMaxCellSize); found {
			return g, c, true
		}
	}
	return codeword.Codeword{}, nil, false
}

func obviousWithMaxCell(e *engine.Engine, possibilities []codeword.Codeword, maxCell int) (codeword.Codeword, []partition.Cell, bool) {
	trial := make([]codeword.Codeword, len(possibilities))
	for _, g := range possibilities {
		copy(trial, possibilities)
		cells := partition.Partition(trial, g, e)
		if allCellsAtMost(cells, maxCell) {
			copy(possibilities, trial)
			return g, cells, true
		}
	}
	return codeword.Codeword{}, nil, false
}

func allCellsAtMost(cells []partition.Cell, maxCell int) bool {
	for _, c := range cells {
		if c.Len() > maxCell {
			return false
		}
	}
	return true
}
