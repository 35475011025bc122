// Package partition implements the grouping of a candidate list by the
// feedback each member produces against a fixed guess (spec component C6).
package partition

import (
	"github.com/go-mastermind/mastermind/internal/codeword"
	"github.com/go-mastermind/mastermind/internal/engine"
	"github.com/go-mastermind/mastermind/internal/feedback"
)

// Cell is one non-empty group of a partition: every codeword in
// list[Begin:End] produced Response when compared against the guess.
type Cell struct {
	Response feedback.Feedback
	Begin    int
	End      int
}

// Slice returns the codewords belonging to this cell, given the list that
// was partitioned.
func (c Cell) Slice(list []codeword.Codeword) []codeword.Codeword {
	return list[c.Begin:c.End]
}

// Len returns the number of codewords in this cell.
func (c Cell) Len() int { return c.End - c.Begin }

// Partition reorders list in place so that codewords sharing a feedback
// against guess become contiguous, ordered by increasing feedback ordinal,
// and stable within each group. It returns the non-empty cell boundaries.
//
// The implementation computes the frequency table once, turns it into a
// per-ordinal write cursor, and does a single stable bucket-sort pass
// through a shadow buffer -- equivalent in effect to the specification's
// "swap each codeword into the slot its cursor indicates", but easier to
// keep correct and stable in a garbage-collected language.
func Partition(list []codeword.Codeword, guess codeword.Codeword, e *engine.Engine) []Cell {
	n := len(list)
	if n == 0 {
		return nil
	}
	fbs := make([]feedback.Feedback, n)
	freq := e.CompareAndRecord(guess, list, fbs)

	cursor := make([]int, len(freq))
	running := 0
	for k, count := range freq {
		cursor[k] = running
		running += count
	}
	write := append([]int(nil), cursor...)

	shadow := make([]codeword.Codeword, n)
	for i, c := range list {
		k := fbs[i].Ordinal()
		shadow[write[k]] = c
		write[k]++
	}
	copy(list, shadow)

	cells := make([]Cell, 0, freq.NonEmptyCells())
	for k, count := range freq {
		if count == 0 {
			continue
		}
		cells = append(cells, Cell{
			Response: feedback.FromOrdinal(k),
			Begin:    cursor[k],
			End:      cursor[k] + count,
		})
	}
	return cells
}
