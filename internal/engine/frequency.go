package engine

import "github.com/go-mastermind/mastermind/internal/rules"

// FrequencyTable is a dense array indexed by feedback ordinal, counting
// occurrences of each feedback in a comparison against many secrets. Its
// size always equals rules.Rules.FeedbackCardinality() for the prevailing
// rules; a hash map is deliberately never used here, the cardinality is
// tiny and known up front.
type FrequencyTable []int

// NewFrequencyTable allocates a zeroed table sized for r.
func NewFrequencyTable(r rules.Rules) FrequencyTable {
	return make(FrequencyTable, r.FeedbackCardinality())
}

// Total returns the sum of all buckets, i.e. the number of secrets that
// were compared to produce this table.
func (f FrequencyTable) Total() int {
	total := 0
	for _, n := range f {
		total += n
	}
	return total
}

// NonEmptyCells returns how many feedback ordinals occurred at least once.
func (f FrequencyTable) NonEmptyCells() int {
	n := 0
	for _, c := range f {
		if c > 0 {
			n++
		}
	}
	return n
}

// MaxCell returns the size of the largest non-empty bucket.
func (f FrequencyTable) MaxCell() int {
	max := 0
	for _, c := range f {
		if c > max {
			max = c
		}
	}
	return max
}
