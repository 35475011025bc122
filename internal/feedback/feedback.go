// Package feedback implements the (nA, nB) response to a guess and its
// compact ordinal encoding, used throughout the module to index frequency
// tables and strategy tree nodes.
package feedback

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Feedback is the number of exact matches (NA) and color-only matches (NB)
// a guess produced against a secret. The zero value is 0A0B, a legal
// feedback; the "empty/unknown" sentinel is constructed with Empty().
type Feedback struct {
	NA, NB int
}

// Empty is the sentinel feedback, used for "no response yet" (e.g. the
// root of a strategy tree). Its Ordinal is -1, outside any legal range.
func Empty() Feedback { return Feedback{NA: -1, NB: -1} }

// IsEmpty reports whether fb is the sentinel value.
func (fb Feedback) IsEmpty() bool { return fb.NA < 0 || fb.NB < 0 }

// Perfect is the feedback of a guess that exactly matches the secret under
// the given number of pegs: (pegs, 0).
func Perfect(pegs int) Feedback { return Feedback{NA: pegs, NB: 0} }

// IsPerfect reports whether fb is the perfect feedback for pegs.
func (fb Feedback) IsPerfect(pegs int) bool { return fb.NA == pegs && fb.NB == 0 }

// New validates and constructs a Feedback from (nA, nB) under the given
// number of pegs: both must be in [0, pegs], their sum must not exceed
// pegs, and the combination (pegs-1, 1) is unreachable (a single peg that
// would complete an exact match must itself be exact).
func New(nA, nB, pegs int) (Feedback, error) {
	if nA < 0 || nA > pegs || nB < 0 || nB > pegs || nA+nB > pegs {
		return Feedback{}, errors.Errorf("invalid feedback %dA%dB for %d pegs", nA, nB, pegs)
	}
	if nA == pegs-1 && nB == 1 {
		return Feedback{}, errors.Errorf("invalid feedback %dA%dB: (pegs-1, 1) is unreachable", nA, nB)
	}
	return Feedback{NA: nA, NB: nB}, nil
}

// Ordinal encodes fb as a single index k = s(s+1)/2 + nA, where s = nA+nB.
// The set of legal ordinals for a given pegs count has size
// rules.Rules.FeedbackCardinality(); the sentinel Empty() encodes to -1.
func (fb Feedback) Ordinal() int {
	if fb.IsEmpty() {
		return -1
	}
	s := fb.NA + fb.NB
	return s*(s+1)/2 + fb.NA
}

// FromOrdinal decodes the inverse of Ordinal. A negative ordinal decodes to
// the Empty sentinel.
func FromOrdinal(k int) Feedback {
	if k < 0 {
		return Empty()
	}
	// s is the largest integer with s(s+1)/2 <= k.
	s := int((math.Sqrt(8*float64(k)+1) - 1) / 2)
	for s*(s+1)/2 > k {
		s--
	}
	for (s+1)*(s+2)/2 <= k {
		s++
	}
	nA := k - s*(s+1)/2
	return Feedback{NA: nA, NB: s - nA}
}

// Compact packs fb into a single byte as (nA<<4)|nB. The generic
// comparator's 256-entry table does not use this form: it is indexed by
// (nA<<4)|nAB, with nAB = nA+nB.
func (fb Feedback) Compact() uint8 {
	return uint8(fb.NA<<4) | uint8(fb.NB)
}

// FromCompact is the inverse of Compact.
func FromCompact(b uint8) Feedback {
	return Feedback{NA: int(b >> 4), NB: int(b & 0x0f)}
}

// String renders fb as "<nA>A<nB>B", e.g. "4A0B".
func (fb Feedback) String() string {
	if fb.IsEmpty() {
		return "-A-B"
	}
	return fmt.Sprintf("%dA%dB", fb.NA, fb.NB)
}

// Parse reads a feedback from the "<digit>A<digit>B" form produced by
// String, validating it against pegs.
func Parse(s string, pegs int) (Feedback, error) {
	var nA, nB int
	if _, err := fmt.Sscanf(s, "%dA%dB", &nA, &nB); err != nil {
		return Feedback{}, errors.Wrapf(err, "invalid feedback string %q", s)
	}
	return New(nA, nB, pegs)
}
