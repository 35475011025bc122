// Package codeword implements the packed codeword value: a fixed 16-byte
// slot holding both a per-color counter view and a per-peg digit view in
// sync, so the comparator kernel can treat it as a small vector.
package codeword

import (
	"strings"

	"github.com/go-mastermind/mastermind/internal/rules"
	"github.com/pkg/errors"
)

// sentinel marks an unused peg position. It lies far above the largest
// legal color index (rules.MaxColors-1), so it can never equal a real color.
const sentinel = 0xff

// Codeword is a packed value: bytes [0, rules.MaxColors) are the
// per-color counts, bytes [rules.MaxColors, rules.MaxColors+rules.MaxPegs)
// are the per-peg colors (or sentinel). Equality is plain byte-wise
// comparison, which Go gives for free on a fixed-size array.
type Codeword [rules.MaxColors + rules.MaxPegs]byte

// Empty returns a codeword with every peg unset and every counter zero.
func Empty() Codeword {
	var cw Codeword
	for i := rules.MaxColors; i < len(cw); i++ {
		cw[i] = sentinel
	}
	return cw
}

// Peg returns the color assigned to peg i, or -1 if the peg is unset.
func (cw Codeword) Peg(i int) int {
	v := cw[rules.MaxColors+i]
	if v == sentinel {
		return -1
	}
	return int(v)
}

// Count returns how many pegs carry color c.
func (cw Codeword) Count(c int) int {
	return int(cw[c])
}

// SetPeg assigns color c to peg i, updating the digit and counter views
// together. Setting a peg that already held a color first undoes that
// color's count.
func (cw *Codeword) SetPeg(i, c int) {
	slot := rules.MaxColors + i
	if old := cw[slot]; old != sentinel {
		cw[old]--
	}
	cw[slot] = byte(c)
	cw[c]++
}

// HasRepeat reports whether any color appears on more than one peg.
func (cw Codeword) HasRepeat() bool {
	for c := 0; c < rules.MaxColors; c++ {
		if cw[c] > 1 {
			return true
		}
	}
	return false
}

// Conforms reports whether cw is a legal codeword under r: every peg in
// [0, r.Pegs) is set to a color in [0, r.Colors), every peg at or beyond
// r.Pegs is unset, and no color repeats if !r.Repeatable.
func (cw Codeword) Conforms(r rules.Rules) bool {
	for i := 0; i < r.Pegs; i++ {
		c := cw.Peg(i)
		if c < 0 || c >= r.Colors {
			return false
		}
	}
	for i := r.Pegs; i < rules.MaxPegs; i++ {
		if cw.Peg(i) != -1 {
			return false
		}
	}
	if !r.Repeatable && cw.HasRepeat() {
		return false
	}
	return true
}

// DefaultAlphabet is used by Format and Parse when no alphabet is given:
// the colors are named '1'..'9','0' as the classic pen-and-paper notation
// uses, capped to rules.MaxColors.
const DefaultAlphabet = "1234567890"

// Format renders cw's first pegs pegs using alphabet (alphabet[c] names
// color c). If alphabet is empty, DefaultAlphabet is used.
func (cw Codeword) Format(pegs int, alphabet string) string {
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	var sb strings.Builder
	sb.Grow(pegs)
	for i := 0; i < pegs; i++ {
		c := cw.Peg(i)
		if c < 0 || c >= len(alphabet) {
			sb.WriteByte('?')
			continue
		}
		sb.WriteByte(alphabet[c])
	}
	return sb.String()
}

// Parse reads a codeword from a string of color digits under r, using
// alphabet to map characters to color indices (DefaultAlphabet if empty).
// It fails with an error if the string's length doesn't match r.Pegs, a
// character isn't in the alphabet, or the resulting codeword doesn't
// conform to r (e.g. a repeated color when !r.Repeatable).
func Parse(s string, r rules.Rules, alphabet string) (Codeword, error) {
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	if len(s) != r.Pegs {
		return Codeword{}, errors.Errorf("invalid codeword %q: want %d pegs, got %d", s, r.Pegs, len(s))
	}
	cw := Empty()
	for i := 0; i < r.Pegs; i++ {
		c := strings.IndexByte(alphabet, s[i])
		if c < 0 || c >= r.Colors {
			return Codeword{}, errors.Errorf("invalid codeword %q: character %q at position %d is not a valid color", s, s[i], i)
		}
		cw.SetPeg(i, c)
	}
	if !cw.Conforms(r) {
		return Codeword{}, errors.Errorf("invalid codeword %q: does not conform to rules %v", s, r)
	}
	return cw, nil
}
