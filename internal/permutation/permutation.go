// Package permutation implements the codeword symmetry used by the
// equivalence filters: a peg permutation composed with a partial color
// mapping.
package permutation

import "github.com/go-mastermind/mastermind/internal/codeword"

// Undefined marks a color with no image yet under a partial color mapping.
const Undefined = -1

// Permutation is a peg permutation Pegs (Pegs[i] = π(i)) composed with a
// partial color mapping Colors (Colors[c] = σ(c), or Undefined). Applied to
// a codeword by c'[i] = σ(c[π(i)]).
type Permutation struct {
	Pegs   []int
	Colors []int
}

// Identity returns the identity permutation over pegs pegs and colors
// colors: Pegs[i] == i, Colors entirely Undefined.
func Identity(pegs, colors int) Permutation {
	p := Permutation{
		Pegs:   make([]int, pegs),
		Colors: make([]int, colors),
	}
	for i := range p.Pegs {
		p.Pegs[i] = i
	}
	for c := range p.Colors {
		p.Colors[c] = Undefined
	}
	return p
}

// Clone returns a deep copy of p.
func (p Permutation) Clone() Permutation {
	return Permutation{
		Pegs:   append([]int(nil), p.Pegs...),
		Colors: append([]int(nil), p.Colors...),
	}
}

// PegPermutations returns every permutation of [0, pegs) as a Permutation
// with an entirely unspecified color mapping -- the initial candidate set
// for the constraint-equivalence filter.
func PegPermutations(pegs, colors int) []Permutation {
	indices := make([]int, pegs)
	for i := range indices {
		indices[i] = i
	}
	var result []Permutation
	var permute func(k int)
	permute = func(k int) {
		if k == len(indices) {
			perm := Identity(pegs, colors)
			copy(perm.Pegs, indices)
			result = append(result, perm)
			return
		}
		for i := k; i < len(indices); i++ {
			indices[k], indices[i] = indices[i], indices[k]
			permute(k + 1)
			indices[k], indices[i] = indices[i], indices[k]
		}
	}
	permute(0)
	return result
}

// TryExtend attempts to map color c to image under p, tightening p's color
// mapping. It succeeds (returning true) if c had no image yet, or already
// mapped to image; it fails if c was already mapped to something else, or
// if image is already the image of a different color (colors must map
// injectively).
func (p Permutation) TryExtend(c, image int) bool {
	if p.Colors[c] != Undefined {
		return p.Colors[c] == image
	}
	for cc, img := range p.Colors {
		if cc != c && img == image {
			return false
		}
	}
	p.Colors[c] = image
	return true
}

// CompleteGreedily fills every remaining Undefined color with the smallest
// unused color index, so Apply never encounters an undefined image. Used
// right before canonicality checks, which need a total mapping.
func (p Permutation) CompleteGreedily() {
	used := make([]bool, len(p.Colors))
	for _, img := range p.Colors {
		if img != Undefined {
			used[img] = true
		}
	}
	next := 0
	for c, img := range p.Colors {
		if img != Undefined {
			continue
		}
		for used[next] {
			next++
		}
		p.Colors[c] = next
		used[next] = true
	}
}

// Apply returns the codeword obtained by c'[i] = σ(c[π(i)]) over pegs
// positions, leaving unused pegs (index >= pegs) untouched. Colors must be
// a total mapping (see CompleteGreedily); applying with an Undefined image
// panics, since it signals a filter bug rather than bad input.
func (p Permutation) Apply(cw codeword.Codeword, pegs int) codeword.Codeword {
	out := codeword.Empty()
	for i := 0; i < pegs; i++ {
		src := cw.Peg(p.Pegs[i])
		if src < 0 {
			continue
		}
		img := p.Colors[src]
		if img == Undefined {
			panic("permutation: Apply called with an incomplete color mapping")
		}
		out.SetPeg(i, img)
	}
	return out
}

// MapsGuessToItself reports whether applying p to guess reproduces guess
// exactly, extending a clone of p's color mapping as needed. It returns
// the (possibly tightened) permutation and whether the match succeeded.
func (p Permutation) MapsGuessToItself(guess codeword.Codeword, pegs int) (Permutation, bool) {
	extended := p.Clone()
	for i := 0; i < pegs; i++ {
		src := guess.Peg(extended.Pegs[i])
		dst := guess.Peg(i)
		if src < 0 || dst < 0 {
			continue
		}
		if !extended.TryExtend(src, dst) {
			return Permutation{}, false
		}
	}
	return extended, true
}
