// Package colormask implements a bitmask over colors, one bit per color,
// used to describe "colors never yet guessed" and "colors known
// impossible" in the equivalence filters and the code-breaker driver.
package colormask

import "github.com/go-mastermind/mastermind/internal/rules"

// ColorMask is a bitmask with one bit per color, bit c set meaning color c
// is a member of the set.
type ColorMask uint16

// Full returns a mask with every color in [0, colors) set.
func Full(colors int) ColorMask {
	return ColorMask(1<<uint(colors) - 1)
}

// Has reports whether color c is a member of m.
func (m ColorMask) Has(c int) bool {
	return m&(1<<uint(c)) != 0
}

// Set returns m with color c added.
func (m ColorMask) Set(c int) ColorMask {
	return m | (1 << uint(c))
}

// Clear returns m with color c removed.
func (m ColorMask) Clear(c int) ColorMask {
	return m &^ (1 << uint(c))
}

// Count returns the number of colors in m.
func (m ColorMask) Count() int {
	n := 0
	for v := m; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Lowest returns the smallest color index in m, or -1 if m is empty.
func (m ColorMask) Lowest() int {
	if m == 0 {
		return -1
	}
	c := 0
	for !m.Has(c) {
		c++
	}
	return c
}

// NextAbove returns the smallest color in m strictly greater than c, or -1
// if none exists.
func (m ColorMask) NextAbove(c int) int {
	for cc := c + 1; cc < rules.MaxColors; cc++ {
		if m.Has(cc) {
			return cc
		}
	}
	return -1
}
