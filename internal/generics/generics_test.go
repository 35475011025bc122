package generics

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceMap(t *testing.T) {
	in := []int{1, 2, 3}
	out := SliceMap(in, func(v int) string { return strconv.Itoa(v * 2) })
	assert.Equal(t, []string{"2", "4", "6"}, out)
}

func TestSliceMapEmpty(t *testing.T) {
	out := SliceMap([]int(nil), func(v int) int { return v })
	assert.Empty(t, out)
}

func TestPair(t *testing.T) {
	p := Pair[int, string]{First: 1, Second: "one"}
	assert.Equal(t, 1, p.First)
	assert.Equal(t, "one", p.Second)
}
