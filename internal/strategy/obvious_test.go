package strategy_test

import (
	"testing"

	"github.com/go-mastermind/mastermind/internal/codeword"
	"github.com/go-mastermind/mastermind/internal/engine"
	"github.com/go-mastermind/mastermind/internal/rules"
	"github.com/go-mastermind/mastermind/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCodeword(t *testing.T, s string, r rules.Rules) codeword.Codeword {
	t.Helper()
	cw, err := codeword.Parse(s, r, "")
	require.NoError(t, err)
	return cw
}

func TestObviousSinglePossibility(t *testing.T) {
	r, err := rules.New(4, 6, true)
	require.NoError(t, err)
	e, err := engine.New(r)
	require.NoError(t, err)

	only := mustCodeword(t, "1234", r)
	guess, cells, ok := strategy.Obvious(e, []codeword.Codeword{only})
	require.True(t, ok)
	assert.Equal(t, only, guess)
	require.Len(t, cells, 1)
	assert.Equal(t, 1, cells[0].Len())
}

func TestObviousFindsSingletonPartition(t *testing.T) {
	r, err := rules.New(2, 3, true)
	require.NoError(t, err)
	e, err := engine.New(r)
	require.NoError(t, err)

	// 2 pegs, 3 colors: 11, 22 differ enough that guessing one of them
	// against {11, 22} yields two singleton cells (2A0B vs 0A0B).
	a := mustCodeword(t, "11", r)
	b := mustCodeword(t, "22", r)
	guess, cells, ok := strategy.Obvious(e, []codeword.Codeword{a, b})
	require.True(t, ok)
	assert.Contains(t, []codeword.Codeword{a, b}, guess)
	for _, c := range cells {
		assert.Equal(t, 1, c.Len())
	}
}

func TestObviousReordersPossibilitiesToMatchCells(t *testing.T) {
	r, err := rules.New(2, 3, true)
	require.NoError(t, err)
	e, err := engine.New(r)
	require.NoError(t, err)

	a := mustCodeword(t, "11", r)
	b := mustCodeword(t, "22", r)
	possibilities := []codeword.Codeword{a, b}
	guess, cells, ok := strategy.Obvious(e, possibilities)
	require.True(t, ok)

	// Each cell's Slice must describe possibilities as reordered by the
	// winning partition, not the caller's original ordering.
	for _, c := range cells {
		got := c.Slice(possibilities)
		require.Len(t, got, 1)
		response := e.Compare(guess, got[0])
		assert.Equal(t, c.Response, response)
	}
}

func TestObviousDeclinesWhenEmpty(t *testing.T) {
	r, err := rules.New(4, 6, true)
	require.NoError(t, err)
	e, err := engine.New(r)
	require.NoError(t, err)

	_, _, ok := strategy.Obvious(e, nil)
	assert.False(t, ok)
}
