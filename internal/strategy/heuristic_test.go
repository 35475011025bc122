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

func TestHeuristicDeclinesWhenNoCandidates(t *testing.T) {
	r, err := rules.New(4, 6, true)
	require.NoError(t, err)
	e, err := engine.New(r)
	require.NoError(t, err)

	h := &strategy.Heuristic{Engine: e, Score: strategy.MinMax}
	_, ok := h.MakeGuess(nil, nil)
	assert.False(t, ok)
}

func TestHeuristicReturnsOneOfTheCandidates(t *testing.T) {
	r, err := rules.New(2, 3, true)
	require.NoError(t, err)
	e, err := engine.New(r)
	require.NoError(t, err)

	possibilities := e.Universe()
	for _, sf := range []strategy.ScoreFunc{strategy.MinMax, strategy.MinAvg, strategy.MaxEntropy, strategy.MaxParts} {
		h := &strategy.Heuristic{Engine: e, Score: sf}
		guess, ok := h.MakeGuess(possibilities, possibilities)
		require.True(t, ok)
		assert.Contains(t, possibilities, guess)
	}
}

func TestHeuristicMinMaxNeverWorseThanAnyCandidate(t *testing.T) {
	r, err := rules.New(3, 3, true)
	require.NoError(t, err)
	e, err := engine.New(r)
	require.NoError(t, err)

	possibilities := e.Universe()
	h := &strategy.Heuristic{Engine: e, Score: strategy.MinMax}
	guess, ok := h.MakeGuess(possibilities, possibilities)
	require.True(t, ok)

	chosenMax := e.CompareFrequency(guess, possibilities).MaxCell()
	for _, candidate := range possibilities {
		candidateMax := e.CompareFrequency(candidate, possibilities).MaxCell()
		assert.LessOrEqual(t, chosenMax, candidateMax)
	}
}
