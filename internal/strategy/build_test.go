package strategy_test

import (
	"testing"

	"github.com/go-mastermind/mastermind/internal/engine"
	"github.com/go-mastermind/mastermind/internal/rules"
	"github.com/go-mastermind/mastermind/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWithSimpleCoversWholeUniverse(t *testing.T) {
	r, err := rules.New(2, 3, true)
	require.NoError(t, err)
	e, err := engine.New(r)
	require.NoError(t, err)

	tree, err := strategy.Build(e, strategy.Simple{})
	require.NoError(t, err)

	leaves := 0
	for i, n := range tree.Nodes {
		if i == tree.Root() {
			continue
		}
		if n.Response.IsPerfect(r.Pegs) {
			leaves++
		}
	}
	assert.Equal(t, len(e.Universe()), leaves)
}

func TestBuildWithHeuristicCoversWholeUniverse(t *testing.T) {
	r, err := rules.New(2, 4, true)
	require.NoError(t, err)
	e, err := engine.New(r)
	require.NoError(t, err)

	tree, err := strategy.Build(e, &strategy.Heuristic{Engine: e, Score: strategy.MinAvg})
	require.NoError(t, err)

	leaves := 0
	for i, n := range tree.Nodes {
		if i == tree.Root() {
			continue
		}
		if n.Response.IsPerfect(r.Pegs) {
			leaves++
		}
	}
	assert.Equal(t, len(e.Universe()), leaves)
}
