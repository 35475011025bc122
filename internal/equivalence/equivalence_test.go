package equivalence_test

import (
	"testing"

	"github.com/go-mastermind/mastermind/internal/engine"
	"github.com/go-mastermind/mastermind/internal/equivalence"
	"github.com/go-mastermind/mastermind/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 6: rules (4,6,true). Constraint-equivalence filter applied to
// the universe before any guess returns exactly five canonical first-guess
// classes (the 5 multiset patterns: 1111, 1112, 1122, 1123, 1234).
func TestConstraintEquivalenceFirstGuessClasses(t *testing.T) {
	r, err := rules.New(4, 6, true)
	require.NoError(t, err)
	e, err := engine.New(r)
	require.NoError(t, err)

	cf := equivalence.NewConstraintFilter(r)
	canonical := cf.Filter(e.Universe())
	assert.Len(t, canonical, 5)
}

func TestConstraintEquivalenceSubsetOfUniverse(t *testing.T) {
	r, err := rules.New(4, 6, true)
	require.NoError(t, err)
	e, err := engine.New(r)
	require.NoError(t, err)

	cf := equivalence.NewConstraintFilter(r)
	universeSet := map[[16]byte]bool{}
	for _, cw := range e.Universe() {
		universeSet[cw] = true
	}
	for _, cw := range cf.Filter(e.Universe()) {
		assert.True(t, universeSet[cw])
	}
}

// Observing a guess can only drop symmetries (permutations that do not fix
// the guess), so at least as many candidates stay canonical afterwards.
func TestConstraintEquivalenceKeepsMoreAfterGuess(t *testing.T) {
	r, err := rules.New(4, 6, true)
	require.NoError(t, err)
	e, err := engine.New(r)
	require.NoError(t, err)

	cf := equivalence.NewConstraintFilter(r)
	before := len(cf.Filter(e.Universe()))
	cf.ObserveGuess(e.Universe()[0]) // "1111"
	after := len(cf.Filter(e.Universe()))
	assert.GreaterOrEqual(t, after, before)
}

func TestColorFilterKeepsSmallestExcludedLabelFirst(t *testing.T) {
	r, err := rules.New(4, 6, true)
	require.NoError(t, err)
	e, err := engine.New(r)
	require.NoError(t, err)

	cf := equivalence.NewColorFilter(r)
	// Exclude colors 4 and 5 (0-indexed colors corresponding to "5" and "6").
	cf.ExcludeColors(1<<4 | 1<<5)
	filtered := cf.Filter(e.Universe())
	assert.NotEmpty(t, filtered)
	assert.Less(t, len(filtered), len(e.Universe()))
}
