package engine_test

import (
	"testing"

	"github.com/go-mastermind/mastermind/internal/codeword"
	"github.com/go-mastermind/mastermind/internal/engine"
	"github.com/go-mastermind/mastermind/internal/feedback"
	"github.com/go-mastermind/mastermind/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, pegs, colors int, repeatable bool) *engine.Engine {
	t.Helper()
	r, err := rules.New(pegs, colors, repeatable)
	require.NoError(t, err)
	e, err := engine.New(r)
	require.NoError(t, err)
	return e
}

func cw(t *testing.T, r rules.Rules, s string) codeword.Codeword {
	t.Helper()
	c, err := codeword.Parse(s, r, "")
	require.NoError(t, err)
	return c
}

// Scenario 1: Rules (4,6,true). Enumerate: first is "1111", last is
// "6666", count is 1296.
func TestEnumerateClassicGame(t *testing.T) {
	e := newEngine(t, 4, 6, true)
	universe := e.Universe()
	require.Len(t, universe, 1296)
	assert.Equal(t, "1111", universe[0].Format(4, ""))
	assert.Equal(t, "6666", universe[len(universe)-1].Format(4, ""))
}

// Scenario 2: Rules (4,6,true). compare("1234","1234")=4A0B;
// compare("1234","1122")=1A1B; compare("1234","5655")=0A0B.
func TestCompareClassicGame(t *testing.T) {
	e := newEngine(t, 4, 6, true)
	r := e.Rules

	assert.Equal(t, feedback.Feedback{NA: 4, NB: 0}, e.Compare(cw(t, r, "1234"), cw(t, r, "1234")))
	assert.Equal(t, feedback.Feedback{NA: 1, NB: 1}, e.Compare(cw(t, r, "1234"), cw(t, r, "1122")))
	assert.Equal(t, feedback.Feedback{NA: 0, NB: 0}, e.Compare(cw(t, r, "1234"), cw(t, r, "5655")))
}

// Scenario 3: Rules (4,10,false). Enumerate size is 5040; codeword at
// lexical index 357 is "0741"; compare(first,second)=2A2B between
// "0123" and "0132".
func TestNoRepeatGame(t *testing.T) {
	e := newEngine(t, 4, 10, false)
	universe := e.Universe()
	require.Len(t, universe, 5040)
	assert.Equal(t, "0741", universe[357].Format(4, "0123456789"))

	r := e.Rules
	first := cw(t, r, "0123")
	second := cw(t, r, "0132")
	assert.Equal(t, feedback.Feedback{NA: 2, NB: 2}, e.Compare(first, second))
}

func TestCompareIsSymmetricAndPerfectOnSelf(t *testing.T) {
	e := newEngine(t, 4, 6, true)
	universe := e.Universe()
	for i := 0; i < 20; i++ {
		g, s := universe[i], universe[(i+7)%len(universe)]
		assert.Equal(t, e.Compare(g, s), e.Compare(s, g))
		assert.True(t, e.Compare(g, g).IsPerfect(4))
	}
}

func TestFrequencyTotalsMatchUniverseSize(t *testing.T) {
	e := newEngine(t, 4, 6, true)
	universe := e.Universe()
	freq := e.CompareFrequency(universe[0], universe)
	assert.Equal(t, len(universe), freq.Total())
}

// Scenario 5: after constraint guess="1122", response="0A1B", the
// possibility list filtered from the universe has length < 1296 and every
// member m satisfies compare("1122", m) == "0A1B".
func TestFilterByFeedback(t *testing.T) {
	e := newEngine(t, 4, 6, true)
	r := e.Rules
	guess := cw(t, r, "1122")
	response := feedback.Feedback{NA: 0, NB: 1}

	filtered := e.FilterByFeedback(e.Universe(), guess, response)
	assert.Less(t, len(filtered), 1296)
	assert.NotEmpty(t, filtered)
	for _, m := range filtered {
		assert.Equal(t, response, e.Compare(guess, m))
	}
}

func TestNoRepeatAgreesWithGenericWhenNoColorsRepeat(t *testing.T) {
	genericEngine := newEngine(t, 4, 10, true)
	noRepeatEngine := newEngine(t, 4, 10, false)
	universe := noRepeatEngine.Universe()
	for i := 0; i < len(universe); i += 97 {
		for j := 0; j < len(universe); j += 131 {
			g, s := universe[i], universe[j]
			assert.Equal(t, genericEngine.Compare(g, s), noRepeatEngine.Compare(g, s))
		}
	}
}
