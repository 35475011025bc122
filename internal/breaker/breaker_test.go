package breaker_test

import (
	"math/rand/v2"
	"testing"

	"github.com/go-mastermind/mastermind/internal/breaker"
	"github.com/go-mastermind/mastermind/internal/engine"
	"github.com/go-mastermind/mastermind/internal/feedback"
	"github.com/go-mastermind/mastermind/internal/rules"
	"github.com/go-mastermind/mastermind/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeBreakerConvergesOnSecret(t *testing.T) {
	r, err := rules.New(4, 6, true)
	require.NoError(t, err)
	e, err := engine.New(r)
	require.NoError(t, err)

	secret := e.Universe()[42]
	b := breaker.New(e, strategy.Simple{})

	for guesses := 0; guesses < r.UniverseSize(); guesses++ {
		guess, err := b.MakeGuess()
		require.NoError(t, err)
		response := e.Compare(guess, secret)
		require.NoError(t, b.AddFeedback(guess, response))
		if response.IsPerfect(r.Pegs) {
			assert.Equal(t, 1, b.PossibilityCount())
			return
		}
	}
	t.Fatal("breaker failed to converge within the universe size")
}

func TestCodeBreakerRejectsGuessWhenExhausted(t *testing.T) {
	r, err := rules.New(2, 2, true)
	require.NoError(t, err)
	e, err := engine.New(r)
	require.NoError(t, err)

	b := breaker.New(e, strategy.Simple{})
	guess := e.Universe()[0]

	// Pin the possibility set down to exactly {guess} with a perfect
	// response, then feed an impossible response for the very same
	// guess: no secret can satisfy both, so the possibility set empties.
	require.NoError(t, b.AddFeedback(guess, feedback.Perfect(r.Pegs)))
	require.Equal(t, 1, b.PossibilityCount())

	require.NoError(t, b.AddFeedback(guess, feedback.Feedback{NA: 0, NB: 0}))
	require.Equal(t, 0, b.PossibilityCount())

	_, err = b.MakeGuess()
	assert.Error(t, err)
}

func TestRandomSecretConformsToRules(t *testing.T) {
	r, err := rules.New(4, 6, false)
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 50; i++ {
		secret := breaker.RandomSecret(rng, r)
		assert.True(t, secret.Conforms(r))
	}
}
