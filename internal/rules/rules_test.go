package rules_test

import (
	"testing"

	"github.com/go-mastermind/mastermind/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name       string
		pegs       int
		colors     int
		repeatable bool
		wantErr    bool
	}{
		{"classic 4-6-rep", 4, 6, true, false},
		{"no-repeat needs colors>=pegs", 4, 3, false, true},
		{"no-repeat exact", 4, 4, false, false},
		{"pegs too large", rules.MaxPegs + 1, 6, true, true},
		{"colors too large", 4, rules.MaxColors + 1, true, true},
		{"zero pegs", 0, 6, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := rules.New(tt.pegs, tt.colors, tt.repeatable)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.pegs, r.Pegs)
			assert.Equal(t, tt.colors, r.Colors)
			assert.Equal(t, tt.repeatable, r.Repeatable)
		})
	}
}

func TestUniverseSize(t *testing.T) {
	r, err := rules.New(4, 6, true)
	require.NoError(t, err)
	assert.Equal(t, 1296, r.UniverseSize())

	r, err = rules.New(4, 10, false)
	require.NoError(t, err)
	assert.Equal(t, 5040, r.UniverseSize())
}

func TestFeedbackCardinality(t *testing.T) {
	r, err := rules.New(4, 6, true)
	require.NoError(t, err)
	// S = P(P+3)/2 + 1 = 4*7/2+1 = 15
	assert.Equal(t, 15, r.FeedbackCardinality())
}

func TestMaxRepeat(t *testing.T) {
	r, err := rules.New(4, 6, true)
	require.NoError(t, err)
	assert.Equal(t, 4, r.MaxRepeat())

	r, err = rules.New(4, 6, false)
	require.NoError(t, err)
	assert.Equal(t, 1, r.MaxRepeat())
}
