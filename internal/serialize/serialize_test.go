package serialize_test

import (
	"strings"
	"testing"

	"github.com/go-mastermind/mastermind/internal/codeword"
	"github.com/go-mastermind/mastermind/internal/feedback"
	"github.com/go-mastermind/mastermind/internal/rules"
	"github.com/go-mastermind/mastermind/internal/serialize"
	"github.com/go-mastermind/mastermind/internal/stree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSampleTree(t *testing.T, r rules.Rules) *stree.Tree {
	t.Helper()
	tree := stree.New()
	root := tree.Root()
	g1, err := codeword.Parse("1234", r, "")
	require.NoError(t, err)
	a := tree.InsertChild(root, g1, feedback.Feedback{NA: 1, NB: 0})
	tree.InsertChild(a, g1, feedback.Perfect(r.Pegs))
	tree.InsertChild(root, g1, feedback.Perfect(r.Pegs))
	return tree
}

func TestWriteTextIndentsByDepth(t *testing.T) {
	r, err := rules.New(4, 6, true)
	require.NoError(t, err)
	tree := buildSampleTree(t, r)

	var sb strings.Builder
	require.NoError(t, serialize.WriteText(&sb, tree, r))
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "1234:1A0B", lines[0])
	assert.Equal(t, "  1234:4A0B", lines[1])
	assert.Equal(t, "1234:4A0B", lines[2])
}

func TestWriteXMLProducesSummaryAndNestedStates(t *testing.T) {
	r, err := rules.New(4, 6, true)
	require.NoError(t, err)
	tree := buildSampleTree(t, r)

	var sb strings.Builder
	require.NoError(t, serialize.WriteXML(&sb, tree, r))
	out := sb.String()
	assert.Contains(t, out, `<mastermind-strategy pegs="4" colors="6" repeatable="true">`)
	// One secret resolved in 1 step (the root's perfect child), one in 2
	// (the non-perfect child's perfect grandchild): totalsteps = 1 + 2.
	assert.Contains(t, out, `<summary totalsteps="3">`)
	assert.Contains(t, out, `<where steps="1" count="1"></where>`)
	assert.Contains(t, out, `<where steps="2" count="1"></where>`)
	assert.Contains(t, out, "<details>")
	assert.Contains(t, out, `guess="1234"`)
	assert.Contains(t, out, `feedback="1A0B"`)
	assert.Contains(t, out, `feedback="4A0B"`)
}
