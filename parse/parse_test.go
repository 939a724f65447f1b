package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netwalk/core"
	"github.com/katalvlaran/netwalk/parse"
)

const wrappingDoc = `LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
`

func TestInstructions(t *testing.T) {
	seq, err := parse.Instructions("LLR")
	require.NoError(t, err)
	assert.Equal(t, core.Instructions{core.Left, core.Left, core.Right}, seq)

	// surrounding whitespace is tolerated
	seq, err = parse.Instructions("  RL\n")
	require.NoError(t, err)
	assert.Equal(t, core.Instructions{core.Right, core.Left}, seq)
}

func TestInstructions_Errors(t *testing.T) {
	_, err := parse.Instructions("")
	assert.ErrorIs(t, err, core.ErrEmptyInstructions)

	_, err = parse.Instructions("   ")
	assert.ErrorIs(t, err, core.ErrEmptyInstructions)

	_, err = parse.Instructions("LXR")
	assert.ErrorIs(t, err, core.ErrBadInstruction)
	assert.Contains(t, err.Error(), "symbol 2")
}

func TestNetwork(t *testing.T) {
	nw, err := parse.Network("AAA = (BBB, CCC)\nBBB = (BBB, BBB)\nCCC = (CCC, CCC)")
	require.NoError(t, err)
	assert.Equal(t, 3, nw.Len())

	n, ok := nw.Node("AAA")
	require.True(t, ok)
	assert.Equal(t, core.Node{ID: "AAA", Left: "BBB", Right: "CCC"}, n)
}

func TestNetwork_DigitsInIDs(t *testing.T) {
	nw, err := parse.Network("11A = (11B, XXX)\n11B = (XXX, 11Z)\n11Z = (11B, XXX)\nXXX = (XXX, XXX)")
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{"11A", "11B", "11Z", "XXX"}, nw.NodeIDs())
}

func TestNetwork_Errors(t *testing.T) {
	// malformed production
	for _, bad := range []string{
		"AAA -> (BBB, CCC)",
		"AAAA = (BBB, CCC)",
		"AAA = (bbb, CCC)",
		"AAA = (BBB CCC)",
		"AAA = (BBB, CCC",
	} {
		_, err := parse.Network(bad)
		assert.ErrorIs(t, err, parse.ErrBadNodeLine, "%q should be rejected", bad)
	}

	// line numbers point at the offender
	_, err := parse.Network("AAA = (AAA, AAA)\nbroken line")
	require.ErrorIs(t, err, parse.ErrBadNodeLine)
	assert.Contains(t, err.Error(), "line 2")

	// duplicate IDs bubble up from core
	_, err = parse.Network("AAA = (AAA, AAA)\nAAA = (AAA, AAA)")
	assert.ErrorIs(t, err, core.ErrDuplicateNode)
}

func TestDocument(t *testing.T) {
	seq, nw, err := parse.Document(wrappingDoc)
	require.NoError(t, err)
	assert.Equal(t, core.Instructions{core.Left, core.Left, core.Right}, seq)
	assert.Equal(t, 3, nw.Len())
	assert.NoError(t, nw.Validate())
}

func TestDocument_MissingSeparator(t *testing.T) {
	_, _, err := parse.Document("LLR\nAAA = (AAA, AAA)")
	assert.ErrorIs(t, err, parse.ErrBadDocument)
}

func TestDocument_BadSections(t *testing.T) {
	_, _, err := parse.Document("LQR\n\nAAA = (AAA, AAA)")
	assert.ErrorIs(t, err, core.ErrBadInstruction)

	_, _, err = parse.Document("LLR\n\nnot a node")
	assert.ErrorIs(t, err, parse.ErrBadNodeLine)
}
