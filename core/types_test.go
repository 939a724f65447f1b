package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/netwalk/core"
)

func TestParseNodeID_Valid(t *testing.T) {
	for _, s := range []string{"AAA", "Z9Z", "11A", "000"} {
		id, err := core.ParseNodeID(s)
		assert.NoError(t, err, s)
		assert.Equal(t, core.NodeID(s), id)
	}
}

func TestParseNodeID_Invalid(t *testing.T) {
	for _, s := range []string{"", "AA", "AAAA", "aaa", "A-Z", "AA "} {
		_, err := core.ParseNodeID(s)
		assert.ErrorIs(t, err, core.ErrBadNodeID, "%q should be rejected", s)
	}
}

func TestNodeID_EndsIn(t *testing.T) {
	assert.True(t, core.NodeID("11A").EndsIn('A'))
	assert.False(t, core.NodeID("11A").EndsIn('Z'))
	// malformed IDs never match any marker
	assert.False(t, core.NodeID("A").EndsIn('A'))
}

func TestParseInstruction(t *testing.T) {
	l, err := core.ParseInstruction('L')
	assert.NoError(t, err)
	assert.Equal(t, core.Left, l)

	r, err := core.ParseInstruction('R')
	assert.NoError(t, err)
	assert.Equal(t, core.Right, r)

	_, err = core.ParseInstruction('X')
	assert.ErrorIs(t, err, core.ErrBadInstruction)
}

func TestNode_Exit(t *testing.T) {
	n := core.Node{ID: "AAA", Left: "BBB", Right: "CCC"}
	assert.Equal(t, core.NodeID("BBB"), n.Exit(core.Left))
	assert.Equal(t, core.NodeID("CCC"), n.Exit(core.Right))
}

func TestTargetSet(t *testing.T) {
	ts := core.NewTargetSet("ZZZ", "11Z")
	assert.Equal(t, 2, ts.Len())
	assert.True(t, ts.Contains("ZZZ"))
	assert.False(t, ts.Contains("AAA"))

	ts.Add("22Z")
	assert.True(t, ts.Contains("22Z"))
	assert.Equal(t, 3, ts.Len())
}
