// SPDX-License-Identifier: MIT
package fastgraph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabelArenaOverflow(t *testing.T) {
	saved := maxLabelArena
	maxLabelArena = 4
	defer func() { maxLabelArena = saved }()

	g, err := FromEdges("tiny", 2, [2]int{0, 1})
	require.NoError(t, err)

	err = g.SetAllNodeLabels([]string{"ab", "cde"})
	require.ErrorIs(t, err, ErrLabelOverflow)
	require.ErrorIs(t, err, ErrGraph)
	require.Equal(t, "n0", g.NodeLabel(0))

	require.NoError(t, g.SetAllNodeLabels([]string{"ab", "cd"}))
}

func TestLabelTooLong(t *testing.T) {
	_, err := New("long", []NodeSpec{{Index: 0, Label: strings.Repeat("x", MaxLabelLength+1)}}, nil)
	require.ErrorIs(t, err, ErrLabelOverflow)
}

func TestCheckConsistencyDetectsCorruption(t *testing.T) {
	g, err := FromEdges("tri", 3, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})
	require.NoError(t, err)
	require.NoError(t, g.CheckConsistency())

	bad := g.Clone()
	bad.edges[0].node2 = 2
	require.ErrorIs(t, bad.CheckConsistency(), ErrInconsistent)

	bad = g.Clone()
	bad.connections = bad.connections[:len(bad.connections)-1]
	require.ErrorIs(t, bad.CheckConsistency(), ErrInconsistent)

	bad = g.Clone()
	bad.nodes[1].label.length = 200
	require.ErrorIs(t, bad.CheckConsistency(), ErrInconsistent)
}
