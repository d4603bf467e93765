// SPDX-License-Identifier: MIT
package fastgraph_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isograph/fastgraph"
)

// kite builds:
//
//	0 → 1 (e0), 1 → 2 (e1), 2 → 0 (e2), 2 → 3 (e3), 3 → 3 (e4), 0 → 1 (e5)
func kite(t *testing.T) *fastgraph.Graph {
	t.Helper()
	g, err := fastgraph.FromEdges("kite", 4,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 3}, [2]int{3, 3}, [2]int{0, 1})
	require.NoError(t, err)
	return g
}

func TestCountsAndDegrees(t *testing.T) {
	t.Parallel()
	g := kite(t)

	require.Equal(t, "kite", g.Name())
	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, 6, g.EdgeCount())

	cases := []struct{ node, in, out int }{
		{0, 1, 2},
		{1, 2, 1},
		{2, 1, 2},
		{3, 2, 1},
	}
	for _, c := range cases {
		require.Equal(t, c.in, g.InDegree(c.node), "in-degree of %d", c.node)
		require.Equal(t, c.out, g.OutDegree(c.node), "out-degree of %d", c.node)
		require.Equal(t, c.in+c.out, g.Degree(c.node), "degree of %d", c.node)
	}
	require.Equal(t, 3, g.MaximumDegree())
	require.Equal(t, 2, g.MaximumInDegree())
	require.Equal(t, 2, g.MaximumOutDegree())
}

func TestConnectingInOutOrder(t *testing.T) {
	t.Parallel()
	g := kite(t)

	require.Equal(t, []int{2, 0, 5}, g.ConnectingEdges(0))
	require.Equal(t, []int{2, 1, 1}, g.ConnectingNodes(0))
	require.Equal(t, []int{2}, g.ConnectingInEdges(0))
	require.Equal(t, []int{2}, g.ConnectingInNodes(0))
	require.Equal(t, []int{0, 5}, g.ConnectingOutEdges(0))
	require.Equal(t, []int{1, 1}, g.ConnectingOutNodes(0))

	// self-loop appears in both segments
	require.Equal(t, []int{3, 4, 4}, g.ConnectingEdges(3))
	require.Equal(t, []int{2, 3, 3}, g.ConnectingNodes(3))
}

func TestAppendVariantsReuseBuffer(t *testing.T) {
	t.Parallel()
	g := kite(t)

	buf := make([]int, 0, 8)
	got := g.AppendConnectingNodes(buf, 1)
	require.Equal(t, []int{0, 0, 2}, got)
	require.Same(t, &buf[:1][0], &got[0])

	got = g.AppendConnectingEdges(got, 2)
	require.Equal(t, []int{1, 2, 3}, got)
	got = g.AppendConnectingInNodes(got, 3)
	require.Equal(t, []int{2, 3}, got)
	got = g.AppendConnectingOutEdges(got, 3)
	require.Equal(t, []int{4}, got)
	got = g.AppendConnectingInEdges(got, 1)
	require.Equal(t, []int{0, 5}, got)
	got = g.AppendConnectingOutNodes(got, 2)
	require.Equal(t, []int{0, 3}, got)
}

func TestEdgeAccessors(t *testing.T) {
	t.Parallel()
	g := kite(t)

	require.Equal(t, 2, g.EdgeNode1(3))
	require.Equal(t, 3, g.EdgeNode2(3))
	require.Equal(t, 3, g.OppositeEnd(3, 2))
	require.Equal(t, 2, g.OppositeEnd(3, 3))
	require.Equal(t, 3, g.OppositeEnd(4, 3))

	require.Equal(t, []int{0, 5}, g.EdgesBetween(0, 1))
	require.Equal(t, []int{0, 5}, g.EdgesBetween(1, 0))
	require.Equal(t, []int{4}, g.EdgesBetween(3, 3))
	require.Empty(t, g.EdgesBetween(0, 3))

	e, ok := g.FirstEdgeBetween(1, 0)
	require.True(t, ok)
	require.Equal(t, 0, e)
	_, ok = g.FirstEdgeBetween(0, 3)
	require.False(t, ok)
	e, ok = g.FirstEdgeBetween(3, 3)
	require.True(t, ok)
	require.Equal(t, 4, e)
}

func TestAttributesAndLabels(t *testing.T) {
	t.Parallel()
	g := kite(t)

	require.Equal(t, "n2", g.NodeLabel(2))
	require.Equal(t, "e5", g.EdgeLabel(5))

	g.SetNodeWeight(1, -7)
	g.SetNodeType(1, 3)
	g.SetNodeAge(1, 9)
	g.SetEdgeWeight(2, 42)
	g.SetEdgeType(2, 1)
	g.SetEdgeAge(2, 4)
	require.Equal(t, -7, g.NodeWeight(1))
	require.Equal(t, byte(3), g.NodeType(1))
	require.Equal(t, byte(9), g.NodeAge(1))
	require.Equal(t, 42, g.EdgeWeight(2))
	require.Equal(t, byte(1), g.EdgeType(2))
	require.Equal(t, byte(4), g.EdgeAge(2))

	require.NoError(t, g.SetAllNodeLabels([]string{"alpha", "", "gamma", "δ"}))
	require.Equal(t, []string{"alpha", "", "gamma", "δ"}, g.NodeLabels())
	require.NoError(t, g.SetAllEdgeLabels([]string{"a", "b", "c", "d", "e", "f"}))
	require.Equal(t, "d", g.EdgeLabel(3))
	require.NoError(t, g.CheckConsistency())

	err := g.SetAllNodeLabels([]string{"x"})
	require.ErrorIs(t, err, fastgraph.ErrLengthMismatch)
	require.ErrorIs(t, err, fastgraph.ErrGraph)
	require.Equal(t, "alpha", g.NodeLabel(0))

	g.SetName("renamed")
	require.Equal(t, "renamed", g.Name())
}

func TestNewRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		nodes []fastgraph.NodeSpec
		edges []fastgraph.EdgeSpec
	}{
		{
			name:  "duplicate node",
			nodes: []fastgraph.NodeSpec{{Index: 0}, {Index: 0}},
		},
		{
			name:  "node hole",
			nodes: []fastgraph.NodeSpec{{Index: 0}, {Index: 2}},
		},
		{
			name:  "endpoint out of range",
			nodes: []fastgraph.NodeSpec{{Index: 0}},
			edges: []fastgraph.EdgeSpec{{Index: 0, Node1: 0, Node2: 1}},
		},
		{
			name:  "duplicate edge",
			nodes: []fastgraph.NodeSpec{{Index: 0}},
			edges: []fastgraph.EdgeSpec{{Index: 0}, {Index: 0}},
		},
		{
			name:  "node weight too large",
			nodes: []fastgraph.NodeSpec{{Index: 0, Weight: math.MaxInt32 + 1}},
		},
		{
			name:  "edge weight too small",
			nodes: []fastgraph.NodeSpec{{Index: 0}},
			edges: []fastgraph.EdgeSpec{{Index: 0, Weight: math.MinInt32 - 1}},
		},
	}
	for _, sc := range cases {
		sc := sc
		t.Run(sc.name, func(t *testing.T) {
			t.Parallel()
			_, err := fastgraph.New("bad", sc.nodes, sc.edges)
			require.ErrorIs(t, err, fastgraph.ErrBadStructure)
			require.True(t, errors.Is(err, fastgraph.ErrGraph))
		})
	}
}

func TestNewPlacesSpecsByIndex(t *testing.T) {
	t.Parallel()
	g, err := fastgraph.New("shuffled",
		[]fastgraph.NodeSpec{{Index: 1, Label: "b", Weight: 2}, {Index: 0, Label: "a", Age: 5}},
		[]fastgraph.EdgeSpec{{Index: 0, Node1: 1, Node2: 0, Label: "ba", Type: 7}})
	require.NoError(t, err)
	require.Equal(t, "a", g.NodeLabel(0))
	require.Equal(t, byte(5), g.NodeAge(0))
	require.Equal(t, 2, g.NodeWeight(1))
	require.Equal(t, byte(7), g.EdgeType(0))
	require.Equal(t, []int{0}, g.ConnectingOutNodes(1))
}

func TestNewKeepsWeightBounds(t *testing.T) {
	t.Parallel()
	g, err := fastgraph.New("bounds",
		[]fastgraph.NodeSpec{{Index: 0, Weight: math.MaxInt32}},
		[]fastgraph.EdgeSpec{{Index: 0, Weight: math.MinInt32}})
	require.NoError(t, err)
	require.Equal(t, math.MaxInt32, g.NodeWeight(0))
	require.Equal(t, math.MinInt32, g.EdgeWeight(0))
}

func TestSubgraph(t *testing.T) {
	t.Parallel()
	g := kite(t)

	sub, err := g.Subgraph([]int{2, 3}, []int{3, 4})
	require.NoError(t, err)
	require.Equal(t, "kite-subgraph", sub.Name())
	require.Equal(t, 2, sub.NodeCount())
	require.Equal(t, 2, sub.EdgeCount())
	require.Equal(t, []string{"n2", "n3"}, sub.NodeLabels())
	require.Equal(t, []string{"e3", "e4"}, sub.EdgeLabels())
	require.Equal(t, 0, sub.EdgeNode1(0))
	require.Equal(t, 1, sub.EdgeNode2(0))
	require.Equal(t, []int{1}, sub.EdgesBetween(1, 1))
	require.NoError(t, sub.CheckConsistency())

	_, err = g.Subgraph([]int{2}, []int{3})
	require.ErrorIs(t, err, fastgraph.ErrBadStructure)
	_, err = g.Subgraph([]int{9}, nil)
	require.ErrorIs(t, err, fastgraph.ErrIndexOutOfRange)
	_, err = g.Subgraph([]int{1, 1}, nil)
	require.ErrorIs(t, err, fastgraph.ErrBadStructure)
}

func TestInducedSubgraph(t *testing.T) {
	t.Parallel()
	g := kite(t)

	sub, err := g.InducedSubgraph([]int{1, 0})
	require.NoError(t, err)
	require.Equal(t, []string{"n1", "n0"}, sub.NodeLabels())
	require.Equal(t, []string{"e0", "e5"}, sub.EdgeLabels())
	require.Equal(t, 1, sub.EdgeNode1(0))
	require.Equal(t, 0, sub.EdgeNode2(0))

	sub, err = g.InducedSubgraph([]int{3})
	require.NoError(t, err)
	require.Equal(t, 1, sub.EdgeCount())
	require.Equal(t, 2, sub.Degree(0))
}

func TestDeleteItems(t *testing.T) {
	t.Parallel()
	g := kite(t)

	out, err := g.DeleteItems([]int{2}, []int{5})
	require.NoError(t, err)
	require.Equal(t, "kite-deleted", out.Name())
	require.Equal(t, []string{"n0", "n1", "n3"}, out.NodeLabels())
	require.Equal(t, []string{"e0", "e4"}, out.EdgeLabels())
	require.Equal(t, []int{1}, out.EdgesBetween(2, 2))
	require.NoError(t, out.CheckConsistency())

	// source untouched
	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, 6, g.EdgeCount())
}

func TestRewire(t *testing.T) {
	t.Parallel()
	g := kite(t)

	out, err := g.Rewire([]fastgraph.Rewire{{Edge: 3, NewNode1: 1, NewNode2: 3}})
	require.NoError(t, err)
	require.Equal(t, 4, out.NodeCount())
	require.Equal(t, 6, out.EdgeCount())
	require.Equal(t, 2, out.Degree(2))
	require.Equal(t, 4, out.Degree(1))
	require.Equal(t, "e3", out.EdgeLabel(3))
	require.NoError(t, out.CheckConsistency())
	require.Equal(t, 3, g.Degree(2))

	_, err = g.Rewire([]fastgraph.Rewire{{Edge: 0, NewNode1: 0, NewNode2: 4}})
	require.ErrorIs(t, err, fastgraph.ErrIndexOutOfRange)
}

func TestConnectivity(t *testing.T) {
	t.Parallel()

	empty, err := fastgraph.FromEdges("empty", 0)
	require.NoError(t, err)
	require.True(t, empty.Connected())

	single, err := fastgraph.FromEdges("single", 1)
	require.NoError(t, err)
	require.True(t, single.Connected())

	require.True(t, kite(t).Connected())

	// direction is ignored
	inward, err := fastgraph.FromEdges("inward", 3, [2]int{1, 0}, [2]int{2, 0})
	require.NoError(t, err)
	require.True(t, inward.Connected())

	split, err := fastgraph.FromEdges("split", 4, [2]int{0, 1}, [2]int{3, 2})
	require.NoError(t, err)
	require.False(t, split.Connected())
	require.Equal(t, [][]int{{0, 1}, {2, 3}}, split.Components())
}

func TestAges(t *testing.T) {
	t.Parallel()
	g := kite(t)
	g.SetNodeAge(0, 3)
	g.SetNodeAge(1, 1)
	g.SetNodeAge(2, 3)
	g.SetNodeAge(3, 2)

	require.Equal(t, byte(1), g.MinimumNodeAge())
	require.Equal(t, byte(3), g.MaximumNodeAge())
	require.Equal(t, 2, g.CountNodesOfAge(3))
	require.Equal(t, 0, g.CountNodesOfAge(0))
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()
	g := kite(t)
	c := g.Clone()
	c.SetNodeWeight(0, 99)
	require.NoError(t, c.SetAllEdgeLabels(make([]string, 6)))

	require.Equal(t, 0, g.NodeWeight(0))
	require.Equal(t, "e0", g.EdgeLabel(0))
	require.Equal(t, g.ConnectingNodes(2), c.ConnectingNodes(2))
}

func TestMaxSimpleEdges(t *testing.T) {
	t.Parallel()
	require.Equal(t, 0, fastgraph.MaxSimpleEdges(1))
	require.Equal(t, 10, fastgraph.MaxSimpleEdges(5))
}

func TestDegreeHistograms(t *testing.T) {
	t.Parallel()
	star, err := fastgraph.FromEdges("star", 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, star.InDegreeHistogram())
	require.Equal(t, []int{3, 0, 0, 1}, star.OutDegreeHistogram())

	require.Equal(t, []int{0, 2, 2}, kite(t).InDegreeHistogram())
	require.Equal(t, []int{0, 2, 2}, kite(t).OutDegreeHistogram())

	empty, err := fastgraph.FromEdges("empty", 0)
	require.NoError(t, err)
	require.Empty(t, empty.InDegreeHistogram())
	require.Empty(t, empty.OutDegreeHistogram())
}

// ladder builds a 2×n ladder: two paths joined by rungs.
func ladder(t *testing.T, n int) *fastgraph.Graph {
	t.Helper()
	var pairs [][2]int
	for i := 0; i < n; i++ {
		pairs = append(pairs, [2]int{i, n + i})
		if i+1 < n {
			pairs = append(pairs, [2]int{i, i + 1}, [2]int{n + i, n + i + 1})
		}
	}
	g, err := fastgraph.FromEdges("ladder", 2*n, pairs...)
	require.NoError(t, err)
	return g
}

func TestReduce(t *testing.T) {
	t.Parallel()
	g := ladder(t, 20) // 40 nodes, 58 edges

	cases := []struct {
		name         string
		nodes, edges int
	}{
		{"nodes only", 30, 58},
		{"edges only", 40, 20},
		{"both", 12, 10},
		{"to nothing", 0, 0},
	}
	for _, sc := range cases {
		sc := sc
		t.Run(sc.name, func(t *testing.T) {
			t.Parallel()
			out, nodes, edges, err := g.Reduce(sc.nodes, sc.edges, rand.New(rand.NewSource(7)))
			require.NoError(t, err)
			require.Equal(t, "ladder-reduced", out.Name())
			require.Equal(t, sc.nodes, out.NodeCount())
			require.LessOrEqual(t, out.EdgeCount(), sc.edges)
			require.Len(t, nodes, g.NodeCount()-sc.nodes)
			require.Len(t, edges, g.EdgeCount()-out.EdgeCount())
			require.IsIncreasing(t, nodes)
			require.NoError(t, out.CheckConsistency())

			// every edge touching a removed node is reported as removed
			gone := map[int]bool{}
			for _, e := range edges {
				gone[e] = true
			}
			for _, n := range nodes {
				for _, e := range g.ConnectingEdges(n) {
					require.True(t, gone[e], "edge %d of removed node %d", e, n)
				}
			}
		})
	}
}

func TestReduceIsDeterministicAndLeavesSourceAlone(t *testing.T) {
	t.Parallel()
	g := ladder(t, 15)

	a, nodesA, edgesA, err := g.Reduce(10, 8, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	b, nodesB, edgesB, err := g.Reduce(10, 8, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	require.Equal(t, nodesA, nodesB)
	require.Equal(t, edgesA, edgesB)
	require.Equal(t, a.NodeLabels(), b.NodeLabels())
	require.Equal(t, 30, g.NodeCount())

	same, nodes, edges, err := g.Reduce(g.NodeCount(), g.EdgeCount(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Empty(t, nodes)
	require.Empty(t, edges)
	require.Equal(t, g.NodeLabels(), same.NodeLabels())
	require.Equal(t, g.EdgeLabels(), same.EdgeLabels())
}

func TestReduceRejectsBadInput(t *testing.T) {
	t.Parallel()
	g := kite(t)
	rng := rand.New(rand.NewSource(1))

	_, _, _, err := g.Reduce(5, 1, rng)
	require.ErrorIs(t, err, fastgraph.ErrTargetSize)
	_, _, _, err = g.Reduce(2, 7, rng)
	require.ErrorIs(t, err, fastgraph.ErrTargetSize)
	_, _, _, err = g.Reduce(-1, 1, rng)
	require.ErrorIs(t, err, fastgraph.ErrTargetSize)
	_, _, _, err = g.Reduce(2, 2, nil)
	require.ErrorIs(t, err, fastgraph.ErrNeedRandSource)
	require.ErrorIs(t, err, fastgraph.ErrGraph)
}
