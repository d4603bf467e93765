// SPDX-License-Identifier: MIT
package subgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isograph/fastgraph"
	"github.com/katalvlaran/isograph/searchstats"
	"github.com/katalvlaran/isograph/subgraph"
)

func build(t *testing.T, n int, pairs ...[2]int) *fastgraph.Graph {
	t.Helper()
	g, err := fastgraph.FromEdges("g", n, pairs...)
	require.NoError(t, err)
	return g
}

func triangle(t *testing.T) *fastgraph.Graph {
	return build(t, 3, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})
}

func k4(t *testing.T) *fastgraph.Graph {
	return build(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3})
}

// requireEmbedding checks node injectivity and that each pattern edge maps
// to a target edge joining the images of its endpoints.
func requireEmbedding(t *testing.T, target, pattern *fastgraph.Graph, m subgraph.Mapping) {
	t.Helper()
	require.Len(t, m.Nodes, pattern.NodeCount())
	require.Len(t, m.Edges, pattern.EdgeCount())
	used := map[int]bool{}
	for _, v := range m.Nodes {
		require.False(t, used[v])
		used[v] = true
	}
	for pe, te := range m.Edges {
		a, b := m.Nodes[pattern.EdgeNode1(pe)], m.Nodes[pattern.EdgeNode2(pe)]
		ends := []int{target.EdgeNode1(te), target.EdgeNode2(te)}
		require.ElementsMatch(t, []int{a, b}, ends)
	}
}

func TestSingleNodePatternMatchesEveryTargetNode(t *testing.T) {
	t.Parallel()
	target := build(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	f := subgraph.New(target, build(t, 1))

	require.True(t, f.Search())
	got := f.FoundMappings()
	require.Len(t, got, 4)
	var images []int
	for _, m := range got {
		images = append(images, m.Nodes[0])
		require.Empty(t, m.Edges)
	}
	require.ElementsMatch(t, []int{0, 1, 2, 3}, images)
}

func TestAllEmbeddingsAreRecorded(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		target  func(*testing.T) *fastgraph.Graph
		pattern func(*testing.T) *fastgraph.Graph
		want    int
	}{
		{"triangle in k4", k4, triangle, 24},
		{"path in triangle", triangle, func(t *testing.T) *fastgraph.Graph {
			return build(t, 3, [2]int{0, 1}, [2]int{1, 2})
		}, 6},
		{"edge in path", func(t *testing.T) *fastgraph.Graph {
			return build(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
		}, func(t *testing.T) *fastgraph.Graph {
			return build(t, 2, [2]int{0, 1})
		}, 6},
	}
	for _, sc := range cases {
		sc := sc
		t.Run(sc.name, func(t *testing.T) {
			t.Parallel()
			target, pattern := sc.target(t), sc.pattern(t)
			f := subgraph.New(target, pattern)
			require.True(t, f.Search())
			require.Len(t, f.FoundMappings(), sc.want)
			for _, m := range f.FoundMappings() {
				requireEmbedding(t, target, pattern, m)
			}
		})
	}
}

func TestPatternAbsent(t *testing.T) {
	t.Parallel()
	stats := searchstats.NewCollector()
	square := build(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})

	f := subgraph.New(square, triangle(t), subgraph.WithStats(stats))
	require.False(t, f.Search())
	require.Empty(t, f.FoundMappings())

	r := stats.Snapshot()
	require.EqualValues(t, 1, r.Count(searchstats.Exhausted))
	require.Positive(t, r.Steps)
}

func TestNoCandidateShortCircuits(t *testing.T) {
	t.Parallel()
	stats := searchstats.NewCollector()
	star := build(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
	path := build(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})

	f := subgraph.New(path, star, subgraph.WithStats(stats))
	require.False(t, f.Search())
	r := stats.Snapshot()
	require.EqualValues(t, 1, r.Count(searchstats.NoCandidate))
	require.Zero(t, r.Steps)
}

func TestEmptyPatternIsAlwaysFound(t *testing.T) {
	t.Parallel()
	stats := searchstats.NewCollector()
	f := subgraph.New(triangle(t), build(t, 0), subgraph.WithStats(stats))
	require.True(t, f.Search())
	require.Empty(t, f.FoundMappings())
	require.EqualValues(t, 1, stats.Snapshot().Count(searchstats.Empty))
}

func TestNodeLabelEquivalence(t *testing.T) {
	t.Parallel()
	target := build(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	require.NoError(t, target.SetAllNodeLabels([]string{"C", "O", "C", "N"}))
	pattern := build(t, 2, [2]int{0, 1})
	require.NoError(t, pattern.SetAllNodeLabels([]string{"C", "O"}))

	f := subgraph.New(target, pattern, subgraph.WithNodeEquivalence(subgraph.NodeLabels(target, pattern)))
	require.True(t, f.Search())
	var got [][]int
	for _, m := range f.FoundMappings() {
		got = append(got, m.Nodes)
	}
	require.ElementsMatch(t, [][]int{{0, 1}, {2, 1}}, got)

	require.NoError(t, pattern.SetAllNodeLabels([]string{"N", "O"}))
	f = subgraph.New(target, pattern, subgraph.WithNodeEquivalence(subgraph.NodeLabels(target, pattern)))
	require.False(t, f.Search())
}

func TestEdgeEquivalence(t *testing.T) {
	t.Parallel()
	target := build(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	target.SetEdgeType(1, 9)
	pattern := build(t, 2, [2]int{0, 1})
	pattern.SetEdgeType(0, 9)

	f := subgraph.New(target, pattern, subgraph.WithEdgeEquivalence(subgraph.EdgeTypes(target, pattern)))
	require.True(t, f.Search())
	require.Len(t, f.FoundMappings(), 2)
	for _, m := range f.FoundMappings() {
		require.Equal(t, []int{1}, m.Edges)
		require.ElementsMatch(t, []int{1, 2}, m.Nodes)
	}

	byLabel := subgraph.New(target, pattern, subgraph.WithEdgeEquivalence(subgraph.EdgeLabels(target, pattern)))
	require.True(t, byLabel.Search())
	require.Len(t, byLabel.FoundMappings(), 2)
	require.Equal(t, []int{0}, byLabel.FoundMappings()[0].Edges)
}

func TestCustomEquivalenceFuncs(t *testing.T) {
	t.Parallel()
	target := k4(t)
	noZero := subgraph.NodeFunc(func(tn, _ int) bool { return tn != 0 })
	f := subgraph.New(target, triangle(t), subgraph.WithNodeEquivalence(noZero))
	require.True(t, f.Search())
	require.Len(t, f.FoundMappings(), 6)

	never := subgraph.EdgeFunc(func(int, int) bool { return false })
	f = subgraph.New(target, triangle(t), subgraph.WithEdgeEquivalence(never))
	require.False(t, f.Search())
}

func TestLimit(t *testing.T) {
	t.Parallel()
	f := subgraph.New(k4(t), triangle(t), subgraph.WithLimit(5))
	require.True(t, f.Search())
	require.Len(t, f.FoundMappings(), 5)

	// a second search starts over
	require.True(t, f.Search())
	require.Len(t, f.FoundMappings(), 5)
}

func TestParallelPatternEdgesShareTargetEdge(t *testing.T) {
	t.Parallel()
	target := build(t, 2, [2]int{0, 1}, [2]int{0, 1})
	pattern := build(t, 2, [2]int{0, 1}, [2]int{1, 0})

	f := subgraph.New(target, pattern)
	require.True(t, f.Search())
	require.Len(t, f.FoundMappings(), 2)
	m := f.FoundMappings()[0]
	require.Equal(t, []int{0, 0}, m.Edges)

	sub, err := m.Subgraph(target)
	require.NoError(t, err)
	require.Equal(t, 2, sub.NodeCount())
	require.Equal(t, 1, sub.EdgeCount())
}

func TestMappingSubgraph(t *testing.T) {
	t.Parallel()
	target := k4(t)
	pattern := build(t, 3, [2]int{0, 1}, [2]int{1, 2})
	f := subgraph.New(target, pattern, subgraph.WithLimit(1))
	require.True(t, f.Search())

	sub, err := f.FoundMappings()[0].Subgraph(target)
	require.NoError(t, err)
	require.Equal(t, 3, sub.NodeCount())
	require.Equal(t, 2, sub.EdgeCount())
	require.True(t, sub.Connected())
}

func TestPatternSelfLoopNeedsTargetSelfLoop(t *testing.T) {
	t.Parallel()
	pattern := build(t, 1, [2]int{0, 0})

	plain := subgraph.New(build(t, 2, [2]int{0, 1}, [2]int{1, 0}), pattern)
	require.False(t, plain.Search())

	looped := subgraph.New(build(t, 2, [2]int{0, 1}, [2]int{1, 1}), pattern)
	require.True(t, looped.Search())
	require.Len(t, looped.FoundMappings(), 1)
	require.Equal(t, []int{1}, looped.FoundMappings()[0].Nodes)
}

func TestPatternSelfLoopRespectsEdgeEquivalence(t *testing.T) {
	t.Parallel()
	target := build(t, 1, [2]int{0, 0})
	target.SetEdgeType(0, 7)
	pattern := build(t, 1, [2]int{0, 0})
	pattern.SetEdgeType(0, 5)
	stats := searchstats.NewCollector()

	f := subgraph.New(target, pattern,
		subgraph.WithEdgeEquivalence(subgraph.EdgeTypes(target, pattern)),
		subgraph.WithStats(stats))
	require.False(t, f.Search())
	require.Empty(t, f.FoundMappings())
	require.EqualValues(t, 1, stats.Snapshot().Count(searchstats.Exhausted))

	pattern.SetEdgeType(0, 7)
	f = subgraph.New(target, pattern, subgraph.WithEdgeEquivalence(subgraph.EdgeTypes(target, pattern)))
	require.True(t, f.Search())
	require.Equal(t, []subgraph.Mapping{{Nodes: []int{0}, Edges: []int{0}}}, f.FoundMappings())
}

func TestSelfLoopOnLaterPatternNode(t *testing.T) {
	t.Parallel()
	// pattern: a-b with a loop on b; only the target node carrying a loop
	// of the right type can host b.
	target := build(t, 3, [2]int{0, 1}, [2]int{1, 2}, [2]int{1, 1}, [2]int{2, 2})
	target.SetEdgeType(2, 4)
	target.SetEdgeType(3, 8)
	pattern := build(t, 2, [2]int{0, 1}, [2]int{1, 1})
	pattern.SetEdgeType(1, 8)

	f := subgraph.New(target, pattern, subgraph.WithEdgeEquivalence(subgraph.EdgeFunc(func(te, pe int) bool {
		return pattern.EdgeType(pe) == 0 || target.EdgeType(te) == pattern.EdgeType(pe)
	})))
	require.True(t, f.Search())
	require.Len(t, f.FoundMappings(), 1)
	m := f.FoundMappings()[0]
	require.Equal(t, []int{1, 2}, m.Nodes)
	require.Equal(t, []int{1, 3}, m.Edges)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { subgraph.WithNodeEquivalence(nil) })
	require.Panics(t, func() { subgraph.WithEdgeEquivalence(nil) })
	require.Panics(t, func() { subgraph.WithLimit(-1) })
	require.Panics(t, func() { subgraph.WithStats(nil) })
}
