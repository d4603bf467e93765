// SPDX-License-Identifier: MIT
package isomorphism

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isograph/fastgraph"
	"github.com/katalvlaran/isograph/invariant"
)

func bundleOf(t *testing.T, n int, pairs ...[2]int) *invariant.Bundle {
	t.Helper()
	g, err := fastgraph.FromEdges("g", n, pairs...)
	require.NoError(t, err)
	b, err := invariant.Compute(g)
	require.NoError(t, err)
	return b
}

func TestSearchExhaustsOnSameDegreesDifferentShape(t *testing.T) {
	hexagon := bundleOf(t, 6, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5}, [2]int{5, 0})
	triangles := bundleOf(t, 6, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{3, 4}, [2]int{4, 5}, [2]int{5, 3})

	var s search
	s.reset(hexagon, triangles)
	require.True(t, s.buildCandidates())
	found, err := s.run(context.Background())
	require.NoError(t, err)
	require.False(t, found)
	require.Positive(t, s.backtracks)
	for i := range s.matches1 {
		require.Equal(t, unmatched, s.matches1[i])
		require.Equal(t, unmatched, s.matches2[i])
	}

	// state is reusable
	s.reset(hexagon, hexagon)
	require.True(t, s.buildCandidates())
	found, err = s.run(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, s.matches1, 6)
}

func TestSearchRejectsMissingSelfLoopCandidate(t *testing.T) {
	looped := bundleOf(t, 3, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 2})
	plain := bundleOf(t, 3, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})

	var s search
	s.reset(looped, plain)
	require.False(t, s.buildCandidates())
}

// countdownContext reports cancellation once Err has been called more than
// limit times.
type countdownContext struct {
	context.Context
	calls, limit int
}

func (c *countdownContext) Err() error {
	c.calls++
	if c.calls > c.limit {
		return context.Canceled
	}
	return nil
}

func TestSearchStopsWhenContextEnds(t *testing.T) {
	// a 30-cycle against ten disjoint triangles: same degrees, many dead ends
	const n = 30
	var cycle, triples [][2]int
	for i := 0; i < n; i++ {
		cycle = append(cycle, [2]int{i, (i + 1) % n})
	}
	for i := 0; i < n; i += 3 {
		triples = append(triples, [2]int{i, i + 1}, [2]int{i + 1, i + 2}, [2]int{i + 2, i})
	}
	ring := bundleOf(t, n, cycle...)
	triangles := bundleOf(t, n, triples...)

	var s search
	s.reset(ring, triangles)
	require.True(t, s.buildCandidates())
	found, err := s.run(context.Background())
	require.NoError(t, err)
	require.False(t, found)
	require.Greater(t, s.steps, int64(pollInterval))

	ctx := &countdownContext{Context: context.Background(), limit: 1}
	s.reset(ring, triangles)
	require.True(t, s.buildCandidates())
	found, err = s.run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, found)
	require.Equal(t, int64(pollInterval), s.steps)
	require.Equal(t, 2, ctx.calls)
}
