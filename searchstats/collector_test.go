// SPDX-License-Identifier: MIT
package searchstats_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isograph/searchstats"
)

func TestNilCollectorIsNoop(t *testing.T) {
	t.Parallel()
	var c *searchstats.Collector
	c.Record(searchstats.Matched, time.Millisecond)
	c.AddSearch(3, 1, time.Millisecond)
	c.AddMappings(2)
	c.Reset()
	require.Equal(t, searchstats.Report{}, c.Snapshot())
}

func TestCollectorCounts(t *testing.T) {
	t.Parallel()
	c := searchstats.NewCollector()
	c.Record(searchstats.NodeCount, time.Millisecond)
	c.Record(searchstats.Spectrum, time.Millisecond)
	c.Record(searchstats.Matched, 2*time.Millisecond)
	c.AddSearch(10, 4, time.Millisecond)
	c.AddMappings(7)

	r := c.Snapshot()
	require.EqualValues(t, 3, r.Tests)
	require.EqualValues(t, 1, r.Count(searchstats.NodeCount))
	require.EqualValues(t, 0, r.Count(searchstats.EdgeCount))
	require.EqualValues(t, 1, r.Succeeded())
	require.EqualValues(t, 2, r.Failed())
	require.EqualValues(t, 10, r.Steps)
	require.EqualValues(t, 4, r.Backtracks)
	require.EqualValues(t, 7, r.Mappings)
	require.Equal(t, 4*time.Millisecond, r.TotalTime)
	require.Equal(t, time.Millisecond, r.SearchTime)

	c.Reset()
	require.Equal(t, searchstats.Report{}, c.Snapshot())
}

func TestCollectorConcurrentUse(t *testing.T) {
	t.Parallel()
	c := searchstats.NewCollector()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Record(searchstats.Exhausted, 0)
				c.AddSearch(1, 1, 0)
			}
		}()
	}
	wg.Wait()
	r := c.Snapshot()
	require.EqualValues(t, 800, r.Count(searchstats.Exhausted))
	require.EqualValues(t, 800, r.Steps)
}

func TestOutcomeNames(t *testing.T) {
	t.Parallel()
	require.Equal(t, "degree_histogram", searchstats.DegreeHistogram.String())
	require.Equal(t, "unknown", searchstats.Outcome(99).String())
	require.Len(t, searchstats.Outcomes(), 9)
	require.True(t, searchstats.Empty.Positive())
	require.False(t, searchstats.NoCandidate.Positive())
}
