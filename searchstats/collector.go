// SPDX-License-Identifier: MIT
// Package: isograph/searchstats
//
// Package searchstats collects per-caller statistics for the isomorphism
// engines: which filter decided each test, how many candidate assignments
// and backtracks the searches made, and where the time went.
//
// A Collector is created by the caller and passed to engines through their
// WithStats options. Counters are atomic, so one Collector may be shared by
// engines running on different goroutines. A nil *Collector is valid and
// records nothing.
//
// Every recorded event is also forwarded to OpenTelemetry instruments (see
// metrics.go); with no SDK installed those are no-ops.
package searchstats

import (
	"sync/atomic"
	"time"
)

// Outcome names the step that decided one engine call.
type Outcome int

const (
	// Identical: the other graph is the reference graph itself.
	Identical Outcome = iota
	// Empty: both graphs have no nodes.
	Empty
	// NodeCount: node counts differ.
	NodeCount
	// EdgeCount: edge counts differ.
	EdgeCount
	// DegreeHistogram: degree histograms differ.
	DegreeHistogram
	// Spectrum: rounded spectra differ.
	Spectrum
	// NoCandidate: some node has an empty candidate list.
	NoCandidate
	// Exhausted: backtracking ran out of assignments.
	Exhausted
	// Matched: a full mapping was found.
	Matched

	numOutcomes
)

var outcomeNames = [numOutcomes]string{
	Identical:       "identical",
	Empty:           "empty",
	NodeCount:       "node_count",
	EdgeCount:       "edge_count",
	DegreeHistogram: "degree_histogram",
	Spectrum:        "spectrum",
	NoCandidate:     "no_candidate",
	Exhausted:       "exhausted",
	Matched:         "matched",
}

// String returns the snake_case name used in logs and metric attributes.
func (o Outcome) String() string {
	if o < 0 || o >= numOutcomes {
		return "unknown"
	}
	return outcomeNames[o]
}

// Positive reports whether the outcome means "isomorphic" / "found".
func (o Outcome) Positive() bool {
	return o == Identical || o == Empty || o == Matched
}

// Outcomes lists every outcome in declaration order.
func Outcomes() []Outcome {
	out := make([]Outcome, numOutcomes)
	for i := range out {
		out[i] = Outcome(i)
	}
	return out
}

// Collector accumulates statistics. The zero value is ready to use.
type Collector struct {
	outcomes    [numOutcomes]atomic.Int64
	steps       atomic.Int64
	backtracks  atomic.Int64
	mappings    atomic.Int64
	searchNanos atomic.Int64
	totalNanos  atomic.Int64
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector { return &Collector{} }

// Record counts one decided call and its wall time.
func (c *Collector) Record(o Outcome, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.outcomes[o].Add(1)
	c.totalNanos.Add(int64(elapsed))
	recordOutcome(o, elapsed)
}

// AddSearch counts the work of one backtracking run.
func (c *Collector) AddSearch(steps, backtracks int64, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.steps.Add(steps)
	c.backtracks.Add(backtracks)
	c.searchNanos.Add(int64(elapsed))
	recordSearch(steps, backtracks, elapsed)
}

// AddMappings counts embeddings recorded by a subgraph search.
func (c *Collector) AddMappings(n int64) {
	if c == nil {
		return
	}
	c.mappings.Add(n)
}

// Reset zeroes every counter.
func (c *Collector) Reset() {
	if c == nil {
		return
	}
	for i := range c.outcomes {
		c.outcomes[i].Store(0)
	}
	c.steps.Store(0)
	c.backtracks.Store(0)
	c.mappings.Store(0)
	c.searchNanos.Store(0)
	c.totalNanos.Store(0)
}

// Snapshot returns a point-in-time copy of the counters.
func (c *Collector) Snapshot() Report {
	var r Report
	if c == nil {
		return r
	}
	for i := range c.outcomes {
		r.Outcomes[i] = c.outcomes[i].Load()
		r.Tests += r.Outcomes[i]
	}
	r.Steps = c.steps.Load()
	r.Backtracks = c.backtracks.Load()
	r.Mappings = c.mappings.Load()
	r.SearchTime = time.Duration(c.searchNanos.Load())
	r.TotalTime = time.Duration(c.totalNanos.Load())
	return r
}

// Report is an immutable copy of a Collector.
type Report struct {
	Tests      int64
	Outcomes   [numOutcomes]int64
	Steps      int64
	Backtracks int64
	Mappings   int64
	SearchTime time.Duration
	TotalTime  time.Duration
}

// Count returns how many calls ended with o.
func (r Report) Count(o Outcome) int64 { return r.Outcomes[o] }

// Succeeded returns the number of positive outcomes.
func (r Report) Succeeded() int64 {
	var n int64
	for i, v := range r.Outcomes {
		if Outcome(i).Positive() {
			n += v
		}
	}
	return n
}

// Failed returns the number of negative outcomes.
func (r Report) Failed() int64 { return r.Tests - r.Succeeded() }
