// SPDX-License-Identifier: MIT
// Package: isograph/isomorphism
//
// engine.go: reference-graph engine and the filter pipeline.
//
// Pipeline of Isomorphic(other), first decisive step wins:
//  1. other is the reference graph itself        → true
//  2. both graphs have zero nodes                 → true
//  3. other is disconnected                       → ErrNotConnected
//  4. node counts differ                          → false
//  5. edge counts differ                          → false
//  6. degree histograms differ                    → false
//  7. rounded spectra differ                      → false
//  8. some reference node has no candidate        → false
//  9. backtracking finds / exhausts a mapping     → true / false

package isomorphism

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/isograph/fastgraph"
	"github.com/katalvlaran/isograph/invariant"
	"github.com/katalvlaran/isograph/searchstats"
)

const (
	methodNew        = "New"
	methodIsomorphic = "Isomorphic"
)

// Engine tests graphs for isomorphism against one reference graph.
type Engine struct {
	ref    *fastgraph.Graph
	bundle *invariant.Bundle
	cfg    config

	s         search
	lastMatch []int
}

// New precomputes the invariants of reference.
//
// Errors: fastgraph.ErrNotConnected if reference is disconnected,
// invariant.ErrNoConvergence if its spectrum cannot be computed.
func New(reference *fastgraph.Graph, opts ...Option) (*Engine, error) {
	if !reference.Connected() {
		return nil, fmt.Errorf("%s: reference %q: %w", methodNew, reference.Name(), fastgraph.ErrNotConnected)
	}
	bundle, err := invariant.Compute(reference)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	return &Engine{ref: reference, bundle: bundle, cfg: newConfig(opts...)}, nil
}

// Reference returns the reference graph.
func (e *Engine) Reference() *fastgraph.Graph { return e.ref }

// Bundle returns the precomputed invariants of the reference graph.
func (e *Engine) Bundle() *invariant.Bundle { return e.bundle }

// Isomorphic reports whether other has the same structure as the reference
// graph. After a true result LastMatch holds the mapping.
func (e *Engine) Isomorphic(other *fastgraph.Graph) (bool, error) {
	return e.IsomorphicContext(context.Background(), other)
}

// IsomorphicContext is Isomorphic with cancellation: the backtracking search
// stops and returns ctx.Err() once ctx is done. Invariant filters run to
// completion.
func (e *Engine) IsomorphicContext(ctx context.Context, other *fastgraph.Graph) (bool, error) {
	start := time.Now()
	e.lastMatch = nil

	outcome, err := e.decide(ctx, other)
	if err != nil {
		return false, err
	}
	e.cfg.stats.Record(outcome, time.Since(start))

	return outcome.Positive(), nil
}

// LastMatch returns the mapping found by the last successful Isomorphic call:
// LastMatch()[i] is the node of the other graph matched to reference node i.
// The result is nil after a false result or an error.
func (e *Engine) LastMatch() []int { return e.lastMatch }

// IsomorphicSubgraph tests the reference graph against the subgraph of g
// formed by nodes and edges.
func (e *Engine) IsomorphicSubgraph(g *fastgraph.Graph, nodes, edges []int) (bool, error) {
	sub, err := g.Subgraph(nodes, edges)
	if err != nil {
		return false, fmt.Errorf("IsomorphicSubgraph: %w", err)
	}
	return e.Isomorphic(sub)
}

// SameSpectrum compares only the rounded spectra of the reference graph and
// other. Neither connectivity nor sizes are checked.
func (e *Engine) SameSpectrum(other *fastgraph.Graph) (bool, error) {
	spectrum, err := invariant.Spectrum(other)
	if err != nil {
		return false, fmt.Errorf("SameSpectrum: %w", err)
	}
	return slices.Equal(e.bundle.Spectrum, spectrum), nil
}

func (e *Engine) decide(ctx context.Context, other *fastgraph.Graph) (searchstats.Outcome, error) {
	if other == e.ref {
		e.lastMatch = identity(e.ref.NodeCount())
		return searchstats.Identical, nil
	}
	if e.ref.NodeCount() == 0 && other.NodeCount() == 0 {
		e.lastMatch = []int{}
		return searchstats.Empty, nil
	}
	if !other.Connected() {
		return 0, fmt.Errorf("%s: %q: %w", methodIsomorphic, other.Name(), fastgraph.ErrNotConnected)
	}
	if e.ref.NodeCount() != other.NodeCount() {
		return searchstats.NodeCount, nil
	}
	if e.ref.EdgeCount() != other.EdgeCount() {
		return searchstats.EdgeCount, nil
	}

	bundle, err := invariant.Compute(other)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodIsomorphic, err)
	}
	if !e.bundle.SameHistogram(bundle) {
		return searchstats.DegreeHistogram, nil
	}
	if !e.bundle.SameSpectrum(bundle) {
		return searchstats.Spectrum, nil
	}

	e.s.reset(e.bundle, bundle)
	if !e.s.buildCandidates() {
		return searchstats.NoCandidate, nil
	}

	searchStart := time.Now()
	found, err := e.s.run(ctx)
	e.cfg.stats.AddSearch(e.s.steps, e.s.backtracks, time.Since(searchStart))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodIsomorphic, err)
	}
	if !found {
		return searchstats.Exhausted, nil
	}
	e.lastMatch = slices.Clone(e.s.matches1)

	return searchstats.Matched, nil
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Isomorphic builds an Engine for g1 and tests g2 against it. Both graphs must
// be connected.
func Isomorphic(g1, g2 *fastgraph.Graph, opts ...Option) (bool, error) {
	e, err := New(g1, opts...)
	if err != nil {
		return false, err
	}
	return e.Isomorphic(g2)
}
