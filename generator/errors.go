// SPDX-License-Identifier: MIT
// Package: isograph/generator
//
// errors.go: sentinel errors for the generator package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Context is attached with %w by the method that fails.
//   - A simple graph asked for too many edges reports fastgraph.ErrTooManyEdges,
//     the graph layer's configuration error, rather than a local sentinel.
//   - Option constructors panic on nonsense input; generators never panic.

package generator

import "errors"

// ErrNeedRandSource indicates a stochastic constructor was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("generator: rng is required")

// ErrInvalidSize indicates a negative node or edge count, or edges requested
// on a graph without nodes.
var ErrInvalidSize = errors.New("generator: invalid size")

// ErrTooFewEdges indicates a connected graph was requested with fewer than
// n-1 edges.
var ErrTooFewEdges = errors.New("generator: too few edges for a connected graph")

// ErrRewireFailed indicates no degree-preserving swap could be made within
// the attempt budget.
var ErrRewireFailed = errors.New("generator: rewiring failed")
