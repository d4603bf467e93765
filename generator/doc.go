// SPDX-License-Identifier: MIT
// Package: isograph/generator
//
// Package generator produces fastgraph.Graph fixtures: random graphs,
// randomly permuted isomorphic copies and degree-preserving rewirings.
//
// Every stochastic constructor takes its randomness from an explicit
// *rand.Rand supplied through WithSeed or WithRand. Without one it fails
// with ErrNeedRandSource; there is no hidden global source, so a fixed seed
// always reproduces the same graph.
//
// Labels follow "n<i>" / "e<i>"; random weights are drawn from [0,100).
package generator
