// SPDX-License-Identifier: MIT
// Package: isograph/motif
//
// Package motif samples connected k-node subgraphs of a graph and groups
// them into isomorphism classes.
//
// Clustering is hash-bucketed: each subgraph is keyed by its
// isomorphism.Engine fingerprint, and only the first member of each bucket
// under the same fingerprint is tested exactly. Bucket members are mutually
// isomorphic, so one exact test per bucket decides membership.
//
// Sampling grows a node set from a random seed by random frontier
// expansion, so every sample is connected. Samples are deduplicated by node
// set. All randomness comes from an explicit source (WithSeed / WithRand).
//
// Find runs the whole pipeline. Engine construction (invariants and
// spectra) is spread over WithWorkers goroutines; clustering itself is
// sequential and checks ctx between subgraphs.
package motif
