// SPDX-License-Identifier: MIT
// Package: isograph/isomorphism
//
// Package isomorphism decides whether two connected fastgraph.Graphs are
// isomorphic and, when they are, produces a node mapping.
//
// An Engine is built once for a reference graph and then tested against any
// number of other graphs:
//
//	eng, err := isomorphism.New(ref)
//	ok, err := eng.Isomorphic(other)
//	if ok { mapping := eng.LastMatch() }
//
// Each test runs cheap invariant filters first (node count, edge count,
// degree histogram, rounded spectrum) and only then an iterative
// backtracking search. Candidate targets for a reference node share its
// degree and self-loop count; an assignment is kept only if every already
// matched neighbor on either side maps onto a neighbor on the other side.
//
// Edge direction, labels, weights, types and ages are ignored by the
// decision. Ages only feed Fingerprint.
//
// Connectivity: the reference graph must be connected (checked by New), and
// so must every other graph (checked by Isomorphic after the identity and
// both-empty short-circuits). A disconnected graph yields
// fastgraph.ErrNotConnected, never a plain false.
//
// Concurrency: an Engine holds mutable search state and must not be shared
// between goroutines. Use one Engine per goroutine; a searchstats.Collector
// may be shared.
package isomorphism
