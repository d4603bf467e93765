// SPDX-License-Identifier: MIT
// Package: isograph/fastgraph
//
// Package fastgraph provides Graph, a compact index-based multigraph built for
// hot-loop traversal by the isomorphism engines.
//
// Layout:
//
//	nodes        []nodeRecord   label span, weight, type, age, in/out segments
//	edges        []edgeRecord   node1→node2, label span, weight, type, age
//	connections  []connection   (edge, opposite node) pairs; per node: in-segment, then out-segment
//	nodeLabels   []byte         label arena for nodes
//	edgeLabels   []byte         label arena for edges
//
// Every edge appears exactly once in the out-segment of node1 and exactly once
// in the in-segment of node2, so a self-loop shows up twice on its node.
// Node and edge indices are dense: 0..NodeCount()-1 and 0..EdgeCount()-1.
//
// Node and edge counts never change after construction. Derivations
// (Subgraph, InducedSubgraph, DeleteItems, Rewire, Reduce) always return a
// new Graph.
// Attribute setters (weights, types, ages, labels) mutate in place.
//
// Concurrency: a Graph is safe for concurrent readers. Setters must not race
// with readers or with each other.
//
// Errors: every sentinel in this package satisfies errors.Is(err, ErrGraph).
package fastgraph
