// SPDX-License-Identifier: MIT
// Package: isograph/subgraph
//
// Package subgraph finds every embedding of a pattern graph in a target
// graph: injective maps of pattern nodes onto target nodes such that each
// pair of adjacent pattern nodes lands on adjacent target nodes. Extra
// target edges between mapped nodes are allowed, so the search finds
// (non-induced) subgraph monomorphisms. Edge direction is ignored.
//
// Node and edge equivalences narrow the search. The defaults accept
// everything; NodeLabels, EdgeLabels, NodeTypes and EdgeTypes compare
// attributes; NodeFunc and EdgeFunc adapt plain functions.
//
// Search order is fail-first: pattern nodes with the fewest candidates are
// decided first. After each complete mapping the search backtracks, so all
// embeddings are recorded unless WithLimit caps them.
//
// A Finder is single-use per call of Search and is not safe for concurrent use.
package subgraph
