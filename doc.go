// Package isograph tests graphs for exact isomorphism, finds embeddings of
// pattern graphs in larger ones and groups sampled subgraphs into motif
// classes.
//
// Everything is built on one compact, index-based graph store:
//
//	fastgraph/   arena-backed Graph: dense node/edge indices, O(1) reads,
//	             derivations (subgraph, induced, delete, rewire)
//	invariant/   degree sequence & histogram, neighbor sets, adjacency
//	             counts, eigenvalue spectrum
//	isomorphism/ Engine: invariant filters, then iterative backtracking
//	subgraph/    Finder: fail-first backtracking over pattern nodes,
//	             pluggable node/edge equivalence
//	motif/       random connected k-subgraph sampling and fingerprint
//	             bucket clustering
//	searchstats/ caller-owned counters for tests, steps and backtracks
//	generator/   seeded random graphs, permuted copies, edge swaps
//	graphio/     JSON, SNAP, node/edge lists and "a-b-c" notation
//	cmd/isograph command line front end
//
// Quick example, two drawings of the same square:
//
//	    a───b        w───y
//	    │   │        │   │
//	    d───c        z───x
//
//	ok, err := isomorphism.Isomorphic(
//		graphio.MustParseNotation("a-b-c-d-a"),
//		graphio.MustParseNotation("w-y-x-z-w"),
//	) // true, nil
//
//	go get github.com/katalvlaran/isograph
package isograph
