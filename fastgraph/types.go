// SPDX-License-Identifier: MIT
// Package: isograph/fastgraph
//
// types.go: public construction specs and the packed internal records.

package fastgraph

import "math"

const (
	// MaxLabelLength is the longest label, in bytes, a single node or edge may carry.
	MaxLabelLength = math.MaxUint16

	// MaxLabelArenaSize is the addressable size of one label arena.
	MaxLabelArenaSize = math.MaxInt32 - 5000
)

// maxLabelArena is the effective arena limit; tests lower it.
var maxLabelArena = MaxLabelArenaSize

// NodeSpec describes one node for New. Index must be unique and the set of
// indices must be exactly 0..len(nodes)-1. Weight must fit in an int32.
type NodeSpec struct {
	Index  int
	Label  string
	Weight int
	Type   byte
	Age    byte
}

// EdgeSpec describes one directed edge Node1→Node2 for New. Index must be
// unique and the set of indices must be exactly 0..len(edges)-1. Weight must
// fit in an int32.
type EdgeSpec struct {
	Index  int
	Node1  int
	Node2  int
	Label  string
	Weight int
	Type   byte
	Age    byte
}

// Rewire moves edge Edge so that it runs NewNode1→NewNode2.
type Rewire struct {
	Edge     int
	NewNode1 int
	NewNode2 int
}

// span addresses a label inside a label arena.
type span struct {
	start  int32
	length uint16
}

// nodeRecord is the fixed-size per-node record.
type nodeRecord struct {
	label    span
	inStart  int32
	inCount  int32
	outStart int32
	outCount int32
	weight   int32
	typ      byte
	age      byte
}

// edgeRecord is the fixed-size per-edge record.
type edgeRecord struct {
	node1  int32
	node2  int32
	label  span
	weight int32
	typ    byte
	age    byte
}

// connection is one entry in a node's adjacency segment: the incident edge
// and the node at its other end.
type connection struct {
	edge int32
	node int32
}

// Graph is a compact, index-addressed multigraph. Build one with New,
// FromEdges, or one of the derivations.
type Graph struct {
	name        string
	nodes       []nodeRecord
	edges       []edgeRecord
	connections []connection
	nodeLabels  []byte
	edgeLabels  []byte
}
