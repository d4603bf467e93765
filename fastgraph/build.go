// SPDX-License-Identifier: MIT
// Package: isograph/fastgraph
//
// build.go: construction of a Graph from node and edge specs.
//
// Construction runs in four stages:
//  1. place specs by Index, rejecting holes and duplicates;
//  2. validate edge endpoints;
//  3. pack labels into the two arenas;
//  4. count per-node in/out degrees, lay out segments, fill the connection arena.
//
// Complexity: O(N + M + total label bytes) time and space.

package fastgraph

import "math"

// New builds a Graph named name from node and edge specs.
//
// Errors:
//   - ErrBadStructure when indices have holes or duplicates, an edge
//     endpoint is outside 0..len(nodes)-1, or a weight does not fit in
//     32 bits.
//   - ErrLabelOverflow when a label or an arena exceeds its capacity.
func New(name string, nodes []NodeSpec, edges []EdgeSpec) (*Graph, error) {
	n, m := len(nodes), len(edges)

	placedNodes := make([]*NodeSpec, n)
	for i := range nodes {
		idx := nodes[i].Index
		if idx < 0 || idx >= n {
			return nil, wrapf(methodNew, ErrBadStructure, "node index %d outside 0..%d", idx, n-1)
		}
		if placedNodes[idx] != nil {
			return nil, wrapf(methodNew, ErrBadStructure, "duplicate node index %d", idx)
		}
		if !fitsWeight(nodes[i].Weight) {
			return nil, wrapf(methodNew, ErrBadStructure, "node %d weight %d outside the 32-bit range", idx, nodes[i].Weight)
		}
		placedNodes[idx] = &nodes[i]
	}

	placedEdges := make([]*EdgeSpec, m)
	for i := range edges {
		e := &edges[i]
		if e.Index < 0 || e.Index >= m {
			return nil, wrapf(methodNew, ErrBadStructure, "edge index %d outside 0..%d", e.Index, m-1)
		}
		if placedEdges[e.Index] != nil {
			return nil, wrapf(methodNew, ErrBadStructure, "duplicate edge index %d", e.Index)
		}
		if e.Node1 < 0 || e.Node1 >= n || e.Node2 < 0 || e.Node2 >= n {
			return nil, wrapf(methodNew, ErrBadStructure, "edge %d endpoints (%d,%d) outside 0..%d", e.Index, e.Node1, e.Node2, n-1)
		}
		if !fitsWeight(e.Weight) {
			return nil, wrapf(methodNew, ErrBadStructure, "edge %d weight %d outside the 32-bit range", e.Index, e.Weight)
		}
		placedEdges[e.Index] = e
	}

	g := &Graph{
		name:  name,
		nodes: make([]nodeRecord, n),
		edges: make([]edgeRecord, m),
	}

	nodeLabels := make([]string, n)
	for i, ns := range placedNodes {
		nodeLabels[i] = ns.Label
		g.nodes[i].weight = int32(ns.Weight)
		g.nodes[i].typ = ns.Type
		g.nodes[i].age = ns.Age
	}
	edgeLabels := make([]string, m)
	for i, es := range placedEdges {
		edgeLabels[i] = es.Label
		g.edges[i] = edgeRecord{
			node1:  int32(es.Node1),
			node2:  int32(es.Node2),
			weight: int32(es.Weight),
			typ:    es.Type,
			age:    es.Age,
		}
	}

	if err := g.SetAllNodeLabels(nodeLabels); err != nil {
		return nil, wrapf(methodNew, err, "node labels")
	}
	if err := g.SetAllEdgeLabels(edgeLabels); err != nil {
		return nil, wrapf(methodNew, err, "edge labels")
	}
	g.buildConnections()

	return g, nil
}

func fitsWeight(w int) bool { return w >= math.MinInt32 && w <= math.MaxInt32 }

// FromEdges builds a Graph with nodeCount unlabeled nodes and one edge per
// pair, in order. Node labels are "n<i>" and edge labels "e<i>".
func FromEdges(name string, nodeCount int, pairs ...[2]int) (*Graph, error) {
	nodes := make([]NodeSpec, nodeCount)
	for i := range nodes {
		nodes[i] = NodeSpec{Index: i, Label: nodeLabel(i)}
	}
	edges := make([]EdgeSpec, len(pairs))
	for i, p := range pairs {
		edges[i] = EdgeSpec{Index: i, Node1: p[0], Node2: p[1], Label: edgeLabel(i)}
	}

	return New(name, nodes, edges)
}

// buildConnections lays out each node's in-segment followed by its
// out-segment and fills them in ascending edge order.
func (g *Graph) buildConnections() {
	for i := range g.nodes {
		g.nodes[i].inCount = 0
		g.nodes[i].outCount = 0
	}
	for _, e := range g.edges {
		g.nodes[e.node1].outCount++
		g.nodes[e.node2].inCount++
	}

	var offset int32
	for i := range g.nodes {
		rec := &g.nodes[i]
		rec.inStart = offset
		rec.outStart = offset + rec.inCount
		offset += rec.inCount + rec.outCount
	}

	g.connections = make([]connection, offset)
	inFill := make([]int32, len(g.nodes))
	outFill := make([]int32, len(g.nodes))
	for ei, e := range g.edges {
		src, dst := &g.nodes[e.node1], &g.nodes[e.node2]
		g.connections[src.outStart+outFill[e.node1]] = connection{edge: int32(ei), node: e.node2}
		outFill[e.node1]++
		g.connections[dst.inStart+inFill[e.node2]] = connection{edge: int32(ei), node: e.node1}
		inFill[e.node2]++
	}
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	return &Graph{
		name:        g.name,
		nodes:       append([]nodeRecord(nil), g.nodes...),
		edges:       append([]edgeRecord(nil), g.edges...),
		connections: append([]connection(nil), g.connections...),
		nodeLabels:  append([]byte(nil), g.nodeLabels...),
		edgeLabels:  append([]byte(nil), g.edgeLabels...),
	}
}

// nodeSpecs extracts the node specs of g, re-indexed through keep.
// keep[i] is the old index of the i-th new node.
func (g *Graph) nodeSpecs(keep []int) []NodeSpec {
	out := make([]NodeSpec, len(keep))
	for i, old := range keep {
		out[i] = NodeSpec{
			Index:  i,
			Label:  g.NodeLabel(old),
			Weight: g.NodeWeight(old),
			Type:   g.NodeType(old),
			Age:    g.NodeAge(old),
		}
	}
	return out
}

// edgeSpec extracts edge old of g as a spec with new index and endpoints.
func (g *Graph) edgeSpec(old, index, node1, node2 int) EdgeSpec {
	return EdgeSpec{
		Index:  index,
		Node1:  node1,
		Node2:  node2,
		Label:  g.EdgeLabel(old),
		Weight: g.EdgeWeight(old),
		Type:   g.EdgeType(old),
		Age:    g.EdgeAge(old),
	}
}
