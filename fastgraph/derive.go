// SPDX-License-Identifier: MIT
// Package: isograph/fastgraph
//
// derive.go: derivations that produce a new Graph from an existing one.
//
// Every derivation builds an old→new node table (-1 for dropped nodes), maps
// surviving edges through it and calls New. Attributes and labels travel with
// their elements. The source graph is never modified.

package fastgraph

import "slices"

const (
	suffixSubgraph = "-subgraph"
	suffixDeleted  = "-deleted"
	suffixRewired  = "-rewired"
	suffixReduced  = "-reduced"
)

// oldToNew returns a table mapping old node indices to their position in keep,
// -1 for nodes not kept.
func (g *Graph) oldToNew(method string, keep []int) ([]int, error) {
	table := make([]int, len(g.nodes))
	for i := range table {
		table[i] = -1
	}
	for i, old := range keep {
		if old < 0 || old >= len(g.nodes) {
			return nil, wrapf(method, ErrIndexOutOfRange, "node %d", old)
		}
		if table[old] != -1 {
			return nil, wrapf(method, ErrBadStructure, "node %d listed twice", old)
		}
		table[old] = i
	}
	return table, nil
}

// Subgraph returns a new graph containing exactly the listed nodes and edges.
// New node i is nodes[i]; new edge j is edges[j].
//
// Errors: ErrIndexOutOfRange for unknown indices, ErrBadStructure for
// duplicates or for an edge whose endpoint is not among nodes.
func (g *Graph) Subgraph(nodes, edges []int) (*Graph, error) {
	table, err := g.oldToNew(methodSubgraph, nodes)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, len(edges))
	specs := make([]EdgeSpec, len(edges))
	for j, old := range edges {
		if old < 0 || old >= len(g.edges) {
			return nil, wrapf(methodSubgraph, ErrIndexOutOfRange, "edge %d", old)
		}
		if _, dup := seen[old]; dup {
			return nil, wrapf(methodSubgraph, ErrBadStructure, "edge %d listed twice", old)
		}
		seen[old] = struct{}{}
		n1, n2 := table[g.edges[old].node1], table[g.edges[old].node2]
		if n1 < 0 || n2 < 0 {
			return nil, wrapf(methodSubgraph, ErrBadStructure, "edge %d touches a node outside the subgraph", old)
		}
		specs[j] = g.edgeSpec(old, j, n1, n2)
	}

	return New(g.name+suffixSubgraph, g.nodeSpecs(nodes), specs)
}

// InducedSubgraph returns the subgraph on nodes together with every edge of g
// whose endpoints are both listed, in ascending edge order.
func (g *Graph) InducedSubgraph(nodes []int) (*Graph, error) {
	table, err := g.oldToNew(methodInducedSubgraph, nodes)
	if err != nil {
		return nil, err
	}

	var kept []int
	for _, old := range nodes {
		for _, c := range g.out(old) {
			if table[c.node] >= 0 {
				kept = append(kept, int(c.edge))
			}
		}
	}
	slices.Sort(kept)

	specs := make([]EdgeSpec, len(kept))
	for j, e := range kept {
		rec := &g.edges[e]
		specs[j] = g.edgeSpec(e, j, table[rec.node1], table[rec.node2])
	}

	return New(g.name+suffixSubgraph, g.nodeSpecs(nodes), specs)
}

// DeleteItems returns a copy of g without the listed nodes and edges. Edges
// incident to a deleted node are removed as well. Survivors keep their
// relative order.
func (g *Graph) DeleteItems(nodes, edges []int) (*Graph, error) {
	dropNode := make([]bool, len(g.nodes))
	for _, n := range nodes {
		if n < 0 || n >= len(g.nodes) {
			return nil, wrapf(methodDeleteItems, ErrIndexOutOfRange, "node %d", n)
		}
		dropNode[n] = true
	}
	dropEdge := make([]bool, len(g.edges))
	for _, e := range edges {
		if e < 0 || e >= len(g.edges) {
			return nil, wrapf(methodDeleteItems, ErrIndexOutOfRange, "edge %d", e)
		}
		dropEdge[e] = true
	}

	keep := make([]int, 0, len(g.nodes))
	for n := range g.nodes {
		if !dropNode[n] {
			keep = append(keep, n)
		}
	}
	table, err := g.oldToNew(methodDeleteItems, keep)
	if err != nil {
		return nil, err
	}

	var specs []EdgeSpec
	for e, rec := range g.edges {
		if dropEdge[e] || dropNode[rec.node1] || dropNode[rec.node2] {
			continue
		}
		specs = append(specs, g.edgeSpec(e, len(specs), table[rec.node1], table[rec.node2]))
	}

	return New(g.name+suffixDeleted, g.nodeSpecs(keep), specs)
}

// Rewire returns a copy of g in which each listed edge runs between its new
// endpoints. Node count, edge indices and untouched edges are preserved. When
// an edge is listed more than once the last entry wins.
func (g *Graph) Rewire(rewires []Rewire) (*Graph, error) {
	n := len(g.nodes)
	out := g.Clone()
	out.name = g.name + suffixRewired
	for _, r := range rewires {
		if r.Edge < 0 || r.Edge >= len(g.edges) {
			return nil, wrapf(methodRewire, ErrIndexOutOfRange, "edge %d", r.Edge)
		}
		if r.NewNode1 < 0 || r.NewNode1 >= n || r.NewNode2 < 0 || r.NewNode2 >= n {
			return nil, wrapf(methodRewire, ErrIndexOutOfRange, "edge %d endpoints (%d,%d)", r.Edge, r.NewNode1, r.NewNode2)
		}
		out.edges[r.Edge].node1 = int32(r.NewNode1)
		out.edges[r.Edge].node2 = int32(r.NewNode2)
	}
	out.buildConnections()

	return out, nil
}
