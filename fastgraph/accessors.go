// SPDX-License-Identifier: MIT
// Package: isograph/fastgraph
//
// accessors.go: O(1) record reads and O(degree) adjacency reads.
//
// Index arguments are not validated beyond Go's slice bounds checks: an
// out-of-range index panics, exactly like indexing a slice. Every adjacency
// read has an Append variant that writes into dst[:0] and allocates only when
// dst lacks capacity.

package fastgraph

// Name returns the graph name.
func (g *Graph) Name() string { return g.name }

// SetName renames the graph.
func (g *Graph) SetName(name string) { g.name = name }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// NodeLabel returns the label of node n.
func (g *Graph) NodeLabel(n int) string { return g.nodes[n].label.in(g.nodeLabels) }

// NodeWeight returns the weight of node n.
func (g *Graph) NodeWeight(n int) int { return int(g.nodes[n].weight) }

// NodeType returns the type tag of node n.
func (g *Graph) NodeType(n int) byte { return g.nodes[n].typ }

// NodeAge returns the age of node n.
func (g *Graph) NodeAge(n int) byte { return g.nodes[n].age }

// Degree returns in-degree plus out-degree of node n. A self-loop counts twice.
func (g *Graph) Degree(n int) int {
	return int(g.nodes[n].inCount + g.nodes[n].outCount)
}

// InDegree returns the number of edges ending at n.
func (g *Graph) InDegree(n int) int { return int(g.nodes[n].inCount) }

// OutDegree returns the number of edges starting at n.
func (g *Graph) OutDegree(n int) int { return int(g.nodes[n].outCount) }

func (g *Graph) all(n int) []connection {
	r := &g.nodes[n]
	return g.connections[r.inStart : r.outStart+r.outCount]
}

func (g *Graph) in(n int) []connection {
	r := &g.nodes[n]
	return g.connections[r.inStart : r.inStart+r.inCount]
}

func (g *Graph) out(n int) []connection {
	r := &g.nodes[n]
	return g.connections[r.outStart : r.outStart+r.outCount]
}

func appendEdges(dst []int, cs []connection) []int {
	dst = dst[:0]
	for _, c := range cs {
		dst = append(dst, int(c.edge))
	}
	return dst
}

func appendNodes(dst []int, cs []connection) []int {
	dst = dst[:0]
	for _, c := range cs {
		dst = append(dst, int(c.node))
	}
	return dst
}

// ConnectingEdges returns the edges incident to n: incoming first, then outgoing.
func (g *Graph) ConnectingEdges(n int) []int {
	return g.AppendConnectingEdges(make([]int, 0, g.Degree(n)), n)
}

// AppendConnectingEdges writes the edges incident to n into dst[:0].
func (g *Graph) AppendConnectingEdges(dst []int, n int) []int {
	return appendEdges(dst, g.all(n))
}

// ConnectingNodes returns the opposite end of every incident edge of n, in
// the same order as ConnectingEdges. Duplicates appear for parallel edges.
func (g *Graph) ConnectingNodes(n int) []int {
	return g.AppendConnectingNodes(make([]int, 0, g.Degree(n)), n)
}

// AppendConnectingNodes writes the neighbors of n into dst[:0].
func (g *Graph) AppendConnectingNodes(dst []int, n int) []int {
	return appendNodes(dst, g.all(n))
}

// ConnectingInEdges returns the edges ending at n.
func (g *Graph) ConnectingInEdges(n int) []int {
	return g.AppendConnectingInEdges(make([]int, 0, g.InDegree(n)), n)
}

// AppendConnectingInEdges writes the edges ending at n into dst[:0].
func (g *Graph) AppendConnectingInEdges(dst []int, n int) []int {
	return appendEdges(dst, g.in(n))
}

// ConnectingInNodes returns the source node of every edge ending at n.
func (g *Graph) ConnectingInNodes(n int) []int {
	return g.AppendConnectingInNodes(make([]int, 0, g.InDegree(n)), n)
}

// AppendConnectingInNodes writes the in-neighbors of n into dst[:0].
func (g *Graph) AppendConnectingInNodes(dst []int, n int) []int {
	return appendNodes(dst, g.in(n))
}

// ConnectingOutEdges returns the edges starting at n.
func (g *Graph) ConnectingOutEdges(n int) []int {
	return g.AppendConnectingOutEdges(make([]int, 0, g.OutDegree(n)), n)
}

// AppendConnectingOutEdges writes the edges starting at n into dst[:0].
func (g *Graph) AppendConnectingOutEdges(dst []int, n int) []int {
	return appendEdges(dst, g.out(n))
}

// ConnectingOutNodes returns the target node of every edge starting at n.
func (g *Graph) ConnectingOutNodes(n int) []int {
	return g.AppendConnectingOutNodes(make([]int, 0, g.OutDegree(n)), n)
}

// AppendConnectingOutNodes writes the out-neighbors of n into dst[:0].
func (g *Graph) AppendConnectingOutNodes(dst []int, n int) []int {
	return appendNodes(dst, g.out(n))
}

// EdgeLabel returns the label of edge e.
func (g *Graph) EdgeLabel(e int) string { return g.edges[e].label.in(g.edgeLabels) }

// EdgeWeight returns the weight of edge e.
func (g *Graph) EdgeWeight(e int) int { return int(g.edges[e].weight) }

// EdgeType returns the type tag of edge e.
func (g *Graph) EdgeType(e int) byte { return g.edges[e].typ }

// EdgeAge returns the age of edge e.
func (g *Graph) EdgeAge(e int) byte { return g.edges[e].age }

// EdgeNode1 returns the source node of edge e.
func (g *Graph) EdgeNode1(e int) int { return int(g.edges[e].node1) }

// EdgeNode2 returns the target node of edge e.
func (g *Graph) EdgeNode2(e int) int { return int(g.edges[e].node2) }

// OppositeEnd returns the endpoint of e that is not n. When n is not an
// endpoint of e the result is node1.
func (g *Graph) OppositeEnd(e, n int) int {
	rec := &g.edges[e]
	if int(rec.node1) == n {
		return int(rec.node2)
	}
	return int(rec.node1)
}

// EdgesBetween returns every edge joining n1 and n2 in either direction, in
// ascending edge order for each direction. A self-loop on n1 is listed once
// when n1 == n2.
func (g *Graph) EdgesBetween(n1, n2 int) []int {
	var out []int
	if n1 == n2 {
		for _, c := range g.out(n1) {
			if int(c.node) == n1 {
				out = append(out, int(c.edge))
			}
		}
		return out
	}
	for _, c := range g.all(n1) {
		if int(c.node) == n2 {
			out = append(out, int(c.edge))
		}
	}
	return out
}

// FirstEdgeBetween returns the first edge EdgesBetween(n1, n2) would list,
// without allocating. ok is false when the nodes are not adjacent.
func (g *Graph) FirstEdgeBetween(n1, n2 int) (edge int, ok bool) {
	cs := g.all(n1)
	if n1 == n2 {
		cs = g.out(n1)
	}
	for _, c := range cs {
		if int(c.node) == n2 {
			return int(c.edge), true
		}
	}
	return -1, false
}

// SetNodeWeight sets the weight of node n. Weights are stored in 32 bits;
// w outside that range is truncated.
func (g *Graph) SetNodeWeight(n, w int) { g.nodes[n].weight = int32(w) }

// SetNodeType sets the type tag of node n.
func (g *Graph) SetNodeType(n int, t byte) { g.nodes[n].typ = t }

// SetNodeAge sets the age of node n.
func (g *Graph) SetNodeAge(n int, a byte) { g.nodes[n].age = a }

// SetEdgeWeight sets the weight of edge e, truncated to 32 bits like
// SetNodeWeight.
func (g *Graph) SetEdgeWeight(e, w int) { g.edges[e].weight = int32(w) }

// SetEdgeType sets the type tag of edge e.
func (g *Graph) SetEdgeType(e int, t byte) { g.edges[e].typ = t }

// SetEdgeAge sets the age of edge e.
func (g *Graph) SetEdgeAge(e int, a byte) { g.edges[e].age = a }
