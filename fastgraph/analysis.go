// SPDX-License-Identifier: MIT
// Package: isograph/fastgraph
//
// analysis.go: whole-graph queries: connectivity, degree extremes and
// histograms, ages, the structural consistency check.

package fastgraph

// walker holds the mutable state of a breadth-first sweep over the
// connection arena. Direction is ignored.
type walker struct {
	g       *Graph
	queue   []int32
	visited []bool
	seen    int
}

func newWalker(g *Graph) *walker {
	return &walker{
		g:       g,
		queue:   make([]int32, 0, len(g.nodes)),
		visited: make([]bool, len(g.nodes)),
	}
}

// sweep visits every node reachable from start.
func (w *walker) sweep(start int32) {
	w.enqueue(start)
	for head := 0; head < len(w.queue); head++ {
		n := w.queue[head]
		for _, c := range w.g.all(int(n)) {
			if !w.visited[c.node] {
				w.enqueue(c.node)
			}
		}
	}
}

func (w *walker) enqueue(n int32) {
	w.visited[n] = true
	w.seen++
	w.queue = append(w.queue, n)
}

// Connected reports whether every node is reachable from node 0, ignoring
// edge direction. Graphs with zero or one node are connected.
func (g *Graph) Connected() bool {
	if len(g.nodes) < 2 {
		return true
	}
	w := newWalker(g)
	w.sweep(0)
	return w.seen == len(g.nodes)
}

// Components returns the node sets of the weakly connected components, each
// in BFS order, ordered by their smallest node.
func (g *Graph) Components() [][]int {
	var out [][]int
	w := newWalker(g)
	for n := range g.nodes {
		if w.visited[n] {
			continue
		}
		from := len(w.queue)
		w.sweep(int32(n))
		comp := make([]int, 0, len(w.queue)-from)
		for _, v := range w.queue[from:] {
			comp = append(comp, int(v))
		}
		out = append(out, comp)
	}
	return out
}

// MaximumDegree returns the largest Degree over all nodes, 0 for an empty graph.
func (g *Graph) MaximumDegree() int {
	best := 0
	for n := range g.nodes {
		best = max(best, g.Degree(n))
	}
	return best
}

// MaximumInDegree returns the largest InDegree over all nodes.
func (g *Graph) MaximumInDegree() int {
	best := 0
	for i := range g.nodes {
		best = max(best, int(g.nodes[i].inCount))
	}
	return best
}

// MaximumOutDegree returns the largest OutDegree over all nodes.
func (g *Graph) MaximumOutDegree() int {
	best := 0
	for i := range g.nodes {
		best = max(best, int(g.nodes[i].outCount))
	}
	return best
}

// InDegreeHistogram returns h of length MaximumInDegree()+1 where h[d] is the
// number of nodes with in-degree d. It is empty for a graph without nodes.
func (g *Graph) InDegreeHistogram() []int {
	if len(g.nodes) == 0 {
		return []int{}
	}
	h := make([]int, g.MaximumInDegree()+1)
	for i := range g.nodes {
		h[g.nodes[i].inCount]++
	}
	return h
}

// OutDegreeHistogram is InDegreeHistogram for out-degrees.
func (g *Graph) OutDegreeHistogram() []int {
	if len(g.nodes) == 0 {
		return []int{}
	}
	h := make([]int, g.MaximumOutDegree()+1)
	for i := range g.nodes {
		h[g.nodes[i].outCount]++
	}
	return h
}

// MinimumNodeAge returns the smallest node age, 0 for an empty graph.
func (g *Graph) MinimumNodeAge() byte {
	if len(g.nodes) == 0 {
		return 0
	}
	lo := g.nodes[0].age
	for i := range g.nodes {
		lo = min(lo, g.nodes[i].age)
	}
	return lo
}

// MaximumNodeAge returns the largest node age, 0 for an empty graph.
func (g *Graph) MaximumNodeAge() byte {
	var hi byte
	for i := range g.nodes {
		hi = max(hi, g.nodes[i].age)
	}
	return hi
}

// CountNodesOfAge returns how many nodes have age a.
func (g *Graph) CountNodesOfAge(a byte) int {
	count := 0
	for i := range g.nodes {
		if g.nodes[i].age == a {
			count++
		}
	}
	return count
}

// MaxSimpleEdges returns n(n-1)/2, the edge count of the complete simple
// graph on n nodes.
func MaxSimpleEdges(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// CheckConsistency verifies that the connection arena and the edge records
// describe the same graph. It returns nil or ErrInconsistent wrapped with the
// first violation found.
//
// Checked:
//   - arena length is twice the edge count;
//   - segments are contiguous and inside the arena;
//   - each in-entry (e, v) of node n has node2(e) == n and node1(e) == v;
//   - each out-entry (e, v) of node n has node1(e) == n and node2(e) == v;
//   - each edge occurs exactly once as an out-entry and once as an in-entry;
//   - label spans lie inside their arenas.
func (g *Graph) CheckConsistency() error {
	if len(g.connections) != 2*len(g.edges) {
		return wrapf(methodCheckConsistency, ErrInconsistent, "arena holds %d entries for %d edges", len(g.connections), len(g.edges))
	}

	outSeen := make([]int, len(g.edges))
	inSeen := make([]int, len(g.edges))
	var next int32
	for n := range g.nodes {
		rec := &g.nodes[n]
		if rec.inStart != next || rec.outStart != rec.inStart+rec.inCount {
			return wrapf(methodCheckConsistency, ErrInconsistent, "node %d segments are not contiguous", n)
		}
		next = rec.outStart + rec.outCount
		if int(next) > len(g.connections) {
			return wrapf(methodCheckConsistency, ErrInconsistent, "node %d segments overrun the arena", n)
		}
		for _, c := range g.in(n) {
			if c.edge < 0 || int(c.edge) >= len(g.edges) {
				return wrapf(methodCheckConsistency, ErrInconsistent, "node %d lists unknown edge %d", n, c.edge)
			}
			e := &g.edges[c.edge]
			if int(e.node2) != n || e.node1 != c.node {
				return wrapf(methodCheckConsistency, ErrInconsistent, "node %d in-entry for edge %d disagrees with (%d,%d)", n, c.edge, e.node1, e.node2)
			}
			inSeen[c.edge]++
		}
		for _, c := range g.out(n) {
			if c.edge < 0 || int(c.edge) >= len(g.edges) {
				return wrapf(methodCheckConsistency, ErrInconsistent, "node %d lists unknown edge %d", n, c.edge)
			}
			e := &g.edges[c.edge]
			if int(e.node1) != n || e.node2 != c.node {
				return wrapf(methodCheckConsistency, ErrInconsistent, "node %d out-entry for edge %d disagrees with (%d,%d)", n, c.edge, e.node1, e.node2)
			}
			outSeen[c.edge]++
		}
		if err := checkSpan(rec.label, g.nodeLabels); err != nil {
			return wrapf(methodCheckConsistency, ErrInconsistent, "node %d label: %v", n, err)
		}
	}
	for e := range g.edges {
		if outSeen[e] != 1 || inSeen[e] != 1 {
			return wrapf(methodCheckConsistency, ErrInconsistent, "edge %d listed %d times out, %d times in", e, outSeen[e], inSeen[e])
		}
		if err := checkSpan(g.edges[e].label, g.edgeLabels); err != nil {
			return wrapf(methodCheckConsistency, ErrInconsistent, "edge %d label: %v", e, err)
		}
	}

	return nil
}

func checkSpan(s span, arena []byte) error {
	if s.start < 0 || int(s.start)+int(s.length) > len(arena) {
		return ErrLabelOverflow
	}
	return nil
}
