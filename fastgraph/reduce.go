// SPDX-License-Identifier: MIT
// Package: isograph/fastgraph
//
// reduce.go: random reduction of a graph to a target size.
//
// Reduce removes nodes in three passes and then edges:
//  1. neighborhoods of depth treeDepth around random nodes, skipped when a
//     neighborhood is empty or would overshoot the node target (at most
//     treeChances skips);
//  2. single random nodes until the node target is met;
//  3. single random edges until the edge target is met.
//
// Removing a node removes every edge incident to it, so the result has exactly
// targetNodes nodes and at most targetEdges edges.

package fastgraph

import (
	"math/rand"
	"slices"
)

const (
	treeDepth   = 3
	treeChances = 10
)

// reducer tracks the items chosen for removal.
type reducer struct {
	g         *Graph
	dropNode  []bool
	dropEdge  []bool
	nodes     []int
	edges     []int
	level     []int
	next      []int
	tree      []int
	inTree    []int
	treeStamp int
}

func newReducer(g *Graph) *reducer {
	return &reducer{
		g:        g,
		dropNode: make([]bool, len(g.nodes)),
		dropEdge: make([]bool, len(g.edges)),
		inTree:   make([]int, len(g.nodes)),
	}
}

func (r *reducer) removeNode(n int) {
	if r.dropNode[n] {
		return
	}
	r.dropNode[n] = true
	r.nodes = append(r.nodes, n)
	for _, c := range r.g.all(n) {
		r.removeEdge(int(c.edge))
	}
}

func (r *reducer) removeEdge(e int) {
	if r.dropEdge[e] {
		return
	}
	r.dropEdge[e] = true
	r.edges = append(r.edges, e)
}

// neighborhood collects the not yet removed nodes within depth hops of start.
func (r *reducer) neighborhood(start, depth int) []int {
	r.treeStamp++
	r.tree = r.tree[:0]
	r.level = append(r.level[:0], start)
	r.visit(start)
	for ; depth > 0 && len(r.level) > 0; depth-- {
		r.next = r.next[:0]
		for _, n := range r.level {
			for _, c := range r.g.all(n) {
				if r.inTree[c.node] != r.treeStamp {
					r.visit(int(c.node))
					r.next = append(r.next, int(c.node))
				}
			}
		}
		r.level, r.next = r.next, r.level
	}
	return r.tree
}

func (r *reducer) visit(n int) {
	r.inTree[n] = r.treeStamp
	if !r.dropNode[n] {
		r.tree = append(r.tree, n)
	}
}

// Reduce returns a copy of g shrunk at random to targetNodes nodes and at
// most targetEdges edges, together with the removed node and edge indices of
// g in ascending order. The same rng state gives the same result.
//
// Errors: ErrNeedRandSource for a nil rng, ErrTargetSize when a target is
// negative or exceeds the current count.
func (g *Graph) Reduce(targetNodes, targetEdges int, rng *rand.Rand) (out *Graph, removedNodes, removedEdges []int, err error) {
	if rng == nil {
		return nil, nil, nil, wrapf(methodReduce, ErrNeedRandSource, "nil rng")
	}
	n, m := len(g.nodes), len(g.edges)
	if targetNodes < 0 || targetNodes > n {
		return nil, nil, nil, wrapf(methodReduce, ErrTargetSize, "%d nodes requested from %d", targetNodes, n)
	}
	if targetEdges < 0 || targetEdges > m {
		return nil, nil, nil, wrapf(methodReduce, ErrTargetSize, "%d edges requested from %d", targetEdges, m)
	}

	r := newReducer(g)
	nodeCut, edgeCut := n-targetNodes, m-targetEdges
	for chances := treeChances; len(r.nodes) < nodeCut && chances > 0; {
		tree := r.neighborhood(rng.Intn(n), treeDepth)
		if len(tree) == 0 || len(tree) > nodeCut-len(r.nodes) {
			chances--
			continue
		}
		for _, v := range tree {
			r.removeNode(v)
		}
	}
	for len(r.nodes) < nodeCut {
		r.removeNode(rng.Intn(n))
	}
	for len(r.edges) < edgeCut {
		r.removeEdge(rng.Intn(m))
	}

	slices.Sort(r.nodes)
	slices.Sort(r.edges)
	out, err = g.DeleteItems(r.nodes, r.edges)
	if err != nil {
		return nil, nil, nil, wrapf(methodReduce, err, "delete")
	}
	out.name = g.name + suffixReduced

	return out, r.nodes, r.edges, nil
}
