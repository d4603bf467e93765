// SPDX-License-Identifier: MIT
package subgraph

import "github.com/katalvlaran/isograph/fastgraph"

// NodeEquivalence decides whether a target node may stand for a pattern node.
type NodeEquivalence interface {
	EquivalentNodes(targetNode, patternNode int) bool
}

// EdgeEquivalence decides whether a target edge may stand for a pattern edge.
type EdgeEquivalence interface {
	EquivalentEdges(targetEdge, patternEdge int) bool
}

// NodeFunc adapts a function to NodeEquivalence.
type NodeFunc func(targetNode, patternNode int) bool

// EquivalentNodes calls f.
func (f NodeFunc) EquivalentNodes(targetNode, patternNode int) bool {
	return f(targetNode, patternNode)
}

// EdgeFunc adapts a function to EdgeEquivalence.
type EdgeFunc func(targetEdge, patternEdge int) bool

// EquivalentEdges calls f.
func (f EdgeFunc) EquivalentEdges(targetEdge, patternEdge int) bool {
	return f(targetEdge, patternEdge)
}

// AnyNode accepts every pair of nodes.
func AnyNode() NodeEquivalence {
	return NodeFunc(func(int, int) bool { return true })
}

// AnyEdge accepts every pair of edges.
func AnyEdge() EdgeEquivalence {
	return EdgeFunc(func(int, int) bool { return true })
}

// NodeLabels accepts nodes with equal labels.
func NodeLabels(target, pattern *fastgraph.Graph) NodeEquivalence {
	return NodeFunc(func(t, p int) bool { return target.NodeLabel(t) == pattern.NodeLabel(p) })
}

// EdgeLabels accepts edges with equal labels.
func EdgeLabels(target, pattern *fastgraph.Graph) EdgeEquivalence {
	return EdgeFunc(func(t, p int) bool { return target.EdgeLabel(t) == pattern.EdgeLabel(p) })
}

// NodeTypes accepts nodes with equal type tags.
func NodeTypes(target, pattern *fastgraph.Graph) NodeEquivalence {
	return NodeFunc(func(t, p int) bool { return target.NodeType(t) == pattern.NodeType(p) })
}

// EdgeTypes accepts edges with equal type tags.
func EdgeTypes(target, pattern *fastgraph.Graph) EdgeEquivalence {
	return EdgeFunc(func(t, p int) bool { return target.EdgeType(t) == pattern.EdgeType(p) })
}
