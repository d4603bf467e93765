// SPDX-License-Identifier: MIT
package invariant

import (
	"slices"

	"github.com/katalvlaran/isograph/fastgraph"
)

// NeighborSet is the deduplicated set of nodes adjacent to one node, self
// excluded. Membership is O(1); Nodes lists members in ascending order.
type NeighborSet struct {
	nodes   []int
	members map[int]struct{}
}

// Contains reports whether n is a neighbor.
func (s NeighborSet) Contains(n int) bool {
	_, ok := s.members[n]
	return ok
}

// Nodes returns the members in ascending order. The slice must not be modified.
func (s NeighborSet) Nodes() []int { return s.nodes }

// Len returns the number of distinct neighbors.
func (s NeighborSet) Len() int { return len(s.nodes) }

// NeighborSets returns one NeighborSet per node of g.
func NeighborSets(g *fastgraph.Graph) []NeighborSet {
	out := make([]NeighborSet, g.NodeCount())
	var buf []int
	for n := range out {
		buf = g.AppendConnectingNodes(buf, n)
		members := make(map[int]struct{}, len(buf))
		nodes := make([]int, 0, len(buf))
		for _, v := range buf {
			if v == n {
				continue
			}
			if _, dup := members[v]; dup {
				continue
			}
			members[v] = struct{}{}
			nodes = append(nodes, v)
		}
		slices.Sort(nodes)
		out[n] = NeighborSet{nodes: nodes, members: members}
	}
	return out
}
