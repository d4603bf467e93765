// SPDX-License-Identifier: MIT
package generator

import (
	"fmt"

	"github.com/katalvlaran/isograph/fastgraph"
)

const methodIsomorphicCopy = "IsomorphicCopy"

// IsomorphicCopy returns g with its nodes and edges renumbered by random
// permutations, named g.Name()+"-isomorphic". perm[old] is the new index of
// node old. Every attribute travels with its node or edge.
func IsomorphicCopy(g *fastgraph.Graph, opts ...Option) (*fastgraph.Graph, []int, error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, nil, fmt.Errorf("%s: %w", methodIsomorphicCopy, ErrNeedRandSource)
	}
	n, m := g.NodeCount(), g.EdgeCount()

	perm := cfg.rng.Perm(n)
	nodes := make([]fastgraph.NodeSpec, n)
	for old, idx := range perm {
		nodes[idx] = fastgraph.NodeSpec{
			Index:  idx,
			Label:  g.NodeLabel(old),
			Weight: g.NodeWeight(old),
			Type:   g.NodeType(old),
			Age:    g.NodeAge(old),
		}
	}

	edgePerm := cfg.rng.Perm(m)
	edges := make([]fastgraph.EdgeSpec, m)
	for old, idx := range edgePerm {
		edges[idx] = fastgraph.EdgeSpec{
			Index:  idx,
			Node1:  perm[g.EdgeNode1(old)],
			Node2:  perm[g.EdgeNode2(old)],
			Label:  g.EdgeLabel(old),
			Weight: g.EdgeWeight(old),
			Type:   g.EdgeType(old),
			Age:    g.EdgeAge(old),
		}
	}

	name := cfg.name
	if name == "" {
		name = g.Name() + "-isomorphic"
	}
	out, err := fastgraph.New(name, nodes, edges)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodIsomorphicCopy, err)
	}
	return out, perm, nil
}
