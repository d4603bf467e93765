// SPDX-License-Identifier: MIT
package subgraph

import "github.com/katalvlaran/isograph/searchstats"

// Option customizes a Finder.
type Option func(*config)

type config struct {
	nodes NodeEquivalence
	edges EdgeEquivalence
	limit int
	stats *searchstats.Collector
}

func newConfig(opts ...Option) config {
	cfg := config{nodes: AnyNode(), edges: AnyEdge()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithNodeEquivalence restricts which target nodes may match a pattern node.
// Panics if eq is nil.
func WithNodeEquivalence(eq NodeEquivalence) Option {
	if eq == nil {
		panic("subgraph: WithNodeEquivalence(nil)")
	}
	return func(cfg *config) { cfg.nodes = eq }
}

// WithEdgeEquivalence restricts which target edges may match a pattern edge.
// Panics if eq is nil.
func WithEdgeEquivalence(eq EdgeEquivalence) Option {
	if eq == nil {
		panic("subgraph: WithEdgeEquivalence(nil)")
	}
	return func(cfg *config) { cfg.edges = eq }
}

// WithLimit stops the search after n mappings. Zero means no limit.
// Panics if n is negative.
func WithLimit(n int) Option {
	if n < 0 {
		panic("subgraph: WithLimit(n < 0)")
	}
	return func(cfg *config) { cfg.limit = n }
}

// WithStats records each Search call into c. Panics if c is nil.
func WithStats(c *searchstats.Collector) Option {
	if c == nil {
		panic("subgraph: WithStats(nil)")
	}
	return func(cfg *config) { cfg.stats = c }
}
