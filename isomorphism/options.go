// SPDX-License-Identifier: MIT
package isomorphism

import "github.com/katalvlaran/isograph/searchstats"

// Option customizes an Engine.
type Option func(*config)

type config struct {
	stats *searchstats.Collector
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithStats records every test decided by the Engine into c.
// Panics if c is nil.
func WithStats(c *searchstats.Collector) Option {
	if c == nil {
		panic("isomorphism: WithStats(nil)")
	}
	return func(cfg *config) { cfg.stats = c }
}
