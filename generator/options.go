// SPDX-License-Identifier: MIT
// Package: isograph/generator
//
// options.go: functional options and their resolved configuration.
//
// Defaults:
//   - rng       = nil   (stochastic constructors refuse to run)
//   - simple    = false (self-loops and parallel edges allowed)
//   - connected = false
//   - name      = ""    (each constructor derives one)

package generator

import "math/rand"

// Option customizes a generator call.
type Option func(*config)

type config struct {
	rng       *rand.Rand
	simple    bool
	connected bool
	name      string
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed uses a fresh source seeded with seed.
func WithSeed(seed int64) Option {
	return func(cfg *config) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r. Panics if r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(cfg *config) { cfg.rng = r }
}

// WithSimple forbids self-loops and parallel edges (in either direction).
func WithSimple() Option {
	return func(cfg *config) { cfg.simple = true }
}

// WithConnected makes Random lay a random spanning tree before the other edges.
func WithConnected() Option {
	return func(cfg *config) { cfg.connected = true }
}

// WithName names the generated graph. Panics on an empty name.
func WithName(name string) Option {
	if name == "" {
		panic("generator: WithName(\"\")")
	}
	return func(cfg *config) { cfg.name = name }
}
