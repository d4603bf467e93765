// SPDX-License-Identifier: MIT
// Package: isograph/motif
//
// options.go: functional options shared by Find and NewClusterer.
//
// Defaults:
//   - samples  = 1000
//   - attempts = 10 × samples
//   - rng      = nil (Find refuses to sample)
//   - workers  = GOMAXPROCS
//   - stats    = nil (no recording)
//   - logger   = discard

package motif

import (
	"io"
	"log/slog"
	"math/rand"
	"runtime"

	"github.com/katalvlaran/isograph/searchstats"
)

// DefaultSamples is the number of distinct subgraphs Find aims for.
const DefaultSamples = 1000

const attemptsPerSample = 10

// Option customizes Find and Clusterer.
type Option func(*config)

type config struct {
	samples  int
	attempts int
	rng      *rand.Rand
	workers  int
	stats    *searchstats.Collector
	logger   *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		samples: DefaultSamples,
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.attempts == 0 {
		cfg.attempts = cfg.samples * attemptsPerSample
	}
	return cfg
}

// WithSamples sets how many distinct subgraphs to collect. Panics if n < 1.
func WithSamples(n int) Option {
	if n < 1 {
		panic("motif: WithSamples(n < 1)")
	}
	return func(cfg *config) { cfg.samples = n }
}

// WithAttempts caps the number of growth attempts, successful or not.
// Panics if n < 1.
func WithAttempts(n int) Option {
	if n < 1 {
		panic("motif: WithAttempts(n < 1)")
	}
	return func(cfg *config) { cfg.attempts = n }
}

// WithSeed uses a fresh source seeded with seed.
func WithSeed(seed int64) Option {
	return func(cfg *config) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r. Panics if r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("motif: WithRand(nil)")
	}
	return func(cfg *config) { cfg.rng = r }
}

// WithWorkers bounds the goroutines building engines. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("motif: WithWorkers(n < 1)")
	}
	return func(cfg *config) { cfg.workers = n }
}

// WithStats records every isomorphism test into c. Panics if c is nil.
func WithStats(c *searchstats.Collector) Option {
	if c == nil {
		panic("motif: WithStats(nil)")
	}
	return func(cfg *config) { cfg.stats = c }
}

// WithLogger sets the logger for progress messages. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("motif: WithLogger(nil)")
	}
	return func(cfg *config) { cfg.logger = l }
}
