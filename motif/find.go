// SPDX-License-Identifier: MIT
package motif

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/isograph/fastgraph"
	"github.com/katalvlaran/isograph/isomorphism"
)

var tracer = otel.Tracer("isograph.motif")

// Result is the outcome of Find.
type Result struct {
	K       int
	Sampled int
	Classes []Class
}

// Find samples distinct connected k-node induced subgraphs of g and
// clusters them into isomorphism classes. WithSeed or WithRand is required.
func Find(ctx context.Context, g *fastgraph.Graph, k int, opts ...Option) (*Result, error) {
	ctx, span := tracer.Start(ctx, "motif.Find",
		trace.WithAttributes(
			attribute.String("motif.graph", g.Name()),
			attribute.Int("motif.k", k),
		),
	)
	defer span.End()

	res, err := find(ctx, g, k, newConfig(opts...))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("motif.sampled", res.Sampled),
		attribute.Int("motif.classes", len(res.Classes)),
	)
	return res, nil
}

func find(ctx context.Context, g *fastgraph.Graph, k int, cfg config) (*Result, error) {
	start := time.Now()
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodFind, ErrNeedRandSource)
	}
	s, err := NewSampler(g, k, cfg.rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFind, err)
	}
	sets := s.Sample(cfg.samples, cfg.attempts)
	cfg.logger.Info("motif sampling done",
		"graph", g.Name(), "k", k, "sampled", len(sets), "wanted", cfg.samples)

	c := newClusterer(cfg)
	engines, err := buildEngines(ctx, g, sets, cfg.workers, c.engineOptions())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFind, err)
	}

	for _, e := range engines {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", methodFind, err)
		}
		if err := c.add(ctx, e); err != nil {
			return nil, fmt.Errorf("%s: %w", methodFind, err)
		}
	}

	cfg.logger.Info("motif clustering done",
		"graph", g.Name(), "k", k, "classes", c.Len(), "elapsed", time.Since(start))
	return &Result{K: k, Sampled: len(sets), Classes: c.Classes()}, nil
}

// buildEngines cuts each node set out of g and prepares an Engine for it,
// using at most workers goroutines. Order follows sets.
func buildEngines(ctx context.Context, g *fastgraph.Graph, sets [][]int, workers int, opts []isomorphism.Option) ([]*isomorphism.Engine, error) {
	engines := make([]*isomorphism.Engine, len(sets))
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)
	for i, nodes := range sets {
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sub, err := g.InducedSubgraph(nodes)
			if err != nil {
				return err
			}
			sub.SetName(fmt.Sprintf("%s-motif-%d", g.Name(), i))
			e, err := isomorphism.New(sub, opts...)
			if err != nil {
				return err
			}
			engines[i] = e
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return engines, nil
}
