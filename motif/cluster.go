// SPDX-License-Identifier: MIT
package motif

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/isograph/fastgraph"
	"github.com/katalvlaran/isograph/isomorphism"
)

// Class is one isomorphism class: mutually isomorphic subgraphs sharing a
// fingerprint, in insertion order.
type Class struct {
	Fingerprint string
	Members     []*fastgraph.Graph
}

type bucket struct {
	engine  *isomorphism.Engine
	members []*fastgraph.Graph
}

// Clusterer groups graphs into isomorphism classes. Not safe for concurrent use.
type Clusterer struct {
	cfg     config
	buckets *redblacktree.Tree // fingerprint -> []*bucket
	classes int
	size    int
}

// NewClusterer returns an empty Clusterer. Only WithStats and WithLogger
// affect it.
func NewClusterer(opts ...Option) *Clusterer {
	return newClusterer(newConfig(opts...))
}

func newClusterer(cfg config) *Clusterer {
	return &Clusterer{cfg: cfg, buckets: redblacktree.NewWithStringComparator()}
}

func (c *Clusterer) engineOptions() []isomorphism.Option {
	if c.cfg.stats == nil {
		return nil
	}
	return []isomorphism.Option{isomorphism.WithStats(c.cfg.stats)}
}

// Add places g in its class, opening a new class if none matches.
// Disconnected graphs are rejected with fastgraph.ErrNotConnected.
func (c *Clusterer) Add(g *fastgraph.Graph) error {
	e, err := isomorphism.New(g, c.engineOptions()...)
	if err != nil {
		return fmt.Errorf("%s: %q: %w", methodAdd, g.Name(), err)
	}
	return c.add(context.Background(), e)
}

func (c *Clusterer) add(ctx context.Context, e *isomorphism.Engine) error {
	fp := e.Fingerprint()
	var list []*bucket
	if v, found := c.buckets.Get(fp); found {
		list = v.([]*bucket)
	}

	g := e.Reference()
	for _, b := range list {
		ok, err := b.engine.IsomorphicContext(ctx, g)
		if err != nil {
			return fmt.Errorf("%s: %q: %w", methodAdd, g.Name(), err)
		}
		if ok {
			b.members = append(b.members, g)
			c.size++
			return nil
		}
	}

	c.buckets.Put(fp, append(list, &bucket{engine: e, members: []*fastgraph.Graph{g}}))
	c.classes++
	c.size++
	c.cfg.logger.Debug("new motif class", "fingerprint", fp, "classes", c.classes)
	return nil
}

// Len returns the number of classes.
func (c *Clusterer) Len() int { return c.classes }

// Size returns the number of graphs added.
func (c *Clusterer) Size() int { return c.size }

// Classes returns the classes ordered by fingerprint, then by creation.
func (c *Clusterer) Classes() []Class {
	out := make([]Class, 0, c.classes)
	it := c.buckets.Iterator()
	for it.Next() {
		fp := it.Key().(string)
		for _, b := range it.Value().([]*bucket) {
			out = append(out, Class{Fingerprint: fp, Members: b.members})
		}
	}
	return out
}
