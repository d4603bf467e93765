// SPDX-License-Identifier: MIT
// Package: isograph/generator
//
// rewire.go: degree-preserving randomisation by double-edge swaps.
//
// One swap picks two edges a→b and c→d and turns them into a→d and c→b.
// Every node keeps its in-degree and out-degree. With WithSimple a swap is
// refused when it would create a self-loop or reuse a connected pair.
// The accumulated endpoint changes are applied once via fastgraph.Rewire.

package generator

import (
	"fmt"

	"github.com/katalvlaran/isograph/fastgraph"
)

const (
	methodRandomRewired = "RandomRewired"
	attemptsPerSwap     = 100
)

// RandomRewired performs up to swaps successful double-edge swaps on a copy
// of g. It stops early when swaps*100 attempts have been spent.
//
// Errors: ErrNeedRandSource; ErrRewireFailed when swaps > 0 and no swap
// succeeded.
func RandomRewired(g *fastgraph.Graph, swaps int, opts ...Option) (*fastgraph.Graph, error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomRewired, ErrNeedRandSource)
	}
	m := g.EdgeCount()
	src := make([]int, m)
	dst := make([]int, m)
	pairs := make(map[pair]int, m)
	for e := 0; e < m; e++ {
		src[e], dst[e] = g.EdgeNode1(e), g.EdgeNode2(e)
		pairs[unordered(src[e], dst[e])]++
	}

	done := 0
	for attempt := 0; done < swaps && m >= 2 && attempt < swaps*attemptsPerSwap; attempt++ {
		e1, e2 := cfg.rng.Intn(m), cfg.rng.Intn(m)
		a, b, c, d := src[e1], dst[e1], src[e2], dst[e2]
		if e1 == e2 || a == c || b == d {
			continue
		}
		if cfg.simple {
			if a == d || c == b {
				continue
			}
			if pairs[unordered(a, d)] > 0 || pairs[unordered(c, b)] > 0 {
				continue
			}
		}
		pairs[unordered(a, b)]--
		pairs[unordered(c, d)]--
		pairs[unordered(a, d)]++
		pairs[unordered(c, b)]++
		dst[e1], dst[e2] = d, b
		done++
	}
	if swaps > 0 && done == 0 {
		return nil, fmt.Errorf("%s: no swap possible on %q: %w", methodRandomRewired, g.Name(), ErrRewireFailed)
	}

	var rewires []fastgraph.Rewire
	for e := 0; e < m; e++ {
		if dst[e] != g.EdgeNode2(e) {
			rewires = append(rewires, fastgraph.Rewire{Edge: e, NewNode1: src[e], NewNode2: dst[e]})
		}
	}
	out, err := g.Rewire(rewires)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomRewired, err)
	}
	if cfg.name != "" {
		out.SetName(cfg.name)
	}
	return out, nil
}
