// SPDX-License-Identifier: MIT
// Package: isograph/generator
//
// random.go: Random(n, m): uniform random endpoints, optionally simple and
// optionally connected.
//
// Contract:
//   - n ≥ 0, m ≥ 0, and n ≥ 1 whenever m > 0 (else ErrInvalidSize).
//   - WithSimple: m ≤ n(n-1)/2 (else fastgraph.ErrTooManyEdges).
//   - WithConnected: m ≥ n-1 (else ErrTooFewEdges).
//   - rng required (else ErrNeedRandSource).
//
// Implementation:
//   - Stage 1: node weights in node order.
//   - Stage 2 (connected): shuffle the nodes; node order[i] attaches to a
//     random earlier node order[j], j<i, with a random direction.
//   - Stage 3: remaining edges. Sparse simple requests and all multigraph
//     requests draw endpoint pairs and, for simple graphs, redraw on
//     self-loops or used pairs. Dense simple requests (more than half of all
//     pairs) shuffle the unused pairs and take a prefix instead.
//
// Determinism: fixed draw order; equal seeds give equal graphs.

package generator

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/isograph/fastgraph"
)

const (
	methodRandom = "Random"
	maxWeight    = 100
)

type pair struct{ a, b int }

func unordered(a, b int) pair {
	if a > b {
		a, b = b, a
	}
	return pair{a, b}
}

// Random returns a random graph with n nodes and m edges.
func Random(n, m int, opts ...Option) (*fastgraph.Graph, error) {
	cfg := newConfig(opts...)
	if n < 0 || m < 0 || (n == 0 && m > 0) {
		return nil, fmt.Errorf("%s: n=%d m=%d: %w", methodRandom, n, m, ErrInvalidSize)
	}
	if cfg.simple && m > fastgraph.MaxSimpleEdges(n) {
		return nil, fmt.Errorf("%s: n=%d m=%d: %w", methodRandom, n, m, fastgraph.ErrTooManyEdges)
	}
	if cfg.connected && n > 0 && m < n-1 {
		return nil, fmt.Errorf("%s: n=%d m=%d: %w", methodRandom, n, m, ErrTooFewEdges)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}
	rng := cfg.rng

	name := cfg.name
	if name == "" {
		name = "random-n-" + strconv.Itoa(n) + "-e-" + strconv.Itoa(m)
	}

	nodes := make([]fastgraph.NodeSpec, n)
	for i := range nodes {
		nodes[i] = fastgraph.NodeSpec{Index: i, Label: "n" + strconv.Itoa(i), Weight: rng.Intn(maxWeight)}
	}

	edges := make([]fastgraph.EdgeSpec, 0, m)
	used := make(map[pair]struct{})
	add := func(a, b int) {
		i := len(edges)
		edges = append(edges, fastgraph.EdgeSpec{
			Index:  i,
			Node1:  a,
			Node2:  b,
			Label:  "e" + strconv.Itoa(i),
			Weight: rng.Intn(maxWeight),
		})
		used[unordered(a, b)] = struct{}{}
	}

	if cfg.connected {
		order := rng.Perm(n)
		for i := 1; i < n; i++ {
			a, b := order[i], order[rng.Intn(i)]
			if rng.Intn(2) == 0 {
				a, b = b, a
			}
			add(a, b)
		}
	}

	switch {
	case cfg.simple && 2*m > fastgraph.MaxSimpleEdges(n):
		fillDense(rng, n, m, used, add)
	default:
		for len(edges) < m {
			a, b := rng.Intn(n), rng.Intn(n)
			if cfg.simple {
				if _, taken := used[unordered(a, b)]; a == b || taken {
					continue
				}
			}
			add(a, b)
		}
	}

	g, err := fastgraph.New(name, nodes, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, err)
	}
	return g, nil
}

// fillDense adds edges from a shuffled list of the unused unordered pairs
// until m edges exist.
func fillDense(rng *rand.Rand, n, m int, used map[pair]struct{}, add func(a, b int)) {
	free := make([]pair, 0, fastgraph.MaxSimpleEdges(n)-len(used))
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if _, taken := used[pair{a, b}]; !taken {
				free = append(free, pair{a, b})
			}
		}
	}
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	need := m - len(used)
	for _, p := range free[:need] {
		if rng.Intn(2) == 0 {
			add(p.a, p.b)
		} else {
			add(p.b, p.a)
		}
	}
}
