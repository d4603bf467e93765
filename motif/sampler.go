// SPDX-License-Identifier: MIT
package motif

import (
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/isograph/fastgraph"
)

// Sampler draws random connected node sets of a fixed size.
type Sampler struct {
	g   *fastgraph.Graph
	k   int
	rng *rand.Rand

	member   []bool
	frontier []int
	buf      []int
	seen     map[string]struct{}
}

// NewSampler returns a Sampler of k-node sets in g.
func NewSampler(g *fastgraph.Graph, k int, rng *rand.Rand) (*Sampler, error) {
	if k < 1 || k > g.NodeCount() {
		return nil, fmt.Errorf("%s: k=%d with %d nodes: %w", methodNewSampler, k, g.NodeCount(), ErrInvalidSize)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodNewSampler, ErrNeedRandSource)
	}
	return &Sampler{
		g:      g,
		k:      k,
		rng:    rng,
		member: make([]bool, g.NodeCount()),
		seen:   make(map[string]struct{}),
	}, nil
}

// Grow makes one attempt: start at a random node and add random frontier
// nodes until k are held. It reports false when the seed's component is
// smaller than k. The result is sorted.
func (s *Sampler) Grow() ([]int, bool) {
	nodes := make([]int, 0, s.k)
	defer func() {
		for _, n := range nodes {
			s.member[n] = false
		}
	}()

	add := func(n int) {
		s.member[n] = true
		nodes = append(nodes, n)
		s.buf = s.g.AppendConnectingNodes(s.buf, n)
		for _, m := range s.buf {
			if !s.member[m] {
				s.frontier = append(s.frontier, m)
			}
		}
	}

	s.frontier = s.frontier[:0]
	add(s.rng.Intn(s.g.NodeCount()))
	for len(nodes) < s.k {
		if len(s.frontier) == 0 {
			return nil, false
		}
		i := s.rng.Intn(len(s.frontier))
		n := s.frontier[i]
		last := len(s.frontier) - 1
		s.frontier[i] = s.frontier[last]
		s.frontier = s.frontier[:last]
		if s.member[n] {
			continue
		}
		add(n)
	}

	out := slices.Clone(nodes)
	slices.Sort(out)
	return out, true
}

// Sample collects up to samples distinct node sets, giving up after
// attempts calls to Grow. Sets already returned by an earlier call are not
// returned again.
func (s *Sampler) Sample(samples, attempts int) [][]int {
	var out [][]int
	for a := 0; a < attempts && len(out) < samples; a++ {
		nodes, ok := s.Grow()
		if !ok {
			continue
		}
		key := setKey(nodes)
		if _, dup := s.seen[key]; dup {
			continue
		}
		s.seen[key] = struct{}{}
		out = append(out, nodes)
	}
	return out
}

func setKey(nodes []int) string {
	var sb strings.Builder
	for i, n := range nodes {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(n))
	}
	return sb.String()
}
