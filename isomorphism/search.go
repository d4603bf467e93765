// SPDX-License-Identifier: MIT
// Package: isograph/isomorphism
//
// search.go: iterative backtracking over decision levels.
//
// Level i decides the match of reference node i. A level holds the assigned
// node of the other graph (-1 while open) and a cursor into the candidate
// list of node i. The loop either advances the cursor of the current level,
// descends after a consistent assignment, or pops back to the previous level
// when the cursor runs off the end. The search state is owned by the Engine
// and reused across calls. The context is polled every pollInterval steps.

package isomorphism

import (
	"context"

	"github.com/katalvlaran/isograph/invariant"
)

const (
	unmatched    = -1
	pollInterval = 1024
)

type level struct {
	value  int
	cursor int
}

type search struct {
	b1, b2     *invariant.Bundle
	candidates [][]int
	levels     []level
	matches1   []int // reference node → other node
	matches2   []int // other node → reference node

	steps      int64
	backtracks int64
}

func (s *search) reset(b1, b2 *invariant.Bundle) {
	n := len(b1.Degrees)
	s.b1, s.b2 = b1, b2
	if cap(s.levels) < n {
		s.levels = make([]level, n)
		s.matches1 = make([]int, n)
		s.matches2 = make([]int, n)
		s.candidates = make([][]int, n)
	}
	s.levels = s.levels[:n]
	s.matches1 = s.matches1[:n]
	s.matches2 = s.matches2[:n]
	s.candidates = s.candidates[:n]
	for i := 0; i < n; i++ {
		s.levels[i] = level{value: unmatched}
		s.matches1[i] = unmatched
		s.matches2[i] = unmatched
	}
	s.steps, s.backtracks = 0, 0
}

// buildCandidates fills, for every reference node, the nodes of the other
// graph with the same self-loop count and degree. It returns false as soon
// as one list is empty.
func (s *search) buildCandidates() bool {
	n := len(s.levels)
	for n1 := 0; n1 < n; n1++ {
		list := s.candidates[n1][:0]
		for n2 := 0; n2 < n; n2++ {
			if s.b1.Adjacency.SelfLoops(n1) != s.b2.Adjacency.SelfLoops(n2) {
				continue
			}
			if s.b1.Degrees[n1] != s.b2.Degrees[n2] {
				continue
			}
			list = append(list, n2)
		}
		s.candidates[n1] = list
		if len(list) == 0 {
			return false
		}
	}
	return true
}

// run searches for a complete mapping. On success matches1 holds it. It
// returns ctx.Err() once ctx is done.
func (s *search) run(ctx context.Context) (bool, error) {
	n := len(s.levels)
	if n == 0 {
		return true, nil
	}

	pos := 0
	for {
		lv := &s.levels[pos]
		if lv.cursor == len(s.candidates[pos]) {
			lv.cursor = 0
			s.backtracks++
			pos--
			if pos < 0 {
				return false, nil
			}
			s.unassign(pos)
			s.levels[pos].cursor++
			continue
		}

		if s.steps%pollInterval == 0 {
			if err := ctx.Err(); err != nil {
				return false, err
			}
		}
		candidate := s.candidates[pos][lv.cursor]
		s.steps++
		if !s.consistent(pos, candidate) {
			lv.cursor++
			continue
		}
		s.assign(pos, candidate)
		pos++
		if pos == n {
			return true, nil
		}
		s.levels[pos].cursor = 0
	}
}

func (s *search) assign(n1, n2 int) {
	s.levels[n1].value = n2
	s.matches1[n1] = n2
	s.matches2[n2] = n1
}

func (s *search) unassign(n1 int) {
	if v := s.levels[n1].value; v != unmatched {
		s.matches2[v] = unmatched
	}
	s.levels[n1].value = unmatched
	s.matches1[n1] = unmatched
}

// consistent reports whether mapping n1 → n2 agrees with every match made so
// far: matched neighbors of n1 map onto neighbors of n2 and vice versa.
func (s *search) consistent(n1, n2 int) bool {
	if s.matches1[n1] != unmatched || s.matches2[n2] != unmatched {
		return false
	}
	near1, near2 := s.b1.Neighbors[n1], s.b2.Neighbors[n2]

	matched1 := 0
	for _, v := range near1.Nodes() {
		m := s.matches1[v]
		if m == unmatched {
			continue
		}
		if !near2.Contains(m) {
			return false
		}
		matched1++
	}

	matched2 := 0
	for _, v := range near2.Nodes() {
		m := s.matches2[v]
		if m == unmatched {
			continue
		}
		if !near1.Contains(m) {
			return false
		}
		matched2++
	}

	return matched1 == matched2
}
