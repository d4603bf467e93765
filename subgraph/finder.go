// SPDX-License-Identifier: MIT
// Package: isograph/subgraph
//
// finder.go: candidate filtering, fail-first ordering and the backtracking loop.
//
// Level i of the search decides pattern node order[i]. cursor[i] indexes the
// candidate list of that node; patternToTarget / targetToPattern hold the
// current partial mapping (-1 = open). A complete mapping is recorded and
// then treated as a failure of the last level, which drives the search on to
// the next embedding.

package subgraph

import (
	"slices"
	"time"

	"github.com/katalvlaran/isograph/fastgraph"
	"github.com/katalvlaran/isograph/invariant"
	"github.com/katalvlaran/isograph/searchstats"
)

const unmatched = -1

// Mapping is one embedding of the pattern in the target.
// Nodes[p] is the target node of pattern node p; Edges[e] is the first target
// edge joining the images of pattern edge e's endpoints.
type Mapping struct {
	Nodes []int
	Edges []int
}

// Subgraph materialises the embedding as a new graph cut from target.
// Target edges used by several pattern edges appear once.
func (m Mapping) Subgraph(target *fastgraph.Graph) (*fastgraph.Graph, error) {
	edges := slices.Clone(m.Edges)
	slices.Sort(edges)
	return target.Subgraph(m.Nodes, slices.Compact(edges))
}

// Finder searches one target graph for one pattern graph.
type Finder struct {
	target  *fastgraph.Graph
	pattern *fastgraph.Graph
	cfg     config

	targetNeighbors []invariant.NeighborSet
	candidates      [][]int
	order           []int
	cursor          []int
	patternToTarget []int
	targetToPattern []int
	visited         []int
	stamp           int
	buf             []int

	steps      int64
	backtracks int64
	mappings   []Mapping
}

// New prepares a Finder. The graphs are not copied and must not change
// while the Finder is in use.
func New(target, pattern *fastgraph.Graph, opts ...Option) *Finder {
	return &Finder{target: target, pattern: pattern, cfg: newConfig(opts...)}
}

// FoundMappings returns the mappings recorded by the last Search, in
// discovery order.
func (f *Finder) FoundMappings() []Mapping { return f.mappings }

// Search reports whether the pattern occurs in the target and records every
// embedding (up to the configured limit). An empty pattern is always found
// and yields no mappings.
func (f *Finder) Search() bool {
	start := time.Now()
	outcome := f.search()
	f.cfg.stats.Record(outcome, time.Since(start))
	f.cfg.stats.AddMappings(int64(len(f.mappings)))
	return outcome.Positive()
}

func (f *Finder) search() searchstats.Outcome {
	f.mappings = nil
	f.steps, f.backtracks = 0, 0
	if !f.buildCandidates() {
		return searchstats.NoCandidate
	}
	np := f.pattern.NodeCount()
	if np == 0 {
		return searchstats.Empty
	}
	f.prepare()

	searchStart := time.Now()
	f.run()
	f.cfg.stats.AddSearch(f.steps, f.backtracks, time.Since(searchStart))
	if len(f.mappings) == 0 {
		return searchstats.Exhausted
	}
	return searchstats.Matched
}

// buildCandidates lists, per pattern node, target nodes of at least equal
// degree accepted by the node equivalence.
func (f *Finder) buildCandidates() bool {
	np, nt := f.pattern.NodeCount(), f.target.NodeCount()
	f.candidates = make([][]int, np)
	for p := 0; p < np; p++ {
		need := f.pattern.Degree(p)
		var list []int
		for t := 0; t < nt; t++ {
			if f.target.Degree(t) < need {
				continue
			}
			if !f.cfg.nodes.EquivalentNodes(t, p) {
				continue
			}
			list = append(list, t)
		}
		if len(list) == 0 {
			return false
		}
		f.candidates[p] = list
	}
	return true
}

func (f *Finder) prepare() {
	np, nt := f.pattern.NodeCount(), f.target.NodeCount()

	f.order = make([]int, np)
	for i := range f.order {
		f.order[i] = i
	}
	slices.SortStableFunc(f.order, func(a, b int) int {
		return len(f.candidates[a]) - len(f.candidates[b])
	})

	if f.targetNeighbors == nil {
		f.targetNeighbors = invariant.NeighborSets(f.target)
	}
	f.cursor = make([]int, np)
	f.patternToTarget = fill(make([]int, np), unmatched)
	f.targetToPattern = fill(make([]int, nt), unmatched)
	f.visited = make([]int, np)
	f.stamp = 0
}

func fill(s []int, v int) []int {
	for i := range s {
		s[i] = v
	}
	return s
}

func (f *Finder) limitReached() bool {
	return f.cfg.limit > 0 && len(f.mappings) >= f.cfg.limit
}

func (f *Finder) run() {
	last := len(f.order) - 1
	pos := 0
	f.cursor[0] = 0
	for pos >= 0 {
		p := f.order[pos]
		if f.cursor[pos] == len(f.candidates[p]) {
			f.backtracks++
			pos--
			if pos >= 0 {
				f.unassign(f.order[pos])
				f.cursor[pos]++
			}
			continue
		}

		t := f.candidates[p][f.cursor[pos]]
		f.steps++
		if !f.consistent(t, p) {
			f.cursor[pos]++
			continue
		}
		f.assign(p, t)
		if pos < last {
			pos++
			f.cursor[pos] = 0
			continue
		}

		f.record()
		if f.limitReached() {
			return
		}
		f.unassign(p)
		f.cursor[pos]++
	}
}

func (f *Finder) assign(p, t int) {
	f.patternToTarget[p] = t
	f.targetToPattern[t] = p
}

func (f *Finder) unassign(p int) {
	if t := f.patternToTarget[p]; t != unmatched {
		f.targetToPattern[t] = unmatched
	}
	f.patternToTarget[p] = unmatched
}

// consistent checks target node t as the image of pattern node p: t must be
// free, a self-loop on p needs an equivalent self-loop on t, and every
// distinct matched neighbor of p must map to a neighbor of t joined by an
// equivalent edge.
func (f *Finder) consistent(t, p int) bool {
	if f.targetToPattern[t] != unmatched {
		return false
	}
	f.stamp++
	near := f.targetNeighbors[t]
	f.buf = f.pattern.AppendConnectingEdges(f.buf, p)
	for _, pe := range f.buf {
		pn := f.pattern.OppositeEnd(pe, p)
		if pn == p {
			te, ok := f.target.FirstEdgeBetween(t, t)
			if !ok || !f.cfg.edges.EquivalentEdges(te, pe) {
				return false
			}
			continue
		}
		if f.visited[pn] == f.stamp {
			continue
		}
		f.visited[pn] = f.stamp

		tm := f.patternToTarget[pn]
		if tm == unmatched {
			continue
		}
		if !near.Contains(tm) {
			return false
		}
		te, _ := f.target.FirstEdgeBetween(t, tm)
		if !f.cfg.edges.EquivalentEdges(te, pe) {
			return false
		}
	}
	return true
}

// record stores the current complete mapping. A pattern edge whose target
// image is missing or not equivalent makes the mapping invalid and it is
// skipped.
func (f *Finder) record() {
	ne := f.pattern.EdgeCount()
	edges := make([]int, ne)
	for pe := 0; pe < ne; pe++ {
		t1 := f.patternToTarget[f.pattern.EdgeNode1(pe)]
		t2 := f.patternToTarget[f.pattern.EdgeNode2(pe)]
		te, ok := f.target.FirstEdgeBetween(t1, t2)
		if !ok || !f.cfg.edges.EquivalentEdges(te, pe) {
			return
		}
		edges[pe] = te
	}
	f.mappings = append(f.mappings, Mapping{
		Nodes: slices.Clone(f.patternToTarget),
		Edges: edges,
	})
}
