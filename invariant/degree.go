// SPDX-License-Identifier: MIT
package invariant

import "github.com/katalvlaran/isograph/fastgraph"

// DegreeSequence returns Degree(n) for every node, in index order.
func DegreeSequence(g *fastgraph.Graph) []int {
	seq := make([]int, g.NodeCount())
	for n := range seq {
		seq[n] = g.Degree(n)
	}
	return seq
}

// MaxDegree returns the largest value in seq, 0 when seq is empty.
func MaxDegree(seq []int) int {
	best := 0
	for _, d := range seq {
		best = max(best, d)
	}
	return best
}

// DegreeHistogram returns buckets of length maxDegree+1 where buckets[d] is
// the number of entries of seq equal to d. Degrees above maxDegree are ignored.
func DegreeHistogram(seq []int, maxDegree int) []int {
	buckets := make([]int, maxDegree+1)
	for _, d := range seq {
		if d <= maxDegree {
			buckets[d]++
		}
	}
	return buckets
}
