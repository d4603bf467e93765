// SPDX-License-Identifier: MIT
package invariant

import "github.com/katalvlaran/isograph/fastgraph"

// Counts is the symmetric N×N matrix of edge multiplicities between node
// pairs, direction ignored. A self-loop adds 1 to its diagonal entry.
type Counts struct {
	n    int
	data []int
}

// AdjacencyCounts builds the Counts matrix of g in O(N² + M).
func AdjacencyCounts(g *fastgraph.Graph) *Counts {
	n := g.NodeCount()
	c := &Counts{n: n, data: make([]int, n*n)}
	for e := 0; e < g.EdgeCount(); e++ {
		a, b := g.EdgeNode1(e), g.EdgeNode2(e)
		if a == b {
			c.data[a*n+a]++
			continue
		}
		c.data[a*n+b]++
		c.data[b*n+a]++
	}
	return c
}

// Size returns N.
func (c *Counts) Size() int { return c.n }

// At returns the number of edges between i and j.
func (c *Counts) At(i, j int) int { return c.data[i*c.n+j] }

// SelfLoops returns the number of self-loops on node i.
func (c *Counts) SelfLoops(i int) int { return c.data[i*c.n+i] }

// floats returns a dense row-major float64 copy.
func (c *Counts) floats() []float64 {
	out := make([]float64, len(c.data))
	for i, v := range c.data {
		out[i] = float64(v)
	}
	return out
}
