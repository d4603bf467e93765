// SPDX-License-Identifier: MIT
package isomorphism

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/isograph/fastgraph"
)

// Fingerprint returns a string equal for isomorphic reference graphs with the
// same relative age distribution:
//
//	<nodes>,<edges>[h0, h1, ...][s0, s1, ...][a0, a1, ...]
//
// h is the degree histogram, s the rounded spectrum and a the number of nodes
// at each age from the minimum to the maximum node age.
func (e *Engine) Fingerprint() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(e.ref.NodeCount()))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(e.ref.EdgeCount()))
	writeInts(&sb, e.bundle.Histogram)

	sb.WriteByte('[')
	for i, v := range e.bundle.Spectrum {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	sb.WriteByte(']')

	writeInts(&sb, AgeProfile(e.ref))
	return sb.String()
}

// AgeProfile returns the number of nodes at each age from MinimumNodeAge to
// MaximumNodeAge inclusive. An empty graph yields [0].
func AgeProfile(g *fastgraph.Graph) []int {
	lo, hi := int(g.MinimumNodeAge()), int(g.MaximumNodeAge())
	out := make([]int, hi-lo+1)
	for n := 0; n < g.NodeCount(); n++ {
		out[int(g.NodeAge(n))-lo]++
	}
	return out
}

func writeInts(sb *strings.Builder, vs []int) {
	sb.WriteByte('[')
	for i, v := range vs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(']')
}
