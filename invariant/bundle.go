// SPDX-License-Identifier: MIT
package invariant

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/isograph/fastgraph"
)

// Bundle holds every invariant of one graph. It is computed once and then
// only read.
type Bundle struct {
	Degrees   []int
	MaxDegree int
	Histogram []int
	Neighbors []NeighborSet
	Adjacency *Counts
	Spectrum  []float64
}

// Compute builds the Bundle of g.
//
// Complexity: O(N³) for the spectrum, O(N + M) for the rest.
func Compute(g *fastgraph.Graph) (*Bundle, error) {
	b := &Bundle{Degrees: DegreeSequence(g)}
	b.MaxDegree = MaxDegree(b.Degrees)
	b.Histogram = DegreeHistogram(b.Degrees, b.MaxDegree)
	b.Neighbors = NeighborSets(g)
	b.Adjacency = AdjacencyCounts(g)

	spectrum, err := SpectrumOf(b.Adjacency)
	if err != nil {
		return nil, fmt.Errorf("Compute: %q: %w", g.Name(), err)
	}
	b.Spectrum = spectrum

	return b, nil
}

// SameHistogram reports whether two bundles have identical degree histograms.
func (b *Bundle) SameHistogram(o *Bundle) bool {
	return slices.Equal(b.Histogram, o.Histogram)
}

// SameSpectrum reports whether two bundles have identical rounded spectra.
func (b *Bundle) SameSpectrum(o *Bundle) bool {
	return slices.Equal(b.Spectrum, o.Spectrum)
}
