// SPDX-License-Identifier: MIT
// Package: isograph/invariant
//
// spectrum.go: eigenvalues of the symmetric adjacency-count matrix.
//
// Implementation:
//   - Stage 1: copy Counts into a row-major float64 slice.
//   - Stage 2: cyclic Jacobi sweeps; every (p,q), p<q, with |A[p,q]| above the
//     rotation floor is annihilated by a plane rotation.
//   - Stage 3: stop when the off-diagonal sum of squares drops under
//     jacobiTolerance, or fail with ErrNoConvergence after jacobiMaxSweeps.
//   - Stage 4: read the diagonal, round to SpectrumPrecision places, sort.
//
// Complexity: O(sweeps · N³) time, O(N²) space. For 0/1-ish integer matrices
// convergence takes well under 20 sweeps.

package invariant

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/isograph/fastgraph"
)

// SpectrumPrecision is the number of decimal places spectrum values keep.
const SpectrumPrecision = 6

const (
	jacobiTolerance = 1e-22
	jacobiMaxSweeps = 100
	rotationFloor   = 1e-300
)

// ErrNoConvergence is returned when Jacobi sweeps fail to diagonalise the matrix.
var ErrNoConvergence = errors.New("invariant: eigenvalue iteration did not converge")

var roundScale = math.Pow10(SpectrumPrecision)

// Round rounds v to SpectrumPrecision decimal places and folds -0 into 0.
func Round(v float64) float64 {
	r := math.Round(v*roundScale) / roundScale
	if r == 0 {
		return 0
	}
	return r
}

// Spectrum returns the rounded, ascending eigenvalues of AdjacencyCounts(g).
func Spectrum(g *fastgraph.Graph) ([]float64, error) {
	return SpectrumOf(AdjacencyCounts(g))
}

// SpectrumOf returns the rounded, ascending eigenvalues of c.
func SpectrumOf(c *Counts) ([]float64, error) {
	n := c.Size()
	a := c.floats()
	if err := jacobi(a, n); err != nil {
		return nil, fmt.Errorf("Spectrum: %d×%d: %w", n, n, err)
	}

	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = Round(a[i*n+i])
	}
	slices.Sort(values)

	return values, nil
}

// jacobi diagonalises the symmetric row-major matrix a in place.
func jacobi(a []float64, n int) error {
	var (
		p, q, i            int
		app, aqq, apq      float64
		aip, aiq           float64
		theta, t, c, s     float64
		newIP, newIQ, offs float64
	)
	for sweep := 0; sweep < jacobiMaxSweeps; sweep++ {
		offs = 0
		for p = 0; p < n; p++ {
			for q = p + 1; q < n; q++ {
				offs += a[p*n+q] * a[p*n+q]
			}
		}
		if offs < jacobiTolerance {
			return nil
		}

		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				apq = a[p*n+q]
				if math.Abs(apq) < rotationFloor {
					continue
				}
				app, aqq = a[p*n+p], a[q*n+q]
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				for i = 0; i < n; i++ {
					if i == p || i == q {
						continue
					}
					aip, aiq = a[i*n+p], a[i*n+q]
					newIP = c*aip - s*aiq
					newIQ = s*aip + c*aiq
					a[i*n+p], a[p*n+i] = newIP, newIP
					a[i*n+q], a[q*n+i] = newIQ, newIQ
				}
				a[p*n+p] = app - t*apq
				a[q*n+q] = aqq + t*apq
				a[p*n+q], a[q*n+p] = 0, 0
			}
		}
	}

	return ErrNoConvergence
}
