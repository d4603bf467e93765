// SPDX-License-Identifier: MIT
// Package: isograph/invariant
//
// Package invariant computes permutation-invariant properties of a
// fastgraph.Graph: degree sequence and histogram, neighbor sets, the
// symmetric adjacency-count matrix and its spectrum.
//
// Edge direction is ignored throughout. Equal invariants are necessary but
// not sufficient for isomorphism; the isomorphism engines use them only to
// reject early.
//
// Spectrum values are rounded to SpectrumPrecision decimal places and sorted
// ascending, so two isomorphic graphs produce identical slices despite the
// different rotation order a permuted matrix induces.
package invariant
