// SPDX-License-Identifier: MIT
package motif

import "errors"

// ErrInvalidSize is returned when k is not in [1, node count].
var ErrInvalidSize = errors.New("motif: invalid motif size")

// ErrNeedRandSource is returned when sampling is requested without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("motif: rng is required")

const (
	methodNewSampler = "NewSampler"
	methodAdd        = "Add"
	methodFind       = "Find"
)
