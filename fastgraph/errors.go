// SPDX-License-Identifier: MIT
// Package: isograph/fastgraph
//
// errors.go: sentinel errors for the fastgraph package.
//
// Every sentinel unwraps to ErrGraph, so errors.Is(err, ErrGraph) matches
// any failure of the graph layer.

package fastgraph

import (
	"errors"
	"fmt"
)

// ErrGraph is the umbrella failure kind of the graph layer.
var ErrGraph = errors.New("fastgraph: graph exception")

// kindError is a sentinel that unwraps to ErrGraph.
type kindError struct{ msg string }

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return ErrGraph }

var (
	// ErrNotConnected is returned when an operation requires a connected graph.
	ErrNotConnected error = &kindError{"fastgraph: graph is not connected"}

	// ErrTooManyEdges is returned when a simple graph is requested with more
	// edges than n(n-1)/2.
	ErrTooManyEdges error = &kindError{"fastgraph: too many edges to generate a simple graph"}

	// ErrLabelOverflow is returned when a label or a label arena exceeds its
	// addressable size.
	ErrLabelOverflow error = &kindError{"fastgraph: label storage capacity exceeded"}

	// ErrBadStructure is returned for malformed construction input: holes or
	// duplicates in node/edge indices, endpoints out of range, edges touching
	// nodes outside a derived subgraph.
	ErrBadStructure error = &kindError{"fastgraph: malformed graph structure"}

	// ErrIndexOutOfRange is returned when a node or edge index is outside the
	// dense range of the graph.
	ErrIndexOutOfRange error = &kindError{"fastgraph: index out of range"}

	// ErrLengthMismatch is returned when a bulk setter receives a slice whose
	// length differs from the node or edge count.
	ErrLengthMismatch error = &kindError{"fastgraph: length mismatch"}

	// ErrTargetSize is returned by Reduce when a target count is negative or
	// larger than the graph.
	ErrTargetSize error = &kindError{"fastgraph: target size out of range"}

	// ErrNeedRandSource is returned when a randomized operation gets a nil rng.
	ErrNeedRandSource error = &kindError{"fastgraph: random source is required"}

	// ErrInconsistent is returned by CheckConsistency when the connection arena
	// disagrees with the edge records.
	ErrInconsistent error = &kindError{"fastgraph: inconsistent graph"}
)

// Method names used as error prefixes.
const (
	methodNew              = "New"
	methodSubgraph         = "Subgraph"
	methodInducedSubgraph  = "InducedSubgraph"
	methodDeleteItems      = "DeleteItems"
	methodRewire           = "Rewire"
	methodReduce           = "Reduce"
	methodSetAllNodeLabels = "SetAllNodeLabels"
	methodSetAllEdgeLabels = "SetAllEdgeLabels"
	methodCheckConsistency = "CheckConsistency"
)

// wrapf attaches method context to a sentinel while keeping errors.Is intact.
func wrapf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
