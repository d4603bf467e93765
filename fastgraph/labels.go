// SPDX-License-Identifier: MIT
// Package: isograph/fastgraph
//
// labels.go: label arenas.
//
// Labels are stored back to back in one byte arena per element kind. A record
// holds only a span (offset, length). Replacing labels rebuilds the arena in a
// single pass and repoints every span.

package fastgraph

import "strconv"

func nodeLabel(i int) string { return "n" + strconv.Itoa(i) }
func edgeLabel(i int) string { return "e" + strconv.Itoa(i) }

// packLabels concatenates labels into a fresh arena.
func packLabels(labels []string) ([]byte, []span, error) {
	total := 0
	for i, l := range labels {
		if len(l) > MaxLabelLength {
			return nil, nil, wrapf("packLabels", ErrLabelOverflow, "label %d is %d bytes, limit %d", i, len(l), MaxLabelLength)
		}
		total += len(l)
		if total > maxLabelArena {
			return nil, nil, wrapf("packLabels", ErrLabelOverflow, "arena would exceed %d bytes", maxLabelArena)
		}
	}

	arena := make([]byte, 0, total)
	spans := make([]span, len(labels))
	for i, l := range labels {
		spans[i] = span{start: int32(len(arena)), length: uint16(len(l))}
		arena = append(arena, l...)
	}

	return arena, spans, nil
}

func (s span) in(arena []byte) string {
	return string(arena[s.start : s.start+int32(s.length)])
}

// SetAllNodeLabels replaces every node label. labels[i] becomes the label of node i.
//
// Errors: ErrLengthMismatch, ErrLabelOverflow. On error g is unchanged.
func (g *Graph) SetAllNodeLabels(labels []string) error {
	if len(labels) != len(g.nodes) {
		return wrapf(methodSetAllNodeLabels, ErrLengthMismatch, "got %d labels for %d nodes", len(labels), len(g.nodes))
	}
	arena, spans, err := packLabels(labels)
	if err != nil {
		return wrapf(methodSetAllNodeLabels, err, "pack")
	}
	g.nodeLabels = arena
	for i := range g.nodes {
		g.nodes[i].label = spans[i]
	}

	return nil
}

// SetAllEdgeLabels replaces every edge label. labels[i] becomes the label of edge i.
//
// Errors: ErrLengthMismatch, ErrLabelOverflow. On error g is unchanged.
func (g *Graph) SetAllEdgeLabels(labels []string) error {
	if len(labels) != len(g.edges) {
		return wrapf(methodSetAllEdgeLabels, ErrLengthMismatch, "got %d labels for %d edges", len(labels), len(g.edges))
	}
	arena, spans, err := packLabels(labels)
	if err != nil {
		return wrapf(methodSetAllEdgeLabels, err, "pack")
	}
	g.edgeLabels = arena
	for i := range g.edges {
		g.edges[i].label = spans[i]
	}

	return nil
}

// NodeLabels returns all node labels in index order.
func (g *Graph) NodeLabels() []string {
	out := make([]string, len(g.nodes))
	for i := range g.nodes {
		out[i] = g.nodes[i].label.in(g.nodeLabels)
	}
	return out
}

// EdgeLabels returns all edge labels in index order.
func (g *Graph) EdgeLabels() []string {
	out := make([]string, len(g.edges))
	for i := range g.edges {
		out[i] = g.edges[i].label.in(g.edgeLabels)
	}
	return out
}
