// SPDX-License-Identifier: MIT
// Package: isograph/graphio
//
// Package graphio reads and writes fastgraph graphs.
//
// Formats:
//   - JSON: {"name", "nodes": [{nodeIndex, nodeLabel, nodeWeight, nodeType,
//     nodeAge}], "edges": [{edgeIndex, node1, node2, edgeLabel, edgeWeight,
//     edgeType, edgeAge}]}.
//   - Node/edge lists: two tab-separated files, one row per node
//     (index label weight type age) and per edge
//     (index node1 node2 label weight type age).
//   - SNAP adjacency lists: "from to" integer pairs, '#' comments. Node ids
//     are renumbered densely in order of first appearance and kept as labels.
//   - Notation: "name: a-b-c-a, c-d". Each chain adds its nodes (by token,
//     first appearance order) and one edge per dash.
//
// LoadFile picks the format from the file extension.
package graphio
