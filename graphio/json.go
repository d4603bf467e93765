// SPDX-License-Identifier: MIT
package graphio

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/isograph/fastgraph"
)

type jsonGraph struct {
	Name  string     `json:"name"`
	Nodes []jsonNode `json:"nodes"`
	Edges []jsonEdge `json:"edges"`
}

type jsonNode struct {
	Index  int    `json:"nodeIndex"`
	Label  string `json:"nodeLabel"`
	Weight int    `json:"nodeWeight"`
	Type   byte   `json:"nodeType"`
	Age    byte   `json:"nodeAge"`
}

type jsonEdge struct {
	Index  int    `json:"edgeIndex"`
	Node1  int    `json:"node1"`
	Node2  int    `json:"node2"`
	Label  string `json:"edgeLabel"`
	Weight int    `json:"edgeWeight"`
	Type   byte   `json:"edgeType"`
	Age    byte   `json:"edgeAge"`
}

// ReadJSON decodes one graph document from r.
func ReadJSON(r io.Reader) (*fastgraph.Graph, error) {
	var doc jsonGraph
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "graphio: decode json")
	}

	nodes := make([]fastgraph.NodeSpec, len(doc.Nodes))
	for i, n := range doc.Nodes {
		nodes[i] = fastgraph.NodeSpec{Index: n.Index, Label: n.Label, Weight: n.Weight, Type: n.Type, Age: n.Age}
	}
	edges := make([]fastgraph.EdgeSpec, len(doc.Edges))
	for i, e := range doc.Edges {
		edges[i] = fastgraph.EdgeSpec{
			Index: e.Index, Node1: e.Node1, Node2: e.Node2,
			Label: e.Label, Weight: e.Weight, Type: e.Type, Age: e.Age,
		}
	}

	g, err := fastgraph.New(doc.Name, nodes, edges)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: build %q", doc.Name)
	}
	return g, nil
}

// WriteJSON encodes g as an indented graph document.
func WriteJSON(w io.Writer, g *fastgraph.Graph) error {
	doc := jsonGraph{
		Name:  g.Name(),
		Nodes: make([]jsonNode, g.NodeCount()),
		Edges: make([]jsonEdge, g.EdgeCount()),
	}
	for n := range doc.Nodes {
		doc.Nodes[n] = jsonNode{
			Index: n, Label: g.NodeLabel(n), Weight: g.NodeWeight(n),
			Type: g.NodeType(n), Age: g.NodeAge(n),
		}
	}
	for e := range doc.Edges {
		doc.Edges[e] = jsonEdge{
			Index: e, Node1: g.EdgeNode1(e), Node2: g.EdgeNode2(e),
			Label: g.EdgeLabel(e), Weight: g.EdgeWeight(e),
			Type: g.EdgeType(e), Age: g.EdgeAge(e),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(doc), "graphio: encode json")
}
