// SPDX-License-Identifier: MIT
package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/isograph/fastgraph"
)

// rows calls fn with the fields of each non-blank, non-comment line of r.
// split separates fields; line numbers are 1-based.
func rows(r io.Reader, split func(string) []string, fn func(line int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := fn(line, split(text)); err != nil {
			return err
		}
	}
	return errors.Wrap(sc.Err(), "graphio: read")
}

func tabs(s string) []string { return strings.Split(s, "\t") }

func atoi(line int, field, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(ErrSyntax, "line %d: %s %q", line, field, s)
	}
	return v, nil
}

func atob(line int, field, s string) (byte, error) {
	v, err := atoi(line, field, s)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 255 {
		return 0, errors.Wrapf(ErrSyntax, "line %d: %s %d out of byte range", line, field, v)
	}
	return byte(v), nil
}

// ReadAdjacencyList reads a SNAP-style edge list.
func ReadAdjacencyList(name string, r io.Reader) (*fastgraph.Graph, error) {
	ids := map[string]int{}
	var nodes []fastgraph.NodeSpec
	var edges []fastgraph.EdgeSpec
	node := func(id string) int {
		if n, ok := ids[id]; ok {
			return n
		}
		n := len(nodes)
		ids[id] = n
		nodes = append(nodes, fastgraph.NodeSpec{Index: n, Label: id})
		return n
	}

	err := rows(r, strings.Fields, func(line int, f []string) error {
		if len(f) < 2 {
			return errors.Wrapf(ErrSyntax, "line %d: want two node ids", line)
		}
		for _, id := range f[:2] {
			if _, err := atoi(line, "node id", id); err != nil {
				return err
			}
		}
		e := len(edges)
		edges = append(edges, fastgraph.EdgeSpec{
			Index: e, Node1: node(f[0]), Node2: node(f[1]), Label: "e" + strconv.Itoa(e),
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: adjacency list %q", name)
	}

	g, err := fastgraph.New(name, nodes, edges)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: build %q", name)
	}
	return g, nil
}

// ReadNodeEdgeLists reads a graph from a node file and an edge file.
func ReadNodeEdgeLists(name string, nodeFile, edgeFile io.Reader) (*fastgraph.Graph, error) {
	var nodes []fastgraph.NodeSpec
	err := rows(nodeFile, tabs, func(line int, f []string) error {
		if len(f) != 5 {
			return errors.Wrapf(ErrSyntax, "line %d: want 5 fields, got %d", line, len(f))
		}
		var (
			n   fastgraph.NodeSpec
			err error
		)
		if n.Index, err = atoi(line, "index", f[0]); err != nil {
			return err
		}
		n.Label = f[1]
		if n.Weight, err = atoi(line, "weight", f[2]); err != nil {
			return err
		}
		if n.Type, err = atob(line, "type", f[3]); err != nil {
			return err
		}
		if n.Age, err = atob(line, "age", f[4]); err != nil {
			return err
		}
		nodes = append(nodes, n)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: node list %q", name)
	}

	var edges []fastgraph.EdgeSpec
	err = rows(edgeFile, tabs, func(line int, f []string) error {
		if len(f) != 7 {
			return errors.Wrapf(ErrSyntax, "line %d: want 7 fields, got %d", line, len(f))
		}
		var (
			e   fastgraph.EdgeSpec
			err error
		)
		if e.Index, err = atoi(line, "index", f[0]); err != nil {
			return err
		}
		if e.Node1, err = atoi(line, "node1", f[1]); err != nil {
			return err
		}
		if e.Node2, err = atoi(line, "node2", f[2]); err != nil {
			return err
		}
		e.Label = f[3]
		if e.Weight, err = atoi(line, "weight", f[4]); err != nil {
			return err
		}
		if e.Type, err = atob(line, "type", f[5]); err != nil {
			return err
		}
		if e.Age, err = atob(line, "age", f[6]); err != nil {
			return err
		}
		edges = append(edges, e)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: edge list %q", name)
	}

	g, err := fastgraph.New(name, nodes, edges)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: build %q", name)
	}
	return g, nil
}

// WriteNodeEdgeLists writes g in the format ReadNodeEdgeLists reads.
// Labels must not contain tabs or newlines.
func WriteNodeEdgeLists(g *fastgraph.Graph, nodeFile, edgeFile io.Writer) error {
	nw := bufio.NewWriter(nodeFile)
	for n := 0; n < g.NodeCount(); n++ {
		fmt.Fprintf(nw, "%d\t%s\t%d\t%d\t%d\n", n, g.NodeLabel(n), g.NodeWeight(n), g.NodeType(n), g.NodeAge(n))
	}
	if err := nw.Flush(); err != nil {
		return errors.Wrap(err, "graphio: write node list")
	}

	ew := bufio.NewWriter(edgeFile)
	for e := 0; e < g.EdgeCount(); e++ {
		fmt.Fprintf(ew, "%d\t%d\t%d\t%s\t%d\t%d\t%d\n", e, g.EdgeNode1(e), g.EdgeNode2(e),
			g.EdgeLabel(e), g.EdgeWeight(e), g.EdgeType(e), g.EdgeAge(e))
	}
	return errors.Wrap(ew.Flush(), "graphio: write edge list")
}
