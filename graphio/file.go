// SPDX-License-Identifier: MIT
package graphio

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/isograph/fastgraph"
)

// LoadFile reads a graph, choosing the format by extension:
//
//	.json          JSON document
//	.snap, .txt    SNAP adjacency list
//	.nodes         node list; the edge list is the sibling ".edges" file
//	.graph         notation
//
// Graphs without a stored name are named after the file.
func LoadFile(path string) (*fastgraph.Graph, error) {
	ext := strings.ToLower(filepath.Ext(path))
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	switch ext {
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "graphio")
		}
		defer f.Close()
		g, err := ReadJSON(f)
		if err != nil {
			return nil, errors.Wrapf(err, "graphio: %s", path)
		}
		if g.Name() == "" {
			g.SetName(name)
		}
		return g, nil

	case ".snap", ".txt":
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "graphio")
		}
		defer f.Close()
		return ReadAdjacencyList(name, f)

	case ".nodes":
		nf, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "graphio")
		}
		defer nf.Close()
		ef, err := os.Open(strings.TrimSuffix(path, filepath.Ext(path)) + ".edges")
		if err != nil {
			return nil, errors.Wrap(err, "graphio")
		}
		defer ef.Close()
		return ReadNodeEdgeLists(name, nf, ef)

	case ".graph":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "graphio")
		}
		g, err := ParseNotation(string(b))
		if err != nil {
			return nil, errors.Wrapf(err, "graphio: %s", path)
		}
		if g.Name() == DefaultNotationName {
			g.SetName(name)
		}
		return g, nil
	}

	return nil, errors.Wrapf(ErrUnknownFormat, "%s", path)
}

// SaveJSON writes g to path as a JSON document.
func SaveJSON(path string, g *fastgraph.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "graphio")
	}
	if err := WriteJSON(f, g); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "graphio")
}
