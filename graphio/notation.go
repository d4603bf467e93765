// SPDX-License-Identifier: MIT
package graphio

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/isograph/fastgraph"
)

// DefaultNotationName names graphs whose notation has no "name:" prefix.
const DefaultNotationName = "graph"

type notation struct {
	Name   string   `parser:"@Name?"`
	Chains []*chain `parser:"(@@ (\",\" | \";\")?)*"`
}

type chain struct {
	Head string   `parser:"@(Ident | Int)"`
	Tail []string `parser:"(\"-\" @(Ident | Int))*"`
}

var notationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Name", Pattern: `[A-Za-z_][A-Za-z0-9_.]*:`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[-,;]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseNotation = participle.MustBuild[notation](
	participle.Lexer(notationLexer),
	participle.Elide("Whitespace"),
)

// ParseNotation builds a graph from compact notation such as
// "kite: a-b-c-a c-d". Edges run in the written direction.
func ParseNotation(s string) (*fastgraph.Graph, error) {
	doc, err := parseNotation.ParseString("", s)
	if err != nil {
		return nil, errors.Wrapf(ErrSyntax, "graphio: notation: %v", err)
	}

	name := strings.TrimSuffix(doc.Name, ":")
	if name == "" {
		name = DefaultNotationName
	}

	ids := map[string]int{}
	var nodes []fastgraph.NodeSpec
	var edges []fastgraph.EdgeSpec
	node := func(tok string) int {
		if n, ok := ids[tok]; ok {
			return n
		}
		n := len(nodes)
		ids[tok] = n
		nodes = append(nodes, fastgraph.NodeSpec{Index: n, Label: tok})
		return n
	}
	for _, c := range doc.Chains {
		prev := node(c.Head)
		for _, tok := range c.Tail {
			next := node(tok)
			e := len(edges)
			edges = append(edges, fastgraph.EdgeSpec{Index: e, Node1: prev, Node2: next, Label: "e" + strconv.Itoa(e)})
			prev = next
		}
	}

	g, err := fastgraph.New(name, nodes, edges)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: build %q", name)
	}
	return g, nil
}

// MustParseNotation is ParseNotation that panics on error. For tests and
// fixed fixtures.
func MustParseNotation(s string) *fastgraph.Graph {
	g, err := ParseNotation(s)
	if err != nil {
		panic(err)
	}
	return g
}
