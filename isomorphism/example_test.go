// SPDX-License-Identifier: MIT
package isomorphism_test

import (
	"fmt"

	"github.com/katalvlaran/isograph/graphio"
	"github.com/katalvlaran/isograph/isomorphism"
)

// ExampleEngine_Isomorphic tests two drawings of a 4-cycle and prints the
// node mapping found.
func ExampleEngine_Isomorphic() {
	square := graphio.MustParseNotation("square: a-b-c-d-a")
	other := graphio.MustParseNotation("other: w-y-x-z-w")

	e, err := isomorphism.New(square)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	ok, err := e.Isomorphic(other)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ok)
	for n1, n2 := range e.LastMatch() {
		fmt.Printf("%s->%s ", square.NodeLabel(n1), other.NodeLabel(n2))
	}
	fmt.Println()
	// Output:
	// true
	// a->w b->y c->x d->z
}

// ExampleEngine_Fingerprint shows the hash key of a triangle: sizes, degree
// histogram, spectrum and age profile.
func ExampleEngine_Fingerprint() {
	e, err := isomorphism.New(graphio.MustParseNotation("a-b-c-a"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(e.Fingerprint())
	// Output:
	// 3,3[0, 0, 3][-1, -1, 2][3]
}
