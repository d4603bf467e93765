// SPDX-License-Identifier: MIT

// Command isograph runs isomorphism tests, subgraph searches and motif
// discovery over graph files.
//
//	isograph iso a.json b.json
//	isograph find target.txt pattern.graph --limit 10
//	isograph motif web.txt -k 4 --samples 5000
//	isograph gen --nodes 100 --edges 300 --simple -o random.json
//	isograph check graph.json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "isograph:", err)
		os.Exit(1)
	}
}
