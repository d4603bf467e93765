// SPDX-License-Identifier: MIT
package isomorphism

import (
	"context"

	"github.com/katalvlaran/isograph/fastgraph"
)

// IsomorphicContext builds an Engine for g1 and tests g2 against it, giving up
// with ctx.Err() when ctx ends during the search.
func IsomorphicContext(ctx context.Context, g1, g2 *fastgraph.Graph, opts ...Option) (bool, error) {
	e, err := New(g1, opts...)
	if err != nil {
		return false, err
	}
	return e.IsomorphicContext(ctx, g2)
}
