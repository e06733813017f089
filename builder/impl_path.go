// Package builder: Path constructor.
//
// Contract:
//   - n >= 2, else ErrTooFewVertices.
//   - Nodes cfg.idFn(0..n-1) in ascending order.
//   - Edges (i-1, i) for i = 1..n-1; forward arcs on directed targets.
//
// Complexity: O(n) nodes + O(n-1) edges.
package builder

import (
	"fmt"

	"github.com/graphland/graphland/core"
)

const minPathNodes = 2

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g core.Interface[string], cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddNode(cfg.idFn(i))
		}
		for i := 1; i < n; i++ {
			g.AddEdge(cfg.idFn(i-1), cfg.idFn(i), edgeAttrs(cfg)...)
		}

		return nil
	}
}
