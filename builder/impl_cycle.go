// Package builder: Cycle constructor.
//
// Contract:
//   - n >= 3, else ErrTooFewVertices.
//   - Nodes cfg.idFn(0..n-1); ring edges (i, (i+1) mod n) for i = 0..n-1.
//   - Directed targets receive a single forward ring.
//
// Complexity: O(n) nodes + O(n) edges.
package builder

import (
	"fmt"

	"github.com/graphland/graphland/core"
)

const minCycleNodes = 3

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g core.Interface[string], cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddNode(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			g.AddEdge(cfg.idFn(i), cfg.idFn((i+1)%n), edgeAttrs(cfg)...)
		}

		return nil
	}
}
