// Package builder: Wheel constructor.
//
// Contract:
//   - n >= 4 total nodes, else ErrTooFewVertices.
//   - Ring of n-1 nodes cfg.idFn(0..n-2) plus the CenterID hub.
//   - Emission order: ring edges first, then spokes, both ascending.
//
// Complexity: O(n) nodes + O(2n-2) edges.
package builder

import (
	"fmt"

	"github.com/graphland/graphland/core"
)

const minWheelNodes = 4

// Wheel returns a Constructor that builds the wheel W_n: an (n-1)-cycle
// with every ring node joined to the center.
func Wheel(n int) Constructor {
	return func(g core.Interface[string], cfg config) error {
		if n < minWheelNodes {
			return fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewVertices)
		}

		ring := n - 1
		for i := 0; i < ring; i++ {
			g.AddNode(cfg.idFn(i))
		}
		g.AddNode(CenterID)

		for i := 0; i < ring; i++ {
			g.AddEdge(cfg.idFn(i), cfg.idFn((i+1)%ring), edgeAttrs(cfg)...)
		}
		for i := 0; i < ring; i++ {
			g.AddEdge(CenterID, cfg.idFn(i), edgeAttrs(cfg)...)
		}

		return nil
	}
}
