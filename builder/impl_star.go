// Package builder: Star constructor.
//
// Contract:
//   - n >= 2 total nodes, else ErrTooFewVertices.
//   - Center has the fixed ID CenterID; leaves are cfg.idFn(0..n-2).
//   - Spokes (Center, leaf) in ascending leaf order; arcs point outward
//     on directed targets.
//
// Complexity: O(n) nodes + O(n-1) edges.
package builder

import (
	"fmt"

	"github.com/graphland/graphland/core"
)

// CenterID is the fixed identifier of the hub node in Star and Wheel.
const CenterID = "Center"

const minStarNodes = 2

// Star returns a Constructor that builds an n-node star: one center and
// n-1 leaves.
func Star(n int) Constructor {
	return func(g core.Interface[string], cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}

		g.AddNode(CenterID)
		for i := 0; i < n-1; i++ {
			leaf := cfg.idFn(i)
			g.AddNode(leaf)
			g.AddEdge(CenterID, leaf, edgeAttrs(cfg)...)
		}

		return nil
	}
}
