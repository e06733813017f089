// Package builder: Grid constructor.
//
// Contract:
//   - rows, cols >= 1 and rows*cols >= 2, else ErrTooFewVertices.
//   - Node IDs are "r,c" in row-major order, independent of cfg.idFn.
//   - 4-neighborhood edges: each cell links right and down, so every
//     edge is emitted exactly once, row-major.
//
// Complexity: O(rows*cols) nodes + O(rows*cols) edges.
package builder

import (
	"fmt"

	"github.com/graphland/graphland/core"
)

// GridID renders the canonical "r,c" identifier of a grid cell.
func GridID(r, c int) string {
	return fmt.Sprintf("%d,%d", r, c)
}

// Grid returns a Constructor that builds an rows x cols lattice with
// 4-neighborhood connectivity.
func Grid(rows, cols int) Constructor {
	return func(g core.Interface[string], cfg config) error {
		if rows < 1 || cols < 1 || rows*cols < 2 {
			return fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddNode(GridID(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					g.AddEdge(GridID(r, c), GridID(r, c+1), edgeAttrs(cfg)...)
				}
				if r+1 < rows {
					g.AddEdge(GridID(r, c), GridID(r+1, c), edgeAttrs(cfg)...)
				}
			}
		}

		return nil
	}
}
