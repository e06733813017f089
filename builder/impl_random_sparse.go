// Package builder: RandomSparse constructor.
//
// Contract:
//   - n >= 1, else ErrTooFewVertices; 0 <= p <= 1, else
//     ErrInvalidProbability; cfg.rng must be set (WithSeed/WithRand),
//     else ErrNeedRandSource.
//   - Undirected targets draw each unordered pair {i,j} once; directed
//     targets draw every ordered pair (i,j), i != j.
//   - Deterministic per seed: pairs are visited in a fixed nested-loop
//     order and each consumes exactly one RNG draw.
//
// Complexity: O(n^2) pair draws.
package builder

import (
	"fmt"

	"github.com/graphland/graphland/core"
)

const minRandomNodes = 1

// RandomSparse returns a Constructor that builds an Erdos-Renyi style
// graph: every candidate pair becomes an edge with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g core.Interface[string], cfg config) error {
		if n < minRandomNodes {
			return fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%v: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			g.AddNode(cfg.idFn(i))
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if !g.IsDirected() && j < i {
					continue
				}
				if cfg.rng.Float64() < p {
					g.AddEdge(cfg.idFn(i), cfg.idFn(j), edgeAttrs(cfg)...)
				}
			}
		}

		return nil
	}
}
