// Package builder: Complete and CompleteBipartite constructors.
//
// Contract:
//   - Complete: n >= 1. Undirected targets get each pair {i,j} once
//     (i < j); directed targets get both arcs, so every ordered pair.
//   - CompleteBipartite: n1, n2 >= 1. Sides are labeled
//     leftPrefix+index and rightPrefix+index; every cross pair is
//     joined, left-to-right arcs on directed targets.
//
// Complexity: Complete O(n^2) edges; CompleteBipartite O(n1*n2) edges.
package builder

import (
	"fmt"
	"strconv"

	"github.com/graphland/graphland/core"
)

const (
	minCompleteNodes  = 1
	minBipartiteSides = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g core.Interface[string], cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddNode(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.AddEdge(cfg.idFn(i), cfg.idFn(j), edgeAttrs(cfg)...)
				if g.IsDirected() {
					g.AddEdge(cfg.idFn(j), cfg.idFn(i), edgeAttrs(cfg)...)
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that builds K_{n1,n2} with
// side labels taken from the partition prefixes.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g core.Interface[string], cfg config) error {
		if n1 < minBipartiteSides || n2 < minBipartiteSides {
			return fmt.Errorf("CompleteBipartite: sides %dx%d: %w", n1, n2, ErrTooFewVertices)
		}

		left := make([]string, n1)
		for i := 0; i < n1; i++ {
			left[i] = cfg.leftPrefix + strconv.Itoa(i)
			g.AddNode(left[i])
		}
		right := make([]string, n2)
		for j := 0; j < n2; j++ {
			right[j] = cfg.rightPrefix + strconv.Itoa(j)
			g.AddNode(right[j])
		}

		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				g.AddEdge(left[i], right[j], edgeAttrs(cfg)...)
			}
		}

		return nil
	}
}
