// Package dfs implements depth-first search (single-source and forest)
// over any graph variant of package core. It supports cancellation,
// pre- and post-order hooks, depth limits, neighbor filtering,
// full-graph traversal, and diagnostics.
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus the cost of hooks and filters.
//   - Memory: O(V) for the recursion stack and metadata maps.
package dfs

import (
	"fmt"

	"github.com/graphland/graphland/core"
)

// walker encapsulates state during DFS.
type walker[N comparable] struct {
	graph core.Interface[N]
	opts  Options[N]
	res   *Result[N]
}

// DFS performs depth-first search on graph g. If opts include
// WithFullTraversal, it covers all disconnected components; otherwise
// it starts only from start. On directed variants only outgoing arcs
// are followed; on undirected variants the edge back to the immediate
// parent is not retraversed. Returns a Result, or an error if aborted
// by context or hook.
func DFS[N comparable](g core.Interface[N], start N, opts ...Option[N]) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions[N]()
	for _, fn := range opts {
		fn(&dopts)
	}

	// Single-source mode: verify the start node.
	if !dopts.FullTraversal && !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	res := &Result[N]{
		Order:   make([]N, 0, n),
		Depth:   make(map[N]int, n),
		Parent:  make(map[N]N, n),
		Visited: make(map[N]bool, n),
	}

	w := &walker[N]{graph: g, opts: dopts, res: res}

	// Traverse: forest or single tree.
	if dopts.FullTraversal {
		for _, v := range g.Nodes().List() {
			if !res.Visited[v] {
				if err := w.traverse(v, v, 0, true); err != nil {
					return res, err
				}
			}
		}
	} else {
		if err := w.traverse(start, start, 0, true); err != nil {
			return res, err
		}
	}

	res.SkippedNeighbors = w.opts.SkippedNeighbors

	return res, nil
}

// traverse visits node at the given depth, recursing to neighbors.
// It honors context cancellation, the depth limit, hooks, and filtering.
// root marks the first call of a DFS tree, where parent is the node
// itself and the undirected backtrack skip must not fire.
func (w *walker[N]) traverse(node, parent N, depth int, root bool) error {
	// Cancellation check.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// Depth limit: stop if exceeded.
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// Mark visited and record depth.
	w.res.Visited[node] = true
	w.res.Depth[node] = depth

	// Pre-order hook.
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(node); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", node, err)
		}
	}

	// Fetch the adjacency row once; insertion order drives recursion order.
	row, err := w.graph.Neighbors(node)
	if err != nil {
		w.res.Order = nil
		return fmt.Errorf("dfs: neighbors of %v: %w", node, err)
	}

	for _, nbr := range row.List() {
		// Skip the trivial backtrack on undirected variants.
		if !w.graph.IsDirected() && !root && nbr == parent {
			continue
		}

		// Neighbor filtering.
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
			w.opts.SkippedNeighbors++
			continue
		}

		// Recurse on unvisited.
		if !w.res.Visited[nbr] {
			w.res.Parent[nbr] = node
			if err = w.traverse(nbr, node, depth+1, false); err != nil {
				return err
			}
		}
	}

	// Post-order hook.
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(node); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %v: %w", node, err)
		}
	}

	// Record finish order.
	w.res.Order = append(w.res.Order, node)

	return nil
}
