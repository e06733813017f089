// Package bfs provides breadth-first search over any graph variant of
// package core, returning unweighted shortest-path distances, parent
// links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a
//     start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Works on all four variants: on directed graphs only outgoing arcs
//     are followed; on multigraphs parallel edges collapse to one
//     neighbor hop.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs, connected components, and level layering.
//   - Foundation for flow, matching, reachability, and other graph algorithms.
//
// Determinism
//
//	Adjacency rows iterate in insertion order, and BFS enqueues
//	neighbors in that order, so the visit sequence is fully
//	reproducible for a given construction sequence.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)   (each node and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	// Basic BFS with no options:
//	result, err := bfs.BFS[string](g, "start")
//	if err != nil {
//	    // handle ErrGraphNil, ErrStartNotFound, ErrOptionViolation,
//	    // or a wrapped hook error
//	}
//
//	// With functional options:
//	result, err := bfs.BFS(
//	    g, "start",
//	    bfs.WithContext[string](ctx),
//	    bfs.WithMaxDepth[string](3),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return curr != "skip" }),
//	    bfs.WithOnVisit(func(n string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil        if the graph is nil.
//   - ErrStartNotFound   if the start node does not exist.
//   - ErrOptionViolation if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath          from Result.PathTo for unreached destinations.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
