// Package dfs implements depth-first search, cycle detection, and
// topological sort over the graph variants of package core.
//
// What
//
//   - DFS(g, start, opts...): traverse from a root, or the whole forest
//     via WithFullTraversal. The Result carries post-order, discovery
//     depths, parent links, visited flags, and a skipped-neighbor count.
//   - DetectCycles(g): enumerate simple cycles with canonical minimal
//     rotations and deterministic ordering.
//   - TopologicalSort(g): linear order of a directed acyclic graph, or
//     ErrCycleDetected.
//
// Hooks and limits
//
//   - WithOnVisit(fn)        pre-order hook; an error aborts traversal.
//   - WithOnExit(fn)         post-order hook; an error aborts traversal.
//   - WithMaxDepth(limit)    stops recursion beyond the given depth (>=0).
//   - WithFilterNeighbor(fn) skips neighbors; skips are counted.
//   - WithContext(ctx)       cancellation via context.Context.
//
// Determinism
//
//	Adjacency rows iterate in insertion order and DFS recurses in that
//	order, so traversal, cycle lists, and topological orders are
//	reproducible for a given construction sequence.
//
// Complexity
//
//   - Time:   O(V + E) for traversal and sorting; cycle detection adds
//     O(C·L) for canonicalizing C cycles of average length L.
//   - Memory: O(V) for the recursion stack and metadata maps.
//
// Errors
//
//   - ErrGraphNil        if g is nil (DFS, TopologicalSort).
//   - ErrStartNotFound   if the start node is missing.
//   - ErrUndirected      if TopologicalSort is given an undirected graph.
//   - ErrCycleDetected   if TopologicalSort meets a back-arc.
//   - context.Canceled   if the context is done.
//   - any error returned by OnVisit or OnExit, wrapped.
package dfs
