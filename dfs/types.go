// Package dfs: types and options for depth-first traversal, including
// cancellation, pre-/post-order hooks, depth limiting, neighbor
// filtering, full-graph (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
)

// Visitation state of a node during DFS.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is in the recursion stack (visiting).
	Black        // Black: the node and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS,
	// TopologicalSort, or DetectCycles.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the specified start node does not
	// exist in the graph.
	ErrStartNotFound = errors.New("dfs: start node not found")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirected is returned when TopologicalSort is run on an
	// undirected graph.
	ErrUndirected = errors.New("dfs: directed graph required")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option[N comparable] func(*Options[N])

// Options holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering, full-graph mode, and diagnostics.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options[N comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a node
	// (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(n N) error

	// OnExit, if non-nil, is invoked after all descendants of a node have
	// been explored (post-order), before appending to Result.Order.
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(n N) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before
	// recursing. Return true to traverse into that neighbor, false to
	// skip it.
	FilterNeighbor func(n N) bool

	// FullTraversal, if true, runs DFS from every unvisited node in the
	// graph, covering disconnected components (forest traversal).
	FullTraversal bool

	// SkippedNeighbors tracks how many neighbors were skipped due to
	// FilterNeighbor returning false. Useful for diagnostics.
	SkippedNeighbors int
}

// DefaultOptions returns Options with:
//   - Background context
//   - no pre-/post-order hooks
//   - no depth limit (MaxDepth = -1)
//   - no neighbor filtering
//   - single-source traversal (FullTraversal = false).
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called when a node is first discovered.
func WithOnVisit[N comparable](fn func(n N) error) Option[N] {
	return func(o *Options[N]) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called after a node's descendants have been fully explored.
func WithOnExit[N comparable](fn func(n N) error) Option[N] {
	return func(o *Options[N]) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start node is visited.
func WithMaxDepth[N comparable](limit int) Option[N] {
	return func(o *Options[N]) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbors.
// If fn(n) == false, that neighbor is skipped and counted in
// SkippedNeighbors.
func WithFilterNeighbor[N comparable](fn func(n N) bool) Option[N] {
	return func(o *Options[N]) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
// When set, DFS restarts from each unvisited node, covering
// disconnected components.
func WithFullTraversal[N comparable]() Option[N] {
	return func(o *Options[N]) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[N comparable] struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []N

	// Depth maps each node to its distance (#edges) from the start of
	// its DFS tree.
	Depth map[N]int

	// Parent maps each node to the node from which it was first
	// discovered. Tree roots have no entry.
	Parent map[N]N

	// Visited flags which nodes were reached during the traversal.
	Visited map[N]bool

	// SkippedNeighbors reports how many neighbors were skipped due to
	// FilterNeighbor returning false, aggregated across all trees.
	SkippedNeighbors int
}
