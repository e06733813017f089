// Package core defines the graph data model shared by every algorithm
// package in this repository: four concrete variants (Graph, DiGraph,
// MultiGraph, MultiDiGraph), the Interface capability set they all
// implement, attribute dictionaries, and sentinel errors.
//
// This file declares Edge, Interface, GraphOption, and the sentinel
// errors.
//
// Errors:
//
//	ErrNodeNotFound - requested node does not exist in the graph.
//	ErrEdgeNotFound - requested edge does not exist.
//	ErrKeyNotFound  - requested parallel-edge key does not exist.
package core

import "errors"

// Sentinel errors for core graph operations.
// Callers branch with errors.Is; mutation and query methods wrap these
// with the offending node or edge for actionable messages.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrKeyNotFound indicates a multigraph operation referenced a
	// non-existent parallel-edge key for an existing node pair.
	ErrKeyNotFound = errors.New("core: edge key not found")
)

// Edge is the value yielded by edge views.
//
// U and V are the endpoints (U→V for directed variants). Key
// disambiguates parallel edges in multigraphs and is always 0 for the
// simple variants. Attrs is the live attribute dictionary of the edge,
// shared with the graph's internal storage.
type Edge[N comparable] struct {
	U, V  N
	Key   int
	Attrs Attrs
}

// Interface is the closed capability set implemented by all four graph
// variants. Algorithms are written against it and branch on
// IsDirected/IsMultigraph instead of dispatching on concrete types;
// FreshCopy lets them build a same-variant result graph without copying
// data.
//
// AddEdge has a uniform void signature here; the multigraph variants
// additionally expose key-returning and key-addressed methods on their
// concrete types.
type Interface[N comparable] interface {
	// IsDirected reports whether edges are ordered pairs.
	IsDirected() bool
	// IsMultigraph reports whether parallel edges are representable.
	IsMultigraph() bool

	// GraphAttrs returns the live graph-level attribute dictionary.
	GraphAttrs() Attrs

	// NodeCount returns the number of nodes. Complexity: O(1).
	NodeCount() int
	// EdgeCount returns the number of edges (parallel edges counted
	// individually in multigraphs). Complexity: O(1).
	EdgeCount() int

	// HasNode reports node membership. Complexity: O(1).
	HasNode(n N) bool
	// HasEdge reports whether at least one u→v edge exists
	// (either orientation for undirected variants). Complexity: O(1).
	HasEdge(u, v N) bool

	// AddNode inserts n if absent (idempotent) and merges attrs into
	// its attribute dictionary.
	AddNode(n N, attrs ...Attrs)
	// AddEdge inserts a u→v edge, creating missing endpoints; it never
	// fails for missing-node reasons. On the simple variants an
	// existing edge has attrs merged in (last write wins); on the
	// multigraph variants a new parallel edge is appended.
	AddEdge(u, v N, attrs ...Attrs)
	// RemoveNode deletes n and every incident edge.
	// Returns ErrNodeNotFound if n is absent.
	RemoveNode(n N) error
	// RemoveEdge deletes the u→v edge (the most recently added parallel
	// edge in multigraphs). Returns ErrEdgeNotFound if absent.
	RemoveEdge(u, v N) error

	// Neighbors returns the live adjacency row of n (successors for
	// directed variants). Returns ErrNodeNotFound if n is absent.
	Neighbors(n N) (*AdjacencyRow[N], error)
	// Degree returns the degree of n under the variant's convention:
	// undirected self-loops contribute 2; directed degree is in+out.
	// Returns ErrNodeNotFound if n is absent.
	Degree(n N) (int, error)

	// Nodes returns the lazy node view.
	Nodes() *NodeView[N]
	// Edges returns the lazy edge view (each undirected edge reported once).
	Edges() *EdgeView[N]
	// Adjacency returns the lazy node→row view.
	Adjacency() *AdjacencyView[N]
	// Degrees returns the lazy (node, degree) view.
	Degrees() *DegreeView[N]

	// FreshCopy returns a new empty graph of the same concrete variant,
	// without nodes, edges, or graph attributes.
	FreshCopy() Interface[N]
}

// GraphOption configures a graph at construction time.
// Options only seed the graph-level attribute dictionary; structural
// behavior is fixed by choosing one of the four variants.
type GraphOption func(attrs Attrs)

// WithName stores a human-readable name in the graph attributes.
func WithName(name string) GraphOption {
	return func(a Attrs) { a["name"] = name }
}

// WithGraphAttrs merges attrs into the graph attribute dictionary.
func WithGraphAttrs(attrs Attrs) GraphOption {
	return func(a Attrs) { a.Update(attrs) }
}

// applyOptions folds opts into a fresh graph-attribute dictionary.
func applyOptions(opts []GraphOption) Attrs {
	a := Attrs{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
