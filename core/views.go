// Package core: lazy views.
//
// Views are read-through windows over the graph's internal stores: no
// materialized copies, iteration in insertion order, O(1) membership.
// They stay live — later graph mutations are visible through a view
// obtained earlier — but mutating the graph while an iteration from a
// view is being consumed is undefined; materialize with List first when
// iterating and mutating together.
//
// The node-bunch policy is deliberately split into two named paths:
//   - single-node accessors (Attrs, Get) fail with ErrNodeNotFound;
//   - Filter / Select accept a bunch and silently skip absent nodes.
//
// The asymmetry mirrors how callers use the two shapes: naming one
// missing node is a programming error, feeding a mixed bunch is a
// filtering request. Both behaviors are part of the public contract.

package core

import "iter"

// NodeView is a lazy projection of the node table.
type NodeView[N comparable] struct {
	nodes *ordMap[N, Attrs]
}

// Len returns the number of nodes. Complexity: O(1).
func (v *NodeView[N]) Len() int { return v.nodes.Len() }

// Contains reports node membership. Complexity: O(1).
func (v *NodeView[N]) Contains(n N) bool { return v.nodes.Has(n) }

// Attrs returns the live attribute dictionary of n.
// Returns ErrNodeNotFound if n is absent (single-node strict path).
func (v *NodeView[N]) Attrs(n N) (Attrs, error) {
	a, ok := v.nodes.Get(n)
	if !ok {
		return nil, errNode(n)
	}
	return a, nil
}

// All iterates (node, attrs) pairs in insertion order.
func (v *NodeView[N]) All() iter.Seq2[N, Attrs] { return v.nodes.All() }

// List returns all nodes in insertion order, materialized.
// Complexity: O(V).
func (v *NodeView[N]) List() []N { return v.nodes.Keys() }

// Filter returns the members of bunch present in the graph, in bunch
// order, silently skipping absent nodes (bunch filtering path).
// Complexity: O(len(bunch)).
func (v *NodeView[N]) Filter(bunch ...N) []N {
	out := make([]N, 0, len(bunch))
	seen := make(map[N]struct{}, len(bunch))
	for _, n := range bunch {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		if v.nodes.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// AdjacencyRow is a lazy view of one node's neighbors and edge data.
//
// For multigraph variants the per-neighbor Attrs is the data of the
// lowest-keyed parallel edge; use the multigraph's key-addressed
// methods (EdgeKeys, EdgesBetween) to reach every parallel edge.
type AdjacencyRow[N comparable] struct {
	node N
	size func() int
	has  func(N) bool
	data func(N) (Attrs, bool)
	seq  func() iter.Seq2[N, Attrs]
}

// Node returns the node this row belongs to.
func (r *AdjacencyRow[N]) Node() N { return r.node }

// Len returns the number of neighbors. Complexity: O(1).
func (r *AdjacencyRow[N]) Len() int { return r.size() }

// Contains reports whether v is a neighbor. Complexity: O(1).
func (r *AdjacencyRow[N]) Contains(v N) bool { return r.has(v) }

// Attrs returns the live edge data toward neighbor v.
// Returns ErrEdgeNotFound if v is not adjacent.
func (r *AdjacencyRow[N]) Attrs(v N) (Attrs, error) {
	if a, ok := r.data(v); ok {
		return a, nil
	}
	return nil, errEdge(r.node, v)
}

// All iterates (neighbor, edge data) pairs in insertion order.
func (r *AdjacencyRow[N]) All() iter.Seq2[N, Attrs] { return r.seq() }

// List returns all neighbors in insertion order, materialized.
func (r *AdjacencyRow[N]) List() []N {
	out := make([]N, 0, r.size())
	for n := range r.seq() {
		out = append(out, n)
	}
	return out
}

// newSimpleRow builds a row view over a simple adjacency row.
func newSimpleRow[N comparable](n N, row *ordMap[N, Attrs]) *AdjacencyRow[N] {
	return &AdjacencyRow[N]{
		node: n,
		size: row.Len,
		has:  row.Has,
		data: row.Get,
		seq:  row.All,
	}
}

// newMultiRow builds a row view over a multigraph adjacency row,
// surfacing the lowest-keyed parallel edge per neighbor.
func newMultiRow[N comparable](n N, row *ordMap[N, *ordMap[int, Attrs]]) *AdjacencyRow[N] {
	first := func(v N) (Attrs, bool) {
		kd, ok := row.Get(v)
		if !ok || kd.Len() == 0 {
			return nil, false
		}
		key := -1
		for k := range kd.All() {
			if key < 0 || k < key {
				key = k
			}
		}
		a, _ := kd.Get(key)
		return a, true
	}
	return &AdjacencyRow[N]{
		node: n,
		size: row.Len,
		has:  row.Has,
		data: first,
		seq: func() iter.Seq2[N, Attrs] {
			return func(yield func(N, Attrs) bool) {
				for v := range row.All() {
					a, _ := first(v)
					if !yield(v, a) {
						return
					}
				}
			}
		},
	}
}

// newFilteredRow wraps inner, hiding neighbors rejected by keep.
// Used by subgraph views; Len is O(row) because membership is filtered.
func newFilteredRow[N comparable](inner *AdjacencyRow[N], keep func(N) bool) *AdjacencyRow[N] {
	seq := func() iter.Seq2[N, Attrs] {
		return func(yield func(N, Attrs) bool) {
			for v, a := range inner.All() {
				if !keep(v) {
					continue
				}
				if !yield(v, a) {
					return
				}
			}
		}
	}
	return &AdjacencyRow[N]{
		node: inner.node,
		size: func() int {
			count := 0
			for range seq() {
				count++
			}
			return count
		},
		has: func(v N) bool { return keep(v) && inner.has(v) },
		data: func(v N) (Attrs, bool) {
			if !keep(v) {
				return nil, false
			}
			return inner.data(v)
		},
		seq: seq,
	}
}

// AdjacencyView is the lazy node → AdjacencyRow projection.
type AdjacencyView[N comparable] struct {
	order func() []N
	size  func() int
	row   func(N) (*AdjacencyRow[N], error)
}

// Len returns the number of nodes. Complexity: O(1).
func (v *AdjacencyView[N]) Len() int { return v.size() }

// Row returns the adjacency row of n.
// Returns ErrNodeNotFound if n is absent.
func (v *AdjacencyView[N]) Row(n N) (*AdjacencyRow[N], error) { return v.row(n) }

// All iterates (node, row) pairs in node insertion order.
func (v *AdjacencyView[N]) All() iter.Seq2[N, *AdjacencyRow[N]] {
	return func(yield func(N, *AdjacencyRow[N]) bool) {
		for _, n := range v.order() {
			row, err := v.row(n)
			if err != nil {
				continue
			}
			if !yield(n, row) {
				return
			}
		}
	}
}

// EdgeView is a lazy projection of the edge set. Each undirected edge
// is reported exactly once, with endpoints ordered by first discovery;
// directed views report every arc. Multigraph views set Edge.Key.
type EdgeView[N comparable] struct {
	count func() int
	has   func(u, v N) bool
	data  func(u, v N) (Attrs, bool)
	seq   func() iter.Seq[Edge[N]]
}

// Len returns the number of edges. Complexity: O(1).
func (v *EdgeView[N]) Len() int { return v.count() }

// Contains reports whether a u→v edge exists. Complexity: O(1).
func (v *EdgeView[N]) Contains(u, vv N) bool { return v.has(u, vv) }

// Attrs returns the live edge data of (u,v) — the lowest-keyed parallel
// edge for multigraphs. Returns ErrEdgeNotFound if absent.
func (v *EdgeView[N]) Attrs(u, vv N) (Attrs, error) {
	if a, ok := v.data(u, vv); ok {
		return a, nil
	}
	return nil, errEdge(u, vv)
}

// All iterates edges in deterministic insertion-derived order.
func (v *EdgeView[N]) All() iter.Seq[Edge[N]] { return v.seq() }

// List returns all edges, materialized. Complexity: O(E).
func (v *EdgeView[N]) List() []Edge[N] {
	out := make([]Edge[N], 0, v.count())
	for e := range v.seq() {
		out = append(out, e)
	}
	return out
}

// DegreeView is the lazy (node, degree) projection.
type DegreeView[N comparable] struct {
	order func() []N
	deg   func(N) (int, error)
	wdeg  func(n N, key string, def float64) (float64, error)
}

// Get returns the degree of n (single-node strict path).
// Returns ErrNodeNotFound if n is absent.
func (v *DegreeView[N]) Get(n N) (int, error) { return v.deg(n) }

// All iterates (node, degree) pairs in node insertion order.
func (v *DegreeView[N]) All() iter.Seq2[N, int] {
	return func(yield func(N, int) bool) {
		for _, n := range v.order() {
			d, err := v.deg(n)
			if err != nil {
				continue
			}
			if !yield(n, d) {
				return
			}
		}
	}
}

// Select iterates (node, degree) for the members of bunch present in
// the graph, in bunch order, silently skipping absent nodes
// (bunch filtering path).
func (v *DegreeView[N]) Select(bunch ...N) iter.Seq2[N, int] {
	return func(yield func(N, int) bool) {
		for _, n := range bunch {
			d, err := v.deg(n)
			if err != nil {
				continue
			}
			if !yield(n, d) {
				return
			}
		}
	}
}

// WeightedGet returns the weighted degree of n: the sum of the given
// attribute over incident edges (def per missing attribute), self-loops
// counted twice on undirected variants.
// Returns ErrNodeNotFound if n is absent.
func (v *DegreeView[N]) WeightedGet(n N, key string, def float64) (float64, error) {
	return v.wdeg(n, key, def)
}

// Weighted iterates (node, weighted degree) pairs in insertion order.
func (v *DegreeView[N]) Weighted(key string, def float64) iter.Seq2[N, float64] {
	return func(yield func(N, float64) bool) {
		for _, n := range v.order() {
			d, err := v.wdeg(n, key, def)
			if err != nil {
				continue
			}
			if !yield(n, d) {
				return
			}
		}
	}
}
