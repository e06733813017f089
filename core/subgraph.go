// Package core: read-through subgraph views.
//
// A Subgraph restricts a parent graph to a node set without copying
// anything: attribute dictionaries are the parent's own objects, so
// attribute edits made through the view are visible on the parent (and
// vice versa). The view deliberately has no mutation methods —
// structural changes require Copy first, which materializes an
// independent graph of the parent's variant.

package core

import "iter"

// Subgraph is a read-through projection of a parent graph onto a node
// subset. It stays live: parent mutations are visible through it.
type Subgraph[N comparable] struct {
	parent Interface[N]
	keep   map[N]struct{}
}

// newSubgraph builds a view over nodes (already filtered to members of
// parent by the caller).
func newSubgraph[N comparable](parent Interface[N], nodes []N) *Subgraph[N] {
	keep := make(map[N]struct{}, len(nodes))
	for _, n := range nodes {
		keep[n] = struct{}{}
	}
	return &Subgraph[N]{parent: parent, keep: keep}
}

// IsDirected reports the parent's directedness.
func (s *Subgraph[N]) IsDirected() bool { return s.parent.IsDirected() }

// IsMultigraph reports the parent's multigraph capability.
func (s *Subgraph[N]) IsMultigraph() bool { return s.parent.IsMultigraph() }

// GraphAttrs returns the parent's live graph attribute dictionary.
func (s *Subgraph[N]) GraphAttrs() Attrs { return s.parent.GraphAttrs() }

// HasNode reports whether n is in the view and still in the parent.
// Complexity: O(1).
func (s *Subgraph[N]) HasNode(n N) bool {
	_, ok := s.keep[n]
	return ok && s.parent.HasNode(n)
}

// HasEdge reports whether both endpoints are in the view and the parent
// has the edge. Complexity: O(1).
func (s *Subgraph[N]) HasEdge(u, v N) bool {
	return s.HasNode(u) && s.HasNode(v) && s.parent.HasEdge(u, v)
}

// NodeCount returns the number of view nodes still present in the
// parent. Complexity: O(len(view)).
func (s *Subgraph[N]) NodeCount() int {
	count := 0
	for range s.AllNodes() {
		count++
	}
	return count
}

// EdgeCount returns the number of parent edges with both endpoints in
// the view. Complexity: O(E).
func (s *Subgraph[N]) EdgeCount() int {
	count := 0
	for range s.edgeSeq() {
		count++
	}
	return count
}

// AllNodes iterates (node, attrs) for view nodes, in the parent's node
// insertion order; attrs are the parent's live dictionaries.
func (s *Subgraph[N]) AllNodes() iter.Seq2[N, Attrs] {
	return func(yield func(N, Attrs) bool) {
		for n, data := range s.parent.Nodes().All() {
			if _, ok := s.keep[n]; !ok {
				continue
			}
			if !yield(n, data) {
				return
			}
		}
	}
}

// NodeList returns the view nodes in parent insertion order,
// materialized.
func (s *Subgraph[N]) NodeList() []N {
	out := make([]N, 0, len(s.keep))
	for n := range s.AllNodes() {
		out = append(out, n)
	}
	return out
}

// NodeAttrs returns the parent's live attribute dictionary of n.
// Returns ErrNodeNotFound if n is outside the view.
func (s *Subgraph[N]) NodeAttrs(n N) (Attrs, error) {
	if !s.HasNode(n) {
		return nil, errNode(n)
	}
	return s.parent.Nodes().Attrs(n)
}

// Neighbors returns the parent's adjacency row of n filtered to view
// members. Returns ErrNodeNotFound if n is outside the view.
func (s *Subgraph[N]) Neighbors(n N) (*AdjacencyRow[N], error) {
	if !s.HasNode(n) {
		return nil, errNode(n)
	}
	row, err := s.parent.Neighbors(n)
	if err != nil {
		return nil, err
	}
	return newFilteredRow(row, s.HasNode), nil
}

// Degree returns the number of view edge endpoints incident to n,
// following the parent variant's self-loop convention.
// Returns ErrNodeNotFound if n is outside the view. Complexity: O(E).
func (s *Subgraph[N]) Degree(n N) (int, error) {
	if !s.HasNode(n) {
		return 0, errNode(n)
	}
	d := 0
	for e := range s.edgeSeq() {
		if e.U == n {
			d++
		}
		if e.V == n {
			d++
		}
	}
	return d, nil
}

// Edges returns the lazy view over parent edges with both endpoints in
// the view. Len and iteration are O(E) scans of the parent edge set.
func (s *Subgraph[N]) Edges() *EdgeView[N] {
	return &EdgeView[N]{
		count: s.EdgeCount,
		has:   s.HasEdge,
		data: func(u, v N) (Attrs, bool) {
			if !s.HasNode(u) || !s.HasNode(v) {
				return nil, false
			}
			a, err := s.parent.Edges().Attrs(u, v)
			if err != nil {
				return nil, false
			}
			return a, true
		},
		seq: s.edgeSeq,
	}
}

// edgeSeq yields parent edges with both endpoints in the view, in the
// parent's edge order.
func (s *Subgraph[N]) edgeSeq() iter.Seq[Edge[N]] {
	return func(yield func(Edge[N]) bool) {
		for e := range s.parent.Edges().All() {
			if !s.HasNode(e.U) || !s.HasNode(e.V) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Copy materializes the view as an independent graph of the parent's
// concrete variant: fresh attribute dictionaries, fresh stores,
// multigraph keys preserved. Complexity: O(V + E).
func (s *Subgraph[N]) Copy() Interface[N] {
	out := s.parent.FreshCopy()
	for n, data := range s.AllNodes() {
		out.AddNode(n, data.Clone())
	}
	for e := range s.edgeSeq() {
		switch t := any(out).(type) {
		case *MultiGraph[N]:
			t.AddEdgeWithKey(e.U, e.V, e.Key, e.Attrs.Clone())
		case *MultiDiGraph[N]:
			t.AddEdgeWithKey(e.U, e.V, e.Key, e.Attrs.Clone())
		default:
			out.AddEdge(e.U, e.V, e.Attrs.Clone())
		}
	}
	return out
}
