// Package core: conversions between the four graph variants.
//
// Direction changes copy attribute dictionaries instead of sharing
// them: once two opposite arcs exist they can be edited independently,
// so aliasing across a conversion would be a trap. Collapsing
// conversions (multi → simple, directed → undirected) merge attributes
// last-write-wins in iteration order; the policy is deliberate and
// documented here rather than configurable.

package core

// ToDirected returns a DiGraph where every undirected edge is
// materialized as two opposite arcs carrying independent attribute
// copies. Complexity: O(V + E).
func (g *Graph[N]) ToDirected() *DiGraph[N] {
	out := NewDiGraph[N]()
	out.attrs = g.attrs.Clone()
	for n, data := range g.nodes.All() {
		out.AddNode(n, data.Clone())
	}
	for e := range g.edgeSeq() {
		out.AddEdge(e.U, e.V, e.Attrs.Clone())
		if e.U != e.V {
			out.AddEdge(e.V, e.U, e.Attrs.Clone())
		}
	}
	return out
}

// ToUndirected returns a Graph where u→v and v→u merge into one
// undirected edge. When both directions exist with conflicting
// attributes, the later-processed arc wins (last write wins).
// Complexity: O(V + E).
func (g *DiGraph[N]) ToUndirected() *Graph[N] {
	out := NewGraph[N]()
	out.attrs = g.attrs.Clone()
	for n, data := range g.nodes.All() {
		out.AddNode(n, data.Clone())
	}
	for e := range g.edgeSeq() {
		out.AddEdge(e.U, e.V, e.Attrs.Clone())
	}
	return out
}

// ToDirected returns a MultiDiGraph where every undirected parallel
// edge becomes two opposite arcs under the same key, with independent
// attribute copies. Complexity: O(V + E).
func (g *MultiGraph[N]) ToDirected() *MultiDiGraph[N] {
	out := NewMultiDiGraph[N]()
	out.attrs = g.attrs.Clone()
	for n, data := range g.nodes.All() {
		out.AddNode(n, data.Clone())
	}
	for e := range g.edgeSeq() {
		out.AddEdgeWithKey(e.U, e.V, e.Key, e.Attrs.Clone())
		if e.U != e.V {
			out.AddEdgeWithKey(e.V, e.U, e.Key, e.Attrs.Clone())
		}
	}
	return out
}

// ToUndirected returns a MultiGraph where arcs merge into undirected
// parallel edges under their keys. Opposite arcs carrying the same key
// collapse last-write-wins. Complexity: O(V + E).
func (g *MultiDiGraph[N]) ToUndirected() *MultiGraph[N] {
	out := NewMultiGraph[N]()
	out.attrs = g.attrs.Clone()
	for n, data := range g.nodes.All() {
		out.AddNode(n, data.Clone())
	}
	for e := range g.edgeSeq() {
		out.AddEdgeWithKey(e.U, e.V, e.Key, e.Attrs.Clone())
	}
	return out
}

// NewGraphFrom copy-constructs an undirected simple graph from any
// variant: parallel edges collapse and opposite arcs merge, attributes
// last-write-wins in the source's edge order. Complexity: O(V + E).
func NewGraphFrom[N comparable](src Interface[N], opts ...GraphOption) *Graph[N] {
	out := NewGraph[N]()
	out.attrs = src.GraphAttrs().Clone()
	for _, opt := range opts {
		opt(out.attrs)
	}
	for n, data := range src.Nodes().All() {
		out.AddNode(n, data.Clone())
	}
	for e := range src.Edges().All() {
		out.AddEdge(e.U, e.V, e.Attrs.Clone())
	}
	return out
}

// NewDiGraphFrom copy-constructs a directed simple graph from any
// variant. Undirected sources contribute two opposite arcs per edge;
// parallel edges collapse last-write-wins. Complexity: O(V + E).
func NewDiGraphFrom[N comparable](src Interface[N], opts ...GraphOption) *DiGraph[N] {
	out := NewDiGraph[N]()
	out.attrs = src.GraphAttrs().Clone()
	for _, opt := range opts {
		opt(out.attrs)
	}
	for n, data := range src.Nodes().All() {
		out.AddNode(n, data.Clone())
	}
	symmetrize := !src.IsDirected()
	for e := range src.Edges().All() {
		out.AddEdge(e.U, e.V, e.Attrs.Clone())
		if symmetrize && e.U != e.V {
			out.AddEdge(e.V, e.U, e.Attrs.Clone())
		}
	}
	return out
}

// NewMultiGraphFrom copy-constructs an undirected multigraph from any
// variant, preserving keys of multigraph sources (simple sources get
// key 0). Opposite arcs under one key collapse last-write-wins.
// Complexity: O(V + E).
func NewMultiGraphFrom[N comparable](src Interface[N], opts ...GraphOption) *MultiGraph[N] {
	out := NewMultiGraph[N]()
	out.attrs = src.GraphAttrs().Clone()
	for _, opt := range opts {
		opt(out.attrs)
	}
	for n, data := range src.Nodes().All() {
		out.AddNode(n, data.Clone())
	}
	for e := range src.Edges().All() {
		out.AddEdgeWithKey(e.U, e.V, e.Key, e.Attrs.Clone())
	}
	return out
}

// NewMultiDiGraphFrom copy-constructs a directed multigraph from any
// variant, preserving keys of multigraph sources. Undirected sources
// contribute two opposite arcs per edge under the same key.
// Complexity: O(V + E).
func NewMultiDiGraphFrom[N comparable](src Interface[N], opts ...GraphOption) *MultiDiGraph[N] {
	out := NewMultiDiGraph[N]()
	out.attrs = src.GraphAttrs().Clone()
	for _, opt := range opts {
		opt(out.attrs)
	}
	for n, data := range src.Nodes().All() {
		out.AddNode(n, data.Clone())
	}
	symmetrize := !src.IsDirected()
	for e := range src.Edges().All() {
		out.AddEdgeWithKey(e.U, e.V, e.Key, e.Attrs.Clone())
		if symmetrize && e.U != e.V {
			out.AddEdgeWithKey(e.V, e.U, e.Key, e.Attrs.Clone())
		}
	}
	return out
}

// NewGraphFromEdges seeds an undirected simple graph from an edge list.
func NewGraphFromEdges[N comparable](edges [][2]N, opts ...GraphOption) *Graph[N] {
	g := NewGraph[N](opts...)
	g.AddEdges(edges...)
	return g
}

// NewDiGraphFromEdges seeds a directed simple graph from an arc list.
func NewDiGraphFromEdges[N comparable](edges [][2]N, opts ...GraphOption) *DiGraph[N] {
	g := NewDiGraph[N](opts...)
	g.AddEdges(edges...)
	return g
}

// NewMultiGraphFromEdges seeds an undirected multigraph from an edge
// list; repeated pairs become parallel edges.
func NewMultiGraphFromEdges[N comparable](edges [][2]N, opts ...GraphOption) *MultiGraph[N] {
	g := NewMultiGraph[N](opts...)
	g.AddEdges(edges...)
	return g
}

// NewMultiDiGraphFromEdges seeds a directed multigraph from an arc
// list; repeated pairs become parallel arcs.
func NewMultiDiGraphFromEdges[N comparable](edges [][2]N, opts ...GraphOption) *MultiDiGraph[N] {
	g := NewMultiDiGraph[N](opts...)
	g.AddEdges(edges...)
	return g
}
