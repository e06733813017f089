// Package core: Graph, the undirected simple variant.
//
// One adjacency store holds both orientations: every (u,v) entry has a
// mirrored (v,u) entry pointing at the same Attrs object, so edge data
// mutated through either endpoint's row is visible from the other.
// No parallel edges are representable; re-adding an existing edge
// merges attributes (last write wins). Self-loops are stored once and
// contribute 2 to degree, the classic convention.

package core

import "iter"

// Graph is an undirected graph without parallel edges.
//
// Nodes are any comparable type; node and adjacency iteration follow
// insertion order. The zero value is not usable; construct with
// NewGraph.
type Graph[N comparable] struct {
	attrs Attrs
	nodes *ordMap[N, Attrs]
	adj   *adjacency[N]
	size  int // number of edges
}

// NewGraph creates an empty undirected simple graph.
// Complexity: O(len(opts)).
func NewGraph[N comparable](opts ...GraphOption) *Graph[N] {
	return &Graph[N]{
		attrs: applyOptions(opts),
		nodes: newOrdMap[N, Attrs](),
		adj:   newAdjacency[N](),
	}
}

// IsDirected reports false: edges are unordered pairs.
func (g *Graph[N]) IsDirected() bool { return false }

// IsMultigraph reports false: no parallel edges.
func (g *Graph[N]) IsMultigraph() bool { return false }

// GraphAttrs returns the live graph-level attribute dictionary.
func (g *Graph[N]) GraphAttrs() Attrs { return g.attrs }

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph[N]) NodeCount() int { return g.nodes.Len() }

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph[N]) EdgeCount() int { return g.size }

// HasNode reports node membership. Complexity: O(1).
func (g *Graph[N]) HasNode(n N) bool { return g.nodes.Has(n) }

// HasEdge reports whether an edge joins u and v (either order).
// Complexity: O(1).
func (g *Graph[N]) HasEdge(u, v N) bool {
	_, ok := g.adj.edge(u, v)
	return ok
}

// AddNode inserts n if absent (idempotent) and merges attrs into its
// attribute dictionary. Complexity: O(1) amortized.
func (g *Graph[N]) AddNode(n N, attrs ...Attrs) {
	data, ok := g.nodes.Get(n)
	if !ok {
		data = Attrs{}
		g.nodes.Set(n, data)
		g.adj.ensureRow(n)
	}
	mergeAttrs(data, attrs)
}

// AddNodes inserts every node of ns, skipping those already present.
// Complexity: O(len(ns)).
func (g *Graph[N]) AddNodes(ns ...N) {
	for _, n := range ns {
		g.AddNode(n)
	}
}

// RemoveNode deletes n, its attribute dictionary, and every incident
// edge (mirrors included). Returns ErrNodeNotFound if n is absent.
// Complexity: O(deg(n)).
func (g *Graph[N]) RemoveNode(n N) error {
	row, ok := g.adj.row(n)
	if !ok {
		return errNode(n)
	}
	// Unlink the mirror entry in every neighbor's row.
	for _, v := range row.Keys() {
		if v != n {
			g.adj.unlink(v, n)
		}
	}
	g.size -= row.Len()
	g.adj.dropRow(n)
	g.nodes.Delete(n)
	return nil
}

// RemoveNodes deletes every node of ns, silently skipping absent ones
// (bunch filtering path). Complexity: O(Σ deg).
func (g *Graph[N]) RemoveNodes(ns ...N) {
	for _, n := range ns {
		_ = g.RemoveNode(n) // absent nodes are skipped by policy
	}
}

// AddEdge joins u and v, creating missing endpoints; it never fails for
// missing-node reasons. If the edge already exists, attrs are merged
// into its data (last write wins) and no duplicate is created. The
// mirrored adjacency entries share one Attrs object.
// Complexity: O(1) amortized.
func (g *Graph[N]) AddEdge(u, v N, attrs ...Attrs) {
	g.AddNode(u)
	g.AddNode(v)
	data, ok := g.adj.edge(u, v)
	if !ok {
		data = Attrs{}
		g.adj.link(u, v, data)
		if u != v {
			g.adj.link(v, u, data) // mirror shares the same Attrs
		}
		g.size++
	}
	mergeAttrs(data, attrs)
}

// AddEdges inserts every (u,v) pair of edges. Complexity: O(len(edges)).
func (g *Graph[N]) AddEdges(edges ...[2]N) {
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
}

// RemoveEdge deletes the edge joining u and v together with its mirror.
// Returns ErrEdgeNotFound if no such edge exists. Complexity: O(1).
func (g *Graph[N]) RemoveEdge(u, v N) error {
	if !g.adj.unlink(u, v) {
		return errEdge(u, v)
	}
	if u != v {
		g.adj.unlink(v, u)
	}
	g.size--
	return nil
}

// RemoveEdges deletes every (u,v) pair of edges, silently skipping
// missing ones. Complexity: O(len(edges)).
func (g *Graph[N]) RemoveEdges(edges ...[2]N) {
	for _, e := range edges {
		_ = g.RemoveEdge(e[0], e[1])
	}
}

// Neighbors returns the live adjacency row of n.
// Returns ErrNodeNotFound if n is absent. Complexity: O(1).
func (g *Graph[N]) Neighbors(n N) (*AdjacencyRow[N], error) {
	row, ok := g.adj.row(n)
	if !ok {
		return nil, errNode(n)
	}
	return newSimpleRow(n, row), nil
}

// Degree returns the number of edge endpoints incident to n; a
// self-loop contributes 2. Returns ErrNodeNotFound if n is absent.
// Complexity: O(1).
func (g *Graph[N]) Degree(n N) (int, error) {
	row, ok := g.adj.row(n)
	if !ok {
		return 0, errNode(n)
	}
	d := row.Len()
	if row.Has(n) {
		d++ // self-loop counts twice
	}
	return d, nil
}

// WeightedDegree sums the given edge attribute over edges incident to
// n, using def per edge where the attribute is absent; a self-loop's
// weight counts twice. Returns ErrNodeNotFound if n is absent.
// Complexity: O(deg(n)).
func (g *Graph[N]) WeightedDegree(n N, key string, def float64) (float64, error) {
	row, ok := g.adj.row(n)
	if !ok {
		return 0, errNode(n)
	}
	var sum float64
	for v, data := range row.All() {
		w := data.Float(key, def)
		sum += w
		if v == n {
			sum += w // self-loop counts twice
		}
	}
	return sum, nil
}

// NodeAttrs returns the live attribute dictionary of n.
// Returns ErrNodeNotFound if n is absent. Complexity: O(1).
func (g *Graph[N]) NodeAttrs(n N) (Attrs, error) {
	data, ok := g.nodes.Get(n)
	if !ok {
		return nil, errNode(n)
	}
	return data, nil
}

// EdgeAttrs returns the live attribute dictionary of the (u,v) edge;
// (u,v) and (v,u) name the same object.
// Returns ErrEdgeNotFound if no such edge exists. Complexity: O(1).
func (g *Graph[N]) EdgeAttrs(u, v N) (Attrs, error) {
	data, ok := g.adj.edge(u, v)
	if !ok {
		return nil, errEdge(u, v)
	}
	return data, nil
}

// Nodes returns the lazy node view.
func (g *Graph[N]) Nodes() *NodeView[N] { return &NodeView[N]{nodes: g.nodes} }

// Adjacency returns the lazy node → row view.
func (g *Graph[N]) Adjacency() *AdjacencyView[N] {
	return &AdjacencyView[N]{
		order: g.nodes.Keys,
		size:  g.nodes.Len,
		row:   g.Neighbors,
	}
}

// Edges returns the lazy edge view; each edge is reported once, with
// endpoints ordered by first discovery in node insertion order.
func (g *Graph[N]) Edges() *EdgeView[N] {
	return &EdgeView[N]{
		count: func() int { return g.size },
		has:   g.HasEdge,
		data:  g.adj.edge,
		seq:   g.edgeSeq,
	}
}

// edgeSeq yields each undirected edge exactly once: rows are scanned in
// node insertion order and a mirror is suppressed once its first
// endpoint has been fully scanned.
func (g *Graph[N]) edgeSeq() iter.Seq[Edge[N]] {
	return func(yield func(Edge[N]) bool) {
		seen := make(map[N]struct{}, g.nodes.Len())
		for u, row := range g.adj.rows.All() {
			for v, data := range row.All() {
				if _, done := seen[v]; done {
					continue
				}
				if !yield(Edge[N]{U: u, V: v, Attrs: data}) {
					return
				}
			}
			seen[u] = struct{}{}
		}
	}
}

// Degrees returns the lazy (node, degree) view.
func (g *Graph[N]) Degrees() *DegreeView[N] {
	return &DegreeView[N]{
		order: g.nodes.Keys,
		deg:   g.Degree,
		wdeg:  g.WeightedDegree,
	}
}

// Copy returns an independent graph: fresh node and edge attribute
// dictionaries, fresh structural stores, same insertion order.
// Complexity: O(V + E).
func (g *Graph[N]) Copy() *Graph[N] {
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

// Subgraph returns a read-through view over the nodes of bunch present
// in the graph (absent ones silently skipped). Attribute dictionaries
// are shared with the parent; the view has no mutation methods — use
// Copy on the view for an independent graph. Complexity: O(len(bunch)).
func (g *Graph[N]) Subgraph(bunch ...N) *Subgraph[N] {
	return newSubgraph(Interface[N](g), g.Nodes().Filter(bunch...))
}

// Clear removes all nodes, edges, and graph attributes. Complexity: O(1).
func (g *Graph[N]) Clear() {
	g.attrs = Attrs{}
	g.nodes = newOrdMap[N, Attrs]()
	g.adj = newAdjacency[N]()
	g.size = 0
}

// FreshCopy returns a new empty undirected simple graph.
func (g *Graph[N]) FreshCopy() Interface[N] { return NewGraph[N]() }

var _ Interface[int] = (*Graph[int])(nil)
