// Package core: DiGraph, the directed simple variant.
//
// Two adjacency stores are kept in agreement by every mutator:
// v ∈ succ[u] iff u ∈ pred[v], both entries pointing at the same Attrs
// object. The dual store buys O(1) predecessor queries and, more
// importantly, O(1) in-place reversal: ReverseInPlace swaps the two
// store pointers instead of re-inserting every edge.

package core

import "iter"

// DiGraph is a directed graph without parallel edges.
//
// The zero value is not usable; construct with NewDiGraph.
type DiGraph[N comparable] struct {
	attrs Attrs
	nodes *ordMap[N, Attrs]
	succ  *adjacency[N]
	pred  *adjacency[N]
	size  int // number of arcs
}

// NewDiGraph creates an empty directed simple graph.
// Complexity: O(len(opts)).
func NewDiGraph[N comparable](opts ...GraphOption) *DiGraph[N] {
	return &DiGraph[N]{
		attrs: applyOptions(opts),
		nodes: newOrdMap[N, Attrs](),
		succ:  newAdjacency[N](),
		pred:  newAdjacency[N](),
	}
}

// IsDirected reports true: edges are ordered pairs.
func (g *DiGraph[N]) IsDirected() bool { return true }

// IsMultigraph reports false: no parallel edges.
func (g *DiGraph[N]) IsMultigraph() bool { return false }

// GraphAttrs returns the live graph-level attribute dictionary.
func (g *DiGraph[N]) GraphAttrs() Attrs { return g.attrs }

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *DiGraph[N]) NodeCount() int { return g.nodes.Len() }

// EdgeCount returns the number of arcs. Complexity: O(1).
func (g *DiGraph[N]) EdgeCount() int { return g.size }

// HasNode reports node membership. Complexity: O(1).
func (g *DiGraph[N]) HasNode(n N) bool { return g.nodes.Has(n) }

// HasEdge reports whether the arc u→v exists (direction matters).
// Complexity: O(1).
func (g *DiGraph[N]) HasEdge(u, v N) bool {
	_, ok := g.succ.edge(u, v)
	return ok
}

// AddNode inserts n if absent (idempotent) and merges attrs into its
// attribute dictionary. Complexity: O(1) amortized.
func (g *DiGraph[N]) AddNode(n N, attrs ...Attrs) {
	data, ok := g.nodes.Get(n)
	if !ok {
		data = Attrs{}
		g.nodes.Set(n, data)
		g.succ.ensureRow(n)
		g.pred.ensureRow(n)
	}
	mergeAttrs(data, attrs)
}

// AddNodes inserts every node of ns, skipping those already present.
func (g *DiGraph[N]) AddNodes(ns ...N) {
	for _, n := range ns {
		g.AddNode(n)
	}
}

// RemoveNode deletes n, its attribute dictionary, and every incident
// arc in both stores. Returns ErrNodeNotFound if n is absent.
// Complexity: O(deg(n)).
func (g *DiGraph[N]) RemoveNode(n N) error {
	succRow, ok := g.succ.row(n)
	if !ok {
		return errNode(n)
	}
	predRow, _ := g.pred.row(n)
	// Drop the dual references: pred entries of successors, succ
	// entries of predecessors.
	for _, v := range succRow.Keys() {
		g.pred.unlink(v, n)
	}
	for _, u := range predRow.Keys() {
		g.succ.unlink(u, n)
	}
	g.size -= succRow.Len() + predRow.Len()
	if succRow.Has(n) {
		g.size++ // a self-loop sits in both rows but is one arc
	}
	g.succ.dropRow(n)
	g.pred.dropRow(n)
	g.nodes.Delete(n)
	return nil
}

// RemoveNodes deletes every node of ns, silently skipping absent ones.
func (g *DiGraph[N]) RemoveNodes(ns ...N) {
	for _, n := range ns {
		_ = g.RemoveNode(n)
	}
}

// AddEdge inserts the arc u→v, creating missing endpoints; it never
// fails for missing-node reasons. An existing arc has attrs merged in
// (last write wins). Both stores reference the same Attrs object.
// Complexity: O(1) amortized.
func (g *DiGraph[N]) AddEdge(u, v N, attrs ...Attrs) {
	g.AddNode(u)
	g.AddNode(v)
	data, ok := g.succ.edge(u, v)
	if !ok {
		data = Attrs{}
		g.succ.link(u, v, data)
		g.pred.link(v, u, data) // dual entry shares the same Attrs
		g.size++
	}
	mergeAttrs(data, attrs)
}

// AddEdges inserts every (u,v) arc. Complexity: O(len(edges)).
func (g *DiGraph[N]) AddEdges(edges ...[2]N) {
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
}

// RemoveEdge deletes the arc u→v from both stores.
// Returns ErrEdgeNotFound if no such arc exists. Complexity: O(1).
func (g *DiGraph[N]) RemoveEdge(u, v N) error {
	if !g.succ.unlink(u, v) {
		return errEdge(u, v)
	}
	g.pred.unlink(v, u)
	g.size--
	return nil
}

// RemoveEdges deletes every (u,v) arc, silently skipping missing ones.
func (g *DiGraph[N]) RemoveEdges(edges ...[2]N) {
	for _, e := range edges {
		_ = g.RemoveEdge(e[0], e[1])
	}
}

// Neighbors returns the successor row of n; for directed graphs the
// neighbor view is the successor view. Returns ErrNodeNotFound if n is
// absent. Complexity: O(1).
func (g *DiGraph[N]) Neighbors(n N) (*AdjacencyRow[N], error) {
	return g.Successors(n)
}

// Successors returns the live row of arcs leaving n.
// Returns ErrNodeNotFound if n is absent. Complexity: O(1).
func (g *DiGraph[N]) Successors(n N) (*AdjacencyRow[N], error) {
	row, ok := g.succ.row(n)
	if !ok {
		return nil, errNode(n)
	}
	return newSimpleRow(n, row), nil
}

// Predecessors returns the live row of arcs entering n.
// Returns ErrNodeNotFound if n is absent. Complexity: O(1).
func (g *DiGraph[N]) Predecessors(n N) (*AdjacencyRow[N], error) {
	row, ok := g.pred.row(n)
	if !ok {
		return nil, errNode(n)
	}
	return newSimpleRow(n, row), nil
}

// OutDegree returns the number of arcs leaving n.
// Returns ErrNodeNotFound if n is absent. Complexity: O(1).
func (g *DiGraph[N]) OutDegree(n N) (int, error) {
	row, ok := g.succ.row(n)
	if !ok {
		return 0, errNode(n)
	}
	return row.Len(), nil
}

// InDegree returns the number of arcs entering n.
// Returns ErrNodeNotFound if n is absent. Complexity: O(1).
func (g *DiGraph[N]) InDegree(n N) (int, error) {
	row, ok := g.pred.row(n)
	if !ok {
		return 0, errNode(n)
	}
	return row.Len(), nil
}

// Degree returns in-degree plus out-degree; a directed self-loop
// contributes 1 to each. Returns ErrNodeNotFound if n is absent.
// Complexity: O(1).
func (g *DiGraph[N]) Degree(n N) (int, error) {
	in, err := g.InDegree(n)
	if err != nil {
		return 0, err
	}
	out, _ := g.OutDegree(n)
	return in + out, nil
}

// WeightedDegree sums the given edge attribute over arcs incident to n
// (in plus out, so a self-loop's weight counts twice), using def where
// the attribute is absent. Returns ErrNodeNotFound if n is absent.
// Complexity: O(deg(n)).
func (g *DiGraph[N]) WeightedDegree(n N, key string, def float64) (float64, error) {
	succRow, ok := g.succ.row(n)
	if !ok {
		return 0, errNode(n)
	}
	predRow, _ := g.pred.row(n)
	var sum float64
	for _, data := range succRow.All() {
		sum += data.Float(key, def)
	}
	for _, data := range predRow.All() {
		sum += data.Float(key, def)
	}
	return sum, nil
}

// NodeAttrs returns the live attribute dictionary of n.
// Returns ErrNodeNotFound if n is absent.
func (g *DiGraph[N]) NodeAttrs(n N) (Attrs, error) {
	data, ok := g.nodes.Get(n)
	if !ok {
		return nil, errNode(n)
	}
	return data, nil
}

// EdgeAttrs returns the live attribute dictionary of the arc u→v.
// Returns ErrEdgeNotFound if no such arc exists.
func (g *DiGraph[N]) EdgeAttrs(u, v N) (Attrs, error) {
	data, ok := g.succ.edge(u, v)
	if !ok {
		return nil, errEdge(u, v)
	}
	return data, nil
}

// Nodes returns the lazy node view.
func (g *DiGraph[N]) Nodes() *NodeView[N] { return &NodeView[N]{nodes: g.nodes} }

// Adjacency returns the lazy node → successor-row view.
func (g *DiGraph[N]) Adjacency() *AdjacencyView[N] {
	return &AdjacencyView[N]{
		order: g.nodes.Keys,
		size:  g.nodes.Len,
		row:   g.Successors,
	}
}

// Edges returns the lazy view over all arcs, in node insertion order of
// the tail endpoint.
func (g *DiGraph[N]) Edges() *EdgeView[N] {
	return &EdgeView[N]{
		count: func() int { return g.size },
		has:   g.HasEdge,
		data:  g.succ.edge,
		seq:   g.edgeSeq,
	}
}

// edgeSeq yields every arc once, scanning successor rows in node
// insertion order.
func (g *DiGraph[N]) edgeSeq() iter.Seq[Edge[N]] {
	return func(yield func(Edge[N]) bool) {
		for u, row := range g.succ.rows.All() {
			for v, data := range row.All() {
				if !yield(Edge[N]{U: u, V: v, Attrs: data}) {
					return
				}
			}
		}
	}
}

// Degrees returns the lazy (node, in+out degree) view.
func (g *DiGraph[N]) Degrees() *DegreeView[N] {
	return &DegreeView[N]{
		order: g.nodes.Keys,
		deg:   g.Degree,
		wdeg:  g.WeightedDegree,
	}
}

// InDegrees returns the lazy (node, in-degree) view.
func (g *DiGraph[N]) InDegrees() *DegreeView[N] {
	return &DegreeView[N]{
		order: g.nodes.Keys,
		deg:   g.InDegree,
		wdeg: func(n N, key string, def float64) (float64, error) {
			row, ok := g.pred.row(n)
			if !ok {
				return 0, errNode(n)
			}
			var sum float64
			for _, data := range row.All() {
				sum += data.Float(key, def)
			}
			return sum, nil
		},
	}
}

// OutDegrees returns the lazy (node, out-degree) view.
func (g *DiGraph[N]) OutDegrees() *DegreeView[N] {
	return &DegreeView[N]{
		order: g.nodes.Keys,
		deg:   g.OutDegree,
		wdeg: func(n N, key string, def float64) (float64, error) {
			row, ok := g.succ.row(n)
			if !ok {
				return 0, errNode(n)
			}
			var sum float64
			for _, data := range row.All() {
				sum += data.Float(key, def)
			}
			return sum, nil
		},
	}
}

// ReverseInPlace flips the orientation of every arc by swapping the two
// adjacency stores. No edges are re-inserted. Complexity: O(1).
func (g *DiGraph[N]) ReverseInPlace() {
	g.succ, g.pred = g.pred, g.succ
}

// Reverse returns an independent graph with every arc flipped and
// attribute dictionaries copied. For the constant-time non-copying
// path use ReverseInPlace. Complexity: O(V + E).
func (g *DiGraph[N]) Reverse() *DiGraph[N] {
	out := NewDiGraph[N]()
	out.attrs = g.attrs.Clone()
	for n, data := range g.nodes.All() {
		out.AddNode(n, data.Clone())
	}
	for e := range g.edgeSeq() {
		out.AddEdge(e.V, e.U, e.Attrs.Clone())
	}
	return out
}

// Copy returns an independent graph: fresh attribute dictionaries,
// fresh structural stores, same insertion order. Complexity: O(V + E).
func (g *DiGraph[N]) Copy() *DiGraph[N] {
	out := NewDiGraph[N]()
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
// in the graph (absent ones silently skipped). Complexity: O(len(bunch)).
func (g *DiGraph[N]) Subgraph(bunch ...N) *Subgraph[N] {
	return newSubgraph(Interface[N](g), g.Nodes().Filter(bunch...))
}

// Clear removes all nodes, arcs, and graph attributes. Complexity: O(1).
func (g *DiGraph[N]) Clear() {
	g.attrs = Attrs{}
	g.nodes = newOrdMap[N, Attrs]()
	g.succ = newAdjacency[N]()
	g.pred = newAdjacency[N]()
	g.size = 0
}

// FreshCopy returns a new empty directed simple graph.
func (g *DiGraph[N]) FreshCopy() Interface[N] { return NewDiGraph[N]() }

var _ Interface[int] = (*DiGraph[int])(nil)
