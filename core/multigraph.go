// Package core: MultiGraph, the undirected variant with parallel edges.
//
// Each adjacency entry is a key dictionary: (u,v) → (key → Attrs).
// Keys are non-negative ints unique per pair; auto-assignment picks the
// smallest unused one. The key dictionary object is shared between the
// mirrored (u,v) and (v,u) entries, so parallel-edge data is one
// logical record regardless of the endpoint it is reached from.

package core

import "iter"

// MultiGraph is an undirected graph supporting parallel edges.
//
// The zero value is not usable; construct with NewMultiGraph.
type MultiGraph[N comparable] struct {
	attrs Attrs
	nodes *ordMap[N, Attrs]
	adj   *multiAdjacency[N]
	size  int // number of edges, parallel edges counted individually
}

// NewMultiGraph creates an empty undirected multigraph.
// Complexity: O(len(opts)).
func NewMultiGraph[N comparable](opts ...GraphOption) *MultiGraph[N] {
	return &MultiGraph[N]{
		attrs: applyOptions(opts),
		nodes: newOrdMap[N, Attrs](),
		adj:   newMultiAdjacency[N](),
	}
}

// IsDirected reports false: edges are unordered pairs.
func (g *MultiGraph[N]) IsDirected() bool { return false }

// IsMultigraph reports true: parallel edges are representable.
func (g *MultiGraph[N]) IsMultigraph() bool { return true }

// GraphAttrs returns the live graph-level attribute dictionary.
func (g *MultiGraph[N]) GraphAttrs() Attrs { return g.attrs }

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *MultiGraph[N]) NodeCount() int { return g.nodes.Len() }

// EdgeCount returns the number of edges, parallel edges counted
// individually. Complexity: O(1).
func (g *MultiGraph[N]) EdgeCount() int { return g.size }

// HasNode reports node membership. Complexity: O(1).
func (g *MultiGraph[N]) HasNode(n N) bool { return g.nodes.Has(n) }

// HasEdge reports whether at least one edge joins u and v.
// Complexity: O(1).
func (g *MultiGraph[N]) HasEdge(u, v N) bool {
	kd, ok := g.adj.keyDict(u, v)
	return ok && kd.Len() > 0
}

// HasEdgeWithKey reports whether the (u,v) edge with the given key
// exists. Complexity: O(1).
func (g *MultiGraph[N]) HasEdgeWithKey(u, v N, key int) bool {
	kd, ok := g.adj.keyDict(u, v)
	return ok && kd.Has(key)
}

// AddNode inserts n if absent (idempotent) and merges attrs into its
// attribute dictionary. Complexity: O(1) amortized.
func (g *MultiGraph[N]) AddNode(n N, attrs ...Attrs) {
	data, ok := g.nodes.Get(n)
	if !ok {
		data = Attrs{}
		g.nodes.Set(n, data)
		g.adj.ensureRow(n)
	}
	mergeAttrs(data, attrs)
}

// AddNodes inserts every node of ns, skipping those already present.
func (g *MultiGraph[N]) AddNodes(ns ...N) {
	for _, n := range ns {
		g.AddNode(n)
	}
}

// RemoveNode deletes n, its attribute dictionary, and every incident
// edge including all parallel ones. Returns ErrNodeNotFound if n is
// absent. Complexity: O(deg(n)).
func (g *MultiGraph[N]) RemoveNode(n N) error {
	row, ok := g.adj.row(n)
	if !ok {
		return errNode(n)
	}
	for v, kd := range row.All() {
		g.size -= kd.Len()
		if v != n {
			g.adj.unlink(v, n)
		}
	}
	g.adj.dropRow(n)
	g.nodes.Delete(n)
	return nil
}

// RemoveNodes deletes every node of ns, silently skipping absent ones.
func (g *MultiGraph[N]) RemoveNodes(ns ...N) {
	for _, n := range ns {
		_ = g.RemoveNode(n)
	}
}

// AddEdge appends a new parallel edge joining u and v, creating missing
// endpoints, with the smallest unused key for the pair; it never fails
// for missing-node reasons. Read the assigned keys back with EdgeKeys.
// Complexity: O(k) in the number of parallel edges for the pair.
func (g *MultiGraph[N]) AddEdge(u, v N, attrs ...Attrs) {
	kd := g.ensureKeyDict(u, v)
	data := Attrs{}
	mergeAttrs(data, attrs)
	kd.Set(smallestFreeKey(kd), data)
	g.size++
}

// AddEdges appends a new parallel edge for every (u,v) pair.
func (g *MultiGraph[N]) AddEdges(edges ...[2]N) {
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
}

// AddEdgeWithKey inserts the (u,v) edge under an explicit key, creating
// missing endpoints. If the key already exists for the pair, attrs are
// merged into the existing edge data (last write wins) and no edge is
// added. Complexity: O(1) amortized.
func (g *MultiGraph[N]) AddEdgeWithKey(u, v N, key int, attrs ...Attrs) {
	kd := g.ensureKeyDict(u, v)
	data, ok := kd.Get(key)
	if !ok {
		data = Attrs{}
		kd.Set(key, data)
		g.size++
	}
	mergeAttrs(data, attrs)
}

// ensureKeyDict returns the shared key dictionary for (u,v), creating
// endpoints, rows, and the mirrored entries as needed.
func (g *MultiGraph[N]) ensureKeyDict(u, v N) *ordMap[int, Attrs] {
	g.AddNode(u)
	g.AddNode(v)
	kd, ok := g.adj.keyDict(u, v)
	if !ok {
		kd = newOrdMap[int, Attrs]()
		g.adj.link(u, v, kd)
		if u != v {
			g.adj.link(v, u, kd) // mirror shares the same key dictionary
		}
	}
	return kd
}

// RemoveEdge deletes the most recently added parallel edge joining u
// and v. Returns ErrEdgeNotFound if no edge joins the pair.
// Complexity: O(1).
func (g *MultiGraph[N]) RemoveEdge(u, v N) error {
	kd, ok := g.adj.keyDict(u, v)
	if !ok || kd.Len() == 0 {
		return errEdge(u, v)
	}
	key, _, _ := kd.Last()
	kd.Delete(key)
	g.dropEmptyKeyDict(u, v, kd)
	g.size--
	return nil
}

// RemoveEdgeWithKey deletes the (u,v) edge with the given key.
// Returns ErrEdgeNotFound if no edge joins the pair, ErrKeyNotFound if
// the pair exists but the key does not. Complexity: O(1).
func (g *MultiGraph[N]) RemoveEdgeWithKey(u, v N, key int) error {
	kd, ok := g.adj.keyDict(u, v)
	if !ok || kd.Len() == 0 {
		return errEdge(u, v)
	}
	if !kd.Delete(key) {
		return errKey(u, v, key)
	}
	g.dropEmptyKeyDict(u, v, kd)
	g.size--
	return nil
}

// RemoveEdges deletes one parallel edge per (u,v) pair, silently
// skipping missing ones.
func (g *MultiGraph[N]) RemoveEdges(edges ...[2]N) {
	for _, e := range edges {
		_ = g.RemoveEdge(e[0], e[1])
	}
}

// dropEmptyKeyDict unlinks both mirrored entries once the pair's key
// dictionary is empty, keeping adjacency rows compact.
func (g *MultiGraph[N]) dropEmptyKeyDict(u, v N, kd *ordMap[int, Attrs]) {
	if kd.Len() > 0 {
		return
	}
	g.adj.unlink(u, v)
	if u != v {
		g.adj.unlink(v, u)
	}
}

// EdgeKeys returns the keys of all parallel edges joining u and v, in
// key insertion order; empty if no edge joins the pair.
// Complexity: O(k).
func (g *MultiGraph[N]) EdgeKeys(u, v N) []int {
	kd, ok := g.adj.keyDict(u, v)
	if !ok {
		return nil
	}
	return kd.Keys()
}

// EdgeCountBetween returns the number of parallel edges joining u and
// v. Complexity: O(1).
func (g *MultiGraph[N]) EdgeCountBetween(u, v N) int {
	kd, ok := g.adj.keyDict(u, v)
	if !ok {
		return 0
	}
	return kd.Len()
}

// EdgeAttrsByKey returns the live attribute dictionary of the (u,v)
// edge with the given key. Returns ErrEdgeNotFound if no edge joins the
// pair, ErrKeyNotFound if the pair exists but the key does not.
func (g *MultiGraph[N]) EdgeAttrsByKey(u, v N, key int) (Attrs, error) {
	kd, ok := g.adj.keyDict(u, v)
	if !ok || kd.Len() == 0 {
		return nil, errEdge(u, v)
	}
	data, ok := kd.Get(key)
	if !ok {
		return nil, errKey(u, v, key)
	}
	return data, nil
}

// EdgesBetween returns every parallel edge joining u and v, in key
// insertion order. Complexity: O(k).
func (g *MultiGraph[N]) EdgesBetween(u, v N) []Edge[N] {
	kd, ok := g.adj.keyDict(u, v)
	if !ok {
		return nil
	}
	out := make([]Edge[N], 0, kd.Len())
	for key, data := range kd.All() {
		out = append(out, Edge[N]{U: u, V: v, Key: key, Attrs: data})
	}
	return out
}

// Neighbors returns the live adjacency row of n; per-neighbor data is
// the lowest-keyed parallel edge. Returns ErrNodeNotFound if n is
// absent. Complexity: O(1).
func (g *MultiGraph[N]) Neighbors(n N) (*AdjacencyRow[N], error) {
	row, ok := g.adj.row(n)
	if !ok {
		return nil, errNode(n)
	}
	return newMultiRow(n, row), nil
}

// Degree returns the number of edge endpoints incident to n, parallel
// edges counted individually and self-loops twice.
// Returns ErrNodeNotFound if n is absent. Complexity: O(deg(n)).
func (g *MultiGraph[N]) Degree(n N) (int, error) {
	row, ok := g.adj.row(n)
	if !ok {
		return 0, errNode(n)
	}
	d := 0
	for v, kd := range row.All() {
		d += kd.Len()
		if v == n {
			d += kd.Len() // self-loops count twice
		}
	}
	return d, nil
}

// WeightedDegree sums the given edge attribute over all parallel edges
// incident to n, self-loops twice, def per missing attribute.
// Returns ErrNodeNotFound if n is absent. Complexity: O(deg(n)).
func (g *MultiGraph[N]) WeightedDegree(n N, key string, def float64) (float64, error) {
	row, ok := g.adj.row(n)
	if !ok {
		return 0, errNode(n)
	}
	var sum float64
	for v, kd := range row.All() {
		for _, data := range kd.All() {
			w := data.Float(key, def)
			sum += w
			if v == n {
				sum += w
			}
		}
	}
	return sum, nil
}

// NodeAttrs returns the live attribute dictionary of n.
// Returns ErrNodeNotFound if n is absent.
func (g *MultiGraph[N]) NodeAttrs(n N) (Attrs, error) {
	data, ok := g.nodes.Get(n)
	if !ok {
		return nil, errNode(n)
	}
	return data, nil
}

// Nodes returns the lazy node view.
func (g *MultiGraph[N]) Nodes() *NodeView[N] { return &NodeView[N]{nodes: g.nodes} }

// Adjacency returns the lazy node → row view.
func (g *MultiGraph[N]) Adjacency() *AdjacencyView[N] {
	return &AdjacencyView[N]{
		order: g.nodes.Keys,
		size:  g.nodes.Len,
		row:   g.Neighbors,
	}
}

// Edges returns the lazy edge view; every parallel edge is reported
// once with its key, each pair reported from its first-discovered
// endpoint.
func (g *MultiGraph[N]) Edges() *EdgeView[N] {
	return &EdgeView[N]{
		count: func() int { return g.size },
		has:   g.HasEdge,
		data: func(u, v N) (Attrs, bool) {
			row, ok := g.adj.row(u)
			if !ok {
				return nil, false
			}
			return newMultiRow(u, row).data(v)
		},
		seq: g.edgeSeq,
	}
}

// edgeSeq yields each undirected parallel edge exactly once, in node
// insertion order with key order inside each pair.
func (g *MultiGraph[N]) edgeSeq() iter.Seq[Edge[N]] {
	return func(yield func(Edge[N]) bool) {
		seen := make(map[N]struct{}, g.nodes.Len())
		for u, row := range g.adj.rows.All() {
			for v, kd := range row.All() {
				if _, done := seen[v]; done {
					continue
				}
				for key, data := range kd.All() {
					if !yield(Edge[N]{U: u, V: v, Key: key, Attrs: data}) {
						return
					}
				}
			}
			seen[u] = struct{}{}
		}
	}
}

// Degrees returns the lazy (node, degree) view.
func (g *MultiGraph[N]) Degrees() *DegreeView[N] {
	return &DegreeView[N]{
		order: g.nodes.Keys,
		deg:   g.Degree,
		wdeg:  g.WeightedDegree,
	}
}

// Copy returns an independent multigraph: fresh attribute dictionaries,
// fresh stores, same insertion and key order. Complexity: O(V + E).
func (g *MultiGraph[N]) Copy() *MultiGraph[N] {
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

// Subgraph returns a read-through view over the nodes of bunch present
// in the graph (absent ones silently skipped). Complexity: O(len(bunch)).
func (g *MultiGraph[N]) Subgraph(bunch ...N) *Subgraph[N] {
	return newSubgraph(Interface[N](g), g.Nodes().Filter(bunch...))
}

// Clear removes all nodes, edges, and graph attributes. Complexity: O(1).
func (g *MultiGraph[N]) Clear() {
	g.attrs = Attrs{}
	g.nodes = newOrdMap[N, Attrs]()
	g.adj = newMultiAdjacency[N]()
	g.size = 0
}

// FreshCopy returns a new empty undirected multigraph.
func (g *MultiGraph[N]) FreshCopy() Interface[N] { return NewMultiGraph[N]() }

var _ Interface[int] = (*MultiGraph[int])(nil)
