// Package core: MultiDiGraph, the directed variant with parallel edges.
//
// Combines the DiGraph dual-store layout with the multigraph key
// dictionaries: succ[u][v] and pred[v][u] reference the same
// (key → Attrs) dictionary, keys unique per ordered pair. Reversal by
// pointer swap carries over from DiGraph.

package core

import "iter"

// MultiDiGraph is a directed graph supporting parallel edges.
//
// The zero value is not usable; construct with NewMultiDiGraph.
type MultiDiGraph[N comparable] struct {
	attrs Attrs
	nodes *ordMap[N, Attrs]
	succ  *multiAdjacency[N]
	pred  *multiAdjacency[N]
	size  int // number of arcs, parallel arcs counted individually
}

// NewMultiDiGraph creates an empty directed multigraph.
// Complexity: O(len(opts)).
func NewMultiDiGraph[N comparable](opts ...GraphOption) *MultiDiGraph[N] {
	return &MultiDiGraph[N]{
		attrs: applyOptions(opts),
		nodes: newOrdMap[N, Attrs](),
		succ:  newMultiAdjacency[N](),
		pred:  newMultiAdjacency[N](),
	}
}

// IsDirected reports true: edges are ordered pairs.
func (g *MultiDiGraph[N]) IsDirected() bool { return true }

// IsMultigraph reports true: parallel edges are representable.
func (g *MultiDiGraph[N]) IsMultigraph() bool { return true }

// GraphAttrs returns the live graph-level attribute dictionary.
func (g *MultiDiGraph[N]) GraphAttrs() Attrs { return g.attrs }

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *MultiDiGraph[N]) NodeCount() int { return g.nodes.Len() }

// EdgeCount returns the number of arcs, parallel arcs counted
// individually. Complexity: O(1).
func (g *MultiDiGraph[N]) EdgeCount() int { return g.size }

// HasNode reports node membership. Complexity: O(1).
func (g *MultiDiGraph[N]) HasNode(n N) bool { return g.nodes.Has(n) }

// HasEdge reports whether at least one arc u→v exists. Complexity: O(1).
func (g *MultiDiGraph[N]) HasEdge(u, v N) bool {
	kd, ok := g.succ.keyDict(u, v)
	return ok && kd.Len() > 0
}

// HasEdgeWithKey reports whether the arc u→v with the given key exists.
// Complexity: O(1).
func (g *MultiDiGraph[N]) HasEdgeWithKey(u, v N, key int) bool {
	kd, ok := g.succ.keyDict(u, v)
	return ok && kd.Has(key)
}

// AddNode inserts n if absent (idempotent) and merges attrs into its
// attribute dictionary. Complexity: O(1) amortized.
func (g *MultiDiGraph[N]) AddNode(n N, attrs ...Attrs) {
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
func (g *MultiDiGraph[N]) AddNodes(ns ...N) {
	for _, n := range ns {
		g.AddNode(n)
	}
}

// RemoveNode deletes n, its attribute dictionary, and every incident
// arc in both stores. Returns ErrNodeNotFound if n is absent.
// Complexity: O(deg(n)).
func (g *MultiDiGraph[N]) RemoveNode(n N) error {
	succRow, ok := g.succ.row(n)
	if !ok {
		return errNode(n)
	}
	predRow, _ := g.pred.row(n)
	for v, kd := range succRow.All() {
		g.size -= kd.Len()
		g.pred.unlink(v, n)
	}
	for u, kd := range predRow.All() {
		if u == n {
			continue // self-loop arcs already counted via the succ row
		}
		g.size -= kd.Len()
		g.succ.unlink(u, n)
	}
	g.succ.dropRow(n)
	g.pred.dropRow(n)
	g.nodes.Delete(n)
	return nil
}

// RemoveNodes deletes every node of ns, silently skipping absent ones.
func (g *MultiDiGraph[N]) RemoveNodes(ns ...N) {
	for _, n := range ns {
		_ = g.RemoveNode(n)
	}
}

// AddEdge appends a new parallel arc u→v, creating missing endpoints,
// with the smallest unused key for the ordered pair. Read the assigned
// keys back with EdgeKeys. Complexity: O(k).
func (g *MultiDiGraph[N]) AddEdge(u, v N, attrs ...Attrs) {
	kd := g.ensureKeyDict(u, v)
	data := Attrs{}
	mergeAttrs(data, attrs)
	kd.Set(smallestFreeKey(kd), data)
	g.size++
}

// AddEdges appends a new parallel arc for every (u,v) pair.
func (g *MultiDiGraph[N]) AddEdges(edges ...[2]N) {
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
}

// AddEdgeWithKey inserts the arc u→v under an explicit key. If the key
// already exists for the ordered pair, attrs are merged into the
// existing arc data (last write wins). Complexity: O(1) amortized.
func (g *MultiDiGraph[N]) AddEdgeWithKey(u, v N, key int, attrs ...Attrs) {
	kd := g.ensureKeyDict(u, v)
	data, ok := kd.Get(key)
	if !ok {
		data = Attrs{}
		kd.Set(key, data)
		g.size++
	}
	mergeAttrs(data, attrs)
}

// ensureKeyDict returns the shared key dictionary for the ordered pair
// (u,v), creating endpoints, rows, and the dual entry as needed.
func (g *MultiDiGraph[N]) ensureKeyDict(u, v N) *ordMap[int, Attrs] {
	g.AddNode(u)
	g.AddNode(v)
	kd, ok := g.succ.keyDict(u, v)
	if !ok {
		kd = newOrdMap[int, Attrs]()
		g.succ.link(u, v, kd)
		g.pred.link(v, u, kd) // dual entry shares the same key dictionary
	}
	return kd
}

// RemoveEdge deletes the most recently added parallel arc u→v.
// Returns ErrEdgeNotFound if no such arc exists. Complexity: O(1).
func (g *MultiDiGraph[N]) RemoveEdge(u, v N) error {
	kd, ok := g.succ.keyDict(u, v)
	if !ok || kd.Len() == 0 {
		return errEdge(u, v)
	}
	key, _, _ := kd.Last()
	kd.Delete(key)
	g.dropEmptyKeyDict(u, v, kd)
	g.size--
	return nil
}

// RemoveEdgeWithKey deletes the arc u→v with the given key.
// Returns ErrEdgeNotFound if no arc joins the ordered pair,
// ErrKeyNotFound if the pair exists but the key does not.
// Complexity: O(1).
func (g *MultiDiGraph[N]) RemoveEdgeWithKey(u, v N, key int) error {
	kd, ok := g.succ.keyDict(u, v)
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

// RemoveEdges deletes one parallel arc per (u,v) pair, silently
// skipping missing ones.
func (g *MultiDiGraph[N]) RemoveEdges(edges ...[2]N) {
	for _, e := range edges {
		_ = g.RemoveEdge(e[0], e[1])
	}
}

// dropEmptyKeyDict unlinks the dual entries once the ordered pair's key
// dictionary is empty.
func (g *MultiDiGraph[N]) dropEmptyKeyDict(u, v N, kd *ordMap[int, Attrs]) {
	if kd.Len() > 0 {
		return
	}
	g.succ.unlink(u, v)
	g.pred.unlink(v, u)
}

// EdgeKeys returns the keys of all parallel arcs u→v, in key insertion
// order; empty if no such arc exists. Complexity: O(k).
func (g *MultiDiGraph[N]) EdgeKeys(u, v N) []int {
	kd, ok := g.succ.keyDict(u, v)
	if !ok {
		return nil
	}
	return kd.Keys()
}

// EdgeCountBetween returns the number of parallel arcs u→v.
// Complexity: O(1).
func (g *MultiDiGraph[N]) EdgeCountBetween(u, v N) int {
	kd, ok := g.succ.keyDict(u, v)
	if !ok {
		return 0
	}
	return kd.Len()
}

// EdgeAttrsByKey returns the live attribute dictionary of the arc u→v
// with the given key. Returns ErrEdgeNotFound if no arc joins the
// ordered pair, ErrKeyNotFound if the pair exists but the key does not.
func (g *MultiDiGraph[N]) EdgeAttrsByKey(u, v N, key int) (Attrs, error) {
	kd, ok := g.succ.keyDict(u, v)
	if !ok || kd.Len() == 0 {
		return nil, errEdge(u, v)
	}
	data, ok := kd.Get(key)
	if !ok {
		return nil, errKey(u, v, key)
	}
	return data, nil
}

// EdgesBetween returns every parallel arc u→v, in key insertion order.
// Complexity: O(k).
func (g *MultiDiGraph[N]) EdgesBetween(u, v N) []Edge[N] {
	kd, ok := g.succ.keyDict(u, v)
	if !ok {
		return nil
	}
	out := make([]Edge[N], 0, kd.Len())
	for key, data := range kd.All() {
		out = append(out, Edge[N]{U: u, V: v, Key: key, Attrs: data})
	}
	return out
}

// Neighbors returns the successor row of n; per-neighbor data is the
// lowest-keyed parallel arc. Returns ErrNodeNotFound if n is absent.
func (g *MultiDiGraph[N]) Neighbors(n N) (*AdjacencyRow[N], error) {
	return g.Successors(n)
}

// Successors returns the live row of arcs leaving n.
// Returns ErrNodeNotFound if n is absent. Complexity: O(1).
func (g *MultiDiGraph[N]) Successors(n N) (*AdjacencyRow[N], error) {
	row, ok := g.succ.row(n)
	if !ok {
		return nil, errNode(n)
	}
	return newMultiRow(n, row), nil
}

// Predecessors returns the live row of arcs entering n.
// Returns ErrNodeNotFound if n is absent. Complexity: O(1).
func (g *MultiDiGraph[N]) Predecessors(n N) (*AdjacencyRow[N], error) {
	row, ok := g.pred.row(n)
	if !ok {
		return nil, errNode(n)
	}
	return newMultiRow(n, row), nil
}

// OutDegree returns the number of arcs leaving n, parallel arcs counted
// individually. Returns ErrNodeNotFound if n is absent.
// Complexity: O(deg(n)).
func (g *MultiDiGraph[N]) OutDegree(n N) (int, error) {
	row, ok := g.succ.row(n)
	if !ok {
		return 0, errNode(n)
	}
	d := 0
	for _, kd := range row.All() {
		d += kd.Len()
	}
	return d, nil
}

// InDegree returns the number of arcs entering n, parallel arcs counted
// individually. Returns ErrNodeNotFound if n is absent.
// Complexity: O(deg(n)).
func (g *MultiDiGraph[N]) InDegree(n N) (int, error) {
	row, ok := g.pred.row(n)
	if !ok {
		return 0, errNode(n)
	}
	d := 0
	for _, kd := range row.All() {
		d += kd.Len()
	}
	return d, nil
}

// Degree returns in-degree plus out-degree; a directed self-loop
// contributes 1 to each. Returns ErrNodeNotFound if n is absent.
func (g *MultiDiGraph[N]) Degree(n N) (int, error) {
	in, err := g.InDegree(n)
	if err != nil {
		return 0, err
	}
	out, _ := g.OutDegree(n)
	return in + out, nil
}

// WeightedDegree sums the given edge attribute over all arcs incident
// to n (in plus out), def per missing attribute.
// Returns ErrNodeNotFound if n is absent. Complexity: O(deg(n)).
func (g *MultiDiGraph[N]) WeightedDegree(n N, key string, def float64) (float64, error) {
	succRow, ok := g.succ.row(n)
	if !ok {
		return 0, errNode(n)
	}
	predRow, _ := g.pred.row(n)
	var sum float64
	for _, kd := range succRow.All() {
		for _, data := range kd.All() {
			sum += data.Float(key, def)
		}
	}
	for _, kd := range predRow.All() {
		for _, data := range kd.All() {
			sum += data.Float(key, def)
		}
	}
	return sum, nil
}

// NodeAttrs returns the live attribute dictionary of n.
// Returns ErrNodeNotFound if n is absent.
func (g *MultiDiGraph[N]) NodeAttrs(n N) (Attrs, error) {
	data, ok := g.nodes.Get(n)
	if !ok {
		return nil, errNode(n)
	}
	return data, nil
}

// Nodes returns the lazy node view.
func (g *MultiDiGraph[N]) Nodes() *NodeView[N] { return &NodeView[N]{nodes: g.nodes} }

// Adjacency returns the lazy node → successor-row view.
func (g *MultiDiGraph[N]) Adjacency() *AdjacencyView[N] {
	return &AdjacencyView[N]{
		order: g.nodes.Keys,
		size:  g.nodes.Len,
		row:   g.Successors,
	}
}

// Edges returns the lazy view over all parallel arcs with their keys.
func (g *MultiDiGraph[N]) Edges() *EdgeView[N] {
	return &EdgeView[N]{
		count: func() int { return g.size },
		has:   g.HasEdge,
		data: func(u, v N) (Attrs, bool) {
			row, ok := g.succ.row(u)
			if !ok {
				return nil, false
			}
			return newMultiRow(u, row).data(v)
		},
		seq: g.edgeSeq,
	}
}

// edgeSeq yields every parallel arc once, scanning successor rows in
// node insertion order with key order inside each pair.
func (g *MultiDiGraph[N]) edgeSeq() iter.Seq[Edge[N]] {
	return func(yield func(Edge[N]) bool) {
		for u, row := range g.succ.rows.All() {
			for v, kd := range row.All() {
				for key, data := range kd.All() {
					if !yield(Edge[N]{U: u, V: v, Key: key, Attrs: data}) {
						return
					}
				}
			}
		}
	}
}

// Degrees returns the lazy (node, in+out degree) view.
func (g *MultiDiGraph[N]) Degrees() *DegreeView[N] {
	return &DegreeView[N]{
		order: g.nodes.Keys,
		deg:   g.Degree,
		wdeg:  g.WeightedDegree,
	}
}

// InDegrees returns the lazy (node, in-degree) view.
func (g *MultiDiGraph[N]) InDegrees() *DegreeView[N] {
	return &DegreeView[N]{
		order: g.nodes.Keys,
		deg:   g.InDegree,
		wdeg: func(n N, key string, def float64) (float64, error) {
			row, ok := g.pred.row(n)
			if !ok {
				return 0, errNode(n)
			}
			var sum float64
			for _, kd := range row.All() {
				for _, data := range kd.All() {
					sum += data.Float(key, def)
				}
			}
			return sum, nil
		},
	}
}

// OutDegrees returns the lazy (node, out-degree) view.
func (g *MultiDiGraph[N]) OutDegrees() *DegreeView[N] {
	return &DegreeView[N]{
		order: g.nodes.Keys,
		deg:   g.OutDegree,
		wdeg: func(n N, key string, def float64) (float64, error) {
			row, ok := g.succ.row(n)
			if !ok {
				return 0, errNode(n)
			}
			var sum float64
			for _, kd := range row.All() {
				for _, data := range kd.All() {
					sum += data.Float(key, def)
				}
			}
			return sum, nil
		},
	}
}

// ReverseInPlace flips the orientation of every arc by swapping the two
// adjacency stores. No edges are re-inserted. Complexity: O(1).
func (g *MultiDiGraph[N]) ReverseInPlace() {
	g.succ, g.pred = g.pred, g.succ
}

// Reverse returns an independent multigraph with every arc flipped,
// keys preserved, attribute dictionaries copied. Complexity: O(V + E).
func (g *MultiDiGraph[N]) Reverse() *MultiDiGraph[N] {
	out := NewMultiDiGraph[N]()
	out.attrs = g.attrs.Clone()
	for n, data := range g.nodes.All() {
		out.AddNode(n, data.Clone())
	}
	for e := range g.edgeSeq() {
		out.AddEdgeWithKey(e.V, e.U, e.Key, e.Attrs.Clone())
	}
	return out
}

// Copy returns an independent multigraph: fresh attribute dictionaries,
// fresh stores, same insertion and key order. Complexity: O(V + E).
func (g *MultiDiGraph[N]) Copy() *MultiDiGraph[N] {
	out := NewMultiDiGraph[N]()
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
func (g *MultiDiGraph[N]) Subgraph(bunch ...N) *Subgraph[N] {
	return newSubgraph(Interface[N](g), g.Nodes().Filter(bunch...))
}

// Clear removes all nodes, arcs, and graph attributes. Complexity: O(1).
func (g *MultiDiGraph[N]) Clear() {
	g.attrs = Attrs{}
	g.nodes = newOrdMap[N, Attrs]()
	g.succ = newMultiAdjacency[N]()
	g.pred = newMultiAdjacency[N]()
	g.size = 0
}

// FreshCopy returns a new empty directed multigraph.
func (g *MultiDiGraph[N]) FreshCopy() Interface[N] { return NewMultiDiGraph[N]() }

var _ Interface[int] = (*MultiDiGraph[int])(nil)
