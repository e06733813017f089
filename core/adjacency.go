// Package core: adjacency storage.
//
// adjacency holds node → (neighbor → edge Attrs) for the simple
// variants; multiAdjacency adds one more level, node → (neighbor →
// (key → edge Attrs)), for the multigraph variants. Both are ordered
// at every level so iteration follows insertion order.
//
// The stores are orientation-agnostic: the owning graph variant drives
// mirroring. Undirected graphs link (u,v) and (v,u) with the same
// Attrs (or the same key dictionary) so edge data is shared, not
// copied; DiGraph keeps two stores (succ, pred) in agreement.

package core

import "fmt"

// errNode wraps ErrNodeNotFound with the offending node.
func errNode[N comparable](n N) error {
	return fmt.Errorf("%w: %v", ErrNodeNotFound, n)
}

// errEdge wraps ErrEdgeNotFound with the offending pair.
func errEdge[N comparable](u, v N) error {
	return fmt.Errorf("%w: (%v, %v)", ErrEdgeNotFound, u, v)
}

// errKey wraps ErrKeyNotFound with the offending pair and key.
func errKey[N comparable](u, v N, key int) error {
	return fmt.Errorf("%w: (%v, %v, %d)", ErrKeyNotFound, u, v, key)
}

// adjacency maps node → ordered row of neighbor → edge Attrs.
type adjacency[N comparable] struct {
	rows *ordMap[N, *ordMap[N, Attrs]]
}

func newAdjacency[N comparable]() *adjacency[N] {
	return &adjacency[N]{rows: newOrdMap[N, *ordMap[N, Attrs]]()}
}

// ensureRow creates an empty row for n if missing and returns it.
// Complexity: O(1) amortized.
func (a *adjacency[N]) ensureRow(n N) *ordMap[N, Attrs] {
	if row, ok := a.rows.Get(n); ok {
		return row
	}
	row := newOrdMap[N, Attrs]()
	a.rows.Set(n, row)
	return row
}

// row returns the adjacency row of n. Complexity: O(1).
func (a *adjacency[N]) row(n N) (*ordMap[N, Attrs], bool) {
	return a.rows.Get(n)
}

// edge returns the Attrs of the (u,v) entry. Complexity: O(1).
func (a *adjacency[N]) edge(u, v N) (Attrs, bool) {
	row, ok := a.rows.Get(u)
	if !ok {
		return nil, false
	}
	return row.Get(v)
}

// link records v in u's row pointing at data. Rows for both endpoints
// must already exist (graph mutators ensure them). Complexity: O(1).
func (a *adjacency[N]) link(u, v N, data Attrs) {
	a.ensureRow(u).Set(v, data)
}

// unlink removes the (u,v) entry, reporting whether it existed.
// Complexity: O(1).
func (a *adjacency[N]) unlink(u, v N) bool {
	row, ok := a.rows.Get(u)
	if !ok {
		return false
	}
	return row.Delete(v)
}

// dropRow removes n's entire row. Complexity: O(1).
func (a *adjacency[N]) dropRow(n N) {
	a.rows.Delete(n)
}

// multiAdjacency maps node → (neighbor → shared key dictionary).
// The inner key dictionary (key → Attrs) is one object shared between
// mirrored (u,v)/(v,u) entries in undirected multigraphs.
type multiAdjacency[N comparable] struct {
	rows *ordMap[N, *ordMap[N, *ordMap[int, Attrs]]]
}

func newMultiAdjacency[N comparable]() *multiAdjacency[N] {
	return &multiAdjacency[N]{rows: newOrdMap[N, *ordMap[N, *ordMap[int, Attrs]]]()}
}

// ensureRow creates an empty row for n if missing and returns it.
func (a *multiAdjacency[N]) ensureRow(n N) *ordMap[N, *ordMap[int, Attrs]] {
	if row, ok := a.rows.Get(n); ok {
		return row
	}
	row := newOrdMap[N, *ordMap[int, Attrs]]()
	a.rows.Set(n, row)
	return row
}

// row returns the adjacency row of n.
func (a *multiAdjacency[N]) row(n N) (*ordMap[N, *ordMap[int, Attrs]], bool) {
	return a.rows.Get(n)
}

// keyDict returns the parallel-edge dictionary of the (u,v) pair.
func (a *multiAdjacency[N]) keyDict(u, v N) (*ordMap[int, Attrs], bool) {
	row, ok := a.rows.Get(u)
	if !ok {
		return nil, false
	}
	return row.Get(v)
}

// link records v in u's row pointing at the shared key dictionary kd.
func (a *multiAdjacency[N]) link(u, v N, kd *ordMap[int, Attrs]) {
	a.ensureRow(u).Set(v, kd)
}

// unlink removes the (u,v) entry (the whole key dictionary reference).
func (a *multiAdjacency[N]) unlink(u, v N) bool {
	row, ok := a.rows.Get(u)
	if !ok {
		return false
	}
	return row.Delete(v)
}

// dropRow removes n's entire row.
func (a *multiAdjacency[N]) dropRow(n N) {
	a.rows.Delete(n)
}

// smallestFreeKey returns the smallest non-negative integer not already
// used as a key in kd. Keys are scoped to one (u,v) pair, so the scan
// is bounded by the number of parallel edges. Complexity: O(k).
func smallestFreeKey(kd *ordMap[int, Attrs]) int {
	key := 0
	for kd.Has(key) {
		key++
	}
	return key
}
