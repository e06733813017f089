// Package core provides the in-memory graph data model every algorithm
// package in this repository consumes: four concrete variants over one
// storage design, lazy views, and attribute dictionaries.
//
// Variants:
//
//   - Graph          — undirected, simple
//   - DiGraph        — directed, simple (dual succ/pred stores)
//   - MultiGraph     — undirected, parallel edges keyed per pair
//   - MultiDiGraph   — directed, parallel edges keyed per ordered pair
//
// All four implement Interface, the closed capability set algorithms
// are written against; they branch on IsDirected()/IsMultigraph() and
// build same-variant results via FreshCopy() instead of dispatching on
// concrete types.
//
// Storage model:
//
//   - Node table: node → Attrs, insertion-ordered.
//   - Adjacency: node → (neighbor → Attrs), one more key level
//     (→ key → Attrs) for the multigraph variants. Ordered at every
//     level, so iteration over nodes, rows, and keys follows insertion
//     order — the determinism contract reproducible algorithms rely on.
//   - Undirected variants mirror every (u,v) entry as (v,u) pointing at
//     the same Attrs object (or the same key dictionary): edge data is
//     one logical record reachable from both endpoints.
//   - Directed variants keep succ and pred stores in agreement
//     (v ∈ succ[u] iff u ∈ pred[v], same Attrs), which makes
//     ReverseInPlace an O(1) pointer swap.
//
// Contracts:
//
//   - AddEdge auto-creates missing endpoints and never fails for
//     missing-node reasons; removal and queries on absent nodes/edges
//     return ErrNodeNotFound / ErrEdgeNotFound / ErrKeyNotFound
//     (branch with errors.Is).
//   - An undirected self-loop contributes 2 to degree; a directed one
//     contributes 1 to in-degree and 1 to out-degree.
//   - Simple variants merge attributes on duplicate AddEdge (last write
//     wins); multigraph variants append a parallel edge under the
//     smallest unused non-negative key.
//   - Views (NodeView, EdgeView, AdjacencyView, DegreeView, Subgraph)
//     are live read-through windows: no copies, insertion-order
//     iteration, O(1) membership. Mutating the graph while consuming an
//     iteration from a view is undefined; materialize with List first.
//   - Node-bunch handling is split in two named paths: single-node
//     accessors fail on an absent node, Filter/Select over a bunch
//     silently skip absent members.
//
// The core is single-threaded by design: operations are plain
// call/return with no locking, and views are live windows rather than
// snapshots. Wrap a graph in your own synchronization if you share it
// across goroutines.
package core
