// Package graphland is an in-memory graph library built around four
// variants with one shared data model: attribute dicts on graphs,
// nodes, and edges, insertion-order iteration, and lazy views.
//
// 🚀 What is graphland?
//
//	A generic (node type N comparable) library that brings together:
//		• Core variants: Graph, DiGraph, MultiGraph, MultiDiGraph
//		• Lazy views: nodes, edges, adjacency rows, degrees, subgraphs
//		• O(1) directed reversal and variant-preserving conversions
//		• Traversals: BFS, DFS (plus topological sort & cycle detection)
//		• Shortest paths: Dijkstra with weight attributes
//		• Deterministic fixtures: Path, Cycle, Star, Wheel, Complete,
//		  Grid, RandomSparse generators
//
// ✨ Why choose graphland?
//
//   - One mental model – every variant shares AddNode/AddEdge/views;
//     algorithms are written once against core.Interface[N]
//   - Live semantics – views and subgraphs read through to the parent;
//     mirrored edge attributes are the same dict in both directions
//   - Deterministic – insertion order everywhere, seedable generators
//   - Extensible – traversal hooks (OnVisit, OnEnqueue, OnExit…) for
//     custom logic without forking the algorithms
//
// Everything is organized under five subpackages:
//
//	core/     — the four graph variants, attribute dicts, views,
//	            subgraphs, and conversions
//	bfs/      — breadth-first search with depth/parent tracking
//	dfs/      — depth-first search, topological sort, cycle detection
//	dijkstra/ — single-source shortest paths over weight attributes
//	builder/  — deterministic topology constructors for fixtures
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four nodes and four edges.
//
//	go get github.com/graphland/graphland
package graphland
