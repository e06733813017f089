// Package dijkstra provides a single-source shortest-path implementation
// for non-negative edge weights over every graph variant in package core.
//
// # What
//
//   - Dijkstra(g, source, opts...) computes the minimum cost from source
//     to every reachable node of g.
//   - Result.Dist maps each reached node to its cost; unreachable nodes
//     have no entry.
//   - With WithReturnPath, Result.PathTo(dest) reconstructs an actual
//     shortest route.
//
// # How
//
// Nodes are settled in order of increasing distance using a binary
// min-heap with the lazy-decrease-key pattern: an improved distance
// pushes a fresh heap entry, and stale entries are discarded when
// popped. Edge costs are read from an edge attribute (default "weight")
// via Attrs.Float; an edge missing the attribute costs DefaultWeight,
// so an unweighted graph degrades to hop counting.
//
// On directed variants only outgoing arcs are relaxed. On multigraph
// variants the adjacency row surfaces a single edge per neighbor, the
// parallel edge with the lowest key; that edge's weight is the one used
// for relaxation.
//
// # Options
//
//   - WithWeightKey(key): read costs from a different attribute.
//   - WithDefaultWeight(w): cost of edges missing the attribute.
//   - WithReturnPath(): record predecessors for PathTo.
//   - WithMaxDistance(d): stop exploring beyond distance d.
//   - WithInfEdgeThreshold(t): treat edges with weight >= t as walls.
//
// # Errors
//
//   - ErrNilGraph, ErrSourceNotFound: input validation.
//   - ErrNegativeWeight: any edge with negative cost, detected by an
//     upfront scan before the search starts.
//   - ErrBadMaxDistance, ErrBadInfThreshold: invalid option values.
//   - ErrNoPath: PathTo called for an unreached destination.
//
// # Usage
//
//	g := core.NewGraph[string]()
//	g.AddEdge("a", "b", core.Attrs{"weight": 2.0})
//	g.AddEdge("b", "c", core.Attrs{"weight": 3.0})
//	g.AddEdge("a", "c", core.Attrs{"weight": 10.0})
//
//	res, err := dijkstra.Dijkstra[string](g, "a", dijkstra.WithReturnPath())
//	if err != nil {
//		log.Fatal(err)
//	}
//	path, _ := res.PathTo("c") // [a b c], cost 5
package dijkstra
