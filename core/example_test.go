package core_test

import (
	"fmt"

	"github.com/graphland/graphland/core"
)

// Build a small road map, inspect it, then restrict it to a region.
func Example() {
	g := core.NewGraph[string](core.WithName("roads"))
	g.AddEdge("berlin", "prague", core.Attrs{"km": 350})
	g.AddEdge("prague", "vienna", core.Attrs{"km": 330})
	g.AddEdge("vienna", "berlin", core.Attrs{"km": 680})
	g.AddEdge("vienna", "graz", core.Attrs{"km": 200})

	fmt.Println("nodes:", g.NodeCount(), "edges:", g.EdgeCount())

	d, _ := g.Degree("vienna")
	fmt.Println("vienna degree:", d)

	s := g.Subgraph("berlin", "prague", "vienna")
	fmt.Println("triangle edges:", s.EdgeCount())

	// Output:
	// nodes: 5 edges: 4
	// vienna degree: 3
	// triangle edges: 3
}

// Parallel edges live under per-pair keys on the multigraph variants.
func ExampleMultiGraph() {
	m := core.NewMultiGraph[string]()
	m.AddEdge("a", "b", core.Attrs{"line": "u1"})
	m.AddEdge("a", "b", core.Attrs{"line": "u2"})

	fmt.Println("between:", m.EdgeCountBetween("a", "b"))
	fmt.Println("keys:", m.EdgeKeys("a", "b"))

	// Output:
	// between: 2
	// keys: [0 1]
}

// Directed graphs reverse in constant time by swapping their stores.
func ExampleDiGraph_ReverseInPlace() {
	g := core.NewDiGraph[int]()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	g.ReverseInPlace()
	fmt.Println(g.HasEdge(2, 1), g.HasEdge(3, 2), g.HasEdge(1, 2))

	// Output:
	// true true false
}
