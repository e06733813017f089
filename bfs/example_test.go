package bfs_test

import (
	"fmt"

	"github.com/graphland/graphland/bfs"
	"github.com/graphland/graphland/core"
)

// ExampleBFS demonstrates BFS layering on a 3×3 grid (9 nodes).
// The start is "0_0", then its 2 neighbors {"0_1","1_0"}, then the next
// frontier, and so on in non-decreasing Manhattan distance.
func ExampleBFS() {
	// Build a 3×3 undirected grid: nodes "i_j" for 0 ≤ i,j < 3
	g := core.NewGraph[string]()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			// connect to right neighbor
			if j+1 < 3 {
				g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1))
			}
			// connect to down neighbor
			if i+1 < 3 {
				g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j))
			}
		}
	}

	// BFS from the top-left corner
	res, err := bfs.BFS[string](g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleResult_PathTo finds the fewest-hop route between two competing
// paths: A-B-C-D-K (4 hops) versus A-E-F-K (3 hops).
func ExampleResult_PathTo() {
	g := core.NewGraph[string]()
	// Route 1: A-B-C-D-K (4 hops)
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "D")
	g.AddEdge("D", "K")
	// Route 2: A-E-F-K (3 hops)
	g.AddEdge("A", "E")
	g.AddEdge("E", "F")
	g.AddEdge("F", "K")
	// Extra branches
	g.AddEdge("C", "G")
	g.AddEdge("D", "I")

	res, err := bfs.BFS[string](g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := res.PathTo("K")
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [A E F K]
}

// ExampleWithMaxDepth limits a chain traversal to the first three nodes.
func ExampleWithMaxDepth() {
	// Build a chain v0-v1-...-v9
	g := core.NewGraph[string]()
	for i := 0; i < 9; i++ {
		g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}

	res, err := bfs.BFS[string](g, "v0", bfs.WithMaxDepth[string](2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [v0 v1 v2]
}
