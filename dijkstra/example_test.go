package dijkstra_test

import (
	"fmt"

	"github.com/graphland/graphland/core"
	"github.com/graphland/graphland/dijkstra"
)

// Example routes across a small weighted road network: the three-hop
// route through b and c (cost 6) beats the direct a-d edge (cost 10).
func Example() {
	g := core.NewGraph[string]()
	g.AddEdge("a", "b", core.Attrs{"weight": 2.0})
	g.AddEdge("b", "c", core.Attrs{"weight": 2.0})
	g.AddEdge("c", "d", core.Attrs{"weight": 2.0})
	g.AddEdge("a", "d", core.Attrs{"weight": 10.0})

	res, err := dijkstra.Dijkstra[string](g, "a", dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, _ := res.PathTo("d")
	fmt.Println(res.Dist["d"], path)
	// Output:
	// 6 [a b c d]
}

// ExampleDijkstra_withMaxDistance limits exploration to a radius of 3:
// anything farther stays out of the result.
func ExampleDijkstra_withMaxDistance() {
	g := core.NewDiGraph[string]()
	g.AddEdge("hub", "near", core.Attrs{"weight": 1.0})
	g.AddEdge("near", "mid", core.Attrs{"weight": 2.0})
	g.AddEdge("mid", "far", core.Attrs{"weight": 2.0})

	res, err := dijkstra.Dijkstra[string](g, "hub", dijkstra.WithMaxDistance(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_, farReached := res.Dist["far"]
	fmt.Println(res.Dist["mid"], farReached)
	// Output:
	// 3 false
}
