// Package dijkstra_test validates the shortest-path implementation:
// input validation, weighted and unweighted routing, directed graphs,
// MaxDistance capping, InfEdgeThreshold walls, multigraph relaxation,
// and path reconstruction.
package dijkstra_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/graphland/graphland/core"
	"github.com/graphland/graphland/dijkstra"
)

// weightedTriangle builds a-b(2), b-c(3), a-c(10): the two-hop route
// a-b-c at cost 5 beats the direct edge.
func weightedTriangle() *core.Graph[string] {
	g := core.NewGraph[string]()
	g.AddEdge("a", "b", core.Attrs{"weight": 2.0})
	g.AddEdge("b", "c", core.Attrs{"weight": 3.0})
	g.AddEdge("a", "c", core.Attrs{"weight": 10.0})

	return g
}

// --- Validation -------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	if _, err := dijkstra.Dijkstra[string](nil, "a"); !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("want ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddNode("a")

	if _, err := dijkstra.Dijkstra[string](g, "zzz"); !errors.Is(err, dijkstra.ErrSourceNotFound) {
		t.Fatalf("want ErrSourceNotFound, got %v", err)
	}
}

func TestDijkstra_BadOptions(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddNode("a")

	if _, err := dijkstra.Dijkstra[string](g, "a", dijkstra.WithMaxDistance(-1)); !errors.Is(err, dijkstra.ErrBadMaxDistance) {
		t.Errorf("negative MaxDistance: want ErrBadMaxDistance, got %v", err)
	}
	if _, err := dijkstra.Dijkstra[string](g, "a", dijkstra.WithInfEdgeThreshold(0)); !errors.Is(err, dijkstra.ErrBadInfThreshold) {
		t.Errorf("zero InfEdgeThreshold: want ErrBadInfThreshold, got %v", err)
	}
}

func TestDijkstra_NegativeWeightRejected(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("a", "b", core.Attrs{"weight": -1.0})

	if _, err := dijkstra.Dijkstra[string](g, "a"); !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("want ErrNegativeWeight, got %v", err)
	}
}

// --- Core behavior ----------------------------------------------------

func TestDijkstra_PrefersCheaperMultiHopRoute(t *testing.T) {
	res, err := dijkstra.Dijkstra[string](weightedTriangle(), "a")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{"a": 0, "b": 2, "c": 5}
	if !reflect.DeepEqual(res.Dist, want) {
		t.Errorf("Dist = %v; want %v", res.Dist, want)
	}
}

func TestDijkstra_UnweightedHopCounting(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")

	res, err := dijkstra.Dijkstra[string](g, "a")
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist["c"] != 2 {
		t.Errorf("Dist[c] = %v; want 2 (hop count)", res.Dist["c"])
	}
}

func TestDijkstra_DirectedFollowsArcOrientation(t *testing.T) {
	g := core.NewDiGraph[string]()
	g.AddEdge("a", "b", core.Attrs{"weight": 1.0})
	g.AddEdge("c", "b", core.Attrs{"weight": 1.0})

	res, err := dijkstra.Dijkstra[string](g, "a")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.Dist["c"]; ok {
		t.Error("c is only reachable against arc direction; must be absent")
	}
	if res.Dist["b"] != 1 {
		t.Errorf("Dist[b] = %v; want 1", res.Dist["b"])
	}
}

func TestDijkstra_UnreachableNodeAbsent(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("a", "b")
	g.AddNode("island")

	res, err := dijkstra.Dijkstra[string](g, "a")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.Dist["island"]; ok {
		t.Error("isolated node must have no Dist entry")
	}
}

func TestDijkstra_SelfLoopDoesNotImprove(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("a", "a", core.Attrs{"weight": 1.0})
	g.AddEdge("a", "b", core.Attrs{"weight": 4.0})

	res, err := dijkstra.Dijkstra[string](g, "a")
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist["a"] != 0 || res.Dist["b"] != 4 {
		t.Errorf("Dist = %v; want a:0 b:4", res.Dist)
	}
}

func TestDijkstra_DefaultWeightOverride(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("a", "b") // no weight attribute

	res, err := dijkstra.Dijkstra[string](g, "a", dijkstra.WithDefaultWeight(0.5))
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist["b"] != 0.5 {
		t.Errorf("Dist[b] = %v; want 0.5", res.Dist["b"])
	}
}

func TestDijkstra_CustomWeightKey(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("a", "b", core.Attrs{"minutes": 7.0, "weight": 100.0})

	res, err := dijkstra.Dijkstra[string](g, "a", dijkstra.WithWeightKey("minutes"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist["b"] != 7 {
		t.Errorf("Dist[b] = %v; want 7 (minutes attribute)", res.Dist["b"])
	}
}

// --- Caps and walls ---------------------------------------------------

func TestDijkstra_MaxDistanceCapsExploration(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("a", "b", core.Attrs{"weight": 2.0})
	g.AddEdge("b", "c", core.Attrs{"weight": 2.0})
	g.AddEdge("c", "d", core.Attrs{"weight": 2.0})

	res, err := dijkstra.Dijkstra[string](g, "a", dijkstra.WithMaxDistance(4))
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist["c"] != 4 {
		t.Errorf("Dist[c] = %v; want 4 (exactly at the cap)", res.Dist["c"])
	}
	if _, ok := res.Dist["d"]; ok {
		t.Error("d lies beyond MaxDistance; must be absent")
	}
}

func TestDijkstra_InfEdgeThresholdWalls(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("a", "b", core.Attrs{"weight": 1000.0})
	g.AddEdge("a", "c", core.Attrs{"weight": 1.0})
	g.AddEdge("c", "b", core.Attrs{"weight": 1.0})

	res, err := dijkstra.Dijkstra[string](g, "a", dijkstra.WithInfEdgeThreshold(1000))
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist["b"] != 2 {
		t.Errorf("Dist[b] = %v; want 2 (routed around the wall)", res.Dist["b"])
	}
}

func TestDijkstra_AllEdgesWalled(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("a", "b", core.Attrs{"weight": 5.0})

	res, err := dijkstra.Dijkstra[string](g, "a", dijkstra.WithInfEdgeThreshold(5))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.Dist["b"]; ok {
		t.Error("b sits behind a wall; must be absent")
	}
}

// --- Multigraph -------------------------------------------------------

// TestDijkstra_MultigraphUsesLowestKeyedEdge: the adjacency row surfaces
// one parallel edge per neighbor, the one with the lowest key.
func TestDijkstra_MultigraphUsesLowestKeyedEdge(t *testing.T) {
	g := core.NewMultiGraph[string]()
	g.AddEdge("a", "b", core.Attrs{"weight": 5.0}) // key 0
	g.AddEdge("a", "b", core.Attrs{"weight": 1.0}) // key 1

	res, err := dijkstra.Dijkstra[string](g, "a")
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist["b"] != 5 {
		t.Errorf("Dist[b] = %v; want 5 (key-0 edge)", res.Dist["b"])
	}
}

// --- Path reconstruction ----------------------------------------------

func TestDijkstra_PathTo(t *testing.T) {
	res, err := dijkstra.Dijkstra[string](weightedTriangle(), "a", dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	path, err := res.PathTo("c")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}

	self, err := res.PathTo("a")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a"}; !reflect.DeepEqual(self, want) {
		t.Errorf("path to source = %v; want %v", self, want)
	}
}

func TestDijkstra_PathToUnreachable(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("a", "b")
	g.AddNode("island")

	res, err := dijkstra.Dijkstra[string](g, "a", dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := res.PathTo("island"); !errors.Is(err, dijkstra.ErrNoPath) {
		t.Errorf("want ErrNoPath, got %v", err)
	}
}

func TestDijkstra_PathToWithoutReturnPath(t *testing.T) {
	res, err := dijkstra.Dijkstra[string](weightedTriangle(), "a")
	if err != nil {
		t.Fatal(err)
	}
	if res.Prev != nil {
		t.Fatal("Prev must be nil without WithReturnPath")
	}
	if _, err := res.PathTo("c"); err == nil {
		t.Error("PathTo without WithReturnPath must error")
	}
}

// --- Node types -------------------------------------------------------

func TestDijkstra_IntNodes(t *testing.T) {
	g := core.NewDiGraph[int]()
	g.AddEdge(1, 2, core.Attrs{"weight": 3.0})
	g.AddEdge(2, 3, core.Attrs{"weight": 4.0})

	res, err := dijkstra.Dijkstra[int](g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist[3] != 7 {
		t.Errorf("Dist[3] = %v; want 7", res.Dist[3])
	}
}
