package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/graphland/graphland/bfs"
	"github.com/graphland/graphland/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS[string](nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start node not found
	g := core.NewGraph[string]()
	if _, err := bfs.BFS[string](g, "missing"); !errors.Is(err, bfs.ErrStartNotFound) {
		t.Errorf("missing start: want ErrStartNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	g2 := core.NewGraph[string]()
	g2.AddNode("A")
	if _, err := bfs.BFS[string](g2, "A", bfs.WithMaxDepth[string](-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleNode covers the trivial one-node graph.
func TestBFS_SingleNode(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddNode("A")
	res, err := bfs.BFS[string](g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
}

// TestBFS_CycleDepths covers an undirected cycle A-B-C-D-A.
func TestBFS_CycleDepths(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "D")
	g.AddEdge("D", "A")

	res, err := bfs.BFS[string](g, "A")
	if err != nil {
		t.Fatal(err)
	}
	// Insertion order makes the visit sequence deterministic: B before D.
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	wantDepth := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}
	if !reflect.DeepEqual(res.Depth, wantDepth) {
		t.Errorf("Depth = %v; want %v", res.Depth, wantDepth)
	}
}

// TestBFS_DirectedFollowsArcsOnly checks that predecessors are not visited.
func TestBFS_DirectedFollowsArcsOnly(t *testing.T) {
	g := core.NewDiGraph[string]()
	g.AddEdge("A", "B")
	g.AddEdge("C", "A")

	res, err := bfs.BFS[string](g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if _, reached := res.Depth["C"]; reached {
		t.Error("C reached against arc direction")
	}
}

// TestBFS_MultigraphParallelEdgesOneHop ensures parallel edges do not
// duplicate visits.
func TestBFS_MultigraphParallelEdgesOneHop(t *testing.T) {
	g := core.NewMultiGraph[string]()
	g.AddEdge("A", "B")
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")

	res, err := bfs.BFS[string](g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_MaxDepth stops exploration beyond the limit.
func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph[int]()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)

	res, err := bfs.BFS[int](g, 1, bfs.WithMaxDepth[int](2))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.Depth[3]; !ok {
		t.Error("depth-2 node 3 should be reached")
	}
	if _, ok := res.Depth[4]; ok {
		t.Error("depth-3 node 4 should not be reached")
	}
}

// TestBFS_FilterNeighbor prunes edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")

	res, err := bfs.BFS[string](g, "A",
		bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "C" }))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.Depth["C"]; ok {
		t.Error("filtered neighbor C was visited")
	}
}

// TestBFS_Hooks checks hook ordering and error propagation.
func TestBFS_Hooks(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B")

	var events []string
	_, err := bfs.BFS[string](g, "A",
		bfs.WithOnEnqueue(func(n string, _ int) { events = append(events, "enq:"+n) }),
		bfs.WithOnDequeue(func(n string, _ int) { events = append(events, "deq:"+n) }),
		bfs.WithOnVisit(func(n string, _ int) error { events = append(events, "vis:"+n); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"enq:A", "deq:A", "vis:A", "enq:B", "deq:B", "vis:B"}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %v; want %v", events, want)
	}

	// hook error aborts the traversal
	boom := errors.New("boom")
	_, err = bfs.BFS[string](g, "A",
		bfs.WithOnVisit(func(string, int) error { return boom }))
	if !errors.Is(err, boom) {
		t.Errorf("want wrapped hook error, got %v", err)
	}
}

// TestBFS_Cancellation aborts on a cancelled context.
func TestBFS_Cancellation(t *testing.T) {
	g := core.NewGraph[int]()
	g.AddEdge(1, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS[int](g, 1, bfs.WithContext[int](ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestResult_PathTo reconstructs shortest paths from parent links.
func TestResult_PathTo(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddNode("Z")

	res, err := bfs.BFS[string](g, "A")
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo("C")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(C) = %v; want %v", path, want)
	}
	if _, err = res.PathTo("Z"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("unreached node: want ErrNoPath, got %v", err)
	}
}
