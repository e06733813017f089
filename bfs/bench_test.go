package bfs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/graphland/graphland/bfs"
	"github.com/graphland/graphland/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	// build a chain of N+1 nodes, N edges
	g := core.NewGraph[int]()
	for i := 0; i < N; i++ {
		g.AddEdge(i, i+1)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS[int](g, 0)
	}
}

// BenchmarkBFS_Grid runs BFS on an M×M grid (M² nodes, 2·M·(M−1) edges).
func BenchmarkBFS_Grid(b *testing.B) {
	const M = 100
	g := core.NewGraph[string]()
	for i := 0; i < M; i++ {
		for j := 0; j < M; j++ {
			id := fmt.Sprintf("%d_%d", i, j)
			if i+1 < M {
				g.AddEdge(id, fmt.Sprintf("%d_%d", i+1, j))
			}
			if j+1 < M {
				g.AddEdge(id, fmt.Sprintf("%d_%d", i, j+1))
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS[string](g, "0_0")
	}
}

// BenchmarkBFS_RandomSparse measures BFS on a sparse random graph.
func BenchmarkBFS_RandomSparse(b *testing.B) {
	const V = 5000
	const E = 10000

	rnd := rand.New(rand.NewSource(42))
	g := core.NewGraph[int]()
	for i := 0; i < V; i++ {
		g.AddNode(i)
	}
	for k := 0; k < E; k++ {
		g.AddEdge(rnd.Intn(V), rnd.Intn(V))
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS[int](g, 0)
	}
}
