package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/graphland/graphland/builder"
	"github.com/graphland/graphland/core"
	"github.com/graphland/graphland/dijkstra"
)

// grid builds an n x n weighted lattice fixture.
func grid(b *testing.B, n int) *core.Graph[string] {
	b.Helper()
	g := core.NewGraph[string]()
	opts := []builder.Option{builder.WithSeed(1), builder.WithWeightFn(weightDraw)}
	if err := builder.Build(g, opts, builder.Grid(n, n)); err != nil {
		b.Fatal(err)
	}

	return g
}

func weightDraw(r *rand.Rand) float64 { return 1 + r.Float64() }

func BenchmarkDijkstra_Grid16(b *testing.B)  { benchGrid(b, 16) }
func BenchmarkDijkstra_Grid64(b *testing.B)  { benchGrid(b, 64) }
func BenchmarkDijkstra_Grid128(b *testing.B) { benchGrid(b, 128) }

func benchGrid(b *testing.B, n int) {
	g := grid(b, n)
	source := builder.GridID(0, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Dijkstra[string](g, source); err != nil {
			b.Fatal(err)
		}
	}
}
