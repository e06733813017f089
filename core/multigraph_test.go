package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphland/graphland/core"
)

func TestMultiGraph_AutoKeys(t *testing.T) {
	g := core.NewMultiGraph[int]()
	g.AddEdge(1, 2, core.Attrs{"road": "north"})
	g.AddEdge(1, 2, core.Attrs{"road": "south"})

	assert.Equal(t, 2, g.EdgeCount(), "parallel edges count individually")
	assert.Equal(t, []int{0, 1}, g.EdgeKeys(1, 2), "smallest unused keys")
	assert.Equal(t, 2, g.EdgeCountBetween(1, 2))
	assert.Equal(t, 2, g.EdgeCountBetween(2, 1), "undirected pair, either order")
}

func TestMultiGraph_KeyReuseAfterRemoval(t *testing.T) {
	g := core.NewMultiGraph[int]()
	g.AddEdge(1, 2)
	g.AddEdge(1, 2)
	g.AddEdge(1, 2)

	require.NoError(t, g.RemoveEdgeWithKey(1, 2, 1))
	g.AddEdge(1, 2)
	assert.Equal(t, []int{0, 2, 1}, g.EdgeKeys(1, 2), "freed key 1 is reassigned")
}

func TestMultiGraph_AddEdgeWithKeyUpserts(t *testing.T) {
	g := core.NewMultiGraph[string]()
	g.AddEdgeWithKey("a", "b", 7, core.Attrs{"lane": 1})
	g.AddEdgeWithKey("a", "b", 7, core.Attrs{"lane": 2})

	assert.Equal(t, 1, g.EdgeCount(), "same key merges, no new edge")
	data, err := g.EdgeAttrsByKey("a", "b", 7)
	require.NoError(t, err)
	assert.Equal(t, 2, data["lane"])
	assert.True(t, g.HasEdgeWithKey("a", "b", 7))
	assert.False(t, g.HasEdgeWithKey("a", "b", 0))
}

func TestMultiGraph_KeyDictSharedBothOrientations(t *testing.T) {
	g := core.NewMultiGraph[int]()
	g.AddEdge(1, 2)

	fwd, err := g.EdgeAttrsByKey(1, 2, 0)
	require.NoError(t, err)
	rev, err := g.EdgeAttrsByKey(2, 1, 0)
	require.NoError(t, err)

	fwd["weight"] = 3.0
	assert.Equal(t, 3.0, rev["weight"], "both orientations share the key dictionary")
}

func TestMultiGraph_RemoveEdgeDropsNewest(t *testing.T) {
	g := core.NewMultiGraph[int]()
	g.AddEdge(1, 2, core.Attrs{"ord": "first"})
	g.AddEdge(1, 2, core.Attrs{"ord": "second"})

	require.NoError(t, g.RemoveEdge(1, 2))
	assert.Equal(t, []int{0}, g.EdgeKeys(1, 2))
	data, err := g.EdgeAttrsByKey(1, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, "first", data["ord"])
}

func TestMultiGraph_RemoveErrors(t *testing.T) {
	g := core.NewMultiGraph[int]()
	g.AddEdge(1, 2)

	err := g.RemoveEdge(1, 3)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	err = g.RemoveEdgeWithKey(1, 2, 5)
	assert.ErrorIs(t, err, core.ErrKeyNotFound)

	_, err = g.EdgeAttrsByKey(1, 2, 5)
	assert.ErrorIs(t, err, core.ErrKeyNotFound)
	_, err = g.EdgeAttrsByKey(1, 3, 0)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestMultiGraph_LastParallelEdgeRemovalClearsAdjacency(t *testing.T) {
	g := core.NewMultiGraph[int]()
	g.AddEdge(1, 2)

	require.NoError(t, g.RemoveEdge(1, 2))
	assert.False(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 1))

	row, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Empty(t, row.List(), "empty key dictionaries are unlinked")
}

func TestMultiGraph_DegreeCountsParallelAndLoops(t *testing.T) {
	g := core.NewMultiGraph[int]()
	g.AddEdge(1, 2)
	g.AddEdge(1, 2)
	g.AddEdge(1, 1)

	d, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 4, d, "two parallel endpoints plus a double-counted loop")

	sum := 0
	for _, deg := range degreesOf[int](g) {
		sum += deg
	}
	assert.Equal(t, 2*g.EdgeCount(), sum)
}

func TestMultiGraph_WeightedDegree(t *testing.T) {
	g := core.NewMultiGraph[int]()
	g.AddEdge(1, 2, core.Attrs{"weight": 2.0})
	g.AddEdge(1, 2, core.Attrs{"weight": 3.0})
	g.AddEdge(1, 1, core.Attrs{"weight": 4.0})

	w, err := g.WeightedDegree(1, "weight", 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0+3.0+2*4.0, w)
}

func TestMultiGraph_RemoveNodeCascadesParallelEdges(t *testing.T) {
	g := core.NewMultiGraph[int]()
	g.AddEdge(1, 2)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(2, 2)

	require.NoError(t, g.RemoveNode(2))
	assert.Equal(t, 0, g.EdgeCount())
	assert.True(t, g.HasNode(1))
	assert.True(t, g.HasNode(3))

	row, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Empty(t, row.List())
}

func TestMultiGraph_NeighborsSurfaceLowestKey(t *testing.T) {
	g := core.NewMultiGraph[int]()
	g.AddEdgeWithKey(1, 2, 3, core.Attrs{"which": "high"})
	g.AddEdgeWithKey(1, 2, 1, core.Attrs{"which": "low"})

	row, err := g.Neighbors(1)
	require.NoError(t, err)
	data, err := row.Attrs(2)
	require.NoError(t, err)
	assert.Equal(t, "low", data["which"], "row data is the lowest-keyed edge")
	assert.Equal(t, 1, row.Len(), "one neighbor regardless of parallel count")
}

func TestMultiGraph_EdgesBetween(t *testing.T) {
	g := core.NewMultiGraph[int]()
	g.AddEdge(1, 2, core.Attrs{"n": 0})
	g.AddEdge(1, 2, core.Attrs{"n": 1})

	edges := g.EdgesBetween(1, 2)
	require.Len(t, edges, 2)
	assert.Equal(t, 0, edges[0].Key)
	assert.Equal(t, 1, edges[1].Key)
	assert.Nil(t, g.EdgesBetween(1, 9))
}

func TestMultiGraph_EdgeStreamCarriesKeys(t *testing.T) {
	g := core.NewMultiGraph[int]()
	g.AddEdge(1, 2)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	edges := g.Edges().List()
	require.Len(t, edges, 3)
	keys := map[int]int{}
	for _, e := range edges {
		keys[e.Key]++
	}
	assert.Equal(t, map[int]int{0: 2, 1: 1}, keys)
}

func TestMultiGraph_CopyPreservesKeys(t *testing.T) {
	g := core.NewMultiGraph[int]()
	g.AddEdgeWithKey(1, 2, 5, core.Attrs{"weight": 1.0})
	g.AddEdgeWithKey(1, 2, 9)

	c := g.Copy()
	assert.Equal(t, []int{5, 9}, c.EdgeKeys(1, 2))

	data, err := c.EdgeAttrsByKey(1, 2, 5)
	require.NoError(t, err)
	data["weight"] = 2.0
	orig, err := g.EdgeAttrsByKey(1, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, orig["weight"])
}

func TestMultiGraph_FreshCopyVariant(t *testing.T) {
	g := core.NewMultiGraph[int]()
	f := g.FreshCopy()
	assert.IsType(t, &core.MultiGraph[int]{}, f)
	assert.False(t, f.IsDirected())
	assert.True(t, f.IsMultigraph())
}
