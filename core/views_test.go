package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphland/graphland/core"
)

func TestNodeView_StrictSingleNodePath(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddNode("a", core.Attrs{"color": "red"})

	data, err := g.Nodes().Attrs("a")
	require.NoError(t, err)
	assert.Equal(t, "red", data["color"])

	_, err = g.Nodes().Attrs("missing")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestNodeView_FilterSilentlySkips(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddNodes("a", "b", "c")

	got := g.Nodes().Filter("b", "zzz", "a", "b")
	assert.Equal(t, []string{"b", "a"}, got,
		"bunch order kept, absent and duplicate members dropped")
	assert.Empty(t, g.Nodes().Filter("x", "y"))
}

func TestNodeView_IsLive(t *testing.T) {
	g := core.NewGraph[int]()
	view := g.Nodes()
	g.AddNodes(1, 2)

	assert.Equal(t, 2, view.Len())
	assert.True(t, view.Contains(2))
	require.NoError(t, g.RemoveNode(2))
	assert.False(t, view.Contains(2))
}

func TestDegreeView_StrictVsSelect(t *testing.T) {
	g := core.NewGraph[int]()
	g.AddEdges([2]int{1, 2}, [2]int{2, 3})

	_, err := g.Degrees().Get(42)
	assert.ErrorIs(t, err, core.ErrNodeNotFound, "single-node path is strict")

	got := map[int]int{}
	for n, d := range g.Degrees().Select(3, 42, 1) {
		got[n] = d
	}
	assert.Equal(t, map[int]int{3: 1, 1: 1}, got, "bunch path skips absent nodes")
}

func TestDegreeView_AllInInsertionOrder(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddNodes("c", "a", "b")
	g.AddEdge("a", "b")

	var order []string
	for n := range g.Degrees().All() {
		order = append(order, n)
	}
	assert.Equal(t, []string{"c", "a", "b"}, order)
}

func TestDegreeView_Weighted(t *testing.T) {
	g := core.NewGraph[int]()
	g.AddEdge(1, 2, core.Attrs{"weight": 2.5})
	g.AddEdge(2, 3)

	got := map[int]float64{}
	for n, w := range g.Degrees().Weighted("weight", 1) {
		got[n] = w
	}
	assert.Equal(t, map[int]float64{1: 2.5, 2: 3.5, 3: 1}, got)
}

func TestAdjacencyView_Iteration(t *testing.T) {
	g := core.NewDiGraph[string]()
	g.AddEdge("a", "b")
	g.AddEdge("a", "c")
	g.AddEdge("b", "c")

	assert.Equal(t, 3, g.Adjacency().Len())

	rows := map[string][]string{}
	for n, row := range g.Adjacency().All() {
		rows[n] = row.List()
	}
	assert.Equal(t, map[string][]string{
		"a": {"b", "c"},
		"b": {"c"},
		"c": {},
	}, rows)

	_, err := g.Adjacency().Row("zzz")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestAdjacencyRow_StrictAttrs(t *testing.T) {
	g := core.NewGraph[int]()
	g.AddEdge(1, 2)

	row, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, 1, row.Node())

	_, err = row.Attrs(3)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestEdgeView_StrictAttrs(t *testing.T) {
	g := core.NewGraph[int]()
	g.AddEdge(1, 2, core.Attrs{"weight": 2.0})

	view := g.Edges()
	assert.Equal(t, 1, view.Len())
	assert.True(t, view.Contains(2, 1))

	data, err := view.Attrs(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, data["weight"])

	_, err = view.Attrs(1, 3)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestEdgeView_AttrsAreLive(t *testing.T) {
	g := core.NewGraph[int]()
	g.AddEdge(1, 2)

	view := g.Edges()
	data, err := view.Attrs(1, 2)
	require.NoError(t, err)
	data["flag"] = true

	direct, err := g.EdgeAttrs(1, 2)
	require.NoError(t, err)
	assert.Equal(t, true, direct["flag"], "views hand out live dictionaries")
}

func TestAttrs_GetAndFloat(t *testing.T) {
	a := core.Attrs{"weight": 3, "label": "x"}

	assert.Equal(t, 3, a.Get("weight", 0))
	assert.Equal(t, "none", a.Get("missing", "none"))

	assert.Equal(t, 3.0, a.Float("weight", 1), "ints coerce to float64")
	assert.Equal(t, 1.0, a.Float("missing", 1))
	assert.Equal(t, 1.0, a.Float("label", 1), "non-numeric falls back to default")
}

func TestAttrs_CloneIndependence(t *testing.T) {
	a := core.Attrs{"k": 1}
	c := a.Clone()
	c["k"] = 2

	assert.Equal(t, 1, a["k"])
	assert.NotNil(t, core.Attrs(nil).Clone(), "nil clones to an empty dictionary")
}
