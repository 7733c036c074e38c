package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/pargraph/builder"
	"github.com/katalvlaran/pargraph/core"
	"github.com/katalvlaran/pargraph/prim_kruskal"
	"github.com/katalvlaran/pargraph/unionfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildUndirected constructs an n-vertex undirected graph from (u, v, w) triples.
func buildUndirected(t testing.TB, n int, edges [][3]int) *core.Adjacency {
	t.Helper()
	a := core.NewAdjacency(n)
	for _, e := range edges {
		require.NoError(t, a.AddEdge(e[0], e[1], e[2], 0, false))
	}
	return a
}

// assertForest checks that res.Edges contains no cycle and that every edge
// exists in the input graph.
func assertForest(t *testing.T, a *core.Adjacency, res *prim_kruskal.Result) {
	t.Helper()
	dsu := unionfind.New(a.Order())
	var total int64
	for _, e := range res.Edges {
		require.Less(t, e.From, e.To)
		require.True(t, a.HasEdge(e.From, e.To), "edge %v not in graph", e)
		require.True(t, dsu.Union(e.From, e.To), "edge %v closes a cycle", e)
		total += int64(e.Weight)
	}
	assert.Equal(t, total, res.TotalWeight)
	assert.Equal(t, 2*len(res.Edges), res.Tree.ArcCount())
	assert.Equal(t, a.Order(), res.Tree.Order())
}

// TestKruskal_Triangle: A—B (1), B—C (2), A—C (3) ⇒ {A—B, B—C}, weight 3.
func TestKruskal_Triangle(t *testing.T) {
	a := buildUndirected(t, 3, [][3]int{{0, 1, 1}, {1, 2, 2}, {0, 2, 3}})
	res, err := prim_kruskal.Kruskal(a)
	require.NoError(t, err)

	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 2}}, res.Edges)
	assert.EqualValues(t, 3, res.TotalWeight)
	assert.True(t, res.Complete)
	assertForest(t, a, res)
}

// TestKruskal_SmallUndirected uses the 4-vertex fixture (0,1,2),(0,2,4),(1,2,1),(2,3,3).
func TestKruskal_SmallUndirected(t *testing.T) {
	a := buildUndirected(t, 4, [][3]int{{0, 1, 2}, {0, 2, 4}, {1, 2, 1}, {2, 3, 3}})
	res, err := prim_kruskal.Kruskal(a)
	require.NoError(t, err)
	assert.Len(t, res.Edges, 3)
	assert.EqualValues(t, 6, res.TotalWeight)
	assert.True(t, res.Complete)
}

// TestKruskal_Disconnected returns an incomplete spanning forest.
func TestKruskal_Disconnected(t *testing.T) {
	a := buildUndirected(t, 5, [][3]int{{0, 1, 5}, {2, 3, 1}, {3, 4, 2}, {2, 4, 9}})
	res, err := prim_kruskal.Kruskal(a)
	require.NoError(t, err)
	assert.False(t, res.Complete)
	assert.Len(t, res.Edges, 3)
	assert.EqualValues(t, 8, res.TotalWeight)
	assertForest(t, a, res)
}

// TestKruskal_Trivial covers empty and single-vertex graphs and self-loops.
func TestKruskal_Trivial(t *testing.T) {
	res, err := prim_kruskal.Kruskal(core.NewAdjacency(0))
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
	assert.True(t, res.Complete)

	res, err = prim_kruskal.Kruskal(buildUndirected(t, 1, [][3]int{{0, 0, 4}}))
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
	assert.Zero(t, res.TotalWeight)
	assert.True(t, res.Complete)
}

// TestKruskal_TiesDeterministic runs twice on a graph where every weight is equal.
func TestKruskal_TiesDeterministic(t *testing.T) {
	a := buildUndirected(t, 4, [][3]int{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 0, 1}, {0, 2, 1}})
	first, err := prim_kruskal.Kruskal(a)
	require.NoError(t, err)
	second, err := prim_kruskal.Kruskal(a)
	require.NoError(t, err)
	assert.Equal(t, first.Edges, second.Edges)
	// collection order: (0,1) (0,3) (0,2) (1,2) (2,3)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 0, To: 3, Weight: 1}, {From: 0, To: 2, Weight: 1}}, first.Edges)
}

func TestValidation_Invalid(t *testing.T) {
	_, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, err = prim_kruskal.Prim(core.InvalidAdjacency())
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, err = prim_kruskal.Compute(core.NewAdjacency(1), prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// TestPrimMatchesKruskal uses Prim as the minimality oracle on random graphs,
// connected and disconnected.
func TestPrimMatchesKruskal(t *testing.T) {
	cases := []struct{ n, edges int }{{2, 1}, {10, 9}, {30, 40}, {50, 400}, {40, 780}, {60, 20}}
	for seed := int64(1); seed <= 4; seed++ {
		for _, tc := range cases {
			a := builder.RandomAdjacency(tc.n, 50, tc.edges, false, builder.WithSeed(seed))
			require.True(t, a.Valid())

			k, err := prim_kruskal.Compute(a, prim_kruskal.DefaultOptions())
			require.NoError(t, err)
			p, err := prim_kruskal.Compute(a, prim_kruskal.DefaultOptions(prim_kruskal.WithMethod(prim_kruskal.MethodPrim)))
			require.NoError(t, err)

			assert.Equal(t, k.TotalWeight, p.TotalWeight, "n=%d edges=%d seed=%d", tc.n, tc.edges, seed)
			assert.Equal(t, len(k.Edges), len(p.Edges))
			assert.Equal(t, k.Complete, p.Complete)
			assertForest(t, a, k)
			assertForest(t, a, p)

			// edge count equals n minus the number of components
			dsu := unionfind.New(tc.n)
			for _, e := range a.UndirectedEdges() {
				dsu.Union(e.From, e.To)
			}
			assert.Equal(t, tc.n-dsu.Count(), len(k.Edges))
		}
	}
}
