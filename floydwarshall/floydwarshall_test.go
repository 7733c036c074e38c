package floydwarshall_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/pargraph/builder"
	"github.com/katalvlaran/pargraph/core"
	"github.com/katalvlaran/pargraph/floydwarshall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inf = core.Inf

// smallDirected is 0→1=1, 0→2=4, 1→2=2, 2→0=1, 2→3=5.
func smallDirected(t testing.TB) *core.Matrix {
	t.Helper()
	m := core.NewMatrix(4)
	for _, e := range [][3]int{{0, 1, 1}, {0, 2, 4}, {1, 2, 2}, {2, 0, 1}, {2, 3, 5}} {
		require.NoError(t, m.AddEdge(e[0], e[1], e[2], 0, true))
	}
	return m
}

var smallDirectedWant = [][]int{
	{0, 1, 3, 8},
	{3, 0, 2, 7},
	{1, 2, 0, 5},
	{inf, inf, inf, 0},
}

func TestSequential_SmallDirected(t *testing.T) {
	in := smallDirected(t)
	dist, err := floydwarshall.Sequential(in)
	require.NoError(t, err)

	at := func(i, j int) int { v, _ := dist.At(i, j); return v }
	assert.Equal(t, 0, at(0, 0))
	assert.Equal(t, 3, at(0, 2), "0→1→2")
	assert.Equal(t, 2, at(2, 1), "2→0→1 costs 1+1")
	assert.Equal(t, 7, at(1, 3), "1→2→3")
	assert.Equal(t, inf, at(3, 0), "3 has no outgoing edges")

	if diff := cmp.Diff(smallDirectedWant, dist.Rows()); diff != "" {
		t.Fatalf("distance matrix mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, in.Equal(smallDirected(t)), "input must not be modified")
}

func TestParallel_SmallDirected(t *testing.T) {
	for _, threads := range []int{0, 1, 2, 3, 8} {
		dist, err := floydwarshall.Parallel(smallDirected(t), threads)
		require.NoError(t, err)
		if diff := cmp.Diff(smallDirectedWant, dist.Rows()); diff != "" {
			t.Fatalf("threads=%d mismatch (-want +got):\n%s", threads, diff)
		}
	}
}

func TestFloydWarshall_Invalid(t *testing.T) {
	_, err := floydwarshall.Sequential(nil)
	assert.ErrorIs(t, err, floydwarshall.ErrInvalidGraph)
	_, err = floydwarshall.Parallel(core.InvalidMatrix(), 2)
	assert.ErrorIs(t, err, floydwarshall.ErrInvalidGraph)
}

func TestFloydWarshall_Empty(t *testing.T) {
	dist, err := floydwarshall.Parallel(core.NewMatrix(0), 4)
	require.NoError(t, err)
	assert.Zero(t, dist.Order())
}

// TestParallel_BitIdenticalRandom compares both variants on random graphs,
// including sparse ones with many unreachable pairs.
func TestParallel_BitIdenticalRandom(t *testing.T) {
	cases := []struct {
		n, edges int
		directed bool
	}{
		{1, 0, true},
		{10, 5, true},
		{25, 40, false},
		{40, 300, true},
		{64, 2000, true},
		{50, 1225, false},
	}
	for seed := int64(1); seed <= 3; seed++ {
		for _, tc := range cases {
			m := builder.RandomMatrix(tc.n, 100, tc.edges, tc.directed, builder.WithSeed(seed))
			require.True(t, m.Valid())
			seq, err := floydwarshall.Sequential(m)
			require.NoError(t, err)
			for _, threads := range []int{2, 4, 7} {
				par, err := floydwarshall.Parallel(m, threads)
				require.NoError(t, err)
				if !seq.Equal(par) {
					t.Fatalf("n=%d edges=%d seed=%d threads=%d: parallel differs:\n%s",
						tc.n, tc.edges, seed, threads, cmp.Diff(seq.Rows(), par.Rows()))
				}
			}
		}
	}
}

// TestSequential_TriangleInequality checks d[i][j] <= d[i][k] + d[k][j].
func TestSequential_TriangleInequality(t *testing.T) {
	m := builder.RandomMatrix(30, 20, 120, true, builder.WithSeed(8))
	dist, err := floydwarshall.Sequential(m)
	require.NoError(t, err)
	rows := dist.Rows()
	for i := range rows {
		for k := range rows {
			for j := range rows {
				if rows[i][k] < inf && rows[k][j] < inf {
					require.LessOrEqual(t, rows[i][j], rows[i][k]+rows[k][j])
				}
			}
		}
	}
}

func TestOperations(t *testing.T) {
	assert.Equal(t, int64(64), floydwarshall.Operations(4))
	assert.Equal(t, int64(1_000_000_000), floydwarshall.Operations(1000))
}
