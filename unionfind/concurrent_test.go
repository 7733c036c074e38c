package unionfind_test

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/pargraph/unionfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicParents_Contract(t *testing.T) {
	p := unionfind.NewAtomicParents(3)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 2, p.Load(2))
	assert.True(t, p.CompareAndSwap(2, 2, 0))
	assert.False(t, p.CompareAndSwap(2, 2, 1), "stale expected value must fail")
	assert.Equal(t, 0, p.Load(2))
	p.Store(2, 2)
	assert.Equal(t, 2, p.Load(2))
}

func TestConcurrent_SequentialUse(t *testing.T) {
	c := unionfind.NewConcurrent(5)
	assert.True(t, c.Union(3, 4))
	assert.True(t, c.Union(4, 1))
	assert.False(t, c.Union(1, 3))
	assert.True(t, c.Connected(3, 1))
	assert.False(t, c.Connected(0, 2))
	assert.Equal(t, 1, c.Compress(4))
	assert.Equal(t, 1, c.Parent(4))
	assert.Equal(t, [][]int{{0}, {1, 3, 4}, {2}}, c.Sets())
}

// TestConcurrent_RacingUnions hammers one forest from many goroutines and
// checks that exactly n-components merges succeeded and the partition equals
// the sequential one.
func TestConcurrent_RacingUnions(t *testing.T) {
	const (
		n       = 2000
		pairs   = 6000
		workers = 16
	)
	r := rand.New(rand.NewSource(17))
	us := make([]int, pairs)
	vs := make([]int, pairs)
	seq := unionfind.New(n)
	for i := range us {
		us[i], vs[i] = r.Intn(n), r.Intn(n)
		seq.Union(us[i], vs[i])
	}

	c := unionfind.NewConcurrent(n)
	var merges atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			// every worker sees every pair, in a different order
			for k := 0; k < pairs; k++ {
				i := (k*7 + w*131) % pairs
				if c.Union(us[i], vs[i]) {
					merges.Add(1)
				}
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, int64(n-seq.Count()), merges.Load(), "each merge must be won by exactly one goroutine")
	if diff := cmp.Diff(seq.Sets(), c.Sets()); diff != "" {
		t.Fatalf("partition mismatch (-seq +concurrent):\n%s", diff)
	}
}

// TestConcurrent_ParallelCompress runs compression from many goroutines after
// the unions and verifies every element points at its root.
func TestConcurrent_ParallelCompress(t *testing.T) {
	const n = 1000
	c := unionfind.NewConcurrent(n)
	for i := n - 1; i > 0; i-- {
		c.Union(i, i-1)
	}
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v := 0; v < n; v++ {
				c.Compress(v)
			}
		}()
	}
	wg.Wait()
	for _, p := range c.Snapshot() {
		assert.Equal(t, 0, p)
	}
}
