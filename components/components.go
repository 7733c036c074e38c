// SPDX-License-Identifier: MIT
// Package: pargraph/components

package components

import (
	"errors"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/katalvlaran/pargraph/core"
	"github.com/katalvlaran/pargraph/internal/parallel"
	"github.com/katalvlaran/pargraph/unionfind"
)

// ErrInvalidGraph indicates a nil or invalid adjacency graph.
var ErrInvalidGraph = errors.New("components: graph is nil or invalid")

// edgeChunk is the number of edges a parallel worker claims at a time.
// Zero lets internal/parallel derive it from the edge count.
const edgeChunk = 0

// frame is one level of the emulated DFS recursion.
type frame struct {
	v    int
	next int // index of the next neighbor to inspect
}

// Sequential returns the components of a in discovery order.
// Complexity: O(V + E) time, O(V) extra space.
func Sequential(a *core.Adjacency) ([][]int, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("Sequential: %w", ErrInvalidGraph)
	}
	n := a.Order()
	visited := make([]bool, n)
	stack := make([]frame, 0, 64)
	var comps [][]int

	for s := 0; s < n; s++ {
		if visited[s] {
			continue
		}
		visited[s] = true
		comp := []int{s}
		stack = append(stack[:0], frame{v: s})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			nbs := a.Neighbors(top.v)
			for top.next < len(nbs) && visited[nbs[top.next].To] {
				top.next++
			}
			if top.next == len(nbs) {
				stack = stack[:len(stack)-1]
				continue
			}
			u := nbs[top.next].To
			top.next++
			visited[u] = true
			comp = append(comp, u)
			stack = append(stack, frame{v: u})
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

// Parallel returns the components of a using threads workers (<= 0 selects
// GOMAXPROCS). Components are ordered by smallest member, members ascending.
func Parallel(a *core.Adjacency, threads int) ([][]int, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("Parallel: %w", ErrInvalidGraph)
	}
	n := a.Order()
	forest := unionfind.NewConcurrent(n)

	edges := a.UndirectedEdges()
	parallel.ForDynamic(len(edges), threads, edgeChunk, func(lo, hi, _ int) {
		for _, e := range edges[lo:hi] {
			forest.Union(e.From, e.To)
		}
	})

	parallel.For(n, threads, func(lo, hi, _ int) {
		for v := lo; v < hi; v++ {
			forest.Compress(v)
		}
	})

	return group(n, threads, forest), nil
}

// group buckets vertices by their compressed root in three fork/join
// regions: count members per root, scatter every vertex into its root's slot
// range, then sort each bucket. Roots are the smallest member of their set,
// so laying buckets out in root order yields components ordered by smallest
// member; empty buckets never materialize.
func group(n, threads int, forest *unionfind.Concurrent) [][]int {
	if n == 0 {
		return nil
	}
	sizes := make([]atomic.Int64, n)
	parallel.For(n, threads, func(lo, hi, _ int) {
		for v := lo; v < hi; v++ {
			sizes[forest.Parent(v)].Add(1)
		}
	})

	flat := make([]int, n)
	next := make([]atomic.Int64, n) // next free slot of each root's range
	var comps [][]int
	off := 0
	for r := 0; r < n; r++ {
		size := int(sizes[r].Load())
		if size == 0 {
			continue
		}
		next[r].Store(int64(off))
		comps = append(comps, flat[off:off+size:off+size])
		off += size
	}

	parallel.For(n, threads, func(lo, hi, _ int) {
		for v := lo; v < hi; v++ {
			flat[next[forest.Parent(v)].Add(1)-1] = v
		}
	})
	parallel.ForDynamic(len(comps), threads, 0, func(lo, hi, _ int) {
		for _, c := range comps[lo:hi] {
			slices.Sort(c)
		}
	})

	return comps
}

// Equivalent reports whether x and y describe the same partition, ignoring
// the order of components and of members within a component.
func Equivalent(x, y [][]int) bool {
	return slices.EqualFunc(canonical(x), canonical(y), func(p, q []int) bool {
		return slices.Equal(p, q)
	})
}

// Canonical returns a sorted deep copy: members ascending, components ordered
// by smallest member.
func Canonical(comps [][]int) [][]int { return canonical(comps) }

func canonical(comps [][]int) [][]int {
	out := make([][]int, 0, len(comps))
	for _, c := range comps {
		if len(c) == 0 {
			continue
		}
		cp := slices.Clone(c)
		slices.Sort(cp)
		out = append(out, cp)
	}
	slices.SortFunc(out, func(p, q []int) int { return p[0] - q[0] })

	return out
}

// Largest returns the size of the biggest component (0 when there are none).
func Largest(comps [][]int) int {
	var best int
	for _, c := range comps {
		best = max(best, len(c))
	}
	return best
}
