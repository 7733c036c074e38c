// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows a tree from each not-yet-reached vertex using a min‐heap, producing a spanning forest.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/pargraph/core"
)

// Prim computes a minimum spanning forest by growing outwards from vertex 0,
// then from every vertex not reached so far, in increasing id order.
//
// Steps (per tree):
//  1. Mark the root visited and push its arcs into a min-heap.
//  2. Pop the lightest arc; skip it if its target is already visited.
//  3. Otherwise accept it, mark the target, and push the target's arcs to
//     unvisited vertices.
//
// Its total weight always equals Kruskal's; the edge set may differ on ties.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(a *core.Adjacency) (*Result, error) {
	if !a.Valid() {
		return nil, ErrInvalidGraph
	}
	n := a.Order()
	visited := make([]bool, n)
	mst := make([]core.Edge, 0, max(n-1, 0))
	var total int64

	pq := &edgePQ{}
	push := func(u int) {
		for _, nb := range a.Neighbors(u) {
			if !visited[nb.To] {
				heap.Push(pq, core.Edge{From: u, To: nb.To, Weight: nb.Weight})
			}
		}
	}

	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		push(root)
		for pq.Len() > 0 {
			e := heap.Pop(pq).(core.Edge)
			if visited[e.To] {
				continue
			}
			next := e.To
			visited[next] = true
			total += int64(e.Weight)
			if e.From > e.To {
				e.From, e.To = e.To, e.From
			}
			mst = append(mst, e)
			push(next)
		}
	}

	return newResult(n, mst, total), nil
}

// edgePQ implements heap.Interface for a min‐heap of core.Edge, ordered by Weight.
type edgePQ []core.Edge

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less compares by edge Weight for ascending order.
func (pq edgePQ) Less(i, j int) bool { return pq[i].Weight < pq[j].Weight }

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new core.Edge to the heap.
func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(core.Edge)) }

// Pop removes and returns the last element after heap adjustment.
func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
