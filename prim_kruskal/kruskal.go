// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes an undirected, weighted *core.Adjacency and produces a spanning forest.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/pargraph/core"
	"github.com/katalvlaran/pargraph/unionfind"
)

// Kruskal computes a minimum spanning forest of an undirected, weighted graph.
//
// Steps:
//  1. Validate: a != nil and a.Valid().
//  2. Collect each undirected edge once (From < To) via a.UndirectedEdges();
//     self-loops never qualify.
//  3. Sort edges by ascending Weight (sort.SliceStable keeps the collection
//     order for equal weights, so ties break deterministically).
//  4. Walk the sorted edges with a sequential union-find; an edge whose
//     endpoints lie in different trees is accepted and its trees are merged,
//     otherwise it would close a cycle and is discarded.
//  5. Stop once n-1 edges are accepted or the edge list is exhausted.
//
// A disconnected input yields a spanning forest with Result.Complete == false.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(a *core.Adjacency) (*Result, error) {
	if !a.Valid() {
		return nil, ErrInvalidGraph
	}
	n := a.Order()

	edges := a.UndirectedEdges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	var (
		dsu   = unionfind.New(n)
		mst   = make([]core.Edge, 0, max(n-1, 0))
		total int64
	)
	for _, e := range edges {
		if len(mst) == n-1 {
			break
		}
		if dsu.Union(e.From, e.To) {
			mst = append(mst, e)
			total += int64(e.Weight)
		}
	}

	return newResult(n, mst, total), nil
}
