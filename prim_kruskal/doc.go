// Package prim_kruskal computes minimum spanning trees (forests) of undirected,
// weighted *core.Adjacency graphs with Kruskal’s and Prim’s algorithms.
//
// What & Why
//
//   - Given an undirected weighted graph G = (V, E), a minimum spanning tree is
//     a subset T ⊆ E connecting all of V with minimum total weight. When G is
//     disconnected no such tree exists; both algorithms then return a minimum
//     spanning forest (one tree per connected component) and report
//     Result.Complete == false instead of failing.
//
// Algorithms Provided
//
//   - Kruskal(a *core.Adjacency) (*Result, error)
//
//   - Strategy: collect every undirected edge once (From < To), stable-sort by
//     weight, and accept an edge iff its endpoints are in different trees of a
//     sequential union-find (package unionfind).
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Determinism: edges are collected in vertex order and then list order;
//     the stable sort keeps that order among equal weights.
//
//   - Prim(a *core.Adjacency) (*Result, error)
//
//   - Strategy: grow a tree from vertex 0 with a min-heap of candidate arcs,
//     then restart from the next unreached vertex until all are covered.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Use-Case: an independent oracle for Kruskal's total weight in tests.
//
// Input contract
//
//   - Lists are expected to be symmetric (every edge stored in both endpoint
//     lists), as produced by AddEdge(..., directed=false) or
//     builder.RandomAdjacency(..., directed=false).
//   - Self-loops are ignored.
//
// Error Conditions
//
//   - ErrInvalidGraph  : a is nil or invalid.
//   - ErrUnknownMethod : Compute with an unrecognized MSTOptions.Method.
package prim_kruskal
