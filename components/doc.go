// Package components finds the connected components of an undirected
// *core.Adjacency graph.
//
//	Sequential(a)         — depth-first search with an explicit stack.
//	Parallel(a, threads)  — lock-free union-find over the edge list.
//
// Sequential starts a new component at every unvisited vertex in increasing id
// order and lists members in DFS discovery order, neighbors being explored in
// list order. The explicit stack reproduces the discovery order of the
// recursive formulation without its recursion-depth limit.
//
// Parallel treats each edge u→v with u < v once. Edges are claimed in chunks
// from a shared cursor so that dense vertex ranges do not pile up on one
// worker; each worker unions its edges in a unionfind.Concurrent forest. A
// second fork/join pass compresses every vertex onto its root, and short
// fork/join passes then size, fill and sort the per-root buckets. Components
// are emitted ordered by their smallest vertex with ascending members.
//
// Both variants return the same set of components (Equivalent reports this);
// only the ordering may differ. Lists are expected to be symmetric.
package components
