// Package core is the graph data model shared by every algorithm package.
//
// Two concrete representations implement the Representation contract:
//
//	*Matrix     — dense n×n weights, flat row-major, 0 on the diagonal,
//	              Inf ("no direct edge") elsewhere until an edge is added.
//	*Adjacency  — per-vertex ordered []Neighbor lists.
//
// Both are invalid in their zero value. Constructors (NewMatrix, NewAdjacency)
// produce valid instances; generators in package builder return explicitly
// invalid instances for infeasible requests, and callers must check Valid()
// before use.
//
// Edge insertion:
//
//	AddEdge(from, to, weight, indexOffset, directed)
//
// subtracts indexOffset (so 1-based external ids can be passed with offset 1),
// validates both endpoints against [0, n) and returns ErrVertexOutOfRange
// without touching the graph on failure. Undirected insertion mirrors the edge;
// the adjacency form never mirrors a self-loop.
//
// Conversions (Matrix.ToAdjacency, Adjacency.ToMatrix) keep the self-loop
// policy in one place, so a simple matrix round-trips exactly:
//
//	m.ToAdjacency().ToMatrix().Equal(m) == true
//
// Inf is math.MaxInt/2: adding two finite distances can never overflow.
// Boundary layers that speak JSON or similar must map Inf to their own "no
// edge" value (e.g. null) in both directions.
package core
