// Package builder generates random weighted graphs with an exact number of
// distinct edges, in either core representation.
//
//	RandomMatrix(n, maxWeight, edgeCount, directed, opts...)    *core.Matrix
//	RandomAdjacency(n, maxWeight, edgeCount, directed, opts...) *core.Adjacency
//
// Weights are uniform in [1, maxWeight]; self-loops are never generated.
// A request with edgeCount > MaxEdges(n, directed) (n(n-1) directed,
// n(n-1)/2 undirected), a negative count, or maxWeight < 1 returns an
// explicitly invalid graph rather than an error; Validate reports the reason
// as a sentinel (ErrTooManyEdges, ErrBadWeight, ...).
//
// Randomness is always caller-owned: pass WithSeed for reproducible fixtures
// or WithRand to continue a stream across calls. Without options DefaultSeed
// is used, so two bare calls produce the same graph. The package holds no
// global RNG state.
package builder
