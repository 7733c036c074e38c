// Package engine is the façade that runs the graph algorithms with timing and
// renders each run as a human-readable report.
//
// Every operation returns (result, report, error). The report carries a
// header describing the input, the result itself when the graph has at most
// DetailLimit vertices, and a PERFORMANCE BENCHMARK block with the algorithm
// time, the total time of the call (report formatting included) and a
// throughput figure. Compare runs the sequential and parallel variants side by
// side, checks that they agree and summarizes speedup and efficiency.
//
// Connected components and the minimum spanning tree are defined on
// undirected graphs: adjacency inputs must be symmetric, every edge stored in
// both endpoint lists (AddEdge with directed=false, or
// builder.RandomAdjacency(..., false)). The parallel component search reads
// each edge once from its lower endpoint, so an asymmetric input can yield a
// different partition than the DFS, and Compare then reports
// ErrResultMismatch.
//
// An Engine holds only configuration; its methods keep no state between calls
// and may be used from several goroutines.
package engine
