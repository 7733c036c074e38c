// Package pargraph is an in-memory engine for weighted graph algorithms, each
// available in a sequential and a parallel form so the two can be timed and
// checked against each other.
//
// What is inside:
//
//	core/          — Matrix (dense weights, Inf = no edge) and Adjacency (lists)
//	builder/       — seeded random graphs with an exact edge count
//	unionfind/     — sequential and lock-free concurrent disjoint sets
//	floydwarshall/ — all-pairs shortest paths, per-k fork/join in parallel
//	prim_kruskal/  — minimum spanning forest (Kruskal, Prim)
//	components/    — connected components by DFS or concurrent union-find
//	benchmark/     — stopwatch, duration formatting, speedup, text reports
//	engine/        — runs an algorithm and returns (result, report, error)
//	cmd/pargraph/  — command-line driver with YAML configuration
//
// Quick start:
//
//	m := builder.RandomMatrix(200, 100, 4000, true, builder.WithSeed(7))
//	a := builder.RandomAdjacency(5000, 100, 6000, false, builder.WithSeed(7))
//	summary, _, err := engine.New(engine.WithThreads(8)).Compare(m, a, 0)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(summary)
//
// Parallel variants return exactly what the sequential ones do: Floyd–Warshall
// bit-for-bit, connected components as the same partition.
package pargraph
