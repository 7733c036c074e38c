// Package floydwarshall computes all-pairs shortest paths on a *core.Matrix.
//
//	Sequential(m)          — classic k → i → j relaxation.
//	Parallel(m, threads)   — same passes; the rows of each k-pass are split
//	                         across a fixed pool of goroutines, joined before k+1.
//
// Contract:
//   - Input is a valid square matrix with 0 on the diagonal and core.Inf for
//     "no edge". The input is never modified; a fresh distance matrix is returned.
//   - A relaxation only happens when both dist[i][k] and dist[k][j] are finite,
//     so core.Inf survives for unreachable pairs and sums never overflow.
//   - Passes run in strictly increasing k. Within one pass every (i,j) is
//     independent: it reads dist[i][k] and row k, and writes only dist[i][j].
//     Parallel snapshots row k before forking, so no goroutine reads a cell
//     another goroutine may write.
//   - Parallel output is bit-identical to Sequential.
//   - Negative cycles are not detected; the result is then undefined.
//
// Complexity: O(n³) time; Sequential O(1) extra space, Parallel O(n) per pass.
package floydwarshall
