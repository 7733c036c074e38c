// Package unionfind provides fixed-size disjoint-set forests over the element
// ids [0, n).
//
// Two variants share the same semantics:
//
//	DisjointSet — single-goroutine; Find uses full path compression.
//	Concurrent  — lock-free; any number of goroutines may call Find and Union
//	              on the same forest without external locking.
//
// Both link the numerically larger root under the smaller one, so the
// representative of every set is its smallest element once all unions have
// completed. This keeps results reproducible regardless of the order in which
// unions were issued.
//
// The Concurrent forest stores parents in AtomicParents, an array whose
// elements are only ever accessed through atomic Load/Store/CompareAndSwap.
// Union retries a single CAS on the larger root until it succeeds or both
// elements are found to share a root; a failed CAS means another goroutine
// changed that root, so some goroutine always makes progress.
//
// Indices are the caller's responsibility: there are no error returns, and
// an out-of-range id panics like a slice index.
package unionfind
