// Package benchmark provides the timing and text-report helpers shared by the
// engine: a Stopwatch, human-readable durations, throughput and speedup
// arithmetic that never yields NaN or Inf, and a line-oriented Report builder.
//
//	sw := benchmark.Start()
//	// ... work ...
//	fmt.Println(benchmark.FormatDuration(sw.Lap())) // "412.113 μs"
//
// All helpers are pure and safe for concurrent use, except Report, which is
// owned by a single goroutine until String is called.
package benchmark
