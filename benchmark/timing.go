// SPDX-License-Identifier: MIT
// Package: pargraph/benchmark

package benchmark

import (
	"fmt"
	"math"
	"time"
)

// Stopwatch measures wall-clock time from the moment Start was called.
type Stopwatch struct {
	start time.Time
}

// Start returns a running Stopwatch.
func Start() Stopwatch { return Stopwatch{start: time.Now()} }

// Lap returns the time elapsed since Start. It may be called repeatedly.
func (s Stopwatch) Lap() time.Duration { return time.Since(s.start) }

// Timing holds the two measurements every engine run reports.
//
//	Total     — the whole call, report formatting included.
//	Algorithm — the core loop only.
type Timing struct {
	Total     time.Duration
	Algorithm time.Duration
}

// FormatDuration renders d with three decimals in the largest unit that keeps
// the value below 1000: μs below 1 ms, ms below 1 s, seconds otherwise.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%.3f μs", float64(d)/float64(time.Microsecond))
	case d < time.Second:
		return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
	default:
		return fmt.Sprintf("%.3f s", d.Seconds())
	}
}

// Rate returns count per second over d, or 0 when d is not positive or the
// quotient is not finite.
func Rate(count float64, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	r := count / d.Seconds()
	if !finite(r) {
		return 0
	}
	return r
}

// Speedup returns seq/par. A non-positive sample on either side yields 1.0,
// the neutral ratio.
func Speedup(seq, par time.Duration) float64 {
	if seq <= 0 || par <= 0 {
		return 1.0
	}
	s := float64(seq) / float64(par)
	if !finite(s) {
		return 1.0
	}
	return s
}

// Efficiency returns speedup per thread as a percentage; 0 when threads <= 0
// or speedup is not finite.
func Efficiency(speedup float64, threads int) float64 {
	if threads <= 0 || !finite(speedup) {
		return 0
	}
	return speedup / float64(threads) * 100
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
