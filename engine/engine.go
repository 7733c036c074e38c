// SPDX-License-Identifier: MIT
// Package: pargraph/engine

package engine

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/pargraph/benchmark"
	"github.com/katalvlaran/pargraph/internal/parallel"
)

var (
	// ErrInvalidGraph indicates a nil or invalid input graph.
	ErrInvalidGraph = errors.New("engine: graph is nil or invalid")

	// ErrResultMismatch indicates that a parallel run disagreed with its
	// sequential reference.
	ErrResultMismatch = errors.New("engine: parallel result differs from sequential")
)

// Engine runs algorithms and renders reports.
type Engine struct {
	threads     int
	detailLimit int
	log         *slog.Logger
}

// New returns an Engine with GOMAXPROCS threads, DefaultDetailLimit and a
// logger that discards everything, then applies opts.
func New(opts ...Option) *Engine {
	e := &Engine{
		detailLimit: DefaultDetailLimit,
		log:         discardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Threads returns the worker count parallel runs use when called with
// threads <= 0.
func (e *Engine) Threads() int { return parallel.Workers(e.threads) }

// DetailLimit returns the configured detail limit.
func (e *Engine) DetailLimit() int { return e.detailLimit }

// workers resolves a per-call thread request against the engine default.
func (e *Engine) workers(threads int) int {
	if threads > 0 {
		return threads
	}
	return e.Threads()
}

func (e *Engine) detailed(n int) bool { return n <= e.detailLimit }

// run is one measured execution together with its rendered report.
type run[T any] struct {
	result T
	report string
	timing benchmark.Timing
}

// logDone records the end of a phase and warns when the algorithm finished
// below the clock resolution, since rates then read as 0.
func (e *Engine) logDone(algorithm, mode string, n, threads int, t benchmark.Timing) {
	e.log.Debug("run finished",
		slog.String("algorithm", algorithm),
		slog.String("mode", mode),
		slog.Int("vertices", n),
		slog.Int("threads", threads),
		slog.Duration("algorithm_time", t.Algorithm),
		slog.Duration("total_time", t.Total),
	)
	if t.Algorithm <= 0 {
		e.log.Warn("algorithm time below clock resolution; rates reported as 0",
			slog.String("algorithm", algorithm),
			slog.String("mode", mode),
		)
	}
}

// writeTimes writes the two timing lines shared by every benchmark block.
func writeTimes(r *benchmark.Report, t benchmark.Timing) {
	r.Linef("Algorithm execution time: %s", benchmark.FormatDuration(t.Algorithm))
	r.Linef("Total time (including I/O): %s", benchmark.FormatDuration(t.Total))
}

// since is time.Since with a floor of zero for clocks that step backwards.
func since(sw benchmark.Stopwatch) time.Duration { return max(sw.Lap(), 0) }
