// SPDX-License-Identifier: MIT
// Package: pargraph/engine

package engine

import (
	"fmt"

	"github.com/katalvlaran/pargraph/benchmark"
	"github.com/katalvlaran/pargraph/core"
	"github.com/katalvlaran/pargraph/floydwarshall"
)

const algoFloydWarshall = "floyd-warshall"

// ShortestPaths runs sequential Floyd–Warshall on m.
func (e *Engine) ShortestPaths(m *core.Matrix) (*core.Matrix, string, error) {
	r, err := e.shortestPaths(m, 0, false)
	if err != nil {
		return nil, "", err
	}
	return r.result, r.report, nil
}

// ShortestPathsParallel runs parallel Floyd–Warshall on m with the given
// number of workers; threads <= 0 uses the engine default.
func (e *Engine) ShortestPathsParallel(m *core.Matrix, threads int) (*core.Matrix, string, error) {
	r, err := e.shortestPaths(m, threads, true)
	if err != nil {
		return nil, "", err
	}
	return r.result, r.report, nil
}

func (e *Engine) shortestPaths(m *core.Matrix, threads int, par bool) (run[*core.Matrix], error) {
	if !m.Valid() {
		return run[*core.Matrix]{}, fmt.Errorf("ShortestPaths: %w", ErrInvalidGraph)
	}
	n := m.Order()
	ops := floydwarshall.Operations(n)
	mode, title := "sequential", "Floyd-Warshall Algorithm (All Pairs Shortest Paths)"
	if par {
		threads = e.workers(threads)
		mode, title = "parallel", "Parallel Floyd-Warshall Algorithm (All Pairs Shortest Paths)"
	}

	sw := benchmark.Start()
	var r benchmark.Report
	r.Title(title)
	r.Linef("Graph size: %d vertices", n)
	if par {
		r.Linef("Threads: %d", threads)
	}
	r.Linef("Time complexity: O(V³) = O(%d³) = O(%d)", n, ops)
	r.Blank()
	if e.detailed(n) {
		r.Line("Initial distance matrix:")
		_ = benchmark.WriteMatrix(&r, m)
		r.Blank()
	}

	algo := benchmark.Start()
	var (
		dist *core.Matrix
		err  error
	)
	if par {
		dist, err = floydwarshall.Parallel(m, threads)
	} else {
		dist, err = floydwarshall.Sequential(m)
	}
	var t benchmark.Timing
	t.Algorithm = since(algo)
	if err != nil {
		return run[*core.Matrix]{}, fmt.Errorf("ShortestPaths: %w", err)
	}

	if e.detailed(n) {
		r.Line("Final shortest paths matrix:")
		_ = benchmark.WriteMatrix(&r, dist)
		r.Blank()
	}
	t.Total = since(sw)

	r.Section("PERFORMANCE BENCHMARK")
	writeTimes(&r, t)
	r.Linef("Operations performed: %d", ops)
	r.Linef("Operations per second: %.0f", benchmark.Rate(float64(ops), t.Algorithm))

	e.logDone(algoFloydWarshall, mode, n, threads, t)
	return run[*core.Matrix]{result: dist, report: r.String(), timing: t}, nil
}
