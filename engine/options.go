// SPDX-License-Identifier: MIT
// Package: pargraph/engine
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors PANIC on meaningless inputs (nil logger).
//   • Threads <= 0 means runtime.GOMAXPROCS(0), resolved at call time.

package engine

import (
	"io"
	"log/slog"
)

// DefaultDetailLimit is the largest vertex count for which reports include
// matrices, component lists and tree edges.
const DefaultDetailLimit = 20

// Option customizes an Engine.
type Option func(*Engine)

// WithThreads sets the default worker count for parallel runs.
func WithThreads(n int) Option {
	return func(e *Engine) {
		e.threads = n
	}
}

// WithLogger routes phase logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("engine: WithLogger(nil)")
	}
	return func(e *Engine) {
		e.log = l
	}
}

// WithDetailLimit sets the vertex count up to which reports print results.
// Negative values disable detailed output.
func WithDetailLimit(n int) Option {
	return func(e *Engine) {
		e.detailLimit = n
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
