// SPDX-License-Identifier: MIT

// Package chain: functional configuration of a Multiplier.
//
// Design goals (same as matrix/options.go):
//   - Defaults live in constants; gatherOptions resolves setters in order.
//   - Constructors panic only on programmer error (nil engine, negative workers).
package chain

import (
	"runtime"

	"github.com/katalvlaran/chainmul/engine"
)

// DefaultWorkers selects runtime.GOMAXPROCS(0) workers for MultiplyBatch.
const DefaultWorkers = 0

const (
	panicNilEngine      = "chain: WithEngine: engine must not be nil"
	panicWorkersInvalid = "chain: WithWorkers: n must be >= 0"
)

// Option configures a Multiplier.
type Option func(*Options)

// Options is the resolved Multiplier configuration.
type Options struct {
	engine  engine.Engine
	base    IndexBase
	trace   func(Step)
	workers int
}

// WithEngine selects the pairwise product engine (default engine.Native()).
func WithEngine(e engine.Engine) Option {
	if e == nil {
		panic(panicNilEngine)
	}

	return func(o *Options) { o.engine = e }
}

// WithZeroBased makes Multiplier.Order build 0-based orders.
func WithZeroBased() Option {
	return func(o *Options) { o.base = ZeroBased }
}

// WithOneBased makes Multiplier.Order build 1-based orders (the default).
func WithOneBased() Option {
	return func(o *Options) { o.base = OneBased }
}

// WithTrace registers fn to be called after every fold step of MultiplyAll
// and MultiplyOrdered. Under MultiplyBatch fn is called from several
// goroutines and must be safe for concurrent use. A nil fn disables tracing.
func WithTrace(fn func(Step)) Option {
	return func(o *Options) { o.trace = fn }
}

// WithWorkers bounds MultiplyBatch concurrency. 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		engine:  engine.Native(),
		base:    OneBased,
		workers: DefaultWorkers,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.workers == DefaultWorkers {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
