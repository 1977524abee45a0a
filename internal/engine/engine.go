// File: internal/engine/engine.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Engine owns the worker lifecycle: NotStarted -> Running -> Joined.
// Start is guarded by a compare-and-swap on the started flag; the only
// user-facing failure in the whole engine is starting it twice, reported
// as a boolean. All coordination state (partitioner counter, merge flag,
// started flag) lives on the Engine value, not in globals, so independent
// engines can run side by side in one process.

package engine

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-fractal/api"
	"github.com/momentics/hioload-fractal/core/concurrency"
	"github.com/momentics/hioload-fractal/core/fractal"
	"github.com/momentics/hioload-fractal/pool"
)

// Engine computes one grid with a fixed pool of workers per run.
type Engine struct {
	kernel    api.Kernel
	mapper    fractal.Mapper
	parts     *concurrency.BatchPartitioner
	grid      *ResultGrid
	sink      api.CellSink
	merge     concurrency.SpinFlag
	bufs      *pool.SyncPool[*pool.ResultBuffer]
	batchSize int

	pinWorkers bool

	started atomic.Bool
	joined  atomic.Bool
	wg      sync.WaitGroup

	metrics Metrics
}

// Option customizes engine construction.
type Option func(*Engine)

// WithCellSink redirects merged cells into sink instead of the engine's
// own grid. Instrumented sinks wrap the grid to observe write patterns.
func WithCellSink(sink api.CellSink) Option {
	return func(e *Engine) { e.sink = sink }
}

// WithAffinity pins each worker to a CPU core for the duration of a run.
func WithAffinity(enabled bool) Option {
	return func(e *Engine) { e.pinWorkers = enabled }
}

// New builds an engine over a width x height grid split into batchSize
// work batches. Worker buffers are sized to one batch, so a full batch
// always fits and buffer overflow is structurally impossible.
func New(width, height, batchSize int, vp fractal.Viewport, kernel api.Kernel, opts ...Option) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("engine: grid %dx%d: %w", width, height, api.ErrInvalidArgument)
	}
	mapper := fractal.NewMapper(width, height, vp)
	parts, err := concurrency.NewBatchPartitioner(mapper.Area(), batchSize)
	if err != nil {
		return nil, fmt.Errorf("engine: partitioner: %w", err)
	}

	bufCap := batchSize
	if area := mapper.Area(); bufCap > area {
		bufCap = area
	}

	e := &Engine{
		kernel:    kernel,
		mapper:    mapper,
		parts:     parts,
		grid:      NewResultGrid(width, height),
		batchSize: batchSize,
		bufs: pool.NewSyncPool(func() *pool.ResultBuffer {
			return pool.NewResultBuffer(bufCap)
		}),
	}
	e.sink = e.grid
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Start transitions NotStarted -> Running and spawns workers. It returns
// false, without side effects, when the engine is already running.
// Worker counts below 1 normalize to runtime.NumCPU().
func (e *Engine) Start(workers int) bool {
	if !e.started.CompareAndSwap(false, true) {
		return false
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	e.joined.Store(false)
	e.metrics.reset()
	e.parts.Reset()

	e.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go e.runWorker(i)
	}
	return true
}

// WaitToFinish blocks until every spawned worker has returned. It is
// idempotent: repeated calls after the join are no-ops, and calling it
// on a never-started engine returns immediately.
func (e *Engine) WaitToFinish() {
	e.started.Store(false)
	e.wg.Wait()
	e.joined.Store(true)
}

// Close is the teardown path: it joins any outstanding workers so none
// outlive the engine. Safe to call multiple times.
func (e *Engine) Close() error {
	e.WaitToFinish()
	return nil
}

// State reports the lifecycle phase.
func (e *Engine) State() api.EngineState {
	switch {
	case e.started.Load():
		return api.EngineRunning
	case e.joined.Load():
		return api.EngineJoined
	default:
		return api.EngineNotStarted
	}
}

// Grid returns the result table. Contents are only defined once
// WaitToFinish has returned.
func (e *Engine) Grid() api.Grid {
	return e.grid
}

// Metrics exposes the run counters.
func (e *Engine) Metrics() *Metrics {
	return &e.metrics
}

// BatchSize returns the configured batch stride.
func (e *Engine) BatchSize() int {
	return e.batchSize
}
