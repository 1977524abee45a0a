// File: facade/fractal.go
// Unified facade layer for the hioload-fractal library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the Fractal struct, which aggregates the compute
// engine, control interfaces, and presentation helpers behind a single
// facade. It wires the escape-time kernel, viewport mapper, batch
// partitioner, and shared grid from one immutable configuration and
// exposes run lifecycle, rendering, and snapshot export.

package facade

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/momentics/hioload-fractal/adapters"
	"github.com/momentics/hioload-fractal/api"
	"github.com/momentics/hioload-fractal/control"
	"github.com/momentics/hioload-fractal/core/fractal"
	"github.com/momentics/hioload-fractal/internal/engine"
	"github.com/momentics/hioload-fractal/render"
)

// Config holds parameters immutable per facade instance.
type Config struct {
	Width          int              // Grid width in pixels
	Height         int              // Grid height in pixels
	Workers        int              // Worker goroutines per run; <=0 means NumCPU
	BatchSize      int              // Work indices claimed per fetch-and-add
	MaxIterations  int              // Escape-time iteration cap
	EscapeRadiusSq float64          // Squared escape radius for the kernel
	Viewport       fractal.Viewport // Complex-plane window under the grid
	PinWorkers     bool             // Pin each worker to a CPU core
	JournalLimit   int              // Retained lifecycle events; <=0 means default
}

// DefaultConfig returns the classic rendition parameters: a 170x118
// grid over the standard Mandelbrot window, 24 workers pulling batches
// of 20000 indices, capped at 1000 iterations.
func DefaultConfig() *Config {
	return &Config{
		Width:          170,
		Height:         118,
		Workers:        24,
		BatchSize:      20000,
		MaxIterations:  1000,
		EscapeRadiusSq: 4.0,
		Viewport:       fractal.ClassicViewport(),
		PinWorkers:     false,
		JournalLimit:   control.DefaultJournalLimit,
	}
}

// Fractal is the main facade type.
type Fractal struct {
	cfg     *Config
	engine  *engine.Engine
	control *adapters.ControlAdapter
	journal *control.Journal
}

// New constructs a Fractal facade from cfg and options. A nil cfg means
// DefaultConfig. The configuration is validated once here; the engine
// and its workers assume in-range values from then on.
func New(cfg *Config, opts ...Option) (*Fractal, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.MaxIterations > math.MaxUint16 {
		return nil, fmt.Errorf("facade: max iterations %d exceeds cell range: %w",
			cfg.MaxIterations, api.ErrInvalidArgument)
	}

	kernel := fractal.NewEscapeKernel(cfg.MaxIterations, cfg.EscapeRadiusSq)
	eng, err := engine.New(cfg.Width, cfg.Height, cfg.BatchSize, cfg.Viewport, kernel,
		engine.WithAffinity(cfg.PinWorkers))
	if err != nil {
		return nil, err
	}

	f := &Fractal{
		cfg:     cfg,
		engine:  eng,
		control: adapters.NewControlAdapter(),
		journal: control.NewJournal(cfg.JournalLimit),
	}

	// Publish the run parameters for observability.
	f.control.SetConfig(map[string]any{
		"width":          cfg.Width,
		"height":         cfg.Height,
		"workers":        cfg.Workers,
		"batch_size":     cfg.BatchSize,
		"max_iterations": cfg.MaxIterations,
		"pin_workers":    cfg.PinWorkers,
	})
	return f, nil
}

// Run executes one full computation: start the workers, block until the
// grid is complete, then publish metrics and journal the lifecycle.
// Returns api.ErrAlreadyRunning when a run is already in flight.
func (f *Fractal) Run() error {
	begin := time.Now()
	if !f.engine.Start(f.cfg.Workers) {
		return api.ErrAlreadyRunning
	}
	f.journal.Record("run.started",
		fmt.Sprintf("workers=%d batch=%d area=%d", f.cfg.Workers, f.cfg.BatchSize, f.cfg.Width*f.cfg.Height))

	f.engine.WaitToFinish()
	elapsed := time.Since(begin)

	f.control.PublishMetrics(f.engine.Metrics().Snapshot())
	f.control.SetMetric("run_duration_ms", elapsed.Milliseconds())
	f.journal.Record("run.joined", fmt.Sprintf("duration=%s", elapsed))
	return nil
}

// Start launches the workers without blocking. Returns false when a run
// is already in flight.
func (f *Fractal) Start() bool {
	return f.engine.Start(f.cfg.Workers)
}

// WaitToFinish blocks until all workers of the current run have joined.
// Idempotent.
func (f *Fractal) WaitToFinish() {
	f.engine.WaitToFinish()
}

// Close tears the facade down, joining any outstanding workers.
func (f *Fractal) Close() error {
	return f.engine.Close()
}

// Grid returns the result table; contents are defined once the run has
// joined.
func (f *Fractal) Grid() api.Grid {
	return f.engine.Grid()
}

// State reports the engine lifecycle phase.
func (f *Fractal) State() api.EngineState {
	return f.engine.State()
}

// Control exposes run configuration and metrics.
func (f *Fractal) Control() api.Control {
	return f.control
}

// Journal exposes the lifecycle event journal.
func (f *Fractal) Journal() *control.Journal {
	return f.journal
}

// RenderASCII writes the finished grid to w with the default palette.
func (f *Fractal) RenderASCII(w io.Writer) error {
	return render.NewASCIIRenderer().Render(w, f.Grid())
}

// WriteSnapshot exports the finished grid as a compressed snapshot.
func (f *Fractal) WriteSnapshot(w io.Writer) error {
	if err := render.WriteSnapshot(w, f.Grid(), f.cfg.MaxIterations); err != nil {
		return err
	}
	f.journal.Record("snapshot.written",
		fmt.Sprintf("grid=%dx%d", f.cfg.Width, f.cfg.Height))
	return nil
}
