// File: facade/options.go
// Package facade defines functional options for the Fractal facade.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package facade

import "github.com/momentics/hioload-fractal/core/fractal"

// Option customizes facade initialization.
type Option func(*Config)

// WithDimensions sets the pixel grid size.
func WithDimensions(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithWorkers sets the number of worker goroutines per run.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithBatchSize overrides the default work batch stride.
func WithBatchSize(n int) Option {
	return func(c *Config) {
		c.BatchSize = n
	}
}

// WithMaxIterations sets the escape-time iteration cap.
func WithMaxIterations(n int) Option {
	return func(c *Config) {
		c.MaxIterations = n
	}
}

// WithViewport sets the complex-plane window under the grid.
func WithViewport(vp fractal.Viewport) Option {
	return func(c *Config) {
		c.Viewport = vp
	}
}

// WithAffinity pins each worker to a CPU core during runs.
func WithAffinity(enabled bool) Option {
	return func(c *Config) {
		c.PinWorkers = enabled
	}
}

// WithJournalLimit bounds the lifecycle event journal.
func WithJournalLimit(n int) Option {
	return func(c *Config) {
		c.JournalLimit = n
	}
}
