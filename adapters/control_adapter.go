// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Control adapter implementing the api.Control interface over the
// control package primitives.

package adapters

import (
	"github.com/momentics/hioload-fractal/api"
	"github.com/momentics/hioload-fractal/control"
)

// ControlAdapter couples the config store and metrics registry behind
// the api.Control contract.
type ControlAdapter struct {
	config  *control.ConfigStore
	metrics *control.MetricsRegistry
}

var _ api.Control = (*ControlAdapter)(nil)

// NewControlAdapter builds an adapter with fresh backing stores.
func NewControlAdapter() *ControlAdapter {
	return &ControlAdapter{
		config:  control.NewConfigStore(),
		metrics: control.NewMetricsRegistry(),
	}
}

// GetConfig returns a snapshot of the published configuration.
func (c *ControlAdapter) GetConfig() map[string]any {
	return c.config.Snapshot()
}

// SetConfig merges values into the config store.
func (c *ControlAdapter) SetConfig(cfg map[string]any) error {
	c.config.Merge(cfg)
	return nil
}

// Stats returns a snapshot of the published metrics.
func (c *ControlAdapter) Stats() map[string]any {
	return c.metrics.Snapshot()
}

// OnReload registers a config reload hook.
func (c *ControlAdapter) OnReload(fn func()) {
	c.config.OnReload(fn)
}

// SetMetric stores one metric value.
func (c *ControlAdapter) SetMetric(key string, value any) {
	c.metrics.Set(key, value)
}

// PublishMetrics folds a whole metrics snapshot into the registry.
func (c *ControlAdapter) PublishMetrics(snapshot map[string]any) {
	c.metrics.Publish(snapshot)
}
