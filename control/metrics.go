// File: control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Metrics registry: the engine publishes its run counters here after
// every join, alongside wall-clock timings recorded by the facade.

package control

import (
	"sync"
	"time"
)

// MetricsRegistry is a thread-safe map of named metric values plus the
// time of the last update.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{metrics: make(map[string]any)}
}

// Set stores or replaces one metric.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Publish folds a whole snapshot (e.g. the engine's counters) into the
// registry in one locked pass.
func (mr *MetricsRegistry) Publish(snapshot map[string]any) {
	mr.mu.Lock()
	for k, v := range snapshot {
		mr.metrics[k] = v
	}
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Snapshot returns a copy of all metrics.
func (mr *MetricsRegistry) Snapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// UpdatedAt returns the time of the most recent write.
func (mr *MetricsRegistry) UpdatedAt() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
