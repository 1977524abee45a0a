// File: internal/engine/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Run counters recorded with atomics on the worker side and published
// as a snapshot once a run has joined.

package engine

import "sync/atomic"

// Metrics aggregates per-run counters. Workers update them with atomic
// adds; Snapshot is meant to be read after WaitToFinish.
type Metrics struct {
	BatchesClaimed atomic.Uint64
	CellsMerged    atomic.Uint64
	Merges         atomic.Uint64
	SpinRetries    atomic.Uint64
}

// Snapshot returns the counters as a plain map for the control layer.
func (m *Metrics) Snapshot() map[string]any {
	return map[string]any{
		"batches_claimed": m.BatchesClaimed.Load(),
		"cells_merged":    m.CellsMerged.Load(),
		"merges":          m.Merges.Load(),
		"spin_retries":    m.SpinRetries.Load(),
	}
}

// reset clears all counters before a new run.
func (m *Metrics) reset() {
	m.BatchesClaimed.Store(0)
	m.CellsMerged.Store(0)
	m.Merges.Store(0)
	m.SpinRetries.Store(0)
}
