// File: control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with reload notification.

package control

import "sync"

// ConfigStore holds the run parameters as a key/value map with atomic
// snapshot semantics. The facade publishes its immutable Config here so
// external tools can inspect what a run was computed with.
type ConfigStore struct {
	mu        sync.RWMutex
	values    map[string]any
	listeners []func()
}

// NewConfigStore returns an empty store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{values: make(map[string]any)}
}

// Snapshot returns a copy of all current values.
func (cs *ConfigStore) Snapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make(map[string]any, len(cs.values))
	for k, v := range cs.values {
		out[k] = v
	}
	return out
}

// Get returns one value and whether it is present.
func (cs *ConfigStore) Get(key string) (any, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	v, ok := cs.values[key]
	return v, ok
}

// Merge folds new values into the store and notifies listeners.
func (cs *ConfigStore) Merge(values map[string]any) {
	cs.mu.Lock()
	for k, v := range values {
		cs.values[k] = v
	}
	listeners := make([]func(), len(cs.listeners))
	copy(listeners, cs.listeners)
	cs.mu.Unlock()

	for _, fn := range listeners {
		go fn()
	}
}

// OnReload registers a hook invoked after every Merge.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	cs.listeners = append(cs.listeners, fn)
	cs.mu.Unlock()
}
