// File: core/concurrency/spinflag.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Single-word mutual exclusion with busy-wait acquisition.

package concurrency

import "sync/atomic"

// SpinFlag is a mutual-exclusion flag acquired by a compare-and-swap
// retry loop: no backoff, no queuing, no scheduler handoff. Contenders
// serialize by spinning until the false->true transition succeeds.
//
// Go's atomics carry sequentially consistent ordering, which subsumes
// the acquire/release pairing the merge protocol relies on: cells
// written while the flag is held are visible to the next acquirer.
//
// The zero value is an unheld flag. SpinFlag must not be copied after
// first use and is not re-entrant.
type SpinFlag struct {
	held atomic.Bool
}

// Acquire spins until the flag is won.
func (f *SpinFlag) Acquire() {
	for !f.held.CompareAndSwap(false, true) {
	}
}

// TryAcquire attempts a single transition and reports whether the flag
// was won.
func (f *SpinFlag) TryAcquire() bool {
	return f.held.CompareAndSwap(false, true)
}

// Release stores false, publishing everything written while the flag was
// held. Must only be called by the current holder.
func (f *SpinFlag) Release() {
	f.held.Store(false)
}
