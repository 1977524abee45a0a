// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Cross-platform CPU affinity for compute workers. Pinning a worker to a
// core keeps its private buffer hot in cache between flushes; the engine
// treats pin failures as advisory and keeps running unpinned.

package affinity

import (
	"errors"
	"runtime"
)

// ErrNotSupported indicates CPU affinity is unavailable on this platform.
var ErrNotSupported = errors.New("affinity: not supported on this platform")

// Pin locks the calling goroutine to its OS thread and binds that thread
// to the given CPU core. On failure the thread is unlocked again and the
// caller keeps floating.
func Pin(cpuID int) error {
	if cpuID < 0 || cpuID >= runtime.NumCPU() {
		cpuID = cpuID % runtime.NumCPU()
		if cpuID < 0 {
			cpuID += runtime.NumCPU()
		}
	}
	runtime.LockOSThread()
	if err := setAffinityPlatform(cpuID); err != nil {
		runtime.UnlockOSThread()
		return err
	}
	return nil
}

// Unpin releases the thread lock taken by a successful Pin.
func Unpin() {
	runtime.UnlockOSThread()
}
