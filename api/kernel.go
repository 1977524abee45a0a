// File: api/kernel.go
// Package api defines the Kernel contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Kernel maps a point of the complex plane to an iteration count.
// Implementations must be pure: no shared state, no side effects, and
// guaranteed termination within MaxIterations steps, so a single Kernel
// value may be shared by any number of workers without synchronization.
type Kernel interface {
	// Iterate returns the escape-time count for the point (cx, cy),
	// in [0, MaxIterations].
	Iterate(cx, cy float64) uint16

	// MaxIterations returns the iteration cap.
	MaxIterations() int
}
