// File: api/grid.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Read and write contracts for the shared result grid.

package api

// Grid is a read-only view of a finished width x height result table.
// Reading is only defined once the engine that owns the grid has joined
// all of its workers; the engine never hands out a Grid before that.
type Grid interface {
	Width() int
	Height() int

	// At returns the result stored for pixel (x, y).
	At(x, y int) uint16
}

// CellSink receives merged results cell by cell. The engine drains every
// worker buffer into a CellSink while holding the merge flag, so
// implementations need no internal locking. Instrumented sinks (write
// counters, recorders) can be layered over the real grid through this
// interface.
type CellSink interface {
	Set(x, y int, v uint16)
}
