// File: pool/resultbuffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Thread-private accumulation buffer for computed cells.

package pool

import (
	"fmt"

	"github.com/momentics/hioload-fractal/api"
)

// Cell is one computed pixel: coordinates plus iteration count.
type Cell struct {
	X     int
	Y     int
	Count uint16
}

// ResultBuffer is an arena of Cells owned by exactly one worker. Append
// writes into pre-sized backing storage indexed by a running length
// counter; DrainInto empties the buffer by resetting that counter, so
// the storage is reused rather than reallocated between flushes.
//
// The buffer has no internal synchronization. Workers only touch their
// own buffer, and draining happens inside the engine's merge critical
// section.
type ResultBuffer struct {
	cells  []Cell
	length int
}

// NewResultBuffer allocates a buffer holding up to capacity cells.
// Engines size capacity to the batch size, which makes overflow
// structurally impossible: a full batch always fits.
func NewResultBuffer(capacity int) *ResultBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &ResultBuffer{cells: make([]Cell, capacity)}
}

// Append stores one computed cell in the next free slot. Appending past
// capacity is a broken engine invariant, not a recoverable condition,
// and fails fast.
func (b *ResultBuffer) Append(x, y int, count uint16) {
	if b.length == len(b.cells) {
		panic(fmt.Sprintf("pool: result buffer overflow at capacity %d", len(b.cells)))
	}
	b.cells[b.length] = Cell{X: x, Y: y, Count: count}
	b.length++
}

// DrainInto writes every accumulated cell into sink, then resets the
// buffer to empty. Entries are logically cleared, physically overwritten
// by the next use.
func (b *ResultBuffer) DrainInto(sink api.CellSink) {
	for i := 0; i != b.length; i++ {
		e := &b.cells[i]
		sink.Set(e.X, e.Y, e.Count)
	}
	b.length = 0
}

// Len returns the number of accumulated cells.
func (b *ResultBuffer) Len() int { return b.length }

// Cap returns the fixed capacity.
func (b *ResultBuffer) Cap() int { return len(b.cells) }
