// File: internal/engine/worker.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The worker loop: claim a batch, compute it into the private buffer,
// merge under the spin flag, repeat until the partitioner runs dry.

package engine

import (
	"log"

	"github.com/momentics/hioload-fractal/affinity"
	"github.com/momentics/hioload-fractal/pool"
)

// runWorker is the body of one worker goroutine. Nothing in here
// allocates on the per-pixel path: the buffer is pooled and reused, and
// both mapper and kernel are pure value computations.
func (e *Engine) runWorker(id int) {
	defer e.wg.Done()

	if e.pinWorkers {
		if err := affinity.Pin(id); err != nil {
			log.Printf("[engine] worker %d runs unpinned: %v", id, err)
		} else {
			defer affinity.Unpin()
		}
	}

	buf := e.bufs.Get()
	defer e.bufs.Put(buf)

	sinceMerge := 0
	for {
		batch, ok := e.parts.NextBatch()
		if !ok {
			// No batches remain: merge whatever is still buffered
			// and terminate.
			e.mergeBuffer(buf)
			return
		}
		e.metrics.BatchesClaimed.Add(1)

		for index := batch.Start; index != batch.End; index++ {
			x, y := e.mapper.PositionFromIndex(index)
			count := e.kernel.Iterate(e.mapper.ScaleX(x), e.mapper.ScaleY(y))
			buf.Append(x, y, count)
			sinceMerge++
			// Bound buffer occupancy even mid-batch.
			if sinceMerge == e.batchSize {
				e.mergeBuffer(buf)
				sinceMerge = 0
			}
		}
		if sinceMerge != 0 {
			e.mergeBuffer(buf)
			sinceMerge = 0
		}
	}
}

// mergeBuffer drains the worker's buffer into the shared sink while
// holding the merge flag. The critical section covers every grid access
// in the system, so the bulk drain needs no per-cell synchronization;
// releasing the flag publishes the written cells to the next acquirer.
func (e *Engine) mergeBuffer(buf *pool.ResultBuffer) {
	if buf.Len() == 0 {
		return
	}
	cells := uint64(buf.Len())

	for !e.merge.TryAcquire() {
		e.metrics.SpinRetries.Add(1)
	}
	buf.DrainInto(e.sink)
	e.merge.Release()

	e.metrics.Merges.Add(1)
	e.metrics.CellsMerged.Add(cells)
}
