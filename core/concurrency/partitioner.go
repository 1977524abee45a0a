// File: core/concurrency/partitioner.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fetch-and-add batch partitioner over a linear index space.

package concurrency

import (
	"sync/atomic"

	"github.com/momentics/hioload-fractal/api"
)

// BatchPartitioner hands out contiguous batches of work indices from
// [0, totalArea). The only shared state is a monotonically increasing
// batch counter advanced with fetch-and-add, so no two claimants ever
// receive the same range. The final batch is clipped to the total area
// when batchSize does not divide it evenly.
type BatchPartitioner struct {
	next      atomic.Uint64
	batchSize int
	totalArea int
}

// Compile-time conformance check.
var _ api.Partitioner = (*BatchPartitioner)(nil)

// NewBatchPartitioner builds a partitioner over totalArea indices handed
// out batchSize at a time.
func NewBatchPartitioner(totalArea, batchSize int) (*BatchPartitioner, error) {
	if totalArea < 0 {
		return nil, ErrInvalidTotalArea
	}
	if batchSize <= 0 {
		return nil, ErrInvalidBatchSize
	}
	return &BatchPartitioner{batchSize: batchSize, totalArea: totalArea}, nil
}

// NextBatch atomically claims the next batch id and returns its clipped
// index range. Returns false once the claimed range would start at or
// beyond the total area; the partitioner is exhausted for good then,
// until Reset.
func (p *BatchPartitioner) NextBatch() (api.Batch, bool) {
	id := p.next.Add(1) - 1
	start := int(id) * p.batchSize
	if start >= p.totalArea {
		return api.Batch{}, false
	}
	end := start + p.batchSize
	if end > p.totalArea {
		end = p.totalArea
	}
	return api.Batch{Start: start, End: end}, true
}

// Reset rewinds the counter to batch zero. Callers must guarantee no
// concurrent NextBatch is in flight.
func (p *BatchPartitioner) Reset() {
	p.next.Store(0)
}

// TotalArea returns the size of the partitioned index space.
func (p *BatchPartitioner) TotalArea() int {
	return p.totalArea
}

// BatchSize returns the stride between batch starts.
func (p *BatchPartitioner) BatchSize() int {
	return p.batchSize
}
