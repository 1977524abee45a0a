// File: api/partitioner.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Work distribution contract for compute engines.

package api

// Partitioner hands out disjoint work batches to concurrent claimants.
// NextBatch is the sole coordination point between workers competing for
// work: no two calls ever observe the same range.
type Partitioner interface {
	// NextBatch claims the next batch. The second result is false when
	// no work remains; the returned batch is then empty.
	NextBatch() (Batch, bool)

	// Reset rewinds the partitioner to the first batch. Must only be
	// called while no claimants are active.
	Reset()

	// TotalArea returns the size of the index space being partitioned.
	TotalArea() int
}
