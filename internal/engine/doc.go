// File: internal/engine/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Parallel escape-time engine for hioload-fractal. Workers claim disjoint
// index batches from a fetch-and-add partitioner, compute cells into
// thread-private buffers, and bulk-merge them into the single shared grid
// under one spin flag. The flag is the only lock in the system and every
// grid access happens inside its critical section, so per-cell locking is
// never needed.
package engine
