// File: core/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Coordination primitives for hioload-fractal: the single-word spin flag
// that serializes bulk merges into the shared grid, and the fetch-and-add
// batch partitioner that hands disjoint index ranges to workers. Both are
// single atomic words; neither ever blocks in the scheduler.
package concurrency
