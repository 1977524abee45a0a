// Package pool
// Author: momentics <momentics@gmail.com>
//
// Memory layer for hioload-fractal: fixed-capacity result buffers with
// reused backing storage, plus a generic object pool so buffers survive
// across engine runs. Nothing here allocates on the hot per-pixel path.
package pool
