// Package control
// Author: momentics <momentics@gmail.com>
//
// Run observability for hioload-fractal: a thread-safe config snapshot
// store, a metrics registry fed by the engine after each run, and a
// bounded journal of run lifecycle events.
package control
