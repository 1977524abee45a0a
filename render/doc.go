// Package render
// Author: momentics <momentics@gmail.com>
//
// Presentation layer for hioload-fractal. Renderers and the snapshot
// codec only ever read a grid, and only after the engine producing it
// has joined its workers.
package render
