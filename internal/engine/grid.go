// File: internal/engine/grid.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared width x height result table.

package engine

import "github.com/momentics/hioload-fractal/api"

// ResultGrid stores one iteration count per pixel in a flat row-major
// table, zero-initialized at construction. It carries no locking of its
// own: writes happen exclusively inside the engine's merge critical
// section, and reads are only valid after the engine has joined its
// workers. Under the partitioning invariant every cell is written
// exactly once per run.
type ResultGrid struct {
	width  int
	height int
	cells  []uint16
}

var (
	_ api.Grid     = (*ResultGrid)(nil)
	_ api.CellSink = (*ResultGrid)(nil)
)

// NewResultGrid allocates a zeroed width x height grid.
func NewResultGrid(width, height int) *ResultGrid {
	return &ResultGrid{
		width:  width,
		height: height,
		cells:  make([]uint16, width*height),
	}
}

// Width returns the pixel width.
func (g *ResultGrid) Width() int { return g.width }

// Height returns the pixel height.
func (g *ResultGrid) Height() int { return g.height }

// At returns the result stored for pixel (x, y).
func (g *ResultGrid) At(x, y int) uint16 {
	return g.cells[y*g.width+x]
}

// Set stores the result for pixel (x, y). Callers must hold the merge
// flag.
func (g *ResultGrid) Set(x, y int, v uint16) {
	g.cells[y*g.width+x] = v
}
