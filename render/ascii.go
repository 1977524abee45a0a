// File: render/ascii.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Text renderer mapping iteration-count ranges to display symbols.

package render

import (
	"bufio"
	"io"

	"github.com/momentics/hioload-fractal/api"
)

// ASCIIRenderer writes one output row per grid row, picking a symbol per
// cell by fixed count thresholds. The default palette reproduces the
// classic rendition: counts of at most 10 print a space, up to 100 a
// dot, up to 200 an 'x', and everything above an 'O'.
type ASCIIRenderer struct {
	thresholds [3]uint16
	palette    [4]byte
}

var _ api.Renderer = (*ASCIIRenderer)(nil)

// NewASCIIRenderer returns a renderer with the default thresholds.
func NewASCIIRenderer() *ASCIIRenderer {
	return &ASCIIRenderer{
		thresholds: [3]uint16{10, 100, 200},
		palette:    [4]byte{' ', '.', 'x', 'O'},
	}
}

// NewASCIIRendererWith returns a renderer with caller-supplied
// thresholds (ascending) and symbols.
func NewASCIIRendererWith(thresholds [3]uint16, palette [4]byte) *ASCIIRenderer {
	return &ASCIIRenderer{thresholds: thresholds, palette: palette}
}

// Render writes the grid to w, rows top to bottom.
func (r *ASCIIRenderer) Render(w io.Writer, g api.Grid) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if err := bw.WriteByte(r.symbolFor(g.At(x, y))); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// symbolFor maps one count to its display byte.
func (r *ASCIIRenderer) symbolFor(count uint16) byte {
	switch {
	case count <= r.thresholds[0]:
		return r.palette[0]
	case count <= r.thresholds[1]:
		return r.palette[1]
	case count <= r.thresholds[2]:
		return r.palette[2]
	default:
		return r.palette[3]
	}
}
