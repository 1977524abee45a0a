// File: core/fractal/viewport.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linear index <-> pixel <-> complex-plane mapping.

package fractal

// Viewport describes the rectangle of the complex plane spanned by the
// pixel grid: pixel column 0 maps to MinX, column width maps to
// MinX+SpanX, and likewise for rows. The values are configuration, not
// derived.
type Viewport struct {
	MinX  float64
	SpanX float64
	MinY  float64
	SpanY float64
}

// ClassicViewport returns the standard Mandelbrot window
// [-2.0, 0.47) x [-1.12, 1.12).
func ClassicViewport() Viewport {
	return Viewport{MinX: -2.0, SpanX: 2.47, MinY: -1.12, SpanY: 2.24}
}

// Mapper is the bijection between linear work indices in
// [0, width*height), pixel coordinates, and complex-plane coordinates.
// Mapper is a value type with no mutable state.
type Mapper struct {
	width  int
	height int
	vp     Viewport
}

// NewMapper builds a mapper over a width x height grid and a viewport.
func NewMapper(width, height int, vp Viewport) Mapper {
	return Mapper{width: width, height: height, vp: vp}
}

// Width returns the pixel width of the mapped grid.
func (m Mapper) Width() int { return m.width }

// Height returns the pixel height of the mapped grid.
func (m Mapper) Height() int { return m.height }

// Area returns the total number of pixels, width*height.
func (m Mapper) Area() int { return m.width * m.height }

// PositionFromIndex converts a linear index into pixel coordinates:
// y = index / width, x = index - y*width.
func (m Mapper) PositionFromIndex(index int) (x, y int) {
	y = index / m.width
	x = index - y*m.width
	return x, y
}

// ScaleX maps a pixel column to its real coordinate.
func (m Mapper) ScaleX(x int) float64 {
	return float64(x)/float64(m.width)*m.vp.SpanX + m.vp.MinX
}

// ScaleY maps a pixel row to its imaginary coordinate.
func (m Mapper) ScaleY(y int) float64 {
	return float64(y)/float64(m.height)*m.vp.SpanY + m.vp.MinY
}
