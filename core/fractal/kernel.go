// File: core/fractal/kernel.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Escape-time iteration kernel: z <- z^2 + c over double precision.

package fractal

// Default kernel parameters, matching the classic rendering.
const (
	DefaultMaxIterations  = 1000
	DefaultEscapeRadiusSq = 4.0
)

// EscapeKernel counts iterations of z <- z^2 + c until |z|^2 exceeds the
// escape radius or the cap is reached. Total function: every call returns
// within MaxIterations steps.
type EscapeKernel struct {
	maxIterations  int
	escapeRadiusSq float64
}

// NewEscapeKernel builds a kernel with the given iteration cap and squared
// escape radius. Non-positive values fall back to the defaults.
func NewEscapeKernel(maxIterations int, escapeRadiusSq float64) *EscapeKernel {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	if escapeRadiusSq <= 0 {
		escapeRadiusSq = DefaultEscapeRadiusSq
	}
	return &EscapeKernel{
		maxIterations:  maxIterations,
		escapeRadiusSq: escapeRadiusSq,
	}
}

// Iterate returns the escape-time count for c = (cx, cy), in
// [0, MaxIterations]. The square is expanded into real/imaginary parts
// once per iteration, evaluated before the escape test.
func (k *EscapeKernel) Iterate(cx, cy float64) uint16 {
	var x, y float64
	i := 0
	for ; i != k.maxIterations; i++ {
		xtemp := x*x - y*y + cx
		y = 2*x*y + cy
		x = xtemp
		if x*x+y*y > k.escapeRadiusSq {
			break
		}
	}
	return uint16(i)
}

// MaxIterations returns the iteration cap.
func (k *EscapeKernel) MaxIterations() int {
	return k.maxIterations
}
