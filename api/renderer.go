// File: api/renderer.go
// Author: momentics <momentics@gmail.com>
//
// Presentation contract: renderers consume finished grids read-only.

package api

import "io"

// Renderer turns a finished Grid into some external representation.
// Implementations must only read the grid, and only after the producing
// engine has joined its workers.
type Renderer interface {
	Render(w io.Writer, g Grid) error
}
