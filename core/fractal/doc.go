// Package fractal
// Author: momentics <momentics@gmail.com>
//
// Pure escape-time arithmetic for hioload-fractal: the iteration kernel
// and the index/viewport mapper. Nothing in this package touches shared
// state, so every type here is safe to use from any number of workers.
package fractal
