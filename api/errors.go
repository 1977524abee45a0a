// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values shared across the library.

package api

import "errors"

var (
	// ErrAlreadyRunning is returned when a run is requested on an
	// engine that is already computing.
	ErrAlreadyRunning = errors.New("engine is already running")

	// ErrInvalidArgument indicates an out-of-range configuration value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSnapshotCorrupt indicates a grid snapshot failed validation.
	ErrSnapshotCorrupt = errors.New("snapshot is corrupt")
)
