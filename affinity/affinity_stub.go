//go:build !linux
// +build !linux

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Fallback for platforms without a wired affinity syscall.

package affinity

// setAffinityPlatform reports affinity as unsupported; callers run
// unpinned.
func setAffinityPlatform(cpuID int) error {
	return ErrNotSupported
}
