//go:build !linux && !windows
// +build !linux,!windows

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Fallback for platforms without a thread-affinity syscall. Pinning is
// an optimization only, so callers treat the error as advisory and run
// unpinned.

package affinity

import "errors"

// setAffinityPlatform always reports unavailability here.
func setAffinityPlatform(cpuID int) error {
	return errors.New("affinity: not supported on this platform")
}
