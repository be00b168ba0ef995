// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations are located
// in separate files (affinity_linux.go, affinity_windows.go, etc.) guarded by build tags.
//
// Pinning the producer and consumer of an SPSC ring to distinct cores
// keeps each cursor's cache line resident on one core; cmd/ringbench
// uses this for stable throughput numbers.

package affinity

import "runtime"

// SetAffinity pins current OS thread to a given logical CPU/core on supported platforms.
// On unsupported platforms returns an error.
func SetAffinity(cpuID int) error {
	return setAffinityPlatform(cpuID)
}

// PinCurrentGoroutine locks the calling goroutine to its OS thread and
// pins that thread to cpuID. The returned func undoes the lock. On a
// pin failure the error is returned but the goroutine stays locked, so
// the caller's thread-local assumptions keep holding either way.
func PinCurrentGoroutine(cpuID int) (unpin func(), err error) {
	runtime.LockOSThread()
	return runtime.UnlockOSThread, setAffinityPlatform(cpuID)
}
