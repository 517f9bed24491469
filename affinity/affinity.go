// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations
// live in separate files (affinity_linux.go, affinity_windows.go, etc.)
// guarded by build tags.
//
// Pinning matters to the drain worker: a consumer that owns one core keeps
// its poll cadence steady and off the producer's core.

package affinity

// SetAffinity pins the current OS thread to a given logical CPU on
// supported platforms. Callers must hold runtime.LockOSThread for the pin
// to be meaningful. On unsupported platforms returns an error.
func SetAffinity(cpuID int) error {
	return setAffinityPlatform(cpuID)
}
