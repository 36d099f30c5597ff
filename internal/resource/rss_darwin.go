//go:build darwin

package resource

import "golang.org/x/sys/unix"

// CurrentResidentSetSize is unavailable without the mach task APIs; zero
// signals "unknown", not "no memory used".
func CurrentResidentSetSize() uint64 {
	return 0
}

// MaxResidentSetSize returns the peak resident set size of the current
// process in bytes. Darwin reports the peak in bytes already.
func MaxResidentSetSize() uint64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return uint64(ru.Maxrss)
}
