//go:build linux

package resource

import (
	"bytes"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// CurrentResidentSetSize returns the resident set size of the current process
// in bytes, read from /proc/self/statm. Zero means the reading is
// unavailable, not that no memory is used.
func CurrentResidentSetSize() uint64 {
	buf, err := os.ReadFile("/proc/self/statm")
	if err != nil {
		return 0
	}
	fields := bytes.Fields(buf)
	if len(fields) < 2 {
		return 0
	}
	pages, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return pages * uint64(os.Getpagesize())
}

// MaxResidentSetSize returns the peak resident set size of the current
// process in bytes. Linux reports the peak in kilobytes.
func MaxResidentSetSize() uint64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return uint64(ru.Maxrss) * 1024
}
