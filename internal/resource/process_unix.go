//go:build linux || darwin

package resource

import "golang.org/x/sys/unix"

// AbsoluteProcessTime returns the CPU seconds (user plus system) consumed by
// the current process.
func AbsoluteProcessTime() float64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return AbsoluteRealTime()
	}
	return seconds(ru.Utime) + seconds(ru.Stime)
}

func seconds(tv unix.Timeval) float64 {
	return float64(tv.Sec) + float64(tv.Usec)*1e-6
}
