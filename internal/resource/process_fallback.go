//go:build !linux && !darwin

package resource

// AbsoluteProcessTime falls back to wall-clock time on platforms without a
// separate CPU-time reading. This is an accuracy concession, not a bug:
// callers get a consistent monotone reading but it includes time spent off
// CPU.
func AbsoluteProcessTime() float64 {
	return AbsoluteRealTime()
}
