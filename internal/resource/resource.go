// Package resource supplies wall-clock, process-time and memory-usage
// readings for solver statistics. Platform-specific readings are selected at
// build time; where a platform offers no reading, the fallback returns a
// sentinel rather than fabricating a value.
package resource

import "time"

// AbsoluteRealTime returns wall-clock seconds since the Unix epoch with
// sub-millisecond resolution.
func AbsoluteRealTime() float64 {
	return float64(time.Now().UnixNano()) * 1e-9
}

// RealTime returns wall-clock seconds elapsed since the given baseline, which
// must itself be an AbsoluteRealTime reading. The caller owns the baseline.
func RealTime(since float64) float64 {
	return AbsoluteRealTime() - since
}

// ProcessTime returns process seconds elapsed since the given baseline, which
// must itself be an AbsoluteProcessTime reading.
func ProcessTime(since float64) float64 {
	return AbsoluteProcessTime() - since
}
