//go:build !linux && !darwin

package resource

// CurrentResidentSetSize reports zero on platforms without a memory reading.
// Zero means "unavailable", not "no memory used".
func CurrentResidentSetSize() uint64 {
	return 0
}

// MaxResidentSetSize reports zero on platforms without a memory reading.
func MaxResidentSetSize() uint64 {
	return 0
}
