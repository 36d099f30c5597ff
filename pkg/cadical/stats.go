package cadical

import "github.com/mmaroti/cadical-go/internal/resource"

// Stats aggregates timing and memory figures across a solver's Solve calls.
//
// ProcessSeconds falls back to wall-clock time on platforms without a
// CPU-time reading. The resident set fields are zero when the platform
// provides no reading; treat zero as "unknown", not "no memory used".
type Stats struct {
	Solves              uint64
	RealSeconds         float64
	ProcessSeconds      float64
	MaxResidentSetBytes uint64
	ResidentSetBytes    uint64
}

// Stats returns the accumulated figures plus a fresh resident-set snapshot.
func (s *Solver) Stats() Stats {
	if s.guard("Stats") != nil {
		return Stats{}
	}
	st := s.stats
	st.ResidentSetBytes = resource.CurrentResidentSetSize()
	return st
}
