package cadical

import "github.com/mmaroti/cadical-go/internal/bindings"

// Set changes a named engine option, see the CaDiCaL documentation for the
// full vocabulary. Names are case-sensitive and validated only by the engine;
// an unrecognized name or rejected value reports ErrUnknownOption.
func (s *Solver) Set(name string, val int32) error {
	if err := s.guard("Set"); err != nil {
		return err
	}
	if !bindings.SetOption(s.h, name, val) {
		return opErr("Set", ErrUnknownOption)
	}
	return nil
}

// Limit sets a named resource bound for the next solve call only; the engine
// resets it to its default afterwards. Supported names include:
//   - "conflicts": abort the search after this many conflicts (-1 disables).
//   - "decisions": abort the search after this many decisions (-1 disables).
//   - "preprocessing": number of preprocessing rounds (defaults to 0).
//   - "localsearch": number of local search rounds (defaults to 0).
func (s *Solver) Limit(name string, val int32) error {
	if err := s.guard("Limit"); err != nil {
		return err
	}
	if !bindings.Limit(s.h, name, val) {
		return opErr("Limit", ErrUnknownLimit)
	}
	return nil
}

// Configure applies a named preset configuration: "default", "plain", "sat"
// or "unsat". Reconfiguration fails once search has advanced the engine past
// its configuration state.
func (s *Solver) Configure(name string) error {
	if err := s.guard("Configure"); err != nil {
		return err
	}
	if !bindings.Configure(s.h, name) {
		return opErr("Configure", ErrUnknownConfig)
	}
	return nil
}

// Simplify runs three rounds of preprocessing without CDCL search. Like
// Solve it resets pending assumptions and limits before returning.
func (s *Solver) Simplify() (Status, error) {
	if err := s.guard("Simplify"); err != nil {
		return Unknown, err
	}
	return Status(bindings.Simplify(s.h)), nil
}

// Freeze marks a variable as still needed by future clauses or assumptions,
// protecting it from elimination. Freezes nest: melt as many times as frozen.
func (s *Solver) Freeze(lit int32) error {
	if err := s.guard("Freeze"); err != nil {
		return err
	}
	bindings.Freeze(s.h, lit)
	return nil
}

// Melt undoes one Freeze of the variable.
func (s *Solver) Melt(lit int32) error {
	if err := s.guard("Melt"); err != nil {
		return err
	}
	bindings.Melt(s.h, lit)
	return nil
}

// Frozen reports whether the variable is currently frozen.
func (s *Solver) Frozen(lit int32) bool {
	if s.guard("Frozen") != nil {
		return false
	}
	return bindings.Frozen(s.h, lit)
}
