package cadical

import "github.com/mmaroti/cadical-go/internal/bindings"

// ReadDimacs parses a DIMACS CNF file into the solver's clause database and
// returns the variable count declared by the file. With strict set, the
// engine rejects any deviation from the format instead of tolerating common
// sloppiness. Parse and IO failures come back as the engine's diagnostic
// message, verbatim; the solver stays usable afterwards.
func (s *Solver) ReadDimacs(path string, strict bool) (int, error) {
	if err := s.guard("ReadDimacs"); err != nil {
		return 0, err
	}
	vars, err := bindings.ReadDimacs(s.h, path, strict)
	if err != nil {
		return 0, err
	}
	return int(vars), nil
}

// WriteDimacs serializes the current clause database in DIMACS format to the
// given path. Failures come back as the engine's diagnostic message,
// verbatim.
func (s *Solver) WriteDimacs(path string) error {
	return s.writeDimacs("WriteDimacs", path, 0)
}

// WriteDimacsMinMaxVar is WriteDimacs with the declared variable range padded
// up to at least minMaxVar.
func (s *Solver) WriteDimacsMinMaxVar(path string, minMaxVar int32) error {
	return s.writeDimacs("WriteDimacsMinMaxVar", path, minMaxVar)
}

func (s *Solver) writeDimacs(op, path string, minMaxVar int32) error {
	if err := s.guard(op); err != nil {
		return err
	}
	return bindings.WriteDimacs(s.h, path, minMaxVar)
}
