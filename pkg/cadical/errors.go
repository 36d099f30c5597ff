package cadical

import (
	"errors"
	"fmt"

	"github.com/mmaroti/cadical-go/internal/bindings"
)

var (
	// ErrNotBuilt reports that the native solver library was not linked into
	// the current binary (non-cgo or Windows builds).
	ErrNotBuilt = errors.New("cadical: native solver not built")

	// ErrSolverClosed indicates the solver has been closed.
	ErrSolverClosed = errors.New("cadical: solver closed")

	// ErrInvalidLiteral indicates a zero or out-of-range literal.
	ErrInvalidLiteral = errors.New("cadical: invalid literal")

	// ErrUnknownConfig indicates a configuration preset name the engine does
	// not recognize, or reconfiguration after search has started.
	ErrUnknownConfig = errors.New("cadical: unknown configuration")

	// ErrUnknownLimit indicates a limit name the engine does not recognize.
	ErrUnknownLimit = errors.New("cadical: unknown limit")

	// ErrUnknownOption indicates an option name the engine does not
	// recognize or a value it rejects.
	ErrUnknownOption = errors.New("cadical: unknown option")
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cadical.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func opErr(op string, err error) error {
	return &Error{Op: op, Err: err}
}

// remapError converts bindings layer errors to public API errors. Engine
// diagnostics (DIMACS parse and IO messages) are not remapped; they pass
// through verbatim.
func remapError(err error) error {
	if errors.Is(err, bindings.ErrNotBuilt) || errors.Is(err, bindings.ErrCGONotEnabled) {
		return ErrNotBuilt
	}
	return err
}
