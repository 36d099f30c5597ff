package bindings

import "errors"

// Handle is an opaque identifier for one engine instance. Its bit pattern is
// never interpreted here; it is only converted back to the pointer it was
// created from. A Handle obtained from Init stays valid for every call until
// it is passed to Release.
type Handle uintptr

var (
	// ErrNotBuilt reports that the native solver was not linked into the
	// current binary. Callers can use this to fall back to a diagnostic
	// message instead of crashing.
	ErrNotBuilt = errors.New("cadical/internal/bindings: native solver not built")

	// ErrCGONotEnabled signals that the package was compiled without cgo and
	// therefore cannot talk to the native library.
	ErrCGONotEnabled = errors.New("cadical/internal/bindings: cgo not enabled")
)
