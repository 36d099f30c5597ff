// Package bindings contains all CGO bindings to the CaDiCaL C++ library.
//
// # Design Principles
//
//  1. Isolation: ALL CGO code lives in this package. No other package imports
//     "C". This keeps the cgo surface auditable and the rest of the module
//     portable.
//
//  2. Transparent forwarding: every function unwraps the opaque handle and
//     forwards to exactly one engine operation. No semantics are added, no
//     locking is added, and engine-produced diagnostics are passed through
//     verbatim.
//
//  3. Lifecycle: handles come from Init and die with Release, exactly once.
//     Release clears any registered callbacks before destroying the engine so
//     no termination poll can fire during teardown. Double release or use
//     after release is undefined behavior, matching the engine's own
//     contract.
//
//  4. Callbacks: terminate and learn callbacks cross from C back into Go
//     through exported trampolines keyed by the handle value. The registered
//     Go functions must be cheap and must not call back into the solver.
//
// Builds without cgo (or on Windows) compile the stub implementation, whose
// entry point returns ErrNotBuilt.
package bindings
