//go:build cgo && !windows

package bindings

/*
#cgo CFLAGS: -I${SRCDIR}
#cgo CXXFLAGS: -std=c++11 -I${SRCDIR}
#cgo linux CXXFLAGS: -I/usr/local/include
#cgo linux LDFLAGS: -L/usr/local/lib
#cgo darwin CXXFLAGS: -I/opt/homebrew/include -I/usr/local/include
#cgo darwin LDFLAGS: -L/opt/homebrew/lib -L/usr/local/lib
#cgo LDFLAGS: -lcadical
#include <stdlib.h>
#include "ccadical_ext.h"

extern int cadical_go_terminate(void *state);
extern void cadical_go_learn(void *state, int *clause);

static void cadical_go_set_terminate(CCaDiCaL *slv, void *state) {
	ccadical_set_terminate(slv, state, cadical_go_terminate);
}

static void cadical_go_clear_terminate(CCaDiCaL *slv) {
	ccadical_set_terminate(slv, 0, 0);
}

static void cadical_go_set_learn(CCaDiCaL *slv, void *state, int max_length) {
	ccadical_set_learn(slv, state, max_length, cadical_go_learn);
}

static void cadical_go_clear_learn(CCaDiCaL *slv) {
	ccadical_set_learn(slv, 0, 0, 0);
}
*/
import "C"

import (
	"errors"
	"unsafe"
)

func ptr(h Handle) *C.CCaDiCaL {
	return (*C.CCaDiCaL)(unsafe.Pointer(uintptr(h)))
}

// Init constructs a fresh engine instance and returns its handle.
func Init() (Handle, error) {
	p := C.ccadical_init()
	if p == nil {
		return 0, errors.New("cadical/internal/bindings: init failed")
	}
	return Handle(uintptr(unsafe.Pointer(p))), nil
}

// Release clears any registered callbacks and destroys the engine. The handle
// must not be used afterwards.
func Release(h Handle) {
	dropCallbacks(h)
	C.ccadical_release(ptr(h))
}

// Signature returns the name and version of the linked CaDiCaL library.
func Signature() string {
	return C.GoString(C.ccadical_signature())
}

func Add(h Handle, lit int32) {
	C.ccadical_add(ptr(h), C.int(lit))
}

func Assume(h Handle, lit int32) {
	C.ccadical_assume(ptr(h), C.int(lit))
}

func Solve(h Handle) int {
	return int(C.ccadical_solve(ptr(h)))
}

func Val(h Handle, lit int32) int32 {
	return int32(C.ccadical_val(ptr(h), C.int(lit)))
}

func Failed(h Handle, lit int32) bool {
	return C.ccadical_failed(ptr(h), C.int(lit)) != 0
}

func Constrain(h Handle, lit int32) {
	C.ccadical_constrain(ptr(h), C.int(lit))
}

func ConstraintFailed(h Handle) bool {
	return C.ccadical_constraint_failed(ptr(h)) != 0
}

func Status(h Handle) int {
	return int(C.ccadical_status(ptr(h)))
}

func Vars(h Handle) int32 {
	return int32(C.ccadical_vars(ptr(h)))
}

func Active(h Handle) int64 {
	return int64(C.ccadical_active(ptr(h)))
}

func Irredundant(h Handle) int64 {
	return int64(C.ccadical_irredundant(ptr(h)))
}

func Simplify(h Handle) int {
	return int(C.ccadical_simplify(ptr(h)))
}

func Freeze(h Handle, lit int32) {
	C.ccadical_freeze(ptr(h), C.int(lit))
}

func Melt(h Handle, lit int32) {
	C.ccadical_melt(ptr(h), C.int(lit))
}

func Frozen(h Handle, lit int32) bool {
	return C.ccadical_frozen(ptr(h), C.int(lit)) != 0
}

// SetOption sets a named engine option. It reports whether the engine
// recognized the name and accepted the value.
func SetOption(h Handle, name string, val int32) bool {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return C.ccadical_set_option(ptr(h), cname, C.int(val)) != 0
}

// Limit sets a named resource bound for the next solve call. It reports
// whether the engine recognized the limit name.
func Limit(h Handle, name string, val int32) bool {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return C.ccadical_limit2(ptr(h), cname, C.int(val)) != 0
}

// Configure applies a named preset configuration. It reports whether the
// engine recognized the name and allowed reconfiguration in its current
// state.
func Configure(h Handle, name string) bool {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return C.ccadical_configure(ptr(h), cname) != 0
}

// ReadDimacs parses a DIMACS CNF file into the engine's clause database and
// returns the declared variable count. A parse or IO failure comes back as an
// error carrying the engine's diagnostic message verbatim.
func ReadDimacs(h Handle, path string, strict bool) (int32, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	var vars C.int
	var cstrict C.int
	if strict {
		cstrict = 1
	}
	msg := C.ccadical_read_dimacs(ptr(h), cpath, &vars, cstrict)
	if msg != nil {
		return 0, errors.New(C.GoString(msg))
	}
	return int32(vars), nil
}

// WriteDimacs serializes the engine's clause database to the given path,
// padding the variable range up to minMaxVar when positive.
func WriteDimacs(h Handle, path string, minMaxVar int32) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	msg := C.ccadical_write_dimacs(ptr(h), cpath, C.int(minMaxVar))
	if msg != nil {
		return errors.New(C.GoString(msg))
	}
	return nil
}

// SetTerminate registers a termination predicate polled by the engine during
// search. The predicate must be cheap and must not call back into the solver.
func SetTerminate(h Handle, fn func() bool) {
	cbMu.Lock()
	terminators[h] = fn
	cbMu.Unlock()
	C.cadical_go_set_terminate(ptr(h), unsafe.Pointer(uintptr(h)))
}

// ClearTerminate removes a previously registered termination predicate.
func ClearTerminate(h Handle) {
	C.cadical_go_clear_terminate(ptr(h))
	cbMu.Lock()
	delete(terminators, h)
	cbMu.Unlock()
}

// SetLearn registers a callback invoked with every learned clause of at most
// maxLength literals.
func SetLearn(h Handle, maxLength int32, fn func(clause []int32)) {
	cbMu.Lock()
	learners[h] = fn
	cbMu.Unlock()
	C.cadical_go_set_learn(ptr(h), unsafe.Pointer(uintptr(h)), C.int(maxLength))
}

// ClearLearn removes a previously registered learn callback.
func ClearLearn(h Handle) {
	C.cadical_go_clear_learn(ptr(h))
	cbMu.Lock()
	delete(learners, h)
	cbMu.Unlock()
}
