//go:build cgo && !windows

package bindings

/*
#include "ccadical_ext.h"
*/
import "C"

import (
	"sync"
	"unsafe"
)

// Callback registrations are keyed by the handle value itself, which is what
// the engine hands back as the opaque state pointer on every poll. One
// terminator and one learner per handle.
var (
	cbMu        sync.Mutex
	terminators = map[Handle]func() bool{}
	learners    = map[Handle]func([]int32){}
)

func dropCallbacks(h Handle) {
	cbMu.Lock()
	delete(terminators, h)
	delete(learners, h)
	cbMu.Unlock()
}

//export cadical_go_terminate
func cadical_go_terminate(state unsafe.Pointer) C.int {
	cbMu.Lock()
	fn := terminators[Handle(uintptr(state))]
	cbMu.Unlock()
	if fn == nil || !fn() {
		return 0
	}
	return 1
}

//export cadical_go_learn
func cadical_go_learn(state unsafe.Pointer, clause *C.int) {
	cbMu.Lock()
	fn := learners[Handle(uintptr(state))]
	cbMu.Unlock()
	if fn == nil || clause == nil {
		return
	}
	// The clause is a zero-terminated literal array owned by the engine; copy
	// it out before handing it to Go code.
	var lits []int32
	for p := clause; *p != 0; p = (*C.int)(unsafe.Add(unsafe.Pointer(p), unsafe.Sizeof(*p))) {
		lits = append(lits, int32(*p))
	}
	fn(lits)
}
