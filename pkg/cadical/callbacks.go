package cadical

import (
	"time"

	"github.com/mmaroti/cadical-go/internal/bindings"
)

// Terminator is a cooperative cancellation check polled by the engine during
// search. Terminate must be cheap, must not block, and must not call back
// into the solver.
type Terminator interface {
	Terminate() bool
}

// TerminatorFunc adapts a plain function to the Terminator interface.
type TerminatorFunc func() bool

func (f TerminatorFunc) Terminate() bool { return f() }

// SetTerminator registers a termination predicate for subsequent solve
// calls. A nil terminator removes the registration.
func (s *Solver) SetTerminator(t Terminator) error {
	if err := s.guard("SetTerminator"); err != nil {
		return err
	}
	if t == nil {
		bindings.ClearTerminate(s.h)
		return nil
	}
	bindings.SetTerminate(s.h, t.Terminate)
	return nil
}

// Callbacks is the full callback surface of the engine for finer control
// than SetTerminator.
type Callbacks interface {
	// Started is called at the beginning of every Solve call.
	Started()

	// Terminate is polled by the engine to check whether it should stop.
	Terminate() bool

	// MaxLength bounds the learned clauses passed to Learn. It is consulted
	// once, when SetCallbacks is called; zero disables learn callbacks.
	MaxLength() int32

	// Learn is called with every learned clause of at most MaxLength
	// literals. The slice is owned by the callee.
	Learn(clause []int32)
}

// SetCallbacks registers the callbacks for subsequent solve calls, replacing
// any previous registration. A nil value removes both the termination and
// the learn callback.
func (s *Solver) SetCallbacks(cbs Callbacks) error {
	if err := s.guard("SetCallbacks"); err != nil {
		return err
	}
	s.cbs = cbs
	if cbs == nil {
		bindings.ClearTerminate(s.h)
		bindings.ClearLearn(s.h)
		return nil
	}
	bindings.SetTerminate(s.h, cbs.Terminate)
	if maxLen := cbs.MaxLength(); maxLen > 0 {
		bindings.SetLearn(s.h, maxLen, cbs.Learn)
	} else {
		bindings.ClearLearn(s.h)
	}
	return nil
}

// Timeout is a ready-made Callbacks implementation that terminates the
// search a fixed duration after each Solve call starts.
type Timeout struct {
	start time.Time
	limit time.Duration
}

// NewTimeout creates a timeout callback with the given duration.
func NewTimeout(d time.Duration) *Timeout {
	return &Timeout{start: time.Now(), limit: d}
}

func (t *Timeout) Started() { t.start = time.Now() }

func (t *Timeout) Terminate() bool { return time.Since(t.start) >= t.limit }

func (t *Timeout) MaxLength() int32 { return 0 }

func (t *Timeout) Learn([]int32) {}
