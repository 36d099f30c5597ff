package cadical

import (
	"math"

	"go.uber.org/zap"

	"github.com/mmaroti/cadical-go/internal/bindings"
	"github.com/mmaroti/cadical-go/internal/resource"
)

// Status is the engine's state code as reported after the last solve call.
// The values match the DIMACS exit-code convention.
type Status int

const (
	// Unknown means the engine has not decided the formula: no solve call
	// yet, a new clause invalidated the previous answer, a resource limit
	// was exhausted, or a terminator stopped the search.
	Unknown Status = 0
	// Satisfiable means the last solve call found a model.
	Satisfiable Status = 10
	// Unsatisfiable means the last solve call refuted the formula.
	Unsatisfiable Status = 20
)

func (s Status) String() string {
	switch s {
	case Satisfiable:
		return "SATISFIABLE"
	case Unsatisfiable:
		return "UNSATISFIABLE"
	default:
		return "UNKNOWN"
	}
}

// Solver owns exactly one native engine instance. It is created with New and
// must be released with Close. A Solver may be moved between goroutines but
// must not be used from two goroutines at once.
type Solver struct {
	h      bindings.Handle
	closed bool
	cbs    Callbacks
	stats  Stats
}

// New constructs a fresh solver. It fails with ErrNotBuilt when the native
// library is not linked into the binary.
func New() (*Solver, error) {
	h, err := bindings.Init()
	if err != nil {
		return nil, opErr("New", remapError(err))
	}
	return &Solver{h: h}, nil
}

// NewWithConfig constructs a solver and applies one of the engine's preset
// configurations: "default", "plain", "sat" or "unsat".
func NewWithConfig(name string) (*Solver, error) {
	s, err := New()
	if err != nil {
		return nil, err
	}
	if !bindings.Configure(s.h, name) {
		_ = s.Close()
		return nil, opErr("NewWithConfig", ErrUnknownConfig)
	}
	return s, nil
}

// Close releases the native solver. It returns ErrSolverClosed when called
// twice; any other use of a closed solver also reports ErrSolverClosed
// instead of touching the released engine.
func (s *Solver) Close() error {
	if s == nil {
		return nil
	}
	if s.closed {
		return ErrSolverClosed
	}
	s.closed = true
	s.cbs = nil
	bindings.Release(s.h)
	s.h = 0
	return nil
}

func (s *Solver) guard(op string) error {
	if s == nil || s.closed {
		return opErr(op, ErrSolverClosed)
	}
	return nil
}

// Signature returns the name and version of the linked CaDiCaL library.
func (s *Solver) Signature() string {
	if s.guard("Signature") != nil {
		return ""
	}
	return bindings.Signature()
}

// Add adds one literal of the current clause; zero terminates the clause.
// This is the raw IPASIR surface, see AddClause for the common case.
func (s *Solver) Add(lit int32) error {
	if err := s.guard("Add"); err != nil {
		return err
	}
	bindings.Add(s.h, lit)
	return nil
}

// AddClause adds a complete clause. All literals must be non-zero and
// different from math.MinInt32.
func (s *Solver) AddClause(lits ...int32) error {
	if err := s.guard("AddClause"); err != nil {
		return err
	}
	for _, lit := range lits {
		if lit == 0 || lit == math.MinInt32 {
			return opErr("AddClause", ErrInvalidLiteral)
		}
		bindings.Add(s.h, lit)
	}
	bindings.Add(s.h, 0)
	return nil
}

// Assume adds an assumption for the next Solve call. Assumptions are reset
// when the solve call returns.
func (s *Solver) Assume(lit int32) error {
	if err := s.guard("Assume"); err != nil {
		return err
	}
	if lit == 0 || lit == math.MinInt32 {
		return opErr("Assume", ErrInvalidLiteral)
	}
	bindings.Assume(s.h, lit)
	return nil
}

// Solve decides the formula built so far. It returns Satisfiable,
// Unsatisfiable, or Unknown when a limit or terminator stopped the search.
func (s *Solver) Solve() (Status, error) {
	if err := s.guard("Solve"); err != nil {
		return Unknown, err
	}
	if s.cbs != nil {
		s.cbs.Started()
	}
	realStart := resource.AbsoluteRealTime()
	procStart := resource.AbsoluteProcessTime()
	res := Status(bindings.Solve(s.h))
	elapsed := resource.RealTime(realStart)
	s.stats.Solves++
	s.stats.RealSeconds += elapsed
	s.stats.ProcessSeconds += resource.ProcessTime(procStart)
	if rss := resource.MaxResidentSetSize(); rss > s.stats.MaxResidentSetBytes {
		s.stats.MaxResidentSetBytes = rss
	}
	logger().Debug("solve finished",
		zap.Stringer("status", res),
		zap.Float64("seconds", elapsed))
	return res, nil
}

// SolveWith solves under the given assumptions and, when constraint is
// non-empty, under the given temporary constraint clause. Both are valid for
// this call only.
func (s *Solver) SolveWith(assumptions, constraint []int32) (Status, error) {
	if err := s.guard("SolveWith"); err != nil {
		return Unknown, err
	}
	for _, lit := range assumptions {
		if lit == 0 || lit == math.MinInt32 {
			return Unknown, opErr("SolveWith", ErrInvalidLiteral)
		}
		bindings.Assume(s.h, lit)
	}
	for _, lit := range constraint {
		if lit == 0 || lit == math.MinInt32 {
			return Unknown, opErr("SolveWith", ErrInvalidLiteral)
		}
		bindings.Constrain(s.h, lit)
	}
	if len(constraint) > 0 {
		bindings.Constrain(s.h, 0)
	}
	return s.Solve()
}

// Status returns the outcome of the last solve call. It reverts to Unknown
// as soon as a new clause is added.
func (s *Solver) Status() Status {
	if s.guard("Status") != nil {
		return Unknown
	}
	return Status(bindings.Status(s.h))
}

// Value returns the value of the given literal in the last model. The second
// result is false when the literal is unassigned, meaning the formula is
// satisfied either way. Only meaningful while Status is Satisfiable.
func (s *Solver) Value(lit int32) (value, determined bool) {
	if s.guard("Value") != nil || lit == 0 || lit == math.MinInt32 {
		return false, false
	}
	abs := lit
	if abs < 0 {
		abs = -abs
	}
	switch bindings.Val(s.h, lit) {
	case abs:
		return true, true
	case -abs:
		return false, true
	default:
		return false, false
	}
}

// Failed reports whether the given assumed literal was used in the proof of
// unsatisfiability. Only meaningful while Status is Unsatisfiable.
func (s *Solver) Failed(lit int32) bool {
	if s.guard("Failed") != nil || lit == 0 || lit == math.MinInt32 {
		return false
	}
	return bindings.Failed(s.h, lit)
}

// ConstraintFailed reports whether the temporary constraint passed to
// SolveWith was used in the proof of unsatisfiability.
func (s *Solver) ConstraintFailed() bool {
	if s.guard("ConstraintFailed") != nil {
		return false
	}
	return bindings.ConstraintFailed(s.h)
}

// MaxVariable returns the largest variable index known to the engine. It is
// monotonically non-decreasing over the solver's lifetime.
func (s *Solver) MaxVariable() int32 {
	if s.guard("MaxVariable") != nil {
		return 0
	}
	return bindings.Vars(s.h)
}

// NumVariables returns the number of active variables. Variables become
// inactive when they are eliminated or fixed at the root level.
func (s *Solver) NumVariables() int {
	if s.guard("NumVariables") != nil {
		return 0
	}
	return int(bindings.Active(s.h))
}

// NumClauses returns the number of active irredundant clauses.
func (s *Solver) NumClauses() int {
	if s.guard("NumClauses") != nil {
		return 0
	}
	return int(bindings.Irredundant(s.h))
}
