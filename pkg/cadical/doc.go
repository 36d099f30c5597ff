// Package cadical provides Go bindings for the CaDiCaL incremental SAT
// solver.
//
// Literals are signed integers exactly as in the DIMACS format: positive for
// a variable, negative for its negation, never zero. Build a formula with
// AddClause, solve it with Solve or SolveWith, and read the model back with
// Value:
//
//	sat, err := cadical.New()
//	if err != nil {
//		// native solver not linked in
//	}
//	defer sat.Close()
//	sat.AddClause(1, 2)
//	sat.AddClause(-1, 2)
//	status, _ := sat.Solve()        // cadical.Satisfiable
//	value, _ := sat.Value(2)        // true
//
// # Architecture
//
// The search engine is the native CaDiCaL library; this package never
// reimplements any of it. All cgo lives in internal/bindings, which forwards
// each call to exactly one engine operation. The Solver type adds only Go
// conveniences on top: typed errors, a closed-state check, cooperative
// cancellation via the Terminator and Callbacks interfaces, and per-solver
// timing statistics.
//
// # Concurrency
//
// The engine keeps no thread-local state, so a Solver may be moved between
// goroutines. It must not be used from two goroutines at once; this package
// adds no locking. Long-running Solve calls are cancelled cooperatively: the
// engine polls the registered termination predicate at its own intervals and
// there is no asynchronous interrupt.
//
// # Performance
//
// Every method is one cgo crossing (roughly 100-200ns of overhead). Adding
// clauses literal by literal is therefore noticeably slower than batching
// with AddClause, and termination predicates should be cheap since the engine
// polls them frequently during search.
package cadical
