// Command cadical-go solves a DIMACS CNF file with the bound CaDiCaL engine
// and prints the result in the solver competition format: an "s" status line
// followed by "v" model lines when satisfiable. The exit code follows the
// same convention: 10 satisfiable, 20 unsatisfiable, 0 unknown.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/mmaroti/cadical-go/pkg/cadical"
)

func main() {
	var (
		configName = flag.String("config", "", "preset configuration: default, plain, sat or unsat")
		optionsVal = flag.String("options", "", "JSON file with engine options and limits")
		timeoutVal = flag.Duration("timeout", 0, "wall-clock budget for the solve call")
		strictVal  = flag.Bool("strict", false, "strict DIMACS parsing")
		writeVal   = flag.String("write", "", "write the parsed formula back out to this path")
		quietVal   = flag.Bool("quiet", false, "suppress the model (v) lines")
		verboseVal = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] input.cnf\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	logger := zap.NewNop()
	if *verboseVal {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintf(os.Stderr, "logger: %v\n", err)
			os.Exit(1)
		}
	}
	cadical.SetLogger(logger)

	code := run(flag.Arg(0), *configName, *optionsVal, *writeVal,
		*timeoutVal, *strictVal, *quietVal, logger)
	_ = logger.Sync()
	os.Exit(code)
}

func run(input, configName, optionsPath, writePath string,
	timeout time.Duration, strict, quiet bool, logger *zap.Logger) int {

	sat, err := cadical.New()
	if err != nil {
		if errors.Is(err, cadical.ErrNotBuilt) {
			fmt.Fprintln(os.Stderr, "cadical-go: native solver not built into this binary")
			return 1
		}
		fmt.Fprintf(os.Stderr, "cadical-go: %v\n", err)
		return 1
	}
	defer sat.Close()

	logger.Info("solver ready", zap.String("signature", sat.Signature()))

	if configName != "" {
		if err := sat.Configure(configName); err != nil {
			fmt.Fprintf(os.Stderr, "cadical-go: config %q: %v\n", configName, err)
			return 1
		}
	}
	if optionsPath != "" {
		opts, err := loadOptions(optionsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cadical-go: %v\n", err)
			return 1
		}
		if err := opts.apply(sat); err != nil {
			fmt.Fprintf(os.Stderr, "cadical-go: %v\n", err)
			return 1
		}
	}

	vars, err := sat.ReadDimacs(input, strict)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cadical-go: %v\n", err)
		return 1
	}
	logger.Info("formula loaded",
		zap.String("path", input),
		zap.Int("vars", vars),
		zap.Int("clauses", sat.NumClauses()))

	if writePath != "" {
		if err := sat.WriteDimacs(writePath); err != nil {
			fmt.Fprintf(os.Stderr, "cadical-go: %v\n", err)
			return 1
		}
	}
	if timeout > 0 {
		if err := sat.SetCallbacks(cadical.NewTimeout(timeout)); err != nil {
			fmt.Fprintf(os.Stderr, "cadical-go: %v\n", err)
			return 1
		}
	}

	status, err := sat.Solve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cadical-go: %v\n", err)
		return 1
	}

	stats := sat.Stats()
	logger.Info("solve finished",
		zap.Stringer("status", status),
		zap.Float64("real_seconds", stats.RealSeconds),
		zap.Float64("process_seconds", stats.ProcessSeconds),
		zap.Uint64("max_rss_bytes", stats.MaxResidentSetBytes))

	fmt.Printf("s %s\n", status)
	if status == cadical.Satisfiable && !quiet {
		printModel(sat)
	}
	return int(status)
}

func printModel(sat *cadical.Solver) {
	for _, line := range modelLines(sat) {
		fmt.Println(line)
	}
}

// modelLines formats the satisfying assignment as competition "v" lines,
// twelve literals per line, terminated by 0.
func modelLines(sat *cadical.Solver) []string {
	maxVar := sat.MaxVariable()
	lits := make([]int32, 0, maxVar+1)
	for v := int32(1); v <= maxVar; v++ {
		lit := v
		if value, ok := sat.Value(v); ok && !value {
			lit = -v
		}
		lits = append(lits, lit)
	}
	lits = append(lits, 0)

	return lo.Map(lo.Chunk(lits, 12), func(chunk []int32, _ int) string {
		words := lo.Map(chunk, func(lit int32, _ int) string {
			return strconv.Itoa(int(lit))
		})
		return "v " + strings.Join(words, " ")
	})
}
