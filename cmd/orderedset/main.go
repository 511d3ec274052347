// Exercises orderedset from the command line: benchmarks it against btree implementations, renders
// tree shapes for Graphviz, and runs randomized invariant checks.
//
// Example run:
// $ go run ./cmd/orderedset bench --keys 100000 --order sorted --backends anacrolix,tidwall
// $ go run ./cmd/orderedset dot 5 2 10 6 14 7 8 | dot -Tsvg > tree.svg
package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/envpprof"
	"github.com/anacrolix/log"
)

var logger = log.Default.WithNames("main")

var flags struct {
	Debug bool `help:"log at debug level" arg:"env:ORDEREDSET_DEBUG"`

	*BenchCmd `arg:"subcommand:bench"`
	*DotCmd   `arg:"subcommand:dot"`
	*CheckCmd `arg:"subcommand:check"`
}

func main() {
	defer envpprof.Stop()
	if err := mainErr(); err != nil {
		logger.Levelf(log.Error, "error in main: %v", err)
		os.Exit(1)
	}
}

func mainErr() error {
	p := arg.MustParse(&flags)
	if !flags.Debug {
		logger = logger.FilterLevel(log.Info)
	}
	switch {
	case flags.BenchCmd != nil:
		return benchErr(flags.BenchCmd)
	case flags.DotCmd != nil:
		return dotErr(flags.DotCmd, os.Stdout)
	case flags.CheckCmd != nil:
		return checkErr(flags.CheckCmd)
	default:
		p.Fail(fmt.Sprintf("unexpected subcommand: %v", p.Subcommand()))
		panic("unreachable")
	}
}
