package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"tchisla/solve"
)

// noDepthLimit lets a solve run to exhaustion (bounded only by each domain's
// Limits.MaxDigits range check, not by an artificial digit-count cap): the
// digit count of the answer itself is never known ahead of time, the same
// way the reference CLI passes max_depth: None.
const noDepthLimit = math.MaxInt32

var (
	progressive = flag.Bool("progressive", false, "search the integer, rational and radical domains with cross-promotion")
	verbose     = flag.Bool("verbose", false, "log each completed search depth to stderr (with -progressive)")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
	}
	target, n, err := parseArg(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "tchisla: %s\n", err)
		usage()
	}

	if *progressive {
		runProgressive(n, target)
		return
	}
	runPerDomain(n, target)
}

// parseArg parses "T#N": target T (any decimal integer, T >= 1) and source
// digit N in {1,...,9}.
func parseArg(arg string) (target, n int64, err error) {
	parts := strings.SplitN(arg, "#", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("argument must have the form T#N, got %q", arg)
	}
	target, err = strconv.ParseInt(parts[0], 10, 64)
	if err != nil || target < 1 {
		return 0, 0, fmt.Errorf("T must be a positive integer, got %q", parts[0])
	}
	n, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil || n < 1 || n > 9 {
		return 0, 0, fmt.Errorf("N must be between 1 and 9, got %q", parts[1])
	}
	return target, n, nil
}

func runPerDomain(n, target int64) {
	integerLimits := solve.BuiltinIntegerLimits()
	rationalLimits := solve.BuiltinRationalLimits()
	radicalLimits := solve.BuiltinRadicalLimits(n)

	printed := false
	if s, digits, ok := solve.SolveInteger(n, target, noDepthLimit, integerLimits); ok {
		fmt.Printf("integer(%d): %d = %s\n", digits, target, s)
		printed = true
	}
	if s, digits, ok := solve.SolveRational(n, target, noDepthLimit, rationalLimits); ok {
		fmt.Printf("rational(%d): %d = %s\n", digits, target, s)
		printed = true
	}
	if s, digits, ok := solve.SolveIntegralRadical(n, target, noDepthLimit, radicalLimits); ok {
		fmt.Printf("integral_radical(%d): %d = %s\n", digits, target, s)
		printed = true
	}
	if s, digits, ok := solve.SolveRationalRadical(n, target, noDepthLimit, radicalLimits); ok {
		fmt.Printf("rational_radical(%d): %d = %s\n", digits, target, s)
		printed = true
	}
	if !printed {
		fmt.Println("No solution!")
	}
}

func runProgressive(n, target int64) {
	p := solve.NewProgressiveSolver(n, solve.BuiltinIntegerLimits(), solve.BuiltinRationalLimits(), solve.BuiltinRadicalLimits(n))
	p.Verbose = *verbose
	p.Stderr = os.Stderr

	e, digits, ok := p.Solve(target, noDepthLimit)
	if !ok {
		fmt.Println("No solution!")
		return
	}
	fmt.Printf("progressive(%d): %d = %s\n", digits, target, e.String())
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: tchisla [options] T#N\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
