package solve

import (
	"fmt"
	"io"
	"math"

	"tchisla/expr"
	"tchisla/numeral"
)

type progressiveState int

const (
	progressiveNone progressiveState = iota
	progressiveIntegral
	progressiveFullIntegral
	progressiveRational
	progressiveRadical
	progressiveFinished
)

// ProgressiveSolver drives four Solver[T] instances (int64, Rational,
// IntegralRadical is skipped in favor of RationalRadical directly, matching
// the reference driver's choice to widen straight to the richest radical
// domain) through a single staged, depth-indexed search, cross-promoting
// every value one stage discovers into the others so a later stage never
// has to rediscover what an earlier one already built at the same digit
// cost.
type ProgressiveSolver struct {
	n        int64
	target   int64
	maxDepth int

	integralSolver     *Solver[int64]
	fullIntegralSolver *Solver[int64]
	rationalSolver     *Solver[numeral.Rational]
	radicalSolver      *Solver[numeral.RationalRadical]

	depthSearched int
	state         progressiveState

	Verbose bool
	Stderr  io.Writer
}

// NewProgressiveSolver builds a driver for source digit n using the given
// per-domain limits.
func NewProgressiveSolver(n int64, integralLimits, rationalLimits, radicalLimits Limits) *ProgressiveSolver {
	return &ProgressiveSolver{
		n:                  n,
		maxDepth:           math.MaxInt32,
		integralSolver:     NewProgressiveDomainSolver[int64](n, integralLimits, IntegerDomain{}),
		fullIntegralSolver: NewSolver[int64](n, integralLimits, IntegerDomain{}),
		rationalSolver:     NewProgressiveDomainSolver[numeral.Rational](n, rationalLimits, RationalDomain{}),
		radicalSolver:      NewProgressiveDomainSolver[numeral.RationalRadical](n, radicalLimits, RationalRadicalDomain{}),
	}
}

// GetSolution returns the best known expression for target across every
// domain this driver searches.
func (p *ProgressiveSolver) GetSolution(target int64) (expr.Expr, int, bool) {
	if e, d, ok := p.integralSolver.GetSolution(target); ok {
		return e, d, true
	}
	if e, d, ok := p.rationalSolver.GetSolution(numeral.IntRational(target)); ok {
		return e, d, true
	}
	if e, d, ok := p.radicalSolver.GetSolution(numeral.IntRationalRadical(target)); ok {
		return e, d, true
	}
	return p.fullIntegralSolver.GetSolution(target)
}

// Solve searches for target up to maxDepth and returns the first solution
// found; maxDepth replaces any bound a previous call had lowered.
func (p *ProgressiveSolver) Solve(target int64, maxDepth int) (expr.Expr, int, bool) {
	p.target = target
	p.maxDepth = maxDepth
	return p.solveNext()
}

// Next advances the search by exactly one solution: each call lowers
// max_depth to solution_digits-1 so a subsequent call (if any) can only
// find a strictly shorter expression, mirroring the reference iterator.
func (p *ProgressiveSolver) Next() (expr.Expr, int, bool) {
	return p.solveNext()
}

func (p *ProgressiveSolver) solveNext() (expr.Expr, int, bool) {
	for digits := p.depthSearched + 1; digits <= p.maxDepth; digits++ {
		if p.search(digits) {
			e, d, ok := p.GetSolution(p.target)
			if !ok {
				return nil, 0, false
			}
			p.maxDepth = d - 1
			return e, d, true
		}
	}
	return nil, 0, false
}

func (p *ProgressiveSolver) search(digits int) bool {
	if p.state == progressiveNone {
		p.state = progressiveIntegral
	}
	if p.state == progressiveIntegral {
		if _, _, ok := p.integralSolver.Solve(p.target, digits); ok {
			return true
		}
		for _, x := range p.integralSolver.NewNumbers() {
			e, _, _ := p.integralSolver.GetSolution(x)
			p.rationalSolver.TryInsert(numeral.IntRational(x), digits, func() expr.Expr { return e })
			p.radicalSolver.TryInsert(numeral.IntRationalRadical(x), digits, func() expr.Expr { return e })
		}
		p.clearNewNumbers()
		p.state = progressiveFullIntegral
	}
	if p.state == progressiveFullIntegral {
		found := false
		if digits >= 3 && digits < p.maxDepth {
			p.fullIntegralSolver.CloneNonProgressiveFrom(p.integralSolver)
			_, _, found = p.fullIntegralSolver.Solve(p.target, p.maxDepth)
		}
		p.state = progressiveRational
		if found {
			return true
		}
	}
	if p.state == progressiveRational {
		if _, _, ok := p.rationalSolver.Solve(numeral.IntRational(p.target), digits); ok {
			return true
		}
		for _, x := range p.rationalSolver.NewNumbers() {
			e, _, _ := p.rationalSolver.GetSolution(x)
			if x.IsInteger() {
				p.integralSolver.TryInsert(x.Num, digits, func() expr.Expr { return e })
			}
			p.radicalSolver.TryInsert(numeral.FromRational(x), digits, func() expr.Expr { return e })
		}
		p.clearNewNumbers()
		p.state = progressiveRadical
	}
	if p.state == progressiveRadical {
		if _, _, ok := p.radicalSolver.Solve(numeral.IntRationalRadical(p.target), digits); ok {
			return true
		}
		for _, x := range p.radicalSolver.NewNumbers() {
			e, _, _ := p.radicalSolver.GetSolution(x)
			if xi, ok := x.ToInt(); ok {
				p.integralSolver.TryInsert(xi, digits, func() expr.Expr { return e })
			}
			if r, ok := x.ToRational(); ok {
				p.rationalSolver.TryInsert(r, digits, func() expr.Expr { return e })
			}
		}
		p.clearNewNumbers()
		p.state = progressiveFinished
	}
	p.depthSearched = digits
	p.state = progressiveNone
	if p.Verbose && p.Stderr != nil {
		fmt.Fprintf(p.Stderr, "depth: %d\n", digits)
	}
	return false
}

func (p *ProgressiveSolver) clearNewNumbers() {
	p.integralSolver.ClearNewNumbers()
	p.rationalSolver.ClearNewNumbers()
	p.radicalSolver.ClearNewNumbers()
}
