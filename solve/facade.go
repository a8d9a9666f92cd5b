package solve

import "tchisla/numeral"

// SolveInteger searches only the integer domain.
func SolveInteger(n, target int64, maxDepth int, limits Limits) (string, int, bool) {
	s := NewSolver[int64](n, limits, IntegerDomain{})
	e, digits, ok := s.Solve(target, maxDepth)
	if !ok {
		return "", 0, false
	}
	return e.String(), digits, true
}

// SolveRational searches only the rational domain.
func SolveRational(n, target int64, maxDepth int, limits Limits) (string, int, bool) {
	s := NewSolver[numeral.Rational](n, limits, RationalDomain{})
	e, digits, ok := s.Solve(numeral.IntRational(target), maxDepth)
	if !ok {
		return "", 0, false
	}
	return e.String(), digits, true
}

// SolveIntegralRadical searches only the integer-coefficient radical domain.
func SolveIntegralRadical(n, target int64, maxDepth int, limits Limits) (string, int, bool) {
	s := NewSolver[numeral.IntegralRadical](n, limits, IntegralRadicalDomain{})
	e, digits, ok := s.Solve(numeral.IntIntegralRadical(target), maxDepth)
	if !ok {
		return "", 0, false
	}
	return e.String(), digits, true
}

// SolveRationalRadical searches only the widest, rational-coefficient
// radical domain.
func SolveRationalRadical(n, target int64, maxDepth int, limits Limits) (string, int, bool) {
	s := NewSolver[numeral.RationalRadical](n, limits, RationalRadicalDomain{})
	e, digits, ok := s.Solve(numeral.IntRationalRadical(target), maxDepth)
	if !ok {
		return "", 0, false
	}
	return e.String(), digits, true
}

// Solve runs the progressive search across the integer, rational and
// rational-radical domains, the mode the command-line tool uses with
// --progressive.
func Solve(n, target int64, maxDepth int) (string, int, bool) {
	p := NewProgressiveSolver(n, BuiltinIntegerLimits(), BuiltinRationalLimits(), BuiltinRadicalLimits(n))
	e, digits, ok := p.Solve(target, maxDepth)
	if !ok {
		return "", 0, false
	}
	return e.String(), digits, true
}
