package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tchisla/expr"
	"tchisla/numeral"
)

func TestIntegerFiveFromOneFiveDepth2(t *testing.T) {
	s, digits, ok := SolveInteger(5, 1, 10, BuiltinIntegerLimits())
	require.True(t, ok)
	assert.Equal(t, 2, digits)
	assert.Equal(t, "5/5", s)
}

func TestIntegerTenFromFourDigitsThree(t *testing.T) {
	_, digits, ok := SolveInteger(4, 10, 10, BuiltinIntegerLimits())
	require.True(t, ok)
	assert.Equal(t, 3, digits)
}

func TestIntegerTwentyFiveFromTwoDigitsFive(t *testing.T) {
	_, digits, ok := SolveInteger(2, 25, 10, BuiltinIntegerLimits())
	require.True(t, ok)
	assert.Equal(t, 5, digits)
}

func TestOneHundredFromSevenWithinSixDigitsProgressive(t *testing.T) {
	p := NewProgressiveSolver(7, BuiltinIntegerLimits(), BuiltinRationalLimits(), BuiltinRadicalLimits(7))
	_, digits, ok := p.Solve(100, 6)
	require.True(t, ok)
	assert.LessOrEqual(t, digits, 6)
}

func TestSevenFromOnesDepthFour(t *testing.T) {
	s, digits, ok := SolveInteger(1, 7, 10, BuiltinIntegerLimits())
	require.True(t, ok)
	assert.Equal(t, 4, digits)
	assert.Equal(t, "1+(1+1+1)!", s)
}

func TestOptimalityFailsOneDepthShort(t *testing.T) {
	_, _, ok := SolveInteger(5, 1, 1, BuiltinIntegerLimits())
	assert.False(t, ok, "depth 1 is one short of the known optimum of 2")
}

func TestSolveRationalFindsIntegerTargetsToo(t *testing.T) {
	s, digits, ok := SolveRational(5, 1, 10, BuiltinRationalLimits())
	require.True(t, ok)
	assert.Equal(t, 2, digits)
	assert.Equal(t, "5/5", s)
}

func TestSolveIntegralRadicalFindsSqrtShapedTargets(t *testing.T) {
	// sqrt(4) = 2, built from a single digit 4 under one sqrt: digit cost 1.
	s := NewSolver[numeral.IntegralRadical](4, BuiltinRadicalLimits(4), IntegralRadicalDomain{})
	e, digits, ok := s.Solve(numeral.IntIntegralRadical(2), 5)
	require.True(t, ok)
	assert.Equal(t, 1, digits)
	assert.Equal(t, "sqrt(4)", e.String())
}

func TestProgressiveSolverFindsSameAnswerAsPerDomain(t *testing.T) {
	p := NewProgressiveSolver(5, BuiltinIntegerLimits(), BuiltinRationalLimits(), BuiltinRadicalLimits(5))
	e, digits, ok := p.Solve(1, 10)
	require.True(t, ok)
	assert.Equal(t, 2, digits)
	assert.Equal(t, "5/5", e.String())
}

func TestProgressiveSolverNextYieldsStrictlyShorterSolutions(t *testing.T) {
	p := NewProgressiveSolver(2, BuiltinIntegerLimits(), BuiltinRationalLimits(), BuiltinRadicalLimits(2))
	_, first, ok := p.Solve(8, 10)
	require.True(t, ok)
	_, second, ok := p.Next()
	if ok {
		assert.Less(t, second, first)
	}
}

func TestFactorialDivideRejectsSmallYEvenWhenSizeIsPermissive(t *testing.T) {
	generous := Limits{MaxDigits: 1000, MaxFactorial: 2}
	s := NewSolver[int64](9, generous, IntegerDomain{})
	ok := s.FactorialDivide(
		State[int64]{Number: 10, Digits: 1},
		State[int64]{Number: 2, Digits: 1},
		nil,
	)
	assert.False(t, ok, "y=2 is rejected outright by the y>2 admission guard")
}

func TestFactorialDivideAdmitsWhenSizeAndGapAreInBounds(t *testing.T) {
	generous := Limits{MaxDigits: 1000, MaxFactorial: 2}
	s := NewSolver[int64](9, generous, IntegerDomain{})
	s.target = 10 * 9 * 8 * 7 * 6 // 10!/5!, the quotient FactorialDivide should admit
	ok := s.FactorialDivide(
		State[int64]{Number: 10, Digits: 1},
		State[int64]{Number: 5, Digits: 1},
		nil,
	)
	assert.True(t, ok, "x=10,y=5: x>MaxFactorial, y>2, x-y!=1, and the size bound is generous")

	_, digits, found := s.GetSolution(s.target)
	require.True(t, found)
	assert.Equal(t, 2, digits)
}

func TestFactorialDivideRationalInsertsReciprocal(t *testing.T) {
	generous := Limits{MaxDigits: 1000, MaxFactorial: 2}
	s := NewSolver[numeral.Rational](9, generous, RationalDomain{})
	ok := s.FactorialDivide(
		State[numeral.Rational]{Number: numeral.IntRational(10), Digits: 1},
		State[numeral.Rational]{Number: numeral.IntRational(5), Digits: 1},
		numeral.Rational.Inv,
	)
	require.True(t, ok, "x=10,y=5 is admitted, so its reciprocal must be checked too")

	quotient := numeral.IntRational(10 * 9 * 8 * 7 * 6)
	_, digits, found := s.GetSolution(quotient)
	require.True(t, found)
	assert.Equal(t, 2, digits)

	_, digits, found = s.GetSolution(quotient.Inv())
	require.True(t, found, "the reciprocal 5!/10! must also have been inserted")
	assert.Equal(t, 2, digits)
}

func TestCheckExploresFactorialAfterSolverIsReusedForANewTarget(t *testing.T) {
	// check must chain into factorial even when the freshly inserted value
	// is itself the current target, since a ProgressiveSolver keeps the
	// same Solver alive across Solve calls for different targets
	// (SPEC_FULL.md 4.10's ReusableSolver behavior). With n=3, 3*3=9 is
	// inserted at digit 2 while searching for target 9 itself; a later
	// Solve call on the same solver for target 9! (362880) must already
	// find it cached at digit 2, which is only possible if 9's factorial
	// was explored at insertion time rather than skipped because 9 already
	// satisfied that first search.
	s := NewSolver[int64](3, Limits{MaxDigits: 48, MaxFactorial: 20}, IntegerDomain{})
	_, digits, ok := s.Solve(9, 2)
	require.True(t, ok)
	assert.Equal(t, 2, digits)

	_, digits, ok = s.Solve(362880, 2)
	require.True(t, ok, "9! should already be cached from exploring 9's factorial when 9 was inserted")
	assert.Equal(t, 2, digits)
}

func TestConcatAdmissionGatesOnMaxDigits(t *testing.T) {
	s := NewSolver[int64](1, Limits{MaxDigits: 3, MaxFactorial: 20}, IntegerDomain{})
	s.concat(5)
	_, _, ok := s.GetSolution(11111)
	assert.False(t, ok, "5*log2(10)-log2(9) exceeds max_digits=3, so the repunit is never inserted")
}

func TestInsertExtraDrainsAtItsOwnDepth(t *testing.T) {
	// n=7 with MaxDigits=4 (range bound 16) keeps the organically reachable
	// table tiny through depth 3 (7 at depth 1, 7+7=14 and 7/7=1 at depth 2,
	// then 14/7=2, 7+1=8 and 7-1=6 at depth 3; 7!, 77 and 7*7 are out of
	// range): none of those collide with the injected value 5, and
	// phaseExtra drains before any depth-4 operator phase runs, so the only
	// way 5 can appear at depth 4 is via the extra queue.
	s := NewSolver[int64](7, Limits{MaxDigits: 4, MaxFactorial: 20}, IntegerDomain{})
	s.target = 5
	s.InsertExtra(5, 4, expr.NewNumber(5))

	require.False(t, s.Search(1))
	require.False(t, s.Search(2))
	require.False(t, s.Search(3))
	found := s.Search(4)
	require.True(t, found, "phaseExtra should drain the depth-4 bucket and admit 5")

	_, digits, ok := s.GetSolution(5)
	require.True(t, ok)
	assert.Equal(t, 4, digits)
}

func TestConcatInsertsRepunitWhenWithinMaxDigits(t *testing.T) {
	s := NewSolver[int64](1, Limits{MaxDigits: 48, MaxFactorial: 20}, IntegerDomain{})
	s.concat(3)
	_, digits, ok := s.GetSolution(111)
	require.True(t, ok)
	assert.Equal(t, 3, digits)
}
