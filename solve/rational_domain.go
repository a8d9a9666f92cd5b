package solve

import (
	"math"

	"tchisla/expr"
	"tchisla/numeral"
)

// RationalDomain widens IntegerDomain to exact fractions: division and
// power always succeed (power only for integer exponents), at the cost of
// range-checking both numerator and denominator.
type RationalDomain struct{}

func (RationalDomain) FromInt(n int64) numeral.Rational { return numeral.IntRational(n) }

func (RationalDomain) ToInt(x numeral.Rational) (int64, bool) {
	if x.IsInteger() {
		return x.Num, true
	}
	return 0, false
}

func (RationalDomain) IsOne(x numeral.Rational) bool { return x.Num == 1 && x.Den == 1 }

func (RationalDomain) IsRational(x numeral.Rational) bool { return true }

func (RationalDomain) RangeCheck(limits Limits, x numeral.Rational) bool {
	if limits.MaxDigits >= 63 {
		return true
	}
	bound := int64(1) << uint(limits.MaxDigits)
	return x.Num <= bound && x.Den <= bound
}

func (RationalDomain) TrySqrt(limits Limits, x numeral.Rational) (numeral.Rational, bool) {
	return x.TrySqrt()
}

func digitsOf(x numeral.Rational) float64 {
	return math.Max(math.Log2(math.Abs(float64(x.Num))), math.Log2(float64(x.Den)))
}

func (d RationalDomain) BinaryOperation(s *Solver[numeral.Rational], x, y State[numeral.Rational]) bool {
	found := false
	if d.divide(s, x, y) {
		found = true
	}
	if !s.progressive || !x.Number.IsInteger() || !y.Number.IsInteger() {
		if d.multiply(s, x, y) {
			found = true
		}
		if d.add(s, x, y) {
			found = true
		}
		if d.subtract(s, x, y) {
			found = true
		}
	}
	if y.Number.IsInteger() && d.power(s, x, y) {
		found = true
	}
	if x.Number.IsInteger() && d.power(s, y, x) {
		found = true
	}
	if x.Number.IsInteger() && y.Number.IsInteger() && s.FactorialDivide(x, y, numeral.Rational.Inv) {
		found = true
	}
	return found
}

func (RationalDomain) add(s *Solver[numeral.Rational], x, y State[numeral.Rational]) bool {
	return s.check(x.Number.Add(y.Number), x.Digits+y.Digits, func() expr.Expr {
		return expr.NewAdd(x.Expr, y.Expr)
	})
}

func (RationalDomain) subtract(s *Solver[numeral.Rational], x, y State[numeral.Rational]) bool {
	result := x.Number.Sub(y.Number)
	switch {
	case result.IsZero():
		return false
	case result.IsNegative():
		return s.check(result.Neg(), x.Digits+y.Digits, func() expr.Expr {
			return expr.NewSub(y.Expr, x.Expr)
		})
	default:
		return s.check(result, x.Digits+y.Digits, func() expr.Expr {
			return expr.NewSub(x.Expr, y.Expr)
		})
	}
}

func (RationalDomain) multiply(s *Solver[numeral.Rational], x, y State[numeral.Rational]) bool {
	return s.check(x.Number.Mul(y.Number), x.Digits+y.Digits, func() expr.Expr {
		return expr.NewMul(x.Expr, y.Expr)
	})
}

func (RationalDomain) divide(s *Solver[numeral.Rational], x, y State[numeral.Rational]) bool {
	if x.Number == y.Number {
		if xi, ok := (RationalDomain{}).ToInt(x.Number); ok && xi == s.n {
			return s.check(numeral.IntRational(1), 2, func() expr.Expr {
				return expr.NewDiv(x.Expr, x.Expr)
			})
		}
		return false
	}
	found := false
	result := x.Number.Div(y.Number)
	if !expr.IsDivide(y.Expr) {
		if s.check(result, x.Digits+y.Digits, func() expr.Expr { return expr.NewDiv(x.Expr, y.Expr) }) {
			found = true
		}
	}
	if !expr.IsDivide(x.Expr) {
		if s.check(result.Inv(), x.Digits+y.Digits, func() expr.Expr { return expr.NewDiv(y.Expr, x.Expr) }) {
			found = true
		}
	}
	return found
}

func (RationalDomain) power(s *Solver[numeral.Rational], x, y State[numeral.Rational]) bool {
	if (x.Number.Num == 1 && x.Number.Den == 1) || (y.Number.Num == 1 && y.Number.Den == 1) || y.Number.Num > 0x40000000 {
		return false
	}
	xDigits := digitsOf(x.Number)
	exponent := int(y.Number.Num)
	sqrtOrder := 0
	for xDigits*float64(exponent) > float64(s.limits.MaxDigits) {
		if exponent%2 != 0 {
			return false
		}
		exponent >>= 1
		sqrtOrder++
	}
	found := false
	z := x.Number.Pow(exponent)
	if s.check(z, x.Digits+y.Digits, func() expr.Expr {
		return expr.NewSqrt(expr.NewPow(x.Expr, y.Expr), sqrtOrder)
	}) {
		found = true
	}
	if !expr.IsDivide(x.Expr) {
		if s.check(z.Inv(), x.Digits+y.Digits, func() expr.Expr {
			return expr.NewSqrt(expr.NewPow(x.Expr, expr.NewNegate(y.Expr)), sqrtOrder)
		}) {
			found = true
		}
	}
	return found
}

func (RationalDomain) DivisionDiffOne(s *Solver[numeral.Rational], x numeral.Rational, digits int, numerator, denominator expr.Expr) bool {
	found := false
	switch {
	case x.Num < x.Den:
		result := x.Sub(numeral.IntRational(1)).Neg()
		if s.TryInsert(result, digits, func() expr.Expr {
			return expr.NewDiv(expr.NewSub(denominator, numerator), denominator)
		}) {
			found = true
		}
		if s.TryInsert(result.Inv(), digits, func() expr.Expr {
			return expr.NewDiv(denominator, expr.NewSub(denominator, numerator))
		}) {
			found = true
		}
	case x.Num > x.Den:
		result := x.Sub(numeral.IntRational(1))
		if s.TryInsert(result, digits, func() expr.Expr {
			return expr.NewDiv(expr.NewSub(numerator, denominator), denominator)
		}) {
			found = true
		}
		if s.TryInsert(result.Inv(), digits, func() expr.Expr {
			return expr.NewDiv(denominator, expr.NewSub(numerator, denominator))
		}) {
			found = true
		}
	}
	result := x.Add(numeral.IntRational(1))
	if s.TryInsert(result, digits, func() expr.Expr {
		return expr.NewDiv(expr.NewAdd(numerator, denominator), denominator)
	}) {
		found = true
	}
	if s.TryInsert(result.Inv(), digits, func() expr.Expr {
		return expr.NewDiv(denominator, expr.NewAdd(numerator, denominator))
	}) {
		found = true
	}
	return found
}
