package solve

import (
	"math"

	"tchisla/expr"
	"tchisla/numeral"
)

// RationalRadicalDomain is the widest domain: a rational coefficient over a
// nested square root. Division always succeeds in both directions; power
// admits negative exponents; factorial-quotient and the narrowing-avoidance
// suppressions mirror IntegralRadicalDomain but gate on "is rational"
// rather than "radical power is zero", since the coefficient itself may now
// be a genuine fraction.
type RationalRadicalDomain struct{}

func (RationalRadicalDomain) FromInt(n int64) numeral.RationalRadical {
	return numeral.IntRationalRadical(n)
}

func (RationalRadicalDomain) ToInt(x numeral.RationalRadical) (int64, bool) { return x.ToInt() }

func (RationalRadicalDomain) IsOne(x numeral.RationalRadical) bool {
	return x.Power == 0 && x.Coeff.Num == 1 && x.Coeff.Den == 1
}

func (RationalRadicalDomain) IsRational(x numeral.RationalRadical) bool { return x.IsRational() }

func (RationalRadicalDomain) RangeCheck(limits Limits, x numeral.RationalRadical) bool {
	if limits.MaxDigits >= 63 {
		return x.Power <= limits.MaxQuadraticPower
	}
	bound := int64(1) << uint(limits.MaxDigits)
	return x.Coeff.Num <= bound && -x.Coeff.Num <= bound && x.Coeff.Den <= bound && x.Power <= limits.MaxQuadraticPower
}

func (RationalRadicalDomain) TrySqrt(limits Limits, x numeral.RationalRadical) (numeral.RationalRadical, bool) {
	if x.Power >= limits.MaxQuadraticPower {
		return numeral.RationalRadical{}, false
	}
	return x.TrySqrt()
}

func radicalDigitsRational(coeff numeral.Rational, e [4]uint8, power uint8) float64 {
	result := digitsOf(coeff)
	for i, prime := range numeral.PRIMES {
		if e[i] > 0 {
			result += math.Log2(float64(prime)) * float64(e[i]) / math.Pow(2, float64(power))
		}
	}
	return result
}

func (d RationalRadicalDomain) BinaryOperation(s *Solver[numeral.RationalRadical], x, y State[numeral.RationalRadical]) bool {
	found := false
	if d.divide(s, x, y) {
		found = true
	}
	if !s.progressive || !x.Number.IsRational() || !y.Number.IsRational() {
		if d.multiply(s, x, y) {
			found = true
		}
		if x.Number.Power == y.Number.Power && x.Number.E == y.Number.E {
			if d.add(s, x, y) {
				found = true
			}
			if d.subtract(s, x, y) {
				found = true
			}
		}
	}
	_, yIsInt := y.Number.ToInt()
	_, xIsInt := x.Number.ToInt()
	if yIsInt && (!s.progressive || !x.Number.IsRational()) && d.power(s, x, y) {
		found = true
	}
	if xIsInt && (!s.progressive || !y.Number.IsRational()) && d.power(s, y, x) {
		found = true
	}
	if xIsInt && yIsInt && !s.progressive && s.FactorialDivide(x, y, numeral.RationalRadical.Inv) {
		found = true
	}
	return found
}

func (RationalRadicalDomain) add(s *Solver[numeral.RationalRadical], x, y State[numeral.RationalRadical]) bool {
	return s.check(x.Number.Add(y.Number), x.Digits+y.Digits, func() expr.Expr {
		return expr.NewAdd(x.Expr, y.Expr)
	})
}

func (RationalRadicalDomain) subtract(s *Solver[numeral.RationalRadical], x, y State[numeral.RationalRadical]) bool {
	result := x.Number.Sub(y.Number)
	switch {
	case result.Coeff.IsZero():
		return false
	case result.Coeff.IsNegative():
		return s.check(result.Neg(), x.Digits+y.Digits, func() expr.Expr {
			return expr.NewSub(y.Expr, x.Expr)
		})
	default:
		return s.check(result, x.Digits+y.Digits, func() expr.Expr {
			return expr.NewSub(x.Expr, y.Expr)
		})
	}
}

func (RationalRadicalDomain) multiply(s *Solver[numeral.RationalRadical], x, y State[numeral.RationalRadical]) bool {
	return s.check(x.Number.Mul(y.Number), x.Digits+y.Digits, func() expr.Expr {
		return expr.NewMul(x.Expr, y.Expr)
	})
}

func (RationalRadicalDomain) divide(s *Solver[numeral.RationalRadical], x, y State[numeral.RationalRadical]) bool {
	if x.Number == y.Number {
		if xi, ok := x.Number.ToInt(); ok && xi == s.n {
			return s.check(numeral.IntRationalRadical(1), 2, func() expr.Expr {
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

func (RationalRadicalDomain) power(s *Solver[numeral.RationalRadical], x, y State[numeral.RationalRadical]) bool {
	if xi, ok := x.Number.ToInt(); ok && xi == 1 {
		return false
	}
	if yi, ok := y.Number.ToInt(); ok && yi == 1 {
		return false
	}
	yInt, ok := y.Number.ToInt()
	if !ok || yInt > 0x40000000 {
		return false
	}
	xDigits := radicalDigitsRational(x.Number.Coeff, x.Number.E, x.Number.Power)
	exponent := int(yInt)
	sqrtOrder := 0
	for xDigits*float64(exponent) > float64(s.limits.MaxDigits) {
		if exponent%2 != 0 {
			return false
		}
		exponent >>= 1
		sqrtOrder++
	}
	result := x.Number.Pow(exponent)
	if s.check(result, x.Digits+y.Digits, func() expr.Expr {
		return expr.NewSqrt(expr.NewPow(x.Expr, y.Expr), sqrtOrder)
	}) {
		return true
	}
	if !expr.IsDivide(x.Expr) {
		return s.check(result.Inv(), x.Digits+y.Digits, func() expr.Expr {
			return expr.NewSqrt(expr.NewPow(x.Expr, expr.NewNegate(y.Expr)), sqrtOrder)
		})
	}
	return false
}

func (RationalRadicalDomain) DivisionDiffOne(s *Solver[numeral.RationalRadical], x numeral.RationalRadical, digits int, numerator, denominator expr.Expr) bool {
	found := false
	one := numeral.IntRational(1)
	switch {
	case x.Coeff.Num < x.Coeff.Den:
		result := x.SubRational(one).Neg()
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
	case x.Coeff.Num > x.Coeff.Den:
		result := x.SubRational(one)
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
	result := x.AddRational(one)
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
