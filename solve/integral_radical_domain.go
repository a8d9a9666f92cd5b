package solve

import (
	"math"

	"tchisla/expr"
	"tchisla/numeral"
)

// IntegralRadicalDomain widens IntegerDomain with nested square roots (up
// to Limits.MaxQuadraticPower deep) over an integer coefficient. Add/Sub only combine values
// whose radical parts already match; Div requires exact divisibility.
type IntegralRadicalDomain struct{}

func (IntegralRadicalDomain) FromInt(n int64) numeral.IntegralRadical {
	return numeral.IntIntegralRadical(n)
}

func (IntegralRadicalDomain) ToInt(x numeral.IntegralRadical) (int64, bool) { return x.ToInt() }

func (IntegralRadicalDomain) IsOne(x numeral.IntegralRadical) bool {
	return x.Power == 0 && x.Coeff == 1
}

func (IntegralRadicalDomain) IsRational(x numeral.IntegralRadical) bool { return x.IsRational() }

func (IntegralRadicalDomain) RangeCheck(limits Limits, x numeral.IntegralRadical) bool {
	if limits.MaxDigits >= 63 {
		return x.Power <= limits.MaxQuadraticPower
	}
	bound := int64(1) << uint(limits.MaxDigits)
	return x.Coeff <= bound && -x.Coeff <= bound && x.Power <= limits.MaxQuadraticPower
}

func (IntegralRadicalDomain) TrySqrt(limits Limits, x numeral.IntegralRadical) (numeral.IntegralRadical, bool) {
	if x.Power >= limits.MaxQuadraticPower {
		return numeral.IntegralRadical{}, false
	}
	return x.TrySqrt()
}

func radicalDigits(coeff int64, e [4]uint8, power uint8) float64 {
	result := math.Log2(math.Abs(float64(coeff)))
	for i, prime := range numeral.PRIMES {
		if e[i] > 0 {
			result += math.Log2(float64(prime)) * float64(e[i]) / math.Pow(2, float64(power))
		}
	}
	return result
}

func (d IntegralRadicalDomain) BinaryOperation(s *Solver[numeral.IntegralRadical], x, y State[numeral.IntegralRadical]) bool {
	found := false
	if x.Number.Coeff < y.Number.Coeff {
		if d.divide(s, y, x) {
			found = true
		}
	} else if d.divide(s, x, y) {
		found = true
	}
	if !s.progressive || x.Number.Power != 0 || y.Number.Power != 0 {
		if d.multiply(s, x, y) {
			found = true
		}
		if x.Number.Power == y.Number.Power && x.Number.E == y.Number.E {
			if d.add(s, x, y) {
				found = true
			}
			if x.Number.Coeff < y.Number.Coeff {
				if d.subtract(s, y, x) {
					found = true
				}
			} else if d.subtract(s, x, y) {
				found = true
			}
		}
	}
	if y.Number.Power == 0 && (!s.progressive || x.Number.Power != 0) && d.power(s, x, y) {
		found = true
	}
	if x.Number.Power == 0 && (!s.progressive || y.Number.Power != 0) && d.power(s, y, x) {
		found = true
	}
	if x.Number.Power == 0 && y.Number.Power == 0 && !s.progressive && s.FactorialDivide(x, y, nil) {
		found = true
	}
	return found
}

func (IntegralRadicalDomain) add(s *Solver[numeral.IntegralRadical], x, y State[numeral.IntegralRadical]) bool {
	return s.check(x.Number.Add(y.Number), x.Digits+y.Digits, func() expr.Expr {
		return expr.NewAdd(x.Expr, y.Expr)
	})
}

func (IntegralRadicalDomain) subtract(s *Solver[numeral.IntegralRadical], x, y State[numeral.IntegralRadical]) bool {
	result := x.Number.Sub(y.Number)
	switch {
	case result.Coeff == 0:
		return false
	case result.Coeff < 0:
		return s.check(result.Neg(), x.Digits+y.Digits, func() expr.Expr {
			return expr.NewSub(y.Expr, x.Expr)
		})
	default:
		return s.check(result, x.Digits+y.Digits, func() expr.Expr {
			return expr.NewSub(x.Expr, y.Expr)
		})
	}
}

func (IntegralRadicalDomain) multiply(s *Solver[numeral.IntegralRadical], x, y State[numeral.IntegralRadical]) bool {
	return s.check(x.Number.Mul(y.Number), x.Digits+y.Digits, func() expr.Expr {
		return expr.NewMul(x.Expr, y.Expr)
	})
}

func (IntegralRadicalDomain) divide(s *Solver[numeral.IntegralRadical], x, y State[numeral.IntegralRadical]) bool {
	if x.Number == y.Number {
		if xi, ok := x.Number.ToInt(); ok && xi == s.n {
			return s.check(numeral.IntIntegralRadical(1), 2, func() expr.Expr {
				return expr.NewDiv(x.Expr, x.Expr)
			})
		}
		return false
	}
	if !x.Number.IsDivisibleBy(y.Number) {
		return false
	}
	return s.check(x.Number.Div(y.Number), x.Digits+y.Digits, func() expr.Expr {
		return expr.NewDiv(x.Expr, y.Expr)
	})
}

func (IntegralRadicalDomain) power(s *Solver[numeral.IntegralRadical], x, y State[numeral.IntegralRadical]) bool {
	if xi, ok := x.Number.ToInt(); ok && xi == 1 {
		return false
	}
	yInt, ok := y.Number.ToInt()
	if !ok || yInt == 1 || yInt > 0x40000000 {
		return false
	}
	xDigits := radicalDigits(x.Number.Coeff, x.Number.E, x.Number.Power)
	exponent := int(yInt)
	sqrtOrder := 0
	for xDigits*float64(exponent) > float64(s.limits.MaxDigits) {
		if exponent%2 != 0 {
			return false
		}
		exponent >>= 1
		sqrtOrder++
	}
	return s.check(x.Number.Pow(exponent), x.Digits+y.Digits, func() expr.Expr {
		return expr.NewSqrt(expr.NewPow(x.Expr, y.Expr), sqrtOrder)
	})
}

func (IntegralRadicalDomain) DivisionDiffOne(s *Solver[numeral.IntegralRadical], x numeral.IntegralRadical, digits int, numerator, denominator expr.Expr) bool {
	found := false
	if x.Coeff > 1 {
		if s.TryInsert(x.SubInt(1), digits, func() expr.Expr {
			return expr.NewDiv(expr.NewSub(numerator, denominator), denominator)
		}) {
			found = true
		}
	}
	if s.TryInsert(x.AddInt(1), digits, func() expr.Expr {
		return expr.NewDiv(expr.NewAdd(numerator, denominator), denominator)
	}) {
		found = true
	}
	return found
}
