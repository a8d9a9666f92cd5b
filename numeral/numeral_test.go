package numeral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRationalReduces(t *testing.T) {
	r := NewRational(6, -4)
	assert.Equal(t, int64(-3), r.Num)
	assert.Equal(t, int64(2), r.Den)
}

func TestRationalArithmetic(t *testing.T) {
	a := NewRational(1, 2)
	b := NewRational(1, 3)
	assert.Equal(t, NewRational(5, 6), a.Add(b))
	assert.Equal(t, NewRational(1, 6), a.Sub(b))
	assert.Equal(t, NewRational(1, 6), a.Mul(b))
	assert.Equal(t, NewRational(3, 2), a.Div(b))
	assert.Equal(t, NewRational(2, 1), a.Inv())
}

func TestRationalPowNegative(t *testing.T) {
	r := NewRational(2, 3)
	assert.Equal(t, NewRational(9, 4), r.Pow(-2))
}

func TestRationalTrySqrt(t *testing.T) {
	r := NewRational(4, 9)
	s, ok := r.TrySqrt()
	assert.True(t, ok)
	assert.Equal(t, NewRational(2, 3), s)

	_, ok = NewRational(2, 9).TrySqrt()
	assert.False(t, ok)

	_, ok = NewRational(-4, 9).TrySqrt()
	assert.False(t, ok)
}

func TestIntegralRadicalTrySqrtOfSeven(t *testing.T) {
	v := IntIntegralRadical(7)
	s, ok := v.TrySqrt()
	assert.True(t, ok)
	assert.Equal(t, int64(1), s.Coeff)
	assert.Equal(t, uint8(1), s.Power)
	assert.Equal(t, [4]uint8{0, 0, 0, 1}, s.E)
	assert.Equal(t, "sqrt(7)", s.String())
}

func TestIntegralRadicalTrySqrtPerfectSquare(t *testing.T) {
	v := IntIntegralRadical(36)
	s, ok := v.TrySqrt()
	assert.True(t, ok)
	assert.Equal(t, int64(6), s.Coeff)
	assert.Equal(t, uint8(0), s.Power)
}

func TestIntegralRadicalMulCollapsesPerfectSquare(t *testing.T) {
	sqrt7, _ := IntIntegralRadical(7).TrySqrt()
	squared := sqrt7.Mul(sqrt7)
	assert.Equal(t, int64(7), squared.Coeff)
	assert.Equal(t, uint8(0), squared.Power)
}

func TestIntegralRadicalTryAddRejectsMismatch(t *testing.T) {
	sqrt2, _ := IntIntegralRadical(2).TrySqrt()
	sqrt3, _ := IntIntegralRadical(3).TrySqrt()
	_, ok := sqrt2.TryAdd(sqrt3)
	assert.False(t, ok)

	sum, ok := sqrt2.TryAdd(sqrt2)
	assert.True(t, ok)
	assert.Equal(t, int64(2), sum.Coeff)
}

func TestIntegralRadicalIsDivisibleBy(t *testing.T) {
	sqrt2, _ := IntIntegralRadical(2).TrySqrt()
	eight := IntIntegralRadical(8)
	assert.True(t, eight.IsDivisibleBy(sqrt2))
	assert.False(t, sqrt2.IsDivisibleBy(eight))
}

func TestRationalRadicalFromIntegralRadical(t *testing.T) {
	sqrt7, _ := IntIntegralRadical(7).TrySqrt()
	wide := FromIntegralRadical(sqrt7)
	assert.Equal(t, "sqrt(7)", wide.String())
}

func TestRationalRadicalDivMismatchedRadicalStaysIrrational(t *testing.T) {
	sqrt2, _ := IntRationalRadical(2).TrySqrt()
	sqrt3, _ := IntRationalRadical(3).TrySqrt()
	q := sqrt2.Div(sqrt3)
	_, ok := q.ToRational()
	assert.False(t, ok)
}

func TestRationalRadicalInvRoundTrips(t *testing.T) {
	sqrt2, _ := IntRationalRadical(2).TrySqrt()
	back := sqrt2.Inv().Inv()
	assert.Equal(t, sqrt2, back)
}
