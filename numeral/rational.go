// Package numeral implements the four numeric domains the solver explores:
// plain integers (as int64, handled directly by package solve), exact
// rationals, and two layers of "radical" numbers built from a rational
// coefficient times a nested square root of a product of small primes.
//
// Every arithmetic method here is total and cheap (no allocation beyond the
// returned value); the partial operations the search needs — sqrt,
// divisibility, radical-compatible add/sub — are spelled Try* and return ok
// as their second result, mirroring ivy's BigRat/BigInt conversion idiom.
package numeral

// Rational is an exact fraction in lowest terms with a positive
// denominator.
type Rational struct {
	Num, Den int64
}

// IntRational returns the rational x/1.
func IntRational(x int64) Rational { return Rational{Num: x, Den: 1} }

func gcd64(x, y int64) int64 {
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	if x < y {
		x, y = y, x
	}
	for x != 0 {
		x, y = y%x, x
	}
	return y
}

// NewRational reduces num/den to lowest terms with a positive denominator.
func NewRational(num, den int64) Rational {
	if num == 0 {
		return Rational{Num: 0, Den: 1}
	}
	g := gcd64(num, den)
	num, den = num/g, den/g
	if den < 0 {
		num, den = -num, -den
	}
	return Rational{Num: num, Den: den}
}

// IsInteger reports whether r has denominator 1.
func (r Rational) IsInteger() bool { return r.Den == 1 }

// IsZero reports whether r is zero.
func (r Rational) IsZero() bool { return r.Num == 0 }

// IsNegative reports whether r is strictly negative.
func (r Rational) IsNegative() bool { return r.Num < 0 }

// Neg returns -r.
func (r Rational) Neg() Rational { return Rational{Num: -r.Num, Den: r.Den} }

// Abs returns |r|.
func (r Rational) Abs() Rational {
	if r.Num < 0 {
		return r.Neg()
	}
	return r
}

// Add returns r+s.
func (r Rational) Add(s Rational) Rational {
	return NewRational(r.Num*s.Den+r.Den*s.Num, r.Den*s.Den)
}

// Sub returns r-s.
func (r Rational) Sub(s Rational) Rational {
	return NewRational(r.Num*s.Den-r.Den*s.Num, r.Den*s.Den)
}

// Mul returns r*s.
func (r Rational) Mul(s Rational) Rational {
	return NewRational(r.Num*s.Num, r.Den*s.Den)
}

// Div returns r/s.
func (r Rational) Div(s Rational) Rational {
	return NewRational(r.Num*s.Den, r.Den*s.Num)
}

// Inv returns 1/r.
func (r Rational) Inv() Rational { return NewRational(r.Den, r.Num) }

// Pow raises r to an integer power, including negative exponents.
func (r Rational) Pow(e int) Rational {
	if e == 0 {
		return Rational{Num: 1, Den: 1}
	}
	if e < 0 {
		return r.Inv().Pow(-e)
	}
	num, den := int64(1), int64(1)
	for i := 0; i < e; i++ {
		num *= r.Num
		den *= r.Den
	}
	return Rational{Num: num, Den: den}
}

// TrySqrt returns sqrt(r), ok iff both numerator and denominator of the
// already-reduced r are perfect squares.
func (r Rational) TrySqrt() (Rational, bool) {
	if r.IsZero() {
		return r, true
	}
	if r.IsNegative() {
		return Rational{}, false
	}
	num, ok := trySqrtInt(r.Num)
	if !ok {
		return Rational{}, false
	}
	den, ok := trySqrtInt(r.Den)
	if !ok {
		return Rational{}, false
	}
	return Rational{Num: num, Den: den}, true
}

func (r Rational) String() string {
	if r.Den == 1 {
		return itoa(r.Num)
	}
	return itoa(r.Num) + "/" + itoa(r.Den)
}
