package numeral

// RationalRadical is a rational coefficient times a nested square root of a
// product of small primes, the widest of the four domains the solver
// explores. Canonicalisation mirrors IntegralRadical exactly; only the
// coefficient type differs.
type RationalRadical struct {
	Coeff Rational
	E     [4]uint8
	Power uint8
}

// IntRationalRadical returns the rational-free value x.
func IntRationalRadical(x int64) RationalRadical {
	return RationalRadical{Coeff: IntRational(x)}
}

// FromRational returns the radical-free value r.
func FromRational(r Rational) RationalRadical { return RationalRadical{Coeff: r} }

// FromIntegralRadical widens an IntegralRadical into this domain.
func FromIntegralRadical(v IntegralRadical) RationalRadical {
	return RationalRadical{Coeff: IntRational(v.Coeff), E: v.E, Power: v.Power}
}

// IsRational reports whether the radical part is trivial.
func (v RationalRadical) IsRational() bool { return v.Power == 0 }

// ToInt returns (v, true) iff v is a radical-free integer.
func (v RationalRadical) ToInt() (int64, bool) {
	if v.Power == 0 && v.Coeff.IsInteger() {
		return v.Coeff.Num, true
	}
	return 0, false
}

// ToRational returns (v, true) iff v carries no radical part.
func (v RationalRadical) ToRational() (Rational, bool) {
	if v.Power == 0 {
		return v.Coeff, true
	}
	return Rational{}, false
}

// IsZero reports whether v is zero.
func (v RationalRadical) IsZero() bool { return v.Coeff.IsZero() }

// Neg returns -v.
func (v RationalRadical) Neg() RationalRadical {
	return RationalRadical{Coeff: v.Coeff.Neg(), E: v.E, Power: v.Power}
}

// Add returns v+w, assuming the radical parts already agree (see TryAdd).
func (v RationalRadical) Add(w RationalRadical) RationalRadical {
	if v.IsZero() {
		return w
	}
	if w.IsZero() {
		return v
	}
	c := v.Coeff.Add(w.Coeff)
	if c.IsZero() {
		return RationalRadical{Coeff: IntRational(0)}
	}
	return RationalRadical{Coeff: c, E: v.E, Power: v.Power}
}

// TryAdd returns v+w, ok iff the two radical parts are identical.
func (v RationalRadical) TryAdd(w RationalRadical) (RationalRadical, bool) {
	if v.Power != w.Power || v.E != w.E {
		return RationalRadical{}, false
	}
	return v.Add(w), true
}

// AddRational adds a radical-free rational to the coefficient, leaving the
// radical part untouched.
func (v RationalRadical) AddRational(r Rational) RationalRadical {
	return RationalRadical{Coeff: v.Coeff.Add(r), E: v.E, Power: v.Power}
}

// SubRational subtracts a radical-free rational from the coefficient,
// leaving the radical part untouched.
func (v RationalRadical) SubRational(r Rational) RationalRadical {
	return RationalRadical{Coeff: v.Coeff.Sub(r), E: v.E, Power: v.Power}
}

// Sub returns v-w, assuming the radical parts already agree (see TrySub).
func (v RationalRadical) Sub(w RationalRadical) RationalRadical {
	if v.IsZero() {
		return w.Neg()
	}
	if w.IsZero() {
		return v
	}
	if v.Coeff == w.Coeff {
		return RationalRadical{Coeff: IntRational(0)}
	}
	return RationalRadical{Coeff: v.Coeff.Sub(w.Coeff), E: v.E, Power: v.Power}
}

// TrySub returns v-w, ok iff the two radical parts are identical.
func (v RationalRadical) TrySub(w RationalRadical) (RationalRadical, bool) {
	if v.Power != w.Power || v.E != w.E {
		return RationalRadical{}, false
	}
	return v.Sub(w), true
}

func commonPowerRational(v, w RationalRadical) (power uint8, ev, ew [4]uint8) {
	power = v.Power
	if w.Power > power {
		power = w.Power
	}
	for i := range ev {
		ev[i] = v.E[i] << (power - v.Power)
		ew[i] = w.E[i] << (power - w.Power)
	}
	return power, ev, ew
}

// Mul returns v*w.
func (v RationalRadical) Mul(w RationalRadical) RationalRadical {
	coeff := v.Coeff.Mul(w.Coeff)
	if coeff.IsZero() {
		return RationalRadical{Coeff: IntRational(0)}
	}
	power, ev, ew := commonPowerRational(v, w)
	var e [4]uint8
	if power > 0 {
		for i := range e {
			e[i] = ev[i] + ew[i]
		}
		for i, prime := range PRIMES {
			if e[i] >= 1<<power {
				e[i] &= (1 << power) - 1
				coeff = coeff.Mul(IntRational(prime))
			}
		}
		power = normalizePower(&e, power)
	}
	return RationalRadical{Coeff: coeff, E: e, Power: power}
}

// Div returns v/w.
func (v RationalRadical) Div(w RationalRadical) RationalRadical {
	coeff := v.Coeff.Div(w.Coeff)
	if coeff.IsZero() {
		return RationalRadical{Coeff: IntRational(0)}
	}
	power, ev, ew := commonPowerRational(v, w)
	var e [4]uint8
	if power > 0 {
		for i, prime := range PRIMES {
			x, y := ev[i], ew[i]
			if x < y {
				coeff = coeff.Div(IntRational(prime))
				e[i] = (1 << power) + x - y
			} else {
				e[i] = x - y
			}
		}
		power = normalizePower(&e, power)
	}
	return RationalRadical{Coeff: coeff, E: e, Power: power}
}

// Inv returns 1/v.
func (v RationalRadical) Inv() RationalRadical {
	coeff := v.Coeff.Inv()
	var e [4]uint8
	for i, prime := range PRIMES {
		if v.E[i] > 0 {
			coeff = coeff.Div(IntRational(prime))
			e[i] = (1 << v.Power) - v.E[i]
		}
	}
	return RationalRadical{Coeff: coeff, E: e, Power: v.Power}
}

// Pow raises v to an integer exponent, negative exponents included.
func (v RationalRadical) Pow(exp int) RationalRadical {
	if exp == 0 {
		return RationalRadical{Coeff: IntRational(1)}
	}
	coeff := v.Coeff.Pow(exp)
	power := v.Power
	for power > 0 && exp%2 == 0 {
		power--
		exp /= 2
	}
	var e [4]uint8
	for i, prime := range PRIMES {
		q, r := divFloorMod(int64(v.E[i])*int64(exp), int64(uint8(1)<<power))
		coeff = coeff.Mul(IntRational(prime).Pow(int(q)))
		e[i] = uint8(r)
	}
	return RationalRadical{Coeff: coeff, E: e, Power: power}
}

// TrySqrt extracts sqrt(v): perfect-square prime-power factors of the
// coefficient's numerator and denominator move outside the radical, the
// leftover primes join the exponent vector, and whatever remains under the
// radical in each of numerator and denominator must itself be a perfect
// square or the sqrt fails.
func (v RationalRadical) TrySqrt() (RationalRadical, bool) {
	if v.Coeff.IsZero() {
		return v, true
	}
	if v.Coeff.IsNegative() {
		return RationalRadical{}, false
	}
	p, q := v.Coeff.Num, v.Coeff.Den
	e := v.E
	power := v.Power + 1
	num, den := int64(1), int64(1)
	for i, prime := range PRIMES {
		for p%(prime*prime) == 0 {
			num *= prime
			p /= prime * prime
		}
		if p%prime == 0 {
			e[i] |= 1 << (power - 1)
			p /= prime
		}
		for q%(prime*prime) == 0 {
			den *= prime
			q /= prime * prime
		}
		if q%prime == 0 {
			den *= prime
			e[i] |= 1 << (power - 1)
			q /= prime
		}
	}
	sp, ok := trySqrtInt(p)
	if !ok {
		return RationalRadical{}, false
	}
	num *= sp
	sq, ok := trySqrtInt(q)
	if !ok {
		return RationalRadical{}, false
	}
	den *= sq
	if e == ([4]uint8{}) {
		power = 0
	}
	return RationalRadical{Coeff: NewRational(num, den), E: e, Power: power}, true
}

func (v RationalRadical) String() string {
	if v.Power == 0 {
		return v.Coeff.String()
	}
	radicand := int64(1)
	for i, prime := range PRIMES {
		radicand *= ipow(prime, int(v.E[i]))
	}
	s := repeatSqrt(int(v.Power), itoa(radicand))
	if v.Coeff.Den == 1 {
		switch v.Coeff.Num {
		case 1:
			return s
		case -1:
			return "-" + s
		}
	}
	return v.Coeff.String() + "*" + s
}
