// Package numtheory provides the small integer-arithmetic helpers shared by
// every numeric domain: an overflow-free integer square root test, and the
// factorial / factorial-quotient builders used by the factorial and
// factorial-quotient operators.
package numtheory

import "math"

// squaresMod precomputes which residues mod n are quadratic residues, used
// to reject non-squares before paying for a Newton iteration.
func squaresMod(n int64) []bool {
	result := make([]bool, n)
	for i := int64(0); i <= n/2; i++ {
		result[(i*i)%n] = true
	}
	return result
}

var (
	squaresMod11 = squaresMod(11)
	squaresMod63 = squaresMod(63)
	squaresMod64 = squaresMod(64)
	squaresMod65 = squaresMod(65)
)

// TrySqrt returns (m, true) iff m*m == n, for n >= 0. Negative n always
// fails. Small n is resolved with a float estimate plus an exact check;
// large n is screened against the mod-11/63/64/65 quadratic-residue sieves
// before a Newton iteration confirms the result, avoiding a Newton pass on
// the (common) non-square case.
func TrySqrt(n int64) (int64, bool) {
	if n == 0 || n == 1 {
		return n, true
	}
	if n < 0 {
		return 0, false
	}
	if n <= 1<<62 {
		m := int64(math.Sqrt(float64(n)) + 0.5)
		if m*m == n {
			return m, true
		}
		return 0, false
	}
	m := n % (11 * 63 * 64 * 65)
	if !squaresMod64[m%64] || !squaresMod63[m%63] || !squaresMod65[m%65] || !squaresMod11[m%11] {
		return 0, false
	}
	x := int64(math.Sqrt(float64(n)) + 0.5)
	x = (x + n/x) / 2
	for {
		y := (x + n/x) / 2
		if y >= x {
			if x*x == n {
				return x, true
			}
			return 0, false
		}
		x = y
	}
}

// Factorial returns 2*3*...*n, with Factorial(0) = Factorial(1) = 1.
func Factorial(n int64) int64 {
	result := int64(1)
	for x := int64(2); x <= n; x++ {
		result *= x
	}
	return result
}

// FactorialDivide returns m!/n! as (n+1)*...*m, for m > n, without
// computing either factorial directly.
func FactorialDivide(m, n int64) int64 {
	result := int64(1)
	for x := n + 1; x <= m; x++ {
		result *= x
	}
	return result
}
