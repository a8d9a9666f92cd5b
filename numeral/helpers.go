package numeral

import (
	"strconv"

	"tchisla/numtheory"
)

// PRIMES are the bases admitted under a radical: E[i] is the exponent of
// PRIMES[i] inside the value under the nested square root.
var PRIMES = [4]int64{2, 3, 5, 7}

func trySqrtInt(n int64) (int64, bool) { return numtheory.TrySqrt(n) }

func itoa(x int64) string { return strconv.FormatInt(x, 10) }

// divFloorMod mirrors Rust's div_mod_floor for the non-negative divisor
// used by radical exponent arithmetic: q*d + r == n, 0 <= r < d.
func divFloorMod(n, d int64) (q, r int64) {
	q = n / d
	r = n % d
	if r < 0 {
		q--
		r += d
	}
	return q, r
}
