// Package num implements various utility functions regarding numeric types.
package num

import (
	"math"

	"golang.org/x/exp/constraints"
)

// ModExp returns x^y mod q, using binary exponentiation.
// Intermediate products must fit in T, so q must be at most
// half the bit width of T.
func ModExp[T constraints.Unsigned](x, y, q T) T {
	r := T(1)
	x %= q
	for y > 0 {
		if y&1 == 1 {
			r = (r * x) % q
		}
		x = (x * x) % q
		y >>= 1
	}
	return r
}

// ModInverse returns the modular inverse of x modulo m.
// Output is always positive.
// Panics if x and m are not coprime, or if m exceeds MaxInt64.
func ModInverse[T constraints.Unsigned](x, m T) T {
	if uint64(m) > math.MaxInt64 {
		panic("modulus too large")
	}

	x %= m

	a, b := int64(x), int64(m)
	u, v := int64(1), int64(0)
	for b != 0 {
		q := a / b
		a, b = b, a-q*b
		u, v = v, u-q*v
	}

	if a != 1 {
		panic("modular inverse does not exist")
	}

	if u < 0 {
		u += int64(m)
	}
	return T(u)
}
