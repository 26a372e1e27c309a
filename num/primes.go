package num

import (
	"github.com/bits-and-blooms/bitset"
)

// Primes returns all primes below n in increasing order,
// using a sieve of Eratosthenes.
func Primes(n uint) []uint64 {
	if n <= 2 {
		return nil
	}

	composite := bitset.New(n)
	primes := make([]uint64, 0)
	for i := uint(2); i < n; i++ {
		if composite.Test(i) {
			continue
		}
		primes = append(primes, uint64(i))
		for j := i * i; j < n; j += i {
			composite.Set(j)
		}
	}
	return primes
}
