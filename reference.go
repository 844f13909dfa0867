package primesquares

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/alexshd/primesquares/bigint"
)

// BruteForce returns Σ p² over primes p ≤ n by trial division.
// It is O(N^{3/2}) and meant for checking Compute on small inputs.
func BruteForce(n uint64) *apd.BigInt {
	var sum apd.BigInt
	for k := uint64(2); k <= n; k++ {
		addIfPrime(&sum, k)
	}
	return &sum
}

// addIfPrime adds k² to sum when k is prime.
func addIfPrime(sum *apd.BigInt, k uint64) {
	if !isPrime(k) {
		return
	}
	var sq apd.BigInt
	sum.Add(sum, bigint.Square(&sq, k))
}

func isPrime(k uint64) bool {
	if k < 2 {
		return false
	}
	for d := uint64(2); d*d <= k; d++ {
		if k%d == 0 {
			return false
		}
	}
	return true
}
