package primesquares

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/alexshd/primesquares/bigint"
	"github.com/alexshd/primesquares/primes"
)

// correct turns the weighted phi total into the sum of prime squares.
//
// phi(N) over the primes ≤ ∛N counts the unit, every prime above ∛N, and
// every product p·r of two primes ∛N < p ≤ r. The unit is removed, the small
// primes (struck by their own sieve pass) are put back, and the two-prime
// products are subtracted as p² · Σ r² over p ≤ r ≤ N/p, walking p down from
// √N so the inner range only ever grows. It returns the number of primes p
// visited.
func correct(total *apd.BigInt, n uint64, small []uint64, sqrtN, cbrtN uint64) int {
	var sq, term apd.BigInt

	// The unit is counted whenever 1 ≤ N.
	total.Sub(total, bigint.Square(&sq, min(n, 1)))
	for _, p := range small {
		total.Add(total, bigint.Square(&sq, p))
	}

	backward := primes.NewCursor()
	backward.SkipTo(sqrtN + 1)
	forward := primes.NewCursor()
	forward.SkipTo(sqrtN + 1)

	var s apd.BigInt
	q := forward.Next()
	visited := 0
	for p := backward.Prev(); p > cbrtN; p = backward.Prev() {
		s.Add(&s, bigint.Square(&sq, p))
		for q <= n/p {
			s.Add(&s, bigint.Square(&term, q))
			q = forward.Next()
		}
		total.Sub(total, term.Mul(&s, &sq))
		visited++
	}
	return visited
}
