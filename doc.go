// Package primesquares computes the exact sum of the squares of all primes up
// to a bound N in roughly O(N^{2/3}) time.
//
// # Overview
//
// A direct sieve touches every integer up to N, which stops being practical
// somewhere around N = 10^10. primesquares instead follows Meissel's method,
// weighted by k²:
//
//	Σ_{p ≤ N} p² = phi(N, a) - 1 + Σ_{p ≤ ∛N} p² - P2(N)
//
// Where:
//   - a: number of primes ≤ ∛N (the small primes)
//   - phi(x, a): Σ k² over 0 ≤ k ≤ x with k free of the first a primes
//   - P2(N): Σ p²r² over primes ∛N < p ≤ r with p·r ≤ N
//
// # Architecture
//
// The computation runs four phases in order:
//
//   - decompose  - Legendre expansion of phi; large arguments use the closed
//     form x(x+1)(2x+1)/6, small ones become deferred Queries
//   - sort       - Queries ordered by (X, I)
//   - sweep      - an incremental sieve over 0..3√N files each integer under
//     its smallest small-prime divisor in a Fenwick tree and answers Queries
//     as suffix sums
//   - boundary   - removes the unit, restores the small primes and subtracts
//     P2(N) with two prime cursors walking away from √N
//
// Subpackages supply the capabilities the phases rely on:
//
//   - primes/  - segmented sieve: range generation and a bidirectional cursor
//   - bigint/  - apd.BigInt helpers: parsing, integer roots, closed forms
//
// # Quick Start
//
//	sum := primesquares.SumPrimeSquares(2038074743)
//	fmt.Println(sum) // 133759354162117403400944283
//
// With statistics and logging:
//
//	cfg := primesquares.DefaultConfig()
//	cfg.Logger = slog.Default()
//
//	res, err := primesquares.Compute(n, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s (%d queries, swept %d)\n", res.Sum, res.Stats.Queries, res.Stats.SweepLength)
//
// # Profiling
//
// Profile times Compute over several bounds and FitExponent recovers the
// growth law t(N) ≈ C·N^K:
//
//	samples, _ := primesquares.Profile([]uint64{1e7, 1e8, 1e9, 1e10}, primesquares.DefaultConfig())
//	exp, _ := primesquares.FitExponent(samples)
//	fmt.Printf("K = %.3f\n", exp.K) // close to 0.67
//
// # Testing
//
//	func TestSmall(t *testing.T) {
//	    primesquares.AssertMatchesBruteForce(t, 10000, primesquares.DefaultConfig())
//	    primesquares.AssertGolden(t, 7919, "19053119163")
//	}
//
// # Limits
//
// N must fit in a uint64. Everything runs on one goroutine; memory is
// O(N^{1/3}) for the wheel and Fenwick tree plus O(N^{1/3}·log N) for the
// query batch.
package primesquares
