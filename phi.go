package primesquares

import (
	"cmp"
	"slices"

	"github.com/cockroachdb/apd/v3"

	"github.com/alexshd/primesquares/bigint"
)

// Query is a deferred piece of the weighted Legendre sum.
//
// Its value is ±W² · Σ k² over 0 ≤ k ≤ X with k coprime to the first I small
// primes. X is always below the sweep threshold, so the value is read off the
// incremental sieve instead of being expanded further.
type Query struct {
	X        uint64 // Upper bound of the summed integers
	I        int    // Length of the small-prime prefix the integers must avoid
	Negative bool   // Contribution is subtracted
	W        uint64 // Weight; the sum is scaled by W²
}

// decomposition carries the state of one phi expansion.
type decomposition struct {
	y       uint64
	total   apd.BigInt
	queries []Query
	term    apd.BigInt
}

// decompose expands phi(n) over the given small primes with Legendre's
// identity
//
//	phi(x, P ∪ {p}) = phi(x, P) - p² · phi(x/p, P)
//
// It returns the closed-form part of the sum and the queries for every
// subproblem with x below y.
func decompose(n uint64, small []uint64, y uint64) (*apd.BigInt, []Query) {
	d := &decomposition{y: y}
	d.phi(n, small, false, 1)
	return &d.total, d.queries
}

func (d *decomposition) phi(x uint64, small []uint64, negative bool, w uint64) {
	if x < d.y && len(small) > 0 {
		d.queries = append(d.queries, Query{X: x, I: len(small), Negative: negative, W: w})
		return
	}

	bigint.SquarePyramidal(&d.term, x)
	bigint.MulSquare(&d.term, &d.term, w)
	if negative {
		d.total.Sub(&d.total, &d.term)
	} else {
		d.total.Add(&d.total, &d.term)
	}

	// small[:k] shares the caller's backing array; the prefix only shrinks.
	for k, p := range small {
		d.phi(x/p, small[:k], !negative, w*p)
	}
}

// sortQueries orders queries by bound, then by prefix length, which is the
// order the sweep consumes them in.
func sortQueries(queries []Query) {
	slices.SortFunc(queries, func(a, b Query) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.I, b.I)
	})
}
