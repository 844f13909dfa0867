package primesquares

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/alexshd/primesquares/bigint"
)

// resolve answers a sorted query batch in one ascending pass of the wheel.
//
// Every integer x is filed under the class of its smallest small-prime
// divisor (or the survivor class len(small) when it has none), with weight x².
// A query (X, I) is then the total of classes ≥ I at the moment x reaches X.
// It returns the signed, weighted sum of all answers and the number of
// integers swept.
func resolve(queries []Query, small []uint64) (*apd.BigInt, uint64) {
	total := new(apd.BigInt)
	if len(queries) == 0 {
		return total, 0
	}

	classes := newAccumulator(len(small) + 1)
	w := newWheel(small)
	survivor := len(small)

	var sq, reply apd.BigInt
	next := 0
	for x := uint64(0); ; x++ {
		c := w.advance()
		if c == unclaimed {
			c = survivor
		}
		classes.add(c, bigint.Square(&sq, x))

		for queries[next].X == x {
			q := queries[next]
			classes.suffix(&reply, q.I)
			bigint.MulSquare(&reply, &reply, q.W)
			if q.Negative {
				total.Sub(total, &reply)
			} else {
				total.Add(total, &reply)
			}

			next++
			if next == len(queries) {
				return total, x + 1
			}
		}
	}
}
