package primesquares

import "github.com/cockroachdb/apd/v3"

// accumulator is a Fenwick tree of big sums indexed by elimination class.
//
// Classes are stored in reverse so that "every class ≥ c", the only range the
// sweep ever asks for, is a single prefix walk.
type accumulator struct {
	tree []apd.BigInt
}

func newAccumulator(classes int) *accumulator {
	return &accumulator{tree: make([]apd.BigInt, classes)}
}

// add adds v to class c.
func (a *accumulator) add(c int, v *apd.BigInt) {
	for i := len(a.tree) - c; i <= len(a.tree); i += i & -i {
		a.tree[i-1].Add(&a.tree[i-1], v)
	}
}

// suffix sets z to the total of classes c, c+1, ..., and returns z.
func (a *accumulator) suffix(z *apd.BigInt, c int) *apd.BigInt {
	z.SetInt64(0)
	for i := len(a.tree) - c; i > 0; i -= i & -i {
		z.Add(z, &a.tree[i-1])
	}
	return z
}
