// Package bigint holds the arbitrary-precision helpers the prime-square
// sum is built on.
//
// All values are apd.BigInt, which keeps integers up to 128 bits inline and
// only spills to a heap big.Int beyond that. Sums of prime squares stay below
// 2^128 for every N that fits in a uint64 and is practical to compute, so the
// hot loops (sweep accumulator, phi closed forms) run allocation-free.
package bigint

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/cockroachdb/apd/v3"
)

var (
	// ErrSyntax reports input that is not a plain run of decimal digits.
	ErrSyntax = errors.New("not a non-negative decimal integer")

	// ErrOutOfRange reports a well-formed integer that does not fit in 64 bits.
	ErrOutOfRange = errors.New("integer exceeds the supported range")
)

var (
	one   = apd.NewBigInt(1)
	two   = apd.NewBigInt(2)
	three = apd.NewBigInt(3)
	six   = apd.NewBigInt(6)
)

// ParseNatural parses a decimal string of any length into a uint64.
// Signs, whitespace, underscores and base prefixes are rejected.
func ParseNatural(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("parse %q: %w", s, ErrSyntax)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("parse %q: %w", s, ErrSyntax)
		}
	}

	var z apd.BigInt
	if _, ok := z.SetString(s, 10); !ok {
		return 0, fmt.Errorf("parse %q: %w", s, ErrSyntax)
	}
	if !z.IsUint64() {
		return 0, fmt.Errorf("parse %q: %w", s, ErrOutOfRange)
	}
	return z.Uint64(), nil
}

// Sqrt returns ⌊√n⌋.
func Sqrt(n uint64) uint64 {
	var z apd.BigInt
	z.SetUint64(n)
	return z.Sqrt(&z).Uint64()
}

// Cbrt returns ⌊∛n⌋.
func Cbrt(n uint64) uint64 {
	var z apd.BigInt
	z.SetUint64(n)
	return CbrtBig(&z, &z).Uint64()
}

// CbrtBig sets z to ⌊∛x⌋ for x ≥ 0 and returns z.
//
// Newton's iteration s' = (2s + x/s²)/3 descends monotonically from any
// starting point at or above the root and stops exactly at the floor.
func CbrtBig(z, x *apd.BigInt) *apd.BigInt {
	if x.Sign() <= 0 {
		return z.SetInt64(0)
	}

	var s, t, sq apd.BigInt
	s.Lsh(one, uint((x.BitLen()+2)/3))
	for {
		sq.Mul(&s, &s)
		t.Quo(x, &sq)
		sq.Mul(&s, two)
		t.Add(&t, &sq)
		t.Quo(&t, three)
		if t.Cmp(&s) >= 0 {
			return z.Set(&s)
		}
		s.Set(&t)
	}
}

// SquarePyramidal sets z to 0² + 1² + ... + x² = x(x+1)(2x+1)/6.
// One of x, x+1 is even and one of x, x+1, 2x+1 is a multiple of three, so
// the division is exact.
func SquarePyramidal(z *apd.BigInt, x uint64) *apd.BigInt {
	var a, b apd.BigInt
	a.SetUint64(x)
	b.Add(&a, one)
	z.Mul(&a, &b)
	b.Add(&b, &a)
	z.Mul(z, &b)
	return z.Quo(z, six)
}

// Square sets z to x² and returns z.
func Square(z *apd.BigInt, x uint64) *apd.BigInt {
	hi, lo := bits.Mul64(x, x)
	if hi == 0 {
		return z.SetUint64(lo)
	}
	var t apd.BigInt
	t.SetUint64(x)
	return z.Mul(&t, &t)
}

// MulSquare sets z to v·w² and returns z.
func MulSquare(z, v *apd.BigInt, w uint64) *apd.BigInt {
	if w == 1 {
		return z.Set(v)
	}
	var t apd.BigInt
	Square(&t, w)
	return z.Mul(v, &t)
}
