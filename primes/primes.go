// Package primes enumerates primes with a segmented sieve of Eratosthenes.
//
// Generate lists the primes of a closed range. Cursor walks primes in either
// direction from an arbitrary starting point, sieving one fixed-size window
// at a time, so memory stays bounded regardless of how far it travels.
package primes

import (
	"math"
	"slices"

	"github.com/alexshd/primesquares/bigint"
)

// segmentSize is the width of one sieve window.
const segmentSize = 1 << 14

// Generate returns the primes p with lo ≤ p ≤ hi in ascending order.
func Generate(lo, hi uint64) []uint64 {
	if hi < lo || hi < 2 {
		return nil
	}
	var out []uint64
	c := NewCursor()
	c.SkipTo(lo)
	for {
		p := c.Next()
		if p > hi {
			return out
		}
		out = append(out, p)
	}
}

// Cursor is a bidirectional iterator over the primes.
//
// The cursor always sits between two consecutive integers: Next returns the
// first prime at or after that gap and Prev the first prime before it.
// Calling Next then Prev returns the same prime twice.
type Cursor struct {
	base  []uint64 // sieving primes covering every window seen so far
	limit uint64   // base holds all primes ≤ limit
	marks []bool

	lo  uint64   // current window is [lo, lo+segmentSize)
	buf []uint64 // primes of the current window
	pos int      // gap position inside buf
}

// NewCursor returns a cursor positioned before 2.
func NewCursor() *Cursor {
	c := &Cursor{}
	c.SkipTo(0)
	return c
}

// SkipTo repositions the cursor so that Next yields the smallest prime ≥ b
// and Prev the largest prime < b.
func (c *Cursor) SkipTo(b uint64) {
	c.load(b - b%segmentSize)
	c.pos, _ = slices.BinarySearch(c.buf, b)
}

// Next returns the next prime and moves the cursor past it.
func (c *Cursor) Next() uint64 {
	for c.pos == len(c.buf) {
		if c.lo > math.MaxUint64-2*segmentSize {
			panic("primes: cursor ran past the uint64 range")
		}
		c.load(c.lo + segmentSize)
		c.pos = 0
	}
	p := c.buf[c.pos]
	c.pos++
	return p
}

// Prev returns the previous prime and moves the cursor before it.
// Below 2 it returns 0 and leaves the cursor where it is.
func (c *Cursor) Prev() uint64 {
	for c.pos == 0 {
		if c.lo == 0 {
			return 0
		}
		c.load(c.lo - segmentSize)
		c.pos = len(c.buf)
	}
	c.pos--
	return c.buf[c.pos]
}

func (c *Cursor) load(lo uint64) {
	hi := lo + segmentSize
	c.extendBase(bigint.Sqrt(hi - 1))
	c.lo = lo

	if c.marks == nil {
		c.marks = make([]bool, segmentSize)
	}
	clear(c.marks)
	for _, p := range c.base {
		if p*p >= hi {
			break
		}
		start := max(p*p, (lo+p-1)/p*p)
		for m := start; m < hi; m += p {
			c.marks[m-lo] = true
		}
	}

	c.buf = c.buf[:0]
	for i, composite := range c.marks {
		if n := lo + uint64(i); !composite && n >= 2 {
			c.buf = append(c.buf, n)
		}
	}
}

func (c *Cursor) extendBase(limit uint64) {
	if c.base != nil && limit <= c.limit {
		return
	}
	c.limit = max(limit, 2*c.limit, 1<<10)
	c.base = sieve(c.limit)
}

// sieve returns every prime ≤ limit.
func sieve(limit uint64) []uint64 {
	composite := make([]bool, limit+1)
	var out []uint64
	for n := uint64(2); n <= limit; n++ {
		if composite[n] {
			continue
		}
		out = append(out, n)
		for m := n * n; m <= limit; m += n {
			composite[m] = true
		}
	}
	return out
}
