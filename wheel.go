package primesquares

// unclaimed marks a wheel slot no small prime has reached.
const unclaimed = -1

// wheel replays the sieve of Eratosthenes one integer at a time.
//
// Each small prime holds exactly one claim: the index of the next integer it
// will strike. When two primes land on the same integer the smaller prime
// index keeps the slot and the other moves on to its following multiple, so
// every integer is reported under its smallest small-prime divisor.
type wheel struct {
	small []uint64
	slots []int // slots[pos] is the claim on the current integer
	pos   int
}

func newWheel(small []uint64) *wheel {
	size := 1
	if len(small) > 0 {
		size = int(small[len(small)-1]) + 1
	}
	w := &wheel{small: small}
	w.extend(size)
	for k, p := range small {
		w.slots[p] = k
	}
	return w
}

// advance consumes the current integer and returns the index of the small
// prime that strikes it, or unclaimed if none does.
func (w *wheel) advance() int {
	if w.pos == len(w.slots) {
		w.extend(w.pos + 1)
	}
	k := w.slots[w.pos]
	w.slots[w.pos] = unclaimed
	if k != unclaimed {
		w.reclaim(k, w.pos)
	}
	w.pos++
	w.compact()
	return k
}

// reclaim moves the claim of prime k from slot at to its next free multiple.
func (w *wheel) reclaim(k, at int) {
	j := at + int(w.small[k])
	for j < len(w.slots) && w.slots[j] != unclaimed {
		if w.slots[j] > k {
			k, w.slots[j] = w.slots[j], k
		}
		j += int(w.small[k])
	}
	if j >= len(w.slots) {
		w.extend(j + 1)
	}
	w.slots[j] = k
}

func (w *wheel) extend(size int) {
	for len(w.slots) < size {
		w.slots = append(w.slots, unclaimed)
	}
}

// compact drops consumed slots once they make up half the storage.
func (w *wheel) compact() {
	if w.pos < 1<<10 || 2*w.pos < len(w.slots) {
		return
	}
	n := copy(w.slots, w.slots[w.pos:])
	w.slots = w.slots[:n]
	w.pos = 0
}
