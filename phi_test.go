package primesquares

import (
	"math/rand"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/go-cmp/cmp"

	"github.com/alexshd/primesquares/bigint"
	"github.com/alexshd/primesquares/primes"
)

// bruteQuery evaluates a query directly: ±W² · Σ k² over k ≤ X coprime to
// small[:I].
func bruteQuery(q Query, small []uint64) *apd.BigInt {
	var sum, sq apd.BigInt
	for k := uint64(1); k <= q.X; k++ {
		coprime := true
		for _, p := range small[:q.I] {
			if k%p == 0 {
				coprime = false
				break
			}
		}
		if coprime {
			sum.Add(&sum, bigint.Square(&sq, k))
		}
	}
	bigint.MulSquare(&sum, &sum, q.W)
	if q.Negative {
		sum.Neg(&sum)
	}
	return &sum
}

// bruteLegendre is phi(n) over all of small, summed directly.
func bruteLegendre(n uint64, small []uint64) *apd.BigInt {
	return bruteQuery(Query{X: n, I: len(small), W: 1}, small)
}

func TestDecompose_EmptyPrimesNeverDeferred(t *testing.T) {
	total, queries := decompose(5, nil, 100)

	if len(queries) != 0 {
		t.Errorf("Expected no queries for an empty prime set, got %d", len(queries))
	}
	if got := total.String(); got != "55" {
		t.Errorf("Expected 0²+1²+...+5² = 55, got %s", got)
	}
}

func TestDecompose_DefersBelowThreshold(t *testing.T) {
	small := []uint64{2, 3}
	total, queries := decompose(29, small, 15)

	want := []Query{{X: 9, I: 1, Negative: true, W: 3}}
	if diff := cmp.Diff(want, queries); diff != "" {
		t.Errorf("Queries mismatch (-want +got):\n%s", diff)
	}

	// S(29) - 2²·S(14)
	if got := total.String(); got != "4495" {
		t.Errorf("Expected closed-form part 4495, got %s", got)
	}
}

func TestDecompose_QueryInvariants(t *testing.T) {
	n := uint64(10_000_000)
	small := primes.Generate(2, bigint.Cbrt(n))
	y := 3 * bigint.Sqrt(n)

	_, queries := decompose(n, small, y)
	if len(queries) == 0 {
		t.Fatal("Expected deferred queries")
	}

	for _, q := range queries {
		if q.X >= y {
			t.Fatalf("Query %+v not below threshold %d", q, y)
		}
		if q.I < 1 || q.I > len(small) {
			t.Fatalf("Query %+v has prefix outside 1..%d", q, len(small))
		}
	}

	t.Logf("✓ %d queries, all below y=%d", len(queries), y)
}

// TestDecompose_LegendreIdentity checks that closed forms plus resolved
// queries reproduce phi exactly.
func TestDecompose_LegendreIdentity(t *testing.T) {
	for _, n := range []uint64{8, 27, 100, 1000, 4096, 12345} {
		small := primes.Generate(2, bigint.Cbrt(n))
		y := 3 * bigint.Sqrt(n)

		total, queries := decompose(n, small, y)
		sortQueries(queries)
		resolved, _ := resolve(queries, small)
		total.Add(total, resolved)

		if want := bruteLegendre(n, small); total.Cmp(want) != 0 {
			t.Errorf("N=%d: phi = %s, want %s", n, total, want)
		}
	}
}

func TestResolve_QueryCrossCheck(t *testing.T) {
	small := []uint64{2, 3, 5, 7, 11, 13}
	rng := rand.New(rand.NewSource(1))

	var queries []Query
	want := new(apd.BigInt)
	for i := 0; i < 200; i++ {
		q := Query{
			X:        uint64(rng.Intn(600)),
			I:        rng.Intn(len(small) + 1),
			Negative: rng.Intn(2) == 1,
			W:        uint64(rng.Intn(50) + 1),
		}

		single, _ := resolve([]Query{q}, small)
		expected := bruteQuery(q, small)
		if single.Cmp(expected) != 0 {
			t.Fatalf("Query %+v: resolved %s, brute force %s", q, single, expected)
		}

		queries = append(queries, q)
		want.Add(want, expected)
	}

	sortQueries(queries)
	got, swept := resolve(queries, small)
	if got.Cmp(want) != 0 {
		t.Errorf("Batch of %d: resolved %s, brute force %s", len(queries), got, want)
	}
	if last := queries[len(queries)-1].X; swept != last+1 {
		t.Errorf("Expected sweep to stop after %d, swept %d", last, swept)
	}
}

func TestResolve_EmptyBatch(t *testing.T) {
	total, swept := resolve(nil, []uint64{2, 3})
	if total.Sign() != 0 || swept != 0 {
		t.Errorf("Expected zero work for an empty batch, got %s after %d", total, swept)
	}
}

func TestSortQueries(t *testing.T) {
	queries := []Query{
		{X: 9, I: 2, W: 1},
		{X: 4, I: 3, W: 2},
		{X: 9, I: 1, W: 3},
		{X: 4, I: 1, Negative: true, W: 4},
	}
	sortQueries(queries)

	want := []Query{
		{X: 4, I: 1, Negative: true, W: 4},
		{X: 4, I: 3, W: 2},
		{X: 9, I: 1, W: 3},
		{X: 9, I: 2, W: 1},
	}
	if diff := cmp.Diff(want, queries); diff != "" {
		t.Errorf("Sort order mismatch (-want +got):\n%s", diff)
	}
}
