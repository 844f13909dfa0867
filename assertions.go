package primesquares

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/apd/v3"
)

// AssertionConfig contains thresholds for growth properties.
type AssertionConfig struct {
	// Fitted exponent must stay below this (K < MaxExponent passes)
	MaxExponent float64

	// Minimum R² on the log-log fit before the exponent is trusted
	MinRSquared float64
}

// DefaultAssertionConfig returns conservative thresholds.
//
// The method runs in about N^{2/3}; timing noise on small inputs pushes the
// fitted exponent around, so anything clearly below a linear sieve passes.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		MaxExponent: 0.95,
		MinRSquared: 0.80,
	}
}

// AssertMatchesBruteForce verifies Compute against trial division for every
// bound in [0, limit].
//
// Mathematical property:
//
//	Compute(N) = Σ_{p ≤ N} p² for all N ≤ limit
func AssertMatchesBruteForce(t *testing.T, limit uint64, cfg Config) {
	t.Helper()

	var want apd.BigInt
	var failures []string
	for n := uint64(0); n <= limit; n++ {
		addIfPrime(&want, n)

		res, err := Compute(n, cfg)
		if err != nil {
			t.Fatalf("Compute(%d) failed: %v", n, err)
		}
		if res.Sum.Cmp(&want) != 0 {
			failures = append(failures, fmt.Sprintf("  N=%d: got %s, want %s", n, res.Sum, &want))
			if len(failures) == 10 {
				break
			}
		}
	}

	if len(failures) > 0 {
		t.Errorf("Mismatch against trial division (threshold %d):\n%s", cfg.Threshold, failures)
		return
	}

	t.Logf("✓ Matches trial division for N ≤ %d (threshold %d)", limit, cfg.Threshold)
}

// AssertGolden verifies Compute(n) equals the decimal value want.
func AssertGolden(t *testing.T, n uint64, want string) {
	t.Helper()

	res, err := Compute(n, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute(%d) failed: %v", n, err)
	}

	if got := res.Sum.String(); got != want {
		t.Errorf("Σp² for p ≤ %d: got %s, want %s", n, got, want)
		return
	}

	t.Logf("✓ N=%d: %s (%d queries, swept %d, %v)",
		n, want, res.Stats.Queries, res.Stats.SweepLength, res.Stats.Total())
}

// AssertSubLinear verifies the measured running time grows slower than N.
//
// Mathematical property:
//
//	t(N) ≈ C·N^K with K < MaxExponent
func AssertSubLinear(t *testing.T, samples []Sample, cfg AssertionConfig) {
	t.Helper()

	exp, err := FitExponent(samples)
	if err != nil {
		t.Fatalf("Failed to fit growth exponent: %v", err)
	}

	if exp.RSquared < cfg.MinRSquared {
		t.Skipf("Timing too noisy to judge growth: R² = %.4f (min: %.4f)", exp.RSquared, cfg.MinRSquared)
	}

	if exp.K > cfg.MaxExponent {
		t.Errorf("Growth too steep: K = %.3f (max: %.3f)", exp.K, cfg.MaxExponent)
		return
	}

	t.Logf("✓ Sub-linear growth: K = %.3f (threshold: %.3f)", exp.K, cfg.MaxExponent)
	t.Logf("  Model fit: R² = %.4f", exp.RSquared)
}

// PrintProfile outputs per-phase timings and the fitted growth to the test log.
func PrintProfile(t *testing.T, samples []Sample) {
	t.Helper()

	t.Logf("\n=== Profile ===")
	t.Logf("  N              Total         Decompose     Sweep         Boundary      Queries")
	for _, s := range samples {
		t.Logf("  %-14d %-13v %-13v %-13v %-13v %d",
			s.N, s.Duration, s.Stats.Decompose, s.Stats.Sweep, s.Stats.Boundary, s.Stats.Queries)
	}

	exp, err := FitExponent(samples)
	if err != nil {
		t.Logf("\nNo growth fit: %v", err)
		return
	}
	t.Logf("\nGrowth: t(N) ≈ %.3g · N^%.3f (R² = %.4f)", exp.C, exp.K, exp.RSquared)
}
