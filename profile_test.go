package primesquares

import (
	"math"
	"testing"
	"time"
)

// TestFitExponent_Synthetic recovers a known power law.
func TestFitExponent_Synthetic(t *testing.T) {
	var samples []Sample
	for _, n := range []uint64{1e6, 1e7, 1e8, 1e9, 1e10} {
		seconds := 2e-7 * math.Pow(float64(n), 2.0/3.0)
		samples = append(samples, Sample{N: n, Duration: time.Duration(seconds * float64(time.Second))})
	}

	exp, err := FitExponent(samples)
	if err != nil {
		t.Fatalf("FitExponent failed: %v", err)
	}

	if math.Abs(exp.K-2.0/3.0) > 0.01 {
		t.Errorf("K: expected ≈0.667, got %.4f", exp.K)
	}
	if math.Abs(exp.C-2e-7)/2e-7 > 0.05 {
		t.Errorf("C: expected ≈2e-7, got %.3g", exp.C)
	}
	if exp.RSquared < 0.999 {
		t.Errorf("R²: expected ≈1, got %.6f", exp.RSquared)
	}

	predicted := exp.Predict(1e12)
	want := time.Duration(2e-7 * 1e8 * float64(time.Second))
	if ratio := float64(predicted) / float64(want); ratio < 0.9 || ratio > 1.1 {
		t.Errorf("Predict(1e12): expected ≈%v, got %v", want, predicted)
	}

	t.Logf("✓ Fitted K=%.4f C=%.3g R²=%.6f", exp.K, exp.C, exp.RSquared)
}

func TestFitExponent_SkipsUninformativeSamples(t *testing.T) {
	samples := []Sample{
		{N: 0, Duration: time.Millisecond},
		{N: 1, Duration: time.Millisecond},
		{N: 100, Duration: 0},
		{N: 1000, Duration: time.Millisecond},
		{N: 8000, Duration: 4 * time.Millisecond},
	}

	exp, err := FitExponent(samples)
	if err != nil {
		t.Fatalf("FitExponent failed: %v", err)
	}
	if math.Abs(exp.K-2.0/3.0) > 1e-9 {
		t.Errorf("K: expected 2/3 from the two usable samples, got %.6f", exp.K)
	}
}

func TestFitExponent_InsufficientData(t *testing.T) {
	if _, err := FitExponent(nil); err == nil {
		t.Error("Expected error for no samples")
	}

	one := []Sample{{N: 1000, Duration: time.Millisecond}}
	if _, err := FitExponent(one); err == nil {
		t.Error("Expected error for a single sample")
	}

	same := []Sample{
		{N: 1000, Duration: time.Millisecond},
		{N: 1000, Duration: 2 * time.Millisecond},
	}
	if _, err := FitExponent(same); err == nil {
		t.Error("Expected error when every sample has the same N")
	}
}

func TestProfile_RecordsEveryLevel(t *testing.T) {
	levels := []uint64{1000, 100_000, 10_000_000}
	samples, err := Profile(levels, DefaultConfig())
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}

	if len(samples) != len(levels) {
		t.Fatalf("Expected %d samples, got %d", len(levels), len(samples))
	}
	for i, s := range samples {
		if s.N != levels[i] {
			t.Errorf("Sample %d: expected N=%d, got %d", i, levels[i], s.N)
		}
		if s.Duration < s.Stats.Total() {
			t.Errorf("Sample %d: wall time %v below phase total %v", i, s.Duration, s.Stats.Total())
		}
	}

	PrintProfile(t, samples)
}

func TestProfile_InvalidConfig(t *testing.T) {
	if _, err := Profile([]uint64{10}, Config{}); err == nil {
		t.Error("Expected error for zero threshold")
	}
}

func TestProfile_SubLinear(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}

	samples, err := Profile([]uint64{1e7, 1e8, 1e9, 1e10}, DefaultConfig())
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}

	AssertSubLinear(t, samples, DefaultAssertionConfig())
}
