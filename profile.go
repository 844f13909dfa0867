package primesquares

import (
	"fmt"
	"math"
	"time"
)

// Sample is one timed computation.
type Sample struct {
	N        uint64        // Bound computed
	Duration time.Duration // Wall time of Compute
	Stats    Stats         // Per-phase breakdown
}

// Exponent is a power-law fit of running time against N:
//
//	t(N) ≈ C · N^K
//
// The combinatorial method should land near K ≈ 2/3; a direct sieve is K ≈ 1.
type Exponent struct {
	K        float64 // Growth exponent
	C        float64 // Seconds at N = 1
	RSquared float64 // R²: Goodness of fit on the log-log data (1.0 = perfect)
}

// Profile runs Compute at every level and records how long each took.
func Profile(levels []uint64, cfg Config) ([]Sample, error) {
	samples := make([]Sample, 0, len(levels))

	for _, n := range levels {
		start := time.Now()
		res, err := Compute(n, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed at N=%d: %w", n, err)
		}
		samples = append(samples, Sample{
			N:        n,
			Duration: time.Since(start),
			Stats:    res.Stats,
		})
	}

	return samples, nil
}

// FitExponent fits the samples to t = C·N^K by least squares on
// ln t = ln C + K·ln N. Samples with N < 2 or a zero duration carry no
// information on a log scale and are skipped.
func FitExponent(samples []Sample) (Exponent, error) {
	var sumX, sumY, sumXX, sumXY, count float64
	var xs, ys []float64

	for _, s := range samples {
		if s.N < 2 || s.Duration <= 0 {
			continue
		}
		x := math.Log(float64(s.N))
		y := math.Log(s.Duration.Seconds())

		sumX += x
		sumY += y
		sumXX += x * x
		sumXY += x * y
		count++
		xs = append(xs, x)
		ys = append(ys, y)
	}

	if count < 2 {
		return Exponent{}, fmt.Errorf("need at least 2 usable samples, got %d", int(count))
	}

	det := count*sumXX - sumX*sumX
	if math.Abs(det) < 1e-12 {
		return Exponent{}, fmt.Errorf("samples span a single N, cannot fit a slope")
	}

	k := (count*sumXY - sumX*sumY) / det
	lnC := (sumY - k*sumX) / count

	// R² on the log-log data
	meanY := sumY / count
	var ssRes, ssTot float64
	for i := range xs {
		predicted := lnC + k*xs[i]
		ssRes += (ys[i] - predicted) * (ys[i] - predicted)
		ssTot += (ys[i] - meanY) * (ys[i] - meanY)
	}
	rSquared := 1.0
	if ssTot > 0 {
		rSquared = 1 - ssRes/ssTot
	}

	return Exponent{
		K:        k,
		C:        math.Exp(lnC),
		RSquared: rSquared,
	}, nil
}

// Predict estimates the running time at n.
func (e Exponent) Predict(n uint64) time.Duration {
	seconds := e.C * math.Pow(float64(n), e.K)
	return time.Duration(seconds * float64(time.Second))
}
