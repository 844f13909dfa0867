package primesquares

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cockroachdb/apd/v3"

	"github.com/alexshd/primesquares/bigint"
	"github.com/alexshd/primesquares/primes"
)

// MaxThreshold bounds Config.Threshold; larger values only grow the sweep.
const MaxThreshold = 64

// ErrInvalidThreshold is returned for a Threshold outside [1, MaxThreshold].
var ErrInvalidThreshold = errors.New("threshold out of range")

// Config controls a computation.
type Config struct {
	// Threshold sets the sweep bound y = Threshold·⌊√N⌋. Subproblems below y
	// are deferred to the sieve sweep, those above are expanded further.
	Threshold uint64

	// Logger receives phase statistics at debug level. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		Threshold: 3,
	}
}

// Validate reports whether the configuration can be used.
func (c Config) Validate() error {
	if c.Threshold < 1 || c.Threshold > MaxThreshold {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidThreshold, c.Threshold, MaxThreshold)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}

// Stats describes the work done by one computation.
type Stats struct {
	SmallPrimes int    // Primes ≤ ∛N
	Queries     int    // Deferred subproblems
	SweepLength uint64 // Integers visited by the sieve sweep
	LargePrimes int    // Primes in (∛N, √N] visited by the boundary pass

	Decompose time.Duration
	Sort      time.Duration
	Sweep     time.Duration
	Boundary  time.Duration
}

// Total returns the time spent across all phases.
func (s Stats) Total() time.Duration {
	return s.Decompose + s.Sort + s.Sweep + s.Boundary
}

// Result is the outcome of Compute.
type Result struct {
	N     uint64
	Sum   *apd.BigInt // Σ p² over primes p ≤ N
	Stats Stats
}

// Compute returns the sum of the squares of all primes ≤ n.
//
// The phases run strictly in order: phi decomposition, query sort, sieve
// sweep, boundary correction. Each owns its data and hands a partial total to
// the next.
func Compute(n uint64, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	log := cfg.logger()

	sqrtN := bigint.Sqrt(n)
	cbrtN := bigint.Cbrt(n)
	small := primes.Generate(2, cbrtN)
	y := cfg.Threshold * sqrtN

	var stats Stats
	stats.SmallPrimes = len(small)

	start := time.Now()
	total, queries := decompose(n, small, y)
	stats.Queries = len(queries)
	stats.Decompose = time.Since(start)

	start = time.Now()
	sortQueries(queries)
	stats.Sort = time.Since(start)

	start = time.Now()
	resolved, swept := resolve(queries, small)
	total.Add(total, resolved)
	stats.SweepLength = swept
	stats.Sweep = time.Since(start)

	start = time.Now()
	stats.LargePrimes = correct(total, n, small, sqrtN, cbrtN)
	stats.Boundary = time.Since(start)

	log.Debug("prime squares computed",
		"n", n,
		"small_primes", stats.SmallPrimes,
		"queries", stats.Queries,
		"sweep", stats.SweepLength,
		"large_primes", stats.LargePrimes,
		"decompose", stats.Decompose,
		"sort", stats.Sort,
		"sweep_time", stats.Sweep,
		"boundary", stats.Boundary,
	)

	return Result{N: n, Sum: total, Stats: stats}, nil
}

// SumPrimeSquares returns Σ p² over primes p ≤ n using DefaultConfig.
func SumPrimeSquares(n uint64) *apd.BigInt {
	res, err := Compute(n, DefaultConfig())
	if err != nil {
		panic(err) // the default config is always valid
	}
	return res.Sum
}
