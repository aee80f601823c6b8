// Package numgo provides embedded number-theory primitives for Go.
//
// Numgo bundles exact integer algorithms behind a small facade with
// production-ready plumbing:
//
//   - Primality testing: trial division + Miller-Rabin, deterministic below 2^64
//   - Prime sieving: odd-only bit-packed sieve of Eratosthenes, plain or windowed
//   - Compressed prime sets backed by Roaring bitmaps
//   - Extended Euclidean algorithm, modular inverse and exponentiation
//   - Arbitrary-precision bitsets with pure (copy-on-write) set algebra
//   - Single-word bit tricks (lowest set bit, MSB index, low masks)
//   - Structured logging (slog) and pluggable metrics collection
//
// # Quick Start
//
//	ng := numgo.New()
//
//	ng.IsProbablePrime(big.NewInt(2305843009213693951)) // true, deterministic
//	ng.Sieve(50)                                        // [2 3 5 7 ... 47]
//	ng.SieveRange(90, 100)                              // [97]
//
//	inv, err := ng.ModularInverse(big.NewInt(3), big.NewInt(11))
//	if err != nil {
//	    // errors.Is(err, numgo.ErrNoInverse) when gcd(a, m) != 1
//	}
//
// # Primality Testing
//
// Verdicts for candidates below 2^64 come from a fixed witness set and are
// exact. Above that bound the test draws random witnesses; configure the
// trade-off and reproducibility at construction:
//
//	ng := numgo.New(
//	    numgo.WithRounds(16),                              // error bound 4^-16
//	    numgo.WithRand(rand.New(rand.NewSource(42))),      // reproducible draws
//	)
//
// # Observability
//
//	metrics := &numgo.BasicMetricsCollector{}
//	ng := numgo.New(
//	    numgo.WithMetricsCollector(metrics),
//	    numgo.WithLogLevel(slog.LevelDebug),
//	)
//	// ... use ng ...
//	stats := metrics.GetStats()
//
// The subpackages bitops, intset, modular and prime expose the same
// algorithms as free functions for callers that do not need the shared
// configuration.
package numgo

import (
	"math/big"
	"math/rand"
	"time"

	"github.com/hupe1980/numgo/intset"
	"github.com/hupe1980/numgo/modular"
	"github.com/hupe1980/numgo/prime"
)

// Numgo is a handle over the number-theory operations with shared primality
// configuration, structured logging and metrics.
//
// All operations are pure functions of their inputs; the handle itself is
// safe for concurrent use.
type Numgo struct {
	rng     *rand.Rand // draws serialized at the source; nil means per-call seeding
	rounds  int
	metrics MetricsCollector
	logger  *Logger
}

// New creates a Numgo instance.
func New(optFns ...Option) *Numgo {
	opts := applyOptions(optFns)

	if opts.metricsCollector == nil {
		opts.metricsCollector = NoopMetricsCollector{}
	}
	if opts.logger == nil {
		opts.logger = NoopLogger()
	}
	if opts.rounds < 1 {
		opts.rounds = prime.DefaultOptions.Rounds
	}

	rng := opts.rng
	if rng != nil {
		rng = rand.New(&lockedSource{src: rng})
	}

	return &Numgo{
		rng:     rng,
		rounds:  opts.rounds,
		metrics: opts.metricsCollector,
		logger:  opts.logger,
	}
}

// IsProbablePrime reports whether n is prime. Verdicts for n below 2^64 are
// deterministic; above that bound the configured number of witness rounds
// runs and a true verdict is wrong with probability at most 4^-rounds.
func (ng *Numgo) IsProbablePrime(n *big.Int) bool {
	start := time.Now()
	deterministic := n.BitLen() <= 64

	result := prime.Test(n, func(o *prime.Options) {
		o.Rounds = ng.rounds
		o.Rand = ng.rng
	})

	ng.metrics.RecordPrimeTest(deterministic, time.Since(start))
	ng.logger.LogPrimeTest(n.BitLen(), deterministic, result)
	return result
}

// Sieve returns all primes up to and including limit in ascending order.
// A limit below 2 yields no primes.
func (ng *Numgo) Sieve(limit int) []int {
	start := time.Now()
	primes := prime.Sieve(limit)
	ng.metrics.RecordSieve(len(primes), time.Since(start))
	ng.logger.LogSieve(limit, len(primes))
	return primes
}

// SieveRange returns the primes in [lo, hi] in ascending order, sieving
// only the requested window.
func (ng *Numgo) SieveRange(lo, hi int) []int {
	start := time.Now()
	primes := prime.SieveRange(lo, hi)
	ng.metrics.RecordSieve(len(primes), time.Since(start))
	ng.logger.LogSieveRange(lo, hi, len(primes))
	return primes
}

// PrimeSet sieves all primes up to limit into a compressed membership set.
// Build one when the same bound serves many Contains probes.
func (ng *Numgo) PrimeSet(limit int) *prime.Set {
	start := time.Now()
	set := prime.NewSet(limit)
	ng.metrics.RecordSieve(int(set.Cardinality()), time.Since(start))
	ng.logger.LogSieve(limit, int(set.Cardinality()))
	return set
}

// ExtendedGCD returns (g, x, y) with a*x + b*y = g = gcd(a, b). g is
// always non-negative and ExtendedGCD(0, 0) is (0, 0, 0).
func (ng *Numgo) ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	start := time.Now()
	g, x, y = modular.ExtendedGCD(a, b)
	ng.metrics.RecordGCD(time.Since(start))
	ng.logger.LogGCD(a.BitLen(), b.BitLen())
	return g, x, y
}

// GCD returns the non-negative greatest common divisor of a and b.
func (ng *Numgo) GCD(a, b *big.Int) *big.Int {
	start := time.Now()
	g := modular.GCD(a, b)
	ng.metrics.RecordGCD(time.Since(start))
	ng.logger.LogGCD(a.BitLen(), b.BitLen())
	return g
}

// LCM returns the non-negative least common multiple of a and b, or zero
// when either argument is zero.
func (ng *Numgo) LCM(a, b *big.Int) *big.Int {
	start := time.Now()
	l := modular.LCM(a, b)
	ng.metrics.RecordGCD(time.Since(start))
	ng.logger.LogGCD(a.BitLen(), b.BitLen())
	return l
}

// ModularInverse returns the multiplicative inverse of a modulo m in
// [0, m). It fails with ErrNoInverse when gcd(a, m) != 1 and with
// ErrInvalidArgument when m is not positive.
func (ng *Numgo) ModularInverse(a, m *big.Int) (*big.Int, error) {
	start := time.Now()
	inv, err := modular.Inverse(a, m)
	err = translateError(err)
	ng.metrics.RecordInverse(time.Since(start), err)
	ng.logger.LogInverse(m.BitLen(), err)
	return inv, err
}

// ModularExponent returns base^exponent mod modulus. It fails with
// ErrInvalidArgument when the exponent is negative or the modulus is not
// positive.
func (ng *Numgo) ModularExponent(base, exponent, modulus *big.Int) (*big.Int, error) {
	start := time.Now()
	pow, err := modular.Exp(base, exponent, modulus)
	err = translateError(err)
	ng.metrics.RecordExponent(time.Since(start), err)
	ng.logger.LogExponent(exponent.BitLen(), err)
	return pow, err
}

// BitsetFromIndices builds an arbitrary-precision bitset with the given
// bit indices set. It fails with ErrInvalidArgument on negative indices.
func (ng *Numgo) BitsetFromIndices(indices []int) (intset.Set, error) {
	start := time.Now()
	set, err := intset.FromIndices(indices)
	err = translateError(err)
	ng.metrics.RecordBitset(len(indices), time.Since(start), err)
	ng.logger.LogBitset(len(indices), err)
	return set, err
}
