package numgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    primeTestCounter prometheus.Counter
//	    sieveHistogram   prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordPrimeTest(deterministic bool, duration time.Duration) {
//	    p.primeTestCounter.Inc()
//	    // ... record duration, witness mode, etc.
//	}
type MetricsCollector interface {
	// RecordPrimeTest is called after each primality test.
	// deterministic reports whether the fixed witness set decided the
	// verdict, duration is the total time taken.
	RecordPrimeTest(deterministic bool, duration time.Duration)

	// RecordSieve is called after each sieve run (plain or windowed).
	// count is the number of primes produced, duration is the time taken.
	RecordSieve(count int, duration time.Duration)

	// RecordGCD is called after each extended GCD computation.
	RecordGCD(duration time.Duration)

	// RecordInverse is called after each modular inverse computation.
	// err is nil if the inverse exists.
	RecordInverse(duration time.Duration, err error)

	// RecordExponent is called after each modular exponentiation.
	RecordExponent(duration time.Duration, err error)

	// RecordBitset is called after each bitset construction.
	// count is the number of indices attempted.
	RecordBitset(count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPrimeTest(bool, time.Duration)    {}
func (NoopMetricsCollector) RecordSieve(int, time.Duration)         {}
func (NoopMetricsCollector) RecordGCD(time.Duration)                {}
func (NoopMetricsCollector) RecordInverse(time.Duration, error)     {}
func (NoopMetricsCollector) RecordExponent(time.Duration, error)    {}
func (NoopMetricsCollector) RecordBitset(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PrimeTestCount         atomic.Int64
	PrimeTestDeterministic atomic.Int64
	PrimeTestTotalNanos    atomic.Int64
	SieveCount             atomic.Int64
	SievePrimesFound       atomic.Int64
	SieveTotalNanos        atomic.Int64
	GCDCount               atomic.Int64
	InverseCount           atomic.Int64
	InverseErrors          atomic.Int64
	ExponentCount          atomic.Int64
	ExponentErrors         atomic.Int64
	BitsetCount            atomic.Int64
	BitsetErrors           atomic.Int64
}

// RecordPrimeTest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPrimeTest(deterministic bool, duration time.Duration) {
	b.PrimeTestCount.Add(1)
	b.PrimeTestTotalNanos.Add(duration.Nanoseconds())
	if deterministic {
		b.PrimeTestDeterministic.Add(1)
	}
}

// RecordSieve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSieve(count int, duration time.Duration) {
	b.SieveCount.Add(1)
	b.SievePrimesFound.Add(int64(count))
	b.SieveTotalNanos.Add(duration.Nanoseconds())
}

// RecordGCD implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGCD(duration time.Duration) {
	b.GCDCount.Add(1)
}

// RecordInverse implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInverse(duration time.Duration, err error) {
	b.InverseCount.Add(1)
	if err != nil {
		b.InverseErrors.Add(1)
	}
}

// RecordExponent implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExponent(duration time.Duration, err error) {
	b.ExponentCount.Add(1)
	if err != nil {
		b.ExponentErrors.Add(1)
	}
}

// RecordBitset implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBitset(count int, duration time.Duration, err error) {
	b.BitsetCount.Add(1)
	if err != nil {
		b.BitsetErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PrimeTestCount:         b.PrimeTestCount.Load(),
		PrimeTestDeterministic: b.PrimeTestDeterministic.Load(),
		PrimeTestAvgNanos:      b.getAvgPrimeTestNanos(),
		SieveCount:             b.SieveCount.Load(),
		SievePrimesFound:       b.SievePrimesFound.Load(),
		SieveAvgNanos:          b.getAvgSieveNanos(),
		GCDCount:               b.GCDCount.Load(),
		InverseCount:           b.InverseCount.Load(),
		InverseErrors:          b.InverseErrors.Load(),
		ExponentCount:          b.ExponentCount.Load(),
		ExponentErrors:         b.ExponentErrors.Load(),
		BitsetCount:            b.BitsetCount.Load(),
		BitsetErrors:           b.BitsetErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgPrimeTestNanos() int64 {
	count := b.PrimeTestCount.Load()
	if count == 0 {
		return 0
	}
	return b.PrimeTestTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgSieveNanos() int64 {
	count := b.SieveCount.Load()
	if count == 0 {
		return 0
	}
	return b.SieveTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	PrimeTestCount         int64
	PrimeTestDeterministic int64
	PrimeTestAvgNanos      int64
	SieveCount             int64
	SievePrimesFound       int64
	SieveAvgNanos          int64
	GCDCount               int64
	InverseCount           int64
	InverseErrors          int64
	ExponentCount          int64
	ExponentErrors         int64
	BitsetCount            int64
	BitsetErrors           int64
}
